package gctx_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/scotch/gctx"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestNewContextSingleWorkerNoGoroutines(t *testing.T) {
	ctx, err := gctx.NewContext(1, nil)
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Size())

	var ran int32
	err = ctx.Launch(func(w *gctx.Worker) error {
		require.Equal(t, 0, w.Index())
		atomic.AddInt32(&ran, 1)
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, ran)
	require.NoError(t, ctx.Exit())
}

func TestLaunchRunsOnEveryWorker(t *testing.T) {
	ctx, err := gctx.NewContext(8, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	seen := make([]int32, 8)
	err = ctx.Launch(func(w *gctx.Worker) error {
		atomic.StoreInt32(&seen[w.Index()], 1)
		return nil
	})
	require.NoError(t, err)
	for i, v := range seen {
		require.EqualValues(t, 1, v, "worker %d did not run", i)
	}
}

func TestLaunchPropagatesError(t *testing.T) {
	ctx, err := gctx.NewContext(4, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	sentinel := require.New(t)
	err = ctx.Launch(func(w *gctx.Worker) error {
		if w.Index() == 2 {
			return errBoom
		}
		return nil
	})
	sentinel.ErrorIs(err, errBoom)
}

func TestBarrierRendezvousAndSerial(t *testing.T) {
	ctx, err := gctx.NewContext(6, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	var before, after int32
	var serials int32
	err = ctx.Launch(func(w *gctx.Worker) error {
		atomic.AddInt32(&before, 1)
		serial := w.Barrier()
		if serial {
			atomic.AddInt32(&serials, 1)
		}
		// Every worker must observe that all workers reached the barrier.
		require.EqualValues(t, 6, atomic.LoadInt32(&before))
		atomic.AddInt32(&after, 1)
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 6, after)
	require.EqualValues(t, 1, serials)
}

func TestReduceInt64SumIsCanonicalOrder(t *testing.T) {
	ctx, err := gctx.NewContext(5, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	var results [5]int64
	err = ctx.Launch(func(w *gctx.Worker) error {
		v := w.ReduceInt64(int64(w.Index()+1), func(a, b int64) int64 { return a + b }, 0)
		results[w.Index()] = v
		return nil
	})
	require.NoError(t, err)
	for _, r := range results {
		require.EqualValues(t, 15, r) // 1+2+3+4+5
	}
}

func TestReduceInt64IdentityIsNoOp(t *testing.T) {
	ctx, err := gctx.NewContext(4, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	var results [4]int64
	err = ctx.Launch(func(w *gctx.Worker) error {
		v := w.ReduceInt64(int64(42), func(a, b int64) int64 { return a }, 0)
		results[w.Index()] = v
		return nil
	})
	require.NoError(t, err)
	for _, r := range results {
		require.EqualValues(t, 42, r)
	}
}

func TestScanInt64PrefixSum(t *testing.T) {
	ctx, err := gctx.NewContext(4, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	var results [4]int64
	err = ctx.Launch(func(w *gctx.Worker) error {
		results[w.Index()] = w.ScanInt64(int64(w.Index()+1), func(a, b int64) int64 { return a + b })
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3, 6, 10}, results[:])
}

func TestMultipleCollectivesInSequence(t *testing.T) {
	ctx, err := gctx.NewContext(4, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	err = ctx.Launch(func(w *gctx.Worker) error {
		w.Barrier()
		a := w.ReduceInt64(1, func(x, y int64) int64 { return x + y }, 0)
		require.EqualValues(t, 4, a)
		w.Barrier()
		b := w.ScanInt64(1, func(x, y int64) int64 { return x + y })
		require.EqualValues(t, w.Index()+1, b)
		w.Barrier()
		return nil
	})
	require.NoError(t, err)
}

func TestSplitLaunchDividesWorkers(t *testing.T) {
	ctx, err := gctx.NewContext(7, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	var mu sync.Mutex
	var sizes []int
	err = ctx.SplitLaunch(func(sub *gctx.Context, idx int, arg any) error {
		return sub.Launch(func(w *gctx.Worker) error {
			if w.Index() == 0 {
				mu.Lock()
				sizes = append(sizes, sub.Size())
				mu.Unlock()
			}
			return nil
		})
	}, nil)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{4, 3}, sizes) // ceil(7/2)=4, floor=3
}

func TestSplitLaunchTooSmall(t *testing.T) {
	ctx, err := gctx.NewContext(1, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	err = ctx.SplitLaunch(func(sub *gctx.Context, idx int, arg any) error { return nil }, nil)
	require.ErrorIs(t, err, gctx.ErrTooSmall)
}

func TestNestedSplitLaunch(t *testing.T) {
	ctx, err := gctx.NewContext(8, nil)
	require.NoError(t, err)
	defer ctx.Exit()

	var leaves int32
	var recurse func(sub *gctx.Context) error
	recurse = func(sub *gctx.Context) error {
		if sub.Size() < 2 {
			atomic.AddInt32(&leaves, 1)
			return nil
		}
		return sub.SplitLaunch(func(s *gctx.Context, idx int, arg any) error {
			return recurse(s)
		}, nil)
	}
	require.NoError(t, recurse(ctx))
	require.EqualValues(t, 8, leaves)
}

func TestOptionParse(t *testing.T) {
	om := gctx.NewOptionMap()
	require.NoError(t, om.ParseOptions("d,f"))
	require.True(t, om.Get(gctx.Deterministic))
	require.True(t, om.Get(gctx.RandomFixedSeed))

	om2 := gctx.NewOptionMap()
	require.NoError(t, om2.ParseOptions("u, r"))
	require.False(t, om2.Get(gctx.Deterministic))
	require.False(t, om2.Get(gctx.RandomFixedSeed))

	err := om2.ParseOptions("x")
	require.ErrorIs(t, err, gctx.ErrUnknownOption)
}

func TestDeterministicOptionImpliesFixedSeed(t *testing.T) {
	om := gctx.NewOptionMap()
	om.Set(gctx.Deterministic, true)
	require.True(t, om.Get(gctx.RandomFixedSeed))
}

func firstDraw(t *testing.T, fixed bool) int64 {
	t.Helper()
	ctx, err := gctx.NewContext(2, nil)
	require.NoError(t, err)
	defer ctx.Exit()
	if fixed {
		ctx.Options().Set(gctx.RandomFixedSeed, true)
	}

	var draw int64
	err = ctx.Launch(func(w *gctx.Worker) error {
		if w.Index() == 0 {
			draw = w.RandomInt63()
		}
		return nil
	})
	require.NoError(t, err)
	return draw
}

func TestRandomFixedSeedReproducesSameFirstDraw(t *testing.T) {
	require.Equal(t, firstDraw(t, true), firstDraw(t, true))
}

func TestRandomFixedSeedFalseVariesAcrossContexts(t *testing.T) {
	require.NotEqual(t, firstDraw(t, false), firstDraw(t, false))
}
