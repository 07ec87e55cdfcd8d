package comm_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/scotch/comm"
	"github.com/stretchr/testify/require"
)

// runWorld spawns one goroutine per rank calling fn(comms[rank]), collecting
// each goroutine's error.
func runWorld(t *testing.T, n int, fn func(c *comm.Comm) error) []error {
	t.Helper()
	comms, err := comm.NewWorld(n)
	require.NoError(t, err)
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for r := 0; r < n; r++ {
		r := r
		go func() {
			defer wg.Done()
			errs[r] = fn(comms[r])
		}()
	}
	wg.Wait()
	return errs
}

func requireAllNil(t *testing.T, errs []error) {
	t.Helper()
	for i, err := range errs {
		require.NoErrorf(t, err, "rank %d", i)
	}
}

func TestSendRecvPointToPoint(t *testing.T) {
	errs := runWorld(t, 2, func(c *comm.Comm) error {
		if c.Rank() == 0 {
			return c.Send(1, 42, []int64{7, 8, 9})
		}
		_, payload, err := c.Recv(0, 42)
		if err != nil {
			return err
		}
		require.Equal(t, []int64{7, 8, 9}, payload)
		return nil
	})
	requireAllNil(t, errs)
}

func TestBcastReachesEveryRank(t *testing.T) {
	const n = 4
	results := make([][]int64, n)
	var mu sync.Mutex
	errs := runWorld(t, n, func(c *comm.Comm) error {
		var in []int64
		if c.Rank() == 2 {
			in = []int64{100, 200}
		}
		out, err := c.Bcast(2, in)
		if err != nil {
			return err
		}
		mu.Lock()
		results[c.Rank()] = out
		mu.Unlock()
		return nil
	})
	requireAllNil(t, errs)
	for r := 0; r < n; r++ {
		require.Equal(t, []int64{100, 200}, results[r])
	}
}

func TestBarrierReleasesEveryRank(t *testing.T) {
	const n = 5
	var counter int64
	var mu sync.Mutex
	errs := runWorld(t, n, func(c *comm.Comm) error {
		mu.Lock()
		counter++
		mu.Unlock()
		if err := c.Barrier(); err != nil {
			return err
		}
		// By the time Barrier returns, every rank must have incremented.
		mu.Lock()
		got := counter
		mu.Unlock()
		require.Equal(t, int64(n), got)
		return nil
	})
	requireAllNil(t, errs)
}

func TestAllReduceSumMatchesOnEveryRank(t *testing.T) {
	const n = 4
	results := make([]int64, n)
	errs := runWorld(t, n, func(c *comm.Comm) error {
		sum, err := c.AllReduceSum(int64(c.Rank() + 1))
		if err != nil {
			return err
		}
		results[c.Rank()] = sum
		return nil
	})
	requireAllNil(t, errs)
	for r := 0; r < n; r++ {
		require.Equal(t, int64(1+2+3+4), results[r])
	}
}

func TestAllGatherOrdersByRank(t *testing.T) {
	const n = 3
	results := make([][]int64, n)
	errs := runWorld(t, n, func(c *comm.Comm) error {
		out, err := c.AllGather(int64(c.Rank() * 10))
		if err != nil {
			return err
		}
		results[c.Rank()] = out
		return nil
	})
	requireAllNil(t, errs)
	for r := 0; r < n; r++ {
		require.Equal(t, []int64{0, 10, 20}, results[r])
	}
}

func TestAllToAllvExchangesPerRankPayloads(t *testing.T) {
	const n = 3
	results := make([][][]int64, n)
	errs := runWorld(t, n, func(c *comm.Comm) error {
		send := make([][]int64, n)
		for dst := 0; dst < n; dst++ {
			send[dst] = []int64{int64(c.Rank()), int64(dst)}
		}
		recv, err := c.AllToAllv(send)
		if err != nil {
			return err
		}
		results[c.Rank()] = recv
		return nil
	})
	requireAllNil(t, errs)
	for dst := 0; dst < n; dst++ {
		for src := 0; src < n; src++ {
			require.Equal(t, []int64{int64(src), int64(dst)}, results[dst][src])
		}
	}
}

func TestAllToAllvRejectsWrongLength(t *testing.T) {
	errs := runWorld(t, 2, func(c *comm.Comm) error {
		_, err := c.AllToAllv([][]int64{{1}})
		return err
	})
	for _, err := range errs {
		require.ErrorIs(t, err, comm.ErrLengthMismatch)
	}
}
