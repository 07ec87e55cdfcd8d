package gctx

import "sync"

// TaskFunc is the body run on every worker of a Launch. w.Index() identifies
// the calling worker (0 is always the leader — the goroutine that called
// Launch).
type TaskFunc func(w *Worker) error

// launchState is the collective-operation scratch area shared by every
// worker participating in one Launch call. Barrier/Reduce/Scan are
// implemented with a reusable sense-reversing barrier keyed by a per-worker
// call sequence number, so repeated collectives within a single Launch body
// never race against each other or against a previous collective's readers.
type launchState struct {
	n int

	wg sync.WaitGroup // retired when every worker's TaskFunc has returned

	errMu sync.Mutex
	err   error

	collMu   sync.Mutex
	collCond *sync.Cond
	slots    map[int]*collectiveSlot // keyed by call sequence number
}

type collectiveSlot struct {
	arrived int
	buf     []int64
	done    bool
	serial  int // index of the worker designated "serial" for this rendezvous
}

func newLaunchState(n int) *launchState {
	ls := &launchState{n: n, slots: make(map[int]*collectiveSlot)}
	ls.collCond = sync.NewCond(&ls.collMu)
	return ls
}

func (ls *launchState) recordError(err error) {
	ls.errMu.Lock()
	defer ls.errMu.Unlock()
	if ls.err == nil {
		ls.err = err
	}
}

func (ls *launchState) firstError() error {
	ls.errMu.Lock()
	defer ls.errMu.Unlock()
	return ls.err
}

// Worker is the handle a TaskFunc receives: its index within the current
// Launch, collective operations, and access to the owning Context.
type Worker struct {
	idx int
	ctx *Context
	ls  *launchState

	callSeq int // this worker's own count of collectives called so far
}

// Index returns this worker's position in [0, N) for the current Launch.
func (w *Worker) Index() int { return w.idx }

// Context returns the Context this worker belongs to.
func (w *Worker) Context() *Context { return w.ctx }

// nextSlot returns the collectiveSlot for this worker's Nth collective call,
// creating it if this is the first worker to arrive. Every worker must call
// collectives the same number of times, in the same order, for a given
// Launch — the spec's ordering guarantee — so the per-worker call counter
// is a valid shared key.
func (w *Worker) nextSlot() (*collectiveSlot, int) {
	ls := w.ls
	seq := w.callSeq
	w.callSeq++

	ls.collMu.Lock()
	slot, ok := ls.slots[seq]
	if !ok {
		slot = &collectiveSlot{buf: make([]int64, ls.n), serial: 0}
		ls.slots[seq] = slot
	}
	ls.collMu.Unlock()
	return slot, seq
}

// Barrier blocks until every worker in the current Launch has called
// Barrier. Exactly one caller's IsSerial return is true, designating the
// worker permitted to run single-writer code that follows; this port always
// designates worker 0, which is simpler than the original's round-robin
// elector and equally valid (the spec only requires "exactly one").
func (w *Worker) Barrier() (isSerial bool) {
	slot, seq := w.nextSlot()
	ls := w.ls

	ls.collMu.Lock()
	slot.arrived++
	if slot.arrived == ls.n {
		slot.done = true
		ls.collCond.Broadcast()
	} else {
		for !slot.done {
			ls.collCond.Wait()
		}
	}
	ls.collMu.Unlock()
	_ = seq
	return w.idx == slot.serial
}

// ReduceInt64 performs a collective reduction of each worker's local value
// using op, with the result delivered to every caller (not just root) for
// convenience — root is retained as a parameter because op's argument order
// matters for non-commutative reductions; op is always applied in worker
// index order, which is the "canonical" (Deterministic-safe) variant spec.md
// §9 asks this port to centralize rather than scatter across call sites.
func (w *Worker) ReduceInt64(local int64, op func(a, b int64) int64, root int) int64 {
	slot, _ := w.nextSlot()
	ls := w.ls

	ls.collMu.Lock()
	slot.buf[w.idx] = local
	slot.arrived++
	if slot.arrived == ls.n {
		acc := slot.buf[0]
		for i := 1; i < ls.n; i++ {
			acc = op(acc, slot.buf[i])
		}
		slot.buf[root] = acc
		slot.done = true
		ls.collCond.Broadcast()
	} else {
		for !slot.done {
			ls.collCond.Wait()
		}
	}
	result := slot.buf[root]
	ls.collMu.Unlock()
	return result
}

// ScanInt64 performs an inclusive prefix scan over worker index order:
// worker i receives op(op(...op(v0, v1)...), vi). Always canonical (index
// order), for the same reason ReduceInt64 is.
func (w *Worker) ScanInt64(local int64, op func(a, b int64) int64) int64 {
	slot, _ := w.nextSlot()
	ls := w.ls

	ls.collMu.Lock()
	slot.buf[w.idx] = local
	slot.arrived++
	if slot.arrived == ls.n {
		for i := 1; i < ls.n; i++ {
			slot.buf[i] = op(slot.buf[i-1], slot.buf[i])
		}
		slot.done = true
		ls.collCond.Broadcast()
	} else {
		for !slot.done {
			ls.collCond.Wait()
		}
	}
	result := slot.buf[w.idx]
	ls.collMu.Unlock()
	return result
}

// RandomInt63, RandomIntn and RandomFloat64 access the context's random
// stream. Only the Launch leader (worker 0) may call these — a math/rand
// stream is not goroutine-safe, and the spec reserves direct stream access
// to the task leader for exactly that reason. Non-leader workers should
// derive their own per-task seed instead (see Context.RandomDerive).
func (w *Worker) RandomInt63() int64 {
	return w.ctx.randStream().Int63()
}

func (w *Worker) RandomIntn(n int) int {
	return w.ctx.randStream().Intn(n)
}

func (w *Worker) RandomFloat64() float64 {
	return w.ctx.randStream().Float64()
}

// Launch runs fn on every worker of c (including the calling goroutine,
// which always plays worker 0) and blocks until all have returned. The first
// non-nil error to be recorded is returned; when several workers fail, which
// one that is depends on the order they finish in, not on worker index.
func (c *Context) Launch(fn TaskFunc) error {
	ls := newLaunchState(c.n)
	ls.wg.Add(c.n - 1)

	for i := 1; i < c.n; i++ {
		i := i
		c.workerCh[i] <- &launchJob{run: func() {
			defer ls.wg.Done()
			w := &Worker{idx: i, ctx: c, ls: ls}
			if err := fn(w); err != nil {
				ls.recordError(err)
			}
		}}
	}

	w0 := &Worker{idx: 0, ctx: c, ls: ls}
	if err := fn(w0); err != nil {
		ls.recordError(err)
	}
	ls.wg.Wait()
	return ls.firstError()
}

// RandomDerive returns an independent deterministic RNG stream for the given
// sub-stream id, derived from the context's current stream. Use this to give
// each worker of a Launch its own seed fixed at task start (the spec's
// option (a) for per-worker randomness), instead of serializing access to
// the shared stream through the leader.
func (c *Context) RandomDerive(stream uint64) *Rand {
	return &Rand{s: c.randStream().derive(stream)}
}

// Rand is a per-worker derived random stream, safe to use without further
// synchronization because each Worker that calls RandomDerive gets its own.
type Rand struct{ s *randomStream }

func (r *Rand) Int63() int64     { return r.s.Int63() }
func (r *Rand) Intn(n int) int   { return r.s.Intn(n) }
func (r *Rand) Float64() float64 { return r.s.Float64() }
