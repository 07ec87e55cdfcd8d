// Package gctx provides the execution context shared by every scotch engine:
// a fixed-size worker pool, collective operations (barrier/reduce/scan), a
// deterministic pseudo-random stream, a typed option map, and a
// context-splitting primitive that lends a subset of workers to a concurrent
// subtask.
//
// Scheduling model: parallel workers with explicit collective points. There is
// no task queue; suspension happens only inside Barrier, ReduceInt64,
// ScanInt64, and (implicitly) while a worker's goroutine waits for its next
// Launch. Cancellation mid-task is not supported — an engine either runs a
// Launch to completion or the whole call reports failure.
//
// Unlike the C original this is ported from, workers here are goroutines
// rather than OS threads: NewContext starts N-1 persistent worker goroutines,
// each parked on its own channel until Launch (or SplitLaunch) hands it a
// job, and Exit closes those channels. The *observable* contract — N logical workers,
// collectives ordered identically across them, Split dividing the pool in
// two without asking the OS — is unchanged.
//
// Options:
//
//	RandomFixedSeed — every Context with this set reproduces the same
//	                  pseudo-random sequence across runs.
//	Deterministic   — forces RandomFixedSeed and additionally requires every
//	                  engine-level reduction to use the canonical (index-order)
//	                  variant; Reduce/Scan in this package are always
//	                  canonical, so no extra bookkeeping is needed here — see
//	                  DESIGN.md for the open-question resolution.
package gctx
