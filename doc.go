// Package scotch is a library for static mapping, graph partitioning, and
// sparse-matrix ordering on large graphs and meshes.
//
// Overview:
//
//   - Scientific-computing workloads — domain decomposition, sparse solver
//     reordering, process placement on hierarchical architectures — all reduce
//     to the same shape: recursive divide-and-conquer over progressively
//     smaller (sub)graphs, driven by a strategy tree, on top of a thread/context
//     model. scotch implements that shape once and specializes it three ways:
//     partitioning (gctx + partition), ordering (gctx + order), and the
//     coarsening engine both of them rest on (coarsen).
//
// Subpackages:
//
//	gctx/      — worker-thread pool, pseudo-random stream, typed option map,
//	             context-splitting primitive.
//	strategy/  — strategy tree (Concat/Cond/Select/Method/Empty), method
//	             tables, textual parser, dispatcher.
//	sgraph/    — graph/mesh containers: CSR adjacency, baseval, weights.
//	dgraph/    — distributed graph: communicator, vertex distribution, ghosts.
//	comm/      — in-process stand-in for an MPI communicator.
//	coarsen/   — distributed coarsening and matching, with folding.
//	partition/ — recursive-bisection-with-overlap (vertex-separator K-way).
//	order/     — distributed nested-dissection ordering.
//
// Data flow, for a typical partitioning call:
//
//	textual strategy -> parsed strategy tree
//	input graph + context -> engine dispatcher
//	-> {coarsen -> recurse on coarse graph -> uncoarsen/refine}
//	   or {bisect -> split context -> recurse on each part}
//
// All engines write results into a caller-provided result container; none
// mutate the input graph.
//
// Thread safety:
//
//   - Engines are safe to call concurrently on distinct gctx.Context values.
//   - A single gctx.Context must not be driven by two concurrent top-level
//     calls; its split-launch primitive is how an engine obtains concurrency
//     within one call.
package scotch
