// Package coarsen implements distributed coarsening: matching fine
// vertices into multinodes, assembling the coarse adjacency, and folding
// the result onto fewer processes. It is grounded on the teacher's
// prim_kruskal package for the greedy, weight-ordered selection discipline
// (heavy-edge matching is a one-pass greedy maximum-weight-adjacent pick,
// the same shape as Kruskal's edge-weight ordering) and on dgraph/comm for
// the cross-process negotiation the original protocol requires.
package coarsen
