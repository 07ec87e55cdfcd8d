// Package dgraph extends sgraph with the distributed-graph attributes the
// coarsening, partitioning, and ordering engines need: a communicator,
// per-process vertex distribution, and a ghost region appended after the
// locally-owned vertices (spec.md §3, "Distributed graph" and "Halo (sub)mesh
// / halo graph").
//
// A Graph's embedded sgraph.Graph spans local vertices *and* ghosts in one
// contiguous Baseval-relative range: indices below VnohNnd are local,
// indices at or above it are ghosts. This mirrors the halo-mesh convention
// in the original library rather than inventing a separate ghost-array
// type, and lets every sgraph accessor (Neighbors, Degree, VertexWeight)
// work unmodified on either region.
package dgraph
