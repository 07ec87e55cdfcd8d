// Package sgraph implements the shared-memory graph/mesh container the
// scotch engines operate on: CSR-like adjacency with an optional end-array
// for non-compact storage, optional vertex/edge weights, and a configurable
// base index (0 or 1).
//
// Graphs are immutable once built: engines consume them read-only and write
// results into caller-provided containers (part arrays, orders, coarse
// graphs), never mutating the input. Every array is baseval-relative, the
// same convention the original library used to support both C (base 0) and
// Fortran (base 1) callers; this port keeps the convention as plain index
// arithmetic on typed slices rather than a hidden "~0 sentinel" or negative
// adjustment trick (spec.md §9's DESIGN NOTES).
package sgraph
