// Package order implements recursive nested-dissection ordering, per
// spec.md §4.5: at every level, derive a vertex separator over the current
// subgraph, recurse into the two halves over a split context, and order the
// separator itself through a pluggable leaf/separator ordering strategy.
// The halo-mesh distinction spec.md draws between element and node
// vertices collapses here onto the already-built sgraph.Graph/dgraph.Graph
// halo model: both already express "local vertices plus a relaxed-symmetry
// halo region," so this package orders directly against an sgraph.Graph
// rather than introducing a parallel Mesh type.
package order
