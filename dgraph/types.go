package dgraph

import (
	"github.com/katalvlaran/scotch/comm"
	"github.com/katalvlaran/scotch/sgraph"
)

// Graph is the local process's view of a distributed graph: an
// sgraph.Graph whose vertex range is local vertices followed by ghosts
// (vertices owned elsewhere but adjacent to a local vertex), plus the
// bookkeeping needed to keep ghost values in sync via SyncGhosts.
type Graph struct {
	*sgraph.Graph

	Dist     *Distribution
	Comm     *comm.Comm
	ProcRank int

	// VnohNnd is the Baseval-relative boundary between local vertices
	// ([Baseval, VnohNnd)) and ghosts ([VnohNnd, VertexEnd())), following
	// the vnohnnd field named in spec.md §3.
	VnohNnd int

	// GhostGlobal maps a ghost's 0-based position (ghost local index 0 is
	// vertex number VnohNnd) to its global vertex number.
	GhostGlobal []int

	// NeighborProcs is the sorted, de-duplicated list of processes owning
	// at least one ghost referenced by this process's local adjacency.
	NeighborProcs []int

	// requestOrder[proc] is the sorted list of global vertex numbers this
	// process requests from proc during SyncGhosts; requestSlot[proc][i]
	// is the corresponding ghost local index (0-based) to fill with the
	// i-th reply.
	requestOrder map[int][]int
	requestSlot  map[int][]int
}

// LocalVertexCount is the number of vertices owned by this process (the
// non-ghost prefix of the embedded graph).
func (g *Graph) LocalVertexCount() int { return g.VnohNnd - g.Baseval }

// LocalVeloSum sums vertex weights over local vertices only; the embedded
// sgraph.Graph's VeloSum field also counts ghost placeholders and must not
// be used once ghosts are present.
func (g *Graph) LocalVeloSum() int64 {
	var sum int64
	for v := g.Baseval; v < g.VnohNnd; v++ {
		sum += g.VertexWeight(v)
	}
	return sum
}

// GlobalOf translates a local (Baseval-relative) vertex number, local or
// ghost, into its global vertex number.
func (g *Graph) GlobalOf(v int) int {
	if v < g.VnohNnd {
		lo, _ := g.Dist.LocalRange(g.ProcRank)
		return lo + (v - g.Baseval)
	}
	return g.GhostGlobal[v-g.VnohNnd]
}
