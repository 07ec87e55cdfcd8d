package dgraph

import (
	"sort"

	"github.com/katalvlaran/scotch/comm"
	"github.com/katalvlaran/scotch/sgraph"
)

// BuildLocal constructs this process's Graph from its local adjacency.
// verttab/vendtab follow sgraph's conventions for the local vertex range;
// edgetabGlobal holds the same adjacency but with GLOBAL (Baseval-relative)
// vertex numbers as endpoints — neighbors outside this process's own range
// become ghosts, numbered deterministically in ascending global order after
// the local vertices. velotab/edlotab, if given, cover only the local
// vertices/edges; ghost vertex weights are left as zero placeholders until
// a caller runs SyncGhosts over a weight array.
func BuildLocal(c *comm.Comm, dist *Distribution, verttab, vendtab, edgetabGlobal []int, velotab, edlotab []int64) (*Graph, error) {
	rank := c.Rank()
	lo, hi := dist.LocalRange(rank)
	localCount := hi - lo

	ghostSet := make(map[int]struct{})
	for _, gv := range edgetabGlobal {
		if gv < lo || gv >= hi {
			ghostSet[gv] = struct{}{}
		}
	}
	ghostGlobal := make([]int, 0, len(ghostSet))
	for gv := range ghostSet {
		ghostGlobal = append(ghostGlobal, gv)
	}
	sort.Ints(ghostGlobal)

	ghostIndex := make(map[int]int, len(ghostGlobal))
	for i, gv := range ghostGlobal {
		ghostIndex[gv] = i
	}

	edgetab := make([]int, len(edgetabGlobal))
	base := dist.Baseval
	for i, gv := range edgetabGlobal {
		if gv >= lo && gv < hi {
			edgetab[i] = base + (gv - lo)
		} else {
			edgetab[i] = base + localCount + ghostIndex[gv]
		}
	}

	vertCount := localCount + len(ghostGlobal)
	var extVelo []int64
	if velotab != nil {
		extVelo = make([]int64, vertCount)
		copy(extVelo, velotab)
	}
	var extEdlo []int64
	if edlotab != nil {
		extEdlo = edlotab
	}

	// Ghost vertices get empty adjacency ranges so the arrays cover vertCount.
	extVert, extVend := verttab, vendtab
	if n := len(ghostGlobal); n > 0 && len(verttab) > 0 {
		fill := verttab[len(verttab)-1]
		extVert = append(append([]int(nil), verttab...), make([]int, n)...)
		for i := len(verttab); i < len(extVert); i++ {
			extVert[i] = fill
		}
		if vendtab != nil {
			extVend = append(append([]int(nil), vendtab...), make([]int, n)...)
			for i := len(vendtab); i < len(extVend); i++ {
				extVend[i] = fill
			}
		}
	}

	g, err := sgraph.BuildHalo(base, vertCount, localCount, extVert, extVend, edgetab, extVelo, extEdlo)
	if err != nil {
		return nil, err
	}

	requestOrder := make(map[int][]int)
	requestSlot := make(map[int][]int)
	neighborSet := make(map[int]struct{})
	for i, gv := range ghostGlobal {
		owner, ok := dist.Owner(gv)
		if !ok {
			return nil, ErrUnknownGlobalVertex
		}
		requestOrder[owner] = append(requestOrder[owner], gv)
		requestSlot[owner] = append(requestSlot[owner], i)
		neighborSet[owner] = struct{}{}
	}
	neighbors := make([]int, 0, len(neighborSet))
	for p := range neighborSet {
		neighbors = append(neighbors, p)
	}
	sort.Ints(neighbors)

	dg := &Graph{
		Graph:         g,
		Dist:          dist,
		Comm:          c,
		ProcRank:      rank,
		VnohNnd:       base + localCount,
		GhostGlobal:   ghostGlobal,
		NeighborProcs: neighbors,
		requestOrder:  requestOrder,
		requestSlot:   requestSlot,
	}
	return dg, nil
}
