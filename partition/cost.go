package partition

import "github.com/katalvlaran/scotch/sgraph"

// wgraphCost computes the separator load and per-part loads of a completed
// partition, the accounting step spec.md §4.4 runs once the recursion
// returns.
func wgraphCost(g *sgraph.Graph, part []int, frontier []int, k int) (fronload int64, partLoad []int64) {
	partLoad = make([]int64, k)
	for i, p := range part {
		if p < 0 || p >= k {
			continue
		}
		partLoad[p] += g.VertexWeight(g.Baseval + i)
	}
	for _, v := range frontier {
		fronload += g.VertexWeight(v)
	}
	return fronload, partLoad
}

// computeCut returns the total edge weight of every edge whose two
// endpoints landed in different, non-separator parts. Each undirected edge
// is counted once, from its lower-numbered endpoint; an edge touching the
// separator is not cut (its load is already accounted for in fronload).
func computeCut(g *sgraph.Graph, part []int) int64 {
	var cut int64
	for i := 0; i < g.VertCount; i++ {
		pi := part[i]
		if pi < 0 {
			continue
		}
		gv := g.Baseval + i
		nbrs := g.Neighbors(gv)
		ews := g.EdgeWeights(gv)
		for j, u := range nbrs {
			if u <= gv {
				continue
			}
			pu := part[u-g.Baseval]
			if pu < 0 || pu == pi {
				continue
			}
			w := int64(1)
			if ews != nil {
				w = ews[j]
			}
			cut += w
		}
	}
	return cut
}
