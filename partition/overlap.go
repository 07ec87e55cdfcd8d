package partition

import (
	"sort"

	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/katalvlaran/scotch/strategy"
)

// PartitionWithOverlap bisects g exactly as Partition does, but keeps every
// separator vertex in the result instead of resolving it into a part, and
// additionally records, for every separator vertex, which parts it
// neighbors — the "overlap" a caller needs to extend each part's induced
// subgraph across the separator it borders.
func PartitionWithOverlap(g *sgraph.Graph, K int, table *strategy.Table, node *strategy.Node, ctx *gctx.Context, balrat float64) (*Result, error) {
	res, err := partitionImpl(g, K, table, node, ctx, balrat, false)
	if err != nil {
		return nil, err
	}
	res.Overlap = make([][]int, len(res.Frontier))
	for i, v := range res.Frontier {
		seen := make(map[int]bool)
		var parts []int
		for _, u := range g.Neighbors(v) {
			p := res.Part[u-g.Baseval]
			if p >= 0 && !seen[p] {
				seen[p] = true
				parts = append(parts, p)
			}
		}
		sort.Ints(parts)
		res.Overlap[i] = parts
	}
	return res, nil
}
