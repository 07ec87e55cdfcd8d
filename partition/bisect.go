package partition

import (
	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/katalvlaran/scotch/strategy"
)

// Partition assigns every vertex of g to part[v] in [0, K) by recursive
// bisection, per spec.md §4.4. Every separator vertex the underlying
// vertex-separator strategy produces at each level is resolved into one of
// its two adjacent parts before the call returns, so Part never carries a
// -1 and Frontier is always empty — the "pure partition" spec.md §3 and §8
// scenario 1 describe. Use PartitionWithOverlap for the variant that keeps
// the separator. table/node select the vertex-separator strategy invoked
// at every level; a nil node defaults to DefaultNode() against
// DefaultTable(). ctx, if non-nil, is split at every non-terminal level to
// recurse concurrently (§4.1); a nil ctx or one too small to split runs
// the recursion sequentially instead.
func Partition(g *sgraph.Graph, K int, table *strategy.Table, node *strategy.Node, ctx *gctx.Context, balrat float64) (*Result, error) {
	return partitionImpl(g, K, table, node, ctx, balrat, true)
}

// partitionImpl is the shared bisection entry point behind both Partition
// (pure = true) and PartitionWithOverlap (pure = false).
func partitionImpl(g *sgraph.Graph, K int, table *strategy.Table, node *strategy.Node, ctx *gctx.Context, balrat float64, pure bool) (*Result, error) {
	if K < 1 {
		return nil, ErrInvalidK
	}
	if table == nil {
		table = DefaultTable()
	}
	if node == nil {
		node = DefaultNode()
	}

	part := make([]int, g.VertCount)
	for i := range part {
		part[i] = -1
	}
	datum := &recursionDatum{origBase: g.Baseval, part: part}

	backmap := make([]int, g.VertCount)
	for i := range backmap {
		backmap[i] = g.Baseval + i
	}

	if K > 1 {
		if err := bisect(g, backmap, 0, K, table, node, ctx, balrat, datum, pure); err != nil {
			return nil, err
		}
	} else {
		for _, gv := range backmap {
			datum.writeLeaf(gv, 0)
		}
	}

	res := &Result{Part: datum.part, Frontier: datum.frontier}
	res.FronLoad, res.PartLoad = wgraphCost(g, res.Part, res.Frontier, K)
	res.Cut = computeCut(g, res.Part)
	return res, nil
}

// bisect is one level of the recursion: g is the current subgraph (already
// induced by the caller except at the top level), backmap translates g's
// 0-based vertex index to the original graph's (Baseval-relative) vertex
// number, domnnum is this subdomain's first part number, d is how many of
// the K final parts this subgraph must still be divided into, and pure
// selects whether separator vertices get resolved into a part (Partition)
// or left in the frontier (PartitionWithOverlap).
func bisect(g *sgraph.Graph, backmap []int, domnnum, d int, table *strategy.Table, node *strategy.Node, ctx *gctx.Context, balrat float64, datum *recursionDatum, pure bool) error {
	if d == 1 {
		for _, gv := range backmap {
			datum.writeLeaf(gv, domnnum)
		}
		return nil
	}

	halfA := d / 2
	halfB := d - halfA
	total := g.VeloSum
	wantA := total * int64(halfA) / int64(d)
	wantB := total - wantA

	inst := newVsepInstance(g, wantA, wantB, balrat)
	if err := strategy.Dispatch(ctx, table, node, inst); err != nil {
		return err
	}

	countA, countB := 0, 0
	for _, p := range inst.part {
		switch p {
		case 0:
			countA++
		case 1:
			countB++
		}
	}
	if countA == 0 || countB == 0 {
		// Degenerate separator (step 5): the chosen strategy left one side
		// empty. Fall back to a deterministic index split so the recursion
		// always makes forward progress instead of retrying the same
		// strategy against the same input forever.
		n := g.VertCount
		for i := 0; i < n; i++ {
			if i < n/2 {
				inst.part[i] = 0
			} else {
				inst.part[i] = 1
			}
		}
	}

	if pure {
		resolveSeparator(g, inst.part)
	}

	if d == 2 {
		for i, p := range inst.part {
			gv := backmap[i]
			switch p {
			case 0:
				datum.writeLeaf(gv, domnnum)
			case 1:
				datum.writeLeaf(gv, domnnum+1)
			default:
				datum.markFrontier(gv)
			}
		}
		return nil
	}

	// Separator vertices at a non-terminal level stay -1 in the global part
	// array (already their initial value) but are recorded in the global
	// frontier now. When pure, resolveSeparator already turned every -1
	// into 0 or 1 above, so this loop never fires and every vertex instead
	// flows into list0/list1 below.
	for i, p := range inst.part {
		if p == -1 {
			datum.markFrontier(backmap[i])
		}
	}

	var list0, list1 []int
	for i, p := range inst.part {
		switch p {
		case 0:
			list0 = append(list0, g.Baseval+i)
		case 1:
			list1 = append(list1, g.Baseval+i)
		}
	}

	subg0, map0, err := g.InduceList(list0)
	if err != nil {
		return err
	}
	subg1, map1, err := g.InduceList(list1)
	if err != nil {
		return err
	}
	backmap0 := make([]int, len(map0))
	for i, lv := range map0 {
		backmap0[i] = backmap[lv-g.Baseval]
	}
	backmap1 := make([]int, len(map1))
	for i, lv := range map1 {
		backmap1[i] = backmap[lv-g.Baseval]
	}

	recurse0 := func(sub *gctx.Context) error {
		return bisect(subg0, backmap0, domnnum, halfA, table, node, sub, balrat, datum, pure)
	}
	recurse1 := func(sub *gctx.Context) error {
		return bisect(subg1, backmap1, domnnum+halfA, halfB, table, node, sub, balrat, datum, pure)
	}

	if ctx != nil {
		err := ctx.SplitLaunch(func(sub *gctx.Context, subIndex int, _ any) error {
			if subIndex == 0 {
				return recurse0(sub)
			}
			return recurse1(sub)
		}, nil)
		if err != gctx.ErrTooSmall {
			return err
		}
	}
	if err := recurse0(ctx); err != nil {
		return err
	}
	return recurse1(ctx)
}
