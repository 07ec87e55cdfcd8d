package order

import (
	"sort"

	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/katalvlaran/scotch/strategy"
)

// Options configures one Order call. Every *Table/*Node pair defaults when
// left nil: VsepTable/VsepNode to DefaultVsepTable/DefaultVsepNode,
// LeafTable/LeafNode to DefaultLeafTable/DefaultLeafNode, and
// SepTable/SepNode to whatever LeafTable/LeafNode resolved to — spec.md
// §4.5 names the leaf and separator ordering strategies separately, but
// both share the identical "fill this inverse-permutation slice" contract,
// so a caller that wants them to differ simply sets SepTable/SepNode
// explicitly.
type Options struct {
	VsepTable *strategy.Table
	VsepNode  *strategy.Node
	LeafTable *strategy.Table
	LeafNode  *strategy.Node
	SepTable  *strategy.Table
	SepNode   *strategy.Node
	Ctx       *gctx.Context
	Balrat    float64
}

func (o Options) withCtx(ctx *gctx.Context) Options {
	o.Ctx = ctx
	return o
}

// Order computes a nested-dissection ordering of g, per spec.md §4.5.
func Order(g *sgraph.Graph, opts Options) (*Ordering, error) {
	if g.VertCount == 0 {
		return nil, ErrEmptyGraph
	}
	if opts.VsepTable == nil {
		opts.VsepTable = DefaultVsepTable()
	}
	if opts.VsepNode == nil {
		opts.VsepNode = DefaultVsepNode()
	}
	if opts.LeafTable == nil {
		opts.LeafTable = DefaultLeafTable()
	}
	if opts.LeafNode == nil {
		opts.LeafNode = DefaultLeafNode()
	}
	if opts.SepTable == nil {
		opts.SepTable = opts.LeafTable
	}
	if opts.SepNode == nil {
		opts.SepNode = opts.LeafNode
	}
	if opts.Balrat <= 0 {
		opts.Balrat = 0.2
	}

	n := g.VertCount
	ord := &Ordering{Peritab: make([]int, n)}
	backmap := make([]int, n)
	for i := range backmap {
		backmap[i] = g.Baseval + i
	}

	root, err := orderRecurse(g, backmap, 0, opts, ord)
	if err != nil {
		return nil, err
	}
	ord.Root = root
	return ord, nil
}

// orderRecurse implements one recursive call of spec.md §4.5's procedure,
// preceded by a disconnected-components check: a subgraph with more than
// one connected component becomes a DiCo node whose children order each
// component independently, before any vertex separator is considered.
func orderRecurse(g *sgraph.Graph, backmap []int, ordenum int, opts Options, ord *Ordering) (*ColumnBlock, error) {
	n := g.VertCount

	if comps := connectedComponents(g); len(comps) > 1 {
		return orderDiCo(g, backmap, ordenum, opts, ord, comps)
	}

	inst := newVsepInstance(g, opts.Balrat)
	if err := strategy.Dispatch(opts.Ctx, opts.VsepTable, opts.VsepNode, inst); err != nil {
		return nil, err
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
		// Degenerate split (step 2): this subtree is a leaf.
		leafInst := &orderInstance{g: g, backmap: backmap, slice: ord.Peritab[ordenum : ordenum+n]}
		if err := strategy.Dispatch(opts.Ctx, opts.LeafTable, opts.LeafNode, leafInst); err != nil {
			return nil, err
		}
		return ord.newLeaf(ordenum, n), nil
	}

	var listA, listB, listSep []int
	for i, p := range inst.part {
		gv := g.Baseval + i
		switch p {
		case 0:
			listA = append(listA, gv)
		case 1:
			listB = append(listB, gv)
		default:
			listSep = append(listSep, gv)
		}
	}

	subA, mapA, err := g.InduceList(listA)
	if err != nil {
		return nil, err
	}
	subB, mapB, err := g.InduceList(listB)
	if err != nil {
		return nil, err
	}
	backmapA := translate(backmap, mapA, g.Baseval)
	backmapB := translate(backmap, mapB, g.Baseval)

	node := ord.newInternal(CblkNedI, ordenum, n, 3)

	// A nested-dissection ordering ranks the separator after both halves it
	// isolates, so it occupies this subtree's last len(listSep) ranks.
	sepOrdenum := ordenum + len(listA) + len(listB)
	if len(listSep) > 0 {
		subSep, mapSep, err := g.InduceList(listSep)
		if err != nil {
			return nil, err
		}
		backmapSep := translate(backmap, mapSep, g.Baseval)
		sepInst := &orderInstance{g: subSep, backmap: backmapSep, slice: ord.Peritab[sepOrdenum : sepOrdenum+len(listSep)]}
		if err := strategy.Dispatch(opts.Ctx, opts.SepTable, opts.SepNode, sepInst); err != nil {
			return nil, err
		}
	}
	node.Children[2] = ord.newLeaf(sepOrdenum, len(listSep))

	ordenumA := ordenum
	ordenumB := ordenum + len(listA)

	runA := func(sub *gctx.Context) error {
		child, err := orderRecurse(subA, backmapA, ordenumA, opts.withCtx(sub), ord)
		if err != nil {
			return err
		}
		ord.mu.Lock()
		node.Children[0] = child
		ord.mu.Unlock()
		return nil
	}
	runB := func(sub *gctx.Context) error {
		child, err := orderRecurse(subB, backmapB, ordenumB, opts.withCtx(sub), ord)
		if err != nil {
			return err
		}
		ord.mu.Lock()
		node.Children[1] = child
		ord.mu.Unlock()
		return nil
	}

	if opts.Ctx != nil {
		err := opts.Ctx.SplitLaunch(func(sub *gctx.Context, subIndex int, _ any) error {
			if subIndex == 0 {
				return runA(sub)
			}
			return runB(sub)
		}, nil)
		if err != gctx.ErrTooSmall {
			if err != nil {
				return nil, err
			}
			return node, nil
		}
	}
	if err := runA(opts.Ctx); err != nil {
		return nil, err
	}
	if err := runB(opts.Ctx); err != nil {
		return nil, err
	}
	return node, nil
}

// newLeaf records a terminal column block under the order lock and returns
// it: every leaf counts once toward both CblkCount and TreeNodeCount.
func (ord *Ordering) newLeaf(ordenum, n int) *ColumnBlock {
	ord.mu.Lock()
	ord.CblkCount++
	ord.TreeNodeCount++
	ord.mu.Unlock()
	return &ColumnBlock{Tag: CblkLeaf, Ordenum: ordenum, VnodCount: n}
}

// newInternal records a non-leaf column block (NedI or DiCo) under the
// order lock: it counts once toward TreeNodeCount but not CblkCount, since
// spec.md §9 defines cblk_count as the number of LEAF column blocks
// reachable from the root.
func (ord *Ordering) newInternal(tag ColumnBlockTag, ordenum, n, numChildren int) *ColumnBlock {
	ord.mu.Lock()
	ord.TreeNodeCount++
	ord.mu.Unlock()
	return &ColumnBlock{Tag: tag, Ordenum: ordenum, VnodCount: n, Children: make([]*ColumnBlock, numChildren)}
}

// connectedComponents partitions g's vertices into connected components via
// BFS, each returned as a Baseval-relative vertex list in ascending order
// (the order InduceList requires).
func connectedComponents(g *sgraph.Graph) [][]int {
	n := g.VertCount
	visited := make([]bool, n)
	var comps [][]int
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		var comp []int
		queue := []int{s}
		visited[s] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, g.Baseval+cur)
			for _, u := range g.Neighbors(g.Baseval + cur) {
				ui := u - g.Baseval
				if !visited[ui] {
					visited[ui] = true
					queue = append(queue, ui)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}

// orderDiCo builds a DiCo column block whose children independently order
// each connected component of g, one after another in the inverse
// permutation (spec.md §4.5 and the DiCo flag semantics in the glossary).
func orderDiCo(g *sgraph.Graph, backmap []int, ordenum int, opts Options, ord *Ordering, comps [][]int) (*ColumnBlock, error) {
	node := ord.newInternal(CblkDiCo, ordenum, g.VertCount, len(comps))

	cursor := ordenum
	for i, comp := range comps {
		sub, mp, err := g.InduceList(comp)
		if err != nil {
			return nil, err
		}
		subBackmap := translate(backmap, mp, g.Baseval)
		child, err := orderRecurse(sub, subBackmap, cursor, opts, ord)
		if err != nil {
			return nil, err
		}
		node.Children[i] = child
		cursor += len(comp)
	}
	return node, nil
}

// translate maps an InduceList back-map (induced-local index -> parent's
// 0-based vertex index) through parent's own backmap, to get the original
// problem's global vertex number for each induced-local index.
func translate(parentBackmap, childMap []int, parentBaseval int) []int {
	out := make([]int, len(childMap))
	for i, pv := range childMap {
		out[i] = parentBackmap[pv-parentBaseval]
	}
	return out
}
