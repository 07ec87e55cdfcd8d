package partition

import (
	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/katalvlaran/scotch/strategy"
)

// vsepInstance is the strategy.ProblemInstance for one vertex-separator
// bisection of g: reach part weights near wantA/wantB within balrat, every
// vertex landing in part 0, part 1, or the separator (-1).
type vsepInstance struct {
	g      *sgraph.Graph
	wantA  int64
	wantB  int64
	balrat float64

	part []int // 0-based, length g.VertCount
}

func newVsepInstance(g *sgraph.Graph, wantA, wantB int64, balrat float64) *vsepInstance {
	p := make([]int, g.VertCount)
	for i := range p {
		p[i] = -1
	}
	return &vsepInstance{g: g, wantA: wantA, wantB: wantB, balrat: balrat, part: p}
}

func (v *vsepInstance) Feature(name string) (float64, bool) {
	switch name {
	case "vertnbr":
		return float64(v.g.VertCount), true
	case "edgenbr":
		return float64(len(v.g.Edgetab)), true
	}
	return 0, false
}

func (v *vsepInstance) Clone() strategy.ProblemInstance {
	cp := make([]int, len(v.part))
	copy(cp, v.part)
	return &vsepInstance{g: v.g, wantA: v.wantA, wantB: v.wantB, balrat: v.balrat, part: cp}
}

func (v *vsepInstance) Adopt(other strategy.ProblemInstance) {
	o := other.(*vsepInstance)
	copy(v.part, o.part)
}

// loads returns the current vertex-weight sum of part 0, part 1, and the
// separator.
func (v *vsepInstance) loads() (a, b, s int64) {
	for i, p := range v.part {
		w := v.g.VertexWeight(v.g.Baseval + i)
		switch p {
		case 0:
			a += w
		case 1:
			b += w
		default:
			s += w
		}
	}
	return
}

func (v *vsepInstance) imbalance() float64 {
	a, b, _ := v.loads()
	diffA := a - v.wantA
	if diffA < 0 {
		diffA = -diffA
	}
	diffB := b - v.wantB
	if diffB < 0 {
		diffB = -diffB
	}
	denom := v.wantA
	if v.wantB > denom {
		denom = v.wantB
	}
	if denom == 0 {
		denom = 1
	}
	da, db := float64(diffA)/float64(denom), float64(diffB)/float64(denom)
	if da > db {
		return da
	}
	return db
}

func (v *vsepInstance) valid() bool { return v.imbalance() <= v.balrat }

// Better implements the comparator §4.4 asks for: valid balance beats
// invalid; among valid, lower separator weight wins; ties break on smaller
// imbalance.
func (v *vsepInstance) Better(other strategy.ProblemInstance) bool {
	o := other.(*vsepInstance)
	va, oa := v.valid(), o.valid()
	if va != oa {
		return va
	}
	_, _, vs := v.loads()
	_, _, os := o.loads()
	if vs != os {
		return vs < os
	}
	return v.imbalance() < o.imbalance()
}

// greedyGraphGrowing is the built-in "gg" vertex-separator method: grow
// part 0 by BFS from the highest-degree vertex until its weight reaches
// wantA, assign everything else to part 1, then peel any part-1 vertex
// touching part 0 into the separator until no part0/part1 edge remains.
func greedyGraphGrowing(_ *gctx.Context, inst strategy.ProblemInstance, _ any) error {
	v := inst.(*vsepInstance)
	g := v.g
	n := g.VertCount
	for i := range v.part {
		v.part[i] = -1
	}
	if n == 0 {
		return nil
	}

	seed, bestDeg := 0, -1
	for i := 0; i < n; i++ {
		if d := g.Degree(g.Baseval + i); d > bestDeg {
			bestDeg, seed = d, i
		}
	}

	visited := make([]bool, n)
	visited[seed] = true
	queue := []int{seed}
	var weightA int64
	for len(queue) > 0 && weightA < v.wantA {
		cur := queue[0]
		queue = queue[1:]
		v.part[cur] = 0
		weightA += g.VertexWeight(g.Baseval + cur)
		for _, u := range g.Neighbors(g.Baseval + cur) {
			ui := u - g.Baseval
			if !visited[ui] {
				visited[ui] = true
				queue = append(queue, ui)
			}
		}
	}
	for i := 0; i < n; i++ {
		if v.part[i] == -1 {
			v.part[i] = 1
		}
	}

	for {
		changed := false
		for i := 0; i < n; i++ {
			if v.part[i] != 1 {
				continue
			}
			for _, u := range g.Neighbors(g.Baseval + i) {
				if v.part[u-g.Baseval] == 0 {
					v.part[i] = -1
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	return nil
}

// DefaultTable returns a vertex-separator strategy table carrying the
// built-in greedy-graph-growing method "gg", the only leaf method this
// package implements directly; a caller's strategy text may still reference
// additional methods it registers itself through the same Table.
func DefaultTable() *strategy.Table {
	t := strategy.NewTable("vsep")
	t.AddMethod(&strategy.MethodEntry{Name: "gg", Fn: greedyGraphGrowing})
	t.AddFeature("vertnbr")
	t.AddFeature("edgenbr")
	return t
}

// DefaultNode returns the trivial strategy tree "gg()" — the default
// vertex-separator strategy used when a caller supplies none.
func DefaultNode() *strategy.Node {
	return &strategy.Node{Tag: strategy.TagMethod, Method: "gg"}
}
