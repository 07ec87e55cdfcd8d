package order

import (
	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/katalvlaran/scotch/strategy"
)

// vsepInstance is the strategy.ProblemInstance for one nested-dissection
// bisection: an even (1:1) weight split of g into part 0, part 1, and a
// separator, within balrat. Unlike partition's vsepInstance (which targets
// an arbitrary d/2 : d-d/2 split to account for a non-power-of-two K), an
// ordering bisection always targets an even split, since every leaf of the
// dissection tree is eventually ordered on its own.
type vsepInstance struct {
	g      *sgraph.Graph
	balrat float64
	part   []int
}

func newVsepInstance(g *sgraph.Graph, balrat float64) *vsepInstance {
	p := make([]int, g.VertCount)
	for i := range p {
		p[i] = -1
	}
	return &vsepInstance{g: g, balrat: balrat, part: p}
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
	return &vsepInstance{g: v.g, balrat: v.balrat, part: cp}
}

func (v *vsepInstance) Adopt(other strategy.ProblemInstance) {
	copy(v.part, other.(*vsepInstance).part)
}

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
	total := a + b
	if total == 0 {
		return 0
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / float64(total)
}

func (v *vsepInstance) valid() bool { return v.imbalance() <= v.balrat }

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

// greedyGraphGrowing grows part 0 from the highest-degree vertex until it
// reaches half the graph's weight, assigns the rest to part 1, then peels
// any part-1 vertex touching part 0 into the separator. Identical in shape
// to partition's "gg" method; kept as a separate, unexported copy since the
// two packages' ProblemInstance types are distinct.
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

	half := g.VeloSum / 2
	visited := make([]bool, n)
	visited[seed] = true
	queue := []int{seed}
	var weightA int64
	for len(queue) > 0 && weightA < half {
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

// DefaultVsepTable returns a vertex-separator strategy table carrying the
// built-in "gg" method.
func DefaultVsepTable() *strategy.Table {
	t := strategy.NewTable("order-vsep")
	t.AddMethod(&strategy.MethodEntry{Name: "gg", Fn: greedyGraphGrowing})
	t.AddFeature("vertnbr")
	t.AddFeature("edgenbr")
	return t
}

// DefaultVsepNode returns the trivial strategy tree "gg()".
func DefaultVsepNode() *strategy.Node {
	return &strategy.Node{Tag: strategy.TagMethod, Method: "gg"}
}
