package order

import (
	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/katalvlaran/scotch/strategy"
)

// orderInstance is the strategy.ProblemInstance for filling one
// inverse-permutation slice with a bijection onto g's vertex set — the
// contract spec.md §4.5 gives leaf and separator ordering methods alike.
// backmap[i] is the original graph's vertex number for g's local vertex i;
// slice aliases the Order's Peritab range this call owns.
type orderInstance struct {
	g       *sgraph.Graph
	backmap []int
	slice   []int
	cost    int64 // lower is a better elimination order (sum of degree at the moment of elimination)
}

func (o *orderInstance) Feature(name string) (float64, bool) {
	if name == "vertnbr" {
		return float64(o.g.VertCount), true
	}
	return 0, false
}

func (o *orderInstance) Clone() strategy.ProblemInstance {
	cp := make([]int, len(o.slice))
	copy(cp, o.slice)
	return &orderInstance{g: o.g, backmap: o.backmap, slice: cp, cost: o.cost}
}

func (o *orderInstance) Adopt(other strategy.ProblemInstance) {
	oo := other.(*orderInstance)
	copy(o.slice, oo.slice)
	o.cost = oo.cost
}

func (o *orderInstance) Better(other strategy.ProblemInstance) bool {
	return o.cost < other.(*orderInstance).cost
}

// naturalOrder is the "simple (identity)" leaf method §4.5 names: it
// assigns ranks in the induced subgraph's own vertex order.
func naturalOrder(_ *gctx.Context, inst strategy.ProblemInstance, _ any) error {
	o := inst.(*orderInstance)
	g := o.g
	var cost int64
	for i := 0; i < g.VertCount; i++ {
		o.slice[i] = o.backmap[i]
		cost += int64(g.Degree(g.Baseval + i))
	}
	o.cost = cost
	return nil
}

// approxMinDegree is a minimum-degree elimination heuristic: repeatedly
// eliminate the remaining vertex of lowest degree, connecting its
// surviving neighbors pairwise (simulating the fill-in a sparse Cholesky
// factorization would introduce), and assign it the next rank. It stands
// in for the halo-AMD/AMF external collaborators spec.md §4.5 names,
// without their quotient-graph bookkeeping.
func approxMinDegree(_ *gctx.Context, inst strategy.ProblemInstance, _ any) error {
	o := inst.(*orderInstance)
	g := o.g
	n := g.VertCount

	adj := make([][]int, n)
	deg := make([]int, n)
	for i := 0; i < n; i++ {
		nbrs := g.Neighbors(g.Baseval + i)
		lst := make([]int, len(nbrs))
		for j, u := range nbrs {
			lst[j] = u - g.Baseval
		}
		adj[i] = lst
		deg[i] = len(lst)
	}

	eliminated := make([]bool, n)
	var totalCost int64
	for step := 0; step < n; step++ {
		best, bestDeg := -1, -1
		for i := 0; i < n; i++ {
			if eliminated[i] {
				continue
			}
			if best == -1 || deg[i] < bestDeg {
				best, bestDeg = i, deg[i]
			}
		}
		eliminated[best] = true
		totalCost += int64(bestDeg)
		o.slice[step] = o.backmap[best]

		var remaining []int
		for _, u := range adj[best] {
			if !eliminated[u] {
				remaining = append(remaining, u)
			}
		}
		for _, u := range remaining {
			adj[u] = removeInt(adj[u], best)
		}
		for i := 0; i < len(remaining); i++ {
			for j := i + 1; j < len(remaining); j++ {
				a, b := remaining[i], remaining[j]
				if !containsInt(adj[a], b) {
					adj[a] = append(adj[a], b)
					adj[b] = append(adj[b], a)
				}
			}
		}
		for _, u := range remaining {
			deg[u] = len(adj[u])
		}
	}
	o.cost = totalCost
	return nil
}

func removeInt(s []int, v int) []int {
	out := s[:0:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// DefaultLeafTable returns the leaf/separator ordering strategy table
// carrying the built-in "natural" and "md" methods.
func DefaultLeafTable() *strategy.Table {
	t := strategy.NewTable("order-leaf")
	t.AddMethod(&strategy.MethodEntry{Name: "natural", Fn: naturalOrder})
	t.AddMethod(&strategy.MethodEntry{Name: "md", Fn: approxMinDegree})
	t.AddFeature("vertnbr")
	return t
}

// DefaultLeafNode returns the trivial strategy tree "md()", the default
// leaf/separator ordering method.
func DefaultLeafNode() *strategy.Node {
	return &strategy.Node{Tag: strategy.TagMethod, Method: "md"}
}
