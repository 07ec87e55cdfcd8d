package sgraph

// InducePart builds the subgraph spanned by every vertex v with
// part[v-g.Baseval] == id, part being a caller array of length g.VertCount
// indexed 0-based in vertex order. It returns the induced graph together
// with a back-map from the induced graph's (Baseval-relative) vertex
// numbers to the original graph's vertex numbers, mirroring graph_induce_part
// from spec.md §6.
func (g *Graph) InducePart(part []int, id int) (*Graph, []int, error) {
	if len(part) != g.VertCount {
		return nil, nil, ErrVerttabLength
	}
	var list []int
	for v := g.Baseval; v < g.VertexEnd(); v++ {
		if part[v-g.Baseval] == id {
			list = append(list, v)
		}
	}
	if len(list) == 0 {
		return nil, nil, ErrEmptyPart
	}
	return g.InduceList(list)
}

// InduceList builds the subgraph induced by the given (Baseval-relative,
// must be strictly increasing) vertex list, dropping any edge whose
// endpoint falls outside the list. It returns the induced graph and a
// back-map from induced vertex number to original vertex number
// (graph_induce_list, spec.md §6).
func (g *Graph) InduceList(list []int) (*Graph, []int, error) {
	n := len(list)
	// old vertex (0-based within g) -> new vertex (0-based within induced graph), or -1
	newIdx := make([]int, g.VertCount)
	for i := range newIdx {
		newIdx[i] = -1
	}
	for i, v := range list {
		if v < g.Baseval || v >= g.VertexEnd() {
			return nil, nil, ErrVertexRange
		}
		newIdx[v-g.Baseval] = i
	}

	verttab := make([]int, n+1)
	var edgetab []int
	var edlotab []int64
	velotab := make([]int64, n)

	base := g.Baseval
	verttab[0] = base
	for i, v := range list {
		velotab[i] = g.VertexWeight(v)
		nbrs := g.Neighbors(v)
		ews := g.EdgeWeights(v)
		for j, u := range nbrs {
			nj := newIdx[u-g.Baseval]
			if nj < 0 {
				continue // neighbor not in the induced set
			}
			edgetab = append(edgetab, nj+base)
			if ews != nil {
				edlotab = append(edlotab, ews[j])
			}
		}
		verttab[i+1] = base + len(edgetab)
	}
	if edlotab != nil && len(edlotab) != len(edgetab) {
		edlotab = nil // defensive: only keep edlotab if every vertex carried weights
	}

	backmap := make([]int, n)
	copy(backmap, list)

	ig, err := Build(base, n, verttab, nil, edgetab, velotab, edlotab)
	if err != nil {
		return nil, nil, err
	}
	ig.Vlbltab = backmap
	return ig, backmap, nil
}
