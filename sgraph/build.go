package sgraph

import "fmt"

// Build constructs a Graph from caller-supplied arrays and validates the
// invariants every engine package relies on: symmetric adjacency, in-range
// edge targets, and non-negative weights. VeloSum, EdloSum and MaxDeg are
// computed from the arrays.
// verttab/vendtab/edgetab follow the Graph field conventions documented on
// the type; velotab/edlotab may be nil for an unweighted graph.
func Build(baseval, vertCount int, verttab, vendtab, edgetab []int, velotab, edlotab []int64) (*Graph, error) {
	return build(baseval, vertCount, vertCount, verttab, vendtab, edgetab, velotab, edlotab)
}

// BuildHalo is Build's relaxed variant for halo (sub)meshes and distributed
// ghost regions: vertices at index >= haloBegin (Baseval-relative) are halo
// vertices. Symmetry is only required between two non-halo vertices; an
// edge from a non-halo vertex into a halo one need not be mirrored, since
// the halo vertex's own adjacency is not necessarily known locally
// (spec.md §3, Halo (sub)mesh / halo graph).
func BuildHalo(baseval, vertCount, haloBegin int, verttab, vendtab, edgetab []int, velotab, edlotab []int64) (*Graph, error) {
	return build(baseval, vertCount, haloBegin, verttab, vendtab, edgetab, velotab, edlotab)
}

func build(baseval, vertCount, symmetricBegin int, verttab, vendtab, edgetab []int, velotab, edlotab []int64) (*Graph, error) {
	if baseval != 0 && baseval != 1 {
		return nil, ErrInvalidBaseval
	}
	if vertCount < 0 {
		return nil, ErrNegativeVertCount
	}

	g := &Graph{
		Baseval:   baseval,
		VertCount: vertCount,
		Verttab:   verttab,
		Vendtab:   vendtab,
		Edgetab:   edgetab,
		Velotab:   velotab,
		Edlotab:   edlotab,
	}

	if vendtab == nil {
		if len(verttab) != vertCount+1 {
			return nil, ErrVerttabLength
		}
	} else {
		if len(verttab) != vertCount || len(vendtab) != vertCount {
			return nil, ErrVerttabLength
		}
	}

	if velotab != nil && len(velotab) != vertCount {
		return nil, ErrVeloLength
	}
	if edlotab != nil && len(edlotab) != len(edgetab) {
		return nil, ErrEdloLength
	}

	lo, hi := baseval, baseval+vertCount
	symEnd := baseval + symmetricBegin
	maxDeg := 0
	var veloSum int64
	for v := lo; v < hi; v++ {
		deg := g.Degree(v)
		if deg > maxDeg {
			maxDeg = deg
		}
		for _, u := range g.Neighbors(v) {
			if u < lo || u >= hi {
				return nil, fmt.Errorf("%w: vertex %d neighbor %d", ErrEdgetabRange, v, u)
			}
		}
		veloSum += g.VertexWeight(v)
	}
	if velotab != nil {
		for _, w := range velotab {
			if w < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}
	if edlotab != nil {
		for _, w := range edlotab {
			if w < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}

	var edloSum int64
	for v := lo; v < hi; v++ {
		for _, u := range g.Neighbors(v) {
			if v < symEnd && u < symEnd && !hasNeighbor(g, u, v) {
				return nil, fmt.Errorf("%w: %d->%d present but %d->%d missing", ErrAsymmetric, v, u, u, v)
			}
		}
		for _, w := range g.EdgeWeights(v) {
			edloSum += w
		}
	}
	if edlotab == nil {
		edloSum = int64(len(edgetab))
	}

	g.VeloSum = veloSum
	g.EdloSum = edloSum
	g.MaxDeg = maxDeg
	return g, nil
}

func hasNeighbor(g *Graph, v, target int) bool {
	for _, u := range g.Neighbors(v) {
		if u == target {
			return true
		}
	}
	return false
}
