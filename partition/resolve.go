package partition

import "github.com/katalvlaran/scotch/sgraph"

// resolveSeparator assigns every separator vertex (part[i] == -1) of g to
// part 0 or 1, leaving no -1 behind, the mechanism a pure Partition uses to
// satisfy spec.md's "no -1 remains at termination" invariant. Each
// separator vertex goes to whichever adjacent part it has more
// edge-weighted adjacency to; a tie breaks toward whichever part currently
// carries the lighter vertex-weight load. Vertices are resolved in index
// order, so later resolutions see every earlier one already applied.
//
// greedyGraphGrowing never reassigns a part-0 vertex once grown, so every
// vertex it leaves at -1 still has at least one literal part-0 neighbor;
// resolveSeparator therefore always terminates in a single pass.
func resolveSeparator(g *sgraph.Graph, part []int) {
	var loadA, loadB int64
	for i, p := range part {
		w := g.VertexWeight(g.Baseval + i)
		switch p {
		case 0:
			loadA += w
		case 1:
			loadB += w
		}
	}

	for i, p := range part {
		if p != -1 {
			continue
		}
		gv := g.Baseval + i
		var wA, wB int64
		nbrs := g.Neighbors(gv)
		ews := g.EdgeWeights(gv)
		for j, u := range nbrs {
			w := int64(1)
			if ews != nil {
				w = ews[j]
			}
			switch part[u-g.Baseval] {
			case 0:
				wA += w
			case 1:
				wB += w
			}
		}

		var assign int
		switch {
		case wA > wB:
			assign = 0
		case wB > wA:
			assign = 1
		case loadA <= loadB:
			assign = 0
		default:
			assign = 1
		}
		part[i] = assign

		vw := g.VertexWeight(gv)
		if assign == 0 {
			loadA += vw
		} else {
			loadB += vw
		}
	}
}
