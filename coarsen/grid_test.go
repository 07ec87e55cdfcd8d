package coarsen_test

import (
	"testing"

	"github.com/katalvlaran/scotch/coarsen"
	"github.com/katalvlaran/scotch/comm"
	"github.com/katalvlaran/scotch/dgraph"
	"github.com/stretchr/testify/require"
)

// buildGrid4x4 builds the 4x4 grid graph (16 vertices, 24 edges) spec.md
// §8's coarsening-ratio scenario names: vertex (r,c) at index 4r+c,
// adjacent to its horizontal and vertical neighbors.
func buildGrid4x4(t *testing.T) *dgraph.Graph {
	t.Helper()
	const side = 4
	const n = side * side
	adj := make([][]int, n)
	addEdge := func(a, b int) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				addEdge(v, v+1)
			}
			if r+1 < side {
				addEdge(v, v+side)
			}
		}
	}
	verttab := make([]int, n+1)
	var edgetab []int
	for v := 0; v < n; v++ {
		edgetab = append(edgetab, adj[v]...)
		verttab[v+1] = len(edgetab)
	}

	comms, err := comm.NewWorld(1)
	require.NoError(t, err)
	dist, err := dgraph.NewDistribution(0, []int{n})
	require.NoError(t, err)
	g, err := dgraph.BuildLocal(comms[0], dist, verttab, nil, edgetab, nil, nil)
	require.NoError(t, err)
	return g
}

func TestCoarsenGrid4x4MeetsRatioAndPreservesWeight(t *testing.T) {
	g := buildGrid4x4(t)
	require.Equal(t, 16, g.Dist.GlobalVertCount)

	fineWeight := g.LocalVeloSum()

	mate, err := coarsen.Match(g, coarsen.MatchOptions{Heuristic: coarsen.HeavyEdge})
	require.NoError(t, err)
	coarse, _, err := coarsen.Assemble(g, mate)
	require.NoError(t, err)

	require.LessOrEqual(t, coarse.Dist.GlobalVertCount, 11)
	require.Equal(t, fineWeight, coarse.LocalVeloSum())
}
