package coarsen_test

import (
	"testing"

	"github.com/katalvlaran/scotch/comm"
	"github.com/katalvlaran/scotch/coarsen"
	"github.com/katalvlaran/scotch/dgraph"
	"github.com/stretchr/testify/require"
)

// buildSingleProcGraph builds an n-vertex path graph as a one-process
// dgraph.Graph (the "single-process distributed graph" boundary case).
func buildSingleProcGraph(t *testing.T, n int) (*dgraph.Graph, *comm.Comm) {
	t.Helper()
	comms, err := comm.NewWorld(1)
	require.NoError(t, err)
	dist, err := dgraph.NewDistribution(0, []int{n})
	require.NoError(t, err)

	verttab := make([]int, n+1)
	var edgetab []int
	for v := 0; v < n; v++ {
		if v > 0 {
			edgetab = append(edgetab, v-1)
		}
		if v < n-1 {
			edgetab = append(edgetab, v+1)
		}
		verttab[v+1] = len(edgetab)
	}
	g, err := dgraph.BuildLocal(comms[0], dist, verttab, nil, edgetab, nil, nil)
	require.NoError(t, err)
	return g, comms[0]
}

func TestMatchProducesSymmetricMating(t *testing.T) {
	g, _ := buildSingleProcGraph(t, 8)
	mate, err := coarsen.Match(g, coarsen.MatchOptions{Heuristic: coarsen.HeavyEdge})
	require.NoError(t, err)
	require.Len(t, mate, 8)

	// mate(mate(v)) == v for every local vertex.
	global := func(i int) int { return i } // base 0, single process: local idx == global
	indexOf := make(map[int]int, 8)
	for i := 0; i < 8; i++ {
		indexOf[global(i)] = i
	}
	for i, m := range mate {
		mi, ok := indexOf[m]
		require.True(t, ok)
		require.Equal(t, global(i), mate[mi])
	}
}

func TestMatchRespectsNoMergeOnIsolatedVertices(t *testing.T) {
	comms, err := comm.NewWorld(1)
	require.NoError(t, err)
	dist, err := dgraph.NewDistribution(0, []int{3})
	require.NoError(t, err)
	// Three isolated vertices, no edges at all.
	verttab := []int{0, 0, 0, 0}
	g, err := dgraph.BuildLocal(comms[0], dist, verttab, nil, nil, nil, nil)
	require.NoError(t, err)

	mate, err := coarsen.Match(g, coarsen.MatchOptions{NoMerge: true})
	require.NoError(t, err)
	for i, m := range mate {
		require.Equal(t, i, m) // every vertex remains its own singleton
	}
}

func TestAssembleCoarsensPathGraphAndPreservesWeight(t *testing.T) {
	g, _ := buildSingleProcGraph(t, 8)
	mate, err := coarsen.Match(g, coarsen.MatchOptions{Heuristic: coarsen.HeavyEdge})
	require.NoError(t, err)

	coarseGraph, multinodes, err := coarsen.Assemble(g, mate)
	require.NoError(t, err)

	require.LessOrEqual(t, coarseGraph.VertCount, 8)
	require.Equal(t, coarseGraph.VertCount, len(multinodes))

	fineVeloSum := int64(8) // unit weights
	require.Equal(t, fineVeloSum, coarseGraph.LocalVeloSum())

	// Every fine vertex appears in exactly one multinode.
	seen := make(map[int]bool)
	for _, mn := range multinodes {
		require.False(t, seen[mn.FineA])
		seen[mn.FineA] = true
		if mn.FineB != mn.FineA {
			require.False(t, seen[mn.FineB])
			seen[mn.FineB] = true
		}
	}
	require.Len(t, seen, 8)
}
