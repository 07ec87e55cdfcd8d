package sgraph_test

import (
	"testing"

	"github.com/katalvlaran/scotch/sgraph"
	"github.com/stretchr/testify/require"
)

// path3 builds a 3-vertex path 0-1-2 at base 0.
func path3(t *testing.T) *sgraph.Graph {
	t.Helper()
	// 0: [1]   1: [0,2]   2: [1]
	verttab := []int{0, 1, 3, 4}
	edgetab := []int{1, 0, 2, 1}
	g, err := sgraph.Build(0, 3, verttab, nil, edgetab, nil, nil)
	require.NoError(t, err)
	return g
}

func TestBuildPath3Degrees(t *testing.T) {
	g := path3(t)
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(1))
	require.Equal(t, 1, g.Degree(2))
	require.Equal(t, 2, g.MaxDeg)
	require.Equal(t, int64(3), g.VeloSum)
}

func TestBuildRejectsAsymmetricAdjacency(t *testing.T) {
	verttab := []int{0, 1, 1, 1} // 0->1 but 1 has no neighbors
	edgetab := []int{1}
	_, err := sgraph.Build(0, 3, verttab, nil, edgetab, nil, nil)
	require.ErrorIs(t, err, sgraph.ErrAsymmetric)
}

func TestBuildRejectsEdgeOutOfRange(t *testing.T) {
	verttab := []int{0, 1, 1}
	edgetab := []int{5}
	_, err := sgraph.Build(0, 2, verttab, nil, edgetab, nil, nil)
	require.ErrorIs(t, err, sgraph.ErrEdgetabRange)
}

func TestBuildBaseOneWorks(t *testing.T) {
	// Same path3 shape, base 1: vertices 1,2,3.
	verttab := []int{1, 2, 4, 5}
	edgetab := []int{2, 1, 3, 2}
	g, err := sgraph.Build(1, 3, verttab, nil, edgetab, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{2}, g.Neighbors(1))
	require.Equal(t, []int{1, 3}, g.Neighbors(2))
}

func TestBuildWithWeights(t *testing.T) {
	verttab := []int{0, 1, 3, 4}
	edgetab := []int{1, 0, 2, 1}
	velotab := []int64{10, 20, 30}
	edlotab := []int64{1, 1, 2, 2}
	g, err := sgraph.Build(0, 3, verttab, nil, edgetab, velotab, edlotab)
	require.NoError(t, err)
	require.Equal(t, int64(60), g.VeloSum)
	require.Equal(t, int64(6), g.EdloSum)
}

func TestBuildRejectsNegativeWeight(t *testing.T) {
	verttab := []int{0, 1, 3, 4}
	edgetab := []int{1, 0, 2, 1}
	velotab := []int64{10, -1, 30}
	_, err := sgraph.Build(0, 3, verttab, nil, edgetab, velotab, nil)
	require.ErrorIs(t, err, sgraph.ErrNegativeWeight)
}

func TestInduceListPreservesSymmetricSubgraph(t *testing.T) {
	g := path3(t)
	ig, backmap, err := g.InduceList([]int{0, 1})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, backmap)
	require.Equal(t, 2, ig.VertCount)
	require.Equal(t, []int{1}, ig.Neighbors(0))
	require.Equal(t, []int{0}, ig.Neighbors(1))
}

func TestInducePartSplitsComponents(t *testing.T) {
	g := path3(t)
	part := []int{0, 0, 1}
	left, backLeft, err := g.InducePart(part, 0)
	require.NoError(t, err)
	require.Equal(t, 2, left.VertCount)
	require.Equal(t, []int{0, 1}, backLeft)

	right, backRight, err := g.InducePart(part, 1)
	require.NoError(t, err)
	require.Equal(t, 1, right.VertCount)
	require.Equal(t, []int{2}, backRight)
	require.Equal(t, 0, right.Degree(right.Baseval))
}

func TestInducePartEmptyIsError(t *testing.T) {
	g := path3(t)
	part := []int{0, 0, 0}
	_, _, err := g.InducePart(part, 7)
	require.ErrorIs(t, err, sgraph.ErrEmptyPart)
}

func TestBuildHaloAllowsOneSidedAdjacency(t *testing.T) {
	// Vertex 0 (non-halo, haloBegin=1) points at halo vertex 1, but vertex 1
	// carries no adjacency of its own (it's a ghost, its real edges live on
	// another process).
	verttab := []int{0, 1, 1}
	edgetab := []int{1}
	g, err := sgraph.BuildHalo(0, 2, 1, verttab, nil, edgetab, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1}, g.Neighbors(0))
	require.Empty(t, g.Neighbors(1))
}

func TestVertexWeightDefaultsToOne(t *testing.T) {
	g := path3(t)
	require.Equal(t, int64(1), g.VertexWeight(0))
	require.Nil(t, g.EdgeWeights(0))
}
