package order_test

import (
	"testing"

	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/order"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/stretchr/testify/require"
)

func buildPath(t *testing.T, n int) *sgraph.Graph {
	t.Helper()
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
	g, err := sgraph.Build(0, n, verttab, nil, edgetab, nil, nil)
	require.NoError(t, err)
	return g
}

// buildTwoTriangles builds two disjoint 3-cycles: {0,1,2} and {3,4,5}.
func buildTwoTriangles(t *testing.T) *sgraph.Graph {
	t.Helper()
	edges := map[int][]int{
		0: {1, 2}, 1: {0, 2}, 2: {0, 1},
		3: {4, 5}, 4: {3, 5}, 5: {3, 4},
	}
	verttab := make([]int, 7)
	var edgetab []int
	for v := 0; v < 6; v++ {
		edgetab = append(edgetab, edges[v]...)
		verttab[v+1] = len(edgetab)
	}
	g, err := sgraph.Build(0, 6, verttab, nil, edgetab, nil, nil)
	require.NoError(t, err)
	return g
}

func countNodes(cb *order.ColumnBlock) (total, leaves int) {
	if cb == nil {
		return 0, 0
	}
	total = 1
	if cb.Tag == order.CblkLeaf {
		leaves = 1
		return
	}
	for _, c := range cb.Children {
		t, l := countNodes(c)
		total += t
		leaves += l
	}
	return
}

func TestOrderDisconnectedComponentsProducesDiCoRootWithTwoLeaves(t *testing.T) {
	g := buildTwoTriangles(t)
	ord, err := order.Order(g, order.Options{})
	require.NoError(t, err)

	require.Equal(t, order.CblkDiCo, ord.Root.Tag)
	require.Len(t, ord.Root.Children, 2)
	for _, child := range ord.Root.Children {
		require.Equal(t, order.CblkLeaf, child.Tag)
		require.Equal(t, 3, child.VnodCount)
	}
}

func TestOrderPeritabIsABijection(t *testing.T) {
	g := buildPath(t, 12)
	ord, err := order.Order(g, order.Options{})
	require.NoError(t, err)

	require.Len(t, ord.Peritab, 12)
	seen := make(map[int]bool, 12)
	for _, v := range ord.Peritab {
		require.False(t, seen[v])
		seen[v] = true
		require.True(t, v >= 0 && v < 12)
	}
}

func TestOrderTreeCountsMatchTraversal(t *testing.T) {
	g := buildPath(t, 12)
	ord, err := order.Order(g, order.Options{})
	require.NoError(t, err)

	total, leaves := countNodes(ord.Root)
	require.Equal(t, ord.TreeNodeCount, total)
	require.Equal(t, ord.CblkCount, leaves)
}

func TestOrderIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	g := buildPath(t, 15)
	ord1, err := order.Order(g, order.Options{})
	require.NoError(t, err)
	ord2, err := order.Order(g, order.Options{})
	require.NoError(t, err)

	require.Equal(t, ord1.Peritab, ord2.Peritab)
	require.Equal(t, ord1.CblkCount, ord2.CblkCount)
	require.Equal(t, ord1.TreeNodeCount, ord2.TreeNodeCount)
}

func TestOrderDeterministicOptionProducesIdenticalPermutations(t *testing.T) {
	g := buildPath(t, 15)

	ctx1, err := gctx.NewContext(4, nil)
	require.NoError(t, err)
	ctx1.Options().Set(gctx.Deterministic, true)
	defer ctx1.Exit()

	ctx2, err := gctx.NewContext(4, nil)
	require.NoError(t, err)
	ctx2.Options().Set(gctx.Deterministic, true)
	defer ctx2.Exit()

	ord1, err := order.Order(g, order.Options{Ctx: ctx1})
	require.NoError(t, err)
	ord2, err := order.Order(g, order.Options{Ctx: ctx2})
	require.NoError(t, err)

	require.Equal(t, ord1.Peritab, ord2.Peritab)
	require.Equal(t, ord1.CblkCount, ord2.CblkCount)
	require.Equal(t, ord1.TreeNodeCount, ord2.TreeNodeCount)
}

func TestOrderRejectsEmptyGraph(t *testing.T) {
	g, err := sgraph.Build(0, 0, []int{0}, nil, nil, nil, nil)
	require.NoError(t, err)
	_, err = order.Order(g, order.Options{})
	require.ErrorIs(t, err, order.ErrEmptyGraph)
}
