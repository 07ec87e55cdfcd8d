package dgraph_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/scotch/comm"
	"github.com/katalvlaran/scotch/dgraph"
	"github.com/stretchr/testify/require"
)

// buildPathHalves returns rank 0's and rank 1's local CSR pieces for a
// 6-vertex path 0-1-2-3-4-5 split 3/3, edge 2-3 crossing the boundary.
func buildPathHalves() (verttab0, edgetab0, verttab1, edgetab1 []int) {
	verttab0 = []int{0, 1, 3, 5}
	edgetab0 = []int{1, 0, 2, 1, 3}
	verttab1 = []int{0, 2, 4, 5}
	edgetab1 = []int{2, 4, 3, 5, 4}
	return
}

func TestBuildLocalSplitsGhostsAcrossTwoRanks(t *testing.T) {
	comms, err := comm.NewWorld(2)
	require.NoError(t, err)
	v0, e0, v1, e1 := buildPathHalves()

	results := make([]*dgraph.Graph, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for r := 0; r < 2; r++ {
		r := r
		go func() {
			defer wg.Done()
			dist, derr := dgraph.NewDistribution(0, []int{3, 3})
			require.NoError(t, derr)
			var verttab, edgetab []int
			if r == 0 {
				verttab, edgetab = v0, e0
			} else {
				verttab, edgetab = v1, e1
			}
			g, berr := dgraph.BuildLocal(comms[r], dist, verttab, nil, edgetab, nil, nil)
			require.NoError(t, berr)
			results[r] = g
		}()
	}
	wg.Wait()

	g0, g1 := results[0], results[1]
	require.Equal(t, 3, g0.LocalVertexCount())
	require.Equal(t, []int{3}, g0.GhostGlobal)
	require.Equal(t, 4, g0.VertCount)
	require.Equal(t, []int{1, 3}, g0.Neighbors(2))

	require.Equal(t, 3, g1.LocalVertexCount())
	require.Equal(t, []int{2}, g1.GhostGlobal)
	require.Equal(t, []int{3, 1}, g1.Neighbors(0))
}

func TestSyncGhostsFillsGhostValuesFromOwner(t *testing.T) {
	comms, err := comm.NewWorld(2)
	require.NoError(t, err)
	v0, e0, v1, e1 := buildPathHalves()

	extended := make([][]int64, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for r := 0; r < 2; r++ {
		r := r
		go func() {
			defer wg.Done()
			dist, derr := dgraph.NewDistribution(0, []int{3, 3})
			require.NoError(t, derr)
			var verttab, edgetab []int
			var local []int64
			if r == 0 {
				verttab, edgetab = v0, e0
				local = []int64{0, 10, 20} // globals 0,1,2
			} else {
				verttab, edgetab = v1, e1
				local = []int64{30, 40, 50} // globals 3,4,5
			}
			g, berr := dgraph.BuildLocal(comms[r], dist, verttab, nil, edgetab, nil, nil)
			require.NoError(t, berr)
			out, serr := g.SyncGhosts(local)
			require.NoError(t, serr)
			extended[r] = out
		}()
	}
	wg.Wait()

	// rank 0's ghost is global vertex 3, owned by rank 1, value 30.
	require.Equal(t, []int64{0, 10, 20, 30}, extended[0])
	// rank 1's ghost is global vertex 2, owned by rank 0, value 20.
	require.Equal(t, []int64{30, 40, 50, 20}, extended[1])
}
