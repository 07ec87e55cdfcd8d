package scotch

import (
	"sort"

	"github.com/katalvlaran/scotch/coarsen"
	"github.com/katalvlaran/scotch/comm"
	"github.com/katalvlaran/scotch/dgraph"
	"github.com/katalvlaran/scotch/gctx"
	"github.com/katalvlaran/scotch/order"
	"github.com/katalvlaran/scotch/partition"
	"github.com/katalvlaran/scotch/sgraph"
	"github.com/katalvlaran/scotch/strategy"
)

// Partition bisects g into K parts, per spec.md §4.4. It is a thin
// pass-through to partition.Partition: the façade exists so a caller only
// ever imports the root package for the common cases, per core/api.go's
// "thin facade" pattern.
func Partition(g *sgraph.Graph, K int, ctx *gctx.Context, balrat float64) (*partition.Result, error) {
	return partition.Partition(g, K, nil, nil, ctx, balrat)
}

// PartitionWithOverlap is Partition plus, for every separator vertex, the
// set of part ids it borders.
func PartitionWithOverlap(g *sgraph.Graph, K int, ctx *gctx.Context, balrat float64) (*partition.Result, error) {
	return partition.PartitionWithOverlap(g, K, nil, nil, ctx, balrat)
}

// Order computes a nested-dissection ordering of g, per spec.md §4.5.
func Order(g *sgraph.Graph, opts order.Options) (*order.Ordering, error) {
	return order.Order(g, opts)
}

// Coarsen runs one matching + contraction round over the distributed graph
// g, per spec.md §4.3. It is a thin pass-through to coarsen.Match followed
// by coarsen.Assemble.
func Coarsen(g *dgraph.Graph, opts coarsen.MatchOptions) (*dgraph.Graph, coarsen.MultinodeTable, error) {
	mate, err := coarsen.Match(g, opts)
	if err != nil {
		return nil, nil, err
	}
	return coarsen.Assemble(g, mate)
}

// DistributedMapOptions configures DistributedMap.
type DistributedMapOptions struct {
	Match     coarsen.MatchOptions
	Table     *strategy.Table
	Node      *strategy.Node
	Ctx       *gctx.Context
	Balrat    float64
	// CoarsenFloor stops coarsening once the global vertex count drops to
	// or below this many vertices; the recursive-bisection K-way mapping
	// then runs directly on that level. Defaults to 4*K when <= 0.
	CoarsenFloor int
	// MaxLevels bounds how many coarsening rounds run, guarding against a
	// matching that stops shrinking the graph (e.g. every vertex isolated).
	// Defaults to 32 when <= 0.
	MaxLevels int
}

// DistributedMap is the distributed K-way mapping driver spec.md §4 names:
// "recursive-bisection driver (invokes a sequential K-way mapping inside)".
// It coarsens the distributed graph g down to a small replicated level,
// maps that level with Partition, then projects the part assignment back
// down through every coarsening level to g's local vertices.
//
// Every process must call DistributedMap on its own local view of the same
// distributed graph (same Comm, same round); the result's Part only covers
// this process's locally-owned vertices (g.LocalVertexCount() entries,
// aligned with g.Baseval), since that is the only range this process is
// responsible for in a distributed setting.
func DistributedMap(g *dgraph.Graph, K int, opts DistributedMapOptions) (*partition.Result, error) {
	if g.Dist.GlobalVertCount == 0 {
		return nil, ErrEmptyGraph
	}
	floor := opts.CoarsenFloor
	if floor <= 0 {
		floor = 4 * K
	}
	maxLevels := opts.MaxLevels
	if maxLevels <= 0 {
		maxLevels = 32
	}

	base := g.Dist.Baseval
	cur := g
	var levels []globalMultinodeLevel
	for len(levels) < maxLevels && cur.Dist.GlobalVertCount > floor {
		mate, err := coarsen.Match(cur, opts.Match)
		if err != nil {
			return nil, err
		}
		coarse, mnt, err := coarsen.Assemble(cur, mate)
		if err != nil {
			return nil, err
		}
		if coarse.Dist.GlobalVertCount >= cur.Dist.GlobalVertCount {
			// Matching stalled (e.g. an entirely singleton level): stop
			// coarsening rather than looping without progress.
			break
		}
		global, err := gatherMultinodeTable(cur.Comm, mnt)
		if err != nil {
			return nil, err
		}
		levels = append(levels, globalMultinodeLevel{fineCount: cur.Dist.GlobalVertCount, entries: global})
		cur = coarse
	}

	full, err := gatherFullGraph(cur)
	if err != nil {
		return nil, err
	}

	res, err := partition.Partition(full, K, opts.Table, opts.Node, opts.Ctx, opts.Balrat)
	if err != nil {
		return nil, err
	}
	part := res.Part // replicated, indexed by coarsest-level global vertex number

	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		finer := make([]int, lvl.fineCount)
		for cg, e := range lvl.entries {
			p := part[cg]
			finer[e.fineA-base] = p
			finer[e.fineB-base] = p
		}
		part = finer
	}

	lo, hi := g.Dist.LocalRange(g.ProcRank)
	localPart := make([]int, hi-lo)
	copy(localPart, part[lo-base:hi-base])

	// Partition is pure: part never carries a -1, so there is no local
	// frontier to project back down.
	return &partition.Result{Part: localPart}, nil
}

type multinodeEntryGlobal struct{ fineA, fineB int }

type globalMultinodeLevel struct {
	fineCount int
	entries   []multinodeEntryGlobal
}

// gatherMultinodeTable replicates one level's multinode table across every
// process, ordered by coarse global vertex number (the contiguous,
// rank-ordered layout coarsen.Assemble's Distribution already assigns, so
// concatenating each rank's own entries in rank order reproduces it).
func gatherMultinodeTable(c *comm.Comm, local coarsen.MultinodeTable) ([]multinodeEntryGlobal, error) {
	payload := make([]int64, 0, len(local)*2)
	for _, e := range local {
		payload = append(payload, int64(e.FineA), int64(e.FineB))
	}
	send := make([][]int64, c.Size())
	for i := range send {
		send[i] = payload
	}
	recv, err := c.AllToAllv(send)
	if err != nil {
		return nil, err
	}
	var out []multinodeEntryGlobal
	for proc := 0; proc < c.Size(); proc++ {
		buf := recv[proc]
		for i := 0; i+2 <= len(buf); i += 2 {
			out = append(out, multinodeEntryGlobal{fineA: int(buf[i]), fineB: int(buf[i+1])})
		}
	}
	return out, nil
}

// gatherFullGraph replicates a (by then small) distributed graph's full
// adjacency onto every process as a single sgraph.Graph, so the sequential
// K-way mapping inside DistributedMap can run redundantly rather than
// requiring a result broadcast: every process computes the identical
// deterministic partition from the identical replicated input.
func gatherFullGraph(g *dgraph.Graph) (*sgraph.Graph, error) {
	base := g.Dist.Baseval
	n := g.Dist.GlobalVertCount
	lo, hi := g.Dist.LocalRange(g.ProcRank)

	type ownEdge struct {
		from, to int
		w        int64
	}
	var payload []int64 // for each local vertex: gv, velo, degree, then (to,w) per edge
	for v := lo; v < hi; v++ {
		nbrs := g.Neighbors(base + (v - lo))
		ews := g.EdgeWeights(base + (v - lo))
		payload = append(payload, int64(v), g.VertexWeight(base+(v-lo)), int64(len(nbrs)))
		for i, u := range nbrs {
			w := int64(1)
			if ews != nil {
				w = ews[i]
			}
			target := g.GlobalOf(u)
			payload = append(payload, int64(target), w)
		}
	}
	send := make([][]int64, g.Comm.Size())
	for i := range send {
		send[i] = payload
	}
	recv, err := g.Comm.AllToAllv(send)
	if err != nil {
		return nil, err
	}

	adj := make([][]ownEdge, n)
	velo := make([]int64, n)
	for proc := 0; proc < g.Comm.Size(); proc++ {
		buf := recv[proc]
		pos := 0
		for pos < len(buf) {
			gv := int(buf[pos])
			vw := buf[pos+1]
			deg := int(buf[pos+2])
			pos += 3
			velo[gv-base] = vw
			for i := 0; i < deg; i++ {
				to := int(buf[pos])
				w := buf[pos+1]
				pos += 2
				adj[gv-base] = append(adj[gv-base], ownEdge{from: gv, to: to, w: w})
			}
		}
	}

	verttab := make([]int, n+1)
	var edgetab []int
	var edlotab []int64
	for i := 0; i < n; i++ {
		sort.Slice(adj[i], func(a, b int) bool { return adj[i][a].to < adj[i][b].to })
		for _, e := range adj[i] {
			edgetab = append(edgetab, e.to)
			edlotab = append(edlotab, e.w)
		}
		verttab[i+1] = len(edgetab)
	}
	for i := range verttab {
		verttab[i] += base
	}
	return sgraph.Build(base, n, verttab, nil, edgetab, velo, edlotab)
}
