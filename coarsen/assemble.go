package coarsen

import (
	"sort"

	"github.com/katalvlaran/scotch/dgraph"
)

// Assemble builds the coarse graph from a fine distributed graph and a
// completed matching (the mate slice Match returns), per spec.md §4.3.2.
// Each local fine vertex with the smaller global number of its pair owns
// the resulting multinode; the owner of a remote mate is asked, over a
// request/response exchange, for that mate's adjacency translated through
// its own fine-to-coarse map, exactly as "Remote fine b" describes.
func Assemble(g *dgraph.Graph, mate []int) (*dgraph.Graph, MultinodeTable, error) {
	localN := g.LocalVertexCount()
	base := g.Baseval
	lo, _ := g.Dist.LocalRange(g.ProcRank)

	globalToLocal := make(map[int]int, g.VertCount)
	for i := 0; i < localN; i++ {
		globalToLocal[lo+i] = i
	}
	for i, gv := range g.GhostGlobal {
		globalToLocal[gv] = localN + i
	}

	// Step 1: decide which local vertices own a multinode.
	var owned []int // local fine indices that own their multinode, ascending
	for i := 0; i < localN; i++ {
		gv := lo + i
		gm := mate[i]
		if gm == gv || gv < gm {
			owned = append(owned, i)
		}
	}
	countLocal := len(owned)

	counts, err := g.Comm.AllGather(int64(countLocal))
	if err != nil {
		return nil, nil, err
	}
	intCounts := make([]int, len(counts))
	for i, c := range counts {
		intCounts[i] = int(c)
	}
	coarseDist, err := dgraph.NewDistribution(base, intCounts)
	if err != nil {
		return nil, nil, err
	}
	coarseLo, _ := coarseDist.LocalRange(g.ProcRank)

	multinodes := make(MultinodeTable, countLocal)
	coarseOfLocal := make([]int64, localN) // fine local index -> coarse global, -1 until known
	for i := range coarseOfLocal {
		coarseOfLocal[i] = -1
	}
	for ci, i := range owned {
		gv := lo + i
		gm := mate[i]
		cg := coarseLo + ci
		multinodes[ci] = MultinodeEntry{FineA: gv, FineB: gm}
		coarseOfLocal[i] = int64(cg)
		// A mate on this process shares the multinode; only remote mates
		// need the notification below.
		if gm != gv && gm-lo >= 0 && gm-lo < localN {
			coarseOfLocal[gm-lo] = int64(cg)
		}
	}

	// Step 2: tell the other half of each cross-process pair its coarse
	// number. A vertex only needs telling when it did NOT own the pair,
	// i.e. its mate's global number is smaller than its own.
	notifyOut := make([][]int64, g.Comm.Size())
	for ci, i := range owned {
		gm := mate[i]
		gv := lo + i
		if gm == gv {
			continue
		}
		if owner, ok := g.Dist.Owner(gm); ok && owner != g.ProcRank {
			notifyOut[owner] = append(notifyOut[owner], int64(gm), int64(coarseLo+ci))
		}
	}
	notifyIn, err := g.Comm.AllToAllv(notifyOut)
	if err != nil {
		return nil, nil, err
	}
	for _, buf := range notifyIn {
		for k := 0; k+2 <= len(buf); k += 2 {
			selfGlobal := int(buf[k])
			cg := buf[k+1]
			if li, ok := globalToLocal[selfGlobal]; ok && li < localN {
				coarseOfLocal[li] = cg
			}
		}
	}

	coarseOfGhost, err := g.SyncGhosts(coarseOfLocal)
	if err != nil {
		return nil, nil, err
	}
	coarseGlobalAt := func(localOrGhostIdx int) int64 { return coarseOfGhost[localOrGhostIdx] }

	// Step 3: request remote mates' adjacency, translated through the
	// owner's own coarse-numbering, plus their vertex weight.
	reqOut := make([][]int64, g.Comm.Size())
	var remoteOwners []int // parallel to the ci loop below, recorded for decoding
	remoteCi := make([]int, 0, countLocal)
	for ci, i := range owned {
		gv := lo + i
		gm := mate[i]
		if gm == gv {
			continue
		}
		if _, isLocal := globalToLocal[gm]; isLocal && gm-lo >= 0 && gm-lo < localN {
			continue // mate is local too, handled directly below
		}
		owner, ok := g.Dist.Owner(gm)
		if !ok {
			continue
		}
		reqOut[owner] = append(reqOut[owner], int64(gm))
		remoteOwners = append(remoteOwners, owner)
		remoteCi = append(remoteCi, ci)
	}
	reqIn, err := g.Comm.AllToAllv(reqOut)
	if err != nil {
		return nil, nil, err
	}

	respOut := make([][]int64, g.Comm.Size())
	for proc, wanted := range reqIn {
		for _, gvInt64 := range wanted {
			gv := int(gvInt64)
			li, ok := globalToLocal[gv]
			if !ok || li >= localN {
				respOut[proc] = append(respOut[proc], 0, 0)
				continue
			}
			velo := g.VertexWeight(base + li)
			nbrs := g.Neighbors(base + li)
			ews := g.EdgeWeights(base + li)
			respOut[proc] = append(respOut[proc], velo, int64(len(nbrs)))
			for j, u := range nbrs {
				uLocalOrGhost := u - base
				cg := coarseGlobalAt(uLocalOrGhost)
				w := int64(1)
				if ews != nil {
					w = ews[j]
				}
				respOut[proc] = append(respOut[proc], cg, w)
			}
		}
	}
	respIn, err := g.Comm.AllToAllv(respOut)
	if err != nil {
		return nil, nil, err
	}

	// Decode each process's response stream in request order.
	remoteAdj := make(map[int]struct {
		velo int64
		edges [][2]int64 // coarse global target, weight
	}, len(remoteCi))
	cursor := make(map[int]int)
	for idx, ci := range remoteCi {
		owner := remoteOwners[idx]
		buf := respIn[owner]
		pos := cursor[owner]
		velo := buf[pos]
		n := int(buf[pos+1])
		pos += 2
		edges := make([][2]int64, n)
		for j := 0; j < n; j++ {
			edges[j] = [2]int64{buf[pos], buf[pos+1]}
			pos += 2
		}
		cursor[owner] = pos
		remoteAdj[ci] = struct {
			velo  int64
			edges [][2]int64
		}{velo: velo, edges: edges}
	}

	// Step 4: build each owned coarse vertex's adjacency by merging fineA's
	// and fineB's translated edges, summing duplicate targets and dropping
	// self-loops.
	coarseVerttab := make([]int, countLocal+1)
	var coarseEdgetabGlobal []int
	var coarseEdlotab []int64
	coarseVelotab := make([]int64, countLocal)

	for ci, i := range owned {
		cg := int64(coarseLo + ci)
		merged := make(map[int64]int64)
		gv := lo + i
		gm := mate[i]

		coarseVelotab[ci] = g.VertexWeight(base + i)

		addEdges := func(v int) {
			nbrs := g.Neighbors(v)
			ews := g.EdgeWeights(v)
			for j, u := range nbrs {
				target := coarseGlobalAt(u - base)
				if target == cg {
					continue
				}
				w := int64(1)
				if ews != nil {
					w = ews[j]
				}
				merged[target] += w
			}
		}
		addEdges(base + i)

		if gm != gv {
			if li, ok := globalToLocal[gm]; ok && li < localN {
				coarseVelotab[ci] += g.VertexWeight(base + li)
				addEdges(base + li)
			} else if r, ok := remoteAdj[ci]; ok {
				coarseVelotab[ci] += r.velo
				for _, e := range r.edges {
					if e[0] == cg {
						continue
					}
					merged[e[0]] += e[1]
				}
			}
		}

		targets := make([]int64, 0, len(merged))
		for t := range merged {
			targets = append(targets, t)
		}
		sort.Slice(targets, func(a, b int) bool { return targets[a] < targets[b] })
		for _, t := range targets {
			coarseEdgetabGlobal = append(coarseEdgetabGlobal, int(t))
			coarseEdlotab = append(coarseEdlotab, merged[t])
		}
		coarseVerttab[ci+1] = len(coarseEdgetabGlobal)
	}
	for i := range coarseVerttab {
		coarseVerttab[i] += base
	}

	coarseGraph, err := dgraph.BuildLocal(g.Comm, coarseDist, coarseVerttab, nil, coarseEdgetabGlobal, coarseVelotab, coarseEdlotab)
	if err != nil {
		return nil, nil, err
	}
	return coarseGraph, multinodes, nil
}
