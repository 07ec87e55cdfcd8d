package coarsen

import (
	"sort"

	"github.com/katalvlaran/scotch/dgraph"
	"github.com/katalvlaran/scotch/gctx"
)

// MatchOptions configures one Match call. Ctx is optional: it is only
// consulted for Hybrid's weighted-random branch; a nil Ctx makes Hybrid
// degrade to HeavyEdge on every vertex.
type MatchOptions struct {
	Heuristic Heuristic
	NoMerge   bool
	Pfix      []int // optional, length g.LocalVertexCount(); -1 means unfixed
	MaxRounds int    // defaults to 8 if <= 0
	Ctx       *gctx.Context
}

type proposal struct {
	fromGlobal int
	fromProc   int
	weight     int64
}

// Match runs the cross-process mate negotiation protocol of spec.md
// §4.3.1 and returns, for every local vertex, its mate's global vertex
// number (a vertex mated to itself is a singleton multinode).
func Match(g *dgraph.Graph, opts MatchOptions) ([]int, error) {
	localN := g.LocalVertexCount()
	if opts.Pfix != nil && len(opts.Pfix) != localN {
		return nil, ErrPfixLength
	}
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = 8
	}

	base := g.Baseval
	vertCount := g.VertCount
	lo, _ := g.Dist.LocalRange(g.ProcRank)

	globalToLocal := make(map[int]int, vertCount)
	for i := 0; i < localN; i++ {
		globalToLocal[lo+i] = i
	}
	for i, gv := range g.GhostGlobal {
		globalToLocal[gv] = localN + i
	}
	localToGlobal := func(idx int) int {
		if idx < localN {
			return lo + idx
		}
		return g.GhostGlobal[idx-localN]
	}
	pfixOf := func(idx int) int {
		if opts.Pfix == nil || idx >= localN {
			return -1
		}
		return opts.Pfix[idx]
	}

	mateGlobal := make([]int, vertCount) // -1 = unmatched; indexed by local-or-ghost position
	for i := range mateGlobal {
		mateGlobal[i] = -1
	}

	for round := 0; round < maxRounds; round++ {
		localFlag := make([]int64, localN)
		for i := 0; i < localN; i++ {
			if mateGlobal[i] != -1 {
				localFlag[i] = 1
			}
		}
		extended, err := g.SyncGhosts(localFlag)
		if err != nil {
			return nil, err
		}
		matched := make([]bool, vertCount)
		for i := 0; i < vertCount; i++ {
			matched[i] = extended[i] != 0 || mateGlobal[i] != -1
		}

		// Pass 1: every unmatched local vertex proposes to its best
		// unmatched, pfix-compatible neighbor.
		proposeTo := make([]int, localN) // local-or-ghost index, -1 if none
		for i := range proposeTo {
			proposeTo[i] = -1
		}
		for v := base; v < g.VnohNnd; v++ {
			i := v - base
			if matched[i] {
				continue
			}
			target, ok := bestCandidate(g, opts, v, i, matched, pfixOf)
			if ok {
				proposeTo[i] = target
			}
		}

		// Partition proposals: local targets resolve without the network;
		// remote (ghost) targets go out via AllToAllv, keyed by owner.
		localInbound := make(map[int][]proposal) // target local idx -> candidates
		outbound := make([][]int64, g.Comm.Size())
		for i, target := range proposeTo {
			if target < 0 {
				continue
			}
			w := weightOf(g, base+i, target+base)
			if target < localN {
				localInbound[target] = append(localInbound[target], proposal{
					fromGlobal: localToGlobal(i), fromProc: g.ProcRank, weight: w,
				})
				continue
			}
			targetGlobal := localToGlobal(target)
			owner, ok := g.Dist.Owner(targetGlobal)
			if !ok {
				continue
			}
			outbound[owner] = append(outbound[owner], int64(localToGlobal(i)), int64(targetGlobal), w)
		}
		inbound, err := g.Comm.AllToAllv(outbound)
		if err != nil {
			return nil, err
		}
		for proc, buf := range inbound {
			for k := 0; k+3 <= len(buf); k += 3 {
				fromGlobal := int(buf[k])
				toGlobal := int(buf[k+1])
				w := buf[k+2]
				li, ok := globalToLocal[toGlobal]
				if !ok || li >= localN {
					continue
				}
				localInbound[li] = append(localInbound[li], proposal{fromGlobal: fromGlobal, fromProc: proc, weight: w})
			}
		}

		// Pass 2: reconcile, picking the highest-priority proposal per
		// locally-owned target vertex.
		ackOut := make([][]int64, g.Comm.Size())
		for target, cands := range localInbound {
			if mateGlobal[target] != -1 {
				continue
			}
			sort.Slice(cands, func(a, b int) bool {
				if cands[a].weight != cands[b].weight {
					return cands[a].weight > cands[b].weight
				}
				if cands[a].fromProc != cands[b].fromProc {
					return cands[a].fromProc < cands[b].fromProc
				}
				return cands[a].fromGlobal < cands[b].fromGlobal
			})
			// A local proposer may already have been claimed as the target of
			// an earlier reconciliation in this pass; skip it so both halves
			// of every committed pair name each other.
			// A target that itself proposed to a remote vertex accepts only
			// that vertex, so the ack for its own proposal cannot contradict
			// the pair committed here.
			mine := -1
			if p := proposeTo[target]; p >= localN {
				mine = localToGlobal(p)
			}
			winnerIdx := -1
			for k, c := range cands {
				if mine != -1 && c.fromGlobal != mine {
					continue
				}
				if c.fromProc == g.ProcRank {
					if wi, ok := globalToLocal[c.fromGlobal]; ok && mateGlobal[wi] != -1 {
						continue
					}
				}
				winnerIdx = k
				break
			}
			if winnerIdx == -1 {
				continue
			}
			winner := cands[winnerIdx]
			targetGlobal := localToGlobal(target)
			mateGlobal[target] = winner.fromGlobal
			if winner.fromProc == g.ProcRank {
				if wi, ok := globalToLocal[winner.fromGlobal]; ok && wi < vertCount {
					mateGlobal[wi] = targetGlobal
				}
			} else {
				ackOut[winner.fromProc] = append(ackOut[winner.fromProc], int64(winner.fromGlobal), int64(targetGlobal))
			}
		}
		acks, err := g.Comm.AllToAllv(ackOut)
		if err != nil {
			return nil, err
		}
		for _, buf := range acks {
			for k := 0; k+1 < len(buf); k += 2 {
				selfGlobal := int(buf[k])
				mateGlobalVal := int(buf[k+1])
				if li, ok := globalToLocal[selfGlobal]; ok {
					mateGlobal[li] = mateGlobalVal
				}
			}
		}
	}

	if !opts.NoMerge {
		pairIsolatedVertices(g, opts, mateGlobal, localN, base, pfixOf)
	}
	for i := 0; i < localN; i++ {
		if mateGlobal[i] == -1 {
			mateGlobal[i] = localToGlobal(i)
		}
	}
	return mateGlobal[:localN], nil
}

func bestCandidate(g *dgraph.Graph, opts MatchOptions, v, i int, matched []bool, pfixOf func(int) int) (int, bool) {
	nbrs := g.Neighbors(v)
	if len(nbrs) == 0 {
		return -1, false
	}
	if opts.Heuristic == Hybrid && len(nbrs) > hybridDegreeThreshold && opts.Ctx != nil {
		return weightedRandomCandidate(g, opts, v, i, nbrs, matched, pfixOf)
	}
	return heaviestCandidate(g, v, i, nbrs, matched, pfixOf)
}

func heaviestCandidate(g *dgraph.Graph, v, i int, nbrs []int, matched []bool, pfixOf func(int) int) (int, bool) {
	best := -1
	var bestWeight int64 = -1
	var bestGlobal int
	myPfix := pfixOf(i)
	for _, u := range nbrs {
		ui := u - g.Baseval
		if matched[ui] {
			continue
		}
		if !pfixCompatible(myPfix, pfixOf(ui)) {
			continue
		}
		w := weightOf(g, v, u)
		ug := g.GlobalOf(u)
		if w > bestWeight || (w == bestWeight && ug < bestGlobal) {
			best, bestWeight, bestGlobal = ui, w, ug
		}
	}
	return best, best != -1
}

func weightedRandomCandidate(g *dgraph.Graph, opts MatchOptions, v, i int, nbrs []int, matched []bool, pfixOf func(int) int) (int, bool) {
	type cand struct {
		idx int
		w   int64
	}
	var cands []cand
	var total int64
	myPfix := pfixOf(i)
	for _, u := range nbrs {
		ui := u - g.Baseval
		if matched[ui] || !pfixCompatible(myPfix, pfixOf(ui)) {
			continue
		}
		w := weightOf(g, v, u)
		cands = append(cands, cand{idx: ui, w: w})
		total += w
	}
	if len(cands) == 0 {
		return -1, false
	}
	sort.Slice(cands, func(a, b int) bool { return cands[a].idx < cands[b].idx })
	if total <= 0 {
		return cands[0].idx, true
	}
	r := opts.Ctx.RandomDerive(uint64(g.GlobalOf(v)))
	pick := r.Int63() % total
	if pick < 0 {
		pick += total
	}
	var acc int64
	for _, c := range cands {
		acc += c.w
		if pick < acc {
			return c.idx, true
		}
	}
	return cands[len(cands)-1].idx, true
}

func pfixCompatible(a, b int) bool { return !(a != -1 && b != -1 && a != b) }

func weightOf(g *dgraph.Graph, v, u int) int64 {
	ews := g.EdgeWeights(v)
	if ews == nil {
		return 1
	}
	for j, n := range g.Neighbors(v) {
		if n == u {
			return ews[j]
		}
	}
	return 1
}

// pairIsolatedVertices merges remaining degree-0 local vertices two at a
// time, in local order, respecting Pfix compatibility. It implements
// §4.3.1's "isolated vertices may be merged together under NoMerge=false."
func pairIsolatedVertices(g *dgraph.Graph, opts MatchOptions, mateGlobal []int, localN, base int, pfixOf func(int) int) {
	pending := -1
	for i := 0; i < localN; i++ {
		if mateGlobal[i] != -1 {
			continue
		}
		if g.Degree(base+i) != 0 {
			continue
		}
		if pending == -1 {
			pending = i
			continue
		}
		if !pfixCompatible(pfixOf(pending), pfixOf(i)) {
			continue
		}
		mateGlobal[pending] = gOf(g, i)
		mateGlobal[i] = gOf(g, pending)
		pending = -1
	}
}

func gOf(g *dgraph.Graph, localIdx int) int { return g.GlobalOf(g.Baseval + localIdx) }
