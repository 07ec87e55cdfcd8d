package dgraph

// SyncGhosts takes local, a slice of length LocalVertexCount() holding one
// value per local vertex, and returns an extended slice of length
// VertCount with the ghost positions filled in from their owning
// processes. It performs two AllToAllv rounds: one to ship the request
// (which global vertex numbers are needed from each neighbor), one to ship
// the replies back.
func (g *Graph) SyncGhosts(local []int64) ([]int64, error) {
	n := g.Comm.Size()

	requests := make([][]int64, n)
	for proc, globals := range g.requestOrder {
		buf := make([]int64, len(globals))
		for i, gv := range globals {
			buf[i] = int64(gv)
		}
		requests[proc] = buf
	}

	inbound, err := g.Comm.AllToAllv(requests)
	if err != nil {
		return nil, err
	}

	lo, _ := g.Dist.LocalRange(g.ProcRank)
	replies := make([][]int64, n)
	for proc, wanted := range inbound {
		if len(wanted) == 0 {
			continue
		}
		buf := make([]int64, len(wanted))
		for i, gv := range wanted {
			buf[i] = local[int(gv)-lo]
		}
		replies[proc] = buf
	}

	answers, err := g.Comm.AllToAllv(replies)
	if err != nil {
		return nil, err
	}

	out := make([]int64, g.VertCount)
	copy(out[:g.LocalVertexCount()], local)
	for proc, slots := range g.requestSlot {
		vals := answers[proc]
		for i, slot := range slots {
			out[g.LocalVertexCount()+slot] = vals[i]
		}
	}
	return out, nil
}
