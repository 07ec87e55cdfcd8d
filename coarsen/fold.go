package coarsen

import "sort"

// FoldSlot is one (partner, count, firstVertex) tuple in a fold plan, per
// spec.md §4.3.4.
type FoldSlot struct {
	Partner     int
	Count       int
	FirstVertex int // Baseval-relative, in the sender's own numbering
}

// FoldPlan is one process's role in a fold: the messages it must send
// and/or receive, plus — for a receiver — the adjustment array translating
// an incoming sender-relative vertex range into a contiguous receiver-local
// range.
type FoldPlan struct {
	IsSender     bool
	IsReceiver   bool
	SendSlots    []FoldSlot
	RecvSlots    []FoldSlot
	// Adjust[i] is the receiver-local first index that RecvSlots[i]'s
	// incoming vertices are placed at.
	Adjust []int
}

type loadEntry struct {
	proc  int
	count int
}

// PlanFoldCommPattern computes, for every process, its role in folding the
// processes owning counts[p] coarse vertices each onto one receiver half
// (half 0: processes [0, ceil(P/2)); half 1: the last ceil(P/2) processes),
// every other process acting as a sender, per spec.md §4.3.4. foldCommNbr bounds how many messages any single
// process may send or receive; the bound is doubled and the plan retried
// until it succeeds or maxRetries is exhausted.
func PlanFoldCommPattern(baseval int, counts []int, half int, foldCommNbr, maxRetries int) ([]FoldPlan, error) {
	p := len(counts)
	recvCount := (p + 1) / 2
	var receivers, senders []int
	if half == 0 {
		for i := 0; i < recvCount; i++ {
			receivers = append(receivers, i)
		}
		for i := recvCount; i < p; i++ {
			senders = append(senders, i)
		}
	} else {
		for i := p - recvCount; i < p; i++ {
			receivers = append(receivers, i)
		}
		for i := 0; i < p-recvCount; i++ {
			senders = append(senders, i)
		}
	}

	bound := foldCommNbr
	for attempt := 0; attempt <= maxRetries; attempt++ {
		plans, ok := tryPlanFold(baseval, counts, receivers, senders, bound)
		if ok {
			return plans, nil
		}
		bound *= 2
	}
	return nil, ErrFoldTooManyMessages
}

func tryPlanFold(baseval int, counts []int, receivers, senders []int, bound int) ([]FoldPlan, bool) {
	p := len(counts)
	plans := make([]FoldPlan, p)

	load := make([]int, p)
	copy(load, counts)

	recvLoad := make([]loadEntry, len(receivers))
	for i, r := range receivers {
		recvLoad[i] = loadEntry{proc: r, count: load[r]}
	}
	sendLoad := make([]loadEntry, len(senders))
	for i, s := range senders {
		sendLoad[i] = loadEntry{proc: s, count: load[s]}
	}

	msgsSent := make(map[int]int)
	msgsRecv := make(map[int]int)

	for {
		remaining := false
		for _, s := range sendLoad {
			if load[s.proc] > 0 {
				remaining = true
				break
			}
		}
		if !remaining {
			break
		}

		sort.Slice(recvLoad, func(a, b int) bool { return load[recvLoad[a].proc] < load[recvLoad[b].proc] })
		sort.Slice(sendLoad, func(a, b int) bool { return load[sendLoad[a].proc] > load[sendLoad[b].proc] })

		recv := recvLoad[0].proc
		send := -1
		for _, s := range sendLoad {
			if load[s.proc] > 0 {
				send = s.proc
				break
			}
		}
		if send == -1 {
			break
		}
		if msgsSent[send] >= bound || msgsRecv[recv] >= bound {
			return nil, false
		}

		move := load[send]
		firstVertex := baseval + (counts[send] - load[send])
		plans[send].IsSender = true
		plans[send].SendSlots = append(plans[send].SendSlots, FoldSlot{Partner: recv, Count: move, FirstVertex: firstVertex})
		plans[recv].IsReceiver = true
		plans[recv].RecvSlots = append(plans[recv].RecvSlots, FoldSlot{Partner: send, Count: move, FirstVertex: firstVertex})

		load[send] = 0
		load[recv] += move
		msgsSent[send]++
		msgsRecv[recv]++
	}

	// Compute each receiver's adjustment array: the receiver-local first
	// index of every RecvSlot, assigned in the order the slots were recorded
	// so the moved vertices land contiguously after the receiver's own.
	for _, r := range receivers {
		cursor := counts[r]
		adjust := make([]int, len(plans[r].RecvSlots))
		for i := range plans[r].RecvSlots {
			adjust[i] = cursor
			cursor += plans[r].RecvSlots[i].Count
		}
		plans[r].Adjust = adjust
	}
	return plans, true
}
