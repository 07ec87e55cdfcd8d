package partition

import "sync"

// Result is the outcome of a Partition or PartitionWithOverlap call.
type Result struct {
	// Part holds, for every vertex of the original graph (0-based, aligned
	// with Baseval+i), its assigned part in [0, K), or -1 if the vertex
	// fell into the separator.
	Part []int

	// Frontier lists every separator vertex's (Baseval-relative) original
	// vertex number, in discovery order.
	Frontier []int

	// Overlap[i] lists the distinct part ids Frontier[i] is adjacent to.
	// Populated only by PartitionWithOverlap; nil from Partition.
	Overlap [][]int

	// FronLoad is the total vertex weight of the separator. Always 0 for
	// Partition, since a pure partition resolves every separator vertex
	// into a part before returning; only PartitionWithOverlap can leave it
	// nonzero.
	FronLoad int64

	// PartLoad[p] is the total vertex weight assigned to part p.
	PartLoad []int64

	// Cut is the total weight of edges whose two endpoints landed in
	// different, non-separator parts.
	Cut int64
}

// recursionDatum is the shared, mutex-protected state threaded through one
// top-level Partition call's recursion: the global part array and the
// accumulated frontier list, per spec.md §4.4 and §5's shared-resource
// policy ("global frontier array ... protected by a mutex stored in the
// recursion datum").
type recursionDatum struct {
	mu       sync.Mutex
	origBase int
	part     []int
	frontier []int
}

func (d *recursionDatum) writeLeaf(globalVert, domnnum int) {
	d.mu.Lock()
	d.part[globalVert-d.origBase] = domnnum
	d.mu.Unlock()
}

func (d *recursionDatum) markFrontier(globalVert int) {
	d.mu.Lock()
	d.frontier = append(d.frontier, globalVert)
	d.mu.Unlock()
}
