package coarsen

// Heuristic selects the matching strategy §4.3.1 offers.
type Heuristic int

const (
	// HeavyEdge always proposes the heaviest incident unmatched edge.
	HeavyEdge Heuristic = iota
	// Hybrid uses heavy-edge on low-degree vertices and a deterministic
	// weighted-random pick (derived from the vertex's global number, so it
	// stays reproducible under RandomFixedSeed) on the rest.
	Hybrid
)

// hybridDegreeThreshold is the degree at or below which Hybrid behaves exactly
// like HeavyEdge, per spec.md §4.3.1 ("degree-based refinement of
// heavy-edge on low-degree vertices, weighted random on the remainder").
const hybridDegreeThreshold = 4

// MultinodeEntry is one coarse vertex's fine parents. FineB == FineA marks
// a singleton multinode.
type MultinodeEntry struct {
	FineA int // global fine vertex number, always local to the owning process
	FineB int // global fine vertex number, possibly remote; equals FineA for a singleton
}

// MultinodeTable is the ordered sequence of coarse-vertex parent pairs
// local to one process, indexed by local coarse-vertex number.
type MultinodeTable []MultinodeEntry
