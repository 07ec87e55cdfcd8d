package sgraph

import "errors"

var (
	// ErrInvalidBaseval is returned when Baseval is outside {0, 1}.
	ErrInvalidBaseval = errors.New("sgraph: baseval must be 0 or 1")
	// ErrNegativeVertCount is returned when VertCount is negative.
	ErrNegativeVertCount = errors.New("sgraph: vertex count must be non-negative")
	// ErrVerttabLength is returned when Verttab/Vendtab have inconsistent lengths.
	ErrVerttabLength = errors.New("sgraph: verttab/vendtab length mismatch")
	// ErrEdgetabRange is returned when an edgetab entry references a
	// vertex outside [baseval, baseval+vertCount).
	ErrEdgetabRange = errors.New("sgraph: edgetab entry out of range")
	// ErrAsymmetric is returned when the adjacency is not symmetric, i.e.
	// u is a neighbor of v but v is not a neighbor of u.
	ErrAsymmetric = errors.New("sgraph: adjacency is not symmetric")
	// ErrVeloLength is returned when Velotab's length does not match VertCount.
	ErrVeloLength = errors.New("sgraph: velotab length must equal vertex count")
	// ErrEdloLength is returned when Edlotab's length does not match len(Edgetab).
	ErrEdloLength = errors.New("sgraph: edlotab length must equal edge count")
	// ErrNegativeWeight is returned when a vertex or edge weight is negative.
	ErrNegativeWeight = errors.New("sgraph: weights must be non-negative")
	// ErrVeloSumMismatch reports a VeloSum that does not equal sum(Velotab).
	// Build computes VeloSum itself, so it never returns it.
	ErrVeloSumMismatch = errors.New("sgraph: velo sum does not match velotab")
	// ErrVertexRange is returned when a vertex argument is out of [baseval, baseval+vertCount).
	ErrVertexRange = errors.New("sgraph: vertex out of range")
	// ErrEmptyPart is returned when InducePart is asked for a part id that selects no vertices.
	ErrEmptyPart = errors.New("sgraph: induced part is empty")
)
