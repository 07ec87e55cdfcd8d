package dgraph

import "errors"

var (
	// ErrVertexRangeMismatch is returned when the per-process vertex ranges
	// do not tile [baseval, baseval+globalVertCount) contiguously.
	ErrVertexRangeMismatch = errors.New("dgraph: per-process vertex ranges must tile the global range contiguously")
	// ErrUnknownGlobalVertex is returned when a referenced global vertex
	// number does not fall in any process's range.
	ErrUnknownGlobalVertex = errors.New("dgraph: global vertex number out of range")
	// ErrNotLocal is returned when an operation requiring a local vertex is
	// given a ghost or out-of-range one.
	ErrNotLocal = errors.New("dgraph: vertex is not local to this process")
)
