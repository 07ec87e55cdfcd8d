package order

import "errors"

// Sentinel errors returned by the order package.
var (
	// ErrEmptyGraph indicates Order was called on a zero-vertex graph.
	ErrEmptyGraph = errors.New("order: graph has no vertices")
)
