package scotch

import "errors"

// ErrEmptyGraph is returned by DistributedMap when the input distributed
// graph has no vertices on any process.
var ErrEmptyGraph = errors.New("scotch: graph has no vertices")
