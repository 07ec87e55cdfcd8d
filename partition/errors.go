package partition

import "errors"

// Sentinel errors returned by the partition package.
var (
	// ErrInvalidK indicates Partition was asked for fewer than one part.
	ErrInvalidK = errors.New("partition: K must be >= 1")

	// ErrNilStrategy reports a nil strategy table or node. Partition and
	// PartitionWithOverlap never return it: they substitute DefaultTable
	// and DefaultNode for nil arguments.
	ErrNilStrategy = errors.New("partition: strategy table and node must be non-nil")
)
