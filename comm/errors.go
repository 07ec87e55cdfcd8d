package comm

import "errors"

var (
	// ErrInvalidRank is returned when a rank argument falls outside [0, size).
	ErrInvalidRank = errors.New("comm: rank out of range")
	// ErrInvalidSize is returned when a world is created with size < 1.
	ErrInvalidSize = errors.New("comm: world size must be at least 1")
	// ErrLengthMismatch is returned when AllToAllv's send slice does not have
	// exactly size entries.
	ErrLengthMismatch = errors.New("comm: send slice must have one entry per rank")
)
