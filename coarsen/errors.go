package coarsen

import "errors"

var (
	// ErrInvalidRatio reports a contraction ratio outside the accepted
	// [0.5, 1) range, per spec.md §8's boundary behaviors. Match and
	// Assemble take no ratio argument, so neither returns it.
	ErrInvalidRatio = errors.New("coarsen: contraction ratio must be in [0.5, 1)")
	// ErrPfixLength is returned when a Pfix array's length does not match
	// the graph's local vertex count.
	ErrPfixLength = errors.New("coarsen: pfix length must equal local vertex count")
	// ErrFoldTooManyMessages is returned when the fold-communication
	// planner cannot place every sender's payload within the retry bound.
	ErrFoldTooManyMessages = errors.New("coarsen: fold communication pattern exceeded retry bound")
)
