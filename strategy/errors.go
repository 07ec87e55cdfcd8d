package strategy

import "errors"

// Sentinel errors returned by the strategy package.
var (
	// ErrEmptyText indicates strategy text was empty or all whitespace.
	ErrEmptyText = errors.New("strategy: empty strategy text")

	// ErrSyntax indicates the parser could not make sense of the input.
	ErrSyntax = errors.New("strategy: syntax error")

	// ErrUnknownMethod indicates a method() node named a method absent from
	// the active table.
	ErrUnknownMethod = errors.New("strategy: unknown method")

	// ErrUnknownParam indicates a method() node set a parameter absent from
	// that method's descriptor list.
	ErrUnknownParam = errors.New("strategy: unknown parameter")

	// ErrParamType indicates a parameter value could not be converted to the
	// type its descriptor declares.
	ErrParamType = errors.New("strategy: parameter type mismatch")

	// ErrUnknownFeature indicates a condition expression referenced a
	// feature name the active table never declared.
	ErrUnknownFeature = errors.New("strategy: unknown condition feature")

	// ErrNilNode indicates Dispatch was called with a nil tree node.
	ErrNilNode = errors.New("strategy: nil node")

	// ErrBothBranchesFailed indicates a Select node's both branches failed.
	ErrBothBranchesFailed = errors.New("strategy: both select branches failed")
)
