package gctx

import "errors"

// Sentinel errors returned by the gctx package.
var (
	// ErrInvalidWorkerCount indicates a non-positive, non-(-1) worker count
	// was passed to NewContext.
	ErrInvalidWorkerCount = errors.New("gctx: worker count must be -1, or >= 1")

	// ErrTooSmall is returned by SplitLaunch when the context owns fewer
	// than two workers; the caller is expected to run sequentially instead.
	ErrTooSmall = errors.New("gctx: context has fewer than two workers to split")

	// ErrAlreadyExited indicates Exit was called more than once on the same
	// owning Context.
	ErrAlreadyExited = errors.New("gctx: context already exited")

	// ErrBorrowedContext indicates Exit was called on a Context obtained
	// from SplitLaunch rather than from NewContext; only the owner may
	// release the underlying pool.
	ErrBorrowedContext = errors.New("gctx: cannot exit a borrowed (split) context")

	// ErrUnknownOption indicates option_parse encountered a letter outside
	// the closed set {d, u, f, r}.
	ErrUnknownOption = errors.New("gctx: unknown option letter")
)
