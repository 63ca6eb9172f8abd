package medit

import "errors"

var (
	// ErrNilContext rejects calls that need cancellation but got nil.
	ErrNilContext = errors.New("medit: ctx is nil")

	// ErrNegativeCost rejects cost sets with a weight below zero.
	ErrNegativeCost = errors.New("medit: negative operation cost")

	// ErrTableTooLarge refuses a full cost table whose cell count would
	// exceed the allocation cap.
	ErrTableTooLarge = errors.New("medit: cost table too large")
)
