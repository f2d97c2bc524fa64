package filter

import "errors"

// Errors returned by filter construction and application.
var (
	// ErrEmptyWindow is returned when a filter is built on a window with no
	// position.
	ErrEmptyWindow = errors.New("filter: empty window")

	// ErrWeightCount is returned when the number of kernel weights differs
	// from the window size.
	ErrWeightCount = errors.New("filter: weight count does not match window size")

	// ErrNoBoundary is returned when a filter reads outside the input domain
	// and no extrapolation policy was given.
	ErrNoBoundary = errors.New("filter: boundary policy required")
)
