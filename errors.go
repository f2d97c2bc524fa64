package lattice

import (
	"errors"
	"fmt"
)

// Common errors for region and raster operations.
var (
	// ErrDimensionMismatch is returned (or used as panic value) when two
	// positions, regions or rasters do not have the same number of axes.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrShapeMismatch is returned when a flag or data buffer does not match
	// the shape it is associated with.
	ErrShapeMismatch = errors.New("lattice: shape mismatch")

	// ErrInvalidStep is returned when a grid step is not strictly positive.
	ErrInvalidStep = errors.New("lattice: grid step must be positive")

	// ErrInvalidAxis is returned when an axis index is out of range.
	ErrInvalidAxis = errors.New("lattice: axis out of range")

	// ErrInvalidShape is returned when a raster shape has a negative length
	// or no axis at all.
	ErrInvalidShape = errors.New("lattice: invalid shape")
)

// mustMatch panics if the two dimensions differ.
func mustMatch(a, b int) {
	if a != b {
		panic(fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, a, b))
	}
}

// mustAxis panics if axis is not in [0, dim).
func mustAxis(axis, dim int) {
	if axis < 0 || axis >= dim {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidAxis, axis, dim))
	}
}
