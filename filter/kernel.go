package filter

import (
	"fmt"
	"slices"

	"github.com/gogpu/lattice"
)

// NewCorrelation creates a correlation kernel from weights given in window
// order: out(p) = sum of conj(weights[i]) * in(p + window[i]).
func NewCorrelation[T Number](weights []T, window lattice.Region) (*SimpleFilter[T], error) {
	if err := checkWeights(len(weights), window); err != nil {
		return nil, err
	}
	stored := make([]T, len(weights))
	for i, w := range weights {
		stored[i] = conj(w)
	}
	return New[T](window, Kernel[T]{weights: stored})
}

// NewConvolution creates a convolution kernel from weights given in window
// order. It is the correlation with the reversed weights.
func NewConvolution[T Number](weights []T, window lattice.Region) (*SimpleFilter[T], error) {
	if err := checkWeights(len(weights), window); err != nil {
		return nil, err
	}
	stored := slices.Clone(weights)
	slices.Reverse(stored)
	return New[T](window, Kernel[T]{weights: stored})
}

func checkWeights(count int, window lattice.Region) error {
	if window.Size() == 0 {
		return ErrEmptyWindow
	}
	if count != window.Size() {
		return fmt.Errorf("%w: %d weights, %d positions", ErrWeightCount, count, window.Size())
	}
	return nil
}

// CorrelationFrom creates a correlation kernel from a raster of weights.
// The weight at origin applies to the filtered position itself.
func CorrelationFrom[T Number](weights *lattice.Raster[T], origin lattice.Position) (*SimpleFilter[T], error) {
	return NewCorrelation(weights.Data(), weightWindow(weights, origin))
}

// ConvolutionFrom creates a convolution kernel from a raster of weights,
// see CorrelationFrom.
func ConvolutionFrom[T Number](weights *lattice.Raster[T], origin lattice.Position) (*SimpleFilter[T], error) {
	return NewConvolution(weights.Data(), weightWindow(weights, origin))
}

// CenteredCorrelation creates a correlation kernel whose origin is the
// center of the weight raster, rounded down for even lengths.
func CenteredCorrelation[T Number](weights *lattice.Raster[T]) (*SimpleFilter[T], error) {
	return CorrelationFrom(weights, center(weights.Shape()))
}

// CenteredConvolution creates a convolution kernel whose origin is the
// center of the weight raster, rounded down for even lengths.
func CenteredConvolution[T Number](weights *lattice.Raster[T]) (*SimpleFilter[T], error) {
	return ConvolutionFrom(weights, center(weights.Shape()))
}

// SparseConvolution creates a centered convolution kernel which only reads
// the neighbors of non-zero weights. The result equals that of
// CenteredConvolution; the cost is proportional to the number of non-zero
// weights.
func SparseConvolution[T Number](weights *lattice.Raster[T]) (*SimpleFilter[T], error) {
	window := weightWindow(weights, center(weights.Shape()))
	if window.Size() == 0 {
		return nil, ErrEmptyWindow
	}

	// Convolution pairs the i-th window position with the i-th weight from
	// the end.
	reversed := slices.Clone(weights.Data())
	slices.Reverse(reversed)

	var zero T
	mask := lattice.NewMask(window, false)
	var stored []T
	i := 0
	for p := range window.All() {
		if w := reversed[i]; w != zero {
			mask.Set(p, true)
			stored = append(stored, w)
		}
		i++
	}
	if len(stored) == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrEmptyWindow)
	}
	return New[T](mask, Kernel[T]{weights: stored})
}

// weightWindow returns the window of a weight raster anchored at origin.
func weightWindow[T any](weights *lattice.Raster[T], origin lattice.Position) lattice.Box {
	return weights.Domain().Translate(origin.Neg())
}

// center returns the per-axis origin floor((length - 1) / 2).
func center(shape lattice.Position) lattice.Position {
	out := make(lattice.Position, len(shape))
	for i, l := range shape {
		out[i] = (l - 1) / 2
	}
	return out
}

// lineWindow returns the window of a 1-D kernel of the given length along
// axis, with origin floor((length - 1) / 2). The window has axis+1 axes.
func lineWindow(length, axis int) lattice.Box {
	origin := (length - 1) / 2
	front := lattice.Zero(axis+1).With(axis, -origin)
	back := lattice.Zero(axis+1).With(axis, length-1-origin)
	return lattice.NewBox(front, back)
}

// CorrelationAlong chains one 1-D correlation kernel per axis. Each kernel
// has the given values and its origin at index floor((len(values) - 1) / 2).
func CorrelationAlong[T Number](values []T, axes ...int) (*Chain[T], error) {
	return along(values, axes, NewCorrelation[T])
}

// ConvolutionAlong chains one 1-D convolution kernel per axis,
// see CorrelationAlong.
func ConvolutionAlong[T Number](values []T, axes ...int) (*Chain[T], error) {
	return along(values, axes, NewConvolution[T])
}

func along[T Number](
	values []T,
	axes []int,
	build func([]T, lattice.Region) (*SimpleFilter[T], error),
) (*Chain[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyWindow
	}
	chain := NewChain[T]()
	for _, axis := range axes {
		if axis < 0 {
			return nil, fmt.Errorf("%w: %d", lattice.ErrInvalidAxis, axis)
		}
		f, err := build(values, lineWindow(len(values), axis))
		if err != nil {
			return nil, err
		}
		chain.Then(f)
	}
	return chain, nil
}
