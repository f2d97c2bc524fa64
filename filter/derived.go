package filter

import (
	"fmt"

	"github.com/gogpu/lattice"
)

// PrewittGradient returns the Prewitt approximation of the derivative along
// the derivation axis, smoothed along the averaging axes:
// the convolution by {sign, 0, -sign} along derivation chained with the
// convolution by {1, 1, 1} along each averaging axis.
func PrewittGradient[T Number](sign T, derivation int, averaging ...int) (*Chain[T], error) {
	return gradient([]T{1, 1, 1}, sign, derivation, averaging)
}

// SobelGradient is PrewittGradient with averaging kernel {1, 2, 1}.
func SobelGradient[T Number](sign T, derivation int, averaging ...int) (*Chain[T], error) {
	return gradient([]T{1, 2, 1}, sign, derivation, averaging)
}

// ScharrGradient is PrewittGradient with averaging kernel {3, 10, 3}.
func ScharrGradient[T Number](sign T, derivation int, averaging ...int) (*Chain[T], error) {
	return gradient([]T{3, 10, 3}, sign, derivation, averaging)
}

func gradient[T Number](smoothing []T, sign T, derivation int, averaging []int) (*Chain[T], error) {
	for _, axis := range averaging {
		if axis == derivation {
			return nil, fmt.Errorf("%w: axis %d both derived and averaged", lattice.ErrInvalidAxis, axis)
		}
	}
	derive, err := ConvolutionAlong([]T{sign, 0, -sign}, derivation)
	if err != nil {
		return nil, err
	}
	if len(averaging) == 0 {
		return derive, nil
	}
	average, err := ConvolutionAlong(smoothing, averaging...)
	if err != nil {
		return nil, err
	}
	return derive.Then(average.Filters()...), nil
}

// LaplaceOperator returns the sum over axes of the convolutions by
// {sign, -2 sign, sign}.
func LaplaceOperator[T Number](sign T, axes ...int) (*Aggregate[T], error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: no axis", lattice.ErrInvalidAxis)
	}
	values := []T{sign, -(sign + sign), sign}
	filters := make([]Filter[T], 0, len(axes))
	for _, axis := range axes {
		f, err := ConvolutionAlong(values, axis)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return NewAggregate(Sum[T], filters...), nil
}
