package sampling

import (
	"math"

	"github.com/gogpu/lattice"
)

// Real is the set of element types which interpolation converts to float64.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Source is anything which yields a value at an integer position, e.g. a
// raster (inside its domain) or an Extrapolator (anywhere).
type Source[T any] interface {
	At(p lattice.Position) T
}

// Interpolation computes a value at a non-integer position from the
// surrounding integer samples.
//
// Interpolation methods do not check bounds: reading around positions near
// or outside the domain requires an Extrapolator source.
type Interpolation[T Real] interface {
	At(src Source[T], v lattice.Vector) float64
}

// Linear interpolation uses 2 samples per axis.
type Linear[T Real] struct{}

// At returns the multilinear interpolation at v.
func (Linear[T]) At(src Source[T], v lattice.Vector) float64 {
	return separable(src, v, 0, 2, func(s []float64, d float64) float64 {
		p, n := s[0], s[1]
		return p + d*(n-p)
	})
}

// Cubic interpolation uses 4 samples per axis (Catmull-Rom spline).
type Cubic[T Real] struct{}

// At returns the cubic interpolation at v.
func (Cubic[T]) At(src Source[T], v lattice.Vector) float64 {
	return separable(src, v, -1, 4, func(s []float64, d float64) float64 {
		pp, p, n, nn := s[0], s[1], s[2], s[3]
		return p + 0.5*(d*(n-pp)+
			d*d*(2*pp-5*p+4*n-nn)+
			d*d*d*(-pp+3*p-3*n+nn))
	})
}

// NearestNeighbor returns the sample at the nearest integer position,
// rounding ties toward +Inf.
type NearestNeighbor[T Real] struct{}

// At returns the sample at v.Round().
func (NearestNeighbor[T]) At(src Source[T], v lattice.Vector) float64 {
	return float64(src.At(v.Round()))
}

// separable evaluates a tensor-product interpolation: taps samples per axis
// starting at floor(v) + first, reduced axis after axis with combine.
//
// Samples are gathered in column-major order over the taps^N neighborhood,
// so reducing consecutive runs of taps values collapses axis 0 first.
func separable[T Real](
	src Source[T],
	v lattice.Vector,
	first, taps int,
	combine func(samples []float64, d float64) float64,
) float64 {
	n := len(v)
	floor := v.Floor()
	frac := make([]float64, n)
	for i, c := range v {
		frac[i] = c - math.Floor(c)
	}

	count := 1
	for range n {
		count *= taps
	}
	values := make([]float64, count)
	offset := make([]int, n)
	pos := make(lattice.Position, n)
	for k := range values {
		for i := range n {
			pos[i] = floor[i] + first + offset[i]
		}
		values[k] = float64(src.At(pos))
		for i := range n {
			offset[i]++
			if offset[i] < taps {
				break
			}
			offset[i] = 0
		}
	}

	for axis := range n {
		reduced := values[:len(values)/taps]
		for k := range reduced {
			reduced[k] = combine(values[k*taps:(k+1)*taps], frac[axis])
		}
		values = reduced
	}
	return values[0]
}
