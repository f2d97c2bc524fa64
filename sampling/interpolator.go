package sampling

import (
	"github.com/gogpu/lattice"
)

// Interpolator reads a raster at real positions, extrapolating the samples
// which fall outside its domain.
type Interpolator[T Real] struct {
	source *Extrapolator[T]
	method Interpolation[T]
}

// NewInterpolator pairs a raster with an interpolation method and a
// boundary policy. A nil boundary defaults to Nearest.
func NewInterpolator[T Real](r *lattice.Raster[T], method Interpolation[T], boundary Extrapolation[T]) *Interpolator[T] {
	if boundary == nil {
		boundary = Nearest[T]{}
	}
	return &Interpolator[T]{source: Extrapolate(r, boundary), method: method}
}

// Raster returns the underlying raster.
func (in *Interpolator[T]) Raster() *lattice.Raster[T] { return in.source.Raster }

// At returns the interpolated value at v.
func (in *Interpolator[T]) At(v lattice.Vector) float64 {
	return in.method.At(in.source, v)
}

// AtPosition returns the extrapolated value at integer position p.
func (in *Interpolator[T]) AtPosition(p lattice.Position) T {
	return in.source.At(p)
}
