package affine

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/sampling"
)

// Transform fills out with the image of the interpolated input by a.
//
// Each output position p is mapped back through the inverse of a and the
// input is interpolated there. Values are rounded and saturated for integer
// element types.
func Transform[T sampling.Real](a *Affinity, in *sampling.Interpolator[T], out *lattice.Raster[T]) error {
	if out.Dimension() != a.Dimension() || in.Raster().Dimension() != a.Dimension() {
		return fmt.Errorf("%w: map has %d axes, input %d, output %d", lattice.ErrDimensionMismatch,
			a.Dimension(), in.Raster().Dimension(), out.Dimension())
	}
	inv, err := a.Inverse()
	if err != nil {
		return err
	}
	lattice.Logger().Debug("affine: transform",
		"in", in.Raster().Shape().String(),
		"out", out.Shape().String())

	data := out.Data()
	i := 0
	for p := range out.Domain().All() {
		data[i] = saturate[T](in.At(inv.Apply(p.ToVector())))
		i++
	}
	return nil
}

// Apply returns the image of in by a, with the shape of in.
func Apply[T sampling.Real](
	a *Affinity,
	in *lattice.Raster[T],
	method sampling.Interpolation[T],
	boundary sampling.Extrapolation[T],
) (*lattice.Raster[T], error) {
	out := lattice.NewRaster[T](in.Shape())
	if err := Transform(a, sampling.NewInterpolator(in, method, boundary), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Translate shifts a raster by v.
func Translate[T sampling.Real](
	in *lattice.Raster[T],
	v lattice.Vector,
	method sampling.Interpolation[T],
	boundary sampling.Extrapolation[T],
) (*lattice.Raster[T], error) {
	return Apply(Translation(v), in, method, boundary)
}

// Scale scales a raster by factor around the center of its domain, keeping
// its shape.
func Scale[T sampling.Real](
	in *lattice.Raster[T],
	factor float64,
	method sampling.Interpolation[T],
	boundary sampling.Extrapolation[T],
) (*lattice.Raster[T], error) {
	return Apply(IsotropicScaling(factor, domainCenter(in.Domain())), in, method, boundary)
}

// Rotate rotates a raster by angle radians in the plane (from, to) around
// the center of its domain, keeping its shape.
func Rotate[T sampling.Real](
	in *lattice.Raster[T],
	angle float64,
	from, to int,
	method sampling.Interpolation[T],
	boundary sampling.Extrapolation[T],
) (*lattice.Raster[T], error) {
	return Apply(Rotation(angle, from, to, domainCenter(in.Domain())), in, method, boundary)
}

// Upsample scales a raster by factor around the origin into a raster whose
// lengths are those of in times factor, rounded down.
func Upsample[T sampling.Real](
	in *lattice.Raster[T],
	factor float64,
	method sampling.Interpolation[T],
	boundary sampling.Extrapolation[T],
) (*lattice.Raster[T], error) {
	if !(factor > 0) {
		return nil, fmt.Errorf("%w: factor %v", ErrSingular, factor)
	}
	shape := in.Shape()
	for i, l := range shape {
		shape[i] = int(float64(l) * factor)
		if shape[i] == 0 && l > 0 {
			lattice.Logger().Warn("affine: resampled axis is empty", "axis", i, "length", l, "factor", factor)
		}
	}
	out := lattice.NewRaster[T](shape)
	a := IsotropicScaling(factor, make(lattice.Vector, len(shape)))
	if err := Transform(a, sampling.NewInterpolator(in, method, boundary), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Downsample is Upsample by 1 / factor.
func Downsample[T sampling.Real](
	in *lattice.Raster[T],
	factor float64,
	method sampling.Interpolation[T],
	boundary sampling.Extrapolation[T],
) (*lattice.Raster[T], error) {
	if !(factor > 0) {
		return nil, fmt.Errorf("%w: factor %v", ErrSingular, factor)
	}
	return Upsample(in, 1/factor, method, boundary)
}

// domainCenter returns (front + back) / 2.
func domainCenter(b lattice.Box) lattice.Vector {
	return b.Front().ToVector().Add(b.Back().ToVector()).Scale(0.5)
}

// saturate converts v to T, rounding and clamping to the range of integer
// types.
func saturate[T sampling.Real](v float64) T {
	half := 0.5
	if T(half) != 0 {
		return T(v)
	}
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)

	var zero T
	if zero-1 > zero {
		// Unsigned: zero - 1 wrapped to the maximum.
		hi := zero - 1
		switch {
		case v <= 0:
			return 0
		case v >= float64(hi):
			return hi
		}
		return T(v)
	}

	bits := 8 * uint(unsafe.Sizeof(zero))
	hi := T(int64(math.MaxInt64 >> (64 - bits)))
	lo := -hi - 1
	switch {
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	}
	return T(v)
}
