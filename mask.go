package lattice

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Mask is a bounding box with a boolean flag associated to each position.
//
// Masks represent non-rectangular windows such as disks or diamonds.
// Positions outside the box are never set.
type Mask struct {
	box   Box
	flags *Raster[bool]
}

// NewMask creates a mask over a box with all flags set to flag.
func NewMask(box Box, flag bool) Mask {
	flags := NewRaster[bool](box.Shape())
	if flag {
		flags.Fill(true)
	}
	return Mask{box: box, flags: flags}
}

// NewMaskFromFlags creates a mask over a box from a flag raster, which is
// copied. It returns ErrShapeMismatch if the shapes differ.
func NewMaskFromFlags(box Box, flags *Raster[bool]) (Mask, error) {
	if !flags.shape.Equal(box.Shape()) {
		return Mask{}, fmt.Errorf("%w: flags %v for box %v", ErrShapeMismatch, flags.shape, box)
	}
	return Mask{box: box, flags: flags.Clone()}, nil
}

// MaskFromCenter creates a mask of side 2*radius+1 around center with all
// flags set to flag.
func MaskFromCenter(radius int, center Position, flag bool) Mask {
	return NewMask(NewBox(center.SubScalar(radius), center.AddScalar(radius)), flag)
}

// Ball creates a mask from a ball with (pseudo-)norm Lp: a position q is
// set iff Norm_p(q - center) <= radius^p. See Position.Norm for p = 0.
func Ball(p int, radius float64, center Position) Mask {
	out := MaskFromCenter(int(radius), center, false)
	limit := math.Pow(radius, float64(p))
	i := 0
	for q := range out.box.All() {
		if float64(q.Sub(center).Norm(p)) <= limit {
			out.flags.data[i] = true
		}
		i++
	}
	return out
}

// Box returns the bounding box.
func (m Mask) Box() Box { return m.box }

// Bounds returns the bounding box, which makes Mask a Region.
func (m Mask) Bounds() Box { return m.box }

// Dimension returns the number of axes.
func (m Mask) Dimension() int { return m.box.Dimension() }

// Shape returns the bounding box shape.
func (m Mask) Shape() Position { return m.box.Shape() }

// Length returns the bounding box length along axis i.
func (m Mask) Length(i int) int { return m.box.Length(i) }

// Flags returns the flag raster, indexed relative to the box front.
func (m Mask) Flags() *Raster[bool] { return m.flags }

// Size returns the number of set positions.
func (m Mask) Size() int {
	if m.flags == nil {
		return 0
	}
	n := 0
	for _, f := range m.flags.data {
		if f {
			n++
		}
	}
	return n
}

// Contains reports whether p is set. It is false outside the box.
func (m Mask) Contains(p Position) bool {
	return m.box.Contains(p) && m.flags.At(p.Sub(m.box.front))
}

// At is an alias of Contains.
func (m Mask) At(p Position) bool { return m.Contains(p) }

// Set sets or unsets a position, which must lie inside the box.
func (m Mask) Set(p Position, flag bool) {
	m.flags.Set(p.Sub(m.box.front), flag)
}

// Equal reports whether both masks have the same box and flags.
func (m Mask) Equal(other Mask) bool {
	if !m.box.Equal(other.box) {
		return false
	}
	if m.flags == nil || other.flags == nil {
		return m.flags == other.flags
	}
	return slices.Equal(m.flags.data, other.flags.data)
}

// Translate shifts the mask by a vector.
func (m Mask) Translate(v Position) Mask {
	return Mask{box: m.box.Translate(v), flags: m.flags.Clone()}
}

// TranslateScalar adds s to each coordinate.
func (m Mask) TranslateScalar(s int) Mask {
	return Mask{box: m.box.TranslateScalar(s), flags: m.flags.Clone()}
}

// Inc shifts the mask by +1 along all axes.
func (m Mask) Inc() Mask { return m.TranslateScalar(1) }

// Dec shifts the mask by -1 along all axes.
func (m Mask) Dec() Mask { return m.TranslateScalar(-1) }

// Neg mirrors the mask through the origin.
func (m Mask) Neg() Mask {
	flags := m.flags.Clone()
	slices.Reverse(flags.data)
	return Mask{box: m.box.Neg(), flags: flags}
}

// Intersect clamps the mask inside a box, cropping the flags.
func (m Mask) Intersect(box Box) Mask {
	clipped := m.box.Intersect(box)
	flags := NewRaster[bool](clipped.Shape())
	i := 0
	for p := range clipped.All() {
		flags.data[i] = m.flags.At(p.Sub(m.box.front))
		i++
	}
	return Mask{box: clipped, flags: flags}
}

// Extend lifts the mask into m dimensions, see Box.Extend.
// The flags are unchanged: new axes have length 1.
func (m Mask) Extend(dim int, padding Position) Mask {
	box := m.box.Extend(dim, padding)
	flags, err := NewRasterFrom(box.Shape(), slices.Clone(m.flags.data))
	if err != nil {
		panic(err)
	}
	return Mask{box: box, flags: flags}
}

// All iterates over the set positions in column-major order.
func (m Mask) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if m.flags == nil {
			return
		}
		i := 0
		for p := range m.box.All() {
			if m.flags.data[i] && !yield(p) {
				return
			}
			i++
		}
	}
}
