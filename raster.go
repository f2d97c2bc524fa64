package lattice

import (
	"fmt"
	"iter"
)

// Raster is a dense N-dimensional array stored in column-major order:
// the first axis varies fastest.
//
// The element at position p is data[Σ p[i]*stride[i]] where stride[0] = 1
// and stride[i] = stride[i-1]*shape[i-1].
//
// Thread safety: a Raster is safe for concurrent reads. Concurrent writes
// are safe only when they target disjoint positions.
type Raster[T any] struct {
	shape   Position
	strides []int
	data    []T
}

// NewRaster creates a raster of given shape filled with zero values.
// It panics if the shape has no axis or a negative length.
func NewRaster[T any](shape Position) *Raster[T] {
	if err := checkShape(shape); err != nil {
		panic(err)
	}
	return &Raster[T]{
		shape:   shape.Clone(),
		strides: strides(shape),
		data:    make([]T, shape.Product()),
	}
}

// NewRasterFrom creates a raster of given shape which owns data.
// It returns ErrShapeMismatch if len(data) does not match the shape.
func NewRasterFrom[T any](shape Position, data []T) (*Raster[T], error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(data) != shape.Product() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(data), shape)
	}
	return &Raster[T]{shape: shape.Clone(), strides: strides(shape), data: data}, nil
}

func checkShape(shape Position) error {
	if len(shape) == 0 {
		return fmt.Errorf("%w: no axis", ErrInvalidShape)
	}
	for i, l := range shape {
		if l < 0 {
			return fmt.Errorf("%w: length[%d] = %d", ErrInvalidShape, i, l)
		}
	}
	return nil
}

func strides(shape Position) []int {
	out := make([]int, len(shape))
	s := 1
	for i, l := range shape {
		out[i] = s
		s *= l
	}
	return out
}

// Shape returns the length along each axis.
func (r *Raster[T]) Shape() Position { return r.shape.Clone() }

// Dimension returns the number of axes.
func (r *Raster[T]) Dimension() int { return len(r.shape) }

// Size returns the number of elements.
func (r *Raster[T]) Size() int { return len(r.data) }

// Length returns the length along axis i.
func (r *Raster[T]) Length(i int) int { return r.shape[i] }

// Strides returns the flat index increment along each axis.
func (r *Raster[T]) Strides() []int {
	out := make([]int, len(r.strides))
	copy(out, r.strides)
	return out
}

// Domain returns the box of valid positions.
func (r *Raster[T]) Domain() Box { return BoxFromShape(r.shape) }

// Contains reports whether p is a valid position.
func (r *Raster[T]) Contains(p Position) bool {
	if len(p) != len(r.shape) {
		return false
	}
	for i, c := range p {
		if c < 0 || c >= r.shape[i] {
			return false
		}
	}
	return true
}

// Index returns the flat index of p. Positions are not bounds-checked.
func (r *Raster[T]) Index(p Position) int {
	idx := 0
	for i, c := range p {
		idx += c * r.strides[i]
	}
	return idx
}

// At returns the element at p. Out-of-domain positions are undefined
// behavior (they may panic or alias another element).
func (r *Raster[T]) At(p Position) T {
	return r.data[r.Index(p)]
}

// Set assigns the element at p.
func (r *Raster[T]) Set(p Position, v T) {
	r.data[r.Index(p)] = v
}

// Data returns the underlying column-major buffer.
func (r *Raster[T]) Data() []T { return r.data }

// All iterates over the elements in column-major order.
func (r *Raster[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range r.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Fill sets all elements to v.
func (r *Raster[T]) Fill(v T) {
	for i := range r.data {
		r.data[i] = v
	}
}

// Clone returns a deep copy of the raster.
func (r *Raster[T]) Clone() *Raster[T] {
	data := make([]T, len(r.data))
	copy(data, r.data)
	return &Raster[T]{shape: r.shape.Clone(), strides: r.Strides(), data: data}
}

// Patch returns a view of the raster restricted to a region.
// The region is intersected with the raster domain.
func (r *Raster[T]) Patch(region Box) *Patch[T] {
	return &Patch[T]{raster: r, region: region.Intersect(r.Domain())}
}

// Crop copies the elements inside a box into a new raster.
func (r *Raster[T]) Crop(region Box) *Raster[T] {
	region = region.Intersect(r.Domain())
	out := NewRaster[T](region.Shape())
	i := 0
	for p := range region.All() {
		out.data[i] = r.At(p)
		i++
	}
	return out
}

// Patch is a view of a raster restricted to a box.
// Positions are expressed in the raster coordinates.
type Patch[T any] struct {
	raster *Raster[T]
	region Box
}

// Raster returns the parent raster.
func (p *Patch[T]) Raster() *Raster[T] { return p.raster }

// Domain returns the region of the patch.
func (p *Patch[T]) Domain() Box { return p.region }

// Size returns the number of elements of the patch.
func (p *Patch[T]) Size() int { return p.region.Size() }

// Contains reports whether a position belongs to the patch.
func (p *Patch[T]) Contains(pos Position) bool { return p.region.Contains(pos) }

// At returns the element at a position of the parent raster.
func (p *Patch[T]) At(pos Position) T { return p.raster.At(pos) }

// Set assigns the element at a position of the parent raster.
func (p *Patch[T]) Set(pos Position, v T) { p.raster.Set(pos, v) }

// Positions iterates over the positions of the patch.
func (p *Patch[T]) Positions() iter.Seq[Position] { return p.region.All() }

// All iterates over the elements of the patch in column-major order.
func (p *Patch[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := range p.region.All() {
			if !yield(p.raster.At(pos)) {
				return
			}
		}
	}
}
