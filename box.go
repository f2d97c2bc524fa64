package lattice

import (
	"iter"
)

// Box is an axis-aligned N-dimensional region defined by its front and back
// positions, both inclusive.
//
// A box whose front exceeds its back along some axis is degenerate: it is a
// valid, empty region. Like Position, a Box stores coordinates, not values.
type Box struct {
	front Position
	back  Position
}

// NewBox creates a box from its front and back positions.
// It panics if they do not have the same dimension.
func NewBox(front, back Position) Box {
	mustMatch(len(front), len(back))
	return Box{front: front.Clone(), back: back.Clone()}
}

// BoxFromShape creates the box of given shape anchored at the origin,
// i.e. the domain of a raster of that shape.
func BoxFromShape(shape Position) Box {
	return Box{front: Zero(len(shape)), back: shape.SubScalar(1)}
}

// Front returns the front position.
func (b Box) Front() Position { return b.front.Clone() }

// Back returns the back position.
func (b Box) Back() Position { return b.back.Clone() }

// Dimension returns the number of axes.
func (b Box) Dimension() int { return len(b.front) }

// Bounds returns b itself, which makes Box a Region.
func (b Box) Bounds() Box { return b }

// Length returns the number of positions along axis i, 0 if degenerate.
func (b Box) Length(i int) int {
	return max(b.back[i]-b.front[i]+1, 0)
}

// Shape returns the lengths along all axes.
func (b Box) Shape() Position {
	out := make(Position, len(b.front))
	for i := range out {
		out[i] = b.Length(i)
	}
	return out
}

// Size returns the number of positions, 0 if degenerate.
func (b Box) Size() int {
	if len(b.front) == 0 {
		return 0
	}
	return b.Shape().Product()
}

// IsEmpty reports whether the box contains no position.
func (b Box) IsEmpty() bool {
	return b.Size() == 0
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Position) bool {
	if len(p) != len(b.front) {
		return false
	}
	for i, c := range p {
		if c < b.front[i] || c > b.back[i] {
			return false
		}
	}
	return true
}

// Equal reports whether both boxes have the same front and back.
func (b Box) Equal(other Box) bool {
	return b.front.Equal(other.front) && b.back.Equal(other.back)
}

// Translate shifts the box by a vector.
func (b Box) Translate(v Position) Box {
	return Box{front: b.front.Add(v), back: b.back.Add(v)}
}

// TranslateScalar adds s to each coordinate of front and back.
func (b Box) TranslateScalar(s int) Box {
	return Box{front: b.front.AddScalar(s), back: b.back.AddScalar(s)}
}

// Inc shifts the box by +1 along all axes.
func (b Box) Inc() Box { return b.TranslateScalar(1) }

// Dec shifts the box by -1 along all axes.
func (b Box) Dec() Box { return b.TranslateScalar(-1) }

// Neg mirrors the box through the origin.
func (b Box) Neg() Box {
	return Box{front: b.back.Neg(), back: b.front.Neg()}
}

// Intersect returns the intersection of both boxes.
// The result may be degenerate.
func (b Box) Intersect(other Box) Box {
	return Box{
		front: b.front.zip(other.front, func(x, y int) int { return max(x, y) }),
		back:  b.back.zip(other.back, func(x, y int) int { return min(x, y) }),
	}
}

// Grow expands the box by the extent of another box, i.e. returns the
// Minkowski sum of both boxes.
func (b Box) Grow(other Box) Box {
	return Box{front: b.front.Add(other.front), back: b.back.Add(other.back)}
}

// Extend lifts the box into m dimensions. The new axes [N, m) are set to
// padding[i] on both the front and back (zero if padding is nil).
func (b Box) Extend(m int, padding Position) Box {
	return Box{front: b.front.Extend(m, padding), back: b.back.Extend(m, padding)}
}

// Project returns the box with axis i collapsed onto its front coordinate.
func (b Box) Project(i int) Box {
	mustAxis(i, len(b.front))
	return Box{front: b.front.Clone(), back: b.back.With(i, b.front[i])}
}

// All returns an iterator over the positions of the box in column-major
// order: axis 0 varies fastest. Each yielded position is a fresh slice.
func (b Box) All() iter.Seq[Position] {
	return walk(b.front, b.back, nil)
}

// Positions collects the positions of the box.
func (b Box) Positions() []Position {
	out := make([]Position, 0, b.Size())
	for p := range b.All() {
		out = append(out, p)
	}
	return out
}

// String formats the box as "front-back".
func (b Box) String() string {
	return b.front.String() + "-" + b.back.String()
}

// walk iterates from front to back in column-major order with the given
// step (nil means unit steps). Nothing is yielded if the region is empty.
func walk(front, back, step Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		n := len(front)
		if n == 0 {
			return
		}
		for i := range n {
			if front[i] > back[i] {
				return
			}
		}
		current := front.Clone()
		for {
			if !yield(current.Clone()) {
				return
			}
			i := 0
			for ; i < n; i++ {
				inc := 1
				if step != nil {
					inc = step[i]
				}
				current[i] += inc
				if current[i] <= back[i] {
					break
				}
				current[i] = front[i]
			}
			if i == n {
				return
			}
		}
	}
}
