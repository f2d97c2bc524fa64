package lattice

import (
	"fmt"
	"iter"
)

// Grid is a strided sub-lattice of a Box: the positions front + k*step
// which do not overshoot back.
//
// The back position is snapped at construction so that it is itself a node.
type Grid struct {
	box  Box
	step Position
}

// NewGrid creates a grid from a box and a per-axis step.
// It returns ErrInvalidStep if some step is not strictly positive.
func NewGrid(box Box, step Position) (Grid, error) {
	if len(step) != box.Dimension() {
		return Grid{}, fmt.Errorf("%w: step %v for box %v", ErrDimensionMismatch, step, box)
	}
	for i, s := range step {
		if s <= 0 {
			return Grid{}, fmt.Errorf("%w: step[%d] = %d", ErrInvalidStep, i, s)
		}
	}
	return snapGrid(box, step.Clone()), nil
}

// MustGrid is like NewGrid but panics on error.
func MustGrid(box Box, step Position) Grid {
	g, err := NewGrid(box, step)
	if err != nil {
		panic(err)
	}
	return g
}

func snapGrid(box Box, step Position) Grid {
	back := box.back.Clone()
	for i := range back {
		if l := box.Length(i); l > 0 {
			back[i] -= (l - 1) % step[i]
		}
	}
	return Grid{box: Box{front: box.front.Clone(), back: back}, step: step}
}

// Box returns the (snapped) bounding box.
func (g Grid) Box() Box { return g.box }

// Bounds returns the bounding box, which makes Grid a Region.
func (g Grid) Bounds() Box { return g.box }

// Front returns the first node.
func (g Grid) Front() Position { return g.box.Front() }

// Back returns the last node.
func (g Grid) Back() Position { return g.box.Back() }

// Step returns the step along each axis.
func (g Grid) Step() Position { return g.step.Clone() }

// Dimension returns the number of axes.
func (g Grid) Dimension() int { return g.box.Dimension() }

// Length returns the number of nodes along axis i.
func (g Grid) Length(i int) int {
	l := g.box.Length(i)
	if l == 0 {
		return 0
	}
	return (l-1)/g.step[i] + 1
}

// Shape returns the number of nodes along each axis.
func (g Grid) Shape() Position {
	out := make(Position, g.Dimension())
	for i := range out {
		out[i] = g.Length(i)
	}
	return out
}

// Size returns the number of nodes.
func (g Grid) Size() int {
	if g.Dimension() == 0 {
		return 0
	}
	return g.Shape().Product()
}

// Contains reports whether p is a node of the grid.
func (g Grid) Contains(p Position) bool {
	if !g.box.Contains(p) {
		return false
	}
	for i, c := range p {
		if (c-g.box.front[i])%g.step[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both grids have the same box and step.
func (g Grid) Equal(other Grid) bool {
	return g.box.Equal(other.box) && g.step.Equal(other.step)
}

// Translate shifts the grid by a vector.
func (g Grid) Translate(v Position) Grid {
	return Grid{box: g.box.Translate(v), step: g.step}
}

// TranslateScalar adds s to each coordinate.
func (g Grid) TranslateScalar(s int) Grid {
	return Grid{box: g.box.TranslateScalar(s), step: g.step}
}

// Inc shifts the grid by +1 along all axes.
func (g Grid) Inc() Grid { return g.TranslateScalar(1) }

// Dec shifts the grid by -1 along all axes.
func (g Grid) Dec() Grid { return g.TranslateScalar(-1) }

// Neg mirrors the grid through the origin. The step stays positive.
func (g Grid) Neg() Grid {
	return Grid{box: g.box.Neg(), step: g.step}
}

// Intersect restricts the grid to the nodes inside a box.
// The result may be empty.
func (g Grid) Intersect(box Box) Grid {
	clipped := g.box.Intersect(box)
	front := clipped.front
	for i := range front {
		offset := front[i] - g.box.front[i]
		if r := offset % g.step[i]; r != 0 {
			front[i] += g.step[i] - r
		}
	}
	return snapGrid(Box{front: front, back: clipped.back}, g.step)
}

// All returns an iterator over the nodes in column-major order.
func (g Grid) All() iter.Seq[Position] {
	return walk(g.box.front, g.box.back, g.step)
}

// String formats the grid as "front-back:step".
func (g Grid) String() string {
	return g.box.String() + ":" + g.step.String()
}
