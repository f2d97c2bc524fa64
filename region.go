package lattice

import "iter"

// Region is a finite set of lattice positions.
//
// Box, Grid and Mask implement Region. Filters use regions as windows of
// relative offsets; tilings use them as domains.
type Region interface {
	// Dimension returns the number of axes.
	Dimension() int
	// Size returns the number of positions.
	Size() int
	// Contains reports whether a position belongs to the region.
	Contains(p Position) bool
	// Bounds returns the bounding box.
	Bounds() Box
	// All iterates over the positions in column-major order.
	All() iter.Seq[Position]
}

var (
	_ Region = Box{}
	_ Region = Grid{}
	_ Region = Mask{}
)

// Collect returns the positions of a region.
func Collect(r Region) []Position {
	out := make([]Position, 0, r.Size())
	for p := range r.All() {
		out = append(out, p)
	}
	return out
}
