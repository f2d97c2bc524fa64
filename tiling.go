package lattice

import (
	"fmt"
	"iter"
)

// Tiling partitions a region into disjoint tiles indexed by an outer domain.
//
// The outer domain is a box anchored at the origin whose positions are tile
// coordinates; At maps each of them to the inner tile. Iterating the tiles
// in outer order and each tile in its own order visits the positions of the
// tiled region exactly once. Lines along axis 0 and slabs along the last
// axis preserve the column-major order of the region itself.
//
// Tiles are disjoint, so distinct tiles may be processed concurrently as
// long as the outputs they write are disjoint too.
type Tiling[R any] struct {
	domain Box
	tile   func(Position) R
}

// Domain returns the outer domain (tile coordinates).
func (t *Tiling[R]) Domain() Box { return t.domain }

// Shape returns the number of tiles along each axis.
func (t *Tiling[R]) Shape() Position { return t.domain.Shape() }

// Size returns the number of tiles.
func (t *Tiling[R]) Size() int { return t.domain.Size() }

// At returns the tile at given outer position.
func (t *Tiling[R]) At(p Position) R { return t.tile(p) }

// All iterates over the outer positions and their tiles in column-major
// order.
func (t *Tiling[R]) All() iter.Seq2[Position, R] {
	return func(yield func(Position, R) bool) {
		for p := range t.domain.All() {
			if !yield(p, t.tile(p)) {
				return
			}
		}
	}
}

// Tiles collects the tiles in outer order.
func (t *Tiling[R]) Tiles() []R {
	out := make([]R, 0, t.Size())
	for _, r := range t.All() {
		out = append(out, r)
	}
	return out
}

// TileBoxAlong splits a box into lines parallel to an axis.
//
// The outer domain has the shape of the box with the tiled axis collapsed
// to 1; the tile at p starts at region.Front() + p and spans the whole
// region along axis.
func TileBoxAlong(region Box, axis int) *Tiling[Box] {
	mustAxis(axis, region.Dimension())
	front := region.Front()
	back := region.Back()
	return &Tiling[Box]{
		domain: BoxFromShape(region.Shape().With(axis, min(1, region.Length(axis)))),
		tile: func(p Position) Box {
			start := p.Add(front)
			return Box{front: start, back: start.With(axis, back[axis])}
		},
	}
}

// TileGridAlong splits a grid into lines of nodes parallel to an axis.
// The tile at p starts at region.Front() + p*region.Step().
func TileGridAlong(region Grid, axis int) *Tiling[Grid] {
	mustAxis(axis, region.Dimension())
	front := region.Front()
	back := region.Back()
	step := region.Step()
	return &Tiling[Grid]{
		domain: BoxFromShape(region.Shape().With(axis, min(1, region.Length(axis)))),
		tile: func(p Position) Grid {
			start := p.Mul(step).Add(front)
			return Grid{box: Box{front: start, back: start.With(axis, back[axis])}, step: step}
		},
	}
}

// TileRasterAlong splits a raster into lines of elements parallel to an
// axis, see TileBoxAlong.
func TileRasterAlong[T any](r *Raster[T], axis int) *Tiling[*Patch[T]] {
	boxes := TileBoxAlong(r.Domain(), axis)
	return &Tiling[*Patch[T]]{
		domain: boxes.domain,
		tile: func(p Position) *Patch[T] {
			return &Patch[T]{raster: r, region: boxes.At(p)}
		},
	}
}

// TileSlabs splits a box into slabs of at most thickness positions along
// an axis. The last slab is shorter when the length along axis is not a
// multiple of thickness. The outer domain has length 1 along every axis
// except axis.
func TileSlabs(region Box, axis, thickness int) (*Tiling[Box], error) {
	if axis < 0 || axis >= region.Dimension() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("%w: thickness %d", ErrInvalidStep, thickness)
	}
	length := region.Length(axis)
	count := (length + thickness - 1) / thickness
	if region.IsEmpty() {
		count = 0
	}
	shape := One(region.Dimension()).With(axis, count)
	front := region.Front()
	back := region.Back()
	return &Tiling[Box]{
		domain: BoxFromShape(shape),
		tile: func(p Position) Box {
			start := front[axis] + p[axis]*thickness
			stop := min(start+thickness-1, back[axis])
			return Box{front: front.With(axis, start), back: back.With(axis, stop)}
		},
	}, nil
}
