package filter

import (
	"fmt"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/internal/parallel"
	"github.com/gogpu/lattice/sampling"
)

// Filter transforms a raster into a raster of the same shape.
//
// The boundary policy defines the input values outside its domain. It may
// be nil if the filter never reads outside the domain.
type Filter[T any] interface {
	Transform(in *lattice.Raster[T], boundary sampling.Extrapolation[T], opts ...Option) (*lattice.Raster[T], error)
}

// SimpleFilter evaluates the neighbors read through a window around each
// position. The window holds offsets relative to the position (e.g. a box
// from (-1, -1) to (1, 1) for a 3x3 neighborhood).
type SimpleFilter[T any] struct {
	window    lattice.Region
	evaluator Evaluator[T]
}

// New creates a filter from a window (typically a lattice.Box or a
// lattice.Mask) and an evaluator.
func New[T any](window lattice.Region, evaluator Evaluator[T]) (*SimpleFilter[T], error) {
	if window.Size() == 0 {
		return nil, ErrEmptyWindow
	}
	return &SimpleFilter[T]{window: window, evaluator: evaluator}, nil
}

// Window returns the window of relative offsets.
func (f *SimpleFilter[T]) Window() lattice.Region { return f.window }

// Evaluator returns the evaluator.
func (f *SimpleFilter[T]) Evaluator() Evaluator[T] { return f.evaluator }

// Transform applies the filter to every position of in.
//
// A window with fewer axes than the raster is extended with zero offsets
// along the missing axes: a 1-D kernel applies along axis 0 of an image.
func (f *SimpleFilter[T]) Transform(
	in *lattice.Raster[T],
	boundary sampling.Extrapolation[T],
	opts ...Option,
) (*lattice.Raster[T], error) {
	dim := in.Dimension()
	window, err := extendWindow(f.window, dim)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	domain := in.Domain()
	bounds := window.Bounds()
	interior := lattice.NewBox(bounds.Front().Neg(), domain.Back().Sub(bounds.Back()))
	if boundary == nil && domain.Intersect(interior).Size() < domain.Size() {
		return nil, fmt.Errorf("%w: window %v overflows shape %v", ErrNoBoundary, bounds, in.Shape())
	}

	p := &pass[T]{
		in:       in,
		out:      lattice.NewRaster[T](in.Shape()),
		offsets:  lattice.Collect(window),
		interior: interior,
		boundary: boundary,
		eval:     f.evaluator,
	}
	p.flat = make([]int, len(p.offsets))
	for i, q := range p.offsets {
		p.flat[i] = in.Index(q)
	}
	if s, ok := f.evaluator.(Shortcutter[T]); ok && window.Contains(lattice.Zero(dim)) {
		p.shortcut = s
	}

	lattice.Logger().Debug("filter: transform",
		"shape", in.Shape().String(),
		"window", bounds.String(),
		"neighbors", len(p.offsets),
		"workers", o.workers)

	if o.workers <= 1 || domain.Size() == 0 {
		p.run(domain)
		return p.out, nil
	}

	last := dim - 1
	slabs, err := lattice.TileSlabs(domain, last, o.slabThickness(domain.Length(last)))
	if err != nil {
		return nil, err
	}
	pool := parallel.NewPool(o.workers)
	defer pool.Close()
	parallel.ForEach(pool, slabs, p.run)
	return p.out, nil
}

// pass holds the state shared by the tiles of one application.
type pass[T any] struct {
	in, out  *lattice.Raster[T]
	offsets  []lattice.Position
	flat     []int
	interior lattice.Box
	boundary sampling.Extrapolation[T]
	eval     Evaluator[T]
	shortcut Shortcutter[T]
}

// run fills the output over region.
func (p *pass[T]) run(region lattice.Box) {
	src := p.in.Data()
	dst := p.out.Data()
	neighbors := make([]T, len(p.offsets))
	q := make(lattice.Position, p.in.Dimension())

	for pos := range region.All() {
		i := p.in.Index(pos)
		if p.shortcut != nil {
			if v, ok := p.shortcut.Shortcut(src[i]); ok {
				dst[i] = v
				continue
			}
		}
		if p.interior.Contains(pos) {
			for k, o := range p.flat {
				neighbors[k] = src[i+o]
			}
		} else {
			for k, o := range p.offsets {
				for a := range q {
					q[a] = pos[a] + o[a]
				}
				if p.in.Contains(q) {
					neighbors[k] = p.in.At(q)
				} else {
					neighbors[k] = p.boundary.At(p.in, q)
				}
			}
		}
		dst[i] = p.eval.Evaluate(neighbors)
	}
}

// extendWindow lifts a window to dim axes with zero offsets.
func extendWindow(w lattice.Region, dim int) (lattice.Region, error) {
	switch {
	case w.Dimension() == dim:
		return w, nil
	case w.Dimension() > dim:
		return nil, fmt.Errorf("%w: window has %d axes, raster has %d",
			lattice.ErrDimensionMismatch, w.Dimension(), dim)
	}
	switch w := w.(type) {
	case lattice.Box:
		return w.Extend(dim, nil), nil
	case lattice.Mask:
		return w.Extend(dim, nil), nil
	}
	return nil, fmt.Errorf("%w: cannot extend %T to %d axes",
		lattice.ErrDimensionMismatch, w, dim)
}
