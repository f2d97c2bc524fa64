package filter

import (
	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/sampling"
)

// Chain applies filters in sequence, each pass reading the output of the
// previous one. Chaining 1-D kernels along different axes applies their
// separable N-D product at a fraction of the cost.
type Chain[T any] struct {
	filters []Filter[T]
}

// NewChain creates a chain of filters, applied first to last.
func NewChain[T any](filters ...Filter[T]) *Chain[T] {
	return &Chain[T]{filters: filters}
}

// Then appends filters to the chain and returns it.
func (c *Chain[T]) Then(filters ...Filter[T]) *Chain[T] {
	c.filters = append(c.filters, filters...)
	return c
}

// Filters returns the chained filters.
func (c *Chain[T]) Filters() []Filter[T] { return c.filters }

// Transform applies the filters in sequence with the same boundary policy.
// An empty chain returns a copy of in.
func (c *Chain[T]) Transform(
	in *lattice.Raster[T],
	boundary sampling.Extrapolation[T],
	opts ...Option,
) (*lattice.Raster[T], error) {
	if len(c.filters) == 0 {
		return in.Clone(), nil
	}
	out := in
	for _, f := range c.filters {
		var err error
		out, err = f.Transform(out, boundary, opts...)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Aggregate applies filters to the same input and combines their outputs
// pointwise with a binary reducer.
type Aggregate[T any] struct {
	filters []Filter[T]
	reduce  func(a, b T) T
}

// NewAggregate creates an aggregate of filters, reduced left to right.
func NewAggregate[T any](reduce func(a, b T) T, filters ...Filter[T]) *Aggregate[T] {
	return &Aggregate[T]{filters: filters, reduce: reduce}
}

// Sum is the reducer of additive aggregates.
func Sum[T Number](a, b T) T { return a + b }

// Filters returns the aggregated filters.
func (a *Aggregate[T]) Filters() []Filter[T] { return a.filters }

// Transform applies every filter to in and reduces the outputs.
// An empty aggregate returns a copy of in.
func (a *Aggregate[T]) Transform(
	in *lattice.Raster[T],
	boundary sampling.Extrapolation[T],
	opts ...Option,
) (*lattice.Raster[T], error) {
	if len(a.filters) == 0 {
		return in.Clone(), nil
	}
	acc, err := a.filters[0].Transform(in, boundary, opts...)
	if err != nil {
		return nil, err
	}
	sum := acc.Data()
	for _, f := range a.filters[1:] {
		out, err := f.Transform(in, boundary, opts...)
		if err != nil {
			return nil, err
		}
		for i, v := range out.Data() {
			sum[i] = a.reduce(sum[i], v)
		}
	}
	return acc, nil
}
