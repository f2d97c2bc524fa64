package sampling

import (
	"github.com/gogpu/lattice"
)

// Extrapolation defines the value of a raster at any integer position,
// including positions outside its domain.
type Extrapolation[T any] interface {
	At(r *lattice.Raster[T], p lattice.Position) T
}

// Constant returns a fixed value outside the domain,
// a.k.a. Dirichlet boundary conditions.
type Constant[T any] struct {
	Value T
}

// NewConstant creates a constant extrapolation.
func NewConstant[T any](value T) Constant[T] {
	return Constant[T]{Value: value}
}

// At returns r[p] if p is in the domain, c.Value otherwise.
func (c Constant[T]) At(r *lattice.Raster[T], p lattice.Position) T {
	if r.Contains(p) {
		return r.At(p)
	}
	return c.Value
}

// Nearest returns the value at the nearest in-domain position,
// a.k.a. zero-flux Neumann boundary conditions.
type Nearest[T any] struct{}

// At clamps each coordinate into [0, shape[i]) before reading.
func (Nearest[T]) At(r *lattice.Raster[T], p lattice.Position) T {
	q := make(lattice.Position, len(p))
	for i, c := range p {
		q[i] = clamp(c, 0, r.Length(i)-1)
	}
	return r.At(q)
}

// AtVector rounds v to the nearest integer position (ties toward +Inf)
// and clamps it into the domain.
func (n Nearest[T]) AtVector(r *lattice.Raster[T], v lattice.Vector) T {
	return n.At(r, v.Round())
}

// Periodic wraps positions around the domain,
// a.k.a. wrap-around boundary conditions.
type Periodic[T any] struct{}

// At reduces each coordinate modulo the raster shape, with a positive
// remainder.
func (Periodic[T]) At(r *lattice.Raster[T], p lattice.Position) T {
	q := make(lattice.Position, len(p))
	for i, c := range p {
		q[i] = modulo(c, r.Length(i))
	}
	return r.At(q)
}

// Extrapolator pairs a raster with an extrapolation policy so that it can
// be read at any position. It implements Source.
type Extrapolator[T any] struct {
	Raster *lattice.Raster[T]
	Policy Extrapolation[T]
}

// Extrapolate creates an extrapolator.
func Extrapolate[T any](r *lattice.Raster[T], policy Extrapolation[T]) *Extrapolator[T] {
	return &Extrapolator[T]{Raster: r, Policy: policy}
}

// At returns the raster value at p, through the policy when p is outside
// the domain.
func (e *Extrapolator[T]) At(p lattice.Position) T {
	if e.Raster.Contains(p) {
		return e.Raster.At(p)
	}
	return e.Policy.At(e.Raster, p)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func modulo(v, n int) int {
	q := v % n
	if q < 0 {
		q += n
	}
	return q
}
