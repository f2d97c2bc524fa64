package lattice

import (
	"strconv"
	"strings"
)

// Position is an integer N-tuple identifying a lattice point.
//
// The number of axes is fixed when the position is created; arithmetic
// between positions of different dimensions panics with ErrDimensionMismatch.
// All methods return new positions and never modify their receiver.
type Position []int

// Pos is shorthand for creating a position from its coordinates.
func Pos(coords ...int) Position {
	p := make(Position, len(coords))
	copy(p, coords)
	return p
}

// Zero returns the origin in n dimensions.
func Zero(n int) Position {
	return make(Position, n)
}

// One returns the position with all n coordinates set to 1.
func One(n int) Position {
	return Fill(n, 1)
}

// Fill returns the position with all n coordinates set to value.
func Fill(n, value int) Position {
	p := make(Position, n)
	for i := range p {
		p[i] = value
	}
	return p
}

// Dimension returns the number of axes.
func (p Position) Dimension() int { return len(p) }

// Clone returns a copy of p.
func (p Position) Clone() Position {
	return Pos(p...)
}

// Equal reports whether p and q have the same coordinates.
func (p Position) Equal(q Position) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether all coordinates are 0.
func (p Position) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

func (p Position) zip(q Position, op func(a, b int) int) Position {
	mustMatch(len(p), len(q))
	out := make(Position, len(p))
	for i := range p {
		out[i] = op(p[i], q[i])
	}
	return out
}

func (p Position) each(op func(a int) int) Position {
	out := make(Position, len(p))
	for i := range p {
		out[i] = op(p[i])
	}
	return out
}

// Add returns p + q.
func (p Position) Add(q Position) Position {
	return p.zip(q, func(a, b int) int { return a + b })
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return p.zip(q, func(a, b int) int { return a - b })
}

// Mul returns the componentwise product of p and q.
func (p Position) Mul(q Position) Position {
	return p.zip(q, func(a, b int) int { return a * b })
}

// Div returns the componentwise (truncated) quotient of p and q.
func (p Position) Div(q Position) Position {
	return p.zip(q, func(a, b int) int { return a / b })
}

// AddScalar adds s to each coordinate.
func (p Position) AddScalar(s int) Position {
	return p.each(func(a int) int { return a + s })
}

// SubScalar subtracts s from each coordinate.
func (p Position) SubScalar(s int) Position {
	return p.each(func(a int) int { return a - s })
}

// MulScalar multiplies each coordinate by s.
func (p Position) MulScalar(s int) Position {
	return p.each(func(a int) int { return a * s })
}

// DivScalar divides each coordinate by s.
func (p Position) DivScalar(s int) Position {
	return p.each(func(a int) int { return a / s })
}

// Neg returns -p.
func (p Position) Neg() Position {
	return p.each(func(a int) int { return -a })
}

// Min returns the smallest coordinate. It panics on a 0-dimensional position.
func (p Position) Min() int {
	out := p[0]
	for _, c := range p[1:] {
		out = min(out, c)
	}
	return out
}

// Max returns the largest coordinate. It panics on a 0-dimensional position.
func (p Position) Max() int {
	out := p[0]
	for _, c := range p[1:] {
		out = max(out, c)
	}
	return out
}

// Product returns the product of the coordinates, i.e. the number of
// elements of a raster with shape p.
func (p Position) Product() int {
	out := 1
	for _, c := range p {
		out *= c
	}
	return out
}

// Norm returns the p-th power of the Lp norm, i.e. sum of |x|^p, which
// avoids fractional roots for integer p.
// For p = 0, it returns the number of non-zero coordinates.
func (p Position) Norm(power int) int {
	out := 0
	for _, c := range p {
		if power == 0 {
			if c != 0 {
				out++
			}
			continue
		}
		if c < 0 {
			c = -c
		}
		term := 1
		for range power {
			term *= c
		}
		out += term
	}
	return out
}

// Extend returns a position with m axes: the coordinates of p followed by
// padding[i] for i in [len(p), m). A nil padding pads with zeros.
func (p Position) Extend(m int, padding Position) Position {
	if m < len(p) {
		panic(ErrDimensionMismatch)
	}
	out := make(Position, m)
	copy(out, p)
	if padding != nil {
		mustMatch(len(padding), m)
		copy(out[len(p):], padding[len(p):])
	}
	return out
}

// Slice returns the first n coordinates.
func (p Position) Slice(n int) Position {
	return Pos(p[:n]...)
}

// With returns a copy of p with coordinate i set to value.
func (p Position) With(i, value int) Position {
	out := p.Clone()
	out[i] = value
	return out
}

// String formats p as "(x, y, ...)".
func (p Position) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(')')
	return sb.String()
}
