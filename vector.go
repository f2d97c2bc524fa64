package lattice

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a real-valued N-tuple used for sub-pixel coordinates.
type Vector []float64

// Vec is shorthand for creating a vector from its coordinates.
func Vec(coords ...float64) Vector {
	v := make(Vector, len(coords))
	copy(v, coords)
	return v
}

// ToVector converts an integer position into a vector.
func (p Position) ToVector() Vector {
	v := make(Vector, len(p))
	for i, c := range p {
		v[i] = float64(c)
	}
	return v
}

// Dimension returns the number of axes.
func (v Vector) Dimension() int { return len(v) }

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	return Vec(v...)
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	mustMatch(len(v), len(w))
	out := v.Clone()
	floats.Add(out, w)
	return out
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	mustMatch(len(v), len(w))
	out := v.Clone()
	floats.Sub(out, w)
	return out
}

// Mul returns the componentwise product of v and w.
func (v Vector) Mul(w Vector) Vector {
	mustMatch(len(v), len(w))
	out := v.Clone()
	floats.Mul(out, w)
	return out
}

// Div returns the componentwise quotient of v and w.
func (v Vector) Div(w Vector) Vector {
	mustMatch(len(v), len(w))
	out := v.Clone()
	floats.Div(out, w)
	return out
}

// AddScalar adds s to each coordinate.
func (v Vector) AddScalar(s float64) Vector {
	out := v.Clone()
	floats.AddConst(s, out)
	return out
}

// Scale multiplies each coordinate by s.
func (v Vector) Scale(s float64) Vector {
	out := v.Clone()
	floats.Scale(s, out)
	return out
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Min returns the smallest coordinate.
func (v Vector) Min() float64 { return floats.Min(v) }

// Max returns the largest coordinate.
func (v Vector) Max() float64 { return floats.Max(v) }

// Norm returns the Lp norm of v. Use math.Inf(1) for the maximum norm.
func (v Vector) Norm(p float64) float64 {
	return floats.Norm(v, p)
}

// Equal reports whether v and w have the same coordinates.
func (v Vector) Equal(w Vector) bool {
	return floats.Equal(v, w)
}

// Floor returns the integer position below v.
func (v Vector) Floor() Position {
	p := make(Position, len(v))
	for i, c := range v {
		p[i] = int(math.Floor(c))
	}
	return p
}

// Round returns the nearest integer position, ties toward +Inf.
func (v Vector) Round() Position {
	p := make(Position, len(v))
	for i, c := range v {
		p[i] = int(math.Floor(c + 0.5))
	}
	return p
}

// IsZero reports whether all coordinates are 0.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// String formats v as "(x, y, ...)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
