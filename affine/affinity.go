package affine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/lattice"
)

// Errors returned by affine transforms.
var (
	// ErrSingular is returned when inverting a map whose linear part is not
	// invertible, e.g. a scaling by 0.
	ErrSingular = errors.New("affine: singular map")
)

// Affinity is the affine map y = M (x - c) + t + c, where M is the linear
// part, t the translation and c the center.
//
// Mutators compose on the right of the linear part: after a.Rotate then
// a.ScaleBy, the scaling applies first.
type Affinity struct {
	linear      *mat.Dense
	translation *mat.VecDense
	center      *mat.VecDense
}

// NewAffinity returns the identity map around a center. The center also
// fixes the dimension.
func NewAffinity(center lattice.Vector) *Affinity {
	n := len(center)
	if n == 0 {
		panic(fmt.Errorf("%w: affinity without axis", lattice.ErrDimensionMismatch))
	}
	linear := mat.NewDense(n, n, nil)
	for i := range n {
		linear.Set(i, i, 1)
	}
	return &Affinity{
		linear:      linear,
		translation: mat.NewVecDense(n, nil),
		center:      mat.NewVecDense(n, center.Clone()),
	}
}

// Identity returns the identity map in dimension n.
func Identity(n int) *Affinity {
	return NewAffinity(make(lattice.Vector, n))
}

// Translation returns the map x + v.
func Translation(v lattice.Vector) *Affinity {
	return Identity(len(v)).Translate(v)
}

// Scaling returns the per-axis scaling around center.
func Scaling(factors, center lattice.Vector) *Affinity {
	return NewAffinity(center).Scale(factors)
}

// IsotropicScaling returns the scaling by factor along all axes around
// center.
func IsotropicScaling(factor float64, center lattice.Vector) *Affinity {
	return NewAffinity(center).ScaleBy(factor)
}

// Rotation returns the rotation by angle radians in the plane (from, to)
// around center. Positive angles turn axis from toward axis to.
func Rotation(angle float64, from, to int, center lattice.Vector) *Affinity {
	return NewAffinity(center).Rotate(angle, from, to)
}

// RotationDegrees is Rotation with an angle in degrees.
func RotationDegrees(angle float64, from, to int, center lattice.Vector) *Affinity {
	return NewAffinity(center).RotateDegrees(angle, from, to)
}

// Dimension returns the number of axes.
func (a *Affinity) Dimension() int { return a.center.Len() }

// Linear returns a copy of the linear part.
func (a *Affinity) Linear() *mat.Dense { return mat.DenseCopyOf(a.linear) }

// Translation returns the translation.
func (a *Affinity) Translation() lattice.Vector { return vector(a.translation) }

// Center returns the center.
func (a *Affinity) Center() lattice.Vector { return vector(a.center) }

// Clone returns a deep copy.
func (a *Affinity) Clone() *Affinity {
	return &Affinity{
		linear:      mat.DenseCopyOf(a.linear),
		translation: mat.VecDenseCopyOf(a.translation),
		center:      mat.VecDenseCopyOf(a.center),
	}
}

// Translate adds v to the translation.
func (a *Affinity) Translate(v lattice.Vector) *Affinity {
	a.check(len(v))
	a.translation.AddVec(a.translation, mat.NewVecDense(len(v), v.Clone()))
	return a
}

// TranslateScalar adds s to the translation along all axes.
func (a *Affinity) TranslateScalar(s float64) *Affinity {
	for i := range a.Dimension() {
		a.translation.SetVec(i, a.translation.AtVec(i)+s)
	}
	return a
}

// Scale multiplies the linear part by diag(factors).
func (a *Affinity) Scale(factors lattice.Vector) *Affinity {
	a.check(len(factors))
	a.linear.Mul(a.linear, mat.NewDiagDense(len(factors), factors.Clone()))
	return a
}

// ScaleBy multiplies the linear part by factor.
func (a *Affinity) ScaleBy(factor float64) *Affinity {
	a.linear.Scale(factor, a.linear)
	return a
}

// Rotate multiplies the linear part by the rotation of angle radians in the
// plane (from, to).
func (a *Affinity) Rotate(angle float64, from, to int) *Affinity {
	n := a.Dimension()
	for _, axis := range []int{from, to} {
		if axis < 0 || axis >= n {
			panic(fmt.Errorf("%w: %d not in [0, %d)", lattice.ErrInvalidAxis, axis, n))
		}
	}
	if from == to {
		panic(fmt.Errorf("%w: rotation plane (%d, %d)", lattice.ErrInvalidAxis, from, to))
	}
	if angle == 0 {
		return a
	}
	sin, cos := math.Sincos(angle)
	rotation := mat.NewDense(n, n, nil)
	for i := range n {
		rotation.Set(i, i, 1)
	}
	rotation.Set(from, from, cos)
	rotation.Set(from, to, -sin)
	rotation.Set(to, from, sin)
	rotation.Set(to, to, cos)
	a.linear.Mul(a.linear, rotation)
	return a
}

// RotateDegrees is Rotate with an angle in degrees.
func (a *Affinity) RotateDegrees(angle float64, from, to int) *Affinity {
	return a.Rotate(angle*math.Pi/180, from, to)
}

// Invert replaces the map with its inverse, which has the same center.
func (a *Affinity) Invert() error {
	var inv mat.Dense
	if err := inv.Inverse(a.linear); err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}
	a.linear = &inv
	a.translation.MulVec(&inv, a.translation)
	a.translation.ScaleVec(-1, a.translation)
	return nil
}

// Inverse returns the inverse map, leaving a unchanged.
func (a *Affinity) Inverse() (*Affinity, error) {
	out := a.Clone()
	if err := out.Invert(); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply returns the image of v.
func (a *Affinity) Apply(v lattice.Vector) lattice.Vector {
	a.check(len(v))
	x := mat.NewVecDense(len(v), v.Clone())
	x.SubVec(x, a.center)
	x.MulVec(a.linear, x)
	x.AddVec(x, a.translation)
	x.AddVec(x, a.center)
	return vector(x)
}

// String formats the map as "linear | translation @ center".
func (a *Affinity) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v | %v @ %v", mat.Formatted(a.linear, mat.FormatMATLAB()), a.Translation(), a.Center())
	return sb.String()
}

func (a *Affinity) check(n int) {
	if n != a.Dimension() {
		panic(fmt.Errorf("%w: %d != %d", lattice.ErrDimensionMismatch, n, a.Dimension()))
	}
}

func vector(v *mat.VecDense) lattice.Vector {
	out := make(lattice.Vector, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
