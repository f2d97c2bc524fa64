package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/lattice"
)

// planar returns a raster with value x + 10*y at (x, y).
func planar(t *testing.T, w, h int) *lattice.Raster[float64] {
	t.Helper()
	r := lattice.NewRaster[float64](lattice.Pos(w, h))
	for p := range r.Domain().All() {
		r.Set(p, float64(p[0]+10*p[1]))
	}
	return r
}

func TestConstant(t *testing.T) {
	r := planar(t, 3, 2)
	c := NewConstant(-1.0)

	assert.Equal(t, 12.0, c.At(r, lattice.Pos(2, 1)))
	assert.Equal(t, -1.0, c.At(r, lattice.Pos(3, 1)))
	assert.Equal(t, -1.0, c.At(r, lattice.Pos(0, -1)))
}

func TestNearest(t *testing.T) {
	r := planar(t, 3, 2)
	n := Nearest[float64]{}

	tests := []struct {
		p    lattice.Position
		want float64
	}{
		{lattice.Pos(1, 1), 11},
		{lattice.Pos(-5, 7), 10},
		{lattice.Pos(9, -2), 2},
		{lattice.Pos(-1, -1), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.At(r, tt.p), "At(%v)", tt.p)
	}

	// (0.5, -0.2) rounds to (1, 0); (2.7, 3.5) rounds to (3, 4), clamped to (2, 1).
	assert.Equal(t, 1.0, n.AtVector(r, lattice.Vec(0.5, -0.2)))
	assert.Equal(t, 12.0, n.AtVector(r, lattice.Vec(2.7, 3.5)))
}

func TestPeriodic(t *testing.T) {
	r := planar(t, 3, 2)
	per := Periodic[float64]{}

	assert.Equal(t, 2.0, per.At(r, lattice.Pos(-1, 0)))
	assert.Equal(t, 10.0, per.At(r, lattice.Pos(3, -1)))

	// Shifting by a multiple of the shape does not change the value.
	for p := range lattice.NewBox(lattice.Pos(-4, -3), lattice.Pos(4, 3)).All() {
		want := per.At(r, p)
		for _, k := range []int{-2, -1, 1, 3} {
			q := p.Add(r.Shape().MulScalar(k))
			assert.Equal(t, want, per.At(r, q), "At(%v) vs At(%v)", p, q)
		}
	}
}

func TestExtrapolator(t *testing.T) {
	r := planar(t, 3, 2)
	e := Extrapolate[float64](r, Periodic[float64]{})

	assert.Equal(t, 11.0, e.At(lattice.Pos(1, 1)))
	assert.Equal(t, 11.0, e.At(lattice.Pos(4, 3)))
}

func TestInterpolation_ExactOnLattice(t *testing.T) {
	r := planar(t, 5, 4)
	methods := map[string]Interpolation[float64]{
		"nearest": NearestNeighbor[float64]{},
		"linear":  Linear[float64]{},
		"cubic":   Cubic[float64]{},
	}
	for name, m := range methods {
		t.Run(name, func(t *testing.T) {
			in := NewInterpolator(r, m, nil)
			for p := range r.Domain().All() {
				assert.InDelta(t, r.At(p), in.At(p.ToVector()), 1e-12, "At(%v)", p)
			}
		})
	}
}

func TestInterpolation_ReproducesLinear(t *testing.T) {
	r := planar(t, 6, 6)
	v := lattice.Vec(2.25, 2.5)
	want := 2.25 + 10*2.5

	assert.InDelta(t, want, Linear[float64]{}.At(r, v), 1e-12)
	assert.InDelta(t, want, Cubic[float64]{}.At(r, v), 1e-12)
}

func TestLinear_Midpoint(t *testing.T) {
	r, err := lattice.NewRasterFrom(lattice.Pos(4), []uint8{0, 10, 20, 40})
	require.NoError(t, err)

	in := NewInterpolator(r, Linear[uint8]{}, Periodic[uint8]{})
	assert.InDelta(t, 5.0, in.At(lattice.Vec(0.5)), 1e-12)
	assert.InDelta(t, 30.0, in.At(lattice.Vec(2.5)), 1e-12)
	// Between the last and the first sample, wrapped around.
	assert.InDelta(t, 20.0, in.At(lattice.Vec(-0.5)), 1e-12)
	assert.Equal(t, uint8(40), in.AtPosition(lattice.Pos(-1)))
}

func TestNearestNeighbor_Rounding(t *testing.T) {
	r, err := lattice.NewRasterFrom(lattice.Pos(3), []int{1, 2, 3})
	require.NoError(t, err)

	in := NewInterpolator(r, NearestNeighbor[int]{}, nil)
	assert.Equal(t, 1.0, in.At(lattice.Vec(0.49)))
	assert.Equal(t, 2.0, in.At(lattice.Vec(0.5)))
	assert.Equal(t, 3.0, in.At(lattice.Vec(7.2)))
	assert.Equal(t, 1.0, in.At(lattice.Vec(-3)))
	assert.Same(t, r, in.Raster())
}

func TestCubic_Overshoot(t *testing.T) {
	// A step edge overshoots with Catmull-Rom, unlike linear interpolation.
	r, err := lattice.NewRasterFrom(lattice.Pos(4), []float64{0, 0, 1, 1})
	require.NoError(t, err)

	cubic := Cubic[float64]{}.At(r, lattice.Vec(1.5))
	assert.InDelta(t, 0.5, cubic, 1e-12)

	below := Cubic[float64]{}.At(Extrapolate(r, Nearest[float64]{}), lattice.Vec(0.75))
	assert.Less(t, below, 0.0)
}
