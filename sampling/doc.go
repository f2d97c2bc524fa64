// Package sampling reads rasters outside their domain and between their
// nodes.
//
// Extrapolation policies (Constant, Nearest, Periodic) define values at
// integer positions outside the domain; they are what filters use as
// boundary conditions. Interpolation methods (NearestNeighbor, Linear,
// Cubic) compute values at real positions from the surrounding samples.
//
//	r := lattice.NewRaster[float64](lattice.Pos(4, 4))
//	in := sampling.NewInterpolator(r, sampling.Linear[float64]{}, sampling.Periodic[float64]{})
//	v := in.At(lattice.Vec(1.5, -0.25))
package sampling
