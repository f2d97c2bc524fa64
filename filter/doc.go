// Package filter applies sliding-window operators to rasters.
//
// A SimpleFilter pairs a window (the neighbor offsets, a lattice.Box or a
// lattice.Mask) with an Evaluator which reduces the neighbor values:
//
//   - Kernel: weighted sum, built by NewCorrelation, NewConvolution and
//     their raster-based variants
//   - Mean, Median, Minimum, Maximum: statistics over a structuring element
//   - Erosion, Dilation: binary morphology, which short-circuit on the
//     center value
//
// Filters compose with Chain (sequential passes, e.g. separable kernels)
// and Aggregate (pointwise reduction of parallel passes, e.g. the Laplace
// operator).
//
// # Boundaries
//
// Positions whose window lies inside the input read their neighbors
// directly. Near the edge, the neighbors outside the domain are read
// through a sampling.Extrapolation, which Transform requires in that case:
//
//	sobel, _ := filter.SobelGradient[float64](1, 0, 1)
//	dx, err := sobel.Transform(img, sampling.Nearest[float64]{})
//
// # Parallelism
//
// WithWorkers splits the output into slabs along the last axis (see
// lattice.TileSlabs) and processes them concurrently. The result is
// identical to the sequential one.
package filter
