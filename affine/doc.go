// Package affine maps rasters through affine transforms.
//
// An Affinity is y = M (x - c) + t + c, stored as gonum matrices. Transform
// fills an output raster by mapping each of its positions back to the input
// and interpolating there, so the input is read through a
// sampling.Interpolator with its boundary policy:
//
//	rot := affine.RotationDegrees(30, 0, 1, lattice.Vec(63.5, 63.5))
//	in := sampling.NewInterpolator(img, sampling.Cubic[float64]{}, sampling.NewConstant(0.0))
//	out := lattice.NewRaster[float64](img.Shape())
//	err := affine.Transform(rot, in, out)
//
// Translate, Scale, Rotate, Upsample and Downsample wrap the common cases.
package affine
