// Package lattice represents and traverses regions of N-dimensional dense
// arrays.
//
// The package provides:
//   - Position and Vector, integer and real N-tuples
//   - Box, an inclusive axis-aligned region
//   - Grid, a strided sub-lattice of a box
//   - Mask, a box with a per-position selection flag (disks, diamonds...)
//   - Raster, a dense column-major array, and Patch, a view of it
//   - Tiling, a disjoint decomposition of a region into lines or slabs
//
// # Iteration order
//
// Every region iterates its positions in column-major order: axis 0 varies
// fastest, the last axis slowest. Raster elements are stored in the same
// order, so iterating a raster domain and its data side by side stays
// aligned. Filters rely on this to precompute neighbor offsets.
//
//	box := lattice.NewBox(lattice.Pos(0, 0), lattice.Pos(2, 1))
//	for p := range box.All() {
//	    fmt.Println(p) // (0, 0) (1, 0) (2, 0) (0, 1) (1, 1) (2, 1)
//	}
//
// # Degenerate regions
//
// A box whose front exceeds its back along some axis is empty: its size is
// 0 and iterating it yields nothing. Intersections may produce such boxes;
// this is not an error.
//
// Sub-packages:
//   - sampling: boundary (extrapolation) and interpolation policies
//   - filter: correlation, convolution, statistical and morphological filters
//   - affine: affine transforms and resampling
//   - rasterio: conversion to and from images and image files
//
// The latticefilter command applies these filters to image files.
package lattice
