// Package rasterio converts rasters to and from images and image files.
//
// Images map to 2-D rasters of luminance with axis 0 along x and axis 1
// along y, so that raster iteration follows image rows. PNG is handled by
// the standard library, TIFF and BMP by golang.org/x/image.
//
//	img, err := rasterio.Load[float64]("in.png")
//	...
//	err = rasterio.Save("out.tiff", img)
package rasterio
