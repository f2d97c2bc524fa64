package rasterio

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/sampling"
)

// FromImage returns the 8-bit luminance of an image as a raster of shape
// (width, height). Axis 0 is x, axis 1 is y.
func FromImage[T sampling.Real](img image.Image) *lattice.Raster[T] {
	b := img.Bounds()
	out := lattice.NewRaster[T](lattice.Pos(b.Dx(), b.Dy()))
	data := out.Data()

	// Fast path for 8-bit gray images: rows are contiguous along x, which is
	// axis 0 of the raster.
	if gray, ok := img.(*image.Gray); ok {
		i := 0
		for y := range b.Dy() {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
			for _, v := range row {
				data[i] = T(v)
				i++
			}
		}
		return out
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data[i] = T(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
			i++
		}
	}
	return out
}

// FromImage16 returns the 16-bit luminance of an image, see FromImage.
func FromImage16[T sampling.Real](img image.Image) *lattice.Raster[T] {
	b := img.Bounds()
	out := lattice.NewRaster[T](lattice.Pos(b.Dx(), b.Dy()))
	data := out.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data[i] = T(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y)
			i++
		}
	}
	return out
}

// ToGray converts a 2-D raster into an 8-bit gray image. Values are rounded
// and clamped to [0, 255].
func ToGray[T sampling.Real](r *lattice.Raster[T]) (*image.Gray, error) {
	if err := checkPlanar(r); err != nil {
		return nil, err
	}
	w, h := r.Length(0), r.Length(1)
	img := image.NewGray(image.Rect(0, 0, w, h))
	data := r.Data()
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range row {
			row[x] = uint8(clamp(float64(data[x+y*w]), math.MaxUint8))
		}
	}
	return img, nil
}

// ToGray16 converts a 2-D raster into a 16-bit gray image. Values are
// rounded and clamped to [0, 65535].
func ToGray16[T sampling.Real](r *lattice.Raster[T]) (*image.Gray16, error) {
	if err := checkPlanar(r); err != nil {
		return nil, err
	}
	w, h := r.Length(0), r.Length(1)
	img := image.NewGray16(image.Rect(0, 0, w, h))
	data := r.Data()
	for y := range h {
		for x := range w {
			img.SetGray16(x, y, color.Gray16{Y: uint16(clamp(float64(data[x+y*w]), math.MaxUint16))})
		}
	}
	return img, nil
}

func checkPlanar[T any](r *lattice.Raster[T]) error {
	if r.Dimension() != 2 {
		return fmt.Errorf("%w: shape %v", ErrNotPlanar, r.Shape())
	}
	return nil
}

// clamp rounds v into [0, hi]; NaN maps to 0.
func clamp(v, hi float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= hi:
		return hi
	}
	return math.Round(v)
}
