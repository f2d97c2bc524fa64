package rasterio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/sampling"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("rasterio: unsupported format")

	// ErrNotPlanar is returned when converting a raster which is not 2-D into
	// an image.
	ErrNotPlanar = errors.New("rasterio: raster is not 2-D")
)

// Supported format names.
const (
	FormatPNG  = "png"
	FormatTIFF = "tiff"
	FormatBMP  = "bmp"
)

// FormatOf returns the format name matching the extension of path.
func FormatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// Decode decodes a PNG, TIFF or BMP image, detecting the format from the
// content. It returns the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("rasterio: decode: %w", err)
	}
	return img, format, nil
}

// Encode encodes an image in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("rasterio: encode %s: %w", format, err)
	}
	return nil
}

// Read decodes an image into a raster of 8-bit luminance.
func Read[T sampling.Real](r io.Reader) (*lattice.Raster[T], error) {
	img, format, err := Decode(r)
	if err != nil {
		return nil, err
	}
	lattice.Logger().Debug("rasterio: decoded", "format", format, "bounds", img.Bounds().String())
	return FromImage[T](img), nil
}

// Write encodes a 2-D raster as an 8-bit gray image in the named format.
func Write[T sampling.Real](w io.Writer, r *lattice.Raster[T], format string) error {
	img, err := ToGray(r)
	if err != nil {
		return err
	}
	return Encode(w, img, format)
}

// Load reads an image file into a raster of 8-bit luminance.
func Load[T sampling.Real](path string) (*lattice.Raster[T], error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("rasterio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read[T](f)
}

// Save writes a 2-D raster as an 8-bit gray image file. The format is given
// by the extension of path.
func Save[T sampling.Real](path string, r *lattice.Raster[T]) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("rasterio: create file: %w", err)
	}

	if err := Write(f, r, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
