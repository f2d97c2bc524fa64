// Command latticefilter applies a lattice filter to a gray image.
//
// Usage:
//
//	latticefilter -in in.png -out out.png -filter median -radius 2 -window disk
//
// Filters: mean, median, minimum, maximum, erosion, dilation, prewitt,
// sobel, scharr, laplace. Gradients output the magnitude of the gradient.
// Erosion and dilation threshold the input first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/affine"
	"github.com/gogpu/lattice/filter"
	"github.com/gogpu/lattice/rasterio"
	"github.com/gogpu/lattice/sampling"
)

type config struct {
	in        string
	out       string
	filter    string
	window    string
	radius    int
	boundary  string
	value     float64
	threshold float64
	rotate    float64
	zoom      float64
	workers   int
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("latticefilter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "input image (png, tiff, bmp)")
	fs.StringVar(&cfg.out, "out", "out.png", "output image (png, tiff, bmp)")
	fs.StringVar(&cfg.filter, "filter", "median", "filter name")
	fs.StringVar(&cfg.window, "window", "box", "structuring element: box, disk, diamond")
	fs.IntVar(&cfg.radius, "radius", 1, "structuring element radius")
	fs.StringVar(&cfg.boundary, "boundary", "nearest", "boundary: nearest, periodic, constant")
	fs.Float64Var(&cfg.value, "value", 0, "value outside the image with -boundary constant")
	fs.Float64Var(&cfg.threshold, "threshold", 128, "binarization threshold of erosion and dilation")
	fs.Float64Var(&cfg.rotate, "rotate", 0, "rotation of the output in degrees")
	fs.Float64Var(&cfg.zoom, "zoom", 1, "upsampling factor of the output")
	fs.IntVar(&cfg.workers, "workers", 1, "number of goroutines (0 for all CPUs)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.in == "" {
		fs.Usage()
		return cfg, errors.New("missing -in")
	}
	if cfg.radius < 0 {
		return cfg, fmt.Errorf("negative radius %d", cfg.radius)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "latticefilter:", err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "latticefilter:", err)
		os.Exit(1)
	}
}

func run(cfg config, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	lattice.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer lattice.SetLogger(nil)

	in, err := rasterio.Load[float64](cfg.in)
	if err != nil {
		return err
	}
	window, err := makeWindow(cfg.window, cfg.radius)
	if err != nil {
		return err
	}
	boundary, err := makeBoundary(cfg.boundary, cfg.value)
	if err != nil {
		return err
	}
	opts := []filter.Option{filter.WithWorkers(cfg.workers)}

	start := time.Now()
	var out *lattice.Raster[float64]
	switch cfg.filter {
	case "erosion", "dilation":
		out, err = morphology(in, cfg, window, opts)
	default:
		var f filter.Filter[float64]
		f, err = makeFilter(cfg.filter, window)
		if err != nil {
			return err
		}
		out, err = f.Transform(in, boundary, opts...)
	}
	if err != nil {
		return err
	}

	if cfg.rotate != 0 {
		out, err = affine.Rotate(out, cfg.rotate*math.Pi/180, 0, 1, sampling.Cubic[float64]{}, boundary)
		if err != nil {
			return err
		}
	}
	if cfg.zoom != 1 {
		out, err = affine.Upsample(out, cfg.zoom, sampling.Linear[float64]{}, boundary)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	if err := rasterio.Save(cfg.out, out); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	elapsed = elapsed.Round(time.Microsecond)
	if usesWindow(cfg.filter) {
		_, err = p.Fprintf(stdout, "%s: %d pixels, %s over %d neighbors, %v\n",
			cfg.out, out.Size(), cfg.filter, window.Size(), elapsed)
	} else {
		_, err = p.Fprintf(stdout, "%s: %d pixels, %s, %v\n", cfg.out, out.Size(), cfg.filter, elapsed)
	}
	return err
}

// usesWindow reports whether a filter reads the -window and -radius flags.
// Derivative filters have fixed kernels.
func usesWindow(name string) bool {
	switch name {
	case "mean", "median", "minimum", "maximum", "erosion", "dilation":
		return true
	}
	return false
}

func makeWindow(name string, radius int) (lattice.Region, error) {
	center := lattice.Zero(2)
	switch name {
	case "box":
		return lattice.NewBox(lattice.Fill(2, -radius), lattice.Fill(2, radius)), nil
	case "disk":
		return lattice.Ball(2, float64(radius), center), nil
	case "diamond":
		return lattice.Ball(1, float64(radius), center), nil
	}
	return nil, fmt.Errorf("unknown window %q", name)
}

func makeBoundary[T any](name string, value T) (sampling.Extrapolation[T], error) {
	switch name {
	case "nearest":
		return sampling.Nearest[T]{}, nil
	case "periodic":
		return sampling.Periodic[T]{}, nil
	case "constant":
		return sampling.NewConstant(value), nil
	}
	return nil, fmt.Errorf("unknown boundary %q", name)
}

func makeFilter(name string, window lattice.Region) (filter.Filter[float64], error) {
	switch name {
	case "mean":
		return filter.New[float64](window, filter.Mean[float64]{})
	case "median":
		return filter.New[float64](window, filter.Median[float64]{})
	case "minimum":
		return filter.New[float64](window, filter.Minimum[float64]{})
	case "maximum":
		return filter.New[float64](window, filter.Maximum[float64]{})
	case "prewitt":
		return magnitude(filter.PrewittGradient[float64])
	case "sobel":
		return magnitude(filter.SobelGradient[float64])
	case "scharr":
		return magnitude(filter.ScharrGradient[float64])
	case "laplace":
		return filter.LaplaceOperator[float64](-1, 0, 1)
	}
	return nil, fmt.Errorf("unknown filter %q", name)
}

// magnitude combines the gradients along x and y into their Euclidean norm.
func magnitude(gradient func(float64, int, ...int) (*filter.Chain[float64], error)) (filter.Filter[float64], error) {
	dx, err := gradient(1, 0, 1)
	if err != nil {
		return nil, err
	}
	dy, err := gradient(1, 1, 0)
	if err != nil {
		return nil, err
	}
	return filter.NewAggregate[float64](math.Hypot, dx, dy), nil
}

// morphology thresholds the input, applies erosion or dilation and maps the
// result back to 0 and 255.
func morphology(in *lattice.Raster[float64], cfg config, window lattice.Region, opts []filter.Option) (*lattice.Raster[float64], error) {
	binary := lattice.NewRaster[bool](in.Shape())
	flags := binary.Data()
	for i, v := range in.Data() {
		flags[i] = v >= cfg.threshold
	}
	boundary, err := makeBoundary(cfg.boundary, cfg.value >= cfg.threshold)
	if err != nil {
		return nil, err
	}

	var evaluator filter.Evaluator[bool] = filter.Erosion[bool]{}
	if cfg.filter == "dilation" {
		evaluator = filter.Dilation[bool]{}
	}
	f, err := filter.New(window, evaluator)
	if err != nil {
		return nil, err
	}
	result, err := f.Transform(binary, boundary, opts...)
	if err != nil {
		return nil, err
	}

	out := lattice.NewRaster[float64](in.Shape())
	data := out.Data()
	for i, v := range result.Data() {
		if v {
			data[i] = math.MaxUint8
		}
	}
	return out, nil
}
