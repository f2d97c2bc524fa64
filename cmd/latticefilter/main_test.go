package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/rasterio"
)

// writeSquare saves a 32x32 black image with a white 8x8 square at (12, 12).
func writeSquare(t *testing.T, path string) {
	t.Helper()
	r := lattice.NewRaster[uint8](lattice.Pos(32, 32))
	for p := range lattice.NewBox(lattice.Pos(12, 12), lattice.Pos(19, 19)).All() {
		r.Set(p, 255)
	}
	if err := rasterio.Save(path, r); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-in", "a.png", "-filter", "sobel", "-workers", "4", "-v"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if cfg.in != "a.png" || cfg.out != "out.png" || cfg.filter != "sobel" {
		t.Errorf("parseFlags() = %+v", cfg)
	}
	if cfg.workers != 4 || !cfg.verbose || cfg.radius != 1 || cfg.zoom != 1 {
		t.Errorf("parseFlags() = %+v", cfg)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing input", nil},
		{"negative radius", []string{"-in", "a.png", "-radius", "-1"}},
		{"unknown flag", []string{"-in", "a.png", "-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, io.Discard); err == nil {
				t.Error("parseFlags() error = nil")
			}
		})
	}

	_, err := parseFlags([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseFlags(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestRun(t *testing.T) {
	filters := []string{
		"mean", "median", "minimum", "maximum", "erosion", "dilation",
		"prewitt", "sobel", "scharr", "laplace",
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeSquare(t, in)

	for _, name := range filters {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name+".tiff")
			var stdout, stderr bytes.Buffer
			cfg := config{
				in: in, out: out, filter: name, window: "disk", radius: 2,
				boundary: "nearest", threshold: 128, zoom: 1, workers: 2,
			}
			if err := run(cfg, &stdout, &stderr); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if !strings.Contains(stdout.String(), "1,024 pixels") {
				t.Errorf("summary = %q, want grouped pixel count", stdout.String())
			}
			if got, want := strings.Contains(stdout.String(), "over 13 neighbors"), usesWindow(name); got != want {
				t.Errorf("summary = %q, neighbor count reported = %v, want %v", stdout.String(), got, want)
			}

			got, err := rasterio.Load[int](out)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got.Shape().String() != lattice.Pos(32, 32).String() {
				t.Errorf("output shape = %v", got.Shape())
			}
		})
	}
}

func TestRun_Morphology(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeSquare(t, in)

	tests := []struct {
		filter string
		at     lattice.Position
		want   int
	}{
		{"erosion", lattice.Pos(12, 12), 0},
		{"erosion", lattice.Pos(14, 14), 255},
		{"dilation", lattice.Pos(10, 12), 255},
		{"dilation", lattice.Pos(9, 12), 0},
	}
	for _, tt := range tests {
		out := filepath.Join(dir, tt.filter+".png")
		cfg := config{
			in: in, out: out, filter: tt.filter, window: "box", radius: 2,
			boundary: "constant", threshold: 128, zoom: 1, workers: 1,
		}
		if err := run(cfg, io.Discard, io.Discard); err != nil {
			t.Fatalf("run(%s) error = %v", tt.filter, err)
		}
		got, err := rasterio.Load[int](out)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if v := got.At(tt.at); v != tt.want {
			t.Errorf("%s at %v = %d, want %d", tt.filter, tt.at, v, tt.want)
		}
	}
}

func TestRun_Affine(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeSquare(t, in)

	out := filepath.Join(dir, "out.bmp")
	cfg := config{
		in: in, out: out, filter: "mean", window: "box", radius: 0,
		boundary: "periodic", rotate: 90, zoom: 2, workers: 1,
	}
	var stdout bytes.Buffer
	if err := run(cfg, &stdout, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "4,096 pixels") {
		t.Errorf("summary = %q", stdout.String())
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeSquare(t, in)

	base := config{
		in: in, out: filepath.Join(dir, "out.png"), filter: "mean", window: "box",
		radius: 1, boundary: "nearest", zoom: 1, workers: 1,
	}
	tests := []struct {
		name   string
		mutate func(*config)
	}{
		{"missing input", func(c *config) { c.in = filepath.Join(dir, "missing.png") }},
		{"unknown filter", func(c *config) { c.filter = "blur" }},
		{"unknown window", func(c *config) { c.window = "star" }},
		{"unknown boundary", func(c *config) { c.boundary = "mirror" }},
		{"unsupported output", func(c *config) { c.out = filepath.Join(dir, "out.gif") }},
		{"negative zoom", func(c *config) { c.zoom = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := run(cfg, io.Discard, io.Discard); err == nil {
				t.Error("run() error = nil")
			}
		})
	}
}
