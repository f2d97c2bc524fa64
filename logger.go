package lattice

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so attributes are
// never built.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current holds the logger shared by lattice and its sub-packages. Workers
// of a parallel filter read it while SetLogger may replace it.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger installs the logger used by lattice and its sub-packages
// (sampling, filter, affine, rasterio). Nil restores the default, which
// discards everything.
//
// Levels:
//   - [slog.LevelDebug]: filter passes, tile scheduling, resampling, decoding
//   - [slog.LevelWarn]: resampling that collapses an axis to zero length
//
// For example:
//
//	lattice.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the installed logger.
func Logger() *slog.Logger { return current.Load() }
