package filter

import "runtime"

// Option configures a filter application.
//
// Example:
//
//	out, err := f.Transform(in, sampling.Nearest[float64]{},
//	    filter.WithWorkers(0), filter.WithSlabThickness(16))
type Option func(*options)

type options struct {
	workers   int
	thickness int
}

func defaultOptions() options {
	return options{workers: 1}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers splits the output into slabs along the last axis and
// processes them on n goroutines. If n is 0 or negative, GOMAXPROCS is
// used. The default is 1 (sequential).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithSlabThickness sets the thickness of the slabs scheduled on the
// workers. By default, each worker gets about four slabs.
func WithSlabThickness(n int) Option {
	return func(o *options) {
		o.thickness = n
	}
}

// slabThickness returns the configured thickness, or a default one for a
// last axis of the given length.
func (o options) slabThickness(length int) int {
	if o.thickness > 0 {
		return o.thickness
	}
	return max(1, length/(4*o.workers))
}
