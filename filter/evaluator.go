package filter

import (
	"cmp"

	"github.com/gogpu/lattice/sampling"
)

// Number is the set of element types which kernels accept.
type Number interface {
	sampling.Real | ~complex64 | ~complex128
}

// Evaluator reduces the neighbors of a position to the output value at that
// position. Neighbors are given in window order; Evaluate may reorder them.
type Evaluator[T any] interface {
	Evaluate(neighbors []T) T
}

// Shortcutter is implemented by evaluators which can sometimes answer from
// the center value alone. Shortcut is consulted before any neighbor is read,
// and only when the window contains the origin.
type Shortcutter[T any] interface {
	Shortcut(center T) (T, bool)
}

// Kernel is the inner product of the neighbors with stored weights.
type Kernel[T Number] struct {
	weights []T
}

// Weights returns the stored weights, in window order.
func (k Kernel[T]) Weights() []T { return k.weights }

// Evaluate returns sum of weights[i] * neighbors[i].
func (k Kernel[T]) Evaluate(neighbors []T) T {
	var sum T
	for i, w := range k.weights {
		sum += w * neighbors[i]
	}
	return sum
}

// conj returns the complex conjugate of w, or w for real types.
func conj[T Number](w T) T {
	switch v := any(w).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	}
	return w
}

// Mean is the arithmetic mean of the neighbors.
// Integer results are truncated.
type Mean[T sampling.Real] struct{}

// Evaluate returns the mean of the neighbors.
func (Mean[T]) Evaluate(neighbors []T) T {
	mustNeighbors(len(neighbors))
	var sum float64
	for _, v := range neighbors {
		sum += float64(v)
	}
	return T(sum / float64(len(neighbors)))
}

// Median is the central order statistic of the neighbors. For an even
// count, the two central values are averaged.
type Median[T sampling.Real] struct{}

// Evaluate returns the median of the neighbors, which are partially sorted
// in place.
func (Median[T]) Evaluate(neighbors []T) T {
	n := len(neighbors)
	mustNeighbors(n)
	k := n / 2
	hi := nthElement(neighbors, k)
	if n%2 == 1 {
		return hi
	}
	// After selection, the lower half holds the k smallest values.
	lo := neighbors[0]
	for _, v := range neighbors[1:k] {
		lo = max(lo, v)
	}
	return lo + (hi-lo)/2
}

// nthElement partially sorts a so that a[k] is the k-th smallest value,
// with smaller or equal values before it, and returns a[k].
func nthElement[T cmp.Ordered](a []T, k int) T {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := partition(a, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return a[k]
		}
	}
	return a[k]
}

// partition moves a median-of-three pivot to its final place in a[lo:hi+1]
// and returns its index.
func partition[T cmp.Ordered](a []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if a[mid] < a[lo] {
		a[mid], a[lo] = a[lo], a[mid]
	}
	if a[hi] < a[lo] {
		a[hi], a[lo] = a[lo], a[hi]
	}
	if a[mid] < a[hi] {
		a[mid], a[hi] = a[hi], a[mid]
	}
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}

// Minimum is the smallest neighbor.
type Minimum[T cmp.Ordered] struct{}

// Evaluate returns the minimum of the neighbors.
func (Minimum[T]) Evaluate(neighbors []T) T {
	mustNeighbors(len(neighbors))
	out := neighbors[0]
	for _, v := range neighbors[1:] {
		out = min(out, v)
	}
	return out
}

// Maximum is the largest neighbor.
type Maximum[T cmp.Ordered] struct{}

// Evaluate returns the maximum of the neighbors.
func (Maximum[T]) Evaluate(neighbors []T) T {
	mustNeighbors(len(neighbors))
	out := neighbors[0]
	for _, v := range neighbors[1:] {
		out = max(out, v)
	}
	return out
}

// mustNeighbors panics with ErrEmptyWindow when there is nothing to reduce.
func mustNeighbors(n int) {
	if n == 0 {
		panic(ErrEmptyWindow)
	}
}

// Erosion is the binary minimum: true iff all the neighbors are true.
type Erosion[T ~bool] struct{}

// Evaluate reports whether all the neighbors are true.
func (Erosion[T]) Evaluate(neighbors []T) T {
	for _, v := range neighbors {
		if !v {
			return false
		}
	}
	return true
}

// Shortcut answers false on a false center.
func (Erosion[T]) Shortcut(center T) (T, bool) {
	return false, !bool(center)
}

// Dilation is the binary maximum: true iff any neighbor is true.
type Dilation[T ~bool] struct{}

// Evaluate reports whether any neighbor is true.
func (Dilation[T]) Evaluate(neighbors []T) T {
	for _, v := range neighbors {
		if v {
			return true
		}
	}
	return false
}

// Shortcut answers true on a true center.
func (Dilation[T]) Shortcut(center T) (T, bool) {
	return true, bool(center)
}
