package solver

import (
	"runtime"

	"golang.org/x/exp/constraints"
)

// MaxBy finds the element with the largest key. Ties go to the element
// that comes first, so the answer only depends on slice order.
func MaxBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}

	best := slice[0]
	bestKey := keyFunc(best)
	for _, v := range slice[1:] {
		if k := keyFunc(v); k > bestKey {
			best, bestKey = v, k
		}
	}
	return best, true
}

type span struct{ lo, hi int }

// partition splits [0,n) into contiguous spans, a few per worker so
// uneven spans even out. Span starts are multiples of align.
func partition(n, workers, align int) []span {
	if n == 0 {
		return nil
	}
	size := (n + workers*4 - 1) / (workers * 4)
	if align > 1 {
		size = (size + align - 1) / align * align
	}

	spans := make([]span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo, min(lo+size, n)})
	}
	return spans
}

func workerCount(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
