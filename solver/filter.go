package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/word"
)

// Filter returns the members of pool that c matches, in pool order.
// pool itself is left untouched.
func Filter(pool []word.Token, c *hint.Constraint, workers int) []word.Token {
	workers = workerCount(workers)
	keep := NewBitvec(len(pool))

	// spans are 64-aligned so no two goroutines share a word of keep
	var g errgroup.Group
	g.SetLimit(workers)
	for _, sp := range partition(len(pool), workers, 64) {
		g.Go(func() error {
			for i := sp.lo; i < sp.hi; i++ {
				if c.Matches(pool[i]) {
					keep.Set(i)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]word.Token, 0, keep.Count())
	for i, t := range pool {
		if keep.Get(i) {
			out = append(out, t)
		}
	}
	return out
}
