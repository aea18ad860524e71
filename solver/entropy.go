// Package solver picks Wordle guesses by expected information gain and
// narrows the candidate pool as feedback arrives.
package solver

import (
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/word"
)

var ErrNoCandidates = errors.New("solver: no candidates")

// Splitter is the guess that best splits a pool, with its position in
// the guess list.
type Splitter struct {
	Token   word.Token
	Index   int
	Entropy float64
}

// Entropy returns the expected information, in bits, that guess yields
// about a solution drawn uniformly from solutions.
func Entropy(guess word.Token, solutions []word.Token, scorer *hint.Scorer) float64 {
	var buckets [hint.NumCodes]int
	for _, sol := range solutions {
		buckets[scorer.Score(guess, sol).Code()]++
	}

	n := float64(len(solutions))
	var h float64
	for _, c := range buckets {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

// BestSplitter evaluates every guess against solutions and returns the
// one with the highest entropy, the earliest in guesses on ties.
//
// guesses is cut into contiguous spans scored in parallel. Each span
// keeps its first best; span winners are then reduced in span order, so
// the result is the same for any worker count.
func BestSplitter(guesses, solutions []word.Token, alphabetSize, workers int) (Splitter, error) {
	if len(guesses) == 0 || len(solutions) == 0 {
		return Splitter{}, ErrNoCandidates
	}
	workers = workerCount(workers)

	spans := partition(len(guesses), workers, 1)
	winners := make([]Splitter, len(spans))

	var g errgroup.Group
	g.SetLimit(workers)
	for si, sp := range spans {
		g.Go(func() error {
			scorer := hint.NewScorer(alphabetSize)
			best := Splitter{Index: -1}
			for i := sp.lo; i < sp.hi; i++ {
				h := Entropy(guesses[i], solutions, scorer)
				if best.Index < 0 || h > best.Entropy {
					best = Splitter{Token: guesses[i], Index: i, Entropy: h}
				}
			}
			winners[si] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Splitter{}, err
	}

	best, _ := MaxBy(winners, func(s Splitter) float64 { return s.Entropy })
	return best, nil
}
