package solver

import (
	"slices"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/word"
)

type Bucket struct {
	Pattern hint.Pattern
	Count   int
}

// Distribution groups pool by the pattern guess earns against each
// member, largest bucket first.
func Distribution(guess word.Token, pool []word.Token, alphabetSize int) []Bucket {
	scorer := hint.NewScorer(alphabetSize)
	var counts [hint.NumCodes]int
	for _, sol := range pool {
		counts[scorer.Score(guess, sol).Code()]++
	}

	var buckets []Bucket
	for code, n := range counts {
		if n > 0 {
			buckets = append(buckets, Bucket{Pattern: hint.FromCode(hint.Code(code)), Count: n})
		}
	}

	// Sort by count in descending order (high to low)
	slices.SortStableFunc(buckets, func(a, b Bucket) int { return b.Count - a.Count })
	return buckets
}

// ExpectedRemaining is the average pool size left after the guess that
// produced buckets.
func ExpectedRemaining(buckets []Bucket) float64 {
	var total, sq float64
	for _, b := range buckets {
		n := float64(b.Count)
		total += n
		sq += n * n
	}
	if total == 0 {
		return 0
	}
	return sq / total
}
