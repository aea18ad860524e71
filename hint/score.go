package hint

import "github.com/bent101/wordle-entropy/word"

// Scorer computes patterns. It owns a remaining-count table sized to the
// alphabet, reused across calls, so a Scorer must not be shared between
// goroutines.
type Scorer struct {
	counts []int8
}

func NewScorer(alphabetSize int) *Scorer {
	return &Scorer{counts: make([]int8, alphabetSize)}
}

// Score returns the feedback guess earns against solution.
//
// Exact matches are settled before any partial match so that they
// consume their copy of a letter first; partial matches then take the
// remaining copies left to right. Score(a, b) and Score(b, a) differ when
// the words repeat letters a different number of times.
func (s *Scorer) Score(guess, solution word.Token) Pattern {
	var p Pattern

	for _, ch := range solution {
		s.counts[ch]++
	}

	for i := range word.Length {
		if guess[i] == solution[i] {
			p[i] = Exact
			s.counts[guess[i]]--
		}
	}

	for i := range word.Length {
		if p[i] == Exact {
			continue
		}
		if ch := guess[i]; s.counts[ch] > 0 {
			p[i] = Present
			s.counts[ch]--
		}
	}

	// only solution letters were ever touched
	for _, ch := range solution {
		s.counts[ch] = 0
	}

	return p
}

// Compute is Score with a throwaway Scorer.
func Compute(guess, solution word.Token, alphabetSize int) Pattern {
	return NewScorer(alphabetSize).Score(guess, solution)
}
