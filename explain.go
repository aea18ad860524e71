package main

import (
	"fmt"
	"io"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/solver"
)

// explain prints how text splits the solution list: one colored row per
// pattern with its count, largest first.
func explain(w io.Writer, s *solver.Solver, text string, colorize bool) error {
	v := s.Vocabulary()
	a := v.Alphabet
	guess, err := a.Token(text)
	if err != nil {
		return err
	}
	if !v.Contains(guess) {
		return fmt.Errorf("%q is not in the word list", text)
	}

	buckets := solver.Distribution(guess, v.Solutions, a.Size())
	syms := guess.Symbols(a)
	for _, b := range buckets {
		fmt.Fprintln(w, hint.ColoredWord(syms, b.Pattern, colorize), b.Count)
	}

	h := solver.Entropy(guess, v.Solutions, hint.NewScorer(a.Size()))
	fmt.Fprintf(w, "Patterns: %d\n", len(buckets))
	fmt.Fprintf(w, "Entropy: %.4f bits\n", h)
	fmt.Fprintf(w, "Expected remaining: %.2f\n", solver.ExpectedRemaining(buckets))
	return nil
}
