package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/solver"
	"github.com/bent101/wordle-entropy/word"
)

// console asks the player for the pattern of each suggested guess.
type console struct {
	in       *bufio.Scanner
	out      io.Writer
	alphabet *word.Alphabet
	colorize bool
}

func (c *console) Feedback(_ context.Context, guess word.Token) (hint.Pattern, error) {
	fmt.Fprintln(c.out, guess.Format(c.alphabet))
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return hint.Pattern{}, err
			}
			return hint.Pattern{}, io.ErrUnexpectedEOF
		}

		line := strings.TrimSpace(c.in.Text())
		if line == "!" {
			return hint.AllExact(), nil
		}
		p, err := hint.Parse(line)
		if err != nil {
			fmt.Fprintln(c.out, "Type five of g, y or x, or ! if the word was right.")
			continue
		}
		fmt.Fprintln(c.out, hint.ColoredWord(guess.Symbols(c.alphabet), p, c.colorize))
		return p, nil
	}
}

func interactivePlay(ctx context.Context, s *solver.Solver, in io.Reader, out io.Writer, maxAttempts int, colorize bool) error {
	a := s.Vocabulary().Alphabet

	fmt.Fprintln(out, "Type the pattern you got for every suggested word.")
	fmt.Fprintln(out, "g: Green, y: Yellow, x: Gray, !: solved")
	fmt.Fprintln(out, "Enter to submit.")
	fmt.Fprintln(out, "-------------------------------------")

	src := &console{in: bufio.NewScanner(in), out: out, alphabet: a, colorize: colorize}
	res, err := solver.Play(ctx, s.NewSession(), src, solver.Rules{MaxAttempts: maxAttempts, StopAtSingle: true})
	if err != nil {
		return err
	}

	green := colorstring.Colorize{Colors: colorstring.DefaultColors, Disable: !colorize, Reset: true}
	switch res.Outcome {
	case solver.OutcomeSolved:
		if !res.Guessed {
			fmt.Fprintln(out, green.Color("[green]"+res.Answer.Format(a)))
		}
	case solver.OutcomeExhausted:
		fmt.Fprintln(out, "Oops, no solutions found... Check that the color patterns are correct and try again.")
	case solver.OutcomeCapped:
		fmt.Fprintf(out, "Out of guesses after %d attempts.\n", maxAttempts)
	}
	return nil
}
