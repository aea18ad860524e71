package solver

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/bent101/wordle-entropy/word"
)

// Histogram counts games by number of guesses; the last slot holds the
// games that needed more than MaxAttempts.
type Histogram [MaxAttempts + 1]int

type Report struct {
	Opening  word.Token
	Counts   Histogram
	Runs     int
	Overflow []word.Token
}

// Average is the mean number of guesses, counting overflow games as
// MaxAttempts+1.
func (r *Report) Average() float64 {
	if r.Runs == 0 {
		return 0
	}
	var sum int
	for i, n := range r.Counts {
		sum += (i + 1) * n
	}
	return float64(sum) / float64(r.Runs)
}

func (r *Report) Write(w io.Writer, a *word.Alphabet) error {
	if _, err := fmt.Fprintf(w, "Opening word: %s\n", r.Opening.Format(a)); err != nil {
		return err
	}
	for i, n := range r.Counts {
		label := strconv.Itoa(i + 1)
		if i == MaxAttempts {
			label = "X"
		}
		var ratio float64
		if r.Runs > 0 {
			ratio = float64(n) / float64(r.Runs)
		}
		if _, err := fmt.Fprintf(w, "- %s: %d (%.2f%%)\n", label, n, ratio*100); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Average: %.4f\n", r.Average())
	return err
}

// Benchmark replays every solution of the vocabulary with the solver's
// own guesses.
type Benchmark struct {
	Solver *Solver
	// Progress receives a progress bar when set.
	Progress io.Writer
}

func (b *Benchmark) Run(ctx context.Context) (*Report, error) {
	v := b.Solver.Vocabulary()
	opening, err := b.Solver.Opening()
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if b.Progress != nil {
		bar = progressbar.NewOptions(len(v.Solutions),
			progressbar.OptionSetWriter(b.Progress),
			progressbar.OptionSetDescription("benchmark"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	start := time.Now()
	rep := &Report{Opening: opening}
	for _, secret := range v.Solutions {
		res, err := Play(ctx, b.Solver.NewSession(), NewOracle(secret, v.Alphabet.Size()), Rules{MaxAttempts: MaxAttempts})
		if err != nil {
			return nil, err
		}

		slot := min(res.Attempts, MaxAttempts+1) - 1
		if res.Outcome != OutcomeSolved {
			slot = MaxAttempts
			rep.Overflow = append(rep.Overflow, secret)
		}
		if res.Outcome == OutcomeExhausted {
			log.Warn().Str("secret", secret.Format(v.Alphabet)).Msg("oracle feedback emptied the pool")
		}
		rep.Counts[slot]++
		rep.Runs++

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.Info().
		Int("runs", rep.Runs).
		Float64("average", rep.Average()).
		Dur("took", time.Since(start)).
		Msg("benchmark finished")
	return rep, nil
}
