package solver

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/word"
)

// MaxAttempts is the number of guesses a standard game allows.
const MaxAttempts = 6

// FeedbackSource answers a guess with its pattern, a human at a prompt
// or an Oracle that knows the secret.
type FeedbackSource interface {
	Feedback(ctx context.Context, guess word.Token) (hint.Pattern, error)
}

type FeedbackFunc func(ctx context.Context, guess word.Token) (hint.Pattern, error)

func (f FeedbackFunc) Feedback(ctx context.Context, guess word.Token) (hint.Pattern, error) {
	return f(ctx, guess)
}

// Oracle scores guesses against a known secret.
type Oracle struct {
	Secret word.Token
	scorer *hint.Scorer
}

func NewOracle(secret word.Token, alphabetSize int) *Oracle {
	return &Oracle{Secret: secret, scorer: hint.NewScorer(alphabetSize)}
}

func (o *Oracle) Feedback(_ context.Context, guess word.Token) (hint.Pattern, error) {
	return o.scorer.Score(guess, o.Secret), nil
}

type Outcome int

const (
	OutcomeSolved Outcome = iota
	// OutcomeExhausted: the feedback ruled out every solution.
	OutcomeExhausted
	// OutcomeCapped: more than Rules.MaxAttempts guesses were needed.
	OutcomeCapped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCapped:
		return "capped"
	}
	return "unknown"
}

type Rules struct {
	// MaxAttempts caps the number of guesses; zero or less means no cap.
	MaxAttempts int
	// StopAtSingle ends the game as soon as one candidate is left,
	// without spending a guess on it.
	StopAtSingle bool
}

type Result struct {
	Outcome Outcome
	// Attempts is the number of guesses made; MaxAttempts+1 when capped.
	Attempts int
	Turns    []Turn
	Answer   word.Token
	// Guessed is false when the answer was deduced, not played.
	Guessed bool
}

// Play runs sess to a terminal outcome, asking src for feedback on each
// guess. Cancelling ctx abandons the game between attempts.
func Play(ctx context.Context, sess *Session, src FeedbackSource, rules Rules) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if rules.MaxAttempts > 0 && sess.Attempt() > rules.MaxAttempts {
			return Result{Outcome: OutcomeCapped, Attempts: sess.Attempt(), Turns: sess.Turns()}, nil
		}
		if rules.StopAtSingle && len(sess.Pool()) == 1 {
			return Result{
				Outcome:  OutcomeSolved,
				Attempts: sess.Attempt() - 1,
				Turns:    sess.Turns(),
				Answer:   sess.Pool()[0],
			}, nil
		}

		guess, err := sess.Next()
		if err != nil {
			return Result{}, err
		}
		p, err := src.Feedback(ctx, guess)
		if err != nil {
			return Result{}, err
		}

		attempt := sess.Attempt()
		state, err := sess.Apply(p)
		if err != nil {
			return Result{}, err
		}
		log.Debug().
			Int("attempt", attempt).
			Str("pattern", p.Letters()).
			Int("remaining", len(sess.Pool())).
			Msg("applied feedback")

		switch state {
		case Solved:
			return Result{
				Outcome:  OutcomeSolved,
				Attempts: attempt,
				Turns:    sess.Turns(),
				Answer:   guess,
				Guessed:  true,
			}, nil
		case Exhausted:
			return Result{Outcome: OutcomeExhausted, Attempts: attempt, Turns: sess.Turns()}, nil
		}
	}
}
