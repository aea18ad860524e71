package solver

import (
	"errors"
	"sync"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/word"
)

var (
	ErrSessionOver = errors.New("solver: session is over")
	ErrNoGuess     = errors.New("solver: no guess to apply feedback to")
)

// Solver holds what every game over one vocabulary shares: the word
// lists, the worker count and the opening word.
type Solver struct {
	vocab   *word.Vocabulary
	workers int
	book    *OpeningBook

	openOnce sync.Once
	opening  word.Token
	openErr  error
}

type Option func(*Solver)

// WithWorkers bounds the goroutines used per entropy or filter pass.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

func WithOpeningBook(b *OpeningBook) Option {
	return func(s *Solver) { s.book = b }
}

func New(v *word.Vocabulary, opts ...Option) *Solver {
	s := &Solver{vocab: v}
	for _, opt := range opts {
		opt(s)
	}
	if s.book == nil {
		s.book, _ = NewOpeningBook("", 1)
	}
	return s
}

func (s *Solver) Vocabulary() *word.Vocabulary { return s.vocab }

func (s *Solver) Workers() int { return workerCount(s.workers) }

// Opening returns the best first guess against the full solution list,
// computed on first use.
func (s *Solver) Opening() (word.Token, error) {
	s.openOnce.Do(func() {
		s.opening, s.openErr = s.book.Opening(s.vocab, s.workers)
	})
	return s.opening, s.openErr
}

func (s *Solver) NewSession() *Session {
	return &Session{
		solver:  s,
		pool:    s.vocab.Solutions,
		attempt: 1,
	}
}

type State int

const (
	Playing State = iota
	Solved
	Exhausted
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Turn records one guess and the feedback it got.
type Turn struct {
	Guess     word.Token
	Pattern   hint.Pattern
	Remaining int
}

// Session is one game: the live candidate pool and the attempt number.
// Next picks a guess, Apply narrows the pool with its feedback. A
// Session never stops on its own because of the attempt count; that
// is up to the caller.
type Session struct {
	solver  *Solver
	pool    []word.Token
	attempt int
	state   State

	guess   word.Token
	pending bool

	turns []Turn
}

func (s *Session) State() State { return s.state }

// Attempt is the number of the guess about to be made, starting at 1.
func (s *Session) Attempt() int { return s.attempt }

// Pool returns the candidates still consistent with all feedback.
func (s *Session) Pool() []word.Token { return s.pool }

func (s *Session) Turns() []Turn { return s.turns }

// Next returns the guess for the current attempt. Calling it again
// before Apply returns the same guess.
func (s *Session) Next() (word.Token, error) {
	if s.state != Playing {
		return word.Token{}, ErrSessionOver
	}
	if s.pending {
		return s.guess, nil
	}

	var guess word.Token
	switch {
	case len(s.pool) <= 2:
		// Worst case is already two more tries; one of them wins
		// right away half the time.
		guess = s.pool[0]
	case s.attempt == 1:
		t, err := s.solver.Opening()
		if err != nil {
			return word.Token{}, err
		}
		guess = t
	default:
		v := s.solver.vocab
		best, err := BestSplitter(v.Guesses, s.pool, v.Alphabet.Size(), s.solver.workers)
		if err != nil {
			return word.Token{}, err
		}
		guess = best.Token
	}

	s.guess, s.pending = guess, true
	return guess, nil
}

// Use replaces the pending guess with one the player chose instead.
func (s *Session) Use(guess word.Token) error {
	if s.state != Playing {
		return ErrSessionOver
	}
	s.guess, s.pending = guess, true
	return nil
}

// Apply consumes the feedback for the pending guess. An all-exact
// pattern solves the game at the current attempt; anything else
// filters the pool and moves to the next attempt. An empty pool means
// the feedback contradicts every solution.
func (s *Session) Apply(p hint.Pattern) (State, error) {
	if s.state != Playing {
		return s.state, ErrSessionOver
	}
	if !s.pending {
		return s.state, ErrNoGuess
	}
	s.pending = false

	if p.Solved() {
		s.state = Solved
		s.pool = []word.Token{s.guess}
		s.turns = append(s.turns, Turn{Guess: s.guess, Pattern: p, Remaining: 1})
		return s.state, nil
	}

	size := s.solver.vocab.Alphabet.Size()
	c := hint.NewConstraint(s.guess, p, size)
	s.pool = Filter(s.pool, c, s.solver.workers)
	s.attempt++
	s.turns = append(s.turns, Turn{Guess: s.guess, Pattern: p, Remaining: len(s.pool)})

	if len(s.pool) == 0 {
		s.state = Exhausted
	}
	return s.state, nil
}
