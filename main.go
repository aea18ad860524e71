package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	handler "github.com/bent101/wordle-entropy/api"
	"github.com/bent101/wordle-entropy/config"
	"github.com/bent101/wordle-entropy/solver"
	"github.com/bent101/wordle-entropy/word"
)

// openingBookSize is how many vocabularies' openers the book keeps.
const openingBookSize = 16

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	start := time.Now()
	vocab, err := word.Load(cfg.DataDir, cfg.Lang)
	if err != nil {
		log.Fatal().Err(err).Str("lang", cfg.Lang).Msg("failed to load word lists")
	}
	log.Debug().
		Int("guesses", len(vocab.Guesses)).
		Int("solutions", len(vocab.Solutions)).
		Int("alphabet", vocab.Alphabet.Size()).
		Dur("took", time.Since(start)).
		Msg("loaded word lists")

	book, err := solver.NewOpeningBook(cfg.OpeningCache, openingBookSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create opening book")
	}
	s := solver.New(vocab, solver.WithWorkers(cfg.Workers), solver.WithOpeningBook(book))
	log.Debug().Int("workers", s.Workers()).Str("opening_cache", cfg.OpeningCache).Msg("solver ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	colorize := term.IsTerminal(int(os.Stdout.Fd()))

	switch cfg.Mode {
	case config.ModeServe:
		err = serve(ctx, cfg.Addr(), handler.New(s))
	case config.ModeBenchmark:
		err = benchmark(ctx, s)
	case config.ModeExplain:
		err = explain(os.Stdout, s, cfg.Explain, colorize)
	default:
		err = interactivePlay(ctx, s, os.Stdin, os.Stdout, cfg.MaxAttempts, colorize)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func setupLogging(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func benchmark(ctx context.Context, s *solver.Solver) error {
	fmt.Println("Running benchmark...")
	b := &solver.Benchmark{Solver: s, Progress: os.Stderr}
	rep, err := b.Run(ctx)
	if err != nil {
		return err
	}
	return rep.Write(os.Stdout, s.Vocabulary().Alphabet)
}

func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}
