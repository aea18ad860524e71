package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Mode int

const (
	ModePlay Mode = iota
	ModeBenchmark
	ModeExplain
	ModeServe
)

type Config struct {
	Lang    string
	DataDir string
	// Workers bounds goroutines per entropy or filter pass; 0 means GOMAXPROCS.
	Workers int
	// OpeningCache is the gob file for computed openers; empty keeps them
	// in memory.
	OpeningCache string
	MaxAttempts  int
	LogLevel     string
	Port         string

	Mode    Mode
	Explain string
}

// Load reads an optional .env file, then the environment, then args.
// Flags win over the environment.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	workers, err := envInt("WORDLE_WORKERS", 0)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := envInt("WORDLE_MAX_ATTEMPTS", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Lang:         firstNonEmpty(strings.TrimSpace(os.Getenv("WORDLE_LANG")), "en"),
		DataDir:      firstNonEmpty(strings.TrimSpace(os.Getenv("WORDLE_DATA_DIR")), "data"),
		Workers:      workers,
		OpeningCache: strings.TrimSpace(os.Getenv("WORDLE_OPENING_CACHE")),
		MaxAttempts:  maxAttempts,
		LogLevel:     firstNonEmpty(strings.TrimSpace(os.Getenv("LOG_LEVEL")), "info"),
		Port:         firstNonEmpty(strings.TrimSpace(os.Getenv("PORT")), "8080"),
	}

	fs := flag.NewFlagSet("wordle", flag.ContinueOnError)
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "word list language")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory holding <lang>/valid.txt and <lang>/solutions.txt")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines per pass (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.OpeningCache, "opening-cache", cfg.OpeningCache, "gob file for computed opening words")
	benchmark := fs.Bool("benchmark", false, "play every solution and print the guess histogram")
	serve := fs.Bool("serve", false, "serve the HTTP API on PORT")
	fs.StringVar(&cfg.Explain, "explain", "", "print the pattern distribution of a word")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case *serve:
		cfg.Mode = ModeServe
	case *benchmark:
		cfg.Mode = ModeBenchmark
	case cfg.Explain != "":
		cfg.Mode = ModeExplain
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
