package solver

import (
	"encoding/gob"
	"fmt"
	"os"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/bent101/wordle-entropy/word"
)

// OpeningBook memoizes the best first guess per vocabulary. The opener
// depends only on the guess list and the full solution list, so it is
// computed once per vocabulary fingerprint. With a path set, the book is
// mirrored to a gob file to survive restarts.
type OpeningBook struct {
	mu    sync.Mutex
	cache *lru.Cache[string, word.Token]
	path  string
}

// NewOpeningBook creates a book holding up to size vocabularies. An empty
// path keeps it in memory only; a missing or unreadable file starts an
// empty book.
func NewOpeningBook(path string, size int) (*OpeningBook, error) {
	cache, err := lru.New[string, word.Token](size)
	if err != nil {
		return nil, err
	}
	b := &OpeningBook{cache: cache, path: path}
	if path != "" {
		b.load()
	}
	return b, nil
}

func (b *OpeningBook) load() {
	file, err := os.Open(b.path)
	if err != nil {
		log.Debug().Str("path", b.path).Msg("opening cache not found, will calculate from scratch")
		return
	}
	defer file.Close()

	var entries map[string]word.Token
	if err := gob.NewDecoder(file).Decode(&entries); err != nil {
		log.Warn().Err(err).Str("path", b.path).Msg("error decoding opening cache, will recalculate")
		return
	}
	for k, t := range entries {
		b.cache.Add(k, t)
	}
	log.Debug().Int("entries", len(entries)).Str("path", b.path).Msg("loaded opening cache")
}

// Save writes the book to its file. It is a no-op for in-memory books.
func (b *OpeningBook) Save() error {
	if b.path == "" {
		return nil
	}

	entries := make(map[string]word.Token, b.cache.Len())
	for _, k := range b.cache.Keys() {
		if t, ok := b.cache.Peek(k); ok {
			entries[k] = t
		}
	}

	file, err := os.Create(b.path)
	if err != nil {
		return fmt.Errorf("create opening cache: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(entries); err != nil {
		return fmt.Errorf("encode opening cache: %w", err)
	}
	return nil
}

// Lookup returns the cached opener for v, if any.
func (b *OpeningBook) Lookup(v *word.Vocabulary) (word.Token, bool) {
	return b.cache.Get(v.Fingerprint())
}

// Opening returns the opener for v, computing and storing it on a miss.
func (b *OpeningBook) Opening(v *word.Vocabulary, workers int) (word.Token, error) {
	key := v.Fingerprint()
	if t, ok := b.cache.Get(key); ok {
		return t, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.cache.Get(key); ok {
		return t, nil
	}

	start := time.Now()
	best, err := BestSplitter(v.Guesses, v.Solutions, v.Alphabet.Size(), workers)
	if err != nil {
		return word.Token{}, err
	}
	b.cache.Add(key, best.Token)
	log.Info().
		Str("opening", best.Token.Format(v.Alphabet)).
		Float64("entropy", best.Entropy).
		Dur("took", time.Since(start)).
		Msg("computed opening word")

	if err := b.Save(); err != nil {
		log.Warn().Err(err).Msg("could not save opening cache")
	}
	return best.Token, nil
}
