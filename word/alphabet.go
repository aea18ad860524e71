package word

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

var (
	ErrMalformedToken   = errors.New("word is not exactly 5 symbols")
	ErrUnknownCharacter = errors.New("unknown character")
)

// Alphabet maps the symbols found in a vocabulary to dense indices
// 0..Size()-1, assigned in first-seen order. A symbol is a grapheme
// cluster, so "ñ" or a decomposed "é" each take one slot.
type Alphabet struct {
	index   map[string]uint16
	symbols []string
}

func NewAlphabet() *Alphabet {
	return &Alphabet{index: make(map[string]uint16)}
}

// Split lower-cases text and breaks it into grapheme clusters.
func Split(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(strings.ToLower(text))
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Add registers every symbol of word, which must be exactly Length symbols.
func (a *Alphabet) Add(word string) error {
	syms := Split(word)
	if len(syms) != Length {
		return fmt.Errorf("%q: %w", word, ErrMalformedToken)
	}
	for _, s := range syms {
		if _, ok := a.index[s]; !ok {
			a.index[s] = uint16(len(a.symbols))
			a.symbols = append(a.symbols, s)
		}
	}
	return nil
}

func (a *Alphabet) Size() int { return len(a.symbols) }

func (a *Alphabet) Index(symbol string) (uint16, error) {
	idx, ok := a.index[symbol]
	if !ok {
		return 0, fmt.Errorf("%q: %w", symbol, ErrUnknownCharacter)
	}
	return idx, nil
}

// Symbol returns the symbol for idx, or "?" if idx was never assigned.
func (a *Alphabet) Symbol(idx uint16) string {
	if int(idx) >= len(a.symbols) {
		return "?"
	}
	return a.symbols[idx]
}

// Token encodes word. It fails on words of the wrong length or with
// symbols this alphabet has not seen.
func (a *Alphabet) Token(word string) (Token, error) {
	var t Token
	syms := Split(strings.TrimSpace(word))
	if len(syms) != Length {
		return t, fmt.Errorf("%q: %w", word, ErrMalformedToken)
	}
	for i, s := range syms {
		idx, err := a.Index(s)
		if err != nil {
			return t, fmt.Errorf("word %q: %w", word, err)
		}
		t[i] = idx
	}
	return t, nil
}
