package word

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var ErrEmptyVocabulary = errors.New("solution list is empty")

// Vocabulary is the immutable word data of one session: every legal
// guess (a superset of the solutions, sorted and deduplicated) and the
// candidate solutions in file order.
type Vocabulary struct {
	Alphabet  *Alphabet
	Guesses   []Token
	Solutions []Token
}

// FromWords builds a Vocabulary from in-memory word lists. The alphabet
// is filled from valid first, then solutions.
func FromWords(valid, solutions []string) (*Vocabulary, error) {
	if len(solutions) == 0 {
		return nil, ErrEmptyVocabulary
	}

	a := NewAlphabet()
	for _, list := range [][]string{valid, solutions} {
		for i, w := range list {
			if err := a.Add(w); err != nil {
				return nil, fmt.Errorf("word %d: %w", i+1, err)
			}
		}
	}

	v := &Vocabulary{
		Alphabet:  a,
		Guesses:   make([]Token, 0, len(valid)+len(solutions)),
		Solutions: make([]Token, 0, len(solutions)),
	}
	for _, w := range valid {
		t, err := a.Token(w)
		if err != nil {
			return nil, err
		}
		v.Guesses = append(v.Guesses, t)
	}
	for _, w := range solutions {
		t, err := a.Token(w)
		if err != nil {
			return nil, err
		}
		v.Solutions = append(v.Solutions, t)
	}

	// Some lists already contain the solutions; the union may repeat them.
	v.Guesses = append(v.Guesses, v.Solutions...)
	slices.SortFunc(v.Guesses, Token.Compare)
	v.Guesses = slices.Compact(v.Guesses)

	return v, nil
}

// Load reads <dir>/<lang>/valid.txt and <dir>/<lang>/solutions.txt.
func Load(dir, lang string) (*Vocabulary, error) {
	base := filepath.Join(dir, strings.ToLower(lang))

	valid, err := readWords(filepath.Join(base, "valid.txt"))
	if err != nil {
		return nil, err
	}
	solutions, err := readWords(filepath.Join(base, "solutions.txt"))
	if err != nil {
		return nil, err
	}

	v, err := FromWords(valid, solutions)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", base, err)
	}
	return v, nil
}

// readWords loads one word per line, lower-cased, skipping blank lines.
// A line that is not exactly Length symbols fails the whole file.
func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if len(Split(w)) != Length {
			return nil, fmt.Errorf("%s:%d: %q: %w", path, line, w, ErrMalformedToken)
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Contains reports whether t is a legal guess.
func (v *Vocabulary) Contains(t Token) bool {
	_, ok := slices.BinarySearchFunc(v.Guesses, t, Token.Compare)
	return ok
}

// Fingerprint identifies the vocabulary contents. Two vocabularies with
// the same alphabet order and word lists share a fingerprint, and with
// it the same opening word.
func (v *Vocabulary) Fingerprint() string {
	h := sha256.New()
	for _, s := range v.Alphabet.symbols {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	buf := make([]byte, 0, 2*Length)
	for _, list := range [][]Token{v.Guesses, v.Solutions} {
		buf = binary.LittleEndian.AppendUint32(buf[:0], uint32(len(list)))
		h.Write(buf)
		for _, t := range list {
			buf = buf[:0]
			for _, idx := range t {
				buf = binary.LittleEndian.AppendUint16(buf, idx)
			}
			h.Write(buf)
		}
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}
