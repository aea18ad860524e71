// Package hint computes Wordle feedback and turns it back into filters.
//
// A Pattern is the row of colored tiles one guess earns against one
// solution. Its Code is the base-3 number colors[4]*81 + ... + colors[0],
// which the entropy computation uses as a bucket key.
package hint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bent101/wordle-entropy/word"
)

type Color uint8

const (
	Absent Color = iota
	Present
	Exact
)

// NumCodes is the number of distinct patterns, 3^5.
const NumCodes = 243

type Pattern [word.Length]Color

type Code uint8

var ErrInvalidPattern = errors.New("invalid pattern")

func (p Pattern) Code() Code {
	return Code(p[4])*81 +
		Code(p[3])*27 +
		Code(p[2])*9 +
		Code(p[1])*3 +
		Code(p[0])
}

func FromCode(c Code) Pattern {
	var p Pattern
	for i := range word.Length {
		p[i] = Color(c % 3)
		c /= 3
	}
	return p
}

// Solved reports whether every tile is Exact.
func (p Pattern) Solved() bool {
	for _, c := range p {
		if c != Exact {
			return false
		}
	}
	return true
}

// AllExact is the pattern of a correct guess.
func AllExact() Pattern {
	return Pattern{Exact, Exact, Exact, Exact, Exact}
}

// Parse reads five tiles: x or - for absent, y or c for present, g or o
// for exact, in either case.
func Parse(s string) (Pattern, error) {
	var p Pattern
	s = strings.TrimSpace(s)
	if len(s) != word.Length {
		return p, fmt.Errorf("%q: want %d tiles: %w", s, word.Length, ErrInvalidPattern)
	}
	for i := range word.Length {
		switch s[i] {
		case 'x', 'X', '-':
			p[i] = Absent
		case 'y', 'Y', 'c', 'C':
			p[i] = Present
		case 'g', 'G', 'o', 'O':
			p[i] = Exact
		default:
			return p, fmt.Errorf("%q: tile %d: %w", s, i+1, ErrInvalidPattern)
		}
	}
	return p, nil
}

// Letters renders the pattern in the form Parse accepts.
func (p Pattern) Letters() string {
	const tiles = "xyg"
	var b [word.Length]byte
	for i, c := range p {
		b[i] = tiles[c]
	}
	return string(b[:])
}

func (p Pattern) String() string {
	hintReplacer := strings.NewReplacer("x", "⬜", "y", "🟨", "g", "🟩")
	return hintReplacer.Replace(p.Letters())
}
