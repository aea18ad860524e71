package hint

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/bent101/wordle-entropy/word"
)

// Cell is what one feedback event says about a letter at a position.
type Cell uint8

const (
	CellUnknown Cell = iota
	CellForbidden
	CellExact
)

// Constraint is the filter compiled from one guess and its pattern.
// It is read-only once built.
type Constraint struct {
	size int

	// row-major, letter*word.Length + position
	cells []Cell

	// copies of each letter the solution must hold at least
	minCount []uint8

	// letters that earned a Present tile; only these are
	// checked against minCount
	partial *bitset.BitSet
}

// NewConstraint compiles guess and p. Tiles are read left to right: an
// Absent tile for a letter already marked Present or Exact earlier in
// the same guess only rules the letter out at that position, since the
// solution does hold the letter, just not one more copy of it.
func NewConstraint(guess word.Token, p Pattern, alphabetSize int) *Constraint {
	c := &Constraint{
		size:     alphabetSize,
		cells:    make([]Cell, alphabetSize*word.Length),
		minCount: make([]uint8, alphabetSize),
		partial:  bitset.New(uint(alphabetSize)),
	}

	var seen [word.Length]uint16
	nseen := 0
	wasSeen := func(ch uint16) bool {
		for _, s := range seen[:nseen] {
			if s == ch {
				return true
			}
		}
		return false
	}

	for i, ch := range guess {
		switch p[i] {
		case Exact:
			c.minCount[ch]++
			for letter := range c.size {
				c.cells[letter*word.Length+i] = CellForbidden
			}
			c.cells[int(ch)*word.Length+i] = CellExact
		case Present:
			c.minCount[ch]++
			c.forbid(ch, i)
			c.partial.Set(uint(ch))
		default:
			if wasSeen(ch) {
				c.forbid(ch, i)
			} else {
				for pos := range word.Length {
					c.forbid(ch, pos)
				}
			}
			continue
		}
		seen[nseen] = ch
		nseen++
	}

	return c
}

// forbid never overwrites an exact mark.
func (c *Constraint) forbid(letter uint16, pos int) {
	cell := &c.cells[int(letter)*word.Length+pos]
	if *cell != CellExact {
		*cell = CellForbidden
	}
}

// Matches reports whether candidate is consistent with the feedback.
// Every letter must be allowed where it stands, and every partially
// placed letter must appear at least as often as the feedback requires.
func (c *Constraint) Matches(candidate word.Token) bool {
	for i, ch := range candidate {
		if c.cells[int(ch)*word.Length+i] == CellForbidden {
			return false
		}
	}

	for l, ok := c.partial.NextSet(0); ok; l, ok = c.partial.NextSet(l + 1) {
		n := uint8(0)
		for _, ch := range candidate {
			if uint(ch) == l {
				n++
			}
		}
		if n < c.minCount[l] {
			return false
		}
	}
	return true
}

func (c *Constraint) Cell(letter uint16, pos int) Cell {
	return c.cells[int(letter)*word.Length+pos]
}

func (c *Constraint) MinCount(letter uint16) int { return int(c.minCount[letter]) }

func (c *Constraint) Partial(letter uint16) bool { return c.partial.Test(uint(letter)) }
