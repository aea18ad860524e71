package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-entropy/word"
)

func mustVocab(t *testing.T, words ...string) *word.Vocabulary {
	t.Helper()
	v, err := word.FromWords(words, words)
	require.NoError(t, err)
	return v
}

func tok(t *testing.T, v *word.Vocabulary, w string) word.Token {
	t.Helper()
	tk, err := v.Alphabet.Token(w)
	require.NoError(t, err)
	return tk
}

func TestCodeEncoding(t *testing.T) {
	assert.Equal(t, Code(0), Pattern{}.Code())
	assert.Equal(t, Code(242), AllExact().Code())
	assert.Equal(t, Code(1), Pattern{Present}.Code())
	assert.Equal(t, Code(162), Pattern{0, 0, 0, 0, Exact}.Code())

	for c := range NumCodes {
		assert.Equal(t, Code(c), FromCode(Code(c)).Code())
	}
}

func TestParse(t *testing.T) {
	p, err := Parse(" xYg-O ")
	require.NoError(t, err)
	assert.Equal(t, Pattern{Absent, Present, Exact, Absent, Exact}, p)
	assert.Equal(t, "xygxg", p.Letters())
	assert.Equal(t, "⬜🟨🟩⬜🟩", p.String())

	_, err = Parse("xyg")
	assert.ErrorIs(t, err, ErrInvalidPattern)
	_, err = Parse("xygxz")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestScoreTwoPass(t *testing.T) {
	v := mustVocab(t, "crane", "trace", "speed", "deeds", "abide", "lolly", "hello")
	n := v.Alphabet.Size()

	tests := []struct {
		guess, solution string
		want            string
	}{
		{"crane", "trace", "yggxg"},
		{"speed", "deeds", "yxgyy"},
		{"deeds", "speed", "yygxy"},
		// the second E finds no copy left
		{"speed", "abide", "xxyxy"},
		// exact Ls use up both copies before the first L is looked at
		{"lolly", "hello", "xyggx"},
		{"hello", "lolly", "xxggy"},
	}
	for _, tt := range tests {
		got := Compute(tok(t, v, tt.guess), tok(t, v, tt.solution), n)
		assert.Equal(t, tt.want, got.Letters(), "%s vs %s", tt.guess, tt.solution)
	}
}

func TestScoreAsymmetric(t *testing.T) {
	v := mustVocab(t, "speed", "deeds")
	n := v.Alphabet.Size()
	speed, deeds := tok(t, v, "speed"), tok(t, v, "deeds")

	assert.NotEqual(t, Compute(speed, deeds, n), Compute(deeds, speed, n))
}

func TestScoreIdentity(t *testing.T) {
	v := mustVocab(t, "crane", "eerie", "llama", "sheep", "mamma")
	s := NewScorer(v.Alphabet.Size())
	for _, w := range v.Guesses {
		assert.True(t, s.Score(w, w).Solved())
	}
}

func TestScorerReuse(t *testing.T) {
	v := mustVocab(t, "geese", "eerie", "crane")
	s := NewScorer(v.Alphabet.Size())
	geese, eerie, crane := tok(t, v, "geese"), tok(t, v, "eerie"), tok(t, v, "crane")

	first := s.Score(geese, eerie)
	s.Score(crane, geese)
	assert.Equal(t, first, s.Score(geese, eerie))
}

var roundTripWords = []string{
	"speed", "deeds", "eerie", "abide", "llama", "hello", "lolly",
	"trace", "crane", "geese", "sheep", "steel", "mamma", "abbey", "kebab",
}

func TestConstraintRoundTrip(t *testing.T) {
	v := mustVocab(t, roundTripWords...)
	n := v.Alphabet.Size()
	s := NewScorer(n)

	for _, g := range v.Guesses {
		for _, sol := range v.Guesses {
			c := NewConstraint(g, s.Score(g, sol), n)
			assert.True(t, c.Matches(sol), "%s vs %s",
				g.Format(v.Alphabet), sol.Format(v.Alphabet))
		}
	}
}

func TestConstraintRejectsWrongGuess(t *testing.T) {
	v := mustVocab(t, roundTripWords...)
	n := v.Alphabet.Size()
	s := NewScorer(n)

	for _, g := range v.Guesses {
		for _, sol := range v.Guesses {
			if g == sol {
				continue
			}
			c := NewConstraint(g, s.Score(g, sol), n)
			assert.False(t, c.Matches(g))
		}
	}
}

func TestConstraintGrayAfterYellow(t *testing.T) {
	v, err := word.FromWords([]string{"bxbyz", "ebcda", "acdea"}, []string{"abcde"})
	require.NoError(t, err)
	a, n := v.Alphabet, v.Alphabet.Size()
	guess, sol := tok(t, v, "bxbyz"), tok(t, v, "abcde")

	p := Compute(guess, sol, n)
	require.Equal(t, "yxxxx", p.Letters())

	c := NewConstraint(guess, p, n)
	b, _ := a.Index("b")
	assert.Equal(t, CellForbidden, c.Cell(b, 0))
	assert.Equal(t, CellForbidden, c.Cell(b, 2))
	for _, pos := range []int{1, 3, 4} {
		assert.Equal(t, CellUnknown, c.Cell(b, pos), "b is still allowed at %d", pos)
	}
	assert.Equal(t, 1, c.MinCount(b))
	assert.True(t, c.Partial(b))

	x, _ := a.Index("x")
	for pos := range word.Length {
		assert.Equal(t, CellForbidden, c.Cell(x, pos))
	}

	assert.True(t, c.Matches(sol))
	assert.True(t, c.Matches(tok(t, v, "ebcda")))
	assert.False(t, c.Matches(tok(t, v, "acdea")), "b must appear at least once")
}

func TestConstraintGrayBeforeGreen(t *testing.T) {
	v, err := word.FromWords([]string{"bbxyz", "cbdea", "bcdea"}, []string{"abcde"})
	require.NoError(t, err)
	a, n := v.Alphabet, v.Alphabet.Size()
	guess, sol := tok(t, v, "bbxyz"), tok(t, v, "abcde")

	p := Compute(guess, sol, n)
	require.Equal(t, "xgxxx", p.Letters())

	c := NewConstraint(guess, p, n)
	b, _ := a.Index("b")
	assert.Equal(t, CellExact, c.Cell(b, 1))
	assert.Equal(t, CellForbidden, c.Cell(b, 0))
	assert.False(t, c.Partial(b))

	assert.True(t, c.Matches(sol))
	assert.True(t, c.Matches(tok(t, v, "cbdea")))
	assert.False(t, c.Matches(tok(t, v, "bcdea")))
}

func TestConstraintExactColumn(t *testing.T) {
	v := mustVocab(t, "crane", "trace", "brace")
	n := v.Alphabet.Size()
	c := NewConstraint(tok(t, v, "trace"), Pattern{Absent, Exact, Exact, Exact, Exact}, n)

	r, _ := v.Alphabet.Index("r")
	assert.Equal(t, CellExact, c.Cell(r, 1))
	for letter := range uint16(n) {
		if letter != r {
			assert.Equal(t, CellForbidden, c.Cell(letter, 1))
		}
	}
	assert.True(t, c.Matches(tok(t, v, "brace")))
	assert.False(t, c.Matches(tok(t, v, "crane")))
}

func TestConstraintMultiplicity(t *testing.T) {
	v := mustVocab(t, "speed", "stoke", "serve")
	n := v.Alphabet.Size()
	// both Es present-elsewhere: candidates need two Es
	c := NewConstraint(tok(t, v, "speed"), Pattern{Exact, Absent, Present, Present, Absent}, n)

	e, _ := v.Alphabet.Index("e")
	assert.Equal(t, 2, c.MinCount(e))
	assert.False(t, c.Matches(tok(t, v, "stoke")))
	assert.True(t, c.Matches(tok(t, v, "serve")))
}

func TestColoredWordPlain(t *testing.T) {
	p := Pattern{Exact, Absent, Present, Absent, Exact}
	got := ColoredWord([]string{"c", "r", "a", "n", "e"}, p, false)
	assert.Equal(t, " C  R  A  N  E ", got)

	colored := ColoredWord([]string{"c", "r", "a", "n", "e"}, p, true)
	assert.Contains(t, colored, "\033[42m")
	assert.Contains(t, colored, "\033[43m")
}
