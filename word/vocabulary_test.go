package word

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetFirstSeenOrder(t *testing.T) {
	a := NewAlphabet()
	require.NoError(t, a.Add("crane"))
	require.NoError(t, a.Add("react"))

	assert.Equal(t, 6, a.Size())
	idx, err := a.Index("t")
	require.NoError(t, err)
	assert.Equal(t, uint16(5), idx)
	assert.Equal(t, "c", a.Symbol(0))
	assert.Equal(t, "?", a.Symbol(99))
}

func TestAlphabetRejectsMalformed(t *testing.T) {
	a := NewAlphabet()
	assert.ErrorIs(t, a.Add("cranes"), ErrMalformedToken)
	assert.ErrorIs(t, a.Add("cran"), ErrMalformedToken)
	assert.Zero(t, a.Size())
}

func TestAlphabetUnknownCharacter(t *testing.T) {
	a := NewAlphabet()
	require.NoError(t, a.Add("crane"))

	_, err := a.Token("crate")
	assert.ErrorIs(t, err, ErrUnknownCharacter)

	tok, err := a.Token("  NACRE ")
	require.NoError(t, err)
	assert.Equal(t, "NACRE", tok.Format(a))
}

func TestAlphabetGraphemes(t *testing.T) {
	a := NewAlphabet()
	require.NoError(t, a.Add("ñandú"))

	tok, err := a.Token("ÑANDÚ")
	require.NoError(t, err)
	assert.Equal(t, []string{"ñ", "a", "n", "d", "ú"}, tok.Symbols(a))
	assert.Equal(t, 5, a.Size())
}

func TestTokenCompare(t *testing.T) {
	x := Token{0, 1, 2, 3, 4}
	y := Token{0, 1, 2, 4, 0}

	assert.Equal(t, -1, x.Compare(y))
	assert.Equal(t, 1, y.Compare(x))
	assert.Zero(t, x.Compare(x))
	assert.True(t, x.Less(y))
}

func TestFromWords(t *testing.T) {
	v, err := FromWords(
		[]string{"slate", "crane", "audio"},
		[]string{"trace", "crane"},
	)
	require.NoError(t, err)

	assert.Len(t, v.Guesses, 4, "solutions are merged into guesses without duplicates")
	assert.Len(t, v.Solutions, 2)
	for i := 1; i < len(v.Guesses); i++ {
		assert.True(t, v.Guesses[i-1].Less(v.Guesses[i]))
	}

	assert.Equal(t, "TRACE", v.Solutions[0].Format(v.Alphabet))
	assert.Equal(t, "CRANE", v.Solutions[1].Format(v.Alphabet))

	tr, err := v.Alphabet.Token("trace")
	require.NoError(t, err)
	assert.True(t, v.Contains(tr))
	zz, err := v.Alphabet.Token("ccccc")
	require.NoError(t, err)
	assert.False(t, v.Contains(zz))
}

func TestFromWordsErrors(t *testing.T) {
	_, err := FromWords([]string{"crane"}, nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = FromWords([]string{"crane", "toolong"}, []string{"crane"})
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestFingerprint(t *testing.T) {
	a, err := FromWords([]string{"slate"}, []string{"crane", "trace"})
	require.NoError(t, err)
	b, err := FromWords([]string{"slate"}, []string{"crane", "trace"})
	require.NoError(t, err)
	c, err := FromWords([]string{"slate"}, []string{"trace", "crane"})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 32)
}

func writeList(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeList(t, filepath.Join(dir, "en", "valid.txt"), "SLATE\naudio\n\n")
	writeList(t, filepath.Join(dir, "en", "solutions.txt"), "crane\nTrace\n")

	v, err := Load(dir, "EN")
	require.NoError(t, err)
	assert.Len(t, v.Guesses, 4)
	assert.Len(t, v.Solutions, 2)
	assert.Equal(t, "TRACE", v.Solutions[1].Format(v.Alphabet))
}

func TestLoadMalformedLine(t *testing.T) {
	dir := t.TempDir()
	writeList(t, filepath.Join(dir, "en", "valid.txt"), "slate\nslated\n")
	writeList(t, filepath.Join(dir, "en", "solutions.txt"), "crane\n")

	_, err := Load(dir, "en")
	require.ErrorIs(t, err, ErrMalformedToken)
	assert.Contains(t, err.Error(), "valid.txt:2")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "xx")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBundledLists(t *testing.T) {
	v, err := Load(filepath.Join("..", "data"), "en")
	require.NoError(t, err)
	assert.NotEmpty(t, v.Solutions)
	assert.Equal(t, 26, v.Alphabet.Size())
	for _, s := range v.Solutions {
		assert.True(t, v.Contains(s), s.Format(v.Alphabet))
	}
}
