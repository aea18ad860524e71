package word

import "strings"

// Length is the number of symbols in every word.
const Length = 5

// Token is a word encoded as indices into a session Alphabet.
type Token [Length]uint16

// Compare orders tokens lexicographically by symbol index.
func (t Token) Compare(o Token) int {
	for i := range Length {
		if t[i] != o[i] {
			if t[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (t Token) Less(o Token) bool { return t.Compare(o) < 0 }

// Symbols returns the token's symbols in slot order.
func (t Token) Symbols(a *Alphabet) []string {
	out := make([]string, Length)
	for i, idx := range t {
		out[i] = a.Symbol(idx)
	}
	return out
}

// Format renders the token upper-cased.
func (t Token) Format(a *Alphabet) string {
	var b strings.Builder
	for _, idx := range t {
		b.WriteString(strings.ToUpper(a.Symbol(idx)))
	}
	return b.String()
}
