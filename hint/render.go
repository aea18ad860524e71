package hint

import (
	"strings"

	"github.com/mitchellh/colorstring"
)

var tileColors = [...]string{
	Absent:  "[_dark_gray_][white]",
	Present: "[_yellow_][black]",
	Exact:   "[_green_][black]",
}

// ColoredWord displays a word with colored backgrounds based on the
// pattern. With colorize off it falls back to plain spaced letters.
func ColoredWord(symbols []string, p Pattern, colorize bool) string {
	var b strings.Builder
	for i, s := range symbols {
		if i < len(p) {
			b.WriteString(tileColors[p[i]])
		}
		b.WriteString(" ")
		b.WriteString(strings.ToUpper(s))
		b.WriteString(" [reset]")
	}

	c := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !colorize,
		Reset:   true,
	}
	return c.Color(b.String())
}
