package source

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the display width assigned to a tab character.
const TabWidth = 8

// DisplayWidth returns the number of terminal columns the string
// occupies. Tabs count as TabWidth columns; everything else uses its
// East-Asian-aware rune width.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += TabWidth
		} else {
			w += runewidth.RuneWidth(r)
		}
	}
	return w
}

// Indentation returns the leading whitespace prefix of the line.
func Indentation(line string) string {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return line[:i]
		}
	}
	return line
}

// IndentWidth returns the display width of the line's indentation.
func IndentWidth(line string) int {
	return DisplayWidth(Indentation(line))
}
