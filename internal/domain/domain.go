// Package domain defines the shared model types used across signdeck:
// WordList, the color palette, and the error kinds raised by the list store
// and the practice engine.
package domain

import (
	"strings"
	"time"
)

// Color is a cosmetic tag attached to a word list.
type Color string

// Palette colors. A list always carries one of these.
const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
	ColorIndigo Color = "indigo"
	ColorTeal   Color = "teal"
	ColorRed    Color = "red"
)

// Palette is the fixed set of colors in display order.
var Palette = []Color{
	ColorBlue,
	ColorGreen,
	ColorPurple,
	ColorOrange,
	ColorPink,
	ColorIndigo,
	ColorTeal,
	ColorRed,
}

// Valid reports whether c is one of the palette colors.
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

var hexByColor = map[Color]string{
	ColorBlue:   "#3b82f6",
	ColorGreen:  "#22c55e",
	ColorPurple: "#a855f7",
	ColorOrange: "#f97316",
	ColorPink:   "#ec4899",
	ColorIndigo: "#6366f1",
	ColorTeal:   "#14b8a6",
	ColorRed:    "#ef4444",
}

// Hex returns the display color as #rrggbb. Unknown colors render gray.
func (c Color) Hex() string {
	if h, ok := hexByColor[c]; ok {
		return h
	}
	return "#6b7280"
}

// WordList is a named, ordered collection of practice terms.
type WordList struct {
	// ID is unique among all lists and never changes.
	ID string
	// Name is the non-empty display name.
	Name string
	// Words are the practiced items in order. Never empty.
	Words []string
	// Color is the palette tag chosen at creation.
	Color Color
	// CreatedAt is captured at creation and used only for display.
	CreatedAt time.Time
}

// Len returns the number of words in the list.
func (l WordList) Len() int {
	return len(l.Words)
}

// WordAt returns the word at index i and whether i is in range.
func (l WordList) WordAt(i int) (string, bool) {
	if i < 0 || i >= len(l.Words) {
		return "", false
	}
	return l.Words[i], true
}

// Preview returns up to n leading words and the number of words left out.
func (l WordList) Preview(n int) ([]string, int) {
	if n <= 0 {
		return nil, len(l.Words)
	}
	if len(l.Words) <= n {
		return l.Words, 0
	}
	return l.Words[:n], len(l.Words) - n
}

// Clone returns a copy that does not share the Words slice.
func (l WordList) Clone() WordList {
	c := l
	c.Words = append([]string(nil), l.Words...)
	return c
}

// ParseWords splits raw text into lines, trims each line and drops the
// empty ones. Order is preserved.
func ParseWords(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}
