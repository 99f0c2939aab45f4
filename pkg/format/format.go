// Package format renders a keybinding chord and its description as one
// aligned, colorized line.
//
// The chord is split on single spaces. Modifier and key tokens get the
// accent style, the joiners "+" and "-" get the secondary accent. After the
// chord comes a dotted leader that pads the chord column to ColumnWidth,
// then a space and the description, untouched.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/valk/pkg/ui/styles"
)

const (
	// ColumnWidth is the width of the chord column, separator included.
	ColumnWidth = 30
	// FillerChar is the leader dot (U+00B7).
	FillerChar = "·"
)

// Palette styles the three kinds of fragment in a line.
type Palette struct {
	Key    func(string) string
	Symbol func(string) string
	Filler func(string) string
}

// StyledPalette renders through the registered lipgloss styles.
func StyledPalette() Palette {
	return Palette{
		Key:    func(s string) string { return styles.Render(styles.Accent, s) },
		Symbol: func(s string) string { return styles.Render(styles.SecondaryAccent, s) },
		Filler: func(s string) string { return styles.Render(styles.Filler, s) },
	}
}

// PlainPalette leaves every fragment as is.
func PlainPalette() Palette {
	identity := func(s string) string { return s }
	return Palette{Key: identity, Symbol: identity, Filler: identity}
}

// Formatter renders keybinding lines with a fixed palette.
type Formatter struct {
	palette Palette
}

// New returns a Formatter using p.
func New(p Palette) *Formatter {
	return &Formatter{palette: p}
}

// Line renders chord and description as a single display line.
func (f *Formatter) Line(chord, description string) string {
	var b strings.Builder

	for i, token := range strings.Split(chord, " ") {
		if i > 0 {
			b.WriteByte(' ')
		}
		if token == "+" || token == "-" {
			b.WriteString(f.palette.Symbol(token))
		} else {
			b.WriteString(f.palette.Key(token))
		}
	}

	padding := ColumnWidth - utf8.RuneCountInString(chord)
	for i := 1; i < padding; i++ {
		if i%2 == 0 {
			b.WriteString(f.palette.Filler(FillerChar))
		} else {
			b.WriteByte(' ')
		}
	}

	b.WriteByte(' ')
	b.WriteString(description)
	return b.String()
}

// Line renders with the styled palette.
func Line(chord, description string) string {
	return New(StyledPalette()).Line(chord, description)
}
