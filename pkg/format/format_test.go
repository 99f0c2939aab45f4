package format

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePlain(t *testing.T) {
	f := New(PlainPalette())

	tests := []struct {
		name        string
		chord       string
		description string
		want        string
	}{
		{
			name:        "short chord",
			chord:       "ctrl + w",
			description: "close file",
			want:        "ctrl + w" + strings.Repeat(" ·", 10) + " " + " " + "close file",
		},
		{
			name:        "single key",
			chord:       "F2",
			description: "rename symbol",
			want:        "F2" + strings.Repeat(" ·", 13) + " " + " " + "rename symbol",
		},
		{
			name:        "chord of 28 leaves one space of fill",
			chord:       strings.Repeat("x", 28),
			description: "d",
			want:        strings.Repeat("x", 28) + " " + " d",
		},
		{
			name:        "chord of 29 has no fill",
			chord:       strings.Repeat("x", 29),
			description: "d",
			want:        strings.Repeat("x", 29) + " d",
		},
		{
			name:        "chord of 30 has no fill",
			chord:       strings.Repeat("x", 30),
			description: "d",
			want:        strings.Repeat("x", 30) + " d",
		},
		{
			name:        "chord longer than the column",
			chord:       "ctrl + shift + alt + meta + super + hyper",
			description: "everything",
			want:        "ctrl + shift + alt + meta + super + hyper everything",
		},
		{
			name:        "long description is not wrapped",
			chord:       "ctrl + g",
			description: strings.Repeat("go to line ", 20),
			want:        "ctrl + g" + strings.Repeat(" ·", 10) + " " + " " + strings.Repeat("go to line ", 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Line(tt.chord, tt.description))
		})
	}
}

func TestFillWidthAndAlternation(t *testing.T) {
	f := New(PlainPalette())

	for n := 0; n < ColumnWidth; n++ {
		chord := strings.Repeat("k", n)
		line := f.Line(chord, "desc")

		require.True(t, strings.HasSuffix(line, " desc"), "n=%d", n)
		column := strings.TrimSuffix(line, "desc")
		assert.Equal(t, ColumnWidth, utf8.RuneCountInString(column), "n=%d", n)

		fill := []rune(strings.TrimPrefix(column, chord))
		fill = fill[:len(fill)-1] // trailing separator
		assert.Len(t, fill, max(0, ColumnWidth-1-n), "n=%d", n)
		for i, r := range fill {
			if i%2 == 0 {
				assert.Equal(t, ' ', r, "n=%d pos=%d", n, i)
			} else {
				assert.Equal(t, '·', r, "n=%d pos=%d", n, i)
			}
		}
	}
}

func TestLongChordGetsNoFiller(t *testing.T) {
	f := New(PlainPalette())

	for n := ColumnWidth; n < ColumnWidth+5; n++ {
		chord := strings.Repeat("k", n)
		assert.Equal(t, chord+" desc", f.Line(chord, "desc"))
		assert.NotContains(t, f.Line(chord, "desc"), FillerChar)
	}
}

func TestTokenStyling(t *testing.T) {
	f := New(Palette{
		Key:    func(s string) string { return "<k>" + s + "</k>" },
		Symbol: func(s string) string { return "<s>" + s + "</s>" },
		Filler: func(s string) string { return "<f>" + s + "</f>" },
	})

	line := f.Line("ctrl + k - t", "x")

	assert.True(t, strings.HasPrefix(line, "<k>ctrl</k> <s>+</s> <k>k</k> <s>-</s> <k>t</k>"), line)
	assert.Contains(t, line, " <f>·</f> ")
	assert.True(t, strings.HasSuffix(line, " x"))
}

func TestLineIsDeterministic(t *testing.T) {
	assert.Equal(t, Line("ctrl + s", "save file"), Line("ctrl + s", "save file"))
}
