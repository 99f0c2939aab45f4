package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/valk/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	require.NoError(t, styles.LoadStyles("styles.yaml"))

	expectedStyles := []string{
		styles.Accent, styles.SecondaryAccent, styles.Filler, styles.Header,
		styles.Success, styles.Progress, styles.Warning, styles.Error,
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := styles.StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestAdaptiveColors(t *testing.T) {
	require.NoError(t, styles.LoadStyles("styles.yaml"))

	accent := styles.GetStyle(styles.Accent)
	fg, ok := accent.GetForeground().(lipgloss.AdaptiveColor)
	require.True(t, ok, "accent foreground should be adaptive")
	assert.Equal(t, "#008700", fg.Light)
	assert.Equal(t, "#5FD75F", fg.Dark)

	assert.True(t, styles.GetStyle(styles.Error).GetBold())
}

func TestGetStyleUnknownName(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromCustomFile(t *testing.T) {
	t.Cleanup(func() { _ = styles.LoadStyles("styles.yaml") })

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte(`
colors:
  pink:
    light: "#FF00FF"
    dark: "#FF87FF"
styles:
  Accent:
    foreground: pink
    italic: true
`), 0644))

	require.NoError(t, styles.LoadStyles(custom))
	assert.True(t, styles.GetStyle(styles.Accent).GetItalic())
	_, exists := styles.StyleRegistry[styles.Success]
	assert.False(t, exists, "custom file replaces the whole registry")
}

func TestLoadStylesErrors(t *testing.T) {
	t.Cleanup(func() { _ = styles.LoadStyles("styles.yaml") })

	err := styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	err = styles.LoadStylesFromData([]byte("colors: [unclosed"))
	assert.Error(t, err)
}

func TestColorDisabledByEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, styles.ColorDisabledByEnv())
}
