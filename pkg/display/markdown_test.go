package display

import (
	"testing"

	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	md, err := Markdown(catalog.CategoryView)
	require.NoError(t, err)

	assert.Equal(t, "## Appearance\n\n"+
		"| Keys | Action |\n"+
		"| --- | --- |\n"+
		"| ctrl + k + t | change theme |\n"+
		"| ctrl + k z | toggle Zen mode |\n", md)
}

func TestMarkdownEscapesBackticks(t *testing.T) {
	md, err := Markdown(catalog.CategoryTerminal)
	require.NoError(t, err)
	assert.Contains(t, md, "| ctrl + \\` | open/close the integrated terminal |")
}

func TestMarkdownUnknownCategory(t *testing.T) {
	_, err := Markdown(catalog.Category("debug"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSelection))
}

func TestMarkdownRenderer(t *testing.T) {
	md, err := Markdown(catalog.CategoryFile)
	require.NoError(t, err)

	r := &MarkdownRenderer{Style: "notty", Width: 120}
	rendered, err := r.Render(md)
	require.NoError(t, err)

	assert.Contains(t, rendered, "File management")
	assert.Contains(t, rendered, "close file")
}
