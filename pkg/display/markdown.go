package display

import (
	"strings"

	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/keybindings"
	"github.com/charmbracelet/glamour"
)

// Markdown returns the keybindings of c as a markdown table.
func Markdown(c catalog.Category) (string, error) {
	entries, ok := keybindings.For(c)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidSelection, "no keybindings for category %q", c)
	}

	var b strings.Builder
	b.WriteString("## " + c.Label() + "\n\n")
	b.WriteString("| Keys | Action |\n")
	b.WriteString("| --- | --- |\n")
	for _, e := range entries {
		b.WriteString("| " + escapeCell(e.Chord) + " | " + escapeCell(e.Description) + " |\n")
	}
	return b.String(), nil
}

func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "`", "\\`").Replace(s)
}

// MarkdownRenderer uses glamour to render markdown for the terminal
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a custom style
	Width int    // word wrap, 0 keeps glamour's default
}

// NewMarkdownRenderer creates a markdown renderer with style auto-detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to terminal output
func (r *MarkdownRenderer) Render(content string) (string, error) {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to create markdown renderer")
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render markdown")
	}
	return rendered, nil
}
