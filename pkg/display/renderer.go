// Package display prints the keybinding reference cards.
package display

import (
	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/format"
	"github.com/arthur-debert/valk/pkg/keybindings"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/arthur-debert/valk/pkg/output"
)

// Renderer writes formatted keybinding lines to a sink, one per entry.
type Renderer struct {
	sink      output.Sink
	formatter *format.Formatter
}

// NewRenderer creates a Renderer.
func NewRenderer(sink output.Sink, formatter *format.Formatter) *Renderer {
	return &Renderer{sink: sink, formatter: formatter}
}

// Render prints every entry of c in declaration order.
func (r *Renderer) Render(c catalog.Category) error {
	logger := logging.GetLogger("display.Renderer")

	entries, ok := keybindings.For(c)
	if !ok {
		return errors.Newf(errors.ErrInvalidSelection, "no keybindings for category %q", c).
			WithDetail("category", string(c))
	}

	logger.Debug().Str("category", string(c)).Int("entries", len(entries)).Msg("Rendering keybindings")
	for _, e := range entries {
		r.sink.Line(r.formatter.Line(e.Chord, e.Description))
	}
	return nil
}

// RenderAll prints every category under its label, separated by blank lines.
func (r *Renderer) RenderAll() error {
	for i, c := range catalog.Categories() {
		if i > 0 {
			r.sink.Line("")
		}
		r.sink.Header(c.Label())
		if err := r.Render(c); err != nil {
			return err
		}
	}
	return nil
}
