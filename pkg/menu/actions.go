package menu

import (
	"context"

	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/display"
	"github.com/arthur-debert/valk/pkg/scaffold"
)

// Actions is the Handler that prints reference cards and writes files
type Actions struct {
	ctx      context.Context
	renderer *display.Renderer
	writer   *scaffold.Writer
}

// NewActions creates the production Handler
func NewActions(ctx context.Context, renderer *display.Renderer, writer *scaffold.Writer) *Actions {
	return &Actions{ctx: ctx, renderer: renderer, writer: writer}
}

func (a *Actions) ShowKeybindings(c catalog.Category) error {
	return a.renderer.Render(c)
}

func (a *Actions) WriteConfigFile(f catalog.ConfigFile) error {
	return a.writer.Write(a.ctx, f)
}
