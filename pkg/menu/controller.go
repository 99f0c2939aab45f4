// Package menu drives valk's interactive menu: it asks the dependent
// questions, turns the answers into a Selection and dispatches it.
package menu

import (
	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/arthur-debert/valk/pkg/output"
	"github.com/arthur-debert/valk/pkg/prompt"
)

// Controller runs the prompt sequence
type Controller struct {
	prompter prompt.Prompter
	sink     output.Sink
}

// NewController creates a Controller
func NewController(p prompt.Prompter, sink output.Sink) *Controller {
	return &Controller{prompter: p, sink: sink}
}

// Ask shows the top-level menu, then exactly one follow-up menu depending
// on the answer. Answers outside the catalog yield ErrInvalidSelection.
func (c *Controller) Ask() (Selection, error) {
	logger := logging.GetLogger("menu")

	key, err := c.prompter.Select(MsgChooseCommand, catalog.CommandOptions())
	if err != nil {
		return nil, err
	}
	command, err := catalog.ParseCommand(key)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("command", string(command)).Msg("Command chosen")

	switch command {
	case catalog.CommandKeybindings:
		key, err := c.prompter.Select(MsgChooseKeybindings, catalog.KeybindingOptions())
		if err != nil {
			return nil, err
		}
		category, err := catalog.ParseCategory(key)
		if err != nil {
			return nil, err
		}
		return KeybindingSelection{Category: category}, nil

	case catalog.CommandConfigFile:
		key, err := c.prompter.Select(MsgChooseConfigFile, catalog.ConfigFileOptions())
		if err != nil {
			return nil, err
		}
		file, err := catalog.ParseConfigFile(key)
		if err != nil {
			return nil, err
		}
		return ConfigFileSelection{File: file}, nil
	}

	return nil, errors.Newf(errors.ErrInvalidSelection, "unhandled command %q", command)
}

// Run asks and dispatches the selection to h. An invalid selection prints a
// notice and is not an error.
func (c *Controller) Run(h Handler) error {
	selection, err := c.Ask()
	if err == nil {
		err = selection.Accept(h)
	}
	return c.Settle(err)
}

// Dispatch sends an already known selection to h
func (c *Controller) Dispatch(selection Selection, h Handler) error {
	return c.Settle(selection.Accept(h))
}

// Settle turns ErrInvalidSelection into the "Invalid selection" notice and
// passes every other error through.
func (c *Controller) Settle(err error) error {
	if errors.IsErrorCode(err, errors.ErrInvalidSelection) {
		logger := logging.GetLogger("menu")
		logger.Warn().Err(err).Msg("Invalid selection")
		c.sink.Error(MsgInvalidSelection)
		return nil
	}
	return err
}
