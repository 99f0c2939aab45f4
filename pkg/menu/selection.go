package menu

import (
	"github.com/arthur-debert/valk/pkg/catalog"
)

// Handler performs the action behind each kind of selection. Adding a
// Selection variant means adding a method here, so every Handler has to
// deal with it before the program compiles.
type Handler interface {
	ShowKeybindings(c catalog.Category) error
	WriteConfigFile(f catalog.ConfigFile) error
}

// Selection is the outcome of the prompt sequence
type Selection interface {
	Accept(h Handler) error
	sealed()
}

// KeybindingSelection asks for one keybinding reference card
type KeybindingSelection struct {
	Category catalog.Category
}

func (s KeybindingSelection) Accept(h Handler) error { return h.ShowKeybindings(s.Category) }
func (KeybindingSelection) sealed() {}

// ConfigFileSelection asks for one generated file
type ConfigFileSelection struct {
	File catalog.ConfigFile
}

func (s ConfigFileSelection) Accept(h Handler) error { return h.WriteConfigFile(s.File) }
func (ConfigFileSelection) sealed() {}
