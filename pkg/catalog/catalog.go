// Package catalog holds the static menu options offered by valk.
//
// Every option is a (label, key) pair. Labels are what the user sees in the
// interactive list; keys are what selections resolve to. The tables are
// fixed at compile time and never mutated; accessors hand out copies.
package catalog

import (
	"github.com/arthur-debert/valk/pkg/errors"
)

// Option is a single entry in an interactive choice list.
type Option struct {
	Label string
	Key   string
}

// Command is a top-level menu choice.
type Command string

const (
	CommandKeybindings Command = "keybindings"
	CommandConfigFile  Command = "configFile"
)

// Category identifies one keybinding reference card.
type Category string

const (
	CategoryCode     Category = "code"
	CategoryTerminal Category = "terminal"
	CategoryFile     Category = "file"
	CategoryView     Category = "view"
	CategoryMisc     Category = "misc"
)

// ConfigFile identifies one file valk knows how to generate.
type ConfigFile string

const (
	ConfigGitignoreJS  ConfigFile = "gitignoreJs"
	ConfigFormatOnSave ConfigFile = "formatOnSave"
)

var commandOpts = []Option{
	{Label: "VS Code key bindings", Key: string(CommandKeybindings)},
	{Label: "Create config files (e.g. .gitignore, .vscode/settings.json)", Key: string(CommandConfigFile)},
}

var keybindingOpts = []Option{
	{Label: "Coding", Key: string(CategoryCode)},
	{Label: "Terminal management", Key: string(CategoryTerminal)},
	{Label: "File management", Key: string(CategoryFile)},
	{Label: "Appearance", Key: string(CategoryView)},
	{Label: "Other keybindings", Key: string(CategoryMisc)},
}

var configFileOpts = []Option{
	{Label: ".gitignore for JavaScript", Key: string(ConfigGitignoreJS)},
	{Label: "Format on save with ESLint", Key: string(ConfigFormatOnSave)},
}

// aliases accepted on the command line in addition to the menu keys
var configFileAliases = map[string]ConfigFile{
	"gitignore-js":   ConfigGitignoreJS,
	"format-on-save": ConfigFormatOnSave,
}

// CommandOptions returns the top-level menu.
func CommandOptions() []Option { return clone(commandOpts) }

// KeybindingOptions returns the keybinding categories in menu order.
func KeybindingOptions() []Option { return clone(keybindingOpts) }

// ConfigFileOptions returns the generated-file choices in menu order.
func ConfigFileOptions() []Option { return clone(configFileOpts) }

// Categories returns every category key in menu order.
func Categories() []Category {
	out := make([]Category, 0, len(keybindingOpts))
	for _, o := range keybindingOpts {
		out = append(out, Category(o.Key))
	}
	return out
}

// Label returns the display label of a category, or its key when unknown.
func (c Category) Label() string {
	if o, ok := find(keybindingOpts, string(c)); ok {
		return o.Label
	}
	return string(c)
}

// Label returns the display label of a config file, or its key when unknown.
func (f ConfigFile) Label() string {
	if o, ok := find(configFileOpts, string(f)); ok {
		return o.Label
	}
	return string(f)
}

// ParseCommand resolves a top-level menu key.
func ParseCommand(key string) (Command, error) {
	if _, ok := find(commandOpts, key); !ok {
		return "", errors.Newf(errors.ErrInvalidSelection, "unknown command %q", key).
			WithDetail("key", key)
	}
	return Command(key), nil
}

// ParseCategory resolves a keybinding category key.
func ParseCategory(key string) (Category, error) {
	if _, ok := find(keybindingOpts, key); !ok {
		return "", errors.Newf(errors.ErrInvalidSelection, "unknown keybinding category %q", key).
			WithDetail("key", key)
	}
	return Category(key), nil
}

// ParseConfigFile resolves a config file key or one of its CLI aliases.
func ParseConfigFile(key string) (ConfigFile, error) {
	if f, ok := configFileAliases[key]; ok {
		return f, nil
	}
	if _, ok := find(configFileOpts, key); !ok {
		return "", errors.Newf(errors.ErrInvalidSelection, "unknown config file %q", key).
			WithDetail("key", key)
	}
	return ConfigFile(key), nil
}

func find(opts []Option, key string) (Option, bool) {
	for _, o := range opts {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

func clone(opts []Option) []Option {
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}
