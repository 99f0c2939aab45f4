// Package keybindings is the VS Code keybinding reference data shown by valk.
package keybindings

import "github.com/arthur-debert/valk/pkg/catalog"

// Entry is one keybinding line: a chord and what it does.
type Entry struct {
	Chord       string
	Description string
}

var code = []Entry{
	{"ctrl + /", "toggle line comment"},
	{"ctrl + (shift) + enter", "insert a new line (up) down the current line"},
	{"shift + alt + up/down", "copy line(s) up/down (i.e. select multiple lines to copy multiple lines)"},
	{"alt + up/down", "move line(s) up/down"},
	{"ctrl + g", "go to line"},
	{"ctrl + shift + space", "show parameter hints"},
	{"ctrl + shift + o", "go to symbol (i.e. go to a variable, a function, etc. in a file)"},
	{"F2", "rename symbol (e.g. select a variable and rename other instance of that variable)"},
	{"ctrl + shift + m", "open/close problems tab (e.g. eslint errors)"},
}

var file = []Entry{
	{"ctrl + w", "close file"},
	{"ctrl + shift + e", "open file explorer on the sidebar"},
}

var view = []Entry{
	{"ctrl + k + t", "change theme"},
	{"ctrl + k z", "toggle Zen mode"},
}

var terminal = []Entry{
	{"ctrl + `", "open/close the integrated terminal"},
	{"ctrl + shift + `", "open a new integrated terminal"},
	{"ctrl + PageUp/PageDown", "switch terminal tabs (or page tabs no terminal open)"},
}

var misc = []Entry{
	{"ctrl + shift + p", "open command palette (type commands for anything in VS Code)"},
	{"ctrl + b", "open/close sidebar"},
	{"ctrl + shift + x", "open extension on the sidebar"},
	{"ctrl + z", "undo last action"},
	{"ctrl + s", "save file"},
}

var tables = map[catalog.Category][]Entry{
	catalog.CategoryCode:     code,
	catalog.CategoryFile:     file,
	catalog.CategoryView:     view,
	catalog.CategoryTerminal: terminal,
	catalog.CategoryMisc:     misc,
}

// For returns a copy of the entries of a category in display order.
// ok is false for a category with no table.
func For(c catalog.Category) (entries []Entry, ok bool) {
	t, ok := tables[c]
	if !ok {
		return nil, false
	}
	entries = make([]Entry, len(t))
	copy(entries, t)
	return entries, true
}
