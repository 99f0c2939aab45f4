package catalog

import (
	"testing"

	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionTables(t *testing.T) {
	assert.Equal(t, []Option{
		{Label: "VS Code key bindings", Key: "keybindings"},
		{Label: "Create config files (e.g. .gitignore, .vscode/settings.json)", Key: "configFile"},
	}, CommandOptions())

	assert.Equal(t, []Option{
		{Label: "Coding", Key: "code"},
		{Label: "Terminal management", Key: "terminal"},
		{Label: "File management", Key: "file"},
		{Label: "Appearance", Key: "view"},
		{Label: "Other keybindings", Key: "misc"},
	}, KeybindingOptions())

	assert.Equal(t, []Option{
		{Label: ".gitignore for JavaScript", Key: "gitignoreJs"},
		{Label: "Format on save with ESLint", Key: "formatOnSave"},
	}, ConfigFileOptions())
}

func TestAccessorsReturnCopies(t *testing.T) {
	opts := KeybindingOptions()
	opts[0].Label = "mutated"

	assert.Equal(t, "Coding", KeybindingOptions()[0].Label)
	assert.Equal(t, "Coding", CategoryCode.Label())
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryCode, CategoryTerminal, CategoryFile, CategoryView, CategoryMisc,
	}, Categories())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Appearance", CategoryView.Label())
	assert.Equal(t, "bogus", Category("bogus").Label())
	assert.Equal(t, ".gitignore for JavaScript", ConfigGitignoreJS.Label())
	assert.Equal(t, "bogus", ConfigFile("bogus").Label())
}

func TestParse(t *testing.T) {
	t.Run("command", func(t *testing.T) {
		c, err := ParseCommand("configFile")
		require.NoError(t, err)
		assert.Equal(t, CommandConfigFile, c)

		_, err = ParseCommand("quit")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSelection))
	})

	t.Run("category", func(t *testing.T) {
		for _, o := range KeybindingOptions() {
			c, err := ParseCategory(o.Key)
			require.NoError(t, err)
			assert.Equal(t, Category(o.Key), c)
		}

		_, err := ParseCategory("debug")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSelection))
		assert.Equal(t, "debug", errors.GetErrorDetails(err)["key"])
	})

	t.Run("config file", func(t *testing.T) {
		tests := map[string]ConfigFile{
			"gitignoreJs":    ConfigGitignoreJS,
			"formatOnSave":   ConfigFormatOnSave,
			"gitignore-js":   ConfigGitignoreJS,
			"format-on-save": ConfigFormatOnSave,
		}
		for key, want := range tests {
			got, err := ParseConfigFile(key)
			require.NoError(t, err, key)
			assert.Equal(t, want, got)
		}

		_, err := ParseConfigFile("gitignorePython")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSelection))
	})
}
