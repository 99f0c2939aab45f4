package config

import (
	"os"
	"path/filepath"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOML(t *testing.T) {
	isolate(t)
	t.Setenv("VALK_GITIGNORE_USER_AGENT", "agent/1.0")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	data, err := cfg.TOML()
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, gotoml.Unmarshal(data, &decoded))
	assert.Equal(t, "agent/1.0", decoded["gitignore"]["user_agent"])
	assert.Equal(t, ".vscode", decoded["vscode"]["dir"])
	assert.Equal(t, "0s", decoded["fetch"]["timeout"])
}

func TestWriteDefault(t *testing.T) {
	t.Run("creates file and parents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "valk", "config.toml")

		result, err := WriteDefault(path)
		require.NoError(t, err)
		assert.True(t, result.Written)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultContent(), string(content))
		assert.Contains(t, string(content), "# This is the config file for valk.")
	})

	t.Run("skips existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("# mine"), 0644))

		result, err := WriteDefault(path)
		require.NoError(t, err)
		assert.False(t, result.Written)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# mine", string(content))
	})
}
