package valk

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/valk/pkg/config"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/filesystem"
	"github.com/arthur-debert/valk/pkg/format"
	"github.com/arthur-debert/valk/pkg/menu"
	"github.com/arthur-debert/valk/pkg/prompt"
	"github.com/arthur-debert/valk/pkg/scaffold"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodeTemplate = "# Dependency directories\nnode_modules/\n"

type result struct {
	out    string
	errOut string
	err    error
}

// isolate keeps config and log files inside the test's temp directories
func isolate(t *testing.T) (configHome string) {
	t.Helper()
	configHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return configHome
}

func run(t *testing.T, opts Options, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := NewRootCmdWithOptions(opts)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func templateServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Valk CLI App" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = io.WriteString(w, nodeTemplate)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/Node.gitignore"
}

func TestKeysSingleCategory(t *testing.T) {
	isolate(t)

	res := run(t, Options{}, "keys", "file")
	require.NoError(t, res.err)

	f := format.New(format.PlainPalette())
	assert.Equal(t,
		f.Line("ctrl + w", "close file")+"\n"+
			f.Line("ctrl + shift + e", "open file explorer on the sidebar")+"\n",
		res.out)
}

func TestKeysAll(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{"keys"}, {"keys", "file", "--all"}} {
		res := run(t, Options{}, args...)
		require.NoError(t, res.err)

		for _, label := range []string{"Coding", "Terminal management", "File management", "Appearance", "Other keybindings"} {
			assert.Contains(t, res.out, label)
		}
	}
}

func TestKeysUnknownCategory(t *testing.T) {
	isolate(t)

	res := run(t, Options{}, "keys", "debug")
	require.NoError(t, res.err)
	assert.Equal(t, menu.MsgInvalidSelection+"\n", res.out)
}

func TestKeysMarkdown(t *testing.T) {
	isolate(t)

	res := run(t, Options{}, "keys", "file", "--markdown")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "File management")
	assert.Contains(t, res.out, "close file")
}

func TestCreateFormatOnSave(t *testing.T) {
	isolate(t)
	fs := filesystem.NewMemory()

	for _, name := range []string{"format-on-save", "formatOnSave"} {
		res := run(t, Options{Fs: fs}, "create", name)
		require.NoError(t, res.err)
		assert.Equal(t, scaffold.MsgFormatOnSaveCreated+"\n", res.out)
	}

	content, err := afero.ReadFile(fs, filepath.Join(".vscode", "settings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"source.fixAll.eslint": true`)
}

func TestCreateGitignore(t *testing.T) {
	isolate(t)
	url := templateServer(t)

	t.Run("url flag", func(t *testing.T) {
		fs := filesystem.NewMemory()

		res := run(t, Options{Fs: fs}, "create", "gitignore-js", "--url", url)
		require.NoError(t, res.err)

		content, err := afero.ReadFile(fs, ".gitignore")
		require.NoError(t, err)
		assert.Equal(t, nodeTemplate, string(content))
		assert.Contains(t, res.out, "Fetching data from "+url)
		assert.Contains(t, res.out, scaffold.MsgGitignoreCreated)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("VALK_GITIGNORE_URL", url)
		fs := filesystem.NewMemory()

		res := run(t, Options{Fs: fs}, "create", "gitignoreJs")
		require.NoError(t, res.err)

		content, err := afero.ReadFile(fs, ".gitignore")
		require.NoError(t, err)
		assert.Equal(t, nodeTemplate, string(content))
	})

	t.Run("atomic", func(t *testing.T) {
		root := t.TempDir()
		fs := afero.NewBasePathFs(filesystem.NewOS(), root)

		res := run(t, Options{Fs: fs}, "create", "gitignore-js", "--atomic", "--url", url)
		require.NoError(t, res.err)

		content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, nodeTemplate, string(content))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		res := run(t, Options{Fs: filesystem.NewMemory()}, "create", "gitignore-js", "--url", srv.URL)
		require.NoError(t, res.err)
		assert.NotContains(t, res.out, scaffold.MsgGitignoreCreated)
		assert.Contains(t, res.errOut, "Error:")
	})
}

func TestCreateUnknownFile(t *testing.T) {
	isolate(t)
	fs := filesystem.NewMemory()

	res := run(t, Options{Fs: fs}, "create", "gitignore-python")
	require.NoError(t, res.err)
	assert.Equal(t, menu.MsgInvalidSelection+"\n", res.out)

	_, err := fs.Stat(".gitignore")
	assert.Error(t, err)
}

func TestCreateFilesystemFailure(t *testing.T) {
	isolate(t)
	fs := afero.NewReadOnlyFs(filesystem.NewMemory())

	res := run(t, Options{Fs: fs}, "create", "format-on-save")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrDirCreate))
}

func TestInteractive(t *testing.T) {
	isolate(t)

	t.Run("writes the chosen file", func(t *testing.T) {
		fs := filesystem.NewMemory()
		p := prompt.NewLine(strings.NewReader("configFile\nformatOnSave\n"), io.Discard)

		res := run(t, Options{Fs: fs, Prompter: p})
		require.NoError(t, res.err)
		assert.Equal(t, scaffold.MsgFormatOnSaveCreated+"\n", res.out)

		exists, err := afero.Exists(fs, filepath.Join(".vscode", "settings.json"))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("invalid sub-choice", func(t *testing.T) {
		fs := filesystem.NewMemory()
		p := prompt.NewLine(strings.NewReader("configFile\nreadme\n"), io.Discard)

		res := run(t, Options{Fs: fs, Prompter: p})
		require.NoError(t, res.err)
		assert.Equal(t, menu.MsgInvalidSelection+"\n", res.out)
	})

	t.Run("aborted prompt", func(t *testing.T) {
		p := prompt.NewLine(strings.NewReader(""), io.Discard)

		res := run(t, Options{Fs: filesystem.NewMemory(), Prompter: p})
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrPrompt))
	})

	t.Run("extra arguments", func(t *testing.T) {
		res := run(t, Options{}, "frobnicate")
		assert.Error(t, res.err)
	})
}

func TestGenConfig(t *testing.T) {
	configHome := isolate(t)

	t.Run("stdout", func(t *testing.T) {
		t.Setenv("VALK_GITIGNORE_USER_AGENT", "custom agent")

		res := run(t, Options{}, "gen-config")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "[gitignore]")
		assert.Contains(t, res.out, "custom agent")
	})

	t.Run("write", func(t *testing.T) {
		t.Setenv("VALK_GITIGNORE_USER_AGENT", "custom agent")
		path := filepath.Join(configHome, "valk", "config.toml")

		res := run(t, Options{}, "gen-config", "-w")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultContent(), string(content))
		assert.NotContains(t, string(content), "custom agent")

		res = run(t, Options{}, "gen-config", "-w")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "already exists")
	})
}

func TestExplicitConfigMustExist(t *testing.T) {
	isolate(t)

	res := run(t, Options{}, "--config", filepath.Join(t.TempDir(), "missing.toml"), "keys")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigLoad))
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	isolate(t)

	res := run(t, Options{}, "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.out, "valk version "))
}

func TestCompletion(t *testing.T) {
	isolate(t)

	res := run(t, Options{}, "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "valk")

	res = run(t, Options{}, "completion", "tcsh")
	assert.Error(t, res.err)
}

func TestMan(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	res := run(t, Options{}, "man", "--dir", dir)
	require.NoError(t, res.err)
	assert.FileExists(t, filepath.Join(dir, "valk.1"))
	assert.FileExists(t, filepath.Join(dir, "valk-keys.1"))
}
