package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables that override configuration
	EnvPrefix = "VALK_"
	// FileName is the name of the user config file
	FileName = "config.toml"
)

// Gitignore configures the remote .gitignore template download
type Gitignore struct {
	URL       string `koanf:"url"`
	UserAgent string `koanf:"user_agent"`
	Path      string `koanf:"path"`
	Atomic    bool   `koanf:"atomic"`
}

// VSCode configures where the editor settings file is written
type VSCode struct {
	Dir          string `koanf:"dir"`
	SettingsFile string `koanf:"settings_file"`
}

// SettingsPath is the settings file path relative to the working directory
func (v VSCode) SettingsPath() string {
	return filepath.Join(v.Dir, v.SettingsFile)
}

// Fetch holds HTTP transport settings
type Fetch struct {
	Timeout   time.Duration `koanf:"timeout"`
	ChunkSize int           `koanf:"chunk_size"`
}

// Display holds rendering settings
type Display struct {
	Styles        string `koanf:"styles"`
	MarkdownStyle string `koanf:"markdown_style"`
}

// Config is the main configuration structure
type Config struct {
	Gitignore Gitignore `koanf:"gitignore"`
	VSCode    VSCode    `koanf:"vscode"`
	Fetch     Fetch     `koanf:"fetch"`
	Display   Display   `koanf:"display"`

	// merged key/value tree the struct was decoded from
	raw map[string]interface{}
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Path of the user config file. Empty means UserConfigPath(), which is
	// optional; an explicit path must exist.
	Path string
	// Overrides are applied last, keyed by dotted path ("gitignore.atomic").
	Overrides map[string]interface{}
}

// UserConfigPath returns $XDG_CONFIG_HOME/valk/config.toml
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppDirName, FileName)
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load(LoadOptions{Path: os.DevNull})
	if err != nil {
		// embedded defaults are covered by tests; this cannot fail in a release
		panic(err)
	}
	return cfg
}

// Load merges defaults, the user file, the environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, required := opts.Path, true
	if path == "" {
		path, required = UserConfigPath(), false
	}
	if path != os.DevNull {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		} else if required {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg := &Config{}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.raw = k.Raw()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("gitignoreURL", cfg.Gitignore.URL).
		Bool("atomic", cfg.Gitignore.Atomic).
		Dur("timeout", cfg.Fetch.Timeout).
		Msg("Configuration loaded")

	return cfg, nil
}

// envKey maps VALK_GITIGNORE_USER_AGENT to gitignore.user_agent: the first
// underscore separates section from key, the rest belong to the key.
// Variables naming only a section map to "", which the provider skips.
func envKey(s string) string {
	key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	if !strings.Contains(key, ".") {
		return ""
	}
	return key
}

func (c *Config) validate() error {
	switch {
	case c.Gitignore.URL == "":
		return errors.New(errors.ErrConfigParse, "gitignore.url must not be empty")
	case c.Gitignore.Path == "":
		return errors.New(errors.ErrConfigParse, "gitignore.path must not be empty")
	case c.VSCode.Dir == "" || c.VSCode.SettingsFile == "":
		return errors.New(errors.ErrConfigParse, "vscode.dir and vscode.settings_file must not be empty")
	case c.Fetch.ChunkSize <= 0:
		return errors.Newf(errors.ErrConfigParse, "fetch.chunk_size must be positive, got %d", c.Fetch.ChunkSize)
	case c.Fetch.Timeout < 0:
		return errors.Newf(errors.ErrConfigParse, "fetch.timeout must not be negative, got %s", c.Fetch.Timeout)
	}
	return nil
}
