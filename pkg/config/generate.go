package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/pelletier/go-toml/v2"
)

// TOML returns the effective configuration as a TOML document
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c.raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// WriteResult describes what WriteDefault did
type WriteResult struct {
	Path    string
	Written bool
}

// WriteDefault writes the commented default configuration to path, creating
// parent directories. An existing file is left alone.
func WriteDefault(path string) (*WriteResult, error) {
	logger := logging.GetLogger("config.generate")
	result := &WriteResult{Path: path}

	if _, err := os.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	result.Written = true
	return result, nil
}
