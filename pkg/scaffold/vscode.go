package scaffold

import (
	"encoding/json"

	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/filesystem"
	"github.com/arthur-debert/valk/pkg/logging"
)

type codeActionsOnSave struct {
	FixAllESLint bool `json:"source.fixAll.eslint"`
}

type vscodeSettings struct {
	CodeActionsOnSave codeActionsOnSave `json:"editor.codeActionsOnSave"`
}

var formatOnSaveSettings = vscodeSettings{
	CodeActionsOnSave: codeActionsOnSave{FixAllESLint: true},
}

// FormatOnSaveJSON is the settings document, indented with four spaces
func FormatOnSaveJSON() ([]byte, error) {
	return json.MarshalIndent(formatOnSaveSettings, "", "    ")
}

// WriteFormatOnSave makes ESLint fix files on save: it creates the .vscode
// directory when missing and overwrites its settings.json.
func (w *Writer) WriteFormatOnSave() error {
	logger := logging.GetLogger("scaffold.vscode")
	dir, path := w.cfg.VSCode.Dir, w.cfg.VSCode.SettingsPath()

	created, err := filesystem.EnsureDir(w.fs, dir)
	if err != nil {
		return err
	}
	logger.Debug().Str("dir", dir).Bool("created", created).Msg("Settings directory ready")

	data, err := FormatOnSaveJSON()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
	}
	if err := filesystem.WriteFile(w.fs, path, data); err != nil {
		return err
	}

	logger.Info().Str("path", path).Msg("Written settings file")
	w.sink.Success(MsgFormatOnSaveCreated)
	return nil
}
