// Package scaffold writes the boilerplate files valk offers.
//
// Both writers report progress and outcome on an output.Sink. A failed
// download is reported there and otherwise swallowed; filesystem failures
// are returned.
package scaffold

import (
	"context"
	"io"

	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/config"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/fetch"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/arthur-debert/valk/pkg/output"
	"github.com/spf13/afero"
)

// Fetcher streams a remote document into w
type Fetcher interface {
	Stream(ctx context.Context, url string, w io.Writer, onChunk func(n int)) (*fetch.Result, error)
}

// Writer creates config files relative to the root of fs
type Writer struct {
	fs      afero.Fs
	fetcher Fetcher
	sink    output.Sink
	cfg     *config.Config
}

// NewWriter creates a Writer
func NewWriter(fs afero.Fs, fetcher Fetcher, sink output.Sink, cfg *config.Config) *Writer {
	return &Writer{fs: fs, fetcher: fetcher, sink: sink, cfg: cfg}
}

// Write creates the file identified by f. Unknown values print an invalid
// selection notice and do nothing.
func (w *Writer) Write(ctx context.Context, f catalog.ConfigFile) error {
	switch f {
	case catalog.ConfigGitignoreJS:
		return w.WriteGitignoreJS(ctx)
	case catalog.ConfigFormatOnSave:
		return w.WriteFormatOnSave()
	default:
		logger := logging.GetLogger("scaffold")
		logger.Warn().Str("file", string(f)).Msg("Unknown config file")
		w.sink.Error(MsgInvalidSelection)
		return nil
	}
}

// isFilesystemError tells write failures apart from transport failures
func isFilesystemError(err error) bool {
	switch errors.GetErrorCode(err) {
	case errors.ErrFileWrite, errors.ErrFileCreate, errors.ErrDirCreate:
		return true
	}
	return false
}
