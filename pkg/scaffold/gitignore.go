package scaffold

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/valk/pkg/filesystem"
	"github.com/arthur-debert/valk/pkg/logging"
)

// WriteGitignoreJS downloads the Node .gitignore template into the
// configured path, overwriting it. By default the body is streamed straight
// into the file, so a failed download leaves whatever arrived so far.
func (w *Writer) WriteGitignoreJS(ctx context.Context) error {
	logger := logging.GetLogger("scaffold.gitignore")
	url, path := w.cfg.Gitignore.URL, w.cfg.Gitignore.Path

	logger.Info().
		Str("url", url).
		Str("path", path).
		Bool("atomic", w.cfg.Gitignore.Atomic).
		Msg("Writing .gitignore")

	if w.cfg.Gitignore.Atomic {
		return w.gitignoreAtomic(ctx, url, path)
	}

	f, err := filesystem.Create(w.fs, path)
	if err != nil {
		return err
	}
	fetchErr := w.stream(ctx, url, f)
	closeErr := f.Close()

	if fetchErr != nil {
		return w.fetchFailed(fetchErr)
	}
	if closeErr != nil {
		return closeErr
	}

	w.sink.Success(MsgGitignoreCreated)
	return nil
}

func (w *Writer) gitignoreAtomic(ctx context.Context, url, path string) error {
	a, err := filesystem.CreateAtomic(w.fs, path)
	if err != nil {
		return err
	}

	if err := w.stream(ctx, url, a); err != nil {
		_ = a.Abort()
		return w.fetchFailed(err)
	}
	if err := a.Commit(); err != nil {
		return err
	}

	w.sink.Success(MsgGitignoreCreated)
	return nil
}

func (w *Writer) stream(ctx context.Context, url string, dst io.Writer) error {
	logger := logging.GetLogger("scaffold.gitignore")
	progress := fmt.Sprintf(MsgFetching, url)

	result, err := w.fetcher.Stream(ctx, url, dst, func(int) {
		w.sink.Progress(progress)
	})
	if err != nil {
		return err
	}

	if !result.OK() {
		logger.Warn().Int("status", result.StatusCode).Str("url", url).Msg("Unexpected response status")
		w.sink.Warn(fmt.Sprintf(MsgUnexpectedStatus, result.StatusCode, url))
	}
	logger.Debug().Int64("bytes", result.Bytes).Msg("Template received")
	return nil
}

// fetchFailed reports a download failure. Only filesystem failures are
// passed on to the caller.
func (w *Writer) fetchFailed(err error) error {
	if isFilesystemError(err) {
		return err
	}
	logger := logging.GetLogger("scaffold.gitignore")
	logger.Error().Err(err).Msg("Failed to fetch .gitignore template")
	w.sink.Report(err)
	return nil
}
