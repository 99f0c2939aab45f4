// Package fetch downloads remote templates and streams them to a writer.
package fetch

import (
	"context"
	"io"
	"time"

	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/go-resty/resty/v2"
)

const defaultChunkSize = 32 * 1024

// Options configures a Client
type Options struct {
	UserAgent string
	// Timeout bounds the whole request; 0 means no limit.
	Timeout   time.Duration
	ChunkSize int
}

// Client is a thin resty wrapper that never buffers a body in memory.
type Client struct {
	client    *resty.Client
	chunkSize int
}

// Result reports what Stream received
type Result struct {
	StatusCode int
	Bytes      int64
}

// OK reports a 2xx status
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// New creates a Client
func New(opts Options) *Client {
	c := resty.New()
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	return &Client{client: c, chunkSize: chunkSize}
}

// Stream GETs url and copies the body into w one chunk at a time, calling
// onChunk after every chunk is written. Transport and read failures are
// ErrFetch; failures of w are ErrFileWrite. Bytes already written stay written.
func (c *Client) Stream(ctx context.Context, url string, w io.Writer, onChunk func(n int)) (*Result, error) {
	logger := logging.GetLogger("fetch")
	done := logging.LogOperationStart(logger, "stream "+url)
	defer done()

	resp, err := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetch, "failed to fetch %s", url).
			WithDetail("url", url)
	}

	body := resp.RawBody()
	defer body.Close()

	result := &Result{StatusCode: resp.StatusCode()}
	logger.Debug().Str("url", url).Int("status", result.StatusCode).Msg("Response received")

	buf := make([]byte, c.chunkSize)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return result, errors.Wrap(err, errors.ErrFileWrite, "failed to write response body")
			}
			result.Bytes += int64(n)
			if onChunk != nil {
				onChunk(n)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return result, errors.Wrapf(readErr, errors.ErrFetch, "failed to read response from %s", url).
				WithDetail("url", url).
				WithDetail("bytes", result.Bytes)
		}
	}

	logger.Debug().Int64("bytes", result.Bytes).Msg("Response body streamed")
	return result, nil
}
