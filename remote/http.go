// Package remote provides an io.ReaderAt over a plain HTTP byte-range source,
// so grib2.Open can random-access a GRIB2 file (e.g. an S3 object served over
// HTTPS) without downloading it whole.
package remote

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/scorix/grib2/errs"
)

// Options configures an HTTPReaderAt.
type Options struct {
	client  *http.Client
	logger  *zerolog.Logger
	timeout time.Duration
}

// Option customises HTTPReaderAt construction.
type Option func(*Options)

// WithHTTPClient overrides the client used for the HEAD probe and each range
// request. Useful for swapping in a client with retries or custom transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.client = c }
}

// WithTimeout overrides the per-request timeout used when no client is
// supplied via WithHTTPClient. Default is 30s, matching the teacher's reader.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.timeout = d }
}

// WithLogger attaches a logger for range-request diagnostics.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// HTTPReaderAt satisfies io.ReaderAt by issuing HTTP Range requests against a
// single URL, one request per ReadAt call. The remote object's length is
// probed once, at construction, via HEAD.
type HTTPReaderAt struct {
	url    string
	client *http.Client
	logger zerolog.Logger
	size   int64
}

// NewHTTPReaderAt probes url with a HEAD request to learn its content length,
// then returns a reader capable of range-reading it.
func NewHTTPReaderAt(url string, opts ...Option) (*HTTPReaderAt, error) {
	o := &Options{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: o.timeout}
	}
	logger := zerolog.Nop()
	if o.logger != nil {
		logger = *o.logger
	}

	resp, err := o.client.Head(url)
	if err != nil {
		return nil, &errs.ParseError{Detail: fmt.Sprintf("remote: HEAD %s", url), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errs.ParseError{Detail: fmt.Sprintf("remote: HEAD %s returned %s", url, resp.Status)}
	}

	logger.Debug().Str("url", url).Int64("size", resp.ContentLength).Msg("remote: probed object size")

	return &HTTPReaderAt{
		url:    url,
		client: o.client,
		logger: logger,
		size:   resp.ContentLength,
	}, nil
}

// Size is the remote object's content length, as reported by the initial HEAD
// request.
func (h *HTTPReaderAt) Size() int64 { return h.size }

// ReadAt implements io.ReaderAt via a single Range request per call.
func (h *HTTPReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= h.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	if end >= h.size {
		end = h.size - 1
	}

	req, err := http.NewRequest(http.MethodGet, h.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, end))

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPartialContent && resp.StatusCode != http.StatusOK {
		return 0, &errs.ParseError{Offset: off, Detail: fmt.Sprintf("remote: range request returned %s", resp.Status)}
	}

	n, err := io.ReadFull(resp.Body, p[:end-off+1])
	h.logger.Debug().Int64("offset", off).Int("bytes", n).Msg("remote: range read")
	return n, err
}

var _ io.ReaderAt = (*HTTPReaderAt)(nil)
