// Package grib2 is the public facade over the scan/decode/grid packages: it
// opens a byte source, walks its messages, and hands back immutable
// submessage views ready for decoding.
package grib2

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/internal/capability"
	"github.com/scorix/grib2/remote"
	"github.com/scorix/grib2/scan"
	"github.com/scorix/grib2/spec"
)

func errSectionTooLarge(sectionNumber uint8, length, max uint32) error {
	return &errs.ParseError{
		Detail: fmt.Sprintf("section %d length %d exceeds configured maximum %d", sectionNumber, length, max),
	}
}

// Options configures Open/OpenStream, following the functional-options
// pattern the section package's constructors use for their boolean flags.
type Options struct {
	maxSectionLength uint32
	logger           *zerolog.Logger
}

// Option mutates an Options value during Open/OpenStream.
type Option func(*Options)

// WithMaxSectionLength bounds the section length this build will honor
// before treating a declared length as corrupt input, guarding against a
// single bad length field driving a huge allocation. Zero (the default)
// means no bound beyond the input's own size.
func WithMaxSectionLength(n uint32) Option {
	return func(o *Options) { o.maxSectionLength = n }
}

// WithLogger overrides the package-level no-op logger used for any
// diagnostic output Open/OpenStream themselves produce. The core decode
// path never logs; this only affects Handle-level bookkeeping messages.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func newOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		noop := zerolog.Nop()
		o.logger = &noop
	}
	return o
}

// SubmessageIndex identifies a submessage by its position: which message in
// the stream, and which submessage within that message's repeated-section
// tree.
type SubmessageIndex struct {
	MessageIndex    int
	SubmessageIndex int
}

// Handle is an opened GRIB2 source: every submessage has already been
// located by a single forward scan, ready for iteration via Messages.
type Handle struct {
	views     []spec.SubmessageView
	infos     []scan.MessageInfo
	streaming bool
}

// Open scans source (an io.ReaderAt over size bytes) in random-access mode,
// eagerly materializing the submessage index so Len() is available
// immediately.
func Open(source io.ReaderAt, size int64, opts ...Option) (*Handle, error) {
	o := newOptions(opts)
	r := io.NewSectionReader(source, 0, size)
	return newHandle(r, false, o)
}

// OpenStream scans r in single-pass streaming mode. Len() is unavailable;
// only forward iteration via Messages() is supported.
func OpenStream(r io.Reader, opts ...Option) (*Handle, error) {
	o := newOptions(opts)
	return newHandle(r, true, o)
}

// OpenURL opens a GRIB2 file served over HTTP, range-reading it in place via
// remote.HTTPReaderAt rather than downloading it whole.
func OpenURL(url string, opts ...Option) (*Handle, error) {
	hr, err := remote.NewHTTPReaderAt(url)
	if err != nil {
		return nil, err
	}
	return Open(hr, hr.Size(), opts...)
}

func newHandle(r io.Reader, streaming bool, o *Options) (*Handle, error) {
	s := scan.NewScanner(r)
	views, err := s.Submessages()
	if err != nil {
		return nil, err
	}
	_, infos, err := s.Messages()
	if err != nil {
		return nil, err
	}
	if o.maxSectionLength > 0 {
		for _, info := range infos {
			for _, sec := range info.Sections {
				if sec.Length > o.maxSectionLength {
					o.logger.Error().Uint32("length", sec.Length).Uint8("section", sec.Number).Msg("section exceeds configured maximum length")
					return nil, errSectionTooLarge(sec.Number, sec.Length, o.maxSectionLength)
				}
			}
		}
	}
	return &Handle{views: views, infos: infos, streaming: streaming}, nil
}

// Len returns the number of submessages found, or -1 in streaming mode
// (the stream's full length is only known once read, but the core never
// re-reads past what Open/OpenStream already consumed).
func (h *Handle) Len() int {
	if h.streaming {
		return -1
	}
	return len(h.views)
}

// Capabilities reports the bitmask of optional decode paths this build was
// compiled with (see internal/capability).
func (h *Handle) Capabilities() uint64 {
	return capability.Mask()
}

// Messages returns a range-over-func iterator over every submessage found,
// paired with its (message, submessage) index.
func (h *Handle) Messages() func(yield func(SubmessageIndex, spec.SubmessageView) bool) {
	return func(yield func(SubmessageIndex, spec.SubmessageView) bool) {
		i := 0
		for msgIdx, info := range h.infos {
			subCount := countFields(info)
			for sub := 0; sub < subCount; sub++ {
				if i >= len(h.views) {
					return
				}
				idx := SubmessageIndex{MessageIndex: msgIdx, SubmessageIndex: sub}
				if !yield(idx, h.views[i]) {
					return
				}
				i++
			}
		}
	}
}

// countFields reports how many submessages scan.MessageInfo's section list
// implies: one per section 7, since each closes exactly one data field.
func countFields(info scan.MessageInfo) int {
	n := 0
	for _, sec := range info.Sections {
		if sec.Number == 7 {
			n++
		}
	}
	return n
}
