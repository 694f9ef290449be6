package section

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/scorix/grib2/errs"
)

type section7 struct {
	sectionBase
	dataSize uint32

	// Smart buffering: data accumulates here as it's pulled from
	// originalReader, so Data() and DataReader() never require the whole
	// section to be materialised up front.
	buffer         []byte
	originalReader io.Reader
	isFullyRead    bool
	readErr        error

	mu sync.RWMutex
}

var _ Section7 = (*section7)(nil)

// readChunk pulls data from originalReader into buffer until at least
// minBytes are buffered (or the section is exhausted), returning the number
// of bytes newly read.
func (s *section7) readChunk(minBytes uint32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isFullyRead || s.readErr != nil {
		return 0, s.readErr
	}

	if uint32(len(s.buffer)) >= minBytes {
		return 0, nil
	}

	targetSize := minBytes
	if targetSize > s.dataSize {
		targetSize = s.dataSize
	}

	const chunkSize = 64 * 1024
	totalRead := 0

	for uint32(len(s.buffer)) < targetSize && s.originalReader != nil {
		remainingNeed := targetSize - uint32(len(s.buffer))
		currentChunkSize := chunkSize
		if remainingNeed < chunkSize {
			currentChunkSize = int(remainingNeed)
		}

		chunk := make([]byte, currentChunkSize)
		n, err := s.originalReader.Read(chunk)

		if n > 0 {
			s.buffer = append(s.buffer, chunk[:n]...)
			totalRead += n
		}

		if err != nil {
			if err == io.EOF {
				s.isFullyRead = true
				s.originalReader = nil
			} else {
				s.readErr = &errs.ParseError{Detail: "section7: streaming data", Err: err}
			}
			break
		}

		if uint32(len(s.buffer)) >= s.dataSize {
			s.isFullyRead = true
			s.originalReader = nil
			break
		}
	}

	return totalRead, s.readErr
}

func (s *section7) Data() []byte {
	_, _ = s.readChunk(s.dataSize)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.readErr != nil {
		return nil
	}

	result := make([]byte, len(s.buffer))
	copy(result, s.buffer)
	return result
}

func (s *section7) DataReader() io.Reader {
	return &section7Reader{section: s, offset: 0}
}

func (s *section7) DataSize() uint32 {
	return s.dataSize
}

func (s *section7) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readErr
}

// section7Reader streams a section7's buffered data as an io.Reader, pulling
// further chunks from the section as the caller advances past what's already
// buffered.
type section7Reader struct {
	section *section7
	offset  uint32
}

func (r *section7Reader) Read(p []byte) (n int, err error) {
	needed := r.offset + uint32(len(p))
	if needed > r.section.dataSize {
		needed = r.section.dataSize
	}

	_, _ = r.section.readChunk(needed)

	r.section.mu.RLock()
	defer r.section.mu.RUnlock()

	if r.section.readErr != nil {
		return 0, r.section.readErr
	}

	available := uint32(len(r.section.buffer)) - r.offset
	if available == 0 {
		return 0, io.EOF
	}

	toCopy := available
	if toCopy > uint32(len(p)) {
		toCopy = uint32(len(p))
	}

	copy(p, r.section.buffer[r.offset:r.offset+toCopy])
	r.offset += toCopy

	return int(toCopy), nil
}

// NewSection7FromReader reads a Section7 header (length, section number) from
// reader and sets up smart buffering over the remaining data, which is
// bounded to the section via io.LimitReader. reader should be positioned at
// the start of the section.
func NewSection7FromReader(reader io.Reader) (Section7, error) {
	var length uint32
	var sectionNumber uint8

	if err := binary.Read(reader, binary.BigEndian, &length); err != nil {
		return nil, &errs.ParseError{Detail: "section7: failed to read length", Err: err}
	}

	if err := binary.Read(reader, binary.BigEndian, &sectionNumber); err != nil {
		return nil, &errs.ParseError{Detail: "section7: failed to read section number", Err: err}
	}

	if sectionNumber != 7 {
		return nil, &errs.ParseError{Detail: fmt.Sprintf("section7: invalid section number, expected 7, got %d", sectionNumber)}
	}

	dataSize := length - 5
	dataReader := io.LimitReader(reader, int64(dataSize))

	return NewSection7FromDataReader(length, sectionNumber, dataReader), nil
}

// NewSection7FromDataReader builds a Section7 with smart buffering directly
// over a data-only reader (positioned after the 5-byte header), for callers
// that already split header from payload.
func NewSection7FromDataReader(length uint32, sectionNumber uint8, dataReader io.Reader) Section7 {
	return &section7{
		sectionBase:    sectionBase{length: length, sectionNumber: sectionNumber},
		dataSize:       length - 5,
		originalReader: dataReader,
		buffer:         make([]byte, 0),
	}
}
