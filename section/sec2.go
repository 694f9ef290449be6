package section

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/scorix/grib2/errs"
)

type section2 struct {
	sectionBase
	localUse []byte
}

var _ Section2 = (*section2)(nil)

func (s *section2) LocalUseData() []byte {
	return s.localUse
}

func (s *section2) ReadSection(reader io.Reader) (Section, error) {
	return NewSection2FromReader(reader)
}

// NewSection2FromReader reads a length-prefixed section 2 from reader, via the
// shared helper used by sections 1, 3, 4, 5 and 6, leaving the sections that
// follow unread. The local-use octets are kept as opaque bytes.
func NewSection2FromReader(reader io.Reader) (Section, error) {
	data, err := readLengthPrefixedSection(reader)
	if err != nil {
		return nil, err
	}

	return NewSection2FromBytes(data)
}

func NewSection2FromBytes(data []byte) (Section2, error) {
	if len(data) < 4 {
		return nil, &errs.ParseError{Detail: "section2: data too short"}
	}

	br := bytes.NewReader(data)

	var s section2
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.length))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.sectionNumber))
	if err != nil {
		return nil, &errs.ParseError{Detail: "section2: decoding fixed fields", Err: err}
	}

	localUseN := s.length - 5
	s.localUse = make([]byte, localUseN)
	if _, err := io.ReadFull(br, s.localUse); err != nil {
		return nil, &errs.ParseError{Detail: "section2: local use data", Err: err}
	}

	return &s, nil
}
