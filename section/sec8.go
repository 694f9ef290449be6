package section

import (
	"io"

	"github.com/scorix/grib2/errs"
)

type section8 struct {
	sectionBase
	endMarker [4]byte
}

var _ Section8 = (*section8)(nil)

func (s *section8) EndMarker() [4]byte {
	return s.endMarker
}

func (s *section8) IsValid() bool {
	expected := [4]byte{'7', '7', '7', '7'}
	return s.endMarker == expected
}

func (s *section8) ReadSection(reader io.Reader) (Section, error) {
	return NewSection8FromReader(reader)
}

func NewSection8FromReader(reader io.Reader) (Section, error) {
	data, err := readFixedSection(reader, 4)
	if err != nil {
		return nil, err
	}

	return NewSection8FromBytes(data)
}

func NewSection8FromBytes(data []byte) (Section8, error) {
	if len(data) < 4 {
		return nil, &errs.ParseError{Detail: "section8: data too short"}
	}

	s := section8{sectionBase: sectionBase{length: 4, sectionNumber: 8}}
	copy(s.endMarker[:], data[:4])

	if !s.IsValid() {
		return nil, &errs.ParseError{Detail: "section8: invalid end marker, expected '7777', got '" + string(s.endMarker[:]) + "'"}
	}

	return &s, nil
}
