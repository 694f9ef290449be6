package section

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/scorix/grib2/errs"
)

type section6 struct {
	sectionBase
	bitMapIndicator uint8
	bitMap          []byte
}

var _ Section6 = (*section6)(nil)

func (s *section6) BitMapIndicator() uint8 {
	return s.bitMapIndicator
}

func (s *section6) BitMap() []byte {
	return s.bitMap
}

func (s *section6) HasBitMap() bool {
	return s.bitMapIndicator == 0
}

func (s *section6) ReadSection(reader io.Reader) (Section, error) {
	return NewSection6FromReader(reader)
}

func NewSection6FromReader(reader io.Reader) (Section, error) {
	data, err := readLengthPrefixedSection(reader)
	if err != nil {
		return nil, err
	}

	return NewSection6FromBytes(data)
}

func NewSection6FromBytes(data []byte) (Section6, error) {
	if len(data) < 6 {
		return nil, &errs.ParseError{Detail: "section6: data too short"}
	}

	br := bytes.NewReader(data)

	var s section6
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.length))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.sectionNumber))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.bitMapIndicator))
	if err != nil {
		return nil, &errs.ParseError{Detail: "section6: decoding fixed fields", Err: err}
	}

	if s.bitMapIndicator == 0 {
		bitMapSize := int(s.length) - 6
		if bitMapSize > 0 {
			s.bitMap = make([]byte, bitMapSize)
			if _, err := br.Read(s.bitMap); err != nil {
				return nil, &errs.ParseError{Detail: "section6: bit-map data", Err: err}
			}
		}
	}

	return &s, nil
}
