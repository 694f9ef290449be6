package section

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/scorix/grib2/errs"
)

type section0 struct {
	sectionBase
	identifier  [4]byte
	reserved    [2]byte
	discipline  uint8
	edition     uint8
	totalLength uint64
}

var _ Section0 = (*section0)(nil)

func (s *section0) StartMarker() [4]byte {
	return s.identifier
}

func (s *section0) Discipline() uint8 {
	return s.discipline
}

func (s *section0) Edition() uint8 {
	return s.edition
}

func (s *section0) TotalLength() uint64 {
	return s.totalLength
}

func (s *section0) ReadSection(reader io.Reader) (Section, error) {
	return NewSection0FromReader(reader)
}

func NewSection0FromReader(reader io.Reader) (Section, error) {
	data, err := readFixedSection(reader, 16)
	if err != nil {
		return nil, err
	}

	return NewSection0FromBytes(data)
}

func NewSection0FromBytes(data []byte) (Section0, error) {
	if len(data) < 16 {
		return nil, &errs.ParseError{Detail: "section0: data too short"}
	}

	if string(data[:4]) != "GRIB" {
		return nil, &errs.ParseError{Detail: "section0: invalid GRIB identifier"}
	}

	br := bytes.NewReader(data)

	s := section0{sectionBase: sectionBase{length: 16, sectionNumber: 0}}
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.identifier))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.reserved))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.discipline))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.edition))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.totalLength))

	if err != nil {
		return nil, &errs.ParseError{Detail: "section0: decoding fixed fields", Err: err}
	}

	return &s, nil
}
