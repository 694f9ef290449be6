package section

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/scorix/grib2/errs"
)

type section5 struct {
	sectionBase
	numberOfDataPoints               uint32
	dataRepresentationTemplateNumber uint16
	dataRepresentationTemplate       []byte
}

var _ Section5 = (*section5)(nil)

func (s *section5) NumberOfDataPoints() uint32 {
	return s.numberOfDataPoints
}

func (s *section5) DataRepresentationTemplateNumber() uint8 {
	return uint8(s.dataRepresentationTemplateNumber)
}

func (s *section5) RawTemplate() []byte {
	return s.dataRepresentationTemplate
}

func (s *section5) ReadSection(reader io.Reader) (Section, error) {
	return NewSection5FromReader(reader)
}

func NewSection5FromReader(reader io.Reader) (Section, error) {
	data, err := readLengthPrefixedSection(reader)
	if err != nil {
		return nil, err
	}

	return NewSection5FromBytes(data)
}

func NewSection5FromBytes(data []byte) (Section5, error) {
	if len(data) < 11 {
		return nil, &errs.ParseError{Detail: "section5: data too short"}
	}

	br := bytes.NewReader(data)

	var s section5
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.length))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.sectionNumber))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.numberOfDataPoints))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.dataRepresentationTemplateNumber))
	if err != nil {
		return nil, &errs.ParseError{Detail: "section5: decoding fixed fields", Err: err}
	}

	templateSize := int(s.length) - 11
	if templateSize > 0 {
		s.dataRepresentationTemplate = make([]byte, templateSize)
		if _, err := br.Read(s.dataRepresentationTemplate); err != nil {
			return nil, &errs.ParseError{Detail: "section5: data representation template", Err: err}
		}
	}

	return &s, nil
}
