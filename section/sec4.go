package section

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/scorix/grib2/errs"
)

type section4 struct {
	sectionBase
	numberOfCoordinateValues        uint16
	productDefinitionTemplateNumber uint16
	productDefinitionTemplate       []byte
	coordinateValues                []float32
}

var _ Section4 = (*section4)(nil)

func (s *section4) NumberOfCoordinateValues() uint32 {
	return uint32(s.numberOfCoordinateValues)
}

func (s *section4) ProductDefinitionTemplateNumber() uint8 {
	return uint8(s.productDefinitionTemplateNumber)
}

func (s *section4) CoordinateValues() []float32 {
	return s.coordinateValues
}

func (s *section4) RawTemplate() []byte {
	return s.productDefinitionTemplate
}

func (s *section4) ReadSection(reader io.Reader) (Section, error) {
	return NewSection4FromReader(reader)
}

// NewSection4FromReader reads a length-prefixed section 4 from reader, via the
// shared helper used by sections 1, 2, 3, 5 and 6.
func NewSection4FromReader(reader io.Reader) (Section, error) {
	data, err := readLengthPrefixedSection(reader)
	if err != nil {
		return nil, err
	}

	return NewSection4FromBytes(data)
}

func NewSection4FromBytes(data []byte) (Section4, error) {
	if len(data) < 9 {
		return nil, &errs.ParseError{Detail: "section4: data too short"}
	}

	br := bytes.NewReader(data)

	var s section4
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.length))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.sectionNumber))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.numberOfCoordinateValues))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &s.productDefinitionTemplateNumber))
	if err != nil {
		return nil, &errs.ParseError{Detail: "section4: decoding fixed fields", Err: err}
	}

	coordinateSize := int(s.numberOfCoordinateValues) * 4 // 4 bytes per float32
	templateSize := int(s.length) - 9 - coordinateSize
	if templateSize > 0 {
		s.productDefinitionTemplate = make([]byte, templateSize)
		if _, err := br.Read(s.productDefinitionTemplate); err != nil {
			return nil, &errs.ParseError{Detail: "section4: product definition template", Err: err}
		}
	}

	if s.numberOfCoordinateValues > 0 {
		s.coordinateValues = make([]float32, s.numberOfCoordinateValues)
		for i := 0; i < int(s.numberOfCoordinateValues); i++ {
			if err := binary.Read(br, binary.BigEndian, &s.coordinateValues[i]); err != nil {
				return nil, &errs.ParseError{Detail: "section4: coordinate values", Err: err}
			}
		}
	}

	return &s, nil
}
