package section

import (
	"encoding/binary"
	"io"

	"github.com/scorix/grib2/errs"
)

// sectionBase carries the two fields every GRIB2 section exposes through the
// Section interface. Every concrete section type embeds it instead of
// redeclaring Length/SectionNumber, so the base-interface surface lives in
// exactly one place.
type sectionBase struct {
	length        uint32
	sectionNumber uint8
}

func (b sectionBase) Length() uint32       { return b.length }
func (b sectionBase) SectionNumber() uint8 { return b.sectionNumber }

// readLengthPrefixedSection reads a section whose first 4 octets give its
// total length (sections 1 to 6): it reads the prefix, then reads
// exactly that many octets total, returning the full section including the
// prefix for the caller's NewSectionNFromBytes to re-parse.
func readLengthPrefixedSection(reader io.Reader) ([]byte, error) {
	lengthBytes := make([]byte, 4)
	if _, err := io.ReadFull(reader, lengthBytes); err != nil {
		return nil, &errs.ParseError{Detail: "section length prefix", Err: err}
	}
	length := binary.BigEndian.Uint32(lengthBytes)
	if length < 4 {
		return nil, &errs.ParseError{Detail: "section length shorter than its own prefix"}
	}

	data := make([]byte, length)
	copy(data[:4], lengthBytes)
	if _, err := io.ReadFull(reader, data[4:]); err != nil {
		return nil, &errs.ParseError{Detail: "section body", Err: err}
	}
	return data, nil
}

// readFixedSection reads a section with no length field of its own (sections
// 0 and 8), which are always exactly size octets long.
func readFixedSection(reader io.Reader, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, &errs.ParseError{Detail: "fixed-size section body", Err: err}
	}
	return data, nil
}
