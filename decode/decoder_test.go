package decode

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/scorix/grib2/section"
	"github.com/scorix/grib2/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSection3 struct{ numPoints uint32 }

func (s *stubSection3) Length() uint32                      { return 0 }
func (s *stubSection3) SectionNumber() uint8                { return 3 }
func (s *stubSection3) GridDefinitionSource() uint8         { return 0 }
func (s *stubSection3) NumberOfDataPoints() uint32          { return s.numPoints }
func (s *stubSection3) GridDefinitionTemplateNumber() uint8 { return 0 }
func (s *stubSection3) OptionalListOctets() uint32          { return 0 }
func (s *stubSection3) OptionalListInterpretation() uint8   { return 0 }
func (s *stubSection3) OptionalList() []uint32              { return nil }
func (s *stubSection3) RawTemplate() []byte                 { return nil }

var _ section.Section3 = (*stubSection3)(nil)

type stubSection5 struct {
	numPoints   uint32
	templateNum uint8
	rawTemplate []byte
}

func (s *stubSection5) Length() uint32                          { return 0 }
func (s *stubSection5) SectionNumber() uint8                    { return 5 }
func (s *stubSection5) NumberOfDataPoints() uint32              { return s.numPoints }
func (s *stubSection5) DataRepresentationTemplateNumber() uint8 { return s.templateNum }
func (s *stubSection5) RawTemplate() []byte                     { return s.rawTemplate }

var _ section.Section5 = (*stubSection5)(nil)

type stubSection7 struct{ data []byte }

func (s *stubSection7) Length() uint32        { return 0 }
func (s *stubSection7) SectionNumber() uint8  { return 7 }
func (s *stubSection7) Data() []byte          { return s.data }
func (s *stubSection7) DataReader() io.Reader { return bytes.NewReader(s.data) }
func (s *stubSection7) DataSize() uint32      { return uint32(len(s.data)) }
func (s *stubSection7) LoadError() error      { return nil }

var _ section.Section7 = (*stubSection7)(nil)

func buildSimpleDataRepTemplate(ref float32, binScale, decScale int16, nbits uint8) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, math.Float32bits(ref))
	binary.Write(&buf, binary.BigEndian, binScale)
	binary.Write(&buf, binary.BigEndian, decScale)
	buf.WriteByte(nbits)
	buf.WriteByte(0) // type of original field values: floating point
	return buf.Bytes()
}

func TestDecoderSimplePacking(t *testing.T) {
	var p bitPacker
	p.push(0, 8)
	p.push(10, 8)

	sec3 := &stubSection3{numPoints: 2}
	sec5 := &stubSection5{
		numPoints:   2,
		templateNum: 0,
		rawTemplate: buildSimpleDataRepTemplate(1.0, 0, 0, 8),
	}
	sec7 := &stubSection7{data: p.bytes}

	view := spec.NewSubmessageView(nil, nil, nil, sec3, nil, sec5, nil, sec7)

	dec, err := NewDecoder(view)
	require.NoError(t, err)

	values, err := dec.Values()
	require.NoError(t, err)

	var got []float32
	for v := range values {
		got = append(got, v)
	}
	require.Len(t, got, 2)
	assert.InDelta(t, 1.0, got[0], 1e-6)
	assert.InDelta(t, 11.0, got[1], 1e-6)
}
