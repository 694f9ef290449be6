package decode

import (
	"math"
	"testing"

	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitPacker packs a sequence of (value, width) pairs MSB-first into bytes,
// padding each logical section to a byte boundary the way the complex
// packing groups do.
type bitPacker struct {
	bytes []byte
	bit   int
}

func (p *bitPacker) push(v uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		bitVal := (v >> uint(i)) & 1
		byteIdx := p.bit / 8
		for len(p.bytes) <= byteIdx {
			p.bytes = append(p.bytes, 0)
		}
		if bitVal == 1 {
			p.bytes[byteIdx] |= 1 << uint(7-(p.bit%8))
		}
		p.bit++
	}
}

func (p *bitPacker) align() {
	if p.bit%8 != 0 {
		p.bit += 8 - (p.bit % 8)
	}
}

func TestComplexUnpackNoSpatialDiff(t *testing.T) {
	// One group, width 4, two values: 3 and 7, reference 0.
	var p bitPacker
	p.push(0, 4) // group reference
	p.align()
	p.push(4, 3) // group width (NumberOfBitsUsedForGroupWidths=3) -> width 4 (ref 0 + 4)
	p.align()
	p.push(2, 3) // group length (last group length comes from TrueLengthOfLastGroup, value here ignored)
	p.align()
	p.push(3, 4)
	p.push(7, 4)
	p.align()

	drt := &template.DataRepTemplate{
		TemplateNumber:          2,
		ReferenceValue:          0,
		DecimalScaleFactor:      0,
		NumberOfBitsUsedForData: 4,
		Complex: &template.ComplexPackingInfo{
			NumberOfGroupsOfDataValues:      1,
			ReferenceForGroupWidths:         0,
			NumberOfBitsUsedForGroupWidths:  3,
			ReferenceForGroupLengths:        0,
			LengthIncrementForGroupLengths:  1,
			NumberOfBitsUsedForGroupLengths: 3,
			TrueLengthOfLastGroup:           2,
		},
	}

	got, err := Complex(p.bytes, drt, 2)
	require.NoError(t, err)
	assert.InDelta(t, float32(3), got[0], 1e-6)
	assert.InDelta(t, float32(7), got[1], 1e-6)
}

func TestComplexMissingValueAllOnesBypassedWhenWidthZero(t *testing.T) {
	var p bitPacker
	p.push(15, 4) // group reference = 15 (all ones in 4 bits), constant group
	p.align()
	p.push(0, 3) // width 0
	p.align()
	p.push(3, 3)
	p.align()

	drt := &template.DataRepTemplate{
		TemplateNumber:          2,
		ReferenceValue:          0,
		NumberOfBitsUsedForData: 4,
		Complex: &template.ComplexPackingInfo{
			NumberOfGroupsOfDataValues:      1,
			NumberOfBitsUsedForGroupWidths:  3,
			NumberOfBitsUsedForGroupLengths: 3,
			TrueLengthOfLastGroup:           3,
			MissingValueManagement:          1,
		},
	}

	got, err := Complex(p.bytes, drt, 3)
	require.NoError(t, err)
	for _, v := range got {
		assert.False(t, math.IsNaN(float64(v)))
		assert.InDelta(t, float32(15), v, 1e-6)
	}
}

func TestComplexRejectsNonComplexTemplate(t *testing.T) {
	drt := &template.DataRepTemplate{TemplateNumber: 0}
	_, err := Complex(nil, drt, 1)
	assert.Error(t, err)
}

func TestComplexRejectsNonFloatingPointOriginalType(t *testing.T) {
	drt := &template.DataRepTemplate{
		TemplateNumber:            2,
		TypeOfOriginalFieldValues: 1, // integer
		Complex:                   &template.ComplexPackingInfo{},
	}

	_, err := Complex(nil, drt, 1)
	require.Error(t, err)
	var unsupported *errs.UnsupportedEncodingError
	assert.ErrorAs(t, err, &unsupported)
}
