package decode

import (
	"testing"

	"github.com/scorix/grib2/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCCSDSVerbatimBlock(t *testing.T) {
	var p bitPacker
	p.push(8, 5) // k == nbits (8) marks a verbatim block
	p.push(200, 8)
	p.push(1, 8)

	drt := &template.DataRepTemplate{
		TemplateNumber:          42,
		NumberOfBitsUsedForData: 8,
		ReferenceValue:          0,
		CCSDS: &template.CCSDSPackingInfo{
			BlockSize: 2,
		},
	}

	got, err := CCSDS(p.bytes, drt, 2)
	require.NoError(t, err)
	assert.InDelta(t, float32(200), got[0], 1e-6)
	assert.InDelta(t, float32(1), got[1], 1e-6)
}

func TestCCSDSRiceCoded(t *testing.T) {
	var p bitPacker
	p.push(2, 5) // k=2
	// value 5 = q=1 (5>>2), rem=1 (5&3)
	p.push(0b10, 2) // unary quotient: one '1' then '0'
	p.push(1, 2)    // remainder
	// value 1 = q=0, rem=1
	p.push(0, 1)
	p.push(1, 2)

	drt := &template.DataRepTemplate{
		TemplateNumber:          42,
		NumberOfBitsUsedForData: 8,
		ReferenceValue:          0,
		CCSDS: &template.CCSDSPackingInfo{
			BlockSize: 2,
		},
	}

	got, err := CCSDS(p.bytes, drt, 2)
	require.NoError(t, err)
	assert.InDelta(t, float32(5), got[0], 1e-6)
	assert.InDelta(t, float32(1), got[1], 1e-6)
}
