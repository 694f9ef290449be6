package decode

import (
	"math"
	"testing"

	"github.com/scorix/grib2/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLengthLevelsWithoutExtension(t *testing.T) {
	// 4-bit symbols, MV=10: three plain level symbols, no extension digits.
	var p bitPacker
	p.push(1, 4)
	p.push(2, 4)
	p.push(3, 4)

	drt := &template.DataRepTemplate{
		TemplateNumber: 200,
		RunLength: &template.RunLengthPackingInfo{
			NumberOfBitsForLevelValues: 4,
			MaximumValueOfLevelValues:  10,
			LevelValues:                []uint8{0, 10, 20, 30},
		},
	}

	got, err := RunLength(p.bytes, drt, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(10), got[0])
	assert.Equal(t, float32(20), got[1])
	assert.Equal(t, float32(30), got[2])
}

func TestRunLengthExtensionAppliesToPrecedingRun(t *testing.T) {
	// width=4, MV=10 -> base = 2^4-1-10 = 5, extension symbols in [11,15].
	// level 2, extension digit 2 (symbol 13) extends level 2's run to
	// length 3, then level 5 closes it with a single copy of its own.
	var p bitPacker
	p.push(2, 4)
	p.push(13, 4)
	p.push(5, 4)

	drt := &template.DataRepTemplate{
		TemplateNumber: 200,
		RunLength: &template.RunLengthPackingInfo{
			NumberOfBitsForLevelValues: 4,
			MaximumValueOfLevelValues:  10,
			LevelValues:                []uint8{0, 0, 20, 0, 0, 50},
		},
	}

	got, err := RunLength(p.bytes, drt, 4)
	require.NoError(t, err)
	assert.Equal(t, []float32{20, 20, 20, 50}, got)
}

func TestRunLengthZeroLevelIsMissing(t *testing.T) {
	var p bitPacker
	p.push(0, 4)

	drt := &template.DataRepTemplate{
		TemplateNumber: 200,
		RunLength: &template.RunLengthPackingInfo{
			NumberOfBitsForLevelValues: 4,
			MaximumValueOfLevelValues:  10,
			LevelValues:                []uint8{0, 10, 20, 30},
		},
	}

	got, err := RunLength(p.bytes, drt, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, math.IsNaN(float64(got[0])))
}

func TestRunLengthAppliesDecimalScaleFactor(t *testing.T) {
	var p bitPacker
	p.push(1, 4)

	drt := &template.DataRepTemplate{
		TemplateNumber:     200,
		DecimalScaleFactor: 1,
		RunLength: &template.RunLengthPackingInfo{
			NumberOfBitsForLevelValues: 4,
			MaximumValueOfLevelValues:  10,
			LevelValues:                []uint8{0, 250},
		},
	}

	got, err := RunLength(p.bytes, drt, 1)
	require.NoError(t, err)
	assert.InDelta(t, float32(25), got[0], 1e-6)
}

func TestRunLengthRejectsNonRunLengthTemplate(t *testing.T) {
	drt := &template.DataRepTemplate{TemplateNumber: 0}
	_, err := RunLength(nil, drt, 1)
	assert.Error(t, err)
}
