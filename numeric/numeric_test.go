package numeric_test

import (
	"math"
	"testing"

	"github.com/scorix/grib2/numeric"
	"github.com/stretchr/testify/assert"
)

func TestGribSignedPositive(t *testing.T) {
	assert.Equal(t, int64(5), numeric.GribSigned(0b0101, 4))
}

func TestGribSignedNegative(t *testing.T) {
	assert.Equal(t, int64(-5), numeric.GribSigned(0b1101, 4))
}

func TestGribSignedNegativeZero(t *testing.T) {
	assert.Equal(t, int64(0), numeric.GribSigned(0b1000, 4))
}

func TestMissingValueBitPattern(t *testing.T) {
	assert.Equal(t, numeric.NaN32Bits, math.Float32bits(numeric.MissingValue()))
	assert.True(t, math.IsNaN(float64(numeric.MissingValue())))
}

func TestScaledValueSimple(t *testing.T) {
	// S4 scenario: nbits=0 -> X=0, R=273.15, D=2, E=0 -> 2.7315
	v := numeric.ScaledValue(273.15, 0, 0, 2)
	assert.InDelta(t, 2.7315, float64(v), 1e-4)
}

func TestScaledValueNegativeDecimalScale(t *testing.T) {
	v := numeric.ScaledValue(0, 12, 0, -1)
	assert.InDelta(t, 120.0, float64(v), 1e-4)
}
