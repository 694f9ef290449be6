package bitio_test

import (
	"testing"

	"github.com/scorix/grib2/bitio"
	"github.com/scorix/grib2/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBitsAcrossByteBoundary(t *testing.T) {
	// 0b10110100 0b11000000 -> read 12 bits: 1011 0100 1100 = 0xB4C
	r := bitio.NewReader([]byte{0xB4, 0xC0})
	v, err := r.ReadBits(12)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xB4C), v)
	assert.Equal(t, 12, r.BitOffset())
}

func TestReadBitsZeroDoesNotAdvance(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF})
	v, err := r.ReadBits(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
	assert.Equal(t, 0, r.BitOffset())
}

func TestReadBitsEndOfBuffer(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF})
	_, err := r.ReadBits(9)
	assert.ErrorIs(t, err, errs.ErrEndOfBuffer)
}

func TestReadSignMagnitude(t *testing.T) {
	r := bitio.NewReader([]byte{0x80, 0x05})
	v, err := r.ReadSignMagnitude(2)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), v)
}

func TestReadSignMagnitudePositiveZero(t *testing.T) {
	r := bitio.NewReader([]byte{0x80, 0x00})
	v, err := r.ReadSignMagnitude(2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestAlign(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF, 0xFF, 0xFF})
	_, err := r.ReadBits(3)
	require.NoError(t, err)
	r.Align()
	assert.Equal(t, 8, r.BitOffset())
}
