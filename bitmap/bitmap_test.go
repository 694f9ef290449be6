package bitmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMSBFirst(t *testing.T) {
	raw := []byte{0b10110000}
	assert.True(t, Bit(raw, 0))
	assert.False(t, Bit(raw, 1))
	assert.True(t, Bit(raw, 2))
	assert.True(t, Bit(raw, 3))
	assert.False(t, Bit(raw, 4))
}

func TestCountSet(t *testing.T) {
	raw := []byte{0b10110000}
	assert.Equal(t, 3, CountSet(raw, 8))
}

func TestExpandFillsMissing(t *testing.T) {
	raw := []byte{0b10100000}
	vals := []float32{1.5, 2.5}
	out, err := Expand(vals, raw, Present, 8)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), out[0])
	assert.True(t, math.IsNaN(float64(out[1])))
	assert.Equal(t, float32(2.5), out[2])
}

func TestExpandAbsentPassesThrough(t *testing.T) {
	vals := []float32{1, 2, 3}
	out, err := Expand(vals, nil, Absent, 3)
	require.NoError(t, err)
	assert.Equal(t, vals, out)
}

func TestExpandMismatchedSetBitsErrors(t *testing.T) {
	raw := []byte{0b10000000}
	_, err := Expand([]float32{1, 2}, raw, Present, 8)
	assert.Error(t, err)
}

func TestResolverReusePriorBitmap(t *testing.T) {
	var r Resolver
	raw := []byte{0xFF}
	_, ind, err := r.Resolve(Present, raw)
	require.NoError(t, err)
	assert.Equal(t, Present, ind)

	got, ind, err := r.Resolve(ReusePrior, nil)
	require.NoError(t, err)
	assert.Equal(t, Present, ind)
	assert.Equal(t, raw, got)
}

func TestResolverReuseWithoutPriorErrors(t *testing.T) {
	var r Resolver
	_, _, err := r.Resolve(ReusePrior, nil)
	assert.Error(t, err)
}
