package bitmap

import (
	"testing"

	"github.com/scorix/grib2/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSection6 struct {
	indicator uint8
	bits      []byte
	length    uint32
}

func (s *stubSection6) Length() uint32         { return s.length }
func (s *stubSection6) SectionNumber() uint8   { return 6 }
func (s *stubSection6) BitMapIndicator() uint8 { return s.indicator }
func (s *stubSection6) BitMap() []byte         { return s.bits }
func (s *stubSection6) HasBitMap() bool        { return s.indicator == 0 }

var _ section.Section6 = (*stubSection6)(nil)

func TestResolvedPassesThroughPresentBitmap(t *testing.T) {
	var res Resolver
	sec := &stubSection6{indicator: 0, bits: []byte{0xF0}, length: 7}

	got, err := Resolved(&res, sec)
	require.NoError(t, err)
	assert.Equal(t, sec, got)
}

func TestResolvedSubstitutesPriorBitmapOnReuse(t *testing.T) {
	var res Resolver
	first := &stubSection6{indicator: 0, bits: []byte{0xF0}, length: 7}
	_, err := Resolved(&res, first)
	require.NoError(t, err)

	reuse := &stubSection6{indicator: 254, length: 6}
	got, err := Resolved(&res, reuse)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), got.BitMapIndicator())
	assert.Equal(t, []byte{0xF0}, got.BitMap())
}

func TestResolvedErrorsOnReuseWithoutPrior(t *testing.T) {
	var res Resolver
	reuse := &stubSection6{indicator: 254, length: 6}
	_, err := Resolved(&res, reuse)
	assert.Error(t, err)
}
