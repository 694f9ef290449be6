package bitmap

import "github.com/scorix/grib2/section"

// resolvedSection6 wraps the bytes and indicator Resolver.Resolve settles on
// for a submessage whose own section 6 declared indicator 254 ("reuse prior
// bit-map"), so downstream code can treat every submessage's bitmap
// uniformly via the section.Section6 interface without special-casing reuse.
type resolvedSection6 struct {
	length    uint32
	indicator Indicator
	bits      []byte
}

var _ section.Section6 = (*resolvedSection6)(nil)

func (s *resolvedSection6) Length() uint32         { return s.length }
func (s *resolvedSection6) SectionNumber() uint8   { return 6 }
func (s *resolvedSection6) BitMapIndicator() uint8 { return uint8(s.indicator) }
func (s *resolvedSection6) BitMap() []byte         { return s.bits }
func (s *resolvedSection6) HasBitMap() bool        { return s.indicator == Present }

// Resolved wraps sec6 with the indicator/bytes res.Resolve() settled on,
// substituting the preceding submessage's bit-map when sec6's own indicator
// is ReusePrior.
func Resolved(res *Resolver, sec6 section.Section6) (section.Section6, error) {
	indicator := Indicator(sec6.BitMapIndicator())
	raw := sec6.BitMap()
	if indicator == ReusePrior {
		raw = nil
	}

	bits, effective, err := res.Resolve(indicator, raw)
	if err != nil {
		return nil, err
	}

	if indicator != ReusePrior {
		return sec6, nil
	}

	return &resolvedSection6{length: sec6.Length(), indicator: effective, bits: bits}, nil
}
