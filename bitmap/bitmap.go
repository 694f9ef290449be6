// Package bitmap resolves section 6's bit-map against a sequence of unpacked
// data values, substituting the canonical missing-value sentinel for grid
// points the bit-map marks absent.
package bitmap

import (
	"fmt"

	"github.com/scorix/grib2/numeric"
)

// Indicator mirrors section 6's bit-map indicator octet.
type Indicator uint8

const (
	Present    Indicator = 0
	ReusePrior Indicator = 254
	Absent     Indicator = 255
)

// Bit reports whether grid point i is present in an MSB-first bit-map: bit 7
// of byte 0 is point 0, bit 6 of byte 0 is point 1, and so on.
func Bit(raw []byte, i int) bool {
	byteIdx := i / 8
	if byteIdx >= len(raw) {
		return false
	}
	return (raw[byteIdx]>>uint(7-(i%8)))&1 == 1
}

// CountSet counts set bits across the first totalPoints positions.
func CountSet(raw []byte, totalPoints int) int {
	n := 0
	for i := 0; i < totalPoints; i++ {
		if Bit(raw, i) {
			n++
		}
	}
	return n
}

// Expand maps packed values (one per set bit-map bit) onto a full
// totalPoints-length grid, filling absent positions with numeric.MissingValue().
// raw is nil for Indicator == Absent, in which case every point is present.
func Expand(vals []float32, raw []byte, indicator Indicator, totalPoints int) ([]float32, error) {
	if indicator == Absent {
		if len(vals) != totalPoints {
			return nil, fmt.Errorf("bitmap: no bit-map but %d values for %d points", len(vals), totalPoints)
		}
		return vals, nil
	}

	setBits := CountSet(raw, totalPoints)
	if setBits != len(vals) {
		return nil, fmt.Errorf("bitmap: %d set bits but %d packed values", setBits, len(vals))
	}

	result := make([]float32, totalPoints)
	missing := numeric.MissingValue()
	vi := 0
	for i := 0; i < totalPoints; i++ {
		if Bit(raw, i) {
			result[i] = vals[vi]
			vi++
		} else {
			result[i] = missing
		}
	}
	return result, nil
}

// Resolver tracks the last materialized bit-map seen while scanning a
// message's submessages, resolving indicator 254 ("use the bit-map from the
// preceding submessage") the way the repeated-section rule requires: section
// 6 itself only reports its own indicator, the scanner owns reuse state.
type Resolver struct {
	last    []byte
	lastInd Indicator
	hasLast bool
}

// Resolve returns the bit-map bytes and effective indicator to apply for a
// submessage whose own section 6 reports indicator/raw. When indicator is
// ReusePrior and no prior bit-map was seen, Resolve returns an error.
func (r *Resolver) Resolve(indicator Indicator, raw []byte) ([]byte, Indicator, error) {
	switch indicator {
	case Present:
		r.last = raw
		r.lastInd = Present
		r.hasLast = true
		return raw, Present, nil
	case ReusePrior:
		if !r.hasLast {
			return nil, 0, fmt.Errorf("bitmap: indicator 254 with no prior bit-map in this message")
		}
		return r.last, r.lastInd, nil
	case Absent:
		r.last = nil
		r.lastInd = Absent
		r.hasLast = true
		return nil, Absent, nil
	default:
		return nil, 0, fmt.Errorf("bitmap: unsupported indicator %d", indicator)
	}
}
