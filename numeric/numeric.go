// Package numeric provides GRIB2's numeric primitives: sign-magnitude integers,
// IEEE-754 reference values, and the scaled-value reconstruction formula shared by
// every packing template.
package numeric

import "math"

// GribSigned interprets a raw n-bit field as GRIB2's sign-magnitude convention: the
// high bit is a sign flag, the remaining n-1 bits the magnitude. Zero magnitude with
// the sign bit set is ordinary zero, not a sentinel.
func GribSigned(raw uint64, nbits int) int64 {
	if nbits <= 0 {
		return 0
	}
	signBit := uint64(1) << uint(nbits-1)
	magnitude := int64(raw &^ signBit)
	if raw&signBit != 0 {
		return -magnitude
	}
	return magnitude
}

// Float32FromBits reinterprets a big-endian-decoded 32-bit pattern as an IEEE 754
// single-precision float, as used for the §5 reference value R.
func Float32FromBits(bits uint32) float32 {
	return math.Float32frombits(bits)
}

// NaN32Bits is the documented missing-value sentinel this module emits: a quiet NaN
// with bit pattern 0x7FC00000, not the platform-default NaN payload and not a
// legacy tool's alternate bit pattern (e.g. 0x6258D19A).
const NaN32Bits uint32 = 0x7FC00000

// MissingValue returns the canonical IEEE 754 quiet NaN this module uses to mark
// absent grid points.
func MissingValue() float32 {
	return math.Float32frombits(NaN32Bits)
}

// ScaledValue reconstructs the physical value Y = (R + X·2^E) / 10^D from an
// unpacked integer X, binary scale factor E and decimal scale factor D.
func ScaledValue(r float32, x int64, e, d int16) float32 {
	value := float64(r) + float64(x)*math.Pow(2, float64(e))
	if d != 0 {
		value /= math.Pow(10, float64(d))
	}
	return float32(value)
}
