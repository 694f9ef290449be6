// Package bitio provides MSB-first bit-level reading over a byte buffer, the
// primitive every GRIB2 packing template builds its group/value layout on top of.
package bitio

import (
	"github.com/scorix/grib2/errs"
)

// Reader reads big-endian, MSB-first bit fields from a byte slice. Within a byte,
// bit 0 is the high bit (0x80).
type Reader struct {
	data   []byte
	bitPos int // absolute bit offset from the start of data
}

// NewReader wraps data for bit-level reading starting at bit 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// BitOffset returns the current absolute bit position.
func (r *Reader) BitOffset() int { return r.bitPos }

// BitsRemaining returns the number of unread bits.
func (r *Reader) BitsRemaining() int { return len(r.data)*8 - r.bitPos }

// Align advances to the next byte boundary, a no-op if already aligned.
func (r *Reader) Align() {
	if rem := r.bitPos % 8; rem != 0 {
		r.bitPos += 8 - rem
	}
}

// ReadBits reads n bits (0..64) as an unsigned integer, MSB-first. n==0 returns 0
// without consuming any bits or advancing the cursor — several templates rely on
// this to mean "every value in this group equals the reference value".
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 || n > 64 {
		return 0, &errs.DecodeError{Detail: "ReadBits: n out of range [0,64]"}
	}
	if r.bitPos+n > len(r.data)*8 {
		return 0, errs.ErrEndOfBuffer
	}

	var result uint64
	remaining := n
	for remaining > 0 {
		byteIdx := r.bitPos / 8
		bitOff := r.bitPos % 8
		bitsLeftInByte := 8 - bitOff
		take := remaining
		if take > bitsLeftInByte {
			take = bitsLeftInByte
		}
		shift := bitsLeftInByte - take
		mask := byte((1 << take) - 1)
		chunk := (r.data[byteIdx] >> shift) & mask

		result = (result << take) | uint64(chunk)
		r.bitPos += take
		remaining -= take
	}
	return result, nil
}

// ReadUint reads n octets, byte-aligned, as a big-endian unsigned integer. The
// reader must already be byte-aligned; n must be in [1,8].
func (r *Reader) ReadUint(n int) (uint64, error) {
	if n < 1 || n > 8 {
		return 0, &errs.DecodeError{Detail: "ReadUint: n out of range [1,8]"}
	}
	if r.bitPos%8 != 0 {
		return 0, &errs.DecodeError{Detail: "ReadUint called on non-byte-aligned cursor"}
	}
	return r.ReadBits(n * 8)
}

// ReadSignMagnitude reads n octets, byte-aligned, as a sign-magnitude signed
// integer: the high bit of the first octet is the sign flag, not a two's-complement
// bit. Zero magnitude with the sign bit set is still zero, not a special sentinel.
func (r *Reader) ReadSignMagnitude(n int) (int64, error) {
	val, err := r.ReadUint(n)
	if err != nil {
		return 0, err
	}
	signBit := uint64(1) << uint(n*8-1)
	magnitude := val &^ signBit
	if val&signBit != 0 {
		return -int64(magnitude), nil
	}
	return int64(magnitude), nil
}
