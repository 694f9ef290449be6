package decode

import (
	"fmt"

	"github.com/scorix/grib2/bitio"
	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/internal/capability"
	"github.com/scorix/grib2/numeric"
	"github.com/scorix/grib2/template"
)

// CCSDS unpacks a template 5.42/7.42 data field, packed with CCSDS 121.0
// Rice/Golomb coding. Samples are split into fixed-size blocks; each block
// opens with a 5-bit k selector (0..nbits, where k==nbits marks a verbatim
// block) followed by one Rice code per sample: a unary quotient (q ones
// terminated by a zero) and a k-bit remainder, reconstructing x = q<<k | rem.
func CCSDS(data []byte, drt *template.DataRepTemplate, n int) ([]float32, error) {
	if drt.CCSDS == nil {
		return nil, fmt.Errorf("decode: ccsds packing requested for template %d", drt.TemplateNumber)
	}
	if !capability.Enabled(capability.CCSDSUnpack) {
		return nil, &errs.UnsupportedTemplateError{Section: 5, TemplateNumber: int(drt.TemplateNumber)}
	}

	blockSize := int(drt.CCSDS.BlockSize)
	if blockSize <= 0 {
		blockSize = 16
	}
	nbits := int(drt.NumberOfBitsUsedForData)

	br := bitio.NewReader(data)
	x := make([]int64, 0, n)

	for len(x) < n {
		remaining := n - len(x)
		count := blockSize
		if count > remaining {
			count = remaining
		}

		k, err := br.ReadBits(5)
		if err != nil {
			return nil, fmt.Errorf("decode: ccsds block selector: %w", err)
		}

		if int(k) >= nbits {
			for i := 0; i < count; i++ {
				v, err := br.ReadBits(nbits)
				if err != nil {
					return nil, fmt.Errorf("decode: ccsds verbatim sample: %w", err)
				}
				x = append(x, int64(v))
			}
			continue
		}

		for i := 0; i < count; i++ {
			q, err := readUnary(br)
			if err != nil {
				return nil, fmt.Errorf("decode: ccsds rice quotient: %w", err)
			}
			var rem uint64
			if k > 0 {
				rem, err = br.ReadBits(int(k))
				if err != nil {
					return nil, fmt.Errorf("decode: ccsds rice remainder: %w", err)
				}
			}
			x = append(x, int64(q)<<uint(k)|int64(rem))
		}
	}

	r := float32(drt.ReferenceValue)
	e := drt.BinaryScaleFactor
	d := drt.DecimalScaleFactor
	result := make([]float32, n)
	for i, v := range x {
		result[i] = numeric.ScaledValue(r, v, e, d)
	}
	return result, nil
}

// readUnary counts consecutive one-bits up to and including the terminating
// zero, returning the count of ones (the Rice quotient).
func readUnary(br *bitio.Reader) (int, error) {
	q := 0
	for {
		bit, err := br.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			return q, nil
		}
		q++
	}
}
