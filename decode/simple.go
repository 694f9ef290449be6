// Package decode unpacks section 7's data values according to the packing
// template named by section 5, returning one float32 per reported data point
// (bit-map resolution and grid iteration happen in the bitmap/grid packages).
package decode

import (
	"fmt"

	"github.com/scorix/grib2/bitio"
	"github.com/scorix/grib2/numeric"
	"github.com/scorix/grib2/template"
)

// Simple unpacks a template 5.0/7.0 (grid point, simple packing) data field.
// n consecutive nbits-wide unsigned integers are read MSB-first and scaled by
// Y = (R + X·2^E) / 10^D. An nbits of 0 means every value in the field equals
// R / 10^D, the reference value with only the decimal scale applied (a
// constant field).
func Simple(data []byte, drt *template.DataRepTemplate, n int) ([]float32, error) {
	if drt.Simple == nil {
		return nil, fmt.Errorf("decode: simple packing requested for template %d", drt.TemplateNumber)
	}

	nbits := int(drt.NumberOfBitsUsedForData)
	r := float32(drt.ReferenceValue)
	e := drt.BinaryScaleFactor
	d := drt.DecimalScaleFactor

	if nbits == 0 {
		v := numeric.ScaledValue(r, 0, e, d)
		result := make([]float32, n)
		for i := range result {
			result[i] = v
		}
		return result, nil
	}

	br := bitio.NewReader(data)
	result := make([]float32, n)
	for i := 0; i < n; i++ {
		x, err := br.ReadBits(nbits)
		if err != nil {
			return nil, fmt.Errorf("decode: simple value %d: %w", i, err)
		}
		result[i] = numeric.ScaledValue(r, int64(x), e, d)
	}
	return result, nil
}
