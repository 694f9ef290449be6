package decode

import (
	"bytes"
	"fmt"

	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"
	"github.com/pkg/errors"

	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/internal/capability"
	"github.com/scorix/grib2/numeric"
	"github.com/scorix/grib2/template"
)

// JPEG2000 unpacks a template 5.40/7.40 data field. Section 7 carries a raw
// JPEG 2000 codestream (one component, one tile) encoding the packed
// nbits-wide integers; the usual Y = (R + X·2^E) / 10^D scaling is applied
// to the decoded grayscale samples exactly as in simple packing. An nbits of
// 0 skips the codec: every value equals R / 10^D.
func JPEG2000(data []byte, drt *template.DataRepTemplate, n int) ([]float32, error) {
	if drt.JPEG2000 == nil {
		return nil, fmt.Errorf("decode: jpeg2000 packing requested for template %d", drt.TemplateNumber)
	}
	if !capability.Enabled(capability.JPEG2000Unpack) {
		return nil, &errs.UnsupportedTemplateError{Section: 5, TemplateNumber: int(drt.TemplateNumber)}
	}
	if drt.NumberOfBitsUsedForData == 0 {
		v := numeric.ScaledValue(float32(drt.ReferenceValue), 0, drt.BinaryScaleFactor, drt.DecimalScaleFactor)
		result := make([]float32, n)
		for i := range result {
			result[i] = v
		}
		return result, nil
	}

	img, err := jpeg2000.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode: jpeg2000 stream")
	}

	raw, err := grayscaleSamples(img, n)
	if err != nil {
		return nil, err
	}

	r := float32(drt.ReferenceValue)
	e := drt.BinaryScaleFactor
	d := drt.DecimalScaleFactor
	result := make([]float32, n)
	for i, x := range raw {
		result[i] = numeric.ScaledValue(r, x, e, d)
	}
	return result, nil
}
