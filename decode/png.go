package decode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/pkg/errors"

	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/internal/capability"
	"github.com/scorix/grib2/numeric"
	"github.com/scorix/grib2/template"
)

// PNG unpacks a template 5.41/7.41 data field. Section 7 carries a standard
// PNG stream encoding the packed nbits-wide integers as either an 8-bit or
// 16-bit grayscale image (one pixel per data point); the usual Y = (R +
// X·2^E) / 10^D scaling is then applied exactly as in simple packing.
func PNG(data []byte, drt *template.DataRepTemplate, n int) ([]float32, error) {
	if drt.PNG == nil {
		return nil, fmt.Errorf("decode: png packing requested for template %d", drt.TemplateNumber)
	}
	if !capability.Enabled(capability.PNGUnpack) {
		return nil, &errs.UnsupportedTemplateError{Section: 5, TemplateNumber: int(drt.TemplateNumber)}
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode: png stream")
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

// grayscaleSamples extracts n row-major grayscale sample values from img,
// supporting both 8-bit and 16-bit PNG grayscale encodings.
func grayscaleSamples(img image.Image, n int) ([]int64, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width*height != n {
		return nil, fmt.Errorf("decode: png image has %d pixels, expected %d", width*height, n)
	}

	samples := make([]int64, 0, n)
	switch g := img.(type) {
	case *image.Gray:
		for _, v := range g.Pix {
			samples = append(samples, int64(v))
		}
	case *image.Gray16:
		for i := 0; i+1 < len(g.Pix); i += 2 {
			v := uint16(g.Pix[i])<<8 | uint16(g.Pix[i+1])
			samples = append(samples, int64(v))
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				gr, _, _, _ := img.At(x, y).RGBA()
				samples = append(samples, int64(gr>>8))
			}
		}
	}
	return samples, nil
}
