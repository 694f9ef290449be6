package decode

import (
	"fmt"

	"github.com/scorix/grib2/template"
)

// Unpack dispatches section 7's raw bytes to the packing-specific decoder
// named by drt.TemplateNumber, returning n float32 values (before bit-map
// resolution). rawSection7 must already have the 5-byte section header
// stripped.
func Unpack(rawSection7 []byte, drt *template.DataRepTemplate, n int) ([]float32, error) {
	switch drt.TemplateNumber {
	case 0:
		return Simple(rawSection7, drt, n)
	case 2, 3:
		return Complex(rawSection7, drt, n)
	case 40:
		return JPEG2000(rawSection7, drt, n)
	case 41:
		return PNG(rawSection7, drt, n)
	case 42:
		return CCSDS(rawSection7, drt, n)
	case 200:
		return RunLength(rawSection7, drt, n)
	default:
		return nil, fmt.Errorf("decode: unsupported data representation template %d", drt.TemplateNumber)
	}
}
