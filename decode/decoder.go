package decode

import (
	"fmt"
	"iter"

	"github.com/scorix/grib2/bitmap"
	"github.com/scorix/grib2/spec"
	"github.com/scorix/grib2/template"
)

// Iterator is a lazy finite sequence of grid-point values, one per grid
// point (bit-map-resolved: missing positions already carry the
// numeric.MissingValue sentinel).
type Iterator = iter.Seq[float32]

// Decoder unpacks one submessage's section 7 payload into a grid-point-aligned
// value sequence, applying the packing template named by its section 5 and
// the bit-map named by its section 6.
type Decoder struct {
	view   spec.SubmessageView
	drt    *template.DataRepTemplate
	nTotal int
}

// NewDecoder parses view's data representation template and validates its
// section 3/5/7 are all present, without unpacking any values yet.
func NewDecoder(view spec.SubmessageView) (*Decoder, error) {
	drepSec := view.DataRepr()
	if drepSec == nil {
		return nil, fmt.Errorf("decode: submessage has no data representation section")
	}
	gridSec := view.GridDef()
	if gridSec == nil {
		return nil, fmt.Errorf("decode: submessage has no grid definition section")
	}
	if view.Data() == nil {
		return nil, fmt.Errorf("decode: submessage has no data section")
	}

	drt, err := template.ParseDataRepTemplate(drepSec.RawTemplate(), int(drepSec.DataRepresentationTemplateNumber()))
	if err != nil {
		return nil, fmt.Errorf("decode: parsing data representation template: %w", err)
	}

	return &Decoder{
		view:   view,
		drt:    drt,
		nTotal: int(gridSec.NumberOfDataPoints()),
	}, nil
}

// Values unpacks section 7, resolves the bit-map against it, and returns a
// lazy sequence of exactly nTotal grid-point values.
func (d *Decoder) Values() (Iterator, error) {
	n := d.view.NumEncodedPoints()

	encoded, err := Unpack(d.view.Data().Data(), d.drt, n)
	if err != nil {
		return nil, err
	}

	indicator := bitmap.Absent
	var raw []byte
	if bmSec := d.view.Bitmap(); bmSec != nil {
		indicator = bitmap.Indicator(bmSec.BitMapIndicator())
		raw = bmSec.BitMap()
	}

	resolved, err := bitmap.Expand(encoded, raw, indicator, d.nTotal)
	if err != nil {
		return nil, fmt.Errorf("decode: resolving bit-map: %w", err)
	}

	return func(yield func(float32) bool) {
		for _, v := range resolved {
			if !yield(v) {
				return
			}
		}
	}, nil
}
