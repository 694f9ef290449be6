// Package grid computes per-point latitude/longitude coordinates for the
// grid definition templates section 3 can describe, honoring the scanning
// mode flags that control iteration order.
package grid

import (
	"fmt"
	"iter"

	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/internal/capability"
	"github.com/scorix/grib2/section"
	"github.com/scorix/grib2/template"
)

// Point is a single grid coordinate in degrees.
type Point struct {
	Lat, Lon float64
}

// scanOrder decodes the three scanning-mode flags this package respects: +i/-i,
// -j/+j, and whether i or j varies fastest (the adjacent-point-consecutive bit).
// The alternate-row (boustrophedonic) flag 0x10 is not decoded: every row is
// scanned in the same i direction.
type scanOrder struct {
	iPositive bool
	jPositive bool
	iFastest  bool
}

func decodeScanningMode(mode uint8) scanOrder {
	return scanOrder{
		iPositive: mode&0x80 == 0,
		jPositive: mode&0x40 != 0,
		iFastest:  mode&0x20 == 0,
	}
}

// LatLon returns a lazy sequence of (index, Point) over a template 3.0
// equirectangular grid, in section 7's data-value order. Coordinates are
// stored in microdegrees; first/last grid point octets already carry the
// iteration bounds, so the step direction is derived from the scanning mode
// rather than the sign of the increment octets. When the order of the first
// and last latitudes contradicts the j scanning bit, the latitude step is
// re-derived from that pair instead of the declared increment.
func LatLon(g *template.LatLonGrid) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		nx := int(g.NumberOfGridPointsAlongX)
		ny := int(g.NumberOfGridPointsAlongY)
		scan := decodeScanningMode(g.ScanningMode)

		lat1 := float64(int32(g.LatitudeOfFirstGridPoint)) / 1e6
		lon1 := float64(g.LongitudeOfFirstGridPoint) / 1e6
		di := float64(g.XDirectionIncrement) / 1e6
		dj := float64(g.YDirectionIncrement) / 1e6
		if !scan.iPositive {
			di = -di
		}
		if !scan.jPositive {
			dj = -dj
		}
		lat2 := float64(int32(g.LatitudeOfLastGridPoint)) / 1e6
		if ny > 1 && lat2 != lat1 && (lat2 > lat1) != scan.jPositive {
			dj = (lat2 - lat1) / float64(ny-1)
		}

		idx := 0
		emit := func(i, j int) bool {
			p := Point{
				Lat: lat1 + dj*float64(j),
				Lon: normalizeLon(lon1 + di*float64(i)),
			}
			ok := yield(idx, p)
			idx++
			return ok
		}

		if scan.iFastest {
			for j := 0; j < ny; j++ {
				for i := 0; i < nx; i++ {
					if !emit(i, j) {
						return
					}
				}
			}
		} else {
			for i := 0; i < nx; i++ {
				for j := 0; j < ny; j++ {
					if !emit(i, j) {
						return
					}
				}
			}
		}
	}
}

func normalizeLon(lon float64) float64 {
	for lon < 0 {
		lon += 360
	}
	for lon >= 360 {
		lon -= 360
	}
	return lon
}

// Coordinates materializes LatLon's iterator into a slice for a given
// template; most callers want the lazy form, but capability-gated consumers
// (e.g. gridpoints-proj) sometimes need the whole grid at once.
func Coordinates(t *template.GridTemplate) ([]Point, error) {
	switch t.TemplateNumber {
	case 0:
		if t.LatLon == nil {
			return nil, fmt.Errorf("grid: template 0 missing LatLon fields")
		}
		n := int(t.LatLon.NumberOfGridPointsAlongX) * int(t.LatLon.NumberOfGridPointsAlongY)
		out := make([]Point, 0, n)
		for _, p := range LatLon(t.LatLon) {
			out = append(out, p)
		}
		return out, nil
	case 20:
		if !capability.Enabled(capability.GridpointsProj) {
			return nil, &errs.UnsupportedGridError{TemplateNumber: 20, Reason: "gridpoints-proj capability disabled"}
		}
		if t.PolarStereo == nil {
			return nil, fmt.Errorf("grid: template 20 missing PolarStereo fields")
		}
		return PolarStereographic(t.PolarStereo), nil
	case 30:
		if !capability.Enabled(capability.GridpointsProj) {
			return nil, &errs.UnsupportedGridError{TemplateNumber: 30, Reason: "gridpoints-proj capability disabled"}
		}
		if t.Lambert == nil {
			return nil, fmt.Errorf("grid: template 30 missing Lambert fields")
		}
		return LambertConformal(t.Lambert), nil
	case 40:
		if t.Gaussian == nil {
			return nil, fmt.Errorf("grid: template 40 missing Gaussian fields")
		}
		return Gaussian(t.Gaussian)
	default:
		return nil, &errs.UnsupportedGridError{TemplateNumber: t.TemplateNumber, Reason: "template not recognised"}
	}
}

// FromSection3 parses sec's raw template bytes and materializes its
// coordinates, the entry point SubmessageView.LatLons uses.
func FromSection3(sec section.Section3) ([]Point, error) {
	gt, err := template.ParseGridTemplate(sec.RawTemplate(), int(sec.GridDefinitionTemplateNumber()))
	if err != nil {
		return nil, fmt.Errorf("grid: parsing grid template: %w", err)
	}
	return Coordinates(gt)
}
