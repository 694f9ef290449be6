package spec

import (
	"fmt"
	"time"

	"github.com/scorix/grib2/grid"
	"github.com/scorix/grib2/internal/capability"
	"github.com/scorix/grib2/section"
	"github.com/scorix/grib2/template"
)

// SubmessageView is an immutable 7-slot reference bundle: the fixed sections
// 0 and 1 plus the most recent 2-7 found while walking the repeated-section
// tree. It is the atomic unit everything downstream (decode, grid) operates
// on, replacing direct field-tree walks over Message/LocalBlock/GridBlock.
type SubmessageView struct {
	indicator      section.Section0
	identification section.Section1
	localUse       section.Section2
	gridDef        section.Section3
	prodDef        section.Section4
	dataRep        section.Section5
	bitmap         section.Section6
	data           section.Section7
}

// NewSubmessageView assembles a view from the slots active at the moment a
// section 7 closes a submessage. localUse and bitmap may be nil.
func NewSubmessageView(ind section.Section0, ident section.Section1, local section.Section2, grid section.Section3, prod section.Section4, drep section.Section5, bmap section.Section6, data section.Section7) SubmessageView {
	return SubmessageView{
		indicator:      ind,
		identification: ident,
		localUse:       local,
		gridDef:        grid,
		prodDef:        prod,
		dataRep:        drep,
		bitmap:         bmap,
		data:           data,
	}
}

func (v SubmessageView) Indicator() section.Section0      { return v.indicator }
func (v SubmessageView) Identification() section.Section1 { return v.identification }
func (v SubmessageView) LocalUse() section.Section2       { return v.localUse }
func (v SubmessageView) GridDef() section.Section3        { return v.gridDef }
func (v SubmessageView) ProdDef() section.Section4        { return v.prodDef }
func (v SubmessageView) DataRepr() section.Section5       { return v.dataRep }
func (v SubmessageView) Bitmap() section.Section6         { return v.bitmap }
func (v SubmessageView) Data() section.Section7           { return v.data }

// LatLons materializes this submessage's grid-point coordinates, in the
// order its own scanning-mode flags dictate.
func (v SubmessageView) LatLons() ([]grid.Point, error) {
	if v.gridDef == nil {
		return nil, fmt.Errorf("spec: submessage view has no grid definition")
	}
	return grid.FromSection3(v.gridDef)
}

// NumEncodedPoints is the count of values the packing decoder must produce,
// i.e. the number of bits set in the bit-map (or the full grid point count
// when no bit-map is present).
func (v SubmessageView) NumEncodedPoints() int {
	if v.dataRep != nil {
		return int(v.dataRep.NumberOfDataPoints())
	}
	return 0
}

// GridShape returns the grid's (ni, nj) point counts, when the grid
// definition template carries them as an explicit rectangle.
func (v SubmessageView) GridShape() (ni, nj int, err error) {
	if v.gridDef == nil {
		return 0, 0, fmt.Errorf("spec: submessage view has no grid definition")
	}
	gt, err := template.ParseGridTemplate(v.gridDef.RawTemplate(), int(v.gridDef.GridDefinitionTemplateNumber()))
	if err != nil {
		return 0, 0, fmt.Errorf("spec: parsing grid template: %w", err)
	}
	switch {
	case gt.LatLon != nil:
		return int(gt.LatLon.NumberOfGridPointsAlongX), int(gt.LatLon.NumberOfGridPointsAlongY), nil
	case gt.PolarStereo != nil:
		return int(gt.PolarStereo.NumberOfGridPointsAlongX), int(gt.PolarStereo.NumberOfGridPointsAlongY), nil
	case gt.Lambert != nil:
		return int(gt.Lambert.NumberOfGridPointsAlongX), int(gt.Lambert.NumberOfGridPointsAlongY), nil
	case gt.Gaussian != nil:
		return int(gt.Gaussian.NumberOfGridPointsAlongX), int(gt.Gaussian.NumberOfGridPointsAlongY), nil
	default:
		return 0, 0, fmt.Errorf("spec: grid template %d has no rectangular shape", gt.TemplateNumber)
	}
}

// TemporalRawInfo is the as-encoded time fields, with no unit conversion or
// arithmetic applied: section 1's reference-time octets and section 4's
// forecast-time-range indicator/value, exactly as they appear on the wire.
type TemporalRawInfo struct {
	ReferenceTimeSignificance uint8
	Year                      uint16
	Month, Day                uint8
	Hour, Minute, Second      uint8

	IndicatorOfUnitOfTimeRange uint8
	ForecastTime               uint32
}

// TemporalRawInfo reports the encoded time fields without interpreting the
// forecast time range unit, available regardless of which capabilities this
// build was compiled with.
func (v SubmessageView) TemporalRawInfo() (TemporalRawInfo, error) {
	if v.identification == nil {
		return TemporalRawInfo{}, fmt.Errorf("spec: submessage view has no identification section")
	}
	info := TemporalRawInfo{
		ReferenceTimeSignificance: v.identification.ReferenceTimeSignificance(),
		Year:                      v.identification.Year(),
		Month:                     v.identification.Month(),
		Day:                       v.identification.Day(),
		Hour:                      v.identification.Hour(),
		Minute:                    v.identification.Minute(),
		Second:                    v.identification.Second(),
	}
	if v.prodDef == nil {
		return info, nil
	}
	pt, err := template.ParseProductTemplate(v.prodDef.RawTemplate(), uint16(v.prodDef.ProductDefinitionTemplateNumber()))
	if err != nil {
		return info, fmt.Errorf("spec: parsing product template: %w", err)
	}
	info.IndicatorOfUnitOfTimeRange = pt.IndicatorOfUnitOfTimeRange
	info.ForecastTime = pt.ForecastTime
	return info, nil
}

// TemporalInfo is the calculated reference instant and forecast offset.
type TemporalInfo struct {
	ReferenceTime  time.Time
	ForecastOffset time.Duration
}

// timeRangeUnit maps Code Table 4.4's indicator of unit of time range to a
// duration multiplier per unit. Only the common fixed-duration units are
// resolved; calendar-relative units (months, years, decades, normal, century)
// have no fixed duration and are left as an error.
func timeRangeUnit(indicator uint8) (time.Duration, error) {
	switch indicator {
	case 0: // minute
		return time.Minute, nil
	case 1: // hour
		return time.Hour, nil
	case 2: // day
		return 24 * time.Hour, nil
	case 10: // 3 hours
		return 3 * time.Hour, nil
	case 11: // 6 hours
		return 6 * time.Hour, nil
	case 12: // 12 hours
		return 12 * time.Hour, nil
	case 13: // second
		return time.Second, nil
	default:
		return 0, fmt.Errorf("spec: time range unit %d has no fixed duration", indicator)
	}
}

// TemporalInfo computes the reference instant (UTC) and forecast-offset
// duration from the raw encoded fields. Returns errs-free only when this
// build was compiled with the time-calculation capability; otherwise it
// reports the capability as disabled.
func (v SubmessageView) TemporalInfo() (TemporalInfo, error) {
	if !capability.Enabled(capability.TimeCalculation) {
		return TemporalInfo{}, fmt.Errorf("spec: time-calculation capability disabled in this build")
	}

	raw, err := v.TemporalRawInfo()
	if err != nil {
		return TemporalInfo{}, err
	}

	ref := time.Date(int(raw.Year), time.Month(raw.Month), int(raw.Day), int(raw.Hour), int(raw.Minute), int(raw.Second), 0, time.UTC)

	unit, err := timeRangeUnit(raw.IndicatorOfUnitOfTimeRange)
	if err != nil {
		return TemporalInfo{ReferenceTime: ref}, err
	}

	return TemporalInfo{
		ReferenceTime:  ref,
		ForecastOffset: time.Duration(raw.ForecastTime) * unit,
	}, nil
}
