package decode

import (
	"fmt"

	"github.com/scorix/grib2/bitio"
	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/numeric"
	"github.com/scorix/grib2/tables"
	"github.com/scorix/grib2/template"
)

// Complex unpacks a template 5.2/7.2 or 5.3/7.3 (complex packing, optionally
// with spatial differencing) data field. Groups are decoded in the order the
// WMO template lays them out: group reference values, then group widths,
// then group lengths, then the grouped data itself, each list ending on a
// byte boundary. Spatial differencing (order 1 or 2) is reversed after
// missing-value substitution, per the template's extra descriptor octets.
func Complex(data []byte, drt *template.DataRepTemplate, n int) ([]float32, error) {
	if drt.Complex == nil {
		return nil, fmt.Errorf("decode: complex packing requested for template %d", drt.TemplateNumber)
	}
	if !tables.IsFloatingPoint(int(drt.TypeOfOriginalFieldValues)) {
		return nil, &errs.UnsupportedEncodingError{
			Detail: fmt.Sprintf("complex packing requires floating-point original field values, got type %d", drt.TypeOfOriginalFieldValues),
		}
	}
	c := drt.Complex

	br := bitio.NewReader(data)

	order := 0
	var initVals []int64
	var yMin int64
	if c.OrderOfSpatialDifferencing != nil {
		order = int(*c.OrderOfSpatialDifferencing)
		if order < 1 || order > 2 {
			return nil, fmt.Errorf("decode: unsupported spatial differencing order %d", order)
		}
		octets := 0
		if c.NumberOfOctetsExtraDescriptors != nil {
			octets = int(*c.NumberOfOctetsExtraDescriptors)
		}
		if octets < 1 {
			return nil, fmt.Errorf("decode: spatial differencing requires extra descriptor octets")
		}
		initVals = make([]int64, order)
		for i := 0; i < order; i++ {
			v, err := br.ReadSignMagnitude(octets)
			if err != nil {
				return nil, fmt.Errorf("decode: spatial diff initial value %d: %w", i, err)
			}
			initVals[i] = v
		}
		v, err := br.ReadSignMagnitude(octets)
		if err != nil {
			return nil, fmt.Errorf("decode: spatial diff minimum: %w", err)
		}
		yMin = v
	}

	ng := int(c.NumberOfGroupsOfDataValues)
	if ng == 0 {
		return make([]float32, n), nil
	}

	nbits := int(drt.NumberOfBitsUsedForData)
	grefs := make([]int64, ng)
	for i := 0; i < ng; i++ {
		v, err := br.ReadBits(nbits)
		if err != nil {
			return nil, fmt.Errorf("decode: group reference %d: %w", i, err)
		}
		grefs[i] = int64(v)
	}
	br.Align()

	widths := make([]int, ng)
	for i := 0; i < ng; i++ {
		v, err := br.ReadBits(int(c.NumberOfBitsUsedForGroupWidths))
		if err != nil {
			return nil, fmt.Errorf("decode: group width %d: %w", i, err)
		}
		widths[i] = int(c.ReferenceForGroupWidths) + int(v)
	}
	br.Align()

	lengths := make([]int, ng)
	for i := 0; i < ng-1; i++ {
		v, err := br.ReadBits(int(c.NumberOfBitsUsedForGroupLengths))
		if err != nil {
			return nil, fmt.Errorf("decode: group length %d: %w", i, err)
		}
		lengths[i] = int(v)*int(c.LengthIncrementForGroupLengths) + int(c.ReferenceForGroupLengths)
	}
	if ng > 0 {
		if _, err := br.ReadBits(int(c.NumberOfBitsUsedForGroupLengths)); err != nil {
			return nil, fmt.Errorf("decode: group length (last): %w", err)
		}
		lengths[ng-1] = int(c.TrueLengthOfLastGroup)
	}
	br.Align()

	total := 0
	for _, l := range lengths {
		if l < 0 {
			return nil, fmt.Errorf("decode: negative group length %d", l)
		}
		total += l
	}
	if total != n {
		return nil, &errs.ParseError{Detail: fmt.Sprintf("decode: group lengths sum to %d, expected %d data points", total, n)}
	}

	missingMgmt := c.MissingValueManagement

	x := make([]int64, total)
	isMissing := make([]bool, total)
	idx := 0
	for g := 0; g < ng; g++ {
		w := widths[g]
		l := lengths[g]
		gref := grefs[g]
		for k := 0; k < l; k++ {
			if w == 0 {
				// constant group; W[g]=0 groups always bypass missing-value substitution
				x[idx] = gref
				idx++
				continue
			}
			v, err := br.ReadBits(w)
			if err != nil {
				return nil, fmt.Errorf("decode: group %d value %d: %w", g, k, err)
			}
			allOnes := uint64(1)<<uint(w) - 1
			switch {
			case missingMgmt == 1 && v == allOnes:
				isMissing[idx] = true
			case missingMgmt == 2 && v == allOnes:
				isMissing[idx] = true
			case missingMgmt == 2 && v == allOnes-1:
				isMissing[idx] = true
			default:
				x[idx] = gref + int64(v)
			}
			idx++
		}
	}
	br.Align()
	if rem := br.BitsRemaining(); rem != 0 {
		return nil, &errs.ParseError{Detail: fmt.Sprintf("decode: %d unused bits after the last complex packing group", rem)}
	}

	if order > 0 {
		for i := range x {
			x[i] += yMin
		}
		switch order {
		case 1:
			if total > 0 {
				x[0] = initVals[0]
			}
			for i := 1; i < total; i++ {
				if !isMissing[i] {
					x[i] += x[i-1]
				}
			}
		case 2:
			if total > 0 {
				x[0] = initVals[0]
			}
			if total > 1 {
				x[1] = initVals[1]
			}
			for i := 2; i < total; i++ {
				if !isMissing[i] {
					x[i] += 2*x[i-1] - x[i-2]
				}
			}
		}
	}

	r := float32(drt.ReferenceValue)
	e := drt.BinaryScaleFactor
	d := drt.DecimalScaleFactor
	result := make([]float32, total)
	for i := range result {
		if isMissing[i] {
			result[i] = numeric.MissingValue()
			continue
		}
		result[i] = numeric.ScaledValue(r, x[i], e, d)
	}
	return result, nil
}
