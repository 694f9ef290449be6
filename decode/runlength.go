package decode

import (
	"fmt"
	"math"

	"github.com/scorix/grib2/bitio"
	"github.com/scorix/grib2/template"
)

// RunLength unpacks a template 5.200/7.200 data field. Section 7 carries a
// sequence of V-bit symbols (V = NumberOfBitsForLevelValues): a symbol s <=
// MV (MaximumValueOfLevelValues) starts a new run at level s; symbols s > MV
// are digits of that run's length extension, in a base-(2^V-1-MV) positional
// system, least-significant digit first, collected until the next s <= MV
// symbol closes the run and starts the following one.
func RunLength(data []byte, drt *template.DataRepTemplate, n int) ([]float32, error) {
	if drt.RunLength == nil {
		return nil, fmt.Errorf("decode: run-length packing requested for template %d", drt.TemplateNumber)
	}
	rl := drt.RunLength

	width := int(rl.NumberOfBitsForLevelValues)
	if width <= 0 {
		return nil, fmt.Errorf("decode: run-length has zero-width level values")
	}
	maxLevel := int64(rl.MaximumValueOfLevelValues)
	base := (int64(1) << uint(width)) - 1 - maxLevel
	if base <= 0 {
		return nil, fmt.Errorf("decode: run-length has non-positive extension base")
	}

	br := bitio.NewReader(data)
	result := make([]float32, 0, n)

	var haveRun bool
	var level int64
	var runLength int64
	var multiplier int64

	flush := func() {
		if !haveRun {
			return
		}
		value := levelValue(rl, int(level), drt.DecimalScaleFactor)
		for i := int64(0); i < runLength && len(result) < n; i++ {
			result = append(result, value)
		}
	}

	for len(result) < n {
		v, err := br.ReadBits(width)
		if err != nil {
			return nil, fmt.Errorf("decode: run-length value: %w", err)
		}
		s := int64(v)

		if s <= maxLevel {
			flush()
			haveRun = true
			level = s
			runLength = 1
			multiplier = 1
			continue
		}

		if !haveRun {
			return nil, fmt.Errorf("decode: run-length extension digit precedes any level symbol")
		}
		digit := s - maxLevel - 1
		runLength += digit * multiplier
		multiplier *= base
	}
	flush()

	if len(result) > n {
		result = result[:n]
	}
	return result, nil
}

// levelValue resolves level index s to its physical value L[s] / 10^D, per
// §4.H.6. s == 0 is reserved to mean "missing".
func levelValue(rl *template.RunLengthPackingInfo, level int, decimalScale int16) float32 {
	if level == 0 {
		return float32(math.NaN())
	}
	if level < 0 || level >= len(rl.LevelValues) {
		return float32(math.NaN())
	}
	return float32(float64(rl.LevelValues[level]) / math.Pow(10, float64(decimalScale)))
}
