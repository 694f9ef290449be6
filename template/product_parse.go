package template

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// commonProductFields are the first 25 octets shared by every supported
// product definition template: parameter identity, generating process,
// cutoff, forecast time and the two fixed surface descriptions.
func readCommonProductFields(br *bytes.Reader, t *ProductTemplate) error {
	return errors.Join(
		binary.Read(br, binary.BigEndian, &t.Category),
		binary.Read(br, binary.BigEndian, &t.Parameter),
		binary.Read(br, binary.BigEndian, &t.TypeOfGeneratingProcess),
		binary.Read(br, binary.BigEndian, &t.BackgroundProcess),
		binary.Read(br, binary.BigEndian, &t.GeneratingProcessIdentifier),
		binary.Read(br, binary.BigEndian, &t.HoursAfterDataCutoff),
		binary.Read(br, binary.BigEndian, &t.MinutesAfterDataCutoff),
		binary.Read(br, binary.BigEndian, &t.IndicatorOfUnitOfTimeRange),
		binary.Read(br, binary.BigEndian, &t.ForecastTime),
		binary.Read(br, binary.BigEndian, &t.TypeOfFirstFixedSurface),
		binary.Read(br, binary.BigEndian, &t.ScaleFactorOfFirstFixedSurface),
		binary.Read(br, binary.BigEndian, &t.ScaledValueOfFirstFixedSurface),
		binary.Read(br, binary.BigEndian, &t.TypeOfSecondFixedSurface),
		binary.Read(br, binary.BigEndian, &t.ScaleFactorOfSecondFixedSurface),
		binary.Read(br, binary.BigEndian, &t.ScaledValueOfSecondFixedSurface),
	)
}

// ParseProductTemplate decodes section 4's raw template bytes (as returned by
// section.Section4.RawTemplate) into a ProductTemplate for the given template
// number. Templates 0 (deterministic forecast), 1 (ensemble member) and 8
// (time-range statistics) are supported; every other template number
// populates only the common fields and returns an error, since a caller that
// needs the template-specific fields must know which ones apply.
func ParseProductTemplate(raw []byte, templateNumber uint16) (*ProductTemplate, error) {
	br := bytes.NewReader(raw)

	t := &ProductTemplate{TemplateNumber: templateNumber}
	if err := readCommonProductFields(br, t); err != nil {
		return nil, fmt.Errorf("template: product common fields: %w", err)
	}

	switch templateNumber {
	case 0:
		return t, nil
	case 1:
		ens, err := parseEnsembleInfo(br)
		if err != nil {
			return nil, err
		}
		t.Ensemble = ens
		return t, nil
	case 8:
		tr, err := parseTimeRangeInfo(br)
		if err != nil {
			return nil, err
		}
		t.TimeRange = tr
		return t, nil
	default:
		return t, fmt.Errorf("template: unsupported product definition template %d", templateNumber)
	}
}

func parseEnsembleInfo(br *bytes.Reader) (*EnsembleInfo, error) {
	info := &EnsembleInfo{}
	err := errors.Join(
		binary.Read(br, binary.BigEndian, &info.TypeOfEnsembleForecast),
		binary.Read(br, binary.BigEndian, &info.PerturbationNumber),
		binary.Read(br, binary.BigEndian, &info.NumberOfForecastsInEnsemble),
	)
	if err != nil {
		return nil, fmt.Errorf("template: ensemble fields: %w", err)
	}
	return info, nil
}

func parseTimeRangeInfo(br *bytes.Reader) (*TimeRangeInfo, error) {
	info := &TimeRangeInfo{}
	err := errors.Join(
		binary.Read(br, binary.BigEndian, &info.TypeOfTimeIncrement),
		binary.Read(br, binary.BigEndian, &info.IndicatorOfUnitForTimeRange),
		binary.Read(br, binary.BigEndian, &info.LengthOfTimeRange),
		binary.Read(br, binary.BigEndian, &info.IndicatorOfUnitForTimeIncrement),
		binary.Read(br, binary.BigEndian, &info.TimeIncrement),
	)
	if err != nil {
		return nil, fmt.Errorf("template: time range fields: %w", err)
	}
	return info, nil
}
