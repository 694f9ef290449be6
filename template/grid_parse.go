package template

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

func readEarthShapeFields(br *bytes.Reader) (EarthShapeFields, error) {
	var f EarthShapeFields
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &f.ShapeOfEarth))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &f.ScaleFactorRadiusEarth))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &f.ScaledValueRadiusEarth))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &f.ScaleFactorMajorAxis))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &f.ScaledValueMajorAxis))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &f.ScaleFactorMinorAxis))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &f.ScaledValueMinorAxis))
	return f, err
}

// ParseGridTemplate decodes section 3's raw template bytes (as returned by
// section.Section3.RawTemplate) into a GridTemplate for the given template
// number.
func ParseGridTemplate(raw []byte, templateNumber int) (*GridTemplate, error) {
	br := bytes.NewReader(raw)

	t := &GridTemplate{TemplateNumber: templateNumber}

	switch templateNumber {
	case 0:
		g, err := parseLatLonGrid(br)
		if err != nil {
			return nil, err
		}
		t.LatLon = g
	case 20:
		g, err := parsePolarStereoGrid(br)
		if err != nil {
			return nil, err
		}
		t.PolarStereo = g
	case 30:
		g, err := parseLambertGrid(br)
		if err != nil {
			return nil, err
		}
		t.Lambert = g
	case 40:
		g, err := parseGaussianGrid(br)
		if err != nil {
			return nil, err
		}
		t.Gaussian = g
	default:
		return nil, fmt.Errorf("template: unsupported grid definition template %d", templateNumber)
	}

	return t, nil
}

func parseLatLonGrid(br *bytes.Reader) (*LatLonGrid, error) {
	earth, err := readEarthShapeFields(br)
	if err != nil {
		return nil, fmt.Errorf("template: lat/lon earth shape: %w", err)
	}

	g := &LatLonGrid{EarthShapeFields: earth}

	err = errors.Join(
		binary.Read(br, binary.BigEndian, &g.NumberOfGridPointsAlongX),
		binary.Read(br, binary.BigEndian, &g.NumberOfGridPointsAlongY),
		binary.Read(br, binary.BigEndian, &g.BasicAngleOfInitialDomain),
		binary.Read(br, binary.BigEndian, &g.SubdivisionOfBasicAngle),
		binary.Read(br, binary.BigEndian, &g.LatitudeOfFirstGridPoint),
		binary.Read(br, binary.BigEndian, &g.LongitudeOfFirstGridPoint),
		binary.Read(br, binary.BigEndian, &g.ResolutionAndComponentFlag),
		binary.Read(br, binary.BigEndian, &g.LatitudeOfLastGridPoint),
		binary.Read(br, binary.BigEndian, &g.LongitudeOfLastGridPoint),
		binary.Read(br, binary.BigEndian, &g.XDirectionIncrement),
		binary.Read(br, binary.BigEndian, &g.YDirectionIncrement),
		binary.Read(br, binary.BigEndian, &g.ScanningMode),
	)
	if err != nil {
		return nil, fmt.Errorf("template: lat/lon grid fields: %w", err)
	}

	return g, nil
}

func parsePolarStereoGrid(br *bytes.Reader) (*PolarStereoGrid, error) {
	earth, err := readEarthShapeFields(br)
	if err != nil {
		return nil, fmt.Errorf("template: polar stereographic earth shape: %w", err)
	}

	g := &PolarStereoGrid{EarthShapeFields: earth}

	err = errors.Join(
		binary.Read(br, binary.BigEndian, &g.NumberOfGridPointsAlongX),
		binary.Read(br, binary.BigEndian, &g.NumberOfGridPointsAlongY),
		binary.Read(br, binary.BigEndian, &g.LatitudeOfFirstGridPoint),
		binary.Read(br, binary.BigEndian, &g.LongitudeOfFirstGridPoint),
		binary.Read(br, binary.BigEndian, &g.ResolutionAndComponentFlag),
		binary.Read(br, binary.BigEndian, &g.OrientationOfGrid),
		binary.Read(br, binary.BigEndian, &g.XDirectionIncrement),
		binary.Read(br, binary.BigEndian, &g.YDirectionIncrement),
		binary.Read(br, binary.BigEndian, &g.ProjectionCenterFlag),
		binary.Read(br, binary.BigEndian, &g.ScanningMode),
	)
	if err != nil {
		return nil, fmt.Errorf("template: polar stereographic grid fields: %w", err)
	}

	return g, nil
}

func parseLambertGrid(br *bytes.Reader) (*LambertGrid, error) {
	earth, err := readEarthShapeFields(br)
	if err != nil {
		return nil, fmt.Errorf("template: lambert conformal earth shape: %w", err)
	}

	g := &LambertGrid{EarthShapeFields: earth}

	err = errors.Join(
		binary.Read(br, binary.BigEndian, &g.NumberOfGridPointsAlongX),
		binary.Read(br, binary.BigEndian, &g.NumberOfGridPointsAlongY),
		binary.Read(br, binary.BigEndian, &g.LatitudeOfFirstGridPoint),
		binary.Read(br, binary.BigEndian, &g.LongitudeOfFirstGridPoint),
		binary.Read(br, binary.BigEndian, &g.ResolutionAndComponentFlag),
		binary.Read(br, binary.BigEndian, &g.OrientationOfGrid),
		binary.Read(br, binary.BigEndian, &g.XDirectionIncrement),
		binary.Read(br, binary.BigEndian, &g.YDirectionIncrement),
		binary.Read(br, binary.BigEndian, &g.ProjectionCenterFlag),
		binary.Read(br, binary.BigEndian, &g.ScanningMode),
		binary.Read(br, binary.BigEndian, &g.LatitudeOfIntersection1),
		binary.Read(br, binary.BigEndian, &g.LatitudeOfIntersection2),
		binary.Read(br, binary.BigEndian, &g.LatitudeOfSouthernPole),
		binary.Read(br, binary.BigEndian, &g.LongitudeOfSouthernPole),
	)
	if err != nil {
		return nil, fmt.Errorf("template: lambert conformal grid fields: %w", err)
	}

	return g, nil
}

func parseGaussianGrid(br *bytes.Reader) (*GaussianGrid, error) {
	latLon, err := parseLatLonGrid(br)
	if err != nil {
		return nil, fmt.Errorf("template: gaussian lat/lon base: %w", err)
	}

	g := &GaussianGrid{LatLonGrid: *latLon}
	if err := binary.Read(br, binary.BigEndian, &g.NumberOfParallels); err != nil {
		return nil, fmt.Errorf("template: gaussian parallel count: %w", err)
	}

	return g, nil
}
