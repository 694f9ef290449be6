package template

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/scorix/grib2/errs"
	"github.com/scorix/grib2/numeric"
)

// commonDataRepHeader is octets 12-17 of section 5, present verbatim at the
// start of every data representation template this package supports.
type commonDataRepHeader struct {
	ReferenceValue            uint32
	BinaryScaleFactor         int16
	DecimalScaleFactor        int16
	NumberOfBitsUsedForData   uint8
	TypeOfOriginalFieldValues uint8
}

func readCommonDataRepHeader(br *bytes.Reader) (commonDataRepHeader, error) {
	var h commonDataRepHeader
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &h.ReferenceValue))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &h.BinaryScaleFactor))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &h.DecimalScaleFactor))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &h.NumberOfBitsUsedForData))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &h.TypeOfOriginalFieldValues))
	return h, err
}

// ParseDataRepTemplate decodes section 5's raw template bytes (as returned by
// section.Section5.RawTemplate) into a DataRepTemplate for the given template
// number. Unsupported template numbers return an error rather than a partially
// populated template.
func ParseDataRepTemplate(raw []byte, templateNumber int) (*DataRepTemplate, error) {
	br := bytes.NewReader(raw)

	header, err := readCommonDataRepHeader(br)
	if err != nil {
		return nil, fmt.Errorf("template: data representation common header: %w", err)
	}

	t := &DataRepTemplate{
		TemplateNumber:            templateNumber,
		ReferenceValue:            float64(numeric.Float32FromBits(header.ReferenceValue)),
		BinaryScaleFactor:         header.BinaryScaleFactor,
		DecimalScaleFactor:        header.DecimalScaleFactor,
		NumberOfBitsUsedForData:   header.NumberOfBitsUsedForData,
		TypeOfOriginalFieldValues: header.TypeOfOriginalFieldValues,
	}

	switch templateNumber {
	case 0:
		t.Simple = &SimplePackingInfo{}
	case 2, 3:
		info, err := parseComplexPacking(br, templateNumber == 3)
		if err != nil {
			return nil, err
		}
		t.Complex = info
	case 4:
		var precision uint8
		if err := binary.Read(br, binary.BigEndian, &precision); err != nil {
			return nil, fmt.Errorf("template: ieee precision: %w", err)
		}
		t.IEEE = &IEEEPackingInfo{PrecisionOfFloatingPointNumbers: precision}
	case 40:
		info, err := parseJPEG2000(br)
		if err != nil {
			return nil, err
		}
		t.JPEG2000 = info
	case 41:
		t.PNG = &PNGPackingInfo{}
	case 42:
		info, err := parseCCSDS(br)
		if err != nil {
			return nil, err
		}
		t.CCSDS = info
	case 200:
		info, err := parseRunLength(br)
		if err != nil {
			return nil, err
		}
		t.RunLength = info
	default:
		return nil, &errs.UnsupportedTemplateError{Section: 5, TemplateNumber: templateNumber}
	}

	return t, nil
}

// parseComplexPacking reads the fields shared by templates 5.2 and 5.3. When
// spatialDiff is true, the two trailing spatial-differencing octets (order
// and number of extra descriptor octets) are also read.
func parseComplexPacking(br *bytes.Reader, spatialDiff bool) (*ComplexPackingInfo, error) {
	var (
		groupSplittingMethod           uint8
		missingValueManagement         uint8
		primaryMissingSub              uint32
		secondaryMissingSub            uint32
		numberOfGroups                 uint32
		referenceForGroupWidths        uint8
		numberOfBitsForGroupWidths     uint8
		referenceForGroupLengths       uint32
		lengthIncrementForGroupLengths uint8
		trueLengthOfLastGroup          uint32
		numberOfBitsForGroupLengths    uint8
	)

	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &groupSplittingMethod))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &missingValueManagement))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &primaryMissingSub))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &secondaryMissingSub))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &numberOfGroups))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &referenceForGroupWidths))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &numberOfBitsForGroupWidths))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &referenceForGroupLengths))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &lengthIncrementForGroupLengths))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &trueLengthOfLastGroup))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &numberOfBitsForGroupLengths))
	if err != nil {
		return nil, fmt.Errorf("template: complex packing fields: %w", err)
	}

	info := &ComplexPackingInfo{
		GroupSplittingMethod:            int(groupSplittingMethod),
		MissingValueManagement:          missingValueManagement,
		PrimaryMissingValueSubstitute:   numeric.Float32FromBits(primaryMissingSub),
		SecondaryMissingValueSubstitute: numeric.Float32FromBits(secondaryMissingSub),
		NumberOfGroupsOfDataValues:      numberOfGroups,
		ReferenceForGroupWidths:         referenceForGroupWidths,
		NumberOfBitsUsedForGroupWidths:  numberOfBitsForGroupWidths,
		ReferenceForGroupLengths:        referenceForGroupLengths,
		LengthIncrementForGroupLengths:  lengthIncrementForGroupLengths,
		TrueLengthOfLastGroup:           trueLengthOfLastGroup,
		NumberOfBitsUsedForGroupLengths: numberOfBitsForGroupLengths,
	}

	if spatialDiff {
		var order, numOctets uint8
		if err := binary.Read(br, binary.BigEndian, &order); err != nil {
			return nil, fmt.Errorf("template: spatial differencing order: %w", err)
		}
		if err := binary.Read(br, binary.BigEndian, &numOctets); err != nil {
			return nil, fmt.Errorf("template: spatial differencing octet count: %w", err)
		}
		info.OrderOfSpatialDifferencing = &order
		info.NumberOfOctetsExtraDescriptors = &numOctets
	}

	return info, nil
}

// parseJPEG2000 reads the compression-control octets that follow template
// 5.40's common header.
func parseJPEG2000(br *bytes.Reader) (*JPEG2000PackingInfo, error) {
	var compressionType uint8
	var compressionRatio uint8
	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &compressionType))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &compressionRatio))
	if err != nil {
		return nil, fmt.Errorf("template: jpeg2000 compression fields: %w", err)
	}

	return &JPEG2000PackingInfo{
		CompressionType:  compressionType,
		CompressionRatio: compressionRatio,
	}, nil
}

// parseCCSDS reads the CCSDS 121.0 control octets that follow template 5.42's
// common header: compression options mask, block size and reference sample
// interval length.
func parseCCSDS(br *bytes.Reader) (*CCSDSPackingInfo, error) {
	var ccsdsFlags uint8
	var blockSize uint8
	var rsiLength uint8

	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &ccsdsFlags))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &blockSize))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &rsiLength))
	if err != nil {
		return nil, fmt.Errorf("template: ccsds fields: %w", err)
	}

	return &CCSDSPackingInfo{
		CCSDSFlags: ccsdsFlags,
		BlockSize:  blockSize,
		RSILength:  rsiLength,
	}, nil
}

// parseRunLength reads template 5.200's level-value table: number of levels,
// the scaling/missing-value octets and the level value list itself.
func parseRunLength(br *bytes.Reader) (*RunLengthPackingInfo, error) {
	var (
		numberOfBitsForLevelValues      uint8
		missingValueManagement          uint8
		primaryMissingValueSubstitute   uint8
		secondaryMissingValueSubstitute uint8
		numberOfLevels                  uint8
		maximumValueOfLevelValues       uint8
	)

	var err error
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &numberOfBitsForLevelValues))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &missingValueManagement))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &primaryMissingValueSubstitute))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &secondaryMissingValueSubstitute))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &numberOfLevels))
	err = errors.Join(err, binary.Read(br, binary.BigEndian, &maximumValueOfLevelValues))
	if err != nil {
		return nil, fmt.Errorf("template: run length fields: %w", err)
	}

	levels := make([]uint8, 0, numberOfLevels)
	for i := 0; i < int(numberOfLevels); i++ {
		var v uint8
		if err := binary.Read(br, binary.BigEndian, &v); err != nil {
			return nil, fmt.Errorf("template: run length level value %d: %w", i, err)
		}
		levels = append(levels, v)
	}

	return &RunLengthPackingInfo{
		LevelValues:                     levels,
		NumberOfLevels:                  numberOfLevels,
		MissingValueManagement:          missingValueManagement,
		PrimaryMissingValueSubstitute:   primaryMissingValueSubstitute,
		SecondaryMissingValueSubstitute: secondaryMissingValueSubstitute,
		NumberOfBitsForLevelValues:      numberOfBitsForLevelValues,
		MaximumValueOfLevelValues:       maximumValueOfLevelValues,
	}, nil
}
