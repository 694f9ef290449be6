package spec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/scorix/grib2/section"
	"github.com/stretchr/testify/require"
)

func buildSection1(t *testing.T, year uint16, month, day, hour, minute, second uint8) section.Section1 {
	t.Helper()
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(21)) // length
	buf.WriteByte(1)                                 // section number
	binary.Write(&buf, binary.BigEndian, uint16(7))  // originating center
	binary.Write(&buf, binary.BigEndian, uint16(0))  // originating subcenter
	buf.WriteByte(2)                                 // master tables version
	buf.WriteByte(0)                                 // local tables version
	buf.WriteByte(1)                                 // reference time significance
	binary.Write(&buf, binary.BigEndian, year)
	buf.WriteByte(month)
	buf.WriteByte(day)
	buf.WriteByte(hour)
	buf.WriteByte(minute)
	buf.WriteByte(second)
	buf.WriteByte(0) // production status
	buf.WriteByte(1) // data type

	sec1, err := section.NewSection1FromBytes(buf.Bytes(), false)
	require.NoError(t, err)
	return sec1
}

func buildSection4(t *testing.T, unitOfTimeRange uint8, forecastTime uint32) section.Section4 {
	t.Helper()
	var tmpl bytes.Buffer
	tmpl.WriteByte(0)                                   // category
	tmpl.WriteByte(1)                                   // parameter
	tmpl.WriteByte(0)                                   // type of generating process
	tmpl.WriteByte(255)                                 // background process
	tmpl.WriteByte(0)                                   // generating process id
	binary.Write(&tmpl, binary.BigEndian, uint16(0))    // hours after cutoff
	tmpl.WriteByte(0)                                   // minutes after cutoff
	tmpl.WriteByte(unitOfTimeRange)                     // indicator of unit of time range
	binary.Write(&tmpl, binary.BigEndian, forecastTime) // forecast time
	tmpl.WriteByte(1)                                   // type of first fixed surface
	tmpl.WriteByte(0)                                   // scale factor of first fixed surface
	binary.Write(&tmpl, binary.BigEndian, uint32(0))    // scaled value of first fixed surface
	tmpl.WriteByte(255)                                 // type of second fixed surface
	tmpl.WriteByte(0)                                   // scale factor of second fixed surface
	binary.Write(&tmpl, binary.BigEndian, uint32(0))    // scaled value of second fixed surface

	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(9+tmpl.Len())) // length
	buf.WriteByte(4)                                           // section number
	binary.Write(&buf, binary.BigEndian, uint16(0))            // number of coordinate values
	binary.Write(&buf, binary.BigEndian, uint16(0))            // product definition template number 0
	buf.Write(tmpl.Bytes())

	sec4, err := section.NewSection4FromBytes(buf.Bytes())
	require.NoError(t, err)
	return sec4
}

func TestTemporalRawInfo(t *testing.T) {
	sec1 := buildSection1(t, 2024, 3, 15, 12, 0, 0)
	sec4 := buildSection4(t, 1, 6) // 6 hours forecast

	view := NewSubmessageView(nil, sec1, nil, nil, sec4, nil, nil, nil)
	raw, err := view.TemporalRawInfo()
	require.NoError(t, err)
	require.Equal(t, uint16(2024), raw.Year)
	require.Equal(t, uint8(3), raw.Month)
	require.Equal(t, uint8(15), raw.Day)
	require.Equal(t, uint8(1), raw.IndicatorOfUnitOfTimeRange)
	require.Equal(t, uint32(6), raw.ForecastTime)
}

func TestTemporalInfoComputesOffset(t *testing.T) {
	sec1 := buildSection1(t, 2024, 3, 15, 12, 0, 0)
	sec4 := buildSection4(t, 1, 6) // 6 hours forecast

	view := NewSubmessageView(nil, sec1, nil, nil, sec4, nil, nil, nil)
	info, err := view.TemporalInfo()
	require.NoError(t, err)
	require.Equal(t, 2024, info.ReferenceTime.Year())
	require.Equal(t, 6*60*60, int(info.ForecastOffset.Seconds()))
}
