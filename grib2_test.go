package grib2

import (
	"bytes"
	"encoding/binary"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeSection0(buf *bytes.Buffer, totalLength uint64) {
	buf.WriteString("GRIB")
	buf.Write([]byte{0, 0})
	buf.WriteByte(0)
	buf.WriteByte(2)
	binary.Write(buf, binary.BigEndian, totalLength)
}

func writeSection1(buf *bytes.Buffer) {
	var body bytes.Buffer
	binary.Write(&body, binary.BigEndian, uint16(7))
	binary.Write(&body, binary.BigEndian, uint16(0))
	body.WriteByte(2)
	body.WriteByte(0)
	body.WriteByte(1)
	binary.Write(&body, binary.BigEndian, uint16(2024))
	body.WriteByte(3)
	body.WriteByte(1)
	body.WriteByte(0)
	body.WriteByte(0)
	body.WriteByte(0)
	body.WriteByte(0)
	body.WriteByte(1)

	binary.Write(buf, binary.BigEndian, uint32(5+body.Len()))
	buf.WriteByte(1)
	buf.Write(body.Bytes())
}

func writeSection3(buf *bytes.Buffer, numPoints uint32) {
	var body bytes.Buffer
	body.WriteByte(0)
	binary.Write(&body, binary.BigEndian, numPoints)
	body.WriteByte(0)
	body.WriteByte(0)
	binary.Write(&body, binary.BigEndian, uint16(0))

	binary.Write(buf, binary.BigEndian, uint32(5+body.Len()))
	buf.WriteByte(3)
	buf.Write(body.Bytes())
}

func writeSection4(buf *bytes.Buffer) {
	var body bytes.Buffer
	binary.Write(&body, binary.BigEndian, uint16(0))
	binary.Write(&body, binary.BigEndian, uint16(0))

	binary.Write(buf, binary.BigEndian, uint32(5+body.Len()))
	buf.WriteByte(4)
	buf.Write(body.Bytes())
}

func writeSection5(buf *bytes.Buffer, numPoints uint32) {
	var body bytes.Buffer
	binary.Write(&body, binary.BigEndian, numPoints)
	binary.Write(&body, binary.BigEndian, uint16(0))

	binary.Write(buf, binary.BigEndian, uint32(5+body.Len()))
	buf.WriteByte(5)
	buf.Write(body.Bytes())
}

func writeSection7(buf *bytes.Buffer, data []byte) {
	binary.Write(buf, binary.BigEndian, uint32(5+len(data)))
	buf.WriteByte(7)
	buf.Write(data)
}

func buildMessage(numPoints uint32, data []byte) []byte {
	var body bytes.Buffer
	writeSection1(&body)
	writeSection3(&body, numPoints)
	writeSection4(&body)
	writeSection5(&body, numPoints)
	writeSection7(&body, data)
	body.WriteString("7777")

	var msg bytes.Buffer
	writeSection0(&msg, uint64(16+body.Len()))
	msg.Write(body.Bytes())
	return msg.Bytes()
}

func TestOpenStreamReportsSubmessages(t *testing.T) {
	msg := buildMessage(4, []byte{0, 0, 0, 0})

	h, err := OpenStream(bytes.NewReader(msg))
	require.NoError(t, err)
	require.Equal(t, -1, h.Len())

	count := 0
	for idx, view := range h.Messages() {
		require.Equal(t, 0, idx.MessageIndex)
		require.NotNil(t, view.ProdDef())
		count++
	}
	require.Equal(t, 1, count)
}

func TestOpenRandomAccessReportsLen(t *testing.T) {
	msg := buildMessage(4, []byte{0, 0, 0, 0})

	h, err := Open(bytes.NewReader(msg), int64(len(msg)))
	require.NoError(t, err)
	require.Equal(t, 1, h.Len())
}

func TestOpenEnforcesMaxSectionLength(t *testing.T) {
	msg := buildMessage(4, []byte{0, 0, 0, 0})

	_, err := Open(bytes.NewReader(msg), int64(len(msg)), WithMaxSectionLength(4))
	require.Error(t, err)
}

func TestOpenURLReportsSubmessages(t *testing.T) {
	msg := buildMessage(4, []byte{0, 0, 0, 0})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeContent(w, r, "fixture.grib2", time.Time{}, bytes.NewReader(msg))
	}))
	defer srv.Close()

	h, err := OpenURL(srv.URL)
	require.NoError(t, err)
	require.Equal(t, 1, h.Len())
}
