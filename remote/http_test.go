package remote

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
			w.WriteHeader(http.StatusOK)
			return
		}

		rng := r.Header.Get("Range")
		if rng == "" {
			w.Write(body)
			return
		}

		var start, end int
		_, err := fmt.Sscanf(rng, "bytes=%d-%d", &start, &end)
		require.NoError(t, err)
		if end >= len(body) {
			end = len(body) - 1
		}

		w.Header().Set("Content-Range", rng)
		w.WriteHeader(http.StatusPartialContent)
		w.Write(body[start : end+1])
	}))
}

func TestHTTPReaderAtReadsByteRange(t *testing.T) {
	body := []byte("GRIB0123456789abcdef7777")
	srv := rangeServer(t, body)
	defer srv.Close()

	r, err := NewHTTPReaderAt(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), r.Size())

	buf := make([]byte, 4)
	n, err := r.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "GRIB", string(buf))

	n, err = r.ReadAt(buf, int64(len(body)-4))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "7777", string(buf))
}

func TestHTTPReaderAtReadAtPastEndReturnsEOF(t *testing.T) {
	body := []byte("GRIB")
	srv := rangeServer(t, body)
	defer srv.Close()

	r, err := NewHTTPReaderAt(srv.URL)
	require.NoError(t, err)

	buf := make([]byte, 4)
	_, err = r.ReadAt(buf, int64(len(body)))
	assert.ErrorIs(t, err, io.EOF)
}
