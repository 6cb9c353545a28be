package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/internal"
)

func TestResponseWriter_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		htmx     bool
		code     int
		wantWire int
	}{
		{"plain 404", false, http.StatusNotFound, http.StatusNotFound},
		{"plain 422", false, http.StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{"htmx 200", true, http.StatusOK, http.StatusOK},
		{"htmx 422 sent as 200", true, http.StatusUnprocessableEntity, http.StatusOK},
		{"htmx 502 sent as 200", true, http.StatusBadGateway, http.StatusOK},
		{"htmx 303 sent as 200", true, http.StatusSeeOther, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := internal.NewResponseWriter(rec, tt.htmx)
			rw.WriteHeader(tt.code)

			assert.Equal(t, tt.wantWire, rec.Code)
			assert.Equal(t, tt.code, rw.Status())
			assert.True(t, rw.Written())
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := internal.NewResponseWriter(rec, false)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, rw.Status())
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := internal.NewResponseWriter(rec, false)
	require.False(t, rw.Written())

	n, err := rw.Write([]byte("hello "))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = rw.Write([]byte("bots"))
	require.NoError(t, err)

	assert.True(t, rw.Written())
	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, int64(10), rw.Size())
	assert.Equal(t, "hello bots", rec.Body.String())
}

func TestResponseWriter_HeaderAndUnwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := internal.NewResponseWriter(rec, true)

	rw.Header().Set("HX-Trigger", "slugChecked")
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, "slugChecked", rec.Header().Get("HX-Trigger"))
	assert.Same(t, rec, rw.Unwrap())

	rw.Flush()
	assert.True(t, rec.Flushed)
}
