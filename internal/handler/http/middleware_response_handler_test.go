package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_FirstWins(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "single call", statusCodes: []int{http.StatusCreated}, expectedStatus: http.StatusCreated},
		{name: "double call", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, expectedStatus: http.StatusAccepted},
		{name: "triple call", statusCodes: []int{http.StatusNotFound, http.StatusOK, http.StatusInternalServerError}, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.Status())
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, "hello", rr.Body.String())
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	_, _ = w.Write([]byte("Hola, "))
	_, _ = w.Write([]byte("Ana!"))

	assert.Equal(t, 10, w.size)
}

func TestResponseWriter_Write_AfterExplicitWriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("404 page not found\n"))

	assert.Equal(t, http.StatusNotFound, w.Status())
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.Status(), "nothing written still means 200")
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("Content-Type", contentTypePlain)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, contentTypePlain, rr.Header().Get("Content-Type"))
}
