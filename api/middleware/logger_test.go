package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	saved := Output
	Output = log.New(&buf, "", 0)
	defer func() { Output = saved }()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "implicit ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			want: "POST /api/msa 200 2B",
		},
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			want: "POST /api/msa 400 0B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodPost, "/api/msa", nil)
			Logger(tt.handler).ServeHTTP(httptest.NewRecorder(), req)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestLoggerRequestID(t *testing.T) {
	var buf bytes.Buffer
	saved := Output
	Output = log.New(&buf, "", 0)
	defer func() { Output = saved }()

	h := chimiddleware.RequestID(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Regexp(t, `^\[.+\] GET /health 200`, buf.String())
}
