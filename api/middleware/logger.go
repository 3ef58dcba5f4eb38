// Package middleware provides HTTP middleware for the alignment API.
package middleware

import (
	"log"
	"net/http"
	"os"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Output receives one line per request.
var Output = log.New(os.Stderr, "", log.LstdFlags)

// Logger logs the method, path, status, response size and duration of
// every request, prefixed with the request ID when one is set.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			prefix := ""
			if id := chimiddleware.GetReqID(r.Context()); id != "" {
				prefix = "[" + id + "] "
			}
			Output.Printf("%s%s %s %d %dB %s", prefix, r.Method, r.URL.Path, status, ww.BytesWritten(), time.Since(start))
		}()

		next.ServeHTTP(ww, r)
	})
}
