// Package api implements the deckflow REST API using chi.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"deckflow/pkg/observability"
)

// requestIDHeader carries the request id in both directions: clients may
// supply one, and the server echoes the effective id back.
const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a UUID unless the client sent one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging logs one line per request and feeds the HTTP observability hooks.
func Logging(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, duration)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", duration,
				"request_id", w.Header().Get(requestIDHeader))
		})
	}
}
