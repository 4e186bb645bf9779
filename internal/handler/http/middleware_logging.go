package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// withLogging writes one access line per request. Pass tokens travel in the
// path, so the route pattern is logged instead of the URI.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("route", routePattern(r)).
			Str("remote_ip", clientIP(r)).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
