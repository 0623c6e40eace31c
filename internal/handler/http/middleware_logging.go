package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
)

// withLogging writes one access line per request through the request-scoped
// logger, so trace_id is always present.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Int("status", rw.Status()).
			Int("bytes", rw.size).
			Dur("elapsed", time.Since(started)).
			Msg("request served")
	})
}
