package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength caps caller-supplied ids before they reach the logs.
	maxTraceIDLength = 128
)

// withTraceID attaches a child logger carrying trace_id to the request
// context and echoes the id in the response. A usable inbound X-Trace-ID is
// reused, anything else is replaced by a fresh UUID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}

		reqLogger := h.logger.GetChildLogger()
		reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).Str("method", r.Method).Str("path", r.URL.Path)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}
