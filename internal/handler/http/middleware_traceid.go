package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-helper-market/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a child logger with a trace_id field to the request
// context. The id is taken from the X-Trace-ID header or generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.TraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
