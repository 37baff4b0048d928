package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. For a feed the entry
// is written when the websocket closes, so duration covers the whole
// subscription.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		level := zerolog.InfoLevel
		if lw.status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		logger.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Bool("upgraded", lw.status == http.StatusSwitchingProtocols).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
