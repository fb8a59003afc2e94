package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	pkglogger "github.com/aditsaputra/academy/pkg/logger"
)

// SecureLogger returns a middleware for logging HTTP requests with
// sensitive data redaction. Query strings carrying sensitive parameter
// names are always redacted; the rest are redacted in production only.
func SecureLogger(logger *slog.Logger, env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			requestID := middleware.GetReqID(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", wrapped.Status()),
				slog.Int64("bytes", int64(wrapped.BytesWritten())),
				slog.String("duration", duration.String()),
				slog.String("request_id", requestID),
				slog.String("remote_addr", r.RemoteAddr),
			}

			if r.URL.RawQuery != "" {
				if pkglogger.SanitizeQueryString(r.URL.RawQuery) {
					attrs = append(attrs, slog.String("query", "[REDACTED]"))
				} else {
					attrs = append(attrs, pkglogger.RedactedAttr("query", r.URL.RawQuery, env))
				}
			}

			logger.LogAttrs(context.Background(), slog.LevelInfo, "http_request", attrs...)
		})
	}
}
