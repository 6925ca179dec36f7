package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/docseed/internal/platform/logging"
)

// Logging attaches a request-scoped logger to the context and writes one
// access line per request once the handler returns.
//
// The scoped logger carries request_id, correlation_id and, when present,
// tool_session and trace_id, so service and client logs for one tool call
// can be joined. The access line is logged at ERROR for 5xx, WARN for 4xx
// and INFO otherwise. Arrival and redacted headers are DEBUG only.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			attrs := []any{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if session := r.Header.Get(headerToolSession); session != "" {
				attrs = append(attrs, slog.String("tool_session", session))
			}
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
			}
			scoped := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, scoped)

			if scoped.Enabled(ctx, slog.LevelDebug) {
				headers := RedactHeaders(r.Header)
				args := make([]any, 0, len(headers)+2)
				args = append(args, slog.String("method", r.Method), slog.String("path", r.URL.Path))
				for _, h := range headers {
					args = append(args, h)
				}
				scoped.DebugContext(ctx, "request started", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			scoped.Log(ctx, accessLevel(rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
