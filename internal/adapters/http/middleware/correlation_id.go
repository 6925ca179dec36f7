package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/docseed/internal/platform/httpclient"
)

const (
	headerCorrelationID = "X-Correlation-ID"
	// headerToolSession is shared by every call an agent makes within one
	// streamable tool session.
	headerToolSession = "Mcp-Session-Id"
)

type correlationIDKey struct{}

// WithCorrelationID stores id for this package and for httpclient, which
// forwards it to Google as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID picks the first well-formed value among the X-Correlation-ID
// header, the Mcp-Session-Id header and the request ID, so that all calls in
// one agent session correlate by default. It must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := RequestIDFromContext(r.Context())
			for _, candidate := range []string{r.Header.Get(headerCorrelationID), r.Header.Get(headerToolSession)} {
				if validRequestID(candidate) {
					id = candidate
					break
				}
			}

			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
