package httpclient

import "context"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
	noRetryKey       struct{}
)

// WithRequestID stores the inbound request ID so Do forwards it as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so Do forwards it as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// WithoutRetry marks the request as non-idempotent. Do makes exactly one
// attempt for it regardless of the configured retry policy.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func retryDisabled(ctx context.Context) bool {
	v, _ := ctx.Value(noRetryKey{}).(bool)
	return v
}
