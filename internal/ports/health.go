package ports

import "context"

// HealthChecker reports whether one dependency can currently serve requests.
// The Drive and Docs clients implement it from their circuit breaker state.
type HealthChecker interface {
	// Name is the key the readiness report uses, e.g. "drive-api".
	Name() string

	// HealthCheck returns nil when healthy. It must return promptly once ctx
	// is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for GET /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier one with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every checker and maps name to result, nil meaning healthy.
	CheckAll(ctx context.Context) map[string]error
}
