// Package health tracks the downstream Google APIs for the readiness probe.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/docseed/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single checker when the registry has no
// explicit timeout.
const DefaultCheckTimeout = 2 * time.Second

// Registry is a concurrency-safe [ports.HealthRegistry]. Checkers are keyed
// by name; registering a second checker with the same name replaces the
// first.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry whose checks are bounded by timeout. A
// non-positive timeout selects DefaultCheckTimeout.
func New(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  timeout,
	}
}

// Register adds or replaces a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checkers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// CheckAll runs every checker concurrently and returns results keyed by
// name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.order))
	for _, name := range r.order {
		checkers = append(checkers, r.checkers[name])
	}
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	if len(checkers) == 0 {
		return results
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
		})
	}
	wg.Wait()

	return results
}
