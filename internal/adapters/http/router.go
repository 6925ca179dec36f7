// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/docseed/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docseed/internal/adapters/http/middleware"
)

// RouterConfig carries the optional parts of the route table.
type RouterConfig struct {
	// RequestTimeout bounds the health and REST routes. Zero disables it.
	// The tool route is never wrapped because it streams.
	RequestTimeout time.Duration

	// ToolPath and ToolHandler mount the streamable tool transport. Both
	// must be set for the route to be registered.
	ToolPath    string
	ToolHandler http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	documentHandler *handlers.DocumentHandler,
	healthHandler *handlers.HealthHandler,
	cfg RouterConfig,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Group(func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
		}

		// Health endpoints (outside /api/v1 prefix).
		r.Get("/health/live", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/documents", documentHandler.CreateDocument)
		})
	})

	if cfg.ToolPath != "" && cfg.ToolHandler != nil {
		r.Handle(cfg.ToolPath, cfg.ToolHandler)
	}

	return r
}
