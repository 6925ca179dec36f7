package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/docseed/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docseed/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docseed/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "ok", decodeJSON[dto.HealthResponse](t, rec).Status)
	registry.AssertNotCalled(t, "CheckAll", mock.Anything)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "both breakers closed",
			results:    map[string]error{"drive-api": nil, "docs-api": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"drive-api": "ok", "docs-api": "ok"},
		},
		{
			name: "docs breaker open",
			results: map[string]error{
				"docs-api":  errors.New("docs-api: failing (circuit breaker open)"),
				"drive-api": nil,
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{
				"docs-api":  "docs-api: failing (circuit breaker open)",
				"drive-api": "ok",
			},
		},
		{
			name: "drive breaker half-open",
			results: map[string]error{
				"drive-api": errors.New("drive-api: degraded (circuit breaker half-open)"),
				"docs-api":  nil,
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{
				"drive-api": "drive-api: degraded (circuit breaker half-open)",
				"docs-api":  "ok",
			},
		},
		{
			name:       "no checkers registered",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			resp := decodeJSON[dto.HealthResponse](t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantChecks != nil {
				assert.Equal(t, tt.wantChecks, resp.Checks)
			}
		})
	}
}
