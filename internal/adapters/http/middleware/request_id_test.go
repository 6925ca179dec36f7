package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/docseed/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/docseed/internal/platform/config"
	"github.com/jsamuelsen11/docseed/internal/platform/httpclient"
)

// captureRequestID runs a request with the given X-Request-ID header (unset
// when empty) and returns the ID seen by the handler and the response.
func captureRequestID(t *testing.T, incoming string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", http.NoBody)
	if incoming != "" {
		req.Header.Set("X-Request-ID", incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestRequestID_MintsUUIDv4(t *testing.T) {
	t.Parallel()

	id, rec := captureRequestID(t, "")

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_IncomingHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "opaque token", incoming: "req-8f2c", reused: true},
		{name: "uuid", incoming: "2b7e1f3a-9c4d-4e5f-8a6b-7c8d9e0f1a2b", reused: true},
		{name: "at length limit", incoming: strings.Repeat("a", 128), reused: true},
		{name: "too long", incoming: strings.Repeat("a", 129), reused: false},
		{name: "contains space", incoming: "req 1", reused: false},
		{name: "non ascii", incoming: "req-é", reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, rec := captureRequestID(t, tt.incoming)
			assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
			if tt.reused {
				assert.Equal(t, tt.incoming, id)
				return
			}
			assert.NotEqual(t, tt.incoming, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err, "replacement ID should be a UUID")
		})
	}
}

func TestRequestID_DistinctPerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 50 {
		id, _ := captureRequestID(t, "")
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestRequestID_ForwardedToGoogleClients(t *testing.T) {
	t.Parallel()

	forwarded := make(chan string, 1)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded <- r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(upstream.Close)

	drive := httpclient.New(&config.ClientConfig{
		BaseURL: upstream.URL,
		Timeout: time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1,
		},
	}, "drive-api", nil, discardLogger())

	h := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out, err := http.NewRequestWithContext(r.Context(), http.MethodPost, upstream.URL+"/drive/v3/files", http.NoBody)
		require.NoError(t, err)
		resp, err := drive.Do(r.Context(), out)
		require.NoError(t, err)
		_ = resp.Body.Close()
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", http.NoBody)
	req.Header.Set("X-Request-ID", "req-forward-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-forward-1", <-forwarded)
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", middleware.RequestIDFromContext(
		middleware.WithRequestID(context.Background(), "abc")))
}
