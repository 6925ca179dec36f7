package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/docseed/internal/adapters/http"
	"github.com/jsamuelsen11/docseed/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/mocks"
)

// toolStub stands in for the streamable tool transport.
var toolStub = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusAccepted)
})

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockDocumentService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockDocumentService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewDocumentHandler(svc),
		handlers.NewHealthHandler(registry),
		adapthttp.RouterConfig{
			RequestTimeout: time.Second,
			ToolPath:       "/mcp",
			ToolHandler:    toolStub,
		},
	)
	return router, svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/documents"},
		{http.MethodPost, "/mcp"},
		{http.MethodGet, "/mcp"},
		{http.MethodDelete, "/mcp"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_ToolRouteOmittedWithoutHandler(t *testing.T) {
	t.Parallel()

	router := adapthttp.NewRouter(
		handlers.NewDocumentHandler(mocks.NewMockDocumentService(t)),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
		adapthttp.RouterConfig{ToolPath: "/mcp"},
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)

	var calls []string
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(
		handlers.NewDocumentHandler(mocks.NewMockDocumentService(t)),
		handlers.NewHealthHandler(registry),
		adapthttp.RouterConfig{ToolPath: "/mcp", ToolHandler: toolStub},
		testMW,
	)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	for _, path := range []string{"/health/ready", "/mcp"} {
		method := http.MethodGet
		if path == "/mcp" {
			method = http.MethodPost
		}
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, path, nil))
	}

	if len(calls) != 2 {
		t.Errorf("middleware calls = %v, want both routes", calls)
	}
}

func TestRouter_ToolRouteNotBuffered(t *testing.T) {
	t.Parallel()

	flushed := false
	streaming := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, flushed = w.(http.Flusher)
		w.WriteHeader(http.StatusOK)
	})

	router := adapthttp.NewRouter(
		handlers.NewDocumentHandler(mocks.NewMockDocumentService(t)),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
		adapthttp.RouterConfig{
			RequestTimeout: time.Second,
			ToolPath:       "/mcp",
			ToolHandler:    streaming,
		},
	)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/mcp", nil))

	if !flushed {
		t.Error("tool handler received a buffered writer, want the flushable recorder")
	}
}

func TestRouter_IntegrationCreateDocument(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	svc.EXPECT().CreateDocument(mock.Anything, mock.Anything).
		Return(&document.CreatedDocument{ID: "d1", Name: "Notes", URL: "u"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", strings.NewReader(`{"title":"Notes"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
