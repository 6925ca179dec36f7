package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/docseed/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/docseed/internal/platform/telemetry"
)

// Tracing tests swap the global TracerProvider and so do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

// documentsRouter mounts a stub create route behind the middleware the way
// the real router does.
func documentsRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Post("/api/v1/documents", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	r.Get("/api/v1/documents/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(kvs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func TestOpenTelemetry_SpanNamedByRoutePattern(t *testing.T) {
	exporter := setupTracer(t)

	rec := httptest.NewRecorder()
	documentsRouter(nil, http.StatusOK).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/documents/abc123", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/documents/{id}", spans[0].Name)

	attrs := spanAttrs(spans[0].Attributes)
	assert.Equal(t, "/api/v1/documents/{id}", attrs["http.route"])
	assert.Equal(t, "/api/v1/documents/abc123", attrs["url.path"])
	assert.Equal(t, http.MethodGet, attrs["http.method"])
	assert.Equal(t, int64(http.StatusOK), attrs["http.status_code"])
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	rec := httptest.NewRecorder()
	documentsRouter(nil, http.StatusOK).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/nope/123", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET unmatched", spans[0].Name)
}

func TestOpenTelemetry_ToolSessionAttribute(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", http.NoBody)
	req.Header.Set("Mcp-Session-Id", "session-7")
	documentsRouter(nil, http.StatusCreated).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "session-7", spanAttrs(spans[0].Attributes)["mcp.session_id"])
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	documentsRouter(nil, http.StatusCreated).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, traceID, spans[0].SpanContext.TraceID().String())
}

func TestOpenTelemetry_ErrorStatusOnlyFor5xx(t *testing.T) {
	tests := []struct {
		status int
		want   codes.Code
	}{
		{status: http.StatusCreated, want: codes.Unset},
		{status: http.StatusNotFound, want: codes.Unset},
		{status: http.StatusBadGateway, want: codes.Error},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			exporter := setupTracer(t)

			documentsRouter(nil, tt.status).ServeHTTP(httptest.NewRecorder(),
				httptest.NewRequest(http.MethodPost, "/api/v1/documents", http.NoBody))

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.want, spans[0].Status.Code)
		})
	}
}

func TestOpenTelemetry_RecordsRouteMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "docseed-test")
	require.NoError(t, err)

	h := documentsRouter(metrics, http.StatusBadGateway)
	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodPost, "/api/v1/documents", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || m.Name != "http.server.request.total" {
				continue
			}
			require.Len(t, sum.DataPoints, 1)
			dp := sum.DataPoints[0]
			assert.Equal(t, int64(2), dp.Value)

			route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
			assert.Equal(t, "/api/v1/documents", route.AsString())
			result, _ := dp.Attributes.Value(telemetry.AttrResult)
			assert.Equal(t, telemetry.ResultError, result.AsString())
			found = true
		}
	}
	assert.True(t, found, "server request counter not exported")
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		documentsRouter(nil, http.StatusCreated).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/api/v1/documents", http.NoBody))
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}
