package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
)

// These tests swap the global tracer provider and so do not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

func spanAttr(span tracetest.SpanStub, key attribute.Key) attribute.Value {
	for _, kv := range span.Attributes {
		if kv.Key == key {
			return kv.Value
		}
	}
	return attribute.Value{}
}

func TestOpenTelemetry_SpanNamedByRoute(t *testing.T) {
	exporter := installTracer(t)

	h := routed("/api/v1/epics/{id}/process", ok, middleware.OpenTelemetry(nil))
	serve(h, http.MethodPost, "/api/v1/epics/7/process")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "POST /api/v1/epics/{id}/process", span.Name)
	assert.Equal(t, "/api/v1/epics/{id}/process", spanAttr(span, "http.route").AsString())
	assert.Equal(t, "/api/v1/epics/7/process", spanAttr(span, "http.target").AsString())
	assert.Equal(t, int64(200), spanAttr(span, "http.status_code").AsInt64())
	assert.Equal(t, codes.Unset, span.Status.Code)
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	exporter := installTracer(t)

	h := routed("/api/v1/tasks/{id}/process", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, middleware.OpenTelemetry(nil))
	serve(h, http.MethodPost, "/api/v1/tasks/3/process")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestOpenTelemetry_ClientErrorLeavesStatusUnset(t *testing.T) {
	exporter := installTracer(t)

	h := routed("/api/v1/tasks/{id}/process", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, middleware.OpenTelemetry(nil))
	serve(h, http.MethodPost, "/api/v1/tasks/3/process")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	exporter := installTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(ok))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, traceID, spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "GET unmatched", spans[0].Name)
}

func TestOpenTelemetry_RecordsMetricsByRoute(t *testing.T) {
	installTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "workitem-service")
	require.NoError(t, err)

	h := routed("/api/v1/stories/{id}/process", ok, middleware.OpenTelemetry(metrics))
	serve(h, http.MethodPost, "/api/v1/stories/1/process")
	serve(h, http.MethodPost, "/api/v1/stories/2/process")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total *metricdata.Sum[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http.server.request.total" {
				if s, ok := m.Data.(metricdata.Sum[int64]); ok {
					total = &s
				}
			}
		}
	}
	require.NotNil(t, total, "server request counter not recorded")
	require.Len(t, total.DataPoints, 1, "both requests share one route series")
	dp := total.DataPoints[0]
	assert.Equal(t, int64(2), dp.Value)
	route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
	assert.Equal(t, "/api/v1/stories/{id}/process", route.AsString())
}
