package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	// ErrUnsupportedExporter is returned for names other than ExporterStdout
	// and ExporterOTLP.
	ErrUnsupportedExporter = errors.New("unsupported exporter")

	errNoEndpoint = errors.New("otlp exporter requires an endpoint")
)

// collector is where the OTLP/HTTP exporters send data.
type collector struct {
	host     string
	insecure bool
}

// parseCollector accepts either a URL ("https://otel:4318") or a bare
// host:port, which is treated as plain HTTP.
func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, errNoEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return collector{host: endpoint, insecure: true}, nil
	}
	return collector{host: u.Host, insecure: u.Scheme != "https"}, nil
}

func newSpanExporter(ctx context.Context, name, endpoint string) (sdktrace.SpanExporter, error) {
	switch name {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		c, err := parseCollector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.host)}
		if c.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, name)
}

func newMetricExporter(ctx context.Context, name, endpoint string) (sdkmetric.Exporter, error) {
	switch name {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		c, err := parseCollector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.host)}
		if c.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, name)
}
