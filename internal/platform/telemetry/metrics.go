package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds every instrument the service records into. A nil *Metrics
// disables recording.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// ProcessTotal counts processing attempts by kind, result and failure.
	ProcessTotal    metric.Int64Counter
	ProcessDuration metric.Float64Histogram
	EventsPublished metric.Int64Counter
}

// NewMetrics registers the instruments on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "s", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    r.counter("http.server.request.total", "{request}", "Incoming HTTP requests"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "s", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    r.counter("http.client.request.total", "{request}", "Outgoing HTTP requests"),
		ProcessTotal:          r.counter("workitem.process.total", "{item}", "Work item processing attempts"),
		ProcessDuration:       r.histogram("workitem.process.duration", "s", "Work item processing time including the load"),
		EventsPublished:       r.counter("workitem.events.published", "{event}", "Domain events handed to the event bus"),
	}
	if r.err != nil {
		return nil, fmt.Errorf("registering instruments: %w", r.err)
	}
	return m, nil
}

// registrar collects instrument errors so NewMetrics can build the struct in
// one expression.
type registrar struct {
	meter metric.Meter
	err   error
}

func (r *registrar) counter(name, unit, desc string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithUnit(unit), metric.WithDescription(desc))
	r.record(name, err)
	return c
}

func (r *registrar) histogram(name, unit, desc string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithUnit(unit), metric.WithDescription(desc))
	r.record(name, err)
	return h
}

func (r *registrar) record(name string, err error) {
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", name, err))
	}
}
