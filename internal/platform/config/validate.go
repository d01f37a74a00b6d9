package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once, each message naming the
// dotted key so it maps straight back to YAML or APP_ variables.
func (c *Config) Validate() error {
	var p problems

	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p, "client", true)
	c.Telemetry.validate(&p)
	c.Processing.validate(&p)
	c.Events.validate(&p)
	if c.Events.Store.Enabled {
		c.Database.validate(&p)
	}

	return p.err()
}

type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (p problems) err() error {
	return errors.Join(p...)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.RequestTimeout > 0, "server.request_timeout must be positive")
	if s.RequestTimeout > 0 && s.WriteTimeout > 0 {
		p.check(s.RequestTimeout < s.WriteTimeout,
			"server.request_timeout (%s) must be shorter than server.write_timeout (%s)", s.RequestTimeout, s.WriteTimeout)
	}
	p.check(s.ReadHeaderTimeout >= 0 && s.ShutdownTimeout >= 0 && s.HealthCheckTimeout >= 0,
		"server timeouts must not be negative")
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

// validate checks an outbound client section named by key. Clients that
// only send absolute URLs pass needsBaseURL false.
func (cl *ClientConfig) validate(p *problems, key string, needsBaseURL bool) {
	if needsBaseURL {
		p.check(cl.BaseURL != "", "%s.base_url must not be empty", key)
	}
	p.check(cl.Timeout > 0, "%s.timeout must be positive", key)
	p.check(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", key, cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", key, cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be >= 1, got %d", key, cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0,
		"%s.rate_limit.requests_per_second must not be negative, got %g", key, rl.RequestsPerSecond)
	if rl.RequestsPerSecond > 0 {
		p.check(rl.BurstSize >= 1,
			"%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", key, rl.BurstSize)
	}
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" {
		p.check(t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	}
}

func (pc *ProcessingConfig) validate(p *problems) {
	p.check(pc.MaxWorkers >= 1, "processing.max_workers must be >= 1, got %d", pc.MaxWorkers)
	p.check(pc.Timeout >= 0, "processing.timeout must not be negative")
}

func (e *EventsConfig) validate(p *problems) {
	if len(e.Webhooks) == 0 {
		return
	}

	e.Delivery.validate(p, "events.delivery", false)
	for i, wh := range e.Webhooks {
		u, err := url.Parse(wh.URL)
		p.check(err == nil && u.Scheme != "" && u.Host != "",
			"events.webhooks[%d].url must be an absolute URL, got %q", i, wh.URL)
		for j, name := range wh.Events {
			p.check(name != "", "events.webhooks[%d].events[%d] must not be empty", i, j)
		}
	}
}

// validate runs only when a component needing PostgreSQL is enabled.
func (d *DatabaseConfig) validate(p *problems) {
	p.check(d.URL != "", "database.url must not be empty when events.store.enabled is true")
	p.check(d.MaxConns >= 1, "database.max_conns must be >= 1, got %d", d.MaxConns)
	p.check(d.MinConns >= 0 && d.MinConns <= d.MaxConns,
		"database.min_conns must be between 0 and max_conns, got %d", d.MinConns)
}
