// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Processing ProcessingConfig `koanf:"processing"`
	Events     EventsConfig     `koanf:"events"`
	Database   DatabaseConfig   `koanf:"database"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	// RequestTimeout is the per-request handler deadline. It must leave room
	// under WriteTimeout for the 504 response to be written.
	RequestTimeout     time.Duration `koanf:"request_timeout"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout"`
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds downstream HTTP client settings. The same shape is used
// for the board API and for webhook delivery.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ProcessingConfig bounds how work items are processed.
type ProcessingConfig struct {
	// MaxWorkers caps concurrent items in a batch request.
	MaxWorkers int `koanf:"max_workers"`
	// Timeout bounds a single item. Zero means no per-item deadline.
	Timeout time.Duration `koanf:"timeout"`
}

// EventsConfig selects the subscribers attached to the event bus.
type EventsConfig struct {
	Log      bool             `koanf:"log"`
	Webhooks []WebhookConfig  `koanf:"webhooks"`
	Delivery ClientConfig     `koanf:"delivery"`
	Store    EventStoreConfig `koanf:"store"`
}

// WebhookConfig is one outbound webhook. An empty Events list receives every
// event.
type WebhookConfig struct {
	URL    string   `koanf:"url"`
	Events []string `koanf:"events"`
}

// EventStoreConfig toggles the PostgreSQL event log.
type EventStoreConfig struct {
	Enabled bool `koanf:"enabled"`
}

// DatabaseConfig holds PostgreSQL connection pool settings.
type DatabaseConfig struct {
	URL      string `koanf:"url"`
	MaxConns int32  `koanf:"max_conns"`
	MinConns int32  `koanf:"min_conns"`
}
