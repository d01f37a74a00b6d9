// Package webhook delivers work item events to external HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
	"github.com/jsamuelsen11/workitem-service/internal/platform/config"
	"github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
)

// Headers set on every delivery.
const (
	HeaderEventName = "X-Event-Name"
	HeaderEventID   = "X-Event-ID"
)

// Subscriber POSTs the JSON envelope of matching events to one URL. It is an
// event bus subscriber and a health checker reporting its circuit breaker.
type Subscriber struct {
	name   string
	url    string
	events []string
	client *httpclient.Client
	logger *slog.Logger
}

// New creates a Subscriber for cfg. An empty cfg.Events matches every event.
// The client carries the delivery breaker, retry and tracing.
func New(cfg config.WebhookConfig, client *httpclient.Client, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		name:   NameFor(cfg.URL),
		url:    cfg.URL,
		events: slices.Clone(cfg.Events),
		client: client,
		logger: logger,
	}
}

// NewFromConfig builds one Subscriber per configured webhook, each with its
// own delivery client so that one failing endpoint only trips its own
// breaker.
func NewFromConfig(cfg config.EventsConfig, metrics *telemetry.Metrics, logger *slog.Logger) []*Subscriber {
	subs := make([]*Subscriber, 0, len(cfg.Webhooks))
	for _, wh := range cfg.Webhooks {
		delivery := cfg.Delivery
		client := httpclient.New(&delivery, NameFor(wh.URL), metrics, logger)
		subs = append(subs, New(wh, client, logger))
	}
	return subs
}

// NameFor derives a subscriber name from a webhook URL. Only the host is
// used so credentials in paths or queries never reach logs.
func NameFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "webhook"
	}
	return "webhook:" + u.Host
}

// Name implements eventbus.Subscriber and ports.HealthChecker.
func (s *Subscriber) Name() string { return s.name }

// Accepts reports whether an event named name passes the filter.
func (s *Subscriber) Accepts(name string) bool {
	return len(s.events) == 0 || slices.Contains(s.events, name)
}

// Handle implements eventbus.Subscriber. Events that do not pass the filter
// are skipped.
func (s *Subscriber) Handle(ctx context.Context, env event.Envelope) error {
	if !s.Accepts(env.Name) {
		return nil
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", env.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventName, env.Name)
	req.Header.Set(HeaderEventID, env.ID)

	resp, err := s.client.Do(ctx, req)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil {
		return fmt.Errorf("deliver event %s to %s: %w", env.ID, s.name, err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("deliver event %s to %s: unexpected status %d", env.ID, s.name, resp.StatusCode)
	}

	s.logger.DebugContext(ctx, "webhook delivered",
		slog.String("subscriber", s.name),
		slog.String("event", env.Name),
		slog.String("event_id", env.ID),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}

// HealthCheck reports the delivery circuit breaker state.
func (s *Subscriber) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}
