package config

import "maps"

// defaults seeds every known key before the YAML layers load, which also makes
// each key addressable through an APP_ variable when no file mentions it.
func defaults() map[string]any {
	all := make(map[string]any)

	for prefix, section := range map[string]map[string]any{
		"server": {
			"host":                 "0.0.0.0",
			"port":                 8080,
			"read_timeout":         "5s",
			"read_header_timeout":  "2s",
			"write_timeout":        "10s",
			"idle_timeout":         "120s",
			"request_timeout":      "8s",
			"shutdown_timeout":     "15s",
			"health_check_timeout": "2s",
		},
		"log": {
			"level":  "info",
			"format": "json",
		},
		"client": resilience("30s", "100ms", "10s", map[string]any{
			"base_url":                       "http://localhost:8081",
			"rate_limit.requests_per_second": 0,
			"rate_limit.burst_size":          1,
		}),
		"telemetry": {
			"enabled":  false,
			"exporter": "stdout",
			"endpoint": "",
		},
		"processing": {
			"max_workers": 4,
			"timeout":     "0s",
		},
		"events": {
			"log":           true,
			"store.enabled": false,
		},
		"events.delivery": resilience("10s", "200ms", "5s", nil),
		"database": {
			"url":       "",
			"max_conns": 10,
			"min_conns": 1,
		},
	} {
		for key, val := range section {
			all[prefix+"."+key] = val
		}
	}
	return all
}

// resilience returns the timeout, retry and breaker keys shared by every
// outbound HTTP section, merged with extra.
func resilience(timeout, initialInterval, maxInterval string, extra map[string]any) map[string]any {
	section := map[string]any{
		"timeout":                         timeout,
		"retry.max_attempts":              3,
		"retry.initial_interval":          initialInterval,
		"retry.max_interval":              maxInterval,
		"retry.multiplier":                2.0,
		"circuit_breaker.max_failures":    5,
		"circuit_breaker.timeout":         "30s",
		"circuit_breaker.half_open_limit": 1,
	}
	maps.Copy(section, extra)
	return section
}
