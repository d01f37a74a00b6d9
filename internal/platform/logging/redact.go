package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lower-cased header names whose values are never
// logged.
var SensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
}

// sensitiveFields are attribute keys masked wherever they appear, including
// inside groups.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"dsn",
	"database_url",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`)

	// Three base64url segments of at least ten characters each, so version
	// strings and hostnames do not match.
	jwtPattern = regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`)

	apiKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key)\s*[:=]\s*\S+`)

	// Connection strings with an embedded password, such as
	// postgres://board:hunter2@db:5432/events.
	credentialURLPattern = regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`)
)

func newRedactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)
	for _, name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyPattern),
		masq.WithRegex(credentialURLPattern),
	)
	return masq.New(opts...)
}
