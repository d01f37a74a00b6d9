package logging

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

// Err is the attribute for an error chain.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}

// Op names the operation a record belongs to.
func Op(name string) slog.Attr {
	return slog.String("operation", name)
}

// WorkItem groups the kind and id of the work item a record is about.
func WorkItem(kind fmt.Stringer, id int64) slog.Attr {
	return slog.Group("work_item",
		slog.String("kind", kind.String()),
		slog.Int64("id", id),
	)
}

// Headers renders h as a "headers" group keyed by lower-cased header name,
// values joined by commas. Keys are sorted for stable output. Credential
// headers are masked by the redactor installed by New.
func Headers(h http.Header) slog.Attr {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.String(strings.ToLower(k), strings.Join(h[k], ",")))
	}
	return slog.Group("headers", attrs...)
}
