// Package logging builds the service's slog loggers and carries the
// request-scoped logger through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "processing")
//
// Error records follow one shape across the service: the operation, the work
// item involved and the wrapped error chain.
//
//	logger.ErrorContext(ctx, "work item processing failed",
//	    logging.Op("Process"),
//	    logging.WorkItem(workitem.KindStory, 42),
//	    logging.Err(err),
//	)
//
// Every handler built by New passes attributes through the masq redactor, so
// credentials that slip into a record are masked before they are written.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case; anything else means info. format "text" selects the
// logfmt-style handler and everything else JSON. Debug loggers include the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactor(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name to a slog.Level, defaulting to
// info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
