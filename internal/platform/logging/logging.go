// Package logging builds slog loggers with credential redaction and carries
// them through context.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// The stdio tool transport owns stdout, so loggers must write to stderr there.
//
// Context propagation:
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logging convention for application services:
//
//	logger.ErrorContext(ctx, "failed to create document",
//	    slog.String("operation", "CreateDocument"),
//	    slog.String("title", req.Title),
//	    slog.Any("error", err),
//	)
//
// Error logs carry the operation name, the identifiers at hand, and the full
// error chain via slog.Any("error", err). Requests that pass through the HTTP
// middleware also carry request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New builds a logger that writes to w with credential redaction applied.
//
// level is one of debug, info, warn (or warning) and error, case-insensitive;
// anything else means info. format "text" selects slog's text handler and
// any other value selects JSON. Debug loggers also record the call site.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
