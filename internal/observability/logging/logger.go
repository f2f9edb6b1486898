package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"simple-board/internal/handler/http/requestid"
)

// Options configures NewLogger.
type Options struct {
	// Level is one of debug, info, warn, error. Anything else means info.
	Level string
	// Format is "json" (default) or "text".
	Format string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a structured logger. Source locations are added when
// running at debug level.
func NewLogger(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	level := ParseLevel(opts.Level)
	hopts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(out, hopts)
	} else {
		handler = slog.NewJSONHandler(out, hopts)
	}
	return slog.New(handler)
}

// WithRequestID returns a new logger that includes the request ID from the context.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With(slog.String("request_id", reqID))
}

type contextKey struct{}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}
