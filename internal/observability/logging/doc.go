// Package logging provides structured logging utilities with context propagation.
//
// It wraps log/slog with the constructors and helpers used across the
// service: JSON or text output, a configurable level, and request id
// propagation.
//
//	logger := logging.NewLogger(logging.Options{Level: "info"})
//	logging.WithRequestID(ctx, logger).Info("request completed")
package logging
