// Package observability groups the logging, metrics and tracing support
// shared by the API server.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracing integration
package observability
