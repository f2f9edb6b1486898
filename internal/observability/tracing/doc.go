// Package tracing provides OpenTelemetry tracing integration.
//
// Init installs a global tracer provider and the W3C trace context propagator.
// Middleware starts one server span per HTTP request and exposes its trace id
// in the X-Trace-Id response header.
//
//	shutdown := tracing.Init("simple-board", 1.0)
//	defer shutdown(context.Background())
//
//	handler := tracing.Middleware(mux)
package tracing
