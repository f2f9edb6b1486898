// Package metrics provides the Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics:
//   - HTTP request metrics (duration, count, size, in-flight)
//   - Business metrics (stored articles, article operations)
//   - Database connection pool metrics
//
// All metrics are registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "simple-board/internal/observability/metrics"
//
//	func save(ctx context.Context) error {
//	    err := doSave(ctx)
//	    metrics.RecordArticleOperation(metrics.OpCreate, err)
//	    return err
//	}
package metrics
