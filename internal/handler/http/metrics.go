package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"simple-board/internal/handler/http/pathutil"
	"simple-board/internal/handler/http/responsewriter"
	"simple-board/internal/observability/metrics"
)

// MetricsMiddleware records HTTP request metrics including duration, size, and status codes.
// Paths are normalized first so ids do not blow up label cardinality
// (/articles/123 -> /articles/:id).
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(r.Method, path, rw.StatusCode(), time.Since(start), r.ContentLength, rw.BytesWritten())
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
