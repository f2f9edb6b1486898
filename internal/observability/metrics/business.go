package metrics

import (
	"database/sql"
	"errors"
	"strconv"
	"time"
)

// Operation labels for ArticleOperationsTotal.
const (
	OpList       = "list"
	OpGet        = "get"
	OpCreate     = "create"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpDeleteMany = "delete_many"
)

// Result labels for ArticleOperationsTotal.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// RecordArticleOperation increments the operation counter.
// notFound is checked with errors.Is so callers can pass their own sentinel.
func RecordArticleOperation(operation string, err error, notFound error) {
	result := ResultSuccess
	switch {
	case err == nil:
	case notFound != nil && errors.Is(err, notFound):
		result = ResultNotFound
	default:
		result = ResultError
	}
	ArticleOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateArticlesTotal updates the total count of articles in the store.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// RecordDBPoolStats copies connection pool statistics into the pool gauges.
func RecordDBPoolStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}

// RecordHTTPRequest records an HTTP request with its metadata.
// path must already be normalized.
func RecordHTTPRequest(method, path string, status int, duration time.Duration, requestSize int64, responseSize int) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}
