// Package resilience groups fault isolation helpers for the board's storage path.
//
// The circuitbreaker subpackage wraps the sql connection pool so that a failing
// database is reported quickly instead of piling up blocked requests:
//
//	guarded := circuitbreaker.NewDBCircuitBreaker(db)
//	repo := postgres.NewArticleRepo(guarded)
//
// Calls are never retried; an open circuit surfaces as an ordinary error.
package resilience
