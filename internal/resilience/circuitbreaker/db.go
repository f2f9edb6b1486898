package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker guards a connection pool with a circuit breaker.
// It satisfies the query/exec surface the postgres adapter uses, so it can stand in for *sql.DB.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig returns configuration tuned for the article database.
// Opens after 5 consecutive failures and probes again after 30 seconds.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewDBCircuitBreaker wraps db using DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

// NewDBCircuitBreakerWithConfig wraps db using cfg.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: New(cfg), db: db}
}

// QueryContext executes a query with circuit breaker protection.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext passes straight through: sql.Row defers its error to Scan,
// so the breaker cannot observe the outcome.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the underlying pool, e.g. for starting transactions.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}
