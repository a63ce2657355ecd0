package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// StoreBreaker wraps the chart store connection with circuit breaker
// protection. It satisfies the querier interface the store adapters accept.
type StoreBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// StoreConfig returns configuration for the chart store breaker.
// Opens after 5 consecutive failures, 30 second timeout.
func StoreConfig() Config {
	return Config{
		Name:             "chart-store",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewStoreBreaker wraps db using StoreConfig.
func NewStoreBreaker(db *sql.DB) *StoreBreaker {
	return NewStoreBreakerWithConfig(db, StoreConfig())
}

// NewStoreBreakerWithConfig wraps db using cfg.
func NewStoreBreakerWithConfig(db *sql.DB, cfg Config) *StoreBreaker {
	return &StoreBreaker{cb: New(cfg), db: db}
}

// QueryContext executes a query unless the circuit is open.
func (s *StoreBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return Do(s.cb, func() (*sql.Rows, error) {
		return s.db.QueryContext(ctx, query, args...)
	})
}

// ExecContext executes a statement unless the circuit is open.
func (s *StoreBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return Do(s.cb, func() (sql.Result, error) {
		return s.db.ExecContext(ctx, query, args...)
	})
}

// QueryRowContext bypasses the breaker: sql.Row defers its error to Scan.
func (s *StoreBreaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (s *StoreBreaker) State() gobreaker.State {
	return s.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (s *StoreBreaker) IsOpen() bool {
	return s.cb.IsOpen()
}

// DB returns the underlying connection.
func (s *StoreBreaker) DB() *sql.DB {
	return s.db
}
