// Package persistence holds what the chart store adapters share.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jyotish/internal/domain/entity"
)

// Querier is satisfied by *sql.DB and by circuitbreaker.StoreBreaker.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// EncodeChart marshals the chart payload of rec.
func EncodeChart(rec *entity.ChartRecord) ([]byte, error) {
	if rec.Chart == nil {
		return nil, fmt.Errorf("encode chart %s: nil chart", rec.Fingerprint)
	}
	payload, err := json.Marshal(rec.Chart)
	if err != nil {
		return nil, fmt.Errorf("encode chart %s: %w", rec.Fingerprint, err)
	}
	return payload, nil
}

// DecodeChart unmarshals a stored chart payload.
func DecodeChart(payload []byte) (*entity.Chart, error) {
	var c entity.Chart
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return &c, nil
}

// RequestJSON returns rec.Request, or an empty object when unset.
func RequestJSON(rec *entity.ChartRecord) []byte {
	if len(rec.Request) == 0 {
		return []byte("{}")
	}
	return rec.Request
}
