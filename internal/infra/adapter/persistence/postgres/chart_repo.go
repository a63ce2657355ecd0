package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jyotish/internal/domain/entity"
	"jyotish/internal/infra/adapter/persistence"
	"jyotish/internal/repository"
)

type ChartRepo struct{ db persistence.Querier }

func NewChartRepo(db persistence.Querier) repository.ChartRepository {
	return &ChartRepo{db: db}
}

func (repo *ChartRepo) Get(ctx context.Context, fingerprint string) (*entity.ChartRecord, error) {
	const query = `
SELECT fingerprint, engine_version, request, payload, created_at, last_accessed_at
FROM charts
WHERE fingerprint = $1
LIMIT 1`
	var rec entity.ChartRecord
	var request, payload []byte
	err := repo.db.QueryRowContext(ctx, query, fingerprint).Scan(
		&rec.Fingerprint, &rec.EngineVersion, &request, &payload, &rec.CreatedAt, &rec.LastAccessedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	rec.Request = request
	if rec.Chart, err = persistence.DecodeChart(payload); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &rec, nil
}

func (repo *ChartRepo) Save(ctx context.Context, rec *entity.ChartRecord) error {
	const query = `
INSERT INTO charts (fingerprint, engine_version, request, payload, created_at, last_accessed_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (fingerprint) DO UPDATE SET
    engine_version   = EXCLUDED.engine_version,
    payload          = EXCLUDED.payload,
    last_accessed_at = EXCLUDED.last_accessed_at`
	payload, err := persistence.EncodeChart(rec)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	accessed := rec.LastAccessedAt
	if accessed.IsZero() {
		accessed = created
	}
	if _, err := repo.db.ExecContext(ctx, query,
		rec.Fingerprint, rec.EngineVersion, persistence.RequestJSON(rec), payload, created, accessed,
	); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (repo *ChartRepo) Touch(ctx context.Context, fingerprint string, at time.Time) error {
	const query = `UPDATE charts SET last_accessed_at = $1 WHERE fingerprint = $2`
	if _, err := repo.db.ExecContext(ctx, query, at, fingerprint); err != nil {
		return fmt.Errorf("Touch: %w", err)
	}
	return nil
}

func (repo *ChartRepo) DeleteAccessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM charts WHERE last_accessed_at < $1`
	res, err := repo.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("DeleteAccessedBefore: %w", err)
	}
	return res.RowsAffected()
}

func (repo *ChartRepo) DeleteOtherVersions(ctx context.Context, engineVersion string) (int64, error) {
	const query = `DELETE FROM charts WHERE engine_version <> $1`
	res, err := repo.db.ExecContext(ctx, query, engineVersion)
	if err != nil {
		return 0, fmt.Errorf("DeleteOtherVersions: %w", err)
	}
	return res.RowsAffected()
}
