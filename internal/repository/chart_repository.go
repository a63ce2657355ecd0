package repository

import (
	"context"
	"time"

	"jyotish/internal/domain/entity"
)

// ChartRepository persists computed charts keyed by request fingerprint.
// Get returns (nil, nil) when no chart is stored under the fingerprint.
type ChartRepository interface {
	Get(ctx context.Context, fingerprint string) (*entity.ChartRecord, error)
	Save(ctx context.Context, rec *entity.ChartRecord) error
	Touch(ctx context.Context, fingerprint string, at time.Time) error
	DeleteAccessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteOtherVersions(ctx context.Context, engineVersion string) (int64, error)
}
