package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jyotish/internal/domain/entity"
)

type purgeRepo struct {
	cutoff     time.Time
	version    string
	staleErr   error
	staleCount int64
	oldCount   int64
}

func (r *purgeRepo) Get(context.Context, string) (*entity.ChartRecord, error) { return nil, nil }
func (r *purgeRepo) Save(context.Context, *entity.ChartRecord) error         { return nil }
func (r *purgeRepo) Touch(context.Context, string, time.Time) error          { return nil }

func (r *purgeRepo) DeleteAccessedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	return r.staleCount, r.staleErr
}

func (r *purgeRepo) DeleteOtherVersions(_ context.Context, version string) (int64, error) {
	r.version = version
	return r.oldCount, nil
}

func TestPurger_Run(t *testing.T) {
	now := time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)
	repo := &purgeRepo{staleCount: 4, oldCount: 2}
	p := &purger{
		repo:          repo,
		engineVersion: "1.1.0",
		retention:     48 * time.Hour,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           func() time.Time { return now },
	}

	p.run(context.Background())

	assert.Equal(t, now.Add(-48*time.Hour), repo.cutoff)
	assert.Equal(t, "1.1.0", repo.version)
}

func TestPurger_StaleFailureStillPurgesOldVersions(t *testing.T) {
	repo := &purgeRepo{staleErr: errors.New("connection refused")}
	p := &purger{
		repo:          repo,
		engineVersion: "2.0.0",
		retention:     time.Hour,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
	}

	p.run(context.Background())

	assert.Equal(t, "2.0.0", repo.version)
}

func TestStartPurge_RejectsBadSchedule(t *testing.T) {
	p := &purger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	_, err := startPurge(context.Background(), p.logger, "whenever", p)
	assert.Error(t, err)
}
