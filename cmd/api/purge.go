package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"jyotish/internal/handler/http/respond"
	"jyotish/internal/observability/metrics"
	"jyotish/internal/repository"
)

const purgeTimeout = 5 * time.Minute

// purger evicts stored charts that were not read within the retention
// window or that belong to another engine version.
type purger struct {
	repo          repository.ChartRepository
	engineVersion string
	retention     time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

func (p *purger) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	start := time.Now()
	cutoff := p.now().Add(-p.retention)

	stale, err := p.repo.DeleteAccessedBefore(ctx, cutoff)
	if err != nil {
		p.logger.Error("purge of stale charts failed", slog.Any("error", respond.SanitizeError(err)))
	} else {
		metrics.RecordPurge("stale", stale)
	}

	outdated, err := p.repo.DeleteOtherVersions(ctx, p.engineVersion)
	if err != nil {
		p.logger.Error("purge of outdated charts failed", slog.Any("error", respond.SanitizeError(err)))
	} else {
		metrics.RecordPurge("engine_version", outdated)
	}

	p.logger.Info("chart purge completed",
		slog.Time("cutoff", cutoff),
		slog.Int64("stale", stale),
		slog.Int64("outdated", outdated),
		slog.Duration("duration", time.Since(start)))
}

// startPurge schedules the purge job. The returned scheduler must be stopped on shutdown.
func startPurge(ctx context.Context, logger *slog.Logger, schedule string, p *purger) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(schedule, func() { p.run(ctx) }); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("chart purge scheduled",
		slog.String("schedule", schedule),
		slog.Duration("retention", p.retention))
	return c, nil
}
