package kundli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"jyotish/internal/astrotime"
	"jyotish/internal/cache"
	"jyotish/internal/domain/entity"
	"jyotish/internal/engine/chart"
	"jyotish/internal/engine/dasha"
	"jyotish/internal/ephemeris"
	"jyotish/internal/observability/logging"
	"jyotish/internal/observability/metrics"
	"jyotish/internal/observability/tracing"
	"jyotish/internal/repository"
	"jyotish/internal/resilience/circuitbreaker"
	"jyotish/internal/resilience/retry"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

// DefaultEngineVersion prefixes cache keys so that a new engine release
// never serves charts computed by an older one.
const DefaultEngineVersion = "1.1.0"

// Service generates charts.
//
// Only Providers is required. Cache, Repo, and Breaker are optional layers.
// Returned charts may be shared with the cache and with concurrent callers
// and must be treated as read-only.
type Service struct {
	Providers     ephemeris.Factory
	Cache         *cache.ChartCache
	Repo          repository.ChartRepository
	Breaker       *circuitbreaker.CircuitBreaker
	Dasha         dasha.Builder
	HouseSystem   ephemeris.HouseSystem
	EngineVersion string
	StoreRetry    retry.Config
	Now           func() time.Time

	group singleflight.Group
}

func (s *Service) engineVersion() string {
	if s.EngineVersion == "" {
		return DefaultEngineVersion
	}
	return s.EngineVersion
}

func (s *Service) houseSystem() ephemeris.HouseSystem {
	if s.HouseSystem == "" {
		return ephemeris.HouseWholeSign
	}
	return s.HouseSystem
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate returns the chart for req, from the cache when possible.
// Invalid requests fail with an error matching entity.ErrInvalidInput; an
// open ephemeris circuit fails with ErrEphemerisUnavailable.
func (s *Service) Generate(ctx context.Context, req Request) (*entity.Chart, error) {
	ctx, span := tracing.StartSpan(ctx, "kundli.generate")
	c, err := s.generate(ctx, req)
	tracing.EndSpan(span, err)
	return c, err
}

func (s *Service) generate(ctx context.Context, req Request) (*entity.Chart, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}
	key := req.Fingerprint(s.engineVersion(), s.houseSystem())
	logger := logging.FromContext(ctx).With(slog.String("fingerprint", key))

	if s.Cache != nil {
		c, ok := s.Cache.Get(key)
		metrics.RecordCacheLookup(metrics.TierMemory, ok)
		if ok {
			logger.Debug("chart served from memory")
			return c, nil
		}
	}
	if c := s.lookupStore(ctx, logger, key); c != nil {
		s.remember(key, c)
		logger.Debug("chart served from store")
		return c, nil
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		c, err := s.compute(ctx, req)
		if err != nil {
			return nil, err
		}
		s.remember(key, c)
		s.persist(context.WithoutCancel(ctx), logger, key, req, c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("chart computation shared")
	}
	return v.(*entity.Chart), nil
}

// CurrentDasha returns the running period chain at the instant at,
// mahadasha first.
func (s *Service) CurrentDasha(ctx context.Context, req Request, at time.Time) ([]entity.DashaPeriod, error) {
	c, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	chain := c.Dasha.Current(at)
	if len(chain) == 0 {
		return nil, &entity.ValidationError{Field: "at", Message: "outside the dasha timeline"}
	}
	return chain, nil
}

func (s *Service) compute(ctx context.Context, req Request) (*entity.Chart, error) {
	_, span := tracing.StartSpan(ctx, "kundli.compute",
		attribute.String("ayanamsa", req.Ayanamsa.String()),
	)
	c, err := s.computeChart(req)
	tracing.EndSpan(span, err)
	return c, err
}

func (s *Service) computeChart(req Request) (*entity.Chart, error) {
	birth, err := astrotime.ParseBirth(req.Dob, req.Tob, req.Timezone)
	if err != nil {
		return nil, &entity.ValidationError{Field: "tob", Message: err.Error()}
	}
	calc := chart.Calculator{
		Provider:    s.Providers(),
		Dasha:       s.Dasha,
		HouseSystem: s.houseSystem(),
	}
	in := chart.Input{
		JulianDay: astrotime.JulianDay(birth),
		Latitude:  req.Lat,
		Longitude: req.Lon,
		Ayanamsa:  req.Ayanamsa,
		Birth:     birth,
	}

	start := time.Now()
	var c *entity.Chart
	if s.Breaker != nil {
		c, err = circuitbreaker.Do(s.Breaker, func() (*entity.Chart, error) {
			return calc.Compute(in)
		})
		metrics.RecordBreakerState(s.Breaker.State())
	} else {
		c, err = calc.Compute(in)
	}
	metrics.RecordChartComputed(err == nil, time.Since(start))

	switch {
	case err == nil:
		return c, nil
	case circuitbreaker.IsRejected(err):
		return nil, fmt.Errorf("%w: %v", ErrEphemerisUnavailable, err)
	default:
		return nil, fmt.Errorf("compute chart: %w", err)
	}
}

func (s *Service) remember(key string, c *entity.Chart) {
	if s.Cache == nil {
		return
	}
	s.Cache.Add(key, c)
	metrics.SetCacheEntries(s.Cache.Len())
}

// lookupStore returns nil on a miss or on any store failure.
func (s *Service) lookupStore(ctx context.Context, logger *slog.Logger, key string) *entity.Chart {
	if s.Repo == nil {
		return nil
	}
	start := time.Now()
	rec, err := s.Repo.Get(ctx, key)
	metrics.RecordStoreOperation("get", err, time.Since(start))
	if err != nil {
		logger.Warn("chart store lookup failed", slog.Any("error", err))
		return nil
	}
	hit := rec != nil && rec.Chart != nil && rec.EngineVersion == s.engineVersion()
	metrics.RecordCacheLookup(metrics.TierStore, hit)
	if !hit {
		return nil
	}

	start = time.Now()
	err = s.Repo.Touch(ctx, key, s.now())
	metrics.RecordStoreOperation("touch", err, time.Since(start))
	if err != nil {
		logger.Warn("chart store touch failed", slog.Any("error", err))
	}
	return rec.Chart
}

// persist saves c to the store. Failures are logged and not returned.
func (s *Service) persist(ctx context.Context, logger *slog.Logger, key string, req Request, c *entity.Chart) {
	if s.Repo == nil {
		return
	}
	raw, err := json.Marshal(req)
	if err != nil {
		logger.Warn("encode chart request failed", slog.Any("error", err))
		return
	}
	now := s.now()
	rec := &entity.ChartRecord{
		Fingerprint:    key,
		EngineVersion:  s.engineVersion(),
		Request:        raw,
		Chart:          c,
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	cfg := s.StoreRetry
	if cfg.MaxAttempts == 0 {
		cfg = retry.StoreConfig()
	}
	start := time.Now()
	err = retry.WithBackoff(ctx, cfg, func() error {
		return s.Repo.Save(ctx, rec)
	})
	metrics.RecordStoreOperation("save", err, time.Since(start))
	if err != nil {
		logger.Error("chart store save failed", slog.Any("error", err))
	}
}
