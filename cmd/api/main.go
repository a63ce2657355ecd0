package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sony/gobreaker"

	"jyotish/internal/cache"
	"jyotish/internal/config"
	"jyotish/internal/domain/entity"
	"jyotish/internal/ephemeris"
	"jyotish/internal/infra/adapter/persistence/postgres"
	"jyotish/internal/infra/adapter/persistence/sqlite"
	"jyotish/internal/infra/db"
	"jyotish/internal/infra/ephemeris/analytic"
	"jyotish/internal/observability/logging"
	"jyotish/internal/observability/metrics"
	"jyotish/internal/observability/tracing"
	"jyotish/internal/repository"
	"jyotish/internal/resilience/circuitbreaker"
	kundliUC "jyotish/internal/usecase/kundli"
	env "jyotish/pkg/config"

	hhttp "jyotish/internal/handler/http"
	hkundli "jyotish/internal/handler/http/kundli"
	"jyotish/internal/handler/http/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger, closer := logging.New(logging.OptionsFromEnv())
	defer func() { _ = closer.Close() }()
	slog.SetDefault(logger)

	tp := tracing.Setup(env.GetEnvFloat("TRACE_SAMPLE_RATIO", 1))
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	database, repo := initStore(logger, cfg)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close chart store", slog.Any("error", err))
			}
		}()
	}

	components := setupServer(logger, cfg, database, repo)
	runServer(logger, cfg, components)
}

// initStore opens and migrates the chart store when one is configured.
func initStore(logger *slog.Logger, cfg *config.Config) (*sql.DB, repository.ChartRepository) {
	if !cfg.Store.Enabled() {
		logger.Info("chart store disabled, using in-memory cache only")
		return nil, nil
	}

	dialect := db.Dialect(cfg.Store.Driver)
	ctx := context.Background()
	database, err := db.Open(ctx, dialect, cfg.Store.DSN)
	if err != nil {
		logger.Error("failed to open chart store", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database, dialect); err != nil {
		logger.Error("failed to migrate chart store", slog.Any("error", err))
		os.Exit(1)
	}

	guarded := circuitbreaker.NewStoreBreaker(database)
	switch dialect {
	case db.SQLite:
		return database, sqlite.NewChartRepo(guarded)
	default:
		return database, postgres.NewChartRepo(guarded)
	}
}

// ServerComponents holds what runServer needs to serve and clean up.
type ServerComponents struct {
	Handler http.Handler
	Repo    repository.ChartRepository
}

// setupServer builds the chart service, routes, and middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB, repo repository.ChartRepository) *ServerComponents {
	chartCache, err := cache.New(cfg.Cache.Size)
	if err != nil {
		logger.Error("failed to create chart cache", slog.Any("error", err))
		os.Exit(1)
	}

	settings := cfg.BreakerSettings(func(err error) bool {
		return errors.Is(err, entity.ErrInvalidInput)
	})
	settings.OnStateChange = func(_, to gobreaker.State) { metrics.RecordBreakerState(to) }
	breaker := circuitbreaker.New(settings)
	metrics.RecordBreakerState(breaker.State())

	svc := &kundliUC.Service{
		Providers:     analytic.Factory(),
		Cache:         chartCache,
		Repo:          repo,
		Breaker:       breaker,
		Dasha:         cfg.DashaBuilder(),
		HouseSystem:   ephemeris.HouseSystem(cfg.HouseSystem),
		EngineVersion: cfg.EngineVersion,
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, EngineVersion: cfg.EngineVersion})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	hkundli.Register(mux, svc, ephemeris.Ayanamsa(cfg.DefaultAyanamsa))

	limiter, err := hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	if err != nil {
		logger.Error("failed to create rate limiter", slog.Any("error", err))
		os.Exit(1)
	}

	// First listed runs outermost. MetricsMiddleware wraps the mux directly
	// so it sees the matched route pattern.
	handler := hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		limiter.Limit,
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
		hhttp.Timeout(cfg.RequestTimeout),
		hhttp.MetricsMiddleware,
	)

	logger.Info("chart service configured",
		slog.String("engine_version", cfg.EngineVersion),
		slog.String("house_system", cfg.HouseSystem),
		slog.Int("default_ayanamsa", cfg.DefaultAyanamsa),
		slog.Int("cache_size", cfg.Cache.Size),
		slog.Bool("store_enabled", repo != nil),
		slog.Float64("rate_limit_rps", cfg.RateLimit.RPS),
		slog.Int("rate_limit_burst", cfg.RateLimit.Burst))

	return &ServerComponents{Handler: handler, Repo: repo}
}

// runServer starts the HTTP server and the purge job, and shuts both down
// on SIGINT or SIGTERM.
func runServer(logger *slog.Logger, cfg *config.Config, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.Repo != nil {
		p := &purger{
			repo:          components.Repo,
			engineVersion: cfg.EngineVersion,
			retention:     cfg.Store.Retention,
			logger:        logger,
			now:           func() time.Time { return time.Now().UTC() },
		}
		scheduler, err := startPurge(ctx, logger, cfg.Store.PurgeSchedule, p)
		if err != nil {
			logger.Error("failed to schedule chart purge", slog.Any("error", err))
			os.Exit(1)
		}
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("engine_version", cfg.EngineVersion))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", fmt.Errorf("listen %s: %w", cfg.HTTPAddr, err)))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
