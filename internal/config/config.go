// Package config assembles the service configuration from defaults, an
// optional YAML file, a .env file, and the process environment, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"jyotish/internal/engine/dasha"
	"jyotish/internal/ephemeris"
	"jyotish/internal/infra/db"
	"jyotish/internal/resilience/circuitbreaker"
	"jyotish/internal/usecase/kundli"
	env "jyotish/pkg/config"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	EngineVersion   string        `yaml:"engine_version"`
	HTTPAddr        string        `yaml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	HouseSystem     string        `yaml:"house_system"`
	DefaultAyanamsa int           `yaml:"default_ayanamsa"`

	Dasha     DashaConfig     `yaml:"dasha"`
	Cache     CacheConfig     `yaml:"cache"`
	Store     StoreConfig     `yaml:"store"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Breaker   BreakerConfig   `yaml:"ephemeris_breaker"`
}

// DashaConfig shapes the Vimshottari timeline.
type DashaConfig struct {
	Depth            int `yaml:"depth"`
	FollowingPeriods int `yaml:"following_periods"`
}

// CacheConfig sizes the in-memory chart cache.
type CacheConfig struct {
	Size int `yaml:"size"`
}

// StoreConfig selects the persistent chart store. An empty Driver disables it.
type StoreConfig struct {
	Driver        string        `yaml:"driver"`
	DSN           string        `yaml:"dsn"`
	Retention     time.Duration `yaml:"retention"`
	PurgeSchedule string        `yaml:"purge_schedule"`
}

// Enabled reports whether a chart store is configured.
func (s StoreConfig) Enabled() bool {
	return s.Driver != ""
}

// RateLimitConfig is the token bucket applied to the API.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// BreakerConfig tunes the ephemeris circuit breaker.
type BreakerConfig struct {
	MaxRequests      uint32        `yaml:"max_requests"`
	Interval         time.Duration `yaml:"interval"`
	Timeout          time.Duration `yaml:"timeout"`
	FailureThreshold float64       `yaml:"failure_threshold"`
	MinRequests      uint32        `yaml:"min_requests"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cb := circuitbreaker.EphemerisConfig()
	return &Config{
		EngineVersion:   kundli.DefaultEngineVersion,
		HTTPAddr:        ":8080",
		ShutdownTimeout: 10 * time.Second,
		RequestTimeout:  30 * time.Second,
		MaxBodyBytes:    64 << 10,
		HouseSystem:     string(ephemeris.HouseWholeSign),
		DefaultAyanamsa: int(ephemeris.Lahiri),
		Dasha: DashaConfig{
			Depth:            dasha.DefaultDepth,
			FollowingPeriods: dasha.DefaultFollowingPeriods,
		},
		Cache: CacheConfig{Size: 1024},
		Store: StoreConfig{
			Retention:     720 * time.Hour,
			PurgeSchedule: "0 3 * * *",
		},
		RateLimit: RateLimitConfig{RPS: 20, Burst: 40},
		Breaker: BreakerConfig{
			MaxRequests:      cb.MaxRequests,
			Interval:         cb.Interval,
			Timeout:          cb.Timeout,
			FailureThreshold: cb.FailureThreshold,
			MinRequests:      cb.MinRequests,
		},
	}
}

// Load reads .env (if present), the YAML file named by CONFIG_FILE (if set),
// and the environment, then validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	// #nosec G304 -- path comes from the operator's environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with any environment variables that are set.
func (c *Config) ApplyEnv() {
	c.EngineVersion = env.GetEnvString("ENGINE_VERSION", c.EngineVersion)
	c.HTTPAddr = env.GetEnvString("HTTP_ADDR", c.HTTPAddr)
	c.ShutdownTimeout = env.GetEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.RequestTimeout = env.GetEnvDuration("REQUEST_TIMEOUT", c.RequestTimeout)
	c.MaxBodyBytes = int64(env.GetEnvInt("MAX_BODY_BYTES", int(c.MaxBodyBytes)))
	c.HouseSystem = env.GetEnvString("EPHEMERIS_HOUSE_SYSTEM", c.HouseSystem)
	c.DefaultAyanamsa = env.GetEnvInt("DEFAULT_AYANAMSA", c.DefaultAyanamsa)

	c.Dasha.Depth = env.GetEnvInt("DASHA_DEPTH", c.Dasha.Depth)
	c.Dasha.FollowingPeriods = env.GetEnvInt("DASHA_FOLLOWING_PERIODS", c.Dasha.FollowingPeriods)

	c.Cache.Size = env.GetEnvInt("CHART_CACHE_SIZE", c.Cache.Size)

	c.Store.Driver = env.GetEnvString("CHART_STORE_DRIVER", c.Store.Driver)
	c.Store.DSN = env.GetEnvString("DATABASE_URL", c.Store.DSN)
	c.Store.Retention = env.GetEnvDuration("CHART_STORE_RETENTION", c.Store.Retention)
	c.Store.PurgeSchedule = env.GetEnvString("CHART_PURGE_SCHEDULE", c.Store.PurgeSchedule)

	c.RateLimit.RPS = env.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = env.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)

	c.Breaker.MaxRequests = uint32(env.GetEnvInt("EPHEMERIS_CB_MAX_REQUESTS", int(c.Breaker.MaxRequests)))
	c.Breaker.Interval = env.GetEnvDuration("EPHEMERIS_CB_INTERVAL", c.Breaker.Interval)
	c.Breaker.Timeout = env.GetEnvDuration("EPHEMERIS_CB_TIMEOUT", c.Breaker.Timeout)
	c.Breaker.FailureThreshold = env.GetEnvFloat("EPHEMERIS_CB_FAILURE_THRESHOLD", c.Breaker.FailureThreshold)
	c.Breaker.MinRequests = uint32(env.GetEnvInt("EPHEMERIS_CB_MIN_REQUESTS", int(c.Breaker.MinRequests)))
}

// Validate returns every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if c.EngineVersion == "" {
		add("engine_version", errors.New("is required"))
	}
	if c.HTTPAddr == "" {
		add("http_addr", errors.New("is required"))
	}
	add("shutdown_timeout", env.ValidatePositiveDuration(c.ShutdownTimeout))
	add("request_timeout", env.ValidatePositiveDuration(c.RequestTimeout))
	if c.MaxBodyBytes <= 0 {
		add("max_body_bytes", fmt.Errorf("must be positive, got %d", c.MaxBodyBytes))
	}
	if ephemeris.HouseSystem(c.HouseSystem) != ephemeris.HouseWholeSign {
		add("house_system", fmt.Errorf("%q is not supported, only %q", c.HouseSystem, ephemeris.HouseWholeSign))
	}
	if !ephemeris.Ayanamsa(c.DefaultAyanamsa).IsValid() {
		add("default_ayanamsa", fmt.Errorf("unsupported ayanamsa %d", c.DefaultAyanamsa))
	}
	add("dasha.depth", env.ValidateIntRange(c.Dasha.Depth, 1, 3))
	add("dasha.following_periods", env.ValidateIntRange(c.Dasha.FollowingPeriods, 1, 27))
	add("cache.size", env.ValidateIntRange(c.Cache.Size, 1, 1<<20))

	if c.Store.Enabled() {
		if _, err := db.Dialect(c.Store.Driver).DriverName(); err != nil {
			add("store.driver", err)
		}
		if c.Store.DSN == "" {
			add("store.dsn", errors.New("DATABASE_URL is required when a store driver is set"))
		}
		add("store.retention", env.ValidatePositiveDuration(c.Store.Retention))
		add("store.purge_schedule", env.ValidateCronSchedule(c.Store.PurgeSchedule))
	}

	if c.RateLimit.RPS <= 0 {
		add("rate_limit.rps", fmt.Errorf("must be positive, got %v", c.RateLimit.RPS))
	}
	if c.RateLimit.Burst < 1 {
		add("rate_limit.burst", fmt.Errorf("must be at least 1, got %d", c.RateLimit.Burst))
	}

	if c.Breaker.FailureThreshold <= 0 || c.Breaker.FailureThreshold > 1 {
		add("ephemeris_breaker.failure_threshold", fmt.Errorf("must be in (0, 1], got %v", c.Breaker.FailureThreshold))
	}
	add("ephemeris_breaker.timeout", env.ValidatePositiveDuration(c.Breaker.Timeout))
	if c.Breaker.MaxRequests == 0 {
		add("ephemeris_breaker.max_requests", errors.New("must be at least 1"))
	}

	return errors.Join(errs...)
}

// DashaBuilder returns the configured timeline builder.
func (c *Config) DashaBuilder() dasha.Builder {
	return dasha.Builder{Depth: c.Dasha.Depth, FollowingPeriods: c.Dasha.FollowingPeriods}
}

// BreakerSettings converts the breaker section into a circuitbreaker.Config.
// ignore marks errors that must not count as failures.
func (c *Config) BreakerSettings(ignore func(error) bool) circuitbreaker.Config {
	cfg := circuitbreaker.EphemerisConfig()
	cfg.MaxRequests = c.Breaker.MaxRequests
	cfg.Interval = c.Breaker.Interval
	cfg.Timeout = c.Breaker.Timeout
	cfg.FailureThreshold = c.Breaker.FailureThreshold
	cfg.MinRequests = c.Breaker.MinRequests
	cfg.Ignore = ignore
	return cfg
}
