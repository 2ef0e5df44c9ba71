// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported values of STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration values for the API server and the rebuild tool.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// StoreDriver selects the event and projection store: postgres or sqlite.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	// DatabaseURL is the Postgres connection string. Required for postgres.
	DatabaseURL string `env:"DATABASE_URL"`
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"ride-logbook.db"`

	// LogLevel controls the minimum log level: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	WeatherBaseURL   string        `env:"WEATHER_BASE_URL" envDefault:"https://archive-api.open-meteo.com/v1/archive"`
	WeatherTimeout   time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`
	WeatherCacheSize int           `env:"WEATHER_CACHE_SIZE" envDefault:"1024"`
	WeatherCacheTTL  time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"24h"`
	// RedisURL enables the shared weather cache level when set.
	RedisURL string `env:"REDIS_URL"`

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"ride-logbook"`
}

// Load reads an optional .env file, then configuration from environment
// variables. Variables already set in the environment win over .env.
// Returns an error listing every invalid or missing value.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("required environment variables not set: DATABASE_URL"))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("required environment variables not set: SQLITE_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.StoreDriver))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}
	if c.WeatherCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("WEATHER_CACHE_SIZE must be positive, got %d", c.WeatherCacheSize))
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel, falling back to info when it is not recognised.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// trimAll trims each entry, ignoring empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
