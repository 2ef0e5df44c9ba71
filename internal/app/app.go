// Package app assembles the ride service from configuration. The API server
// and the rebuild tool both start through Open so they read and write the
// same stores.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pkordes/ride-logbook/backend/internal/config"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/repo"
	"github.com/pkordes/ride-logbook/backend/internal/service"
	"github.com/pkordes/ride-logbook/backend/internal/weather"
	"github.com/pkordes/ride-logbook/backend/migrations"
)

// App holds the assembled ride service and the resources behind it.
type App struct {
	Rides *service.RideService

	closers []func() error
}

// Stores is the storage pair the ride service runs on.
type Stores struct {
	Events      repo.EventStore
	Projections repo.ProjectionStore
}

// Open migrates and opens the configured store, builds the weather provider
// chain and returns the ride service. Call Close when done.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	a := &App{}
	clock := domain.SystemClock{}

	stores, err := a.openStores(ctx, cfg, clock, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	provider := a.weatherProvider(ctx, cfg, logger)
	a.Rides = service.NewRideService(stores.Events, stores.Projections, provider, clock, logger)
	return a, nil
}

// Close releases every resource opened by Open, in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openStores(ctx context.Context, cfg config.Config, clock domain.Clock, logger *slog.Logger) (Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := repo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return Stores{}, err
		}
		a.closers = append(a.closers, db.Close)

		if err := migrate(ctx, db, goose.DialectSQLite3, logger); err != nil {
			return Stores{}, err
		}
		logger.Info("store ready", "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return Stores{
			Events:      repo.NewSQLiteEventStore(db),
			Projections: repo.NewSQLiteProjectionStore(db, clock),
		}, nil

	case config.DriverPostgres:
		if err := migratePostgres(ctx, cfg.DatabaseURL, logger); err != nil {
			return Stores{}, err
		}
		// pgxpool manages a pool of Postgres connections.
		// New() does not open connections immediately; the first query does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return Stores{}, fmt.Errorf("app: create database pool: %w", err)
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })

		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(ctx); err != nil {
			return Stores{}, fmt.Errorf("app: connect to database: %w", err)
		}
		logger.Info("store ready", "driver", cfg.StoreDriver)
		return Stores{
			Events:      repo.NewEventStore(pool),
			Projections: repo.NewProjectionStore(pool, clock),
		}, nil

	default:
		return Stores{}, fmt.Errorf("app: unsupported store driver %q", cfg.StoreDriver)
	}
}

// migratePostgres runs goose over a short-lived database/sql handle; the
// stores themselves use pgxpool.
func migratePostgres(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("app: open migration connection: %w", err)
	}
	defer db.Close()
	return migrate(ctx, db, goose.DialectPostgres, logger)
}

func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, logger *slog.Logger) error {
	results, err := migrations.Up(ctx, db, dialect)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	for _, r := range results {
		logger.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// weatherProvider builds OpenMeteo behind the cache. A Redis level is added
// when REDIS_URL is set and reachable; otherwise the cache is local only.
func (a *App) weatherProvider(ctx context.Context, cfg config.Config, logger *slog.Logger) *weather.Cache {
	opts := []weather.CacheOption{weather.WithLogger(logger)}
	if cfg.RedisURL != "" {
		client, err := weather.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, weather cache is local only", "error", err)
		} else {
			a.closers = append(a.closers, client.Close)
			opts = append(opts, weather.WithRemote(client))
		}
	}
	archive := weather.NewOpenMeteo(cfg.WeatherBaseURL, cfg.WeatherTimeout)
	return weather.NewCache(archive, cfg.WeatherCacheSize, cfg.WeatherCacheTTL, opts...)
}
