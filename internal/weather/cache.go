package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
)

const keyPrefix = "ride-logbook:weather:"

// Provider is the lookup Cache decorates. It has the same method set as
// command.WeatherProvider.
type Provider interface {
	HistoricalWeather(ctx context.Context, q domain.WeatherQuery) (*domain.Weather, error)
	SourceName() string
}

// Remote is the subset of a Redis client Cache uses as its second level.
// *redis.Client satisfies it.
type Remote interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Cache decorates a Provider with an in-process LRU, an optional Redis level
// and de-duplication of concurrent identical lookups. Historical weather does
// not change, so only populated results are cached; empty results and errors
// always go back to the provider next time. A failing cache level is logged
// and skipped, never reported to the caller.
type Cache struct {
	next   Provider
	local  *expirable.LRU[string, *domain.Weather]
	remote Remote
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithRemote adds a Redis second level.
func WithRemote(r Remote) CacheOption {
	return func(c *Cache) { c.remote = r }
}

// WithLogger sets the logger for cache faults. Defaults to slog.Default().
func WithLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) { c.logger = l }
}

// NewCache wraps next. size bounds the in-process level; ttl applies to both
// levels, and zero means entries never expire.
func NewCache(next Provider, size int, ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		next:   next,
		local:  expirable.NewLRU[string, *domain.Weather](max(size, 1), nil, ttl),
		ttl:    ttl,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SourceName reports the decorated provider's source.
func (c *Cache) SourceName() string { return c.next.SourceName() }

// HistoricalWeather serves q from the cache when possible. Concurrent calls
// for the same key share one underlying lookup; a caller whose ctx ends
// stops waiting without cancelling the shared lookup.
func (c *Cache) HistoricalWeather(ctx context.Context, q domain.WeatherQuery) (*domain.Weather, error) {
	key := cacheKey(q)
	if w, ok := c.local.Get(key); ok {
		return w, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		return c.load(context.WithoutCancel(ctx), key, q)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Weather), nil
	}
}

func (c *Cache) load(ctx context.Context, key string, q domain.WeatherQuery) (*domain.Weather, error) {
	if w, ok := c.getRemote(ctx, key); ok {
		c.local.Add(key, w)
		return w, nil
	}

	w, err := c.next.HistoricalWeather(ctx, q)
	if err != nil {
		return nil, err
	}
	if w == nil || w.IsUnavailable() {
		return w, nil
	}
	c.local.Add(key, w)
	c.setRemote(ctx, key, w)
	return w, nil
}

func (c *Cache) getRemote(ctx context.Context, key string) (*domain.Weather, bool) {
	if c.remote == nil {
		return nil, false
	}
	raw, err := c.remote.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "weather cache read failed", "key", key, "error", err)
		return nil, false
	}
	var w domain.Weather
	if err := json.Unmarshal(raw, &w); err != nil {
		c.logger.WarnContext(ctx, "weather cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	return &w, true
}

func (c *Cache) setRemote(ctx context.Context, key string, w *domain.Weather) {
	if c.remote == nil {
		return
	}
	raw, err := json.Marshal(w)
	if err != nil {
		c.logger.WarnContext(ctx, "weather cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.remote.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "weather cache write failed", "key", key, "error", err)
	}
}

// cacheKey rounds coordinates to four places (about 11 m), well inside the
// archive's grid resolution.
func cacheKey(q domain.WeatherQuery) string {
	return fmt.Sprintf("%s%s:%s:%s:%02d", keyPrefix,
		q.Latitude.Round(4).String(), q.Longitude.Round(4).String(), q.Date, q.Hour)
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("weather.NewRedisClient: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("weather.NewRedisClient: ping: %w", err)
	}
	return client, nil
}
