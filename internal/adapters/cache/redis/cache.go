// Package redis provides a read-through cache for entity fetches backed by
// Redis. It wraps any ports.EntityFetcher; the loaders see no difference
// between a cached and an uncached fetcher.
//
// Only successful fetches are cached. When Redis is unreachable the cache
// logs a warning and serves from the wrapped fetcher, so a Redis outage
// slows loads down but never fails them.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/platform/config"
	"github.com/jsamuelsen11/scanconsole/internal/platform/telemetry"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

const (
	defaultPrefix = "scanconsole:"
	defaultTTL    = 30 * time.Second
)

// Lookup results recorded in metrics.
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

var (
	_ ports.EntityFetcher = (*Cache)(nil)
	_ ports.HealthChecker = (*Cache)(nil)
)

// Cache is a read-through ports.EntityFetcher.
type Cache struct {
	next    ports.EntityFetcher
	client  *backend.Client
	prefix  string
	ttl     time.Duration
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long cached fetch results live. Non-positive values keep
// the default.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithMetrics records lookups in metrics.CacheLookups.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(c *Cache) {
		c.metrics = metrics
	}
}

// WithLogger sets the logger used for Redis failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a go-redis client from cfg.
func NewClient(cfg config.CacheConfig) *backend.Client {
	return backend.NewClient(&backend.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// New wraps next with a cache stored in client.
func New(next ports.EntityFetcher, client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		next:   next,
		client: client,
		prefix: defaultPrefix,
		ttl:    defaultTTL,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAll returns the cached collection for entityType and filter, fetching
// and caching it on a miss.
func (c *Cache) GetAll(ctx context.Context, entityType domain.EntityType, filter *domain.Filter) ([]domain.Entity, error) {
	key := c.collectionKey(entityType, filter)

	var cached []domain.Entity
	if c.lookup(ctx, entityType, key, &cached) {
		return cached, nil
	}

	fetched, err := c.next.GetAll(ctx, entityType, filter)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fetched)
	return fetched, nil
}

// Get returns the cached entity, fetching and caching it on a miss.
func (c *Cache) Get(ctx context.Context, entityType domain.EntityType, id string) (*domain.Entity, error) {
	key := c.entityKey(entityType, id)

	var cached domain.Entity
	if c.lookup(ctx, entityType, key, &cached) {
		return &cached, nil
	}

	fetched, err := c.next.Get(ctx, entityType, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fetched)
	return fetched, nil
}

// Name identifies the cache in readiness results.
func (c *Cache) Name() string {
	return "redis"
}

// HealthCheck pings Redis.
func (c *Cache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// collectionKey separates the default collection (nil filter) from every
// explicit filter, including the empty one.
func (c *Cache) collectionKey(entityType domain.EntityType, filter *domain.Filter) string {
	if filter == nil {
		return c.prefix + entityType.String() + ":all"
	}
	return c.prefix + entityType.String() + ":all:" + filter.String()
}

func (c *Cache) entityKey(entityType domain.EntityType, id string) string {
	return c.prefix + entityType.String() + ":id:" + id
}

// lookup decodes the value at key into dst and reports whether it was a
// usable hit.
func (c *Cache) lookup(ctx context.Context, entityType domain.EntityType, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, backend.Nil):
		c.record(ctx, entityType, resultMiss)
		return false
	case err != nil:
		c.record(ctx, entityType, resultError)
		c.logger.WarnContext(ctx, "cache read failed, fetching from backend",
			slog.String("operation", "Cache.lookup"),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.record(ctx, entityType, resultError)
		c.logger.WarnContext(ctx, "cache entry unreadable, fetching from backend",
			slog.String("operation", "Cache.lookup"),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false
	}

	c.record(ctx, entityType, resultHit)
	return true
}

func (c *Cache) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed",
			slog.String("operation", "Cache.store"),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed",
			slog.String("operation", "Cache.store"),
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (c *Cache) record(ctx context.Context, entityType domain.EntityType, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheLookups.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEntityType.String(entityType.String()),
		telemetry.AttrResult.String(result),
	))
}
