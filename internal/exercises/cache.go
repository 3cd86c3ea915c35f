package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 10 * time.Minute

// Cache is a Redis read-through layer over the catalog. Every Redis
// failure falls through to the loader so a cache outage never surfaces
// to clients.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewCache instantiates the cache helper. A nil client disables caching.
func NewCache(client *redis.Client, logger *slog.Logger, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, logger: logger, ttl: ttl}
}

// FetchJSON loads a cached value or populates it using the loader.
func (c *Cache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if c != nil && c.client != nil {
		payload, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			if err := json.Unmarshal(payload, dest); err == nil {
				return nil
			}
		} else if !errors.Is(err, redis.Nil) {
			c.logger.Warn("exercise cache read failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c != nil && c.client != nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("exercise cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return json.Unmarshal(raw, dest)
}

func keyList(filter Filter) string {
	group := filter.MuscleGroup
	if group == "" {
		group = "-"
	}
	search := strings.ToLower(filter.Search)
	if search == "" {
		search = "-"
	}
	return strings.Join([]string{"exercises", "list", group, search}, ":")
}

func keyGet(id string) string {
	return strings.Join([]string{"exercises", "get", id}, ":")
}
