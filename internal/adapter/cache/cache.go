// Package cache is a fail-safe byte cache over redis: any redis error
// behaves like a miss and is logged, never returned.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps a redis client. A nil *Client is a valid, always-missing cache.
type Client struct {
	rdb *redis.Client
	log *slog.Logger
}

// New creates a client for addr. The connection is lazy; nothing is dialled here.
func New(addr, password string, db int, logger *slog.Logger) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			MaxRetries:   1,
		}),
		log: logger.With("adapter", "redis"),
	}
}

// Get returns the cached value and whether it was found.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return val, true
}

// Set stores value under key for ttl.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Delete removes key.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.WarnContext(ctx, "cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Ping reports whether redis answers. Used by the health endpoint only.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
