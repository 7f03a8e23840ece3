package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Client stores JSON encoded page payloads in Redis.
type Client struct {
	rdb redis.UniversalClient
	log ports.Logger
}

// NewClient dials Redis and fails unless the server answers within connectTimeout.
func NewClient(cfg config.Redis, log ports.Logger) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: connectTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	log.Info("Redis page cache connected", slog.String("addr", addr), slog.Int("db", cfg.DB))
	return NewClientFrom(rdb, log), nil
}

// NewClientFrom wraps an already configured go-redis client.
func NewClientFrom(rdb redis.UniversalClient, log ports.Logger) *Client {
	return &Client{rdb: rdb, log: log}
}

// getJSON decodes the payload under key into dest. A missing key is ErrCacheMiss.
func (c *Client) getJSON(ctx context.Context, key string, dest any) error {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return custom_errors.ErrCacheMiss
	case err != nil:
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// An undecodable payload is dropped so the next read rebuilds it.
		c.log.Warn("Discarding undecodable cache entry", slog.String("key", key), slog.String("error", err.Error()))
		_ = c.rdb.Del(ctx, key).Err()
		return custom_errors.ErrCacheMiss
	}
	return nil
}

func (c *Client) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// del removes keys and reports how many existed.
func (c *Client) del(ctx context.Context, keys ...string) (int64, error) {
	removed, err := c.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("redis del: %w", err)
	}
	return removed, nil
}

func (c *Client) Close() error {
	if err := c.rdb.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	c.log.Info("Redis page cache closed")
	return nil
}
