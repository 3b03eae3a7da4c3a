package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"
)

// keyNamespace prefixes every key so the service can share a Redis database.
const keyNamespace = "blog-service:"

const pingTimeout = 5 * time.Second

// Client stores JSON-encoded values under namespaced keys.
type Client struct {
	client redis.UniversalClient
	log    ports.Logger
}

func NewClient(cfg config.Redis, log ports.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	c := NewClientFromRedis(rdb, log)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis",
		slog.String("address", cfg.Address),
		slog.Int("port", cfg.Port),
		slog.Int("db", cfg.DB))
	return c, nil
}

// NewClientFromRedis wraps an already configured go-redis client.
func NewClientFromRedis(rdb redis.UniversalClient, log ports.Logger) *Client {
	return &Client{client: rdb, log: log}
}

// Get decodes the value stored under key into dest. A missing key yields
// custom_errors.ErrCacheMiss.
func (c *Client) Get(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, keyNamespace+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.log.Debug("Cache miss", slog.String("key", key))
		return custom_errors.ErrCacheMiss
	case err != nil:
		c.log.Error("Failed to get from cache", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("failed to get from cache: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Error("Failed to unmarshal cache value", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return nil
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("Failed to marshal value for cache", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := c.client.Set(ctx, keyNamespace+key, data, ttl).Err(); err != nil {
		c.log.Error("Failed to set cache", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("failed to set cache: %w", err)
	}

	c.log.Debug("Successfully set cache", slog.String("key", key), slog.Duration("ttl", ttl))
	return nil
}

// Generation returns the counter stored under key, or 0 when it was never
// bumped.
func (c *Client) Generation(ctx context.Context, key string) (int64, error) {
	var generation int64
	if err := c.Get(ctx, key, &generation); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return 0, nil
		}
		return 0, err
	}
	return generation, nil
}

// BumpGeneration increments the counter under key. Entries written under an
// older generation are never read again and expire with their TTL.
func (c *Client) BumpGeneration(ctx context.Context, key string) (int64, error) {
	generation, err := c.client.Incr(ctx, keyNamespace+key).Result()
	if err != nil {
		c.log.Error("Failed to bump cache generation", slog.String("key", key), slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to bump cache generation: %w", err)
	}

	c.log.Debug("Bumped cache generation", slog.String("key", key), slog.Int64("generation", generation))
	return generation, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.log.Error("Redis ping failed", slog.String("error", err.Error()))
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		c.log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	c.log.Info("Redis connection closed")
	return nil
}
