package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/config"
	"crm-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "redis_addr", Value: cfg.Addr()})
	logger.Info(ctx, "successfully connected to redis")

	return &Client{client: client, logger: logger}, nil
}

// NewFromRedis wraps an existing go-redis client
func NewFromRedis(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// AcquireLock sets key to token if absent. It reports whether this caller now holds the lock.
func (c *Client) AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	if c == nil || c.client == nil {
		return false, ErrNotInitialized
	}
	ok, err := c.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return ok, nil
}

// Only the holder's token may delete the lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ReleaseLock deletes key when it still holds token
func (c *Client) ReleaseLock(ctx context.Context, key, token string) error {
	if c == nil || c.client == nil {
		return ErrNotInitialized
	}
	if err := releaseScript.Run(ctx, c.client, []string{key}, token).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}
	return nil
}

// WindowCount is the state of a sliding window after a hit was recorded or refused
type WindowCount struct {
	Count  int
	Oldest time.Time
}

// HitWindow trims entries older than window, then records now under key unless limit hits are already present.
// The returned count excludes a refused hit.
func (c *Client) HitWindow(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (WindowCount, bool, error) {
	if c == nil || c.client == nil {
		return WindowCount{}, false, ErrNotInitialized
	}

	windowStart := now.Add(-window).UnixMilli()
	if err := c.client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart)).Err(); err != nil {
		return WindowCount{}, false, fmt.Errorf("failed to trim window %s: %w", key, err)
	}

	count, err := c.client.ZCard(ctx, key).Result()
	if err != nil {
		return WindowCount{}, false, fmt.Errorf("failed to count window %s: %w", key, err)
	}

	if int(count) >= limit {
		oldest, err := c.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return WindowCount{Count: int(count), Oldest: now}, false, nil
		}
		return WindowCount{Count: int(count), Oldest: time.UnixMilli(int64(oldest[0].Score))}, false, nil
	}

	nowMs := now.UnixMilli()
	member := fmt.Sprintf("%d-%d", nowMs, count)
	if err := c.client.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member}).Err(); err != nil {
		return WindowCount{}, false, fmt.Errorf("failed to record hit %s: %w", key, err)
	}
	if err := c.client.Expire(ctx, key, 2*window).Err(); err != nil {
		c.logger.InfoWithError(ctx, "failed to set expiration on rate limit key", err)
	}
	return WindowCount{Count: int(count) + 1, Oldest: now}, true, nil
}
