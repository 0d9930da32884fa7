package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests per key and window bucket with INCR. All
// instances sharing the Redis database share the counters.
type RedisRateLimiter struct {
	client *redis.Client
	cfg    Config
	prefix string
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, cfg Config) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		cfg:    cfg,
		prefix: "ratelimit",
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Result, error) {
	if !l.cfg.Enabled() {
		return Result{Allowed: true, Remaining: -1}, nil
	}

	now := l.now()
	windowSecs := int64(l.cfg.Window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}
	bucket := now.Unix() / windowSecs
	resetAfter := time.Duration((bucket+1)*windowSecs-now.Unix()) * time.Second

	redisKey := l.getKey(key, bucket)
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.cfg.Window+time.Second).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate counter ttl: %w", err)
		}
	}

	remaining := l.cfg.Requests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:    count <= int64(l.cfg.Requests),
		Remaining:  remaining,
		ResetAfter: resetAfter,
	}, nil
}

// Reset drops every window counter of key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%s:%s:*", l.prefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, bucket int64) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, identifier, bucket)
}
