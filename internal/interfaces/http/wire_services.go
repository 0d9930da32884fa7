package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/back-informatica/chamados/internal/infrastructure/config"
	"github.com/back-informatica/chamados/internal/infrastructure/ratelimit"
	"github.com/back-informatica/chamados/internal/interfaces/http/middleware"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

const redisPingTimeout = 3 * time.Second

// initInfrastructure connects Redis when enabled and builds the early
// middlewares.
func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		c.redis = initRedis(cfg, log)
	}
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis, ratelimit.Config{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window(),
		})
	} else {
		log.Infow("rate limiting disabled")
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.backend.Verifier, log.Named("auth"))
	c.rateLimiter = middleware.NewRateLimiter(limiter, log.Named("ratelimit"))
}

// initRedis creates and tests the Redis client connection. An unreachable
// server is logged and yields nil so the API keeps serving without limits.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, rate limiting disabled", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}
