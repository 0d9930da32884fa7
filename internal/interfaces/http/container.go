package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/back-informatica/chamados/internal/infrastructure/config"
	"github.com/back-informatica/chamados/internal/infrastructure/platform"
	"github.com/back-informatica/chamados/internal/interfaces/http/middleware"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// Container holds the infrastructure components, use cases, handlers and
// middlewares, wires them together and releases them on Shutdown.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	backend *platform.Backend
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewContainer wires every component on top of backend, which may be
// degraded. The container does not own backend and never closes it.
func NewContainer(backend *platform.Backend, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine:  gin.New(),
		backend: backend,
		cfg:     cfg,
		log:     log,
	}

	// Section 1: Infrastructure - Redis, rate limiter, credential gate
	c.initInfrastructure()

	// Section 2: Use cases
	c.ucs = newUseCases(backend, cfg, log)

	// Section 3: Handlers
	c.hdlrs = newHandlers(c.ucs, backend, log)

	// Section 4: Middleware chain and routes
	c.setupRoutes()

	return c
}

// Engine returns the Gin engine
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases the components the container created.
func (c *Container) Shutdown(_ context.Context) error {
	var errs []error
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, err)
		}
		c.redis = nil
	}
	return errors.Join(errs...)
}
