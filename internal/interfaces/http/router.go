package http

import (
	"github.com/back-informatica/chamados/internal/interfaces/http/middleware"
	"github.com/back-informatica/chamados/internal/interfaces/http/routes"
)

// setupRoutes installs the middleware chain and every route.
func (c *Container) setupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.CustomLogger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	api := c.engine.Group("/api")

	routes.SetupHealthRoutes(c.engine, api, c.hdlrs.healthHandler)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		RateLimiter: c.rateLimiter,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		ReportHandler:  c.hdlrs.reportHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
