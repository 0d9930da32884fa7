package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/interfaces/http/handlers"
	"github.com/back-informatica/chamados/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for the login routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures the two login variants under /api.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	api.POST("/auth", cfg.RateLimiter.Limit("auth"), cfg.AuthHandler.TokenLogin)
	api.POST("/login", cfg.RateLimiter.Limit("login"), cfg.AuthHandler.Login)
}
