package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/interfaces/http/handlers"
)

// SetupHealthRoutes registers liveness on the engine root and ping under /api.
func SetupHealthRoutes(engine *gin.Engine, api *gin.RouterGroup, handler *handlers.HealthHandler) {
	engine.GET("/health", handler.Health)
	api.GET("/ping", handler.Ping)
}
