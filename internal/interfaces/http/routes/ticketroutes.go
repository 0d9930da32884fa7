package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/back-informatica/chamados/internal/interfaces/http/handlers/ticket"
	"github.com/back-informatica/chamados/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	ReportHandler  *tickethandlers.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	// Organization-scoped intake, open to existing clients.
	api.POST("/chamados", config.TicketHandler.CreateChamado)
	api.GET("/chamados", config.TicketHandler.ListChamados)

	api.GET("/relatorios", config.ReportHandler.GetReport)
	api.GET("/dashboard", config.ReportHandler.GetDashboard)

	tickets := api.Group("/tickets")
	{
		// Collection operations belong to the caller.
		requireAuth := config.AuthMiddleware.RequireAuth()
		tickets.POST("", requireAuth, config.TicketHandler.CreateTicket)
		tickets.GET("", requireAuth, config.TicketHandler.ListTickets)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
	}
}
