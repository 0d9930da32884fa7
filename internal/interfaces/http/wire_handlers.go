package http

import (
	"github.com/back-informatica/chamados/internal/infrastructure/platform"
	"github.com/back-informatica/chamados/internal/interfaces/http/handlers"
	ticketHandlers "github.com/back-informatica/chamados/internal/interfaces/http/handlers/ticket"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler *handlers.HealthHandler
	authHandler   *handlers.AuthHandler

	// Ticket
	ticketHandler *ticketHandlers.TicketHandler
	reportHandler *ticketHandlers.ReportHandler
}

func newHandlers(ucs *allUseCases, backend *platform.Backend, log logger.Interface) *allHandlers {
	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(backend),
		authHandler:   handlers.NewAuthHandler(ucs.authenticateTokenUC, ucs.loginUC, log.Named("http.auth")),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.listTicketsUC,
			ucs.getTicketUC,
			ucs.updateTicketUC,
			log.Named("http.ticket"),
		),
		reportHandler: ticketHandlers.NewReportHandler(ucs.getReportUC, ucs.getDashboardUC),
	}
}
