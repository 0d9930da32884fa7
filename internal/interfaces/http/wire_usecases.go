package http

import (
	ticketUsecases "github.com/back-informatica/chamados/internal/application/ticket/usecases"
	"github.com/back-informatica/chamados/internal/application/user/usecases"
	"github.com/back-informatica/chamados/internal/infrastructure/auth"
	"github.com/back-informatica/chamados/internal/infrastructure/config"
	"github.com/back-informatica/chamados/internal/infrastructure/platform"
	"github.com/back-informatica/chamados/internal/shared/logger"
	"github.com/back-informatica/chamados/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	authenticateTokenUC *usecases.AuthenticateTokenUseCase
	loginUC             *usecases.LoginWithPasswordUseCase

	// Ticket
	createTicketUC *ticketUsecases.CreateTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase

	// Reports
	getReportUC    *ticketUsecases.GetReportUseCase
	getDashboardUC *ticketUsecases.GetDashboardUseCase
}

func newUseCases(backend *platform.Backend, cfg *config.Config, log logger.Interface) *allUseCases {
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	renderer := markdown.NewRenderer()

	userLog := log.Named("user")
	ticketLog := log.Named("ticket")

	return &allUseCases{
		authenticateTokenUC: usecases.NewAuthenticateTokenUseCase(backend.Verifier, backend.Users, userLog),
		loginUC:             usecases.NewLoginWithPasswordUseCase(backend.Users, hasher, backend.Issuer, userLog),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(backend.Tickets, backend.Users, ticketLog),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(backend.Tickets, ticketLog),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(backend.Tickets, renderer, ticketLog),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(backend.Tickets, ticketLog),

		getReportUC:    ticketUsecases.NewGetReportUseCase(backend.Tickets, ticketLog),
		getDashboardUC: ticketUsecases.NewGetDashboardUseCase(backend.Tickets, ticketLog),
	}
}
