package usecases

import (
	"context"
	stderrors "errors"

	"github.com/back-informatica/chamados/internal/application/ticket/dto"
	"github.com/back-informatica/chamados/internal/domain/ticket"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
	"github.com/back-informatica/chamados/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, renderer markdown.Renderer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, renderer: renderer, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == "" {
		return nil, errors.NewValidationError("ticket id is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if stderrors.Is(err, ticket.ErrTicketNotFound) {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to get ticket", err, "ticket_id", query.TicketID)
	}

	var solutionHTML string
	if s := t.Solution(); s != nil && uc.renderer != nil {
		html, err := uc.renderer.Render(*s)
		if err != nil {
			uc.logger.Warnw("failed to render solution", "ticket_id", t.ID(), "error", err)
		} else {
			solutionHTML = html
		}
	}

	return dto.ToTicketDetailDTO(t, solutionHTML), nil
}
