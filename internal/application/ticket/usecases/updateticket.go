package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// UpdateTicketCommand carries the recognized PATCH fields; nil means absent.
type UpdateTicketCommand struct {
	TicketID  string
	NewStatus *string
	Solution  *string
	Cost      *float64
}

type UpdateTicketResult struct {
	TicketID string
	// Updated is false when the command carried no field and nothing was written.
	Updated bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
	now        func() time.Time
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket id is required")
	}

	update, err := toUpdate(cmd)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return &UpdateTicketResult{TicketID: cmd.TicketID}, nil
	}

	err = uc.ticketRepo.ApplyUpdate(ctx, cmd.TicketID, update, uc.now())
	if stderrors.Is(err, ticket.ErrTicketNotFound) {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to update ticket", err, "ticket_id", cmd.TicketID)
	}

	uc.logger.Infow("ticket updated",
		"ticket_id", cmd.TicketID,
		"status_changed", update.Status != nil,
		"solution_changed", update.Solution != nil,
		"cost_changed", update.Cost != nil,
	)

	return &UpdateTicketResult{TicketID: cmd.TicketID, Updated: true}, nil
}

func toUpdate(cmd UpdateTicketCommand) (ticket.Update, error) {
	var u ticket.Update
	if cmd.NewStatus != nil {
		status, err := vo.ParseTicketStatus(*cmd.NewStatus)
		if err != nil {
			return u, errors.NewValidationError("invalid status", *cmd.NewStatus)
		}
		u.Status = &status
	}
	if cmd.Cost != nil && *cmd.Cost < 0 {
		return u, errors.NewValidationError("cost must not be negative")
	}
	u.Solution = cmd.Solution
	u.Cost = cmd.Cost
	return u, nil
}
