package usecases

import (
	"context"
	"strings"

	"github.com/back-informatica/chamados/internal/application/ticket/dto"
	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

const (
	// DefaultOrgListLimit applies to the organization listing.
	DefaultOrgListLimit = 200
	// DefaultOwnListLimit applies to the caller-scoped listing.
	DefaultOwnListLimit = 50
	MaxListLimit        = 1000
)

// statusAll disables the status filter, compared case-insensitively.
const statusAll = "all"

type ListTicketsQuery struct {
	EmpresaID string
	ClientUID string
	// OwnOnly requires ClientUID and restricts results to tickets it owns.
	OwnOnly bool
	Status  string
	Limit   int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Count   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to list tickets", err)
	}

	items := dto.ToTicketDTOs(tickets)
	return &ListTicketsResult{Tickets: items, Count: len(items)}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{Limit: query.Limit}

	if query.OwnOnly {
		if query.ClientUID == "" {
			return filter, errors.NewAuthenticationRequiredError()
		}
		uid := query.ClientUID
		filter.ClientUID = &uid
		if filter.Limit <= 0 {
			filter.Limit = DefaultOwnListLimit
		}
	} else if empresaID := strings.TrimSpace(query.EmpresaID); empresaID != "" {
		filter.EmpresaID = &empresaID
	}

	if filter.Limit <= 0 {
		filter.Limit = DefaultOrgListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	if s := strings.TrimSpace(query.Status); s != "" && !strings.EqualFold(s, statusAll) {
		status, err := vo.ParseTicketStatus(s)
		if err != nil {
			return filter, errors.NewValidationError("invalid status", s)
		}
		filter.Status = &status
	}

	return filter, nil
}
