package usecases

import (
	"context"
	"strings"

	"github.com/back-informatica/chamados/internal/application/ticket/dto"
	"github.com/back-informatica/chamados/internal/domain/ticket"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

type GetReportQuery struct {
	EmpresaID string
}

// GetReportUseCase scans every ticket of one organization and counts them
// in memory.
type GetReportUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetReportUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetReportUseCase {
	return &GetReportUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDTO, error) {
	empresaID := strings.TrimSpace(query.EmpresaID)
	if empresaID == "" {
		return nil, errors.NewValidationError("empresa_id query param required")
	}

	tickets, err := uc.ticketRepo.List(ctx, ticket.Filter{EmpresaID: &empresaID})
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to load tickets for report", err, "empresa_id", empresaID)
	}

	return dto.ToReportDTO(ticket.Summarize(empresaID, tickets)), nil
}
