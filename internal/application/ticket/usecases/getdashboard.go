package usecases

import (
	"context"

	"github.com/back-informatica/chamados/internal/application/ticket/dto"
	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// performanceSeries is a fixed example series shown by the dashboard chart.
func performanceSeries() dto.ChartSeriesDTO {
	return dto.ChartSeriesDTO{
		Labels: []string{"Set", "Out", "Nov", "Dez", "Jan"},
		Data:   []int{28, 32, 35, 30, 25},
	}
}

type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	total, err := uc.ticketRepo.Count(ctx, ticket.Filter{})
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to count tickets", err)
	}

	counts := make(map[vo.TicketStatus]int64, 3)
	for _, status := range []vo.TicketStatus{vo.StatusOpen, vo.StatusCompleted, vo.StatusPending} {
		s := status
		n, err := uc.ticketRepo.Count(ctx, ticket.Filter{Status: &s})
		if err != nil {
			return nil, errors.FromStore(uc.logger, "failed to count tickets", err, "status", s)
		}
		counts[s] = n
	}

	return &dto.DashboardDTO{
		TotalTickets:     total,
		OpenTickets:      counts[vo.StatusOpen],
		ClosedTickets:    counts[vo.StatusCompleted],
		PendingTickets:   counts[vo.StatusPending],
		ChartPerformance: performanceSeries(),
	}, nil
}
