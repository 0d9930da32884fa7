package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	apperrors "github.com/back-informatica/chamados/internal/shared/errors"
)

func TestGetDashboardUseCase_Execute(t *testing.T) {
	counts := map[vo.TicketStatus]int64{
		vo.StatusOpen:      4,
		vo.StatusCompleted: 7,
		vo.StatusPending:   2,
	}
	repo := &mockTicketRepository{
		CountFunc: func(ctx context.Context, filter ticket.Filter) (int64, error) {
			assert.Nil(t, filter.EmpresaID)
			if filter.Status == nil {
				return 15, nil
			}
			return counts[*filter.Status], nil
		},
	}
	uc := NewGetDashboardUseCase(repo, newMockLogger())

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(15), result.TotalTickets)
	assert.Equal(t, int64(4), result.OpenTickets)
	assert.Equal(t, int64(7), result.ClosedTickets)
	assert.Equal(t, int64(2), result.PendingTickets)
	assert.Equal(t, []string{"Set", "Out", "Nov", "Dez", "Jan"}, result.ChartPerformance.Labels)
	assert.Equal(t, []int{28, 32, 35, 30, 25}, result.ChartPerformance.Data)
}

func TestGetDashboardUseCase_Execute_StoreFailure(t *testing.T) {
	repo := &mockTicketRepository{
		CountFunc: func(ctx context.Context, filter ticket.Filter) (int64, error) {
			return 0, errors.New("timeout")
		},
	}
	uc := NewGetDashboardUseCase(repo, newMockLogger())

	_, err := uc.Execute(context.Background())

	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
}
