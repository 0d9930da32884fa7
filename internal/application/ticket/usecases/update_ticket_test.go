package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	apperrors "github.com/back-informatica/chamados/internal/shared/errors"
)

func newUpdateUseCase(repo ticket.Repository) *UpdateTicketUseCase {
	uc := NewUpdateTicketUseCase(repo, newMockLogger())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestUpdateTicketUseCase_Execute_AppliesFields(t *testing.T) {
	var (
		gotID     string
		gotUpdate ticket.Update
		gotAt     time.Time
	)
	repo := &mockTicketRepository{
		ApplyUpdateFunc: func(ctx context.Context, id string, u ticket.Update, at time.Time) error {
			gotID, gotUpdate, gotAt = id, u, at
			return nil
		},
	}
	uc := newUpdateUseCase(repo)

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  "t1",
		NewStatus: ptr("concluido"),
		Solution:  ptr("Trocado o cabo"),
		Cost:      ptr(35.0),
	})

	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, "t1", result.TicketID)
	assert.Equal(t, "t1", gotID)
	assert.Equal(t, fixedNow, gotAt)
	require.NotNil(t, gotUpdate.Status)
	assert.Equal(t, vo.StatusCompleted, *gotUpdate.Status)
	assert.Equal(t, "Trocado o cabo", *gotUpdate.Solution)
	assert.Equal(t, 35.0, *gotUpdate.Cost)
}

func TestUpdateTicketUseCase_Execute_NothingToUpdate(t *testing.T) {
	called := false
	repo := &mockTicketRepository{
		ApplyUpdateFunc: func(ctx context.Context, id string, u ticket.Update, at time.Time) error {
			called = true
			return nil
		},
	}
	uc := newUpdateUseCase(repo)

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: "t1"})

	require.NoError(t, err)
	assert.False(t, result.Updated)
	assert.False(t, called)
}

func TestUpdateTicketUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdateTicketCommand
	}{
		{name: "missing id", cmd: UpdateTicketCommand{Cost: ptr(1.0)}},
		{name: "unknown status", cmd: UpdateTicketCommand{TicketID: "t1", NewStatus: ptr("perdido")}},
		{name: "negative cost", cmd: UpdateTicketCommand{TicketID: "t1", Cost: ptr(-1.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			repo := &mockTicketRepository{
				ApplyUpdateFunc: func(ctx context.Context, id string, u ticket.Update, at time.Time) error {
					called = true
					return nil
				},
			}
			uc := newUpdateUseCase(repo)

			_, err := uc.Execute(context.Background(), tt.cmd)

			assert.True(t, apperrors.IsValidationError(err))
			assert.False(t, called)
		})
	}
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockTicketRepository{
		ApplyUpdateFunc: func(ctx context.Context, id string, u ticket.Update, at time.Time) error {
			return ticket.ErrTicketNotFound
		},
	}
	uc := newUpdateUseCase(repo)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: "nope", Solution: ptr("x")})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_Execute_StoreFailure(t *testing.T) {
	repo := &mockTicketRepository{
		ApplyUpdateFunc: func(ctx context.Context, id string, u ticket.Update, at time.Time) error {
			return errors.New("deadlock")
		},
	}
	uc := newUpdateUseCase(repo)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: "t1", Cost: ptr(2.0)})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
