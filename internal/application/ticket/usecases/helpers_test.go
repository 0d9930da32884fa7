package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T, id, empresaID string, status vo.TicketStatus, urgent bool) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id,
		empresaID,
		"uid-1",
		ticket.Intake{Requester: "Ana", Description: "Sem energia"},
		urgent,
		status,
		nil,
		nil,
		nil,
		fixedNow.Add(-time.Hour),
		nil,
	)
	require.NoError(t, err)
	return tk
}
