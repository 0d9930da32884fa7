package ticket

import (
	"context"
	"errors"
	"time"

	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
)

var ErrTicketNotFound = errors.New("ticket not found")

// Filter selects tickets by equality. Nil fields do not filter; Limit <= 0
// means no cap.
type Filter struct {
	EmpresaID *string
	ClientUID *string
	Status    *vo.TicketStatus
	Limit     int
}

type Repository interface {
	// Create stores t and assigns its ID.
	Create(ctx context.Context, t *Ticket) error
	// GetByID returns ErrTicketNotFound when no ticket has id.
	GetByID(ctx context.Context, id string) (*Ticket, error)
	// List returns matching tickets ordered by creation time, newest first.
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// ApplyUpdate atomically stores u and appends its history entry.
	ApplyUpdate(ctx context.Context, id string, u Update, at time.Time) error
}
