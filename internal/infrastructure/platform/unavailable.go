package platform

import (
	"context"
	"time"

	"github.com/back-informatica/chamados/internal/domain/identity"
	"github.com/back-informatica/chamados/internal/domain/ticket"
	"github.com/back-informatica/chamados/internal/domain/user"
	"github.com/back-informatica/chamados/internal/shared/errors"
)

type unavailableTickets struct{}

func (unavailableTickets) Create(context.Context, *ticket.Ticket) error {
	return errors.NewBackendUnavailableError()
}

func (unavailableTickets) GetByID(context.Context, string) (*ticket.Ticket, error) {
	return nil, errors.NewBackendUnavailableError()
}

func (unavailableTickets) List(context.Context, ticket.Filter) ([]*ticket.Ticket, error) {
	return nil, errors.NewBackendUnavailableError()
}

func (unavailableTickets) Count(context.Context, ticket.Filter) (int64, error) {
	return 0, errors.NewBackendUnavailableError()
}

func (unavailableTickets) ApplyUpdate(context.Context, string, ticket.Update, time.Time) error {
	return errors.NewBackendUnavailableError()
}

type unavailableUsers struct{}

func (unavailableUsers) Create(context.Context, *user.User) error {
	return errors.NewBackendUnavailableError()
}

func (unavailableUsers) GetByID(context.Context, string) (*user.User, error) {
	return nil, errors.NewBackendUnavailableError()
}

func (unavailableUsers) GetByUsername(context.Context, string) (*user.User, error) {
	return nil, errors.NewBackendUnavailableError()
}

func (unavailableUsers) Update(context.Context, *user.User) error {
	return errors.NewBackendUnavailableError()
}

type unavailableIdentity struct{}

func (unavailableIdentity) Verify(context.Context, string) (*identity.Claims, error) {
	return nil, errors.NewBackendUnavailableError()
}

func (unavailableIdentity) Issue(context.Context, identity.Subject) (*identity.IssuedToken, error) {
	return nil, errors.NewBackendUnavailableError()
}
