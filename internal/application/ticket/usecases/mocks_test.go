package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	"github.com/back-informatica/chamados/internal/domain/user"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc      func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc     func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	CountFunc       func(ctx context.Context, filter ticket.Filter) (int64, error)
	ApplyUpdateFunc func(ctx context.Context, id string, u ticket.Update, at time.Time) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID("generated-id")
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) Count(ctx context.Context, filter ticket.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockTicketRepository) ApplyUpdate(ctx context.Context, id string, u ticket.Update, at time.Time) error {
	if m.ApplyUpdateFunc != nil {
		return m.ApplyUpdateFunc(ctx, id, u, at)
	}
	return nil
}

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id string) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc        func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

// mockLogger records the messages logged at error and warn level.
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func newMockLogger() *mockLogger {
	return &mockLogger{}
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) { m.Warnw(msg) }
func (m *mockLogger) Error(msg string, args ...any) { m.Errorw(msg) }
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func ptr[T any](v T) *T {
	return &v
}

var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
