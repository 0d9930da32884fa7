package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/back-informatica/chamados/internal/domain/identity"
	"github.com/back-informatica/chamados/internal/domain/user"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

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

type mockVerifier struct {
	VerifyFunc func(ctx context.Context, rawToken string) (*identity.Claims, error)
}

func (m *mockVerifier) Verify(ctx context.Context, rawToken string) (*identity.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, rawToken)
	}
	return nil, identity.ErrTokenRejected
}

type mockIssuer struct {
	IssueFunc func(ctx context.Context, subject identity.Subject) (*identity.IssuedToken, error)
}

func (m *mockIssuer) Issue(ctx context.Context, subject identity.Subject) (*identity.IssuedToken, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, subject)
	}
	return &identity.IssuedToken{Token: "signed." + subject.UID, ExpiresAt: fixedNow.Add(time.Hour)}, nil
}

// prefixHasher stores "hashed:" + password.
type prefixHasher struct {
	err error
}

func (h prefixHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h prefixHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

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

var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
