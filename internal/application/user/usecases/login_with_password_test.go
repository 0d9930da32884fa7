package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/domain/identity"
	"github.com/back-informatica/chamados/internal/domain/user"
	vo "github.com/back-informatica/chamados/internal/domain/user/valueobjects"
	apperrors "github.com/back-informatica/chamados/internal/shared/errors"
)

func accountRepo(t *testing.T, status vo.Status) *mockUserRepository {
	t.Helper()
	u, err := user.ReconstructUser("u1", "Ana Souza", "ana", "ana@example.com", vo.RoleTechnician, "emp-1", status, "hashed:s3cret!!", fixedNow, fixedNow)
	require.NoError(t, err)
	return &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			if username != "ana" {
				return nil, user.ErrUserNotFound
			}
			return u, nil
		},
	}
}

func newLoginUseCase(repo user.Repository, issuer identity.Issuer) *LoginWithPasswordUseCase {
	uc := NewLoginWithPasswordUseCase(repo, prefixHasher{}, issuer, newMockLogger())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestLoginWithPasswordUseCase_Execute_Success(t *testing.T) {
	var subject identity.Subject
	issuer := &mockIssuer{
		IssueFunc: func(ctx context.Context, s identity.Subject) (*identity.IssuedToken, error) {
			subject = s
			return &identity.IssuedToken{Token: "jwt", ExpiresAt: fixedNow.Add(30 * time.Minute)}, nil
		},
	}
	uc := newLoginUseCase(accountRepo(t, vo.StatusActive), issuer)

	result, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Username: " ana ", Password: "s3cret!!"})

	require.NoError(t, err)
	assert.Equal(t, "u1", subject.UID)
	assert.Equal(t, "ana@example.com", subject.Email)
	assert.Equal(t, "jwt", result.Token)
	assert.Equal(t, int64(1800), result.ExpiresIn)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, "Ana Souza", result.User.Name)
	assert.Equal(t, "tecnico", result.User.Role)
	assert.Equal(t, "emp-1", result.User.EmpresaID)
}

func TestLoginWithPasswordUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   vo.Status
		cmd      LoginWithPasswordCommand
		issuer   *mockIssuer
		wantCode int
	}{
		{name: "missing password", status: vo.StatusActive, cmd: LoginWithPasswordCommand{Username: "ana"}, wantCode: http.StatusBadRequest},
		{name: "missing username", status: vo.StatusActive, cmd: LoginWithPasswordCommand{Password: "x"}, wantCode: http.StatusBadRequest},
		{name: "unknown user", status: vo.StatusActive, cmd: LoginWithPasswordCommand{Username: "bob", Password: "x"}, wantCode: http.StatusNotFound},
		{name: "wrong password", status: vo.StatusActive, cmd: LoginWithPasswordCommand{Username: "ana", Password: "nope"}, wantCode: http.StatusUnauthorized},
		{name: "blocked account", status: vo.StatusBlocked, cmd: LoginWithPasswordCommand{Username: "ana", Password: "s3cret!!"}, wantCode: http.StatusForbidden},
		{
			name:   "issuer unavailable",
			status: vo.StatusActive,
			cmd:    LoginWithPasswordCommand{Username: "ana", Password: "s3cret!!"},
			issuer: &mockIssuer{IssueFunc: func(ctx context.Context, s identity.Subject) (*identity.IssuedToken, error) {
				return nil, apperrors.ErrBackendUnavailable
			}},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "issuer failure",
			status: vo.StatusActive,
			cmd:    LoginWithPasswordCommand{Username: "ana", Password: "s3cret!!"},
			issuer: &mockIssuer{IssueFunc: func(ctx context.Context, s identity.Subject) (*identity.IssuedToken, error) {
				return nil, errors.New("signing failed")
			}},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := tt.issuer
			if issuer == nil {
				issuer = &mockIssuer{}
			}
			uc := newLoginUseCase(accountRepo(t, tt.status), issuer)

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}
