package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/back-informatica/chamados/internal/application/user/dto"
	"github.com/back-informatica/chamados/internal/domain/identity"
	"github.com/back-informatica/chamados/internal/domain/user"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Username string
	Password string
}

// LoginWithPasswordUseCase checks a provisioned account's bcrypt password and
// issues an identity token the credential gate accepts.
type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	issuer         identity.Issuer
	logger         logger.Interface
	now            func() time.Time
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	issuer identity.Issuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		issuer:         issuer,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.LoginResponseDTO, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	existingUser, err := uc.userRepo.GetByUsername(ctx, username)
	if stderrors.Is(err, user.ErrUserNotFound) {
		return nil, errors.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to get user by username", err)
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Infow("password login rejected", "user_id", existingUser.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	if existingUser.IsBlocked() {
		uc.logger.Warnw("blocked user attempted password login", "user_id", existingUser.ID())
		return nil, errors.NewAccountBlockedError()
	}

	issued, err := uc.issuer.Issue(ctx, identity.Subject{UID: existingUser.ID(), Email: existingUser.Email()})
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to issue token", err, "user_id", existingUser.ID())
	}

	expiresIn := int64(issued.ExpiresAt.Sub(uc.now()).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &dto.LoginResponseDTO{
		User:      dto.ToLoginUserDTO(existingUser),
		Token:     issued.Token,
		ExpiresIn: expiresIn,
	}, nil
}
