package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/back-informatica/chamados/internal/application/user/dto"
	"github.com/back-informatica/chamados/internal/domain/user"
	vo "github.com/back-informatica/chamados/internal/domain/user/valueobjects"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/id"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

const minPasswordLength = 8

type CreateUserCommand struct {
	// ID is optional; an identity platform uid links the account to that
	// subject, otherwise an id is generated.
	ID        string
	Username  string
	Name      string
	Email     string
	Role      string
	EmpresaID string
	Password  string
}

type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
	now            func() time.Time
}

func NewCreateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	role := vo.RoleClient
	if r := strings.TrimSpace(cmd.Role); r != "" {
		parsed, err := vo.NewRole(strings.ToLower(r))
		if err != nil {
			return nil, errors.NewValidationError("invalid role", r)
		}
		role = parsed
	}

	userID := strings.TrimSpace(cmd.ID)
	if userID == "" {
		generated, err := id.NewUserID()
		if err != nil {
			return nil, errors.NewInternalError("failed to generate user id")
		}
		userID = generated
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(userID, cmd.Username, cmd.Name, cmd.Email, role, cmd.EmpresaID, hash, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if stderrors.Is(err, user.ErrUsernameTaken) {
			return nil, errors.NewConflictError("username already exists")
		}
		return nil, errors.FromStore(uc.logger, "failed to create user", err, "username", u.Username())
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "username", u.Username(), "role", u.Role())

	return dto.ToUserDTO(u), nil
}
