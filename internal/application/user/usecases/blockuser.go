package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/back-informatica/chamados/internal/application/user/dto"
	"github.com/back-informatica/chamados/internal/domain/user"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// BlockUserCommand selects the account by id or, when ID is empty, by username.
type BlockUserCommand struct {
	ID       string
	Username string
}

type BlockUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
	now      func() time.Time
}

func NewBlockUserUseCase(userRepo user.Repository, logger logger.Interface) *BlockUserUseCase {
	return &BlockUserUseCase{
		userRepo: userRepo,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *BlockUserUseCase) Execute(ctx context.Context, cmd BlockUserCommand) (*dto.UserDTO, error) {
	var (
		u   *user.User
		err error
	)
	switch {
	case strings.TrimSpace(cmd.ID) != "":
		u, err = uc.userRepo.GetByID(ctx, strings.TrimSpace(cmd.ID))
	case strings.TrimSpace(cmd.Username) != "":
		u, err = uc.userRepo.GetByUsername(ctx, strings.TrimSpace(cmd.Username))
	default:
		return nil, errors.NewValidationError("user id or username is required")
	}
	if stderrors.Is(err, user.ErrUserNotFound) {
		return nil, errors.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errors.FromStore(uc.logger, "failed to get user", err)
	}

	if u.IsBlocked() {
		return dto.ToUserDTO(u), nil
	}

	u.Block(uc.now())
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, errors.FromStore(uc.logger, "failed to block user", err, "user_id", u.ID())
	}

	uc.logger.Infow("user blocked", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
