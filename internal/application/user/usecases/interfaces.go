package usecases

import (
	"context"

	"github.com/back-informatica/chamados/internal/application/user/dto"
)

type AuthenticateTokenExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateTokenCommand) (*dto.AuthUserDTO, error)
}

type LoginWithPasswordExecutor interface {
	Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.LoginResponseDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type BlockUserExecutor interface {
	Execute(ctx context.Context, cmd BlockUserCommand) (*dto.UserDTO, error)
}
