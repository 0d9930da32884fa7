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

type AuthenticateTokenCommand struct {
	IDToken string
}

// AuthenticateTokenUseCase verifies an identity token and reads the caller's
// profile, creating the default one on first login.
type AuthenticateTokenUseCase struct {
	verifier identity.Verifier
	userRepo user.Repository
	logger   logger.Interface
	now      func() time.Time
}

func NewAuthenticateTokenUseCase(
	verifier identity.Verifier,
	userRepo user.Repository,
	logger logger.Interface,
) *AuthenticateTokenUseCase {
	return &AuthenticateTokenUseCase{
		verifier: verifier,
		userRepo: userRepo,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *AuthenticateTokenUseCase) Execute(ctx context.Context, cmd AuthenticateTokenCommand) (*dto.AuthUserDTO, error) {
	raw := strings.TrimSpace(cmd.IDToken)
	if raw == "" {
		return nil, errors.NewValidationError("id_token is required")
	}

	claims, err := uc.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, VerifyError(uc.logger, err)
	}

	profile, err := uc.userRepo.GetByID(ctx, claims.UID)
	switch {
	case stderrors.Is(err, user.ErrUserNotFound):
		profile, err = uc.createProfile(ctx, claims)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.FromStore(uc.logger, "failed to load profile", err, "uid", claims.UID)
	}

	if profile.IsBlocked() {
		uc.logger.Warnw("blocked profile attempted token login", "uid", profile.ID())
		return nil, errors.NewAccountBlockedError()
	}

	email := claims.Email
	if email == "" {
		email = profile.Email()
	}

	uc.logger.Infow("token login succeeded", "uid", profile.ID(), "role", profile.Role())

	return &dto.AuthUserDTO{
		UID:   profile.ID(),
		Email: email,
		Role:  profile.Role().String(),
	}, nil
}

func (uc *AuthenticateTokenUseCase) createProfile(ctx context.Context, claims *identity.Claims) (*user.User, error) {
	profile, err := user.NewProfile(claims.UID, claims.Email, uc.now())
	if err != nil {
		return nil, errors.NewTokenInvalidError()
	}
	if err := uc.userRepo.Create(ctx, profile); err != nil {
		return nil, errors.FromStore(uc.logger, "failed to create profile", err, "uid", claims.UID)
	}
	uc.logger.Infow("profile created", "uid", profile.ID())
	return profile, nil
}

// VerifyError maps verifier failures onto the credential gate's error kinds.
func VerifyError(log logger.Interface, err error) error {
	switch {
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, identity.ErrTokenMalformed):
		return errors.NewTokenFormatError()
	case stderrors.Is(err, identity.ErrTokenRejected):
		return errors.NewTokenInvalidError()
	default:
		log.Errorw("token verification failed", "error", err)
		return errors.NewTokenInvalidError()
	}
}
