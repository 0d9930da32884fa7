package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	userUsecases "github.com/back-informatica/chamados/internal/application/user/usecases"
	"github.com/back-informatica/chamados/internal/domain/identity"
	"github.com/back-informatica/chamados/internal/shared/constants"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
	"github.com/back-informatica/chamados/internal/shared/utils"
)

// AuthMiddleware is the credential gate in front of the caller-scoped routes.
// Every request is verified once; results are never cached.
type AuthMiddleware struct {
	verifier identity.Verifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier identity.Verifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if strings.TrimSpace(authHeader) == "" {
			utils.AbortWithError(c, errors.NewAuthenticationRequiredError())
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			utils.AbortWithError(c, errors.NewTokenFormatError())
			return
		}

		claims, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			m.logger.Debugw("bearer token rejected", "error", err, "path", c.Request.URL.Path)
			utils.AbortWithError(c, userUsecases.VerifyError(m.logger, err))
			return
		}

		c.Set(constants.ContextKeyClientUID, claims.UID)
		c.Next()
	}
}

// bearerToken splits "Bearer <token>". The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// GetClientUID returns the uid stored by RequireAuth, "" when absent.
func GetClientUID(c *gin.Context) string {
	uid, _ := c.Get(constants.ContextKeyClientUID)
	s, _ := uid.(string)
	return s
}
