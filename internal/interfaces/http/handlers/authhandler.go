package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/application/user/dto"
	"github.com/back-informatica/chamados/internal/application/user/usecases"
	"github.com/back-informatica/chamados/internal/shared/logger"
	"github.com/back-informatica/chamados/internal/shared/utils"
)

const loginMessage = "login successful"

type AuthHandler struct {
	authenticateTokenUC usecases.AuthenticateTokenExecutor
	loginUC             usecases.LoginWithPasswordExecutor
	logger              logger.Interface
}

func NewAuthHandler(
	authenticateTokenUC usecases.AuthenticateTokenExecutor,
	loginUC usecases.LoginWithPasswordExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		authenticateTokenUC: authenticateTokenUC,
		loginUC:             loginUC,
		logger:              logger,
	}
}

type TokenLoginRequest struct {
	IDToken string `json:"id_token" binding:"notblank"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"notblank"`
	Password string `json:"password" binding:"required"`
}

type TokenLoginResponse struct {
	Message string           `json:"message"`
	User    *dto.AuthUserDTO `json:"user"`
}

// TokenLogin handles POST /api/auth
func (h *AuthHandler) TokenLogin(c *gin.Context) {
	var req TokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for token login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.authenticateTokenUC.Execute(c.Request.Context(), usecases.AuthenticateTokenCommand{IDToken: req.IDToken})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, loginMessage, TokenLoginResponse{
		Message: loginMessage,
		User:    result,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("login failed", "username", req.Username, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, loginMessage, result)
}
