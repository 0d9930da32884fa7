package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeAuthenticationRequired ErrorType = "authentication_required"
	ErrorTypeTokenFormat            ErrorType = "invalid_token_format"
	ErrorTypeTokenInvalid           ErrorType = "invalid_token"
	ErrorTypeInvalidCredentials     ErrorType = "invalid_credentials"
	ErrorTypeAccountBlocked         ErrorType = "account_blocked"
)

// AuthError represents authentication-specific errors
type AuthError struct {
	*AppError
	// ShouldLog is false for failures expected during normal client use.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

func newAuthError(t ErrorType, code int, message string, shouldLog bool) *AuthError {
	return &AuthError{
		AppError:  &AppError{Type: t, Message: message, Code: code},
		ShouldLog: shouldLog,
	}
}

// NewAuthenticationRequiredError is returned when no Authorization header is sent.
func NewAuthenticationRequiredError() *AuthError {
	return newAuthError(ErrorTypeAuthenticationRequired, http.StatusUnauthorized, "authentication required", false)
}

// NewTokenFormatError is returned when the header or the token itself cannot be parsed.
func NewTokenFormatError() *AuthError {
	return newAuthError(ErrorTypeTokenFormat, http.StatusUnauthorized, "invalid token format", false)
}

// NewTokenInvalidError is returned when the verifier rejects a well-formed token.
func NewTokenInvalidError() *AuthError {
	return newAuthError(ErrorTypeTokenInvalid, http.StatusUnauthorized, "invalid or expired token", true)
}

// NewInvalidCredentialsError does not reveal which of username or password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return newAuthError(ErrorTypeInvalidCredentials, http.StatusUnauthorized, "invalid username or password", false)
}

// NewAccountBlockedError is returned for profiles whose status is blocked.
func NewAccountBlockedError() *AuthError {
	return newAuthError(ErrorTypeAccountBlocked, http.StatusForbidden, "account is blocked", true)
}

// GetAuthError extracts AuthError from error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether an authentication failure deserves a log
// line. Errors that are not AuthErrors are always logged.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
