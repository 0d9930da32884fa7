package errors

import "github.com/back-informatica/chamados/internal/shared/logger"

// FromStore passes AppErrors through and turns anything else into an
// internal error carrying msg, logging the cause.
func FromStore(log logger.Interface, msg string, err error, keysAndValues ...any) error {
	if IsAppError(err) {
		return err
	}
	log.Errorw(msg, append(keysAndValues, "error", err)...)
	return NewInternalError(msg)
}
