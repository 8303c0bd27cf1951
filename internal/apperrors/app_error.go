package apperrors

import (
	"net/http"
)

// Message ids understood by the i18n bundle.
const (
	MsgInvalidRequest = "error.invalid_request"
	MsgInvalidID      = "error.invalid_id"
	MsgInvalidPage    = "error.invalid_pagination"
	MsgInvalidURL     = "error.full_url_invalid"
	MsgEmptyBatch     = "error.empty_batch"
	MsgURLNotFound    = "error.url_not_found"
	MsgURLGone        = "error.url_gone"
	MsgConflict       = "error.conflict"
	MsgForbidden      = "error.forbidden"
	MsgDBUnavailable  = "error.db_unavailable"
	MsgInternal       = "error.internal"
)

// AppError is an error that terminates a request with an HTTP status.
// MessageID is translated by the error middleware; Message is the English fallback.
type AppError struct {
	Code      int
	MessageID string
	Message   string
	Cause     error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode creates a generic business error.
func WithCode(code int, messageID, message string) *AppError {
	return &AppError{
		Code:      code,
		MessageID: messageID,
		Message:   message,
	}
}

// Wrap attaches the underlying cause.
func (e *AppError) Wrap(cause error) *AppError {
	return &AppError{
		Code:      e.Code,
		MessageID: e.MessageID,
		Message:   e.Message,
		Cause:     cause,
	}
}

// InvalidRequestError wraps a parameter validation failure.
func InvalidRequestError(messageID, message string) *AppError {
	return WithCode(http.StatusBadRequest, messageID, message)
}

// InvalidRequestErrorDefault is the generic validation failure.
func InvalidRequestErrorDefault() *AppError {
	return WithCode(http.StatusBadRequest, MsgInvalidRequest, "Parameter verification failed")
}

// NotFoundError is returned for unknown ids and short codes.
func NotFoundError() *AppError {
	return WithCode(http.StatusNotFound, MsgURLNotFound, "URL not found")
}

// GoneError is returned when a soft-deleted url is accessed.
func GoneError() *AppError {
	return WithCode(http.StatusGone, MsgURLGone, "URL was deleted from the database.")
}

// ConflictError is returned when a unique constraint rejects an insert.
func ConflictError() *AppError {
	return WithCode(http.StatusConflict, MsgConflict, "URL already exists")
}

// ForbiddenError is returned to blacklisted clients.
func ForbiddenError() *AppError {
	return WithCode(http.StatusForbidden, MsgForbidden, "Access denied")
}

// UnavailableError is returned when the database does not answer in time.
func UnavailableError() *AppError {
	return WithCode(http.StatusServiceUnavailable, MsgDBUnavailable, "Database is not available")
}

// SystemErrorDefault is the generic internal failure.
func SystemErrorDefault() *AppError {
	return WithCode(http.StatusInternalServerError, MsgInternal, "Internal Server Error")
}
