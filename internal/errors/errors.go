package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeGameOver       = "GAME_OVER"
	ErrCodeGameInProgress = "GAME_IN_PROGRESS"
	ErrCodeShareFailed    = "SHARE_FAILED"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a VALIDATION_ERROR whose message is shown to
// the player as-is.
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// NewGameOverError is returned when a guess arrives after the session ended.
func NewGameOverError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeGameOver,
		Message: "the game is over, come back tomorrow",
		Status:  http.StatusConflict,
		Err:     err,
	}
}

// NewInProgressError is returned when a result is requested before the session ended.
func NewInProgressError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeGameInProgress,
		Message: "the game is still in progress",
		Status:  http.StatusConflict,
		Err:     err,
	}
}

// NewShareFailedError wraps a failed delivery to a share target.
func NewShareFailedError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeShareFailed,
		Message: "could not share result",
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}
