package services

import (
	"errors"
	"net/http"

	"github.com/it22117250/ITPM-Project/repository"
)

// ServiceError carries an HTTP status alongside a human-readable message.
// Controllers surface the message text as-is.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func newServiceError(code int, msg string) *ServiceError {
	return &ServiceError{StatusCode: code, Message: msg}
}

// storeError maps repository sentinel errors onto service errors, using
// notFoundMsg when the record is missing.
func storeError(err error, notFoundMsg string) *ServiceError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return newServiceError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrAlreadyCompleted):
		return newServiceError(http.StatusBadRequest, "Order is already completed")
	case errors.Is(err, repository.ErrInsufficientStock):
		return newServiceError(http.StatusBadRequest, "Insufficient stock")
	case errors.Is(err, repository.ErrDuplicate):
		return newServiceError(http.StatusConflict, "Record already exists")
	default:
		return newServiceError(http.StatusInternalServerError, "Internal server error")
	}
}
