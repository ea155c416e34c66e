package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the single error type crossing the operation boundary. Status
// carries the HTTP status the error maps to; Err keeps the underlying cause
// for logging and is never sent to clients.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func BadRequest(message string) *AppError {
	return New(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return New(fiber.StatusConflict, message)
}

func Unavailable(message string, cause error) *AppError {
	return &AppError{Status: fiber.StatusServiceUnavailable, Message: message, Err: cause}
}

func Internal(message string, cause error) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: message, Err: cause}
}

// FromError normalizes any error into an AppError. Unrecognized errors
// become opaque internal errors so store failures are never exposed verbatim.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &AppError{Status: fiberErr.Code, Message: fiberErr.Message}
	}
	return Internal("internal server error", err)
}
