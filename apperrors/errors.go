// Package apperrors provides coded errors that the HTTP layer maps to responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

const (
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	CodeProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	CodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	CodeCatalogInvalid  ErrorCode = "CATALOG_INVALID"
	CodeImagesDisabled  ErrorCode = "IMAGES_DISABLED"
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// AppError is an error with a code and the HTTP status it renders as.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Status  int       `json:"-"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// New creates an AppError.
func New(code ErrorCode, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// Wrap attaches a code and status to an underlying error.
func Wrap(err error, code ErrorCode, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message, Err: err}
}

func SessionNotFound(id string) *AppError {
	return New(CodeSessionNotFound, http.StatusNotFound, fmt.Sprintf("session %q not found", id))
}

func ProfileNotFound(id string) *AppError {
	return New(CodeProfileNotFound, http.StatusNotFound, fmt.Sprintf("profile %q not found", id))
}

func InvalidRequest(message string) *AppError {
	return New(CodeInvalidRequest, http.StatusBadRequest, message)
}

// As extracts an AppError from err. Anything else becomes an internal error.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, http.StatusInternalServerError, "internal error")
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
