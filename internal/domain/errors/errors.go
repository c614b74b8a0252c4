// Package errors defines the application-level error taxonomy.
// Errors are constructed close to the store or upstream boundary and mapped to
// HTTP responses exactly once, by the delivery layer's error handler.
package errors

import (
	"net/http"

	"github.com/ZzzGreay/LanyuERP-BE/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource does not exist",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"invalid credentials or token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DuplicateNameError is raised when a store-level uniqueness constraint is
// violated. It carries the offending field so clients can highlight it.
type DuplicateNameError struct {
	field   string
	message string
}

// NewDuplicateNameError creates a duplicate-key error for the given field.
func NewDuplicateNameError(field, message string) *DuplicateNameError {
	return &DuplicateNameError{field: field, message: message}
}

// Error implements the error interface
func (e *DuplicateNameError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *DuplicateNameError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *DuplicateNameError) ErrorCode() string {
	return "DUPLICATE_NAME"
}

// Message returns the user-friendly error message
func (e *DuplicateNameError) Message() string {
	return e.message
}

// Details returns the violating field name
func (e *DuplicateNameError) Details() string {
	return e.field
}

// Field returns the name of the field whose uniqueness was violated.
func (e *DuplicateNameError) Field() string {
	return e.field
}

// UpstreamError is raised when a call to the external identity provider fails.
// It names the stage of the exchange that failed so the flow never hangs silently.
type UpstreamError struct {
	stage string
	err   error
}

// NewUpstreamError creates an upstream-failure error for the given exchange stage.
func NewUpstreamError(stage string, err error) *UpstreamError {
	return &UpstreamError{stage: stage, err: err}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrapf(e.err, "identity provider call failed at stage %q", e.stage).Error()
}

// Unwrap exposes the underlying transport error.
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILURE"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "external identity provider request failed"
}

// Details returns the failed exchange stage
func (e *UpstreamError) Details() string {
	return e.stage
}

// Stage returns the name of the exchange stage that failed.
func (e *UpstreamError) Stage() string {
	return e.stage
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
