package errors

import (
	"net/http"

	"wander/internal/errors"
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
	// Search-related errors
	ErrInvalidQuery = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUERY",
		"invalid query",
		"",
	)

	// Activity-related errors
	ErrActivityNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVITY_NOT_FOUND",
		"Activity not found",
		"",
	)

	// Storage-related errors
	ErrStorageFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILURE",
		"Unable to update your favorites right now.",
		"",
	)

	// Message stream errors
	ErrStreamBusy = NewBaseError(
		http.StatusConflict,
		"STREAM_BUSY",
		"Another client is already consuming the message stream",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// StorageError represents a failed call into the activity store, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage failure").Error()
}

// Unwrap exposes the underlying driver error
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return ErrStorageFailure.Message()
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
