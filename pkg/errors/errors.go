package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeAlreadyExists

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeExternalAPI

	// Refresh cycle errors - raised by the update coordinator
	ErrorTypeFetch
	ErrorTypeTimeout
	ErrorTypeRefresh
	ErrorTypeInitialization

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAlreadyExists:
		return "ALREADY_EXISTS_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeFetch:
		return "FETCH_ERROR"
	case ErrorTypeTimeout:
		return "TIMEOUT_EXCEEDED"
	case ErrorTypeRefresh:
		return "REFRESH_FAILED"
	case ErrorTypeInitialization:
		return "INITIALIZATION_FAILED"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(ErrorTypeAlreadyExists, message)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDatabase, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ErrorTypeExternalAPI, message, cause)
}

// Refresh cycle Error Constructors

// NewFetchError reports a failure of one of the remote source calls.
func NewFetchError(message string, cause error) *AppError {
	return Wrap(ErrorTypeFetch, message, cause)
}

// NewTimeoutError reports a refresh attempt that did not finish in time.
func NewTimeoutError(message string, cause error) *AppError {
	return Wrap(ErrorTypeTimeout, message, cause)
}

// NewRefreshError wraps a fetch or timeout error for a failed refresh cycle.
func NewRefreshError(message string, cause error) *AppError {
	return Wrap(ErrorTypeRefresh, message, cause)
}

// NewInitializationError wraps a refresh failure that happened during the first refresh.
func NewInitializationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeInitialization, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// Helper functions for error type checking.
// Each walks the wrap chain, so a refresh error wrapped in an initialization
// error still reports as both.

func hasType(err error, errorType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errorType {
			return true
		}
		err = appErr.Cause
	}
	return false
}

func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

func IsAlreadyExistsError(err error) bool {
	return hasType(err, ErrorTypeAlreadyExists)
}

func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

func IsDatabaseError(err error) bool {
	return hasType(err, ErrorTypeDatabase)
}

func IsExternalAPIError(err error) bool {
	return hasType(err, ErrorTypeExternalAPI)
}

func IsFetchError(err error) bool {
	return hasType(err, ErrorTypeFetch)
}

func IsTimeoutError(err error) bool {
	return hasType(err, ErrorTypeTimeout)
}

func IsRefreshError(err error) bool {
	return hasType(err, ErrorTypeRefresh)
}

func IsInitializationError(err error) bool {
	return hasType(err, ErrorTypeInitialization)
}

func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}

// TypeOf returns the type of the outermost AppError in the chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}
