package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryNoInput         = "no_input"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewNoInputError creates a new ServiceError with category no_input. It marks
// runs where every source was attempted and nothing usable came back.
func NewNoInputError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryNoInput,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping. ExitCode is
// the process exit code the error maps to at the CLI boundary.
type ServiceError struct {
	Category string // invalid_argument, no_input or internal
	Code     string // service-owned stable code (e.g. ING_1000)
	Message  string // client-safe, human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// As extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func As(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
