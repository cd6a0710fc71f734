package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown         ErrorCode = "UNKNOWN"
	ErrInternal        ErrorCode = "INTERNAL"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrNotFound        ErrorCode = "NOT_FOUND"
	ErrAlreadyExists   ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Descriptor errors
	ErrDescriptorParse ErrorCode = "DESCRIPTOR_PARSE"
	ErrDescriptorRead  ErrorCode = "DESCRIPTOR_READ"

	// Resolution errors
	ErrPackageNotFound   ErrorCode = "PACKAGE_NOT_FOUND"
	ErrVersionConflict   ErrorCode = "VERSION_CONFLICT"
	ErrDependencyCycle   ErrorCode = "DEPENDENCY_CYCLE"
	ErrNoMatchingVariant ErrorCode = "NO_VARIANT"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// PkgenvError represents a structured error with code and details
type PkgenvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PkgenvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PkgenvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PkgenvError) Is(target error) bool {
	var targetErr *PkgenvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PkgenvError with the given code and message
func New(code ErrorCode, message string) *PkgenvError {
	return &PkgenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PkgenvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PkgenvError {
	return &PkgenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PkgenvError
func Wrap(err error, code ErrorCode, message string) *PkgenvError {
	if err == nil {
		return nil
	}
	return &PkgenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PkgenvError {
	if err == nil {
		return nil
	}
	return &PkgenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PkgenvError) WithDetail(key string, value interface{}) *PkgenvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pkgErr *PkgenvError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PkgenvError
func GetErrorCode(err error) ErrorCode {
	var pkgErr *PkgenvError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PkgenvError
func GetErrorDetails(err error) map[string]interface{} {
	var pkgErr *PkgenvError
	if errors.As(err, &pkgErr) {
		return pkgErr.Details
	}
	return nil
}
