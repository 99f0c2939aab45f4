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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Menu errors
	ErrInvalidSelection ErrorCode = "INVALID_SELECTION"
	ErrPrompt           ErrorCode = "PROMPT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Network errors
	ErrFetch ErrorCode = "FETCH"

	// FileSystem errors
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ValkError represents a structured error with code and details
type ValkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ValkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ValkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ValkError) Is(target error) bool {
	var targetErr *ValkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ValkError with the given code and message
func New(code ErrorCode, message string) *ValkError {
	return &ValkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ValkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ValkError {
	return &ValkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ValkError
func Wrap(err error, code ErrorCode, message string) *ValkError {
	if err == nil {
		return nil
	}
	return &ValkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ValkError {
	if err == nil {
		return nil
	}
	return &ValkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ValkError) WithDetail(key string, value interface{}) *ValkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var valkErr *ValkError
	if errors.As(err, &valkErr) {
		return valkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ValkError
func GetErrorCode(err error) ErrorCode {
	var valkErr *ValkError
	if errors.As(err, &valkErr) {
		return valkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ValkError
func GetErrorDetails(err error) map[string]interface{} {
	var valkErr *ValkError
	if errors.As(err, &valkErr) {
		return valkErr.Details
	}
	return nil
}
