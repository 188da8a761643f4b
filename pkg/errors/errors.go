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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Extraction errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Mapping errors
	ErrMappingInvalid ErrorCode = "MAPPING_INVALID"

	// Transformation errors
	ErrEntityUnsupported ErrorCode = "ENTITY_UNSUPPORTED"
	ErrAspectBuild       ErrorCode = "ASPECT_BUILD"
	ErrStoreLookup       ErrorCode = "STORE_LOOKUP"

	// Input/output errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// TransformError represents a structured error with code and details
type TransformError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TransformError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TransformError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TransformError) Is(target error) bool {
	var targetErr *TransformError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TransformError with the given code and message
func New(code ErrorCode, message string) *TransformError {
	return &TransformError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TransformError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TransformError {
	return &TransformError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TransformError
func Wrap(err error, code ErrorCode, message string) *TransformError {
	if err == nil {
		return nil
	}
	return &TransformError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TransformError {
	if err == nil {
		return nil
	}
	return &TransformError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TransformError) WithDetail(key string, value interface{}) *TransformError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var terr *TransformError
	if errors.As(err, &terr) {
		return terr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TransformError
func GetErrorCode(err error) ErrorCode {
	var terr *TransformError
	if errors.As(err, &terr) {
		return terr.Code
	}
	return ErrUnknown
}
