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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnsupported  ErrorCode = "UNSUPPORTED"

	// Configuration errors
	ErrConfigMissing ErrorCode = "CONFIG_MISSING"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite   ErrorCode = "CONFIG_WRITE"

	// FileSystem errors
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// External process errors
	ErrExternalProcess ErrorCode = "EXTERNAL_PROCESS"
	ErrEditorNotFound  ErrorCode = "EDITOR_NOT_FOUND"
	ErrClone           ErrorCode = "CLONE"
)

// RooError represents a structured error with code and details
type RooError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RooError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RooError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RooError) Is(target error) bool {
	var targetErr *RooError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RooError with the given code and message
func New(code ErrorCode, message string) *RooError {
	return &RooError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RooError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RooError {
	return &RooError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RooError
func Wrap(err error, code ErrorCode, message string) *RooError {
	if err == nil {
		return nil
	}
	return &RooError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RooError {
	if err == nil {
		return nil
	}
	return &RooError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RooError) WithDetail(key string, value interface{}) *RooError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rooErr *RooError
	if errors.As(err, &rooErr) {
		return rooErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RooError
func GetErrorCode(err error) ErrorCode {
	var rooErr *RooError
	if errors.As(err, &rooErr) {
		return rooErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RooError
func GetErrorDetails(err error) map[string]interface{} {
	var rooErr *RooError
	if errors.As(err, &rooErr) {
		return rooErr.Details
	}
	return nil
}

// UserMessage returns the message without the code prefix, followed by the
// wrapped cause. Used for operator-facing output.
func UserMessage(err error) string {
	var rooErr *RooError
	if !errors.As(err, &rooErr) {
		return err.Error()
	}
	if rooErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", rooErr.Message, UserMessage(rooErr.Wrapped))
	}
	return rooErr.Message
}
