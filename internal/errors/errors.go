package errors

import (
	"fmt"
)

// CheckError is the structured error type for libcheck.
// Every check reports library failures through it, whatever channel the
// underlying library used (NULL return, errno, false, missing symbol).
type CheckError struct {
	// Code is the unique error code (e.g., "ERR_101_LIBRARY_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Library, Init, Runtime, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with CheckError.
func (e *CheckError) Is(target error) bool {
	if t, ok := target.(*CheckError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *CheckError) WithDetail(key, value string) *CheckError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *CheckError) WithSuggestion(suggestion string) *CheckError {
	e.Suggestion = suggestion
	return e
}

// New creates a new CheckError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *CheckError {
	return &CheckError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a CheckError from an existing error.
// The error's message becomes the CheckError message.
func Wrap(code string, err error) *CheckError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// LibraryError creates an error for a native library that could not be loaded.
func LibraryError(message string, cause error) *CheckError {
	return New(ErrCodeLibraryNotFound, message, cause)
}

// InitError creates an error for a library whose initialization failed.
func InitError(message string, cause error) *CheckError {
	return New(ErrCodeInitFailed, message, cause)
}

// RuntimeError creates an error for a failing library call after initialization.
func RuntimeError(message string, cause error) *CheckError {
	return New(ErrCodeCallFailed, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *CheckError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *CheckError {
	return New(ErrCodeInternal, message, cause)
}

// GetCode extracts the error code from a CheckError.
// Returns empty string if not a CheckError.
func GetCode(err error) string {
	if ce, ok := err.(*CheckError); ok {
		return ce.Code
	}
	return ""
}

// GetCategory extracts the category from a CheckError.
// Returns empty string if not a CheckError.
func GetCategory(err error) Category {
	if ce, ok := err.(*CheckError); ok {
		return ce.Category
	}
	return ""
}
