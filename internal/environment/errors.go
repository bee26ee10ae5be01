package environment

import (
	"errors"
	"fmt"
)

// Error codes for status lookup failures
const (
	CodeEnvironmentNotFound   = "ENVIRONMENT_NOT_FOUND"
	CodeAuthenticationFailure = "AUTHENTICATION_FAILURE"
	CodeUnexpected            = "UNEXPECTED_ERROR"
)

// Error represents a structured status lookup failure
type Error struct {
	Code        string // Machine-readable error code
	Message     string // Human-readable message
	Environment string // Environment name, if known
	Err         error  // Underlying cause
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Environment != "" {
		msg = fmt.Sprintf("%s (environment %q)", msg, e.Environment)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so the sentinel
// values below can be matched with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors for matching with errors.Is
var (
	ErrEnvironmentNotFound = &Error{
		Code:    CodeEnvironmentNotFound,
		Message: "environment not found",
	}

	ErrAuthenticationFailure = &Error{
		Code:    CodeAuthenticationFailure,
		Message: "failed to get AWS credentials",
	}

	ErrUnexpected = &Error{
		Code:    CodeUnexpected,
		Message: "unexpected error",
	}
)

// NewNotFoundError reports that no environment matched the name
func NewNotFoundError(environment string) *Error {
	return &Error{
		Code:        CodeEnvironmentNotFound,
		Message:     "environment not found",
		Environment: environment,
	}
}

// NewAuthenticationError wraps a credential or signature failure
func NewAuthenticationError(environment string, err error) *Error {
	return &Error{
		Code:        CodeAuthenticationFailure,
		Message:     "failed to get AWS credentials",
		Environment: environment,
		Err:         err,
	}
}

// NewUnexpectedError wraps any other lookup failure
func NewUnexpectedError(environment string, err error) *Error {
	return &Error{
		Code:        CodeUnexpected,
		Message:     "unexpected error",
		Environment: environment,
		Err:         err,
	}
}

// IsNotFound reports whether err is an environment-not-found failure
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEnvironmentNotFound)
}

// IsAuthenticationFailure reports whether err is a credential failure
func IsAuthenticationFailure(err error) bool {
	return errors.Is(err, ErrAuthenticationFailure)
}

// AsError extracts an *Error from err
func AsError(err error) (*Error, bool) {
	var envErr *Error
	if errors.As(err, &envErr) {
		return envErr, true
	}
	return nil, false
}
