// Package apperr provides coded application errors so callers can branch
// on the kind of failure instead of matching message strings.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a category of application error.
type Code string

const (
	CodeNotFound           Code = "NOT_FOUND"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeDuplicateEmail     Code = "DUPLICATE_EMAIL"
	CodeDuplicateUsername  Code = "DUPLICATE_USERNAME"
	CodePasswordMismatch   Code = "PASSWORD_MISMATCH"
	CodeNotAuthenticated   Code = "NOT_AUTHENTICATED"
	CodeValidationFailed   Code = "VALIDATION_FAILED"
	CodeInternal           Code = "INTERNAL_ERROR"
)

// Error is an application error with a stable code, a human message and an
// optional cause. Validation failures additionally carry the full list of
// per-field messages.
type Error struct {
	Code     Code
	Message  string
	Messages []string
	Cause    error
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches two application errors by code, so sentinel checks like
// errors.Is(err, apperr.New(apperr.CodeNotFound, "")) work regardless of
// message text.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates an application error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an application error that carries a cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// NewValidation creates a validation error carrying every violation found.
func NewValidation(messages []string) *Error {
	return &Error{
		Code:     CodeValidationFailed,
		Message:  "validation failed",
		Messages: messages,
	}
}

// CodeOf extracts the code from err, or CodeInternal for plain errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
