package model

import (
	"errors"
	"fmt"
)

// Code identifies an error category, giving callers and tests something
// stable to match on instead of message text.
type Code string

const (
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	CodeInvalidLabel     Code = "INVALID_LABEL"
	CodeInvalidSelection Code = "INVALID_SELECTION"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAtRoot           Code = "AT_ROOT"
	CodeEmptyHistory     Code = "EMPTY_HISTORY"
	CodeFilesystem       Code = "FILESYSTEM"
)

// Error is a coded error. Two Errors compare equal under errors.Is when
// their codes match.
type Error struct {
	Code    Code
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Wrapped }

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewError creates an Error with a formatted message.
func NewError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError wraps an underlying error under a code. Returns nil for a nil
// cause so call sites can wrap unconditionally.
func WrapError(err error, code Code, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return errors.Is(err, &Error{Code: code})
}
