package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a domain error for transport layers.
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeConflict ErrorCode = "CONFLICT"
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error is a domain-level error carrying a code.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *Error by code and message so wrapped sentinels compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps err with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternal
}

var (
	ErrActivityNotFound = NewError(ErrCodeNotFound, "activity not found")
	ErrActivityExists   = NewError(ErrCodeConflict, "activity already exists")
	ErrLogNotFound      = NewError(ErrCodeNotFound, "log entry not found")
	ErrMessageNotFound  = NewError(ErrCodeNotFound, "message not found")
	ErrMemoryItemAbsent = NewError(ErrCodeNotFound, "memory item not found")
	ErrEmptyMessage     = NewError(ErrCodeInvalid, "message content is required")
	ErrInvalidName      = NewError(ErrCodeInvalid, "activity name is required")
	ErrInvalidPoints    = NewError(ErrCodeInvalid, "custom points must be non-negative")
	ErrInvalidViz       = NewError(ErrCodeInvalid, "unknown visualization type")
	ErrInvalidSettings  = NewError(ErrCodeInvalid, "invalid settings")
)
