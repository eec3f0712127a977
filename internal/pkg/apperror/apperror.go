package apperror

import (
	"errors"
	"fmt"
)

// Kind separates caller-correctable failures from collaborator faults.
type Kind string

const (
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

const internalMessage = "internal error"

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a caller-actionable error. The message is surfaced verbatim.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Internal hides cause behind a generic message; cause stays reachable for logs.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: internalMessage, Err: cause}
}

func IsValidation(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindValidation
}

func IsInternal(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindInternal
}

// Normalize keeps classified errors as they are and turns anything else into Internal.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
