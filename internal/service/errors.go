package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrorKind is the stable, machine-readable category of a service failure.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindForbidden  ErrorKind = "forbidden"
	KindConflict   ErrorKind = "conflict"
	KindStore      ErrorKind = "store"
)

// ErrTestIDSpaceExhausted is returned when no free test id turned up within
// the allocator's attempt budget.
var ErrTestIDSpaceExhausted = errors.New("no free test id available")

// Error is what every service returns on failure. ResultID is only set for
// conflicts and points at the result that already exists.
type Error struct {
	Kind     ErrorKind
	Message  string
	ResultID uint
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of err. Errors that did not come from a service are
// treated as store failures.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindStore
}

func validationError(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func forbiddenError(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func alreadySubmittedError(resultID uint) error {
	return &Error{Kind: KindConflict, Message: "test has already been submitted by this user", ResultID: resultID}
}

func storeError(message string, err error) error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return err
	}
	return &Error{Kind: KindStore, Message: message, Err: err}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
