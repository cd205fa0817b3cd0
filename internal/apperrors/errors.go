package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found, or is
// not visible to the requesting owner.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation conflicts with the current state
// of the resource (e.g. posting an already-posted journal).
var ErrConflict = errors.New("state conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrAccountNotFound indicates a journal line references an account that
// does not resolve in the account directory.
var ErrAccountNotFound = errors.New("account not found")

// ErrImmutableJournal indicates an attempt to modify or delete a posted
// journal. Posted journals only change via unpost.
var ErrImmutableJournal = errors.New("journal is posted and immutable")

// ErrAlreadyPosted indicates a post on a journal that is already posted.
var ErrAlreadyPosted = errors.New("journal is already posted")

// ErrNotPosted indicates an unpost on a journal that is not posted.
var ErrNotPosted = errors.New("journal is not posted")

// AppError wraps an underlying error with an HTTP-ish status code and a
// message. Used mainly at the repository boundary to surface store failures
// without losing the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
