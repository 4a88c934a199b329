package domain

import "errors"

// Error kinds. Every sentinel error in this package unwraps to exactly one of them.
var (
	ErrKindValidation = errors.New("validation failure")
	ErrKindNotFound   = errors.New("not found")
	ErrKindForbidden  = errors.New("forbidden")
	ErrKindConflict   = errors.New("conflict")
	ErrKindStorage    = errors.New("storage failure")
)

type Error struct {
	kind error
	msg  string
}

func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// StorageError wraps a persistence failure. The cause is kept for logging
// but must never reach a client.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Is(target error) bool { return target == ErrKindStorage }

func (e *StorageError) Unwrap() error { return e.Err }
