package service

import "errors"

// ErrNotFound reports that a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports client-correctable input problems (missing image,
// missing required field). Handlers map it to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}
