package errors

import (
	stderrors "errors"
	"fmt"
)

// LedgerError is a recoverable command failure. It carries one of the
// command codes and the message to show the user.
type LedgerError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// LedgerErrorOption configures a LedgerError
type LedgerErrorOption func(*LedgerError)

// WithUserMessage overrides the default message for the code
func WithUserMessage(message string) LedgerErrorOption {
	return func(e *LedgerError) {
		e.Message = message
	}
}

// WithCause attaches the underlying error
func WithCause(err error) LedgerErrorOption {
	return func(e *LedgerError) {
		e.Err = err
	}
}

// NewLedgerError creates a LedgerError with the default message for code
func NewLedgerError(code ErrorCode, opts ...LedgerErrorOption) *LedgerError {
	e := &LedgerError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *LedgerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Is matches any LedgerError with the same code
func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// AsLedgerError extracts a LedgerError from an error chain
func AsLedgerError(err error) (*LedgerError, bool) {
	var le *LedgerError
	if stderrors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// HasCode reports whether err carries a LedgerError with the given code
func HasCode(err error, code ErrorCode) bool {
	le, ok := AsLedgerError(err)
	return ok && le.Code == code
}
