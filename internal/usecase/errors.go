package usecase

import "errors"

// PreconditionError is a client-side precondition failure (a missing or
// malformed input) detected before any backend call. Handlers map it to a
// 400; the message is shown to the user as-is.
type PreconditionError struct {
	msg string
}

func NewPreconditionError(msg string) *PreconditionError {
	return &PreconditionError{msg: msg}
}

func (e *PreconditionError) Error() string {
	return e.msg
}

// IsPreconditionError reports whether err is a client-side input rejection.
func IsPreconditionError(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
