package entity

import (
	"errors"
	"fmt"
)

// BackendError is a non-2xx response from the HR platform backend. Message
// carries the server-provided error when the body had one, else a generic
// message.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: status=%d, message=%s", e.StatusCode, e.Message)
}

// AsBackendError unwraps err into a BackendError if it is one.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
