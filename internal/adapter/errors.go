package adapter

import "fmt"

// APIError is the single failure kind produced by the HTTP gateway for
// non-2xx responses. It carries only a message: either the error field
// of the server's JSON body or the generic fallback produced by
// [NewStatusError]. Callers pattern-match on the message content, so the
// type intentionally exposes nothing else.
type APIError struct {
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// NewStatusError builds the generic fallback error used when a non-2xx
// response has no parseable JSON error body.
func NewStatusError(status int) *APIError {
	return &APIError{Message: fmt.Sprintf("request failed (%d)", status)}
}
