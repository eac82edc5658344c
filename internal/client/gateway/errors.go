package gateway

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps transport-level failures (connection refused, timeout,
// DNS). Match with errors.Is.
var ErrUnavailable = errors.New("quote service unavailable")

// ServerError reports a non-2xx response. Body carries the server-provided
// message verbatim so the UI can surface it.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("quote service rejected request: status %d: %s", e.StatusCode, e.Body)
}
