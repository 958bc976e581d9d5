package request

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the sentinel every *StatusError unwraps to, so callers
// can detect remote-rejection without caring about the concrete status.
var ErrRequestFailed = errors.New("request failed")

// StatusError reports a remote response with status >= 400. It carries the
// raw response text; no attempt is made to parse the remote error shape.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrRequestFailed }
