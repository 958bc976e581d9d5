package client

import (
	"errors"

	"github.com/lmstools/canvas-client/internal/request"
)

// StatusError reports a remote response with status >= 400; it carries the
// status code and raw response text. Transport-level failures are returned
// as-is and are not StatusErrors.
type StatusError = request.StatusError

// ErrRequestFailed is present in the chain of every StatusError.
var ErrRequestFailed = request.ErrRequestFailed

// AsStatusError extracts the *StatusError from err's chain, if any.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}
