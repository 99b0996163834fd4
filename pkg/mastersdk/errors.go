package mastersdk

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrChannelNotFound is matched by a 404 response.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrHashMismatch is matched by a 403 response to a set request.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrRateLimited is matched by a 429 response.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer is matched by any 5xx response.
	ErrServer = errors.New("server error")
)

// APIError is returned for any unexpected HTTP status. The master answers
// errors with short plain text messages, which end up in Message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// Is maps status codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrChannelNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrHashMismatch:
		return e.StatusCode == http.StatusForbidden
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
