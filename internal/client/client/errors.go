package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetworkFailure wraps transport-level failures: DNS, refused
	// connections, timeouts, cancelled contexts, unreadable bodies and
	// requests that could not even be built from the configured base URL.
	ErrNetworkFailure = errors.New("network failure")

	// ErrHTTPStatus is matched by every *StatusError.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrUnauthorized is additionally matched by 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound reports a channel or user absent from a listing.
	ErrNotFound = errors.New("not found")

	// ErrAuthenticationFailed reports a login that produced no usable token.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedResponse reports a body that does not decode into the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for any non-2xx response. The response body is
// kept for diagnostics and never decoded as data.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

const maxErrorBodyInMessage = 256

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorBodyInMessage {
		body = body[:maxErrorBodyInMessage] + "..."
	}
	msg := fmt.Sprintf("%s %s: status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if body != "" {
		msg += ": " + body
	}
	return msg
}

func (e *StatusError) Unwrap() []error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return []error{ErrHTTPStatus, ErrUnauthorized}
	}
	return []error{ErrHTTPStatus}
}

// StatusCode returns the HTTP status carried by err, or 0 when err holds no
// *StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
