// Package common contains wire-level constants shared by the HTTP client and
// its tests.
package common

const (
	// AuthorizationHeader carries "Bearer <token>" on authenticated requests.
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"

	// RequestIDHeader correlates a request with client-side log lines.
	RequestIDHeader = "X-Request-Id"
)
