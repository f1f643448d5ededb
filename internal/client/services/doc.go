// Package services contains the application services of the chat client.
//
// Services sit between the UI and the transport client: they take the bearer
// token from the session, call exactly one client operation and apply the
// documented side effects to the state store. Errors from the client are
// returned wrapped, so callers can match them with errors.Is against the
// client package sentinels.
package services
