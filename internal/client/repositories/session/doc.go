// Package session persists the client session (bearer token, last selected
// channel) as key/value rows in the local SQLite database.
package session
