// Package state holds the observable client-side UI state.
//
// A Store is created per session and reset on logout. Services mutate it as
// a side effect of successful writes (CreateChannel appends to the channel
// list before changing the selection); the CLI subscribes to print changes.
package state
