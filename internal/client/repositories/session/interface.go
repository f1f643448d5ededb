package session

import "context"

// Well-known keys.
const (
	KeyToken           = "token"
	KeySelectedChannel = "selected_channel"
)

// Repository is a string key/value store. Get reports ok=false for a missing
// key instead of returning an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
