package logging

import (
	"log/slog"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// RedactedValue replaces the value logged under a credential key.
const RedactedValue = "[redacted]"

// Keys whose values never reach a log sink. Matching ignores case.
var secretKeys = map[string]struct{}{
	"token":         {},
	"password":      {},
	"authorization": {},
}

func isSecret(key string) bool {
	_, ok := secretKeys[strings.ToLower(key)]
	return ok
}

// redact masks credential values in a key/value list. args is returned as
// is when nothing has to be masked.
func redact(args []any) []any {
	out := args
	copied := false
	set := func(i int, v any) {
		if !copied {
			out = slices.Clone(args)
			copied = true
		}
		out[i] = v
	}

	for i := 0; i < len(args); i++ {
		switch a := args[i].(type) {
		case slog.Attr:
			if isSecret(a.Key) {
				set(i, slog.String(a.Key, RedactedValue))
			}
		case zap.Field:
			if isSecret(a.Key) {
				set(i, zap.String(a.Key, RedactedValue))
			}
		case string:
			if i+1 < len(args) {
				if isSecret(a) {
					set(i+1, RedactedValue)
				}
				i++
			}
		}
	}
	return out
}
