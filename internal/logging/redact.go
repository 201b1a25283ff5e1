package logging

import (
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveKeys are matched as substrings of lowercased keys.
var sensitiveKeys = []string{"password", "card", "token", "secret"}

func isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}

// redact returns args with the values of sensitive keys replaced. Both
// "key", value pairs and slog.Attr elements are understood; args is not
// modified.
func redact(args []any) []any {
	var out []any
	for i := 0; i < len(args); i++ {
		switch a := args[i].(type) {
		case slog.Attr:
			if isSensitive(a.Key) {
				out = ensureCopy(out, args)
				out[i] = slog.String(a.Key, redacted)
			}
		case string:
			if i+1 < len(args) && isSensitive(a) {
				out = ensureCopy(out, args)
				out[i+1] = redacted
			}
			i++
		}
	}
	if out == nil {
		return args
	}
	return out
}

func ensureCopy(out, args []any) []any {
	if out != nil {
		return out
	}
	return append([]any(nil), args...)
}
