package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// sensitiveHeaders holds lowercase names of headers that carry credentials,
// including the session token of the management web frontend.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-gsad-token":  true,
}

// RedactHeaders converts headers into log attributes sorted by name.
// Credential headers are replaced with "[REDACTED]"; multi-value headers are
// joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		vals := headers[key]
		if sensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}
