package logger

import (
	"log/slog"
	"strings"
)

// MaskedIdentifier masks a login identifier for logging, keeping only
// the first character (e.g. "a****").
func MaskedIdentifier(identifier string) string {
	if identifier == "" {
		return "[empty]"
	}
	if len(identifier) == 1 {
		return "*"
	}
	return string(identifier[0]) + strings.Repeat("*", len(identifier)-1)
}

// RedactedAttr returns a redacted slog attribute for sensitive values
// In production, returns "[REDACTED]"; in development, returns the actual value
func RedactedAttr(key, value, env string) slog.Attr {
	if env == "production" {
		return slog.String(key, "[REDACTED]")
	}
	return slog.String(key, value)
}

// SanitizeQueryString checks if query string contains sensitive parameters
// and returns true if the entire query string should be redacted
func SanitizeQueryString(rawQuery string) bool {
	sensitiveParams := map[string]bool{
		"password": true,
		"token":    true,
		"secret":   true,
		"session":  true,
		"auth":     true,
		"csrf":     true,
	}

	query := strings.ToLower(rawQuery)
	for param := range sensitiveParams {
		if strings.Contains(query, param) {
			return true
		}
	}
	return false
}
