package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskedIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "[empty]"},
		{input: "a", want: "*"},
		{input: "admin", want: "a****"},
		{input: "operator", want: "o*******"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskedIdentifier(tt.input))
	}
}

func TestRedactedAttr(t *testing.T) {
	attr := RedactedAttr("query", "password=secret", "production")
	assert.Equal(t, "[REDACTED]", attr.Value.String())

	attr = RedactedAttr("query", "password=secret", "development")
	assert.Equal(t, "password=secret", attr.Value.String())
}

func TestSanitizeQueryString(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{query: "", want: false},
		{query: "page=2&sort=asc", want: false},
		{query: "password=hunter2", want: true},
		{query: "TOKEN=abc", want: true},
		{query: "session_id=xyz", want: true},
		{query: "redirect=/auth/callback", want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeQueryString(tt.query), tt.query)
	}
}
