package sanitize

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain input unchanged",
			input: "admin",
			want:  "admin",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  admin\t ",
			want:  "admin",
		},
		{
			name:  "markup delimiters removed",
			input: `<script>alert("x")</script>`,
			want:  "scriptalert(x)/script",
		},
		{
			name:  "quotes removed",
			input: `it's "quoted" and ` + "`ticked`",
			want:  "its quoted and ticked",
		},
		{
			name:  "control characters removed",
			input: "user\x00name\r\nvalue\x1b",
			want:  "usernamevalue",
		},
		{
			name:  "interior whitespace kept",
			input: "two words",
			want:  "two words",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only forbidden characters",
			input: "<>\"'`\x00",
			want:  "",
		},
		{
			name:  "unicode preserved",
			input: "Kuasai Seni Trading — crypto ✓",
			want:  "Kuasai Seni Trading — crypto ✓",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"admin",
		`  <b>bold</b> "text" `,
		strings.Repeat("a", 2*MaxLength),
		strings.Repeat("é", MaxLength),
		"mixed \x01control<and>markup",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCleanEnforcesMaxLength(t *testing.T) {
	long := strings.Repeat("a", 3*MaxLength)
	got := Clean(long)
	if len(got) > MaxLength {
		t.Errorf("Clean returned %d bytes, want at most %d", len(got), MaxLength)
	}

	// Truncation must not split a multibyte rune
	multibyte := strings.Repeat("é", 2*MaxLength)
	got = Clean(multibyte)
	if len(got) > MaxLength {
		t.Errorf("Clean returned %d bytes, want at most %d", len(got), MaxLength)
	}
	for _, r := range got {
		if r == '�' {
			t.Error("Clean produced a broken UTF-8 sequence")
			break
		}
	}
}
