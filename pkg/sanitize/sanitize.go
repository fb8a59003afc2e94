// Package sanitize neutralizes user-supplied strings before they reach
// credential checks, content records, or log output.
package sanitize

import "strings"

// MaxLength caps sanitized input. Anything longer is truncated, not
// rejected.
const MaxLength = 1000

// Clean strips markup delimiters and control characters, trims
// surrounding whitespace, and enforces MaxLength. It never fails and
// is idempotent: Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch r {
		case '<', '>', '"', '\'', '`':
			// markup and quote delimiters dropped outright
		default:
			// keep tab/space and printable runes, drop other controls
			if r == '\t' || r >= 0x20 && r != 0x7f {
				b.WriteRune(r)
			}
		}
	}

	s := strings.TrimSpace(b.String())
	if len(s) > MaxLength {
		s = truncate(s, MaxLength)
		s = strings.TrimSpace(s)
	}
	return s
}

// truncate cuts s to at most n bytes without splitting a UTF-8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xc0 == 0x80 {
		n--
	}
	return s[:n]
}
