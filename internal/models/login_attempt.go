package models

import "time"

// LoginAttempt records a single failed login. Attempts are held in
// memory only long enough to evaluate the lockout window and age out
// once the window has passed.
type LoginAttempt struct {
	Timestamp time.Time
	Origin    string // opaque client descriptor, typically the User-Agent
}

// RateLimitState tracks the recent failures for one identifier
// (lowercased username) plus the derived lockout deadline once the
// failure threshold is reached within the window.
type RateLimitState struct {
	Attempts     []LoginAttempt
	BlockedUntil time.Time
}
