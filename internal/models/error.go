package models

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for common failure conditions
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCorruptCredential  = errors.New("stored credential is unreadable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrStorageFailure     = errors.New("storage backend failure")
	ErrNotFound           = errors.New("resource not found")
	ErrInternalServer     = errors.New("internal server error")
)

// RateLimitedError indicates a login lockout is active. It carries the
// time remaining before attempts are accepted again.
type RateLimitedError struct {
	Remaining time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many failed login attempts, retry in %s", e.Remaining.Round(time.Second))
}

// IsRateLimited reports whether err carries an active lockout and
// returns the remaining duration if so.
func IsRateLimited(err error) (time.Duration, bool) {
	var rle *RateLimitedError
	if errors.As(err, &rle) {
		return rle.Remaining, true
	}
	return 0, false
}
