package models

import "time"

// SessionData is the persisted proof of a successful login. A session
// is valid only while both the idle timeout (measured from
// LastActivity) and the absolute lifetime (measured from CreatedAt)
// have not elapsed.
type SessionData struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	SessionID    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// User is the authenticated-identity view exposed to the rest of the
// application.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Valid reports whether the session is still live at the given instant
// under the supplied idle and absolute limits.
func (s *SessionData) Valid(now time.Time, idleTimeout, maxLifetime time.Duration) bool {
	if s == nil || s.SessionID == "" {
		return false
	}
	if now.Sub(s.LastActivity) > idleTimeout {
		return false
	}
	if now.Sub(s.CreatedAt) > maxLifetime {
		return false
	}
	return true
}
