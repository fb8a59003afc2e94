package middleware

import (
	"context"
	"net/http"

	"github.com/aditsaputra/academy/internal/models"
	pkghttp "github.com/aditsaputra/academy/pkg/http"
)

// SessionCookieName is the httpOnly cookie carrying the session token.
const SessionCookieName = "admin_session"

type contextKey string

const userContextKey contextKey = "current_user"

// SessionValidator is the slice of the auth service the middleware
// consumes: session validation plus the authenticated-identity view.
type SessionValidator interface {
	Validate(ctx context.Context, sessionID string) bool
	CurrentUser() *models.User
}

// RequireSession rejects requests that do not carry a valid session
// cookie. On success the authenticated user is stored in the request
// context; an invalid or expired session also clears the cookie.
func RequireSession(auth SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				pkghttp.WriteUnauthorized(w, "Authentication required")
				return
			}

			if !auth.Validate(r.Context(), cookie.Value) {
				ClearSessionCookie(w)
				pkghttp.WriteUnauthorized(w, "Session expired or invalid")
				return
			}

			user := auth.CurrentUser()
			if user == nil {
				ClearSessionCookie(w)
				pkghttp.WriteUnauthorized(w, "Session expired or invalid")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user placed by
// RequireSession, or nil outside a protected route.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// SetSessionCookie writes the session token as an httpOnly cookie.
// MaxAge is left unset so the cookie lives for the browser session;
// server-side expiry is authoritative either way.
func SetSessionCookie(w http.ResponseWriter, sessionID string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie deletes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
