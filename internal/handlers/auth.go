package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aditsaputra/academy/internal/middleware"
	"github.com/aditsaputra/academy/internal/models"
	pkgauth "github.com/aditsaputra/academy/pkg/auth"
	pkghttp "github.com/aditsaputra/academy/pkg/http"
)

// AuthServiceInterface defines the interface for auth business logic
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password, origin string) (*models.SessionData, error)
	Logout(ctx context.Context)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	CurrentUser() *models.User
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	service      AuthServiceInterface
	ipConfig     *pkghttp.IPConfig
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthServiceInterface, ipConfig *pkghttp.IPConfig, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		ipConfig:     ipConfig,
		secureCookie: secureCookie,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=128"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// SessionResponse is returned on a successful login and by the
// session endpoint.
type SessionResponse struct {
	User *models.User `json:"user"`
}

// Login handles admin login. On success the session token is set as an
// httpOnly cookie; the token itself is never returned in the body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	// Origin is an opaque client descriptor recorded with failed attempts
	origin := fmt.Sprintf("%s %s", pkghttp.ExtractClientIP(r, h.ipConfig), r.Header.Get("User-Agent"))

	session, err := h.service.Login(r.Context(), req.Username, req.Password, origin)
	if err != nil {
		if remaining, ok := models.IsRateLimited(err); ok {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(remaining.Seconds())+1))
			pkghttp.WriteTooManyRequests(w, "Too many failed login attempts. Please try again later.")
			return
		}
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			// Same message whether the username or the password was wrong
			pkghttp.WriteUnauthorized(w, "Invalid username or password")
		case errors.Is(err, models.ErrCorruptCredential):
			pkghttp.WriteInternalError(w, "Authentication is unavailable")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	middleware.SetSessionCookie(w, session.SessionID, h.secureCookie)
	pkghttp.WriteJSON(w, http.StatusOK, SessionResponse{
		User: &models.User{ID: session.UserID, Username: session.Username, Role: session.Role},
	})
}

// Logout destroys the session. Safe to call when already logged out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the current authenticated identity.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	pkghttp.WriteJSON(w, http.StatusOK, SessionResponse{User: middleware.UserFromContext(r.Context())})
}

// ChangePassword re-verifies the current password before accepting the new one.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.service.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		var pve *pkgauth.PasswordValidationError
		switch {
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Authentication required")
		case errors.Is(err, models.ErrInvalidCredentials):
			pkghttp.WriteUnauthorized(w, "Current password is incorrect")
		case errors.As(err, &pve):
			pkghttp.WriteBadRequest(w, "New password does not meet the strength requirements")
		case errors.Is(err, models.ErrStorageFailure):
			pkghttp.WriteInternalError(w, "Failed to save the new password")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
