package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aditsaputra/academy/internal/models"
	"github.com/aditsaputra/academy/internal/store"
	pkgauth "github.com/aditsaputra/academy/pkg/auth"
	pkglogger "github.com/aditsaputra/academy/pkg/logger"
	"github.com/aditsaputra/academy/pkg/sanitize"
)

// AuthConfig holds the credential and session policy for AuthService.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string // bcrypt digest of the admin password
	BcryptCost        int

	SessionIdleTimeout time.Duration
	SessionMaxLifetime time.Duration
}

// credentialRecord is the persisted form of a changed password. When
// present it overrides the configured seed hash.
type credentialRecord struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthService owns the single admin session: it orchestrates
// sanitize -> rate limit -> verify on login, mints and persists the
// session record, validates and expires it, and exposes the
// authenticated-identity view the rest of the application consumes.
//
// All session-state mutations are serialized through one mutex so a
// periodic liveness check can never resurrect a session that a
// concurrent logout already destroyed.
type AuthService struct {
	store   store.Store
	limiter *RateLimitService
	logger  *slog.Logger
	audit   *pkglogger.AuditLogger
	config  AuthConfig

	mu           sync.Mutex
	passwordHash string // current hash; seed or persisted override
	session      *models.SessionData

	// decoyHash absorbs a bcrypt comparison when the username is wrong,
	// so unknown-user and wrong-password failures cost the same.
	decoyHash string

	now func() time.Time
}

// NewAuthService creates an AuthService. Call Init before serving to
// load any persisted credential override and resume a saved session.
func NewAuthService(st store.Store, limiter *RateLimitService, config AuthConfig, logger *slog.Logger, audit *pkglogger.AuditLogger) (*AuthService, error) {
	decoy, err := pkgauth.HashPassword(uuid.NewString(), config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare decoy hash: %w", err)
	}

	return &AuthService{
		store:        st,
		limiter:      limiter,
		logger:       logger,
		audit:        audit,
		config:       config,
		passwordHash: config.AdminPasswordHash,
		decoyHash:    decoy,
		now:          time.Now,
	}, nil
}

// Init loads persisted state: a changed-password credential record and
// a previously saved session. Storage failures degrade to "no session"
// and the seed credential; they are logged, never propagated.
func (s *AuthService) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, err := s.store.Get(ctx, store.KeyCredential); err != nil {
		s.logger.Error("failed to read credential record, using configured hash", slog.Any("error", err))
	} else if data != nil {
		var rec credentialRecord
		if err := json.Unmarshal(data, &rec); err != nil || rec.PasswordHash == "" {
			s.logger.Error("credential record unreadable, using configured hash", slog.Any("error", err))
		} else if rec.Username == s.config.AdminUsername {
			s.passwordHash = rec.PasswordHash
		}
	}

	data, err := s.store.Get(ctx, store.KeySession)
	if err != nil {
		s.logger.Error("failed to read saved session, starting logged out", slog.Any("error", err))
		return
	}
	if data == nil {
		return
	}

	var session models.SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Warn("saved session unreadable, discarding", slog.Any("error", err))
		s.removeSessionRecord(ctx)
		return
	}

	now := s.now()
	if !session.Valid(now, s.config.SessionIdleTimeout, s.config.SessionMaxLifetime) {
		s.logger.Info("saved session expired, discarding")
		s.removeSessionRecord(ctx)
		return
	}

	session.LastActivity = now
	s.session = &session
	s.persistSession(ctx)
	s.logger.Info("session resumed", slog.String("user_id", session.UserID))
}

// Login verifies the supplied credentials and, on success, replaces
// any existing session with a freshly minted one.
func (s *AuthService) Login(ctx context.Context, username, password, origin string) (*models.SessionData, error) {
	username = sanitize.Clean(username)
	password = sanitize.Clean(password)

	if username == "" || password == "" {
		return nil, models.ErrInvalidCredentials
	}

	if remaining := s.limiter.RemainingLockout(username); remaining > 0 {
		s.audit.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "login_failed",
			Origin:        origin,
			FailureReason: "rate_limited",
		})
		return nil, &models.RateLimitedError{Remaining: remaining}
	}

	// Username comparison is case-sensitive; the limiter key is not.
	// The wrong-username path still pays for a bcrypt comparison so
	// both failure modes take similar time.
	s.mu.Lock()
	storedHash := s.passwordHash
	s.mu.Unlock()

	candidate := storedHash
	usernameOK := username == s.config.AdminUsername
	if !usernameOK {
		candidate = s.decoyHash
	}

	passwordOK, err := pkgauth.VerifyPassword(password, candidate)
	if err != nil {
		if usernameOK {
			s.logger.Error("stored credential unreadable", slog.Any("error", err))
			return nil, models.ErrCorruptCredential
		}
		passwordOK = false
	}

	if !usernameOK || !passwordOK {
		s.limiter.RecordFailure(username, models.LoginAttempt{
			Timestamp: s.now(),
			Origin:    origin,
		})
		s.logger.Info("login failed: invalid credentials",
			slog.String("identifier", pkglogger.MaskedIdentifier(username)))
		s.audit.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "login_failed",
			Origin:        origin,
			FailureReason: "invalid_credentials",
		})
		return nil, models.ErrInvalidCredentials
	}

	sessionID, err := pkgauth.GenerateSessionID()
	if err != nil {
		s.logger.Error("failed to generate session id", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.limiter.Clear(username)

	now := s.now()
	session := &models.SessionData{
		UserID:       uuid.NewString(),
		Username:     username,
		Role:         "admin",
		SessionID:    sessionID,
		CreatedAt:    now,
		LastActivity: now,
	}

	s.mu.Lock()
	s.session = session
	s.persistSession(ctx)
	s.mu.Unlock()

	s.logger.Info("admin logged in", slog.String("user_id", session.UserID))
	s.audit.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "login_success",
		UserID:    session.UserID,
		Origin:    origin,
		Success:   true,
	})

	out := *session
	return &out, nil
}

// Validate checks that sessionID names the live session and that the
// session is within its idle and absolute limits. The true path
// refreshes LastActivity; the false path destroys the session.
func (s *AuthService) Validate(ctx context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || sessionID == "" || s.session.SessionID != sessionID {
		return false
	}

	now := s.now()
	if !s.session.Valid(now, s.config.SessionIdleTimeout, s.config.SessionMaxLifetime) {
		s.logger.Info("session expired", slog.String("user_id", s.session.UserID))
		s.clearSession(ctx)
		return false
	}

	s.session.LastActivity = now
	s.persistSession(ctx)
	return true
}

// CheckLiveness re-validates the current session without refreshing
// activity, destroying it when expired. Used by the periodic monitor.
// Returns false when no valid session remains.
func (s *AuthService) CheckLiveness(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return false
	}
	if !s.session.Valid(s.now(), s.config.SessionIdleTimeout, s.config.SessionMaxLifetime) {
		s.logger.Info("session expired, forcing logout", slog.String("user_id", s.session.UserID))
		s.clearSession(ctx)
		return false
	}
	return true
}

// Logout destroys the in-memory and persisted session state. It is
// idempotent: logging out twice leaves the same logged-out state.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.logger.Info("admin logged out", slog.String("user_id", s.session.UserID))
	}
	s.clearSession(ctx)
}

// ChangePassword re-verifies the current password before accepting the
// new one, then persists the new hash so it survives restarts. The
// bcrypt work runs outside the mutex so it does not stall Validate,
// Login or the liveness monitor; the session is re-checked before the
// commit.
func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	s.mu.Lock()
	if s.session == nil || !s.session.Valid(s.now(), s.config.SessionIdleTimeout, s.config.SessionMaxLifetime) {
		s.mu.Unlock()
		return models.ErrUnauthorized
	}
	userID := s.session.UserID
	verifiedHash := s.passwordHash
	s.mu.Unlock()

	ok, err := pkgauth.VerifyPassword(sanitize.Clean(currentPassword), verifiedHash)
	if err != nil {
		s.logger.Error("stored credential unreadable", slog.Any("error", err))
		return models.ErrCorruptCredential
	}
	if !ok {
		s.audit.LogPasswordChange(userID, false)
		return models.ErrInvalidCredentials
	}

	if err := pkgauth.ValidatePassword(newPassword); err != nil {
		return err
	}

	newHash, err := pkgauth.HashPassword(newPassword, s.config.BcryptCost)
	if err != nil {
		s.logger.Error("failed to hash new password", slog.Any("error", err))
		return models.ErrInternalServer
	}

	rec := credentialRecord{
		Username:     s.config.AdminUsername,
		PasswordHash: newHash,
		UpdatedAt:    s.now(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return models.ErrInternalServer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session may have been logged out or expired while hashing ran
	if s.session == nil || !s.session.Valid(s.now(), s.config.SessionIdleTimeout, s.config.SessionMaxLifetime) {
		return models.ErrUnauthorized
	}
	// The stored hash changed underneath us; the verification above no
	// longer speaks for the current credential
	if s.passwordHash != verifiedHash {
		return models.ErrInvalidCredentials
	}

	if err := s.store.Set(ctx, store.KeyCredential, data); err != nil {
		s.logger.Error("failed to persist new credential", slog.Any("error", err))
		return fmt.Errorf("%w: %v", models.ErrStorageFailure, err)
	}

	s.passwordHash = newHash
	s.audit.LogPasswordChange(userID, true)
	return nil
}

// IsAuthenticated reports whether a currently-valid session exists. It
// does not refresh activity.
func (s *AuthService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Valid(s.now(), s.config.SessionIdleTimeout, s.config.SessionMaxLifetime)
}

// CurrentUser returns the authenticated identity, or nil when logged
// out or expired.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Valid(s.now(), s.config.SessionIdleTimeout, s.config.SessionMaxLifetime) {
		return nil
	}
	return &models.User{
		ID:       s.session.UserID,
		Username: s.session.Username,
		Role:     s.session.Role,
	}
}

// persistSession writes the current session to the store. Must be
// called with the mutex held. A write failure leaves the in-memory
// session usable; it is logged and otherwise ignored.
func (s *AuthService) persistSession(ctx context.Context) {
	data, err := json.Marshal(s.session)
	if err != nil {
		s.logger.Error("failed to encode session", slog.Any("error", err))
		return
	}
	if err := s.store.Set(ctx, store.KeySession, data); err != nil {
		s.logger.Error("failed to persist session", slog.Any("error", err))
	}
}

// clearSession drops the in-memory session and the persisted record.
// Must be called with the mutex held.
func (s *AuthService) clearSession(ctx context.Context) {
	s.session = nil
	s.removeSessionRecord(ctx)
}

func (s *AuthService) removeSessionRecord(ctx context.Context) {
	if err := s.store.Remove(ctx, store.KeySession); err != nil {
		s.logger.Error("failed to remove persisted session", slog.Any("error", err))
	}
}
