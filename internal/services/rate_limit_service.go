package services

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aditsaputra/academy/internal/models"
	pkglogger "github.com/aditsaputra/academy/pkg/logger"
)

// RateLimitConfig holds configuration for login rate limiting behavior
type RateLimitConfig struct {
	// MaxFailedAttempts is the failure threshold within LookbackWindow
	// that triggers a lockout.
	MaxFailedAttempts int
	// LookbackWindow is the trailing interval over which failures are
	// counted; it doubles as the lockout duration once the threshold
	// is reached.
	LookbackWindow time.Duration
}

// RateLimitService tracks failed login attempts per identifier and
// enforces a lockout once the threshold is reached within the window.
//
// State is held in process memory only: a restart resets all lockouts.
// That is an accepted weaker guarantee for a single-admin deployment,
// not something to paper over with persistence.
type RateLimitService struct {
	mu     sync.Mutex
	states map[string]*models.RateLimitState

	config RateLimitConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewRateLimitService creates a new RateLimitService
func NewRateLimitService(config RateLimitConfig, logger *slog.Logger) *RateLimitService {
	return &RateLimitService{
		states: make(map[string]*models.RateLimitState),
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// normalizeIdentifier lowercases so "Admin" and "admin" share state.
func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// IsBlocked reports whether the identifier is currently locked out.
func (s *RateLimitService) IsBlocked(identifier string) bool {
	return s.RemainingLockout(identifier) > 0
}

// RemainingLockout returns the time left before login attempts for the
// identifier are accepted again; zero when not blocked.
func (s *RateLimitService) RemainingLockout(identifier string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[normalizeIdentifier(identifier)]
	if !ok {
		return 0
	}

	now := s.now()
	s.prune(state, now)

	if len(state.Attempts) < s.config.MaxFailedAttempts {
		return 0
	}
	if remaining := state.BlockedUntil.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

// RecordFailure appends a failed attempt for the identifier, prunes
// entries older than the window, and recomputes the lockout deadline
// if the remaining count meets the threshold.
func (s *RateLimitService) RecordFailure(identifier string, attempt models.LoginAttempt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeIdentifier(identifier)
	state, ok := s.states[key]
	if !ok {
		state = &models.RateLimitState{}
		s.states[key] = state
	}

	now := s.now()
	state.Attempts = append(state.Attempts, attempt)
	s.prune(state, now)

	if len(state.Attempts) >= s.config.MaxFailedAttempts {
		state.BlockedUntil = now.Add(s.config.LookbackWindow)
		s.logger.Warn("login identifier locked out",
			slog.String("identifier", pkglogger.MaskedIdentifier(key)),
			slog.Int("failed_attempts", len(state.Attempts)),
			slog.Time("blocked_until", state.BlockedUntil))
	}
}

// Clear removes all tracked state for the identifier. Called on
// successful login; a fresh failure sequence afterwards needs a full
// new threshold count before blocking again.
func (s *RateLimitService) Clear(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, normalizeIdentifier(identifier))
}

// prune drops attempts older than the lookback window. Attempts are
// appended in time order, so the slice stays ordered.
func (s *RateLimitService) prune(state *models.RateLimitState, now time.Time) {
	cutoff := now.Add(-s.config.LookbackWindow)
	kept := state.Attempts[:0]
	for _, a := range state.Attempts {
		if a.Timestamp.After(cutoff) {
			kept = append(kept, a)
		}
	}
	state.Attempts = kept
}
