package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aditsaputra/academy/internal/models"
)

func newTestLimiter(t *testing.T, threshold int, window time.Duration) (*RateLimitService, *time.Time) {
	t.Helper()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimitService(RateLimitConfig{
		MaxFailedAttempts: threshold,
		LookbackWindow:    window,
	}, slog.New(slog.DiscardHandler))
	limiter.now = func() time.Time { return current }
	return limiter, &current
}

func failure(at time.Time) models.LoginAttempt {
	return models.LoginAttempt{Timestamp: at, Origin: "test-agent"}
}

func TestRateLimiterAllowsBelowThreshold(t *testing.T) {
	limiter, now := newTestLimiter(t, 5, 15*time.Minute)

	for i := 0; i < 4; i++ {
		limiter.RecordFailure("admin", failure(*now))
		assert.False(t, limiter.IsBlocked("admin"), "attempt %d should not block", i+1)
	}
	assert.Zero(t, limiter.RemainingLockout("admin"))
}

func TestRateLimiterBlocksAtThreshold(t *testing.T) {
	limiter, now := newTestLimiter(t, 5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("admin", failure(*now))
	}

	assert.True(t, limiter.IsBlocked("admin"))
	assert.Equal(t, 15*time.Minute, limiter.RemainingLockout("admin"))
}

func TestRateLimiterLockoutElapses(t *testing.T) {
	limiter, now := newTestLimiter(t, 3, 10*time.Minute)

	for i := 0; i < 3; i++ {
		limiter.RecordFailure("admin", failure(*now))
	}
	assert.True(t, limiter.IsBlocked("admin"))

	*now = now.Add(5 * time.Minute)
	assert.True(t, limiter.IsBlocked("admin"))
	assert.Equal(t, 5*time.Minute, limiter.RemainingLockout("admin"))

	*now = now.Add(5*time.Minute + time.Second)
	assert.False(t, limiter.IsBlocked("admin"))
	assert.Zero(t, limiter.RemainingLockout("admin"))
}

func TestRateLimiterWindowPruning(t *testing.T) {
	limiter, now := newTestLimiter(t, 3, 10*time.Minute)

	// Two old failures that will age out of the window
	limiter.RecordFailure("admin", failure(*now))
	limiter.RecordFailure("admin", failure(*now))

	*now = now.Add(11 * time.Minute)

	// A single fresh failure is below the threshold once the old ones
	// are excluded
	limiter.RecordFailure("admin", failure(*now))
	assert.False(t, limiter.IsBlocked("admin"))
}

func TestRateLimiterCaseInsensitiveIdentifier(t *testing.T) {
	limiter, now := newTestLimiter(t, 3, 10*time.Minute)

	limiter.RecordFailure("admin", failure(*now))
	limiter.RecordFailure("Admin", failure(*now))
	limiter.RecordFailure("ADMIN", failure(*now))

	assert.True(t, limiter.IsBlocked("admin"))
	assert.True(t, limiter.IsBlocked("aDmIn"))
}

func TestRateLimiterClearRemovesAllState(t *testing.T) {
	limiter, now := newTestLimiter(t, 3, 10*time.Minute)

	for i := 0; i < 3; i++ {
		limiter.RecordFailure("admin", failure(*now))
	}
	assert.True(t, limiter.IsBlocked("admin"))

	limiter.Clear("admin")
	assert.False(t, limiter.IsBlocked("admin"))

	// A fresh sequence needs a full new threshold count
	limiter.RecordFailure("admin", failure(*now))
	limiter.RecordFailure("admin", failure(*now))
	assert.False(t, limiter.IsBlocked("admin"))

	limiter.RecordFailure("admin", failure(*now))
	assert.True(t, limiter.IsBlocked("admin"))
}

func TestRateLimiterIdentifiersIndependent(t *testing.T) {
	limiter, now := newTestLimiter(t, 3, 10*time.Minute)

	for i := 0; i < 3; i++ {
		limiter.RecordFailure("admin", failure(*now))
	}

	assert.True(t, limiter.IsBlocked("admin"))
	assert.False(t, limiter.IsBlocked("other"))
}
