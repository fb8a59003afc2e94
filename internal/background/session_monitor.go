package background

import (
	"context"
	"log/slog"
	"time"
)

// LivenessChecker is the slice of the auth service the monitor needs.
type LivenessChecker interface {
	CheckLiveness(ctx context.Context) bool
}

// SessionMonitor periodically re-validates the active session and
// forces a logout once it expires, independent of user activity.
type SessionMonitor struct {
	auth     LivenessChecker
	logger   *slog.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewSessionMonitor creates a new session monitor
func NewSessionMonitor(auth LivenessChecker, logger *slog.Logger, interval time.Duration) *SessionMonitor {
	return &SessionMonitor{
		auth:     auth,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic liveness checks. It blocks until Stop is
// called or the context is cancelled, so run it in its own goroutine.
func (sm *SessionMonitor) Start(ctx context.Context) {
	ticker := time.NewTicker(sm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sm.runCheck(ctx)
		case <-sm.stopCh:
			sm.logger.Info("session monitor stopped")
			return
		case <-ctx.Done():
			sm.logger.Info("session monitor context cancelled")
			return
		}
	}
}

func (sm *SessionMonitor) runCheck(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sm.auth.CheckLiveness(checkCtx)
}

// Stop signals the monitor to stop
func (sm *SessionMonitor) Stop() {
	close(sm.stopCh)
}
