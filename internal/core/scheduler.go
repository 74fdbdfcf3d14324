package core

// scheduler.go runs background maintenance for the service.
//
// The session janitor expires sessions that have been idle longer than the
// configured TTL, so abandoned collections do not accumulate in memory.
// It is long-running and stops when its context is cancelled.

import (
	"context"
	"log/slog"
	"time"
)

// JanitorConfig holds configuration for the session janitor.
type JanitorConfig struct {
	IdleTimeout   time.Duration // Sessions unused for longer are expired (default: 12h)
	CheckInterval time.Duration // How often to sweep (default: 5m)
}

const (
	DefaultSessionIdleTimeout = 12 * time.Hour
	DefaultJanitorInterval    = 5 * time.Minute
)

// StartSessionJanitor periodically expires idle sessions until ctx is
// cancelled. Call it in its own goroutine.
func (s *Service) StartSessionJanitor(ctx context.Context, cfg JanitorConfig) {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultSessionIdleTimeout
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = DefaultJanitorInterval
	}

	slog.Info("session janitor started",
		"idle_timeout", cfg.IdleTimeout,
		"check_interval", cfg.CheckInterval,
	)

	ticker := time.NewTicker(cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session janitor stopped")
			return
		case <-ticker.C:
			if n := s.ExpireSessions(cfg.IdleTimeout); n > 0 {
				slog.Info("expired idle sessions",
					"sessions_expired", n,
					"sessions_remaining", s.SessionCount(),
				)
			}
		}
	}
}

// ExpireSessions ends every session idle for longer than idle and returns
// how many were removed.
func (s *Service) ExpireSessions(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			expired++
		}
	}
	return expired
}
