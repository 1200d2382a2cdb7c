// Package cleanup enforces data retention: terminal sessions past the
// configured retention window are deleted (cascading to their stages,
// interactions, and events), and event rows past their TTL are pruned.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// Service runs the periodic retention loop. All operations are idempotent
// and safe to run from multiple pods.
type Service struct {
	cfg  *config.RetentionConfig
	repo *history.Repository

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service.
func NewService(cfg *config.RetentionConfig, repo *history.Repository) *Service {
	return &Service{cfg: cfg, repo: repo}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("cleanup service started",
		"session_retention_days", s.cfg.SessionRetentionDays,
		"event_ttl", s.cfg.EventTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldSessions(ctx)
	s.deleteOldEvents(ctx)
}

func (s *Service) deleteOldSessions(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.SessionRetentionDays)
	count, err := s.repo.DeleteSessionsOlderThan(ctx, cutoff.UnixMicro())
	if err != nil {
		slog.Error("retention: session deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("retention: deleted old sessions", "count", count)
	}
}

func (s *Service) deleteOldEvents(ctx context.Context) {
	count, err := s.repo.DeleteEventsOlderThan(ctx, time.Now().Add(-s.cfg.EventTTL))
	if err != nil {
		slog.Error("retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("retention: deleted expired events", "count", count)
	}
}
