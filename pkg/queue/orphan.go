package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// EventSink publishes session lifecycle events. Optional for the orphan
// detector; a nil sink means orphan failures are not broadcast.
type EventSink interface {
	PublishSessionEvent(ctx context.Context, payload events.SessionEventPayload) error
}

// OrphanDetector recovers sessions stranded by a dead pod. At startup it
// fails any in_progress sessions still attributed to this pod (a previous
// crash of this replica); afterwards it periodically fails sessions whose
// heartbeat went stale, whichever pod owned them.
type OrphanDetector struct {
	cfg    *config.QueueConfig
	store  SessionStore
	sink   EventSink
	podID  string
	cancel context.CancelFunc
	done   chan struct{}
}

func NewOrphanDetector(cfg *config.QueueConfig, store SessionStore, sink EventSink, podID string) *OrphanDetector {
	return &OrphanDetector{
		cfg:   cfg,
		store: store,
		sink:  sink,
		podID: podID,
	}
}

// RecoverStartupOrphans fails sessions this pod abandoned in a previous
// incarnation. Run once before workers start claiming.
func (d *OrphanDetector) RecoverStartupOrphans(ctx context.Context) error {
	ids, err := d.store.FailSessionsForPod(ctx, d.podID)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		slog.Warn("failed sessions left behind by previous pod incarnation",
			"pod_id", d.podID, "count", len(ids), "session_ids", ids)
		d.publishFailures(ctx, ids, "session interrupted by pod restart")
	}
	return nil
}

// Start begins the periodic orphan sweep.
func (d *OrphanDetector) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)
		ticker := time.NewTicker(d.cfg.OrphanDetectionInterval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				d.sweep(runCtx)
			}
		}
	}()

	slog.Info("orphan detector started",
		"interval", d.cfg.OrphanDetectionInterval,
		"threshold", d.cfg.OrphanThreshold)
}

// Stop halts the periodic sweep.
func (d *OrphanDetector) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	slog.Info("orphan detector stopped")
}

func (d *OrphanDetector) sweep(ctx context.Context) {
	ids, err := d.store.CleanupOrphanedSessions(ctx, d.cfg.OrphanThreshold)
	if err != nil && ctx.Err() == nil {
		slog.Error("orphan sweep failed", "error", err)
	}
	if len(ids) > 0 {
		slog.Warn("failed orphaned sessions", "count", len(ids), "session_ids", ids)
		d.publishFailures(ctx, ids, "session orphaned: processing pod stopped heartbeating")
	}
}

func (d *OrphanDetector) publishFailures(ctx context.Context, ids []string, message string) {
	if d.sink == nil {
		return
	}
	for _, id := range ids {
		payload := events.SessionEventPayload{
			Type:         events.EventTypeSessionFailed,
			SessionID:    id,
			Status:       "failed",
			ErrorMessage: message,
			TimestampUs:  history.NowMicros(),
		}
		if err := d.sink.PublishSessionEvent(ctx, payload); err != nil {
			slog.Warn("failed to publish orphan failure event", "session_id", id, "error", err)
		}
	}
}
