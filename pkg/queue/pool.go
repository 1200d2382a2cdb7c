package queue

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/session"
	"github.com/tarsy-ai/tarsy/pkg/slack"
)

// Pool runs the per-pod worker pool. Workers claim pending sessions from the
// database queue; resumed sessions are injected directly via Launch. Both
// paths share the same execution plumbing: a session-scoped context bounded
// by SessionTimeout, registration in the session registry so the API can
// pause or cancel it, and a heartbeat goroutine.
type Pool struct {
	cfg       *config.QueueConfig
	store     SessionStore
	processor SessionProcessor
	registry  *session.Registry
	notifier  *slack.Service // nil disables notifications
	podID     string

	mu         sync.Mutex
	started    bool
	pollCancel context.CancelFunc
	workers    []*worker
	workerWG   sync.WaitGroup

	active       atomic.Int32
	shuttingDown atomic.Bool
	tasks        sync.WaitGroup
}

func NewPool(cfg *config.QueueConfig, store SessionStore, processor SessionProcessor, registry *session.Registry, podID string) *Pool {
	return &Pool{
		cfg:       cfg,
		store:     store,
		processor: processor,
		registry:  registry,
		podID:     podID,
	}
}

// SetNotifier wires the Slack notification service. A nil service keeps
// notifications disabled.
func (p *Pool) SetNotifier(notifier *slack.Service) {
	p.notifier = notifier
}

// Start launches the polling workers. The passed context only scopes the
// poll loops; running sessions get their own contexts so a Stop can let
// them drain gracefully.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}

	pollCtx, cancel := context.WithCancel(ctx)
	p.pollCancel = cancel
	p.workers = make([]*worker, 0, p.cfg.WorkerCount)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		w := newWorker(i+1, p)
		p.workers = append(p.workers, w)
		p.workerWG.Add(1)
		go func() {
			defer p.workerWG.Done()
			w.run(pollCtx)
		}()
	}
	p.started = true

	slog.Info("worker pool started",
		"pod_id", p.podID,
		"workers", p.cfg.WorkerCount,
		"max_concurrent", p.cfg.MaxConcurrentSessions)
}

// Stop drains the pool: polling stops immediately, in-flight sessions get
// GracefulShutdownTimeout to finish, then everything left is cancelled.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.shuttingDown.Store(true)
	p.pollCancel()
	p.mu.Unlock()

	p.workerWG.Wait()

	graceCtx, cancel := context.WithTimeout(context.Background(), p.cfg.GracefulShutdownTimeout)
	defer cancel()
	if err := p.registry.WaitAll(graceCtx); err != nil {
		slog.Warn("graceful shutdown timed out, cancelling remaining sessions",
			"remaining", p.registry.ActiveSessions())
		p.registry.CancelAll()
	}
	p.tasks.Wait()

	slog.Info("worker pool stopped", "pod_id", p.podID)
}

// Launch runs an already-claimed session on this pool. Used for resume,
// where the claim happens in the API request path rather than a poll.
func (p *Pool) Launch(sess *ent.Session) error {
	if p.shuttingDown.Load() {
		return ErrShuttingDown
	}
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		return ErrNotStarted
	}
	if !p.tryReserve() {
		return ErrAtCapacity
	}

	p.tasks.Add(1)
	go func() {
		defer p.tasks.Done()
		defer p.release()
		p.execute(sess)
	}()
	return nil
}

// ShuttingDown reports whether the pool has stopped accepting work.
func (p *Pool) ShuttingDown() bool {
	return p.shuttingDown.Load()
}

// Health returns a snapshot for the health endpoint.
func (p *Pool) Health() PoolHealth {
	p.mu.Lock()
	workers := make([]WorkerHealth, 0, len(p.workers))
	for _, w := range p.workers {
		workers = append(workers, w.health())
	}
	p.mu.Unlock()

	return PoolHealth{
		PodID:          p.podID,
		WorkerCount:    len(workers),
		ActiveSessions: int(p.active.Load()),
		MaxConcurrent:  p.cfg.MaxConcurrentSessions,
		ShuttingDown:   p.shuttingDown.Load(),
		Workers:        workers,
	}
}

// execute runs one claimed session to completion. The caller holds a
// reserved slot and releases it when execute returns.
func (p *Pool) execute(sess *ent.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.SessionTimeout)
	defer cancel()

	if err := p.registry.Register(sess.ID, cancel); err != nil {
		slog.Error("session already registered on this pod",
			"session_id", sess.ID, "error", err)
		if _, err := p.store.UpdateSessionStatus(ctx, sess.ID, entsession.StatusFailed,
			"session already running on this pod"); err != nil {
			slog.Error("failed to fail duplicate session", "session_id", sess.ID, "error", err)
		}
		return
	}
	defer p.registry.Unregister(sess.ID)

	stopHeartbeat := p.startHeartbeat(ctx, sess.ID)
	defer stopHeartbeat()

	threadTS := p.notifier.NotifySessionStarted(ctx, slack.SessionStartedInput{
		SessionID:               sess.ID,
		AlertType:               sess.AlertType,
		SlackMessageFingerprint: deref(sess.SlackMessageFingerprint),
	})

	if err := p.processor.Process(ctx, sess); err != nil {
		slog.Error("session processing returned error",
			"session_id", sess.ID, "error", err)
	}

	// The session context may already be past its deadline here.
	p.notifyTerminal(context.Background(), sess, threadTS)
}

// notifyTerminal posts the Slack outcome message once a session settled.
// Paused sessions stay quiet; they will run again.
func (p *Pool) notifyTerminal(ctx context.Context, sess *ent.Session, threadTS string) {
	if p.notifier == nil {
		return
	}

	updated, err := p.store.GetSession(ctx, sess.ID)
	if err != nil {
		slog.Warn("failed to load session for terminal notification",
			"session_id", sess.ID, "error", err)
		return
	}

	switch updated.Status {
	case entsession.StatusCompleted, entsession.StatusFailed, entsession.StatusCancelled:
	default:
		return
	}

	p.notifier.NotifySessionCompleted(ctx, slack.SessionCompletedInput{
		SessionID:               updated.ID,
		AlertType:               updated.AlertType,
		Status:                  string(updated.Status),
		ExecutiveSummary:        deref(updated.FinalAnalysisSummary),
		FinalAnalysis:           deref(updated.FinalAnalysis),
		ErrorMessage:            deref(updated.ErrorMessage),
		SlackMessageFingerprint: deref(updated.SlackMessageFingerprint),
		ThreadTS:                threadTS,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// startHeartbeat refreshes last_interaction_at_us until the returned stop
// function is called, so the orphan detector on other pods leaves this
// session alone.
func (p *Pool) startHeartbeat(ctx context.Context, sessionID string) func() {
	hbCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-hbCtx.Done():
				return
			case <-ticker.C:
				if err := p.store.TouchSession(hbCtx, sessionID); err != nil && hbCtx.Err() == nil {
					slog.Warn("session heartbeat failed", "session_id", sessionID, "error", err)
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (p *Pool) tryReserve() bool {
	for {
		cur := p.active.Load()
		if int(cur) >= p.cfg.MaxConcurrentSessions {
			return false
		}
		if p.active.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

func (p *Pool) release() {
	p.active.Add(-1)
}
