package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tarsy-ai/tarsy/pkg/history"
)

const (
	workerIdle       = "idle"
	workerProcessing = "processing"
	workerStopped    = "stopped"
)

// worker polls the database queue and runs claimed sessions inline. The
// poll interval carries random jitter so replicas don't hammer the queue
// table in lockstep.
type worker struct {
	id   int
	pool *Pool

	mu        sync.Mutex
	status    string
	sessionID string
}

func newWorker(id int, pool *Pool) *worker {
	return &worker{id: id, pool: pool, status: workerIdle}
}

func (w *worker) run(ctx context.Context) {
	defer w.setStatus(workerStopped, "")
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.pollDelay()):
		}
		w.pollOnce(ctx)
	}
}

// pollOnce claims at most one session and runs it to completion. Losing a
// claim race (ErrConflict) or finding the queue empty (ErrNotFound) just
// means waiting for the next tick.
func (w *worker) pollOnce(ctx context.Context) {
	p := w.pool
	if p.shuttingDown.Load() {
		return
	}
	if !p.tryReserve() {
		return
	}
	defer p.release()

	sess, err := p.store.ClaimNextPendingSession(ctx, p.podID)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) || errors.Is(err, history.ErrConflict) || ctx.Err() != nil {
			return
		}
		slog.Error("failed to claim pending session", "worker_id", w.id, "error", err)
		return
	}

	slog.Info("worker claimed session",
		"worker_id", w.id, "session_id", sess.ID, "alert_type", sess.AlertType)
	w.setStatus(workerProcessing, sess.ID)
	p.execute(sess)
	w.setStatus(workerIdle, "")
}

func (w *worker) pollDelay() time.Duration {
	delay := w.pool.cfg.PollInterval
	if jitter := w.pool.cfg.PollIntervalJitter; jitter > 0 {
		delay += rand.N(jitter)
	}
	return delay
}

func (w *worker) setStatus(status, sessionID string) {
	w.mu.Lock()
	w.status = status
	w.sessionID = sessionID
	w.mu.Unlock()
}

func (w *worker) health() WorkerHealth {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkerHealth{
		WorkerID:         w.id,
		Status:           w.status,
		CurrentSessionID: w.sessionID,
	}
}
