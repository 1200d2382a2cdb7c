// Package queue distributes pending sessions across a bounded per-pod worker
// pool. Workers poll the database queue with jitter, claim sessions with a
// conditional update, heartbeat them while they run, and hand them to a
// SessionProcessor. An orphan detector recovers sessions whose pod died.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
)

var (
	// ErrAtCapacity is returned when the pod already runs its maximum
	// number of concurrent sessions.
	ErrAtCapacity = errors.New("worker pool at capacity")

	// ErrShuttingDown is returned when the pool no longer accepts work.
	ErrShuttingDown = errors.New("worker pool is shutting down")

	// ErrNotStarted is returned when work is launched before Start.
	ErrNotStarted = errors.New("worker pool not started")
)

// SessionProcessor runs one claimed session to a settled outcome. The
// processor owns all status transitions and event publishing for the
// session; the pool only provides the execution context and heartbeat.
type SessionProcessor interface {
	Process(ctx context.Context, sess *ent.Session) error
}

// SessionStore is the slice of the history repository the pool needs.
type SessionStore interface {
	ClaimNextPendingSession(ctx context.Context, podID string) (*ent.Session, error)
	GetSession(ctx context.Context, sessionID string) (*ent.Session, error)
	TouchSession(ctx context.Context, sessionID string) error
	UpdateSessionStatus(ctx context.Context, sessionID string, status entsession.Status, errorMessage string) (*ent.Session, error)
	CleanupOrphanedSessions(ctx context.Context, threshold time.Duration) ([]string, error)
	FailSessionsForPod(ctx context.Context, podID string) ([]string, error)
}

// WorkerHealth describes one polling worker.
type WorkerHealth struct {
	WorkerID         int    `json:"worker_id"`
	Status           string `json:"status"` // idle, processing, stopped
	CurrentSessionID string `json:"current_session_id,omitempty"`
}

// PoolHealth is a snapshot of the pool for the health endpoint.
type PoolHealth struct {
	PodID          string         `json:"pod_id"`
	WorkerCount    int            `json:"worker_count"`
	ActiveSessions int            `json:"active_sessions"`
	MaxConcurrent  int            `json:"max_concurrent"`
	ShuttingDown   bool           `json:"shutting_down"`
	Workers        []WorkerHealth `json:"workers"`
}
