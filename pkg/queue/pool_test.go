package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/session"
)

type statusUpdate struct {
	status       entsession.Status
	errorMessage string
}

// memStore is an in-memory SessionStore. The pending slice acts as the
// queue; claims pop from the front.
type memStore struct {
	mu            sync.Mutex
	pending       []*ent.Session
	claimed       []string
	touches       map[string]int
	statusUpdates map[string]statusUpdate
	orphanIDs     []string
	podFailIDs    []string
}

func newMemStore() *memStore {
	return &memStore{
		touches:       make(map[string]int),
		statusUpdates: make(map[string]statusUpdate),
	}
}

func (s *memStore) addPending(sess *ent.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, sess)
}

func (s *memStore) ClaimNextPendingSession(ctx context.Context, podID string) (*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil, fmt.Errorf("%w: no pending sessions", history.ErrNotFound)
	}
	sess := s.pending[0]
	s.pending = s.pending[1:]
	sess.Status = entsession.StatusInProgress
	s.claimed = append(s.claimed, sess.ID)
	return sess, nil
}

func (s *memStore) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if update, ok := s.statusUpdates[sessionID]; ok {
		return &ent.Session{ID: sessionID, Status: update.status}, nil
	}
	return &ent.Session{ID: sessionID, Status: entsession.StatusInProgress}, nil
}

func (s *memStore) TouchSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touches[sessionID]++
	return nil
}

func (s *memStore) UpdateSessionStatus(ctx context.Context, sessionID string, status entsession.Status, errorMessage string) (*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusUpdates[sessionID] = statusUpdate{status: status, errorMessage: errorMessage}
	return &ent.Session{ID: sessionID, Status: status}, nil
}

func (s *memStore) CleanupOrphanedSessions(ctx context.Context, threshold time.Duration) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.orphanIDs
	s.orphanIDs = nil
	return ids, nil
}

func (s *memStore) FailSessionsForPod(ctx context.Context, podID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.podFailIDs, nil
}

func (s *memStore) touchCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touches[sessionID]
}

func (s *memStore) claimedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.claimed...)
}

// fakeProcessor records processed sessions. With block set it holds each
// session until the channel closes or the session context ends.
type fakeProcessor struct {
	mu        sync.Mutex
	processed []string
	started   chan string
	block     chan struct{}
}

func (f *fakeProcessor) Process(ctx context.Context, sess *ent.Session) error {
	f.mu.Lock()
	f.processed = append(f.processed, sess.ID)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- sess.ID
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
		}
	}
	return nil
}

func (f *fakeProcessor) processedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.processed...)
}

func fastQueueConfig(workers, maxConcurrent int) *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             workers,
		MaxConcurrentSessions:   maxConcurrent,
		PollInterval:            5 * time.Millisecond,
		PollIntervalJitter:      2 * time.Millisecond,
		HeartbeatInterval:       5 * time.Millisecond,
		SessionTimeout:          time.Second,
		GracefulShutdownTimeout: time.Second,
		OrphanDetectionInterval: 5 * time.Millisecond,
		OrphanThreshold:         time.Minute,
	}
}

func waitStarted(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case id := <-ch:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session to start")
		return ""
	}
}

func TestPool_ClaimsAndProcessesPendingSessions(t *testing.T) {
	store := newMemStore()
	store.addPending(&ent.Session{ID: "sess-1", AlertType: "kubernetes", Status: entsession.StatusPending})
	store.addPending(&ent.Session{ID: "sess-2", AlertType: "kubernetes", Status: entsession.StatusPending})
	processor := &fakeProcessor{started: make(chan string, 2)}

	pool := NewPool(fastQueueConfig(2, 2), store, processor, session.NewRegistry(), "pod-1")
	pool.Start(context.Background())
	defer pool.Stop()

	got := map[string]bool{}
	got[waitStarted(t, processor.started)] = true
	got[waitStarted(t, processor.started)] = true

	assert.True(t, got["sess-1"])
	assert.True(t, got["sess-2"])
	assert.ElementsMatch(t, []string{"sess-1", "sess-2"}, store.claimedIDs())
}

func TestPool_LaunchRunsClaimedSession(t *testing.T) {
	store := newMemStore()
	processor := &fakeProcessor{started: make(chan string, 1)}

	pool := NewPool(fastQueueConfig(0, 2), store, processor, session.NewRegistry(), "pod-1")
	pool.Start(context.Background())
	defer pool.Stop()

	err := pool.Launch(&ent.Session{ID: "resumed-1", Status: entsession.StatusInProgress})
	require.NoError(t, err)

	assert.Equal(t, "resumed-1", waitStarted(t, processor.started))
}

func TestPool_LaunchAtCapacity(t *testing.T) {
	store := newMemStore()
	processor := &fakeProcessor{started: make(chan string, 2), block: make(chan struct{})}

	pool := NewPool(fastQueueConfig(0, 1), store, processor, session.NewRegistry(), "pod-1")
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Launch(&ent.Session{ID: "sess-1"}))
	waitStarted(t, processor.started)

	err := pool.Launch(&ent.Session{ID: "sess-2"})
	assert.ErrorIs(t, err, ErrAtCapacity)

	close(processor.block)
}

func TestPool_LaunchLifecycleErrors(t *testing.T) {
	store := newMemStore()
	processor := &fakeProcessor{}
	pool := NewPool(fastQueueConfig(0, 1), store, processor, session.NewRegistry(), "pod-1")

	err := pool.Launch(&ent.Session{ID: "sess-1"})
	assert.ErrorIs(t, err, ErrNotStarted)

	pool.Start(context.Background())
	pool.Stop()

	err = pool.Launch(&ent.Session{ID: "sess-1"})
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestPool_StopCancelsStuckSessions(t *testing.T) {
	store := newMemStore()
	// Session blocks until its context is cancelled.
	processor := &fakeProcessor{started: make(chan string, 1), block: make(chan struct{})}

	cfg := fastQueueConfig(0, 1)
	cfg.GracefulShutdownTimeout = 20 * time.Millisecond
	pool := NewPool(cfg, store, processor, session.NewRegistry(), "pod-1")
	pool.Start(context.Background())

	require.NoError(t, pool.Launch(&ent.Session{ID: "stuck-1"}))
	waitStarted(t, processor.started)

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not cancel the stuck session")
	}
}

func TestPool_HeartbeatsWhileProcessing(t *testing.T) {
	store := newMemStore()
	processor := &fakeProcessor{started: make(chan string, 1), block: make(chan struct{})}

	pool := NewPool(fastQueueConfig(0, 1), store, processor, session.NewRegistry(), "pod-1")
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Launch(&ent.Session{ID: "sess-1"}))
	waitStarted(t, processor.started)

	assert.Eventually(t, func() bool {
		return store.touchCount("sess-1") >= 2
	}, 2*time.Second, 5*time.Millisecond)

	close(processor.block)
}

func TestPool_DuplicateSessionFailed(t *testing.T) {
	store := newMemStore()
	processor := &fakeProcessor{}
	registry := session.NewRegistry()
	require.NoError(t, registry.Register("sess-1", func() {}))

	pool := NewPool(fastQueueConfig(0, 2), store, processor, registry, "pod-1")
	pool.Start(context.Background())

	require.NoError(t, pool.Launch(&ent.Session{ID: "sess-1"}))
	pool.Stop()

	store.mu.Lock()
	update, ok := store.statusUpdates["sess-1"]
	store.mu.Unlock()
	require.True(t, ok)
	assert.Equal(t, entsession.StatusFailed, update.status)
	assert.Contains(t, update.errorMessage, "already running")
	assert.Empty(t, processor.processedIDs())
}

func TestPool_Health(t *testing.T) {
	store := newMemStore()
	processor := &fakeProcessor{started: make(chan string, 1), block: make(chan struct{})}

	pool := NewPool(fastQueueConfig(1, 3), store, processor, session.NewRegistry(), "pod-1")
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, pool.Launch(&ent.Session{ID: "sess-1"}))
	waitStarted(t, processor.started)

	health := pool.Health()
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 1, health.WorkerCount)
	assert.Equal(t, 3, health.MaxConcurrent)
	assert.Equal(t, 1, health.ActiveSessions)
	assert.False(t, health.ShuttingDown)

	close(processor.block)
}
