package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/events"
)

type sinkRecorder struct {
	ch chan events.SessionEventPayload
}

func newSinkRecorder() *sinkRecorder {
	return &sinkRecorder{ch: make(chan events.SessionEventPayload, 16)}
}

func (s *sinkRecorder) PublishSessionEvent(ctx context.Context, payload events.SessionEventPayload) error {
	s.ch <- payload
	return nil
}

func (s *sinkRecorder) next(t *testing.T) events.SessionEventPayload {
	t.Helper()
	select {
	case p := <-s.ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session event")
		return events.SessionEventPayload{}
	}
}

func TestOrphanDetector_RecoverStartupOrphans(t *testing.T) {
	store := newMemStore()
	store.podFailIDs = []string{"sess-1", "sess-2"}
	sink := newSinkRecorder()

	detector := NewOrphanDetector(fastQueueConfig(0, 1), store, sink, "pod-1")
	require.NoError(t, detector.RecoverStartupOrphans(context.Background()))

	first := sink.next(t)
	assert.Equal(t, events.EventTypeSessionFailed, first.Type)
	assert.Equal(t, "sess-1", first.SessionID)
	assert.Equal(t, "failed", first.Status)
	assert.Contains(t, first.ErrorMessage, "pod restart")

	second := sink.next(t)
	assert.Equal(t, "sess-2", second.SessionID)
}

func TestOrphanDetector_PeriodicSweep(t *testing.T) {
	store := newMemStore()
	store.mu.Lock()
	store.orphanIDs = []string{"stale-1"}
	store.mu.Unlock()
	sink := newSinkRecorder()

	detector := NewOrphanDetector(fastQueueConfig(0, 1), store, sink, "pod-1")
	detector.Start(context.Background())
	defer detector.Stop()

	payload := sink.next(t)
	assert.Equal(t, events.EventTypeSessionFailed, payload.Type)
	assert.Equal(t, "stale-1", payload.SessionID)
	assert.Contains(t, payload.ErrorMessage, "heartbeat")
}

func TestOrphanDetector_NilSink(t *testing.T) {
	store := newMemStore()
	store.podFailIDs = []string{"sess-1"}

	detector := NewOrphanDetector(fastQueueConfig(0, 1), store, nil, "pod-1")
	require.NoError(t, detector.RecoverStartupOrphans(context.Background()))
}
