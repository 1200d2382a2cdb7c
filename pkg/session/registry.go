// Package session tracks in-flight session tasks: their cancellation flags
// and task handles. Controllers poll the flags at cooperative checkpoints;
// the API layer sets them.
package session

import (
	"context"
	"fmt"
	"sync"
)

// Flags is the cooperative cancellation state for one running session.
type Flags struct {
	PauseRequested  bool
	CancelRequested bool
}

type entry struct {
	flags  Flags
	cancel context.CancelFunc
	done   chan struct{}
}

// Registry maps session IDs to their cancellation flags and task handles.
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds a running session. cancel is invoked on hard cancellation
// (shutdown); cooperative pause/cancel only set flags. Returns the done
// channel the owner must close via Unregister.
func (r *Registry) Register(sessionID string, cancel context.CancelFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[sessionID]; exists {
		return fmt.Errorf("session %s is already registered", sessionID)
	}
	r.entries[sessionID] = &entry{cancel: cancel, done: make(chan struct{})}
	return nil
}

// Unregister removes a finished session and releases any waiters.
func (r *Registry) Unregister(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		close(e.done)
		delete(r.entries, sessionID)
	}
}

// RequestPause flags the session for pause at its next cooperative check.
// Returns false if the session is not running.
func (r *Registry) RequestPause(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return false
	}
	e.flags.PauseRequested = true
	return true
}

// RequestCancel flags the session for cancellation at its next cooperative
// check. Returns false if the session is not running.
func (r *Registry) RequestCancel(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return false
	}
	e.flags.CancelRequested = true
	return true
}

// PauseRequested reports whether a pause has been requested.
func (r *Registry) PauseRequested(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	return ok && e.flags.PauseRequested
}

// CancelRequested reports whether a cancellation has been requested.
func (r *Registry) CancelRequested(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	return ok && e.flags.CancelRequested
}

// IsRunning reports whether the session has a registered task.
func (r *Registry) IsRunning(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[sessionID]
	return ok
}

// ActiveSessions returns the IDs of all registered sessions.
func (r *Registry) ActiveSessions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

// Done returns a channel closed when the session unregisters, or nil if the
// session is not running.
func (r *Registry) Done(sessionID string) <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		return e.done
	}
	return nil
}

// CancelAll hard-cancels every registered session. Used during shutdown
// after the graceful-wait window expires.
func (r *Registry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.cancel != nil {
			e.cancel()
		}
	}
}

// WaitAll blocks until all currently registered sessions unregister or ctx
// expires. Returns ctx.Err() on timeout.
func (r *Registry) WaitAll(ctx context.Context) error {
	r.mu.Lock()
	waiting := make([]<-chan struct{}, 0, len(r.entries))
	for _, e := range r.entries {
		waiting = append(waiting, e.done)
	}
	r.mu.Unlock()

	for _, done := range waiting {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
