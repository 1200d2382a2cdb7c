// Package hooks records LLM/MCP interactions and stage execution transitions
// through registered hooks. Interaction hooks are best-effort: failures are
// logged and counted, and a hook that fails repeatedly is disabled. Stage
// hooks are critical: the chain must not proceed without durable stage state,
// so their errors propagate to the caller.
package hooks

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// maxConsecutiveFailures disables an interaction hook. A disabled hook stays
// disabled for the life of the process.
const maxConsecutiveFailures = 5

// LLMHookFunc handles one finalized LLM interaction record.
type LLMHookFunc func(ctx context.Context, rec *history.LLMInteractionRecord) error

// MCPHookFunc handles one finalized MCP interaction record.
type MCPHookFunc func(ctx context.Context, rec *history.MCPInteractionRecord) error

// StageHookFunc handles one stage execution transition.
type StageHookFunc func(ctx context.Context, ev *StageEvent) error

// StageEvent describes a stage execution transition after it has been
// persisted. Type is one of the stage.* event types.
type StageEvent struct {
	Type      string
	Execution *ent.StageExecution
}

// hook tracks one registered hook function with its failure state.
type hook[T any] struct {
	name                string
	fn                  func(context.Context, T) error
	consecutiveFailures int
	disabled            bool
}

// Manager dispatches interaction records and stage events to registered
// hooks. Constructed once at startup; safe for concurrent use.
type Manager struct {
	mu         sync.Mutex
	llmHooks   []*hook[*history.LLMInteractionRecord]
	mcpHooks   []*hook[*history.MCPInteractionRecord]
	stageHooks []*hook[*StageEvent]
}

// NewManager creates an empty hook manager. Hooks are registered during
// startup wiring, before any session runs.
func NewManager() *Manager {
	return &Manager{}
}

// RegisterLLMHook registers a hook fired after every LLM interaction.
func (m *Manager) RegisterLLMHook(name string, fn LLMHookFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.llmHooks = append(m.llmHooks, &hook[*history.LLMInteractionRecord]{name: name, fn: fn})
}

// RegisterMCPHook registers a hook fired after every MCP interaction.
func (m *Manager) RegisterMCPHook(name string, fn MCPHookFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mcpHooks = append(m.mcpHooks, &hook[*history.MCPInteractionRecord]{name: name, fn: fn})
}

// RegisterStageHook registers a critical hook fired on every stage
// execution transition.
func (m *Manager) RegisterStageHook(name string, fn StageHookFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stageHooks = append(m.stageHooks, &hook[*StageEvent]{name: name, fn: fn})
}

// FireStageHooks runs all stage hooks for a transition. Every hook runs even
// if an earlier one fails; the joined error is returned so the caller can
// refuse to proceed past an unrecorded transition.
func (m *Manager) FireStageHooks(ctx context.Context, ev *StageEvent) error {
	m.mu.Lock()
	hooks := make([]*hook[*StageEvent], len(m.stageHooks))
	copy(hooks, m.stageHooks)
	m.mu.Unlock()

	var errs []error
	for _, h := range hooks {
		if err := h.fn(ctx, ev); err != nil {
			slog.Error("Stage hook failed", "hook", h.name, "event_type", ev.Type, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// fireLLMHooks runs LLM hooks best-effort.
func (m *Manager) fireLLMHooks(ctx context.Context, rec *history.LLMInteractionRecord) {
	fireBestEffort(ctx, &m.mu, m.llmHooks, rec)
}

// fireMCPHooks runs MCP hooks best-effort.
func (m *Manager) fireMCPHooks(ctx context.Context, rec *history.MCPInteractionRecord) {
	fireBestEffort(ctx, &m.mu, m.mcpHooks, rec)
}

// fireBestEffort runs interaction hooks, logging failures instead of
// propagating them. A hook reaching maxConsecutiveFailures is disabled; a
// success before that resets the counter.
func fireBestEffort[T any](ctx context.Context, mu *sync.Mutex, hooks []*hook[T], arg T) {
	mu.Lock()
	active := make([]*hook[T], 0, len(hooks))
	for _, h := range hooks {
		if !h.disabled {
			active = append(active, h)
		}
	}
	mu.Unlock()

	for _, h := range active {
		err := h.fn(ctx, arg)

		mu.Lock()
		if err != nil {
			h.consecutiveFailures++
			disabled := h.consecutiveFailures >= maxConsecutiveFailures
			if disabled {
				h.disabled = true
			}
			mu.Unlock()
			if disabled {
				slog.Error("Hook disabled after repeated failures",
					"hook", h.name, "consecutive_failures", maxConsecutiveFailures, "error", err)
			} else {
				slog.Error("Hook failed", "hook", h.name, "error", err)
			}
			continue
		}
		h.consecutiveFailures = 0
		mu.Unlock()
	}
}
