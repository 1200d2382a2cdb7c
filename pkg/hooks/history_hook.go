package hooks

import (
	"context"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// InteractionStore persists finalized interaction records. Implemented by
// history.Repository.
type InteractionStore interface {
	SaveLLMInteraction(ctx context.Context, rec *history.LLMInteractionRecord) (*ent.LLMInteraction, error)
	SaveMCPInteraction(ctx context.Context, rec *history.MCPInteractionRecord) (*ent.MCPInteraction, error)
}

// RegisterHistoryHooks registers hooks that persist LLM and MCP interaction
// records through the repository. Stage executions are persisted by the
// stage manager itself; no stage history hook is needed.
func RegisterHistoryHooks(m *Manager, store InteractionStore) {
	m.RegisterLLMHook("history.llm", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		_, err := store.SaveLLMInteraction(ctx, rec)
		return err
	})
	m.RegisterMCPHook("history.mcp", func(ctx context.Context, rec *history.MCPInteractionRecord) error {
		_, err := store.SaveMCPInteraction(ctx, rec)
		return err
	})
}
