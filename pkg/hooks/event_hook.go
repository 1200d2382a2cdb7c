package hooks

import (
	"context"

	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// EventPublisher publishes interaction and stage events to WebSocket
// subscribers. Implemented by events.EventPublisher.
type EventPublisher interface {
	PublishStageEvent(ctx context.Context, payload events.StageEventPayload) error
	PublishLLMInteraction(ctx context.Context, payload events.LLMInteractionPayload) error
	PublishMCPInteraction(ctx context.Context, payload events.MCPInteractionPayload) error
}

// RegisterEventHooks registers hooks that publish the typed event matching
// each interaction record and stage transition.
func RegisterEventHooks(m *Manager, publisher EventPublisher) {
	m.RegisterLLMHook("events.llm", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		return publisher.PublishLLMInteraction(ctx, events.LLMInteractionPayload{
			Type:             events.EventTypeLLMInteraction,
			SessionID:        rec.SessionID,
			StageExecutionID: rec.StageExecutionID,
			InteractionID:    rec.InteractionID,
			InteractionType:  string(rec.InteractionType),
			Success:          rec.Success,
			DurationMs:       rec.DurationMs,
			TimestampUs:      rec.TimestampUs,
		})
	})

	m.RegisterMCPHook("events.mcp", func(ctx context.Context, rec *history.MCPInteractionRecord) error {
		eventType := events.EventTypeMCPToolCall
		if rec.CommunicationType == mcpinteraction.CommunicationTypeToolList {
			eventType = events.EventTypeMCPToolList
		}
		return publisher.PublishMCPInteraction(ctx, events.MCPInteractionPayload{
			Type:             eventType,
			SessionID:        rec.SessionID,
			StageExecutionID: rec.StageExecutionID,
			RequestID:        rec.RequestID,
			ServerName:       rec.ServerName,
			ToolName:         rec.ToolName,
			Success:          rec.Success,
			DurationMs:       rec.DurationMs,
			TimestampUs:      rec.TimestampUs,
		})
	})

	m.RegisterStageHook("events.stage", func(ctx context.Context, ev *StageEvent) error {
		exec := ev.Execution
		payload := events.StageEventPayload{
			Type:             ev.Type,
			SessionID:        exec.SessionID,
			StageExecutionID: exec.ID,
			StageIndex:       exec.StageIndex,
			StageName:        exec.StageName,
			Agent:            exec.Agent,
			Status:           string(exec.Status),
			TimestampUs:      history.NowMicros(),
		}
		if exec.ErrorMessage != nil {
			payload.ErrorMessage = *exec.ErrorMessage
		}
		return publisher.PublishStageEvent(ctx, payload)
	})
}
