package history

import (
	"context"
	"fmt"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
)

// SaveLLMInteraction persists one completed LLM call.
func (r *Repository) SaveLLMInteraction(ctx context.Context, rec *LLMInteractionRecord) (*ent.LLMInteraction, error) {
	create := r.client.LLMInteraction.Create().
		SetID(rec.InteractionID).
		SetSessionID(rec.SessionID).
		SetStageExecutionID(rec.StageExecutionID).
		SetProvider(rec.Provider).
		SetModelName(rec.ModelName).
		SetInteractionType(rec.InteractionType).
		SetConversation(conversationJSON(rec.Conversation)).
		SetStartTimeUs(rec.StartTimeUs).
		SetTimestampUs(rec.TimestampUs).
		SetSuccess(rec.Success)
	if rec.Temperature != nil {
		create.SetTemperature(*rec.Temperature)
	}
	if rec.NativeToolsConfig != nil {
		create.SetNativeToolsConfig(rec.NativeToolsConfig)
	}
	if rec.EndTimeUs > 0 {
		create.SetEndTimeUs(rec.EndTimeUs).SetDurationMs(rec.DurationMs)
	}
	if rec.ErrorMessage != "" {
		create.SetErrorMessage(rec.ErrorMessage)
	}
	if rec.TotalTokens > 0 {
		create.SetInputTokens(rec.InputTokens).
			SetOutputTokens(rec.OutputTokens).
			SetTotalTokens(rec.TotalTokens)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save LLM interaction: %w", err)
	}
	return saved, nil
}

// SaveMCPInteraction persists one completed MCP call.
func (r *Repository) SaveMCPInteraction(ctx context.Context, rec *MCPInteractionRecord) (*ent.MCPInteraction, error) {
	create := r.client.MCPInteraction.Create().
		SetID(rec.RequestID).
		SetSessionID(rec.SessionID).
		SetStageExecutionID(rec.StageExecutionID).
		SetServerName(rec.ServerName).
		SetCommunicationType(rec.CommunicationType).
		SetStartTimeUs(rec.StartTimeUs).
		SetTimestampUs(rec.TimestampUs).
		SetSuccess(rec.Success)
	if rec.ToolName != "" {
		create.SetToolName(rec.ToolName)
	}
	if rec.ToolArguments != nil {
		create.SetToolArguments(rec.ToolArguments)
	}
	if rec.ToolResult != nil {
		create.SetToolResult(rec.ToolResult)
	}
	if rec.AvailableTools != nil {
		create.SetAvailableTools(rec.AvailableTools)
	}
	if rec.EndTimeUs > 0 {
		create.SetEndTimeUs(rec.EndTimeUs).SetDurationMs(rec.DurationMs)
	}
	if rec.ErrorMessage != "" {
		create.SetErrorMessage(rec.ErrorMessage)
	}
	if rec.StepDescription != "" {
		create.SetStepDescription(rec.StepDescription)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save MCP interaction: %w", err)
	}
	return saved, nil
}

// ListLLMInteractions returns a session's LLM interactions in chronological
// order, optionally restricted to one stage execution.
func (r *Repository) ListLLMInteractions(ctx context.Context, sessionID, stageExecutionID string) ([]*ent.LLMInteraction, error) {
	query := r.client.LLMInteraction.Query().
		Where(llminteraction.SessionIDEQ(sessionID))
	if stageExecutionID != "" {
		query = query.Where(llminteraction.StageExecutionIDEQ(stageExecutionID))
	}
	interactions, err := query.
		Order(ent.Asc(llminteraction.FieldTimestampUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list LLM interactions: %w", err)
	}
	return interactions, nil
}

// ListMCPInteractions returns a session's MCP interactions in chronological
// order, optionally restricted to one stage execution.
func (r *Repository) ListMCPInteractions(ctx context.Context, sessionID, stageExecutionID string) ([]*ent.MCPInteraction, error) {
	query := r.client.MCPInteraction.Query().
		Where(mcpinteraction.SessionIDEQ(sessionID))
	if stageExecutionID != "" {
		query = query.Where(mcpinteraction.StageExecutionIDEQ(stageExecutionID))
	}
	interactions, err := query.
		Order(ent.Asc(mcpinteraction.FieldTimestampUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list MCP interactions: %w", err)
	}
	return interactions, nil
}
