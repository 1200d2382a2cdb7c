package controller

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// callLLM performs one hooked LLM call: opens the interaction record with
// the request conversation, streams the response (publishing deltas), merges
// the assistant turn and token usage into the record, and fires the hooks.
func callLLM(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	messages []history.ConversationMessage,
	tools []agent.ToolDefinition,
	interactionType llminteraction.InteractionType,
) (*agent.LLMResponse, error) {
	cfg := execCtx.Config

	rec := &history.LLMInteractionRecord{
		SessionID:        execCtx.SessionID,
		StageExecutionID: execCtx.StageExecutionID,
		Provider:         cfg.ProviderName,
		InteractionType:  interactionType,
		Conversation:     append([]history.ConversationMessage(nil), messages...),
	}
	if cfg.Provider != nil {
		rec.ModelName = cfg.Provider.Model
		rec.Temperature = cfg.Provider.Temperature
	}
	hookCtx := execCtx.Hooks.StartLLMInteraction(rec)

	callCtx := ctx
	if cfg.LLMTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, cfg.LLMTimeout)
		defer cancel()
	}

	maxTokens := 0
	if cfg.Provider != nil {
		maxTokens = cfg.Provider.MaxTokens
	}
	ch, err := execCtx.LLMClient.Generate(callCtx, &agent.GenerateInput{
		SessionID:        execCtx.SessionID,
		StageExecutionID: execCtx.StageExecutionID,
		Messages:         messages,
		Provider:         cfg.Provider,
		Tools:            tools,
		MaxTokens:        maxTokens,
	})
	if err != nil {
		hookCtx.Fail(ctx, err)
		return nil, err
	}

	resp, err := agent.CollectResponse(callCtx, ch, func(delta string) {
		execCtx.PublishDelta(ctx, rec.InteractionID, delta)
	})
	if err != nil {
		hookCtx.Fail(ctx, err)
		return nil, err
	}

	rec.Conversation = append(rec.Conversation, assistantMessage(resp))
	rec.InputTokens = resp.InputTokens
	rec.OutputTokens = resp.OutputTokens
	rec.TotalTokens = resp.TotalTokens
	hookCtx.Complete(ctx)

	return resp, nil
}

// assistantMessage converts a collected response into the conversation turn
// appended after a successful call.
func assistantMessage(resp *agent.LLMResponse) history.ConversationMessage {
	return history.ConversationMessage{
		Role:             history.RoleAssistant,
		Content:          resp.Text,
		ToolCalls:        resp.ToolCalls,
		ThoughtSignature: resp.ThoughtSignature,
	}
}

// checkFlags polls the session cancellation flags at an iteration boundary.
// A requested pause persists the conversation and returns SessionPausedError;
// a requested cancel returns CancelledError.
func checkFlags(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	iteration int,
	conversation []history.ConversationMessage,
) error {
	flags := execCtx.Cancellation
	if flags == nil {
		return nil
	}
	if flags.CancelRequested(execCtx.SessionID) {
		return &agent.CancelledError{Reason: "cancelled by user"}
	}
	if flags.PauseRequested(execCtx.SessionID) {
		return pauseStage(ctx, execCtx, iteration, conversation)
	}
	return nil
}

// pauseStage persists the paused conversation state and signals the pause.
func pauseStage(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	iteration int,
	conversation []history.ConversationMessage,
) error {
	if p := execCtx.StagePersister; p != nil {
		state := &history.PausedConversationState{
			Iteration:    iteration,
			Conversation: conversation,
		}
		if err := p.PauseStage(ctx, execCtx.StageExecutionID, state); err != nil {
			return agent.NewAgentError("failed to persist paused stage", err)
		}
	}
	return &agent.SessionPausedError{Iteration: iteration}
}

// recordIteration updates the stage's iteration counter. Best effort: a
// failed progress write must not abort the investigation.
func recordIteration(ctx context.Context, execCtx *agent.ExecutionContext, iteration int) {
	if execCtx.StagePersister == nil {
		return
	}
	if err := execCtx.StagePersister.RecordIteration(ctx, execCtx.StageExecutionID, iteration); err != nil {
		slog.Warn("failed to record iteration progress",
			"stage_execution_id", execCtx.StageExecutionID,
			"iteration", iteration,
			"error", err)
	}
}

// isTimeoutError reports whether err is a deadline expiry.
func isTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// buildToolNameSet indexes tool names for O(1) validation of parsed actions.
func buildToolNameSet(tools []agent.ToolDefinition) map[string]bool {
	names := make(map[string]bool, len(tools))
	for _, tool := range tools {
		names[tool.Name] = true
	}
	return names
}
