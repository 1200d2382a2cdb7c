package chain

import (
	"context"
	"fmt"

	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// GenerateExecutiveSummary condenses a completed session's final analysis
// into a short summary with one bounded-token LLM call, recorded as a
// summarization interaction on the stage that produced the analysis.
func (e *Executor) GenerateExecutiveSummary(
	ctx context.Context,
	sessionID, stageExecutionID, finalAnalysis string,
) (string, error) {
	providerName := e.cfg.Defaults.LLMProvider
	provider, err := e.cfg.LLMProviderRegistry.Get(providerName)
	if err != nil {
		return "", fmt.Errorf("no LLM provider for executive summary: %w", err)
	}
	if providerName == "" {
		providerName = e.cfg.LLMProviderRegistry.DefaultProvider()
	}

	messages := []history.ConversationMessage{
		{Role: history.RoleSystem, Content: e.prompts.BuildExecutiveSummarySystemPrompt()},
		{Role: history.RoleUser, Content: e.prompts.BuildExecutiveSummaryUserPrompt(finalAnalysis)},
	}

	rec := &history.LLMInteractionRecord{
		SessionID:        sessionID,
		StageExecutionID: stageExecutionID,
		Provider:         providerName,
		ModelName:        provider.Model,
		Temperature:      provider.Temperature,
		InteractionType:  llminteraction.InteractionTypeSummarization,
		Conversation:     messages,
	}
	hookCtx := e.hooks.StartLLMInteraction(rec)

	callCtx := ctx
	if timeout := e.cfg.Settings.LLMTimeout; timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ch, err := e.llm.Generate(callCtx, &agent.GenerateInput{
		SessionID:        sessionID,
		StageExecutionID: stageExecutionID,
		Messages:         messages,
		Provider:         &provider,
		MaxTokens:        e.cfg.Settings.SummaryMaxTokens,
	})
	if err != nil {
		hookCtx.Fail(ctx, err)
		return "", err
	}

	resp, err := agent.CollectResponse(callCtx, ch, nil)
	if err != nil {
		hookCtx.Fail(ctx, err)
		return "", err
	}

	rec.Conversation = append(rec.Conversation, history.ConversationMessage{
		Role:    history.RoleAssistant,
		Content: resp.Text,
	})
	rec.InputTokens = resp.InputTokens
	rec.OutputTokens = resp.OutputTokens
	rec.TotalTokens = resp.TotalTokens
	hookCtx.Complete(ctx)

	return resp.Text, nil
}
