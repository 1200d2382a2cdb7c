package controller

import (
	"context"
	"fmt"

	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// NativeThinkingController drives provider-native tool calling (Google
// only). Tool calls arrive as structured data instead of parsed text; the
// provider's thought signature rides on the assistant turn and is echoed
// back on the follow-up call. A response without tool calls is the final
// answer.
type NativeThinkingController struct{}

var _ Controller = (*NativeThinkingController)(nil)

// NewNativeThinkingController creates the native tool-calling controller.
func NewNativeThinkingController() *NativeThinkingController {
	return &NativeThinkingController{}
}

// Run executes the native tool-calling loop.
func (c *NativeThinkingController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (string, error) {
	cfg := execCtx.Config
	if cfg.Provider == nil || cfg.Provider.Type != config.LLMProviderTypeGoogle {
		return "", agent.NewAgentError("native-thinking strategy requires a google provider", nil)
	}
	state := &agent.IterationState{MaxIterations: cfg.MaxIterations}

	tools, err := execCtx.ToolExecutor.ListTools(ctx)
	if err != nil {
		return "", agent.NewAgentError("failed to list tools", err)
	}

	messages, startIteration := c.initialConversation(execCtx)

	for iteration := startIteration; iteration < cfg.MaxIterations; iteration++ {
		state.CurrentIteration = iteration + 1

		if err := checkFlags(ctx, execCtx, iteration, messages); err != nil {
			return "", err
		}
		recordIteration(ctx, execCtx, iteration+1)

		resp, err := callLLM(ctx, execCtx, messages, tools, llminteraction.InteractionTypeInvestigation)
		if err != nil {
			state.RecordFailure(err.Error(), isTimeoutError(err))
			messages = append(messages, userMessage(
				fmt.Sprintf("Error from previous attempt: %s. Please try again.", err.Error())))
			continue
		}
		messages = append(messages, assistantMessage(resp))

		if len(resp.ToolCalls) == 0 {
			// No tool calls means the model concluded.
			return resp.Text, nil
		}

		for _, tc := range resp.ToolCalls {
			result, toolErr := execCtx.ToolExecutor.Execute(ctx, tc)

			var content string
			switch {
			case toolErr != nil:
				content = fmt.Sprintf("Tool execution failed: %s", toolErr.Error())
				state.RecordFailure(toolErr.Error(), isTimeoutError(toolErr))
			case result.IsError:
				content = result.Content
				state.RecordFailure(result.Content, result.TimedOut)
			default:
				content = result.Content
				state.RecordSuccess()
			}

			messages = append(messages, history.ConversationMessage{
				Role:       history.RoleToolResult,
				Content:    content,
				ToolCallID: tc.ID,
				ToolName:   tc.Name,
			})
		}

		// Two tool timeouts back to back: the server is effectively gone.
		// Fail the stage now instead of burning the remaining budget.
		if state.ShouldAbortOnTimeouts() {
			return "", agent.NewAgentError(fmt.Sprintf(
				"aborting stage after %d consecutive tool timeout failures",
				agent.MaxConsecutiveToolTimeouts), nil)
		}
	}

	return c.concludeAtBudget(ctx, execCtx, messages, state)
}

func (c *NativeThinkingController) initialConversation(execCtx *agent.ExecutionContext) ([]history.ConversationMessage, int) {
	if rs := execCtx.ResumeState; rs != nil && len(rs.Conversation) > 0 {
		return append([]history.ConversationMessage(nil), rs.Conversation...), rs.Iteration
	}
	return []history.ConversationMessage{
		{Role: history.RoleSystem, Content: execCtx.PromptBuilder.BuildNativeSystemPrompt(execCtx)},
		{Role: history.RoleUser, Content: execCtx.PromptBuilder.BuildNativeInitialPrompt(execCtx)},
	}, 0
}

// concludeAtBudget mirrors the ReAct budget handling, with the conclusion
// call made without tools so the model cannot keep investigating.
func (c *NativeThinkingController) concludeAtBudget(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	messages []history.ConversationMessage,
	state *agent.IterationState,
) (string, error) {
	if state.LastInteractionFailed {
		return "", &agent.MaxIterationsError{
			MaxIterations:    state.MaxIterations,
			Context:          "investigation",
			LastErrorMessage: state.LastErrorMessage,
		}
	}

	if !execCtx.Config.ForceConclusion {
		return "", pauseStage(ctx, execCtx, state.MaxIterations, messages)
	}

	messages = append(messages, userMessage(execCtx.PromptBuilder.BuildNativeForcedConclusionPrompt(state.MaxIterations)))

	resp, err := callLLM(ctx, execCtx, messages, nil, llminteraction.InteractionTypeInvestigation)
	if err != nil {
		return "", &agent.MaxIterationsError{
			MaxIterations:    state.MaxIterations,
			Context:          "investigation",
			LastErrorMessage: err.Error(),
		}
	}
	return resp.Text, nil
}
