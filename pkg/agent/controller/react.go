package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// ReActController drives the text-parsed Thought/Action/Action Input loop.
// Tools are described in the system prompt; the assistant's text is parsed
// each turn and tool results go back as synthetic user observations.
//
// The same loop serves two strategies: "react" produces the user-facing
// final analysis, "react-stage" produces a result summary consumed by later
// chain stages. The loop mechanics are identical; only the error context
// label differs.
type ReActController struct {
	contextLabel string
}

var _ Controller = (*ReActController)(nil)

// NewReActController creates the standard investigation controller.
func NewReActController() *ReActController {
	return &ReActController{contextLabel: "investigation"}
}

// NewReActStageController creates the stage-summary variant.
func NewReActStageController() *ReActController {
	return &ReActController{contextLabel: "stage_analysis"}
}

// Run executes the ReAct iteration loop until a Final Answer, the iteration
// budget, a pause, or cancellation.
func (c *ReActController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (string, error) {
	cfg := execCtx.Config
	state := &agent.IterationState{MaxIterations: cfg.MaxIterations}

	tools, err := execCtx.ToolExecutor.ListTools(ctx)
	if err != nil {
		return "", agent.NewAgentError("failed to list tools", err)
	}
	toolNames := buildToolNameSet(tools)

	messages, startIteration := c.initialConversation(execCtx, tools)

	for iteration := startIteration; iteration < cfg.MaxIterations; iteration++ {
		state.CurrentIteration = iteration + 1

		if err := checkFlags(ctx, execCtx, iteration, messages); err != nil {
			return "", err
		}
		recordIteration(ctx, execCtx, iteration+1)

		resp, err := callLLM(ctx, execCtx, messages, nil, llminteraction.InteractionTypeInvestigation)
		if err != nil {
			state.RecordFailure(err.Error(), isTimeoutError(err))
			messages = append(messages, userMessage(FormatErrorObservation(err)))
			continue
		}
		state.RecordSuccess()
		messages = append(messages, assistantMessage(resp))

		parsed := ParseReActResponse(resp.Text)
		switch {
		case parsed.IsFinalAnswer:
			return parsed.FinalAnswer, nil

		case parsed.HasAction && !parsed.IsUnknownTool:
			if !toolNames[parsed.Action] {
				messages = append(messages, userMessage(FormatUnknownToolError(parsed.Action,
					fmt.Sprintf("Unknown tool '%s'", parsed.Action), tools)))
				continue
			}
			result, toolErr := execCtx.ToolExecutor.Execute(ctx, agent.ToolCall{
				ID:        uuid.NewString(),
				Name:      parsed.Action,
				Arguments: parsed.ActionInput,
			})
			if toolErr != nil {
				state.RecordFailure(toolErr.Error(), isTimeoutError(toolErr))
				messages = append(messages, userMessage(FormatToolErrorObservation(toolErr)))
			} else {
				messages = append(messages, userMessage(FormatObservation(result)))
			}

		case parsed.IsUnknownTool:
			messages = append(messages, userMessage(FormatUnknownToolError(parsed.Action, parsed.ErrorMessage, tools)))

		default:
			// Neither Action nor Final Answer: nudge the model back into
			// the format with the continuation prompt plus specifics.
			feedback := execCtx.PromptBuilder.BuildContinuationPrompt() + "\n\n" + GetFormatErrorFeedback(parsed)
			messages = append(messages, userMessage(feedback))
		}
	}

	return c.concludeAtBudget(ctx, execCtx, messages, state)
}

// initialConversation builds the opening messages, or restores the preserved
// conversation when resuming a paused stage.
func (c *ReActController) initialConversation(
	execCtx *agent.ExecutionContext,
	tools []agent.ToolDefinition,
) ([]history.ConversationMessage, int) {
	if rs := execCtx.ResumeState; rs != nil && len(rs.Conversation) > 0 {
		return append([]history.ConversationMessage(nil), rs.Conversation...), rs.Iteration
	}
	return []history.ConversationMessage{
		{Role: history.RoleSystem, Content: execCtx.PromptBuilder.BuildReActSystemPrompt(execCtx, tools)},
		{Role: history.RoleUser, Content: execCtx.PromptBuilder.BuildReActInitialPrompt(execCtx)},
	}, 0
}

// concludeAtBudget handles an exhausted iteration budget: fail if the last
// interaction failed, force a conclusion if configured, otherwise pause.
func (c *ReActController) concludeAtBudget(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	messages []history.ConversationMessage,
	state *agent.IterationState,
) (string, error) {
	if state.LastInteractionFailed {
		return "", &agent.MaxIterationsError{
			MaxIterations:    state.MaxIterations,
			Context:          c.contextLabel,
			LastErrorMessage: state.LastErrorMessage,
		}
	}

	if !execCtx.Config.ForceConclusion {
		return "", pauseStage(ctx, execCtx, state.MaxIterations, messages)
	}

	messages = append(messages, userMessage(execCtx.PromptBuilder.BuildForcedConclusionPrompt(state.MaxIterations)))

	resp, err := callLLM(ctx, execCtx, messages, nil, llminteraction.InteractionTypeInvestigation)
	if err != nil {
		return "", &agent.MaxIterationsError{
			MaxIterations:    state.MaxIterations,
			Context:          c.contextLabel,
			LastErrorMessage: err.Error(),
		}
	}

	// The conclusion may or may not come back in ReAct format.
	parsed := ParseReActResponse(resp.Text)
	if answer := ExtractForcedConclusionAnswer(parsed); answer != "" {
		return answer, nil
	}
	return resp.Text, nil
}

func userMessage(content string) history.ConversationMessage {
	return history.ConversationMessage{Role: history.RoleUser, Content: content}
}
