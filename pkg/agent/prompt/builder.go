package prompt

import (
	"fmt"
	"strings"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// Builder implements agent.PromptBuilder. It is stateless apart from the
// MCP server registry, which supplies per-server instruction blocks.
type Builder struct {
	mcpRegistry *config.MCPServerRegistry
}

var _ agent.PromptBuilder = (*Builder)(nil)

// NewBuilder creates a prompt builder. registry may be nil in tests;
// per-server instructions are then omitted.
func NewBuilder(registry *config.MCPServerRegistry) *Builder {
	return &Builder{mcpRegistry: registry}
}

// BuildReActSystemPrompt composes the system message for a text-based
// investigation loop: layered instructions, the response format contract,
// and the available tools.
func (b *Builder) BuildReActSystemPrompt(execCtx *agent.ExecutionContext, tools []agent.ToolDefinition) string {
	sections := []string{
		ComposeInstructions(execCtx, b.mcpRegistry),
		reactFormatInstructions,
		FormatToolDescriptions(tools),
	}
	return strings.Join(sections, "\n\n")
}

// BuildReActInitialPrompt composes the first user message: alert details,
// runbook, previous stage data, and the investigation task.
func (b *Builder) BuildReActInitialPrompt(execCtx *agent.ExecutionContext) string {
	return b.buildInvestigationUserMessage(execCtx, analysisTask)
}

// BuildContinuationPrompt returns the nudge injected when a response has
// neither an Action nor a Final Answer.
func (b *Builder) BuildContinuationPrompt() string {
	return continuationPrompt
}

// BuildForcedConclusionPrompt returns the message that forces a final answer
// when the iteration budget is exhausted.
func (b *Builder) BuildForcedConclusionPrompt(iteration int) string {
	return fmt.Sprintf(forcedConclusionTemplate, iteration, reactForcedConclusionFormat)
}

// BuildFinalAnalysisMessages builds the complete two-message conversation
// for a tool-less final-analysis stage.
func (b *Builder) BuildFinalAnalysisMessages(execCtx *agent.ExecutionContext) []history.ConversationMessage {
	var system strings.Builder
	system.WriteString(finalAnalysisInstructions)
	if execCtx.Config != nil {
		if custom := strings.TrimSpace(execCtx.Config.CustomInstructions); custom != "" {
			system.WriteString("\n\n## Agent-Specific Instructions\n")
			system.WriteString(custom)
		}
	}

	return []history.ConversationMessage{
		{Role: history.RoleSystem, Content: system.String()},
		{Role: history.RoleUser, Content: b.buildInvestigationUserMessage(execCtx, finalAnalysisTask)},
	}
}

// BuildNativeSystemPrompt composes the system message for native
// tool-calling loops. Tools travel in the provider request, not as prompt
// text, so no format instructions or tool listing are included.
func (b *Builder) BuildNativeSystemPrompt(execCtx *agent.ExecutionContext) string {
	return ComposeInstructions(execCtx, b.mcpRegistry)
}

// BuildNativeInitialPrompt composes the first user message for native
// tool-calling loops.
func (b *Builder) BuildNativeInitialPrompt(execCtx *agent.ExecutionContext) string {
	return b.buildInvestigationUserMessage(execCtx, analysisTask)
}

// BuildNativeForcedConclusionPrompt is the native-loop counterpart of
// BuildForcedConclusionPrompt: same budget message, no ReAct formatting.
func (b *Builder) BuildNativeForcedConclusionPrompt(iteration int) string {
	return fmt.Sprintf(forcedConclusionTemplate, iteration, nativeForcedConclusionFormat)
}

// BuildExecutiveSummarySystemPrompt returns the system prompt for the
// post-chain executive summary call.
func (b *Builder) BuildExecutiveSummarySystemPrompt() string {
	return executiveSummarySystemPrompt
}

// BuildExecutiveSummaryUserPrompt returns the user prompt for the
// post-chain executive summary call.
func (b *Builder) BuildExecutiveSummaryUserPrompt(finalAnalysis string) string {
	return fmt.Sprintf(executiveSummaryUserTemplate, finalAnalysis)
}

// buildInvestigationUserMessage assembles the shared user-message body:
// alert, runbook, chain context, then the task instruction.
func (b *Builder) buildInvestigationUserMessage(execCtx *agent.ExecutionContext, task string) string {
	sections := []string{
		"# Alert Investigation",
		FormatAlertSection(execCtx.AlertType, execCtx.AlertData),
		FormatRunbookSection(execCtx.RunbookContent),
		FormatChainContext(execCtx.PreviousStageContext),
		task,
	}
	return strings.Join(sections, "\n")
}
