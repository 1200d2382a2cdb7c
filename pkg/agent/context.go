package agent

import (
	"context"
	"time"

	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
)

// ExecutionContext carries all dependencies and state needed by an
// iteration controller for one stage execution. Built by the chain executor
// per stage run.
type ExecutionContext struct {
	// Identity
	SessionID        string
	StageExecutionID string
	StageIndex       int
	StageName        string
	AgentName        string

	// Alert data as submitted (arbitrary text, not assumed to be JSON).
	AlertData string

	// Alert type (from the session)
	AlertType string

	// Runbook content (downloaded by the alert service, passed as text)
	RunbookContent string

	// Accumulated results of earlier chain stages, already formatted for
	// prompt inclusion. Empty for the first stage.
	PreviousStageContext string

	// Configuration (resolved from defaults → chain → stage → agent)
	Config *ResolvedAgentConfig

	// Dependencies (injected by the chain executor)
	LLMClient     LLMClient
	ToolExecutor  ToolExecutor
	Hooks         *hooks.Manager
	PromptBuilder PromptBuilder
	StagePersister StagePersister
	StreamPublisher StreamPublisher

	// Cancellation exposes the per-session pause/cancel flags. May be nil
	// in tests; controllers treat nil as "never requested".
	Cancellation CancellationChecker

	// ResumeState is non-nil when the stage resumes from a pause: the
	// preserved conversation and the iteration to continue from.
	ResumeState *history.PausedConversationState
}

// CancellationChecker reports externally-requested pause or cancellation.
// Implemented by session.Registry.
type CancellationChecker interface {
	PauseRequested(sessionID string) bool
	CancelRequested(sessionID string) bool
}

// ResolvedAgentConfig is the fully-resolved configuration for one stage
// execution. All hierarchy levels have been applied.
type ResolvedAgentConfig struct {
	AgentName          string
	Strategy           config.IterationStrategy
	Provider           *config.LLMProviderConfig
	ProviderName       string // Resolved provider key, recorded on interactions
	MaxIterations      int
	ForceConclusion    bool // One final tool-less call at the budget instead of pausing
	LLMTimeout         time.Duration
	MCPServers         []string
	CustomInstructions string
}

// PromptBuilder builds all prompt text for iteration controllers.
// Implemented by prompt.Builder; defined as an interface here to avoid a
// circular import between pkg/agent and pkg/agent/prompt.
type PromptBuilder interface {
	BuildReActSystemPrompt(execCtx *ExecutionContext, tools []ToolDefinition) string
	BuildReActInitialPrompt(execCtx *ExecutionContext) string
	BuildContinuationPrompt() string
	BuildForcedConclusionPrompt(iteration int) string
	BuildNativeForcedConclusionPrompt(iteration int) string
	BuildFinalAnalysisMessages(execCtx *ExecutionContext) []history.ConversationMessage
	BuildNativeSystemPrompt(execCtx *ExecutionContext) string
	BuildNativeInitialPrompt(execCtx *ExecutionContext) string
	BuildExecutiveSummarySystemPrompt() string
	BuildExecutiveSummaryUserPrompt(finalAnalysis string) string
}

// StagePersister persists controller-driven stage state: iteration progress
// and the paused conversation. Implemented by stage.Manager; defined as an
// interface here to avoid a circular import between pkg/agent and pkg/stage.
type StagePersister interface {
	// RecordIteration updates the stage's current iteration counter.
	RecordIteration(ctx context.Context, executionID string, iteration int) error

	// PauseStage transitions the stage to paused, persisting the
	// conversation so a later resume can continue mid-loop.
	PauseStage(ctx context.Context, executionID string, state *history.PausedConversationState) error
}

// StreamPublisher delivers incremental LLM output to live subscribers.
// Implemented by events.EventPublisher.
type StreamPublisher interface {
	PublishStreamChunk(ctx context.Context, payload events.StreamChunkPayload) error
}

// PublishDelta sends one streaming text fragment for this execution.
// Stream chunks are transient; failures are ignored (the full text is
// recoverable from the llm.interaction event).
func (e *ExecutionContext) PublishDelta(ctx context.Context, interactionID, delta string) {
	if e.StreamPublisher == nil || delta == "" {
		return
	}
	_ = e.StreamPublisher.PublishStreamChunk(ctx, events.StreamChunkPayload{
		Type:             events.EventTypeLLMStreamChunk,
		SessionID:        e.SessionID,
		StageExecutionID: e.StageExecutionID,
		InteractionID:    interactionID,
		Delta:            delta,
		TimestampUs:      history.NowMicros(),
	})
}
