// Package chain executes a resolved processing chain for one session: the
// sequential stage loop, parallel stage groups, pause/resume/cancel
// handling, and the executive summary for completed sessions.
package chain

import (
	"context"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

// StageManager drives the StageExecution lifecycle. Implemented by
// stage.Manager. It is a superset of agent.StagePersister so the executor
// can hand the same dependency to controllers.
type StageManager interface {
	CreateStageExecution(ctx context.Context, req *history.CreateStageExecutionRequest) (*ent.StageExecution, error)
	UpdateSessionCurrentStage(ctx context.Context, sessionID string, stageIndex int, executionID string) error
	MarkStarted(ctx context.Context, executionID string) (*ent.StageExecution, error)
	MarkCompleted(ctx context.Context, executionID string, result *stage.Result) (*ent.StageExecution, error)
	MarkFailed(ctx context.Context, executionID string, errorMessage string) (*ent.StageExecution, error)
	PauseStage(ctx context.Context, executionID string, state *history.PausedConversationState) error
	RecordIteration(ctx context.Context, executionID string, iteration int) error
	Get(ctx context.Context, executionID string) (*ent.StageExecution, error)
}

// ExecutionReader loads existing stage execution rows, used to pick up a
// partially-executed chain on resume. Implemented by history.Repository.
type ExecutionReader interface {
	ListStageExecutions(ctx context.Context, sessionID string) ([]*ent.StageExecution, error)
	ListChildExecutions(ctx context.Context, parentExecutionID string) ([]*ent.StageExecution, error)
}

// ToolExecutorFactory builds the per-stage tool executor bound to the
// agent's allowed MCP servers. Implemented by mcp.ExecutorFactory.
type ToolExecutorFactory interface {
	CreateToolExecutor(sessionID, stageExecutionID string, serverIDs []string) agent.ToolExecutor
}

// Result is the terminal outcome of one chain run.
type Result struct {
	// Status is completed, failed, paused, or cancelled.
	Status session.Status

	// FinalAnalysis is the last stage's result text. Set only for
	// completed chains.
	FinalAnalysis string

	// ErrorMessage describes the failure for failed and cancelled chains.
	ErrorMessage string

	// FinalStageExecutionID anchors post-chain LLM calls (the executive
	// summary) to the stage that produced the final analysis.
	FinalStageExecutionID string

	TimestampUs int64
}

// Executor runs chains. One instance serves all sessions; per-session state
// lives in the Context built for each run.
type Executor struct {
	cfg     *config.Config
	stages  StageManager
	reader  ExecutionReader
	llm     agent.LLMClient
	prompts agent.PromptBuilder
	tools   ToolExecutorFactory
	hooks   *hooks.Manager
	flags   agent.CancellationChecker
	streams agent.StreamPublisher
}

// NewExecutor creates a chain executor.
func NewExecutor(
	cfg *config.Config,
	stages StageManager,
	reader ExecutionReader,
	llm agent.LLMClient,
	prompts agent.PromptBuilder,
	tools ToolExecutorFactory,
	hookMgr *hooks.Manager,
	flags agent.CancellationChecker,
	streams agent.StreamPublisher,
) *Executor {
	return &Executor{
		cfg:     cfg,
		stages:  stages,
		reader:  reader,
		llm:     llm,
		prompts: prompts,
		tools:   tools,
		hooks:   hookMgr,
		flags:   flags,
		streams: streams,
	}
}
