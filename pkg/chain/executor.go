package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/agent/controller"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

// cancelledByUser is the error message recorded on stages and sessions
// terminated by an external cancel request.
const cancelledByUser = "Cancelled by user"

// Execute runs the session's chain to a terminal outcome. On a fresh
// session every stage runs in order; on a resumed session completed stages
// are replayed into the context and the paused stage continues from its
// preserved conversation.
//
// Stage rows are fully settled before Execute returns: a paused chain
// leaves exactly one paused stage, a cancelled or failed chain leaves the
// offending stage failed. Session status is the caller's responsibility.
func (e *Executor) Execute(ctx context.Context, sess *ent.Session) (*Result, error) {
	chainCfg, err := e.cfg.ChainRegistry.Get(sess.ChainID)
	if err != nil {
		return nil, fmt.Errorf("chain %q not found for session %s: %w", sess.ChainID, sess.ID, err)
	}

	chainCtx := NewContext(sess)
	prior, err := e.loadPriorExecutions(ctx, sess.ID)
	if err != nil {
		return nil, err
	}

	log := slog.With("session_id", sess.ID, "chain_id", sess.ChainID)

	var finalText, finalExecID string
	for i, stageCfg := range chainCfg.Stages {
		existing := prior[i]

		// A stage completed before a pause is not re-run on resume; its
		// recorded output feeds the context exactly as it did originally.
		if existing != nil && existing.Status == stageexecution.StatusCompleted {
			result, decodeErr := stage.DecodeResult(existing)
			if decodeErr != nil {
				return nil, fmt.Errorf("completed stage %s has unreadable output: %w", existing.ID, decodeErr)
			}
			chainCtx.AddStageOutput(i, stageCfg.Name, existing.ID, result)
			finalText = result.FinalText
			finalExecID = existing.ID
			continue
		}

		log.Info("executing chain stage",
			"stage_index", i,
			"stage_name", stageCfg.Name,
			"resumed", existing != nil)

		var (
			result *stage.Result
			execID string
		)
		if stageCfg.Parallel != nil {
			result, execID, err = e.runParallelGroup(ctx, sess, chainCtx, stageCfg, i, existing)
		} else {
			result, execID, err = e.runSingleStage(ctx, sess, chainCtx, stageCfg, i, existing)
		}
		if err != nil {
			return e.classify(log, err), nil
		}

		chainCtx.AddStageOutput(i, stageCfg.Name, execID, result)
		finalText = result.FinalText
		finalExecID = execID
	}

	log.Info("chain completed", "stages", len(chainCfg.Stages))
	return &Result{
		Status:                session.StatusCompleted,
		FinalAnalysis:         finalText,
		FinalStageExecutionID: finalExecID,
		TimestampUs:           history.NowMicros(),
	}, nil
}

// loadPriorExecutions indexes the session's existing top-level stage rows by
// stage index. Empty for a fresh session.
func (e *Executor) loadPriorExecutions(ctx context.Context, sessionID string) (map[int]*ent.StageExecution, error) {
	execs, err := e.reader.ListStageExecutions(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage executions for session %s: %w", sessionID, err)
	}
	byIndex := make(map[int]*ent.StageExecution)
	for _, exec := range execs {
		if exec.ParentStageExecutionID == nil {
			byIndex[exec.StageIndex] = exec
		}
	}
	return byIndex, nil
}

// runSingleStage executes one non-parallel stage to a settled row and
// returns its result. The returned error carries pause/cancel/failure
// semantics for classify.
func (e *Executor) runSingleStage(
	ctx context.Context,
	sess *ent.Session,
	chainCtx *Context,
	stageCfg config.StageConfig,
	index int,
	existing *ent.StageExecution,
) (*stage.Result, string, error) {
	exec := existing
	if exec == nil {
		var err error
		exec, err = e.stages.CreateStageExecution(ctx, &history.CreateStageExecutionRequest{
			SessionID:    sess.ID,
			StageIndex:   index,
			StageID:      stageID(stageCfg.Name, index),
			StageName:    stageCfg.Name,
			Agent:        stageCfg.Agent,
			ParallelType: stageexecution.ParallelTypeSingle,
		})
		if err != nil {
			return nil, "", err
		}
	}

	if err := e.stages.UpdateSessionCurrentStage(ctx, sess.ID, index, exec.ID); err != nil {
		return nil, "", fmt.Errorf("failed to update current stage pointer: %w", err)
	}

	resume, err := resumeStateFor(exec)
	if err != nil {
		return nil, "", err
	}
	if _, err := e.stages.MarkStarted(ctx, exec.ID); err != nil {
		return nil, "", fmt.Errorf("failed to start stage %s: %w", exec.ID, err)
	}

	resolved, err := agent.ResolveAgentConfig(e.cfg, stageCfg, stageCfg.Agent, nil)
	if err != nil {
		return nil, "", e.failStage(ctx, exec.ID, err)
	}

	finalText, err := e.runController(ctx, sess, chainCtx, exec.ID, index, stageCfg.Name, resolved, resume)
	if err != nil {
		return nil, "", e.settleStageError(ctx, exec.ID, err)
	}

	result := stage.CompletedResult(finalText)
	if _, err := e.stages.MarkCompleted(ctx, exec.ID, result); err != nil {
		return nil, "", fmt.Errorf("failed to complete stage %s: %w", exec.ID, err)
	}
	return result, exec.ID, nil
}

// runController builds the execution context and drives the stage's
// iteration controller.
func (e *Executor) runController(
	ctx context.Context,
	sess *ent.Session,
	chainCtx *Context,
	executionID string,
	index int,
	stageName string,
	resolved *agent.ResolvedAgentConfig,
	resume *history.PausedConversationState,
) (string, error) {
	ctrl, err := controller.ForStrategy(resolved)
	if err != nil {
		return "", err
	}

	execCtx := &agent.ExecutionContext{
		SessionID:            sess.ID,
		StageExecutionID:     executionID,
		StageIndex:           index,
		StageName:            stageName,
		AgentName:            resolved.AgentName,
		AlertData:            chainCtx.AlertData,
		AlertType:            chainCtx.AlertType,
		RunbookContent:       chainCtx.Runbook,
		PreviousStageContext: chainCtx.PreviousStageContext(),
		Config:               resolved,
		LLMClient:            e.llm,
		ToolExecutor:         e.tools.CreateToolExecutor(sess.ID, executionID, resolved.MCPServers),
		Hooks:                e.hooks,
		PromptBuilder:        e.prompts,
		StagePersister:       e.stages,
		StreamPublisher:      e.streams,
		Cancellation:         e.flags,
		ResumeState:          resume,
	}
	return ctrl.Run(ctx, execCtx)
}

// settleStageError settles the stage row for a controller error and passes
// the error through. A pause already persisted its state inside the
// controller; cancellation and failures mark the row failed.
func (e *Executor) settleStageError(ctx context.Context, executionID string, err error) error {
	var paused *agent.SessionPausedError
	if errors.As(err, &paused) {
		return err
	}

	message := err.Error()
	var cancelled *agent.CancelledError
	if errors.As(err, &cancelled) {
		message = cancelledByUser
	}
	if _, markErr := e.stages.MarkFailed(ctx, executionID, message); markErr != nil {
		slog.Error("failed to mark stage failed",
			"stage_execution_id", executionID,
			"error", markErr)
	}
	return err
}

// failStage marks the row failed for a pre-controller error (configuration
// resolution, unknown strategy) and passes the error through.
func (e *Executor) failStage(ctx context.Context, executionID string, err error) error {
	if _, markErr := e.stages.MarkFailed(ctx, executionID, err.Error()); markErr != nil {
		slog.Error("failed to mark stage failed",
			"stage_execution_id", executionID,
			"error", markErr)
	}
	return err
}

// classify maps a stage-level error to the chain's terminal result.
func (e *Executor) classify(log *slog.Logger, err error) *Result {
	now := history.NowMicros()

	var paused *agent.SessionPausedError
	if errors.As(err, &paused) {
		log.Info("chain paused", "iteration", paused.Iteration)
		return &Result{Status: session.StatusPaused, TimestampUs: now}
	}

	var cancelled *agent.CancelledError
	if errors.As(err, &cancelled) {
		log.Info("chain cancelled", "reason", cancelled.Reason)
		return &Result{
			Status:       session.StatusCancelled,
			ErrorMessage: cancelledByUser,
			TimestampUs:  now,
		}
	}

	log.Error("chain failed", "error", err)
	return &Result{
		Status:       session.StatusFailed,
		ErrorMessage: err.Error(),
		TimestampUs:  now,
	}
}

// resumeStateFor decodes the preserved conversation from a paused row.
// Rows in any other status resume nothing.
func resumeStateFor(exec *ent.StageExecution) (*history.PausedConversationState, error) {
	if exec.Status != stageexecution.StatusPaused {
		return nil, nil
	}
	state, err := stage.DecodePausedState(exec)
	if err != nil {
		return nil, fmt.Errorf("cannot resume stage %s: %w", exec.ID, err)
	}
	return state, nil
}

// stageID builds the logical stage identifier, e.g. "investigation-1".
func stageID(name string, index int) string {
	return fmt.Sprintf("%s-%d", name, index+1)
}
