package stage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
)

// Manager is the single writer for stage execution rows. The chain executor
// drives the lifecycle through it; controllers reach it through the
// agent.StagePersister interface for iteration progress and pausing.
type Manager struct {
	repo  *history.Repository
	hooks *hooks.Manager
}

var _ agent.StagePersister = (*Manager)(nil)

// NewManager creates a stage manager.
func NewManager(repo *history.Repository, hookMgr *hooks.Manager) *Manager {
	return &Manager{repo: repo, hooks: hookMgr}
}

// CreateStageExecution inserts a pending stage execution, fires the stage
// hooks, and verifies the row by re-reading it. A row that cannot be read
// back must not anchor interactions, so the create fails fast.
func (m *Manager) CreateStageExecution(ctx context.Context, req *history.CreateStageExecutionRequest) (*ent.StageExecution, error) {
	if req.ExecutionID == "" {
		req.ExecutionID = uuid.NewString()
	}

	created, err := m.repo.CreateStageExecution(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage execution: %w", err)
	}

	if err := m.fire(ctx, events.EventTypeStageCreated, created); err != nil {
		return nil, err
	}

	verified, err := m.repo.GetStageExecution(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("stage execution %s missing after create: %w", created.ID, err)
	}
	return verified, nil
}

// UpdateSessionCurrentStage points the session at the stage about to run.
func (m *Manager) UpdateSessionCurrentStage(ctx context.Context, sessionID string, stageIndex int, executionID string) error {
	return m.repo.SetSessionCurrentStage(ctx, sessionID, stageIndex, executionID)
}

// MarkStarted transitions pending→active or paused→active. started_at_us is
// set only on the first activation and preserved across paused↔active
// cycles; the iteration counter from a pause is cleared.
func (m *Manager) MarkStarted(ctx context.Context, executionID string) (*ent.StageExecution, error) {
	exec, err := m.repo.GetStageExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}
	switch exec.Status {
	case stageexecution.StatusPending, stageexecution.StatusPaused:
	default:
		return nil, fmt.Errorf("cannot start stage execution %s from status %s", executionID, exec.Status)
	}

	status := stageexecution.StatusActive
	update := &history.StageExecutionUpdate{
		Status:                &status,
		ClearCurrentIteration: true,
	}
	if exec.StartedAtUs == nil {
		now := history.NowMicros()
		update.StartedAtUs = &now
	}

	updated, err := m.repo.UpdateStageExecution(ctx, executionID, update)
	if err != nil {
		return nil, err
	}
	if err := m.fire(ctx, events.EventTypeStageStarted, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkCompleted records a terminal result: status from the result,
// completed_at_us from the result timestamp, the serialized result in
// stage_output, and duration_ms measured from started_at_us.
func (m *Manager) MarkCompleted(ctx context.Context, executionID string, result *Result) (*ent.StageExecution, error) {
	exec, err := m.repo.GetStageExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}

	status := stageexecution.Status(result.Status)
	if err := stageexecution.StatusValidator(status); err != nil {
		return nil, fmt.Errorf("invalid stage result status %q: %w", result.Status, err)
	}

	completedAt := result.TimestampUs
	if completedAt == 0 {
		completedAt = history.NowMicros()
	}
	output, err := result.toOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize stage result: %w", err)
	}

	update := &history.StageExecutionUpdate{
		Status:        &status,
		CompletedAtUs: &completedAt,
		StageOutput:   output,
	}
	if exec.StartedAtUs != nil {
		duration := int((completedAt - *exec.StartedAtUs) / 1000)
		update.DurationMs = &duration
	}

	updated, err := m.repo.UpdateStageExecution(ctx, executionID, update)
	if err != nil {
		return nil, err
	}

	eventType := events.EventTypeStageCompleted
	if status == stageexecution.StatusFailed {
		eventType = events.EventTypeStageFailed
	}
	if err := m.fire(ctx, eventType, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkFailed records a failure: stage_output is cleared and the error
// message persisted.
func (m *Manager) MarkFailed(ctx context.Context, executionID string, errorMessage string) (*ent.StageExecution, error) {
	exec, err := m.repo.GetStageExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}

	status := stageexecution.StatusFailed
	now := history.NowMicros()
	update := &history.StageExecutionUpdate{
		Status:           &status,
		CompletedAtUs:    &now,
		ClearStageOutput: true,
		ErrorMessage:     &errorMessage,
	}
	if exec.StartedAtUs != nil {
		duration := int((now - *exec.StartedAtUs) / 1000)
		update.DurationMs = &duration
	}

	updated, err := m.repo.UpdateStageExecution(ctx, executionID, update)
	if err != nil {
		return nil, err
	}
	if err := m.fire(ctx, events.EventTypeStageFailed, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// PauseStage persists the paused conversation so a later resume can
// continue mid-loop. completed_at_us stays unset: a paused stage is not
// finished. Satisfies agent.StagePersister.
func (m *Manager) PauseStage(ctx context.Context, executionID string, state *history.PausedConversationState) error {
	status := stageexecution.StatusPaused
	update := &history.StageExecutionUpdate{Status: &status}

	if state != nil {
		update.CurrentIteration = &state.Iteration
		output, err := pausedOutput(state)
		if err != nil {
			return fmt.Errorf("failed to serialize paused conversation: %w", err)
		}
		update.StageOutput = output
	}

	updated, err := m.repo.UpdateStageExecution(ctx, executionID, update)
	if err != nil {
		return err
	}
	return m.fire(ctx, events.EventTypeStagePaused, updated)
}

// RecordIteration updates the in-flight iteration counter. Progress only:
// no stage hooks fire for it. Satisfies agent.StagePersister.
func (m *Manager) RecordIteration(ctx context.Context, executionID string, iteration int) error {
	update := &history.StageExecutionUpdate{CurrentIteration: &iteration}
	_, err := m.repo.UpdateStageExecution(ctx, executionID, update)
	return err
}

// Get returns a stage execution row.
func (m *Manager) Get(ctx context.Context, executionID string) (*ent.StageExecution, error) {
	return m.repo.GetStageExecution(ctx, executionID)
}

// fire runs the critical stage hooks; a failure blocks the transition's
// caller from proceeding past an unrecorded state change.
func (m *Manager) fire(ctx context.Context, eventType string, exec *ent.StageExecution) error {
	if m.hooks == nil {
		return nil
	}
	if err := m.hooks.FireStageHooks(ctx, &hooks.StageEvent{Type: eventType, Execution: exec}); err != nil {
		return fmt.Errorf("stage hook failed for %s: %w", eventType, err)
	}
	return nil
}
