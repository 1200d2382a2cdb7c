package history

import (
	"context"
	"fmt"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
)

// CreateStageExecution inserts a stage execution row in pending status.
func (r *Repository) CreateStageExecution(ctx context.Context, req *CreateStageExecutionRequest) (*ent.StageExecution, error) {
	create := r.client.StageExecution.Create().
		SetID(req.ExecutionID).
		SetSessionID(req.SessionID).
		SetStageIndex(req.StageIndex).
		SetStageID(req.StageID).
		SetStageName(req.StageName).
		SetAgent(req.Agent).
		SetStatus(stageexecution.StatusPending).
		SetParallelIndex(req.ParallelIndex).
		SetParallelType(req.ParallelType)
	if req.ParentStageExecutionID != "" {
		create.SetParentStageExecutionID(req.ParentStageExecutionID)
	}
	if req.ExpectedParallelCount != nil {
		create.SetExpectedParallelCount(*req.ExpectedParallelCount)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage execution: %w", err)
	}
	return created, nil
}

// GetStageExecution returns a stage execution by ID.
func (r *Repository) GetStageExecution(ctx context.Context, executionID string) (*ent.StageExecution, error) {
	found, err := r.client.StageExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: stage execution %s", ErrNotFound, executionID)
		}
		return nil, fmt.Errorf("failed to get stage execution: %w", err)
	}
	return found, nil
}

// ListStageExecutions returns all stage executions for a session ordered by
// chain position. Parents carry parallel_index 0 so they sort before their
// children within the same stage index.
func (r *Repository) ListStageExecutions(ctx context.Context, sessionID string) ([]*ent.StageExecution, error) {
	execs, err := r.client.StageExecution.Query().
		Where(stageexecution.SessionIDEQ(sessionID)).
		Order(
			ent.Asc(stageexecution.FieldStageIndex),
			ent.Asc(stageexecution.FieldParallelIndex),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage executions: %w", err)
	}
	return execs, nil
}

// ListChildExecutions returns the children of a parallel parent ordered by
// parallel index.
func (r *Repository) ListChildExecutions(ctx context.Context, parentExecutionID string) ([]*ent.StageExecution, error) {
	children, err := r.client.StageExecution.Query().
		Where(stageexecution.ParentStageExecutionIDEQ(parentExecutionID)).
		Order(ent.Asc(stageexecution.FieldParallelIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list child executions: %w", err)
	}
	return children, nil
}

// UpdateStageExecution applies the non-nil fields of update and returns the
// refreshed row.
func (r *Repository) UpdateStageExecution(ctx context.Context, executionID string, update *StageExecutionUpdate) (*ent.StageExecution, error) {
	q := r.client.StageExecution.UpdateOneID(executionID)

	if update.Status != nil {
		q.SetStatus(*update.Status)
	}
	if update.StartedAtUs != nil {
		q.SetStartedAtUs(*update.StartedAtUs)
	}
	if update.CompletedAtUs != nil {
		q.SetCompletedAtUs(*update.CompletedAtUs)
	}
	if update.DurationMs != nil {
		q.SetDurationMs(*update.DurationMs)
	}
	if update.CurrentIteration != nil {
		q.SetCurrentIteration(*update.CurrentIteration)
	} else if update.ClearCurrentIteration {
		q.ClearCurrentIteration()
	}
	if update.StageOutput != nil {
		q.SetStageOutput(update.StageOutput)
	} else if update.ClearStageOutput {
		q.ClearStageOutput()
	}
	if update.ErrorMessage != nil {
		q.SetErrorMessage(*update.ErrorMessage)
	}

	updated, err := q.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: stage execution %s", ErrNotFound, executionID)
		}
		return nil, fmt.Errorf("failed to update stage execution: %w", err)
	}
	return updated, nil
}
