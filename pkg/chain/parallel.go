package chain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

// childOutcome is one child's settled state, collected off the fan-out.
type childOutcome struct {
	index     int // 1..N
	execution *ent.StageExecution
	agentName string
	finalText string
	err       error
}

// runParallelGroup executes a parallel stage: a parent row plus N child
// rows running concurrently, aggregated under the group's failure policy.
// On resume, settled children are kept and only unfinished ones run again.
func (e *Executor) runParallelGroup(
	ctx context.Context,
	sess *ent.Session,
	chainCtx *Context,
	stageCfg config.StageConfig,
	index int,
	existingParent *ent.StageExecution,
) (*stage.Result, string, error) {
	par := stageCfg.Parallel
	count := par.ChildCount()
	if count < 1 {
		return nil, "", fmt.Errorf("parallel stage %q has no children", stageCfg.Name)
	}
	policy := e.failurePolicy(par)

	parent, children, err := e.prepareGroup(ctx, sess, stageCfg, index, count, existingParent)
	if err != nil {
		return nil, "", err
	}

	if err := e.stages.UpdateSessionCurrentStage(ctx, sess.ID, index, parent.ID); err != nil {
		return nil, "", fmt.Errorf("failed to update current stage pointer: %w", err)
	}
	if _, err := e.stages.MarkStarted(ctx, parent.ID); err != nil {
		return nil, "", fmt.Errorf("failed to start parallel stage %s: %w", parent.ID, err)
	}

	outcomes := e.fanOut(ctx, sess, chainCtx, stageCfg, index, children)

	// A pause in any child pauses the whole group. Every child has already
	// settled its own row, so resume re-runs only the unfinished ones.
	for _, out := range outcomes {
		var paused *agent.SessionPausedError
		if errors.As(out.err, &paused) {
			if pauseErr := e.stages.PauseStage(ctx, parent.ID, nil); pauseErr != nil {
				return nil, "", fmt.Errorf("failed to pause parallel stage %s: %w", parent.ID, pauseErr)
			}
			return nil, "", out.err
		}
	}
	for _, out := range outcomes {
		var cancelled *agent.CancelledError
		if errors.As(out.err, &cancelled) {
			return nil, "", e.failStage(ctx, parent.ID, out.err)
		}
	}

	result := aggregate(outcomes, policy)
	if _, err := e.stages.MarkCompleted(ctx, parent.ID, result); err != nil {
		return nil, "", fmt.Errorf("failed to complete parallel stage %s: %w", parent.ID, err)
	}
	if result.Status == string(stageexecution.StatusFailed) {
		return nil, "", aggregateError(stageCfg.Name, policy, outcomes)
	}
	return result, parent.ID, nil
}

// prepareGroup creates the parent and child rows for a fresh group, or
// reloads them on resume.
func (e *Executor) prepareGroup(
	ctx context.Context,
	sess *ent.Session,
	stageCfg config.StageConfig,
	index, count int,
	existingParent *ent.StageExecution,
) (*ent.StageExecution, []*ent.StageExecution, error) {
	par := stageCfg.Parallel

	if existingParent != nil {
		children, err := e.reader.ListChildExecutions(ctx, existingParent.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list children of stage %s: %w", existingParent.ID, err)
		}
		return existingParent, children, nil
	}

	parent, err := e.stages.CreateStageExecution(ctx, &history.CreateStageExecutionRequest{
		SessionID:             sess.ID,
		StageIndex:            index,
		StageID:               stageID(stageCfg.Name, index),
		StageName:             stageCfg.Name,
		Agent:                 stageCfg.Agent,
		ParallelType:          stageexecution.ParallelType(par.Type),
		ExpectedParallelCount: &count,
	})
	if err != nil {
		return nil, nil, err
	}

	children := make([]*ent.StageExecution, 0, count)
	for i := 1; i <= count; i++ {
		agentName, _ := childAgent(stageCfg, i)
		child, err := e.stages.CreateStageExecution(ctx, &history.CreateStageExecutionRequest{
			SessionID:              sess.ID,
			StageIndex:             index,
			StageID:                stageID(stageCfg.Name, index),
			StageName:              stageCfg.Name,
			Agent:                  agentName,
			ParentStageExecutionID: parent.ID,
			ParallelIndex:          i,
			ParallelType:           stageexecution.ParallelType(par.Type),
		})
		if err != nil {
			return nil, nil, err
		}
		children = append(children, child)
	}
	return parent, children, nil
}

// fanOut runs every unfinished child concurrently and collects settled
// outcomes sorted by parallel index. Completed and failed children from a
// previous run are folded in without re-running.
func (e *Executor) fanOut(
	ctx context.Context,
	sess *ent.Session,
	chainCtx *Context,
	stageCfg config.StageConfig,
	index int,
	children []*ent.StageExecution,
) []childOutcome {
	results := make(chan childOutcome, len(children))
	for _, child := range children {
		go func(child *ent.StageExecution) {
			results <- e.runChild(ctx, sess, chainCtx, stageCfg, index, child)
		}(child)
	}

	outcomes := make([]childOutcome, 0, len(children))
	for range children {
		outcomes = append(outcomes, <-results)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].index < outcomes[j].index })
	return outcomes
}

// runChild settles one child row: replays an already-terminal child, or
// runs (possibly resuming) its controller loop.
func (e *Executor) runChild(
	ctx context.Context,
	sess *ent.Session,
	chainCtx *Context,
	stageCfg config.StageConfig,
	index int,
	child *ent.StageExecution,
) childOutcome {
	out := childOutcome{index: child.ParallelIndex, execution: child, agentName: child.Agent}

	switch child.Status {
	case stageexecution.StatusCompleted:
		if result, err := stage.DecodeResult(child); err == nil {
			out.finalText = result.FinalText
		}
		return out
	case stageexecution.StatusFailed:
		if child.ErrorMessage != nil {
			out.err = errors.New(*child.ErrorMessage)
		} else {
			out.err = errors.New("child failed")
		}
		return out
	}

	agentName, childCfg := childAgent(stageCfg, child.ParallelIndex)
	resolved, err := agent.ResolveAgentConfig(e.cfg, stageCfg, agentName, childCfg)
	if err != nil {
		out.err = e.failStage(ctx, child.ID, err)
		return out
	}

	resume, err := resumeStateFor(child)
	if err != nil {
		out.err = e.failStage(ctx, child.ID, err)
		return out
	}
	if _, err := e.stages.MarkStarted(ctx, child.ID); err != nil {
		out.err = err
		return out
	}

	finalText, err := e.runController(ctx, sess, chainCtx, child.ID, index, stageCfg.Name, resolved, resume)
	if err != nil {
		out.err = e.settleStageError(ctx, child.ID, err)
		return out
	}

	if _, err := e.stages.MarkCompleted(ctx, child.ID, stage.CompletedResult(finalText)); err != nil {
		out.err = err
		return out
	}
	out.finalText = finalText
	return out
}

// childAgent resolves the agent name and per-child overrides for one
// parallel index. Replica groups repeat the stage agent; multi_agent groups
// take each child's own config.
func childAgent(stageCfg config.StageConfig, parallelIndex int) (string, *config.ChildAgentConfig) {
	par := stageCfg.Parallel
	if par.Type == config.ParallelTypeReplica {
		return stageCfg.Agent, nil
	}
	child := par.Children[parallelIndex-1]
	return child.Agent, &child
}

// failurePolicy resolves the group's policy through the defaults.
func (e *Executor) failurePolicy(par *config.ParallelConfig) config.FailurePolicy {
	if par.FailurePolicy != "" {
		return par.FailurePolicy
	}
	if e.cfg.Defaults.FailurePolicy != "" {
		return e.cfg.Defaults.FailurePolicy
	}
	return config.FailurePolicyAny
}

// aggregate folds child outcomes into the parent's result under the
// failure policy: "all" requires every child to complete, "any" at least
// one.
func aggregate(outcomes []childOutcome, policy config.FailurePolicy) *stage.Result {
	parallel := &stage.ParallelResult{
		Results: make([]stage.ChildResult, 0, len(outcomes)),
		Metadata: stage.ParallelMetadata{
			TotalCount:    len(outcomes),
			FailurePolicy: string(policy),
		},
	}

	var texts []string
	for _, out := range outcomes {
		child := stage.ChildResult{
			ExecutionID:   out.execution.ID,
			ParallelIndex: out.index,
			Agent:         out.agentName,
		}
		if out.err != nil {
			child.Status = string(stageexecution.StatusFailed)
			child.ErrorMessage = out.err.Error()
			parallel.Metadata.FailedCount++
		} else {
			child.Status = string(stageexecution.StatusCompleted)
			child.FinalText = out.finalText
			parallel.Metadata.SuccessfulCount++
			texts = append(texts, out.finalText)
		}
		parallel.Results = append(parallel.Results, child)
	}

	status := stageexecution.StatusCompleted
	switch policy {
	case config.FailurePolicyAll:
		if parallel.Metadata.FailedCount > 0 {
			status = stageexecution.StatusFailed
		}
	default:
		if parallel.Metadata.SuccessfulCount == 0 {
			status = stageexecution.StatusFailed
		}
	}

	return &stage.Result{
		Status:      string(status),
		FinalText:   strings.Join(texts, "\n\n---\n\n"),
		TimestampUs: history.NowMicros(),
		Parallel:    parallel,
	}
}

// aggregateError summarizes the failed children for the chain-level error.
func aggregateError(stageName string, policy config.FailurePolicy, outcomes []childOutcome) error {
	var sb strings.Builder
	failed := 0
	for _, out := range outcomes {
		if out.err == nil {
			continue
		}
		failed++
		fmt.Fprintf(&sb, "\n  child %d (%s): %v", out.index, out.agentName, out.err)
	}
	return fmt.Errorf("parallel stage %q failed under policy %q (%d/%d children failed):%s",
		stageName, policy, failed, len(outcomes), sb.String())
}
