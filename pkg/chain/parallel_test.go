package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

// replicaChain builds a single parallel stage repeating KubernetesAgent.
func replicaChain(count int, policy config.FailurePolicy) map[string]config.ChainConfig {
	return map[string]config.ChainConfig{
		"kubernetes-chain": {Stages: []config.StageConfig{
			{
				Name:  "scan",
				Agent: "KubernetesAgent",
				Parallel: &config.ParallelConfig{
					Type:          config.ParallelTypeReplica,
					Count:         count,
					FailurePolicy: policy,
				},
			},
		}},
	}
}

// multiAgentChain builds a parallel stage with two distinct agents, the
// second bounded to two iterations so a scripted failure settles quickly.
func multiAgentChain(policy config.FailurePolicy) map[string]config.ChainConfig {
	return map[string]config.ChainConfig{
		"kubernetes-chain": {Stages: []config.StageConfig{
			{
				Name:          "scan",
				MaxIterations: config.IntPtr(2),
				Parallel: &config.ParallelConfig{
					Type:          config.ParallelTypeMultiAgent,
					FailurePolicy: policy,
					Children: []config.ChildAgentConfig{
						{Agent: "KubernetesAgent"},
						{Agent: "LogAgent"},
					},
				},
			},
		}},
	}
}

func TestParallel_ReplicaAllSucceed(t *testing.T) {
	cfg := testConfig(replicaChain(2, config.FailurePolicyAll))
	stages := newMemStages()
	llm := newScriptedLLM()
	// exec-1 is the parent; children are exec-2 and exec-3.
	llm.script("exec-2", scriptedTurn{text: "Final Answer: replica one findings"})
	llm.script("exec-3", scriptedTurn{text: "Final Answer: replica two findings"})

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, result.Status)

	parent := stages.row("exec-1")
	assert.Equal(t, stageexecution.StatusCompleted, parent.Status)

	decoded, err := stage.DecodeResult(parent)
	require.NoError(t, err)
	require.NotNil(t, decoded.Parallel)
	assert.Equal(t, 2, decoded.Parallel.Metadata.SuccessfulCount)
	assert.Equal(t, 0, decoded.Parallel.Metadata.FailedCount)
	assert.Equal(t, 2, decoded.Parallel.Metadata.TotalCount)
	require.Len(t, decoded.Parallel.Results, 2)
	assert.Equal(t, 1, decoded.Parallel.Results[0].ParallelIndex)
	assert.Equal(t, 2, decoded.Parallel.Results[1].ParallelIndex)

	assert.Equal(t, stageexecution.StatusCompleted, stages.row("exec-2").Status)
	assert.Equal(t, stageexecution.StatusCompleted, stages.row("exec-3").Status)
}

func TestParallel_PolicyAllFailsOnOneChild(t *testing.T) {
	cfg := testConfig(multiAgentChain(config.FailurePolicyAll))
	stages := newMemStages()
	llm := newScriptedLLM()
	llm.script("exec-2", scriptedTurn{text: "Final Answer: kubernetes findings"})
	llm.script("exec-3",
		scriptedTurn{err: errors.New("llm unavailable")},
		scriptedTurn{err: errors.New("llm unavailable")},
	)

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, `policy "all"`)
	assert.Contains(t, result.ErrorMessage, "child 2 (LogAgent)")

	parent := stages.row("exec-1")
	assert.Equal(t, stageexecution.StatusFailed, parent.Status)

	// The parent keeps the aggregated child results even when failed.
	decoded, decodeErr := stage.DecodeResult(parent)
	require.NoError(t, decodeErr)
	assert.Equal(t, 1, decoded.Parallel.Metadata.SuccessfulCount)
	assert.Equal(t, 1, decoded.Parallel.Metadata.FailedCount)

	assert.Equal(t, stageexecution.StatusCompleted, stages.row("exec-2").Status)
	assert.Equal(t, stageexecution.StatusFailed, stages.row("exec-3").Status)
}

func TestParallel_PolicyAnySucceedsOnOneChild(t *testing.T) {
	cfg := testConfig(multiAgentChain(config.FailurePolicyAny))
	stages := newMemStages()
	llm := newScriptedLLM()
	llm.script("exec-2", scriptedTurn{text: "Final Answer: kubernetes findings"})
	llm.script("exec-3",
		scriptedTurn{err: errors.New("llm unavailable")},
		scriptedTurn{err: errors.New("llm unavailable")},
	)

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "kubernetes findings")

	parent := stages.row("exec-1")
	assert.Equal(t, stageexecution.StatusCompleted, parent.Status)

	decoded, decodeErr := stage.DecodeResult(parent)
	require.NoError(t, decodeErr)
	assert.Equal(t, 1, decoded.Parallel.Metadata.SuccessfulCount)
	assert.Equal(t, 1, decoded.Parallel.Metadata.FailedCount)
	assert.Equal(t, string(config.FailurePolicyAny), decoded.Parallel.Metadata.FailurePolicy)
}

func TestParallel_ChildPausePausesParent(t *testing.T) {
	cfg := testConfig(replicaChain(2, config.FailurePolicyAll))
	stages := newMemStages()
	llm := newScriptedLLM()

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{pause: true}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusPaused, result.Status)

	assert.Equal(t, stageexecution.StatusPaused, stages.row("exec-1").Status)
	assert.Equal(t, stageexecution.StatusPaused, stages.row("exec-2").Status)
	assert.Equal(t, stageexecution.StatusPaused, stages.row("exec-3").Status)
}

func TestParallel_NoChildrenRejected(t *testing.T) {
	cfg := testConfig(replicaChain(0, config.FailurePolicyAll))
	stages := newMemStages()

	result, err := newTestExecutor(cfg, stages, newScriptedLLM(), stubFlags{}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "no children")
}

func TestAggregate_AllChildrenFailUnderAny(t *testing.T) {
	outcomes := []childOutcome{
		{index: 1, execution: &ent.StageExecution{ID: "c1"}, agentName: "KubernetesAgent", err: errors.New("boom")},
		{index: 2, execution: &ent.StageExecution{ID: "c2"}, agentName: "LogAgent", err: errors.New("bang")},
	}

	result := aggregate(outcomes, config.FailurePolicyAny)

	assert.Equal(t, string(stageexecution.StatusFailed), result.Status)
	assert.Equal(t, 0, result.Parallel.Metadata.SuccessfulCount)
	assert.Equal(t, 2, result.Parallel.Metadata.FailedCount)
	assert.Equal(t, "boom", result.Parallel.Results[0].ErrorMessage)
}
