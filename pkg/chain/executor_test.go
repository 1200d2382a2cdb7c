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
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/agent/prompt"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

func newTestExecutor(cfg *config.Config, stages *memStages, llm agent.LLMClient, flags agent.CancellationChecker) *Executor {
	return NewExecutor(cfg, stages, stages, llm, prompt.NewBuilder(nil), stubFactory{}, hooks.NewManager(), flags, nil)
}

func testSession() *ent.Session {
	return &ent.Session{
		ID:        "sess-1",
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "namespace stuck terminating"},
		ChainID:   "kubernetes-chain",
		Runbook:   "# Runbook\nCheck finalizers.",
		Status:    session.StatusInProgress,
	}
}

func TestExecute_SequentialStages(t *testing.T) {
	cfg := testConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {Stages: []config.StageConfig{
			{Name: "investigation", Agent: "KubernetesAgent"},
			{Name: "analysis", Agent: "KubernetesAgent"},
		}},
	})
	stages := newMemStages()
	llm := newScriptedLLM()
	llm.script("exec-1", scriptedTurn{text: "Final Answer: pods are stuck on a finalizer"})
	llm.script("exec-2", scriptedTurn{text: "Final Answer: remove the finalizer to unblock deletion"})

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, result.Status)
	assert.Equal(t, "remove the finalizer to unblock deletion", result.FinalAnalysis)
	assert.Equal(t, "exec-2", result.FinalStageExecutionID)

	assert.Equal(t, stageexecution.StatusCompleted, stages.row("exec-1").Status)
	assert.Equal(t, stageexecution.StatusCompleted, stages.row("exec-2").Status)

	// The second stage sees the first stage's output in its prompt.
	second := llm.inputsFor("exec-2")
	require.NotEmpty(t, second)
	initial := second[0].Messages[len(second[0].Messages)-1].Content
	assert.Contains(t, initial, "pods are stuck on a finalizer")
	assert.Contains(t, initial, "Stage 1: investigation")
}

func TestExecute_StageFailureFailsChain(t *testing.T) {
	cfg := testConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {Stages: []config.StageConfig{
			{Name: "investigation", Agent: "KubernetesAgent", MaxIterations: config.IntPtr(2)},
			{Name: "analysis", Agent: "KubernetesAgent"},
		}},
	})
	stages := newMemStages()
	llm := newScriptedLLM()
	llm.script("exec-1",
		scriptedTurn{err: errors.New("llm unavailable")},
		scriptedTurn{err: errors.New("llm unavailable")},
	)

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "maximum iterations (2)")

	row := stages.row("exec-1")
	assert.Equal(t, stageexecution.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)

	// The chain stops at the failed stage.
	assert.Nil(t, stages.row("exec-2"))
}

func TestExecute_PauseStopsChain(t *testing.T) {
	cfg := testConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {Stages: []config.StageConfig{
			{Name: "investigation", Agent: "KubernetesAgent"},
			{Name: "analysis", Agent: "KubernetesAgent"},
		}},
	})
	stages := newMemStages()
	llm := newScriptedLLM()

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{pause: true}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusPaused, result.Status)

	row := stages.row("exec-1")
	assert.Equal(t, stageexecution.StatusPaused, row.Status)
	assert.Contains(t, row.StageOutput, "paused_conversation_state")
	assert.Nil(t, stages.row("exec-2"), "remaining stages must not start after a pause")
}

func TestExecute_CancelMarksStageFailed(t *testing.T) {
	cfg := testConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {Stages: []config.StageConfig{
			{Name: "investigation", Agent: "KubernetesAgent"},
		}},
	})
	stages := newMemStages()
	llm := newScriptedLLM()

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{cancel: true}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusCancelled, result.Status)
	assert.Equal(t, "Cancelled by user", result.ErrorMessage)

	row := stages.row("exec-1")
	assert.Equal(t, stageexecution.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "Cancelled by user", *row.ErrorMessage)
}

func TestExecute_ResumeContinuesFromPausedStage(t *testing.T) {
	cfg := testConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {Stages: []config.StageConfig{
			{Name: "investigation", Agent: "KubernetesAgent"},
			{Name: "analysis", Agent: "KubernetesAgent"},
		}},
	})
	stages := newMemStages()

	startedAt := int64(1000)
	completedAt := int64(2000)
	stages.seed(&ent.StageExecution{
		ID:            "done-1",
		SessionID:     "sess-1",
		StageIndex:    0,
		StageName:     "investigation",
		Agent:         "KubernetesAgent",
		Status:        stageexecution.StatusCompleted,
		StartedAtUs:   &startedAt,
		CompletedAtUs: &completedAt,
		ParallelType:  stageexecution.ParallelTypeSingle,
		StageOutput: toMap(&stage.Result{
			Status:      string(stageexecution.StatusCompleted),
			FinalText:   "earlier findings",
			TimestampUs: completedAt,
		}),
	})

	preserved := &history.PausedConversationState{
		Iteration: 1,
		Conversation: []history.ConversationMessage{
			{Role: history.RoleSystem, Content: "system prompt"},
			{Role: history.RoleUser, Content: "initial prompt"},
			{Role: history.RoleAssistant, Content: "Thought: checking"},
		},
	}
	iteration := 1
	stages.seed(&ent.StageExecution{
		ID:               "paused-1",
		SessionID:        "sess-1",
		StageIndex:       1,
		StageName:        "analysis",
		Agent:            "KubernetesAgent",
		Status:           stageexecution.StatusPaused,
		StartedAtUs:      &startedAt,
		CurrentIteration: &iteration,
		ParallelType:     stageexecution.ParallelTypeSingle,
		StageOutput:      map[string]interface{}{"paused_conversation_state": toMap(preserved)},
	})

	llm := newScriptedLLM()
	llm.script("paused-1", scriptedTurn{text: "Final Answer: resumed and done"})

	result, err := newTestExecutor(cfg, stages, llm, stubFlags{}).Execute(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, result.Status)
	assert.Equal(t, "resumed and done", result.FinalAnalysis)

	// The completed stage is not re-run; the paused stage continues from
	// its preserved conversation.
	assert.Empty(t, llm.inputsFor("done-1"))
	resumed := llm.inputsFor("paused-1")
	require.Len(t, resumed, 1)
	require.Len(t, resumed[0].Messages, len(preserved.Conversation))
	assert.Equal(t, "Thought: checking", resumed[0].Messages[2].Content)

	row := stages.row("paused-1")
	assert.Equal(t, stageexecution.StatusCompleted, row.Status)
	require.NotNil(t, row.StartedAtUs)
	assert.Equal(t, startedAt, *row.StartedAtUs, "started_at_us must survive the paused→active cycle")
}

func TestExecute_UnknownChainFails(t *testing.T) {
	cfg := testConfig(map[string]config.ChainConfig{})
	stages := newMemStages()

	_, err := newTestExecutor(cfg, stages, newScriptedLLM(), stubFlags{}).Execute(context.Background(), testSession())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kubernetes-chain")
}
