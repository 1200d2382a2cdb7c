package e2e

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

func singleStageConfig() *config.Config {
	return e2eConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {
			AlertTypes: []string{"kubernetes"},
			Stages:     []config.StageConfig{{Name: "investigation", Agent: "KubernetesAgent"}},
		},
	}, map[string]config.AgentConfig{
		"KubernetesAgent": {MCPServers: []string{"kubernetes"}},
	})
}

func waitClosed(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestE2E_SingleStageInvestigation(t *testing.T) {
	h := newHarness(t, singleStageConfig())
	ctx := context.Background()

	h.llm.respond("executive summar",
		llmTurn{text: "Pods crashlooped after the OOM killer hit the api deployment."})
	h.llm.respond("",
		llmTurn{text: "Thought: I should inspect the pods first.\n" +
			"Action: kubernetes.get_pods\n" +
			"Action Input: {\"namespace\": \"prod\"}"},
		llmTurn{text: "Thought: The evidence is conclusive.\n" +
			"Final Answer: The api deployment is crashlooping because of OOM kills."})

	sess := h.submit("kubernetes", map[string]interface{}{"namespace": "prod", "pod": "api-0"})
	done := h.waitForStatus(sess.ID, entsession.StatusCompleted)

	require.NotNil(t, done.FinalAnalysis)
	assert.Contains(t, *done.FinalAnalysis, "crashlooping because of OOM kills")
	require.NotNil(t, done.FinalAnalysisSummary)
	assert.Contains(t, *done.FinalAnalysisSummary, "OOM killer")
	assert.Equal(t, testRunbook, done.Runbook)

	execs, err := h.repo.ListStageExecutions(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, stageexecution.StatusCompleted, execs[0].Status)
	assert.Equal(t, "investigation", execs[0].StageName)

	// The observation fed back into the second call is the real tool output.
	reqs := h.llm.requestsFor(execs[0].ID)
	require.Len(t, reqs, 3) // two investigation turns plus the summary
	second := reqs[1]
	last := second.Messages[len(second.Messages)-1]
	assert.Contains(t, last.Content, `Observation: [stub] Tool "kubernetes.get_pods"`)

	// Every call went through the hooks into the history tables.
	interactions, err := h.repo.ListLLMInteractions(ctx, sess.ID, "")
	require.NoError(t, err)
	require.Len(t, interactions, 3)
	assert.Equal(t, llminteraction.InteractionTypeInvestigation, interactions[0].InteractionType)
	assert.Equal(t, llminteraction.InteractionTypeSummarization, interactions[2].InteractionType)
}

func TestE2E_HallucinatedObservationIgnored(t *testing.T) {
	h := newHarness(t, singleStageConfig())
	ctx := context.Background()

	h.llm.respond("executive summar",
		llmTurn{text: "Investigation completed."})
	// The first turn fabricates an Observation after its Action. Parsing
	// stops at the hallucinated line; the Action still runs for real.
	h.llm.respond("",
		llmTurn{text: "Thought: Checking pods now.\n" +
			"Action: kubernetes.get_pods\n" +
			"Action Input: {}\n" +
			"Observation: all pods are Running and healthy"},
		llmTurn{text: "Final Answer: The pods are fine after all."})

	sess := h.submit("kubernetes", map[string]interface{}{"cluster": "prod-1"})
	h.waitForStatus(sess.ID, entsession.StatusCompleted)

	execs, err := h.repo.ListStageExecutions(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, execs, 1)

	reqs := h.llm.requestsFor(execs[0].ID)
	require.Len(t, reqs, 3)
	last := reqs[1].Messages[len(reqs[1].Messages)-1]
	assert.Contains(t, last.Content, `[stub] Tool "kubernetes.get_pods"`)
	assert.NotContains(t, last.Content, "all pods are Running and healthy")
}

func TestE2E_MaxIterationsFailure(t *testing.T) {
	cfg := e2eConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {
			AlertTypes: []string{"kubernetes"},
			Stages: []config.StageConfig{{
				Name:          "investigation",
				Agent:         "KubernetesAgent",
				MaxIterations: config.IntPtr(2),
			}},
		},
	}, map[string]config.AgentConfig{
		"KubernetesAgent": {MCPServers: []string{"kubernetes"}},
	})
	h := newHarness(t, cfg)
	ctx := context.Background()

	h.llm.respond("",
		llmTurn{err: errors.New("model overloaded")},
		llmTurn{err: errors.New("model overloaded")})

	sess := h.submit("kubernetes", map[string]interface{}{"namespace": "prod"})
	done := h.waitForStatus(sess.ID, entsession.StatusFailed)

	require.NotNil(t, done.ErrorMessage)
	assert.Contains(t, *done.ErrorMessage, "maximum iterations (2)")
	assert.Contains(t, *done.ErrorMessage, "Last error: model overloaded")

	require.NotNil(t, done.FinalAnalysis)
	assert.Contains(t, *done.FinalAnalysis, "# Alert Processing Error")

	execs, err := h.repo.ListStageExecutions(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, stageexecution.StatusFailed, execs[0].Status)
}

func TestE2E_PauseAndResume(t *testing.T) {
	h := newHarness(t, singleStageConfig())
	ctx := context.Background()

	started := make(chan struct{})
	gate := make(chan struct{})

	h.llm.respond("executive summar",
		llmTurn{text: "Resolved after resume."})
	h.llm.respond("",
		llmTurn{
			text: "Thought: Gathering evidence.\n" +
				"Action: kubernetes.get_pods\n" +
				"Action Input: {}",
			started: started,
			gate:    gate,
		},
		llmTurn{text: "Final Answer: Node memory pressure evicted the pods."})

	sess := h.submit("kubernetes", map[string]interface{}{"node": "worker-3"})

	// Flag the pause while the first LLM turn is in flight so the next
	// iteration boundary observes it deterministically.
	waitClosed(t, started, "first LLM turn")
	require.True(t, h.registry.RequestPause(sess.ID))
	close(gate)

	paused := h.waitForStatus(sess.ID, entsession.StatusPaused)
	require.NotNil(t, paused.StartedAtUs)
	startedAt := *paused.StartedAtUs

	execs, err := h.repo.ListStageExecutions(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, stageexecution.StatusPaused, execs[0].Status)

	state, err := stage.DecodePausedState(execs[0])
	require.NoError(t, err)
	assert.Equal(t, 1, state.Iteration)
	require.Len(t, state.Conversation, 4)
	assert.Contains(t, state.Conversation[3].Content, `Observation: [stub] Tool "kubernetes.get_pods"`)

	_, err = h.alerts.Resume(ctx, sess.ID)
	require.NoError(t, err)

	done := h.waitForStatus(sess.ID, entsession.StatusCompleted)
	require.NotNil(t, done.FinalAnalysis)
	assert.Contains(t, *done.FinalAnalysis, "memory pressure evicted")

	// Resume keeps the original start time.
	require.NotNil(t, done.StartedAtUs)
	assert.Equal(t, startedAt, *done.StartedAtUs)

	// The resumed call continued the preserved conversation instead of
	// starting over.
	reqs := h.llm.requestsFor(execs[0].ID)
	require.Len(t, reqs, 3)
	resumed := reqs[1]
	require.Len(t, resumed.Messages, 4)
	assert.Contains(t, resumed.Messages[3].Content, `Observation: [stub] Tool`)
}

func TestE2E_ParallelMultiAgentAnyPolicy(t *testing.T) {
	cfg := e2eConfig(map[string]config.ChainConfig{
		"kubernetes-chain": {
			AlertTypes: []string{"kubernetes"},
			Stages: []config.StageConfig{{
				Name: "triage",
				Parallel: &config.ParallelConfig{
					Type:          config.ParallelTypeMultiAgent,
					FailurePolicy: config.FailurePolicyAny,
					Children: []config.ChildAgentConfig{
						{Agent: "KubernetesAgent"},
						{Agent: "LogAgent", MaxIterations: config.IntPtr(1)},
					},
				},
			}},
		},
	}, map[string]config.AgentConfig{
		"KubernetesAgent": {MCPServers: []string{"kubernetes"}, CustomInstructions: "Focus on pod health."},
		"LogAgent":        {MCPServers: []string{"kubernetes"}, CustomInstructions: "Focus on log collection."},
	})
	h := newHarness(t, cfg)
	ctx := context.Background()

	h.llm.respond("executive summar",
		llmTurn{text: "Pods evicted by node pressure; log agent was unavailable."})
	h.llm.respond("Focus on pod health",
		llmTurn{text: "Final Answer: Pods were evicted due to node pressure."})
	h.llm.respond("Focus on log collection",
		llmTurn{err: errors.New("log backend unreachable")})

	sess := h.submit("kubernetes", map[string]interface{}{"node": "worker-7"})
	done := h.waitForStatus(sess.ID, entsession.StatusCompleted)

	require.NotNil(t, done.FinalAnalysis)
	assert.Contains(t, *done.FinalAnalysis, "evicted due to node pressure")

	execs, err := h.repo.ListStageExecutions(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, execs, 3) // parent plus two children

	var parentID string
	for _, exec := range execs {
		if exec.ParentStageExecutionID == nil {
			parentID = exec.ID
			assert.Equal(t, stageexecution.StatusCompleted, exec.Status)
		}
	}
	require.NotEmpty(t, parentID)

	children, err := h.repo.ListChildExecutions(ctx, parentID)
	require.NoError(t, err)
	require.Len(t, children, 2)

	byAgent := map[string]stageexecution.Status{}
	for _, child := range children {
		byAgent[child.Agent] = child.Status
		if child.Agent == "LogAgent" {
			require.NotNil(t, child.ErrorMessage)
			assert.Contains(t, *child.ErrorMessage, "maximum iterations (1)")
		}
	}
	assert.Equal(t, stageexecution.StatusCompleted, byAgent["KubernetesAgent"])
	assert.Equal(t, stageexecution.StatusFailed, byAgent["LogAgent"])
}

func TestE2E_LateSubscriberCatchup(t *testing.T) {
	h := newHarness(t, singleStageConfig())

	h.llm.respond("executive summar",
		llmTurn{text: "Short summary."})
	h.llm.respond("",
		llmTurn{text: "Thought: Looking.\nAction: kubernetes.get_pods\nAction Input: {}"},
		llmTurn{text: "Final Answer: All clear."})

	sess := h.submit("kubernetes", map[string]interface{}{"namespace": "default"})
	h.waitForStatus(sess.ID, entsession.StatusCompleted)

	// Subscribe after the session finished: auto-catchup must replay the
	// whole persisted event history in id order.
	conn := h.subscribeWS(events.SessionChannel(sess.ID))

	var types []string
	lastID := float64(0)
	for {
		msg := readWS(t, conn)
		eventType, _ := msg["type"].(string)
		types = append(types, eventType)

		id, ok := msg["db_event_id"].(float64)
		require.True(t, ok, "catchup event %q missing db_event_id", eventType)
		assert.Greater(t, id, lastID, "catchup events must arrive in id order")
		lastID = id

		if eventType == events.EventTypeSessionCompleted {
			break
		}
	}

	assert.Equal(t, events.EventTypeSessionCreated, types[0])
	assert.Contains(t, types, events.EventTypeLLMInteraction)
	assert.Contains(t, types, events.EventTypeSessionCompleted)
}
