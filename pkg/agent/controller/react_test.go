package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/session"
)

func TestReAct_FinalAnswerFirstTurn(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Thought: I now know the final answer\nFinal Answer: The namespace has a stuck finalizer."},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	out, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "The namespace has a stuck finalizer.", out)
	assert.Equal(t, 1, llm.calls)
}

func TestReAct_ToolCallThenFinalAnswer(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Thought: check the pods\nAction: kubernetes.get_pods\nAction Input: {\"namespace\": \"dev\"}"},
		{text: "Thought: I now know the final answer\nFinal Answer: Pod stuck in Terminating."},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	out, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "Pod stuck in Terminating.", out)
	require.Equal(t, 2, llm.calls)

	// Tool result went back as an Observation user message.
	last := llm.lastMessage(1)
	assert.True(t, strings.HasPrefix(last, "Observation:"), "got %q", last)
	assert.Contains(t, last, "kubernetes.get_pods")
}

func TestReAct_HallucinatedObservationIgnored(t *testing.T) {
	// The model fabricates an Observation after its Action. The parser stops
	// at the fabricated line; the real tool result is what enters the
	// conversation.
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Thought: check pods\nAction: kubernetes.get_pods\nAction Input: namespace=dev\n" +
			"Observation: everything is fine, no issues found"},
		{text: "Final Answer: done"},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	out, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "done", out)
	require.Equal(t, 2, llm.calls)
	assert.NotContains(t, llm.lastMessage(1), "everything is fine",
		"fabricated observation must not be used as the tool result")
	assert.True(t, strings.HasPrefix(llm.lastMessage(1), "Observation:"))
}

func TestReAct_MalformedResponseGetsContinuationPrompt(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "I think the cluster might be unhealthy but I am not sure what to do."},
		{text: "Final Answer: conclusion"},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	out, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "conclusion", out)
	assert.Contains(t, llm.lastMessage(1), "Please specify what Action")
}

func TestReAct_UnknownToolFeedback(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Thought: try this\nAction: kubernetes.delete_everything\nAction Input: {}"},
		{text: "Final Answer: ok"},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	_, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	feedback := llm.lastMessage(1)
	assert.Contains(t, feedback, "Unknown tool 'kubernetes.delete_everything'")
	assert.Contains(t, feedback, "kubernetes.get_pods", "feedback lists available tools")
}

func TestReAct_MaxIterationsWithLastCallFailed(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{err: errors.New("provider unavailable")},
		{err: errors.New("provider unavailable")},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 2)

	_, err := NewReActController().Run(context.Background(), execCtx)

	var maxErr *agent.MaxIterationsError
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, 2, maxErr.MaxIterations)
	assert.Contains(t, err.Error(), "maximum iterations (2)")
	assert.Contains(t, err.Error(), "Last error: provider unavailable")
}

func TestReAct_ForcedConclusionAtBudget(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Thought: still looking\nAction: kubernetes.get_pods\nAction Input: {}"},
		{text: "Thought: more data needed\nAction: kubernetes.get_events\nAction Input: {}"},
		{text: "Thought: I now know the final answer\nFinal Answer: Best conclusion from gathered data."},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 2)

	out, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "Best conclusion from gathered data.", out)
	require.Equal(t, 3, llm.calls, "two iterations plus one forced conclusion call")
	assert.Contains(t, llm.lastMessage(2), "investigation iteration limit (2 iterations)")
}

func TestReAct_PauseAtBudgetWhenForcedConclusionDisabled(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Thought: looking\nAction: kubernetes.get_pods\nAction Input: {}"},
	}}
	execCtx, persister := newExecContext(llm, agent.NewStubToolExecutor(testTools), 1)
	execCtx.Config.ForceConclusion = false

	_, err := NewReActController().Run(context.Background(), execCtx)

	var paused *agent.SessionPausedError
	require.ErrorAs(t, err, &paused)
	assert.Equal(t, 1, paused.Iteration)

	require.NotNil(t, persister.paused)
	assert.Equal(t, "exec-1", persister.pausedID)
	assert.Equal(t, 1, persister.paused.Iteration)
	assert.NotEmpty(t, persister.paused.Conversation)
}

func TestReAct_PauseRequestedMidLoop(t *testing.T) {
	llm := &scriptedLLM{}
	execCtx, persister := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	registry := session.NewRegistry()
	require.NoError(t, registry.Register("session-1", nil))
	require.True(t, registry.RequestPause("session-1"))
	execCtx.Cancellation = registry

	_, err := NewReActController().Run(context.Background(), execCtx)

	var paused *agent.SessionPausedError
	require.ErrorAs(t, err, &paused)
	assert.Zero(t, llm.calls, "pause is honored before the next LLM call")
	require.NotNil(t, persister.paused)
}

func TestReAct_CancelRequestedMidLoop(t *testing.T) {
	llm := &scriptedLLM{}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	registry := session.NewRegistry()
	require.NoError(t, registry.Register("session-1", nil))
	require.True(t, registry.RequestCancel("session-1"))
	execCtx.Cancellation = registry

	_, err := NewReActController().Run(context.Background(), execCtx)

	var cancelled *agent.CancelledError
	require.ErrorAs(t, err, &cancelled)
	assert.Zero(t, llm.calls)
}

func TestReAct_ResumeFromPausedConversation(t *testing.T) {
	preserved := []history.ConversationMessage{
		{Role: history.RoleSystem, Content: "system prompt from the original run"},
		{Role: history.RoleUser, Content: "initial prompt"},
		{Role: history.RoleAssistant, Content: "Thought: checking\nAction: kubernetes.get_pods\nAction Input: {}"},
		{Role: history.RoleUser, Content: "Observation: pod-1 Terminating"},
	}
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Final Answer: resumed and concluded"},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)
	execCtx.ResumeState = &history.PausedConversationState{Iteration: 2, Conversation: preserved}

	out, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "resumed and concluded", out)
	require.Equal(t, 1, llm.calls)
	// The first call continues the preserved conversation, not a fresh one.
	require.Len(t, llm.inputs[0].Messages, 4)
	assert.Equal(t, "system prompt from the original run", llm.inputs[0].Messages[0].Content)
}

func TestReAct_TextOnlyCalls(t *testing.T) {
	// ReAct describes tools in the prompt; the provider request carries none.
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Final Answer: ok"},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	_, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Nil(t, llm.inputs[0].Tools)
	assert.Contains(t, llm.inputs[0].Messages[0].Content, "kubernetes.get_pods",
		"tools are described in the system prompt instead")
}

func TestReAct_IterationProgressRecorded(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Thought: looking\nAction: kubernetes.get_pods\nAction Input: {}"},
		{text: "Final Answer: ok"},
	}}
	execCtx, persister := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	_, err := NewReActController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, persister.iterations)
}
