package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

func googleExecContext(llm agent.LLMClient, executor agent.ToolExecutor, maxIterations int) (*agent.ExecutionContext, *fakePersister) {
	execCtx, persister := newExecContext(llm, executor, maxIterations)
	execCtx.Config.Strategy = config.IterationStrategyNativeThinking
	execCtx.Config.Provider = &config.LLMProviderConfig{Type: config.LLMProviderTypeGoogle, Model: "gemini-test"}
	return execCtx, persister
}

func TestNativeThinking_RequiresGoogleProvider(t *testing.T) {
	llm := &scriptedLLM{}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	_, err := NewNativeThinkingController().Run(context.Background(), execCtx)

	var agentErr *agent.AgentError
	require.ErrorAs(t, err, &agentErr)
	assert.Contains(t, err.Error(), "google provider")
	assert.Zero(t, llm.calls)
}

func TestNativeThinking_ToolCallLoop(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{
			text:      "Checking the pods first.",
			toolCalls: []history.ToolCall{{ID: "call-1", Name: "kubernetes.get_pods", Arguments: `{"namespace":"dev"}`}},
			signature: "sig-abc",
		},
		{text: "The namespace is blocked by a stuck pod finalizer."},
	}}
	execCtx, _ := googleExecContext(llm, agent.NewStubToolExecutor(testTools), 5)

	out, err := NewNativeThinkingController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "The namespace is blocked by a stuck pod finalizer.", out)
	require.Equal(t, 2, llm.calls)

	// Tools are bound natively, not described in the prompt.
	assert.Equal(t, testTools, llm.inputs[0].Tools)
	assert.NotContains(t, llm.inputs[0].Messages[0].Content, "## Response Format")

	// Second call carries the assistant turn with its thought signature and
	// the structured tool result.
	msgs := llm.inputs[1].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, history.RoleAssistant, msgs[2].Role)
	assert.Equal(t, "sig-abc", msgs[2].ThoughtSignature)
	require.Len(t, msgs[2].ToolCalls, 1)

	assert.Equal(t, history.RoleToolResult, msgs[3].Role)
	assert.Equal(t, "call-1", msgs[3].ToolCallID)
	assert.Equal(t, "kubernetes.get_pods", msgs[3].ToolName)
}

func TestNativeThinking_TwoConsecutiveTimeoutsFailStage(t *testing.T) {
	executor := &timeoutExecutor{tools: testTools}
	llm := &scriptedLLM{responses: []scriptedResponse{
		{toolCalls: []history.ToolCall{{ID: "c1", Name: "kubernetes.get_pods", Arguments: "{}"}}},
		{toolCalls: []history.ToolCall{{ID: "c2", Name: "kubernetes.get_pods", Arguments: "{}"}}},
	}}
	execCtx, _ := googleExecContext(llm, executor, 10)

	_, err := NewNativeThinkingController().Run(context.Background(), execCtx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "consecutive tool timeout failures")
	assert.Equal(t, 2, llm.calls, "abort happens after exactly two LLM calls")
	assert.Equal(t, 2, executor.calls)
}

func TestNativeThinking_NonTimeoutErrorResetsStreak(t *testing.T) {
	// timeout, plain error, timeout: the streak never reaches two.
	results := []agent.ToolResult{
		{Content: "timed out", IsError: true, TimedOut: true},
		{Content: "permission denied", IsError: true},
		{Content: "timed out", IsError: true, TimedOut: true},
	}
	executor := &sequencedExecutor{tools: testTools, results: results}
	llm := &scriptedLLM{responses: []scriptedResponse{
		{toolCalls: []history.ToolCall{{ID: "c1", Name: "kubernetes.get_pods", Arguments: "{}"}}},
		{toolCalls: []history.ToolCall{{ID: "c2", Name: "kubernetes.get_pods", Arguments: "{}"}}},
		{toolCalls: []history.ToolCall{{ID: "c3", Name: "kubernetes.get_pods", Arguments: "{}"}}},
		{text: "concluded despite flaky tools"},
	}}
	execCtx, _ := googleExecContext(llm, executor, 10)

	out, err := NewNativeThinkingController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "concluded despite flaky tools", out)
	assert.Equal(t, 4, llm.calls)
}

func TestNativeThinking_ForcedConclusionAtBudget(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{toolCalls: []history.ToolCall{{ID: "c1", Name: "kubernetes.get_pods", Arguments: "{}"}}},
		{text: "Conclusion from available data."},
	}}
	execCtx, _ := googleExecContext(llm, agent.NewStubToolExecutor(testTools), 1)

	out, err := NewNativeThinkingController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "Conclusion from available data.", out)
	require.Equal(t, 2, llm.calls)

	// The conclusion call drops the tools and carries the budget message.
	assert.Nil(t, llm.inputs[1].Tools)
	assert.Contains(t, llm.lastMessage(1), "investigation iteration limit (1 iterations)")
	assert.Contains(t, llm.lastMessage(1), "Do NOT call any further tools.")
}

// sequencedExecutor returns pre-baked results in order.
type sequencedExecutor struct {
	tools   []agent.ToolDefinition
	results []agent.ToolResult
	calls   int
}

func (e *sequencedExecutor) Execute(_ context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	r := e.results[e.calls%len(e.results)]
	e.calls++
	r.CallID = call.ID
	r.Name = call.Name
	return &r, nil
}

func (e *sequencedExecutor) ListTools(_ context.Context) ([]agent.ToolDefinition, error) {
	return e.tools, nil
}

func (e *sequencedExecutor) Close() error { return nil }
