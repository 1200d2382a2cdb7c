package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/agent/prompt"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
)

// scriptedResponse is one canned LLM turn.
type scriptedResponse struct {
	text      string
	toolCalls []history.ToolCall
	signature string
	err       error
}

// scriptedLLM returns canned responses in order and records every request.
type scriptedLLM struct {
	responses []scriptedResponse
	inputs    []*agent.GenerateInput
	calls     int
}

func (s *scriptedLLM) Generate(_ context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	s.inputs = append(s.inputs, input)
	if s.calls >= len(s.responses) {
		return nil, fmt.Errorf("unexpected LLM call %d", s.calls+1)
	}
	r := s.responses[s.calls]
	s.calls++

	if r.err != nil {
		return nil, r.err
	}

	ch := make(chan agent.Chunk, len(r.toolCalls)+2)
	if r.text != "" {
		ch <- &agent.TextChunk{Content: r.text}
	}
	for _, tc := range r.toolCalls {
		ch <- &agent.ToolCallChunk{
			CallID:           tc.ID,
			Name:             tc.Name,
			Arguments:        tc.Arguments,
			ThoughtSignature: r.signature,
		}
	}
	ch <- &agent.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

// lastUserMessage returns the content of the final message in call n's request.
func (s *scriptedLLM) lastMessage(n int) string {
	msgs := s.inputs[n].Messages
	return msgs[len(msgs)-1].Content
}

// fakePersister records iteration updates and pause requests.
type fakePersister struct {
	mu         sync.Mutex
	iterations []int
	paused     *history.PausedConversationState
	pausedID   string
}

func (f *fakePersister) RecordIteration(_ context.Context, _ string, iteration int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.iterations = append(f.iterations, iteration)
	return nil
}

func (f *fakePersister) PauseStage(_ context.Context, executionID string, state *history.PausedConversationState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pausedID = executionID
	f.paused = state
	return nil
}

// timeoutExecutor reports every call as timed out.
type timeoutExecutor struct {
	tools []agent.ToolDefinition
	calls int
}

func (e *timeoutExecutor) Execute(_ context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	e.calls++
	return &agent.ToolResult{
		CallID:   call.ID,
		Name:     call.Name,
		Content:  fmt.Sprintf("tool call timed out after 70s: %s", call.Name),
		IsError:  true,
		TimedOut: true,
	}, nil
}

func (e *timeoutExecutor) ListTools(_ context.Context) ([]agent.ToolDefinition, error) {
	return e.tools, nil
}

func (e *timeoutExecutor) Close() error { return nil }

var testTools = []agent.ToolDefinition{
	{Name: "kubernetes.get_pods", Description: "List pods"},
	{Name: "kubernetes.get_events", Description: "List events"},
}

// newExecContext wires a minimal execution context around the scripted LLM.
func newExecContext(llm agent.LLMClient, executor agent.ToolExecutor, maxIterations int) (*agent.ExecutionContext, *fakePersister) {
	persister := &fakePersister{}
	execCtx := &agent.ExecutionContext{
		SessionID:        "session-1",
		StageExecutionID: "exec-1",
		StageName:        "investigation",
		AgentName:        "KubernetesAgent",
		AlertType:        "kubernetes",
		AlertData:        "namespace stuck terminating",
		RunbookContent:   "# Runbook\nCheck finalizers.",
		Config: &agent.ResolvedAgentConfig{
			AgentName:       "KubernetesAgent",
			Strategy:        config.IterationStrategyReact,
			Provider:        &config.LLMProviderConfig{Type: config.LLMProviderTypeOpenAI, Model: "gpt-test"},
			ProviderName:    "test-provider",
			MaxIterations:   maxIterations,
			ForceConclusion: true,
		},
		LLMClient:      llm,
		ToolExecutor:   executor,
		Hooks:          hooks.NewManager(),
		PromptBuilder:  prompt.NewBuilder(nil),
		StagePersister: persister,
	}
	return execCtx, persister
}
