package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tarsy-ai/tarsy/pkg/agent"
)

// llmTurn is one scripted assistant response.
type llmTurn struct {
	text    string
	err     error
	started chan struct{} // closed when the turn begins, if set
	gate    chan struct{} // blocks the turn until closed, if set
}

type llmRule struct {
	match string
	turns []llmTurn
}

// mockLLM scripts responses by substring-matching the flattened
// conversation. Rules are checked in registration order and each Generate
// call consumes the first remaining turn of the first matching rule, so
// specific rules (the executive summary, a particular agent's
// instructions) must be registered before the catch-all.
type mockLLM struct {
	mu     sync.Mutex
	rules  []*llmRule
	inputs []*agent.GenerateInput
}

func newMockLLM() *mockLLM { return &mockLLM{} }

// respond registers scripted turns for conversations containing match. An
// empty match acts as a catch-all.
func (m *mockLLM) respond(match string, turns ...llmTurn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, &llmRule{match: match, turns: turns})
}

func (m *mockLLM) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	var sb strings.Builder
	for _, msg := range input.Messages {
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	conversation := sb.String()

	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	var turn *llmTurn
	for _, rule := range m.rules {
		if len(rule.turns) > 0 && strings.Contains(conversation, rule.match) {
			next := rule.turns[0]
			rule.turns = rule.turns[1:]
			turn = &next
			break
		}
	}
	m.mu.Unlock()

	if turn == nil {
		return nil, fmt.Errorf("no scripted response for execution %s", input.StageExecutionID)
	}
	if turn.started != nil {
		close(turn.started)
	}
	if turn.gate != nil {
		select {
		case <-turn.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if turn.err != nil {
		return nil, turn.err
	}

	ch := make(chan agent.Chunk, 2)
	ch <- &agent.TextChunk{Content: turn.text}
	ch <- &agent.UsageChunk{InputTokens: 20, OutputTokens: 10, TotalTokens: 30}
	close(ch)
	return ch, nil
}

func (m *mockLLM) Close() error { return nil }

// requestsFor returns the recorded Generate inputs for one stage execution,
// in call order.
func (m *mockLLM) requestsFor(executionID string) []*agent.GenerateInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*agent.GenerateInput
	for _, input := range m.inputs {
		if input.StageExecutionID == executionID {
			out = append(out, input)
		}
	}
	return out
}
