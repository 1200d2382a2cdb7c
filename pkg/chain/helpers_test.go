package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

// memStages is an in-memory StageManager and ExecutionReader mirroring the
// transitions stage.Manager performs against the database.
type memStages struct {
	mu           sync.Mutex
	seq          int
	rows         map[string]*ent.StageExecution
	order        []string
	currentStage map[string]string // session_id → execution_id
}

func newMemStages() *memStages {
	return &memStages{
		rows:         make(map[string]*ent.StageExecution),
		currentStage: make(map[string]string),
	}
}

func (m *memStages) CreateStageExecution(_ context.Context, req *history.CreateStageExecutionRequest) (*ent.StageExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := req.ExecutionID
	if id == "" {
		id = fmt.Sprintf("exec-%d", m.seq)
	}
	row := &ent.StageExecution{
		ID:            id,
		SessionID:     req.SessionID,
		StageIndex:    req.StageIndex,
		StageID:       req.StageID,
		StageName:     req.StageName,
		Agent:         req.Agent,
		Status:        stageexecution.StatusPending,
		ParallelIndex: req.ParallelIndex,
		ParallelType:  req.ParallelType,
	}
	if req.ParentStageExecutionID != "" {
		parent := req.ParentStageExecutionID
		row.ParentStageExecutionID = &parent
	}
	m.rows[id] = row
	m.order = append(m.order, id)
	return copyRow(row), nil
}

func (m *memStages) UpdateSessionCurrentStage(_ context.Context, sessionID string, _ int, executionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentStage[sessionID] = executionID
	return nil
}

func (m *memStages) MarkStarted(_ context.Context, executionID string) (*ent.StageExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[executionID]
	if !ok {
		return nil, history.ErrNotFound
	}
	if row.Status != stageexecution.StatusPending && row.Status != stageexecution.StatusPaused {
		return nil, fmt.Errorf("cannot start from %s", row.Status)
	}
	row.Status = stageexecution.StatusActive
	if row.StartedAtUs == nil {
		now := history.NowMicros()
		row.StartedAtUs = &now
	}
	row.CurrentIteration = nil
	return copyRow(row), nil
}

func (m *memStages) MarkCompleted(_ context.Context, executionID string, result *stage.Result) (*ent.StageExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[executionID]
	if !ok {
		return nil, history.ErrNotFound
	}
	row.Status = stageexecution.Status(result.Status)
	now := history.NowMicros()
	row.CompletedAtUs = &now
	row.StageOutput = toMap(result)
	return copyRow(row), nil
}

func (m *memStages) MarkFailed(_ context.Context, executionID string, errorMessage string) (*ent.StageExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[executionID]
	if !ok {
		return nil, history.ErrNotFound
	}
	row.Status = stageexecution.StatusFailed
	now := history.NowMicros()
	row.CompletedAtUs = &now
	row.StageOutput = nil
	row.ErrorMessage = &errorMessage
	return copyRow(row), nil
}

func (m *memStages) PauseStage(_ context.Context, executionID string, state *history.PausedConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[executionID]
	if !ok {
		return history.ErrNotFound
	}
	row.Status = stageexecution.StatusPaused
	if state != nil {
		row.CurrentIteration = &state.Iteration
		row.StageOutput = map[string]interface{}{"paused_conversation_state": toMap(state)}
	}
	return nil
}

func (m *memStages) RecordIteration(_ context.Context, executionID string, iteration int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row, ok := m.rows[executionID]; ok {
		row.CurrentIteration = &iteration
	}
	return nil
}

func (m *memStages) Get(_ context.Context, executionID string) (*ent.StageExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[executionID]
	if !ok {
		return nil, history.ErrNotFound
	}
	return copyRow(row), nil
}

func (m *memStages) ListStageExecutions(_ context.Context, sessionID string) ([]*ent.StageExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ent.StageExecution
	for _, id := range m.order {
		if row := m.rows[id]; row.SessionID == sessionID {
			out = append(out, copyRow(row))
		}
	}
	return out, nil
}

func (m *memStages) ListChildExecutions(_ context.Context, parentExecutionID string) ([]*ent.StageExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ent.StageExecution
	for _, id := range m.order {
		row := m.rows[id]
		if row.ParentStageExecutionID != nil && *row.ParentStageExecutionID == parentExecutionID {
			out = append(out, copyRow(row))
		}
	}
	return out, nil
}

// seed installs a pre-existing row, for resume scenarios.
func (m *memStages) seed(row *ent.StageExecution) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[row.ID] = row
	m.order = append(m.order, row.ID)
}

func (m *memStages) row(executionID string) *ent.StageExecution {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyRow(m.rows[executionID])
}

func copyRow(row *ent.StageExecution) *ent.StageExecution {
	if row == nil {
		return nil
	}
	dup := *row
	return &dup
}

func toMap(v interface{}) map[string]interface{} {
	data, _ := json.Marshal(v)
	var out map[string]interface{}
	_ = json.Unmarshal(data, &out)
	return out
}

// scriptedLLM answers per stage execution: each Generate call for an
// execution pops the next scripted turn for that execution's ID. Safe for
// the concurrent calls a parallel group makes.
type scriptedLLM struct {
	mu      sync.Mutex
	scripts map[string][]scriptedTurn
	inputs  []*agent.GenerateInput
}

type scriptedTurn struct {
	text string
	err  error
}

func newScriptedLLM() *scriptedLLM {
	return &scriptedLLM{scripts: make(map[string][]scriptedTurn)}
}

func (s *scriptedLLM) script(executionID string, turns ...scriptedTurn) {
	s.scripts[executionID] = turns
}

func (s *scriptedLLM) Generate(_ context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	s.mu.Lock()
	s.inputs = append(s.inputs, input)
	turns := s.scripts[input.StageExecutionID]
	if len(turns) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("unexpected LLM call for execution %s", input.StageExecutionID)
	}
	turn := turns[0]
	s.scripts[input.StageExecutionID] = turns[1:]
	s.mu.Unlock()

	if turn.err != nil {
		return nil, turn.err
	}
	ch := make(chan agent.Chunk, 2)
	ch <- &agent.TextChunk{Content: turn.text}
	ch <- &agent.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

// inputsFor returns the recorded requests for one execution.
func (s *scriptedLLM) inputsFor(executionID string) []*agent.GenerateInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*agent.GenerateInput
	for _, input := range s.inputs {
		if input.StageExecutionID == executionID {
			out = append(out, input)
		}
	}
	return out
}

// stubFactory hands every stage the same stub tool executor.
type stubFactory struct{}

func (stubFactory) CreateToolExecutor(_, _ string, _ []string) agent.ToolExecutor {
	return agent.NewStubToolExecutor([]agent.ToolDefinition{
		{Name: "kubernetes.get_pods", Description: "List pods"},
	})
}

// stubFlags is a fixed-answer cancellation checker.
type stubFlags struct {
	pause  bool
	cancel bool
}

func (f stubFlags) PauseRequested(string) bool  { return f.pause }
func (f stubFlags) CancelRequested(string) bool { return f.cancel }

// testConfig builds a config with one react agent and the given chain.
func testConfig(chains map[string]config.ChainConfig) *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{
			LLMProvider:       "test-provider",
			IterationStrategy: config.IterationStrategyReact,
		},
		Settings:      config.DefaultSettings(),
		AgentRegistry: config.NewAgentRegistry(map[string]config.AgentConfig{
			"KubernetesAgent": {MCPServers: []string{"kubernetes"}},
			"LogAgent":        {MCPServers: []string{"kubernetes"}},
		}),
		ChainRegistry: config.NewChainRegistry(chains, ""),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]config.LLMProviderConfig{
			"test-provider": {Type: config.LLMProviderTypeOpenAI, Model: "gpt-test"},
		}, "test-provider"),
	}
}
