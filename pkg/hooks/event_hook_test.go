package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

type capturingPublisher struct {
	stageEvents []events.StageEventPayload
	llmEvents   []events.LLMInteractionPayload
	mcpEvents   []events.MCPInteractionPayload
	err         error
}

func (p *capturingPublisher) PublishStageEvent(ctx context.Context, payload events.StageEventPayload) error {
	p.stageEvents = append(p.stageEvents, payload)
	return p.err
}

func (p *capturingPublisher) PublishLLMInteraction(ctx context.Context, payload events.LLMInteractionPayload) error {
	p.llmEvents = append(p.llmEvents, payload)
	return p.err
}

func (p *capturingPublisher) PublishMCPInteraction(ctx context.Context, payload events.MCPInteractionPayload) error {
	p.mcpEvents = append(p.mcpEvents, payload)
	return p.err
}

func TestEventHooks_LLMInteraction(t *testing.T) {
	mgr := NewManager()
	pub := &capturingPublisher{}
	RegisterEventHooks(mgr, pub)

	ictx := mgr.StartLLMInteraction(&history.LLMInteractionRecord{
		SessionID:        "sess-1",
		StageExecutionID: "exec-1",
		InteractionType:  llminteraction.InteractionTypeFinalAnalysis,
	})
	ictx.Complete(context.Background())

	require.Len(t, pub.llmEvents, 1)
	got := pub.llmEvents[0]
	assert.Equal(t, events.EventTypeLLMInteraction, got.Type)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, "exec-1", got.StageExecutionID)
	assert.Equal(t, "final_analysis", got.InteractionType)
	assert.True(t, got.Success)
}

func TestEventHooks_MCPEventType(t *testing.T) {
	tests := []struct {
		name     string
		commType mcpinteraction.CommunicationType
		toolName string
		want     string
	}{
		{
			name:     "tool call",
			commType: mcpinteraction.CommunicationTypeToolCall,
			toolName: "get_namespace",
			want:     events.EventTypeMCPToolCall,
		},
		{
			name:     "tool list",
			commType: mcpinteraction.CommunicationTypeToolList,
			want:     events.EventTypeMCPToolList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := NewManager()
			pub := &capturingPublisher{}
			RegisterEventHooks(mgr, pub)

			ictx := mgr.StartMCPInteraction(&history.MCPInteractionRecord{
				SessionID:         "sess-1",
				StageExecutionID:  "exec-1",
				ServerName:        "kubernetes-server",
				CommunicationType: tt.commType,
				ToolName:          tt.toolName,
			})
			ictx.Complete(context.Background())

			require.Len(t, pub.mcpEvents, 1)
			got := pub.mcpEvents[0]
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, "kubernetes-server", got.ServerName)
			assert.Equal(t, tt.toolName, got.ToolName)
		})
	}
}

func TestEventHooks_StageEvent(t *testing.T) {
	mgr := NewManager()
	pub := &capturingPublisher{}
	RegisterEventHooks(mgr, pub)

	errMsg := "agent failed after 3 iterations"
	err := mgr.FireStageHooks(context.Background(), &StageEvent{
		Type: events.EventTypeStageFailed,
		Execution: &ent.StageExecution{
			ID:           "exec-9",
			SessionID:    "sess-9",
			StageIndex:   2,
			StageName:    "remediation",
			Agent:        "KubernetesAgent",
			Status:       stageexecution.StatusFailed,
			ErrorMessage: &errMsg,
		},
	})
	require.NoError(t, err)

	require.Len(t, pub.stageEvents, 1)
	got := pub.stageEvents[0]
	assert.Equal(t, events.EventTypeStageFailed, got.Type)
	assert.Equal(t, "sess-9", got.SessionID)
	assert.Equal(t, "exec-9", got.StageExecutionID)
	assert.Equal(t, 2, got.StageIndex)
	assert.Equal(t, "remediation", got.StageName)
	assert.Equal(t, "failed", got.Status)
	assert.Equal(t, errMsg, got.ErrorMessage)
	assert.Positive(t, got.TimestampUs)
}
