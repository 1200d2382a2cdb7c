package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionChannel(t *testing.T) {
	assert.Equal(t, "session:abc-123", SessionChannel("abc-123"))
}

func TestSessionEventPayload_JSON(t *testing.T) {
	payload := SessionEventPayload{
		Type:        EventTypeSessionStarted,
		SessionID:   "sess-123",
		AlertType:   "NamespaceTerminating",
		ChainID:     "kubernetes-agent-chain",
		Status:      "in_progress",
		TimestampUs: 1756000000000000,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SessionEventPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSessionStarted, decoded.Type)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, "NamespaceTerminating", decoded.AlertType)
	assert.Equal(t, "kubernetes-agent-chain", decoded.ChainID)
	assert.Equal(t, "in_progress", decoded.Status)
	assert.Equal(t, int64(1756000000000000), decoded.TimestampUs)
}

func TestSessionEventPayload_OmitsEmptyErrorMessage(t *testing.T) {
	payload := SessionEventPayload{
		Type:      EventTypeSessionCompleted,
		SessionID: "sess-1",
		Status:    "completed",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "error_message")
}

func TestStageEventPayload_JSON(t *testing.T) {
	payload := StageEventPayload{
		Type:             EventTypeStageCompleted,
		SessionID:        "sess-123",
		StageExecutionID: "exec-456",
		StageIndex:       1,
		StageName:        "investigation",
		Agent:            "KubernetesAgent",
		Status:           "completed",
		TimestampUs:      1756000000000000,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StageEventPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeStageCompleted, decoded.Type)
	assert.Equal(t, "exec-456", decoded.StageExecutionID)
	assert.Equal(t, 1, decoded.StageIndex)
	assert.Equal(t, "investigation", decoded.StageName)
	assert.Equal(t, "KubernetesAgent", decoded.Agent)
	assert.Equal(t, "completed", decoded.Status)
}

func TestLLMInteractionPayload_JSON(t *testing.T) {
	payload := LLMInteractionPayload{
		Type:             EventTypeLLMInteraction,
		SessionID:        "sess-300",
		StageExecutionID: "exec-2",
		InteractionID:    "int-1",
		InteractionType:  "investigation",
		Success:          true,
		DurationMs:       1250,
		TimestampUs:      1756000000000000,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded LLMInteractionPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeLLMInteraction, decoded.Type)
	assert.Equal(t, "int-1", decoded.InteractionID)
	assert.Equal(t, "investigation", decoded.InteractionType)
	assert.True(t, decoded.Success)
	assert.Equal(t, 1250, decoded.DurationMs)
}

func TestMCPInteractionPayload_ToolListOmitsToolName(t *testing.T) {
	payload := MCPInteractionPayload{
		Type:             EventTypeMCPToolList,
		SessionID:        "sess-1",
		StageExecutionID: "exec-1",
		RequestID:        "req-1",
		ServerName:       "kubernetes-server",
		Success:          true,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "tool_name")

	var decoded MCPInteractionPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, EventTypeMCPToolList, decoded.Type)
	assert.Equal(t, "kubernetes-server", decoded.ServerName)
}

func TestStreamChunkPayload_JSON(t *testing.T) {
	payload := StreamChunkPayload{
		Type:             EventTypeLLMStreamChunk,
		SessionID:        "sess-1",
		StageExecutionID: "exec-1",
		InteractionID:    "int-9",
		Delta:            "Thought: the namespace is stuck",
		TimestampUs:      1756000000000000,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StreamChunkPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "int-9", decoded.InteractionID)
	assert.Equal(t, "Thought: the namespace is stuck", decoded.Delta)
}
