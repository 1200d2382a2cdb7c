package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	llmv1 "github.com/tarsy-ai/tarsy/proto"
)

func TestToProtoMessages(t *testing.T) {
	messages := []history.ConversationMessage{
		{Role: history.RoleSystem, Content: "You are a bot"},
		{Role: history.RoleUser, Content: "Hello"},
		{Role: history.RoleAssistant, Content: "Hi", ToolCalls: []history.ToolCall{
			{ID: "tc1", Name: "k8s.get_pods", Arguments: `{"ns":"default"}`},
		}, ThoughtSignature: "sig-1"},
		{Role: history.RoleToolResult, Content: `{"result":"ok"}`, ToolCallID: "tc1", ToolName: "k8s.get_pods"},
	}

	result := toProtoMessages(messages)
	require.Len(t, result, 4)

	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "You are a bot", result[0].Content)

	assert.Equal(t, "user", result[1].Role)

	assert.Equal(t, "assistant", result[2].Role)
	assert.Equal(t, "Hi", result[2].Content)
	assert.Equal(t, "sig-1", result[2].ThoughtSignature)
	require.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, "tc1", result[2].ToolCalls[0].Id)
	assert.Equal(t, "k8s.get_pods", result[2].ToolCalls[0].Name)

	assert.Equal(t, "tool_result", result[3].Role)
	assert.Equal(t, "tc1", result[3].ToolCallId)
	assert.Equal(t, "k8s.get_pods", result[3].ToolName)
}

func TestToProtoLLMConfig(t *testing.T) {
	temp := 0.2
	cfg := &config.LLMProviderConfig{
		Type:        config.LLMProviderTypeGoogle,
		Model:       "gemini-2.5-pro",
		APIKeyEnv:   "GOOGLE_API_KEY",
		BaseURL:     "https://example.invalid",
		MaxTokens:   8192,
		Temperature: &temp,
	}

	pc := toProtoLLMConfig(cfg)
	assert.Equal(t, "google", pc.Provider)
	assert.Equal(t, "gemini-2.5-pro", pc.Model)
	assert.Equal(t, "GOOGLE_API_KEY", pc.ApiKeyEnv)
	assert.Equal(t, "https://example.invalid", pc.BaseUrl)
	assert.Equal(t, int32(8192), pc.MaxTokens)
	assert.True(t, pc.HasTemperature)
	assert.Equal(t, 0.2, pc.Temperature)
}

func TestToProtoLLMConfig_NoTemperature(t *testing.T) {
	pc := toProtoLLMConfig(&config.LLMProviderConfig{
		Type:  config.LLMProviderTypeOpenAI,
		Model: "gpt-5",
	})
	assert.False(t, pc.HasTemperature)
	assert.Zero(t, pc.Temperature)
}

func TestToProtoRequest(t *testing.T) {
	input := &GenerateInput{
		SessionID:        "sess-1",
		StageExecutionID: "exec-1",
		Messages: []history.ConversationMessage{
			{Role: history.RoleUser, Content: "investigate"},
		},
		Provider: &config.LLMProviderConfig{
			Type:  config.LLMProviderTypeGoogle,
			Model: "gemini-2.5-pro",
		},
		Tools: []ToolDefinition{
			{Name: "k8s__get_pods", Description: "Get pods", ParametersSchema: `{"type":"object"}`},
		},
		MaxTokens: 1000,
	}

	req := toProtoRequest(input)
	assert.Equal(t, "sess-1", req.SessionId)
	assert.Equal(t, "exec-1", req.StageExecutionId)
	assert.Equal(t, int32(1000), req.MaxTokens)
	require.NotNil(t, req.LlmConfig)
	assert.Equal(t, "gemini-2.5-pro", req.LlmConfig.Model)
	require.Len(t, req.Tools, 1)
	assert.Equal(t, "k8s__get_pods", req.Tools[0].Name)
	assert.Equal(t, `{"type":"object"}`, req.Tools[0].ParametersSchema)
}

func TestToProtoRequest_NoTools(t *testing.T) {
	req := toProtoRequest(&GenerateInput{SessionID: "sess-1"})
	assert.Nil(t, req.Tools)
	assert.Nil(t, req.LlmConfig)
}

func TestFromProtoResponse(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		chunk := fromProtoResponse(&llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Text{Text: &llmv1.TextContent{Content: "Thought: hm"}},
		})
		require.IsType(t, &TextChunk{}, chunk)
		assert.Equal(t, "Thought: hm", chunk.(*TextChunk).Content)
	})

	t.Run("thinking", func(t *testing.T) {
		chunk := fromProtoResponse(&llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Thinking{Thinking: &llmv1.ThinkingContent{Content: "…"}},
		})
		require.IsType(t, &ThinkingChunk{}, chunk)
	})

	t.Run("tool call", func(t *testing.T) {
		chunk := fromProtoResponse(&llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_ToolCall{ToolCall: &llmv1.ToolCallContent{
				CallId:           "tc1",
				Name:             "k8s__get_pods",
				Arguments:        `{"ns":"default"}`,
				ThoughtSignature: "sig",
			}},
		})
		require.IsType(t, &ToolCallChunk{}, chunk)
		tc := chunk.(*ToolCallChunk)
		assert.Equal(t, "tc1", tc.CallID)
		assert.Equal(t, "k8s__get_pods", tc.Name)
		assert.Equal(t, "sig", tc.ThoughtSignature)
	})

	t.Run("usage", func(t *testing.T) {
		chunk := fromProtoResponse(&llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Usage{Usage: &llmv1.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		})
		require.IsType(t, &UsageChunk{}, chunk)
		assert.Equal(t, 15, chunk.(*UsageChunk).TotalTokens)
	})

	t.Run("error", func(t *testing.T) {
		chunk := fromProtoResponse(&llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Error{Error: &llmv1.Error{Message: "quota", Retryable: true}},
		})
		require.IsType(t, &ErrorChunk{}, chunk)
		assert.True(t, chunk.(*ErrorChunk).Retryable)
	})

	t.Run("empty content ignored", func(t *testing.T) {
		assert.Nil(t, fromProtoResponse(&llmv1.GenerateResponse{}))
	})
}
