// Package agent holds the execution context, LLM client abstraction, and
// typed errors shared by iteration controllers. Controllers themselves live
// in pkg/agent/controller; prompt construction in pkg/agent/prompt.
package agent

import (
	"context"
	"strings"

	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// LLMClient is the interface for calling the LLM sidecar service.
// It wraps the gRPC connection and provides a channel-based streaming API.
type LLMClient interface {
	// Generate sends a conversation to the LLM and returns a stream of
	// chunks. The channel is closed when the stream completes; provider
	// errors arrive as ErrorChunk values.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// GenerateInput is one LLM call: the conversation so far plus the provider
// configuration and optional native tool schemas.
type GenerateInput struct {
	SessionID        string
	StageExecutionID string
	Messages         []history.ConversationMessage
	Provider         *config.LLMProviderConfig
	Tools            []ToolDefinition // nil = text-only call
	MaxTokens        int              // 0 = provider default
}

// ToolDefinition describes a tool exposed to the LLM.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the LLM's text response.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the LLM's internal reasoning.
type ThinkingChunk struct{ Content string }

// ToolCallChunk signals a structured tool call from a native tool-calling
// provider. ThoughtSignature is the provider's opaque reasoning token,
// echoed back on the follow-up turn.
type ToolCallChunk struct {
	CallID           string
	Name             string
	Arguments        string
	ThoughtSignature string
}

// UsageChunk reports token consumption for this LLM call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }

// LLMError is a provider error surfaced from the chunk stream.
type LLMError struct {
	Message   string
	Code      string
	Retryable bool
}

func (e *LLMError) Error() string { return e.Message }

// LLMResponse is the assembled result of one streamed LLM call.
type LLMResponse struct {
	Text             string
	Thinking         string
	ToolCalls        []history.ToolCall
	ThoughtSignature string
	InputTokens      int
	OutputTokens     int
	TotalTokens      int
}

// CollectResponse drains a chunk stream into a complete response. onDelta,
// if non-nil, is invoked with each text fragment as it arrives (used to
// publish llm.stream_chunk events). An ErrorChunk aborts collection and is
// returned as *LLMError.
func CollectResponse(ctx context.Context, ch <-chan Chunk, onDelta func(delta string)) (*LLMResponse, error) {
	var text, thinking strings.Builder
	resp := &LLMResponse{}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case chunk, ok := <-ch:
			if !ok {
				resp.Text = text.String()
				resp.Thinking = thinking.String()
				return resp, nil
			}
			switch c := chunk.(type) {
			case *TextChunk:
				text.WriteString(c.Content)
				if onDelta != nil {
					onDelta(c.Content)
				}
			case *ThinkingChunk:
				thinking.WriteString(c.Content)
			case *ToolCallChunk:
				resp.ToolCalls = append(resp.ToolCalls, history.ToolCall{
					ID:        c.CallID,
					Name:      c.Name,
					Arguments: c.Arguments,
				})
				if c.ThoughtSignature != "" {
					resp.ThoughtSignature = c.ThoughtSignature
				}
			case *UsageChunk:
				resp.InputTokens = c.InputTokens
				resp.OutputTokens = c.OutputTokens
				resp.TotalTokens = c.TotalTokens
			case *ErrorChunk:
				return nil, &LLMError{Message: c.Message, Code: c.Code, Retryable: c.Retryable}
			}
		}
	}
}
