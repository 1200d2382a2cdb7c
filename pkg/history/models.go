package history

import (
	"encoding/json"

	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
)

// ConversationMessage is one message in an LLM conversation.
type ConversationMessage struct {
	Role       string     `json:"role"` // system, user, assistant, tool_result
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
	// ThoughtSignature carries the provider's opaque reasoning token for
	// native tool calling; echoed back on the follow-up turn.
	ThoughtSignature string `json:"thought_signature,omitempty"`
}

// ToolCall is a structured tool invocation from a native tool-calling model.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON-encoded
}

// Conversation roles.
const (
	RoleSystem     = "system"
	RoleUser       = "user"
	RoleAssistant  = "assistant"
	RoleToolResult = "tool_result"
)

// PausedConversationState is the serialized state a paused stage needs to
// resume: the full conversation plus the iteration it stopped at.
type PausedConversationState struct {
	Iteration    int                   `json:"iteration"`
	Conversation []ConversationMessage `json:"conversation"`
}

// CreateSessionRequest carries the fields needed to create a session.
type CreateSessionRequest struct {
	SessionID               string
	AlertType               string
	AlertData               map[string]interface{}
	RunbookURL              string
	ChainID                 string
	ChainConfig             map[string]interface{}
	Author                  string
	SlackMessageFingerprint string
}

// SessionFilters narrows paginated session listings.
type SessionFilters struct {
	Status          []session.Status
	AlertType       string
	ChainID         string
	CreatedAfterUs  int64
	CreatedBeforeUs int64
	Page            int
	PageSize        int
}

// CreateStageExecutionRequest carries the fields needed to create a stage
// execution row (status starts as pending).
type CreateStageExecutionRequest struct {
	ExecutionID             string
	SessionID               string
	StageIndex              int
	StageID                 string
	StageName               string
	Agent                   string
	ParentStageExecutionID  string // empty for single/parent rows
	ParallelIndex           int
	ParallelType            stageexecution.ParallelType
	ExpectedParallelCount   *int
}

// StageExecutionUpdate mutates the narrow field set a stage transition
// touches. Nil pointers leave fields untouched.
type StageExecutionUpdate struct {
	Status                *stageexecution.Status
	StartedAtUs           *int64
	CompletedAtUs         *int64
	DurationMs            *int
	CurrentIteration      *int
	ClearCurrentIteration bool
	StageOutput           map[string]interface{}
	ClearStageOutput      bool
	ErrorMessage          *string
}

// LLMInteractionRecord is the template and final record for one LLM call.
type LLMInteractionRecord struct {
	InteractionID     string
	SessionID         string
	StageExecutionID  string
	Provider          string
	ModelName         string
	Temperature       *float64
	InteractionType   llminteraction.InteractionType
	Conversation      []ConversationMessage
	NativeToolsConfig map[string]interface{}
	StartTimeUs       int64
	EndTimeUs         int64
	DurationMs        int
	TimestampUs       int64
	Success           bool
	ErrorMessage      string
	InputTokens       int
	OutputTokens      int
	TotalTokens       int
}

// MCPInteractionRecord is the template and final record for one MCP call.
type MCPInteractionRecord struct {
	RequestID         string
	SessionID         string
	StageExecutionID  string
	ServerName        string
	CommunicationType mcpinteraction.CommunicationType
	ToolName          string
	ToolArguments     map[string]interface{}
	ToolResult        map[string]interface{}
	AvailableTools    map[string]interface{}
	StartTimeUs       int64
	EndTimeUs         int64
	DurationMs        int
	TimestampUs       int64
	Success           bool
	ErrorMessage      string
	StepDescription   string
}

// conversationJSON converts messages to the JSON shape stored in the
// conversation column.
func conversationJSON(msgs []ConversationMessage) []map[string]interface{} {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return nil
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// ConversationFromJSON decodes a stored conversation column value.
func ConversationFromJSON(stored []map[string]interface{}) ([]ConversationMessage, error) {
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	var msgs []ConversationMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
