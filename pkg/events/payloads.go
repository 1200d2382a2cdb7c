package events

// SessionEventPayload is the payload for all session.* lifecycle events.
// Published to the session channel (persistent) and mirrored to the global
// sessions channel for the session list page.
type SessionEventPayload struct {
	Type         string `json:"type"`       // session.created, session.started, ...
	SessionID    string `json:"session_id"` // session UUID
	AlertType    string `json:"alert_type,omitempty"`
	ChainID      string `json:"chain_id,omitempty"`
	Status       string `json:"status"` // pending, in_progress, paused, completed, failed, cancelled
	ErrorMessage string `json:"error_message,omitempty"`
	TimestampUs  int64  `json:"timestamp_us"`
}

// StageEventPayload is the payload for stage.* lifecycle events.
type StageEventPayload struct {
	Type             string `json:"type"` // stage.started, stage.completed, stage.failed
	SessionID        string `json:"session_id"`
	StageExecutionID string `json:"stage_execution_id"`
	StageIndex       int    `json:"stage_index"`
	StageName        string `json:"stage_name"`
	Agent            string `json:"agent"`
	Status           string `json:"status"` // active, completed, failed
	ErrorMessage     string `json:"error_message,omitempty"`
	TimestampUs      int64  `json:"timestamp_us"`
}

// LLMInteractionPayload is the payload for llm.interaction events, fired
// when a completed LLM call is persisted. Carries identifiers only; clients
// fetch the conversation via REST.
type LLMInteractionPayload struct {
	Type             string `json:"type"` // always llm.interaction
	SessionID        string `json:"session_id"`
	StageExecutionID string `json:"stage_execution_id"`
	InteractionID    string `json:"interaction_id"`
	InteractionType  string `json:"interaction_type"` // investigation, final_analysis, summarization
	Success          bool   `json:"success"`
	DurationMs       int    `json:"duration_ms"`
	TimestampUs      int64  `json:"timestamp_us"`
}

// MCPInteractionPayload is the payload for mcp.tool_call and mcp.tool_list
// events, fired when a completed MCP call is persisted.
type MCPInteractionPayload struct {
	Type             string `json:"type"` // mcp.tool_call or mcp.tool_list
	SessionID        string `json:"session_id"`
	StageExecutionID string `json:"stage_execution_id"`
	RequestID        string `json:"request_id"`
	ServerName       string `json:"server_name"`
	ToolName         string `json:"tool_name,omitempty"` // empty for tool_list
	Success          bool   `json:"success"`
	DurationMs       int    `json:"duration_ms"`
	TimestampUs      int64  `json:"timestamp_us"`
}

// StreamChunkPayload is the payload for llm.stream_chunk transient events.
// Published for each LLM streaming token — high frequency, ephemeral.
type StreamChunkPayload struct {
	Type             string `json:"type"` // always llm.stream_chunk
	SessionID        string `json:"session_id"`
	StageExecutionID string `json:"stage_execution_id"`
	InteractionID    string `json:"interaction_id"` // parent LLM interaction UUID
	Delta            string `json:"delta"`          // incremental text chunk
	TimestampUs      int64  `json:"timestamp_us"`
}
