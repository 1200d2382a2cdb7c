// Package events provides real-time event delivery via WebSocket, with
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution (or table polling on
// the SQLite backend).
//
// Events are written to the events table and broadcast on a channel in the
// same transaction, so a subscriber that reconnects can always catch up from
// the table using the last db_event_id it saw. Stream chunks are the one
// exception: they are transient, broadcast without persistence, and a client
// that misses them recovers the full text from the llm.interaction event.
package events

// Persistent event types (stored in DB + broadcast).
const (
	// Session lifecycle
	EventTypeSessionCreated   = "session.created"
	EventTypeSessionStarted   = "session.started"
	EventTypeSessionCompleted = "session.completed"
	EventTypeSessionFailed    = "session.failed"
	EventTypeSessionPaused    = "session.paused"
	EventTypeSessionResumed   = "session.resumed"
	EventTypeSessionCancelled = "session.cancelled"

	// Stage lifecycle
	EventTypeStageCreated   = "stage.created"
	EventTypeStageStarted   = "stage.started"
	EventTypeStageCompleted = "stage.completed"
	EventTypeStageFailed    = "stage.failed"
	EventTypeStagePaused    = "stage.paused"

	// Interaction records
	EventTypeLLMInteraction = "llm.interaction"
	EventTypeMCPToolCall    = "mcp.tool_call"
	EventTypeMCPToolList    = "mcp.tool_list"
)

// Transient event types (broadcast only, no DB persistence).
const (
	// LLM streaming chunks — high-frequency, ephemeral.
	EventTypeLLMStreamChunk = "llm.stream_chunk"
)

// GlobalSessionsChannel is the channel carrying session-level lifecycle
// events. The session list page subscribes to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
