package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionEventPayload{
			Type:      EventTypeSessionCreated,
			SessionID: "abc-123",
			Status:    "pending",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSessionCreated)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longMessage := make([]byte, 8000)
		for i := range longMessage {
			longMessage[i] = 'a'
		}
		payload, _ := json.Marshal(SessionEventPayload{
			Type:         EventTypeSessionFailed,
			SessionID:    "abc-123",
			Status:       "failed",
			ErrorMessage: string(longMessage),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(StreamChunkPayload{
			Type:  EventTypeLLMStreamChunk,
			Delta: "hello",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longMessage := make([]byte, 8000)
		for i := range longMessage {
			longMessage[i] = 'x'
		}
		payload, _ := json.Marshal(SessionEventPayload{
			Type:         EventTypeSessionFailed,
			SessionID:    "sess-789",
			Status:       "failed",
			ErrorMessage: string(longMessage),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeSessionFailed)
		assert.Contains(t, result, "sess-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(StageEventPayload{
			Type:             EventTypeStageStarted,
			SessionID:        "sess-1",
			StageExecutionID: "exec-1",
			StageIndex:       0,
			Status:           "active",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "exec-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longMessage := make([]byte, 8000)
		for i := range longMessage {
			longMessage[i] = 'x'
		}
		payload, _ := json.Marshal(StageEventPayload{
			Type:             EventTypeStageFailed,
			SessionID:        "sess-789",
			StageExecutionID: "exec-456",
			Status:           "failed",
			ErrorMessage:     string(longMessage),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "sess-789")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil, config.DatabaseBackendPostgres)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
	assert.Equal(t, config.DatabaseBackendPostgres, publisher.backend)
}

func TestPublishStreamChunk_SQLiteNoop(t *testing.T) {
	// SQLite has no NOTIFY — stream chunks are dropped without touching the
	// (nil) database handle.
	publisher := NewEventPublisher(nil, config.DatabaseBackendSQLite)
	err := publisher.PublishStreamChunk(t.Context(), StreamChunkPayload{
		Type:      EventTypeLLMStreamChunk,
		SessionID: "sess-1",
		Delta:     "partial",
	})
	assert.NoError(t, err)
}
