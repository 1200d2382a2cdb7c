package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

// EventPublisher publishes events for WebSocket delivery.
//
// Persistent events are stored in the events table then broadcast. On the
// PostgreSQL backend the insert and pg_notify share a transaction, so the
// NOTIFY fires exactly when the row becomes visible. On SQLite there is no
// NOTIFY; the PollingListener picks the row up from the table instead.
//
// Transient events (streaming chunks) are broadcast via NOTIFY only. On
// SQLite they are dropped: the final content always arrives through the
// persisted llm.interaction event, so nothing is lost except liveness.
type EventPublisher struct {
	db      *sql.DB
	backend config.DatabaseBackend
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB, backend config.DatabaseBackend) *EventPublisher {
	return &EventPublisher{db: db, backend: backend}
}

// --- Typed public methods ---

// PublishSessionEvent persists a session lifecycle event to the session
// channel and mirrors it to the global sessions channel for the session list
// page. Both publishes are best-effort; the first error is returned.
func (p *EventPublisher) PublishSessionEvent(ctx context.Context, payload SessionEventPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionEventPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, SessionChannel(payload.SessionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish session event to session channel",
			"session_id", payload.SessionID, "type", payload.Type, "error", err)
		firstErr = err
	}

	// The global channel mirror is transient on PostgreSQL. SQLite has no
	// NOTIFY, so the mirror is persisted there and ages out via event TTL.
	if p.backend == config.DatabaseBackendSQLite {
		err = p.persistAndNotify(ctx, GlobalSessionsChannel, payloadJSON)
	} else {
		err = p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON)
	}
	if err != nil {
		slog.Warn("Failed to publish session event to global channel",
			"session_id", payload.SessionID, "type", payload.Type, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishStageEvent persists and broadcasts a stage lifecycle event.
func (p *EventPublisher) PublishStageEvent(ctx context.Context, payload StageEventPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageEventPayload: %w", err)
	}
	return p.persistAndNotify(ctx, SessionChannel(payload.SessionID), payloadJSON)
}

// PublishLLMInteraction persists and broadcasts an llm.interaction event.
func (p *EventPublisher) PublishLLMInteraction(ctx context.Context, payload LLMInteractionPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal LLMInteractionPayload: %w", err)
	}
	return p.persistAndNotify(ctx, SessionChannel(payload.SessionID), payloadJSON)
}

// PublishMCPInteraction persists and broadcasts an mcp.tool_call or
// mcp.tool_list event.
func (p *EventPublisher) PublishMCPInteraction(ctx context.Context, payload MCPInteractionPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MCPInteractionPayload: %w", err)
	}
	return p.persistAndNotify(ctx, SessionChannel(payload.SessionID), payloadJSON)
}

// PublishStreamChunk broadcasts an llm.stream_chunk transient event (no DB
// persistence). On SQLite this is a no-op.
func (p *EventPublisher) PublishStreamChunk(ctx context.Context, payload StreamChunkPayload) error {
	if p.backend == config.DatabaseBackendSQLite {
		return nil
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StreamChunkPayload: %w", err)
	}
	return p.notifyOnly(ctx, SessionChannel(payload.SessionID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and, on
// PostgreSQL, broadcasts via NOTIFY in the same transaction (pg_notify is
// transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, channel string, payloadJSON []byte) error {
	if p.backend == config.DatabaseBackendSQLite {
		return p.persistOnly(ctx, channel, payloadJSON)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, payloadJSON, time.Now().UTC(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// persistOnly inserts the event row without broadcasting. The SQLite
// PollingListener discovers new rows from the table.
func (p *EventPublisher) persistOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES (?, ?, ?)`,
		channel, payloadJSON, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
