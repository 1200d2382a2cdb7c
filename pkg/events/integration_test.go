package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/database"
	"github.com/tarsy-ai/tarsy/pkg/history"
	testdb "github.com/tarsy-ai/tarsy/test/database"
	"github.com/tarsy-ai/tarsy/test/util"
)

// eventsTestEnv holds all wired-up components for an integration test.
type eventsTestEnv struct {
	dbClient  *database.Client
	publisher *EventPublisher
	repo      *history.Repository
	manager   *ConnectionManager
	listener  *NotifyListener
	server    *httptest.Server
	sessionID string
	channel   string // session:<sessionID>
}

// setupEventsTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupEventsTest(t *testing.T) *eventsTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	channel := SessionChannel(sessionID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB(), config.DatabaseBackendPostgres)
	repo := history.NewRepository(dbClient.Client)
	manager := NewConnectionManager(NewRepositoryAdapter(repo), 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &eventsTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		repo:      repo,
		manager:   manager,
		listener:  listener,
		server:    server,
		sessionID: sessionID,
		channel:   channel,
	}
}

// subscribeWS connects a WebSocket client and subscribes it to env.channel,
// consuming the connection.established and subscription.confirmed messages.
func subscribeWS(t *testing.T, env *eventsTestEnv) *websocket.Conn {
	t.Helper()
	conn := connectWS(t, env.server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))

	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	return conn
}

func TestIntegration_PublishDeliversOverNotify(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	env := setupEventsTest(t)
	conn := subscribeWS(t, env)
	ctx := context.Background()

	err := env.publisher.PublishStageEvent(ctx, StageEventPayload{
		Type:             EventTypeStageStarted,
		SessionID:        env.sessionID,
		StageExecutionID: "exec-1",
		StageIndex:       0,
		StageName:        "investigation",
		Agent:            "KubernetesAgent",
		Status:           "active",
		TimestampUs:      history.NowMicros(),
	})
	require.NoError(t, err)

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeStageStarted, msg["type"])
	assert.Equal(t, env.sessionID, msg["session_id"])
	assert.Equal(t, "exec-1", msg["stage_execution_id"])
	// db_event_id is injected into the NOTIFY payload at publish time.
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_CatchupAfterMissedEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish three events before anyone subscribes.
	for i := 0; i < 3; i++ {
		err := env.publisher.PublishLLMInteraction(ctx, LLMInteractionPayload{
			Type:            EventTypeLLMInteraction,
			SessionID:       env.sessionID,
			InteractionID:   uuid.New().String(),
			InteractionType: "investigation",
			Success:         true,
			TimestampUs:     history.NowMicros(),
		})
		require.NoError(t, err)
	}

	// Subscribing triggers auto-catchup from event id 0.
	conn := subscribeWS(t, env)

	var lastID float64
	for i := 0; i < 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, EventTypeLLMInteraction, msg["type"])
		id, ok := msg["db_event_id"].(float64)
		require.True(t, ok, "catchup events carry db_event_id")
		assert.Greater(t, id, lastID, "catchup events arrive in id order")
		lastID = id
	}
}

func TestIntegration_OversizedPayloadTruncated(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	env := setupEventsTest(t)
	conn := subscribeWS(t, env)
	ctx := context.Background()

	err := env.publisher.PublishSessionEvent(ctx, SessionEventPayload{
		Type:         EventTypeSessionFailed,
		SessionID:    env.sessionID,
		Status:       "failed",
		ErrorMessage: strings.Repeat("x", 9000),
		TimestampUs:  history.NowMicros(),
	})
	require.NoError(t, err)

	// NOTIFY delivery carries the truncation envelope.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeSessionFailed, msg["type"])
	assert.Equal(t, true, msg["truncated"])
	dbEventID, ok := msg["db_event_id"].(float64)
	require.True(t, ok)

	// The full payload is recoverable from the events table via catchup.
	events, err := env.repo.GetEventsAfter(ctx, env.channel, int64(dbEventID)-1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	full := events[0].Payload
	assert.Equal(t, strings.Repeat("x", 9000), full["error_message"])
}

func TestIntegration_SessionEventMirroredToGlobalChannel(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	env := setupEventsTest(t)
	ctx := context.Background()

	// Subscribe a client to the global sessions channel.
	conn := connectWS(t, env.server)
	readJSON(t, conn) // connection.established

	wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: GlobalSessionsChannel})
	require.NoError(t, conn.Write(wctx, websocket.MessageText, subMsg))
	require.Equal(t, "subscription.confirmed", readJSON(t, conn)["type"])

	err := env.publisher.PublishSessionEvent(ctx, SessionEventPayload{
		Type:        EventTypeSessionStarted,
		SessionID:   env.sessionID,
		Status:      "in_progress",
		TimestampUs: history.NowMicros(),
	})
	require.NoError(t, err)

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeSessionStarted, msg["type"])
	assert.Equal(t, env.sessionID, msg["session_id"])
}
