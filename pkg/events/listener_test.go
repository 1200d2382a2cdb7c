package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=tarsy", manager)

	require.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=tarsy", listener.connString)
	assert.Equal(t, manager, listener.manager)
	assert.NotNil(t, listener.channels)
}

func TestNotifyListener_BeforeStart(t *testing.T) {
	// Until Start establishes the dedicated LISTEN connection there is
	// nothing to LISTEN on; Subscribe must say so instead of blocking.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=tarsy", manager)

	t.Run("subscribe fails without a connection", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "session:abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe is a no-op without a connection", func(t *testing.T) {
		assert.NoError(t, listener.Unsubscribe(t.Context(), "session:abc"))
	})
}

// pollerTestDB opens an in-memory SQLite database with the events table, the
// same shape the migrations create.
func pollerTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		channel TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)
	return db
}

func insertEvent(t *testing.T, db *sql.DB, channel, payload string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO events (channel, payload) VALUES (?, ?)`, channel, payload)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func (l *PollingListener) cursor(channel string) (int64, bool) {
	l.cursorMu.Lock()
	defer l.cursorMu.Unlock()
	id, ok := l.cursors[channel]
	return id, ok
}

func TestPollingListener_CursorInitialization(t *testing.T) {
	db := pollerTestDB(t)
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)
	listener := NewPollingListener(db, manager)

	insertEvent(t, db, "session:s1", `{"type":"stage.started"}`)
	last := insertEvent(t, db, "session:s1", `{"type":"stage.completed"}`)

	t.Run("cursor starts at the current max id", func(t *testing.T) {
		// Rows that already exist belong to catchup, not the poll loop.
		require.NoError(t, listener.Subscribe(t.Context(), "session:s1"))
		id, ok := listener.cursor("session:s1")
		require.True(t, ok)
		assert.Equal(t, last, id)
	})

	t.Run("empty channel starts at zero", func(t *testing.T) {
		require.NoError(t, listener.Subscribe(t.Context(), "session:empty"))
		id, ok := listener.cursor("session:empty")
		require.True(t, ok)
		assert.Zero(t, id)
	})

	t.Run("resubscribe keeps the advanced cursor", func(t *testing.T) {
		insertEvent(t, db, "session:s1", `{"type":"session.completed"}`)
		require.NoError(t, listener.Subscribe(t.Context(), "session:s1"))
		id, _ := listener.cursor("session:s1")
		assert.Equal(t, last, id, "existing cursor must not be reset")
	})
}

func TestPollingListener_Unsubscribe(t *testing.T) {
	db := pollerTestDB(t)
	listener := NewPollingListener(db, NewConnectionManager(&mockCatchupQuerier{}, time.Second))

	require.NoError(t, listener.Subscribe(t.Context(), "session:s1"))
	_, ok := listener.cursor("session:s1")
	require.True(t, ok)

	require.NoError(t, listener.Unsubscribe(t.Context(), "session:s1"))
	_, ok = listener.cursor("session:s1")
	assert.False(t, ok)

	// Unknown channels are a no-op.
	assert.NoError(t, listener.Unsubscribe(t.Context(), "session:never-seen"))
}

// newWSServer serves WebSocket upgrades into an existing manager.
func newWSServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return server
}

// subscribeWSClient connects a WebSocket client and subscribes it to a
// channel, consuming the handshake messages.
func subscribeWSClient(t *testing.T, manager *ConnectionManager, channel string) *websocket.Conn {
	t.Helper()
	server := newWSServer(t, manager)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	return conn
}

func TestPollingListener_DeliverNewEvents(t *testing.T) {
	db := pollerTestDB(t)
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	listener := NewPollingListener(db, manager)
	manager.SetListener(listener)

	channel := "session:deliver"
	conn := subscribeWSClient(t, manager, channel)

	id1 := insertEvent(t, db, channel, `{"type":"llm.interaction","seq":1}`)
	id2 := insertEvent(t, db, channel, `{"type":"stage.completed","seq":2}`)
	insertEvent(t, db, "session:other", `{"type":"noise"}`)

	lastID, err := listener.deliverNewEvents(t.Context(), channel, 0)
	require.NoError(t, err)
	assert.Equal(t, id2, lastID)

	// Rows arrive in id order with db_event_id injected, matching what the
	// NOTIFY path puts on the wire.
	msg := readJSON(t, conn)
	assert.Equal(t, "llm.interaction", msg["type"])
	assert.Equal(t, float64(id1), msg["db_event_id"])

	msg = readJSON(t, conn)
	assert.Equal(t, "stage.completed", msg["type"])
	assert.Equal(t, float64(id2), msg["db_event_id"])

	// Nothing past the cursor means nothing broadcast.
	lastID, err = listener.deliverNewEvents(t.Context(), channel, id2)
	require.NoError(t, err)
	assert.Equal(t, id2, lastID)
}

func TestPollingListener_SkipsMalformedPayload(t *testing.T) {
	db := pollerTestDB(t)
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	listener := NewPollingListener(db, manager)
	manager.SetListener(listener)

	channel := "session:malformed"
	conn := subscribeWSClient(t, manager, channel)

	insertEvent(t, db, channel, `{not json`)
	goodID := insertEvent(t, db, channel, `{"type":"session.completed"}`)

	lastID, err := listener.deliverNewEvents(t.Context(), channel, 0)
	require.NoError(t, err)
	assert.Equal(t, goodID, lastID, "cursor must advance past the bad row")

	msg := readJSON(t, conn)
	assert.Equal(t, "session.completed", msg["type"])
}

func TestPollingListener_PollLoopDelivers(t *testing.T) {
	db := pollerTestDB(t)
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	listener := NewPollingListener(db, manager)
	manager.SetListener(listener)

	require.NoError(t, listener.Start(context.Background()))
	defer listener.Stop(context.Background())

	channel := "session:loop"
	conn := subscribeWSClient(t, manager, channel)

	// Inserted after the subscription, so the poll loop must pick it up.
	id := insertEvent(t, db, channel, `{"type":"stage.started"}`)

	msg := readJSON(t, conn)
	assert.Equal(t, "stage.started", msg["type"])
	assert.Equal(t, float64(id), msg["db_event_id"])
}

func TestPollingListener_StopWaitsForLoop(t *testing.T) {
	db := pollerTestDB(t)
	listener := NewPollingListener(db, NewConnectionManager(&mockCatchupQuerier{}, time.Second))

	require.NoError(t, listener.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		listener.Stop(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after cancelling the poll loop")
	}

	// Stop on a never-started listener must not panic.
	assert.NotPanics(t, func() {
		NewPollingListener(db, nil).Stop(context.Background())
	})
}
