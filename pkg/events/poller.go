package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// pollInterval is how often the PollingListener checks for new event rows.
const pollInterval = 250 * time.Millisecond

// PollingListener is the SQLite stand-in for NotifyListener. SQLite has no
// NOTIFY, so subscribed channels are polled from the events table on a short
// interval, tracking the last delivered row id per channel. Transient events
// (stream chunks) are never seen here: they are not persisted.
//
// Single-process only, which matches the SQLite deployment shape.
type PollingListener struct {
	db      *sql.DB
	manager *ConnectionManager

	// cursors: channel → last delivered event id
	cursors  map[string]int64
	cursorMu sync.Mutex

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewPollingListener creates a listener that polls the events table.
func NewPollingListener(db *sql.DB, manager *ConnectionManager) *PollingListener {
	return &PollingListener{
		db:      db,
		manager: manager,
		cursors: make(map[string]int64),
	}
}

// Start begins the polling loop.
func (l *PollingListener) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.pollLoop(loopCtx)
	}()
	slog.Info("PollingListener started", "interval", pollInterval)
	return nil
}

// Subscribe starts polling a channel. The cursor is initialized to the
// current max event id so only rows inserted after subscription are
// broadcast; history is delivered by the catchup mechanism.
func (l *PollingListener) Subscribe(ctx context.Context, channel string) error {
	var maxID sql.NullInt64
	err := l.db.QueryRowContext(ctx,
		`SELECT MAX(id) FROM events WHERE channel = ?`, channel,
	).Scan(&maxID)
	if err != nil {
		return fmt.Errorf("failed to initialize poll cursor for %s: %w", channel, err)
	}

	l.cursorMu.Lock()
	defer l.cursorMu.Unlock()
	if _, exists := l.cursors[channel]; !exists {
		l.cursors[channel] = maxID.Int64
	}
	return nil
}

// Unsubscribe stops polling a channel.
func (l *PollingListener) Unsubscribe(_ context.Context, channel string) error {
	l.cursorMu.Lock()
	defer l.cursorMu.Unlock()
	delete(l.cursors, channel)
	return nil
}

// pollLoop checks every subscribed channel for new rows on each tick.
func (l *PollingListener) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.pollOnce(ctx)
		}
	}
}

// pollOnce delivers new rows for every subscribed channel.
func (l *PollingListener) pollOnce(ctx context.Context) {
	l.cursorMu.Lock()
	snapshot := make(map[string]int64, len(l.cursors))
	for ch, id := range l.cursors {
		snapshot[ch] = id
	}
	l.cursorMu.Unlock()

	for channel, afterID := range snapshot {
		lastID, err := l.deliverNewEvents(ctx, channel, afterID)
		if err != nil {
			slog.Error("Event poll failed", "channel", channel, "error", err)
			continue
		}
		if lastID > afterID {
			l.cursorMu.Lock()
			// Only advance if the channel is still subscribed and nobody moved
			// the cursor past us.
			if cur, ok := l.cursors[channel]; ok && lastID > cur {
				l.cursors[channel] = lastID
			}
			l.cursorMu.Unlock()
		}
	}
}

// deliverNewEvents broadcasts rows with id > afterID in order and returns the
// highest id delivered.
func (l *PollingListener) deliverNewEvents(ctx context.Context, channel string, afterID int64) (int64, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, payload FROM events WHERE channel = ? AND id > ? ORDER BY id ASC`,
		channel, afterID,
	)
	if err != nil {
		return afterID, err
	}
	defer func() { _ = rows.Close() }()

	lastID := afterID
	for rows.Next() {
		var id int64
		var payloadJSON []byte
		if err := rows.Scan(&id, &payloadJSON); err != nil {
			return lastID, err
		}

		// Inject db_event_id the same way the NOTIFY path does, so clients
		// can track their catchup position regardless of backend.
		var m map[string]any
		if err := json.Unmarshal(payloadJSON, &m); err != nil {
			slog.Warn("Skipping malformed event payload", "channel", channel, "id", id, "error", err)
			lastID = id
			continue
		}
		m["db_event_id"] = id
		enriched, err := json.Marshal(m)
		if err != nil {
			lastID = id
			continue
		}

		l.manager.Broadcast(channel, enriched)
		lastID = id
	}
	return lastID, rows.Err()
}

// Stop signals the polling loop to exit and waits for it.
func (l *PollingListener) Stop(_ context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}
}
