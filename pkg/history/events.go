package history

import (
	"context"
	"fmt"
	"time"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/event"
)

// GetEventsAfter returns up to limit events on channel with id > afterID,
// ordered by id ascending. This is the catchup read path; writes go through
// the event publisher so the insert and NOTIFY share a transaction.
func (r *Repository) GetEventsAfter(ctx context.Context, channel string, afterID int64, limit int) ([]*ent.Event, error) {
	events, err := r.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(afterID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return events, nil
}

// DeleteSessionEvents removes the per-session event channel after a session
// reaches a terminal state. Global channel events age out via TTL instead.
func (r *Repository) DeleteSessionEvents(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.Event.Delete().
		Where(event.ChannelEQ("session:" + sessionID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete session events: %w", err)
	}
	return n, nil
}

// DeleteEventsOlderThan removes events created before the cutoff.
func (r *Repository) DeleteEventsOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}
