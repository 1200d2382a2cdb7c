package events

import (
	"context"

	"github.com/tarsy-ai/tarsy/pkg/history"
)

// RepositoryAdapter wraps the history repository to implement CatchupQuerier.
type RepositoryAdapter struct {
	repo *history.Repository
}

// NewRepositoryAdapter creates a CatchupQuerier from a history repository.
func NewRepositoryAdapter(repo *history.Repository) *RepositoryAdapter {
	return &RepositoryAdapter{repo: repo}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup mechanism.
func (a *RepositoryAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	events, err := a.repo.GetEventsAfter(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Payload: evt.Payload,
		}
	}
	return result, nil
}
