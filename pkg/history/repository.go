// Package history is the durable record of everything a session did:
// sessions, stage executions, LLM interactions, MCP interactions, events,
// and warnings. It is a narrow typed layer over the Ent client; callers
// never see raw rows or SQL.
package history

import (
	"errors"

	"github.com/tarsy-ai/tarsy/ent"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a conditional update matched no rows, i.e. the
	// record was not in the expected state.
	ErrConflict = errors.New("record not in expected state")
)

// Repository provides data access for all session history tables.
type Repository struct {
	client *ent.Client
}

// NewRepository creates a repository over an Ent client.
func NewRepository(client *ent.Client) *Repository {
	return &Repository{client: client}
}

// Client exposes the underlying Ent client for transaction composition.
func (r *Repository) Client() *ent.Client {
	return r.client
}
