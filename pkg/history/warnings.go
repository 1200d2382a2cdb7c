package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/warning"
)

// Warning categories. Stored on the warning row and used by the API to
// group operator-visible conditions.
const (
	// WarningCategoryMCPInit — an MCP server cannot be reached or
	// initialized.
	WarningCategoryMCPInit = "mcp_initialization"

	// WarningCategoryRunbook — runbook downloads are failing.
	WarningCategoryRunbook = "runbook_download"
)

// UpsertWarning records an operator-visible warning. A warning is keyed by
// (category, server_id); posting again replaces the previous row so the
// warnings list stays one-row-per-condition.
func (r *Repository) UpsertWarning(ctx context.Context, category, serverID, message, details string) (*ent.Warning, error) {
	_, err := r.client.Warning.Delete().
		Where(
			warning.CategoryEQ(category),
			warning.ServerIDEQ(serverID),
		).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to replace warning: %w", err)
	}

	created, err := r.client.Warning.Create().
		SetID(uuid.NewString()).
		SetCategory(category).
		SetServerID(serverID).
		SetMessage(message).
		SetDetails(details).
		SetCreatedAtUs(NowMicros()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create warning: %w", err)
	}
	return created, nil
}

// ClearWarning removes the warning for (category, server_id) if present.
func (r *Repository) ClearWarning(ctx context.Context, category, serverID string) error {
	_, err := r.client.Warning.Delete().
		Where(
			warning.CategoryEQ(category),
			warning.ServerIDEQ(serverID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear warning: %w", err)
	}
	return nil
}

// ListWarnings returns all active warnings, newest first.
func (r *Repository) ListWarnings(ctx context.Context) ([]*ent.Warning, error) {
	warnings, err := r.client.Warning.Query().
		Order(ent.Desc(warning.FieldCreatedAtUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list warnings: %w", err)
	}
	return warnings, nil
}
