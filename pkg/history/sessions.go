package history

import (
	"context"
	"fmt"
	"time"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/session"
)

// terminalStatuses are the session statuses that end a lifecycle.
var terminalStatuses = []session.Status{
	session.StatusCompleted,
	session.StatusFailed,
	session.StatusCancelled,
}

// IsTerminalSessionStatus reports whether s ends the session lifecycle.
func IsTerminalSessionStatus(s session.Status) bool {
	for _, t := range terminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// CreateSession inserts a new session in pending status.
func (r *Repository) CreateSession(ctx context.Context, req *CreateSessionRequest) (*ent.Session, error) {
	create := r.client.Session.Create().
		SetID(req.SessionID).
		SetAlertType(req.AlertType).
		SetAlertData(req.AlertData).
		SetRunbookURL(req.RunbookURL).
		SetChainID(req.ChainID).
		SetStatus(session.StatusPending).
		SetCreatedAtUs(NowMicros())
	if req.ChainConfig != nil {
		create.SetChainConfig(req.ChainConfig)
	}
	if req.Author != "" {
		create.SetAuthor(req.Author)
	}
	if req.SlackMessageFingerprint != "" {
		create.SetSlackMessageFingerprint(req.SlackMessageFingerprint)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// GetSession returns a session by ID.
func (r *Repository) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	found, err := r.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return found, nil
}

// ListSessions returns a filtered, paginated session listing plus the total
// match count. Results are ordered newest first.
func (r *Repository) ListSessions(ctx context.Context, filters *SessionFilters) ([]*ent.Session, int, error) {
	query := r.client.Session.Query()

	if len(filters.Status) > 0 {
		query = query.Where(session.StatusIn(filters.Status...))
	}
	if filters.AlertType != "" {
		query = query.Where(session.AlertTypeEQ(filters.AlertType))
	}
	if filters.ChainID != "" {
		query = query.Where(session.ChainIDEQ(filters.ChainID))
	}
	if filters.CreatedAfterUs > 0 {
		query = query.Where(session.CreatedAtUsGTE(filters.CreatedAfterUs))
	}
	if filters.CreatedBeforeUs > 0 {
		query = query.Where(session.CreatedAtUsLT(filters.CreatedBeforeUs))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	sessions, err := query.
		Order(ent.Desc(session.FieldCreatedAtUs)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

// UpdateSessionStatus transitions a session's status. Terminal transitions
// stamp completed_at_us and clear the current-stage pointer; non-terminal
// ones leave both untouched.
func (r *Repository) UpdateSessionStatus(ctx context.Context, sessionID string, status session.Status, errorMessage string) (*ent.Session, error) {
	update := r.client.Session.UpdateOneID(sessionID).SetStatus(status)
	if IsTerminalSessionStatus(status) {
		update.SetCompletedAtUs(NowMicros()).
			ClearCurrentStageIndex().
			ClearCurrentStageExecutionID()
	}
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}
	return updated, nil
}

// ClaimNextPendingSession atomically claims the oldest pending session for
// podID: pending → in_progress with started_at_us and heartbeat stamped.
// Returns ErrNotFound when the queue is empty.
func (r *Repository) ClaimNextPendingSession(ctx context.Context, podID string) (*ent.Session, error) {
	candidate, err := r.client.Session.Query().
		Where(session.StatusEQ(session.StatusPending)).
		Order(ent.Asc(session.FieldCreatedAtUs)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no pending sessions", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query pending sessions: %w", err)
	}

	now := NowMicros()
	// Conditional update: another pod may have claimed it between the read
	// and the write. Zero rows affected means we lost the race.
	n, err := r.client.Session.Update().
		Where(
			session.IDEQ(candidate.ID),
			session.StatusEQ(session.StatusPending),
		).
		SetStatus(session.StatusInProgress).
		SetPodID(podID).
		SetStartedAtUs(now).
		SetLastInteractionAtUs(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: session %s already claimed", ErrConflict, candidate.ID)
	}
	return r.GetSession(ctx, candidate.ID)
}

// ClaimPausedSession atomically transitions a paused session back to
// in_progress for resumption. started_at_us is left untouched.
func (r *Repository) ClaimPausedSession(ctx context.Context, sessionID, podID string) (*ent.Session, error) {
	n, err := r.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusEQ(session.StatusPaused),
		).
		SetStatus(session.StatusInProgress).
		SetPodID(podID).
		SetLastInteractionAtUs(NowMicros()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim paused session: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: session %s is not paused", ErrConflict, sessionID)
	}
	return r.GetSession(ctx, sessionID)
}

// SetSessionCurrentStage updates the session's current-stage pointer.
func (r *Repository) SetSessionCurrentStage(ctx context.Context, sessionID string, stageIndex int, executionID string) error {
	err := r.client.Session.UpdateOneID(sessionID).
		SetCurrentStageIndex(stageIndex).
		SetCurrentStageExecutionID(executionID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return fmt.Errorf("failed to set current stage: %w", err)
	}
	return nil
}

// SetSessionRunbook stores the downloaded runbook content.
func (r *Repository) SetSessionRunbook(ctx context.Context, sessionID, runbook string) error {
	if err := r.client.Session.UpdateOneID(sessionID).SetRunbook(runbook).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store runbook: %w", err)
	}
	return nil
}

// SetSessionAnalysis persists the final Markdown report.
func (r *Repository) SetSessionAnalysis(ctx context.Context, sessionID, analysis string) error {
	if err := r.client.Session.UpdateOneID(sessionID).SetFinalAnalysis(analysis).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store final analysis: %w", err)
	}
	return nil
}

// SetSessionAnalysisSummary persists the executive summary.
func (r *Repository) SetSessionAnalysisSummary(ctx context.Context, sessionID, summary string) error {
	if err := r.client.Session.UpdateOneID(sessionID).SetFinalAnalysisSummary(summary).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store analysis summary: %w", err)
	}
	return nil
}

// TouchSession refreshes the session heartbeat.
func (r *Repository) TouchSession(ctx context.Context, sessionID string) error {
	if err := r.client.Session.UpdateOneID(sessionID).SetLastInteractionAtUs(NowMicros()).Exec(ctx); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// CleanupOrphanedSessions fails every in_progress session whose heartbeat is
// older than threshold. Returns the IDs transitioned.
func (r *Repository) CleanupOrphanedSessions(ctx context.Context, threshold time.Duration) ([]string, error) {
	cutoff := NowMicros() - threshold.Microseconds()

	orphans, err := r.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusInProgress),
			session.LastInteractionAtUsLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	ids := make([]string, 0, len(orphans))
	for _, s := range orphans {
		_, err := r.UpdateSessionStatus(ctx, s.ID, session.StatusFailed,
			"session orphaned: processing pod stopped heartbeating")
		if err != nil {
			return ids, err
		}
		ids = append(ids, s.ID)
	}
	return ids, nil
}

// FailSessionsForPod fails every in_progress session owned by podID.
// Called once at startup so a crashed pod's sessions don't stay stuck.
func (r *Repository) FailSessionsForPod(ctx context.Context, podID string) ([]string, error) {
	stuck, err := r.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusInProgress),
			session.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stuck sessions: %w", err)
	}

	ids := make([]string, 0, len(stuck))
	for _, s := range stuck {
		_, err := r.UpdateSessionStatus(ctx, s.ID, session.StatusFailed,
			"session interrupted by pod restart")
		if err != nil {
			return ids, err
		}
		ids = append(ids, s.ID)
	}
	return ids, nil
}

// DeleteSessionsOlderThan removes terminal sessions completed before
// cutoffUs. Interactions, stage executions, and events cascade.
func (r *Repository) DeleteSessionsOlderThan(ctx context.Context, cutoffUs int64) (int, error) {
	n, err := r.client.Session.Delete().
		Where(
			session.StatusIn(terminalStatuses...),
			session.CompletedAtUsLT(cutoffUs),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old sessions: %w", err)
	}
	return n, nil
}

// CountSessionsByStatus returns the number of sessions in the given status,
// optionally restricted to one pod.
func (r *Repository) CountSessionsByStatus(ctx context.Context, status session.Status, podID string) (int, error) {
	query := r.client.Session.Query().Where(session.StatusEQ(status))
	if podID != "" {
		query = query.Where(session.PodIDEQ(podID))
	}
	n, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}
