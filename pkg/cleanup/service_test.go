package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/test/util"
)

func setupRepo(t *testing.T) (*ent.Client, *history.Repository) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return client, history.NewRepository(client)
}

func createSession(t *testing.T, repo *history.Repository) string {
	t.Helper()
	sess, err := repo.CreateSession(context.Background(), &history.CreateSessionRequest{
		SessionID: uuid.NewString(),
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "test"},
		ChainID:   "kubernetes-chain",
	})
	require.NoError(t, err)
	return sess.ID
}

func completeSessionAt(t *testing.T, repo *history.Repository, sessionID string, completedAt time.Time) {
	t.Helper()
	err := repo.Client().Session.UpdateOneID(sessionID).
		SetStatus(session.StatusCompleted).
		SetCompletedAtUs(completedAt.UnixMicro()).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestService_DeletesOldCompletedSessions(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	oldID := createSession(t, repo)
	completeSessionAt(t, repo, oldID, time.Now().Add(-400*24*time.Hour))
	recentID := createSession(t, repo)
	completeSessionAt(t, repo, recentID, time.Now().Add(-24*time.Hour))

	svc := NewService(&config.RetentionConfig{
		SessionRetentionDays: 365,
		EventTTL:             time.Hour,
		CleanupInterval:      time.Hour,
	}, repo)
	svc.runAll(ctx)

	_, err := repo.GetSession(ctx, oldID)
	assert.ErrorIs(t, err, history.ErrNotFound)

	_, err = repo.GetSession(ctx, recentID)
	assert.NoError(t, err)
}

func TestService_KeepsNonTerminalSessions(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	pendingID := createSession(t, repo)

	// Retention of zero days makes every terminal session eligible; the
	// pending session must still survive.
	svc := NewService(&config.RetentionConfig{
		SessionRetentionDays: 0,
		EventTTL:             time.Hour,
		CleanupInterval:      time.Hour,
	}, repo)
	svc.runAll(ctx)

	_, err := repo.GetSession(ctx, pendingID)
	assert.NoError(t, err)
}

func TestService_StartStop(t *testing.T) {
	_, repo := setupRepo(t)

	svc := NewService(&config.RetentionConfig{
		SessionRetentionDays: 365,
		EventTTL:             time.Hour,
		CleanupInterval:      time.Hour,
	}, repo)
	svc.Start(context.Background())
	svc.Stop()
}
