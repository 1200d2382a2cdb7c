package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

func TestLLMInteractionContext_Complete(t *testing.T) {
	mgr := NewManager()
	var fired *history.LLMInteractionRecord
	mgr.RegisterLLMHook("capture", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		fired = rec
		return nil
	})

	ictx := mgr.StartLLMInteraction(&history.LLMInteractionRecord{
		SessionID:        "sess-1",
		StageExecutionID: "exec-1",
		Provider:         "google",
		ModelName:        "gemini-2.5-pro",
		InteractionType:  llminteraction.InteractionTypeInvestigation,
	})

	rec := ictx.Record()
	assert.NotEmpty(t, rec.InteractionID)
	assert.Positive(t, rec.StartTimeUs)

	rec.TotalTokens = 1500
	ictx.Complete(context.Background())

	require.NotNil(t, fired)
	assert.True(t, fired.Success)
	assert.Empty(t, fired.ErrorMessage)
	assert.GreaterOrEqual(t, fired.EndTimeUs, fired.StartTimeUs)
	assert.Equal(t, fired.StartTimeUs, fired.TimestampUs)
	assert.GreaterOrEqual(t, fired.DurationMs, 0)
	assert.Equal(t, 1500, fired.TotalTokens)
}

func TestLLMInteractionContext_Fail(t *testing.T) {
	mgr := NewManager()
	var fired *history.LLMInteractionRecord
	mgr.RegisterLLMHook("capture", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		fired = rec
		return nil
	})

	ictx := mgr.StartLLMInteraction(&history.LLMInteractionRecord{SessionID: "sess-1"})
	ictx.Fail(context.Background(), errors.New("LLM call timed out"))

	require.NotNil(t, fired)
	assert.False(t, fired.Success)
	assert.Equal(t, "LLM call timed out", fired.ErrorMessage)
}

func TestLLMInteractionContext_FinishesOnce(t *testing.T) {
	mgr := NewManager()
	calls := 0
	mgr.RegisterLLMHook("count", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		calls++
		return nil
	})

	ictx := mgr.StartLLMInteraction(&history.LLMInteractionRecord{SessionID: "sess-1"})
	ictx.Complete(context.Background())
	ictx.Fail(context.Background(), errors.New("late failure"))
	ictx.Complete(context.Background())

	assert.Equal(t, 1, calls)
}

func TestMCPInteractionContext_Fail(t *testing.T) {
	mgr := NewManager()
	var fired *history.MCPInteractionRecord
	mgr.RegisterMCPHook("capture", func(ctx context.Context, rec *history.MCPInteractionRecord) error {
		fired = rec
		return nil
	})

	ictx := mgr.StartMCPInteraction(&history.MCPInteractionRecord{
		SessionID:  "sess-1",
		ServerName: "kubernetes-server",
		ToolName:   "get_namespace",
	})
	ictx.Fail(context.Background(), errors.New("tool call timed out after 70s"))

	require.NotNil(t, fired)
	assert.NotEmpty(t, fired.RequestID)
	assert.False(t, fired.Success)
	assert.Equal(t, "tool call timed out after 70s", fired.ErrorMessage)
	assert.Equal(t, fired.StartTimeUs, fired.TimestampUs)
}

func TestInteractionHook_DisabledAfterConsecutiveFailures(t *testing.T) {
	mgr := NewManager()
	calls := 0
	mgr.RegisterLLMHook("flaky", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		calls++
		return errors.New("event bus down")
	})

	for i := 0; i < 8; i++ {
		ictx := mgr.StartLLMInteraction(&history.LLMInteractionRecord{SessionID: "sess-1"})
		ictx.Complete(context.Background())
	}

	// Disabled after the fifth consecutive failure; later interactions skip it.
	assert.Equal(t, 5, calls)
}

func TestInteractionHook_SuccessResetsFailureCount(t *testing.T) {
	mgr := NewManager()
	calls := 0
	mgr.RegisterLLMHook("recovering", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		calls++
		if calls == 5 {
			return nil // Recovers just before the disable threshold
		}
		return errors.New("transient failure")
	})

	for i := 0; i < 10; i++ {
		ictx := mgr.StartLLMInteraction(&history.LLMInteractionRecord{SessionID: "sess-1"})
		ictx.Complete(context.Background())
	}

	// 4 failures, 1 success (reset), then 5 more failures before disable.
	assert.Equal(t, 10, calls)
}

func TestInteractionHook_FailuresNeverPropagate(t *testing.T) {
	mgr := NewManager()
	mgr.RegisterLLMHook("broken", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		return errors.New("always fails")
	})
	var second *history.LLMInteractionRecord
	mgr.RegisterLLMHook("healthy", func(ctx context.Context, rec *history.LLMInteractionRecord) error {
		second = rec
		return nil
	})

	ictx := mgr.StartLLMInteraction(&history.LLMInteractionRecord{SessionID: "sess-1"})
	ictx.Complete(context.Background()) // Must not panic or propagate

	// The failing hook does not prevent later hooks from running.
	assert.NotNil(t, second)
}

func TestFireStageHooks_ErrorsPropagate(t *testing.T) {
	mgr := NewManager()
	hookErr := errors.New("event publish failed")
	mgr.RegisterStageHook("failing", func(ctx context.Context, ev *StageEvent) error {
		return hookErr
	})
	ran := false
	mgr.RegisterStageHook("after", func(ctx context.Context, ev *StageEvent) error {
		ran = true
		return nil
	})

	err := mgr.FireStageHooks(context.Background(), &StageEvent{
		Type:      "stage.started",
		Execution: &ent.StageExecution{ID: "exec-1", Status: stageexecution.StatusActive},
	})

	assert.ErrorIs(t, err, hookErr)
	// All stage hooks run even when an earlier one fails.
	assert.True(t, ran)
}

func TestFireStageHooks_NeverDisabled(t *testing.T) {
	mgr := NewManager()
	calls := 0
	mgr.RegisterStageHook("failing", func(ctx context.Context, ev *StageEvent) error {
		calls++
		return errors.New("still failing")
	})

	ev := &StageEvent{Type: "stage.completed", Execution: &ent.StageExecution{ID: "exec-1"}}
	for i := 0; i < 8; i++ {
		assert.Error(t, mgr.FireStageHooks(context.Background(), ev))
	}

	// Stage hooks are critical: they keep firing no matter how often they fail.
	assert.Equal(t, 8, calls)
}
