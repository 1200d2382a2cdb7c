package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

func TestContext_EmptyBeforeFirstStage(t *testing.T) {
	ctx := NewContext(&ent.Session{AlertData: map[string]interface{}{"message": "hi"}})
	assert.Empty(t, ctx.PreviousStageContext())
}

func TestContext_FormatsStageOutputs(t *testing.T) {
	ctx := NewContext(&ent.Session{
		AlertType: "kubernetes",
		AlertData: map[string]interface{}{"message": "namespace stuck"},
	})
	ctx.AddStageOutput(0, "investigation", "exec-1", &stage.Result{
		Status:    "completed",
		FinalText: "pods stuck terminating",
	})
	ctx.AddStageOutput(1, "scan", "exec-2", &stage.Result{
		Status: "completed",
		Parallel: &stage.ParallelResult{
			Results: []stage.ChildResult{
				{ExecutionID: "c1", ParallelIndex: 1, Agent: "KubernetesAgent", Status: "completed", FinalText: "replica one"},
				{ExecutionID: "c2", ParallelIndex: 2, Agent: "LogAgent", Status: "failed", ErrorMessage: "llm unavailable"},
			},
			Metadata: stage.ParallelMetadata{SuccessfulCount: 1, FailedCount: 1, TotalCount: 2},
		},
	})

	out := ctx.PreviousStageContext()

	assert.Contains(t, out, "<!-- STAGE_CONTEXT_START -->")
	assert.Contains(t, out, "<!-- STAGE_CONTEXT_END -->")
	assert.Contains(t, out, "### Stage 1: investigation")
	assert.Contains(t, out, "pods stuck terminating")
	assert.Contains(t, out, "### Stage 2: scan")
	assert.Contains(t, out, "1/2 children succeeded")
	assert.Contains(t, out, "#### KubernetesAgent (1 of 2)")
	assert.Contains(t, out, "replica one")
	assert.Contains(t, out, "Failed: llm unavailable")
}

func TestFormatAlertData(t *testing.T) {
	t.Run("single message key passes through as text", func(t *testing.T) {
		out := formatAlertData(map[string]interface{}{"message": "disk full on node-3"})
		assert.Equal(t, "disk full on node-3", out)
	})

	t.Run("structured payloads render as JSON", func(t *testing.T) {
		out := formatAlertData(map[string]interface{}{
			"namespace": "prod",
			"severity":  "critical",
		})
		require.Contains(t, out, `"namespace": "prod"`)
		require.Contains(t, out, `"severity": "critical"`)
	})
}
