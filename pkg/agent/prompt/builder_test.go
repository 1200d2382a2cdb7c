package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

func testExecContext() *agent.ExecutionContext {
	return &agent.ExecutionContext{
		SessionID:        "session-1",
		StageExecutionID: "exec-1",
		StageName:        "investigation",
		AgentName:        "KubernetesAgent",
		AlertType:        "kubernetes",
		AlertData:        "namespace superman-dev stuck in Terminating",
		RunbookContent:   "# Namespace Terminating\nCheck finalizers first.",
		Config: &agent.ResolvedAgentConfig{
			AgentName:  "KubernetesAgent",
			MCPServers: []string{"kubernetes"},
		},
	}
}

func testRegistry() *config.MCPServerRegistry {
	return config.NewMCPServerRegistry(map[string]config.MCPServerConfig{
		"kubernetes": {
			Instructions: "For Kubernetes operations: prefer read-only queries.",
		},
	})
}

func TestBuilder_ReActSystemPrompt(t *testing.T) {
	b := NewBuilder(testRegistry())
	tools := []agent.ToolDefinition{
		{Name: "kubernetes.get_pods", Description: "List pods"},
	}

	out := b.BuildReActSystemPrompt(testExecContext(), tools)

	assert.Contains(t, out, "## General SRE Agent Instructions")
	assert.Contains(t, out, "## kubernetes Server Instructions")
	assert.Contains(t, out, "prefer read-only queries")
	assert.Contains(t, out, "## Response Format")
	assert.Contains(t, out, "Action Input:")
	assert.Contains(t, out, "Final Answer:")
	assert.Contains(t, out, "NEVER write the Observation yourself")
	assert.Contains(t, out, "kubernetes.get_pods")
}

func TestBuilder_ReActSystemPrompt_CustomInstructions(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecContext()
	execCtx.Config.CustomInstructions = "Focus on namespace lifecycle issues."

	out := b.BuildReActSystemPrompt(execCtx, nil)

	assert.Contains(t, out, "## Agent-Specific Instructions")
	assert.Contains(t, out, "Focus on namespace lifecycle issues.")

	// Layering order: general → server → custom.
	general := strings.Index(out, "General SRE Agent Instructions")
	server := strings.Index(out, "kubernetes Server Instructions")
	custom := strings.Index(out, "Agent-Specific Instructions")
	assert.Less(t, general, server)
	assert.Less(t, server, custom)
}

func TestBuilder_ReActInitialPrompt(t *testing.T) {
	b := NewBuilder(testRegistry())

	out := b.BuildReActInitialPrompt(testExecContext())

	assert.Contains(t, out, "## Alert Details")
	assert.Contains(t, out, "namespace superman-dev stuck in Terminating")
	assert.Contains(t, out, "## Runbook Content")
	assert.Contains(t, out, "Check finalizers first.")
	assert.Contains(t, out, "This is the first stage of analysis.")
	assert.Contains(t, out, "## Your Task")
	assert.Contains(t, out, "Root cause analysis")
}

func TestBuilder_ReActInitialPrompt_WithChainContext(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecContext()
	execCtx.PreviousStageContext = "### Stage: triage\nSuspected stuck finalizer."

	out := b.BuildReActInitialPrompt(execCtx)

	assert.Contains(t, out, "## Previous Stage Data")
	assert.Contains(t, out, "Suspected stuck finalizer.")
	assert.NotContains(t, out, "This is the first stage of analysis.")
}

func TestBuilder_ContinuationPrompt(t *testing.T) {
	b := NewBuilder(nil)

	out := b.BuildContinuationPrompt()

	assert.Contains(t, out, "Please specify what Action")
	assert.True(t, strings.HasPrefix(out, "Observation:"))
}

func TestBuilder_ForcedConclusionPrompt(t *testing.T) {
	b := NewBuilder(nil)

	out := b.BuildForcedConclusionPrompt(6)

	assert.Contains(t, out, "investigation iteration limit (6 iterations)")
	assert.Contains(t, out, "Final Answer:")
	assert.Contains(t, out, "Do NOT take any further Action.")
}

func TestBuilder_NativeForcedConclusionPrompt(t *testing.T) {
	b := NewBuilder(nil)

	out := b.BuildNativeForcedConclusionPrompt(4)

	assert.Contains(t, out, "investigation iteration limit (4 iterations)")
	assert.Contains(t, out, "Do NOT call any further tools.")
	assert.NotContains(t, out, "Final Answer:")
}

func TestBuilder_FinalAnalysisMessages(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecContext()
	execCtx.PreviousStageContext = "### Stage: investigation\nFinalizer kubernetes.io/pv-protection stuck."
	execCtx.Config.CustomInstructions = "Keep the analysis short."

	msgs := b.BuildFinalAnalysisMessages(execCtx)

	require.Len(t, msgs, 2)
	assert.Equal(t, history.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "## Final Analysis Instructions")
	assert.Contains(t, msgs[0].Content, "Keep the analysis short.")
	assert.NotContains(t, msgs[0].Content, "Response Format", "final analysis is not a tool loop")

	assert.Equal(t, history.RoleUser, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "Finalizer kubernetes.io/pv-protection stuck.")
	assert.Contains(t, msgs[1].Content, "comprehensive final analysis")
}

func TestBuilder_NativePrompts(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecContext()

	system := b.BuildNativeSystemPrompt(execCtx)
	assert.Contains(t, system, "## General SRE Agent Instructions")
	assert.Contains(t, system, "kubernetes Server Instructions")
	// Tools travel in the provider request for native loops.
	assert.NotContains(t, system, "## Response Format")
	assert.NotContains(t, system, "## Available Tools")

	user := b.BuildNativeInitialPrompt(execCtx)
	assert.Contains(t, user, "## Alert Details")
	assert.Contains(t, user, "## Your Task")
}

func TestBuilder_ExecutiveSummaryPrompts(t *testing.T) {
	b := NewBuilder(nil)

	system := b.BuildExecutiveSummarySystemPrompt()
	assert.Contains(t, system, "executive summaries")

	user := b.BuildExecutiveSummaryUserPrompt("Root cause: stuck finalizer removed; namespace deleted.")
	assert.Contains(t, user, "Root cause: stuck finalizer removed; namespace deleted.")
	assert.Contains(t, user, "1-4 line executive summary")
}

func TestBuilder_NilRegistry(t *testing.T) {
	b := NewBuilder(nil)

	out := b.BuildReActSystemPrompt(testExecContext(), nil)

	assert.Contains(t, out, "## General SRE Agent Instructions")
	assert.NotContains(t, out, "Server Instructions")
}
