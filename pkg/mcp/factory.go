package mcp

import (
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
	"github.com/tarsy-ai/tarsy/pkg/masking"
)

// ExecutorFactory builds per-stage-execution tool executors over the shared
// session pool. The chain executor asks for one executor per stage run.
type ExecutorFactory struct {
	client *Client
	hooks  *hooks.Manager
	masker *masking.MaskingService
}

// NewExecutorFactory creates the factory. masker may be nil (masking
// disabled globally).
func NewExecutorFactory(client *Client, hookMgr *hooks.Manager, masker *masking.MaskingService) *ExecutorFactory {
	return &ExecutorFactory{
		client: client,
		hooks:  hookMgr,
		masker: masker,
	}
}

// CreateToolExecutor returns an executor scoped to one stage execution,
// restricted to the agent's allowed servers.
func (f *ExecutorFactory) CreateToolExecutor(sessionID, stageExecutionID string, serverIDs []string) agent.ToolExecutor {
	return NewToolExecutor(f.client, f.hooks, f.masker, sessionID, stageExecutionID, serverIDs)
}
