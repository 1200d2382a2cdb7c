package agent

import (
	"context"
	"fmt"

	"github.com/tarsy-ai/tarsy/pkg/history"
)

// ToolCall is a tool invocation requested by the LLM, either parsed from
// ReAct text or received as a native tool call.
type ToolCall = history.ToolCall

// ToolExecutor abstracts tool/MCP execution for iteration controllers.
type ToolExecutor interface {
	// Execute runs a single tool call and returns the result. Execution
	// failures are reported inside ToolResult (IsError), not as Go errors.
	Execute(ctx context.Context, call ToolCall) (*ToolResult, error)

	// ListTools returns available tool definitions for the current
	// execution. Returns nil if no tools are configured.
	ListTools(ctx context.Context) ([]ToolDefinition, error)

	// Close releases resources (MCP transports, subprocesses).
	Close() error
}

// ToolResult is the output of a tool execution.
type ToolResult struct {
	CallID   string // Matches ToolCall.ID
	Name     string // Tool name in server.tool format
	Content  string // Tool output text (masked)
	IsError  bool   // Whether the tool returned an error
	TimedOut bool   // Whether the call hit its per-call timeout
}

// StubToolExecutor returns canned responses for testing. The MCP-backed
// implementation is in pkg/mcp.
type StubToolExecutor struct {
	tools []ToolDefinition
}

// NewStubToolExecutor creates a stub executor with the given tool definitions.
func NewStubToolExecutor(tools []ToolDefinition) *StubToolExecutor {
	return &StubToolExecutor{tools: tools}
}

func (s *StubToolExecutor) Execute(_ context.Context, call ToolCall) (*ToolResult, error) {
	return &ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: fmt.Sprintf("[stub] Tool %q called with args: %s", call.Name, call.Arguments),
	}, nil
}

func (s *StubToolExecutor) ListTools(_ context.Context) ([]ToolDefinition, error) {
	return s.tools, nil
}

func (s *StubToolExecutor) Close() error { return nil }
