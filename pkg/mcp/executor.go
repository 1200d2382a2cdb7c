package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
	"github.com/tarsy-ai/tarsy/pkg/masking"
)

// Compile-time check that ToolExecutor implements agent.ToolExecutor.
var _ agent.ToolExecutor = (*ToolExecutor)(nil)

// ToolExecutor implements agent.ToolExecutor backed by the shared MCP
// session pool. One executor is created per stage execution; it carries the
// execution identity so every server call is recorded as an MCP interaction
// through the hook manager.
type ToolExecutor struct {
	client *Client
	hooks  *hooks.Manager
	masker *masking.MaskingService // nil disables masking

	sessionID        string
	stageExecutionID string

	// Server IDs this executor may talk to (the agent's allowed set).
	serverIDs []string
}

// NewToolExecutor creates an executor scoped to one stage execution.
func NewToolExecutor(
	client *Client,
	hookMgr *hooks.Manager,
	masker *masking.MaskingService,
	sessionID, stageExecutionID string,
	serverIDs []string,
) *ToolExecutor {
	return &ToolExecutor{
		client:           client,
		hooks:            hookMgr,
		masker:           masker,
		sessionID:        sessionID,
		stageExecutionID: stageExecutionID,
		serverIDs:        serverIDs,
	}
}

// Execute runs a tool call via MCP.
//
// Flow:
//  1. Normalize tool name (server__tool → server.tool for native tool calling)
//  2. Split and validate the server.tool name against the allowed servers
//  3. Parse the Arguments string into map[string]any
//  4. Call the pool with the per-call timeout
//  5. Mask the result per the server's masking policy
//  6. Record the interaction (start/end/duration, success or error) via hooks
//
// Validation and execution failures are returned inside ToolResult with
// IsError set, not as Go errors, so the controller can feed them back to the
// LLM as observations.
func (e *ToolExecutor) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	name := NormalizeToolName(call.Name)

	serverID, toolName, err := e.resolveToolCall(name)
	if err != nil {
		return &agent.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: err.Error(),
			IsError: true,
		}, nil
	}

	params, err := ParseActionInput(call.Arguments)
	if err != nil {
		return &agent.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("Failed to parse tool arguments: %s", err),
			IsError: true,
		}, nil
	}

	hookCtx := e.hooks.StartMCPInteraction(&history.MCPInteractionRecord{
		SessionID:         e.sessionID,
		StageExecutionID:  e.stageExecutionID,
		ServerName:        serverID,
		CommunicationType: mcpinteraction.CommunicationTypeToolCall,
		ToolName:          toolName,
		ToolArguments:     params,
		StepDescription:   fmt.Sprintf("Call %s.%s", serverID, toolName),
	})

	result, err := e.client.CallTool(ctx, serverID, toolName, params)
	if err != nil {
		hookCtx.Fail(ctx, err)
		return &agent.ToolResult{
			CallID:   call.ID,
			Name:     call.Name,
			Content:  fmt.Sprintf("MCP tool execution failed: %s", err),
			IsError:  true,
			TimedOut: IsTimeout(err),
		}, nil
	}

	content := extractTextContent(result)
	if e.masker != nil {
		content = e.masker.MaskString(content, serverID)
	}

	// Stored copy is truncated (the dashboard renders it); the LLM sees the
	// full masked output.
	rec := hookCtx.Record()
	rec.ToolResult = e.maskedResultMap(TruncateForStorage(content), serverID)
	if result.IsError {
		hookCtx.Fail(ctx, fmt.Errorf("tool %s.%s returned an error", serverID, toolName))
	} else {
		hookCtx.Complete(ctx)
	}

	return &agent.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: content,
		IsError: result.IsError,
	}, nil
}

// ListTools returns all available tools from the executor's servers, with
// server-prefixed names (e.g., "kubernetes-server.get_pods"). Each server
// listing is recorded as a tool_list interaction.
func (e *ToolExecutor) ListTools(ctx context.Context) ([]agent.ToolDefinition, error) {
	var allTools []agent.ToolDefinition

	for _, serverID := range e.serverIDs {
		hookCtx := e.hooks.StartMCPInteraction(&history.MCPInteractionRecord{
			SessionID:         e.sessionID,
			StageExecutionID:  e.stageExecutionID,
			ServerName:        serverID,
			CommunicationType: mcpinteraction.CommunicationTypeToolList,
			StepDescription:   fmt.Sprintf("List tools on %s", serverID),
		})

		tools, err := e.client.ListTools(ctx, serverID)
		if err != nil {
			hookCtx.Fail(ctx, err)
			// Partial tools are better than none
			slog.Warn("Failed to list tools from MCP server",
				"server", serverID, "error", err)
			continue
		}

		hookCtx.Record().AvailableTools = availableToolsMap(tools)
		hookCtx.Complete(ctx)

		for _, tool := range tools {
			allTools = append(allTools, agent.ToolDefinition{
				Name:             fmt.Sprintf("%s.%s", serverID, tool.Name),
				Description:      tool.Description,
				ParametersSchema: marshalSchema(tool.InputSchema),
			})
		}
	}

	if len(allTools) == 0 {
		return nil, nil
	}
	return allTools, nil
}

// Close releases per-execution resources. The session pool is shared across
// executions and owned by the process, so there is nothing to tear down.
func (e *ToolExecutor) Close() error { return nil }

// resolveToolCall validates a tool call against the executor's configuration.
func (e *ToolExecutor) resolveToolCall(name string) (serverID, toolName string, err error) {
	serverID, toolName, err = SplitToolName(name)
	if err != nil {
		return "", "", err
	}

	if !slices.Contains(e.serverIDs, serverID) {
		return "", "", fmt.Errorf(
			"MCP server %q is not available for this execution. "+
				"Available servers: %s", serverID, strings.Join(e.serverIDs, ", "))
	}

	return serverID, toolName, nil
}

// maskedResultMap wraps tool output for persistence, masked per the
// server's policy.
func (e *ToolExecutor) maskedResultMap(content, serverID string) map[string]interface{} {
	result := map[string]interface{}{"result": content}
	if e.masker == nil {
		return result
	}
	return e.masker.MaskResponse(result, serverID)
}

// availableToolsMap converts a tool listing to the JSON shape stored on
// tool_list interactions.
func availableToolsMap(tools []*mcpsdk.Tool) map[string]interface{} {
	names := make([]interface{}, 0, len(tools))
	for _, t := range tools {
		names = append(names, map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
		})
	}
	return map[string]interface{}{"tools": names}
}

// extractTextContent extracts text from MCP CallToolResult.
// Concatenates all TextContent items. Non-text content (images, embedded
// resources) is logged at debug level and skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("MCP tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

// marshalSchema serializes a tool's InputSchema to a JSON string.
func marshalSchema(schema any) string {
	if schema == nil {
		return ""
	}
	data, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("Failed to marshal tool input schema", "error", err)
		return ""
	}
	return string(data)
}
