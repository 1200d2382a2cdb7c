// Package mcp maintains the pool of MCP (Model Context Protocol) server
// sessions and executes tool calls on them. Sessions are created lazily on
// first use; a background health monitor probes each server and posts
// operator-visible warnings for unreachable ones.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/version"
)

// Client manages one logical MCP session per configured server.
// Thread-safe: sessions are shared across concurrent stage executions,
// with tool calls serialized per server (MCP is request/response).
type Client struct {
	registry    *config.MCPServerRegistry
	toolTimeout time.Duration

	mu            sync.RWMutex
	sessions      map[string]*mcpsdk.ClientSession // serverID → session
	clients       map[string]*mcpsdk.Client        // serverID → client (for reconnection)
	failedServers map[string]string                // serverID → error message

	// Tool cache, replaced by the health monitor on each successful probe.
	toolCache   map[string][]*mcpsdk.Tool
	toolCacheMu sync.RWMutex

	// Per-server mutex serializing session (re)initialization.
	reinitMu sync.Map // serverID → *sync.Mutex

	// Per-server mutex serializing in-flight tool calls. One call_tool at a
	// time per server; excess calls queue.
	callMu sync.Map // serverID → *sync.Mutex

	logger *slog.Logger
}

// NewClient creates the session pool. toolTimeout bounds a single tool
// call; zero selects the default from settings.
func NewClient(registry *config.MCPServerRegistry, toolTimeout time.Duration) *Client {
	if toolTimeout <= 0 {
		toolTimeout = DefaultToolTimeout
	}
	return &Client{
		registry:      registry,
		toolTimeout:   toolTimeout,
		sessions:      make(map[string]*mcpsdk.ClientSession),
		clients:       make(map[string]*mcpsdk.Client),
		failedServers: make(map[string]string),
		toolCache:     make(map[string][]*mcpsdk.Tool),
		logger:        slog.Default(),
	}
}

// Initialize connects to the given servers eagerly. Servers that fail are
// recorded in failedServers and retried lazily on first use (and by the
// health monitor). The error return reports nothing today; connection
// failures are per-server, never fatal.
func (c *Client) Initialize(ctx context.Context, serverIDs []string) error {
	for _, serverID := range serverIDs {
		if err := c.ensureSession(ctx, serverID); err != nil {
			c.logger.Warn("MCP server failed to initialize",
				"server", serverID, "error", err)
		}
	}
	return nil
}

// ensureSession connects to a server if no session exists yet. Serialized
// per server so concurrent first calls create a single session.
func (c *Client) ensureSession(ctx context.Context, serverID string) error {
	if c.hasSession(serverID) {
		return nil
	}

	muI, _ := c.reinitMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	err := c.initializeServerLocked(ctx, serverID)
	if err != nil {
		c.mu.Lock()
		c.failedServers[serverID] = err.Error()
		c.mu.Unlock()
	}
	return err
}

// initializeServerLocked performs the actual server initialization.
// Caller must hold the per-server reinitMu lock.
func (c *Client) initializeServerLocked(ctx context.Context, serverID string) error {
	// Re-check under the per-server lock (no TOCTOU race)
	if c.hasSession(serverID) {
		return nil
	}

	serverCfg, err := c.registry.Get(serverID)
	if err != nil {
		return fmt.Errorf("server %q not found in registry: %w", serverID, err)
	}
	if !serverCfg.IsEnabled() {
		return fmt.Errorf("server %q is disabled", serverID)
	}

	transport, err := createTransport(serverCfg.Transport)
	if err != nil {
		return fmt.Errorf("failed to create transport for %q: %w", serverID, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it implements io.Closer to avoid leaking
		// stdio child processes on failed handshakes.
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to %q: %w", serverID, err)
	}

	c.mu.Lock()
	c.sessions[serverID] = session
	c.clients[serverID] = client
	delete(c.failedServers, serverID)
	c.mu.Unlock()

	c.logger.Info("MCP server connected", "server", serverID)
	return nil
}

// ListTools returns the tools of a server. Cached results are returned as
// deep copies so callers cannot mutate the shared cache.
func (c *Client) ListTools(ctx context.Context, serverID string) ([]*mcpsdk.Tool, error) {
	// Lock ordering: never acquire c.mu while holding toolCacheMu.
	c.toolCacheMu.RLock()
	if cached, ok := c.toolCache[serverID]; ok {
		c.toolCacheMu.RUnlock()
		return copyTools(cached), nil
	}
	c.toolCacheMu.RUnlock()

	if err := c.ensureSession(ctx, serverID); err != nil {
		return nil, err
	}
	session := c.session(serverID)
	if session == nil {
		return nil, fmt.Errorf("no session for server %q", serverID)
	}

	opCtx, cancel := context.WithTimeout(ctx, c.toolTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", serverID, err)
	}

	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	c.toolCacheMu.Lock()
	c.toolCache[serverID] = tools
	c.toolCacheMu.Unlock()

	return copyTools(tools), nil
}

// ListAllTools returns tools from all enabled servers, keyed by server ID.
// Partial results are returned if some servers fail; an error only when
// every server fails.
func (c *Client) ListAllTools(ctx context.Context) (map[string][]*mcpsdk.Tool, error) {
	serverIDs := c.registry.EnabledServerIDs()

	result := make(map[string][]*mcpsdk.Tool)
	var lastErr error
	for _, id := range serverIDs {
		tools, err := c.ListTools(ctx, id)
		if err != nil {
			lastErr = err
			c.logger.Warn("Failed to list tools from MCP server",
				"server", id, "error", err)
			continue
		}
		result[id] = tools
	}

	if len(result) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all servers failed to list tools: %w", lastErr)
	}
	return result, nil
}

// CallTool executes a tool call on the specified server with the per-call
// timeout. Calls to the same server are serialized. Transport failures get
// one retry after a jittered backoff, recreating the session when needed.
func (c *Client) CallTool(ctx context.Context, serverID, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	if err := c.ensureSession(ctx, serverID); err != nil {
		return nil, err
	}

	muI, _ := c.callMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	params := &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	}

	result, err := c.callToolOnce(ctx, serverID, params)
	if err == nil {
		return result, nil
	}

	action := ClassifyError(err)
	if action == NoRetry {
		return nil, err
	}

	c.logger.Info("MCP call failed, retrying",
		"server", serverID, "tool", toolName,
		"action", action, "error", err)

	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if action == RetryNewSession {
		if err := c.recreateSession(ctx, serverID); err != nil {
			return nil, fmt.Errorf("session recreation failed for %q: %w", serverID, err)
		}
	}

	result, err = c.callToolOnce(ctx, serverID, params)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %q.%s: %w", serverID, toolName, err)
	}
	return result, nil
}

// callToolOnce performs a single CallTool attempt.
func (c *Client) callToolOnce(ctx context.Context, serverID string, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	session := c.session(serverID)
	if session == nil {
		return nil, fmt.Errorf("no session for server %q", serverID)
	}

	opCtx, cancel := context.WithTimeout(ctx, c.toolTimeout)
	defer cancel()

	return session.CallTool(opCtx, params)
}

// recreateSession tears down and recreates the session for a server.
func (c *Client) recreateSession(ctx context.Context, serverID string) error {
	muI, _ := c.reinitMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	c.mu.Lock()
	if session, exists := c.sessions[serverID]; exists {
		_ = session.Close()
		delete(c.sessions, serverID)
		delete(c.clients, serverID)
	}
	c.mu.Unlock()

	c.InvalidateToolCache(serverID)

	reinitCtx, cancel := context.WithTimeout(ctx, ReinitTimeout)
	defer cancel()

	err := c.initializeServerLocked(reinitCtx, serverID)
	if err != nil {
		c.mu.Lock()
		c.failedServers[serverID] = err.Error()
		c.mu.Unlock()
	}
	return err
}

// Close shuts down all sessions and transports.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for id, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", id, err)
		}
	}

	c.sessions = make(map[string]*mcpsdk.ClientSession)
	c.clients = make(map[string]*mcpsdk.Client)
	c.failedServers = make(map[string]string)

	// Lock ordering note: mu → toolCacheMu is safe because no path holds
	// toolCacheMu while acquiring mu.
	c.toolCacheMu.Lock()
	c.toolCache = make(map[string][]*mcpsdk.Tool)
	c.toolCacheMu.Unlock()

	return firstErr
}

// InvalidateToolCache removes the cached tool list for a server, forcing
// the next ListTools call to probe the server.
func (c *Client) InvalidateToolCache(serverID string) {
	c.toolCacheMu.Lock()
	delete(c.toolCache, serverID)
	c.toolCacheMu.Unlock()
}

// HasSession reports whether a server has an active session.
func (c *Client) HasSession(serverID string) bool {
	return c.hasSession(serverID)
}

func (c *Client) hasSession(serverID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.sessions[serverID]
	return exists
}

func (c *Client) session(serverID string) *mcpsdk.ClientSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessions[serverID]
}

// FailedServers returns a copy of the map of servers whose last
// initialization attempt failed.
func (c *Client) FailedServers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.failedServers))
	for k, v := range c.failedServers {
		result[k] = v
	}
	return result
}

// copyTools returns deep copies of the cached tool structs so callers
// cannot mutate shared cache state.
func copyTools(tools []*mcpsdk.Tool) []*mcpsdk.Tool {
	out := make([]*mcpsdk.Tool, len(tools))
	for i, t := range tools {
		cp := *t
		out[i] = &cp
	}
	return out
}
