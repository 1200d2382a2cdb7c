package mcp

import (
	"context"
	"sync"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// fakeWarningStore records warning upserts and clears in memory.
type fakeWarningStore struct {
	mu      sync.Mutex
	active  map[string]string // "category/serverID" → message
	upserts int
	clears  int
}

func newFakeWarningStore() *fakeWarningStore {
	return &fakeWarningStore{active: make(map[string]string)}
}

func (f *fakeWarningStore) UpsertWarning(_ context.Context, category, serverID, message, _ string) (*ent.Warning, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active[category+"/"+serverID] = message
	f.upserts++
	return &ent.Warning{Category: category, ServerID: serverID, Message: message}, nil
}

func (f *fakeWarningStore) ClearWarning(_ context.Context, category, serverID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, category+"/"+serverID)
	f.clears++
	return nil
}

func (f *fakeWarningStore) message(category, serverID string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, ok := f.active[category+"/"+serverID]
	return msg, ok
}

func enabledStdioServer(command string) config.MCPServerConfig {
	return config.MCPServerConfig{
		Transport: config.TransportConfig{
			Type:    config.TransportTypeStdio,
			Command: command,
		},
	}
}

func TestHealthMonitor_UnreachableServerPostsWarning(t *testing.T) {
	// A server whose transport cannot be created: probe and reinit both fail.
	registry := config.NewMCPServerRegistry(map[string]config.MCPServerConfig{
		"broken": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio}, // no command
		},
	})
	client := NewClient(registry, 0)
	store := newFakeWarningStore()
	monitor := NewHealthMonitor(client, registry, store, time.Minute)

	monitor.checkAll(context.Background())

	statuses := monitor.GetStatuses()
	require.Contains(t, statuses, "broken")
	assert.False(t, statuses["broken"].Healthy)
	assert.False(t, monitor.IsHealthy())

	msg, ok := store.message(history.WarningCategoryMCPInit, "broken")
	require.True(t, ok, "expected a warning for the unreachable server")
	assert.Equal(t, "MCP server broken is unreachable", msg)
}

func TestHealthMonitor_HealthyServerClearsWarning(t *testing.T) {
	registry := config.NewMCPServerRegistry(map[string]config.MCPServerConfig{
		"kubernetes": enabledStdioServer("echo"),
	})
	client := NewClient(registry, 0)

	ts := startTestServer(t, "kubernetes", map[string]mcpsdk.ToolHandler{
		"get_pods": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "ok"}}}, nil
		},
	})
	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "test"}, nil)
	session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
	require.NoError(t, err)
	client.InjectSession("kubernetes", sdkClient, session)
	t.Cleanup(func() { _ = client.Close() })

	store := newFakeWarningStore()
	// Simulate a warning left over from an earlier outage.
	_, err = store.UpsertWarning(context.Background(),
		history.WarningCategoryMCPInit, "kubernetes", "MCP server kubernetes is unreachable", "old")
	require.NoError(t, err)

	monitor := NewHealthMonitor(client, registry, store, time.Minute)
	monitor.checkAll(context.Background())

	statuses := monitor.GetStatuses()
	require.Contains(t, statuses, "kubernetes")
	assert.True(t, statuses["kubernetes"].Healthy)
	assert.Equal(t, 1, statuses["kubernetes"].ToolCount)
	assert.True(t, monitor.IsHealthy())

	_, ok := store.message(history.WarningCategoryMCPInit, "kubernetes")
	assert.False(t, ok, "warning should be cleared once the server responds")
}

func TestHealthMonitor_IsHealthy_NoStatuses(t *testing.T) {
	registry := config.NewMCPServerRegistry(nil)
	monitor := NewHealthMonitor(NewClient(registry, 0), registry, newFakeWarningStore(), time.Minute)

	assert.False(t, monitor.IsHealthy(), "no completed checks yet means not healthy")
}

func TestHealthMonitor_StartStop(t *testing.T) {
	registry := config.NewMCPServerRegistry(nil)
	monitor := NewHealthMonitor(NewClient(registry, 0), registry, newFakeWarningStore(), 10*time.Millisecond)

	ctx := context.Background()
	monitor.Start(ctx)
	monitor.Start(ctx) // second Start is a no-op
	time.Sleep(30 * time.Millisecond)
	monitor.Stop()

	// Restart after Stop must work.
	monitor.Start(ctx)
	monitor.Stop()
}

func TestHealthMonitor_DisabledServersSkipped(t *testing.T) {
	disabled := false
	registry := config.NewMCPServerRegistry(map[string]config.MCPServerConfig{
		"off": {
			Enabled:   &disabled,
			Transport: config.TransportConfig{Type: config.TransportTypeStdio}, // would fail if probed
		},
	})
	client := NewClient(registry, 0)
	store := newFakeWarningStore()
	monitor := NewHealthMonitor(client, registry, store, time.Minute)

	monitor.checkAll(context.Background())

	assert.Empty(t, monitor.GetStatuses())
	_, ok := store.message(history.WarningCategoryMCPInit, "off")
	assert.False(t, ok)
}
