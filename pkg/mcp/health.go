package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// WarningStore persists operator-visible warnings. Implemented by
// history.Repository.
type WarningStore interface {
	UpsertWarning(ctx context.Context, category, serverID, message, details string) (*ent.Warning, error)
	ClearWarning(ctx context.Context, category, serverID string) error
}

// HealthStatus captures the health check result for a single MCP server.
type HealthStatus struct {
	ServerID  string    `json:"server_id"`
	Healthy   bool      `json:"healthy"`
	LastCheck time.Time `json:"last_check"`
	Error     string    `json:"error,omitempty"`
	ToolCount int       `json:"tool_count"`
}

// HealthMonitor periodically probes every enabled MCP server on the shared
// session pool. An unreachable server gets one reinitialization attempt per
// cycle; if that also fails, a warning is posted to the warning store. The
// warning is cleared as soon as a probe succeeds.
type HealthMonitor struct {
	client   *Client
	registry *config.MCPServerRegistry
	warnings WarningStore

	checkInterval time.Duration
	probeTimeout  time.Duration

	// Current status per server
	statuses   map[string]*HealthStatus
	statusesMu sync.RWMutex

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewHealthMonitor creates a health monitor over the shared session pool.
// interval ≤ 0 selects the default.
func NewHealthMonitor(
	client *Client,
	registry *config.MCPServerRegistry,
	warnings WarningStore,
	interval time.Duration,
) *HealthMonitor {
	if interval <= 0 {
		interval = HealthInterval
	}
	return &HealthMonitor{
		client:        client,
		registry:      registry,
		warnings:      warnings,
		checkInterval: interval,
		probeTimeout:  HealthProbeTimeout,
		statuses:      make(map[string]*HealthStatus),
		logger:        slog.Default(),
	}
}

// Start launches the background health check loop.
// Calling Start on an already-running monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return // already started
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.loop(ctx)
}

// Stop gracefully shuts down the health monitor.
// After Stop returns, Start may be called again.
func (m *HealthMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		<-m.done
	}

	// Clear stale health data so a subsequent Start begins with a clean slate
	// and IsHealthy() doesn't return results for removed/changed servers.
	m.statusesMu.Lock()
	m.statuses = make(map[string]*HealthStatus)
	m.statusesMu.Unlock()

	// Reset so Start can be called again.
	m.cancel = nil
	m.done = nil
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	// Run first check immediately
	m.checkAll(ctx)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkAll(ctx)
		}
	}
}

func (m *HealthMonitor) checkAll(ctx context.Context) {
	for _, serverID := range m.registry.EnabledServerIDs() {
		m.checkServer(ctx, serverID)
		if ctx.Err() != nil {
			return
		}
	}
}

func (m *HealthMonitor) checkServer(ctx context.Context, serverID string) {
	// Drop the cached tool list so the probe exercises the connection
	// instead of returning stale cached data.
	m.client.InvalidateToolCache(serverID)

	probeCtx, probeCancel := context.WithTimeout(ctx, m.probeTimeout)
	defer probeCancel()

	tools, err := m.client.ListTools(probeCtx, serverID)
	if err != nil {
		m.logger.Debug("Health check failed, attempting reinitialize",
			"server", serverID, "error", err)

		// One reinitialization attempt per cycle, bounded.
		reconCtx, reconCancel := context.WithTimeout(ctx, m.probeTimeout)
		defer reconCancel()

		if reinitErr := m.client.recreateSession(reconCtx, serverID); reinitErr != nil {
			m.markUnreachable(ctx, serverID, err)
			return
		}

		// Retry after reinit with a fresh timeout context
		retryCtx, retryCancel := context.WithTimeout(ctx, m.probeTimeout)
		defer retryCancel()

		tools, err = m.client.ListTools(retryCtx, serverID)
		if err != nil {
			m.markUnreachable(ctx, serverID, err)
			return
		}
	}

	m.setStatus(serverID, true, "", len(tools))

	if err := m.warnings.ClearWarning(ctx, history.WarningCategoryMCPInit, serverID); err != nil {
		m.logger.Warn("Failed to clear MCP warning",
			"server", serverID, "error", err)
	}
}

// markUnreachable records the failure and posts the operator warning.
func (m *HealthMonitor) markUnreachable(ctx context.Context, serverID string, cause error) {
	m.setStatus(serverID, false, cause.Error(), 0)

	if _, err := m.warnings.UpsertWarning(ctx,
		history.WarningCategoryMCPInit,
		serverID,
		fmt.Sprintf("MCP server %s is unreachable", serverID),
		cause.Error(),
	); err != nil {
		m.logger.Warn("Failed to post MCP warning",
			"server", serverID, "error", err)
	}
}

func (m *HealthMonitor) setStatus(serverID string, healthy bool, errMsg string, toolCount int) {
	m.statusesMu.Lock()
	defer m.statusesMu.Unlock()
	m.statuses[serverID] = &HealthStatus{
		ServerID:  serverID,
		Healthy:   healthy,
		LastCheck: time.Now(),
		Error:     errMsg,
		ToolCount: toolCount,
	}
}

// GetStatuses returns the current health status of all monitored servers.
func (m *HealthMonitor) GetStatuses() map[string]*HealthStatus {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	result := make(map[string]*HealthStatus, len(m.statuses))
	for k, v := range m.statuses {
		cp := *v
		result[k] = &cp
	}
	return result
}

// IsHealthy returns true if all monitored servers are healthy.
// Returns false when no statuses exist yet (before first check completes).
func (m *HealthMonitor) IsHealthy() bool {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	if len(m.statuses) == 0 {
		return false
	}
	for _, s := range m.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}
