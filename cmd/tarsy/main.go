// Tarsy server — HTTP API, queue workers, and the session processing
// pipeline behind them.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/agent/prompt"
	"github.com/tarsy-ai/tarsy/pkg/alert"
	"github.com/tarsy-ai/tarsy/pkg/api"
	"github.com/tarsy-ai/tarsy/pkg/chain"
	"github.com/tarsy-ai/tarsy/pkg/cleanup"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/database"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
	"github.com/tarsy-ai/tarsy/pkg/masking"
	"github.com/tarsy-ai/tarsy/pkg/mcp"
	"github.com/tarsy-ai/tarsy/pkg/queue"
	"github.com/tarsy-ai/tarsy/pkg/runbook"
	"github.com/tarsy-ai/tarsy/pkg/session"
	"github.com/tarsy-ai/tarsy/pkg/slack"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting tarsy",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// Configuration: any error here is fatal; configuration errors never
	// surface once sessions are running.
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// Database: connect, migrate, build the repository.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Database ready", "backend", dbClient.Backend())

	repo := history.NewRepository(dbClient.Client)

	// Event bus: publisher writes rows (+ NOTIFY on Postgres), the
	// listener feeds the WebSocket connection manager, catchup reads the
	// rows back by id.
	eventPublisher := events.NewEventPublisher(dbClient.DB(), dbClient.Backend())
	connManager := events.NewConnectionManager(events.NewRepositoryAdapter(repo), 10*time.Second)

	var listener events.Listener
	if dbClient.Backend() == config.DatabaseBackendPostgres {
		listener = events.NewNotifyListener(dbConfig.DSN(), connManager)
	} else {
		listener = events.NewPollingListener(dbClient.DB(), connManager)
	}
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	connManager.SetListener(listener)
	slog.Info("Event bus ready")

	// Masking + hooks: every LLM/MCP interaction is persisted and
	// published through the hook manager; stage transitions go through it
	// in critical mode.
	masker := masking.NewMaskingService(cfg.MCPServerRegistry, masking.AlertMaskingConfig{
		Enabled:      cfg.Defaults.AlertMasking.Enabled,
		PatternGroup: cfg.Defaults.AlertMasking.PatternGroup,
	})

	hookMgr := hooks.NewManager()
	hooks.RegisterHistoryHooks(hookMgr, repo)
	hooks.RegisterEventHooks(hookMgr, eventPublisher)

	// MCP: shared session pool plus the health monitor that keeps the
	// tool cache warm and the unreachable-server warnings current.
	mcpClient := mcp.NewClient(cfg.MCPServerRegistry, cfg.Settings.MCPToolTimeout)
	defer func() {
		if err := mcpClient.Close(); err != nil {
			slog.Error("Error closing MCP client", "error", err)
		}
	}()

	healthMonitor := mcp.NewHealthMonitor(mcpClient, cfg.MCPServerRegistry, repo, cfg.Settings.MCPHealthInterval)
	healthMonitor.Start(ctx)
	defer healthMonitor.Stop()

	executorFactory := mcp.NewExecutorFactory(mcpClient, hookMgr, masker)

	// LLM sidecar client. grpc dials lazily; the first Generate call
	// establishes the connection.
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := agent.NewGRPCLLMClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	// Chain execution: stage manager, prompt builder, the executor, and
	// the alert orchestrator on top.
	registry := session.NewRegistry()
	stageMgr := stage.NewManager(repo, hookMgr)
	prompts := prompt.NewBuilder(cfg.MCPServerRegistry)
	executor := chain.NewExecutor(cfg, stageMgr, repo, llmClient, prompts, executorFactory, hookMgr, registry, eventPublisher)

	githubToken := ""
	if cfg.GitHub.TokenEnv != "" {
		githubToken = os.Getenv(cfg.GitHub.TokenEnv)
	}
	runbooks := runbook.NewService(cfg.Runbooks, githubToken, cfg.Defaults.Runbook)

	alertService := alert.NewService(cfg, repo, executor, runbooks, eventPublisher, masker, podID)

	// Worker pool claims pending sessions and runs them through the
	// alert service. The pool is also the launcher for resumed sessions.
	pool := queue.NewPool(cfg.Queue, repo, alertService, registry, podID)
	alertService.SetLauncher(pool)
	if cfg.Slack.Enabled {
		notifier := slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.Slack.DashboardURL,
		})
		if notifier != nil {
			slog.Info("Slack notifications enabled", "channel", cfg.Slack.Channel)
		} else {
			slog.Warn("Slack enabled but token or channel missing, notifications disabled")
		}
		pool.SetNotifier(notifier)
	}
	pool.Start(ctx)

	orphans := queue.NewOrphanDetector(cfg.Queue, repo, eventPublisher, podID)
	orphans.Start(ctx)
	defer orphans.Stop()

	retention := cleanup.NewService(cfg.Retention, repo)
	retention.Start(ctx)
	defer retention.Stop()

	httpServer := api.NewServer(cfg, alertService, repo, registry, pool, eventPublisher, runbooks, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Tarsy started", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop accepting work, drain in-flight sessions up
	// to the configured bound, then stop the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete sessions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
