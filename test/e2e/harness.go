// Package e2e runs full-stack scenarios against the real processing
// pipeline: repository, event bus, hooks, chain executor, alert service,
// and worker pool on an in-memory SQLite database. Only the LLM and the
// MCP tool executors are test doubles.
package e2e

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/agent"
	"github.com/tarsy-ai/tarsy/pkg/agent/prompt"
	"github.com/tarsy-ai/tarsy/pkg/alert"
	"github.com/tarsy-ai/tarsy/pkg/chain"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/hooks"
	"github.com/tarsy-ai/tarsy/pkg/queue"
	"github.com/tarsy-ai/tarsy/pkg/session"
	"github.com/tarsy-ai/tarsy/pkg/stage"
)

const testRunbook = "# Runbook\n\nCheck pod status before concluding."

// staticRunbooks resolves every runbook URL to fixed content.
type staticRunbooks struct{}

func (staticRunbooks) Resolve(context.Context, string) (string, error) {
	return testRunbook, nil
}

// stubTools hands every stage the same canned kubernetes tool.
type stubTools struct{}

func (stubTools) CreateToolExecutor(_, _ string, _ []string) agent.ToolExecutor {
	return agent.NewStubToolExecutor([]agent.ToolDefinition{
		{Name: "kubernetes.get_pods", Description: "List pods"},
	})
}

// harness is the assembled stack for one scenario.
type harness struct {
	t        *testing.T
	repo     *history.Repository
	registry *session.Registry
	manager  *events.ConnectionManager
	alerts   *alert.Service
	pool     *queue.Pool
	llm      *mockLLM
}

// newHarness builds the full pipeline on an in-memory SQLite database and
// starts the worker pool. Everything is torn down when the test ends.
func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:e2e-%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	repo := history.NewRepository(entClient)
	publisher := events.NewEventPublisher(db, config.DatabaseBackendSQLite)
	manager := events.NewConnectionManager(events.NewRepositoryAdapter(repo), 5*time.Second)
	listener := events.NewPollingListener(db, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	hookMgr := hooks.NewManager()
	hooks.RegisterHistoryHooks(hookMgr, repo)
	hooks.RegisterEventHooks(hookMgr, publisher)

	registry := session.NewRegistry()
	stageMgr := stage.NewManager(repo, hookMgr)
	prompts := prompt.NewBuilder(cfg.MCPServerRegistry)
	llm := newMockLLM()

	executor := chain.NewExecutor(cfg, stageMgr, repo, llm, prompts, stubTools{}, hookMgr, registry, publisher)
	alerts := alert.NewService(cfg, repo, executor, staticRunbooks{}, publisher, nil, "pod-e2e")

	pool := queue.NewPool(cfg.Queue, repo, alerts, registry, "pod-e2e")
	alerts.SetLauncher(pool)
	pool.Start(ctx)

	t.Cleanup(func() {
		pool.Stop()
		listener.Stop(ctx)
		_ = entClient.Close()
	})

	return &harness{
		t:        t,
		repo:     repo,
		registry: registry,
		manager:  manager,
		alerts:   alerts,
		pool:     pool,
		llm:      llm,
	}
}

// e2eConfig builds a config with one chain, the given agents, and queue
// intervals fast enough for tests.
func e2eConfig(chains map[string]config.ChainConfig, agents map[string]config.AgentConfig) *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{
			LLMProvider:       "test-provider",
			IterationStrategy: config.IterationStrategyReact,
			FailurePolicy:     config.FailurePolicyAny,
		},
		Settings: config.DefaultSettings(),
		Queue: &config.QueueConfig{
			WorkerCount:             2,
			MaxConcurrentSessions:   4,
			PollInterval:            5 * time.Millisecond,
			PollIntervalJitter:      2 * time.Millisecond,
			HeartbeatInterval:       50 * time.Millisecond,
			SessionTimeout:          30 * time.Second,
			GracefulShutdownTimeout: 2 * time.Second,
			OrphanDetectionInterval: time.Minute,
			OrphanThreshold:         time.Minute,
		},
		AgentRegistry: config.NewAgentRegistry(agents),
		ChainRegistry: config.NewChainRegistry(chains, ""),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]config.LLMProviderConfig{
			"test-provider": {Type: config.LLMProviderTypeOpenAI, Model: "gpt-test"},
		}, "test-provider"),
	}
}

// submit sends one alert through the service and returns its session.
func (h *harness) submit(alertType string, data map[string]interface{}) *ent.Session {
	h.t.Helper()
	sess, duplicate, err := h.alerts.Submit(context.Background(), alert.SubmitInput{
		AlertType:  alertType,
		AlertData:  data,
		RunbookURL: "https://github.com/org/runbooks/blob/main/pods.md",
	})
	require.NoError(h.t, err)
	require.False(h.t, duplicate)
	return sess
}

// waitForStatus polls the session row until it reaches the wanted status.
func (h *harness) waitForStatus(sessionID string, status entsession.Status) *ent.Session {
	h.t.Helper()
	var sess *ent.Session
	require.Eventually(h.t, func() bool {
		var err error
		sess, err = h.repo.GetSession(context.Background(), sessionID)
		return err == nil && sess.Status == status
	}, 10*time.Second, 10*time.Millisecond,
		"session %s never reached status %s", sessionID, status)
	return sess
}

// subscribeWS opens a WebSocket client against the connection manager and
// subscribes it to a channel, consuming the handshake messages. Catchup
// events follow on the returned connection.
func (h *harness) subscribeWS(channel string) *websocket.Conn {
	h.t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		h.manager.HandleConnection(r.Context(), conn)
	}))
	h.t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(h.t, err)
	h.t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	msg := readWS(h.t, conn)
	require.Equal(h.t, "connection.established", msg["type"])

	sub, _ := json.Marshal(events.ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(h.t, conn.Write(ctx, websocket.MessageText, sub))
	msg = readWS(h.t, conn)
	require.Equal(h.t, "subscription.confirmed", msg["type"])
	return conn
}

// readWS reads and decodes one WebSocket message.
func readWS(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}
