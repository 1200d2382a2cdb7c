// Package api exposes the HTTP surface: alert submission, session
// inspection and control, health, system warnings, and the dashboard
// WebSocket endpoint.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-ai/tarsy/ent"
	entsession "github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/pkg/alert"
	"github.com/tarsy-ai/tarsy/pkg/config"
	"github.com/tarsy-ai/tarsy/pkg/events"
	"github.com/tarsy-ai/tarsy/pkg/history"
	"github.com/tarsy-ai/tarsy/pkg/queue"
)

// AlertService is the slice of the alert orchestrator the handlers use.
type AlertService interface {
	Submit(ctx context.Context, input alert.SubmitInput) (*ent.Session, bool, error)
	Resume(ctx context.Context, sessionID string) (*ent.Session, error)
}

// HistoryStore is the repository slice the handlers use. The lone write,
// UpdateSessionStatus, backs cancellation of sessions no worker owns yet.
type HistoryStore interface {
	GetSession(ctx context.Context, sessionID string) (*ent.Session, error)
	ListSessions(ctx context.Context, filters *history.SessionFilters) ([]*ent.Session, int, error)
	ListStageExecutions(ctx context.Context, sessionID string) ([]*ent.StageExecution, error)
	ListWarnings(ctx context.Context) ([]*ent.Warning, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, status entsession.Status, errorMessage string) (*ent.Session, error)
}

// SessionController lets handlers signal running sessions on this pod.
type SessionController interface {
	RequestCancel(sessionID string) bool
	IsRunning(sessionID string) bool
}

// PoolInspector exposes worker pool state to health and submission checks.
type PoolInspector interface {
	Health() queue.PoolHealth
	ShuttingDown() bool
}

// EventSink publishes session lifecycle events for control-plane
// transitions made directly by the API (cancelling a pending session).
type EventSink interface {
	PublishSessionEvent(ctx context.Context, payload events.SessionEventPayload) error
}

// RunbookLister enumerates runbooks from the configured repository.
// Implemented by runbook.Service.
type RunbookLister interface {
	ListRunbooks(ctx context.Context) ([]string, error)
}

// Server wires the gin router to the service layer.
type Server struct {
	cfg         *config.Config
	alerts      AlertService
	repo        HistoryStore
	registry    SessionController
	pool        PoolInspector
	sink        EventSink
	runbooks    RunbookLister
	connections *events.ConnectionManager

	engine *gin.Engine
	http   *http.Server
}

func NewServer(
	cfg *config.Config,
	alerts AlertService,
	repo HistoryStore,
	registry SessionController,
	pool PoolInspector,
	sink EventSink,
	runbooks RunbookLister,
	connections *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		alerts:      alerts,
		repo:        repo,
		registry:    registry,
		pool:        pool,
		sink:        sink,
		runbooks:    runbooks,
		connections: connections,
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.GET("/health", s.healthHandler)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/alerts", s.rejectDuringShutdown, s.submitAlertHandler)
		v1.GET("/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/sessions/:id/stages", s.listStagesHandler)
		v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
		v1.POST("/sessions/:id/resume", s.rejectDuringShutdown, s.resumeSessionHandler)
		v1.GET("/runbooks", s.listRunbooksHandler)
		v1.GET("/system/warnings", s.warningsHandler)
		v1.GET("/ws", s.websocketHandler)
	}
	return engine
}

// Handler returns the router, mainly for httptest in tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
