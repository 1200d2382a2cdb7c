package api

import (
	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/queue"
)

// AlertResponse is returned by POST /api/v1/alerts.
type AlertResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"` // queued or duplicate
	Message   string `json:"message"`
}

// SessionResponse is the session representation for list and detail
// endpoints. Final analysis and the raw alert payload only appear on the
// detail endpoint.
type SessionResponse struct {
	SessionID            string                 `json:"session_id"`
	AlertType            string                 `json:"alert_type"`
	ChainID              string                 `json:"chain_id"`
	Status               string                 `json:"status"`
	Author               string                 `json:"author,omitempty"`
	ErrorMessage         string                 `json:"error_message,omitempty"`
	CreatedAtUs          int64                  `json:"created_at_us"`
	StartedAtUs          *int64                 `json:"started_at_us,omitempty"`
	CompletedAtUs        *int64                 `json:"completed_at_us,omitempty"`
	CurrentStageIndex    *int                   `json:"current_stage_index,omitempty"`
	RunbookURL           string                 `json:"runbook_url,omitempty"`
	AlertData            map[string]interface{} `json:"alert_data,omitempty"`
	FinalAnalysis        string                 `json:"final_analysis,omitempty"`
	FinalAnalysisSummary string                 `json:"final_analysis_summary,omitempty"`
}

// SessionListResponse is the paginated envelope for GET /api/v1/sessions.
type SessionListResponse struct {
	Sessions   []SessionResponse `json:"sessions"`
	Pagination Pagination        `json:"pagination"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// StageResponse is one stage execution row.
type StageResponse struct {
	ExecutionID            string                 `json:"execution_id"`
	SessionID              string                 `json:"session_id"`
	StageIndex             int                    `json:"stage_index"`
	StageID                string                 `json:"stage_id"`
	StageName              string                 `json:"stage_name"`
	Agent                  string                 `json:"agent"`
	Status                 string                 `json:"status"`
	StartedAtUs            *int64                 `json:"started_at_us,omitempty"`
	CompletedAtUs          *int64                 `json:"completed_at_us,omitempty"`
	DurationMs             *int                   `json:"duration_ms,omitempty"`
	CurrentIteration       *int                   `json:"current_iteration,omitempty"`
	ErrorMessage           string                 `json:"error_message,omitempty"`
	ParentStageExecutionID string                 `json:"parent_stage_execution_id,omitempty"`
	ParallelIndex          int                    `json:"parallel_index"`
	ParallelType           string                 `json:"parallel_type"`
	ExpectedParallelCount  *int                   `json:"expected_parallel_count,omitempty"`
	StageOutput            map[string]interface{} `json:"stage_output,omitempty"`
}

// WarningResponse is one active system warning.
type WarningResponse struct {
	Category    string `json:"category"`
	ServerID    string `json:"server_id,omitempty"`
	Message     string `json:"message"`
	Details     string `json:"details,omitempty"`
	CreatedAtUs int64  `json:"created_at_us"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status            string           `json:"status"` // ok or shutting_down
	PodID             string           `json:"pod_id"`
	Queue             queue.PoolHealth `json:"queue"`
	ActiveConnections int              `json:"active_connections"`
}

func sessionSummary(sess *ent.Session) SessionResponse {
	return SessionResponse{
		SessionID:            sess.ID,
		AlertType:            sess.AlertType,
		ChainID:              sess.ChainID,
		Status:               string(sess.Status),
		Author:               derefString(sess.Author),
		ErrorMessage:         derefString(sess.ErrorMessage),
		CreatedAtUs:          sess.CreatedAtUs,
		StartedAtUs:          sess.StartedAtUs,
		CompletedAtUs:        sess.CompletedAtUs,
		CurrentStageIndex:    sess.CurrentStageIndex,
		FinalAnalysisSummary: derefString(sess.FinalAnalysisSummary),
	}
}

func sessionDetail(sess *ent.Session) SessionResponse {
	resp := sessionSummary(sess)
	resp.RunbookURL = sess.RunbookURL
	resp.AlertData = sess.AlertData
	resp.FinalAnalysis = derefString(sess.FinalAnalysis)
	return resp
}

func stageResponse(exec *ent.StageExecution) StageResponse {
	return StageResponse{
		ExecutionID:            exec.ID,
		SessionID:              exec.SessionID,
		StageIndex:             exec.StageIndex,
		StageID:                exec.StageID,
		StageName:              exec.StageName,
		Agent:                  exec.Agent,
		Status:                 string(exec.Status),
		StartedAtUs:            exec.StartedAtUs,
		CompletedAtUs:          exec.CompletedAtUs,
		DurationMs:             exec.DurationMs,
		CurrentIteration:       exec.CurrentIteration,
		ErrorMessage:           derefString(exec.ErrorMessage),
		ParentStageExecutionID: derefString(exec.ParentStageExecutionID),
		ParallelIndex:          exec.ParallelIndex,
		ParallelType:           string(exec.ParallelType),
		ExpectedParallelCount:  exec.ExpectedParallelCount,
		StageOutput:            exec.StageOutput,
	}
}

func warningResponse(w *ent.Warning) WarningResponse {
	return WarningResponse{
		Category:    w.Category,
		ServerID:    w.ServerID,
		Message:     w.Message,
		Details:     w.Details,
		CreatedAtUs: w.CreatedAtUs,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
