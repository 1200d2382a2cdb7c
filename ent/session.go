// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-ai/tarsy/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Alert classification used for chain selection
	AlertType string `json:"alert_type,omitempty"`
	// Schemaless alert payload as submitted
	AlertData map[string]interface{} `json:"alert_data,omitempty"`
	// RunbookURL holds the value of the "runbook_url" field.
	RunbookURL string `json:"runbook_url,omitempty"`
	// Downloaded runbook content
	Runbook string `json:"runbook,omitempty"`
	// Resolved chain identifier
	ChainID string `json:"chain_id,omitempty"`
	// Snapshot of the resolved chain definition
	ChainConfig map[string]interface{} `json:"chain_config,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// CreatedAtUs holds the value of the "created_at_us" field.
	CreatedAtUs int64 `json:"created_at_us,omitempty"`
	// Set when the first stage starts; never updated afterwards
	StartedAtUs *int64 `json:"started_at_us,omitempty"`
	// Set on every terminal transition
	CompletedAtUs *int64 `json:"completed_at_us,omitempty"`
	// Markdown analysis or error report
	FinalAnalysis *string `json:"final_analysis,omitempty"`
	// FinalAnalysisSummary holds the value of the "final_analysis_summary" field.
	FinalAnalysisSummary *string `json:"final_analysis_summary,omitempty"`
	// Valid only while in_progress or paused
	CurrentStageIndex *int `json:"current_stage_index,omitempty"`
	// CurrentStageExecutionID holds the value of the "current_stage_execution_id" field.
	CurrentStageExecutionID *string `json:"current_stage_execution_id,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Replica that claimed the session
	PodID *string `json:"pod_id,omitempty"`
	// Identifies the originating Slack message for threaded replies
	SlackMessageFingerprint *string `json:"slack_message_fingerprint,omitempty"`
	// Worker heartbeat, drives orphan detection
	LastInteractionAtUs *int64 `json:"last_interaction_at_us,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// StageExecutions holds the value of the stage_executions edge.
	StageExecutions []*StageExecution `json:"stage_executions,omitempty"`
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// McpInteractions holds the value of the mcp_interactions edge.
	McpInteractions []*MCPInteraction `json:"mcp_interactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// StageExecutionsOrErr returns the StageExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) StageExecutionsOrErr() ([]*StageExecution, error) {
	if e.loadedTypes[0] {
		return e.StageExecutions, nil
	}
	return nil, &NotLoadedError{edge: "stage_executions"}
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[1] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// McpInteractionsOrErr returns the McpInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) McpInteractionsOrErr() ([]*MCPInteraction, error) {
	if e.loadedTypes[2] {
		return e.McpInteractions, nil
	}
	return nil, &NotLoadedError{edge: "mcp_interactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldAlertData, session.FieldChainConfig:
			values[i] = new([]byte)
		case session.FieldCreatedAtUs, session.FieldStartedAtUs, session.FieldCompletedAtUs, session.FieldCurrentStageIndex, session.FieldLastInteractionAtUs:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldAlertType, session.FieldRunbookURL, session.FieldRunbook, session.FieldChainID, session.FieldStatus, session.FieldFinalAnalysis, session.FieldFinalAnalysisSummary, session.FieldCurrentStageExecutionID, session.FieldAuthor, session.FieldErrorMessage, session.FieldPodID, session.FieldSlackMessageFingerprint:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = value.String
			}
		case session.FieldAlertData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alert_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlertData); err != nil {
					return fmt.Errorf("unmarshal field alert_data: %w", err)
				}
			}
		case session.FieldRunbookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field runbook_url", values[i])
			} else if value.Valid {
				_m.RunbookURL = value.String
			}
		case session.FieldRunbook:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field runbook", values[i])
			} else if value.Valid {
				_m.Runbook = value.String
			}
		case session.FieldChainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain_id", values[i])
			} else if value.Valid {
				_m.ChainID = value.String
			}
		case session.FieldChainConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chain_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChainConfig); err != nil {
					return fmt.Errorf("unmarshal field chain_config: %w", err)
				}
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldCreatedAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_us", values[i])
			} else if value.Valid {
				_m.CreatedAtUs = value.Int64
			}
		case session.FieldStartedAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field started_at_us", values[i])
			} else if value.Valid {
				_m.StartedAtUs = new(int64)
				*_m.StartedAtUs = value.Int64
			}
		case session.FieldCompletedAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at_us", values[i])
			} else if value.Valid {
				_m.CompletedAtUs = new(int64)
				*_m.CompletedAtUs = value.Int64
			}
		case session.FieldFinalAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_analysis", values[i])
			} else if value.Valid {
				_m.FinalAnalysis = new(string)
				*_m.FinalAnalysis = value.String
			}
		case session.FieldFinalAnalysisSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_analysis_summary", values[i])
			} else if value.Valid {
				_m.FinalAnalysisSummary = new(string)
				*_m.FinalAnalysisSummary = value.String
			}
		case session.FieldCurrentStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_index", values[i])
			} else if value.Valid {
				_m.CurrentStageIndex = new(int)
				*_m.CurrentStageIndex = int(value.Int64)
			}
		case session.FieldCurrentStageExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_execution_id", values[i])
			} else if value.Valid {
				_m.CurrentStageExecutionID = new(string)
				*_m.CurrentStageExecutionID = value.String
			}
		case session.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case session.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case session.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case session.FieldSlackMessageFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slack_message_fingerprint", values[i])
			} else if value.Valid {
				_m.SlackMessageFingerprint = new(string)
				*_m.SlackMessageFingerprint = value.String
			}
		case session.FieldLastInteractionAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at_us", values[i])
			} else if value.Valid {
				_m.LastInteractionAtUs = new(int64)
				*_m.LastInteractionAtUs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStageExecutions queries the "stage_executions" edge of the Session entity.
func (_m *Session) QueryStageExecutions() *StageExecutionQuery {
	return NewSessionClient(_m.config).QueryStageExecutions(_m)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the Session entity.
func (_m *Session) QueryLlmInteractions() *LLMInteractionQuery {
	return NewSessionClient(_m.config).QueryLlmInteractions(_m)
}

// QueryMcpInteractions queries the "mcp_interactions" edge of the Session entity.
func (_m *Session) QueryMcpInteractions() *MCPInteractionQuery {
	return NewSessionClient(_m.config).QueryMcpInteractions(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alert_type=")
	builder.WriteString(_m.AlertType)
	builder.WriteString(", ")
	builder.WriteString("alert_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertData))
	builder.WriteString(", ")
	builder.WriteString("runbook_url=")
	builder.WriteString(_m.RunbookURL)
	builder.WriteString(", ")
	builder.WriteString("runbook=")
	builder.WriteString(_m.Runbook)
	builder.WriteString(", ")
	builder.WriteString("chain_id=")
	builder.WriteString(_m.ChainID)
	builder.WriteString(", ")
	builder.WriteString("chain_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChainConfig))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtUs))
	builder.WriteString(", ")
	if v := _m.StartedAtUs; v != nil {
		builder.WriteString("started_at_us=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAtUs; v != nil {
		builder.WriteString("completed_at_us=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinalAnalysis; v != nil {
		builder.WriteString("final_analysis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalAnalysisSummary; v != nil {
		builder.WriteString("final_analysis_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentStageIndex; v != nil {
		builder.WriteString("current_stage_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CurrentStageExecutionID; v != nil {
		builder.WriteString("current_stage_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SlackMessageFingerprint; v != nil {
		builder.WriteString("slack_message_fingerprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAtUs; v != nil {
		builder.WriteString("last_interaction_at_us=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
