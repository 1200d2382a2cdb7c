// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// LlmInteractionsColumns holds the columns for the "llm_interactions" table.
	LlmInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "interaction_type", Type: field.TypeEnum, Enums: []string{"investigation", "final_analysis", "summarization"}},
		{Name: "conversation", Type: field.TypeJSON},
		{Name: "native_tools_config", Type: field.TypeJSON, Nullable: true},
		{Name: "start_time_us", Type: field.TypeInt64},
		{Name: "end_time_us", Type: field.TypeInt64, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "timestamp_us", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_execution_id", Type: field.TypeString},
	}
	// LlmInteractionsTable holds the schema information for the "llm_interactions" table.
	LlmInteractionsTable = &schema.Table{
		Name:       "llm_interactions",
		Columns:    LlmInteractionsColumns,
		PrimaryKey: []*schema.Column{LlmInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_interactions_sessions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[16]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "llm_interactions_stage_executions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[17]},
				RefColumns: []*schema.Column{StageExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llminteraction_session_id_timestamp_us",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[16], LlmInteractionsColumns[10]},
			},
			{
				Name:    "llminteraction_stage_execution_id",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[17]},
			},
		},
	}
	// McpInteractionsColumns holds the columns for the "mcp_interactions" table.
	McpInteractionsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "server_name", Type: field.TypeString},
		{Name: "communication_type", Type: field.TypeEnum, Enums: []string{"tool_list", "tool_call"}},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_result", Type: field.TypeJSON, Nullable: true},
		{Name: "available_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "start_time_us", Type: field.TypeInt64},
		{Name: "end_time_us", Type: field.TypeInt64, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "timestamp_us", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "step_description", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_execution_id", Type: field.TypeString},
	}
	// McpInteractionsTable holds the schema information for the "mcp_interactions" table.
	McpInteractionsTable = &schema.Table{
		Name:       "mcp_interactions",
		Columns:    McpInteractionsColumns,
		PrimaryKey: []*schema.Column{McpInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mcp_interactions_sessions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[14]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "mcp_interactions_stage_executions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[15]},
				RefColumns: []*schema.Column{StageExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mcpinteraction_session_id_timestamp_us",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[14], McpInteractionsColumns[10]},
			},
			{
				Name:    "mcpinteraction_stage_execution_id",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[15]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "alert_type", Type: field.TypeString},
		{Name: "alert_data", Type: field.TypeJSON},
		{Name: "runbook_url", Type: field.TypeString, Nullable: true},
		{Name: "runbook", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "chain_config", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at_us", Type: field.TypeInt64},
		{Name: "started_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "completed_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "final_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "final_analysis_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "current_stage_index", Type: field.TypeInt, Nullable: true},
		{Name: "current_stage_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "slack_message_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at_us", Type: field.TypeInt64, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7]},
			},
			{
				Name:    "session_alert_type",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_chain_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
			},
			{
				Name:    "session_status_created_at_us",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7], SessionsColumns[8]},
			},
			{
				Name:    "session_status_last_interaction_at_us",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7], SessionsColumns[19]},
			},
		},
	}
	// StageExecutionsColumns holds the columns for the "stage_executions" table.
	StageExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "paused", "completed", "failed"}, Default: "pending"},
		{Name: "started_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "completed_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "current_iteration", Type: field.TypeInt, Nullable: true},
		{Name: "stage_output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "parent_stage_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "parallel_index", Type: field.TypeInt, Default: 0},
		{Name: "parallel_type", Type: field.TypeEnum, Enums: []string{"single", "multi_agent", "replica"}, Default: "single"},
		{Name: "expected_parallel_count", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// StageExecutionsTable holds the schema information for the "stage_executions" table.
	StageExecutionsTable = &schema.Table{
		Name:       "stage_executions",
		Columns:    StageExecutionsColumns,
		PrimaryKey: []*schema.Column{StageExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_executions_sessions_stage_executions",
				Columns:    []*schema.Column{StageExecutionsColumns[16]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageexecution_session_id_stage_index_parallel_index",
				Unique:  true,
				Columns: []*schema.Column{StageExecutionsColumns[16], StageExecutionsColumns[1], StageExecutionsColumns[13]},
			},
			{
				Name:    "stageexecution_parent_stage_execution_id",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[12]},
			},
			{
				Name:    "stageexecution_status",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[5]},
			},
		},
	}
	// WarningsColumns holds the columns for the "warnings" table.
	WarningsColumns = []*schema.Column{
		{Name: "warning_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "server_id", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at_us", Type: field.TypeInt64},
	}
	// WarningsTable holds the schema information for the "warnings" table.
	WarningsTable = &schema.Table{
		Name:       "warnings",
		Columns:    WarningsColumns,
		PrimaryKey: []*schema.Column{WarningsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "warning_category_server_id",
				Unique:  true,
				Columns: []*schema.Column{WarningsColumns[1], WarningsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		LlmInteractionsTable,
		McpInteractionsTable,
		SessionsTable,
		StageExecutionsTable,
		WarningsTable,
	}
)

func init() {
	LlmInteractionsTable.ForeignKeys[0].RefTable = SessionsTable
	LlmInteractionsTable.ForeignKeys[1].RefTable = StageExecutionsTable
	McpInteractionsTable.ForeignKeys[0].RefTable = SessionsTable
	McpInteractionsTable.ForeignKeys[1].RefTable = StageExecutionsTable
	StageExecutionsTable.ForeignKeys[0].RefTable = SessionsTable
}
