package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity — one alert
// processing run with durable state and a bounded lifecycle.
//
// All *_us fields are integer microseconds since epoch, UTC.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("alert_type").
			Comment("Alert classification used for chain selection"),
		field.JSON("alert_data", map[string]interface{}{}).
			Comment("Schemaless alert payload as submitted"),
		field.String("runbook_url").
			Optional(),
		field.Text("runbook").
			Optional().
			Comment("Downloaded runbook content"),
		field.String("chain_id").
			Comment("Resolved chain identifier"),
		field.JSON("chain_config", map[string]interface{}{}).
			Optional().
			Comment("Snapshot of the resolved chain definition"),
		field.Enum("status").
			Values("pending", "in_progress", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int64("created_at_us").
			Immutable(),
		field.Int64("started_at_us").
			Optional().
			Nillable().
			Comment("Set when the first stage starts; never updated afterwards"),
		field.Int64("completed_at_us").
			Optional().
			Nillable().
			Comment("Set on every terminal transition"),
		field.Text("final_analysis").
			Optional().
			Nillable().
			Comment("Markdown analysis or error report"),
		field.Text("final_analysis_summary").
			Optional().
			Nillable(),
		field.Int("current_stage_index").
			Optional().
			Nillable().
			Comment("Valid only while in_progress or paused"),
		field.String("current_stage_execution_id").
			Optional().
			Nillable(),
		field.String("author").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Replica that claimed the session"),
		field.String("slack_message_fingerprint").
			Optional().
			Nillable().
			Comment("Identifies the originating Slack message for threaded replies"),
		field.Int64("last_interaction_at_us").
			Optional().
			Nillable().
			Comment("Worker heartbeat, drives orphan detection"),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stage_executions", StageExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_interactions", MCPInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("alert_type"),
		index.Fields("chain_id"),
		index.Fields("status", "created_at_us"),
		index.Fields("status", "last_interaction_at_us"),
	}
}
