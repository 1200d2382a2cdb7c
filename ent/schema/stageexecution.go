package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageExecution holds the schema definition for one stage run within a
// session. Parallel groups are modeled as a parent row plus N child rows
// sharing parent_stage_execution_id, with parallel_index 1..N.
type StageExecution struct {
	ent.Schema
}

// Fields of the StageExecution.
func (StageExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("stage_index").
			Comment("Ordinal position in the chain"),
		field.String("stage_id").
			Comment("Logical name plus index, e.g. 'investigation-1'"),
		field.String("stage_name"),
		field.String("agent").
			Comment("Agent class or configured agent name"),
		field.Enum("status").
			Values("pending", "active", "paused", "completed", "failed").
			Default("pending"),
		field.Int64("started_at_us").
			Optional().
			Nillable().
			Comment("Set on the first pending→active transition only; preserved across paused↔active cycles"),
		field.Int64("completed_at_us").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("current_iteration").
			Optional().
			Nillable().
			Comment("Set while paused, cleared when resumed"),
		field.JSON("stage_output", map[string]interface{}{}).
			Optional().
			Comment("Serialized execution result; paused_conversation_state while paused"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("parent_stage_execution_id").
			Optional().
			Nillable().
			Comment("Set on children of a parallel group"),
		field.Int("parallel_index").
			Default(0).
			Comment("0 for single/parent, 1..N for parallel children"),
		field.Enum("parallel_type").
			Values("single", "multi_agent", "replica").
			Default("single"),
		field.Int("expected_parallel_count").
			Optional().
			Nillable().
			Comment("Number of children a parent parallel stage owns"),
	}
}

// Edges of the StageExecution.
func (StageExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("stage_executions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_interactions", MCPInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StageExecution.
func (StageExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "stage_index", "parallel_index").
			Unique(),
		index.Fields("parent_stage_execution_id"),
		index.Fields("status"),
	}
}
