package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMInteraction holds the schema definition for one chat turn with an LLM,
// recorded with its full conversation for observability.
type LLMInteraction struct {
	ent.Schema
}

// Fields of the LLMInteraction.
func (LLMInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("stage_execution_id").
			Immutable(),
		field.String("provider"),
		field.String("model_name"),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.Enum("interaction_type").
			Values("investigation", "final_analysis", "summarization"),
		field.JSON("conversation", []map[string]interface{}{}).
			Comment("Ordered role/content messages; immutable once persisted"),
		field.JSON("native_tools_config", map[string]interface{}{}).
			Optional(),
		field.Int64("start_time_us"),
		field.Int64("end_time_us").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int64("timestamp_us"),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Optional().
			Nillable(),
	}
}

// Edges of the LLMInteraction.
func (LLMInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("llm_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("stage_execution", StageExecution.Type).
			Ref("llm_interactions").
			Field("stage_execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LLMInteraction.
func (LLMInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp_us"),
		index.Fields("stage_execution_id"),
	}
}
