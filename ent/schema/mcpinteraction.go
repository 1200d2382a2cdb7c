package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MCPInteraction holds the schema definition for one call to an MCP server
// (a tool invocation or a tool listing). Tool results are masked before
// persistence per the server's masking policy.
type MCPInteraction struct {
	ent.Schema
}

// Fields of the MCPInteraction.
func (MCPInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("stage_execution_id").
			Immutable(),
		field.String("server_name"),
		field.Enum("communication_type").
			Values("tool_list", "tool_call"),
		field.String("tool_name").
			Optional().
			Nillable().
			Comment("Null for tool_list"),
		field.JSON("tool_arguments", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_result", map[string]interface{}{}).
			Optional(),
		field.JSON("available_tools", map[string]interface{}{}).
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
		field.String("step_description").
			Optional(),
	}
}

// Edges of the MCPInteraction.
func (MCPInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("mcp_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("stage_execution", StageExecution.Type).
			Ref("mcp_interactions").
			Field("stage_execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MCPInteraction.
func (MCPInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp_us"),
		index.Fields("stage_execution_id"),
	}
}
