package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Warning holds the schema definition for operator-visible system warnings
// (e.g. an MCP server failing its health probe). One active warning per
// (category, server_id); posting again replaces the previous row.
type Warning struct {
	ent.Schema
}

// Fields of the Warning.
func (Warning) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("warning_id").
			Unique().
			Immutable(),
		field.String("category").
			Comment("e.g. 'mcp_initialization'"),
		field.String("server_id").
			Optional(),
		field.String("message"),
		field.Text("details").
			Optional(),
		field.Int64("created_at_us"),
	}
}

// Indexes of the Warning.
func (Warning) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "server_id").
			Unique(),
	}
}
