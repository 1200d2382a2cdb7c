// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tarsy-ai/tarsy/ent/event"
	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/ent/schema"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	llminteractionFields := schema.LLMInteraction{}.Fields()
	_ = llminteractionFields
	// llminteractionDescSuccess is the schema descriptor for success field.
	llminteractionDescSuccess := llminteractionFields[13].Descriptor()
	// llminteraction.DefaultSuccess holds the default value on creation for the success field.
	llminteraction.DefaultSuccess = llminteractionDescSuccess.Default.(bool)
	mcpinteractionFields := schema.MCPInteraction{}.Fields()
	_ = mcpinteractionFields
	// mcpinteractionDescSuccess is the schema descriptor for success field.
	mcpinteractionDescSuccess := mcpinteractionFields[13].Descriptor()
	// mcpinteraction.DefaultSuccess holds the default value on creation for the success field.
	mcpinteraction.DefaultSuccess = mcpinteractionDescSuccess.Default.(bool)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	stageexecutionFields := schema.StageExecution{}.Fields()
	_ = stageexecutionFields
	// stageexecutionDescParallelIndex is the schema descriptor for parallel_index field.
	stageexecutionDescParallelIndex := stageexecutionFields[14].Descriptor()
	// stageexecution.DefaultParallelIndex holds the default value on creation for the parallel_index field.
	stageexecution.DefaultParallelIndex = stageexecutionDescParallelIndex.Default.(int)
}
