// Package stage coordinates StageExecution persistence: creation with
// verified durability, the status transitions of the stage lifecycle, and
// the paused-conversation snapshot. Every transition fires the critical
// stage hooks after the row is persisted.
package stage

import (
	"encoding/json"
	"fmt"

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/pkg/history"
)

// Result is the serializable outcome of one stage run, stored in
// stage_output and passed to later chain stages.
type Result struct {
	Status      string          `json:"status"` // completed or failed
	FinalText   string          `json:"final_text,omitempty"`
	TimestampUs int64           `json:"timestamp_us"`
	Parallel    *ParallelResult `json:"parallel,omitempty"`
}

// ParallelResult aggregates the children of a parallel stage group.
type ParallelResult struct {
	Results  []ChildResult    `json:"results"`
	Metadata ParallelMetadata `json:"metadata"`
}

// ChildResult is one child's outcome inside a parallel group.
type ChildResult struct {
	ExecutionID   string `json:"execution_id"`
	ParallelIndex int    `json:"parallel_index"`
	Agent         string `json:"agent"`
	Status        string `json:"status"`
	FinalText     string `json:"final_text,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// ParallelMetadata summarizes a parallel group for consumers that only need
// the counts.
type ParallelMetadata struct {
	SuccessfulCount int    `json:"successful_count"`
	FailedCount     int    `json:"failed_count"`
	TotalCount      int    `json:"total_count"`
	FailurePolicy   string `json:"failure_policy,omitempty"`
}

// CompletedResult builds a successful result stamped now.
func CompletedResult(finalText string) *Result {
	return &Result{
		Status:      string(stageexecution.StatusCompleted),
		FinalText:   finalText,
		TimestampUs: history.NowMicros(),
	}
}

// FailedResult builds a failed result stamped now.
func FailedResult() *Result {
	return &Result{
		Status:      string(stageexecution.StatusFailed),
		TimestampUs: history.NowMicros(),
	}
}

// toOutput serializes the result into the stage_output JSON column shape.
func (r *Result) toOutput() (map[string]interface{}, error) {
	return toJSONMap(r)
}

// pausedOutputKey holds the conversation snapshot inside stage_output while
// a stage is paused.
const pausedOutputKey = "paused_conversation_state"

// pausedOutput wraps a conversation snapshot for the stage_output column.
func pausedOutput(state *history.PausedConversationState) (map[string]interface{}, error) {
	m, err := toJSONMap(state)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{pausedOutputKey: m}, nil
}

// DecodePausedState extracts the conversation snapshot from a paused stage's
// output. Returns an error if the stage holds no snapshot.
func DecodePausedState(exec *ent.StageExecution) (*history.PausedConversationState, error) {
	raw, ok := exec.StageOutput[pausedOutputKey]
	if !ok {
		return nil, fmt.Errorf("stage execution %s has no paused conversation state", exec.ID)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode paused state: %w", err)
	}
	var state history.PausedConversationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode paused state: %w", err)
	}
	return &state, nil
}

// DecodeResult extracts a stage result from a completed stage's output.
func DecodeResult(exec *ent.StageExecution) (*Result, error) {
	if exec.StageOutput == nil {
		return nil, fmt.Errorf("stage execution %s has no stage output", exec.ID)
	}
	data, err := json.Marshal(exec.StageOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode stage output: %w", err)
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stage output: %w", err)
	}
	return &result, nil
}

// toJSONMap round-trips a value through JSON into a generic map, matching
// how ent stores the JSON column.
func toJSONMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
