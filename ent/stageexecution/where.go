// Code generated by ent, DO NOT EDIT.

package stageexecution

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-ai/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldSessionID, v))
}

// StageIndex applies equality check predicate on the "stage_index" field. It's identical to StageIndexEQ.
func StageIndex(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageIndex, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageID, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageName, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAgent, v))
}

// StartedAtUs applies equality check predicate on the "started_at_us" field. It's identical to StartedAtUsEQ.
func StartedAtUs(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAtUs, v))
}

// CompletedAtUs applies equality check predicate on the "completed_at_us" field. It's identical to CompletedAtUsEQ.
func CompletedAtUs(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAtUs, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldDurationMs, v))
}

// CurrentIteration applies equality check predicate on the "current_iteration" field. It's identical to CurrentIterationEQ.
func CurrentIteration(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCurrentIteration, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ParentStageExecutionID applies equality check predicate on the "parent_stage_execution_id" field. It's identical to ParentStageExecutionIDEQ.
func ParentStageExecutionID(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldParentStageExecutionID, v))
}

// ParallelIndex applies equality check predicate on the "parallel_index" field. It's identical to ParallelIndexEQ.
func ParallelIndex(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldParallelIndex, v))
}

// ExpectedParallelCount applies equality check predicate on the "expected_parallel_count" field. It's identical to ExpectedParallelCountEQ.
func ExpectedParallelCount(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldExpectedParallelCount, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldSessionID, v))
}

// StageIndexEQ applies the EQ predicate on the "stage_index" field.
func StageIndexEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageIndex, v))
}

// StageIndexNEQ applies the NEQ predicate on the "stage_index" field.
func StageIndexNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageIndex, v))
}

// StageIndexIn applies the In predicate on the "stage_index" field.
func StageIndexIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageIndex, vs...))
}

// StageIndexNotIn applies the NotIn predicate on the "stage_index" field.
func StageIndexNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageIndex, vs...))
}

// StageIndexGT applies the GT predicate on the "stage_index" field.
func StageIndexGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageIndex, v))
}

// StageIndexGTE applies the GTE predicate on the "stage_index" field.
func StageIndexGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageIndex, v))
}

// StageIndexLT applies the LT predicate on the "stage_index" field.
func StageIndexLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageIndex, v))
}

// StageIndexLTE applies the LTE predicate on the "stage_index" field.
func StageIndexLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageIndex, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldStageID, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldStageName, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldAgent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtUsEQ applies the EQ predicate on the "started_at_us" field.
func StartedAtUsEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAtUs, v))
}

// StartedAtUsNEQ applies the NEQ predicate on the "started_at_us" field.
func StartedAtUsNEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStartedAtUs, v))
}

// StartedAtUsIn applies the In predicate on the "started_at_us" field.
func StartedAtUsIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStartedAtUs, vs...))
}

// StartedAtUsNotIn applies the NotIn predicate on the "started_at_us" field.
func StartedAtUsNotIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStartedAtUs, vs...))
}

// StartedAtUsGT applies the GT predicate on the "started_at_us" field.
func StartedAtUsGT(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStartedAtUs, v))
}

// StartedAtUsGTE applies the GTE predicate on the "started_at_us" field.
func StartedAtUsGTE(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStartedAtUs, v))
}

// StartedAtUsLT applies the LT predicate on the "started_at_us" field.
func StartedAtUsLT(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStartedAtUs, v))
}

// StartedAtUsLTE applies the LTE predicate on the "started_at_us" field.
func StartedAtUsLTE(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStartedAtUs, v))
}

// StartedAtUsIsNil applies the IsNil predicate on the "started_at_us" field.
func StartedAtUsIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldStartedAtUs))
}

// StartedAtUsNotNil applies the NotNil predicate on the "started_at_us" field.
func StartedAtUsNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldStartedAtUs))
}

// CompletedAtUsEQ applies the EQ predicate on the "completed_at_us" field.
func CompletedAtUsEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAtUs, v))
}

// CompletedAtUsNEQ applies the NEQ predicate on the "completed_at_us" field.
func CompletedAtUsNEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldCompletedAtUs, v))
}

// CompletedAtUsIn applies the In predicate on the "completed_at_us" field.
func CompletedAtUsIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldCompletedAtUs, vs...))
}

// CompletedAtUsNotIn applies the NotIn predicate on the "completed_at_us" field.
func CompletedAtUsNotIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldCompletedAtUs, vs...))
}

// CompletedAtUsGT applies the GT predicate on the "completed_at_us" field.
func CompletedAtUsGT(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldCompletedAtUs, v))
}

// CompletedAtUsGTE applies the GTE predicate on the "completed_at_us" field.
func CompletedAtUsGTE(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldCompletedAtUs, v))
}

// CompletedAtUsLT applies the LT predicate on the "completed_at_us" field.
func CompletedAtUsLT(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldCompletedAtUs, v))
}

// CompletedAtUsLTE applies the LTE predicate on the "completed_at_us" field.
func CompletedAtUsLTE(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldCompletedAtUs, v))
}

// CompletedAtUsIsNil applies the IsNil predicate on the "completed_at_us" field.
func CompletedAtUsIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldCompletedAtUs))
}

// CompletedAtUsNotNil applies the NotNil predicate on the "completed_at_us" field.
func CompletedAtUsNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldCompletedAtUs))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldDurationMs))
}

// CurrentIterationEQ applies the EQ predicate on the "current_iteration" field.
func CurrentIterationEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCurrentIteration, v))
}

// CurrentIterationNEQ applies the NEQ predicate on the "current_iteration" field.
func CurrentIterationNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldCurrentIteration, v))
}

// CurrentIterationIn applies the In predicate on the "current_iteration" field.
func CurrentIterationIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldCurrentIteration, vs...))
}

// CurrentIterationNotIn applies the NotIn predicate on the "current_iteration" field.
func CurrentIterationNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldCurrentIteration, vs...))
}

// CurrentIterationGT applies the GT predicate on the "current_iteration" field.
func CurrentIterationGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldCurrentIteration, v))
}

// CurrentIterationGTE applies the GTE predicate on the "current_iteration" field.
func CurrentIterationGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldCurrentIteration, v))
}

// CurrentIterationLT applies the LT predicate on the "current_iteration" field.
func CurrentIterationLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldCurrentIteration, v))
}

// CurrentIterationLTE applies the LTE predicate on the "current_iteration" field.
func CurrentIterationLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldCurrentIteration, v))
}

// CurrentIterationIsNil applies the IsNil predicate on the "current_iteration" field.
func CurrentIterationIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldCurrentIteration))
}

// CurrentIterationNotNil applies the NotNil predicate on the "current_iteration" field.
func CurrentIterationNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldCurrentIteration))
}

// StageOutputIsNil applies the IsNil predicate on the "stage_output" field.
func StageOutputIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldStageOutput))
}

// StageOutputNotNil applies the NotNil predicate on the "stage_output" field.
func StageOutputNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldStageOutput))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ParentStageExecutionIDEQ applies the EQ predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDNEQ applies the NEQ predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDIn applies the In predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldParentStageExecutionID, vs...))
}

// ParentStageExecutionIDNotIn applies the NotIn predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldParentStageExecutionID, vs...))
}

// ParentStageExecutionIDGT applies the GT predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDGTE applies the GTE predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDLT applies the LT predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDLTE applies the LTE predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDContains applies the Contains predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDHasPrefix applies the HasPrefix predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDHasSuffix applies the HasSuffix predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDIsNil applies the IsNil predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldParentStageExecutionID))
}

// ParentStageExecutionIDNotNil applies the NotNil predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldParentStageExecutionID))
}

// ParentStageExecutionIDEqualFold applies the EqualFold predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldParentStageExecutionID, v))
}

// ParentStageExecutionIDContainsFold applies the ContainsFold predicate on the "parent_stage_execution_id" field.
func ParentStageExecutionIDContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldParentStageExecutionID, v))
}

// ParallelIndexEQ applies the EQ predicate on the "parallel_index" field.
func ParallelIndexEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldParallelIndex, v))
}

// ParallelIndexNEQ applies the NEQ predicate on the "parallel_index" field.
func ParallelIndexNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldParallelIndex, v))
}

// ParallelIndexIn applies the In predicate on the "parallel_index" field.
func ParallelIndexIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldParallelIndex, vs...))
}

// ParallelIndexNotIn applies the NotIn predicate on the "parallel_index" field.
func ParallelIndexNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldParallelIndex, vs...))
}

// ParallelIndexGT applies the GT predicate on the "parallel_index" field.
func ParallelIndexGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldParallelIndex, v))
}

// ParallelIndexGTE applies the GTE predicate on the "parallel_index" field.
func ParallelIndexGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldParallelIndex, v))
}

// ParallelIndexLT applies the LT predicate on the "parallel_index" field.
func ParallelIndexLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldParallelIndex, v))
}

// ParallelIndexLTE applies the LTE predicate on the "parallel_index" field.
func ParallelIndexLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldParallelIndex, v))
}

// ParallelTypeEQ applies the EQ predicate on the "parallel_type" field.
func ParallelTypeEQ(v ParallelType) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldParallelType, v))
}

// ParallelTypeNEQ applies the NEQ predicate on the "parallel_type" field.
func ParallelTypeNEQ(v ParallelType) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldParallelType, v))
}

// ParallelTypeIn applies the In predicate on the "parallel_type" field.
func ParallelTypeIn(vs ...ParallelType) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldParallelType, vs...))
}

// ParallelTypeNotIn applies the NotIn predicate on the "parallel_type" field.
func ParallelTypeNotIn(vs ...ParallelType) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldParallelType, vs...))
}

// ExpectedParallelCountEQ applies the EQ predicate on the "expected_parallel_count" field.
func ExpectedParallelCountEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldExpectedParallelCount, v))
}

// ExpectedParallelCountNEQ applies the NEQ predicate on the "expected_parallel_count" field.
func ExpectedParallelCountNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldExpectedParallelCount, v))
}

// ExpectedParallelCountIn applies the In predicate on the "expected_parallel_count" field.
func ExpectedParallelCountIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldExpectedParallelCount, vs...))
}

// ExpectedParallelCountNotIn applies the NotIn predicate on the "expected_parallel_count" field.
func ExpectedParallelCountNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldExpectedParallelCount, vs...))
}

// ExpectedParallelCountGT applies the GT predicate on the "expected_parallel_count" field.
func ExpectedParallelCountGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldExpectedParallelCount, v))
}

// ExpectedParallelCountGTE applies the GTE predicate on the "expected_parallel_count" field.
func ExpectedParallelCountGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldExpectedParallelCount, v))
}

// ExpectedParallelCountLT applies the LT predicate on the "expected_parallel_count" field.
func ExpectedParallelCountLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldExpectedParallelCount, v))
}

// ExpectedParallelCountLTE applies the LTE predicate on the "expected_parallel_count" field.
func ExpectedParallelCountLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldExpectedParallelCount, v))
}

// ExpectedParallelCountIsNil applies the IsNil predicate on the "expected_parallel_count" field.
func ExpectedParallelCountIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldExpectedParallelCount))
}

// ExpectedParallelCountNotNil applies the NotNil predicate on the "expected_parallel_count" field.
func ExpectedParallelCountNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldExpectedParallelCount))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMcpInteractions applies the HasEdge predicate on the "mcp_interactions" edge.
func HasMcpInteractions() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMcpInteractionsWith applies the HasEdge predicate on the "mcp_interactions" edge with a given conditions (other predicates).
func HasMcpInteractionsWith(preds ...predicate.MCPInteraction) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newMcpInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.NotPredicates(p))
}
