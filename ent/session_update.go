// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/ent/predicate"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *SessionUpdate) SetAlertType(v string) *SessionUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableAlertType(v *string) *SessionUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetAlertData sets the "alert_data" field.
func (_u *SessionUpdate) SetAlertData(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetAlertData(v)
	return _u
}

// SetRunbookURL sets the "runbook_url" field.
func (_u *SessionUpdate) SetRunbookURL(v string) *SessionUpdate {
	_u.mutation.SetRunbookURL(v)
	return _u
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableRunbookURL(v *string) *SessionUpdate {
	if v != nil {
		_u.SetRunbookURL(*v)
	}
	return _u
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (_u *SessionUpdate) ClearRunbookURL() *SessionUpdate {
	_u.mutation.ClearRunbookURL()
	return _u
}

// SetRunbook sets the "runbook" field.
func (_u *SessionUpdate) SetRunbook(v string) *SessionUpdate {
	_u.mutation.SetRunbook(v)
	return _u
}

// SetNillableRunbook sets the "runbook" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableRunbook(v *string) *SessionUpdate {
	if v != nil {
		_u.SetRunbook(*v)
	}
	return _u
}

// ClearRunbook clears the value of the "runbook" field.
func (_u *SessionUpdate) ClearRunbook() *SessionUpdate {
	_u.mutation.ClearRunbook()
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *SessionUpdate) SetChainID(v string) *SessionUpdate {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableChainID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetChainConfig sets the "chain_config" field.
func (_u *SessionUpdate) SetChainConfig(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetChainConfig(v)
	return _u
}

// ClearChainConfig clears the value of the "chain_config" field.
func (_u *SessionUpdate) ClearChainConfig() *SessionUpdate {
	_u.mutation.ClearChainConfig()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAtUs sets the "started_at_us" field.
func (_u *SessionUpdate) SetStartedAtUs(v int64) *SessionUpdate {
	_u.mutation.ResetStartedAtUs()
	_u.mutation.SetStartedAtUs(v)
	return _u
}

// SetNillableStartedAtUs sets the "started_at_us" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartedAtUs(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetStartedAtUs(*v)
	}
	return _u
}

// AddStartedAtUs adds value to the "started_at_us" field.
func (_u *SessionUpdate) AddStartedAtUs(v int64) *SessionUpdate {
	_u.mutation.AddStartedAtUs(v)
	return _u
}

// ClearStartedAtUs clears the value of the "started_at_us" field.
func (_u *SessionUpdate) ClearStartedAtUs() *SessionUpdate {
	_u.mutation.ClearStartedAtUs()
	return _u
}

// SetCompletedAtUs sets the "completed_at_us" field.
func (_u *SessionUpdate) SetCompletedAtUs(v int64) *SessionUpdate {
	_u.mutation.ResetCompletedAtUs()
	_u.mutation.SetCompletedAtUs(v)
	return _u
}

// SetNillableCompletedAtUs sets the "completed_at_us" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedAtUs(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetCompletedAtUs(*v)
	}
	return _u
}

// AddCompletedAtUs adds value to the "completed_at_us" field.
func (_u *SessionUpdate) AddCompletedAtUs(v int64) *SessionUpdate {
	_u.mutation.AddCompletedAtUs(v)
	return _u
}

// ClearCompletedAtUs clears the value of the "completed_at_us" field.
func (_u *SessionUpdate) ClearCompletedAtUs() *SessionUpdate {
	_u.mutation.ClearCompletedAtUs()
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *SessionUpdate) SetFinalAnalysis(v string) *SessionUpdate {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFinalAnalysis(v *string) *SessionUpdate {
	if v != nil {
		_u.SetFinalAnalysis(*v)
	}
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *SessionUpdate) ClearFinalAnalysis() *SessionUpdate {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetFinalAnalysisSummary sets the "final_analysis_summary" field.
func (_u *SessionUpdate) SetFinalAnalysisSummary(v string) *SessionUpdate {
	_u.mutation.SetFinalAnalysisSummary(v)
	return _u
}

// SetNillableFinalAnalysisSummary sets the "final_analysis_summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFinalAnalysisSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetFinalAnalysisSummary(*v)
	}
	return _u
}

// ClearFinalAnalysisSummary clears the value of the "final_analysis_summary" field.
func (_u *SessionUpdate) ClearFinalAnalysisSummary() *SessionUpdate {
	_u.mutation.ClearFinalAnalysisSummary()
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *SessionUpdate) SetCurrentStageIndex(v int) *SessionUpdate {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCurrentStageIndex(v *int) *SessionUpdate {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *SessionUpdate) AddCurrentStageIndex(v int) *SessionUpdate {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (_u *SessionUpdate) ClearCurrentStageIndex() *SessionUpdate {
	_u.mutation.ClearCurrentStageIndex()
	return _u
}

// SetCurrentStageExecutionID sets the "current_stage_execution_id" field.
func (_u *SessionUpdate) SetCurrentStageExecutionID(v string) *SessionUpdate {
	_u.mutation.SetCurrentStageExecutionID(v)
	return _u
}

// SetNillableCurrentStageExecutionID sets the "current_stage_execution_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCurrentStageExecutionID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCurrentStageExecutionID(*v)
	}
	return _u
}

// ClearCurrentStageExecutionID clears the value of the "current_stage_execution_id" field.
func (_u *SessionUpdate) ClearCurrentStageExecutionID() *SessionUpdate {
	_u.mutation.ClearCurrentStageExecutionID()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *SessionUpdate) SetAuthor(v string) *SessionUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableAuthor(v *string) *SessionUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *SessionUpdate) ClearAuthor() *SessionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdate) SetErrorMessage(v string) *SessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableErrorMessage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdate) ClearErrorMessage() *SessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SessionUpdate) SetPodID(v string) *SessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePodID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SessionUpdate) ClearPodID() *SessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetSlackMessageFingerprint sets the "slack_message_fingerprint" field.
func (_u *SessionUpdate) SetSlackMessageFingerprint(v string) *SessionUpdate {
	_u.mutation.SetSlackMessageFingerprint(v)
	return _u
}

// SetNillableSlackMessageFingerprint sets the "slack_message_fingerprint" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSlackMessageFingerprint(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSlackMessageFingerprint(*v)
	}
	return _u
}

// ClearSlackMessageFingerprint clears the value of the "slack_message_fingerprint" field.
func (_u *SessionUpdate) ClearSlackMessageFingerprint() *SessionUpdate {
	_u.mutation.ClearSlackMessageFingerprint()
	return _u
}

// SetLastInteractionAtUs sets the "last_interaction_at_us" field.
func (_u *SessionUpdate) SetLastInteractionAtUs(v int64) *SessionUpdate {
	_u.mutation.ResetLastInteractionAtUs()
	_u.mutation.SetLastInteractionAtUs(v)
	return _u
}

// SetNillableLastInteractionAtUs sets the "last_interaction_at_us" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastInteractionAtUs(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetLastInteractionAtUs(*v)
	}
	return _u
}

// AddLastInteractionAtUs adds value to the "last_interaction_at_us" field.
func (_u *SessionUpdate) AddLastInteractionAtUs(v int64) *SessionUpdate {
	_u.mutation.AddLastInteractionAtUs(v)
	return _u
}

// ClearLastInteractionAtUs clears the value of the "last_interaction_at_us" field.
func (_u *SessionUpdate) ClearLastInteractionAtUs() *SessionUpdate {
	_u.mutation.ClearLastInteractionAtUs()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *SessionUpdate) AddStageExecutionIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *SessionUpdate) AddStageExecutions(v ...*StageExecution) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *SessionUpdate) AddLlmInteractionIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *SessionUpdate) AddLlmInteractions(v ...*LLMInteraction) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *SessionUpdate) AddMcpInteractionIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *SessionUpdate) AddMcpInteractions(v ...*MCPInteraction) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *SessionUpdate) ClearStageExecutions() *SessionUpdate {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *SessionUpdate) RemoveStageExecutionIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *SessionUpdate) RemoveStageExecutions(v ...*StageExecution) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *SessionUpdate) ClearLlmInteractions() *SessionUpdate {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *SessionUpdate) RemoveLlmInteractionIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *SessionUpdate) RemoveLlmInteractions(v ...*LLMInteraction) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *SessionUpdate) ClearMcpInteractions() *SessionUpdate {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *SessionUpdate) RemoveMcpInteractionIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *SessionUpdate) RemoveMcpInteractions(v ...*MCPInteraction) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(session.FieldAlertType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertData(); ok {
		_spec.SetField(session.FieldAlertData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RunbookURL(); ok {
		_spec.SetField(session.FieldRunbookURL, field.TypeString, value)
	}
	if _u.mutation.RunbookURLCleared() {
		_spec.ClearField(session.FieldRunbookURL, field.TypeString)
	}
	if value, ok := _u.mutation.Runbook(); ok {
		_spec.SetField(session.FieldRunbook, field.TypeString, value)
	}
	if _u.mutation.RunbookCleared() {
		_spec.ClearField(session.FieldRunbook, field.TypeString)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(session.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChainConfig(); ok {
		_spec.SetField(session.FieldChainConfig, field.TypeJSON, value)
	}
	if _u.mutation.ChainConfigCleared() {
		_spec.ClearField(session.FieldChainConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAtUs(); ok {
		_spec.SetField(session.FieldStartedAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartedAtUs(); ok {
		_spec.AddField(session.FieldStartedAtUs, field.TypeInt64, value)
	}
	if _u.mutation.StartedAtUsCleared() {
		_spec.ClearField(session.FieldStartedAtUs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletedAtUs(); ok {
		_spec.SetField(session.FieldCompletedAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAtUs(); ok {
		_spec.AddField(session.FieldCompletedAtUs, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtUsCleared() {
		_spec.ClearField(session.FieldCompletedAtUs, field.TypeInt64)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(session.FieldFinalAnalysis, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(session.FieldFinalAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnalysisSummary(); ok {
		_spec.SetField(session.FieldFinalAnalysisSummary, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisSummaryCleared() {
		_spec.ClearField(session.FieldFinalAnalysisSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(session.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(session.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageIndexCleared() {
		_spec.ClearField(session.FieldCurrentStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStageExecutionID(); ok {
		_spec.SetField(session.FieldCurrentStageExecutionID, field.TypeString, value)
	}
	if _u.mutation.CurrentStageExecutionIDCleared() {
		_spec.ClearField(session.FieldCurrentStageExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(session.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(session.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(session.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(session.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.SlackMessageFingerprint(); ok {
		_spec.SetField(session.FieldSlackMessageFingerprint, field.TypeString, value)
	}
	if _u.mutation.SlackMessageFingerprintCleared() {
		_spec.ClearField(session.FieldSlackMessageFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAtUs(); ok {
		_spec.SetField(session.FieldLastInteractionAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastInteractionAtUs(); ok {
		_spec.AddField(session.FieldLastInteractionAtUs, field.TypeInt64, value)
	}
	if _u.mutation.LastInteractionAtUsCleared() {
		_spec.ClearField(session.FieldLastInteractionAtUs, field.TypeInt64)
	}
	if _u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StageExecutionsTable,
			Columns: []string{session.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StageExecutionsTable,
			Columns: []string{session.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StageExecutionsTable,
			Columns: []string{session.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.LlmInteractionsTable,
			Columns: []string{session.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.LlmInteractionsTable,
			Columns: []string{session.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.LlmInteractionsTable,
			Columns: []string{session.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.McpInteractionsTable,
			Columns: []string{session.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpInteractionsIDs(); len(nodes) > 0 && !_u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.McpInteractionsTable,
			Columns: []string{session.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.McpInteractionsTable,
			Columns: []string{session.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetAlertType sets the "alert_type" field.
func (_u *SessionUpdateOne) SetAlertType(v string) *SessionUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAlertType(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetAlertData sets the "alert_data" field.
func (_u *SessionUpdateOne) SetAlertData(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetAlertData(v)
	return _u
}

// SetRunbookURL sets the "runbook_url" field.
func (_u *SessionUpdateOne) SetRunbookURL(v string) *SessionUpdateOne {
	_u.mutation.SetRunbookURL(v)
	return _u
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableRunbookURL(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetRunbookURL(*v)
	}
	return _u
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (_u *SessionUpdateOne) ClearRunbookURL() *SessionUpdateOne {
	_u.mutation.ClearRunbookURL()
	return _u
}

// SetRunbook sets the "runbook" field.
func (_u *SessionUpdateOne) SetRunbook(v string) *SessionUpdateOne {
	_u.mutation.SetRunbook(v)
	return _u
}

// SetNillableRunbook sets the "runbook" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableRunbook(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetRunbook(*v)
	}
	return _u
}

// ClearRunbook clears the value of the "runbook" field.
func (_u *SessionUpdateOne) ClearRunbook() *SessionUpdateOne {
	_u.mutation.ClearRunbook()
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *SessionUpdateOne) SetChainID(v string) *SessionUpdateOne {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableChainID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetChainConfig sets the "chain_config" field.
func (_u *SessionUpdateOne) SetChainConfig(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetChainConfig(v)
	return _u
}

// ClearChainConfig clears the value of the "chain_config" field.
func (_u *SessionUpdateOne) ClearChainConfig() *SessionUpdateOne {
	_u.mutation.ClearChainConfig()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAtUs sets the "started_at_us" field.
func (_u *SessionUpdateOne) SetStartedAtUs(v int64) *SessionUpdateOne {
	_u.mutation.ResetStartedAtUs()
	_u.mutation.SetStartedAtUs(v)
	return _u
}

// SetNillableStartedAtUs sets the "started_at_us" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartedAtUs(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetStartedAtUs(*v)
	}
	return _u
}

// AddStartedAtUs adds value to the "started_at_us" field.
func (_u *SessionUpdateOne) AddStartedAtUs(v int64) *SessionUpdateOne {
	_u.mutation.AddStartedAtUs(v)
	return _u
}

// ClearStartedAtUs clears the value of the "started_at_us" field.
func (_u *SessionUpdateOne) ClearStartedAtUs() *SessionUpdateOne {
	_u.mutation.ClearStartedAtUs()
	return _u
}

// SetCompletedAtUs sets the "completed_at_us" field.
func (_u *SessionUpdateOne) SetCompletedAtUs(v int64) *SessionUpdateOne {
	_u.mutation.ResetCompletedAtUs()
	_u.mutation.SetCompletedAtUs(v)
	return _u
}

// SetNillableCompletedAtUs sets the "completed_at_us" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedAtUs(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedAtUs(*v)
	}
	return _u
}

// AddCompletedAtUs adds value to the "completed_at_us" field.
func (_u *SessionUpdateOne) AddCompletedAtUs(v int64) *SessionUpdateOne {
	_u.mutation.AddCompletedAtUs(v)
	return _u
}

// ClearCompletedAtUs clears the value of the "completed_at_us" field.
func (_u *SessionUpdateOne) ClearCompletedAtUs() *SessionUpdateOne {
	_u.mutation.ClearCompletedAtUs()
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *SessionUpdateOne) SetFinalAnalysis(v string) *SessionUpdateOne {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFinalAnalysis(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetFinalAnalysis(*v)
	}
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *SessionUpdateOne) ClearFinalAnalysis() *SessionUpdateOne {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetFinalAnalysisSummary sets the "final_analysis_summary" field.
func (_u *SessionUpdateOne) SetFinalAnalysisSummary(v string) *SessionUpdateOne {
	_u.mutation.SetFinalAnalysisSummary(v)
	return _u
}

// SetNillableFinalAnalysisSummary sets the "final_analysis_summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFinalAnalysisSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetFinalAnalysisSummary(*v)
	}
	return _u
}

// ClearFinalAnalysisSummary clears the value of the "final_analysis_summary" field.
func (_u *SessionUpdateOne) ClearFinalAnalysisSummary() *SessionUpdateOne {
	_u.mutation.ClearFinalAnalysisSummary()
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *SessionUpdateOne) SetCurrentStageIndex(v int) *SessionUpdateOne {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCurrentStageIndex(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *SessionUpdateOne) AddCurrentStageIndex(v int) *SessionUpdateOne {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (_u *SessionUpdateOne) ClearCurrentStageIndex() *SessionUpdateOne {
	_u.mutation.ClearCurrentStageIndex()
	return _u
}

// SetCurrentStageExecutionID sets the "current_stage_execution_id" field.
func (_u *SessionUpdateOne) SetCurrentStageExecutionID(v string) *SessionUpdateOne {
	_u.mutation.SetCurrentStageExecutionID(v)
	return _u
}

// SetNillableCurrentStageExecutionID sets the "current_stage_execution_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCurrentStageExecutionID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCurrentStageExecutionID(*v)
	}
	return _u
}

// ClearCurrentStageExecutionID clears the value of the "current_stage_execution_id" field.
func (_u *SessionUpdateOne) ClearCurrentStageExecutionID() *SessionUpdateOne {
	_u.mutation.ClearCurrentStageExecutionID()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *SessionUpdateOne) SetAuthor(v string) *SessionUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAuthor(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *SessionUpdateOne) ClearAuthor() *SessionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdateOne) SetErrorMessage(v string) *SessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableErrorMessage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdateOne) ClearErrorMessage() *SessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SessionUpdateOne) SetPodID(v string) *SessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePodID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SessionUpdateOne) ClearPodID() *SessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetSlackMessageFingerprint sets the "slack_message_fingerprint" field.
func (_u *SessionUpdateOne) SetSlackMessageFingerprint(v string) *SessionUpdateOne {
	_u.mutation.SetSlackMessageFingerprint(v)
	return _u
}

// SetNillableSlackMessageFingerprint sets the "slack_message_fingerprint" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSlackMessageFingerprint(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSlackMessageFingerprint(*v)
	}
	return _u
}

// ClearSlackMessageFingerprint clears the value of the "slack_message_fingerprint" field.
func (_u *SessionUpdateOne) ClearSlackMessageFingerprint() *SessionUpdateOne {
	_u.mutation.ClearSlackMessageFingerprint()
	return _u
}

// SetLastInteractionAtUs sets the "last_interaction_at_us" field.
func (_u *SessionUpdateOne) SetLastInteractionAtUs(v int64) *SessionUpdateOne {
	_u.mutation.ResetLastInteractionAtUs()
	_u.mutation.SetLastInteractionAtUs(v)
	return _u
}

// SetNillableLastInteractionAtUs sets the "last_interaction_at_us" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastInteractionAtUs(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAtUs(*v)
	}
	return _u
}

// AddLastInteractionAtUs adds value to the "last_interaction_at_us" field.
func (_u *SessionUpdateOne) AddLastInteractionAtUs(v int64) *SessionUpdateOne {
	_u.mutation.AddLastInteractionAtUs(v)
	return _u
}

// ClearLastInteractionAtUs clears the value of the "last_interaction_at_us" field.
func (_u *SessionUpdateOne) ClearLastInteractionAtUs() *SessionUpdateOne {
	_u.mutation.ClearLastInteractionAtUs()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *SessionUpdateOne) AddStageExecutionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *SessionUpdateOne) AddStageExecutions(v ...*StageExecution) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *SessionUpdateOne) AddLlmInteractionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *SessionUpdateOne) AddLlmInteractions(v ...*LLMInteraction) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *SessionUpdateOne) AddMcpInteractionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *SessionUpdateOne) AddMcpInteractions(v ...*MCPInteraction) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *SessionUpdateOne) ClearStageExecutions() *SessionUpdateOne {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *SessionUpdateOne) RemoveStageExecutionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *SessionUpdateOne) RemoveStageExecutions(v ...*StageExecution) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *SessionUpdateOne) ClearLlmInteractions() *SessionUpdateOne {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *SessionUpdateOne) RemoveLlmInteractionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *SessionUpdateOne) RemoveLlmInteractions(v ...*LLMInteraction) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *SessionUpdateOne) ClearMcpInteractions() *SessionUpdateOne {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *SessionUpdateOne) RemoveMcpInteractionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *SessionUpdateOne) RemoveMcpInteractions(v ...*MCPInteraction) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(session.FieldAlertType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertData(); ok {
		_spec.SetField(session.FieldAlertData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RunbookURL(); ok {
		_spec.SetField(session.FieldRunbookURL, field.TypeString, value)
	}
	if _u.mutation.RunbookURLCleared() {
		_spec.ClearField(session.FieldRunbookURL, field.TypeString)
	}
	if value, ok := _u.mutation.Runbook(); ok {
		_spec.SetField(session.FieldRunbook, field.TypeString, value)
	}
	if _u.mutation.RunbookCleared() {
		_spec.ClearField(session.FieldRunbook, field.TypeString)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(session.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChainConfig(); ok {
		_spec.SetField(session.FieldChainConfig, field.TypeJSON, value)
	}
	if _u.mutation.ChainConfigCleared() {
		_spec.ClearField(session.FieldChainConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAtUs(); ok {
		_spec.SetField(session.FieldStartedAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartedAtUs(); ok {
		_spec.AddField(session.FieldStartedAtUs, field.TypeInt64, value)
	}
	if _u.mutation.StartedAtUsCleared() {
		_spec.ClearField(session.FieldStartedAtUs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletedAtUs(); ok {
		_spec.SetField(session.FieldCompletedAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAtUs(); ok {
		_spec.AddField(session.FieldCompletedAtUs, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtUsCleared() {
		_spec.ClearField(session.FieldCompletedAtUs, field.TypeInt64)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(session.FieldFinalAnalysis, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(session.FieldFinalAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnalysisSummary(); ok {
		_spec.SetField(session.FieldFinalAnalysisSummary, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisSummaryCleared() {
		_spec.ClearField(session.FieldFinalAnalysisSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(session.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(session.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageIndexCleared() {
		_spec.ClearField(session.FieldCurrentStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStageExecutionID(); ok {
		_spec.SetField(session.FieldCurrentStageExecutionID, field.TypeString, value)
	}
	if _u.mutation.CurrentStageExecutionIDCleared() {
		_spec.ClearField(session.FieldCurrentStageExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(session.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(session.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(session.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(session.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.SlackMessageFingerprint(); ok {
		_spec.SetField(session.FieldSlackMessageFingerprint, field.TypeString, value)
	}
	if _u.mutation.SlackMessageFingerprintCleared() {
		_spec.ClearField(session.FieldSlackMessageFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAtUs(); ok {
		_spec.SetField(session.FieldLastInteractionAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastInteractionAtUs(); ok {
		_spec.AddField(session.FieldLastInteractionAtUs, field.TypeInt64, value)
	}
	if _u.mutation.LastInteractionAtUsCleared() {
		_spec.ClearField(session.FieldLastInteractionAtUs, field.TypeInt64)
	}
	if _u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StageExecutionsTable,
			Columns: []string{session.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StageExecutionsTable,
			Columns: []string{session.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StageExecutionsTable,
			Columns: []string{session.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.LlmInteractionsTable,
			Columns: []string{session.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.LlmInteractionsTable,
			Columns: []string{session.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.LlmInteractionsTable,
			Columns: []string{session.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.McpInteractionsTable,
			Columns: []string{session.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpInteractionsIDs(); len(nodes) > 0 && !_u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.McpInteractionsTable,
			Columns: []string{session.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.McpInteractionsTable,
			Columns: []string{session.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
