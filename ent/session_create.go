// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetAlertType sets the "alert_type" field.
func (_c *SessionCreate) SetAlertType(v string) *SessionCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetAlertData sets the "alert_data" field.
func (_c *SessionCreate) SetAlertData(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetAlertData(v)
	return _c
}

// SetRunbookURL sets the "runbook_url" field.
func (_c *SessionCreate) SetRunbookURL(v string) *SessionCreate {
	_c.mutation.SetRunbookURL(v)
	return _c
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_c *SessionCreate) SetNillableRunbookURL(v *string) *SessionCreate {
	if v != nil {
		_c.SetRunbookURL(*v)
	}
	return _c
}

// SetRunbook sets the "runbook" field.
func (_c *SessionCreate) SetRunbook(v string) *SessionCreate {
	_c.mutation.SetRunbook(v)
	return _c
}

// SetNillableRunbook sets the "runbook" field if the given value is not nil.
func (_c *SessionCreate) SetNillableRunbook(v *string) *SessionCreate {
	if v != nil {
		_c.SetRunbook(*v)
	}
	return _c
}

// SetChainID sets the "chain_id" field.
func (_c *SessionCreate) SetChainID(v string) *SessionCreate {
	_c.mutation.SetChainID(v)
	return _c
}

// SetChainConfig sets the "chain_config" field.
func (_c *SessionCreate) SetChainConfig(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetChainConfig(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAtUs sets the "created_at_us" field.
func (_c *SessionCreate) SetCreatedAtUs(v int64) *SessionCreate {
	_c.mutation.SetCreatedAtUs(v)
	return _c
}

// SetStartedAtUs sets the "started_at_us" field.
func (_c *SessionCreate) SetStartedAtUs(v int64) *SessionCreate {
	_c.mutation.SetStartedAtUs(v)
	return _c
}

// SetNillableStartedAtUs sets the "started_at_us" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAtUs(v *int64) *SessionCreate {
	if v != nil {
		_c.SetStartedAtUs(*v)
	}
	return _c
}

// SetCompletedAtUs sets the "completed_at_us" field.
func (_c *SessionCreate) SetCompletedAtUs(v int64) *SessionCreate {
	_c.mutation.SetCompletedAtUs(v)
	return _c
}

// SetNillableCompletedAtUs sets the "completed_at_us" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAtUs(v *int64) *SessionCreate {
	if v != nil {
		_c.SetCompletedAtUs(*v)
	}
	return _c
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_c *SessionCreate) SetFinalAnalysis(v string) *SessionCreate {
	_c.mutation.SetFinalAnalysis(v)
	return _c
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFinalAnalysis(v *string) *SessionCreate {
	if v != nil {
		_c.SetFinalAnalysis(*v)
	}
	return _c
}

// SetFinalAnalysisSummary sets the "final_analysis_summary" field.
func (_c *SessionCreate) SetFinalAnalysisSummary(v string) *SessionCreate {
	_c.mutation.SetFinalAnalysisSummary(v)
	return _c
}

// SetNillableFinalAnalysisSummary sets the "final_analysis_summary" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFinalAnalysisSummary(v *string) *SessionCreate {
	if v != nil {
		_c.SetFinalAnalysisSummary(*v)
	}
	return _c
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_c *SessionCreate) SetCurrentStageIndex(v int) *SessionCreate {
	_c.mutation.SetCurrentStageIndex(v)
	return _c
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCurrentStageIndex(v *int) *SessionCreate {
	if v != nil {
		_c.SetCurrentStageIndex(*v)
	}
	return _c
}

// SetCurrentStageExecutionID sets the "current_stage_execution_id" field.
func (_c *SessionCreate) SetCurrentStageExecutionID(v string) *SessionCreate {
	_c.mutation.SetCurrentStageExecutionID(v)
	return _c
}

// SetNillableCurrentStageExecutionID sets the "current_stage_execution_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCurrentStageExecutionID(v *string) *SessionCreate {
	if v != nil {
		_c.SetCurrentStageExecutionID(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *SessionCreate) SetAuthor(v string) *SessionCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *SessionCreate) SetNillableAuthor(v *string) *SessionCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SessionCreate) SetErrorMessage(v string) *SessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SessionCreate) SetNillableErrorMessage(v *string) *SessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *SessionCreate) SetPodID(v string) *SessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePodID(v *string) *SessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetSlackMessageFingerprint sets the "slack_message_fingerprint" field.
func (_c *SessionCreate) SetSlackMessageFingerprint(v string) *SessionCreate {
	_c.mutation.SetSlackMessageFingerprint(v)
	return _c
}

// SetNillableSlackMessageFingerprint sets the "slack_message_fingerprint" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSlackMessageFingerprint(v *string) *SessionCreate {
	if v != nil {
		_c.SetSlackMessageFingerprint(*v)
	}
	return _c
}

// SetLastInteractionAtUs sets the "last_interaction_at_us" field.
func (_c *SessionCreate) SetLastInteractionAtUs(v int64) *SessionCreate {
	_c.mutation.SetLastInteractionAtUs(v)
	return _c
}

// SetNillableLastInteractionAtUs sets the "last_interaction_at_us" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastInteractionAtUs(v *int64) *SessionCreate {
	if v != nil {
		_c.SetLastInteractionAtUs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_c *SessionCreate) AddStageExecutionIDs(ids ...string) *SessionCreate {
	_c.mutation.AddStageExecutionIDs(ids...)
	return _c
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_c *SessionCreate) AddStageExecutions(v ...*StageExecution) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageExecutionIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_c *SessionCreate) AddLlmInteractionIDs(ids ...string) *SessionCreate {
	_c.mutation.AddLlmInteractionIDs(ids...)
	return _c
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_c *SessionCreate) AddLlmInteractions(v ...*LLMInteraction) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_c *SessionCreate) AddMcpInteractionIDs(ids ...string) *SessionCreate {
	_c.mutation.AddMcpInteractionIDs(ids...)
	return _c
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_c *SessionCreate) AddMcpInteractions(v ...*MCPInteraction) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMcpInteractionIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`ent: missing required field "Session.alert_type"`)}
	}
	if _, ok := _c.mutation.AlertData(); !ok {
		return &ValidationError{Name: "alert_data", err: errors.New(`ent: missing required field "Session.alert_data"`)}
	}
	if _, ok := _c.mutation.ChainID(); !ok {
		return &ValidationError{Name: "chain_id", err: errors.New(`ent: missing required field "Session.chain_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAtUs(); !ok {
		return &ValidationError{Name: "created_at_us", err: errors.New(`ent: missing required field "Session.created_at_us"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(session.FieldAlertType, field.TypeString, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.AlertData(); ok {
		_spec.SetField(session.FieldAlertData, field.TypeJSON, value)
		_node.AlertData = value
	}
	if value, ok := _c.mutation.RunbookURL(); ok {
		_spec.SetField(session.FieldRunbookURL, field.TypeString, value)
		_node.RunbookURL = value
	}
	if value, ok := _c.mutation.Runbook(); ok {
		_spec.SetField(session.FieldRunbook, field.TypeString, value)
		_node.Runbook = value
	}
	if value, ok := _c.mutation.ChainID(); ok {
		_spec.SetField(session.FieldChainID, field.TypeString, value)
		_node.ChainID = value
	}
	if value, ok := _c.mutation.ChainConfig(); ok {
		_spec.SetField(session.FieldChainConfig, field.TypeJSON, value)
		_node.ChainConfig = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAtUs(); ok {
		_spec.SetField(session.FieldCreatedAtUs, field.TypeInt64, value)
		_node.CreatedAtUs = value
	}
	if value, ok := _c.mutation.StartedAtUs(); ok {
		_spec.SetField(session.FieldStartedAtUs, field.TypeInt64, value)
		_node.StartedAtUs = &value
	}
	if value, ok := _c.mutation.CompletedAtUs(); ok {
		_spec.SetField(session.FieldCompletedAtUs, field.TypeInt64, value)
		_node.CompletedAtUs = &value
	}
	if value, ok := _c.mutation.FinalAnalysis(); ok {
		_spec.SetField(session.FieldFinalAnalysis, field.TypeString, value)
		_node.FinalAnalysis = &value
	}
	if value, ok := _c.mutation.FinalAnalysisSummary(); ok {
		_spec.SetField(session.FieldFinalAnalysisSummary, field.TypeString, value)
		_node.FinalAnalysisSummary = &value
	}
	if value, ok := _c.mutation.CurrentStageIndex(); ok {
		_spec.SetField(session.FieldCurrentStageIndex, field.TypeInt, value)
		_node.CurrentStageIndex = &value
	}
	if value, ok := _c.mutation.CurrentStageExecutionID(); ok {
		_spec.SetField(session.FieldCurrentStageExecutionID, field.TypeString, value)
		_node.CurrentStageExecutionID = &value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(session.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(session.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.SlackMessageFingerprint(); ok {
		_spec.SetField(session.FieldSlackMessageFingerprint, field.TypeString, value)
		_node.SlackMessageFingerprint = &value
	}
	if value, ok := _c.mutation.LastInteractionAtUs(); ok {
		_spec.SetField(session.FieldLastInteractionAtUs, field.TypeInt64, value)
		_node.LastInteractionAtUs = &value
	}
	if nodes := _c.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.McpInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
