// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-ai/tarsy/ent/predicate"
	"github.com/tarsy-ai/tarsy/ent/warning"
)

// WarningUpdate is the builder for updating Warning entities.
type WarningUpdate struct {
	config
	hooks    []Hook
	mutation *WarningMutation
}

// Where appends a list predicates to the WarningUpdate builder.
func (_u *WarningUpdate) Where(ps ...predicate.Warning) *WarningUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *WarningUpdate) SetCategory(v string) *WarningUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WarningUpdate) SetNillableCategory(v *string) *WarningUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *WarningUpdate) SetServerID(v string) *WarningUpdate {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *WarningUpdate) SetNillableServerID(v *string) *WarningUpdate {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// ClearServerID clears the value of the "server_id" field.
func (_u *WarningUpdate) ClearServerID() *WarningUpdate {
	_u.mutation.ClearServerID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *WarningUpdate) SetMessage(v string) *WarningUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WarningUpdate) SetNillableMessage(v *string) *WarningUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *WarningUpdate) SetDetails(v string) *WarningUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *WarningUpdate) SetNillableDetails(v *string) *WarningUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *WarningUpdate) ClearDetails() *WarningUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetCreatedAtUs sets the "created_at_us" field.
func (_u *WarningUpdate) SetCreatedAtUs(v int64) *WarningUpdate {
	_u.mutation.ResetCreatedAtUs()
	_u.mutation.SetCreatedAtUs(v)
	return _u
}

// SetNillableCreatedAtUs sets the "created_at_us" field if the given value is not nil.
func (_u *WarningUpdate) SetNillableCreatedAtUs(v *int64) *WarningUpdate {
	if v != nil {
		_u.SetCreatedAtUs(*v)
	}
	return _u
}

// AddCreatedAtUs adds value to the "created_at_us" field.
func (_u *WarningUpdate) AddCreatedAtUs(v int64) *WarningUpdate {
	_u.mutation.AddCreatedAtUs(v)
	return _u
}

// Mutation returns the WarningMutation object of the builder.
func (_u *WarningUpdate) Mutation() *WarningMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WarningUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarningUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WarningUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarningUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WarningUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(warning.Table, warning.Columns, sqlgraph.NewFieldSpec(warning.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(warning.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServerID(); ok {
		_spec.SetField(warning.FieldServerID, field.TypeString, value)
	}
	if _u.mutation.ServerIDCleared() {
		_spec.ClearField(warning.FieldServerID, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(warning.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(warning.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(warning.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAtUs(); ok {
		_spec.SetField(warning.FieldCreatedAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtUs(); ok {
		_spec.AddField(warning.FieldCreatedAtUs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WarningUpdateOne is the builder for updating a single Warning entity.
type WarningUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WarningMutation
}

// SetCategory sets the "category" field.
func (_u *WarningUpdateOne) SetCategory(v string) *WarningUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WarningUpdateOne) SetNillableCategory(v *string) *WarningUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *WarningUpdateOne) SetServerID(v string) *WarningUpdateOne {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *WarningUpdateOne) SetNillableServerID(v *string) *WarningUpdateOne {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// ClearServerID clears the value of the "server_id" field.
func (_u *WarningUpdateOne) ClearServerID() *WarningUpdateOne {
	_u.mutation.ClearServerID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *WarningUpdateOne) SetMessage(v string) *WarningUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WarningUpdateOne) SetNillableMessage(v *string) *WarningUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *WarningUpdateOne) SetDetails(v string) *WarningUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *WarningUpdateOne) SetNillableDetails(v *string) *WarningUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *WarningUpdateOne) ClearDetails() *WarningUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetCreatedAtUs sets the "created_at_us" field.
func (_u *WarningUpdateOne) SetCreatedAtUs(v int64) *WarningUpdateOne {
	_u.mutation.ResetCreatedAtUs()
	_u.mutation.SetCreatedAtUs(v)
	return _u
}

// SetNillableCreatedAtUs sets the "created_at_us" field if the given value is not nil.
func (_u *WarningUpdateOne) SetNillableCreatedAtUs(v *int64) *WarningUpdateOne {
	if v != nil {
		_u.SetCreatedAtUs(*v)
	}
	return _u
}

// AddCreatedAtUs adds value to the "created_at_us" field.
func (_u *WarningUpdateOne) AddCreatedAtUs(v int64) *WarningUpdateOne {
	_u.mutation.AddCreatedAtUs(v)
	return _u
}

// Mutation returns the WarningMutation object of the builder.
func (_u *WarningUpdateOne) Mutation() *WarningMutation {
	return _u.mutation
}

// Where appends a list predicates to the WarningUpdate builder.
func (_u *WarningUpdateOne) Where(ps ...predicate.Warning) *WarningUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WarningUpdateOne) Select(field string, fields ...string) *WarningUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Warning entity.
func (_u *WarningUpdateOne) Save(ctx context.Context) (*Warning, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarningUpdateOne) SaveX(ctx context.Context) *Warning {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WarningUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarningUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WarningUpdateOne) sqlSave(ctx context.Context) (_node *Warning, err error) {
	_spec := sqlgraph.NewUpdateSpec(warning.Table, warning.Columns, sqlgraph.NewFieldSpec(warning.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Warning.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, warning.FieldID)
		for _, f := range fields {
			if !warning.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != warning.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(warning.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServerID(); ok {
		_spec.SetField(warning.FieldServerID, field.TypeString, value)
	}
	if _u.mutation.ServerIDCleared() {
		_spec.ClearField(warning.FieldServerID, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(warning.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(warning.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(warning.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAtUs(); ok {
		_spec.SetField(warning.FieldCreatedAtUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtUs(); ok {
		_spec.AddField(warning.FieldCreatedAtUs, field.TypeInt64, value)
	}
	_node = &Warning{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
