// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-ai/tarsy/ent/warning"
)

// WarningCreate is the builder for creating a Warning entity.
type WarningCreate struct {
	config
	mutation *WarningMutation
	hooks    []Hook
}

// SetCategory sets the "category" field.
func (_c *WarningCreate) SetCategory(v string) *WarningCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetServerID sets the "server_id" field.
func (_c *WarningCreate) SetServerID(v string) *WarningCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_c *WarningCreate) SetNillableServerID(v *string) *WarningCreate {
	if v != nil {
		_c.SetServerID(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *WarningCreate) SetMessage(v string) *WarningCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *WarningCreate) SetDetails(v string) *WarningCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *WarningCreate) SetNillableDetails(v *string) *WarningCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetCreatedAtUs sets the "created_at_us" field.
func (_c *WarningCreate) SetCreatedAtUs(v int64) *WarningCreate {
	_c.mutation.SetCreatedAtUs(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WarningCreate) SetID(v string) *WarningCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WarningMutation object of the builder.
func (_c *WarningCreate) Mutation() *WarningMutation {
	return _c.mutation
}

// Save creates the Warning in the database.
func (_c *WarningCreate) Save(ctx context.Context) (*Warning, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WarningCreate) SaveX(ctx context.Context) *Warning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarningCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarningCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WarningCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Warning.category"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Warning.message"`)}
	}
	if _, ok := _c.mutation.CreatedAtUs(); !ok {
		return &ValidationError{Name: "created_at_us", err: errors.New(`ent: missing required field "Warning.created_at_us"`)}
	}
	return nil
}

func (_c *WarningCreate) sqlSave(ctx context.Context) (*Warning, error) {
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
			return nil, fmt.Errorf("unexpected Warning.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WarningCreate) createSpec() (*Warning, *sqlgraph.CreateSpec) {
	var (
		_node = &Warning{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(warning.Table, sqlgraph.NewFieldSpec(warning.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(warning.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ServerID(); ok {
		_spec.SetField(warning.FieldServerID, field.TypeString, value)
		_node.ServerID = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(warning.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(warning.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAtUs(); ok {
		_spec.SetField(warning.FieldCreatedAtUs, field.TypeInt64, value)
		_node.CreatedAtUs = value
	}
	return _node, _spec
}

// WarningCreateBulk is the builder for creating many Warning entities in bulk.
type WarningCreateBulk struct {
	config
	err      error
	builders []*WarningCreate
}

// Save creates the Warning entities in the database.
func (_c *WarningCreateBulk) Save(ctx context.Context) ([]*Warning, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Warning, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WarningMutation)
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
func (_c *WarningCreateBulk) SaveX(ctx context.Context) []*Warning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarningCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarningCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
