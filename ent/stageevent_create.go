// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/ent/stageevent"
	"stageline.io/stageline/internal/domain"
)

// StageEventCreate is the builder for creating a StageEvent entity.
type StageEventCreate struct {
	config
	mutation *StageEventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageEventCreate) SetCreatedAt(v time.Time) *StageEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableCreatedAt(v *time.Time) *StageEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *StageEventCreate) SetProjectID(v string) *StageEventCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *StageEventCreate) SetFromStatus(v domain.Status) *StageEventCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableFromStatus(v *domain.Status) *StageEventCreate {
	if v != nil {
		_c.SetFromStatus(*v)
	}
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *StageEventCreate) SetToStatus(v domain.Status) *StageEventCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *StageEventCreate) SetChangedBy(v string) *StageEventCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableChangedBy(v *string) *StageEventCreate {
	if v != nil {
		_c.SetChangedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageEventCreate) SetID(v string) *StageEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *StageEventCreate) SetProject(v *Project) *StageEventCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the StageEventMutation object of the builder.
func (_c *StageEventCreate) Mutation() *StageEventMutation {
	return _c.mutation
}

// Save creates the StageEvent in the database.
func (_c *StageEventCreate) Save(ctx context.Context) (*StageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageEventCreate) SaveX(ctx context.Context) *StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageEventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageEvent.created_at"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "StageEvent.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := stageevent.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.project_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FromStatus(); ok {
		if err := stageevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "StageEvent.from_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "StageEvent.to_status"`)}
	}
	if v, ok := _c.mutation.ToStatus(); ok {
		if err := stageevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "StageEvent.to_status": %w`, err)}
		}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "StageEvent.project"`)}
	}
	return nil
}

func (_c *StageEventCreate) sqlSave(ctx context.Context) (*StageEvent, error) {
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
			return nil, fmt.Errorf("unexpected StageEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageEventCreate) createSpec() (*StageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageevent.Table, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(stageevent.FieldFromStatus, field.TypeEnum, value)
		_node.FromStatus = &value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(stageevent.FieldToStatus, field.TypeEnum, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(stageevent.FieldChangedBy, field.TypeString, value)
		_node.ChangedBy = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stageevent.ProjectTable,
			Columns: []string{stageevent.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageEventCreateBulk is the builder for creating many StageEvent entities in bulk.
type StageEventCreateBulk struct {
	config
	err      error
	builders []*StageEventCreate
}

// Save creates the StageEvent entities in the database.
func (_c *StageEventCreateBulk) Save(ctx context.Context) ([]*StageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageEventMutation)
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
func (_c *StageEventCreateBulk) SaveX(ctx context.Context) []*StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
