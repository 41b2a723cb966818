// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"stageline.io/stageline/ent/clientorg"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/ent/user"
)

// ClientOrgCreate is the builder for creating a ClientOrg entity.
type ClientOrgCreate struct {
	config
	mutation *ClientOrgMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientOrgCreate) SetCreatedAt(v time.Time) *ClientOrgCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientOrgCreate) SetNillableCreatedAt(v *time.Time) *ClientOrgCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClientOrgCreate) SetUpdatedAt(v time.Time) *ClientOrgCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClientOrgCreate) SetNillableUpdatedAt(v *time.Time) *ClientOrgCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTenantAccountID sets the "tenant_account_id" field.
func (_c *ClientOrgCreate) SetTenantAccountID(v string) *ClientOrgCreate {
	_c.mutation.SetTenantAccountID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ClientOrgCreate) SetName(v string) *ClientOrgCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetArchived sets the "archived" field.
func (_c *ClientOrgCreate) SetArchived(v bool) *ClientOrgCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *ClientOrgCreate) SetNillableArchived(v *bool) *ClientOrgCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClientOrgCreate) SetID(v string) *ClientOrgCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_c *ClientOrgCreate) AddUserIDs(ids ...string) *ClientOrgCreate {
	_c.mutation.AddUserIDs(ids...)
	return _c
}

// AddUsers adds the "users" edges to the User entity.
func (_c *ClientOrgCreate) AddUsers(v ...*User) *ClientOrgCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_c *ClientOrgCreate) AddProjectIDs(ids ...string) *ClientOrgCreate {
	_c.mutation.AddProjectIDs(ids...)
	return _c
}

// AddProjects adds the "projects" edges to the Project entity.
func (_c *ClientOrgCreate) AddProjects(v ...*Project) *ClientOrgCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProjectIDs(ids...)
}

// Mutation returns the ClientOrgMutation object of the builder.
func (_c *ClientOrgCreate) Mutation() *ClientOrgMutation {
	return _c.mutation
}

// Save creates the ClientOrg in the database.
func (_c *ClientOrgCreate) Save(ctx context.Context) (*ClientOrg, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientOrgCreate) SaveX(ctx context.Context) *ClientOrg {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientOrgCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientOrgCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientOrgCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientorg.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clientorg.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := clientorg.DefaultArchived
		_c.mutation.SetArchived(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientOrgCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClientOrg.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClientOrg.updated_at"`)}
	}
	if _, ok := _c.mutation.TenantAccountID(); !ok {
		return &ValidationError{Name: "tenant_account_id", err: errors.New(`ent: missing required field "ClientOrg.tenant_account_id"`)}
	}
	if v, ok := _c.mutation.TenantAccountID(); ok {
		if err := clientorg.TenantAccountIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_account_id", err: fmt.Errorf(`ent: validator failed for field "ClientOrg.tenant_account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ClientOrg.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := clientorg.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ClientOrg.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "ClientOrg.archived"`)}
	}
	return nil
}

func (_c *ClientOrgCreate) sqlSave(ctx context.Context) (*ClientOrg, error) {
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
			return nil, fmt.Errorf("unexpected ClientOrg.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClientOrgCreate) createSpec() (*ClientOrg, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientOrg{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientorg.Table, sqlgraph.NewFieldSpec(clientorg.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientorg.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clientorg.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TenantAccountID(); ok {
		_spec.SetField(clientorg.FieldTenantAccountID, field.TypeString, value)
		_node.TenantAccountID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clientorg.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(clientorg.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if nodes := _c.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   clientorg.UsersTable,
			Columns: clientorg.UsersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientorg.ProjectsTable,
			Columns: []string{clientorg.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClientOrgCreateBulk is the builder for creating many ClientOrg entities in bulk.
type ClientOrgCreateBulk struct {
	config
	err      error
	builders []*ClientOrgCreate
}

// Save creates the ClientOrg entities in the database.
func (_c *ClientOrgCreateBulk) Save(ctx context.Context) ([]*ClientOrg, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientOrg, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientOrgMutation)
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
func (_c *ClientOrgCreateBulk) SaveX(ctx context.Context) []*ClientOrg {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientOrgCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientOrgCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
