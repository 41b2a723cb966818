// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"stageline.io/stageline/ent/clientorg"
	"stageline.io/stageline/ent/predicate"
)

// ClientOrgDelete is the builder for deleting a ClientOrg entity.
type ClientOrgDelete struct {
	config
	hooks    []Hook
	mutation *ClientOrgMutation
}

// Where appends a list predicates to the ClientOrgDelete builder.
func (_d *ClientOrgDelete) Where(ps ...predicate.ClientOrg) *ClientOrgDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClientOrgDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClientOrgDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClientOrgDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(clientorg.Table, sqlgraph.NewFieldSpec(clientorg.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ClientOrgDeleteOne is the builder for deleting a single ClientOrg entity.
type ClientOrgDeleteOne struct {
	_d *ClientOrgDelete
}

// Where appends a list predicates to the ClientOrgDelete builder.
func (_d *ClientOrgDeleteOne) Where(ps ...predicate.ClientOrg) *ClientOrgDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClientOrgDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{clientorg.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClientOrgDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
