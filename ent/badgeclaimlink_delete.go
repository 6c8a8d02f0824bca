// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// BadgeClaimLinkDelete is the builder for deleting a BadgeClaimLink entity.
type BadgeClaimLinkDelete struct {
	config
	hooks    []Hook
	mutation *BadgeClaimLinkMutation
}

// Where appends a list predicates to the BadgeClaimLinkDelete builder.
func (_d *BadgeClaimLinkDelete) Where(ps ...predicate.BadgeClaimLink) *BadgeClaimLinkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BadgeClaimLinkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BadgeClaimLinkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BadgeClaimLinkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(badgeclaimlink.Table, sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString))
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

// BadgeClaimLinkDeleteOne is the builder for deleting a single BadgeClaimLink entity.
type BadgeClaimLinkDeleteOne struct {
	_d *BadgeClaimLinkDelete
}

// Where appends a list predicates to the BadgeClaimLinkDelete builder.
func (_d *BadgeClaimLinkDeleteOne) Where(ps ...predicate.BadgeClaimLink) *BadgeClaimLinkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BadgeClaimLinkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{badgeclaimlink.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BadgeClaimLinkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
