// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
)

// UserOnboardingStepDelete is the builder for deleting a UserOnboardingStep entity.
type UserOnboardingStepDelete struct {
	config
	hooks    []Hook
	mutation *UserOnboardingStepMutation
}

// Where appends a list predicates to the UserOnboardingStepDelete builder.
func (_d *UserOnboardingStepDelete) Where(ps ...predicate.UserOnboardingStep) *UserOnboardingStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UserOnboardingStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserOnboardingStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UserOnboardingStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(useronboardingstep.Table, sqlgraph.NewFieldSpec(useronboardingstep.FieldID, field.TypeString))
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

// UserOnboardingStepDeleteOne is the builder for deleting a single UserOnboardingStep entity.
type UserOnboardingStepDeleteOne struct {
	_d *UserOnboardingStepDelete
}

// Where appends a list predicates to the UserOnboardingStepDelete builder.
func (_d *UserOnboardingStepDeleteOne) Where(ps ...predicate.UserOnboardingStep) *UserOnboardingStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UserOnboardingStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{useronboardingstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserOnboardingStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
