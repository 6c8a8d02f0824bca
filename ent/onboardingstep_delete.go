// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/onboardingstep"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// OnboardingStepDelete is the builder for deleting a OnboardingStep entity.
type OnboardingStepDelete struct {
	config
	hooks    []Hook
	mutation *OnboardingStepMutation
}

// Where appends a list predicates to the OnboardingStepDelete builder.
func (_d *OnboardingStepDelete) Where(ps ...predicate.OnboardingStep) *OnboardingStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OnboardingStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OnboardingStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(onboardingstep.Table, sqlgraph.NewFieldSpec(onboardingstep.FieldID, field.TypeString))
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

// OnboardingStepDeleteOne is the builder for deleting a single OnboardingStep entity.
type OnboardingStepDeleteOne struct {
	_d *OnboardingStepDelete
}

// Where appends a list predicates to the OnboardingStepDelete builder.
func (_d *OnboardingStepDeleteOne) Where(ps ...predicate.OnboardingStep) *OnboardingStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OnboardingStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{onboardingstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
