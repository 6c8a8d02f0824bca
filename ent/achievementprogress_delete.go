// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// AchievementProgressDelete is the builder for deleting a AchievementProgress entity.
type AchievementProgressDelete struct {
	config
	hooks    []Hook
	mutation *AchievementProgressMutation
}

// Where appends a list predicates to the AchievementProgressDelete builder.
func (_d *AchievementProgressDelete) Where(ps ...predicate.AchievementProgress) *AchievementProgressDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AchievementProgressDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AchievementProgressDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AchievementProgressDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(achievementprogress.Table, sqlgraph.NewFieldSpec(achievementprogress.FieldID, field.TypeString))
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

// AchievementProgressDeleteOne is the builder for deleting a single AchievementProgress entity.
type AchievementProgressDeleteOne struct {
	_d *AchievementProgressDelete
}

// Where appends a list predicates to the AchievementProgressDelete builder.
func (_d *AchievementProgressDeleteOne) Where(ps ...predicate.AchievementProgress) *AchievementProgressDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AchievementProgressDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{achievementprogress.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AchievementProgressDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
