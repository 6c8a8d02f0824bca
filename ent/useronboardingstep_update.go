// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
)

// UserOnboardingStepUpdate is the builder for updating UserOnboardingStep entities.
type UserOnboardingStepUpdate struct {
	config
	hooks    []Hook
	mutation *UserOnboardingStepMutation
}

// Where appends a list predicates to the UserOnboardingStepUpdate builder.
func (_u *UserOnboardingStepUpdate) Where(ps ...predicate.UserOnboardingStep) *UserOnboardingStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UserOnboardingStepUpdate) SetCompletedAt(v time.Time) *UserOnboardingStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UserOnboardingStepUpdate) SetNillableCompletedAt(v *time.Time) *UserOnboardingStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the UserOnboardingStepMutation object of the builder.
func (_u *UserOnboardingStepUpdate) Mutation() *UserOnboardingStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserOnboardingStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserOnboardingStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserOnboardingStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserOnboardingStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserOnboardingStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(useronboardingstep.Table, useronboardingstep.Columns, sqlgraph.NewFieldSpec(useronboardingstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(useronboardingstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useronboardingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserOnboardingStepUpdateOne is the builder for updating a single UserOnboardingStep entity.
type UserOnboardingStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserOnboardingStepMutation
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UserOnboardingStepUpdateOne) SetCompletedAt(v time.Time) *UserOnboardingStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UserOnboardingStepUpdateOne) SetNillableCompletedAt(v *time.Time) *UserOnboardingStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the UserOnboardingStepMutation object of the builder.
func (_u *UserOnboardingStepUpdateOne) Mutation() *UserOnboardingStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserOnboardingStepUpdate builder.
func (_u *UserOnboardingStepUpdateOne) Where(ps ...predicate.UserOnboardingStep) *UserOnboardingStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserOnboardingStepUpdateOne) Select(field string, fields ...string) *UserOnboardingStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserOnboardingStep entity.
func (_u *UserOnboardingStepUpdateOne) Save(ctx context.Context) (*UserOnboardingStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserOnboardingStepUpdateOne) SaveX(ctx context.Context) *UserOnboardingStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserOnboardingStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserOnboardingStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserOnboardingStepUpdateOne) sqlSave(ctx context.Context) (_node *UserOnboardingStep, err error) {
	_spec := sqlgraph.NewUpdateSpec(useronboardingstep.Table, useronboardingstep.Columns, sqlgraph.NewFieldSpec(useronboardingstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserOnboardingStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, useronboardingstep.FieldID)
		for _, f := range fields {
			if !useronboardingstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != useronboardingstep.FieldID {
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
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(useronboardingstep.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &UserOnboardingStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useronboardingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
