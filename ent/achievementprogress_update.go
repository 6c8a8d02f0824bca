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
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// AchievementProgressUpdate is the builder for updating AchievementProgress entities.
type AchievementProgressUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementProgressMutation
}

// Where appends a list predicates to the AchievementProgressUpdate builder.
func (_u *AchievementProgressUpdate) Where(ps ...predicate.AchievementProgress) *AchievementProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentValue sets the "current_value" field.
func (_u *AchievementProgressUpdate) SetCurrentValue(v int) *AchievementProgressUpdate {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *AchievementProgressUpdate) SetNillableCurrentValue(v *int) *AchievementProgressUpdate {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *AchievementProgressUpdate) AddCurrentValue(v int) *AchievementProgressUpdate {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *AchievementProgressUpdate) SetTargetValue(v int) *AchievementProgressUpdate {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *AchievementProgressUpdate) SetNillableTargetValue(v *int) *AchievementProgressUpdate {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *AchievementProgressUpdate) AddTargetValue(v int) *AchievementProgressUpdate {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AchievementProgressUpdate) SetCompletedAt(v time.Time) *AchievementProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AchievementProgressUpdate) SetNillableCompletedAt(v *time.Time) *AchievementProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AchievementProgressUpdate) ClearCompletedAt() *AchievementProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AchievementProgressUpdate) SetUpdatedAt(v time.Time) *AchievementProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AchievementProgressMutation object of the builder.
func (_u *AchievementProgressUpdate) Mutation() *AchievementProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AchievementProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := achievementprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AchievementProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(achievementprogress.Table, achievementprogress.Columns, sqlgraph.NewFieldSpec(achievementprogress.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(achievementprogress.FieldCurrentValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(achievementprogress.FieldCurrentValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(achievementprogress.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(achievementprogress.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(achievementprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(achievementprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(achievementprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementProgressUpdateOne is the builder for updating a single AchievementProgress entity.
type AchievementProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementProgressMutation
}

// SetCurrentValue sets the "current_value" field.
func (_u *AchievementProgressUpdateOne) SetCurrentValue(v int) *AchievementProgressUpdateOne {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *AchievementProgressUpdateOne) SetNillableCurrentValue(v *int) *AchievementProgressUpdateOne {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *AchievementProgressUpdateOne) AddCurrentValue(v int) *AchievementProgressUpdateOne {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *AchievementProgressUpdateOne) SetTargetValue(v int) *AchievementProgressUpdateOne {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *AchievementProgressUpdateOne) SetNillableTargetValue(v *int) *AchievementProgressUpdateOne {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *AchievementProgressUpdateOne) AddTargetValue(v int) *AchievementProgressUpdateOne {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AchievementProgressUpdateOne) SetCompletedAt(v time.Time) *AchievementProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AchievementProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *AchievementProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AchievementProgressUpdateOne) ClearCompletedAt() *AchievementProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AchievementProgressUpdateOne) SetUpdatedAt(v time.Time) *AchievementProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AchievementProgressMutation object of the builder.
func (_u *AchievementProgressUpdateOne) Mutation() *AchievementProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementProgressUpdate builder.
func (_u *AchievementProgressUpdateOne) Where(ps ...predicate.AchievementProgress) *AchievementProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementProgressUpdateOne) Select(field string, fields ...string) *AchievementProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AchievementProgress entity.
func (_u *AchievementProgressUpdateOne) Save(ctx context.Context) (*AchievementProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementProgressUpdateOne) SaveX(ctx context.Context) *AchievementProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AchievementProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := achievementprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AchievementProgressUpdateOne) sqlSave(ctx context.Context) (_node *AchievementProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(achievementprogress.Table, achievementprogress.Columns, sqlgraph.NewFieldSpec(achievementprogress.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AchievementProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievementprogress.FieldID)
		for _, f := range fields {
			if !achievementprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievementprogress.FieldID {
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
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(achievementprogress.FieldCurrentValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(achievementprogress.FieldCurrentValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(achievementprogress.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(achievementprogress.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(achievementprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(achievementprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(achievementprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AchievementProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
