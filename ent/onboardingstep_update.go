// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/onboardingstep"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// OnboardingStepUpdate is the builder for updating OnboardingStep entities.
type OnboardingStepUpdate struct {
	config
	hooks    []Hook
	mutation *OnboardingStepMutation
}

// Where appends a list predicates to the OnboardingStepUpdate builder.
func (_u *OnboardingStepUpdate) Where(ps ...predicate.OnboardingStep) *OnboardingStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *OnboardingStepUpdate) SetKey(v string) *OnboardingStepUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *OnboardingStepUpdate) SetNillableKey(v *string) *OnboardingStepUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *OnboardingStepUpdate) SetName(v string) *OnboardingStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OnboardingStepUpdate) SetNillableName(v *string) *OnboardingStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *OnboardingStepUpdate) SetDescription(v string) *OnboardingStepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *OnboardingStepUpdate) SetNillableDescription(v *string) *OnboardingStepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *OnboardingStepUpdate) ClearDescription() *OnboardingStepUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetEventKey sets the "event_key" field.
func (_u *OnboardingStepUpdate) SetEventKey(v string) *OnboardingStepUpdate {
	_u.mutation.SetEventKey(v)
	return _u
}

// SetNillableEventKey sets the "event_key" field if the given value is not nil.
func (_u *OnboardingStepUpdate) SetNillableEventKey(v *string) *OnboardingStepUpdate {
	if v != nil {
		_u.SetEventKey(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *OnboardingStepUpdate) SetSortOrder(v int) *OnboardingStepUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *OnboardingStepUpdate) SetNillableSortOrder(v *int) *OnboardingStepUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *OnboardingStepUpdate) AddSortOrder(v int) *OnboardingStepUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *OnboardingStepUpdate) SetEnabled(v bool) *OnboardingStepUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *OnboardingStepUpdate) SetNillableEnabled(v *bool) *OnboardingStepUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the OnboardingStepMutation object of the builder.
func (_u *OnboardingStepUpdate) Mutation() *OnboardingStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OnboardingStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OnboardingStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OnboardingStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(onboardingstep.Table, onboardingstep.Columns, sqlgraph.NewFieldSpec(onboardingstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(onboardingstep.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(onboardingstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(onboardingstep.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(onboardingstep.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EventKey(); ok {
		_spec.SetField(onboardingstep.FieldEventKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(onboardingstep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(onboardingstep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(onboardingstep.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OnboardingStepUpdateOne is the builder for updating a single OnboardingStep entity.
type OnboardingStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OnboardingStepMutation
}

// SetKey sets the "key" field.
func (_u *OnboardingStepUpdateOne) SetKey(v string) *OnboardingStepUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *OnboardingStepUpdateOne) SetNillableKey(v *string) *OnboardingStepUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *OnboardingStepUpdateOne) SetName(v string) *OnboardingStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OnboardingStepUpdateOne) SetNillableName(v *string) *OnboardingStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *OnboardingStepUpdateOne) SetDescription(v string) *OnboardingStepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *OnboardingStepUpdateOne) SetNillableDescription(v *string) *OnboardingStepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *OnboardingStepUpdateOne) ClearDescription() *OnboardingStepUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetEventKey sets the "event_key" field.
func (_u *OnboardingStepUpdateOne) SetEventKey(v string) *OnboardingStepUpdateOne {
	_u.mutation.SetEventKey(v)
	return _u
}

// SetNillableEventKey sets the "event_key" field if the given value is not nil.
func (_u *OnboardingStepUpdateOne) SetNillableEventKey(v *string) *OnboardingStepUpdateOne {
	if v != nil {
		_u.SetEventKey(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *OnboardingStepUpdateOne) SetSortOrder(v int) *OnboardingStepUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *OnboardingStepUpdateOne) SetNillableSortOrder(v *int) *OnboardingStepUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *OnboardingStepUpdateOne) AddSortOrder(v int) *OnboardingStepUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *OnboardingStepUpdateOne) SetEnabled(v bool) *OnboardingStepUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *OnboardingStepUpdateOne) SetNillableEnabled(v *bool) *OnboardingStepUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the OnboardingStepMutation object of the builder.
func (_u *OnboardingStepUpdateOne) Mutation() *OnboardingStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the OnboardingStepUpdate builder.
func (_u *OnboardingStepUpdateOne) Where(ps ...predicate.OnboardingStep) *OnboardingStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OnboardingStepUpdateOne) Select(field string, fields ...string) *OnboardingStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OnboardingStep entity.
func (_u *OnboardingStepUpdateOne) Save(ctx context.Context) (*OnboardingStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingStepUpdateOne) SaveX(ctx context.Context) *OnboardingStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OnboardingStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OnboardingStepUpdateOne) sqlSave(ctx context.Context) (_node *OnboardingStep, err error) {
	_spec := sqlgraph.NewUpdateSpec(onboardingstep.Table, onboardingstep.Columns, sqlgraph.NewFieldSpec(onboardingstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OnboardingStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onboardingstep.FieldID)
		for _, f := range fields {
			if !onboardingstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != onboardingstep.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(onboardingstep.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(onboardingstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(onboardingstep.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(onboardingstep.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EventKey(); ok {
		_spec.SetField(onboardingstep.FieldEventKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(onboardingstep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(onboardingstep.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(onboardingstep.FieldEnabled, field.TypeBool, value)
	}
	_node = &OnboardingStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
