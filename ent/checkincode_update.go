// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/checkincode"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// CheckinCodeUpdate is the builder for updating CheckinCode entities.
type CheckinCodeUpdate struct {
	config
	hooks    []Hook
	mutation *CheckinCodeMutation
}

// Where appends a list predicates to the CheckinCodeUpdate builder.
func (_u *CheckinCodeUpdate) Where(ps ...predicate.CheckinCode) *CheckinCodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *CheckinCodeUpdate) SetMaxUses(v int) *CheckinCodeUpdate {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *CheckinCodeUpdate) SetNillableMaxUses(v *int) *CheckinCodeUpdate {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *CheckinCodeUpdate) AddMaxUses(v int) *CheckinCodeUpdate {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *CheckinCodeUpdate) ClearMaxUses() *CheckinCodeUpdate {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetCurrentUses sets the "current_uses" field.
func (_u *CheckinCodeUpdate) SetCurrentUses(v int) *CheckinCodeUpdate {
	_u.mutation.ResetCurrentUses()
	_u.mutation.SetCurrentUses(v)
	return _u
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_u *CheckinCodeUpdate) SetNillableCurrentUses(v *int) *CheckinCodeUpdate {
	if v != nil {
		_u.SetCurrentUses(*v)
	}
	return _u
}

// AddCurrentUses adds value to the "current_uses" field.
func (_u *CheckinCodeUpdate) AddCurrentUses(v int) *CheckinCodeUpdate {
	_u.mutation.AddCurrentUses(v)
	return _u
}

// Mutation returns the CheckinCodeMutation object of the builder.
func (_u *CheckinCodeUpdate) Mutation() *CheckinCodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckinCodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckinCodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckinCodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckinCodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckinCodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkincode.Table, checkincode.Columns, sqlgraph.NewFieldSpec(checkincode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(checkincode.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(checkincode.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(checkincode.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentUses(); ok {
		_spec.SetField(checkincode.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentUses(); ok {
		_spec.AddField(checkincode.FieldCurrentUses, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkincode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckinCodeUpdateOne is the builder for updating a single CheckinCode entity.
type CheckinCodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckinCodeMutation
}

// SetMaxUses sets the "max_uses" field.
func (_u *CheckinCodeUpdateOne) SetMaxUses(v int) *CheckinCodeUpdateOne {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *CheckinCodeUpdateOne) SetNillableMaxUses(v *int) *CheckinCodeUpdateOne {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *CheckinCodeUpdateOne) AddMaxUses(v int) *CheckinCodeUpdateOne {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *CheckinCodeUpdateOne) ClearMaxUses() *CheckinCodeUpdateOne {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetCurrentUses sets the "current_uses" field.
func (_u *CheckinCodeUpdateOne) SetCurrentUses(v int) *CheckinCodeUpdateOne {
	_u.mutation.ResetCurrentUses()
	_u.mutation.SetCurrentUses(v)
	return _u
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_u *CheckinCodeUpdateOne) SetNillableCurrentUses(v *int) *CheckinCodeUpdateOne {
	if v != nil {
		_u.SetCurrentUses(*v)
	}
	return _u
}

// AddCurrentUses adds value to the "current_uses" field.
func (_u *CheckinCodeUpdateOne) AddCurrentUses(v int) *CheckinCodeUpdateOne {
	_u.mutation.AddCurrentUses(v)
	return _u
}

// Mutation returns the CheckinCodeMutation object of the builder.
func (_u *CheckinCodeUpdateOne) Mutation() *CheckinCodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckinCodeUpdate builder.
func (_u *CheckinCodeUpdateOne) Where(ps ...predicate.CheckinCode) *CheckinCodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckinCodeUpdateOne) Select(field string, fields ...string) *CheckinCodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckinCode entity.
func (_u *CheckinCodeUpdateOne) Save(ctx context.Context) (*CheckinCode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckinCodeUpdateOne) SaveX(ctx context.Context) *CheckinCode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckinCodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckinCodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckinCodeUpdateOne) sqlSave(ctx context.Context) (_node *CheckinCode, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkincode.Table, checkincode.Columns, sqlgraph.NewFieldSpec(checkincode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckinCode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkincode.FieldID)
		for _, f := range fields {
			if !checkincode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkincode.FieldID {
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
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(checkincode.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(checkincode.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(checkincode.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentUses(); ok {
		_spec.SetField(checkincode.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentUses(); ok {
		_spec.AddField(checkincode.FieldCurrentUses, field.TypeInt, value)
	}
	_node = &CheckinCode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkincode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
