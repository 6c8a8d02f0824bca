// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// CheckinUpdate is the builder for updating Checkin entities.
type CheckinUpdate struct {
	config
	hooks    []Hook
	mutation *CheckinMutation
}

// Where appends a list predicates to the CheckinUpdate builder.
func (_u *CheckinUpdate) Where(ps ...predicate.Checkin) *CheckinUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCodeID sets the "code_id" field.
func (_u *CheckinUpdate) SetCodeID(v string) *CheckinUpdate {
	_u.mutation.SetCodeID(v)
	return _u
}

// SetNillableCodeID sets the "code_id" field if the given value is not nil.
func (_u *CheckinUpdate) SetNillableCodeID(v *string) *CheckinUpdate {
	if v != nil {
		_u.SetCodeID(*v)
	}
	return _u
}

// ClearCodeID clears the value of the "code_id" field.
func (_u *CheckinUpdate) ClearCodeID() *CheckinUpdate {
	_u.mutation.ClearCodeID()
	return _u
}

// Mutation returns the CheckinMutation object of the builder.
func (_u *CheckinUpdate) Mutation() *CheckinMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckinUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckinUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckinUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckinUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckinUpdate) check() error {
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkin.event"`)
	}
	return nil
}

func (_u *CheckinUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkin.Table, checkin.Columns, sqlgraph.NewFieldSpec(checkin.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CodeID(); ok {
		_spec.SetField(checkin.FieldCodeID, field.TypeString, value)
	}
	if _u.mutation.CodeIDCleared() {
		_spec.ClearField(checkin.FieldCodeID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckinUpdateOne is the builder for updating a single Checkin entity.
type CheckinUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckinMutation
}

// SetCodeID sets the "code_id" field.
func (_u *CheckinUpdateOne) SetCodeID(v string) *CheckinUpdateOne {
	_u.mutation.SetCodeID(v)
	return _u
}

// SetNillableCodeID sets the "code_id" field if the given value is not nil.
func (_u *CheckinUpdateOne) SetNillableCodeID(v *string) *CheckinUpdateOne {
	if v != nil {
		_u.SetCodeID(*v)
	}
	return _u
}

// ClearCodeID clears the value of the "code_id" field.
func (_u *CheckinUpdateOne) ClearCodeID() *CheckinUpdateOne {
	_u.mutation.ClearCodeID()
	return _u
}

// Mutation returns the CheckinMutation object of the builder.
func (_u *CheckinUpdateOne) Mutation() *CheckinMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckinUpdate builder.
func (_u *CheckinUpdateOne) Where(ps ...predicate.Checkin) *CheckinUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckinUpdateOne) Select(field string, fields ...string) *CheckinUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkin entity.
func (_u *CheckinUpdateOne) Save(ctx context.Context) (*Checkin, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckinUpdateOne) SaveX(ctx context.Context) *Checkin {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckinUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckinUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckinUpdateOne) check() error {
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkin.event"`)
	}
	return nil
}

func (_u *CheckinUpdateOne) sqlSave(ctx context.Context) (_node *Checkin, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkin.Table, checkin.Columns, sqlgraph.NewFieldSpec(checkin.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkin.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkin.FieldID)
		for _, f := range fields {
			if !checkin.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkin.FieldID {
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
	if value, ok := _u.mutation.CodeID(); ok {
		_spec.SetField(checkin.FieldCodeID, field.TypeString, value)
	}
	if _u.mutation.CodeIDCleared() {
		_spec.ClearField(checkin.FieldCodeID, field.TypeString)
	}
	_node = &Checkin{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
