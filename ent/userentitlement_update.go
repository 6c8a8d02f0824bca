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
	"github.com/gatherhub/gatherhub/ent/userentitlement"
)

// UserEntitlementUpdate is the builder for updating UserEntitlement entities.
type UserEntitlementUpdate struct {
	config
	hooks    []Hook
	mutation *UserEntitlementMutation
}

// Where appends a list predicates to the UserEntitlementUpdate builder.
func (_u *UserEntitlementUpdate) Where(ps ...predicate.UserEntitlement) *UserEntitlementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGrantedAt sets the "granted_at" field.
func (_u *UserEntitlementUpdate) SetGrantedAt(v time.Time) *UserEntitlementUpdate {
	_u.mutation.SetGrantedAt(v)
	return _u
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (_u *UserEntitlementUpdate) SetNillableGrantedAt(v *time.Time) *UserEntitlementUpdate {
	if v != nil {
		_u.SetGrantedAt(*v)
	}
	return _u
}

// Mutation returns the UserEntitlementMutation object of the builder.
func (_u *UserEntitlementUpdate) Mutation() *UserEntitlementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserEntitlementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserEntitlementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserEntitlementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserEntitlementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserEntitlementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userentitlement.Table, userentitlement.Columns, sqlgraph.NewFieldSpec(userentitlement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GrantedAt(); ok {
		_spec.SetField(userentitlement.FieldGrantedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userentitlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserEntitlementUpdateOne is the builder for updating a single UserEntitlement entity.
type UserEntitlementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserEntitlementMutation
}

// SetGrantedAt sets the "granted_at" field.
func (_u *UserEntitlementUpdateOne) SetGrantedAt(v time.Time) *UserEntitlementUpdateOne {
	_u.mutation.SetGrantedAt(v)
	return _u
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (_u *UserEntitlementUpdateOne) SetNillableGrantedAt(v *time.Time) *UserEntitlementUpdateOne {
	if v != nil {
		_u.SetGrantedAt(*v)
	}
	return _u
}

// Mutation returns the UserEntitlementMutation object of the builder.
func (_u *UserEntitlementUpdateOne) Mutation() *UserEntitlementMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserEntitlementUpdate builder.
func (_u *UserEntitlementUpdateOne) Where(ps ...predicate.UserEntitlement) *UserEntitlementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserEntitlementUpdateOne) Select(field string, fields ...string) *UserEntitlementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserEntitlement entity.
func (_u *UserEntitlementUpdateOne) Save(ctx context.Context) (*UserEntitlement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserEntitlementUpdateOne) SaveX(ctx context.Context) *UserEntitlement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserEntitlementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserEntitlementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserEntitlementUpdateOne) sqlSave(ctx context.Context) (_node *UserEntitlement, err error) {
	_spec := sqlgraph.NewUpdateSpec(userentitlement.Table, userentitlement.Columns, sqlgraph.NewFieldSpec(userentitlement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserEntitlement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userentitlement.FieldID)
		for _, f := range fields {
			if !userentitlement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userentitlement.FieldID {
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
	if value, ok := _u.mutation.GrantedAt(); ok {
		_spec.SetField(userentitlement.FieldGrantedAt, field.TypeTime, value)
	}
	_node = &UserEntitlement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userentitlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
