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
	"github.com/gatherhub/gatherhub/ent/platformconnection"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// PlatformConnectionUpdate is the builder for updating PlatformConnection entities.
type PlatformConnectionUpdate struct {
	config
	hooks    []Hook
	mutation *PlatformConnectionMutation
}

// Where appends a list predicates to the PlatformConnectionUpdate builder.
func (_u *PlatformConnectionUpdate) Where(ps ...predicate.PlatformConnection) *PlatformConnectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *PlatformConnectionUpdate) SetPlatform(v string) *PlatformConnectionUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *PlatformConnectionUpdate) SetNillablePlatform(v *string) *PlatformConnectionUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *PlatformConnectionUpdate) SetPlatformID(v string) *PlatformConnectionUpdate {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *PlatformConnectionUpdate) SetNillablePlatformID(v *string) *PlatformConnectionUpdate {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *PlatformConnectionUpdate) SetSlug(v string) *PlatformConnectionUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PlatformConnectionUpdate) SetNillableSlug(v *string) *PlatformConnectionUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// ClearSlug clears the value of the "slug" field.
func (_u *PlatformConnectionUpdate) ClearSlug() *PlatformConnectionUpdate {
	_u.mutation.ClearSlug()
	return _u
}

// SetURL sets the "url" field.
func (_u *PlatformConnectionUpdate) SetURL(v string) *PlatformConnectionUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PlatformConnectionUpdate) SetNillableURL(v *string) *PlatformConnectionUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *PlatformConnectionUpdate) ClearURL() *PlatformConnectionUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetActive sets the "active" field.
func (_u *PlatformConnectionUpdate) SetActive(v bool) *PlatformConnectionUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PlatformConnectionUpdate) SetNillableActive(v *bool) *PlatformConnectionUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *PlatformConnectionUpdate) SetLastSyncAt(v time.Time) *PlatformConnectionUpdate {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *PlatformConnectionUpdate) SetNillableLastSyncAt(v *time.Time) *PlatformConnectionUpdate {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *PlatformConnectionUpdate) ClearLastSyncAt() *PlatformConnectionUpdate {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PlatformConnectionUpdate) SetLastError(v string) *PlatformConnectionUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PlatformConnectionUpdate) SetNillableLastError(v *string) *PlatformConnectionUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PlatformConnectionUpdate) ClearLastError() *PlatformConnectionUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the PlatformConnectionMutation object of the builder.
func (_u *PlatformConnectionUpdate) Mutation() *PlatformConnectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlatformConnectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlatformConnectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlatformConnectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlatformConnectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlatformConnectionUpdate) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlatformConnection.group"`)
	}
	return nil
}

func (_u *PlatformConnectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platformconnection.Table, platformconnection.Columns, sqlgraph.NewFieldSpec(platformconnection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(platformconnection.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(platformconnection.FieldPlatformID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(platformconnection.FieldSlug, field.TypeString, value)
	}
	if _u.mutation.SlugCleared() {
		_spec.ClearField(platformconnection.FieldSlug, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(platformconnection.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(platformconnection.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(platformconnection.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(platformconnection.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(platformconnection.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(platformconnection.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(platformconnection.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platformconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlatformConnectionUpdateOne is the builder for updating a single PlatformConnection entity.
type PlatformConnectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlatformConnectionMutation
}

// SetPlatform sets the "platform" field.
func (_u *PlatformConnectionUpdateOne) SetPlatform(v string) *PlatformConnectionUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *PlatformConnectionUpdateOne) SetNillablePlatform(v *string) *PlatformConnectionUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *PlatformConnectionUpdateOne) SetPlatformID(v string) *PlatformConnectionUpdateOne {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *PlatformConnectionUpdateOne) SetNillablePlatformID(v *string) *PlatformConnectionUpdateOne {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *PlatformConnectionUpdateOne) SetSlug(v string) *PlatformConnectionUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PlatformConnectionUpdateOne) SetNillableSlug(v *string) *PlatformConnectionUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// ClearSlug clears the value of the "slug" field.
func (_u *PlatformConnectionUpdateOne) ClearSlug() *PlatformConnectionUpdateOne {
	_u.mutation.ClearSlug()
	return _u
}

// SetURL sets the "url" field.
func (_u *PlatformConnectionUpdateOne) SetURL(v string) *PlatformConnectionUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PlatformConnectionUpdateOne) SetNillableURL(v *string) *PlatformConnectionUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *PlatformConnectionUpdateOne) ClearURL() *PlatformConnectionUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetActive sets the "active" field.
func (_u *PlatformConnectionUpdateOne) SetActive(v bool) *PlatformConnectionUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PlatformConnectionUpdateOne) SetNillableActive(v *bool) *PlatformConnectionUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *PlatformConnectionUpdateOne) SetLastSyncAt(v time.Time) *PlatformConnectionUpdateOne {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *PlatformConnectionUpdateOne) SetNillableLastSyncAt(v *time.Time) *PlatformConnectionUpdateOne {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *PlatformConnectionUpdateOne) ClearLastSyncAt() *PlatformConnectionUpdateOne {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PlatformConnectionUpdateOne) SetLastError(v string) *PlatformConnectionUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PlatformConnectionUpdateOne) SetNillableLastError(v *string) *PlatformConnectionUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PlatformConnectionUpdateOne) ClearLastError() *PlatformConnectionUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the PlatformConnectionMutation object of the builder.
func (_u *PlatformConnectionUpdateOne) Mutation() *PlatformConnectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlatformConnectionUpdate builder.
func (_u *PlatformConnectionUpdateOne) Where(ps ...predicate.PlatformConnection) *PlatformConnectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlatformConnectionUpdateOne) Select(field string, fields ...string) *PlatformConnectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlatformConnection entity.
func (_u *PlatformConnectionUpdateOne) Save(ctx context.Context) (*PlatformConnection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlatformConnectionUpdateOne) SaveX(ctx context.Context) *PlatformConnection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlatformConnectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlatformConnectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlatformConnectionUpdateOne) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlatformConnection.group"`)
	}
	return nil
}

func (_u *PlatformConnectionUpdateOne) sqlSave(ctx context.Context) (_node *PlatformConnection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platformconnection.Table, platformconnection.Columns, sqlgraph.NewFieldSpec(platformconnection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlatformConnection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, platformconnection.FieldID)
		for _, f := range fields {
			if !platformconnection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != platformconnection.FieldID {
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
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(platformconnection.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(platformconnection.FieldPlatformID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(platformconnection.FieldSlug, field.TypeString, value)
	}
	if _u.mutation.SlugCleared() {
		_spec.ClearField(platformconnection.FieldSlug, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(platformconnection.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(platformconnection.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(platformconnection.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(platformconnection.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(platformconnection.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(platformconnection.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(platformconnection.FieldLastError, field.TypeString)
	}
	_node = &PlatformConnection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platformconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
