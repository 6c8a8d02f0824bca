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
	"github.com/gatherhub/gatherhub/ent/synclog"
)

// SyncLogUpdate is the builder for updating SyncLog entities.
type SyncLogUpdate struct {
	config
	hooks    []Hook
	mutation *SyncLogMutation
}

// Where appends a list predicates to the SyncLogUpdate builder.
func (_u *SyncLogUpdate) Where(ps ...predicate.SyncLog) *SyncLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncLogUpdate) SetStatus(v synclog.Status) *SyncLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableStatus(v *synclog.Status) *SyncLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncLogUpdate) SetCompletedAt(v time.Time) *SyncLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableCompletedAt(v *time.Time) *SyncLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncLogUpdate) ClearCompletedAt() *SyncLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEventsCreated sets the "events_created" field.
func (_u *SyncLogUpdate) SetEventsCreated(v int) *SyncLogUpdate {
	_u.mutation.ResetEventsCreated()
	_u.mutation.SetEventsCreated(v)
	return _u
}

// SetNillableEventsCreated sets the "events_created" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableEventsCreated(v *int) *SyncLogUpdate {
	if v != nil {
		_u.SetEventsCreated(*v)
	}
	return _u
}

// AddEventsCreated adds value to the "events_created" field.
func (_u *SyncLogUpdate) AddEventsCreated(v int) *SyncLogUpdate {
	_u.mutation.AddEventsCreated(v)
	return _u
}

// SetEventsUpdated sets the "events_updated" field.
func (_u *SyncLogUpdate) SetEventsUpdated(v int) *SyncLogUpdate {
	_u.mutation.ResetEventsUpdated()
	_u.mutation.SetEventsUpdated(v)
	return _u
}

// SetNillableEventsUpdated sets the "events_updated" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableEventsUpdated(v *int) *SyncLogUpdate {
	if v != nil {
		_u.SetEventsUpdated(*v)
	}
	return _u
}

// AddEventsUpdated adds value to the "events_updated" field.
func (_u *SyncLogUpdate) AddEventsUpdated(v int) *SyncLogUpdate {
	_u.mutation.AddEventsUpdated(v)
	return _u
}

// SetEventsDeleted sets the "events_deleted" field.
func (_u *SyncLogUpdate) SetEventsDeleted(v int) *SyncLogUpdate {
	_u.mutation.ResetEventsDeleted()
	_u.mutation.SetEventsDeleted(v)
	return _u
}

// SetNillableEventsDeleted sets the "events_deleted" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableEventsDeleted(v *int) *SyncLogUpdate {
	if v != nil {
		_u.SetEventsDeleted(*v)
	}
	return _u
}

// AddEventsDeleted adds value to the "events_deleted" field.
func (_u *SyncLogUpdate) AddEventsDeleted(v int) *SyncLogUpdate {
	_u.mutation.AddEventsDeleted(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SyncLogUpdate) SetErrorMessage(v string) *SyncLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SyncLogUpdate) SetNillableErrorMessage(v *string) *SyncLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SyncLogUpdate) ClearErrorMessage() *SyncLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SyncLogMutation object of the builder.
func (_u *SyncLogUpdate) Mutation() *SyncLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := synclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncLog.status": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SyncLog.group"`)
	}
	return nil
}

func (_u *SyncLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synclog.Table, synclog.Columns, sqlgraph.NewFieldSpec(synclog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ConnectionIDCleared() {
		_spec.ClearField(synclog.FieldConnectionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(synclog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(synclog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(synclog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EventsCreated(); ok {
		_spec.SetField(synclog.FieldEventsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsCreated(); ok {
		_spec.AddField(synclog.FieldEventsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventsUpdated(); ok {
		_spec.SetField(synclog.FieldEventsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsUpdated(); ok {
		_spec.AddField(synclog.FieldEventsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventsDeleted(); ok {
		_spec.SetField(synclog.FieldEventsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsDeleted(); ok {
		_spec.AddField(synclog.FieldEventsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(synclog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(synclog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synclog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncLogUpdateOne is the builder for updating a single SyncLog entity.
type SyncLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncLogMutation
}

// SetStatus sets the "status" field.
func (_u *SyncLogUpdateOne) SetStatus(v synclog.Status) *SyncLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableStatus(v *synclog.Status) *SyncLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncLogUpdateOne) SetCompletedAt(v time.Time) *SyncLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableCompletedAt(v *time.Time) *SyncLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncLogUpdateOne) ClearCompletedAt() *SyncLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEventsCreated sets the "events_created" field.
func (_u *SyncLogUpdateOne) SetEventsCreated(v int) *SyncLogUpdateOne {
	_u.mutation.ResetEventsCreated()
	_u.mutation.SetEventsCreated(v)
	return _u
}

// SetNillableEventsCreated sets the "events_created" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableEventsCreated(v *int) *SyncLogUpdateOne {
	if v != nil {
		_u.SetEventsCreated(*v)
	}
	return _u
}

// AddEventsCreated adds value to the "events_created" field.
func (_u *SyncLogUpdateOne) AddEventsCreated(v int) *SyncLogUpdateOne {
	_u.mutation.AddEventsCreated(v)
	return _u
}

// SetEventsUpdated sets the "events_updated" field.
func (_u *SyncLogUpdateOne) SetEventsUpdated(v int) *SyncLogUpdateOne {
	_u.mutation.ResetEventsUpdated()
	_u.mutation.SetEventsUpdated(v)
	return _u
}

// SetNillableEventsUpdated sets the "events_updated" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableEventsUpdated(v *int) *SyncLogUpdateOne {
	if v != nil {
		_u.SetEventsUpdated(*v)
	}
	return _u
}

// AddEventsUpdated adds value to the "events_updated" field.
func (_u *SyncLogUpdateOne) AddEventsUpdated(v int) *SyncLogUpdateOne {
	_u.mutation.AddEventsUpdated(v)
	return _u
}

// SetEventsDeleted sets the "events_deleted" field.
func (_u *SyncLogUpdateOne) SetEventsDeleted(v int) *SyncLogUpdateOne {
	_u.mutation.ResetEventsDeleted()
	_u.mutation.SetEventsDeleted(v)
	return _u
}

// SetNillableEventsDeleted sets the "events_deleted" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableEventsDeleted(v *int) *SyncLogUpdateOne {
	if v != nil {
		_u.SetEventsDeleted(*v)
	}
	return _u
}

// AddEventsDeleted adds value to the "events_deleted" field.
func (_u *SyncLogUpdateOne) AddEventsDeleted(v int) *SyncLogUpdateOne {
	_u.mutation.AddEventsDeleted(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SyncLogUpdateOne) SetErrorMessage(v string) *SyncLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SyncLogUpdateOne) SetNillableErrorMessage(v *string) *SyncLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SyncLogUpdateOne) ClearErrorMessage() *SyncLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SyncLogMutation object of the builder.
func (_u *SyncLogUpdateOne) Mutation() *SyncLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncLogUpdate builder.
func (_u *SyncLogUpdateOne) Where(ps ...predicate.SyncLog) *SyncLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncLogUpdateOne) Select(field string, fields ...string) *SyncLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncLog entity.
func (_u *SyncLogUpdateOne) Save(ctx context.Context) (*SyncLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncLogUpdateOne) SaveX(ctx context.Context) *SyncLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := synclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncLog.status": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SyncLog.group"`)
	}
	return nil
}

func (_u *SyncLogUpdateOne) sqlSave(ctx context.Context) (_node *SyncLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synclog.Table, synclog.Columns, sqlgraph.NewFieldSpec(synclog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, synclog.FieldID)
		for _, f := range fields {
			if !synclog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != synclog.FieldID {
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
	if _u.mutation.ConnectionIDCleared() {
		_spec.ClearField(synclog.FieldConnectionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(synclog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(synclog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(synclog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EventsCreated(); ok {
		_spec.SetField(synclog.FieldEventsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsCreated(); ok {
		_spec.AddField(synclog.FieldEventsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventsUpdated(); ok {
		_spec.SetField(synclog.FieldEventsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsUpdated(); ok {
		_spec.AddField(synclog.FieldEventsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventsDeleted(); ok {
		_spec.SetField(synclog.FieldEventsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsDeleted(); ok {
		_spec.AddField(synclog.FieldEventsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(synclog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(synclog.FieldErrorMessage, field.TypeString)
	}
	_node = &SyncLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synclog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
