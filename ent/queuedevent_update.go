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
	"github.com/gatherhub/gatherhub/ent/queuedevent"
)

// QueuedEventUpdate is the builder for updating QueuedEvent entities.
type QueuedEventUpdate struct {
	config
	hooks    []Hook
	mutation *QueuedEventMutation
}

// Where appends a list predicates to the QueuedEventUpdate builder.
func (_u *QueuedEventUpdate) Where(ps ...predicate.QueuedEvent) *QueuedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *QueuedEventUpdate) SetEventType(v string) *QueuedEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *QueuedEventUpdate) SetNillableEventType(v *string) *QueuedEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueuedEventUpdate) SetPayload(v map[string]interface{}) *QueuedEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QueuedEventUpdate) SetMetadata(v map[string]interface{}) *QueuedEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QueuedEventUpdate) ClearMetadata() *QueuedEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEventTimestamp sets the "event_timestamp" field.
func (_u *QueuedEventUpdate) SetEventTimestamp(v time.Time) *QueuedEventUpdate {
	_u.mutation.SetEventTimestamp(v)
	return _u
}

// SetNillableEventTimestamp sets the "event_timestamp" field if the given value is not nil.
func (_u *QueuedEventUpdate) SetNillableEventTimestamp(v *time.Time) *QueuedEventUpdate {
	if v != nil {
		_u.SetEventTimestamp(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueuedEventUpdate) SetStatus(v queuedevent.Status) *QueuedEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueuedEventUpdate) SetNillableStatus(v *queuedevent.Status) *QueuedEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueuedEventUpdate) SetAttempts(v int) *QueuedEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueuedEventUpdate) SetNillableAttempts(v *int) *QueuedEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueuedEventUpdate) AddAttempts(v int) *QueuedEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *QueuedEventUpdate) SetClaimedBy(v string) *QueuedEventUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *QueuedEventUpdate) SetNillableClaimedBy(v *string) *QueuedEventUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *QueuedEventUpdate) ClearClaimedBy() *QueuedEventUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Mutation returns the QueuedEventMutation object of the builder.
func (_u *QueuedEventUpdate) Mutation() *QueuedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueuedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueuedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueuedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueuedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueuedEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuedevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueuedEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueuedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuedevent.Table, queuedevent.Columns, sqlgraph.NewFieldSpec(queuedevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(queuedevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuedevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(queuedevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(queuedevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventTimestamp(); ok {
		_spec.SetField(queuedevent.FieldEventTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuedevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuedevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuedevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(queuedevent.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(queuedevent.FieldClaimedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueuedEventUpdateOne is the builder for updating a single QueuedEvent entity.
type QueuedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueuedEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *QueuedEventUpdateOne) SetEventType(v string) *QueuedEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *QueuedEventUpdateOne) SetNillableEventType(v *string) *QueuedEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueuedEventUpdateOne) SetPayload(v map[string]interface{}) *QueuedEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QueuedEventUpdateOne) SetMetadata(v map[string]interface{}) *QueuedEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QueuedEventUpdateOne) ClearMetadata() *QueuedEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEventTimestamp sets the "event_timestamp" field.
func (_u *QueuedEventUpdateOne) SetEventTimestamp(v time.Time) *QueuedEventUpdateOne {
	_u.mutation.SetEventTimestamp(v)
	return _u
}

// SetNillableEventTimestamp sets the "event_timestamp" field if the given value is not nil.
func (_u *QueuedEventUpdateOne) SetNillableEventTimestamp(v *time.Time) *QueuedEventUpdateOne {
	if v != nil {
		_u.SetEventTimestamp(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueuedEventUpdateOne) SetStatus(v queuedevent.Status) *QueuedEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueuedEventUpdateOne) SetNillableStatus(v *queuedevent.Status) *QueuedEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueuedEventUpdateOne) SetAttempts(v int) *QueuedEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueuedEventUpdateOne) SetNillableAttempts(v *int) *QueuedEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueuedEventUpdateOne) AddAttempts(v int) *QueuedEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *QueuedEventUpdateOne) SetClaimedBy(v string) *QueuedEventUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *QueuedEventUpdateOne) SetNillableClaimedBy(v *string) *QueuedEventUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *QueuedEventUpdateOne) ClearClaimedBy() *QueuedEventUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Mutation returns the QueuedEventMutation object of the builder.
func (_u *QueuedEventUpdateOne) Mutation() *QueuedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueuedEventUpdate builder.
func (_u *QueuedEventUpdateOne) Where(ps ...predicate.QueuedEvent) *QueuedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueuedEventUpdateOne) Select(field string, fields ...string) *QueuedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueuedEvent entity.
func (_u *QueuedEventUpdateOne) Save(ctx context.Context) (*QueuedEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueuedEventUpdateOne) SaveX(ctx context.Context) *QueuedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueuedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueuedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueuedEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuedevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueuedEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueuedEventUpdateOne) sqlSave(ctx context.Context) (_node *QueuedEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuedevent.Table, queuedevent.Columns, sqlgraph.NewFieldSpec(queuedevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueuedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuedevent.FieldID)
		for _, f := range fields {
			if !queuedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuedevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(queuedevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuedevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(queuedevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(queuedevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventTimestamp(); ok {
		_spec.SetField(queuedevent.FieldEventTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuedevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuedevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuedevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(queuedevent.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(queuedevent.FieldClaimedBy, field.TypeString)
	}
	_node = &QueuedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
