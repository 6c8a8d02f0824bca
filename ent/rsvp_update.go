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
	"github.com/gatherhub/gatherhub/ent/rsvp"
)

// RSVPUpdate is the builder for updating RSVP entities.
type RSVPUpdate struct {
	config
	hooks    []Hook
	mutation *RSVPMutation
}

// Where appends a list predicates to the RSVPUpdate builder.
func (_u *RSVPUpdate) Where(ps ...predicate.RSVP) *RSVPUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RSVPUpdate) SetStatus(v rsvp.Status) *RSVPUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RSVPUpdate) SetNillableStatus(v *rsvp.Status) *RSVPUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRsvpAt sets the "rsvp_at" field.
func (_u *RSVPUpdate) SetRsvpAt(v time.Time) *RSVPUpdate {
	_u.mutation.SetRsvpAt(v)
	return _u
}

// SetNillableRsvpAt sets the "rsvp_at" field if the given value is not nil.
func (_u *RSVPUpdate) SetNillableRsvpAt(v *time.Time) *RSVPUpdate {
	if v != nil {
		_u.SetRsvpAt(*v)
	}
	return _u
}

// SetWaitlistPosition sets the "waitlist_position" field.
func (_u *RSVPUpdate) SetWaitlistPosition(v int) *RSVPUpdate {
	_u.mutation.ResetWaitlistPosition()
	_u.mutation.SetWaitlistPosition(v)
	return _u
}

// SetNillableWaitlistPosition sets the "waitlist_position" field if the given value is not nil.
func (_u *RSVPUpdate) SetNillableWaitlistPosition(v *int) *RSVPUpdate {
	if v != nil {
		_u.SetWaitlistPosition(*v)
	}
	return _u
}

// AddWaitlistPosition adds value to the "waitlist_position" field.
func (_u *RSVPUpdate) AddWaitlistPosition(v int) *RSVPUpdate {
	_u.mutation.AddWaitlistPosition(v)
	return _u
}

// ClearWaitlistPosition clears the value of the "waitlist_position" field.
func (_u *RSVPUpdate) ClearWaitlistPosition() *RSVPUpdate {
	_u.mutation.ClearWaitlistPosition()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *RSVPUpdate) SetCancelledAt(v time.Time) *RSVPUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *RSVPUpdate) SetNillableCancelledAt(v *time.Time) *RSVPUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *RSVPUpdate) ClearCancelledAt() *RSVPUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the RSVPMutation object of the builder.
func (_u *RSVPUpdate) Mutation() *RSVPMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RSVPUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RSVPUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RSVPUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RSVPUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RSVPUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rsvp.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RSVP.status": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RSVP.event"`)
	}
	return nil
}

func (_u *RSVPUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rsvp.Table, rsvp.Columns, sqlgraph.NewFieldSpec(rsvp.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rsvp.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RsvpAt(); ok {
		_spec.SetField(rsvp.FieldRsvpAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WaitlistPosition(); ok {
		_spec.SetField(rsvp.FieldWaitlistPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWaitlistPosition(); ok {
		_spec.AddField(rsvp.FieldWaitlistPosition, field.TypeInt, value)
	}
	if _u.mutation.WaitlistPositionCleared() {
		_spec.ClearField(rsvp.FieldWaitlistPosition, field.TypeInt)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(rsvp.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(rsvp.FieldCancelledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rsvp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RSVPUpdateOne is the builder for updating a single RSVP entity.
type RSVPUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RSVPMutation
}

// SetStatus sets the "status" field.
func (_u *RSVPUpdateOne) SetStatus(v rsvp.Status) *RSVPUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RSVPUpdateOne) SetNillableStatus(v *rsvp.Status) *RSVPUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRsvpAt sets the "rsvp_at" field.
func (_u *RSVPUpdateOne) SetRsvpAt(v time.Time) *RSVPUpdateOne {
	_u.mutation.SetRsvpAt(v)
	return _u
}

// SetNillableRsvpAt sets the "rsvp_at" field if the given value is not nil.
func (_u *RSVPUpdateOne) SetNillableRsvpAt(v *time.Time) *RSVPUpdateOne {
	if v != nil {
		_u.SetRsvpAt(*v)
	}
	return _u
}

// SetWaitlistPosition sets the "waitlist_position" field.
func (_u *RSVPUpdateOne) SetWaitlistPosition(v int) *RSVPUpdateOne {
	_u.mutation.ResetWaitlistPosition()
	_u.mutation.SetWaitlistPosition(v)
	return _u
}

// SetNillableWaitlistPosition sets the "waitlist_position" field if the given value is not nil.
func (_u *RSVPUpdateOne) SetNillableWaitlistPosition(v *int) *RSVPUpdateOne {
	if v != nil {
		_u.SetWaitlistPosition(*v)
	}
	return _u
}

// AddWaitlistPosition adds value to the "waitlist_position" field.
func (_u *RSVPUpdateOne) AddWaitlistPosition(v int) *RSVPUpdateOne {
	_u.mutation.AddWaitlistPosition(v)
	return _u
}

// ClearWaitlistPosition clears the value of the "waitlist_position" field.
func (_u *RSVPUpdateOne) ClearWaitlistPosition() *RSVPUpdateOne {
	_u.mutation.ClearWaitlistPosition()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *RSVPUpdateOne) SetCancelledAt(v time.Time) *RSVPUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *RSVPUpdateOne) SetNillableCancelledAt(v *time.Time) *RSVPUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *RSVPUpdateOne) ClearCancelledAt() *RSVPUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the RSVPMutation object of the builder.
func (_u *RSVPUpdateOne) Mutation() *RSVPMutation {
	return _u.mutation
}

// Where appends a list predicates to the RSVPUpdate builder.
func (_u *RSVPUpdateOne) Where(ps ...predicate.RSVP) *RSVPUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RSVPUpdateOne) Select(field string, fields ...string) *RSVPUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RSVP entity.
func (_u *RSVPUpdateOne) Save(ctx context.Context) (*RSVP, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RSVPUpdateOne) SaveX(ctx context.Context) *RSVP {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RSVPUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RSVPUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RSVPUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rsvp.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RSVP.status": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RSVP.event"`)
	}
	return nil
}

func (_u *RSVPUpdateOne) sqlSave(ctx context.Context) (_node *RSVP, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rsvp.Table, rsvp.Columns, sqlgraph.NewFieldSpec(rsvp.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RSVP.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rsvp.FieldID)
		for _, f := range fields {
			if !rsvp.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rsvp.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rsvp.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RsvpAt(); ok {
		_spec.SetField(rsvp.FieldRsvpAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WaitlistPosition(); ok {
		_spec.SetField(rsvp.FieldWaitlistPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWaitlistPosition(); ok {
		_spec.AddField(rsvp.FieldWaitlistPosition, field.TypeInt, value)
	}
	if _u.mutation.WaitlistPositionCleared() {
		_spec.ClearField(rsvp.FieldWaitlistPosition, field.TypeInt)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(rsvp.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(rsvp.FieldCancelledAt, field.TypeTime)
	}
	_node = &RSVP{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rsvp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
