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
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// BadgeClaimLinkUpdate is the builder for updating BadgeClaimLink entities.
type BadgeClaimLinkUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeClaimLinkMutation
}

// Where appends a list predicates to the BadgeClaimLinkUpdate builder.
func (_u *BadgeClaimLinkUpdate) Where(ps ...predicate.BadgeClaimLink) *BadgeClaimLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *BadgeClaimLinkUpdate) SetCode(v string) *BadgeClaimLinkUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdate) SetNillableCode(v *string) *BadgeClaimLinkUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *BadgeClaimLinkUpdate) SetMaxUses(v int) *BadgeClaimLinkUpdate {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdate) SetNillableMaxUses(v *int) *BadgeClaimLinkUpdate {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *BadgeClaimLinkUpdate) AddMaxUses(v int) *BadgeClaimLinkUpdate {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *BadgeClaimLinkUpdate) ClearMaxUses() *BadgeClaimLinkUpdate {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetCurrentUses sets the "current_uses" field.
func (_u *BadgeClaimLinkUpdate) SetCurrentUses(v int) *BadgeClaimLinkUpdate {
	_u.mutation.ResetCurrentUses()
	_u.mutation.SetCurrentUses(v)
	return _u
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdate) SetNillableCurrentUses(v *int) *BadgeClaimLinkUpdate {
	if v != nil {
		_u.SetCurrentUses(*v)
	}
	return _u
}

// AddCurrentUses adds value to the "current_uses" field.
func (_u *BadgeClaimLinkUpdate) AddCurrentUses(v int) *BadgeClaimLinkUpdate {
	_u.mutation.AddCurrentUses(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *BadgeClaimLinkUpdate) SetExpiresAt(v time.Time) *BadgeClaimLinkUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdate) SetNillableExpiresAt(v *time.Time) *BadgeClaimLinkUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *BadgeClaimLinkUpdate) ClearExpiresAt() *BadgeClaimLinkUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetAchievementKey sets the "achievement_key" field.
func (_u *BadgeClaimLinkUpdate) SetAchievementKey(v string) *BadgeClaimLinkUpdate {
	_u.mutation.SetAchievementKey(v)
	return _u
}

// SetNillableAchievementKey sets the "achievement_key" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdate) SetNillableAchievementKey(v *string) *BadgeClaimLinkUpdate {
	if v != nil {
		_u.SetAchievementKey(*v)
	}
	return _u
}

// ClearAchievementKey clears the value of the "achievement_key" field.
func (_u *BadgeClaimLinkUpdate) ClearAchievementKey() *BadgeClaimLinkUpdate {
	_u.mutation.ClearAchievementKey()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *BadgeClaimLinkUpdate) SetEventType(v string) *BadgeClaimLinkUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdate) SetNillableEventType(v *string) *BadgeClaimLinkUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *BadgeClaimLinkUpdate) ClearEventType() *BadgeClaimLinkUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetEventPayload sets the "event_payload" field.
func (_u *BadgeClaimLinkUpdate) SetEventPayload(v map[string]interface{}) *BadgeClaimLinkUpdate {
	_u.mutation.SetEventPayload(v)
	return _u
}

// ClearEventPayload clears the value of the "event_payload" field.
func (_u *BadgeClaimLinkUpdate) ClearEventPayload() *BadgeClaimLinkUpdate {
	_u.mutation.ClearEventPayload()
	return _u
}

// Mutation returns the BadgeClaimLinkMutation object of the builder.
func (_u *BadgeClaimLinkUpdate) Mutation() *BadgeClaimLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeClaimLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeClaimLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeClaimLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeClaimLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeClaimLinkUpdate) check() error {
	if _u.mutation.BadgeCleared() && len(_u.mutation.BadgeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BadgeClaimLink.badge"`)
	}
	return nil
}

func (_u *BadgeClaimLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeclaimlink.Table, badgeclaimlink.Columns, sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(badgeclaimlink.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(badgeclaimlink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(badgeclaimlink.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(badgeclaimlink.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentUses(); ok {
		_spec.SetField(badgeclaimlink.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentUses(); ok {
		_spec.AddField(badgeclaimlink.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(badgeclaimlink.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(badgeclaimlink.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AchievementKey(); ok {
		_spec.SetField(badgeclaimlink.FieldAchievementKey, field.TypeString, value)
	}
	if _u.mutation.AchievementKeyCleared() {
		_spec.ClearField(badgeclaimlink.FieldAchievementKey, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(badgeclaimlink.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(badgeclaimlink.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.EventPayload(); ok {
		_spec.SetField(badgeclaimlink.FieldEventPayload, field.TypeJSON, value)
	}
	if _u.mutation.EventPayloadCleared() {
		_spec.ClearField(badgeclaimlink.FieldEventPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeclaimlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeClaimLinkUpdateOne is the builder for updating a single BadgeClaimLink entity.
type BadgeClaimLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeClaimLinkMutation
}

// SetCode sets the "code" field.
func (_u *BadgeClaimLinkUpdateOne) SetCode(v string) *BadgeClaimLinkUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdateOne) SetNillableCode(v *string) *BadgeClaimLinkUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *BadgeClaimLinkUpdateOne) SetMaxUses(v int) *BadgeClaimLinkUpdateOne {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdateOne) SetNillableMaxUses(v *int) *BadgeClaimLinkUpdateOne {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *BadgeClaimLinkUpdateOne) AddMaxUses(v int) *BadgeClaimLinkUpdateOne {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *BadgeClaimLinkUpdateOne) ClearMaxUses() *BadgeClaimLinkUpdateOne {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetCurrentUses sets the "current_uses" field.
func (_u *BadgeClaimLinkUpdateOne) SetCurrentUses(v int) *BadgeClaimLinkUpdateOne {
	_u.mutation.ResetCurrentUses()
	_u.mutation.SetCurrentUses(v)
	return _u
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdateOne) SetNillableCurrentUses(v *int) *BadgeClaimLinkUpdateOne {
	if v != nil {
		_u.SetCurrentUses(*v)
	}
	return _u
}

// AddCurrentUses adds value to the "current_uses" field.
func (_u *BadgeClaimLinkUpdateOne) AddCurrentUses(v int) *BadgeClaimLinkUpdateOne {
	_u.mutation.AddCurrentUses(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *BadgeClaimLinkUpdateOne) SetExpiresAt(v time.Time) *BadgeClaimLinkUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdateOne) SetNillableExpiresAt(v *time.Time) *BadgeClaimLinkUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *BadgeClaimLinkUpdateOne) ClearExpiresAt() *BadgeClaimLinkUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetAchievementKey sets the "achievement_key" field.
func (_u *BadgeClaimLinkUpdateOne) SetAchievementKey(v string) *BadgeClaimLinkUpdateOne {
	_u.mutation.SetAchievementKey(v)
	return _u
}

// SetNillableAchievementKey sets the "achievement_key" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdateOne) SetNillableAchievementKey(v *string) *BadgeClaimLinkUpdateOne {
	if v != nil {
		_u.SetAchievementKey(*v)
	}
	return _u
}

// ClearAchievementKey clears the value of the "achievement_key" field.
func (_u *BadgeClaimLinkUpdateOne) ClearAchievementKey() *BadgeClaimLinkUpdateOne {
	_u.mutation.ClearAchievementKey()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *BadgeClaimLinkUpdateOne) SetEventType(v string) *BadgeClaimLinkUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *BadgeClaimLinkUpdateOne) SetNillableEventType(v *string) *BadgeClaimLinkUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *BadgeClaimLinkUpdateOne) ClearEventType() *BadgeClaimLinkUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetEventPayload sets the "event_payload" field.
func (_u *BadgeClaimLinkUpdateOne) SetEventPayload(v map[string]interface{}) *BadgeClaimLinkUpdateOne {
	_u.mutation.SetEventPayload(v)
	return _u
}

// ClearEventPayload clears the value of the "event_payload" field.
func (_u *BadgeClaimLinkUpdateOne) ClearEventPayload() *BadgeClaimLinkUpdateOne {
	_u.mutation.ClearEventPayload()
	return _u
}

// Mutation returns the BadgeClaimLinkMutation object of the builder.
func (_u *BadgeClaimLinkUpdateOne) Mutation() *BadgeClaimLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the BadgeClaimLinkUpdate builder.
func (_u *BadgeClaimLinkUpdateOne) Where(ps ...predicate.BadgeClaimLink) *BadgeClaimLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeClaimLinkUpdateOne) Select(field string, fields ...string) *BadgeClaimLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BadgeClaimLink entity.
func (_u *BadgeClaimLinkUpdateOne) Save(ctx context.Context) (*BadgeClaimLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeClaimLinkUpdateOne) SaveX(ctx context.Context) *BadgeClaimLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeClaimLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeClaimLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeClaimLinkUpdateOne) check() error {
	if _u.mutation.BadgeCleared() && len(_u.mutation.BadgeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BadgeClaimLink.badge"`)
	}
	return nil
}

func (_u *BadgeClaimLinkUpdateOne) sqlSave(ctx context.Context) (_node *BadgeClaimLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeclaimlink.Table, badgeclaimlink.Columns, sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BadgeClaimLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badgeclaimlink.FieldID)
		for _, f := range fields {
			if !badgeclaimlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badgeclaimlink.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(badgeclaimlink.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(badgeclaimlink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(badgeclaimlink.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(badgeclaimlink.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentUses(); ok {
		_spec.SetField(badgeclaimlink.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentUses(); ok {
		_spec.AddField(badgeclaimlink.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(badgeclaimlink.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(badgeclaimlink.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AchievementKey(); ok {
		_spec.SetField(badgeclaimlink.FieldAchievementKey, field.TypeString, value)
	}
	if _u.mutation.AchievementKeyCleared() {
		_spec.ClearField(badgeclaimlink.FieldAchievementKey, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(badgeclaimlink.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(badgeclaimlink.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.EventPayload(); ok {
		_spec.SetField(badgeclaimlink.FieldEventPayload, field.TypeJSON, value)
	}
	if _u.mutation.EventPayloadCleared() {
		_spec.ClearField(badgeclaimlink.FieldEventPayload, field.TypeJSON)
	}
	_node = &BadgeClaimLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeclaimlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
