// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/achievement"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// AchievementUpdate is the builder for updating Achievement entities.
type AchievementUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementMutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdate) Where(ps ...predicate.Achievement) *AchievementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *AchievementUpdate) SetKey(v string) *AchievementUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableKey(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AchievementUpdate) SetName(v string) *AchievementUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableName(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUpdate) SetDescription(v string) *AchievementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableDescription(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AchievementUpdate) ClearDescription() *AchievementUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIcon sets the "icon" field.
func (_u *AchievementUpdate) SetIcon(v string) *AchievementUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableIcon(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *AchievementUpdate) ClearIcon() *AchievementUpdate {
	_u.mutation.ClearIcon()
	return _u
}

// SetColor sets the "color" field.
func (_u *AchievementUpdate) SetColor(v string) *AchievementUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableColor(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *AchievementUpdate) ClearColor() *AchievementUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *AchievementUpdate) SetTargetValue(v int) *AchievementUpdate {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableTargetValue(v *int) *AchievementUpdate {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *AchievementUpdate) AddTargetValue(v int) *AchievementUpdate {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetBadgeSlug sets the "badge_slug" field.
func (_u *AchievementUpdate) SetBadgeSlug(v string) *AchievementUpdate {
	_u.mutation.SetBadgeSlug(v)
	return _u
}

// SetNillableBadgeSlug sets the "badge_slug" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableBadgeSlug(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetBadgeSlug(*v)
	}
	return _u
}

// ClearBadgeSlug clears the value of the "badge_slug" field.
func (_u *AchievementUpdate) ClearBadgeSlug() *AchievementUpdate {
	_u.mutation.ClearBadgeSlug()
	return _u
}

// SetEntitlement sets the "entitlement" field.
func (_u *AchievementUpdate) SetEntitlement(v string) *AchievementUpdate {
	_u.mutation.SetEntitlement(v)
	return _u
}

// SetNillableEntitlement sets the "entitlement" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableEntitlement(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetEntitlement(*v)
	}
	return _u
}

// ClearEntitlement clears the value of the "entitlement" field.
func (_u *AchievementUpdate) ClearEntitlement() *AchievementUpdate {
	_u.mutation.ClearEntitlement()
	return _u
}

// SetPoints sets the "points" field.
func (_u *AchievementUpdate) SetPoints(v int) *AchievementUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillablePoints(v *int) *AchievementUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AchievementUpdate) AddPoints(v int) *AchievementUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *AchievementUpdate) SetEventType(v string) *AchievementUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableEventType(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *AchievementUpdate) ClearEventType() *AchievementUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *AchievementUpdate) SetConditions(v []map[string]interface{}) *AchievementUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *AchievementUpdate) AppendConditions(v []map[string]interface{}) *AchievementUpdate {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *AchievementUpdate) ClearConditions() *AchievementUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetProgressMode sets the "progress_mode" field.
func (_u *AchievementUpdate) SetProgressMode(v achievement.ProgressMode) *AchievementUpdate {
	_u.mutation.SetProgressMode(v)
	return _u
}

// SetNillableProgressMode sets the "progress_mode" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableProgressMode(v *achievement.ProgressMode) *AchievementUpdate {
	if v != nil {
		_u.SetProgressMode(*v)
	}
	return _u
}

// SetGaugeField sets the "gauge_field" field.
func (_u *AchievementUpdate) SetGaugeField(v string) *AchievementUpdate {
	_u.mutation.SetGaugeField(v)
	return _u
}

// SetNillableGaugeField sets the "gauge_field" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableGaugeField(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetGaugeField(*v)
	}
	return _u
}

// ClearGaugeField clears the value of the "gauge_field" field.
func (_u *AchievementUpdate) ClearGaugeField() *AchievementUpdate {
	_u.mutation.ClearGaugeField()
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *AchievementUpdate) SetHidden(v bool) *AchievementUpdate {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableHidden(v *bool) *AchievementUpdate {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AchievementUpdate) SetEnabled(v bool) *AchievementUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableEnabled(v *bool) *AchievementUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdate) Mutation() *AchievementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdate) check() error {
	if v, ok := _u.mutation.ProgressMode(); ok {
		if err := achievement.ProgressModeValidator(v); err != nil {
			return &ValidationError{Name: "progress_mode", err: fmt.Errorf(`ent: validator failed for field "Achievement.progress_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(achievement.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(achievement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(achievement.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(achievement.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(achievement.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(achievement.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(achievement.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(achievement.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeSlug(); ok {
		_spec.SetField(achievement.FieldBadgeSlug, field.TypeString, value)
	}
	if _u.mutation.BadgeSlugCleared() {
		_spec.ClearField(achievement.FieldBadgeSlug, field.TypeString)
	}
	if value, ok := _u.mutation.Entitlement(); ok {
		_spec.SetField(achievement.FieldEntitlement, field.TypeString, value)
	}
	if _u.mutation.EntitlementCleared() {
		_spec.ClearField(achievement.FieldEntitlement, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(achievement.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(achievement.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(achievement.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, achievement.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(achievement.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressMode(); ok {
		_spec.SetField(achievement.FieldProgressMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GaugeField(); ok {
		_spec.SetField(achievement.FieldGaugeField, field.TypeString, value)
	}
	if _u.mutation.GaugeFieldCleared() {
		_spec.ClearField(achievement.FieldGaugeField, field.TypeString)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(achievement.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(achievement.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementUpdateOne is the builder for updating a single Achievement entity.
type AchievementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementMutation
}

// SetKey sets the "key" field.
func (_u *AchievementUpdateOne) SetKey(v string) *AchievementUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableKey(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AchievementUpdateOne) SetName(v string) *AchievementUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableName(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUpdateOne) SetDescription(v string) *AchievementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableDescription(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AchievementUpdateOne) ClearDescription() *AchievementUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIcon sets the "icon" field.
func (_u *AchievementUpdateOne) SetIcon(v string) *AchievementUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableIcon(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *AchievementUpdateOne) ClearIcon() *AchievementUpdateOne {
	_u.mutation.ClearIcon()
	return _u
}

// SetColor sets the "color" field.
func (_u *AchievementUpdateOne) SetColor(v string) *AchievementUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableColor(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *AchievementUpdateOne) ClearColor() *AchievementUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *AchievementUpdateOne) SetTargetValue(v int) *AchievementUpdateOne {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableTargetValue(v *int) *AchievementUpdateOne {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *AchievementUpdateOne) AddTargetValue(v int) *AchievementUpdateOne {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetBadgeSlug sets the "badge_slug" field.
func (_u *AchievementUpdateOne) SetBadgeSlug(v string) *AchievementUpdateOne {
	_u.mutation.SetBadgeSlug(v)
	return _u
}

// SetNillableBadgeSlug sets the "badge_slug" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableBadgeSlug(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetBadgeSlug(*v)
	}
	return _u
}

// ClearBadgeSlug clears the value of the "badge_slug" field.
func (_u *AchievementUpdateOne) ClearBadgeSlug() *AchievementUpdateOne {
	_u.mutation.ClearBadgeSlug()
	return _u
}

// SetEntitlement sets the "entitlement" field.
func (_u *AchievementUpdateOne) SetEntitlement(v string) *AchievementUpdateOne {
	_u.mutation.SetEntitlement(v)
	return _u
}

// SetNillableEntitlement sets the "entitlement" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableEntitlement(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetEntitlement(*v)
	}
	return _u
}

// ClearEntitlement clears the value of the "entitlement" field.
func (_u *AchievementUpdateOne) ClearEntitlement() *AchievementUpdateOne {
	_u.mutation.ClearEntitlement()
	return _u
}

// SetPoints sets the "points" field.
func (_u *AchievementUpdateOne) SetPoints(v int) *AchievementUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillablePoints(v *int) *AchievementUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AchievementUpdateOne) AddPoints(v int) *AchievementUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *AchievementUpdateOne) SetEventType(v string) *AchievementUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableEventType(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *AchievementUpdateOne) ClearEventType() *AchievementUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *AchievementUpdateOne) SetConditions(v []map[string]interface{}) *AchievementUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *AchievementUpdateOne) AppendConditions(v []map[string]interface{}) *AchievementUpdateOne {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *AchievementUpdateOne) ClearConditions() *AchievementUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetProgressMode sets the "progress_mode" field.
func (_u *AchievementUpdateOne) SetProgressMode(v achievement.ProgressMode) *AchievementUpdateOne {
	_u.mutation.SetProgressMode(v)
	return _u
}

// SetNillableProgressMode sets the "progress_mode" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableProgressMode(v *achievement.ProgressMode) *AchievementUpdateOne {
	if v != nil {
		_u.SetProgressMode(*v)
	}
	return _u
}

// SetGaugeField sets the "gauge_field" field.
func (_u *AchievementUpdateOne) SetGaugeField(v string) *AchievementUpdateOne {
	_u.mutation.SetGaugeField(v)
	return _u
}

// SetNillableGaugeField sets the "gauge_field" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableGaugeField(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetGaugeField(*v)
	}
	return _u
}

// ClearGaugeField clears the value of the "gauge_field" field.
func (_u *AchievementUpdateOne) ClearGaugeField() *AchievementUpdateOne {
	_u.mutation.ClearGaugeField()
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *AchievementUpdateOne) SetHidden(v bool) *AchievementUpdateOne {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableHidden(v *bool) *AchievementUpdateOne {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AchievementUpdateOne) SetEnabled(v bool) *AchievementUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableEnabled(v *bool) *AchievementUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdateOne) Mutation() *AchievementMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdateOne) Where(ps ...predicate.Achievement) *AchievementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementUpdateOne) Select(field string, fields ...string) *AchievementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Achievement entity.
func (_u *AchievementUpdateOne) Save(ctx context.Context) (*Achievement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdateOne) SaveX(ctx context.Context) *Achievement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdateOne) check() error {
	if v, ok := _u.mutation.ProgressMode(); ok {
		if err := achievement.ProgressModeValidator(v); err != nil {
			return &ValidationError{Name: "progress_mode", err: fmt.Errorf(`ent: validator failed for field "Achievement.progress_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdateOne) sqlSave(ctx context.Context) (_node *Achievement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Achievement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievement.FieldID)
		for _, f := range fields {
			if !achievement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievement.FieldID {
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
		_spec.SetField(achievement.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(achievement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(achievement.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(achievement.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(achievement.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(achievement.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(achievement.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(achievement.FieldTargetValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeSlug(); ok {
		_spec.SetField(achievement.FieldBadgeSlug, field.TypeString, value)
	}
	if _u.mutation.BadgeSlugCleared() {
		_spec.ClearField(achievement.FieldBadgeSlug, field.TypeString)
	}
	if value, ok := _u.mutation.Entitlement(); ok {
		_spec.SetField(achievement.FieldEntitlement, field.TypeString, value)
	}
	if _u.mutation.EntitlementCleared() {
		_spec.ClearField(achievement.FieldEntitlement, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(achievement.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(achievement.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(achievement.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(achievement.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, achievement.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(achievement.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressMode(); ok {
		_spec.SetField(achievement.FieldProgressMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GaugeField(); ok {
		_spec.SetField(achievement.FieldGaugeField, field.TypeString, value)
	}
	if _u.mutation.GaugeFieldCleared() {
		_spec.ClearField(achievement.FieldGaugeField, field.TypeString)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(achievement.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(achievement.FieldEnabled, field.TypeBool, value)
	}
	_node = &Achievement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
