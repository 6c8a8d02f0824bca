// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/achievement"
)

// AchievementCreate is the builder for creating a Achievement entity.
type AchievementCreate struct {
	config
	mutation *AchievementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *AchievementCreate) SetKey(v string) *AchievementCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AchievementCreate) SetName(v string) *AchievementCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AchievementCreate) SetDescription(v string) *AchievementCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableDescription(v *string) *AchievementCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIcon sets the "icon" field.
func (_c *AchievementCreate) SetIcon(v string) *AchievementCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableIcon(v *string) *AchievementCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *AchievementCreate) SetColor(v string) *AchievementCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableColor(v *string) *AchievementCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetTargetValue sets the "target_value" field.
func (_c *AchievementCreate) SetTargetValue(v int) *AchievementCreate {
	_c.mutation.SetTargetValue(v)
	return _c
}

// SetBadgeSlug sets the "badge_slug" field.
func (_c *AchievementCreate) SetBadgeSlug(v string) *AchievementCreate {
	_c.mutation.SetBadgeSlug(v)
	return _c
}

// SetNillableBadgeSlug sets the "badge_slug" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableBadgeSlug(v *string) *AchievementCreate {
	if v != nil {
		_c.SetBadgeSlug(*v)
	}
	return _c
}

// SetEntitlement sets the "entitlement" field.
func (_c *AchievementCreate) SetEntitlement(v string) *AchievementCreate {
	_c.mutation.SetEntitlement(v)
	return _c
}

// SetNillableEntitlement sets the "entitlement" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableEntitlement(v *string) *AchievementCreate {
	if v != nil {
		_c.SetEntitlement(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *AchievementCreate) SetPoints(v int) *AchievementCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *AchievementCreate) SetNillablePoints(v *int) *AchievementCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *AchievementCreate) SetEventType(v string) *AchievementCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableEventType(v *string) *AchievementCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *AchievementCreate) SetConditions(v []map[string]interface{}) *AchievementCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetProgressMode sets the "progress_mode" field.
func (_c *AchievementCreate) SetProgressMode(v achievement.ProgressMode) *AchievementCreate {
	_c.mutation.SetProgressMode(v)
	return _c
}

// SetNillableProgressMode sets the "progress_mode" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableProgressMode(v *achievement.ProgressMode) *AchievementCreate {
	if v != nil {
		_c.SetProgressMode(*v)
	}
	return _c
}

// SetGaugeField sets the "gauge_field" field.
func (_c *AchievementCreate) SetGaugeField(v string) *AchievementCreate {
	_c.mutation.SetGaugeField(v)
	return _c
}

// SetNillableGaugeField sets the "gauge_field" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableGaugeField(v *string) *AchievementCreate {
	if v != nil {
		_c.SetGaugeField(*v)
	}
	return _c
}

// SetHidden sets the "hidden" field.
func (_c *AchievementCreate) SetHidden(v bool) *AchievementCreate {
	_c.mutation.SetHidden(v)
	return _c
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableHidden(v *bool) *AchievementCreate {
	if v != nil {
		_c.SetHidden(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *AchievementCreate) SetEnabled(v bool) *AchievementCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableEnabled(v *bool) *AchievementCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AchievementCreate) SetCreatedAt(v time.Time) *AchievementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableCreatedAt(v *time.Time) *AchievementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AchievementCreate) SetID(v string) *AchievementCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AchievementMutation object of the builder.
func (_c *AchievementCreate) Mutation() *AchievementMutation {
	return _c.mutation
}

// Save creates the Achievement in the database.
func (_c *AchievementCreate) Save(ctx context.Context) (*Achievement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementCreate) SaveX(ctx context.Context) *Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementCreate) defaults() {
	if _, ok := _c.mutation.Points(); !ok {
		v := achievement.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.ProgressMode(); !ok {
		v := achievement.DefaultProgressMode
		_c.mutation.SetProgressMode(v)
	}
	if _, ok := _c.mutation.Hidden(); !ok {
		v := achievement.DefaultHidden
		_c.mutation.SetHidden(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := achievement.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := achievement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Achievement.key"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Achievement.name"`)}
	}
	if _, ok := _c.mutation.TargetValue(); !ok {
		return &ValidationError{Name: "target_value", err: errors.New(`ent: missing required field "Achievement.target_value"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "Achievement.points"`)}
	}
	if _, ok := _c.mutation.ProgressMode(); !ok {
		return &ValidationError{Name: "progress_mode", err: errors.New(`ent: missing required field "Achievement.progress_mode"`)}
	}
	if v, ok := _c.mutation.ProgressMode(); ok {
		if err := achievement.ProgressModeValidator(v); err != nil {
			return &ValidationError{Name: "progress_mode", err: fmt.Errorf(`ent: validator failed for field "Achievement.progress_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hidden(); !ok {
		return &ValidationError{Name: "hidden", err: errors.New(`ent: missing required field "Achievement.hidden"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Achievement.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Achievement.created_at"`)}
	}
	return nil
}

func (_c *AchievementCreate) sqlSave(ctx context.Context) (*Achievement, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Achievement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AchievementCreate) createSpec() (*Achievement, *sqlgraph.CreateSpec) {
	var (
		_node = &Achievement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievement.Table, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(achievement.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(achievement.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(achievement.FieldIcon, field.TypeString, value)
		_node.Icon = &value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(achievement.FieldColor, field.TypeString, value)
		_node.Color = &value
	}
	if value, ok := _c.mutation.TargetValue(); ok {
		_spec.SetField(achievement.FieldTargetValue, field.TypeInt, value)
		_node.TargetValue = value
	}
	if value, ok := _c.mutation.BadgeSlug(); ok {
		_spec.SetField(achievement.FieldBadgeSlug, field.TypeString, value)
		_node.BadgeSlug = &value
	}
	if value, ok := _c.mutation.Entitlement(); ok {
		_spec.SetField(achievement.FieldEntitlement, field.TypeString, value)
		_node.Entitlement = &value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(achievement.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(achievement.FieldEventType, field.TypeString, value)
		_node.EventType = &value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(achievement.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.ProgressMode(); ok {
		_spec.SetField(achievement.FieldProgressMode, field.TypeEnum, value)
		_node.ProgressMode = value
	}
	if value, ok := _c.mutation.GaugeField(); ok {
		_spec.SetField(achievement.FieldGaugeField, field.TypeString, value)
		_node.GaugeField = &value
	}
	if value, ok := _c.mutation.Hidden(); ok {
		_spec.SetField(achievement.FieldHidden, field.TypeBool, value)
		_node.Hidden = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(achievement.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(achievement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Achievement.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementCreate) OnConflict(opts ...sql.ConflictOption) *AchievementUpsertOne {
	_c.conflict = opts
	return &AchievementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementCreate) OnConflictColumns(columns ...string) *AchievementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementUpsertOne{
		create: _c,
	}
}

type (
	// AchievementUpsertOne is the builder for "upsert"-ing
	//  one Achievement node.
	AchievementUpsertOne struct {
		create *AchievementCreate
	}

	// AchievementUpsert is the "OnConflict" setter.
	AchievementUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *AchievementUpsert) SetKey(v string) *AchievementUpsert {
	u.Set(achievement.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateKey() *AchievementUpsert {
	u.SetExcluded(achievement.FieldKey)
	return u
}

// SetName sets the "name" field.
func (u *AchievementUpsert) SetName(v string) *AchievementUpsert {
	u.Set(achievement.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateName() *AchievementUpsert {
	u.SetExcluded(achievement.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *AchievementUpsert) SetDescription(v string) *AchievementUpsert {
	u.Set(achievement.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateDescription() *AchievementUpsert {
	u.SetExcluded(achievement.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *AchievementUpsert) ClearDescription() *AchievementUpsert {
	u.SetNull(achievement.FieldDescription)
	return u
}

// SetIcon sets the "icon" field.
func (u *AchievementUpsert) SetIcon(v string) *AchievementUpsert {
	u.Set(achievement.FieldIcon, v)
	return u
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateIcon() *AchievementUpsert {
	u.SetExcluded(achievement.FieldIcon)
	return u
}

// ClearIcon clears the value of the "icon" field.
func (u *AchievementUpsert) ClearIcon() *AchievementUpsert {
	u.SetNull(achievement.FieldIcon)
	return u
}

// SetColor sets the "color" field.
func (u *AchievementUpsert) SetColor(v string) *AchievementUpsert {
	u.Set(achievement.FieldColor, v)
	return u
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateColor() *AchievementUpsert {
	u.SetExcluded(achievement.FieldColor)
	return u
}

// ClearColor clears the value of the "color" field.
func (u *AchievementUpsert) ClearColor() *AchievementUpsert {
	u.SetNull(achievement.FieldColor)
	return u
}

// SetTargetValue sets the "target_value" field.
func (u *AchievementUpsert) SetTargetValue(v int) *AchievementUpsert {
	u.Set(achievement.FieldTargetValue, v)
	return u
}

// UpdateTargetValue sets the "target_value" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateTargetValue() *AchievementUpsert {
	u.SetExcluded(achievement.FieldTargetValue)
	return u
}

// AddTargetValue adds v to the "target_value" field.
func (u *AchievementUpsert) AddTargetValue(v int) *AchievementUpsert {
	u.Add(achievement.FieldTargetValue, v)
	return u
}

// SetBadgeSlug sets the "badge_slug" field.
func (u *AchievementUpsert) SetBadgeSlug(v string) *AchievementUpsert {
	u.Set(achievement.FieldBadgeSlug, v)
	return u
}

// UpdateBadgeSlug sets the "badge_slug" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateBadgeSlug() *AchievementUpsert {
	u.SetExcluded(achievement.FieldBadgeSlug)
	return u
}

// ClearBadgeSlug clears the value of the "badge_slug" field.
func (u *AchievementUpsert) ClearBadgeSlug() *AchievementUpsert {
	u.SetNull(achievement.FieldBadgeSlug)
	return u
}

// SetEntitlement sets the "entitlement" field.
func (u *AchievementUpsert) SetEntitlement(v string) *AchievementUpsert {
	u.Set(achievement.FieldEntitlement, v)
	return u
}

// UpdateEntitlement sets the "entitlement" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateEntitlement() *AchievementUpsert {
	u.SetExcluded(achievement.FieldEntitlement)
	return u
}

// ClearEntitlement clears the value of the "entitlement" field.
func (u *AchievementUpsert) ClearEntitlement() *AchievementUpsert {
	u.SetNull(achievement.FieldEntitlement)
	return u
}

// SetPoints sets the "points" field.
func (u *AchievementUpsert) SetPoints(v int) *AchievementUpsert {
	u.Set(achievement.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *AchievementUpsert) UpdatePoints() *AchievementUpsert {
	u.SetExcluded(achievement.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *AchievementUpsert) AddPoints(v int) *AchievementUpsert {
	u.Add(achievement.FieldPoints, v)
	return u
}

// SetEventType sets the "event_type" field.
func (u *AchievementUpsert) SetEventType(v string) *AchievementUpsert {
	u.Set(achievement.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateEventType() *AchievementUpsert {
	u.SetExcluded(achievement.FieldEventType)
	return u
}

// ClearEventType clears the value of the "event_type" field.
func (u *AchievementUpsert) ClearEventType() *AchievementUpsert {
	u.SetNull(achievement.FieldEventType)
	return u
}

// SetConditions sets the "conditions" field.
func (u *AchievementUpsert) SetConditions(v []map[string]interface{}) *AchievementUpsert {
	u.Set(achievement.FieldConditions, v)
	return u
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateConditions() *AchievementUpsert {
	u.SetExcluded(achievement.FieldConditions)
	return u
}

// ClearConditions clears the value of the "conditions" field.
func (u *AchievementUpsert) ClearConditions() *AchievementUpsert {
	u.SetNull(achievement.FieldConditions)
	return u
}

// SetProgressMode sets the "progress_mode" field.
func (u *AchievementUpsert) SetProgressMode(v achievement.ProgressMode) *AchievementUpsert {
	u.Set(achievement.FieldProgressMode, v)
	return u
}

// UpdateProgressMode sets the "progress_mode" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateProgressMode() *AchievementUpsert {
	u.SetExcluded(achievement.FieldProgressMode)
	return u
}

// SetGaugeField sets the "gauge_field" field.
func (u *AchievementUpsert) SetGaugeField(v string) *AchievementUpsert {
	u.Set(achievement.FieldGaugeField, v)
	return u
}

// UpdateGaugeField sets the "gauge_field" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateGaugeField() *AchievementUpsert {
	u.SetExcluded(achievement.FieldGaugeField)
	return u
}

// ClearGaugeField clears the value of the "gauge_field" field.
func (u *AchievementUpsert) ClearGaugeField() *AchievementUpsert {
	u.SetNull(achievement.FieldGaugeField)
	return u
}

// SetHidden sets the "hidden" field.
func (u *AchievementUpsert) SetHidden(v bool) *AchievementUpsert {
	u.Set(achievement.FieldHidden, v)
	return u
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateHidden() *AchievementUpsert {
	u.SetExcluded(achievement.FieldHidden)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *AchievementUpsert) SetEnabled(v bool) *AchievementUpsert {
	u.Set(achievement.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateEnabled() *AchievementUpsert {
	u.SetExcluded(achievement.FieldEnabled)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(achievement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AchievementUpsertOne) UpdateNewValues() *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(achievement.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(achievement.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Achievement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AchievementUpsertOne) Ignore() *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementUpsertOne) DoNothing() *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementCreate.OnConflict
// documentation for more info.
func (u *AchievementUpsertOne) Update(set func(*AchievementUpsert)) *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *AchievementUpsertOne) SetKey(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateKey() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateKey()
	})
}

// SetName sets the "name" field.
func (u *AchievementUpsertOne) SetName(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateName() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *AchievementUpsertOne) SetDescription(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateDescription() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AchievementUpsertOne) ClearDescription() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearDescription()
	})
}

// SetIcon sets the "icon" field.
func (u *AchievementUpsertOne) SetIcon(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetIcon(v)
	})
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateIcon() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateIcon()
	})
}

// ClearIcon clears the value of the "icon" field.
func (u *AchievementUpsertOne) ClearIcon() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearIcon()
	})
}

// SetColor sets the "color" field.
func (u *AchievementUpsertOne) SetColor(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateColor() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *AchievementUpsertOne) ClearColor() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearColor()
	})
}

// SetTargetValue sets the "target_value" field.
func (u *AchievementUpsertOne) SetTargetValue(v int) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetTargetValue(v)
	})
}

// AddTargetValue adds v to the "target_value" field.
func (u *AchievementUpsertOne) AddTargetValue(v int) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.AddTargetValue(v)
	})
}

// UpdateTargetValue sets the "target_value" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateTargetValue() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateTargetValue()
	})
}

// SetBadgeSlug sets the "badge_slug" field.
func (u *AchievementUpsertOne) SetBadgeSlug(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetBadgeSlug(v)
	})
}

// UpdateBadgeSlug sets the "badge_slug" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateBadgeSlug() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateBadgeSlug()
	})
}

// ClearBadgeSlug clears the value of the "badge_slug" field.
func (u *AchievementUpsertOne) ClearBadgeSlug() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearBadgeSlug()
	})
}

// SetEntitlement sets the "entitlement" field.
func (u *AchievementUpsertOne) SetEntitlement(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetEntitlement(v)
	})
}

// UpdateEntitlement sets the "entitlement" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateEntitlement() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateEntitlement()
	})
}

// ClearEntitlement clears the value of the "entitlement" field.
func (u *AchievementUpsertOne) ClearEntitlement() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearEntitlement()
	})
}

// SetPoints sets the "points" field.
func (u *AchievementUpsertOne) SetPoints(v int) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *AchievementUpsertOne) AddPoints(v int) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdatePoints() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdatePoints()
	})
}

// SetEventType sets the "event_type" field.
func (u *AchievementUpsertOne) SetEventType(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateEventType() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *AchievementUpsertOne) ClearEventType() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearEventType()
	})
}

// SetConditions sets the "conditions" field.
func (u *AchievementUpsertOne) SetConditions(v []map[string]interface{}) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateConditions() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *AchievementUpsertOne) ClearConditions() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearConditions()
	})
}

// SetProgressMode sets the "progress_mode" field.
func (u *AchievementUpsertOne) SetProgressMode(v achievement.ProgressMode) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetProgressMode(v)
	})
}

// UpdateProgressMode sets the "progress_mode" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateProgressMode() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateProgressMode()
	})
}

// SetGaugeField sets the "gauge_field" field.
func (u *AchievementUpsertOne) SetGaugeField(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetGaugeField(v)
	})
}

// UpdateGaugeField sets the "gauge_field" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateGaugeField() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateGaugeField()
	})
}

// ClearGaugeField clears the value of the "gauge_field" field.
func (u *AchievementUpsertOne) ClearGaugeField() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearGaugeField()
	})
}

// SetHidden sets the "hidden" field.
func (u *AchievementUpsertOne) SetHidden(v bool) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetHidden(v)
	})
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateHidden() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateHidden()
	})
}

// SetEnabled sets the "enabled" field.
func (u *AchievementUpsertOne) SetEnabled(v bool) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateEnabled() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *AchievementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AchievementUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AchievementUpsertOne.ID is not supported by MySQL driver. Use AchievementUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AchievementUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AchievementCreateBulk is the builder for creating many Achievement entities in bulk.
type AchievementCreateBulk struct {
	config
	err      error
	builders []*AchievementCreate
	conflict []sql.ConflictOption
}

// Save creates the Achievement entities in the database.
func (_c *AchievementCreateBulk) Save(ctx context.Context) ([]*Achievement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Achievement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AchievementCreateBulk) SaveX(ctx context.Context) []*Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Achievement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementCreateBulk) OnConflict(opts ...sql.ConflictOption) *AchievementUpsertBulk {
	_c.conflict = opts
	return &AchievementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementCreateBulk) OnConflictColumns(columns ...string) *AchievementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementUpsertBulk{
		create: _c,
	}
}

// AchievementUpsertBulk is the builder for "upsert"-ing
// a bulk of Achievement nodes.
type AchievementUpsertBulk struct {
	create *AchievementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(achievement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AchievementUpsertBulk) UpdateNewValues() *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(achievement.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(achievement.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AchievementUpsertBulk) Ignore() *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementUpsertBulk) DoNothing() *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementCreateBulk.OnConflict
// documentation for more info.
func (u *AchievementUpsertBulk) Update(set func(*AchievementUpsert)) *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *AchievementUpsertBulk) SetKey(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateKey() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateKey()
	})
}

// SetName sets the "name" field.
func (u *AchievementUpsertBulk) SetName(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateName() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *AchievementUpsertBulk) SetDescription(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateDescription() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AchievementUpsertBulk) ClearDescription() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearDescription()
	})
}

// SetIcon sets the "icon" field.
func (u *AchievementUpsertBulk) SetIcon(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetIcon(v)
	})
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateIcon() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateIcon()
	})
}

// ClearIcon clears the value of the "icon" field.
func (u *AchievementUpsertBulk) ClearIcon() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearIcon()
	})
}

// SetColor sets the "color" field.
func (u *AchievementUpsertBulk) SetColor(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateColor() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *AchievementUpsertBulk) ClearColor() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearColor()
	})
}

// SetTargetValue sets the "target_value" field.
func (u *AchievementUpsertBulk) SetTargetValue(v int) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetTargetValue(v)
	})
}

// AddTargetValue adds v to the "target_value" field.
func (u *AchievementUpsertBulk) AddTargetValue(v int) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.AddTargetValue(v)
	})
}

// UpdateTargetValue sets the "target_value" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateTargetValue() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateTargetValue()
	})
}

// SetBadgeSlug sets the "badge_slug" field.
func (u *AchievementUpsertBulk) SetBadgeSlug(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetBadgeSlug(v)
	})
}

// UpdateBadgeSlug sets the "badge_slug" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateBadgeSlug() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateBadgeSlug()
	})
}

// ClearBadgeSlug clears the value of the "badge_slug" field.
func (u *AchievementUpsertBulk) ClearBadgeSlug() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearBadgeSlug()
	})
}

// SetEntitlement sets the "entitlement" field.
func (u *AchievementUpsertBulk) SetEntitlement(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetEntitlement(v)
	})
}

// UpdateEntitlement sets the "entitlement" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateEntitlement() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateEntitlement()
	})
}

// ClearEntitlement clears the value of the "entitlement" field.
func (u *AchievementUpsertBulk) ClearEntitlement() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearEntitlement()
	})
}

// SetPoints sets the "points" field.
func (u *AchievementUpsertBulk) SetPoints(v int) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *AchievementUpsertBulk) AddPoints(v int) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdatePoints() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdatePoints()
	})
}

// SetEventType sets the "event_type" field.
func (u *AchievementUpsertBulk) SetEventType(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateEventType() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *AchievementUpsertBulk) ClearEventType() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearEventType()
	})
}

// SetConditions sets the "conditions" field.
func (u *AchievementUpsertBulk) SetConditions(v []map[string]interface{}) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateConditions() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *AchievementUpsertBulk) ClearConditions() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearConditions()
	})
}

// SetProgressMode sets the "progress_mode" field.
func (u *AchievementUpsertBulk) SetProgressMode(v achievement.ProgressMode) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetProgressMode(v)
	})
}

// UpdateProgressMode sets the "progress_mode" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateProgressMode() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateProgressMode()
	})
}

// SetGaugeField sets the "gauge_field" field.
func (u *AchievementUpsertBulk) SetGaugeField(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetGaugeField(v)
	})
}

// UpdateGaugeField sets the "gauge_field" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateGaugeField() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateGaugeField()
	})
}

// ClearGaugeField clears the value of the "gauge_field" field.
func (u *AchievementUpsertBulk) ClearGaugeField() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearGaugeField()
	})
}

// SetHidden sets the "hidden" field.
func (u *AchievementUpsertBulk) SetHidden(v bool) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetHidden(v)
	})
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateHidden() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateHidden()
	})
}

// SetEnabled sets the "enabled" field.
func (u *AchievementUpsertBulk) SetEnabled(v bool) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateEnabled() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *AchievementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AchievementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
