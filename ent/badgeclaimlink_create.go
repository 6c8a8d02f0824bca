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
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
)

// BadgeClaimLinkCreate is the builder for creating a BadgeClaimLink entity.
type BadgeClaimLinkCreate struct {
	config
	mutation *BadgeClaimLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCode sets the "code" field.
func (_c *BadgeClaimLinkCreate) SetCode(v string) *BadgeClaimLinkCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetBadgeID sets the "badge_id" field.
func (_c *BadgeClaimLinkCreate) SetBadgeID(v string) *BadgeClaimLinkCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetMaxUses sets the "max_uses" field.
func (_c *BadgeClaimLinkCreate) SetMaxUses(v int) *BadgeClaimLinkCreate {
	_c.mutation.SetMaxUses(v)
	return _c
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_c *BadgeClaimLinkCreate) SetNillableMaxUses(v *int) *BadgeClaimLinkCreate {
	if v != nil {
		_c.SetMaxUses(*v)
	}
	return _c
}

// SetCurrentUses sets the "current_uses" field.
func (_c *BadgeClaimLinkCreate) SetCurrentUses(v int) *BadgeClaimLinkCreate {
	_c.mutation.SetCurrentUses(v)
	return _c
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_c *BadgeClaimLinkCreate) SetNillableCurrentUses(v *int) *BadgeClaimLinkCreate {
	if v != nil {
		_c.SetCurrentUses(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *BadgeClaimLinkCreate) SetExpiresAt(v time.Time) *BadgeClaimLinkCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *BadgeClaimLinkCreate) SetNillableExpiresAt(v *time.Time) *BadgeClaimLinkCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetAchievementKey sets the "achievement_key" field.
func (_c *BadgeClaimLinkCreate) SetAchievementKey(v string) *BadgeClaimLinkCreate {
	_c.mutation.SetAchievementKey(v)
	return _c
}

// SetNillableAchievementKey sets the "achievement_key" field if the given value is not nil.
func (_c *BadgeClaimLinkCreate) SetNillableAchievementKey(v *string) *BadgeClaimLinkCreate {
	if v != nil {
		_c.SetAchievementKey(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *BadgeClaimLinkCreate) SetEventType(v string) *BadgeClaimLinkCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *BadgeClaimLinkCreate) SetNillableEventType(v *string) *BadgeClaimLinkCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetEventPayload sets the "event_payload" field.
func (_c *BadgeClaimLinkCreate) SetEventPayload(v map[string]interface{}) *BadgeClaimLinkCreate {
	_c.mutation.SetEventPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BadgeClaimLinkCreate) SetCreatedAt(v time.Time) *BadgeClaimLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BadgeClaimLinkCreate) SetNillableCreatedAt(v *time.Time) *BadgeClaimLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BadgeClaimLinkCreate) SetID(v string) *BadgeClaimLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBadge sets the "badge" edge to the Badge entity.
func (_c *BadgeClaimLinkCreate) SetBadge(v *Badge) *BadgeClaimLinkCreate {
	return _c.SetBadgeID(v.ID)
}

// Mutation returns the BadgeClaimLinkMutation object of the builder.
func (_c *BadgeClaimLinkCreate) Mutation() *BadgeClaimLinkMutation {
	return _c.mutation
}

// Save creates the BadgeClaimLink in the database.
func (_c *BadgeClaimLinkCreate) Save(ctx context.Context) (*BadgeClaimLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeClaimLinkCreate) SaveX(ctx context.Context) *BadgeClaimLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeClaimLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeClaimLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeClaimLinkCreate) defaults() {
	if _, ok := _c.mutation.CurrentUses(); !ok {
		v := badgeclaimlink.DefaultCurrentUses
		_c.mutation.SetCurrentUses(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := badgeclaimlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeClaimLinkCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "BadgeClaimLink.code"`)}
	}
	if _, ok := _c.mutation.BadgeID(); !ok {
		return &ValidationError{Name: "badge_id", err: errors.New(`ent: missing required field "BadgeClaimLink.badge_id"`)}
	}
	if _, ok := _c.mutation.CurrentUses(); !ok {
		return &ValidationError{Name: "current_uses", err: errors.New(`ent: missing required field "BadgeClaimLink.current_uses"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BadgeClaimLink.created_at"`)}
	}
	if len(_c.mutation.BadgeIDs()) == 0 {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required edge "BadgeClaimLink.badge"`)}
	}
	return nil
}

func (_c *BadgeClaimLinkCreate) sqlSave(ctx context.Context) (*BadgeClaimLink, error) {
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
			return nil, fmt.Errorf("unexpected BadgeClaimLink.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BadgeClaimLinkCreate) createSpec() (*BadgeClaimLink, *sqlgraph.CreateSpec) {
	var (
		_node = &BadgeClaimLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badgeclaimlink.Table, sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(badgeclaimlink.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.MaxUses(); ok {
		_spec.SetField(badgeclaimlink.FieldMaxUses, field.TypeInt, value)
		_node.MaxUses = &value
	}
	if value, ok := _c.mutation.CurrentUses(); ok {
		_spec.SetField(badgeclaimlink.FieldCurrentUses, field.TypeInt, value)
		_node.CurrentUses = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(badgeclaimlink.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.AchievementKey(); ok {
		_spec.SetField(badgeclaimlink.FieldAchievementKey, field.TypeString, value)
		_node.AchievementKey = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(badgeclaimlink.FieldEventType, field.TypeString, value)
		_node.EventType = &value
	}
	if value, ok := _c.mutation.EventPayload(); ok {
		_spec.SetField(badgeclaimlink.FieldEventPayload, field.TypeJSON, value)
		_node.EventPayload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(badgeclaimlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BadgeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   badgeclaimlink.BadgeTable,
			Columns: []string{badgeclaimlink.BadgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BadgeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BadgeClaimLink.Create().
//		SetCode(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeClaimLinkUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeClaimLinkCreate) OnConflict(opts ...sql.ConflictOption) *BadgeClaimLinkUpsertOne {
	_c.conflict = opts
	return &BadgeClaimLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BadgeClaimLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeClaimLinkCreate) OnConflictColumns(columns ...string) *BadgeClaimLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeClaimLinkUpsertOne{
		create: _c,
	}
}

type (
	// BadgeClaimLinkUpsertOne is the builder for "upsert"-ing
	//  one BadgeClaimLink node.
	BadgeClaimLinkUpsertOne struct {
		create *BadgeClaimLinkCreate
	}

	// BadgeClaimLinkUpsert is the "OnConflict" setter.
	BadgeClaimLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetCode sets the "code" field.
func (u *BadgeClaimLinkUpsert) SetCode(v string) *BadgeClaimLinkUpsert {
	u.Set(badgeclaimlink.FieldCode, v)
	return u
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsert) UpdateCode() *BadgeClaimLinkUpsert {
	u.SetExcluded(badgeclaimlink.FieldCode)
	return u
}

// SetMaxUses sets the "max_uses" field.
func (u *BadgeClaimLinkUpsert) SetMaxUses(v int) *BadgeClaimLinkUpsert {
	u.Set(badgeclaimlink.FieldMaxUses, v)
	return u
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsert) UpdateMaxUses() *BadgeClaimLinkUpsert {
	u.SetExcluded(badgeclaimlink.FieldMaxUses)
	return u
}

// AddMaxUses adds v to the "max_uses" field.
func (u *BadgeClaimLinkUpsert) AddMaxUses(v int) *BadgeClaimLinkUpsert {
	u.Add(badgeclaimlink.FieldMaxUses, v)
	return u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *BadgeClaimLinkUpsert) ClearMaxUses() *BadgeClaimLinkUpsert {
	u.SetNull(badgeclaimlink.FieldMaxUses)
	return u
}

// SetCurrentUses sets the "current_uses" field.
func (u *BadgeClaimLinkUpsert) SetCurrentUses(v int) *BadgeClaimLinkUpsert {
	u.Set(badgeclaimlink.FieldCurrentUses, v)
	return u
}

// UpdateCurrentUses sets the "current_uses" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsert) UpdateCurrentUses() *BadgeClaimLinkUpsert {
	u.SetExcluded(badgeclaimlink.FieldCurrentUses)
	return u
}

// AddCurrentUses adds v to the "current_uses" field.
func (u *BadgeClaimLinkUpsert) AddCurrentUses(v int) *BadgeClaimLinkUpsert {
	u.Add(badgeclaimlink.FieldCurrentUses, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *BadgeClaimLinkUpsert) SetExpiresAt(v time.Time) *BadgeClaimLinkUpsert {
	u.Set(badgeclaimlink.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsert) UpdateExpiresAt() *BadgeClaimLinkUpsert {
	u.SetExcluded(badgeclaimlink.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *BadgeClaimLinkUpsert) ClearExpiresAt() *BadgeClaimLinkUpsert {
	u.SetNull(badgeclaimlink.FieldExpiresAt)
	return u
}

// SetAchievementKey sets the "achievement_key" field.
func (u *BadgeClaimLinkUpsert) SetAchievementKey(v string) *BadgeClaimLinkUpsert {
	u.Set(badgeclaimlink.FieldAchievementKey, v)
	return u
}

// UpdateAchievementKey sets the "achievement_key" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsert) UpdateAchievementKey() *BadgeClaimLinkUpsert {
	u.SetExcluded(badgeclaimlink.FieldAchievementKey)
	return u
}

// ClearAchievementKey clears the value of the "achievement_key" field.
func (u *BadgeClaimLinkUpsert) ClearAchievementKey() *BadgeClaimLinkUpsert {
	u.SetNull(badgeclaimlink.FieldAchievementKey)
	return u
}

// SetEventType sets the "event_type" field.
func (u *BadgeClaimLinkUpsert) SetEventType(v string) *BadgeClaimLinkUpsert {
	u.Set(badgeclaimlink.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsert) UpdateEventType() *BadgeClaimLinkUpsert {
	u.SetExcluded(badgeclaimlink.FieldEventType)
	return u
}

// ClearEventType clears the value of the "event_type" field.
func (u *BadgeClaimLinkUpsert) ClearEventType() *BadgeClaimLinkUpsert {
	u.SetNull(badgeclaimlink.FieldEventType)
	return u
}

// SetEventPayload sets the "event_payload" field.
func (u *BadgeClaimLinkUpsert) SetEventPayload(v map[string]interface{}) *BadgeClaimLinkUpsert {
	u.Set(badgeclaimlink.FieldEventPayload, v)
	return u
}

// UpdateEventPayload sets the "event_payload" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsert) UpdateEventPayload() *BadgeClaimLinkUpsert {
	u.SetExcluded(badgeclaimlink.FieldEventPayload)
	return u
}

// ClearEventPayload clears the value of the "event_payload" field.
func (u *BadgeClaimLinkUpsert) ClearEventPayload() *BadgeClaimLinkUpsert {
	u.SetNull(badgeclaimlink.FieldEventPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BadgeClaimLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(badgeclaimlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BadgeClaimLinkUpsertOne) UpdateNewValues() *BadgeClaimLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(badgeclaimlink.FieldID)
		}
		if _, exists := u.create.mutation.BadgeID(); exists {
			s.SetIgnore(badgeclaimlink.FieldBadgeID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(badgeclaimlink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BadgeClaimLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BadgeClaimLinkUpsertOne) Ignore() *BadgeClaimLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeClaimLinkUpsertOne) DoNothing() *BadgeClaimLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeClaimLinkCreate.OnConflict
// documentation for more info.
func (u *BadgeClaimLinkUpsertOne) Update(set func(*BadgeClaimLinkUpsert)) *BadgeClaimLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeClaimLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetCode sets the "code" field.
func (u *BadgeClaimLinkUpsertOne) SetCode(v string) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertOne) UpdateCode() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateCode()
	})
}

// SetMaxUses sets the "max_uses" field.
func (u *BadgeClaimLinkUpsertOne) SetMaxUses(v int) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetMaxUses(v)
	})
}

// AddMaxUses adds v to the "max_uses" field.
func (u *BadgeClaimLinkUpsertOne) AddMaxUses(v int) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.AddMaxUses(v)
	})
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertOne) UpdateMaxUses() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateMaxUses()
	})
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *BadgeClaimLinkUpsertOne) ClearMaxUses() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearMaxUses()
	})
}

// SetCurrentUses sets the "current_uses" field.
func (u *BadgeClaimLinkUpsertOne) SetCurrentUses(v int) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetCurrentUses(v)
	})
}

// AddCurrentUses adds v to the "current_uses" field.
func (u *BadgeClaimLinkUpsertOne) AddCurrentUses(v int) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.AddCurrentUses(v)
	})
}

// UpdateCurrentUses sets the "current_uses" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertOne) UpdateCurrentUses() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateCurrentUses()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *BadgeClaimLinkUpsertOne) SetExpiresAt(v time.Time) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertOne) UpdateExpiresAt() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *BadgeClaimLinkUpsertOne) ClearExpiresAt() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearExpiresAt()
	})
}

// SetAchievementKey sets the "achievement_key" field.
func (u *BadgeClaimLinkUpsertOne) SetAchievementKey(v string) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetAchievementKey(v)
	})
}

// UpdateAchievementKey sets the "achievement_key" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertOne) UpdateAchievementKey() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateAchievementKey()
	})
}

// ClearAchievementKey clears the value of the "achievement_key" field.
func (u *BadgeClaimLinkUpsertOne) ClearAchievementKey() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearAchievementKey()
	})
}

// SetEventType sets the "event_type" field.
func (u *BadgeClaimLinkUpsertOne) SetEventType(v string) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertOne) UpdateEventType() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *BadgeClaimLinkUpsertOne) ClearEventType() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearEventType()
	})
}

// SetEventPayload sets the "event_payload" field.
func (u *BadgeClaimLinkUpsertOne) SetEventPayload(v map[string]interface{}) *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetEventPayload(v)
	})
}

// UpdateEventPayload sets the "event_payload" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertOne) UpdateEventPayload() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateEventPayload()
	})
}

// ClearEventPayload clears the value of the "event_payload" field.
func (u *BadgeClaimLinkUpsertOne) ClearEventPayload() *BadgeClaimLinkUpsertOne {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearEventPayload()
	})
}

// Exec executes the query.
func (u *BadgeClaimLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeClaimLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeClaimLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BadgeClaimLinkUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BadgeClaimLinkUpsertOne.ID is not supported by MySQL driver. Use BadgeClaimLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BadgeClaimLinkUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BadgeClaimLinkCreateBulk is the builder for creating many BadgeClaimLink entities in bulk.
type BadgeClaimLinkCreateBulk struct {
	config
	err      error
	builders []*BadgeClaimLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the BadgeClaimLink entities in the database.
func (_c *BadgeClaimLinkCreateBulk) Save(ctx context.Context) ([]*BadgeClaimLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BadgeClaimLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeClaimLinkMutation)
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
func (_c *BadgeClaimLinkCreateBulk) SaveX(ctx context.Context) []*BadgeClaimLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeClaimLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeClaimLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BadgeClaimLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeClaimLinkUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeClaimLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *BadgeClaimLinkUpsertBulk {
	_c.conflict = opts
	return &BadgeClaimLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BadgeClaimLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeClaimLinkCreateBulk) OnConflictColumns(columns ...string) *BadgeClaimLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeClaimLinkUpsertBulk{
		create: _c,
	}
}

// BadgeClaimLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of BadgeClaimLink nodes.
type BadgeClaimLinkUpsertBulk struct {
	create *BadgeClaimLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BadgeClaimLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(badgeclaimlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BadgeClaimLinkUpsertBulk) UpdateNewValues() *BadgeClaimLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(badgeclaimlink.FieldID)
			}
			if _, exists := b.mutation.BadgeID(); exists {
				s.SetIgnore(badgeclaimlink.FieldBadgeID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(badgeclaimlink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BadgeClaimLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BadgeClaimLinkUpsertBulk) Ignore() *BadgeClaimLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeClaimLinkUpsertBulk) DoNothing() *BadgeClaimLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeClaimLinkCreateBulk.OnConflict
// documentation for more info.
func (u *BadgeClaimLinkUpsertBulk) Update(set func(*BadgeClaimLinkUpsert)) *BadgeClaimLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeClaimLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetCode sets the "code" field.
func (u *BadgeClaimLinkUpsertBulk) SetCode(v string) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertBulk) UpdateCode() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateCode()
	})
}

// SetMaxUses sets the "max_uses" field.
func (u *BadgeClaimLinkUpsertBulk) SetMaxUses(v int) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetMaxUses(v)
	})
}

// AddMaxUses adds v to the "max_uses" field.
func (u *BadgeClaimLinkUpsertBulk) AddMaxUses(v int) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.AddMaxUses(v)
	})
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertBulk) UpdateMaxUses() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateMaxUses()
	})
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *BadgeClaimLinkUpsertBulk) ClearMaxUses() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearMaxUses()
	})
}

// SetCurrentUses sets the "current_uses" field.
func (u *BadgeClaimLinkUpsertBulk) SetCurrentUses(v int) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetCurrentUses(v)
	})
}

// AddCurrentUses adds v to the "current_uses" field.
func (u *BadgeClaimLinkUpsertBulk) AddCurrentUses(v int) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.AddCurrentUses(v)
	})
}

// UpdateCurrentUses sets the "current_uses" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertBulk) UpdateCurrentUses() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateCurrentUses()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *BadgeClaimLinkUpsertBulk) SetExpiresAt(v time.Time) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertBulk) UpdateExpiresAt() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *BadgeClaimLinkUpsertBulk) ClearExpiresAt() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearExpiresAt()
	})
}

// SetAchievementKey sets the "achievement_key" field.
func (u *BadgeClaimLinkUpsertBulk) SetAchievementKey(v string) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetAchievementKey(v)
	})
}

// UpdateAchievementKey sets the "achievement_key" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertBulk) UpdateAchievementKey() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateAchievementKey()
	})
}

// ClearAchievementKey clears the value of the "achievement_key" field.
func (u *BadgeClaimLinkUpsertBulk) ClearAchievementKey() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearAchievementKey()
	})
}

// SetEventType sets the "event_type" field.
func (u *BadgeClaimLinkUpsertBulk) SetEventType(v string) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertBulk) UpdateEventType() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *BadgeClaimLinkUpsertBulk) ClearEventType() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearEventType()
	})
}

// SetEventPayload sets the "event_payload" field.
func (u *BadgeClaimLinkUpsertBulk) SetEventPayload(v map[string]interface{}) *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.SetEventPayload(v)
	})
}

// UpdateEventPayload sets the "event_payload" field to the value that was provided on create.
func (u *BadgeClaimLinkUpsertBulk) UpdateEventPayload() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.UpdateEventPayload()
	})
}

// ClearEventPayload clears the value of the "event_payload" field.
func (u *BadgeClaimLinkUpsertBulk) ClearEventPayload() *BadgeClaimLinkUpsertBulk {
	return u.Update(func(s *BadgeClaimLinkUpsert) {
		s.ClearEventPayload()
	})
}

// Exec executes the query.
func (u *BadgeClaimLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BadgeClaimLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeClaimLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeClaimLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
