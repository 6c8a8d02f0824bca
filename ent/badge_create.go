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
	"github.com/gatherhub/gatherhub/ent/userbadge"
)

// BadgeCreate is the builder for creating a Badge entity.
type BadgeCreate struct {
	config
	mutation *BadgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlug sets the "slug" field.
func (_c *BadgeCreate) SetSlug(v string) *BadgeCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BadgeCreate) SetName(v string) *BadgeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BadgeCreate) SetDescription(v string) *BadgeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableDescription(v *string) *BadgeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIcon sets the "icon" field.
func (_c *BadgeCreate) SetIcon(v string) *BadgeCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableIcon(v *string) *BadgeCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *BadgeCreate) SetColor(v string) *BadgeCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableColor(v *string) *BadgeCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *BadgeCreate) SetPoints(v int) *BadgeCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *BadgeCreate) SetNillablePoints(v *int) *BadgeCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *BadgeCreate) SetSortOrder(v int) *BadgeCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableSortOrder(v *int) *BadgeCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetHidden sets the "hidden" field.
func (_c *BadgeCreate) SetHidden(v bool) *BadgeCreate {
	_c.mutation.SetHidden(v)
	return _c
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableHidden(v *bool) *BadgeCreate {
	if v != nil {
		_c.SetHidden(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *BadgeCreate) SetGroupID(v string) *BadgeCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableGroupID(v *string) *BadgeCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BadgeCreate) SetCreatedAt(v time.Time) *BadgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableCreatedAt(v *time.Time) *BadgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BadgeCreate) SetID(v string) *BadgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUserBadgeIDs adds the "user_badges" edge to the UserBadge entity by IDs.
func (_c *BadgeCreate) AddUserBadgeIDs(ids ...string) *BadgeCreate {
	_c.mutation.AddUserBadgeIDs(ids...)
	return _c
}

// AddUserBadges adds the "user_badges" edges to the UserBadge entity.
func (_c *BadgeCreate) AddUserBadges(v ...*UserBadge) *BadgeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserBadgeIDs(ids...)
}

// AddClaimLinkIDs adds the "claim_links" edge to the BadgeClaimLink entity by IDs.
func (_c *BadgeCreate) AddClaimLinkIDs(ids ...string) *BadgeCreate {
	_c.mutation.AddClaimLinkIDs(ids...)
	return _c
}

// AddClaimLinks adds the "claim_links" edges to the BadgeClaimLink entity.
func (_c *BadgeCreate) AddClaimLinks(v ...*BadgeClaimLink) *BadgeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClaimLinkIDs(ids...)
}

// Mutation returns the BadgeMutation object of the builder.
func (_c *BadgeCreate) Mutation() *BadgeMutation {
	return _c.mutation
}

// Save creates the Badge in the database.
func (_c *BadgeCreate) Save(ctx context.Context) (*Badge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeCreate) SaveX(ctx context.Context) *Badge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeCreate) defaults() {
	if _, ok := _c.mutation.Points(); !ok {
		v := badge.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := badge.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.Hidden(); !ok {
		v := badge.DefaultHidden
		_c.mutation.SetHidden(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := badge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Badge.slug"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Badge.name"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "Badge.points"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "Badge.sort_order"`)}
	}
	if _, ok := _c.mutation.Hidden(); !ok {
		return &ValidationError{Name: "hidden", err: errors.New(`ent: missing required field "Badge.hidden"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Badge.created_at"`)}
	}
	return nil
}

func (_c *BadgeCreate) sqlSave(ctx context.Context) (*Badge, error) {
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
			return nil, fmt.Errorf("unexpected Badge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BadgeCreate) createSpec() (*Badge, *sqlgraph.CreateSpec) {
	var (
		_node = &Badge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badge.Table, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(badge.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
		_node.Icon = &value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(badge.FieldColor, field.TypeString, value)
		_node.Color = &value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(badge.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(badge.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.Hidden(); ok {
		_spec.SetField(badge.FieldHidden, field.TypeBool, value)
		_node.Hidden = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(badge.FieldGroupID, field.TypeString, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(badge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserBadgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.UserBadgesTable,
			Columns: []string{badge.UserBadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClaimLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.ClaimLinksTable,
			Columns: []string{badge.ClaimLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Badge.Create().
//		SetSlug(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeCreate) OnConflict(opts ...sql.ConflictOption) *BadgeUpsertOne {
	_c.conflict = opts
	return &BadgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeCreate) OnConflictColumns(columns ...string) *BadgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeUpsertOne{
		create: _c,
	}
}

type (
	// BadgeUpsertOne is the builder for "upsert"-ing
	//  one Badge node.
	BadgeUpsertOne struct {
		create *BadgeCreate
	}

	// BadgeUpsert is the "OnConflict" setter.
	BadgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *BadgeUpsert) SetSlug(v string) *BadgeUpsert {
	u.Set(badge.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateSlug() *BadgeUpsert {
	u.SetExcluded(badge.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *BadgeUpsert) SetName(v string) *BadgeUpsert {
	u.Set(badge.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateName() *BadgeUpsert {
	u.SetExcluded(badge.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *BadgeUpsert) SetDescription(v string) *BadgeUpsert {
	u.Set(badge.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateDescription() *BadgeUpsert {
	u.SetExcluded(badge.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *BadgeUpsert) ClearDescription() *BadgeUpsert {
	u.SetNull(badge.FieldDescription)
	return u
}

// SetIcon sets the "icon" field.
func (u *BadgeUpsert) SetIcon(v string) *BadgeUpsert {
	u.Set(badge.FieldIcon, v)
	return u
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateIcon() *BadgeUpsert {
	u.SetExcluded(badge.FieldIcon)
	return u
}

// ClearIcon clears the value of the "icon" field.
func (u *BadgeUpsert) ClearIcon() *BadgeUpsert {
	u.SetNull(badge.FieldIcon)
	return u
}

// SetColor sets the "color" field.
func (u *BadgeUpsert) SetColor(v string) *BadgeUpsert {
	u.Set(badge.FieldColor, v)
	return u
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateColor() *BadgeUpsert {
	u.SetExcluded(badge.FieldColor)
	return u
}

// ClearColor clears the value of the "color" field.
func (u *BadgeUpsert) ClearColor() *BadgeUpsert {
	u.SetNull(badge.FieldColor)
	return u
}

// SetPoints sets the "points" field.
func (u *BadgeUpsert) SetPoints(v int) *BadgeUpsert {
	u.Set(badge.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *BadgeUpsert) UpdatePoints() *BadgeUpsert {
	u.SetExcluded(badge.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *BadgeUpsert) AddPoints(v int) *BadgeUpsert {
	u.Add(badge.FieldPoints, v)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *BadgeUpsert) SetSortOrder(v int) *BadgeUpsert {
	u.Set(badge.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateSortOrder() *BadgeUpsert {
	u.SetExcluded(badge.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *BadgeUpsert) AddSortOrder(v int) *BadgeUpsert {
	u.Add(badge.FieldSortOrder, v)
	return u
}

// SetHidden sets the "hidden" field.
func (u *BadgeUpsert) SetHidden(v bool) *BadgeUpsert {
	u.Set(badge.FieldHidden, v)
	return u
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateHidden() *BadgeUpsert {
	u.SetExcluded(badge.FieldHidden)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *BadgeUpsert) SetGroupID(v string) *BadgeUpsert {
	u.Set(badge.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateGroupID() *BadgeUpsert {
	u.SetExcluded(badge.FieldGroupID)
	return u
}

// ClearGroupID clears the value of the "group_id" field.
func (u *BadgeUpsert) ClearGroupID() *BadgeUpsert {
	u.SetNull(badge.FieldGroupID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(badge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BadgeUpsertOne) UpdateNewValues() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(badge.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(badge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BadgeUpsertOne) Ignore() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUpsertOne) DoNothing() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeCreate.OnConflict
// documentation for more info.
func (u *BadgeUpsertOne) Update(set func(*BadgeUpsert)) *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *BadgeUpsertOne) SetSlug(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateSlug() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *BadgeUpsertOne) SetName(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateName() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *BadgeUpsertOne) SetDescription(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateDescription() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *BadgeUpsertOne) ClearDescription() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearDescription()
	})
}

// SetIcon sets the "icon" field.
func (u *BadgeUpsertOne) SetIcon(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetIcon(v)
	})
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateIcon() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateIcon()
	})
}

// ClearIcon clears the value of the "icon" field.
func (u *BadgeUpsertOne) ClearIcon() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearIcon()
	})
}

// SetColor sets the "color" field.
func (u *BadgeUpsertOne) SetColor(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateColor() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *BadgeUpsertOne) ClearColor() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearColor()
	})
}

// SetPoints sets the "points" field.
func (u *BadgeUpsertOne) SetPoints(v int) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *BadgeUpsertOne) AddPoints(v int) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdatePoints() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdatePoints()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *BadgeUpsertOne) SetSortOrder(v int) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *BadgeUpsertOne) AddSortOrder(v int) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateSortOrder() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateSortOrder()
	})
}

// SetHidden sets the "hidden" field.
func (u *BadgeUpsertOne) SetHidden(v bool) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetHidden(v)
	})
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateHidden() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateHidden()
	})
}

// SetGroupID sets the "group_id" field.
func (u *BadgeUpsertOne) SetGroupID(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateGroupID() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *BadgeUpsertOne) ClearGroupID() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearGroupID()
	})
}

// Exec executes the query.
func (u *BadgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BadgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BadgeUpsertOne.ID is not supported by MySQL driver. Use BadgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BadgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BadgeCreateBulk is the builder for creating many Badge entities in bulk.
type BadgeCreateBulk struct {
	config
	err      error
	builders []*BadgeCreate
	conflict []sql.ConflictOption
}

// Save creates the Badge entities in the database.
func (_c *BadgeCreateBulk) Save(ctx context.Context) ([]*Badge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Badge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeMutation)
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
func (_c *BadgeCreateBulk) SaveX(ctx context.Context) []*Badge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Badge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *BadgeUpsertBulk {
	_c.conflict = opts
	return &BadgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeCreateBulk) OnConflictColumns(columns ...string) *BadgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeUpsertBulk{
		create: _c,
	}
}

// BadgeUpsertBulk is the builder for "upsert"-ing
// a bulk of Badge nodes.
type BadgeUpsertBulk struct {
	create *BadgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(badge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BadgeUpsertBulk) UpdateNewValues() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(badge.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(badge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BadgeUpsertBulk) Ignore() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUpsertBulk) DoNothing() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeCreateBulk.OnConflict
// documentation for more info.
func (u *BadgeUpsertBulk) Update(set func(*BadgeUpsert)) *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *BadgeUpsertBulk) SetSlug(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateSlug() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *BadgeUpsertBulk) SetName(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateName() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *BadgeUpsertBulk) SetDescription(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateDescription() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *BadgeUpsertBulk) ClearDescription() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearDescription()
	})
}

// SetIcon sets the "icon" field.
func (u *BadgeUpsertBulk) SetIcon(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetIcon(v)
	})
}

// UpdateIcon sets the "icon" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateIcon() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateIcon()
	})
}

// ClearIcon clears the value of the "icon" field.
func (u *BadgeUpsertBulk) ClearIcon() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearIcon()
	})
}

// SetColor sets the "color" field.
func (u *BadgeUpsertBulk) SetColor(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateColor() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *BadgeUpsertBulk) ClearColor() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearColor()
	})
}

// SetPoints sets the "points" field.
func (u *BadgeUpsertBulk) SetPoints(v int) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *BadgeUpsertBulk) AddPoints(v int) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdatePoints() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdatePoints()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *BadgeUpsertBulk) SetSortOrder(v int) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *BadgeUpsertBulk) AddSortOrder(v int) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateSortOrder() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateSortOrder()
	})
}

// SetHidden sets the "hidden" field.
func (u *BadgeUpsertBulk) SetHidden(v bool) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetHidden(v)
	})
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateHidden() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateHidden()
	})
}

// SetGroupID sets the "group_id" field.
func (u *BadgeUpsertBulk) SetGroupID(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateGroupID() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *BadgeUpsertBulk) ClearGroupID() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.ClearGroupID()
	})
}

// Exec executes the query.
func (u *BadgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BadgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
