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
	"github.com/gatherhub/gatherhub/ent/userbadge"
)

// UserBadgeCreate is the builder for creating a UserBadge entity.
type UserBadgeCreate struct {
	config
	mutation *UserBadgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserBadgeCreate) SetUserID(v string) *UserBadgeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBadgeID sets the "badge_id" field.
func (_c *UserBadgeCreate) SetBadgeID(v string) *UserBadgeCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetAwardedAt sets the "awarded_at" field.
func (_c *UserBadgeCreate) SetAwardedAt(v time.Time) *UserBadgeCreate {
	_c.mutation.SetAwardedAt(v)
	return _c
}

// SetNillableAwardedAt sets the "awarded_at" field if the given value is not nil.
func (_c *UserBadgeCreate) SetNillableAwardedAt(v *time.Time) *UserBadgeCreate {
	if v != nil {
		_c.SetAwardedAt(*v)
	}
	return _c
}

// SetAwardedBy sets the "awarded_by" field.
func (_c *UserBadgeCreate) SetAwardedBy(v string) *UserBadgeCreate {
	_c.mutation.SetAwardedBy(v)
	return _c
}

// SetNillableAwardedBy sets the "awarded_by" field if the given value is not nil.
func (_c *UserBadgeCreate) SetNillableAwardedBy(v *string) *UserBadgeCreate {
	if v != nil {
		_c.SetAwardedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserBadgeCreate) SetID(v string) *UserBadgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBadge sets the "badge" edge to the Badge entity.
func (_c *UserBadgeCreate) SetBadge(v *Badge) *UserBadgeCreate {
	return _c.SetBadgeID(v.ID)
}

// Mutation returns the UserBadgeMutation object of the builder.
func (_c *UserBadgeCreate) Mutation() *UserBadgeMutation {
	return _c.mutation
}

// Save creates the UserBadge in the database.
func (_c *UserBadgeCreate) Save(ctx context.Context) (*UserBadge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserBadgeCreate) SaveX(ctx context.Context) *UserBadge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserBadgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserBadgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserBadgeCreate) defaults() {
	if _, ok := _c.mutation.AwardedAt(); !ok {
		v := userbadge.DefaultAwardedAt()
		_c.mutation.SetAwardedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserBadgeCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserBadge.user_id"`)}
	}
	if _, ok := _c.mutation.BadgeID(); !ok {
		return &ValidationError{Name: "badge_id", err: errors.New(`ent: missing required field "UserBadge.badge_id"`)}
	}
	if _, ok := _c.mutation.AwardedAt(); !ok {
		return &ValidationError{Name: "awarded_at", err: errors.New(`ent: missing required field "UserBadge.awarded_at"`)}
	}
	if len(_c.mutation.BadgeIDs()) == 0 {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required edge "UserBadge.badge"`)}
	}
	return nil
}

func (_c *UserBadgeCreate) sqlSave(ctx context.Context) (*UserBadge, error) {
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
			return nil, fmt.Errorf("unexpected UserBadge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserBadgeCreate) createSpec() (*UserBadge, *sqlgraph.CreateSpec) {
	var (
		_node = &UserBadge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userbadge.Table, sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userbadge.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AwardedAt(); ok {
		_spec.SetField(userbadge.FieldAwardedAt, field.TypeTime, value)
		_node.AwardedAt = value
	}
	if value, ok := _c.mutation.AwardedBy(); ok {
		_spec.SetField(userbadge.FieldAwardedBy, field.TypeString, value)
		_node.AwardedBy = &value
	}
	if nodes := _c.mutation.BadgeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userbadge.BadgeTable,
			Columns: []string{userbadge.BadgeColumn},
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
//	client.UserBadge.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserBadgeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserBadgeCreate) OnConflict(opts ...sql.ConflictOption) *UserBadgeUpsertOne {
	_c.conflict = opts
	return &UserBadgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserBadgeCreate) OnConflictColumns(columns ...string) *UserBadgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserBadgeUpsertOne{
		create: _c,
	}
}

type (
	// UserBadgeUpsertOne is the builder for "upsert"-ing
	//  one UserBadge node.
	UserBadgeUpsertOne struct {
		create *UserBadgeCreate
	}

	// UserBadgeUpsert is the "OnConflict" setter.
	UserBadgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetAwardedBy sets the "awarded_by" field.
func (u *UserBadgeUpsert) SetAwardedBy(v string) *UserBadgeUpsert {
	u.Set(userbadge.FieldAwardedBy, v)
	return u
}

// UpdateAwardedBy sets the "awarded_by" field to the value that was provided on create.
func (u *UserBadgeUpsert) UpdateAwardedBy() *UserBadgeUpsert {
	u.SetExcluded(userbadge.FieldAwardedBy)
	return u
}

// ClearAwardedBy clears the value of the "awarded_by" field.
func (u *UserBadgeUpsert) ClearAwardedBy() *UserBadgeUpsert {
	u.SetNull(userbadge.FieldAwardedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userbadge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserBadgeUpsertOne) UpdateNewValues() *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userbadge.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(userbadge.FieldUserID)
		}
		if _, exists := u.create.mutation.BadgeID(); exists {
			s.SetIgnore(userbadge.FieldBadgeID)
		}
		if _, exists := u.create.mutation.AwardedAt(); exists {
			s.SetIgnore(userbadge.FieldAwardedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserBadgeUpsertOne) Ignore() *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserBadgeUpsertOne) DoNothing() *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserBadgeCreate.OnConflict
// documentation for more info.
func (u *UserBadgeUpsertOne) Update(set func(*UserBadgeUpsert)) *UserBadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserBadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetAwardedBy sets the "awarded_by" field.
func (u *UserBadgeUpsertOne) SetAwardedBy(v string) *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.SetAwardedBy(v)
	})
}

// UpdateAwardedBy sets the "awarded_by" field to the value that was provided on create.
func (u *UserBadgeUpsertOne) UpdateAwardedBy() *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.UpdateAwardedBy()
	})
}

// ClearAwardedBy clears the value of the "awarded_by" field.
func (u *UserBadgeUpsertOne) ClearAwardedBy() *UserBadgeUpsertOne {
	return u.Update(func(s *UserBadgeUpsert) {
		s.ClearAwardedBy()
	})
}

// Exec executes the query.
func (u *UserBadgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserBadgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserBadgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserBadgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserBadgeUpsertOne.ID is not supported by MySQL driver. Use UserBadgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserBadgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserBadgeCreateBulk is the builder for creating many UserBadge entities in bulk.
type UserBadgeCreateBulk struct {
	config
	err      error
	builders []*UserBadgeCreate
	conflict []sql.ConflictOption
}

// Save creates the UserBadge entities in the database.
func (_c *UserBadgeCreateBulk) Save(ctx context.Context) ([]*UserBadge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserBadge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserBadgeMutation)
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
func (_c *UserBadgeCreateBulk) SaveX(ctx context.Context) []*UserBadge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserBadgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserBadgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserBadge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserBadgeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserBadgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserBadgeUpsertBulk {
	_c.conflict = opts
	return &UserBadgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserBadgeCreateBulk) OnConflictColumns(columns ...string) *UserBadgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserBadgeUpsertBulk{
		create: _c,
	}
}

// UserBadgeUpsertBulk is the builder for "upsert"-ing
// a bulk of UserBadge nodes.
type UserBadgeUpsertBulk struct {
	create *UserBadgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userbadge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserBadgeUpsertBulk) UpdateNewValues() *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userbadge.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(userbadge.FieldUserID)
			}
			if _, exists := b.mutation.BadgeID(); exists {
				s.SetIgnore(userbadge.FieldBadgeID)
			}
			if _, exists := b.mutation.AwardedAt(); exists {
				s.SetIgnore(userbadge.FieldAwardedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserBadge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserBadgeUpsertBulk) Ignore() *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserBadgeUpsertBulk) DoNothing() *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserBadgeCreateBulk.OnConflict
// documentation for more info.
func (u *UserBadgeUpsertBulk) Update(set func(*UserBadgeUpsert)) *UserBadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserBadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetAwardedBy sets the "awarded_by" field.
func (u *UserBadgeUpsertBulk) SetAwardedBy(v string) *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.SetAwardedBy(v)
	})
}

// UpdateAwardedBy sets the "awarded_by" field to the value that was provided on create.
func (u *UserBadgeUpsertBulk) UpdateAwardedBy() *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.UpdateAwardedBy()
	})
}

// ClearAwardedBy clears the value of the "awarded_by" field.
func (u *UserBadgeUpsertBulk) ClearAwardedBy() *UserBadgeUpsertBulk {
	return u.Update(func(s *UserBadgeUpsert) {
		s.ClearAwardedBy()
	})
}

// Exec executes the query.
func (u *UserBadgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserBadgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserBadgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserBadgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
