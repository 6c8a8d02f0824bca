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
	"github.com/gatherhub/gatherhub/ent/userentitlement"
)

// UserEntitlementCreate is the builder for creating a UserEntitlement entity.
type UserEntitlementCreate struct {
	config
	mutation *UserEntitlementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserEntitlementCreate) SetUserID(v string) *UserEntitlementCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEntitlement sets the "entitlement" field.
func (_c *UserEntitlementCreate) SetEntitlement(v string) *UserEntitlementCreate {
	_c.mutation.SetEntitlement(v)
	return _c
}

// SetGrantedAt sets the "granted_at" field.
func (_c *UserEntitlementCreate) SetGrantedAt(v time.Time) *UserEntitlementCreate {
	_c.mutation.SetGrantedAt(v)
	return _c
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (_c *UserEntitlementCreate) SetNillableGrantedAt(v *time.Time) *UserEntitlementCreate {
	if v != nil {
		_c.SetGrantedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserEntitlementCreate) SetID(v string) *UserEntitlementCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserEntitlementMutation object of the builder.
func (_c *UserEntitlementCreate) Mutation() *UserEntitlementMutation {
	return _c.mutation
}

// Save creates the UserEntitlement in the database.
func (_c *UserEntitlementCreate) Save(ctx context.Context) (*UserEntitlement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserEntitlementCreate) SaveX(ctx context.Context) *UserEntitlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserEntitlementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserEntitlementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserEntitlementCreate) defaults() {
	if _, ok := _c.mutation.GrantedAt(); !ok {
		v := userentitlement.DefaultGrantedAt()
		_c.mutation.SetGrantedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserEntitlementCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserEntitlement.user_id"`)}
	}
	if _, ok := _c.mutation.Entitlement(); !ok {
		return &ValidationError{Name: "entitlement", err: errors.New(`ent: missing required field "UserEntitlement.entitlement"`)}
	}
	if _, ok := _c.mutation.GrantedAt(); !ok {
		return &ValidationError{Name: "granted_at", err: errors.New(`ent: missing required field "UserEntitlement.granted_at"`)}
	}
	return nil
}

func (_c *UserEntitlementCreate) sqlSave(ctx context.Context) (*UserEntitlement, error) {
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
			return nil, fmt.Errorf("unexpected UserEntitlement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserEntitlementCreate) createSpec() (*UserEntitlement, *sqlgraph.CreateSpec) {
	var (
		_node = &UserEntitlement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userentitlement.Table, sqlgraph.NewFieldSpec(userentitlement.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userentitlement.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Entitlement(); ok {
		_spec.SetField(userentitlement.FieldEntitlement, field.TypeString, value)
		_node.Entitlement = value
	}
	if value, ok := _c.mutation.GrantedAt(); ok {
		_spec.SetField(userentitlement.FieldGrantedAt, field.TypeTime, value)
		_node.GrantedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserEntitlement.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserEntitlementUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserEntitlementCreate) OnConflict(opts ...sql.ConflictOption) *UserEntitlementUpsertOne {
	_c.conflict = opts
	return &UserEntitlementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserEntitlement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserEntitlementCreate) OnConflictColumns(columns ...string) *UserEntitlementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserEntitlementUpsertOne{
		create: _c,
	}
}

type (
	// UserEntitlementUpsertOne is the builder for "upsert"-ing
	//  one UserEntitlement node.
	UserEntitlementUpsertOne struct {
		create *UserEntitlementCreate
	}

	// UserEntitlementUpsert is the "OnConflict" setter.
	UserEntitlementUpsert struct {
		*sql.UpdateSet
	}
)

// SetGrantedAt sets the "granted_at" field.
func (u *UserEntitlementUpsert) SetGrantedAt(v time.Time) *UserEntitlementUpsert {
	u.Set(userentitlement.FieldGrantedAt, v)
	return u
}

// UpdateGrantedAt sets the "granted_at" field to the value that was provided on create.
func (u *UserEntitlementUpsert) UpdateGrantedAt() *UserEntitlementUpsert {
	u.SetExcluded(userentitlement.FieldGrantedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserEntitlement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userentitlement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserEntitlementUpsertOne) UpdateNewValues() *UserEntitlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userentitlement.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(userentitlement.FieldUserID)
		}
		if _, exists := u.create.mutation.Entitlement(); exists {
			s.SetIgnore(userentitlement.FieldEntitlement)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserEntitlement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserEntitlementUpsertOne) Ignore() *UserEntitlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserEntitlementUpsertOne) DoNothing() *UserEntitlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserEntitlementCreate.OnConflict
// documentation for more info.
func (u *UserEntitlementUpsertOne) Update(set func(*UserEntitlementUpsert)) *UserEntitlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserEntitlementUpsert{UpdateSet: update})
	}))
	return u
}

// SetGrantedAt sets the "granted_at" field.
func (u *UserEntitlementUpsertOne) SetGrantedAt(v time.Time) *UserEntitlementUpsertOne {
	return u.Update(func(s *UserEntitlementUpsert) {
		s.SetGrantedAt(v)
	})
}

// UpdateGrantedAt sets the "granted_at" field to the value that was provided on create.
func (u *UserEntitlementUpsertOne) UpdateGrantedAt() *UserEntitlementUpsertOne {
	return u.Update(func(s *UserEntitlementUpsert) {
		s.UpdateGrantedAt()
	})
}

// Exec executes the query.
func (u *UserEntitlementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserEntitlementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserEntitlementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserEntitlementUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserEntitlementUpsertOne.ID is not supported by MySQL driver. Use UserEntitlementUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserEntitlementUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserEntitlementCreateBulk is the builder for creating many UserEntitlement entities in bulk.
type UserEntitlementCreateBulk struct {
	config
	err      error
	builders []*UserEntitlementCreate
	conflict []sql.ConflictOption
}

// Save creates the UserEntitlement entities in the database.
func (_c *UserEntitlementCreateBulk) Save(ctx context.Context) ([]*UserEntitlement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserEntitlement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserEntitlementMutation)
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
func (_c *UserEntitlementCreateBulk) SaveX(ctx context.Context) []*UserEntitlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserEntitlementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserEntitlementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserEntitlement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserEntitlementUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserEntitlementCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserEntitlementUpsertBulk {
	_c.conflict = opts
	return &UserEntitlementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserEntitlement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserEntitlementCreateBulk) OnConflictColumns(columns ...string) *UserEntitlementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserEntitlementUpsertBulk{
		create: _c,
	}
}

// UserEntitlementUpsertBulk is the builder for "upsert"-ing
// a bulk of UserEntitlement nodes.
type UserEntitlementUpsertBulk struct {
	create *UserEntitlementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserEntitlement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userentitlement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserEntitlementUpsertBulk) UpdateNewValues() *UserEntitlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userentitlement.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(userentitlement.FieldUserID)
			}
			if _, exists := b.mutation.Entitlement(); exists {
				s.SetIgnore(userentitlement.FieldEntitlement)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserEntitlement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserEntitlementUpsertBulk) Ignore() *UserEntitlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserEntitlementUpsertBulk) DoNothing() *UserEntitlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserEntitlementCreateBulk.OnConflict
// documentation for more info.
func (u *UserEntitlementUpsertBulk) Update(set func(*UserEntitlementUpsert)) *UserEntitlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserEntitlementUpsert{UpdateSet: update})
	}))
	return u
}

// SetGrantedAt sets the "granted_at" field.
func (u *UserEntitlementUpsertBulk) SetGrantedAt(v time.Time) *UserEntitlementUpsertBulk {
	return u.Update(func(s *UserEntitlementUpsert) {
		s.SetGrantedAt(v)
	})
}

// UpdateGrantedAt sets the "granted_at" field to the value that was provided on create.
func (u *UserEntitlementUpsertBulk) UpdateGrantedAt() *UserEntitlementUpsertBulk {
	return u.Update(func(s *UserEntitlementUpsert) {
		s.UpdateGrantedAt()
	})
}

// Exec executes the query.
func (u *UserEntitlementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserEntitlementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserEntitlementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserEntitlementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
