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
	"github.com/gatherhub/gatherhub/ent/checkincode"
)

// CheckinCodeCreate is the builder for creating a CheckinCode entity.
type CheckinCodeCreate struct {
	config
	mutation *CheckinCodeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *CheckinCodeCreate) SetEventID(v string) *CheckinCodeCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *CheckinCodeCreate) SetCode(v string) *CheckinCodeCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetMaxUses sets the "max_uses" field.
func (_c *CheckinCodeCreate) SetMaxUses(v int) *CheckinCodeCreate {
	_c.mutation.SetMaxUses(v)
	return _c
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_c *CheckinCodeCreate) SetNillableMaxUses(v *int) *CheckinCodeCreate {
	if v != nil {
		_c.SetMaxUses(*v)
	}
	return _c
}

// SetCurrentUses sets the "current_uses" field.
func (_c *CheckinCodeCreate) SetCurrentUses(v int) *CheckinCodeCreate {
	_c.mutation.SetCurrentUses(v)
	return _c
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_c *CheckinCodeCreate) SetNillableCurrentUses(v *int) *CheckinCodeCreate {
	if v != nil {
		_c.SetCurrentUses(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckinCodeCreate) SetCreatedAt(v time.Time) *CheckinCodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckinCodeCreate) SetNillableCreatedAt(v *time.Time) *CheckinCodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckinCodeCreate) SetID(v string) *CheckinCodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CheckinCodeMutation object of the builder.
func (_c *CheckinCodeCreate) Mutation() *CheckinCodeMutation {
	return _c.mutation
}

// Save creates the CheckinCode in the database.
func (_c *CheckinCodeCreate) Save(ctx context.Context) (*CheckinCode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckinCodeCreate) SaveX(ctx context.Context) *CheckinCode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckinCodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckinCodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckinCodeCreate) defaults() {
	if _, ok := _c.mutation.CurrentUses(); !ok {
		v := checkincode.DefaultCurrentUses
		_c.mutation.SetCurrentUses(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkincode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckinCodeCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "CheckinCode.event_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "CheckinCode.code"`)}
	}
	if _, ok := _c.mutation.CurrentUses(); !ok {
		return &ValidationError{Name: "current_uses", err: errors.New(`ent: missing required field "CheckinCode.current_uses"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CheckinCode.created_at"`)}
	}
	return nil
}

func (_c *CheckinCodeCreate) sqlSave(ctx context.Context) (*CheckinCode, error) {
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
			return nil, fmt.Errorf("unexpected CheckinCode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckinCodeCreate) createSpec() (*CheckinCode, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckinCode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkincode.Table, sqlgraph.NewFieldSpec(checkincode.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(checkincode.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(checkincode.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.MaxUses(); ok {
		_spec.SetField(checkincode.FieldMaxUses, field.TypeInt, value)
		_node.MaxUses = &value
	}
	if value, ok := _c.mutation.CurrentUses(); ok {
		_spec.SetField(checkincode.FieldCurrentUses, field.TypeInt, value)
		_node.CurrentUses = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkincode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CheckinCode.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckinCodeUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckinCodeCreate) OnConflict(opts ...sql.ConflictOption) *CheckinCodeUpsertOne {
	_c.conflict = opts
	return &CheckinCodeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CheckinCode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckinCodeCreate) OnConflictColumns(columns ...string) *CheckinCodeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckinCodeUpsertOne{
		create: _c,
	}
}

type (
	// CheckinCodeUpsertOne is the builder for "upsert"-ing
	//  one CheckinCode node.
	CheckinCodeUpsertOne struct {
		create *CheckinCodeCreate
	}

	// CheckinCodeUpsert is the "OnConflict" setter.
	CheckinCodeUpsert struct {
		*sql.UpdateSet
	}
)

// SetMaxUses sets the "max_uses" field.
func (u *CheckinCodeUpsert) SetMaxUses(v int) *CheckinCodeUpsert {
	u.Set(checkincode.FieldMaxUses, v)
	return u
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *CheckinCodeUpsert) UpdateMaxUses() *CheckinCodeUpsert {
	u.SetExcluded(checkincode.FieldMaxUses)
	return u
}

// AddMaxUses adds v to the "max_uses" field.
func (u *CheckinCodeUpsert) AddMaxUses(v int) *CheckinCodeUpsert {
	u.Add(checkincode.FieldMaxUses, v)
	return u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *CheckinCodeUpsert) ClearMaxUses() *CheckinCodeUpsert {
	u.SetNull(checkincode.FieldMaxUses)
	return u
}

// SetCurrentUses sets the "current_uses" field.
func (u *CheckinCodeUpsert) SetCurrentUses(v int) *CheckinCodeUpsert {
	u.Set(checkincode.FieldCurrentUses, v)
	return u
}

// UpdateCurrentUses sets the "current_uses" field to the value that was provided on create.
func (u *CheckinCodeUpsert) UpdateCurrentUses() *CheckinCodeUpsert {
	u.SetExcluded(checkincode.FieldCurrentUses)
	return u
}

// AddCurrentUses adds v to the "current_uses" field.
func (u *CheckinCodeUpsert) AddCurrentUses(v int) *CheckinCodeUpsert {
	u.Add(checkincode.FieldCurrentUses, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CheckinCode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkincode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckinCodeUpsertOne) UpdateNewValues() *CheckinCodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(checkincode.FieldID)
		}
		if _, exists := u.create.mutation.EventID(); exists {
			s.SetIgnore(checkincode.FieldEventID)
		}
		if _, exists := u.create.mutation.Code(); exists {
			s.SetIgnore(checkincode.FieldCode)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(checkincode.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CheckinCode.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckinCodeUpsertOne) Ignore() *CheckinCodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckinCodeUpsertOne) DoNothing() *CheckinCodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckinCodeCreate.OnConflict
// documentation for more info.
func (u *CheckinCodeUpsertOne) Update(set func(*CheckinCodeUpsert)) *CheckinCodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckinCodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetMaxUses sets the "max_uses" field.
func (u *CheckinCodeUpsertOne) SetMaxUses(v int) *CheckinCodeUpsertOne {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.SetMaxUses(v)
	})
}

// AddMaxUses adds v to the "max_uses" field.
func (u *CheckinCodeUpsertOne) AddMaxUses(v int) *CheckinCodeUpsertOne {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.AddMaxUses(v)
	})
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *CheckinCodeUpsertOne) UpdateMaxUses() *CheckinCodeUpsertOne {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.UpdateMaxUses()
	})
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *CheckinCodeUpsertOne) ClearMaxUses() *CheckinCodeUpsertOne {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.ClearMaxUses()
	})
}

// SetCurrentUses sets the "current_uses" field.
func (u *CheckinCodeUpsertOne) SetCurrentUses(v int) *CheckinCodeUpsertOne {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.SetCurrentUses(v)
	})
}

// AddCurrentUses adds v to the "current_uses" field.
func (u *CheckinCodeUpsertOne) AddCurrentUses(v int) *CheckinCodeUpsertOne {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.AddCurrentUses(v)
	})
}

// UpdateCurrentUses sets the "current_uses" field to the value that was provided on create.
func (u *CheckinCodeUpsertOne) UpdateCurrentUses() *CheckinCodeUpsertOne {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.UpdateCurrentUses()
	})
}

// Exec executes the query.
func (u *CheckinCodeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckinCodeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckinCodeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckinCodeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CheckinCodeUpsertOne.ID is not supported by MySQL driver. Use CheckinCodeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckinCodeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckinCodeCreateBulk is the builder for creating many CheckinCode entities in bulk.
type CheckinCodeCreateBulk struct {
	config
	err      error
	builders []*CheckinCodeCreate
	conflict []sql.ConflictOption
}

// Save creates the CheckinCode entities in the database.
func (_c *CheckinCodeCreateBulk) Save(ctx context.Context) ([]*CheckinCode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckinCode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckinCodeMutation)
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
func (_c *CheckinCodeCreateBulk) SaveX(ctx context.Context) []*CheckinCode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckinCodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckinCodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CheckinCode.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckinCodeUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckinCodeCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckinCodeUpsertBulk {
	_c.conflict = opts
	return &CheckinCodeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CheckinCode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckinCodeCreateBulk) OnConflictColumns(columns ...string) *CheckinCodeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckinCodeUpsertBulk{
		create: _c,
	}
}

// CheckinCodeUpsertBulk is the builder for "upsert"-ing
// a bulk of CheckinCode nodes.
type CheckinCodeUpsertBulk struct {
	create *CheckinCodeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CheckinCode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkincode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckinCodeUpsertBulk) UpdateNewValues() *CheckinCodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(checkincode.FieldID)
			}
			if _, exists := b.mutation.EventID(); exists {
				s.SetIgnore(checkincode.FieldEventID)
			}
			if _, exists := b.mutation.Code(); exists {
				s.SetIgnore(checkincode.FieldCode)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(checkincode.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CheckinCode.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckinCodeUpsertBulk) Ignore() *CheckinCodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckinCodeUpsertBulk) DoNothing() *CheckinCodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckinCodeCreateBulk.OnConflict
// documentation for more info.
func (u *CheckinCodeUpsertBulk) Update(set func(*CheckinCodeUpsert)) *CheckinCodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckinCodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetMaxUses sets the "max_uses" field.
func (u *CheckinCodeUpsertBulk) SetMaxUses(v int) *CheckinCodeUpsertBulk {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.SetMaxUses(v)
	})
}

// AddMaxUses adds v to the "max_uses" field.
func (u *CheckinCodeUpsertBulk) AddMaxUses(v int) *CheckinCodeUpsertBulk {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.AddMaxUses(v)
	})
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *CheckinCodeUpsertBulk) UpdateMaxUses() *CheckinCodeUpsertBulk {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.UpdateMaxUses()
	})
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *CheckinCodeUpsertBulk) ClearMaxUses() *CheckinCodeUpsertBulk {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.ClearMaxUses()
	})
}

// SetCurrentUses sets the "current_uses" field.
func (u *CheckinCodeUpsertBulk) SetCurrentUses(v int) *CheckinCodeUpsertBulk {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.SetCurrentUses(v)
	})
}

// AddCurrentUses adds v to the "current_uses" field.
func (u *CheckinCodeUpsertBulk) AddCurrentUses(v int) *CheckinCodeUpsertBulk {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.AddCurrentUses(v)
	})
}

// UpdateCurrentUses sets the "current_uses" field to the value that was provided on create.
func (u *CheckinCodeUpsertBulk) UpdateCurrentUses() *CheckinCodeUpsertBulk {
	return u.Update(func(s *CheckinCodeUpsert) {
		s.UpdateCurrentUses()
	})
}

// Exec executes the query.
func (u *CheckinCodeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CheckinCodeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckinCodeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckinCodeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
