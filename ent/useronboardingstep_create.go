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
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
)

// UserOnboardingStepCreate is the builder for creating a UserOnboardingStep entity.
type UserOnboardingStepCreate struct {
	config
	mutation *UserOnboardingStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserOnboardingStepCreate) SetUserID(v string) *UserOnboardingStepCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStepKey sets the "step_key" field.
func (_c *UserOnboardingStepCreate) SetStepKey(v string) *UserOnboardingStepCreate {
	_c.mutation.SetStepKey(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *UserOnboardingStepCreate) SetCompletedAt(v time.Time) *UserOnboardingStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *UserOnboardingStepCreate) SetNillableCompletedAt(v *time.Time) *UserOnboardingStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserOnboardingStepCreate) SetID(v string) *UserOnboardingStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserOnboardingStepMutation object of the builder.
func (_c *UserOnboardingStepCreate) Mutation() *UserOnboardingStepMutation {
	return _c.mutation
}

// Save creates the UserOnboardingStep in the database.
func (_c *UserOnboardingStepCreate) Save(ctx context.Context) (*UserOnboardingStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserOnboardingStepCreate) SaveX(ctx context.Context) *UserOnboardingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserOnboardingStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserOnboardingStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserOnboardingStepCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := useronboardingstep.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserOnboardingStepCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserOnboardingStep.user_id"`)}
	}
	if _, ok := _c.mutation.StepKey(); !ok {
		return &ValidationError{Name: "step_key", err: errors.New(`ent: missing required field "UserOnboardingStep.step_key"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "UserOnboardingStep.completed_at"`)}
	}
	return nil
}

func (_c *UserOnboardingStepCreate) sqlSave(ctx context.Context) (*UserOnboardingStep, error) {
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
			return nil, fmt.Errorf("unexpected UserOnboardingStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserOnboardingStepCreate) createSpec() (*UserOnboardingStep, *sqlgraph.CreateSpec) {
	var (
		_node = &UserOnboardingStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(useronboardingstep.Table, sqlgraph.NewFieldSpec(useronboardingstep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(useronboardingstep.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StepKey(); ok {
		_spec.SetField(useronboardingstep.FieldStepKey, field.TypeString, value)
		_node.StepKey = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(useronboardingstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserOnboardingStep.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserOnboardingStepUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserOnboardingStepCreate) OnConflict(opts ...sql.ConflictOption) *UserOnboardingStepUpsertOne {
	_c.conflict = opts
	return &UserOnboardingStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserOnboardingStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserOnboardingStepCreate) OnConflictColumns(columns ...string) *UserOnboardingStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserOnboardingStepUpsertOne{
		create: _c,
	}
}

type (
	// UserOnboardingStepUpsertOne is the builder for "upsert"-ing
	//  one UserOnboardingStep node.
	UserOnboardingStepUpsertOne struct {
		create *UserOnboardingStepCreate
	}

	// UserOnboardingStepUpsert is the "OnConflict" setter.
	UserOnboardingStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompletedAt sets the "completed_at" field.
func (u *UserOnboardingStepUpsert) SetCompletedAt(v time.Time) *UserOnboardingStepUpsert {
	u.Set(useronboardingstep.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *UserOnboardingStepUpsert) UpdateCompletedAt() *UserOnboardingStepUpsert {
	u.SetExcluded(useronboardingstep.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserOnboardingStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(useronboardingstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserOnboardingStepUpsertOne) UpdateNewValues() *UserOnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(useronboardingstep.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(useronboardingstep.FieldUserID)
		}
		if _, exists := u.create.mutation.StepKey(); exists {
			s.SetIgnore(useronboardingstep.FieldStepKey)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserOnboardingStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserOnboardingStepUpsertOne) Ignore() *UserOnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserOnboardingStepUpsertOne) DoNothing() *UserOnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserOnboardingStepCreate.OnConflict
// documentation for more info.
func (u *UserOnboardingStepUpsertOne) Update(set func(*UserOnboardingStepUpsert)) *UserOnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserOnboardingStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *UserOnboardingStepUpsertOne) SetCompletedAt(v time.Time) *UserOnboardingStepUpsertOne {
	return u.Update(func(s *UserOnboardingStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *UserOnboardingStepUpsertOne) UpdateCompletedAt() *UserOnboardingStepUpsertOne {
	return u.Update(func(s *UserOnboardingStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// Exec executes the query.
func (u *UserOnboardingStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserOnboardingStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserOnboardingStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserOnboardingStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserOnboardingStepUpsertOne.ID is not supported by MySQL driver. Use UserOnboardingStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserOnboardingStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserOnboardingStepCreateBulk is the builder for creating many UserOnboardingStep entities in bulk.
type UserOnboardingStepCreateBulk struct {
	config
	err      error
	builders []*UserOnboardingStepCreate
	conflict []sql.ConflictOption
}

// Save creates the UserOnboardingStep entities in the database.
func (_c *UserOnboardingStepCreateBulk) Save(ctx context.Context) ([]*UserOnboardingStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserOnboardingStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserOnboardingStepMutation)
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
func (_c *UserOnboardingStepCreateBulk) SaveX(ctx context.Context) []*UserOnboardingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserOnboardingStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserOnboardingStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserOnboardingStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserOnboardingStepUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserOnboardingStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserOnboardingStepUpsertBulk {
	_c.conflict = opts
	return &UserOnboardingStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserOnboardingStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserOnboardingStepCreateBulk) OnConflictColumns(columns ...string) *UserOnboardingStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserOnboardingStepUpsertBulk{
		create: _c,
	}
}

// UserOnboardingStepUpsertBulk is the builder for "upsert"-ing
// a bulk of UserOnboardingStep nodes.
type UserOnboardingStepUpsertBulk struct {
	create *UserOnboardingStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserOnboardingStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(useronboardingstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserOnboardingStepUpsertBulk) UpdateNewValues() *UserOnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(useronboardingstep.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(useronboardingstep.FieldUserID)
			}
			if _, exists := b.mutation.StepKey(); exists {
				s.SetIgnore(useronboardingstep.FieldStepKey)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserOnboardingStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserOnboardingStepUpsertBulk) Ignore() *UserOnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserOnboardingStepUpsertBulk) DoNothing() *UserOnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserOnboardingStepCreateBulk.OnConflict
// documentation for more info.
func (u *UserOnboardingStepUpsertBulk) Update(set func(*UserOnboardingStepUpsert)) *UserOnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserOnboardingStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *UserOnboardingStepUpsertBulk) SetCompletedAt(v time.Time) *UserOnboardingStepUpsertBulk {
	return u.Update(func(s *UserOnboardingStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *UserOnboardingStepUpsertBulk) UpdateCompletedAt() *UserOnboardingStepUpsertBulk {
	return u.Update(func(s *UserOnboardingStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// Exec executes the query.
func (u *UserOnboardingStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserOnboardingStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserOnboardingStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserOnboardingStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
