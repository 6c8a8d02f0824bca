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
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
)

// AchievementProgressCreate is the builder for creating a AchievementProgress entity.
type AchievementProgressCreate struct {
	config
	mutation *AchievementProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *AchievementProgressCreate) SetUserID(v string) *AchievementProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAchievementKey sets the "achievement_key" field.
func (_c *AchievementProgressCreate) SetAchievementKey(v string) *AchievementProgressCreate {
	_c.mutation.SetAchievementKey(v)
	return _c
}

// SetCurrentValue sets the "current_value" field.
func (_c *AchievementProgressCreate) SetCurrentValue(v int) *AchievementProgressCreate {
	_c.mutation.SetCurrentValue(v)
	return _c
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_c *AchievementProgressCreate) SetNillableCurrentValue(v *int) *AchievementProgressCreate {
	if v != nil {
		_c.SetCurrentValue(*v)
	}
	return _c
}

// SetTargetValue sets the "target_value" field.
func (_c *AchievementProgressCreate) SetTargetValue(v int) *AchievementProgressCreate {
	_c.mutation.SetTargetValue(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AchievementProgressCreate) SetCompletedAt(v time.Time) *AchievementProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AchievementProgressCreate) SetNillableCompletedAt(v *time.Time) *AchievementProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AchievementProgressCreate) SetUpdatedAt(v time.Time) *AchievementProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AchievementProgressCreate) SetNillableUpdatedAt(v *time.Time) *AchievementProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AchievementProgressCreate) SetID(v string) *AchievementProgressCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AchievementProgressMutation object of the builder.
func (_c *AchievementProgressCreate) Mutation() *AchievementProgressMutation {
	return _c.mutation
}

// Save creates the AchievementProgress in the database.
func (_c *AchievementProgressCreate) Save(ctx context.Context) (*AchievementProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementProgressCreate) SaveX(ctx context.Context) *AchievementProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementProgressCreate) defaults() {
	if _, ok := _c.mutation.CurrentValue(); !ok {
		v := achievementprogress.DefaultCurrentValue
		_c.mutation.SetCurrentValue(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := achievementprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AchievementProgress.user_id"`)}
	}
	if _, ok := _c.mutation.AchievementKey(); !ok {
		return &ValidationError{Name: "achievement_key", err: errors.New(`ent: missing required field "AchievementProgress.achievement_key"`)}
	}
	if _, ok := _c.mutation.CurrentValue(); !ok {
		return &ValidationError{Name: "current_value", err: errors.New(`ent: missing required field "AchievementProgress.current_value"`)}
	}
	if _, ok := _c.mutation.TargetValue(); !ok {
		return &ValidationError{Name: "target_value", err: errors.New(`ent: missing required field "AchievementProgress.target_value"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AchievementProgress.updated_at"`)}
	}
	return nil
}

func (_c *AchievementProgressCreate) sqlSave(ctx context.Context) (*AchievementProgress, error) {
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
			return nil, fmt.Errorf("unexpected AchievementProgress.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AchievementProgressCreate) createSpec() (*AchievementProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievementprogress.Table, sqlgraph.NewFieldSpec(achievementprogress.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(achievementprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AchievementKey(); ok {
		_spec.SetField(achievementprogress.FieldAchievementKey, field.TypeString, value)
		_node.AchievementKey = value
	}
	if value, ok := _c.mutation.CurrentValue(); ok {
		_spec.SetField(achievementprogress.FieldCurrentValue, field.TypeInt, value)
		_node.CurrentValue = value
	}
	if value, ok := _c.mutation.TargetValue(); ok {
		_spec.SetField(achievementprogress.FieldTargetValue, field.TypeInt, value)
		_node.TargetValue = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(achievementprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(achievementprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AchievementProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementProgressCreate) OnConflict(opts ...sql.ConflictOption) *AchievementProgressUpsertOne {
	_c.conflict = opts
	return &AchievementProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AchievementProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementProgressCreate) OnConflictColumns(columns ...string) *AchievementProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementProgressUpsertOne{
		create: _c,
	}
}

type (
	// AchievementProgressUpsertOne is the builder for "upsert"-ing
	//  one AchievementProgress node.
	AchievementProgressUpsertOne struct {
		create *AchievementProgressCreate
	}

	// AchievementProgressUpsert is the "OnConflict" setter.
	AchievementProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrentValue sets the "current_value" field.
func (u *AchievementProgressUpsert) SetCurrentValue(v int) *AchievementProgressUpsert {
	u.Set(achievementprogress.FieldCurrentValue, v)
	return u
}

// UpdateCurrentValue sets the "current_value" field to the value that was provided on create.
func (u *AchievementProgressUpsert) UpdateCurrentValue() *AchievementProgressUpsert {
	u.SetExcluded(achievementprogress.FieldCurrentValue)
	return u
}

// AddCurrentValue adds v to the "current_value" field.
func (u *AchievementProgressUpsert) AddCurrentValue(v int) *AchievementProgressUpsert {
	u.Add(achievementprogress.FieldCurrentValue, v)
	return u
}

// SetTargetValue sets the "target_value" field.
func (u *AchievementProgressUpsert) SetTargetValue(v int) *AchievementProgressUpsert {
	u.Set(achievementprogress.FieldTargetValue, v)
	return u
}

// UpdateTargetValue sets the "target_value" field to the value that was provided on create.
func (u *AchievementProgressUpsert) UpdateTargetValue() *AchievementProgressUpsert {
	u.SetExcluded(achievementprogress.FieldTargetValue)
	return u
}

// AddTargetValue adds v to the "target_value" field.
func (u *AchievementProgressUpsert) AddTargetValue(v int) *AchievementProgressUpsert {
	u.Add(achievementprogress.FieldTargetValue, v)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AchievementProgressUpsert) SetCompletedAt(v time.Time) *AchievementProgressUpsert {
	u.Set(achievementprogress.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AchievementProgressUpsert) UpdateCompletedAt() *AchievementProgressUpsert {
	u.SetExcluded(achievementprogress.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AchievementProgressUpsert) ClearCompletedAt() *AchievementProgressUpsert {
	u.SetNull(achievementprogress.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AchievementProgressUpsert) SetUpdatedAt(v time.Time) *AchievementProgressUpsert {
	u.Set(achievementprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AchievementProgressUpsert) UpdateUpdatedAt() *AchievementProgressUpsert {
	u.SetExcluded(achievementprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AchievementProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(achievementprogress.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AchievementProgressUpsertOne) UpdateNewValues() *AchievementProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(achievementprogress.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(achievementprogress.FieldUserID)
		}
		if _, exists := u.create.mutation.AchievementKey(); exists {
			s.SetIgnore(achievementprogress.FieldAchievementKey)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AchievementProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AchievementProgressUpsertOne) Ignore() *AchievementProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementProgressUpsertOne) DoNothing() *AchievementProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementProgressCreate.OnConflict
// documentation for more info.
func (u *AchievementProgressUpsertOne) Update(set func(*AchievementProgressUpsert)) *AchievementProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentValue sets the "current_value" field.
func (u *AchievementProgressUpsertOne) SetCurrentValue(v int) *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetCurrentValue(v)
	})
}

// AddCurrentValue adds v to the "current_value" field.
func (u *AchievementProgressUpsertOne) AddCurrentValue(v int) *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.AddCurrentValue(v)
	})
}

// UpdateCurrentValue sets the "current_value" field to the value that was provided on create.
func (u *AchievementProgressUpsertOne) UpdateCurrentValue() *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateCurrentValue()
	})
}

// SetTargetValue sets the "target_value" field.
func (u *AchievementProgressUpsertOne) SetTargetValue(v int) *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetTargetValue(v)
	})
}

// AddTargetValue adds v to the "target_value" field.
func (u *AchievementProgressUpsertOne) AddTargetValue(v int) *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.AddTargetValue(v)
	})
}

// UpdateTargetValue sets the "target_value" field to the value that was provided on create.
func (u *AchievementProgressUpsertOne) UpdateTargetValue() *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateTargetValue()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AchievementProgressUpsertOne) SetCompletedAt(v time.Time) *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AchievementProgressUpsertOne) UpdateCompletedAt() *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AchievementProgressUpsertOne) ClearCompletedAt() *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AchievementProgressUpsertOne) SetUpdatedAt(v time.Time) *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AchievementProgressUpsertOne) UpdateUpdatedAt() *AchievementProgressUpsertOne {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AchievementProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AchievementProgressUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AchievementProgressUpsertOne.ID is not supported by MySQL driver. Use AchievementProgressUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AchievementProgressUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AchievementProgressCreateBulk is the builder for creating many AchievementProgress entities in bulk.
type AchievementProgressCreateBulk struct {
	config
	err      error
	builders []*AchievementProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the AchievementProgress entities in the database.
func (_c *AchievementProgressCreateBulk) Save(ctx context.Context) ([]*AchievementProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AchievementProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementProgressMutation)
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
func (_c *AchievementProgressCreateBulk) SaveX(ctx context.Context) []*AchievementProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AchievementProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *AchievementProgressUpsertBulk {
	_c.conflict = opts
	return &AchievementProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AchievementProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementProgressCreateBulk) OnConflictColumns(columns ...string) *AchievementProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementProgressUpsertBulk{
		create: _c,
	}
}

// AchievementProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of AchievementProgress nodes.
type AchievementProgressUpsertBulk struct {
	create *AchievementProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AchievementProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(achievementprogress.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AchievementProgressUpsertBulk) UpdateNewValues() *AchievementProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(achievementprogress.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(achievementprogress.FieldUserID)
			}
			if _, exists := b.mutation.AchievementKey(); exists {
				s.SetIgnore(achievementprogress.FieldAchievementKey)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AchievementProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AchievementProgressUpsertBulk) Ignore() *AchievementProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementProgressUpsertBulk) DoNothing() *AchievementProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementProgressCreateBulk.OnConflict
// documentation for more info.
func (u *AchievementProgressUpsertBulk) Update(set func(*AchievementProgressUpsert)) *AchievementProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentValue sets the "current_value" field.
func (u *AchievementProgressUpsertBulk) SetCurrentValue(v int) *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetCurrentValue(v)
	})
}

// AddCurrentValue adds v to the "current_value" field.
func (u *AchievementProgressUpsertBulk) AddCurrentValue(v int) *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.AddCurrentValue(v)
	})
}

// UpdateCurrentValue sets the "current_value" field to the value that was provided on create.
func (u *AchievementProgressUpsertBulk) UpdateCurrentValue() *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateCurrentValue()
	})
}

// SetTargetValue sets the "target_value" field.
func (u *AchievementProgressUpsertBulk) SetTargetValue(v int) *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetTargetValue(v)
	})
}

// AddTargetValue adds v to the "target_value" field.
func (u *AchievementProgressUpsertBulk) AddTargetValue(v int) *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.AddTargetValue(v)
	})
}

// UpdateTargetValue sets the "target_value" field to the value that was provided on create.
func (u *AchievementProgressUpsertBulk) UpdateTargetValue() *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateTargetValue()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AchievementProgressUpsertBulk) SetCompletedAt(v time.Time) *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AchievementProgressUpsertBulk) UpdateCompletedAt() *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AchievementProgressUpsertBulk) ClearCompletedAt() *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AchievementProgressUpsertBulk) SetUpdatedAt(v time.Time) *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AchievementProgressUpsertBulk) UpdateUpdatedAt() *AchievementProgressUpsertBulk {
	return u.Update(func(s *AchievementProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AchievementProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AchievementProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
