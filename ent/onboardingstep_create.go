// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/onboardingstep"
)

// OnboardingStepCreate is the builder for creating a OnboardingStep entity.
type OnboardingStepCreate struct {
	config
	mutation *OnboardingStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *OnboardingStepCreate) SetKey(v string) *OnboardingStepCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetName sets the "name" field.
func (_c *OnboardingStepCreate) SetName(v string) *OnboardingStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *OnboardingStepCreate) SetDescription(v string) *OnboardingStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *OnboardingStepCreate) SetNillableDescription(v *string) *OnboardingStepCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetEventKey sets the "event_key" field.
func (_c *OnboardingStepCreate) SetEventKey(v string) *OnboardingStepCreate {
	_c.mutation.SetEventKey(v)
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *OnboardingStepCreate) SetSortOrder(v int) *OnboardingStepCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *OnboardingStepCreate) SetNillableSortOrder(v *int) *OnboardingStepCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *OnboardingStepCreate) SetEnabled(v bool) *OnboardingStepCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *OnboardingStepCreate) SetNillableEnabled(v *bool) *OnboardingStepCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OnboardingStepCreate) SetID(v string) *OnboardingStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OnboardingStepMutation object of the builder.
func (_c *OnboardingStepCreate) Mutation() *OnboardingStepMutation {
	return _c.mutation
}

// Save creates the OnboardingStep in the database.
func (_c *OnboardingStepCreate) Save(ctx context.Context) (*OnboardingStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OnboardingStepCreate) SaveX(ctx context.Context) *OnboardingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OnboardingStepCreate) defaults() {
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := onboardingstep.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := onboardingstep.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OnboardingStepCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "OnboardingStep.key"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "OnboardingStep.name"`)}
	}
	if _, ok := _c.mutation.EventKey(); !ok {
		return &ValidationError{Name: "event_key", err: errors.New(`ent: missing required field "OnboardingStep.event_key"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "OnboardingStep.sort_order"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "OnboardingStep.enabled"`)}
	}
	return nil
}

func (_c *OnboardingStepCreate) sqlSave(ctx context.Context) (*OnboardingStep, error) {
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
			return nil, fmt.Errorf("unexpected OnboardingStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OnboardingStepCreate) createSpec() (*OnboardingStep, *sqlgraph.CreateSpec) {
	var (
		_node = &OnboardingStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(onboardingstep.Table, sqlgraph.NewFieldSpec(onboardingstep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(onboardingstep.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(onboardingstep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(onboardingstep.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.EventKey(); ok {
		_spec.SetField(onboardingstep.FieldEventKey, field.TypeString, value)
		_node.EventKey = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(onboardingstep.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(onboardingstep.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingStep.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingStepUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingStepCreate) OnConflict(opts ...sql.ConflictOption) *OnboardingStepUpsertOne {
	_c.conflict = opts
	return &OnboardingStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingStepCreate) OnConflictColumns(columns ...string) *OnboardingStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingStepUpsertOne{
		create: _c,
	}
}

type (
	// OnboardingStepUpsertOne is the builder for "upsert"-ing
	//  one OnboardingStep node.
	OnboardingStepUpsertOne struct {
		create *OnboardingStepCreate
	}

	// OnboardingStepUpsert is the "OnConflict" setter.
	OnboardingStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *OnboardingStepUpsert) SetKey(v string) *OnboardingStepUpsert {
	u.Set(onboardingstep.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *OnboardingStepUpsert) UpdateKey() *OnboardingStepUpsert {
	u.SetExcluded(onboardingstep.FieldKey)
	return u
}

// SetName sets the "name" field.
func (u *OnboardingStepUpsert) SetName(v string) *OnboardingStepUpsert {
	u.Set(onboardingstep.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *OnboardingStepUpsert) UpdateName() *OnboardingStepUpsert {
	u.SetExcluded(onboardingstep.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *OnboardingStepUpsert) SetDescription(v string) *OnboardingStepUpsert {
	u.Set(onboardingstep.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *OnboardingStepUpsert) UpdateDescription() *OnboardingStepUpsert {
	u.SetExcluded(onboardingstep.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *OnboardingStepUpsert) ClearDescription() *OnboardingStepUpsert {
	u.SetNull(onboardingstep.FieldDescription)
	return u
}

// SetEventKey sets the "event_key" field.
func (u *OnboardingStepUpsert) SetEventKey(v string) *OnboardingStepUpsert {
	u.Set(onboardingstep.FieldEventKey, v)
	return u
}

// UpdateEventKey sets the "event_key" field to the value that was provided on create.
func (u *OnboardingStepUpsert) UpdateEventKey() *OnboardingStepUpsert {
	u.SetExcluded(onboardingstep.FieldEventKey)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *OnboardingStepUpsert) SetSortOrder(v int) *OnboardingStepUpsert {
	u.Set(onboardingstep.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *OnboardingStepUpsert) UpdateSortOrder() *OnboardingStepUpsert {
	u.SetExcluded(onboardingstep.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *OnboardingStepUpsert) AddSortOrder(v int) *OnboardingStepUpsert {
	u.Add(onboardingstep.FieldSortOrder, v)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *OnboardingStepUpsert) SetEnabled(v bool) *OnboardingStepUpsert {
	u.Set(onboardingstep.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *OnboardingStepUpsert) UpdateEnabled() *OnboardingStepUpsert {
	u.SetExcluded(onboardingstep.FieldEnabled)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OnboardingStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardingstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingStepUpsertOne) UpdateNewValues() *OnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(onboardingstep.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OnboardingStepUpsertOne) Ignore() *OnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingStepUpsertOne) DoNothing() *OnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingStepCreate.OnConflict
// documentation for more info.
func (u *OnboardingStepUpsertOne) Update(set func(*OnboardingStepUpsert)) *OnboardingStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *OnboardingStepUpsertOne) SetKey(v string) *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *OnboardingStepUpsertOne) UpdateKey() *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateKey()
	})
}

// SetName sets the "name" field.
func (u *OnboardingStepUpsertOne) SetName(v string) *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *OnboardingStepUpsertOne) UpdateName() *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *OnboardingStepUpsertOne) SetDescription(v string) *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *OnboardingStepUpsertOne) UpdateDescription() *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *OnboardingStepUpsertOne) ClearDescription() *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.ClearDescription()
	})
}

// SetEventKey sets the "event_key" field.
func (u *OnboardingStepUpsertOne) SetEventKey(v string) *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetEventKey(v)
	})
}

// UpdateEventKey sets the "event_key" field to the value that was provided on create.
func (u *OnboardingStepUpsertOne) UpdateEventKey() *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateEventKey()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *OnboardingStepUpsertOne) SetSortOrder(v int) *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *OnboardingStepUpsertOne) AddSortOrder(v int) *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *OnboardingStepUpsertOne) UpdateSortOrder() *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateSortOrder()
	})
}

// SetEnabled sets the "enabled" field.
func (u *OnboardingStepUpsertOne) SetEnabled(v bool) *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *OnboardingStepUpsertOne) UpdateEnabled() *OnboardingStepUpsertOne {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *OnboardingStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OnboardingStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OnboardingStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OnboardingStepUpsertOne.ID is not supported by MySQL driver. Use OnboardingStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OnboardingStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OnboardingStepCreateBulk is the builder for creating many OnboardingStep entities in bulk.
type OnboardingStepCreateBulk struct {
	config
	err      error
	builders []*OnboardingStepCreate
	conflict []sql.ConflictOption
}

// Save creates the OnboardingStep entities in the database.
func (_c *OnboardingStepCreateBulk) Save(ctx context.Context) ([]*OnboardingStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OnboardingStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OnboardingStepMutation)
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
func (_c *OnboardingStepCreateBulk) SaveX(ctx context.Context) []*OnboardingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingStepUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *OnboardingStepUpsertBulk {
	_c.conflict = opts
	return &OnboardingStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingStepCreateBulk) OnConflictColumns(columns ...string) *OnboardingStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingStepUpsertBulk{
		create: _c,
	}
}

// OnboardingStepUpsertBulk is the builder for "upsert"-ing
// a bulk of OnboardingStep nodes.
type OnboardingStepUpsertBulk struct {
	create *OnboardingStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OnboardingStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardingstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingStepUpsertBulk) UpdateNewValues() *OnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(onboardingstep.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OnboardingStepUpsertBulk) Ignore() *OnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingStepUpsertBulk) DoNothing() *OnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingStepCreateBulk.OnConflict
// documentation for more info.
func (u *OnboardingStepUpsertBulk) Update(set func(*OnboardingStepUpsert)) *OnboardingStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *OnboardingStepUpsertBulk) SetKey(v string) *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *OnboardingStepUpsertBulk) UpdateKey() *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateKey()
	})
}

// SetName sets the "name" field.
func (u *OnboardingStepUpsertBulk) SetName(v string) *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *OnboardingStepUpsertBulk) UpdateName() *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *OnboardingStepUpsertBulk) SetDescription(v string) *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *OnboardingStepUpsertBulk) UpdateDescription() *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *OnboardingStepUpsertBulk) ClearDescription() *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.ClearDescription()
	})
}

// SetEventKey sets the "event_key" field.
func (u *OnboardingStepUpsertBulk) SetEventKey(v string) *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetEventKey(v)
	})
}

// UpdateEventKey sets the "event_key" field to the value that was provided on create.
func (u *OnboardingStepUpsertBulk) UpdateEventKey() *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateEventKey()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *OnboardingStepUpsertBulk) SetSortOrder(v int) *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *OnboardingStepUpsertBulk) AddSortOrder(v int) *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *OnboardingStepUpsertBulk) UpdateSortOrder() *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateSortOrder()
	})
}

// SetEnabled sets the "enabled" field.
func (u *OnboardingStepUpsertBulk) SetEnabled(v bool) *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *OnboardingStepUpsertBulk) UpdateEnabled() *OnboardingStepUpsertBulk {
	return u.Update(func(s *OnboardingStepUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *OnboardingStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OnboardingStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OnboardingStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
