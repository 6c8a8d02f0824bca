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
	"github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/event"
)

// CheckinCreate is the builder for creating a Checkin entity.
type CheckinCreate struct {
	config
	mutation *CheckinMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *CheckinCreate) SetEventID(v string) *CheckinCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CheckinCreate) SetUserID(v string) *CheckinCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCodeID sets the "code_id" field.
func (_c *CheckinCreate) SetCodeID(v string) *CheckinCreate {
	_c.mutation.SetCodeID(v)
	return _c
}

// SetNillableCodeID sets the "code_id" field if the given value is not nil.
func (_c *CheckinCreate) SetNillableCodeID(v *string) *CheckinCreate {
	if v != nil {
		_c.SetCodeID(*v)
	}
	return _c
}

// SetCheckedInAt sets the "checked_in_at" field.
func (_c *CheckinCreate) SetCheckedInAt(v time.Time) *CheckinCreate {
	_c.mutation.SetCheckedInAt(v)
	return _c
}

// SetNillableCheckedInAt sets the "checked_in_at" field if the given value is not nil.
func (_c *CheckinCreate) SetNillableCheckedInAt(v *time.Time) *CheckinCreate {
	if v != nil {
		_c.SetCheckedInAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckinCreate) SetID(v string) *CheckinCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *CheckinCreate) SetEvent(v *Event) *CheckinCreate {
	return _c.SetEventID(v.ID)
}

// Mutation returns the CheckinMutation object of the builder.
func (_c *CheckinCreate) Mutation() *CheckinMutation {
	return _c.mutation
}

// Save creates the Checkin in the database.
func (_c *CheckinCreate) Save(ctx context.Context) (*Checkin, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckinCreate) SaveX(ctx context.Context) *Checkin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckinCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckinCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckinCreate) defaults() {
	if _, ok := _c.mutation.CheckedInAt(); !ok {
		v := checkin.DefaultCheckedInAt()
		_c.mutation.SetCheckedInAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckinCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Checkin.event_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Checkin.user_id"`)}
	}
	if _, ok := _c.mutation.CheckedInAt(); !ok {
		return &ValidationError{Name: "checked_in_at", err: errors.New(`ent: missing required field "Checkin.checked_in_at"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "Checkin.event"`)}
	}
	return nil
}

func (_c *CheckinCreate) sqlSave(ctx context.Context) (*Checkin, error) {
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
			return nil, fmt.Errorf("unexpected Checkin.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckinCreate) createSpec() (*Checkin, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkin{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkin.Table, sqlgraph.NewFieldSpec(checkin.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(checkin.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CodeID(); ok {
		_spec.SetField(checkin.FieldCodeID, field.TypeString, value)
		_node.CodeID = &value
	}
	if value, ok := _c.mutation.CheckedInAt(); ok {
		_spec.SetField(checkin.FieldCheckedInAt, field.TypeTime, value)
		_node.CheckedInAt = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkin.EventTable,
			Columns: []string{checkin.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkin.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckinUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckinCreate) OnConflict(opts ...sql.ConflictOption) *CheckinUpsertOne {
	_c.conflict = opts
	return &CheckinUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkin.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckinCreate) OnConflictColumns(columns ...string) *CheckinUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckinUpsertOne{
		create: _c,
	}
}

type (
	// CheckinUpsertOne is the builder for "upsert"-ing
	//  one Checkin node.
	CheckinUpsertOne struct {
		create *CheckinCreate
	}

	// CheckinUpsert is the "OnConflict" setter.
	CheckinUpsert struct {
		*sql.UpdateSet
	}
)

// SetCodeID sets the "code_id" field.
func (u *CheckinUpsert) SetCodeID(v string) *CheckinUpsert {
	u.Set(checkin.FieldCodeID, v)
	return u
}

// UpdateCodeID sets the "code_id" field to the value that was provided on create.
func (u *CheckinUpsert) UpdateCodeID() *CheckinUpsert {
	u.SetExcluded(checkin.FieldCodeID)
	return u
}

// ClearCodeID clears the value of the "code_id" field.
func (u *CheckinUpsert) ClearCodeID() *CheckinUpsert {
	u.SetNull(checkin.FieldCodeID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Checkin.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkin.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckinUpsertOne) UpdateNewValues() *CheckinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(checkin.FieldID)
		}
		if _, exists := u.create.mutation.EventID(); exists {
			s.SetIgnore(checkin.FieldEventID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(checkin.FieldUserID)
		}
		if _, exists := u.create.mutation.CheckedInAt(); exists {
			s.SetIgnore(checkin.FieldCheckedInAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkin.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckinUpsertOne) Ignore() *CheckinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckinUpsertOne) DoNothing() *CheckinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckinCreate.OnConflict
// documentation for more info.
func (u *CheckinUpsertOne) Update(set func(*CheckinUpsert)) *CheckinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckinUpsert{UpdateSet: update})
	}))
	return u
}

// SetCodeID sets the "code_id" field.
func (u *CheckinUpsertOne) SetCodeID(v string) *CheckinUpsertOne {
	return u.Update(func(s *CheckinUpsert) {
		s.SetCodeID(v)
	})
}

// UpdateCodeID sets the "code_id" field to the value that was provided on create.
func (u *CheckinUpsertOne) UpdateCodeID() *CheckinUpsertOne {
	return u.Update(func(s *CheckinUpsert) {
		s.UpdateCodeID()
	})
}

// ClearCodeID clears the value of the "code_id" field.
func (u *CheckinUpsertOne) ClearCodeID() *CheckinUpsertOne {
	return u.Update(func(s *CheckinUpsert) {
		s.ClearCodeID()
	})
}

// Exec executes the query.
func (u *CheckinUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckinCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckinUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckinUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CheckinUpsertOne.ID is not supported by MySQL driver. Use CheckinUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckinUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckinCreateBulk is the builder for creating many Checkin entities in bulk.
type CheckinCreateBulk struct {
	config
	err      error
	builders []*CheckinCreate
	conflict []sql.ConflictOption
}

// Save creates the Checkin entities in the database.
func (_c *CheckinCreateBulk) Save(ctx context.Context) ([]*Checkin, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkin, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckinMutation)
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
func (_c *CheckinCreateBulk) SaveX(ctx context.Context) []*Checkin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckinCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckinCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkin.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckinUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckinCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckinUpsertBulk {
	_c.conflict = opts
	return &CheckinUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkin.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckinCreateBulk) OnConflictColumns(columns ...string) *CheckinUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckinUpsertBulk{
		create: _c,
	}
}

// CheckinUpsertBulk is the builder for "upsert"-ing
// a bulk of Checkin nodes.
type CheckinUpsertBulk struct {
	create *CheckinCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Checkin.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkin.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckinUpsertBulk) UpdateNewValues() *CheckinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(checkin.FieldID)
			}
			if _, exists := b.mutation.EventID(); exists {
				s.SetIgnore(checkin.FieldEventID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(checkin.FieldUserID)
			}
			if _, exists := b.mutation.CheckedInAt(); exists {
				s.SetIgnore(checkin.FieldCheckedInAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkin.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckinUpsertBulk) Ignore() *CheckinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckinUpsertBulk) DoNothing() *CheckinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckinCreateBulk.OnConflict
// documentation for more info.
func (u *CheckinUpsertBulk) Update(set func(*CheckinUpsert)) *CheckinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckinUpsert{UpdateSet: update})
	}))
	return u
}

// SetCodeID sets the "code_id" field.
func (u *CheckinUpsertBulk) SetCodeID(v string) *CheckinUpsertBulk {
	return u.Update(func(s *CheckinUpsert) {
		s.SetCodeID(v)
	})
}

// UpdateCodeID sets the "code_id" field to the value that was provided on create.
func (u *CheckinUpsertBulk) UpdateCodeID() *CheckinUpsertBulk {
	return u.Update(func(s *CheckinUpsert) {
		s.UpdateCodeID()
	})
}

// ClearCodeID clears the value of the "code_id" field.
func (u *CheckinUpsertBulk) ClearCodeID() *CheckinUpsertBulk {
	return u.Update(func(s *CheckinUpsert) {
		s.ClearCodeID()
	})
}

// Exec executes the query.
func (u *CheckinUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CheckinCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckinCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckinUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
