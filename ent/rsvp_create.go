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
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/rsvp"
)

// RSVPCreate is the builder for creating a RSVP entity.
type RSVPCreate struct {
	config
	mutation *RSVPMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *RSVPCreate) SetEventID(v string) *RSVPCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RSVPCreate) SetUserID(v string) *RSVPCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RSVPCreate) SetStatus(v rsvp.Status) *RSVPCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RSVPCreate) SetNillableStatus(v *rsvp.Status) *RSVPCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRsvpAt sets the "rsvp_at" field.
func (_c *RSVPCreate) SetRsvpAt(v time.Time) *RSVPCreate {
	_c.mutation.SetRsvpAt(v)
	return _c
}

// SetNillableRsvpAt sets the "rsvp_at" field if the given value is not nil.
func (_c *RSVPCreate) SetNillableRsvpAt(v *time.Time) *RSVPCreate {
	if v != nil {
		_c.SetRsvpAt(*v)
	}
	return _c
}

// SetWaitlistPosition sets the "waitlist_position" field.
func (_c *RSVPCreate) SetWaitlistPosition(v int) *RSVPCreate {
	_c.mutation.SetWaitlistPosition(v)
	return _c
}

// SetNillableWaitlistPosition sets the "waitlist_position" field if the given value is not nil.
func (_c *RSVPCreate) SetNillableWaitlistPosition(v *int) *RSVPCreate {
	if v != nil {
		_c.SetWaitlistPosition(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *RSVPCreate) SetCancelledAt(v time.Time) *RSVPCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *RSVPCreate) SetNillableCancelledAt(v *time.Time) *RSVPCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RSVPCreate) SetID(v string) *RSVPCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *RSVPCreate) SetEvent(v *Event) *RSVPCreate {
	return _c.SetEventID(v.ID)
}

// Mutation returns the RSVPMutation object of the builder.
func (_c *RSVPCreate) Mutation() *RSVPMutation {
	return _c.mutation
}

// Save creates the RSVP in the database.
func (_c *RSVPCreate) Save(ctx context.Context) (*RSVP, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RSVPCreate) SaveX(ctx context.Context) *RSVP {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RSVPCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RSVPCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RSVPCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := rsvp.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RsvpAt(); !ok {
		v := rsvp.DefaultRsvpAt()
		_c.mutation.SetRsvpAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RSVPCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "RSVP.event_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RSVP.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RSVP.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := rsvp.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RSVP.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RsvpAt(); !ok {
		return &ValidationError{Name: "rsvp_at", err: errors.New(`ent: missing required field "RSVP.rsvp_at"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "RSVP.event"`)}
	}
	return nil
}

func (_c *RSVPCreate) sqlSave(ctx context.Context) (*RSVP, error) {
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
			return nil, fmt.Errorf("unexpected RSVP.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RSVPCreate) createSpec() (*RSVP, *sqlgraph.CreateSpec) {
	var (
		_node = &RSVP{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rsvp.Table, sqlgraph.NewFieldSpec(rsvp.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(rsvp.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(rsvp.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RsvpAt(); ok {
		_spec.SetField(rsvp.FieldRsvpAt, field.TypeTime, value)
		_node.RsvpAt = value
	}
	if value, ok := _c.mutation.WaitlistPosition(); ok {
		_spec.SetField(rsvp.FieldWaitlistPosition, field.TypeInt, value)
		_node.WaitlistPosition = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(rsvp.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rsvp.EventTable,
			Columns: []string{rsvp.EventColumn},
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
//	client.RSVP.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RSVPUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *RSVPCreate) OnConflict(opts ...sql.ConflictOption) *RSVPUpsertOne {
	_c.conflict = opts
	return &RSVPUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RSVP.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RSVPCreate) OnConflictColumns(columns ...string) *RSVPUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RSVPUpsertOne{
		create: _c,
	}
}

type (
	// RSVPUpsertOne is the builder for "upsert"-ing
	//  one RSVP node.
	RSVPUpsertOne struct {
		create *RSVPCreate
	}

	// RSVPUpsert is the "OnConflict" setter.
	RSVPUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *RSVPUpsert) SetStatus(v rsvp.Status) *RSVPUpsert {
	u.Set(rsvp.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RSVPUpsert) UpdateStatus() *RSVPUpsert {
	u.SetExcluded(rsvp.FieldStatus)
	return u
}

// SetRsvpAt sets the "rsvp_at" field.
func (u *RSVPUpsert) SetRsvpAt(v time.Time) *RSVPUpsert {
	u.Set(rsvp.FieldRsvpAt, v)
	return u
}

// UpdateRsvpAt sets the "rsvp_at" field to the value that was provided on create.
func (u *RSVPUpsert) UpdateRsvpAt() *RSVPUpsert {
	u.SetExcluded(rsvp.FieldRsvpAt)
	return u
}

// SetWaitlistPosition sets the "waitlist_position" field.
func (u *RSVPUpsert) SetWaitlistPosition(v int) *RSVPUpsert {
	u.Set(rsvp.FieldWaitlistPosition, v)
	return u
}

// UpdateWaitlistPosition sets the "waitlist_position" field to the value that was provided on create.
func (u *RSVPUpsert) UpdateWaitlistPosition() *RSVPUpsert {
	u.SetExcluded(rsvp.FieldWaitlistPosition)
	return u
}

// AddWaitlistPosition adds v to the "waitlist_position" field.
func (u *RSVPUpsert) AddWaitlistPosition(v int) *RSVPUpsert {
	u.Add(rsvp.FieldWaitlistPosition, v)
	return u
}

// ClearWaitlistPosition clears the value of the "waitlist_position" field.
func (u *RSVPUpsert) ClearWaitlistPosition() *RSVPUpsert {
	u.SetNull(rsvp.FieldWaitlistPosition)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *RSVPUpsert) SetCancelledAt(v time.Time) *RSVPUpsert {
	u.Set(rsvp.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *RSVPUpsert) UpdateCancelledAt() *RSVPUpsert {
	u.SetExcluded(rsvp.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *RSVPUpsert) ClearCancelledAt() *RSVPUpsert {
	u.SetNull(rsvp.FieldCancelledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RSVP.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rsvp.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RSVPUpsertOne) UpdateNewValues() *RSVPUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rsvp.FieldID)
		}
		if _, exists := u.create.mutation.EventID(); exists {
			s.SetIgnore(rsvp.FieldEventID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(rsvp.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RSVP.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RSVPUpsertOne) Ignore() *RSVPUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RSVPUpsertOne) DoNothing() *RSVPUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RSVPCreate.OnConflict
// documentation for more info.
func (u *RSVPUpsertOne) Update(set func(*RSVPUpsert)) *RSVPUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RSVPUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RSVPUpsertOne) SetStatus(v rsvp.Status) *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RSVPUpsertOne) UpdateStatus() *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateStatus()
	})
}

// SetRsvpAt sets the "rsvp_at" field.
func (u *RSVPUpsertOne) SetRsvpAt(v time.Time) *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.SetRsvpAt(v)
	})
}

// UpdateRsvpAt sets the "rsvp_at" field to the value that was provided on create.
func (u *RSVPUpsertOne) UpdateRsvpAt() *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateRsvpAt()
	})
}

// SetWaitlistPosition sets the "waitlist_position" field.
func (u *RSVPUpsertOne) SetWaitlistPosition(v int) *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.SetWaitlistPosition(v)
	})
}

// AddWaitlistPosition adds v to the "waitlist_position" field.
func (u *RSVPUpsertOne) AddWaitlistPosition(v int) *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.AddWaitlistPosition(v)
	})
}

// UpdateWaitlistPosition sets the "waitlist_position" field to the value that was provided on create.
func (u *RSVPUpsertOne) UpdateWaitlistPosition() *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateWaitlistPosition()
	})
}

// ClearWaitlistPosition clears the value of the "waitlist_position" field.
func (u *RSVPUpsertOne) ClearWaitlistPosition() *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.ClearWaitlistPosition()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *RSVPUpsertOne) SetCancelledAt(v time.Time) *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *RSVPUpsertOne) UpdateCancelledAt() *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *RSVPUpsertOne) ClearCancelledAt() *RSVPUpsertOne {
	return u.Update(func(s *RSVPUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *RSVPUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RSVPCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RSVPUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RSVPUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RSVPUpsertOne.ID is not supported by MySQL driver. Use RSVPUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RSVPUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RSVPCreateBulk is the builder for creating many RSVP entities in bulk.
type RSVPCreateBulk struct {
	config
	err      error
	builders []*RSVPCreate
	conflict []sql.ConflictOption
}

// Save creates the RSVP entities in the database.
func (_c *RSVPCreateBulk) Save(ctx context.Context) ([]*RSVP, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RSVP, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RSVPMutation)
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
func (_c *RSVPCreateBulk) SaveX(ctx context.Context) []*RSVP {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RSVPCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RSVPCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RSVP.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RSVPUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *RSVPCreateBulk) OnConflict(opts ...sql.ConflictOption) *RSVPUpsertBulk {
	_c.conflict = opts
	return &RSVPUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RSVP.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RSVPCreateBulk) OnConflictColumns(columns ...string) *RSVPUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RSVPUpsertBulk{
		create: _c,
	}
}

// RSVPUpsertBulk is the builder for "upsert"-ing
// a bulk of RSVP nodes.
type RSVPUpsertBulk struct {
	create *RSVPCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RSVP.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rsvp.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RSVPUpsertBulk) UpdateNewValues() *RSVPUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rsvp.FieldID)
			}
			if _, exists := b.mutation.EventID(); exists {
				s.SetIgnore(rsvp.FieldEventID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(rsvp.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RSVP.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RSVPUpsertBulk) Ignore() *RSVPUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RSVPUpsertBulk) DoNothing() *RSVPUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RSVPCreateBulk.OnConflict
// documentation for more info.
func (u *RSVPUpsertBulk) Update(set func(*RSVPUpsert)) *RSVPUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RSVPUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RSVPUpsertBulk) SetStatus(v rsvp.Status) *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RSVPUpsertBulk) UpdateStatus() *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateStatus()
	})
}

// SetRsvpAt sets the "rsvp_at" field.
func (u *RSVPUpsertBulk) SetRsvpAt(v time.Time) *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.SetRsvpAt(v)
	})
}

// UpdateRsvpAt sets the "rsvp_at" field to the value that was provided on create.
func (u *RSVPUpsertBulk) UpdateRsvpAt() *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateRsvpAt()
	})
}

// SetWaitlistPosition sets the "waitlist_position" field.
func (u *RSVPUpsertBulk) SetWaitlistPosition(v int) *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.SetWaitlistPosition(v)
	})
}

// AddWaitlistPosition adds v to the "waitlist_position" field.
func (u *RSVPUpsertBulk) AddWaitlistPosition(v int) *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.AddWaitlistPosition(v)
	})
}

// UpdateWaitlistPosition sets the "waitlist_position" field to the value that was provided on create.
func (u *RSVPUpsertBulk) UpdateWaitlistPosition() *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateWaitlistPosition()
	})
}

// ClearWaitlistPosition clears the value of the "waitlist_position" field.
func (u *RSVPUpsertBulk) ClearWaitlistPosition() *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.ClearWaitlistPosition()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *RSVPUpsertBulk) SetCancelledAt(v time.Time) *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *RSVPUpsertBulk) UpdateCancelledAt() *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *RSVPUpsertBulk) ClearCancelledAt() *RSVPUpsertBulk {
	return u.Update(func(s *RSVPUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *RSVPUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RSVPCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RSVPCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RSVPUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
