// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/queuedevent"
)

// QueuedEventCreate is the builder for creating a QueuedEvent entity.
type QueuedEventCreate struct {
	config
	mutation *QueuedEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventType sets the "event_type" field.
func (_c *QueuedEventCreate) SetEventType(v string) *QueuedEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueuedEventCreate) SetPayload(v map[string]interface{}) *QueuedEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *QueuedEventCreate) SetMetadata(v map[string]interface{}) *QueuedEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEventTimestamp sets the "event_timestamp" field.
func (_c *QueuedEventCreate) SetEventTimestamp(v time.Time) *QueuedEventCreate {
	_c.mutation.SetEventTimestamp(v)
	return _c
}

// SetNillableEventTimestamp sets the "event_timestamp" field if the given value is not nil.
func (_c *QueuedEventCreate) SetNillableEventTimestamp(v *time.Time) *QueuedEventCreate {
	if v != nil {
		_c.SetEventTimestamp(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueuedEventCreate) SetStatus(v queuedevent.Status) *QueuedEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueuedEventCreate) SetNillableStatus(v *queuedevent.Status) *QueuedEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *QueuedEventCreate) SetAttempts(v int) *QueuedEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *QueuedEventCreate) SetNillableAttempts(v *int) *QueuedEventCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *QueuedEventCreate) SetClaimedBy(v string) *QueuedEventCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *QueuedEventCreate) SetNillableClaimedBy(v *string) *QueuedEventCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueuedEventCreate) SetCreatedAt(v time.Time) *QueuedEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueuedEventCreate) SetNillableCreatedAt(v *time.Time) *QueuedEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QueuedEventMutation object of the builder.
func (_c *QueuedEventCreate) Mutation() *QueuedEventMutation {
	return _c.mutation
}

// Save creates the QueuedEvent in the database.
func (_c *QueuedEventCreate) Save(ctx context.Context) (*QueuedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueuedEventCreate) SaveX(ctx context.Context) *QueuedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueuedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueuedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueuedEventCreate) defaults() {
	if _, ok := _c.mutation.EventTimestamp(); !ok {
		v := queuedevent.DefaultEventTimestamp()
		_c.mutation.SetEventTimestamp(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := queuedevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := queuedevent.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuedevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueuedEventCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "QueuedEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "QueuedEvent.payload"`)}
	}
	if _, ok := _c.mutation.EventTimestamp(); !ok {
		return &ValidationError{Name: "event_timestamp", err: errors.New(`ent: missing required field "QueuedEvent.event_timestamp"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueuedEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuedevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueuedEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "QueuedEvent.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueuedEvent.created_at"`)}
	}
	return nil
}

func (_c *QueuedEventCreate) sqlSave(ctx context.Context) (*QueuedEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueuedEventCreate) createSpec() (*QueuedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QueuedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuedevent.Table, sqlgraph.NewFieldSpec(queuedevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(queuedevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queuedevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(queuedevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.EventTimestamp(); ok {
		_spec.SetField(queuedevent.FieldEventTimestamp, field.TypeTime, value)
		_node.EventTimestamp = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuedevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(queuedevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(queuedevent.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuedevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueuedEvent.Create().
//		SetEventType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueuedEventUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *QueuedEventCreate) OnConflict(opts ...sql.ConflictOption) *QueuedEventUpsertOne {
	_c.conflict = opts
	return &QueuedEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueuedEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueuedEventCreate) OnConflictColumns(columns ...string) *QueuedEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueuedEventUpsertOne{
		create: _c,
	}
}

type (
	// QueuedEventUpsertOne is the builder for "upsert"-ing
	//  one QueuedEvent node.
	QueuedEventUpsertOne struct {
		create *QueuedEventCreate
	}

	// QueuedEventUpsert is the "OnConflict" setter.
	QueuedEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventType sets the "event_type" field.
func (u *QueuedEventUpsert) SetEventType(v string) *QueuedEventUpsert {
	u.Set(queuedevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *QueuedEventUpsert) UpdateEventType() *QueuedEventUpsert {
	u.SetExcluded(queuedevent.FieldEventType)
	return u
}

// SetPayload sets the "payload" field.
func (u *QueuedEventUpsert) SetPayload(v map[string]interface{}) *QueuedEventUpsert {
	u.Set(queuedevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QueuedEventUpsert) UpdatePayload() *QueuedEventUpsert {
	u.SetExcluded(queuedevent.FieldPayload)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *QueuedEventUpsert) SetMetadata(v map[string]interface{}) *QueuedEventUpsert {
	u.Set(queuedevent.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *QueuedEventUpsert) UpdateMetadata() *QueuedEventUpsert {
	u.SetExcluded(queuedevent.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *QueuedEventUpsert) ClearMetadata() *QueuedEventUpsert {
	u.SetNull(queuedevent.FieldMetadata)
	return u
}

// SetEventTimestamp sets the "event_timestamp" field.
func (u *QueuedEventUpsert) SetEventTimestamp(v time.Time) *QueuedEventUpsert {
	u.Set(queuedevent.FieldEventTimestamp, v)
	return u
}

// UpdateEventTimestamp sets the "event_timestamp" field to the value that was provided on create.
func (u *QueuedEventUpsert) UpdateEventTimestamp() *QueuedEventUpsert {
	u.SetExcluded(queuedevent.FieldEventTimestamp)
	return u
}

// SetStatus sets the "status" field.
func (u *QueuedEventUpsert) SetStatus(v queuedevent.Status) *QueuedEventUpsert {
	u.Set(queuedevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueuedEventUpsert) UpdateStatus() *QueuedEventUpsert {
	u.SetExcluded(queuedevent.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *QueuedEventUpsert) SetAttempts(v int) *QueuedEventUpsert {
	u.Set(queuedevent.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *QueuedEventUpsert) UpdateAttempts() *QueuedEventUpsert {
	u.SetExcluded(queuedevent.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *QueuedEventUpsert) AddAttempts(v int) *QueuedEventUpsert {
	u.Add(queuedevent.FieldAttempts, v)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *QueuedEventUpsert) SetClaimedBy(v string) *QueuedEventUpsert {
	u.Set(queuedevent.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *QueuedEventUpsert) UpdateClaimedBy() *QueuedEventUpsert {
	u.SetExcluded(queuedevent.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *QueuedEventUpsert) ClearClaimedBy() *QueuedEventUpsert {
	u.SetNull(queuedevent.FieldClaimedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QueuedEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QueuedEventUpsertOne) UpdateNewValues() *QueuedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(queuedevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueuedEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueuedEventUpsertOne) Ignore() *QueuedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueuedEventUpsertOne) DoNothing() *QueuedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueuedEventCreate.OnConflict
// documentation for more info.
func (u *QueuedEventUpsertOne) Update(set func(*QueuedEventUpsert)) *QueuedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueuedEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *QueuedEventUpsertOne) SetEventType(v string) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *QueuedEventUpsertOne) UpdateEventType() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *QueuedEventUpsertOne) SetPayload(v map[string]interface{}) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QueuedEventUpsertOne) UpdatePayload() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdatePayload()
	})
}

// SetMetadata sets the "metadata" field.
func (u *QueuedEventUpsertOne) SetMetadata(v map[string]interface{}) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *QueuedEventUpsertOne) UpdateMetadata() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *QueuedEventUpsertOne) ClearMetadata() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.ClearMetadata()
	})
}

// SetEventTimestamp sets the "event_timestamp" field.
func (u *QueuedEventUpsertOne) SetEventTimestamp(v time.Time) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetEventTimestamp(v)
	})
}

// UpdateEventTimestamp sets the "event_timestamp" field to the value that was provided on create.
func (u *QueuedEventUpsertOne) UpdateEventTimestamp() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateEventTimestamp()
	})
}

// SetStatus sets the "status" field.
func (u *QueuedEventUpsertOne) SetStatus(v queuedevent.Status) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueuedEventUpsertOne) UpdateStatus() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *QueuedEventUpsertOne) SetAttempts(v int) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *QueuedEventUpsertOne) AddAttempts(v int) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *QueuedEventUpsertOne) UpdateAttempts() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateAttempts()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *QueuedEventUpsertOne) SetClaimedBy(v string) *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *QueuedEventUpsertOne) UpdateClaimedBy() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *QueuedEventUpsertOne) ClearClaimedBy() *QueuedEventUpsertOne {
	return u.Update(func(s *QueuedEventUpsert) {
		s.ClearClaimedBy()
	})
}

// Exec executes the query.
func (u *QueuedEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueuedEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueuedEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueuedEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueuedEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueuedEventCreateBulk is the builder for creating many QueuedEvent entities in bulk.
type QueuedEventCreateBulk struct {
	config
	err      error
	builders []*QueuedEventCreate
	conflict []sql.ConflictOption
}

// Save creates the QueuedEvent entities in the database.
func (_c *QueuedEventCreateBulk) Save(ctx context.Context) ([]*QueuedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueuedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueuedEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *QueuedEventCreateBulk) SaveX(ctx context.Context) []*QueuedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueuedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueuedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueuedEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueuedEventUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *QueuedEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueuedEventUpsertBulk {
	_c.conflict = opts
	return &QueuedEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueuedEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueuedEventCreateBulk) OnConflictColumns(columns ...string) *QueuedEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueuedEventUpsertBulk{
		create: _c,
	}
}

// QueuedEventUpsertBulk is the builder for "upsert"-ing
// a bulk of QueuedEvent nodes.
type QueuedEventUpsertBulk struct {
	create *QueuedEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueuedEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QueuedEventUpsertBulk) UpdateNewValues() *QueuedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(queuedevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueuedEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueuedEventUpsertBulk) Ignore() *QueuedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueuedEventUpsertBulk) DoNothing() *QueuedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueuedEventCreateBulk.OnConflict
// documentation for more info.
func (u *QueuedEventUpsertBulk) Update(set func(*QueuedEventUpsert)) *QueuedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueuedEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *QueuedEventUpsertBulk) SetEventType(v string) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *QueuedEventUpsertBulk) UpdateEventType() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *QueuedEventUpsertBulk) SetPayload(v map[string]interface{}) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QueuedEventUpsertBulk) UpdatePayload() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdatePayload()
	})
}

// SetMetadata sets the "metadata" field.
func (u *QueuedEventUpsertBulk) SetMetadata(v map[string]interface{}) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *QueuedEventUpsertBulk) UpdateMetadata() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *QueuedEventUpsertBulk) ClearMetadata() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.ClearMetadata()
	})
}

// SetEventTimestamp sets the "event_timestamp" field.
func (u *QueuedEventUpsertBulk) SetEventTimestamp(v time.Time) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetEventTimestamp(v)
	})
}

// UpdateEventTimestamp sets the "event_timestamp" field to the value that was provided on create.
func (u *QueuedEventUpsertBulk) UpdateEventTimestamp() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateEventTimestamp()
	})
}

// SetStatus sets the "status" field.
func (u *QueuedEventUpsertBulk) SetStatus(v queuedevent.Status) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueuedEventUpsertBulk) UpdateStatus() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *QueuedEventUpsertBulk) SetAttempts(v int) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *QueuedEventUpsertBulk) AddAttempts(v int) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *QueuedEventUpsertBulk) UpdateAttempts() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateAttempts()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *QueuedEventUpsertBulk) SetClaimedBy(v string) *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *QueuedEventUpsertBulk) UpdateClaimedBy() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *QueuedEventUpsertBulk) ClearClaimedBy() *QueuedEventUpsertBulk {
	return u.Update(func(s *QueuedEventUpsert) {
		s.ClearClaimedBy()
	})
}

// Exec executes the query.
func (u *QueuedEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueuedEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueuedEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueuedEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
