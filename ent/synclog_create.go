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
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/synclog"
)

// SyncLogCreate is the builder for creating a SyncLog entity.
type SyncLogCreate struct {
	config
	mutation *SyncLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *SyncLogCreate) SetGroupID(v string) *SyncLogCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetConnectionID sets the "connection_id" field.
func (_c *SyncLogCreate) SetConnectionID(v string) *SyncLogCreate {
	_c.mutation.SetConnectionID(v)
	return _c
}

// SetNillableConnectionID sets the "connection_id" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableConnectionID(v *string) *SyncLogCreate {
	if v != nil {
		_c.SetConnectionID(*v)
	}
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *SyncLogCreate) SetPlatform(v string) *SyncLogCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SyncLogCreate) SetStatus(v synclog.Status) *SyncLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableStatus(v *synclog.Status) *SyncLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SyncLogCreate) SetStartedAt(v time.Time) *SyncLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableStartedAt(v *time.Time) *SyncLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SyncLogCreate) SetCompletedAt(v time.Time) *SyncLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableCompletedAt(v *time.Time) *SyncLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetEventsCreated sets the "events_created" field.
func (_c *SyncLogCreate) SetEventsCreated(v int) *SyncLogCreate {
	_c.mutation.SetEventsCreated(v)
	return _c
}

// SetNillableEventsCreated sets the "events_created" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableEventsCreated(v *int) *SyncLogCreate {
	if v != nil {
		_c.SetEventsCreated(*v)
	}
	return _c
}

// SetEventsUpdated sets the "events_updated" field.
func (_c *SyncLogCreate) SetEventsUpdated(v int) *SyncLogCreate {
	_c.mutation.SetEventsUpdated(v)
	return _c
}

// SetNillableEventsUpdated sets the "events_updated" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableEventsUpdated(v *int) *SyncLogCreate {
	if v != nil {
		_c.SetEventsUpdated(*v)
	}
	return _c
}

// SetEventsDeleted sets the "events_deleted" field.
func (_c *SyncLogCreate) SetEventsDeleted(v int) *SyncLogCreate {
	_c.mutation.SetEventsDeleted(v)
	return _c
}

// SetNillableEventsDeleted sets the "events_deleted" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableEventsDeleted(v *int) *SyncLogCreate {
	if v != nil {
		_c.SetEventsDeleted(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SyncLogCreate) SetErrorMessage(v string) *SyncLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SyncLogCreate) SetNillableErrorMessage(v *string) *SyncLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SyncLogCreate) SetID(v string) *SyncLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *SyncLogCreate) SetGroup(v *Group) *SyncLogCreate {
	return _c.SetGroupID(v.ID)
}

// Mutation returns the SyncLogMutation object of the builder.
func (_c *SyncLogCreate) Mutation() *SyncLogMutation {
	return _c.mutation
}

// Save creates the SyncLog in the database.
func (_c *SyncLogCreate) Save(ctx context.Context) (*SyncLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncLogCreate) SaveX(ctx context.Context) *SyncLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := synclog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := synclog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.EventsCreated(); !ok {
		v := synclog.DefaultEventsCreated
		_c.mutation.SetEventsCreated(v)
	}
	if _, ok := _c.mutation.EventsUpdated(); !ok {
		v := synclog.DefaultEventsUpdated
		_c.mutation.SetEventsUpdated(v)
	}
	if _, ok := _c.mutation.EventsDeleted(); !ok {
		v := synclog.DefaultEventsDeleted
		_c.mutation.SetEventsDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncLogCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "SyncLog.group_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "SyncLog.platform"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := synclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SyncLog.started_at"`)}
	}
	if _, ok := _c.mutation.EventsCreated(); !ok {
		return &ValidationError{Name: "events_created", err: errors.New(`ent: missing required field "SyncLog.events_created"`)}
	}
	if _, ok := _c.mutation.EventsUpdated(); !ok {
		return &ValidationError{Name: "events_updated", err: errors.New(`ent: missing required field "SyncLog.events_updated"`)}
	}
	if _, ok := _c.mutation.EventsDeleted(); !ok {
		return &ValidationError{Name: "events_deleted", err: errors.New(`ent: missing required field "SyncLog.events_deleted"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "SyncLog.group"`)}
	}
	return nil
}

func (_c *SyncLogCreate) sqlSave(ctx context.Context) (*SyncLog, error) {
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
			return nil, fmt.Errorf("unexpected SyncLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyncLogCreate) createSpec() (*SyncLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(synclog.Table, sqlgraph.NewFieldSpec(synclog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConnectionID(); ok {
		_spec.SetField(synclog.FieldConnectionID, field.TypeString, value)
		_node.ConnectionID = &value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(synclog.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(synclog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(synclog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(synclog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.EventsCreated(); ok {
		_spec.SetField(synclog.FieldEventsCreated, field.TypeInt, value)
		_node.EventsCreated = value
	}
	if value, ok := _c.mutation.EventsUpdated(); ok {
		_spec.SetField(synclog.FieldEventsUpdated, field.TypeInt, value)
		_node.EventsUpdated = value
	}
	if value, ok := _c.mutation.EventsDeleted(); ok {
		_spec.SetField(synclog.FieldEventsDeleted, field.TypeInt, value)
		_node.EventsDeleted = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(synclog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   synclog.GroupTable,
			Columns: []string{synclog.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncLog.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncLogUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncLogCreate) OnConflict(opts ...sql.ConflictOption) *SyncLogUpsertOne {
	_c.conflict = opts
	return &SyncLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncLogCreate) OnConflictColumns(columns ...string) *SyncLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncLogUpsertOne{
		create: _c,
	}
}

type (
	// SyncLogUpsertOne is the builder for "upsert"-ing
	//  one SyncLog node.
	SyncLogUpsertOne struct {
		create *SyncLogCreate
	}

	// SyncLogUpsert is the "OnConflict" setter.
	SyncLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SyncLogUpsert) SetStatus(v synclog.Status) *SyncLogUpsert {
	u.Set(synclog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncLogUpsert) UpdateStatus() *SyncLogUpsert {
	u.SetExcluded(synclog.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncLogUpsert) SetCompletedAt(v time.Time) *SyncLogUpsert {
	u.Set(synclog.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncLogUpsert) UpdateCompletedAt() *SyncLogUpsert {
	u.SetExcluded(synclog.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncLogUpsert) ClearCompletedAt() *SyncLogUpsert {
	u.SetNull(synclog.FieldCompletedAt)
	return u
}

// SetEventsCreated sets the "events_created" field.
func (u *SyncLogUpsert) SetEventsCreated(v int) *SyncLogUpsert {
	u.Set(synclog.FieldEventsCreated, v)
	return u
}

// UpdateEventsCreated sets the "events_created" field to the value that was provided on create.
func (u *SyncLogUpsert) UpdateEventsCreated() *SyncLogUpsert {
	u.SetExcluded(synclog.FieldEventsCreated)
	return u
}

// AddEventsCreated adds v to the "events_created" field.
func (u *SyncLogUpsert) AddEventsCreated(v int) *SyncLogUpsert {
	u.Add(synclog.FieldEventsCreated, v)
	return u
}

// SetEventsUpdated sets the "events_updated" field.
func (u *SyncLogUpsert) SetEventsUpdated(v int) *SyncLogUpsert {
	u.Set(synclog.FieldEventsUpdated, v)
	return u
}

// UpdateEventsUpdated sets the "events_updated" field to the value that was provided on create.
func (u *SyncLogUpsert) UpdateEventsUpdated() *SyncLogUpsert {
	u.SetExcluded(synclog.FieldEventsUpdated)
	return u
}

// AddEventsUpdated adds v to the "events_updated" field.
func (u *SyncLogUpsert) AddEventsUpdated(v int) *SyncLogUpsert {
	u.Add(synclog.FieldEventsUpdated, v)
	return u
}

// SetEventsDeleted sets the "events_deleted" field.
func (u *SyncLogUpsert) SetEventsDeleted(v int) *SyncLogUpsert {
	u.Set(synclog.FieldEventsDeleted, v)
	return u
}

// UpdateEventsDeleted sets the "events_deleted" field to the value that was provided on create.
func (u *SyncLogUpsert) UpdateEventsDeleted() *SyncLogUpsert {
	u.SetExcluded(synclog.FieldEventsDeleted)
	return u
}

// AddEventsDeleted adds v to the "events_deleted" field.
func (u *SyncLogUpsert) AddEventsDeleted(v int) *SyncLogUpsert {
	u.Add(synclog.FieldEventsDeleted, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SyncLogUpsert) SetErrorMessage(v string) *SyncLogUpsert {
	u.Set(synclog.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SyncLogUpsert) UpdateErrorMessage() *SyncLogUpsert {
	u.SetExcluded(synclog.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SyncLogUpsert) ClearErrorMessage() *SyncLogUpsert {
	u.SetNull(synclog.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SyncLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(synclog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncLogUpsertOne) UpdateNewValues() *SyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(synclog.FieldID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(synclog.FieldGroupID)
		}
		if _, exists := u.create.mutation.ConnectionID(); exists {
			s.SetIgnore(synclog.FieldConnectionID)
		}
		if _, exists := u.create.mutation.Platform(); exists {
			s.SetIgnore(synclog.FieldPlatform)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(synclog.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SyncLogUpsertOne) Ignore() *SyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncLogUpsertOne) DoNothing() *SyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncLogCreate.OnConflict
// documentation for more info.
func (u *SyncLogUpsertOne) Update(set func(*SyncLogUpsert)) *SyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SyncLogUpsertOne) SetStatus(v synclog.Status) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncLogUpsertOne) UpdateStatus() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncLogUpsertOne) SetCompletedAt(v time.Time) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncLogUpsertOne) UpdateCompletedAt() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncLogUpsertOne) ClearCompletedAt() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetEventsCreated sets the "events_created" field.
func (u *SyncLogUpsertOne) SetEventsCreated(v int) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetEventsCreated(v)
	})
}

// AddEventsCreated adds v to the "events_created" field.
func (u *SyncLogUpsertOne) AddEventsCreated(v int) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.AddEventsCreated(v)
	})
}

// UpdateEventsCreated sets the "events_created" field to the value that was provided on create.
func (u *SyncLogUpsertOne) UpdateEventsCreated() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateEventsCreated()
	})
}

// SetEventsUpdated sets the "events_updated" field.
func (u *SyncLogUpsertOne) SetEventsUpdated(v int) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetEventsUpdated(v)
	})
}

// AddEventsUpdated adds v to the "events_updated" field.
func (u *SyncLogUpsertOne) AddEventsUpdated(v int) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.AddEventsUpdated(v)
	})
}

// UpdateEventsUpdated sets the "events_updated" field to the value that was provided on create.
func (u *SyncLogUpsertOne) UpdateEventsUpdated() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateEventsUpdated()
	})
}

// SetEventsDeleted sets the "events_deleted" field.
func (u *SyncLogUpsertOne) SetEventsDeleted(v int) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetEventsDeleted(v)
	})
}

// AddEventsDeleted adds v to the "events_deleted" field.
func (u *SyncLogUpsertOne) AddEventsDeleted(v int) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.AddEventsDeleted(v)
	})
}

// UpdateEventsDeleted sets the "events_deleted" field to the value that was provided on create.
func (u *SyncLogUpsertOne) UpdateEventsDeleted() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateEventsDeleted()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SyncLogUpsertOne) SetErrorMessage(v string) *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SyncLogUpsertOne) UpdateErrorMessage() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SyncLogUpsertOne) ClearErrorMessage() *SyncLogUpsertOne {
	return u.Update(func(s *SyncLogUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *SyncLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SyncLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SyncLogUpsertOne.ID is not supported by MySQL driver. Use SyncLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SyncLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SyncLogCreateBulk is the builder for creating many SyncLog entities in bulk.
type SyncLogCreateBulk struct {
	config
	err      error
	builders []*SyncLogCreate
	conflict []sql.ConflictOption
}

// Save creates the SyncLog entities in the database.
func (_c *SyncLogCreateBulk) Save(ctx context.Context) ([]*SyncLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncLogMutation)
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
func (_c *SyncLogCreateBulk) SaveX(ctx context.Context) []*SyncLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncLogUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *SyncLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *SyncLogUpsertBulk {
	_c.conflict = opts
	return &SyncLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SyncLogCreateBulk) OnConflictColumns(columns ...string) *SyncLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SyncLogUpsertBulk{
		create: _c,
	}
}

// SyncLogUpsertBulk is the builder for "upsert"-ing
// a bulk of SyncLog nodes.
type SyncLogUpsertBulk struct {
	create *SyncLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SyncLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(synclog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SyncLogUpsertBulk) UpdateNewValues() *SyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(synclog.FieldID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(synclog.FieldGroupID)
			}
			if _, exists := b.mutation.ConnectionID(); exists {
				s.SetIgnore(synclog.FieldConnectionID)
			}
			if _, exists := b.mutation.Platform(); exists {
				s.SetIgnore(synclog.FieldPlatform)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(synclog.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SyncLogUpsertBulk) Ignore() *SyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncLogUpsertBulk) DoNothing() *SyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncLogCreateBulk.OnConflict
// documentation for more info.
func (u *SyncLogUpsertBulk) Update(set func(*SyncLogUpsert)) *SyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SyncLogUpsertBulk) SetStatus(v synclog.Status) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncLogUpsertBulk) UpdateStatus() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SyncLogUpsertBulk) SetCompletedAt(v time.Time) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SyncLogUpsertBulk) UpdateCompletedAt() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SyncLogUpsertBulk) ClearCompletedAt() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.ClearCompletedAt()
	})
}

// SetEventsCreated sets the "events_created" field.
func (u *SyncLogUpsertBulk) SetEventsCreated(v int) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetEventsCreated(v)
	})
}

// AddEventsCreated adds v to the "events_created" field.
func (u *SyncLogUpsertBulk) AddEventsCreated(v int) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.AddEventsCreated(v)
	})
}

// UpdateEventsCreated sets the "events_created" field to the value that was provided on create.
func (u *SyncLogUpsertBulk) UpdateEventsCreated() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateEventsCreated()
	})
}

// SetEventsUpdated sets the "events_updated" field.
func (u *SyncLogUpsertBulk) SetEventsUpdated(v int) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetEventsUpdated(v)
	})
}

// AddEventsUpdated adds v to the "events_updated" field.
func (u *SyncLogUpsertBulk) AddEventsUpdated(v int) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.AddEventsUpdated(v)
	})
}

// UpdateEventsUpdated sets the "events_updated" field to the value that was provided on create.
func (u *SyncLogUpsertBulk) UpdateEventsUpdated() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateEventsUpdated()
	})
}

// SetEventsDeleted sets the "events_deleted" field.
func (u *SyncLogUpsertBulk) SetEventsDeleted(v int) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetEventsDeleted(v)
	})
}

// AddEventsDeleted adds v to the "events_deleted" field.
func (u *SyncLogUpsertBulk) AddEventsDeleted(v int) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.AddEventsDeleted(v)
	})
}

// UpdateEventsDeleted sets the "events_deleted" field to the value that was provided on create.
func (u *SyncLogUpsertBulk) UpdateEventsDeleted() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateEventsDeleted()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SyncLogUpsertBulk) SetErrorMessage(v string) *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SyncLogUpsertBulk) UpdateErrorMessage() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SyncLogUpsertBulk) ClearErrorMessage() *SyncLogUpsertBulk {
	return u.Update(func(s *SyncLogUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *SyncLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SyncLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
