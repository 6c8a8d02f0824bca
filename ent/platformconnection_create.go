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
	"github.com/gatherhub/gatherhub/ent/platformconnection"
)

// PlatformConnectionCreate is the builder for creating a PlatformConnection entity.
type PlatformConnectionCreate struct {
	config
	mutation *PlatformConnectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *PlatformConnectionCreate) SetGroupID(v string) *PlatformConnectionCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *PlatformConnectionCreate) SetPlatform(v string) *PlatformConnectionCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *PlatformConnectionCreate) SetPlatformID(v string) *PlatformConnectionCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *PlatformConnectionCreate) SetSlug(v string) *PlatformConnectionCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_c *PlatformConnectionCreate) SetNillableSlug(v *string) *PlatformConnectionCreate {
	if v != nil {
		_c.SetSlug(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *PlatformConnectionCreate) SetURL(v string) *PlatformConnectionCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *PlatformConnectionCreate) SetNillableURL(v *string) *PlatformConnectionCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *PlatformConnectionCreate) SetActive(v bool) *PlatformConnectionCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PlatformConnectionCreate) SetNillableActive(v *bool) *PlatformConnectionCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_c *PlatformConnectionCreate) SetLastSyncAt(v time.Time) *PlatformConnectionCreate {
	_c.mutation.SetLastSyncAt(v)
	return _c
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_c *PlatformConnectionCreate) SetNillableLastSyncAt(v *time.Time) *PlatformConnectionCreate {
	if v != nil {
		_c.SetLastSyncAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PlatformConnectionCreate) SetLastError(v string) *PlatformConnectionCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PlatformConnectionCreate) SetNillableLastError(v *string) *PlatformConnectionCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlatformConnectionCreate) SetCreatedAt(v time.Time) *PlatformConnectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlatformConnectionCreate) SetNillableCreatedAt(v *time.Time) *PlatformConnectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlatformConnectionCreate) SetID(v string) *PlatformConnectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *PlatformConnectionCreate) SetGroup(v *Group) *PlatformConnectionCreate {
	return _c.SetGroupID(v.ID)
}

// Mutation returns the PlatformConnectionMutation object of the builder.
func (_c *PlatformConnectionCreate) Mutation() *PlatformConnectionMutation {
	return _c.mutation
}

// Save creates the PlatformConnection in the database.
func (_c *PlatformConnectionCreate) Save(ctx context.Context) (*PlatformConnection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlatformConnectionCreate) SaveX(ctx context.Context) *PlatformConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlatformConnectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlatformConnectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlatformConnectionCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := platformconnection.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := platformconnection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlatformConnectionCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "PlatformConnection.group_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "PlatformConnection.platform"`)}
	}
	if _, ok := _c.mutation.PlatformID(); !ok {
		return &ValidationError{Name: "platform_id", err: errors.New(`ent: missing required field "PlatformConnection.platform_id"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "PlatformConnection.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlatformConnection.created_at"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "PlatformConnection.group"`)}
	}
	return nil
}

func (_c *PlatformConnectionCreate) sqlSave(ctx context.Context) (*PlatformConnection, error) {
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
			return nil, fmt.Errorf("unexpected PlatformConnection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlatformConnectionCreate) createSpec() (*PlatformConnection, *sqlgraph.CreateSpec) {
	var (
		_node = &PlatformConnection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(platformconnection.Table, sqlgraph.NewFieldSpec(platformconnection.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(platformconnection.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(platformconnection.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(platformconnection.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(platformconnection.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(platformconnection.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.LastSyncAt(); ok {
		_spec.SetField(platformconnection.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(platformconnection.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(platformconnection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   platformconnection.GroupTable,
			Columns: []string{platformconnection.GroupColumn},
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
//	client.PlatformConnection.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlatformConnectionUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlatformConnectionCreate) OnConflict(opts ...sql.ConflictOption) *PlatformConnectionUpsertOne {
	_c.conflict = opts
	return &PlatformConnectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlatformConnection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlatformConnectionCreate) OnConflictColumns(columns ...string) *PlatformConnectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlatformConnectionUpsertOne{
		create: _c,
	}
}

type (
	// PlatformConnectionUpsertOne is the builder for "upsert"-ing
	//  one PlatformConnection node.
	PlatformConnectionUpsertOne struct {
		create *PlatformConnectionCreate
	}

	// PlatformConnectionUpsert is the "OnConflict" setter.
	PlatformConnectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlatform sets the "platform" field.
func (u *PlatformConnectionUpsert) SetPlatform(v string) *PlatformConnectionUpsert {
	u.Set(platformconnection.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *PlatformConnectionUpsert) UpdatePlatform() *PlatformConnectionUpsert {
	u.SetExcluded(platformconnection.FieldPlatform)
	return u
}

// SetPlatformID sets the "platform_id" field.
func (u *PlatformConnectionUpsert) SetPlatformID(v string) *PlatformConnectionUpsert {
	u.Set(platformconnection.FieldPlatformID, v)
	return u
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *PlatformConnectionUpsert) UpdatePlatformID() *PlatformConnectionUpsert {
	u.SetExcluded(platformconnection.FieldPlatformID)
	return u
}

// SetSlug sets the "slug" field.
func (u *PlatformConnectionUpsert) SetSlug(v string) *PlatformConnectionUpsert {
	u.Set(platformconnection.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *PlatformConnectionUpsert) UpdateSlug() *PlatformConnectionUpsert {
	u.SetExcluded(platformconnection.FieldSlug)
	return u
}

// ClearSlug clears the value of the "slug" field.
func (u *PlatformConnectionUpsert) ClearSlug() *PlatformConnectionUpsert {
	u.SetNull(platformconnection.FieldSlug)
	return u
}

// SetURL sets the "url" field.
func (u *PlatformConnectionUpsert) SetURL(v string) *PlatformConnectionUpsert {
	u.Set(platformconnection.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *PlatformConnectionUpsert) UpdateURL() *PlatformConnectionUpsert {
	u.SetExcluded(platformconnection.FieldURL)
	return u
}

// ClearURL clears the value of the "url" field.
func (u *PlatformConnectionUpsert) ClearURL() *PlatformConnectionUpsert {
	u.SetNull(platformconnection.FieldURL)
	return u
}

// SetActive sets the "active" field.
func (u *PlatformConnectionUpsert) SetActive(v bool) *PlatformConnectionUpsert {
	u.Set(platformconnection.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PlatformConnectionUpsert) UpdateActive() *PlatformConnectionUpsert {
	u.SetExcluded(platformconnection.FieldActive)
	return u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *PlatformConnectionUpsert) SetLastSyncAt(v time.Time) *PlatformConnectionUpsert {
	u.Set(platformconnection.FieldLastSyncAt, v)
	return u
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *PlatformConnectionUpsert) UpdateLastSyncAt() *PlatformConnectionUpsert {
	u.SetExcluded(platformconnection.FieldLastSyncAt)
	return u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *PlatformConnectionUpsert) ClearLastSyncAt() *PlatformConnectionUpsert {
	u.SetNull(platformconnection.FieldLastSyncAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *PlatformConnectionUpsert) SetLastError(v string) *PlatformConnectionUpsert {
	u.Set(platformconnection.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PlatformConnectionUpsert) UpdateLastError() *PlatformConnectionUpsert {
	u.SetExcluded(platformconnection.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *PlatformConnectionUpsert) ClearLastError() *PlatformConnectionUpsert {
	u.SetNull(platformconnection.FieldLastError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PlatformConnection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(platformconnection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlatformConnectionUpsertOne) UpdateNewValues() *PlatformConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(platformconnection.FieldID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(platformconnection.FieldGroupID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(platformconnection.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlatformConnection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlatformConnectionUpsertOne) Ignore() *PlatformConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlatformConnectionUpsertOne) DoNothing() *PlatformConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlatformConnectionCreate.OnConflict
// documentation for more info.
func (u *PlatformConnectionUpsertOne) Update(set func(*PlatformConnectionUpsert)) *PlatformConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlatformConnectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *PlatformConnectionUpsertOne) SetPlatform(v string) *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *PlatformConnectionUpsertOne) UpdatePlatform() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdatePlatform()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *PlatformConnectionUpsertOne) SetPlatformID(v string) *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *PlatformConnectionUpsertOne) UpdatePlatformID() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdatePlatformID()
	})
}

// SetSlug sets the "slug" field.
func (u *PlatformConnectionUpsertOne) SetSlug(v string) *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *PlatformConnectionUpsertOne) UpdateSlug() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateSlug()
	})
}

// ClearSlug clears the value of the "slug" field.
func (u *PlatformConnectionUpsertOne) ClearSlug() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearSlug()
	})
}

// SetURL sets the "url" field.
func (u *PlatformConnectionUpsertOne) SetURL(v string) *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *PlatformConnectionUpsertOne) UpdateURL() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *PlatformConnectionUpsertOne) ClearURL() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearURL()
	})
}

// SetActive sets the "active" field.
func (u *PlatformConnectionUpsertOne) SetActive(v bool) *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PlatformConnectionUpsertOne) UpdateActive() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateActive()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *PlatformConnectionUpsertOne) SetLastSyncAt(v time.Time) *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *PlatformConnectionUpsertOne) UpdateLastSyncAt() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *PlatformConnectionUpsertOne) ClearLastSyncAt() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *PlatformConnectionUpsertOne) SetLastError(v string) *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PlatformConnectionUpsertOne) UpdateLastError() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *PlatformConnectionUpsertOne) ClearLastError() *PlatformConnectionUpsertOne {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *PlatformConnectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlatformConnectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlatformConnectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlatformConnectionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlatformConnectionUpsertOne.ID is not supported by MySQL driver. Use PlatformConnectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlatformConnectionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlatformConnectionCreateBulk is the builder for creating many PlatformConnection entities in bulk.
type PlatformConnectionCreateBulk struct {
	config
	err      error
	builders []*PlatformConnectionCreate
	conflict []sql.ConflictOption
}

// Save creates the PlatformConnection entities in the database.
func (_c *PlatformConnectionCreateBulk) Save(ctx context.Context) ([]*PlatformConnection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlatformConnection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlatformConnectionMutation)
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
func (_c *PlatformConnectionCreateBulk) SaveX(ctx context.Context) []*PlatformConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlatformConnectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlatformConnectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlatformConnection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlatformConnectionUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlatformConnectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlatformConnectionUpsertBulk {
	_c.conflict = opts
	return &PlatformConnectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlatformConnection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlatformConnectionCreateBulk) OnConflictColumns(columns ...string) *PlatformConnectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlatformConnectionUpsertBulk{
		create: _c,
	}
}

// PlatformConnectionUpsertBulk is the builder for "upsert"-ing
// a bulk of PlatformConnection nodes.
type PlatformConnectionUpsertBulk struct {
	create *PlatformConnectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlatformConnection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(platformconnection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlatformConnectionUpsertBulk) UpdateNewValues() *PlatformConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(platformconnection.FieldID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(platformconnection.FieldGroupID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(platformconnection.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlatformConnection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlatformConnectionUpsertBulk) Ignore() *PlatformConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlatformConnectionUpsertBulk) DoNothing() *PlatformConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlatformConnectionCreateBulk.OnConflict
// documentation for more info.
func (u *PlatformConnectionUpsertBulk) Update(set func(*PlatformConnectionUpsert)) *PlatformConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlatformConnectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *PlatformConnectionUpsertBulk) SetPlatform(v string) *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *PlatformConnectionUpsertBulk) UpdatePlatform() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdatePlatform()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *PlatformConnectionUpsertBulk) SetPlatformID(v string) *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *PlatformConnectionUpsertBulk) UpdatePlatformID() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdatePlatformID()
	})
}

// SetSlug sets the "slug" field.
func (u *PlatformConnectionUpsertBulk) SetSlug(v string) *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *PlatformConnectionUpsertBulk) UpdateSlug() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateSlug()
	})
}

// ClearSlug clears the value of the "slug" field.
func (u *PlatformConnectionUpsertBulk) ClearSlug() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearSlug()
	})
}

// SetURL sets the "url" field.
func (u *PlatformConnectionUpsertBulk) SetURL(v string) *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *PlatformConnectionUpsertBulk) UpdateURL() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *PlatformConnectionUpsertBulk) ClearURL() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearURL()
	})
}

// SetActive sets the "active" field.
func (u *PlatformConnectionUpsertBulk) SetActive(v bool) *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PlatformConnectionUpsertBulk) UpdateActive() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateActive()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *PlatformConnectionUpsertBulk) SetLastSyncAt(v time.Time) *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *PlatformConnectionUpsertBulk) UpdateLastSyncAt() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *PlatformConnectionUpsertBulk) ClearLastSyncAt() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *PlatformConnectionUpsertBulk) SetLastError(v string) *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PlatformConnectionUpsertBulk) UpdateLastError() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *PlatformConnectionUpsertBulk) ClearLastError() *PlatformConnectionUpsertBulk {
	return u.Update(func(s *PlatformConnectionUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *PlatformConnectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlatformConnectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlatformConnectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlatformConnectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
