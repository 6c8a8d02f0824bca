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
	"github.com/gatherhub/gatherhub/ent/favorite"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/platformconnection"
	"github.com/gatherhub/gatherhub/ent/synclog"
)

// GroupCreate is the builder for creating a Group entity.
type GroupCreate struct {
	config
	mutation *GroupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlug sets the "slug" field.
func (_c *GroupCreate) SetSlug(v string) *GroupCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GroupCreate) SetName(v string) *GroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *GroupCreate) SetDescription(v string) *GroupCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *GroupCreate) SetNillableDescription(v *string) *GroupCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMemberCount sets the "member_count" field.
func (_c *GroupCreate) SetMemberCount(v int) *GroupCreate {
	_c.mutation.SetMemberCount(v)
	return _c
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_c *GroupCreate) SetNillableMemberCount(v *int) *GroupCreate {
	if v != nil {
		_c.SetMemberCount(*v)
	}
	return _c
}

// SetPhotoURL sets the "photo_url" field.
func (_c *GroupCreate) SetPhotoURL(v string) *GroupCreate {
	_c.mutation.SetPhotoURL(v)
	return _c
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_c *GroupCreate) SetNillablePhotoURL(v *string) *GroupCreate {
	if v != nil {
		_c.SetPhotoURL(*v)
	}
	return _c
}

// SetDisplay sets the "display" field.
func (_c *GroupCreate) SetDisplay(v bool) *GroupCreate {
	_c.mutation.SetDisplay(v)
	return _c
}

// SetNillableDisplay sets the "display" field if the given value is not nil.
func (_c *GroupCreate) SetNillableDisplay(v *bool) *GroupCreate {
	if v != nil {
		_c.SetDisplay(*v)
	}
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *GroupCreate) SetFeatured(v bool) *GroupCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *GroupCreate) SetNillableFeatured(v *bool) *GroupCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *GroupCreate) SetTags(v []string) *GroupCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetSocialLinks sets the "social_links" field.
func (_c *GroupCreate) SetSocialLinks(v map[string]string) *GroupCreate {
	_c.mutation.SetSocialLinks(v)
	return _c
}

// SetSyncActive sets the "sync_active" field.
func (_c *GroupCreate) SetSyncActive(v bool) *GroupCreate {
	_c.mutation.SetSyncActive(v)
	return _c
}

// SetNillableSyncActive sets the "sync_active" field if the given value is not nil.
func (_c *GroupCreate) SetNillableSyncActive(v *bool) *GroupCreate {
	if v != nil {
		_c.SetSyncActive(*v)
	}
	return _c
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_c *GroupCreate) SetLastSyncAt(v time.Time) *GroupCreate {
	_c.mutation.SetLastSyncAt(v)
	return _c
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableLastSyncAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetLastSyncAt(*v)
	}
	return _c
}

// SetLastSyncError sets the "last_sync_error" field.
func (_c *GroupCreate) SetLastSyncError(v string) *GroupCreate {
	_c.mutation.SetLastSyncError(v)
	return _c
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_c *GroupCreate) SetNillableLastSyncError(v *string) *GroupCreate {
	if v != nil {
		_c.SetLastSyncError(*v)
	}
	return _c
}

// SetMaxBadges sets the "max_badges" field.
func (_c *GroupCreate) SetMaxBadges(v int) *GroupCreate {
	_c.mutation.SetMaxBadges(v)
	return _c
}

// SetNillableMaxBadges sets the "max_badges" field if the given value is not nil.
func (_c *GroupCreate) SetNillableMaxBadges(v *int) *GroupCreate {
	if v != nil {
		_c.SetMaxBadges(*v)
	}
	return _c
}

// SetMaxBadgePoints sets the "max_badge_points" field.
func (_c *GroupCreate) SetMaxBadgePoints(v int) *GroupCreate {
	_c.mutation.SetMaxBadgePoints(v)
	return _c
}

// SetNillableMaxBadgePoints sets the "max_badge_points" field if the given value is not nil.
func (_c *GroupCreate) SetNillableMaxBadgePoints(v *int) *GroupCreate {
	if v != nil {
		_c.SetMaxBadgePoints(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GroupCreate) SetCreatedAt(v time.Time) *GroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableCreatedAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GroupCreate) SetUpdatedAt(v time.Time) *GroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableUpdatedAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GroupCreate) SetID(v string) *GroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddConnectionIDs adds the "connections" edge to the PlatformConnection entity by IDs.
func (_c *GroupCreate) AddConnectionIDs(ids ...string) *GroupCreate {
	_c.mutation.AddConnectionIDs(ids...)
	return _c
}

// AddConnections adds the "connections" edges to the PlatformConnection entity.
func (_c *GroupCreate) AddConnections(v ...*PlatformConnection) *GroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConnectionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *GroupCreate) AddEventIDs(ids ...string) *GroupCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *GroupCreate) AddEvents(v ...*Event) *GroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by IDs.
func (_c *GroupCreate) AddFavoriteIDs(ids ...string) *GroupCreate {
	_c.mutation.AddFavoriteIDs(ids...)
	return _c
}

// AddFavorites adds the "favorites" edges to the Favorite entity.
func (_c *GroupCreate) AddFavorites(v ...*Favorite) *GroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFavoriteIDs(ids...)
}

// AddSyncLogIDs adds the "sync_logs" edge to the SyncLog entity by IDs.
func (_c *GroupCreate) AddSyncLogIDs(ids ...string) *GroupCreate {
	_c.mutation.AddSyncLogIDs(ids...)
	return _c
}

// AddSyncLogs adds the "sync_logs" edges to the SyncLog entity.
func (_c *GroupCreate) AddSyncLogs(v ...*SyncLog) *GroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSyncLogIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_c *GroupCreate) Mutation() *GroupMutation {
	return _c.mutation
}

// Save creates the Group in the database.
func (_c *GroupCreate) Save(ctx context.Context) (*Group, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupCreate) SaveX(ctx context.Context) *Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupCreate) defaults() {
	if _, ok := _c.mutation.MemberCount(); !ok {
		v := group.DefaultMemberCount
		_c.mutation.SetMemberCount(v)
	}
	if _, ok := _c.mutation.Display(); !ok {
		v := group.DefaultDisplay
		_c.mutation.SetDisplay(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := group.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.SyncActive(); !ok {
		v := group.DefaultSyncActive
		_c.mutation.SetSyncActive(v)
	}
	if _, ok := _c.mutation.MaxBadges(); !ok {
		v := group.DefaultMaxBadges
		_c.mutation.SetMaxBadges(v)
	}
	if _, ok := _c.mutation.MaxBadgePoints(); !ok {
		v := group.DefaultMaxBadgePoints
		_c.mutation.SetMaxBadgePoints(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := group.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := group.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Group.slug"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Group.name"`)}
	}
	if _, ok := _c.mutation.MemberCount(); !ok {
		return &ValidationError{Name: "member_count", err: errors.New(`ent: missing required field "Group.member_count"`)}
	}
	if _, ok := _c.mutation.Display(); !ok {
		return &ValidationError{Name: "display", err: errors.New(`ent: missing required field "Group.display"`)}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`ent: missing required field "Group.featured"`)}
	}
	if _, ok := _c.mutation.SyncActive(); !ok {
		return &ValidationError{Name: "sync_active", err: errors.New(`ent: missing required field "Group.sync_active"`)}
	}
	if _, ok := _c.mutation.MaxBadges(); !ok {
		return &ValidationError{Name: "max_badges", err: errors.New(`ent: missing required field "Group.max_badges"`)}
	}
	if _, ok := _c.mutation.MaxBadgePoints(); !ok {
		return &ValidationError{Name: "max_badge_points", err: errors.New(`ent: missing required field "Group.max_badge_points"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Group.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Group.updated_at"`)}
	}
	return nil
}

func (_c *GroupCreate) sqlSave(ctx context.Context) (*Group, error) {
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
			return nil, fmt.Errorf("unexpected Group.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupCreate) createSpec() (*Group, *sqlgraph.CreateSpec) {
	var (
		_node = &Group{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(group.Table, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(group.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(group.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(group.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.MemberCount(); ok {
		_spec.SetField(group.FieldMemberCount, field.TypeInt, value)
		_node.MemberCount = value
	}
	if value, ok := _c.mutation.PhotoURL(); ok {
		_spec.SetField(group.FieldPhotoURL, field.TypeString, value)
		_node.PhotoURL = &value
	}
	if value, ok := _c.mutation.Display(); ok {
		_spec.SetField(group.FieldDisplay, field.TypeBool, value)
		_node.Display = value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(group.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(group.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.SocialLinks(); ok {
		_spec.SetField(group.FieldSocialLinks, field.TypeJSON, value)
		_node.SocialLinks = value
	}
	if value, ok := _c.mutation.SyncActive(); ok {
		_spec.SetField(group.FieldSyncActive, field.TypeBool, value)
		_node.SyncActive = value
	}
	if value, ok := _c.mutation.LastSyncAt(); ok {
		_spec.SetField(group.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := _c.mutation.LastSyncError(); ok {
		_spec.SetField(group.FieldLastSyncError, field.TypeString, value)
		_node.LastSyncError = &value
	}
	if value, ok := _c.mutation.MaxBadges(); ok {
		_spec.SetField(group.FieldMaxBadges, field.TypeInt, value)
		_node.MaxBadges = value
	}
	if value, ok := _c.mutation.MaxBadgePoints(); ok {
		_spec.SetField(group.FieldMaxBadgePoints, field.TypeInt, value)
		_node.MaxBadgePoints = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(group.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConnectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.ConnectionsTable,
			Columns: []string{group.ConnectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(platformconnection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.EventsTable,
			Columns: []string{group.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FavoritesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.FavoritesTable,
			Columns: []string{group.FavoritesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(favorite.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SyncLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.SyncLogsTable,
			Columns: []string{group.SyncLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(synclog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Group.Create().
//		SetSlug(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupCreate) OnConflict(opts ...sql.ConflictOption) *GroupUpsertOne {
	_c.conflict = opts
	return &GroupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupCreate) OnConflictColumns(columns ...string) *GroupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupUpsertOne{
		create: _c,
	}
}

type (
	// GroupUpsertOne is the builder for "upsert"-ing
	//  one Group node.
	GroupUpsertOne struct {
		create *GroupCreate
	}

	// GroupUpsert is the "OnConflict" setter.
	GroupUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *GroupUpsert) SetSlug(v string) *GroupUpsert {
	u.Set(group.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *GroupUpsert) UpdateSlug() *GroupUpsert {
	u.SetExcluded(group.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *GroupUpsert) SetName(v string) *GroupUpsert {
	u.Set(group.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *GroupUpsert) UpdateName() *GroupUpsert {
	u.SetExcluded(group.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *GroupUpsert) SetDescription(v string) *GroupUpsert {
	u.Set(group.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GroupUpsert) UpdateDescription() *GroupUpsert {
	u.SetExcluded(group.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *GroupUpsert) ClearDescription() *GroupUpsert {
	u.SetNull(group.FieldDescription)
	return u
}

// SetMemberCount sets the "member_count" field.
func (u *GroupUpsert) SetMemberCount(v int) *GroupUpsert {
	u.Set(group.FieldMemberCount, v)
	return u
}

// UpdateMemberCount sets the "member_count" field to the value that was provided on create.
func (u *GroupUpsert) UpdateMemberCount() *GroupUpsert {
	u.SetExcluded(group.FieldMemberCount)
	return u
}

// AddMemberCount adds v to the "member_count" field.
func (u *GroupUpsert) AddMemberCount(v int) *GroupUpsert {
	u.Add(group.FieldMemberCount, v)
	return u
}

// SetPhotoURL sets the "photo_url" field.
func (u *GroupUpsert) SetPhotoURL(v string) *GroupUpsert {
	u.Set(group.FieldPhotoURL, v)
	return u
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *GroupUpsert) UpdatePhotoURL() *GroupUpsert {
	u.SetExcluded(group.FieldPhotoURL)
	return u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (u *GroupUpsert) ClearPhotoURL() *GroupUpsert {
	u.SetNull(group.FieldPhotoURL)
	return u
}

// SetDisplay sets the "display" field.
func (u *GroupUpsert) SetDisplay(v bool) *GroupUpsert {
	u.Set(group.FieldDisplay, v)
	return u
}

// UpdateDisplay sets the "display" field to the value that was provided on create.
func (u *GroupUpsert) UpdateDisplay() *GroupUpsert {
	u.SetExcluded(group.FieldDisplay)
	return u
}

// SetFeatured sets the "featured" field.
func (u *GroupUpsert) SetFeatured(v bool) *GroupUpsert {
	u.Set(group.FieldFeatured, v)
	return u
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *GroupUpsert) UpdateFeatured() *GroupUpsert {
	u.SetExcluded(group.FieldFeatured)
	return u
}

// SetTags sets the "tags" field.
func (u *GroupUpsert) SetTags(v []string) *GroupUpsert {
	u.Set(group.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *GroupUpsert) UpdateTags() *GroupUpsert {
	u.SetExcluded(group.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *GroupUpsert) ClearTags() *GroupUpsert {
	u.SetNull(group.FieldTags)
	return u
}

// SetSocialLinks sets the "social_links" field.
func (u *GroupUpsert) SetSocialLinks(v map[string]string) *GroupUpsert {
	u.Set(group.FieldSocialLinks, v)
	return u
}

// UpdateSocialLinks sets the "social_links" field to the value that was provided on create.
func (u *GroupUpsert) UpdateSocialLinks() *GroupUpsert {
	u.SetExcluded(group.FieldSocialLinks)
	return u
}

// ClearSocialLinks clears the value of the "social_links" field.
func (u *GroupUpsert) ClearSocialLinks() *GroupUpsert {
	u.SetNull(group.FieldSocialLinks)
	return u
}

// SetSyncActive sets the "sync_active" field.
func (u *GroupUpsert) SetSyncActive(v bool) *GroupUpsert {
	u.Set(group.FieldSyncActive, v)
	return u
}

// UpdateSyncActive sets the "sync_active" field to the value that was provided on create.
func (u *GroupUpsert) UpdateSyncActive() *GroupUpsert {
	u.SetExcluded(group.FieldSyncActive)
	return u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *GroupUpsert) SetLastSyncAt(v time.Time) *GroupUpsert {
	u.Set(group.FieldLastSyncAt, v)
	return u
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *GroupUpsert) UpdateLastSyncAt() *GroupUpsert {
	u.SetExcluded(group.FieldLastSyncAt)
	return u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *GroupUpsert) ClearLastSyncAt() *GroupUpsert {
	u.SetNull(group.FieldLastSyncAt)
	return u
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *GroupUpsert) SetLastSyncError(v string) *GroupUpsert {
	u.Set(group.FieldLastSyncError, v)
	return u
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *GroupUpsert) UpdateLastSyncError() *GroupUpsert {
	u.SetExcluded(group.FieldLastSyncError)
	return u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *GroupUpsert) ClearLastSyncError() *GroupUpsert {
	u.SetNull(group.FieldLastSyncError)
	return u
}

// SetMaxBadges sets the "max_badges" field.
func (u *GroupUpsert) SetMaxBadges(v int) *GroupUpsert {
	u.Set(group.FieldMaxBadges, v)
	return u
}

// UpdateMaxBadges sets the "max_badges" field to the value that was provided on create.
func (u *GroupUpsert) UpdateMaxBadges() *GroupUpsert {
	u.SetExcluded(group.FieldMaxBadges)
	return u
}

// AddMaxBadges adds v to the "max_badges" field.
func (u *GroupUpsert) AddMaxBadges(v int) *GroupUpsert {
	u.Add(group.FieldMaxBadges, v)
	return u
}

// SetMaxBadgePoints sets the "max_badge_points" field.
func (u *GroupUpsert) SetMaxBadgePoints(v int) *GroupUpsert {
	u.Set(group.FieldMaxBadgePoints, v)
	return u
}

// UpdateMaxBadgePoints sets the "max_badge_points" field to the value that was provided on create.
func (u *GroupUpsert) UpdateMaxBadgePoints() *GroupUpsert {
	u.SetExcluded(group.FieldMaxBadgePoints)
	return u
}

// AddMaxBadgePoints adds v to the "max_badge_points" field.
func (u *GroupUpsert) AddMaxBadgePoints(v int) *GroupUpsert {
	u.Add(group.FieldMaxBadgePoints, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupUpsert) SetUpdatedAt(v time.Time) *GroupUpsert {
	u.Set(group.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupUpsert) UpdateUpdatedAt() *GroupUpsert {
	u.SetExcluded(group.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(group.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupUpsertOne) UpdateNewValues() *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(group.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(group.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Group.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GroupUpsertOne) Ignore() *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupUpsertOne) DoNothing() *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupCreate.OnConflict
// documentation for more info.
func (u *GroupUpsertOne) Update(set func(*GroupUpsert)) *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *GroupUpsertOne) SetSlug(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateSlug() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *GroupUpsertOne) SetName(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateName() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *GroupUpsertOne) SetDescription(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateDescription() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *GroupUpsertOne) ClearDescription() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearDescription()
	})
}

// SetMemberCount sets the "member_count" field.
func (u *GroupUpsertOne) SetMemberCount(v int) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetMemberCount(v)
	})
}

// AddMemberCount adds v to the "member_count" field.
func (u *GroupUpsertOne) AddMemberCount(v int) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.AddMemberCount(v)
	})
}

// UpdateMemberCount sets the "member_count" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateMemberCount() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateMemberCount()
	})
}

// SetPhotoURL sets the "photo_url" field.
func (u *GroupUpsertOne) SetPhotoURL(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetPhotoURL(v)
	})
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdatePhotoURL() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdatePhotoURL()
	})
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (u *GroupUpsertOne) ClearPhotoURL() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearPhotoURL()
	})
}

// SetDisplay sets the "display" field.
func (u *GroupUpsertOne) SetDisplay(v bool) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetDisplay(v)
	})
}

// UpdateDisplay sets the "display" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateDisplay() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateDisplay()
	})
}

// SetFeatured sets the "featured" field.
func (u *GroupUpsertOne) SetFeatured(v bool) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateFeatured() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateFeatured()
	})
}

// SetTags sets the "tags" field.
func (u *GroupUpsertOne) SetTags(v []string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateTags() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *GroupUpsertOne) ClearTags() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearTags()
	})
}

// SetSocialLinks sets the "social_links" field.
func (u *GroupUpsertOne) SetSocialLinks(v map[string]string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetSocialLinks(v)
	})
}

// UpdateSocialLinks sets the "social_links" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateSocialLinks() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSocialLinks()
	})
}

// ClearSocialLinks clears the value of the "social_links" field.
func (u *GroupUpsertOne) ClearSocialLinks() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearSocialLinks()
	})
}

// SetSyncActive sets the "sync_active" field.
func (u *GroupUpsertOne) SetSyncActive(v bool) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetSyncActive(v)
	})
}

// UpdateSyncActive sets the "sync_active" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateSyncActive() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSyncActive()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *GroupUpsertOne) SetLastSyncAt(v time.Time) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateLastSyncAt() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *GroupUpsertOne) ClearLastSyncAt() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *GroupUpsertOne) SetLastSyncError(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetLastSyncError(v)
	})
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateLastSyncError() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateLastSyncError()
	})
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *GroupUpsertOne) ClearLastSyncError() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearLastSyncError()
	})
}

// SetMaxBadges sets the "max_badges" field.
func (u *GroupUpsertOne) SetMaxBadges(v int) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetMaxBadges(v)
	})
}

// AddMaxBadges adds v to the "max_badges" field.
func (u *GroupUpsertOne) AddMaxBadges(v int) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.AddMaxBadges(v)
	})
}

// UpdateMaxBadges sets the "max_badges" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateMaxBadges() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateMaxBadges()
	})
}

// SetMaxBadgePoints sets the "max_badge_points" field.
func (u *GroupUpsertOne) SetMaxBadgePoints(v int) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetMaxBadgePoints(v)
	})
}

// AddMaxBadgePoints adds v to the "max_badge_points" field.
func (u *GroupUpsertOne) AddMaxBadgePoints(v int) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.AddMaxBadgePoints(v)
	})
}

// UpdateMaxBadgePoints sets the "max_badge_points" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateMaxBadgePoints() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateMaxBadgePoints()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupUpsertOne) SetUpdatedAt(v time.Time) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateUpdatedAt() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GroupUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GroupUpsertOne.ID is not supported by MySQL driver. Use GroupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GroupUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GroupCreateBulk is the builder for creating many Group entities in bulk.
type GroupCreateBulk struct {
	config
	err      error
	builders []*GroupCreate
	conflict []sql.ConflictOption
}

// Save creates the Group entities in the database.
func (_c *GroupCreateBulk) Save(ctx context.Context) ([]*Group, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Group, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupMutation)
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
func (_c *GroupCreateBulk) SaveX(ctx context.Context) []*Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Group.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupCreateBulk) OnConflict(opts ...sql.ConflictOption) *GroupUpsertBulk {
	_c.conflict = opts
	return &GroupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupCreateBulk) OnConflictColumns(columns ...string) *GroupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupUpsertBulk{
		create: _c,
	}
}

// GroupUpsertBulk is the builder for "upsert"-ing
// a bulk of Group nodes.
type GroupUpsertBulk struct {
	create *GroupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(group.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupUpsertBulk) UpdateNewValues() *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(group.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(group.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GroupUpsertBulk) Ignore() *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupUpsertBulk) DoNothing() *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupCreateBulk.OnConflict
// documentation for more info.
func (u *GroupUpsertBulk) Update(set func(*GroupUpsert)) *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *GroupUpsertBulk) SetSlug(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateSlug() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *GroupUpsertBulk) SetName(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateName() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *GroupUpsertBulk) SetDescription(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateDescription() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *GroupUpsertBulk) ClearDescription() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearDescription()
	})
}

// SetMemberCount sets the "member_count" field.
func (u *GroupUpsertBulk) SetMemberCount(v int) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetMemberCount(v)
	})
}

// AddMemberCount adds v to the "member_count" field.
func (u *GroupUpsertBulk) AddMemberCount(v int) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.AddMemberCount(v)
	})
}

// UpdateMemberCount sets the "member_count" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateMemberCount() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateMemberCount()
	})
}

// SetPhotoURL sets the "photo_url" field.
func (u *GroupUpsertBulk) SetPhotoURL(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetPhotoURL(v)
	})
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdatePhotoURL() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdatePhotoURL()
	})
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (u *GroupUpsertBulk) ClearPhotoURL() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearPhotoURL()
	})
}

// SetDisplay sets the "display" field.
func (u *GroupUpsertBulk) SetDisplay(v bool) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetDisplay(v)
	})
}

// UpdateDisplay sets the "display" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateDisplay() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateDisplay()
	})
}

// SetFeatured sets the "featured" field.
func (u *GroupUpsertBulk) SetFeatured(v bool) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateFeatured() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateFeatured()
	})
}

// SetTags sets the "tags" field.
func (u *GroupUpsertBulk) SetTags(v []string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateTags() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *GroupUpsertBulk) ClearTags() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearTags()
	})
}

// SetSocialLinks sets the "social_links" field.
func (u *GroupUpsertBulk) SetSocialLinks(v map[string]string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetSocialLinks(v)
	})
}

// UpdateSocialLinks sets the "social_links" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateSocialLinks() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSocialLinks()
	})
}

// ClearSocialLinks clears the value of the "social_links" field.
func (u *GroupUpsertBulk) ClearSocialLinks() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearSocialLinks()
	})
}

// SetSyncActive sets the "sync_active" field.
func (u *GroupUpsertBulk) SetSyncActive(v bool) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetSyncActive(v)
	})
}

// UpdateSyncActive sets the "sync_active" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateSyncActive() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSyncActive()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *GroupUpsertBulk) SetLastSyncAt(v time.Time) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateLastSyncAt() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *GroupUpsertBulk) ClearLastSyncAt() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *GroupUpsertBulk) SetLastSyncError(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetLastSyncError(v)
	})
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateLastSyncError() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateLastSyncError()
	})
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *GroupUpsertBulk) ClearLastSyncError() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearLastSyncError()
	})
}

// SetMaxBadges sets the "max_badges" field.
func (u *GroupUpsertBulk) SetMaxBadges(v int) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetMaxBadges(v)
	})
}

// AddMaxBadges adds v to the "max_badges" field.
func (u *GroupUpsertBulk) AddMaxBadges(v int) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.AddMaxBadges(v)
	})
}

// UpdateMaxBadges sets the "max_badges" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateMaxBadges() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateMaxBadges()
	})
}

// SetMaxBadgePoints sets the "max_badge_points" field.
func (u *GroupUpsertBulk) SetMaxBadgePoints(v int) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetMaxBadgePoints(v)
	})
}

// AddMaxBadgePoints adds v to the "max_badge_points" field.
func (u *GroupUpsertBulk) AddMaxBadgePoints(v int) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.AddMaxBadgePoints(v)
	})
}

// UpdateMaxBadgePoints sets the "max_badge_points" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateMaxBadgePoints() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateMaxBadgePoints()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupUpsertBulk) SetUpdatedAt(v time.Time) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateUpdatedAt() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GroupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
