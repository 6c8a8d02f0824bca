// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/favorite"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/platformconnection"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/synclog"
)

// GroupUpdate is the builder for updating Group entities.
type GroupUpdate struct {
	config
	hooks    []Hook
	mutation *GroupMutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdate) Where(ps ...predicate.Group) *GroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *GroupUpdate) SetSlug(v string) *GroupUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableSlug(v *string) *GroupUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GroupUpdate) SetName(v string) *GroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableName(v *string) *GroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *GroupUpdate) SetDescription(v string) *GroupUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableDescription(v *string) *GroupUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GroupUpdate) ClearDescription() *GroupUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMemberCount sets the "member_count" field.
func (_u *GroupUpdate) SetMemberCount(v int) *GroupUpdate {
	_u.mutation.ResetMemberCount()
	_u.mutation.SetMemberCount(v)
	return _u
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableMemberCount(v *int) *GroupUpdate {
	if v != nil {
		_u.SetMemberCount(*v)
	}
	return _u
}

// AddMemberCount adds value to the "member_count" field.
func (_u *GroupUpdate) AddMemberCount(v int) *GroupUpdate {
	_u.mutation.AddMemberCount(v)
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *GroupUpdate) SetPhotoURL(v string) *GroupUpdate {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *GroupUpdate) SetNillablePhotoURL(v *string) *GroupUpdate {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *GroupUpdate) ClearPhotoURL() *GroupUpdate {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetDisplay sets the "display" field.
func (_u *GroupUpdate) SetDisplay(v bool) *GroupUpdate {
	_u.mutation.SetDisplay(v)
	return _u
}

// SetNillableDisplay sets the "display" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableDisplay(v *bool) *GroupUpdate {
	if v != nil {
		_u.SetDisplay(*v)
	}
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *GroupUpdate) SetFeatured(v bool) *GroupUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableFeatured(v *bool) *GroupUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *GroupUpdate) SetTags(v []string) *GroupUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *GroupUpdate) AppendTags(v []string) *GroupUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *GroupUpdate) ClearTags() *GroupUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetSocialLinks sets the "social_links" field.
func (_u *GroupUpdate) SetSocialLinks(v map[string]string) *GroupUpdate {
	_u.mutation.SetSocialLinks(v)
	return _u
}

// ClearSocialLinks clears the value of the "social_links" field.
func (_u *GroupUpdate) ClearSocialLinks() *GroupUpdate {
	_u.mutation.ClearSocialLinks()
	return _u
}

// SetSyncActive sets the "sync_active" field.
func (_u *GroupUpdate) SetSyncActive(v bool) *GroupUpdate {
	_u.mutation.SetSyncActive(v)
	return _u
}

// SetNillableSyncActive sets the "sync_active" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableSyncActive(v *bool) *GroupUpdate {
	if v != nil {
		_u.SetSyncActive(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *GroupUpdate) SetLastSyncAt(v time.Time) *GroupUpdate {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableLastSyncAt(v *time.Time) *GroupUpdate {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *GroupUpdate) ClearLastSyncAt() *GroupUpdate {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastSyncError sets the "last_sync_error" field.
func (_u *GroupUpdate) SetLastSyncError(v string) *GroupUpdate {
	_u.mutation.SetLastSyncError(v)
	return _u
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableLastSyncError(v *string) *GroupUpdate {
	if v != nil {
		_u.SetLastSyncError(*v)
	}
	return _u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (_u *GroupUpdate) ClearLastSyncError() *GroupUpdate {
	_u.mutation.ClearLastSyncError()
	return _u
}

// SetMaxBadges sets the "max_badges" field.
func (_u *GroupUpdate) SetMaxBadges(v int) *GroupUpdate {
	_u.mutation.ResetMaxBadges()
	_u.mutation.SetMaxBadges(v)
	return _u
}

// SetNillableMaxBadges sets the "max_badges" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableMaxBadges(v *int) *GroupUpdate {
	if v != nil {
		_u.SetMaxBadges(*v)
	}
	return _u
}

// AddMaxBadges adds value to the "max_badges" field.
func (_u *GroupUpdate) AddMaxBadges(v int) *GroupUpdate {
	_u.mutation.AddMaxBadges(v)
	return _u
}

// SetMaxBadgePoints sets the "max_badge_points" field.
func (_u *GroupUpdate) SetMaxBadgePoints(v int) *GroupUpdate {
	_u.mutation.ResetMaxBadgePoints()
	_u.mutation.SetMaxBadgePoints(v)
	return _u
}

// SetNillableMaxBadgePoints sets the "max_badge_points" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableMaxBadgePoints(v *int) *GroupUpdate {
	if v != nil {
		_u.SetMaxBadgePoints(*v)
	}
	return _u
}

// AddMaxBadgePoints adds value to the "max_badge_points" field.
func (_u *GroupUpdate) AddMaxBadgePoints(v int) *GroupUpdate {
	_u.mutation.AddMaxBadgePoints(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupUpdate) SetUpdatedAt(v time.Time) *GroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConnectionIDs adds the "connections" edge to the PlatformConnection entity by IDs.
func (_u *GroupUpdate) AddConnectionIDs(ids ...string) *GroupUpdate {
	_u.mutation.AddConnectionIDs(ids...)
	return _u
}

// AddConnections adds the "connections" edges to the PlatformConnection entity.
func (_u *GroupUpdate) AddConnections(v ...*PlatformConnection) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConnectionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *GroupUpdate) AddEventIDs(ids ...string) *GroupUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *GroupUpdate) AddEvents(v ...*Event) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by IDs.
func (_u *GroupUpdate) AddFavoriteIDs(ids ...string) *GroupUpdate {
	_u.mutation.AddFavoriteIDs(ids...)
	return _u
}

// AddFavorites adds the "favorites" edges to the Favorite entity.
func (_u *GroupUpdate) AddFavorites(v ...*Favorite) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFavoriteIDs(ids...)
}

// AddSyncLogIDs adds the "sync_logs" edge to the SyncLog entity by IDs.
func (_u *GroupUpdate) AddSyncLogIDs(ids ...string) *GroupUpdate {
	_u.mutation.AddSyncLogIDs(ids...)
	return _u
}

// AddSyncLogs adds the "sync_logs" edges to the SyncLog entity.
func (_u *GroupUpdate) AddSyncLogs(v ...*SyncLog) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSyncLogIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdate) Mutation() *GroupMutation {
	return _u.mutation
}

// ClearConnections clears all "connections" edges to the PlatformConnection entity.
func (_u *GroupUpdate) ClearConnections() *GroupUpdate {
	_u.mutation.ClearConnections()
	return _u
}

// RemoveConnectionIDs removes the "connections" edge to PlatformConnection entities by IDs.
func (_u *GroupUpdate) RemoveConnectionIDs(ids ...string) *GroupUpdate {
	_u.mutation.RemoveConnectionIDs(ids...)
	return _u
}

// RemoveConnections removes "connections" edges to PlatformConnection entities.
func (_u *GroupUpdate) RemoveConnections(v ...*PlatformConnection) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConnectionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *GroupUpdate) ClearEvents() *GroupUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *GroupUpdate) RemoveEventIDs(ids ...string) *GroupUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *GroupUpdate) RemoveEvents(v ...*Event) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearFavorites clears all "favorites" edges to the Favorite entity.
func (_u *GroupUpdate) ClearFavorites() *GroupUpdate {
	_u.mutation.ClearFavorites()
	return _u
}

// RemoveFavoriteIDs removes the "favorites" edge to Favorite entities by IDs.
func (_u *GroupUpdate) RemoveFavoriteIDs(ids ...string) *GroupUpdate {
	_u.mutation.RemoveFavoriteIDs(ids...)
	return _u
}

// RemoveFavorites removes "favorites" edges to Favorite entities.
func (_u *GroupUpdate) RemoveFavorites(v ...*Favorite) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFavoriteIDs(ids...)
}

// ClearSyncLogs clears all "sync_logs" edges to the SyncLog entity.
func (_u *GroupUpdate) ClearSyncLogs() *GroupUpdate {
	_u.mutation.ClearSyncLogs()
	return _u
}

// RemoveSyncLogIDs removes the "sync_logs" edge to SyncLog entities by IDs.
func (_u *GroupUpdate) RemoveSyncLogIDs(ids ...string) *GroupUpdate {
	_u.mutation.RemoveSyncLogIDs(ids...)
	return _u
}

// RemoveSyncLogs removes "sync_logs" edges to SyncLog entities.
func (_u *GroupUpdate) RemoveSyncLogs(v ...*SyncLog) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSyncLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := group.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *GroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(group.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(group.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(group.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(group.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MemberCount(); ok {
		_spec.SetField(group.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberCount(); ok {
		_spec.AddField(group.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(group.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(group.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Display(); ok {
		_spec.SetField(group.FieldDisplay, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(group.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(group.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, group.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(group.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialLinks(); ok {
		_spec.SetField(group.FieldSocialLinks, field.TypeJSON, value)
	}
	if _u.mutation.SocialLinksCleared() {
		_spec.ClearField(group.FieldSocialLinks, field.TypeJSON)
	}
	if value, ok := _u.mutation.SyncActive(); ok {
		_spec.SetField(group.FieldSyncActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(group.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(group.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncError(); ok {
		_spec.SetField(group.FieldLastSyncError, field.TypeString, value)
	}
	if _u.mutation.LastSyncErrorCleared() {
		_spec.ClearField(group.FieldLastSyncError, field.TypeString)
	}
	if value, ok := _u.mutation.MaxBadges(); ok {
		_spec.SetField(group.FieldMaxBadges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxBadges(); ok {
		_spec.AddField(group.FieldMaxBadges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxBadgePoints(); ok {
		_spec.SetField(group.FieldMaxBadgePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxBadgePoints(); ok {
		_spec.AddField(group.FieldMaxBadgePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConnectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConnectionsIDs(); len(nodes) > 0 && !_u.mutation.ConnectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConnectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFavoritesIDs(); len(nodes) > 0 && !_u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FavoritesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SyncLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSyncLogsIDs(); len(nodes) > 0 && !_u.mutation.SyncLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SyncLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupUpdateOne is the builder for updating a single Group entity.
type GroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupMutation
}

// SetSlug sets the "slug" field.
func (_u *GroupUpdateOne) SetSlug(v string) *GroupUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableSlug(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GroupUpdateOne) SetName(v string) *GroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableName(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *GroupUpdateOne) SetDescription(v string) *GroupUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableDescription(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GroupUpdateOne) ClearDescription() *GroupUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMemberCount sets the "member_count" field.
func (_u *GroupUpdateOne) SetMemberCount(v int) *GroupUpdateOne {
	_u.mutation.ResetMemberCount()
	_u.mutation.SetMemberCount(v)
	return _u
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableMemberCount(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetMemberCount(*v)
	}
	return _u
}

// AddMemberCount adds value to the "member_count" field.
func (_u *GroupUpdateOne) AddMemberCount(v int) *GroupUpdateOne {
	_u.mutation.AddMemberCount(v)
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *GroupUpdateOne) SetPhotoURL(v string) *GroupUpdateOne {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillablePhotoURL(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *GroupUpdateOne) ClearPhotoURL() *GroupUpdateOne {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetDisplay sets the "display" field.
func (_u *GroupUpdateOne) SetDisplay(v bool) *GroupUpdateOne {
	_u.mutation.SetDisplay(v)
	return _u
}

// SetNillableDisplay sets the "display" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableDisplay(v *bool) *GroupUpdateOne {
	if v != nil {
		_u.SetDisplay(*v)
	}
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *GroupUpdateOne) SetFeatured(v bool) *GroupUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableFeatured(v *bool) *GroupUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *GroupUpdateOne) SetTags(v []string) *GroupUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *GroupUpdateOne) AppendTags(v []string) *GroupUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *GroupUpdateOne) ClearTags() *GroupUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetSocialLinks sets the "social_links" field.
func (_u *GroupUpdateOne) SetSocialLinks(v map[string]string) *GroupUpdateOne {
	_u.mutation.SetSocialLinks(v)
	return _u
}

// ClearSocialLinks clears the value of the "social_links" field.
func (_u *GroupUpdateOne) ClearSocialLinks() *GroupUpdateOne {
	_u.mutation.ClearSocialLinks()
	return _u
}

// SetSyncActive sets the "sync_active" field.
func (_u *GroupUpdateOne) SetSyncActive(v bool) *GroupUpdateOne {
	_u.mutation.SetSyncActive(v)
	return _u
}

// SetNillableSyncActive sets the "sync_active" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableSyncActive(v *bool) *GroupUpdateOne {
	if v != nil {
		_u.SetSyncActive(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *GroupUpdateOne) SetLastSyncAt(v time.Time) *GroupUpdateOne {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableLastSyncAt(v *time.Time) *GroupUpdateOne {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *GroupUpdateOne) ClearLastSyncAt() *GroupUpdateOne {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastSyncError sets the "last_sync_error" field.
func (_u *GroupUpdateOne) SetLastSyncError(v string) *GroupUpdateOne {
	_u.mutation.SetLastSyncError(v)
	return _u
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableLastSyncError(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetLastSyncError(*v)
	}
	return _u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (_u *GroupUpdateOne) ClearLastSyncError() *GroupUpdateOne {
	_u.mutation.ClearLastSyncError()
	return _u
}

// SetMaxBadges sets the "max_badges" field.
func (_u *GroupUpdateOne) SetMaxBadges(v int) *GroupUpdateOne {
	_u.mutation.ResetMaxBadges()
	_u.mutation.SetMaxBadges(v)
	return _u
}

// SetNillableMaxBadges sets the "max_badges" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableMaxBadges(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetMaxBadges(*v)
	}
	return _u
}

// AddMaxBadges adds value to the "max_badges" field.
func (_u *GroupUpdateOne) AddMaxBadges(v int) *GroupUpdateOne {
	_u.mutation.AddMaxBadges(v)
	return _u
}

// SetMaxBadgePoints sets the "max_badge_points" field.
func (_u *GroupUpdateOne) SetMaxBadgePoints(v int) *GroupUpdateOne {
	_u.mutation.ResetMaxBadgePoints()
	_u.mutation.SetMaxBadgePoints(v)
	return _u
}

// SetNillableMaxBadgePoints sets the "max_badge_points" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableMaxBadgePoints(v *int) *GroupUpdateOne {
	if v != nil {
		_u.SetMaxBadgePoints(*v)
	}
	return _u
}

// AddMaxBadgePoints adds value to the "max_badge_points" field.
func (_u *GroupUpdateOne) AddMaxBadgePoints(v int) *GroupUpdateOne {
	_u.mutation.AddMaxBadgePoints(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupUpdateOne) SetUpdatedAt(v time.Time) *GroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConnectionIDs adds the "connections" edge to the PlatformConnection entity by IDs.
func (_u *GroupUpdateOne) AddConnectionIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.AddConnectionIDs(ids...)
	return _u
}

// AddConnections adds the "connections" edges to the PlatformConnection entity.
func (_u *GroupUpdateOne) AddConnections(v ...*PlatformConnection) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConnectionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *GroupUpdateOne) AddEventIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *GroupUpdateOne) AddEvents(v ...*Event) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by IDs.
func (_u *GroupUpdateOne) AddFavoriteIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.AddFavoriteIDs(ids...)
	return _u
}

// AddFavorites adds the "favorites" edges to the Favorite entity.
func (_u *GroupUpdateOne) AddFavorites(v ...*Favorite) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFavoriteIDs(ids...)
}

// AddSyncLogIDs adds the "sync_logs" edge to the SyncLog entity by IDs.
func (_u *GroupUpdateOne) AddSyncLogIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.AddSyncLogIDs(ids...)
	return _u
}

// AddSyncLogs adds the "sync_logs" edges to the SyncLog entity.
func (_u *GroupUpdateOne) AddSyncLogs(v ...*SyncLog) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSyncLogIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdateOne) Mutation() *GroupMutation {
	return _u.mutation
}

// ClearConnections clears all "connections" edges to the PlatformConnection entity.
func (_u *GroupUpdateOne) ClearConnections() *GroupUpdateOne {
	_u.mutation.ClearConnections()
	return _u
}

// RemoveConnectionIDs removes the "connections" edge to PlatformConnection entities by IDs.
func (_u *GroupUpdateOne) RemoveConnectionIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.RemoveConnectionIDs(ids...)
	return _u
}

// RemoveConnections removes "connections" edges to PlatformConnection entities.
func (_u *GroupUpdateOne) RemoveConnections(v ...*PlatformConnection) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConnectionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *GroupUpdateOne) ClearEvents() *GroupUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *GroupUpdateOne) RemoveEventIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *GroupUpdateOne) RemoveEvents(v ...*Event) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearFavorites clears all "favorites" edges to the Favorite entity.
func (_u *GroupUpdateOne) ClearFavorites() *GroupUpdateOne {
	_u.mutation.ClearFavorites()
	return _u
}

// RemoveFavoriteIDs removes the "favorites" edge to Favorite entities by IDs.
func (_u *GroupUpdateOne) RemoveFavoriteIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.RemoveFavoriteIDs(ids...)
	return _u
}

// RemoveFavorites removes "favorites" edges to Favorite entities.
func (_u *GroupUpdateOne) RemoveFavorites(v ...*Favorite) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFavoriteIDs(ids...)
}

// ClearSyncLogs clears all "sync_logs" edges to the SyncLog entity.
func (_u *GroupUpdateOne) ClearSyncLogs() *GroupUpdateOne {
	_u.mutation.ClearSyncLogs()
	return _u
}

// RemoveSyncLogIDs removes the "sync_logs" edge to SyncLog entities by IDs.
func (_u *GroupUpdateOne) RemoveSyncLogIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.RemoveSyncLogIDs(ids...)
	return _u
}

// RemoveSyncLogs removes "sync_logs" edges to SyncLog entities.
func (_u *GroupUpdateOne) RemoveSyncLogs(v ...*SyncLog) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSyncLogIDs(ids...)
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdateOne) Where(ps ...predicate.Group) *GroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupUpdateOne) Select(field string, fields ...string) *GroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Group entity.
func (_u *GroupUpdateOne) Save(ctx context.Context) (*Group, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdateOne) SaveX(ctx context.Context) *Group {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := group.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *GroupUpdateOne) sqlSave(ctx context.Context) (_node *Group, err error) {
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Group.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, group.FieldID)
		for _, f := range fields {
			if !group.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != group.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(group.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(group.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(group.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(group.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MemberCount(); ok {
		_spec.SetField(group.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberCount(); ok {
		_spec.AddField(group.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(group.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(group.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Display(); ok {
		_spec.SetField(group.FieldDisplay, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(group.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(group.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, group.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(group.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialLinks(); ok {
		_spec.SetField(group.FieldSocialLinks, field.TypeJSON, value)
	}
	if _u.mutation.SocialLinksCleared() {
		_spec.ClearField(group.FieldSocialLinks, field.TypeJSON)
	}
	if value, ok := _u.mutation.SyncActive(); ok {
		_spec.SetField(group.FieldSyncActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(group.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(group.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncError(); ok {
		_spec.SetField(group.FieldLastSyncError, field.TypeString, value)
	}
	if _u.mutation.LastSyncErrorCleared() {
		_spec.ClearField(group.FieldLastSyncError, field.TypeString)
	}
	if value, ok := _u.mutation.MaxBadges(); ok {
		_spec.SetField(group.FieldMaxBadges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxBadges(); ok {
		_spec.AddField(group.FieldMaxBadges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxBadgePoints(); ok {
		_spec.SetField(group.FieldMaxBadgePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxBadgePoints(); ok {
		_spec.AddField(group.FieldMaxBadgePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConnectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConnectionsIDs(); len(nodes) > 0 && !_u.mutation.ConnectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConnectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFavoritesIDs(); len(nodes) > 0 && !_u.mutation.FavoritesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FavoritesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SyncLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSyncLogsIDs(); len(nodes) > 0 && !_u.mutation.SyncLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SyncLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Group{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
