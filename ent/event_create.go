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
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/rsvp"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *EventCreate) SetPlatform(v string) *EventCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *EventCreate) SetPlatformID(v string) *EventCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *EventCreate) SetGroupID(v string) *EventCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetVenueID sets the "venue_id" field.
func (_c *EventCreate) SetVenueID(v string) *EventCreate {
	_c.mutation.SetVenueID(v)
	return _c
}

// SetNillableVenueID sets the "venue_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableVenueID(v *string) *EventCreate {
	if v != nil {
		_c.SetVenueID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *EventCreate) SetTitle(v string) *EventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *EventCreate) SetDescription(v string) *EventCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EventCreate) SetNillableDescription(v *string) *EventCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetEventURL sets the "event_url" field.
func (_c *EventCreate) SetEventURL(v string) *EventCreate {
	_c.mutation.SetEventURL(v)
	return _c
}

// SetPhotoURL sets the "photo_url" field.
func (_c *EventCreate) SetPhotoURL(v string) *EventCreate {
	_c.mutation.SetPhotoURL(v)
	return _c
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_c *EventCreate) SetNillablePhotoURL(v *string) *EventCreate {
	if v != nil {
		_c.SetPhotoURL(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *EventCreate) SetStartTime(v time.Time) *EventCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *EventCreate) SetEndTime(v time.Time) *EventCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableEndTime(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *EventCreate) SetTimezone(v string) *EventCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *EventCreate) SetNillableTimezone(v *string) *EventCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *EventCreate) SetDuration(v string) *EventCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *EventCreate) SetNillableDuration(v *string) *EventCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventCreate) SetStatus(v event.Status) *EventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventCreate) SetNillableStatus(v *event.Status) *EventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventCreate) SetEventType(v event.EventType) *EventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventType(v *event.EventType) *EventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetRsvpCount sets the "rsvp_count" field.
func (_c *EventCreate) SetRsvpCount(v int) *EventCreate {
	_c.mutation.SetRsvpCount(v)
	return _c
}

// SetNillableRsvpCount sets the "rsvp_count" field if the given value is not nil.
func (_c *EventCreate) SetNillableRsvpCount(v *int) *EventCreate {
	if v != nil {
		_c.SetRsvpCount(*v)
	}
	return _c
}

// SetMaxAttendees sets the "max_attendees" field.
func (_c *EventCreate) SetMaxAttendees(v int) *EventCreate {
	_c.mutation.SetMaxAttendees(v)
	return _c
}

// SetNillableMaxAttendees sets the "max_attendees" field if the given value is not nil.
func (_c *EventCreate) SetNillableMaxAttendees(v *int) *EventCreate {
	if v != nil {
		_c.SetMaxAttendees(*v)
	}
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *EventCreate) SetFeatured(v bool) *EventCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *EventCreate) SetNillableFeatured(v *bool) *EventCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_c *EventCreate) SetLastSyncAt(v time.Time) *EventCreate {
	_c.mutation.SetLastSyncAt(v)
	return _c
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableLastSyncAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetLastSyncAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v string) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *EventCreate) SetGroup(v *Group) *EventCreate {
	return _c.SetGroupID(v.ID)
}

// AddRsvpIDs adds the "rsvps" edge to the RSVP entity by IDs.
func (_c *EventCreate) AddRsvpIDs(ids ...string) *EventCreate {
	_c.mutation.AddRsvpIDs(ids...)
	return _c
}

// AddRsvps adds the "rsvps" edges to the RSVP entity.
func (_c *EventCreate) AddRsvps(v ...*RSVP) *EventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRsvpIDs(ids...)
}

// AddCheckinIDs adds the "checkins" edge to the Checkin entity by IDs.
func (_c *EventCreate) AddCheckinIDs(ids ...string) *EventCreate {
	_c.mutation.AddCheckinIDs(ids...)
	return _c
}

// AddCheckins adds the "checkins" edges to the Checkin entity.
func (_c *EventCreate) AddCheckins(v ...*Checkin) *EventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckinIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := event.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := event.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EventType(); !ok {
		v := event.DefaultEventType
		_c.mutation.SetEventType(v)
	}
	if _, ok := _c.mutation.RsvpCount(); !ok {
		v := event.DefaultRsvpCount
		_c.mutation.SetRsvpCount(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := event.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Event.platform"`)}
	}
	if _, ok := _c.mutation.PlatformID(); !ok {
		return &ValidationError{Name: "platform_id", err: errors.New(`ent: missing required field "Event.platform_id"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "Event.group_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Event.title"`)}
	}
	if _, ok := _c.mutation.EventURL(); !ok {
		return &ValidationError{Name: "event_url", err: errors.New(`ent: missing required field "Event.event_url"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Event.start_time"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Event.timezone"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Event.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "Event.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := event.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Event.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RsvpCount(); !ok {
		return &ValidationError{Name: "rsvp_count", err: errors.New(`ent: missing required field "Event.rsvp_count"`)}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`ent: missing required field "Event.featured"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "Event.group"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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
			return nil, fmt.Errorf("unexpected Event.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(event.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(event.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = value
	}
	if value, ok := _c.mutation.VenueID(); ok {
		_spec.SetField(event.FieldVenueID, field.TypeString, value)
		_node.VenueID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(event.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.EventURL(); ok {
		_spec.SetField(event.FieldEventURL, field.TypeString, value)
		_node.EventURL = value
	}
	if value, ok := _c.mutation.PhotoURL(); ok {
		_spec.SetField(event.FieldPhotoURL, field.TypeString, value)
		_node.PhotoURL = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(event.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(event.FieldDuration, field.TypeString, value)
		_node.Duration = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.RsvpCount(); ok {
		_spec.SetField(event.FieldRsvpCount, field.TypeInt, value)
		_node.RsvpCount = value
	}
	if value, ok := _c.mutation.MaxAttendees(); ok {
		_spec.SetField(event.FieldMaxAttendees, field.TypeInt, value)
		_node.MaxAttendees = &value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(event.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := _c.mutation.LastSyncAt(); ok {
		_spec.SetField(event.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.GroupTable,
			Columns: []string{event.GroupColumn},
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
	if nodes := _c.mutation.RsvpsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.RsvpsTable,
			Columns: []string{event.RsvpsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rsvp.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckinsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.CheckinsTable,
			Columns: []string{event.CheckinsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkin.FieldID, field.TypeString),
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
//	client.Event.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlatform sets the "platform" field.
func (u *EventUpsert) SetPlatform(v string) *EventUpsert {
	u.Set(event.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *EventUpsert) UpdatePlatform() *EventUpsert {
	u.SetExcluded(event.FieldPlatform)
	return u
}

// SetPlatformID sets the "platform_id" field.
func (u *EventUpsert) SetPlatformID(v string) *EventUpsert {
	u.Set(event.FieldPlatformID, v)
	return u
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *EventUpsert) UpdatePlatformID() *EventUpsert {
	u.SetExcluded(event.FieldPlatformID)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *EventUpsert) SetGroupID(v string) *EventUpsert {
	u.Set(event.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateGroupID() *EventUpsert {
	u.SetExcluded(event.FieldGroupID)
	return u
}

// SetVenueID sets the "venue_id" field.
func (u *EventUpsert) SetVenueID(v string) *EventUpsert {
	u.Set(event.FieldVenueID, v)
	return u
}

// UpdateVenueID sets the "venue_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateVenueID() *EventUpsert {
	u.SetExcluded(event.FieldVenueID)
	return u
}

// ClearVenueID clears the value of the "venue_id" field.
func (u *EventUpsert) ClearVenueID() *EventUpsert {
	u.SetNull(event.FieldVenueID)
	return u
}

// SetTitle sets the "title" field.
func (u *EventUpsert) SetTitle(v string) *EventUpsert {
	u.Set(event.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsert) UpdateTitle() *EventUpsert {
	u.SetExcluded(event.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *EventUpsert) SetDescription(v string) *EventUpsert {
	u.Set(event.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EventUpsert) UpdateDescription() *EventUpsert {
	u.SetExcluded(event.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *EventUpsert) ClearDescription() *EventUpsert {
	u.SetNull(event.FieldDescription)
	return u
}

// SetEventURL sets the "event_url" field.
func (u *EventUpsert) SetEventURL(v string) *EventUpsert {
	u.Set(event.FieldEventURL, v)
	return u
}

// UpdateEventURL sets the "event_url" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventURL() *EventUpsert {
	u.SetExcluded(event.FieldEventURL)
	return u
}

// SetPhotoURL sets the "photo_url" field.
func (u *EventUpsert) SetPhotoURL(v string) *EventUpsert {
	u.Set(event.FieldPhotoURL, v)
	return u
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *EventUpsert) UpdatePhotoURL() *EventUpsert {
	u.SetExcluded(event.FieldPhotoURL)
	return u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (u *EventUpsert) ClearPhotoURL() *EventUpsert {
	u.SetNull(event.FieldPhotoURL)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *EventUpsert) SetStartTime(v time.Time) *EventUpsert {
	u.Set(event.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventUpsert) UpdateStartTime() *EventUpsert {
	u.SetExcluded(event.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *EventUpsert) SetEndTime(v time.Time) *EventUpsert {
	u.Set(event.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventUpsert) UpdateEndTime() *EventUpsert {
	u.SetExcluded(event.FieldEndTime)
	return u
}

// ClearEndTime clears the value of the "end_time" field.
func (u *EventUpsert) ClearEndTime() *EventUpsert {
	u.SetNull(event.FieldEndTime)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *EventUpsert) SetTimezone(v string) *EventUpsert {
	u.Set(event.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventUpsert) UpdateTimezone() *EventUpsert {
	u.SetExcluded(event.FieldTimezone)
	return u
}

// SetDuration sets the "duration" field.
func (u *EventUpsert) SetDuration(v string) *EventUpsert {
	u.Set(event.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *EventUpsert) UpdateDuration() *EventUpsert {
	u.SetExcluded(event.FieldDuration)
	return u
}

// ClearDuration clears the value of the "duration" field.
func (u *EventUpsert) ClearDuration() *EventUpsert {
	u.SetNull(event.FieldDuration)
	return u
}

// SetStatus sets the "status" field.
func (u *EventUpsert) SetStatus(v event.Status) *EventUpsert {
	u.Set(event.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsert) UpdateStatus() *EventUpsert {
	u.SetExcluded(event.FieldStatus)
	return u
}

// SetEventType sets the "event_type" field.
func (u *EventUpsert) SetEventType(v event.EventType) *EventUpsert {
	u.Set(event.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventType() *EventUpsert {
	u.SetExcluded(event.FieldEventType)
	return u
}

// SetRsvpCount sets the "rsvp_count" field.
func (u *EventUpsert) SetRsvpCount(v int) *EventUpsert {
	u.Set(event.FieldRsvpCount, v)
	return u
}

// UpdateRsvpCount sets the "rsvp_count" field to the value that was provided on create.
func (u *EventUpsert) UpdateRsvpCount() *EventUpsert {
	u.SetExcluded(event.FieldRsvpCount)
	return u
}

// AddRsvpCount adds v to the "rsvp_count" field.
func (u *EventUpsert) AddRsvpCount(v int) *EventUpsert {
	u.Add(event.FieldRsvpCount, v)
	return u
}

// SetMaxAttendees sets the "max_attendees" field.
func (u *EventUpsert) SetMaxAttendees(v int) *EventUpsert {
	u.Set(event.FieldMaxAttendees, v)
	return u
}

// UpdateMaxAttendees sets the "max_attendees" field to the value that was provided on create.
func (u *EventUpsert) UpdateMaxAttendees() *EventUpsert {
	u.SetExcluded(event.FieldMaxAttendees)
	return u
}

// AddMaxAttendees adds v to the "max_attendees" field.
func (u *EventUpsert) AddMaxAttendees(v int) *EventUpsert {
	u.Add(event.FieldMaxAttendees, v)
	return u
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (u *EventUpsert) ClearMaxAttendees() *EventUpsert {
	u.SetNull(event.FieldMaxAttendees)
	return u
}

// SetFeatured sets the "featured" field.
func (u *EventUpsert) SetFeatured(v bool) *EventUpsert {
	u.Set(event.FieldFeatured, v)
	return u
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *EventUpsert) UpdateFeatured() *EventUpsert {
	u.SetExcluded(event.FieldFeatured)
	return u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *EventUpsert) SetLastSyncAt(v time.Time) *EventUpsert {
	u.Set(event.FieldLastSyncAt, v)
	return u
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateLastSyncAt() *EventUpsert {
	u.SetExcluded(event.FieldLastSyncAt)
	return u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *EventUpsert) ClearLastSyncAt() *EventUpsert {
	u.SetNull(event.FieldLastSyncAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsert) SetUpdatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateUpdatedAt() *EventUpsert {
	u.SetExcluded(event.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(event.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *EventUpsertOne) SetPlatform(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePlatform() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePlatform()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *EventUpsertOne) SetPlatformID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePlatformID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePlatformID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *EventUpsertOne) SetGroupID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateGroupID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateGroupID()
	})
}

// SetVenueID sets the "venue_id" field.
func (u *EventUpsertOne) SetVenueID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetVenueID(v)
	})
}

// UpdateVenueID sets the "venue_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateVenueID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateVenueID()
	})
}

// ClearVenueID clears the value of the "venue_id" field.
func (u *EventUpsertOne) ClearVenueID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearVenueID()
	})
}

// SetTitle sets the "title" field.
func (u *EventUpsertOne) SetTitle(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateTitle() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *EventUpsertOne) SetDescription(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateDescription() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EventUpsertOne) ClearDescription() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearDescription()
	})
}

// SetEventURL sets the "event_url" field.
func (u *EventUpsertOne) SetEventURL(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventURL(v)
	})
}

// UpdateEventURL sets the "event_url" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventURL() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventURL()
	})
}

// SetPhotoURL sets the "photo_url" field.
func (u *EventUpsertOne) SetPhotoURL(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPhotoURL(v)
	})
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePhotoURL() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePhotoURL()
	})
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (u *EventUpsertOne) ClearPhotoURL() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearPhotoURL()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EventUpsertOne) SetStartTime(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStartTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EventUpsertOne) SetEndTime(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEndTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *EventUpsertOne) ClearEndTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearEndTime()
	})
}

// SetTimezone sets the "timezone" field.
func (u *EventUpsertOne) SetTimezone(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateTimezone() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimezone()
	})
}

// SetDuration sets the "duration" field.
func (u *EventUpsertOne) SetDuration(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateDuration() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *EventUpsertOne) ClearDuration() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearDuration()
	})
}

// SetStatus sets the "status" field.
func (u *EventUpsertOne) SetStatus(v event.Status) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStatus() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStatus()
	})
}

// SetEventType sets the "event_type" field.
func (u *EventUpsertOne) SetEventType(v event.EventType) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventType()
	})
}

// SetRsvpCount sets the "rsvp_count" field.
func (u *EventUpsertOne) SetRsvpCount(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRsvpCount(v)
	})
}

// AddRsvpCount adds v to the "rsvp_count" field.
func (u *EventUpsertOne) AddRsvpCount(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddRsvpCount(v)
	})
}

// UpdateRsvpCount sets the "rsvp_count" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRsvpCount() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRsvpCount()
	})
}

// SetMaxAttendees sets the "max_attendees" field.
func (u *EventUpsertOne) SetMaxAttendees(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetMaxAttendees(v)
	})
}

// AddMaxAttendees adds v to the "max_attendees" field.
func (u *EventUpsertOne) AddMaxAttendees(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddMaxAttendees(v)
	})
}

// UpdateMaxAttendees sets the "max_attendees" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateMaxAttendees() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMaxAttendees()
	})
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (u *EventUpsertOne) ClearMaxAttendees() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearMaxAttendees()
	})
}

// SetFeatured sets the "featured" field.
func (u *EventUpsertOne) SetFeatured(v bool) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateFeatured() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateFeatured()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *EventUpsertOne) SetLastSyncAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLastSyncAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *EventUpsertOne) ClearLastSyncAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertOne) SetUpdatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateUpdatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventUpsertOne.ID is not supported by MySQL driver. Use EventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(event.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *EventUpsertBulk) SetPlatform(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePlatform() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePlatform()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *EventUpsertBulk) SetPlatformID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePlatformID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePlatformID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *EventUpsertBulk) SetGroupID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateGroupID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateGroupID()
	})
}

// SetVenueID sets the "venue_id" field.
func (u *EventUpsertBulk) SetVenueID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetVenueID(v)
	})
}

// UpdateVenueID sets the "venue_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateVenueID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateVenueID()
	})
}

// ClearVenueID clears the value of the "venue_id" field.
func (u *EventUpsertBulk) ClearVenueID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearVenueID()
	})
}

// SetTitle sets the "title" field.
func (u *EventUpsertBulk) SetTitle(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateTitle() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *EventUpsertBulk) SetDescription(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateDescription() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EventUpsertBulk) ClearDescription() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearDescription()
	})
}

// SetEventURL sets the "event_url" field.
func (u *EventUpsertBulk) SetEventURL(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventURL(v)
	})
}

// UpdateEventURL sets the "event_url" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventURL() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventURL()
	})
}

// SetPhotoURL sets the "photo_url" field.
func (u *EventUpsertBulk) SetPhotoURL(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPhotoURL(v)
	})
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePhotoURL() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePhotoURL()
	})
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (u *EventUpsertBulk) ClearPhotoURL() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearPhotoURL()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EventUpsertBulk) SetStartTime(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStartTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EventUpsertBulk) SetEndTime(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEndTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *EventUpsertBulk) ClearEndTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearEndTime()
	})
}

// SetTimezone sets the "timezone" field.
func (u *EventUpsertBulk) SetTimezone(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateTimezone() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimezone()
	})
}

// SetDuration sets the "duration" field.
func (u *EventUpsertBulk) SetDuration(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateDuration() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *EventUpsertBulk) ClearDuration() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearDuration()
	})
}

// SetStatus sets the "status" field.
func (u *EventUpsertBulk) SetStatus(v event.Status) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStatus() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStatus()
	})
}

// SetEventType sets the "event_type" field.
func (u *EventUpsertBulk) SetEventType(v event.EventType) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventType()
	})
}

// SetRsvpCount sets the "rsvp_count" field.
func (u *EventUpsertBulk) SetRsvpCount(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRsvpCount(v)
	})
}

// AddRsvpCount adds v to the "rsvp_count" field.
func (u *EventUpsertBulk) AddRsvpCount(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddRsvpCount(v)
	})
}

// UpdateRsvpCount sets the "rsvp_count" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRsvpCount() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRsvpCount()
	})
}

// SetMaxAttendees sets the "max_attendees" field.
func (u *EventUpsertBulk) SetMaxAttendees(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetMaxAttendees(v)
	})
}

// AddMaxAttendees adds v to the "max_attendees" field.
func (u *EventUpsertBulk) AddMaxAttendees(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddMaxAttendees(v)
	})
}

// UpdateMaxAttendees sets the "max_attendees" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateMaxAttendees() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMaxAttendees()
	})
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (u *EventUpsertBulk) ClearMaxAttendees() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearMaxAttendees()
	})
}

// SetFeatured sets the "featured" field.
func (u *EventUpsertBulk) SetFeatured(v bool) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateFeatured() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateFeatured()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *EventUpsertBulk) SetLastSyncAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLastSyncAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *EventUpsertBulk) ClearLastSyncAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertBulk) SetUpdatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateUpdatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
