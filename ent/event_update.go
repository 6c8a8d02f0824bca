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
	"github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/rsvp"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *EventUpdate) SetPlatform(v string) *EventUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePlatform(v *string) *EventUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *EventUpdate) SetPlatformID(v string) *EventUpdate {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePlatformID(v *string) *EventUpdate {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *EventUpdate) SetGroupID(v string) *EventUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableGroupID(v *string) *EventUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetVenueID sets the "venue_id" field.
func (_u *EventUpdate) SetVenueID(v string) *EventUpdate {
	_u.mutation.SetVenueID(v)
	return _u
}

// SetNillableVenueID sets the "venue_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableVenueID(v *string) *EventUpdate {
	if v != nil {
		_u.SetVenueID(*v)
	}
	return _u
}

// ClearVenueID clears the value of the "venue_id" field.
func (_u *EventUpdate) ClearVenueID() *EventUpdate {
	_u.mutation.ClearVenueID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdate) SetTitle(v string) *EventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTitle(v *string) *EventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EventUpdate) SetDescription(v string) *EventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EventUpdate) SetNillableDescription(v *string) *EventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EventUpdate) ClearDescription() *EventUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetEventURL sets the "event_url" field.
func (_u *EventUpdate) SetEventURL(v string) *EventUpdate {
	_u.mutation.SetEventURL(v)
	return _u
}

// SetNillableEventURL sets the "event_url" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventURL(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventURL(*v)
	}
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *EventUpdate) SetPhotoURL(v string) *EventUpdate {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePhotoURL(v *string) *EventUpdate {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *EventUpdate) ClearPhotoURL() *EventUpdate {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventUpdate) SetStartTime(v time.Time) *EventUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStartTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventUpdate) SetEndTime(v time.Time) *EventUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEndTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *EventUpdate) ClearEndTime() *EventUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventUpdate) SetTimezone(v string) *EventUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTimezone(v *string) *EventUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *EventUpdate) SetDuration(v string) *EventUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *EventUpdate) SetNillableDuration(v *string) *EventUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *EventUpdate) ClearDuration() *EventUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdate) SetStatus(v event.Status) *EventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStatus(v *event.Status) *EventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdate) SetEventType(v event.EventType) *EventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventType(v *event.EventType) *EventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetRsvpCount sets the "rsvp_count" field.
func (_u *EventUpdate) SetRsvpCount(v int) *EventUpdate {
	_u.mutation.ResetRsvpCount()
	_u.mutation.SetRsvpCount(v)
	return _u
}

// SetNillableRsvpCount sets the "rsvp_count" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRsvpCount(v *int) *EventUpdate {
	if v != nil {
		_u.SetRsvpCount(*v)
	}
	return _u
}

// AddRsvpCount adds value to the "rsvp_count" field.
func (_u *EventUpdate) AddRsvpCount(v int) *EventUpdate {
	_u.mutation.AddRsvpCount(v)
	return _u
}

// SetMaxAttendees sets the "max_attendees" field.
func (_u *EventUpdate) SetMaxAttendees(v int) *EventUpdate {
	_u.mutation.ResetMaxAttendees()
	_u.mutation.SetMaxAttendees(v)
	return _u
}

// SetNillableMaxAttendees sets the "max_attendees" field if the given value is not nil.
func (_u *EventUpdate) SetNillableMaxAttendees(v *int) *EventUpdate {
	if v != nil {
		_u.SetMaxAttendees(*v)
	}
	return _u
}

// AddMaxAttendees adds value to the "max_attendees" field.
func (_u *EventUpdate) AddMaxAttendees(v int) *EventUpdate {
	_u.mutation.AddMaxAttendees(v)
	return _u
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (_u *EventUpdate) ClearMaxAttendees() *EventUpdate {
	_u.mutation.ClearMaxAttendees()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *EventUpdate) SetFeatured(v bool) *EventUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *EventUpdate) SetNillableFeatured(v *bool) *EventUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *EventUpdate) SetLastSyncAt(v time.Time) *EventUpdate {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLastSyncAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *EventUpdate) ClearLastSyncAt() *EventUpdate {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *EventUpdate) SetGroup(v *Group) *EventUpdate {
	return _u.SetGroupID(v.ID)
}

// AddRsvpIDs adds the "rsvps" edge to the RSVP entity by IDs.
func (_u *EventUpdate) AddRsvpIDs(ids ...string) *EventUpdate {
	_u.mutation.AddRsvpIDs(ids...)
	return _u
}

// AddRsvps adds the "rsvps" edges to the RSVP entity.
func (_u *EventUpdate) AddRsvps(v ...*RSVP) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRsvpIDs(ids...)
}

// AddCheckinIDs adds the "checkins" edge to the Checkin entity by IDs.
func (_u *EventUpdate) AddCheckinIDs(ids ...string) *EventUpdate {
	_u.mutation.AddCheckinIDs(ids...)
	return _u
}

// AddCheckins adds the "checkins" edges to the Checkin entity.
func (_u *EventUpdate) AddCheckins(v ...*Checkin) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckinIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *EventUpdate) ClearGroup() *EventUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// ClearRsvps clears all "rsvps" edges to the RSVP entity.
func (_u *EventUpdate) ClearRsvps() *EventUpdate {
	_u.mutation.ClearRsvps()
	return _u
}

// RemoveRsvpIDs removes the "rsvps" edge to RSVP entities by IDs.
func (_u *EventUpdate) RemoveRsvpIDs(ids ...string) *EventUpdate {
	_u.mutation.RemoveRsvpIDs(ids...)
	return _u
}

// RemoveRsvps removes "rsvps" edges to RSVP entities.
func (_u *EventUpdate) RemoveRsvps(v ...*RSVP) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRsvpIDs(ids...)
}

// ClearCheckins clears all "checkins" edges to the Checkin entity.
func (_u *EventUpdate) ClearCheckins() *EventUpdate {
	_u.mutation.ClearCheckins()
	return _u
}

// RemoveCheckinIDs removes the "checkins" edge to Checkin entities by IDs.
func (_u *EventUpdate) RemoveCheckinIDs(ids ...string) *EventUpdate {
	_u.mutation.RemoveCheckinIDs(ids...)
	return _u
}

// RemoveCheckins removes "checkins" edges to Checkin entities.
func (_u *EventUpdate) RemoveCheckins(v ...*Checkin) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckinIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := event.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Event.event_type": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.group"`)
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(event.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(event.FieldPlatformID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VenueID(); ok {
		_spec.SetField(event.FieldVenueID, field.TypeString, value)
	}
	if _u.mutation.VenueIDCleared() {
		_spec.ClearField(event.FieldVenueID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(event.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(event.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EventURL(); ok {
		_spec.SetField(event.FieldEventURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(event.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(event.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(event.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(event.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(event.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(event.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RsvpCount(); ok {
		_spec.SetField(event.FieldRsvpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRsvpCount(); ok {
		_spec.AddField(event.FieldRsvpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttendees(); ok {
		_spec.SetField(event.FieldMaxAttendees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttendees(); ok {
		_spec.AddField(event.FieldMaxAttendees, field.TypeInt, value)
	}
	if _u.mutation.MaxAttendeesCleared() {
		_spec.ClearField(event.FieldMaxAttendees, field.TypeInt)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(event.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(event.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(event.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GroupCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RsvpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRsvpsIDs(); len(nodes) > 0 && !_u.mutation.RsvpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RsvpsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckinsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckinsIDs(); len(nodes) > 0 && !_u.mutation.CheckinsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckinsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetPlatform sets the "platform" field.
func (_u *EventUpdateOne) SetPlatform(v string) *EventUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePlatform(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *EventUpdateOne) SetPlatformID(v string) *EventUpdateOne {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePlatformID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *EventUpdateOne) SetGroupID(v string) *EventUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableGroupID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetVenueID sets the "venue_id" field.
func (_u *EventUpdateOne) SetVenueID(v string) *EventUpdateOne {
	_u.mutation.SetVenueID(v)
	return _u
}

// SetNillableVenueID sets the "venue_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableVenueID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetVenueID(*v)
	}
	return _u
}

// ClearVenueID clears the value of the "venue_id" field.
func (_u *EventUpdateOne) ClearVenueID() *EventUpdateOne {
	_u.mutation.ClearVenueID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdateOne) SetTitle(v string) *EventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTitle(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EventUpdateOne) SetDescription(v string) *EventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableDescription(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EventUpdateOne) ClearDescription() *EventUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetEventURL sets the "event_url" field.
func (_u *EventUpdateOne) SetEventURL(v string) *EventUpdateOne {
	_u.mutation.SetEventURL(v)
	return _u
}

// SetNillableEventURL sets the "event_url" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventURL(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventURL(*v)
	}
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *EventUpdateOne) SetPhotoURL(v string) *EventUpdateOne {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePhotoURL(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (_u *EventUpdateOne) ClearPhotoURL() *EventUpdateOne {
	_u.mutation.ClearPhotoURL()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventUpdateOne) SetStartTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStartTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventUpdateOne) SetEndTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEndTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *EventUpdateOne) ClearEndTime() *EventUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *EventUpdateOne) SetTimezone(v string) *EventUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTimezone(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *EventUpdateOne) SetDuration(v string) *EventUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableDuration(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *EventUpdateOne) ClearDuration() *EventUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdateOne) SetStatus(v event.Status) *EventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStatus(v *event.Status) *EventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdateOne) SetEventType(v event.EventType) *EventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventType(v *event.EventType) *EventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetRsvpCount sets the "rsvp_count" field.
func (_u *EventUpdateOne) SetRsvpCount(v int) *EventUpdateOne {
	_u.mutation.ResetRsvpCount()
	_u.mutation.SetRsvpCount(v)
	return _u
}

// SetNillableRsvpCount sets the "rsvp_count" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRsvpCount(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetRsvpCount(*v)
	}
	return _u
}

// AddRsvpCount adds value to the "rsvp_count" field.
func (_u *EventUpdateOne) AddRsvpCount(v int) *EventUpdateOne {
	_u.mutation.AddRsvpCount(v)
	return _u
}

// SetMaxAttendees sets the "max_attendees" field.
func (_u *EventUpdateOne) SetMaxAttendees(v int) *EventUpdateOne {
	_u.mutation.ResetMaxAttendees()
	_u.mutation.SetMaxAttendees(v)
	return _u
}

// SetNillableMaxAttendees sets the "max_attendees" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableMaxAttendees(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetMaxAttendees(*v)
	}
	return _u
}

// AddMaxAttendees adds value to the "max_attendees" field.
func (_u *EventUpdateOne) AddMaxAttendees(v int) *EventUpdateOne {
	_u.mutation.AddMaxAttendees(v)
	return _u
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (_u *EventUpdateOne) ClearMaxAttendees() *EventUpdateOne {
	_u.mutation.ClearMaxAttendees()
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *EventUpdateOne) SetFeatured(v bool) *EventUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableFeatured(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *EventUpdateOne) SetLastSyncAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLastSyncAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *EventUpdateOne) ClearLastSyncAt() *EventUpdateOne {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *EventUpdateOne) SetGroup(v *Group) *EventUpdateOne {
	return _u.SetGroupID(v.ID)
}

// AddRsvpIDs adds the "rsvps" edge to the RSVP entity by IDs.
func (_u *EventUpdateOne) AddRsvpIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddRsvpIDs(ids...)
	return _u
}

// AddRsvps adds the "rsvps" edges to the RSVP entity.
func (_u *EventUpdateOne) AddRsvps(v ...*RSVP) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRsvpIDs(ids...)
}

// AddCheckinIDs adds the "checkins" edge to the Checkin entity by IDs.
func (_u *EventUpdateOne) AddCheckinIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddCheckinIDs(ids...)
	return _u
}

// AddCheckins adds the "checkins" edges to the Checkin entity.
func (_u *EventUpdateOne) AddCheckins(v ...*Checkin) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckinIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *EventUpdateOne) ClearGroup() *EventUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// ClearRsvps clears all "rsvps" edges to the RSVP entity.
func (_u *EventUpdateOne) ClearRsvps() *EventUpdateOne {
	_u.mutation.ClearRsvps()
	return _u
}

// RemoveRsvpIDs removes the "rsvps" edge to RSVP entities by IDs.
func (_u *EventUpdateOne) RemoveRsvpIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemoveRsvpIDs(ids...)
	return _u
}

// RemoveRsvps removes "rsvps" edges to RSVP entities.
func (_u *EventUpdateOne) RemoveRsvps(v ...*RSVP) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRsvpIDs(ids...)
}

// ClearCheckins clears all "checkins" edges to the Checkin entity.
func (_u *EventUpdateOne) ClearCheckins() *EventUpdateOne {
	_u.mutation.ClearCheckins()
	return _u
}

// RemoveCheckinIDs removes the "checkins" edge to Checkin entities by IDs.
func (_u *EventUpdateOne) RemoveCheckinIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemoveCheckinIDs(ids...)
	return _u
}

// RemoveCheckins removes "checkins" edges to Checkin entities.
func (_u *EventUpdateOne) RemoveCheckins(v ...*Checkin) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckinIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := event.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Event.event_type": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.group"`)
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(event.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(event.FieldPlatformID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VenueID(); ok {
		_spec.SetField(event.FieldVenueID, field.TypeString, value)
	}
	if _u.mutation.VenueIDCleared() {
		_spec.ClearField(event.FieldVenueID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(event.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(event.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EventURL(); ok {
		_spec.SetField(event.FieldEventURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(event.FieldPhotoURL, field.TypeString, value)
	}
	if _u.mutation.PhotoURLCleared() {
		_spec.ClearField(event.FieldPhotoURL, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(event.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(event.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(event.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(event.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RsvpCount(); ok {
		_spec.SetField(event.FieldRsvpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRsvpCount(); ok {
		_spec.AddField(event.FieldRsvpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttendees(); ok {
		_spec.SetField(event.FieldMaxAttendees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttendees(); ok {
		_spec.AddField(event.FieldMaxAttendees, field.TypeInt, value)
	}
	if _u.mutation.MaxAttendeesCleared() {
		_spec.ClearField(event.FieldMaxAttendees, field.TypeInt)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(event.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(event.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(event.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GroupCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RsvpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRsvpsIDs(); len(nodes) > 0 && !_u.mutation.RsvpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RsvpsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckinsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckinsIDs(); len(nodes) > 0 && !_u.mutation.CheckinsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckinsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
