// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/venue"
)

// VenueUpdate is the builder for updating Venue entities.
type VenueUpdate struct {
	config
	hooks    []Hook
	mutation *VenueMutation
}

// Where appends a list predicates to the VenueUpdate builder.
func (_u *VenueUpdate) Where(ps ...predicate.Venue) *VenueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VenueUpdate) SetName(v string) *VenueUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableName(v *string) *VenueUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStreet sets the "street" field.
func (_u *VenueUpdate) SetStreet(v string) *VenueUpdate {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableStreet(v *string) *VenueUpdate {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// ClearStreet clears the value of the "street" field.
func (_u *VenueUpdate) ClearStreet() *VenueUpdate {
	_u.mutation.ClearStreet()
	return _u
}

// SetCity sets the "city" field.
func (_u *VenueUpdate) SetCity(v string) *VenueUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableCity(v *string) *VenueUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *VenueUpdate) ClearCity() *VenueUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetRegion sets the "region" field.
func (_u *VenueUpdate) SetRegion(v string) *VenueUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableRegion(v *string) *VenueUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *VenueUpdate) ClearRegion() *VenueUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *VenueUpdate) SetPostalCode(v string) *VenueUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *VenueUpdate) SetNillablePostalCode(v *string) *VenueUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *VenueUpdate) ClearPostalCode() *VenueUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *VenueUpdate) SetCountry(v string) *VenueUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableCountry(v *string) *VenueUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *VenueUpdate) ClearCountry() *VenueUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetLat sets the "lat" field.
func (_u *VenueUpdate) SetLat(v float64) *VenueUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableLat(v *float64) *VenueUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *VenueUpdate) AddLat(v float64) *VenueUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *VenueUpdate) ClearLat() *VenueUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLon sets the "lon" field.
func (_u *VenueUpdate) SetLon(v float64) *VenueUpdate {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableLon(v *float64) *VenueUpdate {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *VenueUpdate) AddLon(v float64) *VenueUpdate {
	_u.mutation.AddLon(v)
	return _u
}

// ClearLon clears the value of the "lon" field.
func (_u *VenueUpdate) ClearLon() *VenueUpdate {
	_u.mutation.ClearLon()
	return _u
}

// SetIsOnline sets the "is_online" field.
func (_u *VenueUpdate) SetIsOnline(v bool) *VenueUpdate {
	_u.mutation.SetIsOnline(v)
	return _u
}

// SetNillableIsOnline sets the "is_online" field if the given value is not nil.
func (_u *VenueUpdate) SetNillableIsOnline(v *bool) *VenueUpdate {
	if v != nil {
		_u.SetIsOnline(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *VenueUpdate) SetPlatform(v string) *VenueUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *VenueUpdate) SetNillablePlatform(v *string) *VenueUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformVenueID sets the "platform_venue_id" field.
func (_u *VenueUpdate) SetPlatformVenueID(v string) *VenueUpdate {
	_u.mutation.SetPlatformVenueID(v)
	return _u
}

// SetNillablePlatformVenueID sets the "platform_venue_id" field if the given value is not nil.
func (_u *VenueUpdate) SetNillablePlatformVenueID(v *string) *VenueUpdate {
	if v != nil {
		_u.SetPlatformVenueID(*v)
	}
	return _u
}

// Mutation returns the VenueMutation object of the builder.
func (_u *VenueUpdate) Mutation() *VenueMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VenueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VenueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VenueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VenueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VenueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(venue.Table, venue.Columns, sqlgraph.NewFieldSpec(venue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(venue.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(venue.FieldStreet, field.TypeString, value)
	}
	if _u.mutation.StreetCleared() {
		_spec.ClearField(venue.FieldStreet, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(venue.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(venue.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(venue.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(venue.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(venue.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(venue.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(venue.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(venue.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(venue.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(venue.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(venue.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(venue.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(venue.FieldLon, field.TypeFloat64, value)
	}
	if _u.mutation.LonCleared() {
		_spec.ClearField(venue.FieldLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOnline(); ok {
		_spec.SetField(venue.FieldIsOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(venue.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformVenueID(); ok {
		_spec.SetField(venue.FieldPlatformVenueID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{venue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VenueUpdateOne is the builder for updating a single Venue entity.
type VenueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VenueMutation
}

// SetName sets the "name" field.
func (_u *VenueUpdateOne) SetName(v string) *VenueUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableName(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStreet sets the "street" field.
func (_u *VenueUpdateOne) SetStreet(v string) *VenueUpdateOne {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableStreet(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// ClearStreet clears the value of the "street" field.
func (_u *VenueUpdateOne) ClearStreet() *VenueUpdateOne {
	_u.mutation.ClearStreet()
	return _u
}

// SetCity sets the "city" field.
func (_u *VenueUpdateOne) SetCity(v string) *VenueUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableCity(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *VenueUpdateOne) ClearCity() *VenueUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetRegion sets the "region" field.
func (_u *VenueUpdateOne) SetRegion(v string) *VenueUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableRegion(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *VenueUpdateOne) ClearRegion() *VenueUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *VenueUpdateOne) SetPostalCode(v string) *VenueUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillablePostalCode(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *VenueUpdateOne) ClearPostalCode() *VenueUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *VenueUpdateOne) SetCountry(v string) *VenueUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableCountry(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *VenueUpdateOne) ClearCountry() *VenueUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetLat sets the "lat" field.
func (_u *VenueUpdateOne) SetLat(v float64) *VenueUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableLat(v *float64) *VenueUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *VenueUpdateOne) AddLat(v float64) *VenueUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *VenueUpdateOne) ClearLat() *VenueUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLon sets the "lon" field.
func (_u *VenueUpdateOne) SetLon(v float64) *VenueUpdateOne {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableLon(v *float64) *VenueUpdateOne {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *VenueUpdateOne) AddLon(v float64) *VenueUpdateOne {
	_u.mutation.AddLon(v)
	return _u
}

// ClearLon clears the value of the "lon" field.
func (_u *VenueUpdateOne) ClearLon() *VenueUpdateOne {
	_u.mutation.ClearLon()
	return _u
}

// SetIsOnline sets the "is_online" field.
func (_u *VenueUpdateOne) SetIsOnline(v bool) *VenueUpdateOne {
	_u.mutation.SetIsOnline(v)
	return _u
}

// SetNillableIsOnline sets the "is_online" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillableIsOnline(v *bool) *VenueUpdateOne {
	if v != nil {
		_u.SetIsOnline(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *VenueUpdateOne) SetPlatform(v string) *VenueUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillablePlatform(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformVenueID sets the "platform_venue_id" field.
func (_u *VenueUpdateOne) SetPlatformVenueID(v string) *VenueUpdateOne {
	_u.mutation.SetPlatformVenueID(v)
	return _u
}

// SetNillablePlatformVenueID sets the "platform_venue_id" field if the given value is not nil.
func (_u *VenueUpdateOne) SetNillablePlatformVenueID(v *string) *VenueUpdateOne {
	if v != nil {
		_u.SetPlatformVenueID(*v)
	}
	return _u
}

// Mutation returns the VenueMutation object of the builder.
func (_u *VenueUpdateOne) Mutation() *VenueMutation {
	return _u.mutation
}

// Where appends a list predicates to the VenueUpdate builder.
func (_u *VenueUpdateOne) Where(ps ...predicate.Venue) *VenueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VenueUpdateOne) Select(field string, fields ...string) *VenueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Venue entity.
func (_u *VenueUpdateOne) Save(ctx context.Context) (*Venue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VenueUpdateOne) SaveX(ctx context.Context) *Venue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VenueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VenueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VenueUpdateOne) sqlSave(ctx context.Context) (_node *Venue, err error) {
	_spec := sqlgraph.NewUpdateSpec(venue.Table, venue.Columns, sqlgraph.NewFieldSpec(venue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Venue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, venue.FieldID)
		for _, f := range fields {
			if !venue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != venue.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(venue.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(venue.FieldStreet, field.TypeString, value)
	}
	if _u.mutation.StreetCleared() {
		_spec.ClearField(venue.FieldStreet, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(venue.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(venue.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(venue.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(venue.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(venue.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(venue.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(venue.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(venue.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(venue.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(venue.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(venue.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(venue.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(venue.FieldLon, field.TypeFloat64, value)
	}
	if _u.mutation.LonCleared() {
		_spec.ClearField(venue.FieldLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOnline(); ok {
		_spec.SetField(venue.FieldIsOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(venue.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformVenueID(); ok {
		_spec.SetField(venue.FieldPlatformVenueID, field.TypeString, value)
	}
	_node = &Venue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{venue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
