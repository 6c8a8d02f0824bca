// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/venue"
)

// VenueCreate is the builder for creating a Venue entity.
type VenueCreate struct {
	config
	mutation *VenueMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *VenueCreate) SetName(v string) *VenueCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStreet sets the "street" field.
func (_c *VenueCreate) SetStreet(v string) *VenueCreate {
	_c.mutation.SetStreet(v)
	return _c
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_c *VenueCreate) SetNillableStreet(v *string) *VenueCreate {
	if v != nil {
		_c.SetStreet(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *VenueCreate) SetCity(v string) *VenueCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *VenueCreate) SetNillableCity(v *string) *VenueCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *VenueCreate) SetRegion(v string) *VenueCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *VenueCreate) SetNillableRegion(v *string) *VenueCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *VenueCreate) SetPostalCode(v string) *VenueCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *VenueCreate) SetNillablePostalCode(v *string) *VenueCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *VenueCreate) SetCountry(v string) *VenueCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *VenueCreate) SetNillableCountry(v *string) *VenueCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *VenueCreate) SetLat(v float64) *VenueCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *VenueCreate) SetNillableLat(v *float64) *VenueCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLon sets the "lon" field.
func (_c *VenueCreate) SetLon(v float64) *VenueCreate {
	_c.mutation.SetLon(v)
	return _c
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_c *VenueCreate) SetNillableLon(v *float64) *VenueCreate {
	if v != nil {
		_c.SetLon(*v)
	}
	return _c
}

// SetIsOnline sets the "is_online" field.
func (_c *VenueCreate) SetIsOnline(v bool) *VenueCreate {
	_c.mutation.SetIsOnline(v)
	return _c
}

// SetNillableIsOnline sets the "is_online" field if the given value is not nil.
func (_c *VenueCreate) SetNillableIsOnline(v *bool) *VenueCreate {
	if v != nil {
		_c.SetIsOnline(*v)
	}
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *VenueCreate) SetPlatform(v string) *VenueCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPlatformVenueID sets the "platform_venue_id" field.
func (_c *VenueCreate) SetPlatformVenueID(v string) *VenueCreate {
	_c.mutation.SetPlatformVenueID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *VenueCreate) SetID(v string) *VenueCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VenueMutation object of the builder.
func (_c *VenueCreate) Mutation() *VenueMutation {
	return _c.mutation
}

// Save creates the Venue in the database.
func (_c *VenueCreate) Save(ctx context.Context) (*Venue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VenueCreate) SaveX(ctx context.Context) *Venue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VenueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VenueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VenueCreate) defaults() {
	if _, ok := _c.mutation.IsOnline(); !ok {
		v := venue.DefaultIsOnline
		_c.mutation.SetIsOnline(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VenueCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Venue.name"`)}
	}
	if _, ok := _c.mutation.IsOnline(); !ok {
		return &ValidationError{Name: "is_online", err: errors.New(`ent: missing required field "Venue.is_online"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Venue.platform"`)}
	}
	if _, ok := _c.mutation.PlatformVenueID(); !ok {
		return &ValidationError{Name: "platform_venue_id", err: errors.New(`ent: missing required field "Venue.platform_venue_id"`)}
	}
	return nil
}

func (_c *VenueCreate) sqlSave(ctx context.Context) (*Venue, error) {
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
			return nil, fmt.Errorf("unexpected Venue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VenueCreate) createSpec() (*Venue, *sqlgraph.CreateSpec) {
	var (
		_node = &Venue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(venue.Table, sqlgraph.NewFieldSpec(venue.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(venue.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Street(); ok {
		_spec.SetField(venue.FieldStreet, field.TypeString, value)
		_node.Street = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(venue.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(venue.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(venue.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = &value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(venue.FieldCountry, field.TypeString, value)
		_node.Country = &value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(venue.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lon(); ok {
		_spec.SetField(venue.FieldLon, field.TypeFloat64, value)
		_node.Lon = &value
	}
	if value, ok := _c.mutation.IsOnline(); ok {
		_spec.SetField(venue.FieldIsOnline, field.TypeBool, value)
		_node.IsOnline = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(venue.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PlatformVenueID(); ok {
		_spec.SetField(venue.FieldPlatformVenueID, field.TypeString, value)
		_node.PlatformVenueID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Venue.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VenueUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *VenueCreate) OnConflict(opts ...sql.ConflictOption) *VenueUpsertOne {
	_c.conflict = opts
	return &VenueUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Venue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VenueCreate) OnConflictColumns(columns ...string) *VenueUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VenueUpsertOne{
		create: _c,
	}
}

type (
	// VenueUpsertOne is the builder for "upsert"-ing
	//  one Venue node.
	VenueUpsertOne struct {
		create *VenueCreate
	}

	// VenueUpsert is the "OnConflict" setter.
	VenueUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *VenueUpsert) SetName(v string) *VenueUpsert {
	u.Set(venue.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VenueUpsert) UpdateName() *VenueUpsert {
	u.SetExcluded(venue.FieldName)
	return u
}

// SetStreet sets the "street" field.
func (u *VenueUpsert) SetStreet(v string) *VenueUpsert {
	u.Set(venue.FieldStreet, v)
	return u
}

// UpdateStreet sets the "street" field to the value that was provided on create.
func (u *VenueUpsert) UpdateStreet() *VenueUpsert {
	u.SetExcluded(venue.FieldStreet)
	return u
}

// ClearStreet clears the value of the "street" field.
func (u *VenueUpsert) ClearStreet() *VenueUpsert {
	u.SetNull(venue.FieldStreet)
	return u
}

// SetCity sets the "city" field.
func (u *VenueUpsert) SetCity(v string) *VenueUpsert {
	u.Set(venue.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *VenueUpsert) UpdateCity() *VenueUpsert {
	u.SetExcluded(venue.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *VenueUpsert) ClearCity() *VenueUpsert {
	u.SetNull(venue.FieldCity)
	return u
}

// SetRegion sets the "region" field.
func (u *VenueUpsert) SetRegion(v string) *VenueUpsert {
	u.Set(venue.FieldRegion, v)
	return u
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *VenueUpsert) UpdateRegion() *VenueUpsert {
	u.SetExcluded(venue.FieldRegion)
	return u
}

// ClearRegion clears the value of the "region" field.
func (u *VenueUpsert) ClearRegion() *VenueUpsert {
	u.SetNull(venue.FieldRegion)
	return u
}

// SetPostalCode sets the "postal_code" field.
func (u *VenueUpsert) SetPostalCode(v string) *VenueUpsert {
	u.Set(venue.FieldPostalCode, v)
	return u
}

// UpdatePostalCode sets the "postal_code" field to the value that was provided on create.
func (u *VenueUpsert) UpdatePostalCode() *VenueUpsert {
	u.SetExcluded(venue.FieldPostalCode)
	return u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (u *VenueUpsert) ClearPostalCode() *VenueUpsert {
	u.SetNull(venue.FieldPostalCode)
	return u
}

// SetCountry sets the "country" field.
func (u *VenueUpsert) SetCountry(v string) *VenueUpsert {
	u.Set(venue.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *VenueUpsert) UpdateCountry() *VenueUpsert {
	u.SetExcluded(venue.FieldCountry)
	return u
}

// ClearCountry clears the value of the "country" field.
func (u *VenueUpsert) ClearCountry() *VenueUpsert {
	u.SetNull(venue.FieldCountry)
	return u
}

// SetLat sets the "lat" field.
func (u *VenueUpsert) SetLat(v float64) *VenueUpsert {
	u.Set(venue.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *VenueUpsert) UpdateLat() *VenueUpsert {
	u.SetExcluded(venue.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *VenueUpsert) AddLat(v float64) *VenueUpsert {
	u.Add(venue.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *VenueUpsert) ClearLat() *VenueUpsert {
	u.SetNull(venue.FieldLat)
	return u
}

// SetLon sets the "lon" field.
func (u *VenueUpsert) SetLon(v float64) *VenueUpsert {
	u.Set(venue.FieldLon, v)
	return u
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *VenueUpsert) UpdateLon() *VenueUpsert {
	u.SetExcluded(venue.FieldLon)
	return u
}

// AddLon adds v to the "lon" field.
func (u *VenueUpsert) AddLon(v float64) *VenueUpsert {
	u.Add(venue.FieldLon, v)
	return u
}

// ClearLon clears the value of the "lon" field.
func (u *VenueUpsert) ClearLon() *VenueUpsert {
	u.SetNull(venue.FieldLon)
	return u
}

// SetIsOnline sets the "is_online" field.
func (u *VenueUpsert) SetIsOnline(v bool) *VenueUpsert {
	u.Set(venue.FieldIsOnline, v)
	return u
}

// UpdateIsOnline sets the "is_online" field to the value that was provided on create.
func (u *VenueUpsert) UpdateIsOnline() *VenueUpsert {
	u.SetExcluded(venue.FieldIsOnline)
	return u
}

// SetPlatform sets the "platform" field.
func (u *VenueUpsert) SetPlatform(v string) *VenueUpsert {
	u.Set(venue.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *VenueUpsert) UpdatePlatform() *VenueUpsert {
	u.SetExcluded(venue.FieldPlatform)
	return u
}

// SetPlatformVenueID sets the "platform_venue_id" field.
func (u *VenueUpsert) SetPlatformVenueID(v string) *VenueUpsert {
	u.Set(venue.FieldPlatformVenueID, v)
	return u
}

// UpdatePlatformVenueID sets the "platform_venue_id" field to the value that was provided on create.
func (u *VenueUpsert) UpdatePlatformVenueID() *VenueUpsert {
	u.SetExcluded(venue.FieldPlatformVenueID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Venue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(venue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VenueUpsertOne) UpdateNewValues() *VenueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(venue.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Venue.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VenueUpsertOne) Ignore() *VenueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VenueUpsertOne) DoNothing() *VenueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VenueCreate.OnConflict
// documentation for more info.
func (u *VenueUpsertOne) Update(set func(*VenueUpsert)) *VenueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VenueUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *VenueUpsertOne) SetName(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateName() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateName()
	})
}

// SetStreet sets the "street" field.
func (u *VenueUpsertOne) SetStreet(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetStreet(v)
	})
}

// UpdateStreet sets the "street" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateStreet() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateStreet()
	})
}

// ClearStreet clears the value of the "street" field.
func (u *VenueUpsertOne) ClearStreet() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.ClearStreet()
	})
}

// SetCity sets the "city" field.
func (u *VenueUpsertOne) SetCity(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateCity() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *VenueUpsertOne) ClearCity() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.ClearCity()
	})
}

// SetRegion sets the "region" field.
func (u *VenueUpsertOne) SetRegion(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateRegion() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateRegion()
	})
}

// ClearRegion clears the value of the "region" field.
func (u *VenueUpsertOne) ClearRegion() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.ClearRegion()
	})
}

// SetPostalCode sets the "postal_code" field.
func (u *VenueUpsertOne) SetPostalCode(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetPostalCode(v)
	})
}

// UpdatePostalCode sets the "postal_code" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdatePostalCode() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdatePostalCode()
	})
}

// ClearPostalCode clears the value of the "postal_code" field.
func (u *VenueUpsertOne) ClearPostalCode() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.ClearPostalCode()
	})
}

// SetCountry sets the "country" field.
func (u *VenueUpsertOne) SetCountry(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateCountry() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *VenueUpsertOne) ClearCountry() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.ClearCountry()
	})
}

// SetLat sets the "lat" field.
func (u *VenueUpsertOne) SetLat(v float64) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *VenueUpsertOne) AddLat(v float64) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateLat() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *VenueUpsertOne) ClearLat() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.ClearLat()
	})
}

// SetLon sets the "lon" field.
func (u *VenueUpsertOne) SetLon(v float64) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetLon(v)
	})
}

// AddLon adds v to the "lon" field.
func (u *VenueUpsertOne) AddLon(v float64) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.AddLon(v)
	})
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateLon() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateLon()
	})
}

// ClearLon clears the value of the "lon" field.
func (u *VenueUpsertOne) ClearLon() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.ClearLon()
	})
}

// SetIsOnline sets the "is_online" field.
func (u *VenueUpsertOne) SetIsOnline(v bool) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetIsOnline(v)
	})
}

// UpdateIsOnline sets the "is_online" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdateIsOnline() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateIsOnline()
	})
}

// SetPlatform sets the "platform" field.
func (u *VenueUpsertOne) SetPlatform(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdatePlatform() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdatePlatform()
	})
}

// SetPlatformVenueID sets the "platform_venue_id" field.
func (u *VenueUpsertOne) SetPlatformVenueID(v string) *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.SetPlatformVenueID(v)
	})
}

// UpdatePlatformVenueID sets the "platform_venue_id" field to the value that was provided on create.
func (u *VenueUpsertOne) UpdatePlatformVenueID() *VenueUpsertOne {
	return u.Update(func(s *VenueUpsert) {
		s.UpdatePlatformVenueID()
	})
}

// Exec executes the query.
func (u *VenueUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VenueCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VenueUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VenueUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VenueUpsertOne.ID is not supported by MySQL driver. Use VenueUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VenueUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VenueCreateBulk is the builder for creating many Venue entities in bulk.
type VenueCreateBulk struct {
	config
	err      error
	builders []*VenueCreate
	conflict []sql.ConflictOption
}

// Save creates the Venue entities in the database.
func (_c *VenueCreateBulk) Save(ctx context.Context) ([]*Venue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Venue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VenueMutation)
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
func (_c *VenueCreateBulk) SaveX(ctx context.Context) []*Venue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VenueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VenueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Venue.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VenueUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *VenueCreateBulk) OnConflict(opts ...sql.ConflictOption) *VenueUpsertBulk {
	_c.conflict = opts
	return &VenueUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Venue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VenueCreateBulk) OnConflictColumns(columns ...string) *VenueUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VenueUpsertBulk{
		create: _c,
	}
}

// VenueUpsertBulk is the builder for "upsert"-ing
// a bulk of Venue nodes.
type VenueUpsertBulk struct {
	create *VenueCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Venue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(venue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VenueUpsertBulk) UpdateNewValues() *VenueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(venue.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Venue.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VenueUpsertBulk) Ignore() *VenueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VenueUpsertBulk) DoNothing() *VenueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VenueCreateBulk.OnConflict
// documentation for more info.
func (u *VenueUpsertBulk) Update(set func(*VenueUpsert)) *VenueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VenueUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *VenueUpsertBulk) SetName(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateName() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateName()
	})
}

// SetStreet sets the "street" field.
func (u *VenueUpsertBulk) SetStreet(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetStreet(v)
	})
}

// UpdateStreet sets the "street" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateStreet() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateStreet()
	})
}

// ClearStreet clears the value of the "street" field.
func (u *VenueUpsertBulk) ClearStreet() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.ClearStreet()
	})
}

// SetCity sets the "city" field.
func (u *VenueUpsertBulk) SetCity(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateCity() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *VenueUpsertBulk) ClearCity() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.ClearCity()
	})
}

// SetRegion sets the "region" field.
func (u *VenueUpsertBulk) SetRegion(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateRegion() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateRegion()
	})
}

// ClearRegion clears the value of the "region" field.
func (u *VenueUpsertBulk) ClearRegion() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.ClearRegion()
	})
}

// SetPostalCode sets the "postal_code" field.
func (u *VenueUpsertBulk) SetPostalCode(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetPostalCode(v)
	})
}

// UpdatePostalCode sets the "postal_code" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdatePostalCode() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdatePostalCode()
	})
}

// ClearPostalCode clears the value of the "postal_code" field.
func (u *VenueUpsertBulk) ClearPostalCode() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.ClearPostalCode()
	})
}

// SetCountry sets the "country" field.
func (u *VenueUpsertBulk) SetCountry(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateCountry() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *VenueUpsertBulk) ClearCountry() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.ClearCountry()
	})
}

// SetLat sets the "lat" field.
func (u *VenueUpsertBulk) SetLat(v float64) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *VenueUpsertBulk) AddLat(v float64) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateLat() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *VenueUpsertBulk) ClearLat() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.ClearLat()
	})
}

// SetLon sets the "lon" field.
func (u *VenueUpsertBulk) SetLon(v float64) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetLon(v)
	})
}

// AddLon adds v to the "lon" field.
func (u *VenueUpsertBulk) AddLon(v float64) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.AddLon(v)
	})
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateLon() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateLon()
	})
}

// ClearLon clears the value of the "lon" field.
func (u *VenueUpsertBulk) ClearLon() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.ClearLon()
	})
}

// SetIsOnline sets the "is_online" field.
func (u *VenueUpsertBulk) SetIsOnline(v bool) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetIsOnline(v)
	})
}

// UpdateIsOnline sets the "is_online" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdateIsOnline() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdateIsOnline()
	})
}

// SetPlatform sets the "platform" field.
func (u *VenueUpsertBulk) SetPlatform(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdatePlatform() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdatePlatform()
	})
}

// SetPlatformVenueID sets the "platform_venue_id" field.
func (u *VenueUpsertBulk) SetPlatformVenueID(v string) *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.SetPlatformVenueID(v)
	})
}

// UpdatePlatformVenueID sets the "platform_venue_id" field to the value that was provided on create.
func (u *VenueUpsertBulk) UpdatePlatformVenueID() *VenueUpsertBulk {
	return u.Update(func(s *VenueUpsert) {
		s.UpdatePlatformVenueID()
	})
}

// Exec executes the query.
func (u *VenueUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VenueCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VenueCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VenueUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
