package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Venue holds the schema definition for a normalized event location.
// Venues are de-duplicated by (platform, platform_venue_id); a single
// synthetic "Online event" venue is shared per platform.
type Venue struct {
	ent.Schema
}

// Fields of the Venue.
func (Venue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("venue_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("street").
			Optional().
			Nillable(),
		field.String("city").
			Optional().
			Nillable(),
		field.String("region").
			Optional().
			Nillable(),
		field.String("postal_code").
			Optional().
			Nillable(),
		field.String("country").
			Optional().
			Nillable(),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lon").
			Optional().
			Nillable(),
		field.Bool("is_online").
			Default(false),
		field.String("platform"),
		field.String("platform_venue_id"),
	}
}

// Indexes of the Venue.
func (Venue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "platform_venue_id").
			Unique(),
	}
}
