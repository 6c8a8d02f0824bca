package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for a canonical event occurrence.
// (platform, platform_id) is the unique identity used by sync upserts.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("platform"),
		field.String("platform_id"),
		field.String("group_id"),
		field.String("venue_id").
			Optional().
			Nillable(),
		field.String("title"),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("event_url"),
		field.String("photo_url").
			Optional().
			Nillable(),
		field.Time("start_time"),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.String("timezone").
			Default("UTC").
			Comment("IANA timezone name"),
		field.String("duration").
			Optional().
			Nillable().
			Comment("ISO-8601 duration"),
		field.Enum("status").
			Values("active", "cancelled", "draft").
			Default("active"),
		field.Enum("event_type").
			Values("physical", "online", "hybrid").
			Default("physical"),
		field.Int("rsvp_count").
			Default(0),
		field.Int("max_attendees").
			Optional().
			Nillable(),
		field.Bool("featured").
			Default(false),
		field.Time("last_sync_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("events").
			Field("group_id").
			Unique().
			Required(),
		edge.To("rsvps", RSVP.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkins", Checkin.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "platform_id").
			Unique(),
		index.Fields("group_id", "status", "start_time"),
		index.Fields("start_time"),
	}
}
