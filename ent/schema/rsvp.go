package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RSVP holds one user's reservation state for one event, unique per
// (event_id, user_id). Waitlist promotion is a conditional update keyed on
// status so concurrent cancels cannot double-promote.
type RSVP struct {
	ent.Schema
}

// Annotations of the RSVP.
func (RSVP) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rsvps"},
	}
}

// Fields of the RSVP.
func (RSVP) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rsvp_id").
			Unique().
			Immutable(),
		field.String("event_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			Values("confirmed", "waitlisted", "cancelled").
			Default("confirmed"),
		field.Time("rsvp_at").
			Default(time.Now),
		field.Int("waitlist_position").
			Optional().
			Nillable(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

// Edges of the RSVP.
func (RSVP) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("rsvps").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RSVP.
func (RSVP) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "user_id").
			Unique(),
		index.Fields("event_id", "status", "waitlist_position"),
		index.Fields("user_id"),
	}
}
