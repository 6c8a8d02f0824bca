package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkin records a user's attendance at an event, unique per
// (event_id, user_id).
type Checkin struct {
	ent.Schema
}

// Fields of the Checkin.
func (Checkin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkin_id").
			Unique().
			Immutable(),
		field.String("event_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("code_id").
			Optional().
			Nillable().
			Comment("Check-in code used, when checked in by code"),
		field.Time("checked_in_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkin.
func (Checkin) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("checkins").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkin.
func (Checkin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "user_id").
			Unique(),
	}
}
