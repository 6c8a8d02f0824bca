package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement holds the schema definition for a progress definition.
// Achievements are triggered by a domain event type, optionally filtered by
// a JSON condition list (AND logic), and progress in counter or gauge mode.
type Achievement struct {
	ent.Schema
}

// Fields of the Achievement.
func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("achievement_id").
			Unique().
			Immutable(),
		field.String("key").
			Unique(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("icon").
			Optional().
			Nillable(),
		field.String("color").
			Optional().
			Nillable(),
		field.Int("target_value"),
		field.String("badge_slug").
			Optional().
			Nillable().
			Comment("Badge auto-awarded on completion"),
		field.String("entitlement").
			Optional().
			Nillable().
			Comment("Entitlement auto-granted on completion"),
		field.Int("points").
			Default(0),
		field.String("event_type").
			Optional().
			Nillable().
			Comment("Domain event type that advances progress"),
		field.JSON("conditions", []map[string]interface{}{}).
			Optional().
			Comment("AND-logic predicates evaluated against the event payload"),
		field.Enum("progress_mode").
			Values("counter", "gauge").
			Default("counter"),
		field.String("gauge_field").
			Optional().
			Nillable().
			Comment("Dot-path into the payload for gauge mode"),
		field.Bool("hidden").
			Default(false),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Achievement.
func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type", "enabled"),
	}
}
