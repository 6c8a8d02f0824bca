package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserBadge pairs a user with an awarded badge, unique per pair.
type UserBadge struct {
	ent.Schema
}

// Fields of the UserBadge.
func (UserBadge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_badge_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("badge_id").
			Immutable(),
		field.Time("awarded_at").
			Default(time.Now).
			Immutable(),
		field.String("awarded_by").
			Optional().
			Nillable().
			Comment("User id of the awarder, when manually awarded"),
	}
}

// Edges of the UserBadge.
func (UserBadge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("badge", Badge.Type).
			Ref("user_badges").
			Field("badge_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserBadge.
func (UserBadge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "badge_id").
			Unique(),
		index.Fields("user_id"),
	}
}
