package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Badge holds the schema definition for a rewardable marker.
// A badge without a group_id is platform-wide and counts toward the
// user's score; group-scoped badges do not.
type Badge struct {
	ent.Schema
}

// Fields of the Badge.
func (Badge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("badge_id").
			Unique().
			Immutable(),
		field.String("slug").
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
		field.Int("points").
			Default(0),
		field.Int("sort_order").
			Default(0),
		field.Bool("hidden").
			Default(false).
			Comment("Excluded from the public badge directory"),
		field.String("group_id").
			Optional().
			Nillable().
			Comment("Owning group for group-scoped badges"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Badge.
func (Badge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user_badges", UserBadge.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("claim_links", BadgeClaimLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Badge.
func (Badge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
	}
}
