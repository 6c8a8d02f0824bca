package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// BadgeClaimLink binds a secret code to a badge. Claims are limited by
// max_uses (nil means unlimited) and expires_at, enforced atomically.
type BadgeClaimLink struct {
	ent.Schema
}

// Fields of the BadgeClaimLink.
func (BadgeClaimLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("claim_link_id").
			Unique().
			Immutable(),
		field.String("code").
			Unique(),
		field.String("badge_id").
			Immutable(),
		field.Int("max_uses").
			Optional().
			Nillable(),
		field.Int("current_uses").
			Default(0),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.String("achievement_key").
			Optional().
			Nillable().
			Comment("Achievement forced to completed on claim"),
		field.String("event_type").
			Optional().
			Nillable().
			Comment("Custom domain event emitted on claim"),
		field.JSON("event_payload", map[string]interface{}{}).
			Optional().
			Comment("Merged into the custom event payload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BadgeClaimLink.
func (BadgeClaimLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("badge", Badge.Type).
			Ref("claim_links").
			Field("badge_id").
			Unique().
			Required().
			Immutable(),
	}
}
