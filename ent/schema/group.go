package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Group holds the schema definition for a managed community group.
type Group struct {
	ent.Schema
}

// Fields of the Group.
func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("slug").
			Unique().
			Comment("Primary URL slug"),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Int("member_count").
			Default(0),
		field.String("photo_url").
			Optional().
			Nillable(),
		field.Bool("display").
			Default(true).
			Comment("Visible in the public directory"),
		field.Bool("featured").
			Default(false),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("social_links", map[string]string{}).
			Optional(),
		field.Bool("sync_active").
			Default(true),
		field.Time("last_sync_at").
			Optional().
			Nillable(),
		field.String("last_sync_error").
			Optional().
			Nillable(),
		field.Int("max_badges").
			Default(10).
			Comment("Badge governance: how many badges the group may define"),
		field.Int("max_badge_points").
			Default(50).
			Comment("Badge governance: points ceiling per group badge"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Group.
func (Group) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("connections", PlatformConnection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("favorites", Favorite.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sync_logs", SyncLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Group.
func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("display", "featured"),
		index.Fields("sync_active"),
	}
}
