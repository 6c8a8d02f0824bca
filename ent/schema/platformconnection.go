package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlatformConnection binds a group to an upstream platform account.
// A group may have zero or many connections; the sync service walks the
// active ones.
type PlatformConnection struct {
	ent.Schema
}

// Fields of the PlatformConnection.
func (PlatformConnection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("connection_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("platform").
			Comment("Platform tag (meetup, eventbrite, luma, local)"),
		field.String("platform_id").
			Comment("Platform-side group/organizer identifier"),
		field.String("slug").
			Optional(),
		field.String("url").
			Optional().
			Nillable(),
		field.Bool("active").
			Default(true),
		field.Time("last_sync_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PlatformConnection.
func (PlatformConnection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("connections").
			Field("group_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PlatformConnection.
func (PlatformConnection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "platform", "platform_id").
			Unique(),
		index.Fields("platform", "active"),
	}
}
