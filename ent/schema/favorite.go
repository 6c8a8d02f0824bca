package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Favorite marks a group as favorited by a user, unique per pair.
type Favorite struct {
	ent.Schema
}

// Fields of the Favorite.
func (Favorite) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("favorite_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Favorite.
func (Favorite) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("favorites").
			Field("group_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Favorite.
func (Favorite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "group_id").
			Unique(),
		index.Fields("group_id"),
	}
}
