package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementProgress tracks a user's progress toward one achievement,
// unique per (user_id, achievement_key). completed_at latches at most once;
// progress updates only apply while completed_at IS NULL.
type AchievementProgress struct {
	ent.Schema
}

// Annotations of the AchievementProgress.
func (AchievementProgress) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "achievement_progress"},
	}
}

// Fields of the AchievementProgress.
func (AchievementProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("progress_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("achievement_key").
			Immutable(),
		field.Int("current_value").
			Default(0),
		field.Int("target_value"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AchievementProgress.
func (AchievementProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "achievement_key").
			Unique(),
		index.Fields("achievement_key"),
	}
}
