package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserOnboardingStep records a user's completion of one onboarding step.
type UserOnboardingStep struct {
	ent.Schema
}

// Fields of the UserOnboardingStep.
func (UserOnboardingStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_step_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("step_key").
			Immutable(),
		field.Time("completed_at").
			Default(time.Now),
	}
}

// Indexes of the UserOnboardingStep.
func (UserOnboardingStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "step_key").
			Unique(),
	}
}
