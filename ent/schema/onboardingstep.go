package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OnboardingStep defines one step of the user onboarding checklist.
// A step auto-completes when a domain event matching event_key is seen
// for the user.
type OnboardingStep struct {
	ent.Schema
}

// Fields of the OnboardingStep.
func (OnboardingStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("key").
			Unique(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("event_key").
			Comment("Domain event type that completes this step"),
		field.Int("sort_order").
			Default(0),
		field.Bool("enabled").
			Default(true),
	}
}

// Indexes of the OnboardingStep.
func (OnboardingStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_key"),
	}
}
