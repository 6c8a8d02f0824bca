package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckinCode is a short code attendees enter to check in at an event.
// (event_id, code) is unique; max_uses is enforced atomically.
type CheckinCode struct {
	ent.Schema
}

// Fields of the CheckinCode.
func (CheckinCode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkin_code_id").
			Unique().
			Immutable(),
		field.String("event_id").
			Immutable(),
		field.String("code").
			Immutable(),
		field.Int("max_uses").
			Optional().
			Nillable(),
		field.Int("current_uses").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CheckinCode.
func (CheckinCode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "code").
			Unique(),
	}
}
