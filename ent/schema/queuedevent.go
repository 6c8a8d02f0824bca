package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueuedEvent is one durable domain-event envelope awaiting dispatch.
// The dispatcher claims pending rows in batches with FOR UPDATE SKIP LOCKED
// and marks them delivered after the handler pass (at-least-once delivery;
// handlers are idempotent).
type QueuedEvent struct {
	ent.Schema
}

// Fields of the QueuedEvent.
func (QueuedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type"),
		field.JSON("payload", map[string]interface{}{}),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("event_timestamp").
			Default(time.Now).
			Comment("Stamped by the emitter, preserved through dispatch"),
		field.Enum("status").
			Values("pending", "processing", "delivered", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod id of the claiming dispatcher"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the QueuedEvent.
func (QueuedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "id"),
		index.Fields("event_type"),
	}
}
