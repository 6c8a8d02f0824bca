package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery is an immutable audit row, one per delivery attempt.
// Network errors record status_code 0 and a short error message.
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("delivery_id").
			Unique().
			Immutable(),
		field.String("webhook_id").
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Int("status_code").
			Immutable(),
		field.Text("response_body").
			Optional().
			Nillable().
			Immutable().
			Comment("Truncated to 4 KiB"),
		field.Int("attempt").
			Default(1).
			Immutable(),
		field.String("error_message").
			Optional().
			Nillable().
			Immutable(),
		field.Time("delivered_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WebhookDelivery.
func (WebhookDelivery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("webhook", Webhook.Type).
			Ref("deliveries").
			Field("webhook_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("webhook_id", "delivered_at"),
	}
}
