package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncLog is one row per connection-sync attempt. Immutable after the
// attempt completes; it is the sync audit record.
type SyncLog struct {
	ent.Schema
}

// Fields of the SyncLog.
func (SyncLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sync_log_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("connection_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("platform").
			Immutable(),
		field.Enum("status").
			Values("running", "success", "failed").
			Default("running"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("events_created").
			Default(0),
		field.Int("events_updated").
			Default(0),
		field.Int("events_deleted").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the SyncLog.
func (SyncLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("sync_logs").
			Field("group_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SyncLog.
func (SyncLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "started_at"),
		index.Fields("status"),
	}
}
