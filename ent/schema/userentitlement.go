package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserEntitlement records a named permission granted to a user,
// typically auto-granted by achievement completion.
type UserEntitlement struct {
	ent.Schema
}

// Fields of the UserEntitlement.
func (UserEntitlement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entitlement_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("entitlement").
			Immutable(),
		field.Time("granted_at").
			Default(time.Now),
	}
}

// Indexes of the UserEntitlement.
func (UserEntitlement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "entitlement").
			Unique(),
	}
}
