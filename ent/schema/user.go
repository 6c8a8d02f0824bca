package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for an identity principal.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("username").
			Unique(),
		field.String("email").
			Optional().
			Nillable(),
		field.String("display_name").
			Optional().
			Nillable(),
		field.Enum("role").
			Values("user", "admin", "superadmin").
			Default("user"),
		field.Bool("public").
			Default(true).
			Comment("Profile visible in the public directory"),
		field.Text("bio").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
