package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"stageline.io/stageline/internal/domain"
)

// User holds the schema definition for the User entity. The stored role is
// the profile attribute the access resolver reads; client-role users gain
// visibility only through their client_orgs memberships.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("display_name").
			NotEmpty(),
		field.String("password_hash").
			Sensitive().
			NotEmpty(),
		field.Enum("role").
			GoType(domain.Role("")).
			Default(string(domain.RoleClient)),
		field.String("tenant_account_id").
			Optional(), // set for workspace members
		field.Bool("active").
			Default(true),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("client_orgs", ClientOrg.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_account_id"),
	}
}
