package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClientOrg holds the schema definition for the ClientOrg entity: an external
// customer organization owned by a tenant account, with its own
// restricted-visibility principals.
type ClientOrg struct {
	ent.Schema
}

// Mixin of the ClientOrg.
func (ClientOrg) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ClientOrg.
func (ClientOrg) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_account_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Bool("archived").
			Default(false),
	}
}

// Edges of the ClientOrg.
func (ClientOrg) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("users", User.Type).
			Ref("client_orgs"),
		edge.To("projects", Project.Type),
	}
}

// Indexes of the ClientOrg.
func (ClientOrg) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_account_id"),
	}
}
