package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"stageline.io/stageline/internal/domain"
)

// Project holds the schema definition for the Project entity: a unit of
// delivery work for a client organization. The status column is written only
// by the transition engine; its value always equals the to_status of the
// latest StageEvent, or the creation default when no event exists yet.
type Project struct {
	ent.Schema
}

// Mixin of the Project.
func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("client_id").
			NotEmpty().
			Immutable(),
		field.String("tenant_account_id").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			GoType(domain.Status("")).
			Default(string(domain.DefaultStatus)),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.Bool("archived").
			Default(false),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client_org", ClientOrg.Type).
			Ref("projects").
			Unique().
			Required().
			Immutable().
			Field("client_id"),
		edge.To("stage_events", StageEvent.Type),
		edge.To("invoices", Invoice.Type),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_account_id"),
		index.Fields("client_id"),
		index.Fields("status"),
		index.Fields("due_date"),
	}
}
