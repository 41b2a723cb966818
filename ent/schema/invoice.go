package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"stageline.io/stageline/internal/domain"
)

// Invoice holds the schema definition for the Invoice entity: the financial
// counterpart of a project, independently life-cycled. This core only reads
// invoices; billing workflows own their mutation.
type Invoice struct {
	ent.Schema
}

// Mixin of the Invoice.
func (Invoice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Invoice.
func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			GoType(domain.InvoiceStatus("")).
			Default(string(domain.InvoiceDraft)),
		field.Float("amount").
			Min(0), // tenant currency
		field.Time("issued_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Invoice.
func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("invoices").
			Unique().
			Required().
			Immutable().
			Field("project_id"),
	}
}

// Indexes of the Invoice.
func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("status"),
		index.Fields("issued_at"),
	}
}
