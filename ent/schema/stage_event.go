package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"stageline.io/stageline/internal/domain"
)

// StageEvent holds the schema definition for the StageEvent entity: one
// immutable audit record per accepted status transition. Rows are append-only;
// no code path updates or deletes them. from_status is null only for a
// synthetic first entry.
type StageEvent struct {
	ent.Schema
}

// Mixin of the StageEvent.
func (StageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the StageEvent.
func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty().
			Immutable(),
		field.Enum("from_status").
			GoType(domain.Status("")).
			Optional().
			Nillable().
			Immutable(),
		field.Enum("to_status").
			GoType(domain.Status("")).
			Immutable(),
		field.String("changed_by").
			Optional().
			Immutable(),
	}
}

// Edges of the StageEvent.
func (StageEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("stage_events").
			Unique().
			Required().
			Immutable().
			Field("project_id"),
	}
}

// Indexes of the StageEvent.
func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
		index.Fields("created_at"),
	}
}
