package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity:
// in-app inbox rows written when a project changes stage. Read state is the
// only mutable field; expired rows are removed by a periodic cleanup job.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_id").
			NotEmpty().
			Immutable(),
		field.String("kind").
			NotEmpty().
			Immutable(), // e.g. "stage_change"
		field.String("title").
			NotEmpty().
			Immutable(),
		field.String("body").
			Optional().
			Immutable(),
		field.String("resource_type").
			Optional().
			Immutable(), // e.g. "project"
		field.String("resource_id").
			Optional().
			Immutable(),
		field.Bool("read").
			Default(false),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "read"),
		index.Fields("created_at"),
	}
}
