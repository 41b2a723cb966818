// Code generated by ent, DO NOT EDIT.

package stageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"stageline.io/stageline/ent/predicate"
	"stageline.io/stageline/internal/domain"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldProjectID, v))
}

// ChangedBy applies equality check predicate on the "changed_by" field. It's identical to ChangedByEQ.
func ChangedBy(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldChangedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldProjectID, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v domain.Status) predicate.StageEvent {
	vc := v
	return predicate.StageEvent(sql.FieldEQ(FieldFromStatus, vc))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v domain.Status) predicate.StageEvent {
	vc := v
	return predicate.StageEvent(sql.FieldNEQ(FieldFromStatus, vc))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...domain.Status) predicate.StageEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.StageEvent(sql.FieldIn(FieldFromStatus, v...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...domain.Status) predicate.StageEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.StageEvent(sql.FieldNotIn(FieldFromStatus, v...))
}

// FromStatusIsNil applies the IsNil predicate on the "from_status" field.
func FromStatusIsNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIsNull(FieldFromStatus))
}

// FromStatusNotNil applies the NotNil predicate on the "from_status" field.
func FromStatusNotNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotNull(FieldFromStatus))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v domain.Status) predicate.StageEvent {
	vc := v
	return predicate.StageEvent(sql.FieldEQ(FieldToStatus, vc))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v domain.Status) predicate.StageEvent {
	vc := v
	return predicate.StageEvent(sql.FieldNEQ(FieldToStatus, vc))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...domain.Status) predicate.StageEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.StageEvent(sql.FieldIn(FieldToStatus, v...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...domain.Status) predicate.StageEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.StageEvent(sql.FieldNotIn(FieldToStatus, v...))
}

// ChangedByEQ applies the EQ predicate on the "changed_by" field.
func ChangedByEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldChangedBy, v))
}

// ChangedByNEQ applies the NEQ predicate on the "changed_by" field.
func ChangedByNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldChangedBy, v))
}

// ChangedByIn applies the In predicate on the "changed_by" field.
func ChangedByIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldChangedBy, vs...))
}

// ChangedByNotIn applies the NotIn predicate on the "changed_by" field.
func ChangedByNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldChangedBy, vs...))
}

// ChangedByGT applies the GT predicate on the "changed_by" field.
func ChangedByGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldChangedBy, v))
}

// ChangedByGTE applies the GTE predicate on the "changed_by" field.
func ChangedByGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldChangedBy, v))
}

// ChangedByLT applies the LT predicate on the "changed_by" field.
func ChangedByLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldChangedBy, v))
}

// ChangedByLTE applies the LTE predicate on the "changed_by" field.
func ChangedByLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldChangedBy, v))
}

// ChangedByContains applies the Contains predicate on the "changed_by" field.
func ChangedByContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldChangedBy, v))
}

// ChangedByHasPrefix applies the HasPrefix predicate on the "changed_by" field.
func ChangedByHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldChangedBy, v))
}

// ChangedByHasSuffix applies the HasSuffix predicate on the "changed_by" field.
func ChangedByHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldChangedBy, v))
}

// ChangedByIsNil applies the IsNil predicate on the "changed_by" field.
func ChangedByIsNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIsNull(FieldChangedBy))
}

// ChangedByNotNil applies the NotNil predicate on the "changed_by" field.
func ChangedByNotNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotNull(FieldChangedBy))
}

// ChangedByEqualFold applies the EqualFold predicate on the "changed_by" field.
func ChangedByEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldChangedBy, v))
}

// ChangedByContainsFold applies the ContainsFold predicate on the "changed_by" field.
func ChangedByContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldChangedBy, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.StageEvent {
	return predicate.StageEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.StageEvent {
	return predicate.StageEvent(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.NotPredicates(p))
}
