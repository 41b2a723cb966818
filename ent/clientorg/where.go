// Code generated by ent, DO NOT EDIT.

package clientorg

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"stageline.io/stageline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantAccountID applies equality check predicate on the "tenant_account_id" field. It's identical to TenantAccountIDEQ.
func TenantAccountID(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldTenantAccountID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldName, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldArchived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLTE(FieldUpdatedAt, v))
}

// TenantAccountIDEQ applies the EQ predicate on the "tenant_account_id" field.
func TenantAccountIDEQ(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldTenantAccountID, v))
}

// TenantAccountIDNEQ applies the NEQ predicate on the "tenant_account_id" field.
func TenantAccountIDNEQ(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNEQ(FieldTenantAccountID, v))
}

// TenantAccountIDIn applies the In predicate on the "tenant_account_id" field.
func TenantAccountIDIn(vs ...string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldIn(FieldTenantAccountID, vs...))
}

// TenantAccountIDNotIn applies the NotIn predicate on the "tenant_account_id" field.
func TenantAccountIDNotIn(vs ...string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNotIn(FieldTenantAccountID, vs...))
}

// TenantAccountIDGT applies the GT predicate on the "tenant_account_id" field.
func TenantAccountIDGT(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGT(FieldTenantAccountID, v))
}

// TenantAccountIDGTE applies the GTE predicate on the "tenant_account_id" field.
func TenantAccountIDGTE(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGTE(FieldTenantAccountID, v))
}

// TenantAccountIDLT applies the LT predicate on the "tenant_account_id" field.
func TenantAccountIDLT(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLT(FieldTenantAccountID, v))
}

// TenantAccountIDLTE applies the LTE predicate on the "tenant_account_id" field.
func TenantAccountIDLTE(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLTE(FieldTenantAccountID, v))
}

// TenantAccountIDContains applies the Contains predicate on the "tenant_account_id" field.
func TenantAccountIDContains(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldContains(FieldTenantAccountID, v))
}

// TenantAccountIDHasPrefix applies the HasPrefix predicate on the "tenant_account_id" field.
func TenantAccountIDHasPrefix(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldHasPrefix(FieldTenantAccountID, v))
}

// TenantAccountIDHasSuffix applies the HasSuffix predicate on the "tenant_account_id" field.
func TenantAccountIDHasSuffix(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldHasSuffix(FieldTenantAccountID, v))
}

// TenantAccountIDEqualFold applies the EqualFold predicate on the "tenant_account_id" field.
func TenantAccountIDEqualFold(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEqualFold(FieldTenantAccountID, v))
}

// TenantAccountIDContainsFold applies the ContainsFold predicate on the "tenant_account_id" field.
func TenantAccountIDContainsFold(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldContainsFold(FieldTenantAccountID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldContainsFold(FieldName, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.ClientOrg {
	return predicate.ClientOrg(sql.FieldNEQ(FieldArchived, v))
}

// HasUsers applies the HasEdge predicate on the "users" edge.
func HasUsers() predicate.ClientOrg {
	return predicate.ClientOrg(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, UsersTable, UsersPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsersWith applies the HasEdge predicate on the "users" edge with a given conditions (other predicates).
func HasUsersWith(preds ...predicate.User) predicate.ClientOrg {
	return predicate.ClientOrg(func(s *sql.Selector) {
		step := newUsersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProjects applies the HasEdge predicate on the "projects" edge.
func HasProjects() predicate.ClientOrg {
	return predicate.ClientOrg(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProjectsTable, ProjectsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectsWith applies the HasEdge predicate on the "projects" edge with a given conditions (other predicates).
func HasProjectsWith(preds ...predicate.Project) predicate.ClientOrg {
	return predicate.ClientOrg(func(s *sql.Selector) {
		step := newProjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientOrg) predicate.ClientOrg {
	return predicate.ClientOrg(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientOrg) predicate.ClientOrg {
	return predicate.ClientOrg(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientOrg) predicate.ClientOrg {
	return predicate.ClientOrg(sql.NotPredicates(p))
}
