// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"stageline.io/stageline/ent/clientorg"
)

// ClientOrg is the model entity for the ClientOrg schema.
type ClientOrg struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TenantAccountID holds the value of the "tenant_account_id" field.
	TenantAccountID string `json:"tenant_account_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Archived holds the value of the "archived" field.
	Archived bool `json:"archived,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientOrgQuery when eager-loading is set.
	Edges        ClientOrgEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientOrgEdges holds the relations/edges for other nodes in the graph.
type ClientOrgEdges struct {
	// Users holds the value of the users edge.
	Users []*User `json:"users,omitempty"`
	// Projects holds the value of the projects edge.
	Projects []*Project `json:"projects,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e ClientOrgEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[0] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// ProjectsOrErr returns the Projects value or an error if the edge
// was not loaded in eager-loading.
func (e ClientOrgEdges) ProjectsOrErr() ([]*Project, error) {
	if e.loadedTypes[1] {
		return e.Projects, nil
	}
	return nil, &NotLoadedError{edge: "projects"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientOrg) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientorg.FieldArchived:
			values[i] = new(sql.NullBool)
		case clientorg.FieldID, clientorg.FieldTenantAccountID, clientorg.FieldName:
			values[i] = new(sql.NullString)
		case clientorg.FieldCreatedAt, clientorg.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientOrg fields.
func (_m *ClientOrg) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientorg.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case clientorg.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clientorg.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clientorg.FieldTenantAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_account_id", values[i])
			} else if value.Valid {
				_m.TenantAccountID = value.String
			}
		case clientorg.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case clientorg.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClientOrg.
// This includes values selected through modifiers, order, etc.
func (_m *ClientOrg) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsers queries the "users" edge of the ClientOrg entity.
func (_m *ClientOrg) QueryUsers() *UserQuery {
	return NewClientOrgClient(_m.config).QueryUsers(_m)
}

// QueryProjects queries the "projects" edge of the ClientOrg entity.
func (_m *ClientOrg) QueryProjects() *ProjectQuery {
	return NewClientOrgClient(_m.config).QueryProjects(_m)
}

// Update returns a builder for updating this ClientOrg.
// Note that you need to call ClientOrg.Unwrap() before calling this method if this ClientOrg
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientOrg) Update() *ClientOrgUpdateOne {
	return NewClientOrgClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientOrg entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientOrg) Unwrap() *ClientOrg {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClientOrg is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientOrg) String() string {
	var builder strings.Builder
	builder.WriteString("ClientOrg(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tenant_account_id=")
	builder.WriteString(_m.TenantAccountID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteByte(')')
	return builder.String()
}

// ClientOrgs is a parsable slice of ClientOrg.
type ClientOrgs []*ClientOrg
