// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/ent/stageevent"
	"stageline.io/stageline/internal/domain"
)

// StageEvent is the model entity for the StageEvent schema.
type StageEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// FromStatus holds the value of the "from_status" field.
	FromStatus *domain.Status `json:"from_status,omitempty"`
	// ToStatus holds the value of the "to_status" field.
	ToStatus domain.Status `json:"to_status,omitempty"`
	// ChangedBy holds the value of the "changed_by" field.
	ChangedBy string `json:"changed_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageEventQuery when eager-loading is set.
	Edges        StageEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageEventEdges holds the relations/edges for other nodes in the graph.
type StageEventEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageEventEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stageevent.FieldID, stageevent.FieldProjectID, stageevent.FieldFromStatus, stageevent.FieldToStatus, stageevent.FieldChangedBy:
			values[i] = new(sql.NullString)
		case stageevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageEvent fields.
func (_m *StageEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stageevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stageevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stageevent.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case stageevent.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				_m.FromStatus = new(domain.Status)
				*_m.FromStatus = domain.Status(value.String)
			}
		case stageevent.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				_m.ToStatus = domain.Status(value.String)
			}
		case stageevent.FieldChangedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value.Valid {
				_m.ChangedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StageEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the StageEvent entity.
func (_m *StageEvent) QueryProject() *ProjectQuery {
	return NewStageEventClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this StageEvent.
// Note that you need to call StageEvent.Unwrap() before calling this method if this StageEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageEvent) Update() *StageEventUpdateOne {
	return NewStageEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageEvent) Unwrap() *StageEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StageEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.FromStatus; v != nil {
		builder.WriteString("from_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToStatus))
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(_m.ChangedBy)
	builder.WriteByte(')')
	return builder.String()
}

// StageEvents is a parsable slice of StageEvent.
type StageEvents []*StageEvent
