// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/event"
)

// Checkin is the model entity for the Checkin schema.
type Checkin struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Check-in code used, when checked in by code
	CodeID *string `json:"code_id,omitempty"`
	// CheckedInAt holds the value of the "checked_in_at" field.
	CheckedInAt time.Time `json:"checked_in_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckinQuery when eager-loading is set.
	Edges        CheckinEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckinEdges holds the relations/edges for other nodes in the graph.
type CheckinEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckinEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkin) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkin.FieldID, checkin.FieldEventID, checkin.FieldUserID, checkin.FieldCodeID:
			values[i] = new(sql.NullString)
		case checkin.FieldCheckedInAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkin fields.
func (_m *Checkin) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkin.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkin.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case checkin.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case checkin.FieldCodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code_id", values[i])
			} else if value.Valid {
				_m.CodeID = new(string)
				*_m.CodeID = value.String
			}
		case checkin.FieldCheckedInAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checked_in_at", values[i])
			} else if value.Valid {
				_m.CheckedInAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkin.
// This includes values selected through modifiers, order, etc.
func (_m *Checkin) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the Checkin entity.
func (_m *Checkin) QueryEvent() *EventQuery {
	return NewCheckinClient(_m.config).QueryEvent(_m)
}

// Update returns a builder for updating this Checkin.
// Note that you need to call Checkin.Unwrap() before calling this method if this Checkin
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkin) Update() *CheckinUpdateOne {
	return NewCheckinClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkin entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkin) Unwrap() *Checkin {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkin is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkin) String() string {
	var builder strings.Builder
	builder.WriteString("Checkin(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.CodeID; v != nil {
		builder.WriteString("code_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("checked_in_at=")
	builder.WriteString(_m.CheckedInAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Checkins is a parsable slice of Checkin.
type Checkins []*Checkin
