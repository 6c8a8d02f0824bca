// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/rsvp"
)

// RSVP is the model entity for the RSVP schema.
type RSVP struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status rsvp.Status `json:"status,omitempty"`
	// RsvpAt holds the value of the "rsvp_at" field.
	RsvpAt time.Time `json:"rsvp_at,omitempty"`
	// WaitlistPosition holds the value of the "waitlist_position" field.
	WaitlistPosition *int `json:"waitlist_position,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RSVPQuery when eager-loading is set.
	Edges        RSVPEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RSVPEdges holds the relations/edges for other nodes in the graph.
type RSVPEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RSVPEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RSVP) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rsvp.FieldWaitlistPosition:
			values[i] = new(sql.NullInt64)
		case rsvp.FieldID, rsvp.FieldEventID, rsvp.FieldUserID, rsvp.FieldStatus:
			values[i] = new(sql.NullString)
		case rsvp.FieldRsvpAt, rsvp.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RSVP fields.
func (_m *RSVP) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rsvp.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rsvp.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case rsvp.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case rsvp.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = rsvp.Status(value.String)
			}
		case rsvp.FieldRsvpAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rsvp_at", values[i])
			} else if value.Valid {
				_m.RsvpAt = value.Time
			}
		case rsvp.FieldWaitlistPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field waitlist_position", values[i])
			} else if value.Valid {
				_m.WaitlistPosition = new(int)
				*_m.WaitlistPosition = int(value.Int64)
			}
		case rsvp.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RSVP.
// This includes values selected through modifiers, order, etc.
func (_m *RSVP) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the RSVP entity.
func (_m *RSVP) QueryEvent() *EventQuery {
	return NewRSVPClient(_m.config).QueryEvent(_m)
}

// Update returns a builder for updating this RSVP.
// Note that you need to call RSVP.Unwrap() before calling this method if this RSVP
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RSVP) Update() *RSVPUpdateOne {
	return NewRSVPClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RSVP entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RSVP) Unwrap() *RSVP {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RSVP is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RSVP) String() string {
	var builder strings.Builder
	builder.WriteString("RSVP(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("rsvp_at=")
	builder.WriteString(_m.RsvpAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.WaitlistPosition; v != nil {
		builder.WriteString("waitlist_position=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RSVPs is a parsable slice of RSVP.
type RSVPs []*RSVP
