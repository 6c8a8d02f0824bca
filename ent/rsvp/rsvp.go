// Code generated by ent, DO NOT EDIT.

package rsvp

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rsvp type in the database.
	Label = "rsvp"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rsvp_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRsvpAt holds the string denoting the rsvp_at field in the database.
	FieldRsvpAt = "rsvp_at"
	// FieldWaitlistPosition holds the string denoting the waitlist_position field in the database.
	FieldWaitlistPosition = "waitlist_position"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// Table holds the table name of the rsvp in the database.
	Table = "rsvps"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "rsvps"
	// EventInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventInverseTable = "events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
)

// Columns holds all SQL columns for rsvp fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldUserID,
	FieldStatus,
	FieldRsvpAt,
	FieldWaitlistPosition,
	FieldCancelledAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRsvpAt holds the default value on creation for the "rsvp_at" field.
	DefaultRsvpAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusConfirmed is the default value of the Status enum.
const DefaultStatus = StatusConfirmed

// Status values.
const (
	StatusConfirmed  Status = "confirmed"
	StatusWaitlisted Status = "waitlisted"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusConfirmed, StatusWaitlisted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("rsvp: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RSVP queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRsvpAt orders the results by the rsvp_at field.
func ByRsvpAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRsvpAt, opts...).ToFunc()
}

// ByWaitlistPosition orders the results by the waitlist_position field.
func ByWaitlistPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaitlistPosition, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByEventField orders the results by event field.
func ByEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventStep(), sql.OrderByField(field, opts...))
	}
}
func newEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
	)
}
