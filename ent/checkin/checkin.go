// Code generated by ent, DO NOT EDIT.

package checkin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkin type in the database.
	Label = "checkin"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkin_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCodeID holds the string denoting the code_id field in the database.
	FieldCodeID = "code_id"
	// FieldCheckedInAt holds the string denoting the checked_in_at field in the database.
	FieldCheckedInAt = "checked_in_at"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// Table holds the table name of the checkin in the database.
	Table = "checkins"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "checkins"
	// EventInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventInverseTable = "events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
)

// Columns holds all SQL columns for checkin fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldUserID,
	FieldCodeID,
	FieldCheckedInAt,
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
	// DefaultCheckedInAt holds the default value on creation for the "checked_in_at" field.
	DefaultCheckedInAt func() time.Time
)

// OrderOption defines the ordering options for the Checkin queries.
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

// ByCodeID orders the results by the code_id field.
func ByCodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodeID, opts...).ToFunc()
}

// ByCheckedInAt orders the results by the checked_in_at field.
func ByCheckedInAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckedInAt, opts...).ToFunc()
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
