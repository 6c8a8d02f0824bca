// Code generated by ent, DO NOT EDIT.

package synclog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the synclog type in the database.
	Label = "sync_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sync_log_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldConnectionID holds the string denoting the connection_id field in the database.
	FieldConnectionID = "connection_id"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldEventsCreated holds the string denoting the events_created field in the database.
	FieldEventsCreated = "events_created"
	// FieldEventsUpdated holds the string denoting the events_updated field in the database.
	FieldEventsUpdated = "events_updated"
	// FieldEventsDeleted holds the string denoting the events_deleted field in the database.
	FieldEventsDeleted = "events_deleted"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeGroup holds the string denoting the group edge name in mutations.
	EdgeGroup = "group"
	// GroupFieldID holds the string denoting the ID field of the Group.
	GroupFieldID = "group_id"
	// Table holds the table name of the synclog in the database.
	Table = "sync_logs"
	// GroupTable is the table that holds the group relation/edge.
	GroupTable = "sync_logs"
	// GroupInverseTable is the table name for the Group entity.
	// It exists in this package in order to avoid circular dependency with the "group" package.
	GroupInverseTable = "groups"
	// GroupColumn is the table column denoting the group relation/edge.
	GroupColumn = "group_id"
)

// Columns holds all SQL columns for synclog fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldConnectionID,
	FieldPlatform,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldEventsCreated,
	FieldEventsUpdated,
	FieldEventsDeleted,
	FieldErrorMessage,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultEventsCreated holds the default value on creation for the "events_created" field.
	DefaultEventsCreated int
	// DefaultEventsUpdated holds the default value on creation for the "events_updated" field.
	DefaultEventsUpdated int
	// DefaultEventsDeleted holds the default value on creation for the "events_deleted" field.
	DefaultEventsDeleted int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusSuccess, StatusFailed:
		return nil
	default:
		return fmt.Errorf("synclog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SyncLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByConnectionID orders the results by the connection_id field.
func ByConnectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectionID, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByEventsCreated orders the results by the events_created field.
func ByEventsCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsCreated, opts...).ToFunc()
}

// ByEventsUpdated orders the results by the events_updated field.
func ByEventsUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsUpdated, opts...).ToFunc()
}

// ByEventsDeleted orders the results by the events_deleted field.
func ByEventsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsDeleted, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByGroupField orders the results by group field.
func ByGroupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupStep(), sql.OrderByField(field, opts...))
	}
}
func newGroupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupInverseTable, GroupFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
	)
}
