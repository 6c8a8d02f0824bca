// Code generated by ent, DO NOT EDIT.

package userbadge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the userbadge type in the database.
	Label = "user_badge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_badge_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBadgeID holds the string denoting the badge_id field in the database.
	FieldBadgeID = "badge_id"
	// FieldAwardedAt holds the string denoting the awarded_at field in the database.
	FieldAwardedAt = "awarded_at"
	// FieldAwardedBy holds the string denoting the awarded_by field in the database.
	FieldAwardedBy = "awarded_by"
	// EdgeBadge holds the string denoting the badge edge name in mutations.
	EdgeBadge = "badge"
	// BadgeFieldID holds the string denoting the ID field of the Badge.
	BadgeFieldID = "badge_id"
	// Table holds the table name of the userbadge in the database.
	Table = "user_badges"
	// BadgeTable is the table that holds the badge relation/edge.
	BadgeTable = "user_badges"
	// BadgeInverseTable is the table name for the Badge entity.
	// It exists in this package in order to avoid circular dependency with the "badge" package.
	BadgeInverseTable = "badges"
	// BadgeColumn is the table column denoting the badge relation/edge.
	BadgeColumn = "badge_id"
)

// Columns holds all SQL columns for userbadge fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBadgeID,
	FieldAwardedAt,
	FieldAwardedBy,
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
	// DefaultAwardedAt holds the default value on creation for the "awarded_at" field.
	DefaultAwardedAt func() time.Time
)

// OrderOption defines the ordering options for the UserBadge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBadgeID orders the results by the badge_id field.
func ByBadgeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeID, opts...).ToFunc()
}

// ByAwardedAt orders the results by the awarded_at field.
func ByAwardedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedAt, opts...).ToFunc()
}

// ByAwardedBy orders the results by the awarded_by field.
func ByAwardedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedBy, opts...).ToFunc()
}

// ByBadgeField orders the results by badge field.
func ByBadgeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBadgeStep(), sql.OrderByField(field, opts...))
	}
}
func newBadgeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BadgeInverseTable, BadgeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BadgeTable, BadgeColumn),
	)
}
