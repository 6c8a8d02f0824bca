// Code generated by ent, DO NOT EDIT.

package badgeclaimlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the badgeclaimlink type in the database.
	Label = "badge_claim_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "claim_link_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldBadgeID holds the string denoting the badge_id field in the database.
	FieldBadgeID = "badge_id"
	// FieldMaxUses holds the string denoting the max_uses field in the database.
	FieldMaxUses = "max_uses"
	// FieldCurrentUses holds the string denoting the current_uses field in the database.
	FieldCurrentUses = "current_uses"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldAchievementKey holds the string denoting the achievement_key field in the database.
	FieldAchievementKey = "achievement_key"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldEventPayload holds the string denoting the event_payload field in the database.
	FieldEventPayload = "event_payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBadge holds the string denoting the badge edge name in mutations.
	EdgeBadge = "badge"
	// BadgeFieldID holds the string denoting the ID field of the Badge.
	BadgeFieldID = "badge_id"
	// Table holds the table name of the badgeclaimlink in the database.
	Table = "badge_claim_links"
	// BadgeTable is the table that holds the badge relation/edge.
	BadgeTable = "badge_claim_links"
	// BadgeInverseTable is the table name for the Badge entity.
	// It exists in this package in order to avoid circular dependency with the "badge" package.
	BadgeInverseTable = "badges"
	// BadgeColumn is the table column denoting the badge relation/edge.
	BadgeColumn = "badge_id"
)

// Columns holds all SQL columns for badgeclaimlink fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldBadgeID,
	FieldMaxUses,
	FieldCurrentUses,
	FieldExpiresAt,
	FieldAchievementKey,
	FieldEventType,
	FieldEventPayload,
	FieldCreatedAt,
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
	// DefaultCurrentUses holds the default value on creation for the "current_uses" field.
	DefaultCurrentUses int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the BadgeClaimLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByBadgeID orders the results by the badge_id field.
func ByBadgeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeID, opts...).ToFunc()
}

// ByMaxUses orders the results by the max_uses field.
func ByMaxUses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxUses, opts...).ToFunc()
}

// ByCurrentUses orders the results by the current_uses field.
func ByCurrentUses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentUses, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByAchievementKey orders the results by the achievement_key field.
func ByAchievementKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementKey, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
