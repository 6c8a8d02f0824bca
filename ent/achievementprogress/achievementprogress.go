// Code generated by ent, DO NOT EDIT.

package achievementprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the achievementprogress type in the database.
	Label = "achievement_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "progress_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAchievementKey holds the string denoting the achievement_key field in the database.
	FieldAchievementKey = "achievement_key"
	// FieldCurrentValue holds the string denoting the current_value field in the database.
	FieldCurrentValue = "current_value"
	// FieldTargetValue holds the string denoting the target_value field in the database.
	FieldTargetValue = "target_value"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the achievementprogress in the database.
	Table = "achievement_progress"
)

// Columns holds all SQL columns for achievementprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAchievementKey,
	FieldCurrentValue,
	FieldTargetValue,
	FieldCompletedAt,
	FieldUpdatedAt,
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
	// DefaultCurrentValue holds the default value on creation for the "current_value" field.
	DefaultCurrentValue int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AchievementProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAchievementKey orders the results by the achievement_key field.
func ByAchievementKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementKey, opts...).ToFunc()
}

// ByCurrentValue orders the results by the current_value field.
func ByCurrentValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentValue, opts...).ToFunc()
}

// ByTargetValue orders the results by the target_value field.
func ByTargetValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetValue, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
