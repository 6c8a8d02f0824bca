// Code generated by ent, DO NOT EDIT.

package useronboardingstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the useronboardingstep type in the database.
	Label = "user_onboarding_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_step_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStepKey holds the string denoting the step_key field in the database.
	FieldStepKey = "step_key"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the useronboardingstep in the database.
	Table = "user_onboarding_steps"
)

// Columns holds all SQL columns for useronboardingstep fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStepKey,
	FieldCompletedAt,
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
	// DefaultCompletedAt holds the default value on creation for the "completed_at" field.
	DefaultCompletedAt func() time.Time
)

// OrderOption defines the ordering options for the UserOnboardingStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStepKey orders the results by the step_key field.
func ByStepKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepKey, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
