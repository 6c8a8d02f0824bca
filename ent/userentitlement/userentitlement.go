// Code generated by ent, DO NOT EDIT.

package userentitlement

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userentitlement type in the database.
	Label = "user_entitlement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entitlement_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEntitlement holds the string denoting the entitlement field in the database.
	FieldEntitlement = "entitlement"
	// FieldGrantedAt holds the string denoting the granted_at field in the database.
	FieldGrantedAt = "granted_at"
	// Table holds the table name of the userentitlement in the database.
	Table = "user_entitlements"
)

// Columns holds all SQL columns for userentitlement fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEntitlement,
	FieldGrantedAt,
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
	// DefaultGrantedAt holds the default value on creation for the "granted_at" field.
	DefaultGrantedAt func() time.Time
)

// OrderOption defines the ordering options for the UserEntitlement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEntitlement orders the results by the entitlement field.
func ByEntitlement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntitlement, opts...).ToFunc()
}

// ByGrantedAt orders the results by the granted_at field.
func ByGrantedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrantedAt, opts...).ToFunc()
}
