// Code generated by ent, DO NOT EDIT.

package webhook

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the webhook type in the database.
	Label = "webhook"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldSecret holds the string denoting the secret field in the database.
	FieldSecret = "secret"
	// FieldEventTypes holds the string denoting the event_types field in the database.
	FieldEventTypes = "event_types"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDeliveries holds the string denoting the deliveries edge name in mutations.
	EdgeDeliveries = "deliveries"
	// WebhookDeliveryFieldID holds the string denoting the ID field of the WebhookDelivery.
	WebhookDeliveryFieldID = "delivery_id"
	// Table holds the table name of the webhook in the database.
	Table = "webhooks"
	// DeliveriesTable is the table that holds the deliveries relation/edge.
	DeliveriesTable = "webhook_deliveries"
	// DeliveriesInverseTable is the table name for the WebhookDelivery entity.
	// It exists in this package in order to avoid circular dependency with the "webhookdelivery" package.
	DeliveriesInverseTable = "webhook_deliveries"
	// DeliveriesColumn is the table column denoting the deliveries relation/edge.
	DeliveriesColumn = "webhook_id"
)

// Columns holds all SQL columns for webhook fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldSecret,
	FieldEventTypes,
	FieldActive,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Webhook queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// BySecret orders the results by the secret field.
func BySecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecret, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeliveriesCount orders the results by deliveries count.
func ByDeliveriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeliveriesStep(), opts...)
	}
}

// ByDeliveries orders the results by deliveries terms.
func ByDeliveries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliveriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDeliveriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliveriesInverseTable, WebhookDeliveryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeliveriesTable, DeliveriesColumn),
	)
}
