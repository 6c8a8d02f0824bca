// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the achievement type in the database.
	Label = "achievement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "achievement_id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIcon holds the string denoting the icon field in the database.
	FieldIcon = "icon"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldTargetValue holds the string denoting the target_value field in the database.
	FieldTargetValue = "target_value"
	// FieldBadgeSlug holds the string denoting the badge_slug field in the database.
	FieldBadgeSlug = "badge_slug"
	// FieldEntitlement holds the string denoting the entitlement field in the database.
	FieldEntitlement = "entitlement"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldConditions holds the string denoting the conditions field in the database.
	FieldConditions = "conditions"
	// FieldProgressMode holds the string denoting the progress_mode field in the database.
	FieldProgressMode = "progress_mode"
	// FieldGaugeField holds the string denoting the gauge_field field in the database.
	FieldGaugeField = "gauge_field"
	// FieldHidden holds the string denoting the hidden field in the database.
	FieldHidden = "hidden"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the achievement in the database.
	Table = "achievements"
)

// Columns holds all SQL columns for achievement fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldName,
	FieldDescription,
	FieldIcon,
	FieldColor,
	FieldTargetValue,
	FieldBadgeSlug,
	FieldEntitlement,
	FieldPoints,
	FieldEventType,
	FieldConditions,
	FieldProgressMode,
	FieldGaugeField,
	FieldHidden,
	FieldEnabled,
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
	// DefaultPoints holds the default value on creation for the "points" field.
	DefaultPoints int
	// DefaultHidden holds the default value on creation for the "hidden" field.
	DefaultHidden bool
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ProgressMode defines the type for the "progress_mode" enum field.
type ProgressMode string

// ProgressModeCounter is the default value of the ProgressMode enum.
const DefaultProgressMode = ProgressModeCounter

// ProgressMode values.
const (
	ProgressModeCounter ProgressMode = "counter"
	ProgressModeGauge   ProgressMode = "gauge"
)

func (pm ProgressMode) String() string {
	return string(pm)
}

// ProgressModeValidator is a validator for the "progress_mode" field enum values. It is called by the builders before save.
func ProgressModeValidator(pm ProgressMode) error {
	switch pm {
	case ProgressModeCounter, ProgressModeGauge:
		return nil
	default:
		return fmt.Errorf("achievement: invalid enum value for progress_mode field: %q", pm)
	}
}

// OrderOption defines the ordering options for the Achievement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIcon orders the results by the icon field.
func ByIcon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcon, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByTargetValue orders the results by the target_value field.
func ByTargetValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetValue, opts...).ToFunc()
}

// ByBadgeSlug orders the results by the badge_slug field.
func ByBadgeSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeSlug, opts...).ToFunc()
}

// ByEntitlement orders the results by the entitlement field.
func ByEntitlement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntitlement, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByProgressMode orders the results by the progress_mode field.
func ByProgressMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressMode, opts...).ToFunc()
}

// ByGaugeField orders the results by the gauge_field field.
func ByGaugeField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGaugeField, opts...).ToFunc()
}

// ByHidden orders the results by the hidden field.
func ByHidden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHidden, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
