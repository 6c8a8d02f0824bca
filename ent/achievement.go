// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/achievement"
)

// Achievement is the model entity for the Achievement schema.
type Achievement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Icon holds the value of the "icon" field.
	Icon *string `json:"icon,omitempty"`
	// Color holds the value of the "color" field.
	Color *string `json:"color,omitempty"`
	// TargetValue holds the value of the "target_value" field.
	TargetValue int `json:"target_value,omitempty"`
	// Badge auto-awarded on completion
	BadgeSlug *string `json:"badge_slug,omitempty"`
	// Entitlement auto-granted on completion
	Entitlement *string `json:"entitlement,omitempty"`
	// Points holds the value of the "points" field.
	Points int `json:"points,omitempty"`
	// Domain event type that advances progress
	EventType *string `json:"event_type,omitempty"`
	// AND-logic predicates evaluated against the event payload
	Conditions []map[string]interface{} `json:"conditions,omitempty"`
	// ProgressMode holds the value of the "progress_mode" field.
	ProgressMode achievement.ProgressMode `json:"progress_mode,omitempty"`
	// Dot-path into the payload for gauge mode
	GaugeField *string `json:"gauge_field,omitempty"`
	// Hidden holds the value of the "hidden" field.
	Hidden bool `json:"hidden,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Achievement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case achievement.FieldConditions:
			values[i] = new([]byte)
		case achievement.FieldHidden, achievement.FieldEnabled:
			values[i] = new(sql.NullBool)
		case achievement.FieldTargetValue, achievement.FieldPoints:
			values[i] = new(sql.NullInt64)
		case achievement.FieldID, achievement.FieldKey, achievement.FieldName, achievement.FieldDescription, achievement.FieldIcon, achievement.FieldColor, achievement.FieldBadgeSlug, achievement.FieldEntitlement, achievement.FieldEventType, achievement.FieldProgressMode, achievement.FieldGaugeField:
			values[i] = new(sql.NullString)
		case achievement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Achievement fields.
func (_m *Achievement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case achievement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case achievement.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case achievement.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case achievement.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case achievement.FieldIcon:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icon", values[i])
			} else if value.Valid {
				_m.Icon = new(string)
				*_m.Icon = value.String
			}
		case achievement.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = new(string)
				*_m.Color = value.String
			}
		case achievement.FieldTargetValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_value", values[i])
			} else if value.Valid {
				_m.TargetValue = int(value.Int64)
			}
		case achievement.FieldBadgeSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_slug", values[i])
			} else if value.Valid {
				_m.BadgeSlug = new(string)
				*_m.BadgeSlug = value.String
			}
		case achievement.FieldEntitlement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entitlement", values[i])
			} else if value.Valid {
				_m.Entitlement = new(string)
				*_m.Entitlement = value.String
			}
		case achievement.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case achievement.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = new(string)
				*_m.EventType = value.String
			}
		case achievement.FieldConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conditions); err != nil {
					return fmt.Errorf("unmarshal field conditions: %w", err)
				}
			}
		case achievement.FieldProgressMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field progress_mode", values[i])
			} else if value.Valid {
				_m.ProgressMode = achievement.ProgressMode(value.String)
			}
		case achievement.FieldGaugeField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gauge_field", values[i])
			} else if value.Valid {
				_m.GaugeField = new(string)
				*_m.GaugeField = value.String
			}
		case achievement.FieldHidden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hidden", values[i])
			} else if value.Valid {
				_m.Hidden = value.Bool
			}
		case achievement.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case achievement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Achievement.
// This includes values selected through modifiers, order, etc.
func (_m *Achievement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Achievement.
// Note that you need to call Achievement.Unwrap() before calling this method if this Achievement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Achievement) Update() *AchievementUpdateOne {
	return NewAchievementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Achievement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Achievement) Unwrap() *Achievement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Achievement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Achievement) String() string {
	var builder strings.Builder
	builder.WriteString("Achievement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Icon; v != nil {
		builder.WriteString("icon=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Color; v != nil {
		builder.WriteString("color=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("target_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetValue))
	builder.WriteString(", ")
	if v := _m.BadgeSlug; v != nil {
		builder.WriteString("badge_slug=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Entitlement; v != nil {
		builder.WriteString("entitlement=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	if v := _m.EventType; v != nil {
		builder.WriteString("event_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conditions))
	builder.WriteString(", ")
	builder.WriteString("progress_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressMode))
	builder.WriteString(", ")
	if v := _m.GaugeField; v != nil {
		builder.WriteString("gauge_field=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("hidden=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hidden))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Achievements is a parsable slice of Achievement.
type Achievements []*Achievement
