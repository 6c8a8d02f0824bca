// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
)

// AchievementProgress is the model entity for the AchievementProgress schema.
type AchievementProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// AchievementKey holds the value of the "achievement_key" field.
	AchievementKey string `json:"achievement_key,omitempty"`
	// CurrentValue holds the value of the "current_value" field.
	CurrentValue int `json:"current_value,omitempty"`
	// TargetValue holds the value of the "target_value" field.
	TargetValue int `json:"target_value,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AchievementProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case achievementprogress.FieldCurrentValue, achievementprogress.FieldTargetValue:
			values[i] = new(sql.NullInt64)
		case achievementprogress.FieldID, achievementprogress.FieldUserID, achievementprogress.FieldAchievementKey:
			values[i] = new(sql.NullString)
		case achievementprogress.FieldCompletedAt, achievementprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AchievementProgress fields.
func (_m *AchievementProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case achievementprogress.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case achievementprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case achievementprogress.FieldAchievementKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_key", values[i])
			} else if value.Valid {
				_m.AchievementKey = value.String
			}
		case achievementprogress.FieldCurrentValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_value", values[i])
			} else if value.Valid {
				_m.CurrentValue = int(value.Int64)
			}
		case achievementprogress.FieldTargetValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_value", values[i])
			} else if value.Valid {
				_m.TargetValue = int(value.Int64)
			}
		case achievementprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case achievementprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AchievementProgress.
// This includes values selected through modifiers, order, etc.
func (_m *AchievementProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AchievementProgress.
// Note that you need to call AchievementProgress.Unwrap() before calling this method if this AchievementProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AchievementProgress) Update() *AchievementProgressUpdateOne {
	return NewAchievementProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AchievementProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AchievementProgress) Unwrap() *AchievementProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AchievementProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AchievementProgress) String() string {
	var builder strings.Builder
	builder.WriteString("AchievementProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("achievement_key=")
	builder.WriteString(_m.AchievementKey)
	builder.WriteString(", ")
	builder.WriteString("current_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentValue))
	builder.WriteString(", ")
	builder.WriteString("target_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetValue))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AchievementProgresses is a parsable slice of AchievementProgress.
type AchievementProgresses []*AchievementProgress
