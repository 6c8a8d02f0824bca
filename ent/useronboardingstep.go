// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
)

// UserOnboardingStep is the model entity for the UserOnboardingStep schema.
type UserOnboardingStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// StepKey holds the value of the "step_key" field.
	StepKey string `json:"step_key,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserOnboardingStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case useronboardingstep.FieldID, useronboardingstep.FieldUserID, useronboardingstep.FieldStepKey:
			values[i] = new(sql.NullString)
		case useronboardingstep.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserOnboardingStep fields.
func (_m *UserOnboardingStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case useronboardingstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case useronboardingstep.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case useronboardingstep.FieldStepKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_key", values[i])
			} else if value.Valid {
				_m.StepKey = value.String
			}
		case useronboardingstep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserOnboardingStep.
// This includes values selected through modifiers, order, etc.
func (_m *UserOnboardingStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserOnboardingStep.
// Note that you need to call UserOnboardingStep.Unwrap() before calling this method if this UserOnboardingStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserOnboardingStep) Update() *UserOnboardingStepUpdateOne {
	return NewUserOnboardingStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserOnboardingStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserOnboardingStep) Unwrap() *UserOnboardingStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserOnboardingStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserOnboardingStep) String() string {
	var builder strings.Builder
	builder.WriteString("UserOnboardingStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("step_key=")
	builder.WriteString(_m.StepKey)
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserOnboardingSteps is a parsable slice of UserOnboardingStep.
type UserOnboardingSteps []*UserOnboardingStep
