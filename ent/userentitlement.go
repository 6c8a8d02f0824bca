// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/userentitlement"
)

// UserEntitlement is the model entity for the UserEntitlement schema.
type UserEntitlement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Entitlement holds the value of the "entitlement" field.
	Entitlement string `json:"entitlement,omitempty"`
	// GrantedAt holds the value of the "granted_at" field.
	GrantedAt    time.Time `json:"granted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserEntitlement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userentitlement.FieldID, userentitlement.FieldUserID, userentitlement.FieldEntitlement:
			values[i] = new(sql.NullString)
		case userentitlement.FieldGrantedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserEntitlement fields.
func (_m *UserEntitlement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userentitlement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case userentitlement.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userentitlement.FieldEntitlement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entitlement", values[i])
			} else if value.Valid {
				_m.Entitlement = value.String
			}
		case userentitlement.FieldGrantedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field granted_at", values[i])
			} else if value.Valid {
				_m.GrantedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserEntitlement.
// This includes values selected through modifiers, order, etc.
func (_m *UserEntitlement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserEntitlement.
// Note that you need to call UserEntitlement.Unwrap() before calling this method if this UserEntitlement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserEntitlement) Update() *UserEntitlementUpdateOne {
	return NewUserEntitlementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserEntitlement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserEntitlement) Unwrap() *UserEntitlement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserEntitlement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserEntitlement) String() string {
	var builder strings.Builder
	builder.WriteString("UserEntitlement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("entitlement=")
	builder.WriteString(_m.Entitlement)
	builder.WriteString(", ")
	builder.WriteString("granted_at=")
	builder.WriteString(_m.GrantedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserEntitlements is a parsable slice of UserEntitlement.
type UserEntitlements []*UserEntitlement
