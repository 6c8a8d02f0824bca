// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/userbadge"
)

// UserBadge is the model entity for the UserBadge schema.
type UserBadge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BadgeID holds the value of the "badge_id" field.
	BadgeID string `json:"badge_id,omitempty"`
	// AwardedAt holds the value of the "awarded_at" field.
	AwardedAt time.Time `json:"awarded_at,omitempty"`
	// User id of the awarder, when manually awarded
	AwardedBy *string `json:"awarded_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserBadgeQuery when eager-loading is set.
	Edges        UserBadgeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserBadgeEdges holds the relations/edges for other nodes in the graph.
type UserBadgeEdges struct {
	// Badge holds the value of the badge edge.
	Badge *Badge `json:"badge,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BadgeOrErr returns the Badge value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserBadgeEdges) BadgeOrErr() (*Badge, error) {
	if e.Badge != nil {
		return e.Badge, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: badge.Label}
	}
	return nil, &NotLoadedError{edge: "badge"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserBadge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldID, userbadge.FieldUserID, userbadge.FieldBadgeID, userbadge.FieldAwardedBy:
			values[i] = new(sql.NullString)
		case userbadge.FieldAwardedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserBadge fields.
func (_m *UserBadge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case userbadge.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userbadge.FieldBadgeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_id", values[i])
			} else if value.Valid {
				_m.BadgeID = value.String
			}
		case userbadge.FieldAwardedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_at", values[i])
			} else if value.Valid {
				_m.AwardedAt = value.Time
			}
		case userbadge.FieldAwardedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_by", values[i])
			} else if value.Valid {
				_m.AwardedBy = new(string)
				*_m.AwardedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserBadge.
// This includes values selected through modifiers, order, etc.
func (_m *UserBadge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBadge queries the "badge" edge of the UserBadge entity.
func (_m *UserBadge) QueryBadge() *BadgeQuery {
	return NewUserBadgeClient(_m.config).QueryBadge(_m)
}

// Update returns a builder for updating this UserBadge.
// Note that you need to call UserBadge.Unwrap() before calling this method if this UserBadge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserBadge) Update() *UserBadgeUpdateOne {
	return NewUserBadgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserBadge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserBadge) Unwrap() *UserBadge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserBadge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserBadge) String() string {
	var builder strings.Builder
	builder.WriteString("UserBadge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("badge_id=")
	builder.WriteString(_m.BadgeID)
	builder.WriteString(", ")
	builder.WriteString("awarded_at=")
	builder.WriteString(_m.AwardedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AwardedBy; v != nil {
		builder.WriteString("awarded_by=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// UserBadges is a parsable slice of UserBadge.
type UserBadges []*UserBadge
