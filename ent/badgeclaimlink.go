// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
)

// BadgeClaimLink is the model entity for the BadgeClaimLink schema.
type BadgeClaimLink struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// BadgeID holds the value of the "badge_id" field.
	BadgeID string `json:"badge_id,omitempty"`
	// MaxUses holds the value of the "max_uses" field.
	MaxUses *int `json:"max_uses,omitempty"`
	// CurrentUses holds the value of the "current_uses" field.
	CurrentUses int `json:"current_uses,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Achievement forced to completed on claim
	AchievementKey *string `json:"achievement_key,omitempty"`
	// Custom domain event emitted on claim
	EventType *string `json:"event_type,omitempty"`
	// Merged into the custom event payload
	EventPayload map[string]interface{} `json:"event_payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BadgeClaimLinkQuery when eager-loading is set.
	Edges        BadgeClaimLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BadgeClaimLinkEdges holds the relations/edges for other nodes in the graph.
type BadgeClaimLinkEdges struct {
	// Badge holds the value of the badge edge.
	Badge *Badge `json:"badge,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BadgeOrErr returns the Badge value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BadgeClaimLinkEdges) BadgeOrErr() (*Badge, error) {
	if e.Badge != nil {
		return e.Badge, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: badge.Label}
	}
	return nil, &NotLoadedError{edge: "badge"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BadgeClaimLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case badgeclaimlink.FieldEventPayload:
			values[i] = new([]byte)
		case badgeclaimlink.FieldMaxUses, badgeclaimlink.FieldCurrentUses:
			values[i] = new(sql.NullInt64)
		case badgeclaimlink.FieldID, badgeclaimlink.FieldCode, badgeclaimlink.FieldBadgeID, badgeclaimlink.FieldAchievementKey, badgeclaimlink.FieldEventType:
			values[i] = new(sql.NullString)
		case badgeclaimlink.FieldExpiresAt, badgeclaimlink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BadgeClaimLink fields.
func (_m *BadgeClaimLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case badgeclaimlink.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case badgeclaimlink.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case badgeclaimlink.FieldBadgeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_id", values[i])
			} else if value.Valid {
				_m.BadgeID = value.String
			}
		case badgeclaimlink.FieldMaxUses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_uses", values[i])
			} else if value.Valid {
				_m.MaxUses = new(int)
				*_m.MaxUses = int(value.Int64)
			}
		case badgeclaimlink.FieldCurrentUses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_uses", values[i])
			} else if value.Valid {
				_m.CurrentUses = int(value.Int64)
			}
		case badgeclaimlink.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case badgeclaimlink.FieldAchievementKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_key", values[i])
			} else if value.Valid {
				_m.AchievementKey = new(string)
				*_m.AchievementKey = value.String
			}
		case badgeclaimlink.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = new(string)
				*_m.EventType = value.String
			}
		case badgeclaimlink.FieldEventPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventPayload); err != nil {
					return fmt.Errorf("unmarshal field event_payload: %w", err)
				}
			}
		case badgeclaimlink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BadgeClaimLink.
// This includes values selected through modifiers, order, etc.
func (_m *BadgeClaimLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBadge queries the "badge" edge of the BadgeClaimLink entity.
func (_m *BadgeClaimLink) QueryBadge() *BadgeQuery {
	return NewBadgeClaimLinkClient(_m.config).QueryBadge(_m)
}

// Update returns a builder for updating this BadgeClaimLink.
// Note that you need to call BadgeClaimLink.Unwrap() before calling this method if this BadgeClaimLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BadgeClaimLink) Update() *BadgeClaimLinkUpdateOne {
	return NewBadgeClaimLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BadgeClaimLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BadgeClaimLink) Unwrap() *BadgeClaimLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BadgeClaimLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BadgeClaimLink) String() string {
	var builder strings.Builder
	builder.WriteString("BadgeClaimLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("badge_id=")
	builder.WriteString(_m.BadgeID)
	builder.WriteString(", ")
	if v := _m.MaxUses; v != nil {
		builder.WriteString("max_uses=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("current_uses=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentUses))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AchievementKey; v != nil {
		builder.WriteString("achievement_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EventType; v != nil {
		builder.WriteString("event_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("event_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventPayload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BadgeClaimLinks is a parsable slice of BadgeClaimLink.
type BadgeClaimLinks []*BadgeClaimLink
