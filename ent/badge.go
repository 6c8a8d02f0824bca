// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/badge"
)

// Badge is the model entity for the Badge schema.
type Badge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Icon holds the value of the "icon" field.
	Icon *string `json:"icon,omitempty"`
	// Color holds the value of the "color" field.
	Color *string `json:"color,omitempty"`
	// Points holds the value of the "points" field.
	Points int `json:"points,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// Excluded from the public badge directory
	Hidden bool `json:"hidden,omitempty"`
	// Owning group for group-scoped badges
	GroupID *string `json:"group_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BadgeQuery when eager-loading is set.
	Edges        BadgeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BadgeEdges holds the relations/edges for other nodes in the graph.
type BadgeEdges struct {
	// UserBadges holds the value of the user_badges edge.
	UserBadges []*UserBadge `json:"user_badges,omitempty"`
	// ClaimLinks holds the value of the claim_links edge.
	ClaimLinks []*BadgeClaimLink `json:"claim_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserBadgesOrErr returns the UserBadges value or an error if the edge
// was not loaded in eager-loading.
func (e BadgeEdges) UserBadgesOrErr() ([]*UserBadge, error) {
	if e.loadedTypes[0] {
		return e.UserBadges, nil
	}
	return nil, &NotLoadedError{edge: "user_badges"}
}

// ClaimLinksOrErr returns the ClaimLinks value or an error if the edge
// was not loaded in eager-loading.
func (e BadgeEdges) ClaimLinksOrErr() ([]*BadgeClaimLink, error) {
	if e.loadedTypes[1] {
		return e.ClaimLinks, nil
	}
	return nil, &NotLoadedError{edge: "claim_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Badge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case badge.FieldHidden:
			values[i] = new(sql.NullBool)
		case badge.FieldPoints, badge.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case badge.FieldID, badge.FieldSlug, badge.FieldName, badge.FieldDescription, badge.FieldIcon, badge.FieldColor, badge.FieldGroupID:
			values[i] = new(sql.NullString)
		case badge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Badge fields.
func (_m *Badge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case badge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case badge.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case badge.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case badge.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case badge.FieldIcon:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icon", values[i])
			} else if value.Valid {
				_m.Icon = new(string)
				*_m.Icon = value.String
			}
		case badge.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = new(string)
				*_m.Color = value.String
			}
		case badge.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case badge.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case badge.FieldHidden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hidden", values[i])
			} else if value.Valid {
				_m.Hidden = value.Bool
			}
		case badge.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = new(string)
				*_m.GroupID = value.String
			}
		case badge.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Badge.
// This includes values selected through modifiers, order, etc.
func (_m *Badge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUserBadges queries the "user_badges" edge of the Badge entity.
func (_m *Badge) QueryUserBadges() *UserBadgeQuery {
	return NewBadgeClient(_m.config).QueryUserBadges(_m)
}

// QueryClaimLinks queries the "claim_links" edge of the Badge entity.
func (_m *Badge) QueryClaimLinks() *BadgeClaimLinkQuery {
	return NewBadgeClient(_m.config).QueryClaimLinks(_m)
}

// Update returns a builder for updating this Badge.
// Note that you need to call Badge.Unwrap() before calling this method if this Badge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Badge) Update() *BadgeUpdateOne {
	return NewBadgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Badge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Badge) Unwrap() *Badge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Badge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Badge) String() string {
	var builder strings.Builder
	builder.WriteString("Badge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
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
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("hidden=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hidden))
	builder.WriteString(", ")
	if v := _m.GroupID; v != nil {
		builder.WriteString("group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Badges is a parsable slice of Badge.
type Badges []*Badge
