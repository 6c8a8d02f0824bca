// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/group"
)

// Group is the model entity for the Group schema.
type Group struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Primary URL slug
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// MemberCount holds the value of the "member_count" field.
	MemberCount int `json:"member_count,omitempty"`
	// PhotoURL holds the value of the "photo_url" field.
	PhotoURL *string `json:"photo_url,omitempty"`
	// Visible in the public directory
	Display bool `json:"display,omitempty"`
	// Featured holds the value of the "featured" field.
	Featured bool `json:"featured,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// SocialLinks holds the value of the "social_links" field.
	SocialLinks map[string]string `json:"social_links,omitempty"`
	// SyncActive holds the value of the "sync_active" field.
	SyncActive bool `json:"sync_active,omitempty"`
	// LastSyncAt holds the value of the "last_sync_at" field.
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	// LastSyncError holds the value of the "last_sync_error" field.
	LastSyncError *string `json:"last_sync_error,omitempty"`
	// Badge governance: how many badges the group may define
	MaxBadges int `json:"max_badges,omitempty"`
	// Badge governance: points ceiling per group badge
	MaxBadgePoints int `json:"max_badge_points,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GroupQuery when eager-loading is set.
	Edges        GroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GroupEdges holds the relations/edges for other nodes in the graph.
type GroupEdges struct {
	// Connections holds the value of the connections edge.
	Connections []*PlatformConnection `json:"connections,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Favorites holds the value of the favorites edge.
	Favorites []*Favorite `json:"favorites,omitempty"`
	// SyncLogs holds the value of the sync_logs edge.
	SyncLogs []*SyncLog `json:"sync_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ConnectionsOrErr returns the Connections value or an error if the edge
// was not loaded in eager-loading.
func (e GroupEdges) ConnectionsOrErr() ([]*PlatformConnection, error) {
	if e.loadedTypes[0] {
		return e.Connections, nil
	}
	return nil, &NotLoadedError{edge: "connections"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e GroupEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// FavoritesOrErr returns the Favorites value or an error if the edge
// was not loaded in eager-loading.
func (e GroupEdges) FavoritesOrErr() ([]*Favorite, error) {
	if e.loadedTypes[2] {
		return e.Favorites, nil
	}
	return nil, &NotLoadedError{edge: "favorites"}
}

// SyncLogsOrErr returns the SyncLogs value or an error if the edge
// was not loaded in eager-loading.
func (e GroupEdges) SyncLogsOrErr() ([]*SyncLog, error) {
	if e.loadedTypes[3] {
		return e.SyncLogs, nil
	}
	return nil, &NotLoadedError{edge: "sync_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Group) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case group.FieldTags, group.FieldSocialLinks:
			values[i] = new([]byte)
		case group.FieldDisplay, group.FieldFeatured, group.FieldSyncActive:
			values[i] = new(sql.NullBool)
		case group.FieldMemberCount, group.FieldMaxBadges, group.FieldMaxBadgePoints:
			values[i] = new(sql.NullInt64)
		case group.FieldID, group.FieldSlug, group.FieldName, group.FieldDescription, group.FieldPhotoURL, group.FieldLastSyncError:
			values[i] = new(sql.NullString)
		case group.FieldLastSyncAt, group.FieldCreatedAt, group.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Group fields.
func (_m *Group) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case group.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case group.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case group.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case group.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case group.FieldMemberCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field member_count", values[i])
			} else if value.Valid {
				_m.MemberCount = int(value.Int64)
			}
		case group.FieldPhotoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field photo_url", values[i])
			} else if value.Valid {
				_m.PhotoURL = new(string)
				*_m.PhotoURL = value.String
			}
		case group.FieldDisplay:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field display", values[i])
			} else if value.Valid {
				_m.Display = value.Bool
			}
		case group.FieldFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field featured", values[i])
			} else if value.Valid {
				_m.Featured = value.Bool
			}
		case group.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case group.FieldSocialLinks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field social_links", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SocialLinks); err != nil {
					return fmt.Errorf("unmarshal field social_links: %w", err)
				}
			}
		case group.FieldSyncActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sync_active", values[i])
			} else if value.Valid {
				_m.SyncActive = value.Bool
			}
		case group.FieldLastSyncAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_at", values[i])
			} else if value.Valid {
				_m.LastSyncAt = new(time.Time)
				*_m.LastSyncAt = value.Time
			}
		case group.FieldLastSyncError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_error", values[i])
			} else if value.Valid {
				_m.LastSyncError = new(string)
				*_m.LastSyncError = value.String
			}
		case group.FieldMaxBadges:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_badges", values[i])
			} else if value.Valid {
				_m.MaxBadges = int(value.Int64)
			}
		case group.FieldMaxBadgePoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_badge_points", values[i])
			} else if value.Valid {
				_m.MaxBadgePoints = int(value.Int64)
			}
		case group.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case group.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Group.
// This includes values selected through modifiers, order, etc.
func (_m *Group) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConnections queries the "connections" edge of the Group entity.
func (_m *Group) QueryConnections() *PlatformConnectionQuery {
	return NewGroupClient(_m.config).QueryConnections(_m)
}

// QueryEvents queries the "events" edge of the Group entity.
func (_m *Group) QueryEvents() *EventQuery {
	return NewGroupClient(_m.config).QueryEvents(_m)
}

// QueryFavorites queries the "favorites" edge of the Group entity.
func (_m *Group) QueryFavorites() *FavoriteQuery {
	return NewGroupClient(_m.config).QueryFavorites(_m)
}

// QuerySyncLogs queries the "sync_logs" edge of the Group entity.
func (_m *Group) QuerySyncLogs() *SyncLogQuery {
	return NewGroupClient(_m.config).QuerySyncLogs(_m)
}

// Update returns a builder for updating this Group.
// Note that you need to call Group.Unwrap() before calling this method if this Group
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Group) Update() *GroupUpdateOne {
	return NewGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Group entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Group) Unwrap() *Group {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Group is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Group) String() string {
	var builder strings.Builder
	builder.WriteString("Group(")
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
	builder.WriteString("member_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberCount))
	builder.WriteString(", ")
	if v := _m.PhotoURL; v != nil {
		builder.WriteString("photo_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("display=")
	builder.WriteString(fmt.Sprintf("%v", _m.Display))
	builder.WriteString(", ")
	builder.WriteString("featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Featured))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("social_links=")
	builder.WriteString(fmt.Sprintf("%v", _m.SocialLinks))
	builder.WriteString(", ")
	builder.WriteString("sync_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncActive))
	builder.WriteString(", ")
	if v := _m.LastSyncAt; v != nil {
		builder.WriteString("last_sync_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSyncError; v != nil {
		builder.WriteString("last_sync_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("max_badges=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxBadges))
	builder.WriteString(", ")
	builder.WriteString("max_badge_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxBadgePoints))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Groups is a parsable slice of Group.
type Groups []*Group
