// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/synclog"
)

// SyncLog is the model entity for the SyncLog schema.
type SyncLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// ConnectionID holds the value of the "connection_id" field.
	ConnectionID *string `json:"connection_id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Status holds the value of the "status" field.
	Status synclog.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// EventsCreated holds the value of the "events_created" field.
	EventsCreated int `json:"events_created,omitempty"`
	// EventsUpdated holds the value of the "events_updated" field.
	EventsUpdated int `json:"events_updated,omitempty"`
	// EventsDeleted holds the value of the "events_deleted" field.
	EventsDeleted int `json:"events_deleted,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SyncLogQuery when eager-loading is set.
	Edges        SyncLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SyncLogEdges holds the relations/edges for other nodes in the graph.
type SyncLogEdges struct {
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SyncLogEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case synclog.FieldEventsCreated, synclog.FieldEventsUpdated, synclog.FieldEventsDeleted:
			values[i] = new(sql.NullInt64)
		case synclog.FieldID, synclog.FieldGroupID, synclog.FieldConnectionID, synclog.FieldPlatform, synclog.FieldStatus, synclog.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case synclog.FieldStartedAt, synclog.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncLog fields.
func (_m *SyncLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case synclog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case synclog.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case synclog.FieldConnectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connection_id", values[i])
			} else if value.Valid {
				_m.ConnectionID = new(string)
				*_m.ConnectionID = value.String
			}
		case synclog.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case synclog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = synclog.Status(value.String)
			}
		case synclog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case synclog.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case synclog.FieldEventsCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field events_created", values[i])
			} else if value.Valid {
				_m.EventsCreated = int(value.Int64)
			}
		case synclog.FieldEventsUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field events_updated", values[i])
			} else if value.Valid {
				_m.EventsUpdated = int(value.Int64)
			}
		case synclog.FieldEventsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field events_deleted", values[i])
			} else if value.Valid {
				_m.EventsDeleted = int(value.Int64)
			}
		case synclog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncLog.
// This includes values selected through modifiers, order, etc.
func (_m *SyncLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the SyncLog entity.
func (_m *SyncLog) QueryGroup() *GroupQuery {
	return NewSyncLogClient(_m.config).QueryGroup(_m)
}

// Update returns a builder for updating this SyncLog.
// Note that you need to call SyncLog.Unwrap() before calling this method if this SyncLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncLog) Update() *SyncLogUpdateOne {
	return NewSyncLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncLog) Unwrap() *SyncLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncLog) String() string {
	var builder strings.Builder
	builder.WriteString("SyncLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	if v := _m.ConnectionID; v != nil {
		builder.WriteString("connection_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("events_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventsCreated))
	builder.WriteString(", ")
	builder.WriteString("events_updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventsUpdated))
	builder.WriteString(", ")
	builder.WriteString("events_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventsDeleted))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// SyncLogs is a parsable slice of SyncLog.
type SyncLogs []*SyncLog
