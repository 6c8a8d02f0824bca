// Code generated by ent, DO NOT EDIT.

package synclog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContainsFold(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldGroupID, v))
}

// ConnectionID applies equality check predicate on the "connection_id" field. It's identical to ConnectionIDEQ.
func ConnectionID(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldConnectionID, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldPlatform, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldCompletedAt, v))
}

// EventsCreated applies equality check predicate on the "events_created" field. It's identical to EventsCreatedEQ.
func EventsCreated(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldEventsCreated, v))
}

// EventsUpdated applies equality check predicate on the "events_updated" field. It's identical to EventsUpdatedEQ.
func EventsUpdated(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldEventsUpdated, v))
}

// EventsDeleted applies equality check predicate on the "events_deleted" field. It's identical to EventsDeletedEQ.
func EventsDeleted(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldEventsDeleted, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldErrorMessage, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContainsFold(FieldGroupID, v))
}

// ConnectionIDEQ applies the EQ predicate on the "connection_id" field.
func ConnectionIDEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldConnectionID, v))
}

// ConnectionIDNEQ applies the NEQ predicate on the "connection_id" field.
func ConnectionIDNEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldConnectionID, v))
}

// ConnectionIDIn applies the In predicate on the "connection_id" field.
func ConnectionIDIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldConnectionID, vs...))
}

// ConnectionIDNotIn applies the NotIn predicate on the "connection_id" field.
func ConnectionIDNotIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldConnectionID, vs...))
}

// ConnectionIDGT applies the GT predicate on the "connection_id" field.
func ConnectionIDGT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldConnectionID, v))
}

// ConnectionIDGTE applies the GTE predicate on the "connection_id" field.
func ConnectionIDGTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldConnectionID, v))
}

// ConnectionIDLT applies the LT predicate on the "connection_id" field.
func ConnectionIDLT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldConnectionID, v))
}

// ConnectionIDLTE applies the LTE predicate on the "connection_id" field.
func ConnectionIDLTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldConnectionID, v))
}

// ConnectionIDContains applies the Contains predicate on the "connection_id" field.
func ConnectionIDContains(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContains(FieldConnectionID, v))
}

// ConnectionIDHasPrefix applies the HasPrefix predicate on the "connection_id" field.
func ConnectionIDHasPrefix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasPrefix(FieldConnectionID, v))
}

// ConnectionIDHasSuffix applies the HasSuffix predicate on the "connection_id" field.
func ConnectionIDHasSuffix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasSuffix(FieldConnectionID, v))
}

// ConnectionIDIsNil applies the IsNil predicate on the "connection_id" field.
func ConnectionIDIsNil() predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIsNull(FieldConnectionID))
}

// ConnectionIDNotNil applies the NotNil predicate on the "connection_id" field.
func ConnectionIDNotNil() predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotNull(FieldConnectionID))
}

// ConnectionIDEqualFold applies the EqualFold predicate on the "connection_id" field.
func ConnectionIDEqualFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEqualFold(FieldConnectionID, v))
}

// ConnectionIDContainsFold applies the ContainsFold predicate on the "connection_id" field.
func ConnectionIDContainsFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContainsFold(FieldConnectionID, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContainsFold(FieldPlatform, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotNull(FieldCompletedAt))
}

// EventsCreatedEQ applies the EQ predicate on the "events_created" field.
func EventsCreatedEQ(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldEventsCreated, v))
}

// EventsCreatedNEQ applies the NEQ predicate on the "events_created" field.
func EventsCreatedNEQ(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldEventsCreated, v))
}

// EventsCreatedIn applies the In predicate on the "events_created" field.
func EventsCreatedIn(vs ...int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldEventsCreated, vs...))
}

// EventsCreatedNotIn applies the NotIn predicate on the "events_created" field.
func EventsCreatedNotIn(vs ...int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldEventsCreated, vs...))
}

// EventsCreatedGT applies the GT predicate on the "events_created" field.
func EventsCreatedGT(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldEventsCreated, v))
}

// EventsCreatedGTE applies the GTE predicate on the "events_created" field.
func EventsCreatedGTE(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldEventsCreated, v))
}

// EventsCreatedLT applies the LT predicate on the "events_created" field.
func EventsCreatedLT(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldEventsCreated, v))
}

// EventsCreatedLTE applies the LTE predicate on the "events_created" field.
func EventsCreatedLTE(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldEventsCreated, v))
}

// EventsUpdatedEQ applies the EQ predicate on the "events_updated" field.
func EventsUpdatedEQ(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldEventsUpdated, v))
}

// EventsUpdatedNEQ applies the NEQ predicate on the "events_updated" field.
func EventsUpdatedNEQ(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldEventsUpdated, v))
}

// EventsUpdatedIn applies the In predicate on the "events_updated" field.
func EventsUpdatedIn(vs ...int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldEventsUpdated, vs...))
}

// EventsUpdatedNotIn applies the NotIn predicate on the "events_updated" field.
func EventsUpdatedNotIn(vs ...int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldEventsUpdated, vs...))
}

// EventsUpdatedGT applies the GT predicate on the "events_updated" field.
func EventsUpdatedGT(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldEventsUpdated, v))
}

// EventsUpdatedGTE applies the GTE predicate on the "events_updated" field.
func EventsUpdatedGTE(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldEventsUpdated, v))
}

// EventsUpdatedLT applies the LT predicate on the "events_updated" field.
func EventsUpdatedLT(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldEventsUpdated, v))
}

// EventsUpdatedLTE applies the LTE predicate on the "events_updated" field.
func EventsUpdatedLTE(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldEventsUpdated, v))
}

// EventsDeletedEQ applies the EQ predicate on the "events_deleted" field.
func EventsDeletedEQ(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldEventsDeleted, v))
}

// EventsDeletedNEQ applies the NEQ predicate on the "events_deleted" field.
func EventsDeletedNEQ(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldEventsDeleted, v))
}

// EventsDeletedIn applies the In predicate on the "events_deleted" field.
func EventsDeletedIn(vs ...int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldEventsDeleted, vs...))
}

// EventsDeletedNotIn applies the NotIn predicate on the "events_deleted" field.
func EventsDeletedNotIn(vs ...int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldEventsDeleted, vs...))
}

// EventsDeletedGT applies the GT predicate on the "events_deleted" field.
func EventsDeletedGT(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldEventsDeleted, v))
}

// EventsDeletedGTE applies the GTE predicate on the "events_deleted" field.
func EventsDeletedGTE(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldEventsDeleted, v))
}

// EventsDeletedLT applies the LT predicate on the "events_deleted" field.
func EventsDeletedLT(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldEventsDeleted, v))
}

// EventsDeletedLTE applies the LTE predicate on the "events_deleted" field.
func EventsDeletedLTE(v int) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldEventsDeleted, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SyncLog {
	return predicate.SyncLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SyncLog {
	return predicate.SyncLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SyncLog {
	return predicate.SyncLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.SyncLog {
	return predicate.SyncLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.Group) predicate.SyncLog {
	return predicate.SyncLog(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncLog) predicate.SyncLog {
	return predicate.SyncLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncLog) predicate.SyncLog {
	return predicate.SyncLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncLog) predicate.SyncLog {
	return predicate.SyncLog(sql.NotPredicates(p))
}
