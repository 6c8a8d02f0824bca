// Code generated by ent, DO NOT EDIT.

package queuedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLTE(FieldID, id))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTimestamp applies equality check predicate on the "event_timestamp" field. It's identical to EventTimestampEQ.
func EventTimestamp(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldEventTimestamp, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldAttempts, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldClaimedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldContainsFold(FieldEventType, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotNull(FieldMetadata))
}

// EventTimestampEQ applies the EQ predicate on the "event_timestamp" field.
func EventTimestampEQ(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldEventTimestamp, v))
}

// EventTimestampNEQ applies the NEQ predicate on the "event_timestamp" field.
func EventTimestampNEQ(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNEQ(FieldEventTimestamp, v))
}

// EventTimestampIn applies the In predicate on the "event_timestamp" field.
func EventTimestampIn(vs ...time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIn(FieldEventTimestamp, vs...))
}

// EventTimestampNotIn applies the NotIn predicate on the "event_timestamp" field.
func EventTimestampNotIn(vs ...time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotIn(FieldEventTimestamp, vs...))
}

// EventTimestampGT applies the GT predicate on the "event_timestamp" field.
func EventTimestampGT(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGT(FieldEventTimestamp, v))
}

// EventTimestampGTE applies the GTE predicate on the "event_timestamp" field.
func EventTimestampGTE(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGTE(FieldEventTimestamp, v))
}

// EventTimestampLT applies the LT predicate on the "event_timestamp" field.
func EventTimestampLT(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLT(FieldEventTimestamp, v))
}

// EventTimestampLTE applies the LTE predicate on the "event_timestamp" field.
func EventTimestampLTE(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLTE(FieldEventTimestamp, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLTE(FieldAttempts, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldContainsFold(FieldClaimedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueuedEvent) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueuedEvent) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueuedEvent) predicate.QueuedEvent {
	return predicate.QueuedEvent(sql.NotPredicates(p))
}
