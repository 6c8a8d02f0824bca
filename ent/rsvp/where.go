// Code generated by ent, DO NOT EDIT.

package rsvp

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RSVP {
	return predicate.RSVP(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RSVP {
	return predicate.RSVP(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RSVP {
	return predicate.RSVP(sql.FieldContainsFold(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldEventID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldUserID, v))
}

// RsvpAt applies equality check predicate on the "rsvp_at" field. It's identical to RsvpAtEQ.
func RsvpAt(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldRsvpAt, v))
}

// WaitlistPosition applies equality check predicate on the "waitlist_position" field. It's identical to WaitlistPositionEQ.
func WaitlistPosition(v int) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldWaitlistPosition, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldCancelledAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.RSVP {
	return predicate.RSVP(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.RSVP {
	return predicate.RSVP(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldContainsFold(FieldEventID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.RSVP {
	return predicate.RSVP(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.RSVP {
	return predicate.RSVP(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.RSVP {
	return predicate.RSVP(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RSVP {
	return predicate.RSVP(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RSVP {
	return predicate.RSVP(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RSVP {
	return predicate.RSVP(sql.FieldNotIn(FieldStatus, vs...))
}

// RsvpAtEQ applies the EQ predicate on the "rsvp_at" field.
func RsvpAtEQ(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldRsvpAt, v))
}

// RsvpAtNEQ applies the NEQ predicate on the "rsvp_at" field.
func RsvpAtNEQ(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldNEQ(FieldRsvpAt, v))
}

// RsvpAtIn applies the In predicate on the "rsvp_at" field.
func RsvpAtIn(vs ...time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldIn(FieldRsvpAt, vs...))
}

// RsvpAtNotIn applies the NotIn predicate on the "rsvp_at" field.
func RsvpAtNotIn(vs ...time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldNotIn(FieldRsvpAt, vs...))
}

// RsvpAtGT applies the GT predicate on the "rsvp_at" field.
func RsvpAtGT(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldGT(FieldRsvpAt, v))
}

// RsvpAtGTE applies the GTE predicate on the "rsvp_at" field.
func RsvpAtGTE(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldGTE(FieldRsvpAt, v))
}

// RsvpAtLT applies the LT predicate on the "rsvp_at" field.
func RsvpAtLT(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldLT(FieldRsvpAt, v))
}

// RsvpAtLTE applies the LTE predicate on the "rsvp_at" field.
func RsvpAtLTE(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldLTE(FieldRsvpAt, v))
}

// WaitlistPositionEQ applies the EQ predicate on the "waitlist_position" field.
func WaitlistPositionEQ(v int) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldWaitlistPosition, v))
}

// WaitlistPositionNEQ applies the NEQ predicate on the "waitlist_position" field.
func WaitlistPositionNEQ(v int) predicate.RSVP {
	return predicate.RSVP(sql.FieldNEQ(FieldWaitlistPosition, v))
}

// WaitlistPositionIn applies the In predicate on the "waitlist_position" field.
func WaitlistPositionIn(vs ...int) predicate.RSVP {
	return predicate.RSVP(sql.FieldIn(FieldWaitlistPosition, vs...))
}

// WaitlistPositionNotIn applies the NotIn predicate on the "waitlist_position" field.
func WaitlistPositionNotIn(vs ...int) predicate.RSVP {
	return predicate.RSVP(sql.FieldNotIn(FieldWaitlistPosition, vs...))
}

// WaitlistPositionGT applies the GT predicate on the "waitlist_position" field.
func WaitlistPositionGT(v int) predicate.RSVP {
	return predicate.RSVP(sql.FieldGT(FieldWaitlistPosition, v))
}

// WaitlistPositionGTE applies the GTE predicate on the "waitlist_position" field.
func WaitlistPositionGTE(v int) predicate.RSVP {
	return predicate.RSVP(sql.FieldGTE(FieldWaitlistPosition, v))
}

// WaitlistPositionLT applies the LT predicate on the "waitlist_position" field.
func WaitlistPositionLT(v int) predicate.RSVP {
	return predicate.RSVP(sql.FieldLT(FieldWaitlistPosition, v))
}

// WaitlistPositionLTE applies the LTE predicate on the "waitlist_position" field.
func WaitlistPositionLTE(v int) predicate.RSVP {
	return predicate.RSVP(sql.FieldLTE(FieldWaitlistPosition, v))
}

// WaitlistPositionIsNil applies the IsNil predicate on the "waitlist_position" field.
func WaitlistPositionIsNil() predicate.RSVP {
	return predicate.RSVP(sql.FieldIsNull(FieldWaitlistPosition))
}

// WaitlistPositionNotNil applies the NotNil predicate on the "waitlist_position" field.
func WaitlistPositionNotNil() predicate.RSVP {
	return predicate.RSVP(sql.FieldNotNull(FieldWaitlistPosition))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.RSVP {
	return predicate.RSVP(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.RSVP {
	return predicate.RSVP(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.RSVP {
	return predicate.RSVP(sql.FieldNotNull(FieldCancelledAt))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.RSVP {
	return predicate.RSVP(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.RSVP {
	return predicate.RSVP(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RSVP) predicate.RSVP {
	return predicate.RSVP(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RSVP) predicate.RSVP {
	return predicate.RSVP(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RSVP) predicate.RSVP {
	return predicate.RSVP(sql.NotPredicates(p))
}
