// Code generated by ent, DO NOT EDIT.

package checkin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Checkin {
	return predicate.Checkin(sql.FieldContainsFold(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldEventID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldUserID, v))
}

// CodeID applies equality check predicate on the "code_id" field. It's identical to CodeIDEQ.
func CodeID(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldCodeID, v))
}

// CheckedInAt applies equality check predicate on the "checked_in_at" field. It's identical to CheckedInAtEQ.
func CheckedInAt(v time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldCheckedInAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldContainsFold(FieldEventID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldContainsFold(FieldUserID, v))
}

// CodeIDEQ applies the EQ predicate on the "code_id" field.
func CodeIDEQ(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldCodeID, v))
}

// CodeIDNEQ applies the NEQ predicate on the "code_id" field.
func CodeIDNEQ(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNEQ(FieldCodeID, v))
}

// CodeIDIn applies the In predicate on the "code_id" field.
func CodeIDIn(vs ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldIn(FieldCodeID, vs...))
}

// CodeIDNotIn applies the NotIn predicate on the "code_id" field.
func CodeIDNotIn(vs ...string) predicate.Checkin {
	return predicate.Checkin(sql.FieldNotIn(FieldCodeID, vs...))
}

// CodeIDGT applies the GT predicate on the "code_id" field.
func CodeIDGT(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGT(FieldCodeID, v))
}

// CodeIDGTE applies the GTE predicate on the "code_id" field.
func CodeIDGTE(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldGTE(FieldCodeID, v))
}

// CodeIDLT applies the LT predicate on the "code_id" field.
func CodeIDLT(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLT(FieldCodeID, v))
}

// CodeIDLTE applies the LTE predicate on the "code_id" field.
func CodeIDLTE(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldLTE(FieldCodeID, v))
}

// CodeIDContains applies the Contains predicate on the "code_id" field.
func CodeIDContains(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldContains(FieldCodeID, v))
}

// CodeIDHasPrefix applies the HasPrefix predicate on the "code_id" field.
func CodeIDHasPrefix(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldHasPrefix(FieldCodeID, v))
}

// CodeIDHasSuffix applies the HasSuffix predicate on the "code_id" field.
func CodeIDHasSuffix(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldHasSuffix(FieldCodeID, v))
}

// CodeIDIsNil applies the IsNil predicate on the "code_id" field.
func CodeIDIsNil() predicate.Checkin {
	return predicate.Checkin(sql.FieldIsNull(FieldCodeID))
}

// CodeIDNotNil applies the NotNil predicate on the "code_id" field.
func CodeIDNotNil() predicate.Checkin {
	return predicate.Checkin(sql.FieldNotNull(FieldCodeID))
}

// CodeIDEqualFold applies the EqualFold predicate on the "code_id" field.
func CodeIDEqualFold(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldEqualFold(FieldCodeID, v))
}

// CodeIDContainsFold applies the ContainsFold predicate on the "code_id" field.
func CodeIDContainsFold(v string) predicate.Checkin {
	return predicate.Checkin(sql.FieldContainsFold(FieldCodeID, v))
}

// CheckedInAtEQ applies the EQ predicate on the "checked_in_at" field.
func CheckedInAtEQ(v time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldEQ(FieldCheckedInAt, v))
}

// CheckedInAtNEQ applies the NEQ predicate on the "checked_in_at" field.
func CheckedInAtNEQ(v time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldNEQ(FieldCheckedInAt, v))
}

// CheckedInAtIn applies the In predicate on the "checked_in_at" field.
func CheckedInAtIn(vs ...time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldIn(FieldCheckedInAt, vs...))
}

// CheckedInAtNotIn applies the NotIn predicate on the "checked_in_at" field.
func CheckedInAtNotIn(vs ...time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldNotIn(FieldCheckedInAt, vs...))
}

// CheckedInAtGT applies the GT predicate on the "checked_in_at" field.
func CheckedInAtGT(v time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldGT(FieldCheckedInAt, v))
}

// CheckedInAtGTE applies the GTE predicate on the "checked_in_at" field.
func CheckedInAtGTE(v time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldGTE(FieldCheckedInAt, v))
}

// CheckedInAtLT applies the LT predicate on the "checked_in_at" field.
func CheckedInAtLT(v time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldLT(FieldCheckedInAt, v))
}

// CheckedInAtLTE applies the LTE predicate on the "checked_in_at" field.
func CheckedInAtLTE(v time.Time) predicate.Checkin {
	return predicate.Checkin(sql.FieldLTE(FieldCheckedInAt, v))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.Checkin {
	return predicate.Checkin(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.Checkin {
	return predicate.Checkin(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkin) predicate.Checkin {
	return predicate.Checkin(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkin) predicate.Checkin {
	return predicate.Checkin(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkin) predicate.Checkin {
	return predicate.Checkin(sql.NotPredicates(p))
}
