// Code generated by ent, DO NOT EDIT.

package userbadge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldUserID, v))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeID, v))
}

// AwardedAt applies equality check predicate on the "awarded_at" field. It's identical to AwardedAtEQ.
func AwardedAt(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldAwardedAt, v))
}

// AwardedBy applies equality check predicate on the "awarded_by" field. It's identical to AwardedByEQ.
func AwardedBy(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldAwardedBy, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldUserID, v))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldBadgeID, vs...))
}

// BadgeIDGT applies the GT predicate on the "badge_id" field.
func BadgeIDGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldBadgeID, v))
}

// BadgeIDGTE applies the GTE predicate on the "badge_id" field.
func BadgeIDGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldBadgeID, v))
}

// BadgeIDLT applies the LT predicate on the "badge_id" field.
func BadgeIDLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldBadgeID, v))
}

// BadgeIDLTE applies the LTE predicate on the "badge_id" field.
func BadgeIDLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldBadgeID, v))
}

// BadgeIDContains applies the Contains predicate on the "badge_id" field.
func BadgeIDContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldBadgeID, v))
}

// BadgeIDHasPrefix applies the HasPrefix predicate on the "badge_id" field.
func BadgeIDHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldBadgeID, v))
}

// BadgeIDHasSuffix applies the HasSuffix predicate on the "badge_id" field.
func BadgeIDHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldBadgeID, v))
}

// BadgeIDEqualFold applies the EqualFold predicate on the "badge_id" field.
func BadgeIDEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldBadgeID, v))
}

// BadgeIDContainsFold applies the ContainsFold predicate on the "badge_id" field.
func BadgeIDContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldBadgeID, v))
}

// AwardedAtEQ applies the EQ predicate on the "awarded_at" field.
func AwardedAtEQ(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldAwardedAt, v))
}

// AwardedAtNEQ applies the NEQ predicate on the "awarded_at" field.
func AwardedAtNEQ(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldAwardedAt, v))
}

// AwardedAtIn applies the In predicate on the "awarded_at" field.
func AwardedAtIn(vs ...time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldAwardedAt, vs...))
}

// AwardedAtNotIn applies the NotIn predicate on the "awarded_at" field.
func AwardedAtNotIn(vs ...time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldAwardedAt, vs...))
}

// AwardedAtGT applies the GT predicate on the "awarded_at" field.
func AwardedAtGT(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldAwardedAt, v))
}

// AwardedAtGTE applies the GTE predicate on the "awarded_at" field.
func AwardedAtGTE(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldAwardedAt, v))
}

// AwardedAtLT applies the LT predicate on the "awarded_at" field.
func AwardedAtLT(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldAwardedAt, v))
}

// AwardedAtLTE applies the LTE predicate on the "awarded_at" field.
func AwardedAtLTE(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldAwardedAt, v))
}

// AwardedByEQ applies the EQ predicate on the "awarded_by" field.
func AwardedByEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldAwardedBy, v))
}

// AwardedByNEQ applies the NEQ predicate on the "awarded_by" field.
func AwardedByNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldAwardedBy, v))
}

// AwardedByIn applies the In predicate on the "awarded_by" field.
func AwardedByIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldAwardedBy, vs...))
}

// AwardedByNotIn applies the NotIn predicate on the "awarded_by" field.
func AwardedByNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldAwardedBy, vs...))
}

// AwardedByGT applies the GT predicate on the "awarded_by" field.
func AwardedByGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldAwardedBy, v))
}

// AwardedByGTE applies the GTE predicate on the "awarded_by" field.
func AwardedByGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldAwardedBy, v))
}

// AwardedByLT applies the LT predicate on the "awarded_by" field.
func AwardedByLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldAwardedBy, v))
}

// AwardedByLTE applies the LTE predicate on the "awarded_by" field.
func AwardedByLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldAwardedBy, v))
}

// AwardedByContains applies the Contains predicate on the "awarded_by" field.
func AwardedByContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldAwardedBy, v))
}

// AwardedByHasPrefix applies the HasPrefix predicate on the "awarded_by" field.
func AwardedByHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldAwardedBy, v))
}

// AwardedByHasSuffix applies the HasSuffix predicate on the "awarded_by" field.
func AwardedByHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldAwardedBy, v))
}

// AwardedByIsNil applies the IsNil predicate on the "awarded_by" field.
func AwardedByIsNil() predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIsNull(FieldAwardedBy))
}

// AwardedByNotNil applies the NotNil predicate on the "awarded_by" field.
func AwardedByNotNil() predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotNull(FieldAwardedBy))
}

// AwardedByEqualFold applies the EqualFold predicate on the "awarded_by" field.
func AwardedByEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldAwardedBy, v))
}

// AwardedByContainsFold applies the ContainsFold predicate on the "awarded_by" field.
func AwardedByContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldAwardedBy, v))
}

// HasBadge applies the HasEdge predicate on the "badge" edge.
func HasBadge() predicate.UserBadge {
	return predicate.UserBadge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BadgeTable, BadgeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBadgeWith applies the HasEdge predicate on the "badge" edge with a given conditions (other predicates).
func HasBadgeWith(preds ...predicate.Badge) predicate.UserBadge {
	return predicate.UserBadge(func(s *sql.Selector) {
		step := newBadgeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.NotPredicates(p))
}
