// Code generated by ent, DO NOT EDIT.

package userentitlement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldUserID, v))
}

// Entitlement applies equality check predicate on the "entitlement" field. It's identical to EntitlementEQ.
func Entitlement(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldEntitlement, v))
}

// GrantedAt applies equality check predicate on the "granted_at" field. It's identical to GrantedAtEQ.
func GrantedAt(v time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldGrantedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldContainsFold(FieldUserID, v))
}

// EntitlementEQ applies the EQ predicate on the "entitlement" field.
func EntitlementEQ(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldEntitlement, v))
}

// EntitlementNEQ applies the NEQ predicate on the "entitlement" field.
func EntitlementNEQ(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNEQ(FieldEntitlement, v))
}

// EntitlementIn applies the In predicate on the "entitlement" field.
func EntitlementIn(vs ...string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldIn(FieldEntitlement, vs...))
}

// EntitlementNotIn applies the NotIn predicate on the "entitlement" field.
func EntitlementNotIn(vs ...string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNotIn(FieldEntitlement, vs...))
}

// EntitlementGT applies the GT predicate on the "entitlement" field.
func EntitlementGT(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGT(FieldEntitlement, v))
}

// EntitlementGTE applies the GTE predicate on the "entitlement" field.
func EntitlementGTE(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGTE(FieldEntitlement, v))
}

// EntitlementLT applies the LT predicate on the "entitlement" field.
func EntitlementLT(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLT(FieldEntitlement, v))
}

// EntitlementLTE applies the LTE predicate on the "entitlement" field.
func EntitlementLTE(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLTE(FieldEntitlement, v))
}

// EntitlementContains applies the Contains predicate on the "entitlement" field.
func EntitlementContains(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldContains(FieldEntitlement, v))
}

// EntitlementHasPrefix applies the HasPrefix predicate on the "entitlement" field.
func EntitlementHasPrefix(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldHasPrefix(FieldEntitlement, v))
}

// EntitlementHasSuffix applies the HasSuffix predicate on the "entitlement" field.
func EntitlementHasSuffix(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldHasSuffix(FieldEntitlement, v))
}

// EntitlementEqualFold applies the EqualFold predicate on the "entitlement" field.
func EntitlementEqualFold(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEqualFold(FieldEntitlement, v))
}

// EntitlementContainsFold applies the ContainsFold predicate on the "entitlement" field.
func EntitlementContainsFold(v string) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldContainsFold(FieldEntitlement, v))
}

// GrantedAtEQ applies the EQ predicate on the "granted_at" field.
func GrantedAtEQ(v time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldEQ(FieldGrantedAt, v))
}

// GrantedAtNEQ applies the NEQ predicate on the "granted_at" field.
func GrantedAtNEQ(v time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNEQ(FieldGrantedAt, v))
}

// GrantedAtIn applies the In predicate on the "granted_at" field.
func GrantedAtIn(vs ...time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldIn(FieldGrantedAt, vs...))
}

// GrantedAtNotIn applies the NotIn predicate on the "granted_at" field.
func GrantedAtNotIn(vs ...time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldNotIn(FieldGrantedAt, vs...))
}

// GrantedAtGT applies the GT predicate on the "granted_at" field.
func GrantedAtGT(v time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGT(FieldGrantedAt, v))
}

// GrantedAtGTE applies the GTE predicate on the "granted_at" field.
func GrantedAtGTE(v time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldGTE(FieldGrantedAt, v))
}

// GrantedAtLT applies the LT predicate on the "granted_at" field.
func GrantedAtLT(v time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLT(FieldGrantedAt, v))
}

// GrantedAtLTE applies the LTE predicate on the "granted_at" field.
func GrantedAtLTE(v time.Time) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.FieldLTE(FieldGrantedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserEntitlement) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserEntitlement) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserEntitlement) predicate.UserEntitlement {
	return predicate.UserEntitlement(sql.NotPredicates(p))
}
