// Code generated by ent, DO NOT EDIT.

package checkincode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldContainsFold(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldEventID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldCode, v))
}

// MaxUses applies equality check predicate on the "max_uses" field. It's identical to MaxUsesEQ.
func MaxUses(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldMaxUses, v))
}

// CurrentUses applies equality check predicate on the "current_uses" field. It's identical to CurrentUsesEQ.
func CurrentUses(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldCurrentUses, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldContainsFold(FieldEventID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldContainsFold(FieldCode, v))
}

// MaxUsesEQ applies the EQ predicate on the "max_uses" field.
func MaxUsesEQ(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldMaxUses, v))
}

// MaxUsesNEQ applies the NEQ predicate on the "max_uses" field.
func MaxUsesNEQ(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNEQ(FieldMaxUses, v))
}

// MaxUsesIn applies the In predicate on the "max_uses" field.
func MaxUsesIn(vs ...int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldIn(FieldMaxUses, vs...))
}

// MaxUsesNotIn applies the NotIn predicate on the "max_uses" field.
func MaxUsesNotIn(vs ...int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNotIn(FieldMaxUses, vs...))
}

// MaxUsesGT applies the GT predicate on the "max_uses" field.
func MaxUsesGT(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGT(FieldMaxUses, v))
}

// MaxUsesGTE applies the GTE predicate on the "max_uses" field.
func MaxUsesGTE(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGTE(FieldMaxUses, v))
}

// MaxUsesLT applies the LT predicate on the "max_uses" field.
func MaxUsesLT(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLT(FieldMaxUses, v))
}

// MaxUsesLTE applies the LTE predicate on the "max_uses" field.
func MaxUsesLTE(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLTE(FieldMaxUses, v))
}

// MaxUsesIsNil applies the IsNil predicate on the "max_uses" field.
func MaxUsesIsNil() predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldIsNull(FieldMaxUses))
}

// MaxUsesNotNil applies the NotNil predicate on the "max_uses" field.
func MaxUsesNotNil() predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNotNull(FieldMaxUses))
}

// CurrentUsesEQ applies the EQ predicate on the "current_uses" field.
func CurrentUsesEQ(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldCurrentUses, v))
}

// CurrentUsesNEQ applies the NEQ predicate on the "current_uses" field.
func CurrentUsesNEQ(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNEQ(FieldCurrentUses, v))
}

// CurrentUsesIn applies the In predicate on the "current_uses" field.
func CurrentUsesIn(vs ...int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldIn(FieldCurrentUses, vs...))
}

// CurrentUsesNotIn applies the NotIn predicate on the "current_uses" field.
func CurrentUsesNotIn(vs ...int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNotIn(FieldCurrentUses, vs...))
}

// CurrentUsesGT applies the GT predicate on the "current_uses" field.
func CurrentUsesGT(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGT(FieldCurrentUses, v))
}

// CurrentUsesGTE applies the GTE predicate on the "current_uses" field.
func CurrentUsesGTE(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGTE(FieldCurrentUses, v))
}

// CurrentUsesLT applies the LT predicate on the "current_uses" field.
func CurrentUsesLT(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLT(FieldCurrentUses, v))
}

// CurrentUsesLTE applies the LTE predicate on the "current_uses" field.
func CurrentUsesLTE(v int) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLTE(FieldCurrentUses, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CheckinCode {
	return predicate.CheckinCode(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckinCode) predicate.CheckinCode {
	return predicate.CheckinCode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckinCode) predicate.CheckinCode {
	return predicate.CheckinCode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckinCode) predicate.CheckinCode {
	return predicate.CheckinCode(sql.NotPredicates(p))
}
