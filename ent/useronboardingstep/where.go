// Code generated by ent, DO NOT EDIT.

package useronboardingstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldUserID, v))
}

// StepKey applies equality check predicate on the "step_key" field. It's identical to StepKeyEQ.
func StepKey(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldStepKey, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldContainsFold(FieldUserID, v))
}

// StepKeyEQ applies the EQ predicate on the "step_key" field.
func StepKeyEQ(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldStepKey, v))
}

// StepKeyNEQ applies the NEQ predicate on the "step_key" field.
func StepKeyNEQ(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNEQ(FieldStepKey, v))
}

// StepKeyIn applies the In predicate on the "step_key" field.
func StepKeyIn(vs ...string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldIn(FieldStepKey, vs...))
}

// StepKeyNotIn applies the NotIn predicate on the "step_key" field.
func StepKeyNotIn(vs ...string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNotIn(FieldStepKey, vs...))
}

// StepKeyGT applies the GT predicate on the "step_key" field.
func StepKeyGT(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGT(FieldStepKey, v))
}

// StepKeyGTE applies the GTE predicate on the "step_key" field.
func StepKeyGTE(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGTE(FieldStepKey, v))
}

// StepKeyLT applies the LT predicate on the "step_key" field.
func StepKeyLT(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLT(FieldStepKey, v))
}

// StepKeyLTE applies the LTE predicate on the "step_key" field.
func StepKeyLTE(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLTE(FieldStepKey, v))
}

// StepKeyContains applies the Contains predicate on the "step_key" field.
func StepKeyContains(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldContains(FieldStepKey, v))
}

// StepKeyHasPrefix applies the HasPrefix predicate on the "step_key" field.
func StepKeyHasPrefix(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldHasPrefix(FieldStepKey, v))
}

// StepKeyHasSuffix applies the HasSuffix predicate on the "step_key" field.
func StepKeyHasSuffix(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldHasSuffix(FieldStepKey, v))
}

// StepKeyEqualFold applies the EqualFold predicate on the "step_key" field.
func StepKeyEqualFold(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEqualFold(FieldStepKey, v))
}

// StepKeyContainsFold applies the ContainsFold predicate on the "step_key" field.
func StepKeyContainsFold(v string) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldContainsFold(FieldStepKey, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserOnboardingStep) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserOnboardingStep) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserOnboardingStep) predicate.UserOnboardingStep {
	return predicate.UserOnboardingStep(sql.NotPredicates(p))
}
