// Code generated by ent, DO NOT EDIT.

package achievementprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldUserID, v))
}

// AchievementKey applies equality check predicate on the "achievement_key" field. It's identical to AchievementKeyEQ.
func AchievementKey(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldAchievementKey, v))
}

// CurrentValue applies equality check predicate on the "current_value" field. It's identical to CurrentValueEQ.
func CurrentValue(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldCurrentValue, v))
}

// TargetValue applies equality check predicate on the "target_value" field. It's identical to TargetValueEQ.
func TargetValue(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldTargetValue, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldContainsFold(FieldUserID, v))
}

// AchievementKeyEQ applies the EQ predicate on the "achievement_key" field.
func AchievementKeyEQ(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldAchievementKey, v))
}

// AchievementKeyNEQ applies the NEQ predicate on the "achievement_key" field.
func AchievementKeyNEQ(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNEQ(FieldAchievementKey, v))
}

// AchievementKeyIn applies the In predicate on the "achievement_key" field.
func AchievementKeyIn(vs ...string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIn(FieldAchievementKey, vs...))
}

// AchievementKeyNotIn applies the NotIn predicate on the "achievement_key" field.
func AchievementKeyNotIn(vs ...string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotIn(FieldAchievementKey, vs...))
}

// AchievementKeyGT applies the GT predicate on the "achievement_key" field.
func AchievementKeyGT(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGT(FieldAchievementKey, v))
}

// AchievementKeyGTE applies the GTE predicate on the "achievement_key" field.
func AchievementKeyGTE(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGTE(FieldAchievementKey, v))
}

// AchievementKeyLT applies the LT predicate on the "achievement_key" field.
func AchievementKeyLT(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLT(FieldAchievementKey, v))
}

// AchievementKeyLTE applies the LTE predicate on the "achievement_key" field.
func AchievementKeyLTE(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLTE(FieldAchievementKey, v))
}

// AchievementKeyContains applies the Contains predicate on the "achievement_key" field.
func AchievementKeyContains(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldContains(FieldAchievementKey, v))
}

// AchievementKeyHasPrefix applies the HasPrefix predicate on the "achievement_key" field.
func AchievementKeyHasPrefix(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldHasPrefix(FieldAchievementKey, v))
}

// AchievementKeyHasSuffix applies the HasSuffix predicate on the "achievement_key" field.
func AchievementKeyHasSuffix(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldHasSuffix(FieldAchievementKey, v))
}

// AchievementKeyEqualFold applies the EqualFold predicate on the "achievement_key" field.
func AchievementKeyEqualFold(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEqualFold(FieldAchievementKey, v))
}

// AchievementKeyContainsFold applies the ContainsFold predicate on the "achievement_key" field.
func AchievementKeyContainsFold(v string) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldContainsFold(FieldAchievementKey, v))
}

// CurrentValueEQ applies the EQ predicate on the "current_value" field.
func CurrentValueEQ(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldCurrentValue, v))
}

// CurrentValueNEQ applies the NEQ predicate on the "current_value" field.
func CurrentValueNEQ(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNEQ(FieldCurrentValue, v))
}

// CurrentValueIn applies the In predicate on the "current_value" field.
func CurrentValueIn(vs ...int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIn(FieldCurrentValue, vs...))
}

// CurrentValueNotIn applies the NotIn predicate on the "current_value" field.
func CurrentValueNotIn(vs ...int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotIn(FieldCurrentValue, vs...))
}

// CurrentValueGT applies the GT predicate on the "current_value" field.
func CurrentValueGT(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGT(FieldCurrentValue, v))
}

// CurrentValueGTE applies the GTE predicate on the "current_value" field.
func CurrentValueGTE(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGTE(FieldCurrentValue, v))
}

// CurrentValueLT applies the LT predicate on the "current_value" field.
func CurrentValueLT(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLT(FieldCurrentValue, v))
}

// CurrentValueLTE applies the LTE predicate on the "current_value" field.
func CurrentValueLTE(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLTE(FieldCurrentValue, v))
}

// TargetValueEQ applies the EQ predicate on the "target_value" field.
func TargetValueEQ(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldTargetValue, v))
}

// TargetValueNEQ applies the NEQ predicate on the "target_value" field.
func TargetValueNEQ(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNEQ(FieldTargetValue, v))
}

// TargetValueIn applies the In predicate on the "target_value" field.
func TargetValueIn(vs ...int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIn(FieldTargetValue, vs...))
}

// TargetValueNotIn applies the NotIn predicate on the "target_value" field.
func TargetValueNotIn(vs ...int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotIn(FieldTargetValue, vs...))
}

// TargetValueGT applies the GT predicate on the "target_value" field.
func TargetValueGT(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGT(FieldTargetValue, v))
}

// TargetValueGTE applies the GTE predicate on the "target_value" field.
func TargetValueGTE(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGTE(FieldTargetValue, v))
}

// TargetValueLT applies the LT predicate on the "target_value" field.
func TargetValueLT(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLT(FieldTargetValue, v))
}

// TargetValueLTE applies the LTE predicate on the "target_value" field.
func TargetValueLTE(v int) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLTE(FieldTargetValue, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AchievementProgress) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AchievementProgress) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AchievementProgress) predicate.AchievementProgress {
	return predicate.AchievementProgress(sql.NotPredicates(p))
}
