// Code generated by ent, DO NOT EDIT.

package badgeclaimlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContainsFold(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldCode, v))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldBadgeID, v))
}

// MaxUses applies equality check predicate on the "max_uses" field. It's identical to MaxUsesEQ.
func MaxUses(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldMaxUses, v))
}

// CurrentUses applies equality check predicate on the "current_uses" field. It's identical to CurrentUsesEQ.
func CurrentUses(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldCurrentUses, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldExpiresAt, v))
}

// AchievementKey applies equality check predicate on the "achievement_key" field. It's identical to AchievementKeyEQ.
func AchievementKey(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldAchievementKey, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldEventType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContainsFold(FieldCode, v))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldBadgeID, vs...))
}

// BadgeIDGT applies the GT predicate on the "badge_id" field.
func BadgeIDGT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldBadgeID, v))
}

// BadgeIDGTE applies the GTE predicate on the "badge_id" field.
func BadgeIDGTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldBadgeID, v))
}

// BadgeIDLT applies the LT predicate on the "badge_id" field.
func BadgeIDLT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldBadgeID, v))
}

// BadgeIDLTE applies the LTE predicate on the "badge_id" field.
func BadgeIDLTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldBadgeID, v))
}

// BadgeIDContains applies the Contains predicate on the "badge_id" field.
func BadgeIDContains(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContains(FieldBadgeID, v))
}

// BadgeIDHasPrefix applies the HasPrefix predicate on the "badge_id" field.
func BadgeIDHasPrefix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasPrefix(FieldBadgeID, v))
}

// BadgeIDHasSuffix applies the HasSuffix predicate on the "badge_id" field.
func BadgeIDHasSuffix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasSuffix(FieldBadgeID, v))
}

// BadgeIDEqualFold applies the EqualFold predicate on the "badge_id" field.
func BadgeIDEqualFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEqualFold(FieldBadgeID, v))
}

// BadgeIDContainsFold applies the ContainsFold predicate on the "badge_id" field.
func BadgeIDContainsFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContainsFold(FieldBadgeID, v))
}

// MaxUsesEQ applies the EQ predicate on the "max_uses" field.
func MaxUsesEQ(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldMaxUses, v))
}

// MaxUsesNEQ applies the NEQ predicate on the "max_uses" field.
func MaxUsesNEQ(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldMaxUses, v))
}

// MaxUsesIn applies the In predicate on the "max_uses" field.
func MaxUsesIn(vs ...int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldMaxUses, vs...))
}

// MaxUsesNotIn applies the NotIn predicate on the "max_uses" field.
func MaxUsesNotIn(vs ...int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldMaxUses, vs...))
}

// MaxUsesGT applies the GT predicate on the "max_uses" field.
func MaxUsesGT(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldMaxUses, v))
}

// MaxUsesGTE applies the GTE predicate on the "max_uses" field.
func MaxUsesGTE(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldMaxUses, v))
}

// MaxUsesLT applies the LT predicate on the "max_uses" field.
func MaxUsesLT(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldMaxUses, v))
}

// MaxUsesLTE applies the LTE predicate on the "max_uses" field.
func MaxUsesLTE(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldMaxUses, v))
}

// MaxUsesIsNil applies the IsNil predicate on the "max_uses" field.
func MaxUsesIsNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIsNull(FieldMaxUses))
}

// MaxUsesNotNil applies the NotNil predicate on the "max_uses" field.
func MaxUsesNotNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotNull(FieldMaxUses))
}

// CurrentUsesEQ applies the EQ predicate on the "current_uses" field.
func CurrentUsesEQ(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldCurrentUses, v))
}

// CurrentUsesNEQ applies the NEQ predicate on the "current_uses" field.
func CurrentUsesNEQ(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldCurrentUses, v))
}

// CurrentUsesIn applies the In predicate on the "current_uses" field.
func CurrentUsesIn(vs ...int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldCurrentUses, vs...))
}

// CurrentUsesNotIn applies the NotIn predicate on the "current_uses" field.
func CurrentUsesNotIn(vs ...int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldCurrentUses, vs...))
}

// CurrentUsesGT applies the GT predicate on the "current_uses" field.
func CurrentUsesGT(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldCurrentUses, v))
}

// CurrentUsesGTE applies the GTE predicate on the "current_uses" field.
func CurrentUsesGTE(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldCurrentUses, v))
}

// CurrentUsesLT applies the LT predicate on the "current_uses" field.
func CurrentUsesLT(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldCurrentUses, v))
}

// CurrentUsesLTE applies the LTE predicate on the "current_uses" field.
func CurrentUsesLTE(v int) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldCurrentUses, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotNull(FieldExpiresAt))
}

// AchievementKeyEQ applies the EQ predicate on the "achievement_key" field.
func AchievementKeyEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldAchievementKey, v))
}

// AchievementKeyNEQ applies the NEQ predicate on the "achievement_key" field.
func AchievementKeyNEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldAchievementKey, v))
}

// AchievementKeyIn applies the In predicate on the "achievement_key" field.
func AchievementKeyIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldAchievementKey, vs...))
}

// AchievementKeyNotIn applies the NotIn predicate on the "achievement_key" field.
func AchievementKeyNotIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldAchievementKey, vs...))
}

// AchievementKeyGT applies the GT predicate on the "achievement_key" field.
func AchievementKeyGT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldAchievementKey, v))
}

// AchievementKeyGTE applies the GTE predicate on the "achievement_key" field.
func AchievementKeyGTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldAchievementKey, v))
}

// AchievementKeyLT applies the LT predicate on the "achievement_key" field.
func AchievementKeyLT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldAchievementKey, v))
}

// AchievementKeyLTE applies the LTE predicate on the "achievement_key" field.
func AchievementKeyLTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldAchievementKey, v))
}

// AchievementKeyContains applies the Contains predicate on the "achievement_key" field.
func AchievementKeyContains(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContains(FieldAchievementKey, v))
}

// AchievementKeyHasPrefix applies the HasPrefix predicate on the "achievement_key" field.
func AchievementKeyHasPrefix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasPrefix(FieldAchievementKey, v))
}

// AchievementKeyHasSuffix applies the HasSuffix predicate on the "achievement_key" field.
func AchievementKeyHasSuffix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasSuffix(FieldAchievementKey, v))
}

// AchievementKeyIsNil applies the IsNil predicate on the "achievement_key" field.
func AchievementKeyIsNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIsNull(FieldAchievementKey))
}

// AchievementKeyNotNil applies the NotNil predicate on the "achievement_key" field.
func AchievementKeyNotNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotNull(FieldAchievementKey))
}

// AchievementKeyEqualFold applies the EqualFold predicate on the "achievement_key" field.
func AchievementKeyEqualFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEqualFold(FieldAchievementKey, v))
}

// AchievementKeyContainsFold applies the ContainsFold predicate on the "achievement_key" field.
func AchievementKeyContainsFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContainsFold(FieldAchievementKey, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeIsNil applies the IsNil predicate on the "event_type" field.
func EventTypeIsNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIsNull(FieldEventType))
}

// EventTypeNotNil applies the NotNil predicate on the "event_type" field.
func EventTypeNotNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotNull(FieldEventType))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldContainsFold(FieldEventType, v))
}

// EventPayloadIsNil applies the IsNil predicate on the "event_payload" field.
func EventPayloadIsNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIsNull(FieldEventPayload))
}

// EventPayloadNotNil applies the NotNil predicate on the "event_payload" field.
func EventPayloadNotNil() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotNull(FieldEventPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBadge applies the HasEdge predicate on the "badge" edge.
func HasBadge() predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BadgeTable, BadgeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBadgeWith applies the HasEdge predicate on the "badge" edge with a given conditions (other predicates).
func HasBadgeWith(preds ...predicate.Badge) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(func(s *sql.Selector) {
		step := newBadgeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BadgeClaimLink) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BadgeClaimLink) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BadgeClaimLink) predicate.BadgeClaimLink {
	return predicate.BadgeClaimLink(sql.NotPredicates(p))
}
