// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldKey, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldDescription, v))
}

// Icon applies equality check predicate on the "icon" field. It's identical to IconEQ.
func Icon(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldIcon, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldColor, v))
}

// TargetValue applies equality check predicate on the "target_value" field. It's identical to TargetValueEQ.
func TargetValue(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldTargetValue, v))
}

// BadgeSlug applies equality check predicate on the "badge_slug" field. It's identical to BadgeSlugEQ.
func BadgeSlug(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldBadgeSlug, v))
}

// Entitlement applies equality check predicate on the "entitlement" field. It's identical to EntitlementEQ.
func Entitlement(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldEntitlement, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldPoints, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldEventType, v))
}

// GaugeField applies equality check predicate on the "gauge_field" field. It's identical to GaugeFieldEQ.
func GaugeField(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldGaugeField, v))
}

// Hidden applies equality check predicate on the "hidden" field. It's identical to HiddenEQ.
func Hidden(v bool) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldHidden, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldCreatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldKey, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldDescription, v))
}

// IconEQ applies the EQ predicate on the "icon" field.
func IconEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldIcon, v))
}

// IconNEQ applies the NEQ predicate on the "icon" field.
func IconNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldIcon, v))
}

// IconIn applies the In predicate on the "icon" field.
func IconIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldIcon, vs...))
}

// IconNotIn applies the NotIn predicate on the "icon" field.
func IconNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldIcon, vs...))
}

// IconGT applies the GT predicate on the "icon" field.
func IconGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldIcon, v))
}

// IconGTE applies the GTE predicate on the "icon" field.
func IconGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldIcon, v))
}

// IconLT applies the LT predicate on the "icon" field.
func IconLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldIcon, v))
}

// IconLTE applies the LTE predicate on the "icon" field.
func IconLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldIcon, v))
}

// IconContains applies the Contains predicate on the "icon" field.
func IconContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldIcon, v))
}

// IconHasPrefix applies the HasPrefix predicate on the "icon" field.
func IconHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldIcon, v))
}

// IconHasSuffix applies the HasSuffix predicate on the "icon" field.
func IconHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldIcon, v))
}

// IconIsNil applies the IsNil predicate on the "icon" field.
func IconIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldIcon))
}

// IconNotNil applies the NotNil predicate on the "icon" field.
func IconNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldIcon))
}

// IconEqualFold applies the EqualFold predicate on the "icon" field.
func IconEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldIcon, v))
}

// IconContainsFold applies the ContainsFold predicate on the "icon" field.
func IconContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldIcon, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldColor, v))
}

// ColorIsNil applies the IsNil predicate on the "color" field.
func ColorIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldColor))
}

// ColorNotNil applies the NotNil predicate on the "color" field.
func ColorNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldColor))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldColor, v))
}

// TargetValueEQ applies the EQ predicate on the "target_value" field.
func TargetValueEQ(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldTargetValue, v))
}

// TargetValueNEQ applies the NEQ predicate on the "target_value" field.
func TargetValueNEQ(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldTargetValue, v))
}

// TargetValueIn applies the In predicate on the "target_value" field.
func TargetValueIn(vs ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldTargetValue, vs...))
}

// TargetValueNotIn applies the NotIn predicate on the "target_value" field.
func TargetValueNotIn(vs ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldTargetValue, vs...))
}

// TargetValueGT applies the GT predicate on the "target_value" field.
func TargetValueGT(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldTargetValue, v))
}

// TargetValueGTE applies the GTE predicate on the "target_value" field.
func TargetValueGTE(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldTargetValue, v))
}

// TargetValueLT applies the LT predicate on the "target_value" field.
func TargetValueLT(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldTargetValue, v))
}

// TargetValueLTE applies the LTE predicate on the "target_value" field.
func TargetValueLTE(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldTargetValue, v))
}

// BadgeSlugEQ applies the EQ predicate on the "badge_slug" field.
func BadgeSlugEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldBadgeSlug, v))
}

// BadgeSlugNEQ applies the NEQ predicate on the "badge_slug" field.
func BadgeSlugNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldBadgeSlug, v))
}

// BadgeSlugIn applies the In predicate on the "badge_slug" field.
func BadgeSlugIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldBadgeSlug, vs...))
}

// BadgeSlugNotIn applies the NotIn predicate on the "badge_slug" field.
func BadgeSlugNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldBadgeSlug, vs...))
}

// BadgeSlugGT applies the GT predicate on the "badge_slug" field.
func BadgeSlugGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldBadgeSlug, v))
}

// BadgeSlugGTE applies the GTE predicate on the "badge_slug" field.
func BadgeSlugGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldBadgeSlug, v))
}

// BadgeSlugLT applies the LT predicate on the "badge_slug" field.
func BadgeSlugLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldBadgeSlug, v))
}

// BadgeSlugLTE applies the LTE predicate on the "badge_slug" field.
func BadgeSlugLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldBadgeSlug, v))
}

// BadgeSlugContains applies the Contains predicate on the "badge_slug" field.
func BadgeSlugContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldBadgeSlug, v))
}

// BadgeSlugHasPrefix applies the HasPrefix predicate on the "badge_slug" field.
func BadgeSlugHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldBadgeSlug, v))
}

// BadgeSlugHasSuffix applies the HasSuffix predicate on the "badge_slug" field.
func BadgeSlugHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldBadgeSlug, v))
}

// BadgeSlugIsNil applies the IsNil predicate on the "badge_slug" field.
func BadgeSlugIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldBadgeSlug))
}

// BadgeSlugNotNil applies the NotNil predicate on the "badge_slug" field.
func BadgeSlugNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldBadgeSlug))
}

// BadgeSlugEqualFold applies the EqualFold predicate on the "badge_slug" field.
func BadgeSlugEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldBadgeSlug, v))
}

// BadgeSlugContainsFold applies the ContainsFold predicate on the "badge_slug" field.
func BadgeSlugContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldBadgeSlug, v))
}

// EntitlementEQ applies the EQ predicate on the "entitlement" field.
func EntitlementEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldEntitlement, v))
}

// EntitlementNEQ applies the NEQ predicate on the "entitlement" field.
func EntitlementNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldEntitlement, v))
}

// EntitlementIn applies the In predicate on the "entitlement" field.
func EntitlementIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldEntitlement, vs...))
}

// EntitlementNotIn applies the NotIn predicate on the "entitlement" field.
func EntitlementNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldEntitlement, vs...))
}

// EntitlementGT applies the GT predicate on the "entitlement" field.
func EntitlementGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldEntitlement, v))
}

// EntitlementGTE applies the GTE predicate on the "entitlement" field.
func EntitlementGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldEntitlement, v))
}

// EntitlementLT applies the LT predicate on the "entitlement" field.
func EntitlementLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldEntitlement, v))
}

// EntitlementLTE applies the LTE predicate on the "entitlement" field.
func EntitlementLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldEntitlement, v))
}

// EntitlementContains applies the Contains predicate on the "entitlement" field.
func EntitlementContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldEntitlement, v))
}

// EntitlementHasPrefix applies the HasPrefix predicate on the "entitlement" field.
func EntitlementHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldEntitlement, v))
}

// EntitlementHasSuffix applies the HasSuffix predicate on the "entitlement" field.
func EntitlementHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldEntitlement, v))
}

// EntitlementIsNil applies the IsNil predicate on the "entitlement" field.
func EntitlementIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldEntitlement))
}

// EntitlementNotNil applies the NotNil predicate on the "entitlement" field.
func EntitlementNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldEntitlement))
}

// EntitlementEqualFold applies the EqualFold predicate on the "entitlement" field.
func EntitlementEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldEntitlement, v))
}

// EntitlementContainsFold applies the ContainsFold predicate on the "entitlement" field.
func EntitlementContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldEntitlement, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldPoints, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeIsNil applies the IsNil predicate on the "event_type" field.
func EventTypeIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldEventType))
}

// EventTypeNotNil applies the NotNil predicate on the "event_type" field.
func EventTypeNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldEventType))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldEventType, v))
}

// ConditionsIsNil applies the IsNil predicate on the "conditions" field.
func ConditionsIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldConditions))
}

// ConditionsNotNil applies the NotNil predicate on the "conditions" field.
func ConditionsNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldConditions))
}

// ProgressModeEQ applies the EQ predicate on the "progress_mode" field.
func ProgressModeEQ(v ProgressMode) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldProgressMode, v))
}

// ProgressModeNEQ applies the NEQ predicate on the "progress_mode" field.
func ProgressModeNEQ(v ProgressMode) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldProgressMode, v))
}

// ProgressModeIn applies the In predicate on the "progress_mode" field.
func ProgressModeIn(vs ...ProgressMode) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldProgressMode, vs...))
}

// ProgressModeNotIn applies the NotIn predicate on the "progress_mode" field.
func ProgressModeNotIn(vs ...ProgressMode) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldProgressMode, vs...))
}

// GaugeFieldEQ applies the EQ predicate on the "gauge_field" field.
func GaugeFieldEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldGaugeField, v))
}

// GaugeFieldNEQ applies the NEQ predicate on the "gauge_field" field.
func GaugeFieldNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldGaugeField, v))
}

// GaugeFieldIn applies the In predicate on the "gauge_field" field.
func GaugeFieldIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldGaugeField, vs...))
}

// GaugeFieldNotIn applies the NotIn predicate on the "gauge_field" field.
func GaugeFieldNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldGaugeField, vs...))
}

// GaugeFieldGT applies the GT predicate on the "gauge_field" field.
func GaugeFieldGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldGaugeField, v))
}

// GaugeFieldGTE applies the GTE predicate on the "gauge_field" field.
func GaugeFieldGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldGaugeField, v))
}

// GaugeFieldLT applies the LT predicate on the "gauge_field" field.
func GaugeFieldLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldGaugeField, v))
}

// GaugeFieldLTE applies the LTE predicate on the "gauge_field" field.
func GaugeFieldLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldGaugeField, v))
}

// GaugeFieldContains applies the Contains predicate on the "gauge_field" field.
func GaugeFieldContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldGaugeField, v))
}

// GaugeFieldHasPrefix applies the HasPrefix predicate on the "gauge_field" field.
func GaugeFieldHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldGaugeField, v))
}

// GaugeFieldHasSuffix applies the HasSuffix predicate on the "gauge_field" field.
func GaugeFieldHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldGaugeField, v))
}

// GaugeFieldIsNil applies the IsNil predicate on the "gauge_field" field.
func GaugeFieldIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldGaugeField))
}

// GaugeFieldNotNil applies the NotNil predicate on the "gauge_field" field.
func GaugeFieldNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldGaugeField))
}

// GaugeFieldEqualFold applies the EqualFold predicate on the "gauge_field" field.
func GaugeFieldEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldGaugeField, v))
}

// GaugeFieldContainsFold applies the ContainsFold predicate on the "gauge_field" field.
func GaugeFieldContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldGaugeField, v))
}

// HiddenEQ applies the EQ predicate on the "hidden" field.
func HiddenEQ(v bool) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldHidden, v))
}

// HiddenNEQ applies the NEQ predicate on the "hidden" field.
func HiddenNEQ(v bool) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldHidden, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.NotPredicates(p))
}
