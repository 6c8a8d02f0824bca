// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gatherhub/gatherhub/ent/achievement"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/checkincode"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/favorite"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/onboardingstep"
	"github.com/gatherhub/gatherhub/ent/platformconnection"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/queuedevent"
	"github.com/gatherhub/gatherhub/ent/rsvp"
	"github.com/gatherhub/gatherhub/ent/synclog"
	"github.com/gatherhub/gatherhub/ent/user"
	"github.com/gatherhub/gatherhub/ent/userbadge"
	"github.com/gatherhub/gatherhub/ent/userentitlement"
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
	"github.com/gatherhub/gatherhub/ent/venue"
	"github.com/gatherhub/gatherhub/ent/webhook"
	"github.com/gatherhub/gatherhub/ent/webhookdelivery"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievement         = "Achievement"
	TypeAchievementProgress = "AchievementProgress"
	TypeBadge               = "Badge"
	TypeBadgeClaimLink      = "BadgeClaimLink"
	TypeCheckin             = "Checkin"
	TypeCheckinCode         = "CheckinCode"
	TypeEvent               = "Event"
	TypeFavorite            = "Favorite"
	TypeGroup               = "Group"
	TypeOnboardingStep      = "OnboardingStep"
	TypePlatformConnection  = "PlatformConnection"
	TypeQueuedEvent         = "QueuedEvent"
	TypeRSVP                = "RSVP"
	TypeSyncLog             = "SyncLog"
	TypeUser                = "User"
	TypeUserBadge           = "UserBadge"
	TypeUserEntitlement     = "UserEntitlement"
	TypeUserOnboardingStep  = "UserOnboardingStep"
	TypeVenue               = "Venue"
	TypeWebhook             = "Webhook"
	TypeWebhookDelivery     = "WebhookDelivery"
)

// AchievementMutation represents an operation that mutates the Achievement nodes in the graph.
type AchievementMutation struct {
	config
	op               Op
	typ              string
	id               *string
	key              *string
	name             *string
	description      *string
	icon             *string
	color            *string
	target_value     *int
	addtarget_value  *int
	badge_slug       *string
	entitlement      *string
	points           *int
	addpoints        *int
	event_type       *string
	conditions       *[]map[string]interface{}
	appendconditions []map[string]interface{}
	progress_mode    *achievement.ProgressMode
	gauge_field      *string
	hidden           *bool
	enabled          *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Achievement, error)
	predicates       []predicate.Achievement
}

var _ ent.Mutation = (*AchievementMutation)(nil)

// achievementOption allows management of the mutation configuration using functional options.
type achievementOption func(*AchievementMutation)

// newAchievementMutation creates new mutation for the Achievement entity.
func newAchievementMutation(c config, op Op, opts ...achievementOption) *AchievementMutation {
	m := &AchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementID sets the ID field of the mutation.
func withAchievementID(id string) achievementOption {
	return func(m *AchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *Achievement
		)
		m.oldValue = func(ctx context.Context) (*Achievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Achievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievement sets the old Achievement of the mutation.
func withAchievement(node *Achievement) achievementOption {
	return func(m *AchievementMutation) {
		m.oldValue = func(context.Context) (*Achievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Achievement entities.
func (m *AchievementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Achievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *AchievementMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *AchievementMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *AchievementMutation) ResetKey() {
	m.key = nil
}

// SetName sets the "name" field.
func (m *AchievementMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AchievementMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AchievementMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AchievementMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AchievementMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AchievementMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[achievement.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AchievementMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[achievement.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AchievementMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, achievement.FieldDescription)
}

// SetIcon sets the "icon" field.
func (m *AchievementMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *AchievementMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldIcon(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ClearIcon clears the value of the "icon" field.
func (m *AchievementMutation) ClearIcon() {
	m.icon = nil
	m.clearedFields[achievement.FieldIcon] = struct{}{}
}

// IconCleared returns if the "icon" field was cleared in this mutation.
func (m *AchievementMutation) IconCleared() bool {
	_, ok := m.clearedFields[achievement.FieldIcon]
	return ok
}

// ResetIcon resets all changes to the "icon" field.
func (m *AchievementMutation) ResetIcon() {
	m.icon = nil
	delete(m.clearedFields, achievement.FieldIcon)
}

// SetColor sets the "color" field.
func (m *AchievementMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *AchievementMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *AchievementMutation) ClearColor() {
	m.color = nil
	m.clearedFields[achievement.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *AchievementMutation) ColorCleared() bool {
	_, ok := m.clearedFields[achievement.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *AchievementMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, achievement.FieldColor)
}

// SetTargetValue sets the "target_value" field.
func (m *AchievementMutation) SetTargetValue(i int) {
	m.target_value = &i
	m.addtarget_value = nil
}

// TargetValue returns the value of the "target_value" field in the mutation.
func (m *AchievementMutation) TargetValue() (r int, exists bool) {
	v := m.target_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetValue returns the old "target_value" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldTargetValue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetValue: %w", err)
	}
	return oldValue.TargetValue, nil
}

// AddTargetValue adds i to the "target_value" field.
func (m *AchievementMutation) AddTargetValue(i int) {
	if m.addtarget_value != nil {
		*m.addtarget_value += i
	} else {
		m.addtarget_value = &i
	}
}

// AddedTargetValue returns the value that was added to the "target_value" field in this mutation.
func (m *AchievementMutation) AddedTargetValue() (r int, exists bool) {
	v := m.addtarget_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetValue resets all changes to the "target_value" field.
func (m *AchievementMutation) ResetTargetValue() {
	m.target_value = nil
	m.addtarget_value = nil
}

// SetBadgeSlug sets the "badge_slug" field.
func (m *AchievementMutation) SetBadgeSlug(s string) {
	m.badge_slug = &s
}

// BadgeSlug returns the value of the "badge_slug" field in the mutation.
func (m *AchievementMutation) BadgeSlug() (r string, exists bool) {
	v := m.badge_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeSlug returns the old "badge_slug" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldBadgeSlug(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeSlug: %w", err)
	}
	return oldValue.BadgeSlug, nil
}

// ClearBadgeSlug clears the value of the "badge_slug" field.
func (m *AchievementMutation) ClearBadgeSlug() {
	m.badge_slug = nil
	m.clearedFields[achievement.FieldBadgeSlug] = struct{}{}
}

// BadgeSlugCleared returns if the "badge_slug" field was cleared in this mutation.
func (m *AchievementMutation) BadgeSlugCleared() bool {
	_, ok := m.clearedFields[achievement.FieldBadgeSlug]
	return ok
}

// ResetBadgeSlug resets all changes to the "badge_slug" field.
func (m *AchievementMutation) ResetBadgeSlug() {
	m.badge_slug = nil
	delete(m.clearedFields, achievement.FieldBadgeSlug)
}

// SetEntitlement sets the "entitlement" field.
func (m *AchievementMutation) SetEntitlement(s string) {
	m.entitlement = &s
}

// Entitlement returns the value of the "entitlement" field in the mutation.
func (m *AchievementMutation) Entitlement() (r string, exists bool) {
	v := m.entitlement
	if v == nil {
		return
	}
	return *v, true
}

// OldEntitlement returns the old "entitlement" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldEntitlement(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntitlement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntitlement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntitlement: %w", err)
	}
	return oldValue.Entitlement, nil
}

// ClearEntitlement clears the value of the "entitlement" field.
func (m *AchievementMutation) ClearEntitlement() {
	m.entitlement = nil
	m.clearedFields[achievement.FieldEntitlement] = struct{}{}
}

// EntitlementCleared returns if the "entitlement" field was cleared in this mutation.
func (m *AchievementMutation) EntitlementCleared() bool {
	_, ok := m.clearedFields[achievement.FieldEntitlement]
	return ok
}

// ResetEntitlement resets all changes to the "entitlement" field.
func (m *AchievementMutation) ResetEntitlement() {
	m.entitlement = nil
	delete(m.clearedFields, achievement.FieldEntitlement)
}

// SetPoints sets the "points" field.
func (m *AchievementMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *AchievementMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *AchievementMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *AchievementMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *AchievementMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetEventType sets the "event_type" field.
func (m *AchievementMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AchievementMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldEventType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *AchievementMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[achievement.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *AchievementMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[achievement.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AchievementMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, achievement.FieldEventType)
}

// SetConditions sets the "conditions" field.
func (m *AchievementMutation) SetConditions(value []map[string]interface{}) {
	m.conditions = &value
	m.appendconditions = nil
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *AchievementMutation) Conditions() (r []map[string]interface{}, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldConditions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// AppendConditions adds value to the "conditions" field.
func (m *AchievementMutation) AppendConditions(value []map[string]interface{}) {
	m.appendconditions = append(m.appendconditions, value...)
}

// AppendedConditions returns the list of values that were appended to the "conditions" field in this mutation.
func (m *AchievementMutation) AppendedConditions() ([]map[string]interface{}, bool) {
	if len(m.appendconditions) == 0 {
		return nil, false
	}
	return m.appendconditions, true
}

// ClearConditions clears the value of the "conditions" field.
func (m *AchievementMutation) ClearConditions() {
	m.conditions = nil
	m.appendconditions = nil
	m.clearedFields[achievement.FieldConditions] = struct{}{}
}

// ConditionsCleared returns if the "conditions" field was cleared in this mutation.
func (m *AchievementMutation) ConditionsCleared() bool {
	_, ok := m.clearedFields[achievement.FieldConditions]
	return ok
}

// ResetConditions resets all changes to the "conditions" field.
func (m *AchievementMutation) ResetConditions() {
	m.conditions = nil
	m.appendconditions = nil
	delete(m.clearedFields, achievement.FieldConditions)
}

// SetProgressMode sets the "progress_mode" field.
func (m *AchievementMutation) SetProgressMode(am achievement.ProgressMode) {
	m.progress_mode = &am
}

// ProgressMode returns the value of the "progress_mode" field in the mutation.
func (m *AchievementMutation) ProgressMode() (r achievement.ProgressMode, exists bool) {
	v := m.progress_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressMode returns the old "progress_mode" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldProgressMode(ctx context.Context) (v achievement.ProgressMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressMode: %w", err)
	}
	return oldValue.ProgressMode, nil
}

// ResetProgressMode resets all changes to the "progress_mode" field.
func (m *AchievementMutation) ResetProgressMode() {
	m.progress_mode = nil
}

// SetGaugeField sets the "gauge_field" field.
func (m *AchievementMutation) SetGaugeField(s string) {
	m.gauge_field = &s
}

// GaugeField returns the value of the "gauge_field" field in the mutation.
func (m *AchievementMutation) GaugeField() (r string, exists bool) {
	v := m.gauge_field
	if v == nil {
		return
	}
	return *v, true
}

// OldGaugeField returns the old "gauge_field" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldGaugeField(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGaugeField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGaugeField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGaugeField: %w", err)
	}
	return oldValue.GaugeField, nil
}

// ClearGaugeField clears the value of the "gauge_field" field.
func (m *AchievementMutation) ClearGaugeField() {
	m.gauge_field = nil
	m.clearedFields[achievement.FieldGaugeField] = struct{}{}
}

// GaugeFieldCleared returns if the "gauge_field" field was cleared in this mutation.
func (m *AchievementMutation) GaugeFieldCleared() bool {
	_, ok := m.clearedFields[achievement.FieldGaugeField]
	return ok
}

// ResetGaugeField resets all changes to the "gauge_field" field.
func (m *AchievementMutation) ResetGaugeField() {
	m.gauge_field = nil
	delete(m.clearedFields, achievement.FieldGaugeField)
}

// SetHidden sets the "hidden" field.
func (m *AchievementMutation) SetHidden(b bool) {
	m.hidden = &b
}

// Hidden returns the value of the "hidden" field in the mutation.
func (m *AchievementMutation) Hidden() (r bool, exists bool) {
	v := m.hidden
	if v == nil {
		return
	}
	return *v, true
}

// OldHidden returns the old "hidden" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldHidden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHidden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHidden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHidden: %w", err)
	}
	return oldValue.Hidden, nil
}

// ResetHidden resets all changes to the "hidden" field.
func (m *AchievementMutation) ResetHidden() {
	m.hidden = nil
}

// SetEnabled sets the "enabled" field.
func (m *AchievementMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AchievementMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AchievementMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AchievementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AchievementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AchievementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AchievementMutation builder.
func (m *AchievementMutation) Where(ps ...predicate.Achievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Achievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Achievement).
func (m *AchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.key != nil {
		fields = append(fields, achievement.FieldKey)
	}
	if m.name != nil {
		fields = append(fields, achievement.FieldName)
	}
	if m.description != nil {
		fields = append(fields, achievement.FieldDescription)
	}
	if m.icon != nil {
		fields = append(fields, achievement.FieldIcon)
	}
	if m.color != nil {
		fields = append(fields, achievement.FieldColor)
	}
	if m.target_value != nil {
		fields = append(fields, achievement.FieldTargetValue)
	}
	if m.badge_slug != nil {
		fields = append(fields, achievement.FieldBadgeSlug)
	}
	if m.entitlement != nil {
		fields = append(fields, achievement.FieldEntitlement)
	}
	if m.points != nil {
		fields = append(fields, achievement.FieldPoints)
	}
	if m.event_type != nil {
		fields = append(fields, achievement.FieldEventType)
	}
	if m.conditions != nil {
		fields = append(fields, achievement.FieldConditions)
	}
	if m.progress_mode != nil {
		fields = append(fields, achievement.FieldProgressMode)
	}
	if m.gauge_field != nil {
		fields = append(fields, achievement.FieldGaugeField)
	}
	if m.hidden != nil {
		fields = append(fields, achievement.FieldHidden)
	}
	if m.enabled != nil {
		fields = append(fields, achievement.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, achievement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldKey:
		return m.Key()
	case achievement.FieldName:
		return m.Name()
	case achievement.FieldDescription:
		return m.Description()
	case achievement.FieldIcon:
		return m.Icon()
	case achievement.FieldColor:
		return m.Color()
	case achievement.FieldTargetValue:
		return m.TargetValue()
	case achievement.FieldBadgeSlug:
		return m.BadgeSlug()
	case achievement.FieldEntitlement:
		return m.Entitlement()
	case achievement.FieldPoints:
		return m.Points()
	case achievement.FieldEventType:
		return m.EventType()
	case achievement.FieldConditions:
		return m.Conditions()
	case achievement.FieldProgressMode:
		return m.ProgressMode()
	case achievement.FieldGaugeField:
		return m.GaugeField()
	case achievement.FieldHidden:
		return m.Hidden()
	case achievement.FieldEnabled:
		return m.Enabled()
	case achievement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievement.FieldKey:
		return m.OldKey(ctx)
	case achievement.FieldName:
		return m.OldName(ctx)
	case achievement.FieldDescription:
		return m.OldDescription(ctx)
	case achievement.FieldIcon:
		return m.OldIcon(ctx)
	case achievement.FieldColor:
		return m.OldColor(ctx)
	case achievement.FieldTargetValue:
		return m.OldTargetValue(ctx)
	case achievement.FieldBadgeSlug:
		return m.OldBadgeSlug(ctx)
	case achievement.FieldEntitlement:
		return m.OldEntitlement(ctx)
	case achievement.FieldPoints:
		return m.OldPoints(ctx)
	case achievement.FieldEventType:
		return m.OldEventType(ctx)
	case achievement.FieldConditions:
		return m.OldConditions(ctx)
	case achievement.FieldProgressMode:
		return m.OldProgressMode(ctx)
	case achievement.FieldGaugeField:
		return m.OldGaugeField(ctx)
	case achievement.FieldHidden:
		return m.OldHidden(ctx)
	case achievement.FieldEnabled:
		return m.OldEnabled(ctx)
	case achievement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Achievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case achievement.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case achievement.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case achievement.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	case achievement.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case achievement.FieldTargetValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetValue(v)
		return nil
	case achievement.FieldBadgeSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeSlug(v)
		return nil
	case achievement.FieldEntitlement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntitlement(v)
		return nil
	case achievement.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case achievement.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case achievement.FieldConditions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case achievement.FieldProgressMode:
		v, ok := value.(achievement.ProgressMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressMode(v)
		return nil
	case achievement.FieldGaugeField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGaugeField(v)
		return nil
	case achievement.FieldHidden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHidden(v)
		return nil
	case achievement.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case achievement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_value != nil {
		fields = append(fields, achievement.FieldTargetValue)
	}
	if m.addpoints != nil {
		fields = append(fields, achievement.FieldPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldTargetValue:
		return m.AddedTargetValue()
	case achievement.FieldPoints:
		return m.AddedPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldTargetValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetValue(v)
		return nil
	case achievement.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(achievement.FieldDescription) {
		fields = append(fields, achievement.FieldDescription)
	}
	if m.FieldCleared(achievement.FieldIcon) {
		fields = append(fields, achievement.FieldIcon)
	}
	if m.FieldCleared(achievement.FieldColor) {
		fields = append(fields, achievement.FieldColor)
	}
	if m.FieldCleared(achievement.FieldBadgeSlug) {
		fields = append(fields, achievement.FieldBadgeSlug)
	}
	if m.FieldCleared(achievement.FieldEntitlement) {
		fields = append(fields, achievement.FieldEntitlement)
	}
	if m.FieldCleared(achievement.FieldEventType) {
		fields = append(fields, achievement.FieldEventType)
	}
	if m.FieldCleared(achievement.FieldConditions) {
		fields = append(fields, achievement.FieldConditions)
	}
	if m.FieldCleared(achievement.FieldGaugeField) {
		fields = append(fields, achievement.FieldGaugeField)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementMutation) ClearField(name string) error {
	switch name {
	case achievement.FieldDescription:
		m.ClearDescription()
		return nil
	case achievement.FieldIcon:
		m.ClearIcon()
		return nil
	case achievement.FieldColor:
		m.ClearColor()
		return nil
	case achievement.FieldBadgeSlug:
		m.ClearBadgeSlug()
		return nil
	case achievement.FieldEntitlement:
		m.ClearEntitlement()
		return nil
	case achievement.FieldEventType:
		m.ClearEventType()
		return nil
	case achievement.FieldConditions:
		m.ClearConditions()
		return nil
	case achievement.FieldGaugeField:
		m.ClearGaugeField()
		return nil
	}
	return fmt.Errorf("unknown Achievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementMutation) ResetField(name string) error {
	switch name {
	case achievement.FieldKey:
		m.ResetKey()
		return nil
	case achievement.FieldName:
		m.ResetName()
		return nil
	case achievement.FieldDescription:
		m.ResetDescription()
		return nil
	case achievement.FieldIcon:
		m.ResetIcon()
		return nil
	case achievement.FieldColor:
		m.ResetColor()
		return nil
	case achievement.FieldTargetValue:
		m.ResetTargetValue()
		return nil
	case achievement.FieldBadgeSlug:
		m.ResetBadgeSlug()
		return nil
	case achievement.FieldEntitlement:
		m.ResetEntitlement()
		return nil
	case achievement.FieldPoints:
		m.ResetPoints()
		return nil
	case achievement.FieldEventType:
		m.ResetEventType()
		return nil
	case achievement.FieldConditions:
		m.ResetConditions()
		return nil
	case achievement.FieldProgressMode:
		m.ResetProgressMode()
		return nil
	case achievement.FieldGaugeField:
		m.ResetGaugeField()
		return nil
	case achievement.FieldHidden:
		m.ResetHidden()
		return nil
	case achievement.FieldEnabled:
		m.ResetEnabled()
		return nil
	case achievement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Achievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Achievement edge %s", name)
}

// AchievementProgressMutation represents an operation that mutates the AchievementProgress nodes in the graph.
type AchievementProgressMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	achievement_key  *string
	current_value    *int
	addcurrent_value *int
	target_value     *int
	addtarget_value  *int
	completed_at     *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AchievementProgress, error)
	predicates       []predicate.AchievementProgress
}

var _ ent.Mutation = (*AchievementProgressMutation)(nil)

// achievementprogressOption allows management of the mutation configuration using functional options.
type achievementprogressOption func(*AchievementProgressMutation)

// newAchievementProgressMutation creates new mutation for the AchievementProgress entity.
func newAchievementProgressMutation(c config, op Op, opts ...achievementprogressOption) *AchievementProgressMutation {
	m := &AchievementProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievementProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementProgressID sets the ID field of the mutation.
func withAchievementProgressID(id string) achievementprogressOption {
	return func(m *AchievementProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *AchievementProgress
		)
		m.oldValue = func(ctx context.Context) (*AchievementProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AchievementProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievementProgress sets the old AchievementProgress of the mutation.
func withAchievementProgress(node *AchievementProgress) achievementprogressOption {
	return func(m *AchievementProgressMutation) {
		m.oldValue = func(context.Context) (*AchievementProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AchievementProgress entities.
func (m *AchievementProgressMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementProgressMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementProgressMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AchievementProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AchievementProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AchievementProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AchievementProgress entity.
// If the AchievementProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AchievementProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetAchievementKey sets the "achievement_key" field.
func (m *AchievementProgressMutation) SetAchievementKey(s string) {
	m.achievement_key = &s
}

// AchievementKey returns the value of the "achievement_key" field in the mutation.
func (m *AchievementProgressMutation) AchievementKey() (r string, exists bool) {
	v := m.achievement_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementKey returns the old "achievement_key" field's value of the AchievementProgress entity.
// If the AchievementProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementProgressMutation) OldAchievementKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementKey: %w", err)
	}
	return oldValue.AchievementKey, nil
}

// ResetAchievementKey resets all changes to the "achievement_key" field.
func (m *AchievementProgressMutation) ResetAchievementKey() {
	m.achievement_key = nil
}

// SetCurrentValue sets the "current_value" field.
func (m *AchievementProgressMutation) SetCurrentValue(i int) {
	m.current_value = &i
	m.addcurrent_value = nil
}

// CurrentValue returns the value of the "current_value" field in the mutation.
func (m *AchievementProgressMutation) CurrentValue() (r int, exists bool) {
	v := m.current_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentValue returns the old "current_value" field's value of the AchievementProgress entity.
// If the AchievementProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementProgressMutation) OldCurrentValue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentValue: %w", err)
	}
	return oldValue.CurrentValue, nil
}

// AddCurrentValue adds i to the "current_value" field.
func (m *AchievementProgressMutation) AddCurrentValue(i int) {
	if m.addcurrent_value != nil {
		*m.addcurrent_value += i
	} else {
		m.addcurrent_value = &i
	}
}

// AddedCurrentValue returns the value that was added to the "current_value" field in this mutation.
func (m *AchievementProgressMutation) AddedCurrentValue() (r int, exists bool) {
	v := m.addcurrent_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentValue resets all changes to the "current_value" field.
func (m *AchievementProgressMutation) ResetCurrentValue() {
	m.current_value = nil
	m.addcurrent_value = nil
}

// SetTargetValue sets the "target_value" field.
func (m *AchievementProgressMutation) SetTargetValue(i int) {
	m.target_value = &i
	m.addtarget_value = nil
}

// TargetValue returns the value of the "target_value" field in the mutation.
func (m *AchievementProgressMutation) TargetValue() (r int, exists bool) {
	v := m.target_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetValue returns the old "target_value" field's value of the AchievementProgress entity.
// If the AchievementProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementProgressMutation) OldTargetValue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetValue: %w", err)
	}
	return oldValue.TargetValue, nil
}

// AddTargetValue adds i to the "target_value" field.
func (m *AchievementProgressMutation) AddTargetValue(i int) {
	if m.addtarget_value != nil {
		*m.addtarget_value += i
	} else {
		m.addtarget_value = &i
	}
}

// AddedTargetValue returns the value that was added to the "target_value" field in this mutation.
func (m *AchievementProgressMutation) AddedTargetValue() (r int, exists bool) {
	v := m.addtarget_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetValue resets all changes to the "target_value" field.
func (m *AchievementProgressMutation) ResetTargetValue() {
	m.target_value = nil
	m.addtarget_value = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AchievementProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AchievementProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AchievementProgress entity.
// If the AchievementProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AchievementProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[achievementprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AchievementProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[achievementprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AchievementProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, achievementprogress.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AchievementProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AchievementProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AchievementProgress entity.
// If the AchievementProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AchievementProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AchievementProgressMutation builder.
func (m *AchievementProgressMutation) Where(ps ...predicate.AchievementProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AchievementProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AchievementProgress).
func (m *AchievementProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, achievementprogress.FieldUserID)
	}
	if m.achievement_key != nil {
		fields = append(fields, achievementprogress.FieldAchievementKey)
	}
	if m.current_value != nil {
		fields = append(fields, achievementprogress.FieldCurrentValue)
	}
	if m.target_value != nil {
		fields = append(fields, achievementprogress.FieldTargetValue)
	}
	if m.completed_at != nil {
		fields = append(fields, achievementprogress.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, achievementprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievementprogress.FieldUserID:
		return m.UserID()
	case achievementprogress.FieldAchievementKey:
		return m.AchievementKey()
	case achievementprogress.FieldCurrentValue:
		return m.CurrentValue()
	case achievementprogress.FieldTargetValue:
		return m.TargetValue()
	case achievementprogress.FieldCompletedAt:
		return m.CompletedAt()
	case achievementprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievementprogress.FieldUserID:
		return m.OldUserID(ctx)
	case achievementprogress.FieldAchievementKey:
		return m.OldAchievementKey(ctx)
	case achievementprogress.FieldCurrentValue:
		return m.OldCurrentValue(ctx)
	case achievementprogress.FieldTargetValue:
		return m.OldTargetValue(ctx)
	case achievementprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case achievementprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AchievementProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievementprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case achievementprogress.FieldAchievementKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementKey(v)
		return nil
	case achievementprogress.FieldCurrentValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentValue(v)
		return nil
	case achievementprogress.FieldTargetValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetValue(v)
		return nil
	case achievementprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case achievementprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AchievementProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementProgressMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_value != nil {
		fields = append(fields, achievementprogress.FieldCurrentValue)
	}
	if m.addtarget_value != nil {
		fields = append(fields, achievementprogress.FieldTargetValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case achievementprogress.FieldCurrentValue:
		return m.AddedCurrentValue()
	case achievementprogress.FieldTargetValue:
		return m.AddedTargetValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case achievementprogress.FieldCurrentValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentValue(v)
		return nil
	case achievementprogress.FieldTargetValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetValue(v)
		return nil
	}
	return fmt.Errorf("unknown AchievementProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(achievementprogress.FieldCompletedAt) {
		fields = append(fields, achievementprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementProgressMutation) ClearField(name string) error {
	switch name {
	case achievementprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AchievementProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementProgressMutation) ResetField(name string) error {
	switch name {
	case achievementprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case achievementprogress.FieldAchievementKey:
		m.ResetAchievementKey()
		return nil
	case achievementprogress.FieldCurrentValue:
		m.ResetCurrentValue()
		return nil
	case achievementprogress.FieldTargetValue:
		m.ResetTargetValue()
		return nil
	case achievementprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case achievementprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AchievementProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AchievementProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AchievementProgress edge %s", name)
}

// BadgeMutation represents an operation that mutates the Badge nodes in the graph.
type BadgeMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	slug               *string
	name               *string
	description        *string
	icon               *string
	color              *string
	points             *int
	addpoints          *int
	sort_order         *int
	addsort_order      *int
	hidden             *bool
	group_id           *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	user_badges        map[string]struct{}
	removeduser_badges map[string]struct{}
	cleareduser_badges bool
	claim_links        map[string]struct{}
	removedclaim_links map[string]struct{}
	clearedclaim_links bool
	done               bool
	oldValue           func(context.Context) (*Badge, error)
	predicates         []predicate.Badge
}

var _ ent.Mutation = (*BadgeMutation)(nil)

// badgeOption allows management of the mutation configuration using functional options.
type badgeOption func(*BadgeMutation)

// newBadgeMutation creates new mutation for the Badge entity.
func newBadgeMutation(c config, op Op, opts ...badgeOption) *BadgeMutation {
	m := &BadgeMutation{
		config:        c,
		op:            op,
		typ:           TypeBadge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeID sets the ID field of the mutation.
func withBadgeID(id string) badgeOption {
	return func(m *BadgeMutation) {
		var (
			err   error
			once  sync.Once
			value *Badge
		)
		m.oldValue = func(ctx context.Context) (*Badge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Badge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadge sets the old Badge of the mutation.
func withBadge(node *Badge) badgeOption {
	return func(m *BadgeMutation) {
		m.oldValue = func(context.Context) (*Badge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Badge entities.
func (m *BadgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Badge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *BadgeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *BadgeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *BadgeMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *BadgeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BadgeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BadgeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *BadgeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BadgeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BadgeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[badge.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BadgeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[badge.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BadgeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, badge.FieldDescription)
}

// SetIcon sets the "icon" field.
func (m *BadgeMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *BadgeMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldIcon(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ClearIcon clears the value of the "icon" field.
func (m *BadgeMutation) ClearIcon() {
	m.icon = nil
	m.clearedFields[badge.FieldIcon] = struct{}{}
}

// IconCleared returns if the "icon" field was cleared in this mutation.
func (m *BadgeMutation) IconCleared() bool {
	_, ok := m.clearedFields[badge.FieldIcon]
	return ok
}

// ResetIcon resets all changes to the "icon" field.
func (m *BadgeMutation) ResetIcon() {
	m.icon = nil
	delete(m.clearedFields, badge.FieldIcon)
}

// SetColor sets the "color" field.
func (m *BadgeMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *BadgeMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *BadgeMutation) ClearColor() {
	m.color = nil
	m.clearedFields[badge.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *BadgeMutation) ColorCleared() bool {
	_, ok := m.clearedFields[badge.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *BadgeMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, badge.FieldColor)
}

// SetPoints sets the "points" field.
func (m *BadgeMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *BadgeMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *BadgeMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *BadgeMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *BadgeMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *BadgeMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *BadgeMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *BadgeMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *BadgeMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *BadgeMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetHidden sets the "hidden" field.
func (m *BadgeMutation) SetHidden(b bool) {
	m.hidden = &b
}

// Hidden returns the value of the "hidden" field in the mutation.
func (m *BadgeMutation) Hidden() (r bool, exists bool) {
	v := m.hidden
	if v == nil {
		return
	}
	return *v, true
}

// OldHidden returns the old "hidden" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldHidden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHidden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHidden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHidden: %w", err)
	}
	return oldValue.Hidden, nil
}

// ResetHidden resets all changes to the "hidden" field.
func (m *BadgeMutation) ResetHidden() {
	m.hidden = nil
}

// SetGroupID sets the "group_id" field.
func (m *BadgeMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *BadgeMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *BadgeMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[badge.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *BadgeMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[badge.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *BadgeMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, badge.FieldGroupID)
}

// SetCreatedAt sets the "created_at" field.
func (m *BadgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BadgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BadgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddUserBadgeIDs adds the "user_badges" edge to the UserBadge entity by ids.
func (m *BadgeMutation) AddUserBadgeIDs(ids ...string) {
	if m.user_badges == nil {
		m.user_badges = make(map[string]struct{})
	}
	for i := range ids {
		m.user_badges[ids[i]] = struct{}{}
	}
}

// ClearUserBadges clears the "user_badges" edge to the UserBadge entity.
func (m *BadgeMutation) ClearUserBadges() {
	m.cleareduser_badges = true
}

// UserBadgesCleared reports if the "user_badges" edge to the UserBadge entity was cleared.
func (m *BadgeMutation) UserBadgesCleared() bool {
	return m.cleareduser_badges
}

// RemoveUserBadgeIDs removes the "user_badges" edge to the UserBadge entity by IDs.
func (m *BadgeMutation) RemoveUserBadgeIDs(ids ...string) {
	if m.removeduser_badges == nil {
		m.removeduser_badges = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.user_badges, ids[i])
		m.removeduser_badges[ids[i]] = struct{}{}
	}
}

// RemovedUserBadges returns the removed IDs of the "user_badges" edge to the UserBadge entity.
func (m *BadgeMutation) RemovedUserBadgesIDs() (ids []string) {
	for id := range m.removeduser_badges {
		ids = append(ids, id)
	}
	return
}

// UserBadgesIDs returns the "user_badges" edge IDs in the mutation.
func (m *BadgeMutation) UserBadgesIDs() (ids []string) {
	for id := range m.user_badges {
		ids = append(ids, id)
	}
	return
}

// ResetUserBadges resets all changes to the "user_badges" edge.
func (m *BadgeMutation) ResetUserBadges() {
	m.user_badges = nil
	m.cleareduser_badges = false
	m.removeduser_badges = nil
}

// AddClaimLinkIDs adds the "claim_links" edge to the BadgeClaimLink entity by ids.
func (m *BadgeMutation) AddClaimLinkIDs(ids ...string) {
	if m.claim_links == nil {
		m.claim_links = make(map[string]struct{})
	}
	for i := range ids {
		m.claim_links[ids[i]] = struct{}{}
	}
}

// ClearClaimLinks clears the "claim_links" edge to the BadgeClaimLink entity.
func (m *BadgeMutation) ClearClaimLinks() {
	m.clearedclaim_links = true
}

// ClaimLinksCleared reports if the "claim_links" edge to the BadgeClaimLink entity was cleared.
func (m *BadgeMutation) ClaimLinksCleared() bool {
	return m.clearedclaim_links
}

// RemoveClaimLinkIDs removes the "claim_links" edge to the BadgeClaimLink entity by IDs.
func (m *BadgeMutation) RemoveClaimLinkIDs(ids ...string) {
	if m.removedclaim_links == nil {
		m.removedclaim_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.claim_links, ids[i])
		m.removedclaim_links[ids[i]] = struct{}{}
	}
}

// RemovedClaimLinks returns the removed IDs of the "claim_links" edge to the BadgeClaimLink entity.
func (m *BadgeMutation) RemovedClaimLinksIDs() (ids []string) {
	for id := range m.removedclaim_links {
		ids = append(ids, id)
	}
	return
}

// ClaimLinksIDs returns the "claim_links" edge IDs in the mutation.
func (m *BadgeMutation) ClaimLinksIDs() (ids []string) {
	for id := range m.claim_links {
		ids = append(ids, id)
	}
	return
}

// ResetClaimLinks resets all changes to the "claim_links" edge.
func (m *BadgeMutation) ResetClaimLinks() {
	m.claim_links = nil
	m.clearedclaim_links = false
	m.removedclaim_links = nil
}

// Where appends a list predicates to the BadgeMutation builder.
func (m *BadgeMutation) Where(ps ...predicate.Badge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Badge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Badge).
func (m *BadgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.slug != nil {
		fields = append(fields, badge.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, badge.FieldName)
	}
	if m.description != nil {
		fields = append(fields, badge.FieldDescription)
	}
	if m.icon != nil {
		fields = append(fields, badge.FieldIcon)
	}
	if m.color != nil {
		fields = append(fields, badge.FieldColor)
	}
	if m.points != nil {
		fields = append(fields, badge.FieldPoints)
	}
	if m.sort_order != nil {
		fields = append(fields, badge.FieldSortOrder)
	}
	if m.hidden != nil {
		fields = append(fields, badge.FieldHidden)
	}
	if m.group_id != nil {
		fields = append(fields, badge.FieldGroupID)
	}
	if m.created_at != nil {
		fields = append(fields, badge.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badge.FieldSlug:
		return m.Slug()
	case badge.FieldName:
		return m.Name()
	case badge.FieldDescription:
		return m.Description()
	case badge.FieldIcon:
		return m.Icon()
	case badge.FieldColor:
		return m.Color()
	case badge.FieldPoints:
		return m.Points()
	case badge.FieldSortOrder:
		return m.SortOrder()
	case badge.FieldHidden:
		return m.Hidden()
	case badge.FieldGroupID:
		return m.GroupID()
	case badge.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badge.FieldSlug:
		return m.OldSlug(ctx)
	case badge.FieldName:
		return m.OldName(ctx)
	case badge.FieldDescription:
		return m.OldDescription(ctx)
	case badge.FieldIcon:
		return m.OldIcon(ctx)
	case badge.FieldColor:
		return m.OldColor(ctx)
	case badge.FieldPoints:
		return m.OldPoints(ctx)
	case badge.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case badge.FieldHidden:
		return m.OldHidden(ctx)
	case badge.FieldGroupID:
		return m.OldGroupID(ctx)
	case badge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Badge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badge.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case badge.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case badge.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case badge.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	case badge.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case badge.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case badge.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case badge.FieldHidden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHidden(v)
		return nil
	case badge.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case badge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Badge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeMutation) AddedFields() []string {
	var fields []string
	if m.addpoints != nil {
		fields = append(fields, badge.FieldPoints)
	}
	if m.addsort_order != nil {
		fields = append(fields, badge.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case badge.FieldPoints:
		return m.AddedPoints()
	case badge.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case badge.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case badge.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Badge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(badge.FieldDescription) {
		fields = append(fields, badge.FieldDescription)
	}
	if m.FieldCleared(badge.FieldIcon) {
		fields = append(fields, badge.FieldIcon)
	}
	if m.FieldCleared(badge.FieldColor) {
		fields = append(fields, badge.FieldColor)
	}
	if m.FieldCleared(badge.FieldGroupID) {
		fields = append(fields, badge.FieldGroupID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeMutation) ClearField(name string) error {
	switch name {
	case badge.FieldDescription:
		m.ClearDescription()
		return nil
	case badge.FieldIcon:
		m.ClearIcon()
		return nil
	case badge.FieldColor:
		m.ClearColor()
		return nil
	case badge.FieldGroupID:
		m.ClearGroupID()
		return nil
	}
	return fmt.Errorf("unknown Badge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeMutation) ResetField(name string) error {
	switch name {
	case badge.FieldSlug:
		m.ResetSlug()
		return nil
	case badge.FieldName:
		m.ResetName()
		return nil
	case badge.FieldDescription:
		m.ResetDescription()
		return nil
	case badge.FieldIcon:
		m.ResetIcon()
		return nil
	case badge.FieldColor:
		m.ResetColor()
		return nil
	case badge.FieldPoints:
		m.ResetPoints()
		return nil
	case badge.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case badge.FieldHidden:
		m.ResetHidden()
		return nil
	case badge.FieldGroupID:
		m.ResetGroupID()
		return nil
	case badge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Badge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user_badges != nil {
		edges = append(edges, badge.EdgeUserBadges)
	}
	if m.claim_links != nil {
		edges = append(edges, badge.EdgeClaimLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case badge.EdgeUserBadges:
		ids := make([]ent.Value, 0, len(m.user_badges))
		for id := range m.user_badges {
			ids = append(ids, id)
		}
		return ids
	case badge.EdgeClaimLinks:
		ids := make([]ent.Value, 0, len(m.claim_links))
		for id := range m.claim_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeduser_badges != nil {
		edges = append(edges, badge.EdgeUserBadges)
	}
	if m.removedclaim_links != nil {
		edges = append(edges, badge.EdgeClaimLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case badge.EdgeUserBadges:
		ids := make([]ent.Value, 0, len(m.removeduser_badges))
		for id := range m.removeduser_badges {
			ids = append(ids, id)
		}
		return ids
	case badge.EdgeClaimLinks:
		ids := make([]ent.Value, 0, len(m.removedclaim_links))
		for id := range m.removedclaim_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser_badges {
		edges = append(edges, badge.EdgeUserBadges)
	}
	if m.clearedclaim_links {
		edges = append(edges, badge.EdgeClaimLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeMutation) EdgeCleared(name string) bool {
	switch name {
	case badge.EdgeUserBadges:
		return m.cleareduser_badges
	case badge.EdgeClaimLinks:
		return m.clearedclaim_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Badge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeMutation) ResetEdge(name string) error {
	switch name {
	case badge.EdgeUserBadges:
		m.ResetUserBadges()
		return nil
	case badge.EdgeClaimLinks:
		m.ResetClaimLinks()
		return nil
	}
	return fmt.Errorf("unknown Badge edge %s", name)
}

// BadgeClaimLinkMutation represents an operation that mutates the BadgeClaimLink nodes in the graph.
type BadgeClaimLinkMutation struct {
	config
	op              Op
	typ             string
	id              *string
	code            *string
	max_uses        *int
	addmax_uses     *int
	current_uses    *int
	addcurrent_uses *int
	expires_at      *time.Time
	achievement_key *string
	event_type      *string
	event_payload   *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	badge           *string
	clearedbadge    bool
	done            bool
	oldValue        func(context.Context) (*BadgeClaimLink, error)
	predicates      []predicate.BadgeClaimLink
}

var _ ent.Mutation = (*BadgeClaimLinkMutation)(nil)

// badgeclaimlinkOption allows management of the mutation configuration using functional options.
type badgeclaimlinkOption func(*BadgeClaimLinkMutation)

// newBadgeClaimLinkMutation creates new mutation for the BadgeClaimLink entity.
func newBadgeClaimLinkMutation(c config, op Op, opts ...badgeclaimlinkOption) *BadgeClaimLinkMutation {
	m := &BadgeClaimLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeBadgeClaimLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeClaimLinkID sets the ID field of the mutation.
func withBadgeClaimLinkID(id string) badgeclaimlinkOption {
	return func(m *BadgeClaimLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *BadgeClaimLink
		)
		m.oldValue = func(ctx context.Context) (*BadgeClaimLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BadgeClaimLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadgeClaimLink sets the old BadgeClaimLink of the mutation.
func withBadgeClaimLink(node *BadgeClaimLink) badgeclaimlinkOption {
	return func(m *BadgeClaimLinkMutation) {
		m.oldValue = func(context.Context) (*BadgeClaimLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeClaimLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeClaimLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BadgeClaimLink entities.
func (m *BadgeClaimLinkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeClaimLinkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeClaimLinkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BadgeClaimLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *BadgeClaimLinkMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *BadgeClaimLinkMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *BadgeClaimLinkMutation) ResetCode() {
	m.code = nil
}

// SetBadgeID sets the "badge_id" field.
func (m *BadgeClaimLinkMutation) SetBadgeID(s string) {
	m.badge = &s
}

// BadgeID returns the value of the "badge_id" field in the mutation.
func (m *BadgeClaimLinkMutation) BadgeID() (r string, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeID returns the old "badge_id" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldBadgeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeID: %w", err)
	}
	return oldValue.BadgeID, nil
}

// ResetBadgeID resets all changes to the "badge_id" field.
func (m *BadgeClaimLinkMutation) ResetBadgeID() {
	m.badge = nil
}

// SetMaxUses sets the "max_uses" field.
func (m *BadgeClaimLinkMutation) SetMaxUses(i int) {
	m.max_uses = &i
	m.addmax_uses = nil
}

// MaxUses returns the value of the "max_uses" field in the mutation.
func (m *BadgeClaimLinkMutation) MaxUses() (r int, exists bool) {
	v := m.max_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxUses returns the old "max_uses" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldMaxUses(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxUses: %w", err)
	}
	return oldValue.MaxUses, nil
}

// AddMaxUses adds i to the "max_uses" field.
func (m *BadgeClaimLinkMutation) AddMaxUses(i int) {
	if m.addmax_uses != nil {
		*m.addmax_uses += i
	} else {
		m.addmax_uses = &i
	}
}

// AddedMaxUses returns the value that was added to the "max_uses" field in this mutation.
func (m *BadgeClaimLinkMutation) AddedMaxUses() (r int, exists bool) {
	v := m.addmax_uses
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxUses clears the value of the "max_uses" field.
func (m *BadgeClaimLinkMutation) ClearMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	m.clearedFields[badgeclaimlink.FieldMaxUses] = struct{}{}
}

// MaxUsesCleared returns if the "max_uses" field was cleared in this mutation.
func (m *BadgeClaimLinkMutation) MaxUsesCleared() bool {
	_, ok := m.clearedFields[badgeclaimlink.FieldMaxUses]
	return ok
}

// ResetMaxUses resets all changes to the "max_uses" field.
func (m *BadgeClaimLinkMutation) ResetMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	delete(m.clearedFields, badgeclaimlink.FieldMaxUses)
}

// SetCurrentUses sets the "current_uses" field.
func (m *BadgeClaimLinkMutation) SetCurrentUses(i int) {
	m.current_uses = &i
	m.addcurrent_uses = nil
}

// CurrentUses returns the value of the "current_uses" field in the mutation.
func (m *BadgeClaimLinkMutation) CurrentUses() (r int, exists bool) {
	v := m.current_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentUses returns the old "current_uses" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldCurrentUses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentUses: %w", err)
	}
	return oldValue.CurrentUses, nil
}

// AddCurrentUses adds i to the "current_uses" field.
func (m *BadgeClaimLinkMutation) AddCurrentUses(i int) {
	if m.addcurrent_uses != nil {
		*m.addcurrent_uses += i
	} else {
		m.addcurrent_uses = &i
	}
}

// AddedCurrentUses returns the value that was added to the "current_uses" field in this mutation.
func (m *BadgeClaimLinkMutation) AddedCurrentUses() (r int, exists bool) {
	v := m.addcurrent_uses
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentUses resets all changes to the "current_uses" field.
func (m *BadgeClaimLinkMutation) ResetCurrentUses() {
	m.current_uses = nil
	m.addcurrent_uses = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *BadgeClaimLinkMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *BadgeClaimLinkMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *BadgeClaimLinkMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[badgeclaimlink.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *BadgeClaimLinkMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[badgeclaimlink.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *BadgeClaimLinkMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, badgeclaimlink.FieldExpiresAt)
}

// SetAchievementKey sets the "achievement_key" field.
func (m *BadgeClaimLinkMutation) SetAchievementKey(s string) {
	m.achievement_key = &s
}

// AchievementKey returns the value of the "achievement_key" field in the mutation.
func (m *BadgeClaimLinkMutation) AchievementKey() (r string, exists bool) {
	v := m.achievement_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementKey returns the old "achievement_key" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldAchievementKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementKey: %w", err)
	}
	return oldValue.AchievementKey, nil
}

// ClearAchievementKey clears the value of the "achievement_key" field.
func (m *BadgeClaimLinkMutation) ClearAchievementKey() {
	m.achievement_key = nil
	m.clearedFields[badgeclaimlink.FieldAchievementKey] = struct{}{}
}

// AchievementKeyCleared returns if the "achievement_key" field was cleared in this mutation.
func (m *BadgeClaimLinkMutation) AchievementKeyCleared() bool {
	_, ok := m.clearedFields[badgeclaimlink.FieldAchievementKey]
	return ok
}

// ResetAchievementKey resets all changes to the "achievement_key" field.
func (m *BadgeClaimLinkMutation) ResetAchievementKey() {
	m.achievement_key = nil
	delete(m.clearedFields, badgeclaimlink.FieldAchievementKey)
}

// SetEventType sets the "event_type" field.
func (m *BadgeClaimLinkMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *BadgeClaimLinkMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldEventType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *BadgeClaimLinkMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[badgeclaimlink.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *BadgeClaimLinkMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[badgeclaimlink.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *BadgeClaimLinkMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, badgeclaimlink.FieldEventType)
}

// SetEventPayload sets the "event_payload" field.
func (m *BadgeClaimLinkMutation) SetEventPayload(value map[string]interface{}) {
	m.event_payload = &value
}

// EventPayload returns the value of the "event_payload" field in the mutation.
func (m *BadgeClaimLinkMutation) EventPayload() (r map[string]interface{}, exists bool) {
	v := m.event_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldEventPayload returns the old "event_payload" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldEventPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventPayload: %w", err)
	}
	return oldValue.EventPayload, nil
}

// ClearEventPayload clears the value of the "event_payload" field.
func (m *BadgeClaimLinkMutation) ClearEventPayload() {
	m.event_payload = nil
	m.clearedFields[badgeclaimlink.FieldEventPayload] = struct{}{}
}

// EventPayloadCleared returns if the "event_payload" field was cleared in this mutation.
func (m *BadgeClaimLinkMutation) EventPayloadCleared() bool {
	_, ok := m.clearedFields[badgeclaimlink.FieldEventPayload]
	return ok
}

// ResetEventPayload resets all changes to the "event_payload" field.
func (m *BadgeClaimLinkMutation) ResetEventPayload() {
	m.event_payload = nil
	delete(m.clearedFields, badgeclaimlink.FieldEventPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *BadgeClaimLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BadgeClaimLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BadgeClaimLink entity.
// If the BadgeClaimLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeClaimLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BadgeClaimLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBadge clears the "badge" edge to the Badge entity.
func (m *BadgeClaimLinkMutation) ClearBadge() {
	m.clearedbadge = true
	m.clearedFields[badgeclaimlink.FieldBadgeID] = struct{}{}
}

// BadgeCleared reports if the "badge" edge to the Badge entity was cleared.
func (m *BadgeClaimLinkMutation) BadgeCleared() bool {
	return m.clearedbadge
}

// BadgeIDs returns the "badge" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BadgeID instead. It exists only for internal usage by the builders.
func (m *BadgeClaimLinkMutation) BadgeIDs() (ids []string) {
	if id := m.badge; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBadge resets all changes to the "badge" edge.
func (m *BadgeClaimLinkMutation) ResetBadge() {
	m.badge = nil
	m.clearedbadge = false
}

// Where appends a list predicates to the BadgeClaimLinkMutation builder.
func (m *BadgeClaimLinkMutation) Where(ps ...predicate.BadgeClaimLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeClaimLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeClaimLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BadgeClaimLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeClaimLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeClaimLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BadgeClaimLink).
func (m *BadgeClaimLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeClaimLinkMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.code != nil {
		fields = append(fields, badgeclaimlink.FieldCode)
	}
	if m.badge != nil {
		fields = append(fields, badgeclaimlink.FieldBadgeID)
	}
	if m.max_uses != nil {
		fields = append(fields, badgeclaimlink.FieldMaxUses)
	}
	if m.current_uses != nil {
		fields = append(fields, badgeclaimlink.FieldCurrentUses)
	}
	if m.expires_at != nil {
		fields = append(fields, badgeclaimlink.FieldExpiresAt)
	}
	if m.achievement_key != nil {
		fields = append(fields, badgeclaimlink.FieldAchievementKey)
	}
	if m.event_type != nil {
		fields = append(fields, badgeclaimlink.FieldEventType)
	}
	if m.event_payload != nil {
		fields = append(fields, badgeclaimlink.FieldEventPayload)
	}
	if m.created_at != nil {
		fields = append(fields, badgeclaimlink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeClaimLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badgeclaimlink.FieldCode:
		return m.Code()
	case badgeclaimlink.FieldBadgeID:
		return m.BadgeID()
	case badgeclaimlink.FieldMaxUses:
		return m.MaxUses()
	case badgeclaimlink.FieldCurrentUses:
		return m.CurrentUses()
	case badgeclaimlink.FieldExpiresAt:
		return m.ExpiresAt()
	case badgeclaimlink.FieldAchievementKey:
		return m.AchievementKey()
	case badgeclaimlink.FieldEventType:
		return m.EventType()
	case badgeclaimlink.FieldEventPayload:
		return m.EventPayload()
	case badgeclaimlink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeClaimLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badgeclaimlink.FieldCode:
		return m.OldCode(ctx)
	case badgeclaimlink.FieldBadgeID:
		return m.OldBadgeID(ctx)
	case badgeclaimlink.FieldMaxUses:
		return m.OldMaxUses(ctx)
	case badgeclaimlink.FieldCurrentUses:
		return m.OldCurrentUses(ctx)
	case badgeclaimlink.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case badgeclaimlink.FieldAchievementKey:
		return m.OldAchievementKey(ctx)
	case badgeclaimlink.FieldEventType:
		return m.OldEventType(ctx)
	case badgeclaimlink.FieldEventPayload:
		return m.OldEventPayload(ctx)
	case badgeclaimlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BadgeClaimLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeClaimLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badgeclaimlink.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case badgeclaimlink.FieldBadgeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeID(v)
		return nil
	case badgeclaimlink.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxUses(v)
		return nil
	case badgeclaimlink.FieldCurrentUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentUses(v)
		return nil
	case badgeclaimlink.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case badgeclaimlink.FieldAchievementKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementKey(v)
		return nil
	case badgeclaimlink.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case badgeclaimlink.FieldEventPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventPayload(v)
		return nil
	case badgeclaimlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BadgeClaimLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeClaimLinkMutation) AddedFields() []string {
	var fields []string
	if m.addmax_uses != nil {
		fields = append(fields, badgeclaimlink.FieldMaxUses)
	}
	if m.addcurrent_uses != nil {
		fields = append(fields, badgeclaimlink.FieldCurrentUses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeClaimLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case badgeclaimlink.FieldMaxUses:
		return m.AddedMaxUses()
	case badgeclaimlink.FieldCurrentUses:
		return m.AddedCurrentUses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeClaimLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case badgeclaimlink.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxUses(v)
		return nil
	case badgeclaimlink.FieldCurrentUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentUses(v)
		return nil
	}
	return fmt.Errorf("unknown BadgeClaimLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeClaimLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(badgeclaimlink.FieldMaxUses) {
		fields = append(fields, badgeclaimlink.FieldMaxUses)
	}
	if m.FieldCleared(badgeclaimlink.FieldExpiresAt) {
		fields = append(fields, badgeclaimlink.FieldExpiresAt)
	}
	if m.FieldCleared(badgeclaimlink.FieldAchievementKey) {
		fields = append(fields, badgeclaimlink.FieldAchievementKey)
	}
	if m.FieldCleared(badgeclaimlink.FieldEventType) {
		fields = append(fields, badgeclaimlink.FieldEventType)
	}
	if m.FieldCleared(badgeclaimlink.FieldEventPayload) {
		fields = append(fields, badgeclaimlink.FieldEventPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeClaimLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeClaimLinkMutation) ClearField(name string) error {
	switch name {
	case badgeclaimlink.FieldMaxUses:
		m.ClearMaxUses()
		return nil
	case badgeclaimlink.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case badgeclaimlink.FieldAchievementKey:
		m.ClearAchievementKey()
		return nil
	case badgeclaimlink.FieldEventType:
		m.ClearEventType()
		return nil
	case badgeclaimlink.FieldEventPayload:
		m.ClearEventPayload()
		return nil
	}
	return fmt.Errorf("unknown BadgeClaimLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeClaimLinkMutation) ResetField(name string) error {
	switch name {
	case badgeclaimlink.FieldCode:
		m.ResetCode()
		return nil
	case badgeclaimlink.FieldBadgeID:
		m.ResetBadgeID()
		return nil
	case badgeclaimlink.FieldMaxUses:
		m.ResetMaxUses()
		return nil
	case badgeclaimlink.FieldCurrentUses:
		m.ResetCurrentUses()
		return nil
	case badgeclaimlink.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case badgeclaimlink.FieldAchievementKey:
		m.ResetAchievementKey()
		return nil
	case badgeclaimlink.FieldEventType:
		m.ResetEventType()
		return nil
	case badgeclaimlink.FieldEventPayload:
		m.ResetEventPayload()
		return nil
	case badgeclaimlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BadgeClaimLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeClaimLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.badge != nil {
		edges = append(edges, badgeclaimlink.EdgeBadge)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeClaimLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case badgeclaimlink.EdgeBadge:
		if id := m.badge; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeClaimLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeClaimLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeClaimLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbadge {
		edges = append(edges, badgeclaimlink.EdgeBadge)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeClaimLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case badgeclaimlink.EdgeBadge:
		return m.clearedbadge
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeClaimLinkMutation) ClearEdge(name string) error {
	switch name {
	case badgeclaimlink.EdgeBadge:
		m.ClearBadge()
		return nil
	}
	return fmt.Errorf("unknown BadgeClaimLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeClaimLinkMutation) ResetEdge(name string) error {
	switch name {
	case badgeclaimlink.EdgeBadge:
		m.ResetBadge()
		return nil
	}
	return fmt.Errorf("unknown BadgeClaimLink edge %s", name)
}

// CheckinMutation represents an operation that mutates the Checkin nodes in the graph.
type CheckinMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	code_id       *string
	checked_in_at *time.Time
	clearedFields map[string]struct{}
	event         *string
	clearedevent  bool
	done          bool
	oldValue      func(context.Context) (*Checkin, error)
	predicates    []predicate.Checkin
}

var _ ent.Mutation = (*CheckinMutation)(nil)

// checkinOption allows management of the mutation configuration using functional options.
type checkinOption func(*CheckinMutation)

// newCheckinMutation creates new mutation for the Checkin entity.
func newCheckinMutation(c config, op Op, opts ...checkinOption) *CheckinMutation {
	m := &CheckinMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckin,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckinID sets the ID field of the mutation.
func withCheckinID(id string) checkinOption {
	return func(m *CheckinMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkin
		)
		m.oldValue = func(ctx context.Context) (*Checkin, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkin.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckin sets the old Checkin of the mutation.
func withCheckin(node *Checkin) checkinOption {
	return func(m *CheckinMutation) {
		m.oldValue = func(context.Context) (*Checkin, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckinMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckinMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkin entities.
func (m *CheckinMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckinMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckinMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkin.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *CheckinMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *CheckinMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Checkin entity.
// If the Checkin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *CheckinMutation) ResetEventID() {
	m.event = nil
}

// SetUserID sets the "user_id" field.
func (m *CheckinMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CheckinMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Checkin entity.
// If the Checkin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CheckinMutation) ResetUserID() {
	m.user_id = nil
}

// SetCodeID sets the "code_id" field.
func (m *CheckinMutation) SetCodeID(s string) {
	m.code_id = &s
}

// CodeID returns the value of the "code_id" field in the mutation.
func (m *CheckinMutation) CodeID() (r string, exists bool) {
	v := m.code_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeID returns the old "code_id" field's value of the Checkin entity.
// If the Checkin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinMutation) OldCodeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeID: %w", err)
	}
	return oldValue.CodeID, nil
}

// ClearCodeID clears the value of the "code_id" field.
func (m *CheckinMutation) ClearCodeID() {
	m.code_id = nil
	m.clearedFields[checkin.FieldCodeID] = struct{}{}
}

// CodeIDCleared returns if the "code_id" field was cleared in this mutation.
func (m *CheckinMutation) CodeIDCleared() bool {
	_, ok := m.clearedFields[checkin.FieldCodeID]
	return ok
}

// ResetCodeID resets all changes to the "code_id" field.
func (m *CheckinMutation) ResetCodeID() {
	m.code_id = nil
	delete(m.clearedFields, checkin.FieldCodeID)
}

// SetCheckedInAt sets the "checked_in_at" field.
func (m *CheckinMutation) SetCheckedInAt(t time.Time) {
	m.checked_in_at = &t
}

// CheckedInAt returns the value of the "checked_in_at" field in the mutation.
func (m *CheckinMutation) CheckedInAt() (r time.Time, exists bool) {
	v := m.checked_in_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedInAt returns the old "checked_in_at" field's value of the Checkin entity.
// If the Checkin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinMutation) OldCheckedInAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedInAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedInAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedInAt: %w", err)
	}
	return oldValue.CheckedInAt, nil
}

// ResetCheckedInAt resets all changes to the "checked_in_at" field.
func (m *CheckinMutation) ResetCheckedInAt() {
	m.checked_in_at = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *CheckinMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[checkin.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *CheckinMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *CheckinMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *CheckinMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// Where appends a list predicates to the CheckinMutation builder.
func (m *CheckinMutation) Where(ps ...predicate.Checkin) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckinMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckinMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkin, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckinMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckinMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkin).
func (m *CheckinMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckinMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event != nil {
		fields = append(fields, checkin.FieldEventID)
	}
	if m.user_id != nil {
		fields = append(fields, checkin.FieldUserID)
	}
	if m.code_id != nil {
		fields = append(fields, checkin.FieldCodeID)
	}
	if m.checked_in_at != nil {
		fields = append(fields, checkin.FieldCheckedInAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckinMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkin.FieldEventID:
		return m.EventID()
	case checkin.FieldUserID:
		return m.UserID()
	case checkin.FieldCodeID:
		return m.CodeID()
	case checkin.FieldCheckedInAt:
		return m.CheckedInAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckinMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkin.FieldEventID:
		return m.OldEventID(ctx)
	case checkin.FieldUserID:
		return m.OldUserID(ctx)
	case checkin.FieldCodeID:
		return m.OldCodeID(ctx)
	case checkin.FieldCheckedInAt:
		return m.OldCheckedInAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkin field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckinMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkin.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case checkin.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case checkin.FieldCodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeID(v)
		return nil
	case checkin.FieldCheckedInAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedInAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkin field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckinMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckinMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckinMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkin numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckinMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkin.FieldCodeID) {
		fields = append(fields, checkin.FieldCodeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckinMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckinMutation) ClearField(name string) error {
	switch name {
	case checkin.FieldCodeID:
		m.ClearCodeID()
		return nil
	}
	return fmt.Errorf("unknown Checkin nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckinMutation) ResetField(name string) error {
	switch name {
	case checkin.FieldEventID:
		m.ResetEventID()
		return nil
	case checkin.FieldUserID:
		m.ResetUserID()
		return nil
	case checkin.FieldCodeID:
		m.ResetCodeID()
		return nil
	case checkin.FieldCheckedInAt:
		m.ResetCheckedInAt()
		return nil
	}
	return fmt.Errorf("unknown Checkin field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckinMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.event != nil {
		edges = append(edges, checkin.EdgeEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckinMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkin.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckinMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckinMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckinMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevent {
		edges = append(edges, checkin.EdgeEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckinMutation) EdgeCleared(name string) bool {
	switch name {
	case checkin.EdgeEvent:
		return m.clearedevent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckinMutation) ClearEdge(name string) error {
	switch name {
	case checkin.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown Checkin unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckinMutation) ResetEdge(name string) error {
	switch name {
	case checkin.EdgeEvent:
		m.ResetEvent()
		return nil
	}
	return fmt.Errorf("unknown Checkin edge %s", name)
}

// CheckinCodeMutation represents an operation that mutates the CheckinCode nodes in the graph.
type CheckinCodeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	event_id        *string
	code            *string
	max_uses        *int
	addmax_uses     *int
	current_uses    *int
	addcurrent_uses *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CheckinCode, error)
	predicates      []predicate.CheckinCode
}

var _ ent.Mutation = (*CheckinCodeMutation)(nil)

// checkincodeOption allows management of the mutation configuration using functional options.
type checkincodeOption func(*CheckinCodeMutation)

// newCheckinCodeMutation creates new mutation for the CheckinCode entity.
func newCheckinCodeMutation(c config, op Op, opts ...checkincodeOption) *CheckinCodeMutation {
	m := &CheckinCodeMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckinCode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckinCodeID sets the ID field of the mutation.
func withCheckinCodeID(id string) checkincodeOption {
	return func(m *CheckinCodeMutation) {
		var (
			err   error
			once  sync.Once
			value *CheckinCode
		)
		m.oldValue = func(ctx context.Context) (*CheckinCode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CheckinCode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckinCode sets the old CheckinCode of the mutation.
func withCheckinCode(node *CheckinCode) checkincodeOption {
	return func(m *CheckinCodeMutation) {
		m.oldValue = func(context.Context) (*CheckinCode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckinCodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckinCodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CheckinCode entities.
func (m *CheckinCodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckinCodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckinCodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CheckinCode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *CheckinCodeMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *CheckinCodeMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the CheckinCode entity.
// If the CheckinCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinCodeMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *CheckinCodeMutation) ResetEventID() {
	m.event_id = nil
}

// SetCode sets the "code" field.
func (m *CheckinCodeMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *CheckinCodeMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the CheckinCode entity.
// If the CheckinCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinCodeMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *CheckinCodeMutation) ResetCode() {
	m.code = nil
}

// SetMaxUses sets the "max_uses" field.
func (m *CheckinCodeMutation) SetMaxUses(i int) {
	m.max_uses = &i
	m.addmax_uses = nil
}

// MaxUses returns the value of the "max_uses" field in the mutation.
func (m *CheckinCodeMutation) MaxUses() (r int, exists bool) {
	v := m.max_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxUses returns the old "max_uses" field's value of the CheckinCode entity.
// If the CheckinCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinCodeMutation) OldMaxUses(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxUses: %w", err)
	}
	return oldValue.MaxUses, nil
}

// AddMaxUses adds i to the "max_uses" field.
func (m *CheckinCodeMutation) AddMaxUses(i int) {
	if m.addmax_uses != nil {
		*m.addmax_uses += i
	} else {
		m.addmax_uses = &i
	}
}

// AddedMaxUses returns the value that was added to the "max_uses" field in this mutation.
func (m *CheckinCodeMutation) AddedMaxUses() (r int, exists bool) {
	v := m.addmax_uses
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxUses clears the value of the "max_uses" field.
func (m *CheckinCodeMutation) ClearMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	m.clearedFields[checkincode.FieldMaxUses] = struct{}{}
}

// MaxUsesCleared returns if the "max_uses" field was cleared in this mutation.
func (m *CheckinCodeMutation) MaxUsesCleared() bool {
	_, ok := m.clearedFields[checkincode.FieldMaxUses]
	return ok
}

// ResetMaxUses resets all changes to the "max_uses" field.
func (m *CheckinCodeMutation) ResetMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	delete(m.clearedFields, checkincode.FieldMaxUses)
}

// SetCurrentUses sets the "current_uses" field.
func (m *CheckinCodeMutation) SetCurrentUses(i int) {
	m.current_uses = &i
	m.addcurrent_uses = nil
}

// CurrentUses returns the value of the "current_uses" field in the mutation.
func (m *CheckinCodeMutation) CurrentUses() (r int, exists bool) {
	v := m.current_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentUses returns the old "current_uses" field's value of the CheckinCode entity.
// If the CheckinCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinCodeMutation) OldCurrentUses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentUses: %w", err)
	}
	return oldValue.CurrentUses, nil
}

// AddCurrentUses adds i to the "current_uses" field.
func (m *CheckinCodeMutation) AddCurrentUses(i int) {
	if m.addcurrent_uses != nil {
		*m.addcurrent_uses += i
	} else {
		m.addcurrent_uses = &i
	}
}

// AddedCurrentUses returns the value that was added to the "current_uses" field in this mutation.
func (m *CheckinCodeMutation) AddedCurrentUses() (r int, exists bool) {
	v := m.addcurrent_uses
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentUses resets all changes to the "current_uses" field.
func (m *CheckinCodeMutation) ResetCurrentUses() {
	m.current_uses = nil
	m.addcurrent_uses = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckinCodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckinCodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CheckinCode entity.
// If the CheckinCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckinCodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckinCodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CheckinCodeMutation builder.
func (m *CheckinCodeMutation) Where(ps ...predicate.CheckinCode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckinCodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckinCodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CheckinCode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckinCodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckinCodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CheckinCode).
func (m *CheckinCodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckinCodeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_id != nil {
		fields = append(fields, checkincode.FieldEventID)
	}
	if m.code != nil {
		fields = append(fields, checkincode.FieldCode)
	}
	if m.max_uses != nil {
		fields = append(fields, checkincode.FieldMaxUses)
	}
	if m.current_uses != nil {
		fields = append(fields, checkincode.FieldCurrentUses)
	}
	if m.created_at != nil {
		fields = append(fields, checkincode.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckinCodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkincode.FieldEventID:
		return m.EventID()
	case checkincode.FieldCode:
		return m.Code()
	case checkincode.FieldMaxUses:
		return m.MaxUses()
	case checkincode.FieldCurrentUses:
		return m.CurrentUses()
	case checkincode.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckinCodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkincode.FieldEventID:
		return m.OldEventID(ctx)
	case checkincode.FieldCode:
		return m.OldCode(ctx)
	case checkincode.FieldMaxUses:
		return m.OldMaxUses(ctx)
	case checkincode.FieldCurrentUses:
		return m.OldCurrentUses(ctx)
	case checkincode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CheckinCode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckinCodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkincode.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case checkincode.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case checkincode.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxUses(v)
		return nil
	case checkincode.FieldCurrentUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentUses(v)
		return nil
	case checkincode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CheckinCode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckinCodeMutation) AddedFields() []string {
	var fields []string
	if m.addmax_uses != nil {
		fields = append(fields, checkincode.FieldMaxUses)
	}
	if m.addcurrent_uses != nil {
		fields = append(fields, checkincode.FieldCurrentUses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckinCodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkincode.FieldMaxUses:
		return m.AddedMaxUses()
	case checkincode.FieldCurrentUses:
		return m.AddedCurrentUses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckinCodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkincode.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxUses(v)
		return nil
	case checkincode.FieldCurrentUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentUses(v)
		return nil
	}
	return fmt.Errorf("unknown CheckinCode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckinCodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkincode.FieldMaxUses) {
		fields = append(fields, checkincode.FieldMaxUses)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckinCodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckinCodeMutation) ClearField(name string) error {
	switch name {
	case checkincode.FieldMaxUses:
		m.ClearMaxUses()
		return nil
	}
	return fmt.Errorf("unknown CheckinCode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckinCodeMutation) ResetField(name string) error {
	switch name {
	case checkincode.FieldEventID:
		m.ResetEventID()
		return nil
	case checkincode.FieldCode:
		m.ResetCode()
		return nil
	case checkincode.FieldMaxUses:
		m.ResetMaxUses()
		return nil
	case checkincode.FieldCurrentUses:
		m.ResetCurrentUses()
		return nil
	case checkincode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CheckinCode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckinCodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckinCodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckinCodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckinCodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckinCodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckinCodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckinCodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CheckinCode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckinCodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CheckinCode edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	platform         *string
	platform_id      *string
	venue_id         *string
	title            *string
	description      *string
	event_url        *string
	photo_url        *string
	start_time       *time.Time
	end_time         *time.Time
	timezone         *string
	duration         *string
	status           *event.Status
	event_type       *event.EventType
	rsvp_count       *int
	addrsvp_count    *int
	max_attendees    *int
	addmax_attendees *int
	featured         *bool
	last_sync_at     *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	group            *string
	clearedgroup     bool
	rsvps            map[string]struct{}
	removedrsvps     map[string]struct{}
	clearedrsvps     bool
	checkins         map[string]struct{}
	removedcheckins  map[string]struct{}
	clearedcheckins  bool
	done             bool
	oldValue         func(context.Context) (*Event, error)
	predicates       []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *EventMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *EventMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *EventMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *EventMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *EventMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPlatformID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *EventMutation) ResetPlatformID() {
	m.platform_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *EventMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *EventMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *EventMutation) ResetGroupID() {
	m.group = nil
}

// SetVenueID sets the "venue_id" field.
func (m *EventMutation) SetVenueID(s string) {
	m.venue_id = &s
}

// VenueID returns the value of the "venue_id" field in the mutation.
func (m *EventMutation) VenueID() (r string, exists bool) {
	v := m.venue_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVenueID returns the old "venue_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldVenueID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVenueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVenueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVenueID: %w", err)
	}
	return oldValue.VenueID, nil
}

// ClearVenueID clears the value of the "venue_id" field.
func (m *EventMutation) ClearVenueID() {
	m.venue_id = nil
	m.clearedFields[event.FieldVenueID] = struct{}{}
}

// VenueIDCleared returns if the "venue_id" field was cleared in this mutation.
func (m *EventMutation) VenueIDCleared() bool {
	_, ok := m.clearedFields[event.FieldVenueID]
	return ok
}

// ResetVenueID resets all changes to the "venue_id" field.
func (m *EventMutation) ResetVenueID() {
	m.venue_id = nil
	delete(m.clearedFields, event.FieldVenueID)
}

// SetTitle sets the "title" field.
func (m *EventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EventMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *EventMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EventMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EventMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[event.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EventMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[event.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EventMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, event.FieldDescription)
}

// SetEventURL sets the "event_url" field.
func (m *EventMutation) SetEventURL(s string) {
	m.event_url = &s
}

// EventURL returns the value of the "event_url" field in the mutation.
func (m *EventMutation) EventURL() (r string, exists bool) {
	v := m.event_url
	if v == nil {
		return
	}
	return *v, true
}

// OldEventURL returns the old "event_url" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventURL: %w", err)
	}
	return oldValue.EventURL, nil
}

// ResetEventURL resets all changes to the "event_url" field.
func (m *EventMutation) ResetEventURL() {
	m.event_url = nil
}

// SetPhotoURL sets the "photo_url" field.
func (m *EventMutation) SetPhotoURL(s string) {
	m.photo_url = &s
}

// PhotoURL returns the value of the "photo_url" field in the mutation.
func (m *EventMutation) PhotoURL() (r string, exists bool) {
	v := m.photo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPhotoURL returns the old "photo_url" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPhotoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhotoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhotoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhotoURL: %w", err)
	}
	return oldValue.PhotoURL, nil
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (m *EventMutation) ClearPhotoURL() {
	m.photo_url = nil
	m.clearedFields[event.FieldPhotoURL] = struct{}{}
}

// PhotoURLCleared returns if the "photo_url" field was cleared in this mutation.
func (m *EventMutation) PhotoURLCleared() bool {
	_, ok := m.clearedFields[event.FieldPhotoURL]
	return ok
}

// ResetPhotoURL resets all changes to the "photo_url" field.
func (m *EventMutation) ResetPhotoURL() {
	m.photo_url = nil
	delete(m.clearedFields, event.FieldPhotoURL)
}

// SetStartTime sets the "start_time" field.
func (m *EventMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *EventMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *EventMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *EventMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *EventMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *EventMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[event.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *EventMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[event.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *EventMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, event.FieldEndTime)
}

// SetTimezone sets the "timezone" field.
func (m *EventMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *EventMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *EventMutation) ResetTimezone() {
	m.timezone = nil
}

// SetDuration sets the "duration" field.
func (m *EventMutation) SetDuration(s string) {
	m.duration = &s
}

// Duration returns the value of the "duration" field in the mutation.
func (m *EventMutation) Duration() (r string, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDuration(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// ClearDuration clears the value of the "duration" field.
func (m *EventMutation) ClearDuration() {
	m.duration = nil
	m.clearedFields[event.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *EventMutation) DurationCleared() bool {
	_, ok := m.clearedFields[event.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *EventMutation) ResetDuration() {
	m.duration = nil
	delete(m.clearedFields, event.FieldDuration)
}

// SetStatus sets the "status" field.
func (m *EventMutation) SetStatus(e event.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventMutation) Status() (r event.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStatus(ctx context.Context) (v event.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EventMutation) ResetStatus() {
	m.status = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(et event.EventType) {
	m.event_type = &et
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r event.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v event.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetRsvpCount sets the "rsvp_count" field.
func (m *EventMutation) SetRsvpCount(i int) {
	m.rsvp_count = &i
	m.addrsvp_count = nil
}

// RsvpCount returns the value of the "rsvp_count" field in the mutation.
func (m *EventMutation) RsvpCount() (r int, exists bool) {
	v := m.rsvp_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRsvpCount returns the old "rsvp_count" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRsvpCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRsvpCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRsvpCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRsvpCount: %w", err)
	}
	return oldValue.RsvpCount, nil
}

// AddRsvpCount adds i to the "rsvp_count" field.
func (m *EventMutation) AddRsvpCount(i int) {
	if m.addrsvp_count != nil {
		*m.addrsvp_count += i
	} else {
		m.addrsvp_count = &i
	}
}

// AddedRsvpCount returns the value that was added to the "rsvp_count" field in this mutation.
func (m *EventMutation) AddedRsvpCount() (r int, exists bool) {
	v := m.addrsvp_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRsvpCount resets all changes to the "rsvp_count" field.
func (m *EventMutation) ResetRsvpCount() {
	m.rsvp_count = nil
	m.addrsvp_count = nil
}

// SetMaxAttendees sets the "max_attendees" field.
func (m *EventMutation) SetMaxAttendees(i int) {
	m.max_attendees = &i
	m.addmax_attendees = nil
}

// MaxAttendees returns the value of the "max_attendees" field in the mutation.
func (m *EventMutation) MaxAttendees() (r int, exists bool) {
	v := m.max_attendees
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttendees returns the old "max_attendees" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMaxAttendees(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttendees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttendees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttendees: %w", err)
	}
	return oldValue.MaxAttendees, nil
}

// AddMaxAttendees adds i to the "max_attendees" field.
func (m *EventMutation) AddMaxAttendees(i int) {
	if m.addmax_attendees != nil {
		*m.addmax_attendees += i
	} else {
		m.addmax_attendees = &i
	}
}

// AddedMaxAttendees returns the value that was added to the "max_attendees" field in this mutation.
func (m *EventMutation) AddedMaxAttendees() (r int, exists bool) {
	v := m.addmax_attendees
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (m *EventMutation) ClearMaxAttendees() {
	m.max_attendees = nil
	m.addmax_attendees = nil
	m.clearedFields[event.FieldMaxAttendees] = struct{}{}
}

// MaxAttendeesCleared returns if the "max_attendees" field was cleared in this mutation.
func (m *EventMutation) MaxAttendeesCleared() bool {
	_, ok := m.clearedFields[event.FieldMaxAttendees]
	return ok
}

// ResetMaxAttendees resets all changes to the "max_attendees" field.
func (m *EventMutation) ResetMaxAttendees() {
	m.max_attendees = nil
	m.addmax_attendees = nil
	delete(m.clearedFields, event.FieldMaxAttendees)
}

// SetFeatured sets the "featured" field.
func (m *EventMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *EventMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *EventMutation) ResetFeatured() {
	m.featured = nil
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *EventMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *EventMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *EventMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[event.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *EventMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[event.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *EventMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, event.FieldLastSyncAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *EventMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[event.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *EventMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *EventMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *EventMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// AddRsvpIDs adds the "rsvps" edge to the RSVP entity by ids.
func (m *EventMutation) AddRsvpIDs(ids ...string) {
	if m.rsvps == nil {
		m.rsvps = make(map[string]struct{})
	}
	for i := range ids {
		m.rsvps[ids[i]] = struct{}{}
	}
}

// ClearRsvps clears the "rsvps" edge to the RSVP entity.
func (m *EventMutation) ClearRsvps() {
	m.clearedrsvps = true
}

// RsvpsCleared reports if the "rsvps" edge to the RSVP entity was cleared.
func (m *EventMutation) RsvpsCleared() bool {
	return m.clearedrsvps
}

// RemoveRsvpIDs removes the "rsvps" edge to the RSVP entity by IDs.
func (m *EventMutation) RemoveRsvpIDs(ids ...string) {
	if m.removedrsvps == nil {
		m.removedrsvps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rsvps, ids[i])
		m.removedrsvps[ids[i]] = struct{}{}
	}
}

// RemovedRsvps returns the removed IDs of the "rsvps" edge to the RSVP entity.
func (m *EventMutation) RemovedRsvpsIDs() (ids []string) {
	for id := range m.removedrsvps {
		ids = append(ids, id)
	}
	return
}

// RsvpsIDs returns the "rsvps" edge IDs in the mutation.
func (m *EventMutation) RsvpsIDs() (ids []string) {
	for id := range m.rsvps {
		ids = append(ids, id)
	}
	return
}

// ResetRsvps resets all changes to the "rsvps" edge.
func (m *EventMutation) ResetRsvps() {
	m.rsvps = nil
	m.clearedrsvps = false
	m.removedrsvps = nil
}

// AddCheckinIDs adds the "checkins" edge to the Checkin entity by ids.
func (m *EventMutation) AddCheckinIDs(ids ...string) {
	if m.checkins == nil {
		m.checkins = make(map[string]struct{})
	}
	for i := range ids {
		m.checkins[ids[i]] = struct{}{}
	}
}

// ClearCheckins clears the "checkins" edge to the Checkin entity.
func (m *EventMutation) ClearCheckins() {
	m.clearedcheckins = true
}

// CheckinsCleared reports if the "checkins" edge to the Checkin entity was cleared.
func (m *EventMutation) CheckinsCleared() bool {
	return m.clearedcheckins
}

// RemoveCheckinIDs removes the "checkins" edge to the Checkin entity by IDs.
func (m *EventMutation) RemoveCheckinIDs(ids ...string) {
	if m.removedcheckins == nil {
		m.removedcheckins = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkins, ids[i])
		m.removedcheckins[ids[i]] = struct{}{}
	}
}

// RemovedCheckins returns the removed IDs of the "checkins" edge to the Checkin entity.
func (m *EventMutation) RemovedCheckinsIDs() (ids []string) {
	for id := range m.removedcheckins {
		ids = append(ids, id)
	}
	return
}

// CheckinsIDs returns the "checkins" edge IDs in the mutation.
func (m *EventMutation) CheckinsIDs() (ids []string) {
	for id := range m.checkins {
		ids = append(ids, id)
	}
	return
}

// ResetCheckins resets all changes to the "checkins" edge.
func (m *EventMutation) ResetCheckins() {
	m.checkins = nil
	m.clearedcheckins = false
	m.removedcheckins = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.platform != nil {
		fields = append(fields, event.FieldPlatform)
	}
	if m.platform_id != nil {
		fields = append(fields, event.FieldPlatformID)
	}
	if m.group != nil {
		fields = append(fields, event.FieldGroupID)
	}
	if m.venue_id != nil {
		fields = append(fields, event.FieldVenueID)
	}
	if m.title != nil {
		fields = append(fields, event.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, event.FieldDescription)
	}
	if m.event_url != nil {
		fields = append(fields, event.FieldEventURL)
	}
	if m.photo_url != nil {
		fields = append(fields, event.FieldPhotoURL)
	}
	if m.start_time != nil {
		fields = append(fields, event.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, event.FieldEndTime)
	}
	if m.timezone != nil {
		fields = append(fields, event.FieldTimezone)
	}
	if m.duration != nil {
		fields = append(fields, event.FieldDuration)
	}
	if m.status != nil {
		fields = append(fields, event.FieldStatus)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.rsvp_count != nil {
		fields = append(fields, event.FieldRsvpCount)
	}
	if m.max_attendees != nil {
		fields = append(fields, event.FieldMaxAttendees)
	}
	if m.featured != nil {
		fields = append(fields, event.FieldFeatured)
	}
	if m.last_sync_at != nil {
		fields = append(fields, event.FieldLastSyncAt)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldPlatform:
		return m.Platform()
	case event.FieldPlatformID:
		return m.PlatformID()
	case event.FieldGroupID:
		return m.GroupID()
	case event.FieldVenueID:
		return m.VenueID()
	case event.FieldTitle:
		return m.Title()
	case event.FieldDescription:
		return m.Description()
	case event.FieldEventURL:
		return m.EventURL()
	case event.FieldPhotoURL:
		return m.PhotoURL()
	case event.FieldStartTime:
		return m.StartTime()
	case event.FieldEndTime:
		return m.EndTime()
	case event.FieldTimezone:
		return m.Timezone()
	case event.FieldDuration:
		return m.Duration()
	case event.FieldStatus:
		return m.Status()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldRsvpCount:
		return m.RsvpCount()
	case event.FieldMaxAttendees:
		return m.MaxAttendees()
	case event.FieldFeatured:
		return m.Featured()
	case event.FieldLastSyncAt:
		return m.LastSyncAt()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldPlatform:
		return m.OldPlatform(ctx)
	case event.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case event.FieldGroupID:
		return m.OldGroupID(ctx)
	case event.FieldVenueID:
		return m.OldVenueID(ctx)
	case event.FieldTitle:
		return m.OldTitle(ctx)
	case event.FieldDescription:
		return m.OldDescription(ctx)
	case event.FieldEventURL:
		return m.OldEventURL(ctx)
	case event.FieldPhotoURL:
		return m.OldPhotoURL(ctx)
	case event.FieldStartTime:
		return m.OldStartTime(ctx)
	case event.FieldEndTime:
		return m.OldEndTime(ctx)
	case event.FieldTimezone:
		return m.OldTimezone(ctx)
	case event.FieldDuration:
		return m.OldDuration(ctx)
	case event.FieldStatus:
		return m.OldStatus(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldRsvpCount:
		return m.OldRsvpCount(ctx)
	case event.FieldMaxAttendees:
		return m.OldMaxAttendees(ctx)
	case event.FieldFeatured:
		return m.OldFeatured(ctx)
	case event.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case event.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case event.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case event.FieldVenueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVenueID(v)
		return nil
	case event.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case event.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case event.FieldEventURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventURL(v)
		return nil
	case event.FieldPhotoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhotoURL(v)
		return nil
	case event.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case event.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case event.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case event.FieldDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case event.FieldStatus:
		v, ok := value.(event.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(event.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldRsvpCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRsvpCount(v)
		return nil
	case event.FieldMaxAttendees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttendees(v)
		return nil
	case event.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	case event.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addrsvp_count != nil {
		fields = append(fields, event.FieldRsvpCount)
	}
	if m.addmax_attendees != nil {
		fields = append(fields, event.FieldMaxAttendees)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRsvpCount:
		return m.AddedRsvpCount()
	case event.FieldMaxAttendees:
		return m.AddedMaxAttendees()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldRsvpCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRsvpCount(v)
		return nil
	case event.FieldMaxAttendees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttendees(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldVenueID) {
		fields = append(fields, event.FieldVenueID)
	}
	if m.FieldCleared(event.FieldDescription) {
		fields = append(fields, event.FieldDescription)
	}
	if m.FieldCleared(event.FieldPhotoURL) {
		fields = append(fields, event.FieldPhotoURL)
	}
	if m.FieldCleared(event.FieldEndTime) {
		fields = append(fields, event.FieldEndTime)
	}
	if m.FieldCleared(event.FieldDuration) {
		fields = append(fields, event.FieldDuration)
	}
	if m.FieldCleared(event.FieldMaxAttendees) {
		fields = append(fields, event.FieldMaxAttendees)
	}
	if m.FieldCleared(event.FieldLastSyncAt) {
		fields = append(fields, event.FieldLastSyncAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldVenueID:
		m.ClearVenueID()
		return nil
	case event.FieldDescription:
		m.ClearDescription()
		return nil
	case event.FieldPhotoURL:
		m.ClearPhotoURL()
		return nil
	case event.FieldEndTime:
		m.ClearEndTime()
		return nil
	case event.FieldDuration:
		m.ClearDuration()
		return nil
	case event.FieldMaxAttendees:
		m.ClearMaxAttendees()
		return nil
	case event.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldPlatform:
		m.ResetPlatform()
		return nil
	case event.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case event.FieldGroupID:
		m.ResetGroupID()
		return nil
	case event.FieldVenueID:
		m.ResetVenueID()
		return nil
	case event.FieldTitle:
		m.ResetTitle()
		return nil
	case event.FieldDescription:
		m.ResetDescription()
		return nil
	case event.FieldEventURL:
		m.ResetEventURL()
		return nil
	case event.FieldPhotoURL:
		m.ResetPhotoURL()
		return nil
	case event.FieldStartTime:
		m.ResetStartTime()
		return nil
	case event.FieldEndTime:
		m.ResetEndTime()
		return nil
	case event.FieldTimezone:
		m.ResetTimezone()
		return nil
	case event.FieldDuration:
		m.ResetDuration()
		return nil
	case event.FieldStatus:
		m.ResetStatus()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldRsvpCount:
		m.ResetRsvpCount()
		return nil
	case event.FieldMaxAttendees:
		m.ResetMaxAttendees()
		return nil
	case event.FieldFeatured:
		m.ResetFeatured()
		return nil
	case event.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.group != nil {
		edges = append(edges, event.EdgeGroup)
	}
	if m.rsvps != nil {
		edges = append(edges, event.EdgeRsvps)
	}
	if m.checkins != nil {
		edges = append(edges, event.EdgeCheckins)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeRsvps:
		ids := make([]ent.Value, 0, len(m.rsvps))
		for id := range m.rsvps {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeCheckins:
		ids := make([]ent.Value, 0, len(m.checkins))
		for id := range m.checkins {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedrsvps != nil {
		edges = append(edges, event.EdgeRsvps)
	}
	if m.removedcheckins != nil {
		edges = append(edges, event.EdgeCheckins)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeRsvps:
		ids := make([]ent.Value, 0, len(m.removedrsvps))
		for id := range m.removedrsvps {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeCheckins:
		ids := make([]ent.Value, 0, len(m.removedcheckins))
		for id := range m.removedcheckins {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedgroup {
		edges = append(edges, event.EdgeGroup)
	}
	if m.clearedrsvps {
		edges = append(edges, event.EdgeRsvps)
	}
	if m.clearedcheckins {
		edges = append(edges, event.EdgeCheckins)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeGroup:
		return m.clearedgroup
	case event.EdgeRsvps:
		return m.clearedrsvps
	case event.EdgeCheckins:
		return m.clearedcheckins
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeGroup:
		m.ResetGroup()
		return nil
	case event.EdgeRsvps:
		m.ResetRsvps()
		return nil
	case event.EdgeCheckins:
		m.ResetCheckins()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// FavoriteMutation represents an operation that mutates the Favorite nodes in the graph.
type FavoriteMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	group         *string
	clearedgroup  bool
	done          bool
	oldValue      func(context.Context) (*Favorite, error)
	predicates    []predicate.Favorite
}

var _ ent.Mutation = (*FavoriteMutation)(nil)

// favoriteOption allows management of the mutation configuration using functional options.
type favoriteOption func(*FavoriteMutation)

// newFavoriteMutation creates new mutation for the Favorite entity.
func newFavoriteMutation(c config, op Op, opts ...favoriteOption) *FavoriteMutation {
	m := &FavoriteMutation{
		config:        c,
		op:            op,
		typ:           TypeFavorite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFavoriteID sets the ID field of the mutation.
func withFavoriteID(id string) favoriteOption {
	return func(m *FavoriteMutation) {
		var (
			err   error
			once  sync.Once
			value *Favorite
		)
		m.oldValue = func(ctx context.Context) (*Favorite, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Favorite.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFavorite sets the old Favorite of the mutation.
func withFavorite(node *Favorite) favoriteOption {
	return func(m *FavoriteMutation) {
		m.oldValue = func(context.Context) (*Favorite, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FavoriteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FavoriteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Favorite entities.
func (m *FavoriteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FavoriteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FavoriteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Favorite.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *FavoriteMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FavoriteMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Favorite entity.
// If the Favorite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FavoriteMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FavoriteMutation) ResetUserID() {
	m.user_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *FavoriteMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *FavoriteMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Favorite entity.
// If the Favorite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FavoriteMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *FavoriteMutation) ResetGroupID() {
	m.group = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FavoriteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FavoriteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Favorite entity.
// If the Favorite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FavoriteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FavoriteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *FavoriteMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[favorite.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *FavoriteMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *FavoriteMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *FavoriteMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the FavoriteMutation builder.
func (m *FavoriteMutation) Where(ps ...predicate.Favorite) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FavoriteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FavoriteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Favorite, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FavoriteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FavoriteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Favorite).
func (m *FavoriteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FavoriteMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, favorite.FieldUserID)
	}
	if m.group != nil {
		fields = append(fields, favorite.FieldGroupID)
	}
	if m.created_at != nil {
		fields = append(fields, favorite.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FavoriteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case favorite.FieldUserID:
		return m.UserID()
	case favorite.FieldGroupID:
		return m.GroupID()
	case favorite.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FavoriteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case favorite.FieldUserID:
		return m.OldUserID(ctx)
	case favorite.FieldGroupID:
		return m.OldGroupID(ctx)
	case favorite.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Favorite field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FavoriteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case favorite.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case favorite.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case favorite.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Favorite field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FavoriteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FavoriteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FavoriteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Favorite numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FavoriteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FavoriteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FavoriteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Favorite nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FavoriteMutation) ResetField(name string) error {
	switch name {
	case favorite.FieldUserID:
		m.ResetUserID()
		return nil
	case favorite.FieldGroupID:
		m.ResetGroupID()
		return nil
	case favorite.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Favorite field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FavoriteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.group != nil {
		edges = append(edges, favorite.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FavoriteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case favorite.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FavoriteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FavoriteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FavoriteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroup {
		edges = append(edges, favorite.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FavoriteMutation) EdgeCleared(name string) bool {
	switch name {
	case favorite.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FavoriteMutation) ClearEdge(name string) error {
	switch name {
	case favorite.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown Favorite unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FavoriteMutation) ResetEdge(name string) error {
	switch name {
	case favorite.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown Favorite edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	slug                *string
	name                *string
	description         *string
	member_count        *int
	addmember_count     *int
	photo_url           *string
	display             *bool
	featured            *bool
	tags                *[]string
	appendtags          []string
	social_links        *map[string]string
	sync_active         *bool
	last_sync_at        *time.Time
	last_sync_error     *string
	max_badges          *int
	addmax_badges       *int
	max_badge_points    *int
	addmax_badge_points *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	connections         map[string]struct{}
	removedconnections  map[string]struct{}
	clearedconnections  bool
	events              map[string]struct{}
	removedevents       map[string]struct{}
	clearedevents       bool
	favorites           map[string]struct{}
	removedfavorites    map[string]struct{}
	clearedfavorites    bool
	sync_logs           map[string]struct{}
	removedsync_logs    map[string]struct{}
	clearedsync_logs    bool
	done                bool
	oldValue            func(context.Context) (*Group, error)
	predicates          []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id string) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Group entities.
func (m *GroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *GroupMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *GroupMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *GroupMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GroupMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *GroupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GroupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *GroupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[group.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *GroupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[group.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *GroupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, group.FieldDescription)
}

// SetMemberCount sets the "member_count" field.
func (m *GroupMutation) SetMemberCount(i int) {
	m.member_count = &i
	m.addmember_count = nil
}

// MemberCount returns the value of the "member_count" field in the mutation.
func (m *GroupMutation) MemberCount() (r int, exists bool) {
	v := m.member_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberCount returns the old "member_count" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldMemberCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberCount: %w", err)
	}
	return oldValue.MemberCount, nil
}

// AddMemberCount adds i to the "member_count" field.
func (m *GroupMutation) AddMemberCount(i int) {
	if m.addmember_count != nil {
		*m.addmember_count += i
	} else {
		m.addmember_count = &i
	}
}

// AddedMemberCount returns the value that was added to the "member_count" field in this mutation.
func (m *GroupMutation) AddedMemberCount() (r int, exists bool) {
	v := m.addmember_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemberCount resets all changes to the "member_count" field.
func (m *GroupMutation) ResetMemberCount() {
	m.member_count = nil
	m.addmember_count = nil
}

// SetPhotoURL sets the "photo_url" field.
func (m *GroupMutation) SetPhotoURL(s string) {
	m.photo_url = &s
}

// PhotoURL returns the value of the "photo_url" field in the mutation.
func (m *GroupMutation) PhotoURL() (r string, exists bool) {
	v := m.photo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPhotoURL returns the old "photo_url" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldPhotoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhotoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhotoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhotoURL: %w", err)
	}
	return oldValue.PhotoURL, nil
}

// ClearPhotoURL clears the value of the "photo_url" field.
func (m *GroupMutation) ClearPhotoURL() {
	m.photo_url = nil
	m.clearedFields[group.FieldPhotoURL] = struct{}{}
}

// PhotoURLCleared returns if the "photo_url" field was cleared in this mutation.
func (m *GroupMutation) PhotoURLCleared() bool {
	_, ok := m.clearedFields[group.FieldPhotoURL]
	return ok
}

// ResetPhotoURL resets all changes to the "photo_url" field.
func (m *GroupMutation) ResetPhotoURL() {
	m.photo_url = nil
	delete(m.clearedFields, group.FieldPhotoURL)
}

// SetDisplay sets the "display" field.
func (m *GroupMutation) SetDisplay(b bool) {
	m.display = &b
}

// Display returns the value of the "display" field in the mutation.
func (m *GroupMutation) Display() (r bool, exists bool) {
	v := m.display
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplay returns the old "display" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldDisplay(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplay: %w", err)
	}
	return oldValue.Display, nil
}

// ResetDisplay resets all changes to the "display" field.
func (m *GroupMutation) ResetDisplay() {
	m.display = nil
}

// SetFeatured sets the "featured" field.
func (m *GroupMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *GroupMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *GroupMutation) ResetFeatured() {
	m.featured = nil
}

// SetTags sets the "tags" field.
func (m *GroupMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *GroupMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *GroupMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *GroupMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *GroupMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[group.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *GroupMutation) TagsCleared() bool {
	_, ok := m.clearedFields[group.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *GroupMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, group.FieldTags)
}

// SetSocialLinks sets the "social_links" field.
func (m *GroupMutation) SetSocialLinks(value map[string]string) {
	m.social_links = &value
}

// SocialLinks returns the value of the "social_links" field in the mutation.
func (m *GroupMutation) SocialLinks() (r map[string]string, exists bool) {
	v := m.social_links
	if v == nil {
		return
	}
	return *v, true
}

// OldSocialLinks returns the old "social_links" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldSocialLinks(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocialLinks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocialLinks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocialLinks: %w", err)
	}
	return oldValue.SocialLinks, nil
}

// ClearSocialLinks clears the value of the "social_links" field.
func (m *GroupMutation) ClearSocialLinks() {
	m.social_links = nil
	m.clearedFields[group.FieldSocialLinks] = struct{}{}
}

// SocialLinksCleared returns if the "social_links" field was cleared in this mutation.
func (m *GroupMutation) SocialLinksCleared() bool {
	_, ok := m.clearedFields[group.FieldSocialLinks]
	return ok
}

// ResetSocialLinks resets all changes to the "social_links" field.
func (m *GroupMutation) ResetSocialLinks() {
	m.social_links = nil
	delete(m.clearedFields, group.FieldSocialLinks)
}

// SetSyncActive sets the "sync_active" field.
func (m *GroupMutation) SetSyncActive(b bool) {
	m.sync_active = &b
}

// SyncActive returns the value of the "sync_active" field in the mutation.
func (m *GroupMutation) SyncActive() (r bool, exists bool) {
	v := m.sync_active
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncActive returns the old "sync_active" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldSyncActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncActive: %w", err)
	}
	return oldValue.SyncActive, nil
}

// ResetSyncActive resets all changes to the "sync_active" field.
func (m *GroupMutation) ResetSyncActive() {
	m.sync_active = nil
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *GroupMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *GroupMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *GroupMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[group.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *GroupMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[group.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *GroupMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, group.FieldLastSyncAt)
}

// SetLastSyncError sets the "last_sync_error" field.
func (m *GroupMutation) SetLastSyncError(s string) {
	m.last_sync_error = &s
}

// LastSyncError returns the value of the "last_sync_error" field in the mutation.
func (m *GroupMutation) LastSyncError() (r string, exists bool) {
	v := m.last_sync_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncError returns the old "last_sync_error" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldLastSyncError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncError: %w", err)
	}
	return oldValue.LastSyncError, nil
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (m *GroupMutation) ClearLastSyncError() {
	m.last_sync_error = nil
	m.clearedFields[group.FieldLastSyncError] = struct{}{}
}

// LastSyncErrorCleared returns if the "last_sync_error" field was cleared in this mutation.
func (m *GroupMutation) LastSyncErrorCleared() bool {
	_, ok := m.clearedFields[group.FieldLastSyncError]
	return ok
}

// ResetLastSyncError resets all changes to the "last_sync_error" field.
func (m *GroupMutation) ResetLastSyncError() {
	m.last_sync_error = nil
	delete(m.clearedFields, group.FieldLastSyncError)
}

// SetMaxBadges sets the "max_badges" field.
func (m *GroupMutation) SetMaxBadges(i int) {
	m.max_badges = &i
	m.addmax_badges = nil
}

// MaxBadges returns the value of the "max_badges" field in the mutation.
func (m *GroupMutation) MaxBadges() (r int, exists bool) {
	v := m.max_badges
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxBadges returns the old "max_badges" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldMaxBadges(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxBadges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxBadges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxBadges: %w", err)
	}
	return oldValue.MaxBadges, nil
}

// AddMaxBadges adds i to the "max_badges" field.
func (m *GroupMutation) AddMaxBadges(i int) {
	if m.addmax_badges != nil {
		*m.addmax_badges += i
	} else {
		m.addmax_badges = &i
	}
}

// AddedMaxBadges returns the value that was added to the "max_badges" field in this mutation.
func (m *GroupMutation) AddedMaxBadges() (r int, exists bool) {
	v := m.addmax_badges
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxBadges resets all changes to the "max_badges" field.
func (m *GroupMutation) ResetMaxBadges() {
	m.max_badges = nil
	m.addmax_badges = nil
}

// SetMaxBadgePoints sets the "max_badge_points" field.
func (m *GroupMutation) SetMaxBadgePoints(i int) {
	m.max_badge_points = &i
	m.addmax_badge_points = nil
}

// MaxBadgePoints returns the value of the "max_badge_points" field in the mutation.
func (m *GroupMutation) MaxBadgePoints() (r int, exists bool) {
	v := m.max_badge_points
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxBadgePoints returns the old "max_badge_points" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldMaxBadgePoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxBadgePoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxBadgePoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxBadgePoints: %w", err)
	}
	return oldValue.MaxBadgePoints, nil
}

// AddMaxBadgePoints adds i to the "max_badge_points" field.
func (m *GroupMutation) AddMaxBadgePoints(i int) {
	if m.addmax_badge_points != nil {
		*m.addmax_badge_points += i
	} else {
		m.addmax_badge_points = &i
	}
}

// AddedMaxBadgePoints returns the value that was added to the "max_badge_points" field in this mutation.
func (m *GroupMutation) AddedMaxBadgePoints() (r int, exists bool) {
	v := m.addmax_badge_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxBadgePoints resets all changes to the "max_badge_points" field.
func (m *GroupMutation) ResetMaxBadgePoints() {
	m.max_badge_points = nil
	m.addmax_badge_points = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddConnectionIDs adds the "connections" edge to the PlatformConnection entity by ids.
func (m *GroupMutation) AddConnectionIDs(ids ...string) {
	if m.connections == nil {
		m.connections = make(map[string]struct{})
	}
	for i := range ids {
		m.connections[ids[i]] = struct{}{}
	}
}

// ClearConnections clears the "connections" edge to the PlatformConnection entity.
func (m *GroupMutation) ClearConnections() {
	m.clearedconnections = true
}

// ConnectionsCleared reports if the "connections" edge to the PlatformConnection entity was cleared.
func (m *GroupMutation) ConnectionsCleared() bool {
	return m.clearedconnections
}

// RemoveConnectionIDs removes the "connections" edge to the PlatformConnection entity by IDs.
func (m *GroupMutation) RemoveConnectionIDs(ids ...string) {
	if m.removedconnections == nil {
		m.removedconnections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.connections, ids[i])
		m.removedconnections[ids[i]] = struct{}{}
	}
}

// RemovedConnections returns the removed IDs of the "connections" edge to the PlatformConnection entity.
func (m *GroupMutation) RemovedConnectionsIDs() (ids []string) {
	for id := range m.removedconnections {
		ids = append(ids, id)
	}
	return
}

// ConnectionsIDs returns the "connections" edge IDs in the mutation.
func (m *GroupMutation) ConnectionsIDs() (ids []string) {
	for id := range m.connections {
		ids = append(ids, id)
	}
	return
}

// ResetConnections resets all changes to the "connections" edge.
func (m *GroupMutation) ResetConnections() {
	m.connections = nil
	m.clearedconnections = false
	m.removedconnections = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *GroupMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *GroupMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *GroupMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *GroupMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *GroupMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *GroupMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *GroupMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddFavoriteIDs adds the "favorites" edge to the Favorite entity by ids.
func (m *GroupMutation) AddFavoriteIDs(ids ...string) {
	if m.favorites == nil {
		m.favorites = make(map[string]struct{})
	}
	for i := range ids {
		m.favorites[ids[i]] = struct{}{}
	}
}

// ClearFavorites clears the "favorites" edge to the Favorite entity.
func (m *GroupMutation) ClearFavorites() {
	m.clearedfavorites = true
}

// FavoritesCleared reports if the "favorites" edge to the Favorite entity was cleared.
func (m *GroupMutation) FavoritesCleared() bool {
	return m.clearedfavorites
}

// RemoveFavoriteIDs removes the "favorites" edge to the Favorite entity by IDs.
func (m *GroupMutation) RemoveFavoriteIDs(ids ...string) {
	if m.removedfavorites == nil {
		m.removedfavorites = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.favorites, ids[i])
		m.removedfavorites[ids[i]] = struct{}{}
	}
}

// RemovedFavorites returns the removed IDs of the "favorites" edge to the Favorite entity.
func (m *GroupMutation) RemovedFavoritesIDs() (ids []string) {
	for id := range m.removedfavorites {
		ids = append(ids, id)
	}
	return
}

// FavoritesIDs returns the "favorites" edge IDs in the mutation.
func (m *GroupMutation) FavoritesIDs() (ids []string) {
	for id := range m.favorites {
		ids = append(ids, id)
	}
	return
}

// ResetFavorites resets all changes to the "favorites" edge.
func (m *GroupMutation) ResetFavorites() {
	m.favorites = nil
	m.clearedfavorites = false
	m.removedfavorites = nil
}

// AddSyncLogIDs adds the "sync_logs" edge to the SyncLog entity by ids.
func (m *GroupMutation) AddSyncLogIDs(ids ...string) {
	if m.sync_logs == nil {
		m.sync_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.sync_logs[ids[i]] = struct{}{}
	}
}

// ClearSyncLogs clears the "sync_logs" edge to the SyncLog entity.
func (m *GroupMutation) ClearSyncLogs() {
	m.clearedsync_logs = true
}

// SyncLogsCleared reports if the "sync_logs" edge to the SyncLog entity was cleared.
func (m *GroupMutation) SyncLogsCleared() bool {
	return m.clearedsync_logs
}

// RemoveSyncLogIDs removes the "sync_logs" edge to the SyncLog entity by IDs.
func (m *GroupMutation) RemoveSyncLogIDs(ids ...string) {
	if m.removedsync_logs == nil {
		m.removedsync_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sync_logs, ids[i])
		m.removedsync_logs[ids[i]] = struct{}{}
	}
}

// RemovedSyncLogs returns the removed IDs of the "sync_logs" edge to the SyncLog entity.
func (m *GroupMutation) RemovedSyncLogsIDs() (ids []string) {
	for id := range m.removedsync_logs {
		ids = append(ids, id)
	}
	return
}

// SyncLogsIDs returns the "sync_logs" edge IDs in the mutation.
func (m *GroupMutation) SyncLogsIDs() (ids []string) {
	for id := range m.sync_logs {
		ids = append(ids, id)
	}
	return
}

// ResetSyncLogs resets all changes to the "sync_logs" edge.
func (m *GroupMutation) ResetSyncLogs() {
	m.sync_logs = nil
	m.clearedsync_logs = false
	m.removedsync_logs = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.slug != nil {
		fields = append(fields, group.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	if m.description != nil {
		fields = append(fields, group.FieldDescription)
	}
	if m.member_count != nil {
		fields = append(fields, group.FieldMemberCount)
	}
	if m.photo_url != nil {
		fields = append(fields, group.FieldPhotoURL)
	}
	if m.display != nil {
		fields = append(fields, group.FieldDisplay)
	}
	if m.featured != nil {
		fields = append(fields, group.FieldFeatured)
	}
	if m.tags != nil {
		fields = append(fields, group.FieldTags)
	}
	if m.social_links != nil {
		fields = append(fields, group.FieldSocialLinks)
	}
	if m.sync_active != nil {
		fields = append(fields, group.FieldSyncActive)
	}
	if m.last_sync_at != nil {
		fields = append(fields, group.FieldLastSyncAt)
	}
	if m.last_sync_error != nil {
		fields = append(fields, group.FieldLastSyncError)
	}
	if m.max_badges != nil {
		fields = append(fields, group.FieldMaxBadges)
	}
	if m.max_badge_points != nil {
		fields = append(fields, group.FieldMaxBadgePoints)
	}
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, group.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldSlug:
		return m.Slug()
	case group.FieldName:
		return m.Name()
	case group.FieldDescription:
		return m.Description()
	case group.FieldMemberCount:
		return m.MemberCount()
	case group.FieldPhotoURL:
		return m.PhotoURL()
	case group.FieldDisplay:
		return m.Display()
	case group.FieldFeatured:
		return m.Featured()
	case group.FieldTags:
		return m.Tags()
	case group.FieldSocialLinks:
		return m.SocialLinks()
	case group.FieldSyncActive:
		return m.SyncActive()
	case group.FieldLastSyncAt:
		return m.LastSyncAt()
	case group.FieldLastSyncError:
		return m.LastSyncError()
	case group.FieldMaxBadges:
		return m.MaxBadges()
	case group.FieldMaxBadgePoints:
		return m.MaxBadgePoints()
	case group.FieldCreatedAt:
		return m.CreatedAt()
	case group.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldSlug:
		return m.OldSlug(ctx)
	case group.FieldName:
		return m.OldName(ctx)
	case group.FieldDescription:
		return m.OldDescription(ctx)
	case group.FieldMemberCount:
		return m.OldMemberCount(ctx)
	case group.FieldPhotoURL:
		return m.OldPhotoURL(ctx)
	case group.FieldDisplay:
		return m.OldDisplay(ctx)
	case group.FieldFeatured:
		return m.OldFeatured(ctx)
	case group.FieldTags:
		return m.OldTags(ctx)
	case group.FieldSocialLinks:
		return m.OldSocialLinks(ctx)
	case group.FieldSyncActive:
		return m.OldSyncActive(ctx)
	case group.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case group.FieldLastSyncError:
		return m.OldLastSyncError(ctx)
	case group.FieldMaxBadges:
		return m.OldMaxBadges(ctx)
	case group.FieldMaxBadgePoints:
		return m.OldMaxBadgePoints(ctx)
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case group.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case group.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case group.FieldMemberCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberCount(v)
		return nil
	case group.FieldPhotoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhotoURL(v)
		return nil
	case group.FieldDisplay:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplay(v)
		return nil
	case group.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	case group.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case group.FieldSocialLinks:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocialLinks(v)
		return nil
	case group.FieldSyncActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncActive(v)
		return nil
	case group.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case group.FieldLastSyncError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncError(v)
		return nil
	case group.FieldMaxBadges:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxBadges(v)
		return nil
	case group.FieldMaxBadgePoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxBadgePoints(v)
		return nil
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case group.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	var fields []string
	if m.addmember_count != nil {
		fields = append(fields, group.FieldMemberCount)
	}
	if m.addmax_badges != nil {
		fields = append(fields, group.FieldMaxBadges)
	}
	if m.addmax_badge_points != nil {
		fields = append(fields, group.FieldMaxBadgePoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case group.FieldMemberCount:
		return m.AddedMemberCount()
	case group.FieldMaxBadges:
		return m.AddedMaxBadges()
	case group.FieldMaxBadgePoints:
		return m.AddedMaxBadgePoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case group.FieldMemberCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemberCount(v)
		return nil
	case group.FieldMaxBadges:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxBadges(v)
		return nil
	case group.FieldMaxBadgePoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxBadgePoints(v)
		return nil
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(group.FieldDescription) {
		fields = append(fields, group.FieldDescription)
	}
	if m.FieldCleared(group.FieldPhotoURL) {
		fields = append(fields, group.FieldPhotoURL)
	}
	if m.FieldCleared(group.FieldTags) {
		fields = append(fields, group.FieldTags)
	}
	if m.FieldCleared(group.FieldSocialLinks) {
		fields = append(fields, group.FieldSocialLinks)
	}
	if m.FieldCleared(group.FieldLastSyncAt) {
		fields = append(fields, group.FieldLastSyncAt)
	}
	if m.FieldCleared(group.FieldLastSyncError) {
		fields = append(fields, group.FieldLastSyncError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	switch name {
	case group.FieldDescription:
		m.ClearDescription()
		return nil
	case group.FieldPhotoURL:
		m.ClearPhotoURL()
		return nil
	case group.FieldTags:
		m.ClearTags()
		return nil
	case group.FieldSocialLinks:
		m.ClearSocialLinks()
		return nil
	case group.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	case group.FieldLastSyncError:
		m.ClearLastSyncError()
		return nil
	}
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldSlug:
		m.ResetSlug()
		return nil
	case group.FieldName:
		m.ResetName()
		return nil
	case group.FieldDescription:
		m.ResetDescription()
		return nil
	case group.FieldMemberCount:
		m.ResetMemberCount()
		return nil
	case group.FieldPhotoURL:
		m.ResetPhotoURL()
		return nil
	case group.FieldDisplay:
		m.ResetDisplay()
		return nil
	case group.FieldFeatured:
		m.ResetFeatured()
		return nil
	case group.FieldTags:
		m.ResetTags()
		return nil
	case group.FieldSocialLinks:
		m.ResetSocialLinks()
		return nil
	case group.FieldSyncActive:
		m.ResetSyncActive()
		return nil
	case group.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case group.FieldLastSyncError:
		m.ResetLastSyncError()
		return nil
	case group.FieldMaxBadges:
		m.ResetMaxBadges()
		return nil
	case group.FieldMaxBadgePoints:
		m.ResetMaxBadgePoints()
		return nil
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case group.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.connections != nil {
		edges = append(edges, group.EdgeConnections)
	}
	if m.events != nil {
		edges = append(edges, group.EdgeEvents)
	}
	if m.favorites != nil {
		edges = append(edges, group.EdgeFavorites)
	}
	if m.sync_logs != nil {
		edges = append(edges, group.EdgeSyncLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeConnections:
		ids := make([]ent.Value, 0, len(m.connections))
		for id := range m.connections {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeFavorites:
		ids := make([]ent.Value, 0, len(m.favorites))
		for id := range m.favorites {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeSyncLogs:
		ids := make([]ent.Value, 0, len(m.sync_logs))
		for id := range m.sync_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedconnections != nil {
		edges = append(edges, group.EdgeConnections)
	}
	if m.removedevents != nil {
		edges = append(edges, group.EdgeEvents)
	}
	if m.removedfavorites != nil {
		edges = append(edges, group.EdgeFavorites)
	}
	if m.removedsync_logs != nil {
		edges = append(edges, group.EdgeSyncLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeConnections:
		ids := make([]ent.Value, 0, len(m.removedconnections))
		for id := range m.removedconnections {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeFavorites:
		ids := make([]ent.Value, 0, len(m.removedfavorites))
		for id := range m.removedfavorites {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeSyncLogs:
		ids := make([]ent.Value, 0, len(m.removedsync_logs))
		for id := range m.removedsync_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedconnections {
		edges = append(edges, group.EdgeConnections)
	}
	if m.clearedevents {
		edges = append(edges, group.EdgeEvents)
	}
	if m.clearedfavorites {
		edges = append(edges, group.EdgeFavorites)
	}
	if m.clearedsync_logs {
		edges = append(edges, group.EdgeSyncLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeConnections:
		return m.clearedconnections
	case group.EdgeEvents:
		return m.clearedevents
	case group.EdgeFavorites:
		return m.clearedfavorites
	case group.EdgeSyncLogs:
		return m.clearedsync_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeConnections:
		m.ResetConnections()
		return nil
	case group.EdgeEvents:
		m.ResetEvents()
		return nil
	case group.EdgeFavorites:
		m.ResetFavorites()
		return nil
	case group.EdgeSyncLogs:
		m.ResetSyncLogs()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// OnboardingStepMutation represents an operation that mutates the OnboardingStep nodes in the graph.
type OnboardingStepMutation struct {
	config
	op            Op
	typ           string
	id            *string
	key           *string
	name          *string
	description   *string
	event_key     *string
	sort_order    *int
	addsort_order *int
	enabled       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OnboardingStep, error)
	predicates    []predicate.OnboardingStep
}

var _ ent.Mutation = (*OnboardingStepMutation)(nil)

// onboardingstepOption allows management of the mutation configuration using functional options.
type onboardingstepOption func(*OnboardingStepMutation)

// newOnboardingStepMutation creates new mutation for the OnboardingStep entity.
func newOnboardingStepMutation(c config, op Op, opts ...onboardingstepOption) *OnboardingStepMutation {
	m := &OnboardingStepMutation{
		config:        c,
		op:            op,
		typ:           TypeOnboardingStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOnboardingStepID sets the ID field of the mutation.
func withOnboardingStepID(id string) onboardingstepOption {
	return func(m *OnboardingStepMutation) {
		var (
			err   error
			once  sync.Once
			value *OnboardingStep
		)
		m.oldValue = func(ctx context.Context) (*OnboardingStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OnboardingStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOnboardingStep sets the old OnboardingStep of the mutation.
func withOnboardingStep(node *OnboardingStep) onboardingstepOption {
	return func(m *OnboardingStepMutation) {
		m.oldValue = func(context.Context) (*OnboardingStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OnboardingStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OnboardingStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OnboardingStep entities.
func (m *OnboardingStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OnboardingStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OnboardingStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OnboardingStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *OnboardingStepMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *OnboardingStepMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the OnboardingStep entity.
// If the OnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingStepMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *OnboardingStepMutation) ResetKey() {
	m.key = nil
}

// SetName sets the "name" field.
func (m *OnboardingStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OnboardingStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the OnboardingStep entity.
// If the OnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingStepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OnboardingStepMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *OnboardingStepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *OnboardingStepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the OnboardingStep entity.
// If the OnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingStepMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *OnboardingStepMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[onboardingstep.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *OnboardingStepMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[onboardingstep.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *OnboardingStepMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, onboardingstep.FieldDescription)
}

// SetEventKey sets the "event_key" field.
func (m *OnboardingStepMutation) SetEventKey(s string) {
	m.event_key = &s
}

// EventKey returns the value of the "event_key" field in the mutation.
func (m *OnboardingStepMutation) EventKey() (r string, exists bool) {
	v := m.event_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKey returns the old "event_key" field's value of the OnboardingStep entity.
// If the OnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingStepMutation) OldEventKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKey: %w", err)
	}
	return oldValue.EventKey, nil
}

// ResetEventKey resets all changes to the "event_key" field.
func (m *OnboardingStepMutation) ResetEventKey() {
	m.event_key = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *OnboardingStepMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *OnboardingStepMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the OnboardingStep entity.
// If the OnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingStepMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *OnboardingStepMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *OnboardingStepMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *OnboardingStepMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetEnabled sets the "enabled" field.
func (m *OnboardingStepMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *OnboardingStepMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the OnboardingStep entity.
// If the OnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OnboardingStepMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *OnboardingStepMutation) ResetEnabled() {
	m.enabled = nil
}

// Where appends a list predicates to the OnboardingStepMutation builder.
func (m *OnboardingStepMutation) Where(ps ...predicate.OnboardingStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OnboardingStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OnboardingStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OnboardingStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OnboardingStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OnboardingStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OnboardingStep).
func (m *OnboardingStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OnboardingStepMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.key != nil {
		fields = append(fields, onboardingstep.FieldKey)
	}
	if m.name != nil {
		fields = append(fields, onboardingstep.FieldName)
	}
	if m.description != nil {
		fields = append(fields, onboardingstep.FieldDescription)
	}
	if m.event_key != nil {
		fields = append(fields, onboardingstep.FieldEventKey)
	}
	if m.sort_order != nil {
		fields = append(fields, onboardingstep.FieldSortOrder)
	}
	if m.enabled != nil {
		fields = append(fields, onboardingstep.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OnboardingStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case onboardingstep.FieldKey:
		return m.Key()
	case onboardingstep.FieldName:
		return m.Name()
	case onboardingstep.FieldDescription:
		return m.Description()
	case onboardingstep.FieldEventKey:
		return m.EventKey()
	case onboardingstep.FieldSortOrder:
		return m.SortOrder()
	case onboardingstep.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OnboardingStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case onboardingstep.FieldKey:
		return m.OldKey(ctx)
	case onboardingstep.FieldName:
		return m.OldName(ctx)
	case onboardingstep.FieldDescription:
		return m.OldDescription(ctx)
	case onboardingstep.FieldEventKey:
		return m.OldEventKey(ctx)
	case onboardingstep.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case onboardingstep.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown OnboardingStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OnboardingStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case onboardingstep.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case onboardingstep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case onboardingstep.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case onboardingstep.FieldEventKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKey(v)
		return nil
	case onboardingstep.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case onboardingstep.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown OnboardingStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OnboardingStepMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, onboardingstep.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OnboardingStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case onboardingstep.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OnboardingStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case onboardingstep.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown OnboardingStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OnboardingStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(onboardingstep.FieldDescription) {
		fields = append(fields, onboardingstep.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OnboardingStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OnboardingStepMutation) ClearField(name string) error {
	switch name {
	case onboardingstep.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown OnboardingStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OnboardingStepMutation) ResetField(name string) error {
	switch name {
	case onboardingstep.FieldKey:
		m.ResetKey()
		return nil
	case onboardingstep.FieldName:
		m.ResetName()
		return nil
	case onboardingstep.FieldDescription:
		m.ResetDescription()
		return nil
	case onboardingstep.FieldEventKey:
		m.ResetEventKey()
		return nil
	case onboardingstep.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case onboardingstep.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown OnboardingStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OnboardingStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OnboardingStepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OnboardingStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OnboardingStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OnboardingStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OnboardingStepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OnboardingStepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OnboardingStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OnboardingStepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OnboardingStep edge %s", name)
}

// PlatformConnectionMutation represents an operation that mutates the PlatformConnection nodes in the graph.
type PlatformConnectionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	platform      *string
	platform_id   *string
	slug          *string
	url           *string
	active        *bool
	last_sync_at  *time.Time
	last_error    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	group         *string
	clearedgroup  bool
	done          bool
	oldValue      func(context.Context) (*PlatformConnection, error)
	predicates    []predicate.PlatformConnection
}

var _ ent.Mutation = (*PlatformConnectionMutation)(nil)

// platformconnectionOption allows management of the mutation configuration using functional options.
type platformconnectionOption func(*PlatformConnectionMutation)

// newPlatformConnectionMutation creates new mutation for the PlatformConnection entity.
func newPlatformConnectionMutation(c config, op Op, opts ...platformconnectionOption) *PlatformConnectionMutation {
	m := &PlatformConnectionMutation{
		config:        c,
		op:            op,
		typ:           TypePlatformConnection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlatformConnectionID sets the ID field of the mutation.
func withPlatformConnectionID(id string) platformconnectionOption {
	return func(m *PlatformConnectionMutation) {
		var (
			err   error
			once  sync.Once
			value *PlatformConnection
		)
		m.oldValue = func(ctx context.Context) (*PlatformConnection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlatformConnection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlatformConnection sets the old PlatformConnection of the mutation.
func withPlatformConnection(node *PlatformConnection) platformconnectionOption {
	return func(m *PlatformConnectionMutation) {
		m.oldValue = func(context.Context) (*PlatformConnection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlatformConnectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlatformConnectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlatformConnection entities.
func (m *PlatformConnectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlatformConnectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlatformConnectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlatformConnection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *PlatformConnectionMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *PlatformConnectionMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *PlatformConnectionMutation) ResetGroupID() {
	m.group = nil
}

// SetPlatform sets the "platform" field.
func (m *PlatformConnectionMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *PlatformConnectionMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *PlatformConnectionMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *PlatformConnectionMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *PlatformConnectionMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldPlatformID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *PlatformConnectionMutation) ResetPlatformID() {
	m.platform_id = nil
}

// SetSlug sets the "slug" field.
func (m *PlatformConnectionMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *PlatformConnectionMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ClearSlug clears the value of the "slug" field.
func (m *PlatformConnectionMutation) ClearSlug() {
	m.slug = nil
	m.clearedFields[platformconnection.FieldSlug] = struct{}{}
}

// SlugCleared returns if the "slug" field was cleared in this mutation.
func (m *PlatformConnectionMutation) SlugCleared() bool {
	_, ok := m.clearedFields[platformconnection.FieldSlug]
	return ok
}

// ResetSlug resets all changes to the "slug" field.
func (m *PlatformConnectionMutation) ResetSlug() {
	m.slug = nil
	delete(m.clearedFields, platformconnection.FieldSlug)
}

// SetURL sets the "url" field.
func (m *PlatformConnectionMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *PlatformConnectionMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *PlatformConnectionMutation) ClearURL() {
	m.url = nil
	m.clearedFields[platformconnection.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *PlatformConnectionMutation) URLCleared() bool {
	_, ok := m.clearedFields[platformconnection.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *PlatformConnectionMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, platformconnection.FieldURL)
}

// SetActive sets the "active" field.
func (m *PlatformConnectionMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *PlatformConnectionMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *PlatformConnectionMutation) ResetActive() {
	m.active = nil
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *PlatformConnectionMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *PlatformConnectionMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *PlatformConnectionMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[platformconnection.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *PlatformConnectionMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[platformconnection.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *PlatformConnectionMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, platformconnection.FieldLastSyncAt)
}

// SetLastError sets the "last_error" field.
func (m *PlatformConnectionMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PlatformConnectionMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PlatformConnectionMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[platformconnection.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PlatformConnectionMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[platformconnection.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PlatformConnectionMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, platformconnection.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlatformConnectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlatformConnectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlatformConnection entity.
// If the PlatformConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConnectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlatformConnectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *PlatformConnectionMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[platformconnection.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *PlatformConnectionMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *PlatformConnectionMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *PlatformConnectionMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the PlatformConnectionMutation builder.
func (m *PlatformConnectionMutation) Where(ps ...predicate.PlatformConnection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlatformConnectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlatformConnectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlatformConnection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlatformConnectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlatformConnectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlatformConnection).
func (m *PlatformConnectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlatformConnectionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.group != nil {
		fields = append(fields, platformconnection.FieldGroupID)
	}
	if m.platform != nil {
		fields = append(fields, platformconnection.FieldPlatform)
	}
	if m.platform_id != nil {
		fields = append(fields, platformconnection.FieldPlatformID)
	}
	if m.slug != nil {
		fields = append(fields, platformconnection.FieldSlug)
	}
	if m.url != nil {
		fields = append(fields, platformconnection.FieldURL)
	}
	if m.active != nil {
		fields = append(fields, platformconnection.FieldActive)
	}
	if m.last_sync_at != nil {
		fields = append(fields, platformconnection.FieldLastSyncAt)
	}
	if m.last_error != nil {
		fields = append(fields, platformconnection.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, platformconnection.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlatformConnectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case platformconnection.FieldGroupID:
		return m.GroupID()
	case platformconnection.FieldPlatform:
		return m.Platform()
	case platformconnection.FieldPlatformID:
		return m.PlatformID()
	case platformconnection.FieldSlug:
		return m.Slug()
	case platformconnection.FieldURL:
		return m.URL()
	case platformconnection.FieldActive:
		return m.Active()
	case platformconnection.FieldLastSyncAt:
		return m.LastSyncAt()
	case platformconnection.FieldLastError:
		return m.LastError()
	case platformconnection.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlatformConnectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case platformconnection.FieldGroupID:
		return m.OldGroupID(ctx)
	case platformconnection.FieldPlatform:
		return m.OldPlatform(ctx)
	case platformconnection.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case platformconnection.FieldSlug:
		return m.OldSlug(ctx)
	case platformconnection.FieldURL:
		return m.OldURL(ctx)
	case platformconnection.FieldActive:
		return m.OldActive(ctx)
	case platformconnection.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case platformconnection.FieldLastError:
		return m.OldLastError(ctx)
	case platformconnection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlatformConnection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlatformConnectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case platformconnection.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case platformconnection.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case platformconnection.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case platformconnection.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case platformconnection.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case platformconnection.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case platformconnection.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case platformconnection.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case platformconnection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlatformConnection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlatformConnectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlatformConnectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlatformConnectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PlatformConnection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlatformConnectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(platformconnection.FieldSlug) {
		fields = append(fields, platformconnection.FieldSlug)
	}
	if m.FieldCleared(platformconnection.FieldURL) {
		fields = append(fields, platformconnection.FieldURL)
	}
	if m.FieldCleared(platformconnection.FieldLastSyncAt) {
		fields = append(fields, platformconnection.FieldLastSyncAt)
	}
	if m.FieldCleared(platformconnection.FieldLastError) {
		fields = append(fields, platformconnection.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlatformConnectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlatformConnectionMutation) ClearField(name string) error {
	switch name {
	case platformconnection.FieldSlug:
		m.ClearSlug()
		return nil
	case platformconnection.FieldURL:
		m.ClearURL()
		return nil
	case platformconnection.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	case platformconnection.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown PlatformConnection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlatformConnectionMutation) ResetField(name string) error {
	switch name {
	case platformconnection.FieldGroupID:
		m.ResetGroupID()
		return nil
	case platformconnection.FieldPlatform:
		m.ResetPlatform()
		return nil
	case platformconnection.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case platformconnection.FieldSlug:
		m.ResetSlug()
		return nil
	case platformconnection.FieldURL:
		m.ResetURL()
		return nil
	case platformconnection.FieldActive:
		m.ResetActive()
		return nil
	case platformconnection.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case platformconnection.FieldLastError:
		m.ResetLastError()
		return nil
	case platformconnection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlatformConnection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlatformConnectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.group != nil {
		edges = append(edges, platformconnection.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlatformConnectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case platformconnection.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlatformConnectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlatformConnectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlatformConnectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroup {
		edges = append(edges, platformconnection.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlatformConnectionMutation) EdgeCleared(name string) bool {
	switch name {
	case platformconnection.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlatformConnectionMutation) ClearEdge(name string) error {
	switch name {
	case platformconnection.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown PlatformConnection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlatformConnectionMutation) ResetEdge(name string) error {
	switch name {
	case platformconnection.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown PlatformConnection edge %s", name)
}

// QueuedEventMutation represents an operation that mutates the QueuedEvent nodes in the graph.
type QueuedEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	event_type      *string
	payload         *map[string]interface{}
	metadata        *map[string]interface{}
	event_timestamp *time.Time
	status          *queuedevent.Status
	attempts        *int
	addattempts     *int
	claimed_by      *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*QueuedEvent, error)
	predicates      []predicate.QueuedEvent
}

var _ ent.Mutation = (*QueuedEventMutation)(nil)

// queuedeventOption allows management of the mutation configuration using functional options.
type queuedeventOption func(*QueuedEventMutation)

// newQueuedEventMutation creates new mutation for the QueuedEvent entity.
func newQueuedEventMutation(c config, op Op, opts ...queuedeventOption) *QueuedEventMutation {
	m := &QueuedEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQueuedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueuedEventID sets the ID field of the mutation.
func withQueuedEventID(id int) queuedeventOption {
	return func(m *QueuedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QueuedEvent
		)
		m.oldValue = func(ctx context.Context) (*QueuedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueuedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueuedEvent sets the old QueuedEvent of the mutation.
func withQueuedEvent(node *QueuedEvent) queuedeventOption {
	return func(m *QueuedEventMutation) {
		m.oldValue = func(context.Context) (*QueuedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueuedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueuedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueuedEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueuedEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueuedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *QueuedEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *QueuedEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *QueuedEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *QueuedEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueuedEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueuedEventMutation) ResetPayload() {
	m.payload = nil
}

// SetMetadata sets the "metadata" field.
func (m *QueuedEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *QueuedEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *QueuedEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[queuedevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *QueuedEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[queuedevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *QueuedEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, queuedevent.FieldMetadata)
}

// SetEventTimestamp sets the "event_timestamp" field.
func (m *QueuedEventMutation) SetEventTimestamp(t time.Time) {
	m.event_timestamp = &t
}

// EventTimestamp returns the value of the "event_timestamp" field in the mutation.
func (m *QueuedEventMutation) EventTimestamp() (r time.Time, exists bool) {
	v := m.event_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTimestamp returns the old "event_timestamp" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldEventTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTimestamp: %w", err)
	}
	return oldValue.EventTimestamp, nil
}

// ResetEventTimestamp resets all changes to the "event_timestamp" field.
func (m *QueuedEventMutation) ResetEventTimestamp() {
	m.event_timestamp = nil
}

// SetStatus sets the "status" field.
func (m *QueuedEventMutation) SetStatus(q queuedevent.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueuedEventMutation) Status() (r queuedevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldStatus(ctx context.Context) (v queuedevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueuedEventMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *QueuedEventMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *QueuedEventMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *QueuedEventMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *QueuedEventMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *QueuedEventMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *QueuedEventMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *QueuedEventMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *QueuedEventMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[queuedevent.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *QueuedEventMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[queuedevent.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *QueuedEventMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, queuedevent.FieldClaimedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueuedEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueuedEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueuedEvent entity.
// If the QueuedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueuedEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueuedEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QueuedEventMutation builder.
func (m *QueuedEventMutation) Where(ps ...predicate.QueuedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueuedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueuedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueuedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueuedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueuedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueuedEvent).
func (m *QueuedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueuedEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.event_type != nil {
		fields = append(fields, queuedevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, queuedevent.FieldPayload)
	}
	if m.metadata != nil {
		fields = append(fields, queuedevent.FieldMetadata)
	}
	if m.event_timestamp != nil {
		fields = append(fields, queuedevent.FieldEventTimestamp)
	}
	if m.status != nil {
		fields = append(fields, queuedevent.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, queuedevent.FieldAttempts)
	}
	if m.claimed_by != nil {
		fields = append(fields, queuedevent.FieldClaimedBy)
	}
	if m.created_at != nil {
		fields = append(fields, queuedevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueuedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuedevent.FieldEventType:
		return m.EventType()
	case queuedevent.FieldPayload:
		return m.Payload()
	case queuedevent.FieldMetadata:
		return m.Metadata()
	case queuedevent.FieldEventTimestamp:
		return m.EventTimestamp()
	case queuedevent.FieldStatus:
		return m.Status()
	case queuedevent.FieldAttempts:
		return m.Attempts()
	case queuedevent.FieldClaimedBy:
		return m.ClaimedBy()
	case queuedevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueuedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuedevent.FieldEventType:
		return m.OldEventType(ctx)
	case queuedevent.FieldPayload:
		return m.OldPayload(ctx)
	case queuedevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case queuedevent.FieldEventTimestamp:
		return m.OldEventTimestamp(ctx)
	case queuedevent.FieldStatus:
		return m.OldStatus(ctx)
	case queuedevent.FieldAttempts:
		return m.OldAttempts(ctx)
	case queuedevent.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case queuedevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueuedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueuedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuedevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case queuedevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queuedevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case queuedevent.FieldEventTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTimestamp(v)
		return nil
	case queuedevent.FieldStatus:
		v, ok := value.(queuedevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuedevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case queuedevent.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case queuedevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueuedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueuedEventMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, queuedevent.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueuedEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuedevent.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueuedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuedevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown QueuedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueuedEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuedevent.FieldMetadata) {
		fields = append(fields, queuedevent.FieldMetadata)
	}
	if m.FieldCleared(queuedevent.FieldClaimedBy) {
		fields = append(fields, queuedevent.FieldClaimedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueuedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueuedEventMutation) ClearField(name string) error {
	switch name {
	case queuedevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	case queuedevent.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	}
	return fmt.Errorf("unknown QueuedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueuedEventMutation) ResetField(name string) error {
	switch name {
	case queuedevent.FieldEventType:
		m.ResetEventType()
		return nil
	case queuedevent.FieldPayload:
		m.ResetPayload()
		return nil
	case queuedevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case queuedevent.FieldEventTimestamp:
		m.ResetEventTimestamp()
		return nil
	case queuedevent.FieldStatus:
		m.ResetStatus()
		return nil
	case queuedevent.FieldAttempts:
		m.ResetAttempts()
		return nil
	case queuedevent.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case queuedevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueuedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueuedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueuedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueuedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueuedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueuedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueuedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueuedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueuedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueuedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueuedEvent edge %s", name)
}

// RSVPMutation represents an operation that mutates the RSVP nodes in the graph.
type RSVPMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	status               *rsvp.Status
	rsvp_at              *time.Time
	waitlist_position    *int
	addwaitlist_position *int
	cancelled_at         *time.Time
	clearedFields        map[string]struct{}
	event                *string
	clearedevent         bool
	done                 bool
	oldValue             func(context.Context) (*RSVP, error)
	predicates           []predicate.RSVP
}

var _ ent.Mutation = (*RSVPMutation)(nil)

// rsvpOption allows management of the mutation configuration using functional options.
type rsvpOption func(*RSVPMutation)

// newRSVPMutation creates new mutation for the RSVP entity.
func newRSVPMutation(c config, op Op, opts ...rsvpOption) *RSVPMutation {
	m := &RSVPMutation{
		config:        c,
		op:            op,
		typ:           TypeRSVP,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRSVPID sets the ID field of the mutation.
func withRSVPID(id string) rsvpOption {
	return func(m *RSVPMutation) {
		var (
			err   error
			once  sync.Once
			value *RSVP
		)
		m.oldValue = func(ctx context.Context) (*RSVP, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RSVP.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRSVP sets the old RSVP of the mutation.
func withRSVP(node *RSVP) rsvpOption {
	return func(m *RSVPMutation) {
		m.oldValue = func(context.Context) (*RSVP, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RSVPMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RSVPMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RSVP entities.
func (m *RSVPMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RSVPMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RSVPMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RSVP.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *RSVPMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *RSVPMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the RSVP entity.
// If the RSVP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RSVPMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *RSVPMutation) ResetEventID() {
	m.event = nil
}

// SetUserID sets the "user_id" field.
func (m *RSVPMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RSVPMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RSVP entity.
// If the RSVP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RSVPMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RSVPMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *RSVPMutation) SetStatus(r rsvp.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RSVPMutation) Status() (r rsvp.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RSVP entity.
// If the RSVP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RSVPMutation) OldStatus(ctx context.Context) (v rsvp.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RSVPMutation) ResetStatus() {
	m.status = nil
}

// SetRsvpAt sets the "rsvp_at" field.
func (m *RSVPMutation) SetRsvpAt(t time.Time) {
	m.rsvp_at = &t
}

// RsvpAt returns the value of the "rsvp_at" field in the mutation.
func (m *RSVPMutation) RsvpAt() (r time.Time, exists bool) {
	v := m.rsvp_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRsvpAt returns the old "rsvp_at" field's value of the RSVP entity.
// If the RSVP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RSVPMutation) OldRsvpAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRsvpAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRsvpAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRsvpAt: %w", err)
	}
	return oldValue.RsvpAt, nil
}

// ResetRsvpAt resets all changes to the "rsvp_at" field.
func (m *RSVPMutation) ResetRsvpAt() {
	m.rsvp_at = nil
}

// SetWaitlistPosition sets the "waitlist_position" field.
func (m *RSVPMutation) SetWaitlistPosition(i int) {
	m.waitlist_position = &i
	m.addwaitlist_position = nil
}

// WaitlistPosition returns the value of the "waitlist_position" field in the mutation.
func (m *RSVPMutation) WaitlistPosition() (r int, exists bool) {
	v := m.waitlist_position
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitlistPosition returns the old "waitlist_position" field's value of the RSVP entity.
// If the RSVP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RSVPMutation) OldWaitlistPosition(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitlistPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitlistPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitlistPosition: %w", err)
	}
	return oldValue.WaitlistPosition, nil
}

// AddWaitlistPosition adds i to the "waitlist_position" field.
func (m *RSVPMutation) AddWaitlistPosition(i int) {
	if m.addwaitlist_position != nil {
		*m.addwaitlist_position += i
	} else {
		m.addwaitlist_position = &i
	}
}

// AddedWaitlistPosition returns the value that was added to the "waitlist_position" field in this mutation.
func (m *RSVPMutation) AddedWaitlistPosition() (r int, exists bool) {
	v := m.addwaitlist_position
	if v == nil {
		return
	}
	return *v, true
}

// ClearWaitlistPosition clears the value of the "waitlist_position" field.
func (m *RSVPMutation) ClearWaitlistPosition() {
	m.waitlist_position = nil
	m.addwaitlist_position = nil
	m.clearedFields[rsvp.FieldWaitlistPosition] = struct{}{}
}

// WaitlistPositionCleared returns if the "waitlist_position" field was cleared in this mutation.
func (m *RSVPMutation) WaitlistPositionCleared() bool {
	_, ok := m.clearedFields[rsvp.FieldWaitlistPosition]
	return ok
}

// ResetWaitlistPosition resets all changes to the "waitlist_position" field.
func (m *RSVPMutation) ResetWaitlistPosition() {
	m.waitlist_position = nil
	m.addwaitlist_position = nil
	delete(m.clearedFields, rsvp.FieldWaitlistPosition)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *RSVPMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *RSVPMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the RSVP entity.
// If the RSVP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RSVPMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *RSVPMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[rsvp.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *RSVPMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[rsvp.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *RSVPMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, rsvp.FieldCancelledAt)
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *RSVPMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[rsvp.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *RSVPMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *RSVPMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *RSVPMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// Where appends a list predicates to the RSVPMutation builder.
func (m *RSVPMutation) Where(ps ...predicate.RSVP) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RSVPMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RSVPMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RSVP, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RSVPMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RSVPMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RSVP).
func (m *RSVPMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RSVPMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.event != nil {
		fields = append(fields, rsvp.FieldEventID)
	}
	if m.user_id != nil {
		fields = append(fields, rsvp.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, rsvp.FieldStatus)
	}
	if m.rsvp_at != nil {
		fields = append(fields, rsvp.FieldRsvpAt)
	}
	if m.waitlist_position != nil {
		fields = append(fields, rsvp.FieldWaitlistPosition)
	}
	if m.cancelled_at != nil {
		fields = append(fields, rsvp.FieldCancelledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RSVPMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rsvp.FieldEventID:
		return m.EventID()
	case rsvp.FieldUserID:
		return m.UserID()
	case rsvp.FieldStatus:
		return m.Status()
	case rsvp.FieldRsvpAt:
		return m.RsvpAt()
	case rsvp.FieldWaitlistPosition:
		return m.WaitlistPosition()
	case rsvp.FieldCancelledAt:
		return m.CancelledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RSVPMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rsvp.FieldEventID:
		return m.OldEventID(ctx)
	case rsvp.FieldUserID:
		return m.OldUserID(ctx)
	case rsvp.FieldStatus:
		return m.OldStatus(ctx)
	case rsvp.FieldRsvpAt:
		return m.OldRsvpAt(ctx)
	case rsvp.FieldWaitlistPosition:
		return m.OldWaitlistPosition(ctx)
	case rsvp.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	}
	return nil, fmt.Errorf("unknown RSVP field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RSVPMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rsvp.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case rsvp.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case rsvp.FieldStatus:
		v, ok := value.(rsvp.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rsvp.FieldRsvpAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRsvpAt(v)
		return nil
	case rsvp.FieldWaitlistPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitlistPosition(v)
		return nil
	case rsvp.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	}
	return fmt.Errorf("unknown RSVP field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RSVPMutation) AddedFields() []string {
	var fields []string
	if m.addwaitlist_position != nil {
		fields = append(fields, rsvp.FieldWaitlistPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RSVPMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rsvp.FieldWaitlistPosition:
		return m.AddedWaitlistPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RSVPMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rsvp.FieldWaitlistPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWaitlistPosition(v)
		return nil
	}
	return fmt.Errorf("unknown RSVP numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RSVPMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rsvp.FieldWaitlistPosition) {
		fields = append(fields, rsvp.FieldWaitlistPosition)
	}
	if m.FieldCleared(rsvp.FieldCancelledAt) {
		fields = append(fields, rsvp.FieldCancelledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RSVPMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RSVPMutation) ClearField(name string) error {
	switch name {
	case rsvp.FieldWaitlistPosition:
		m.ClearWaitlistPosition()
		return nil
	case rsvp.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown RSVP nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RSVPMutation) ResetField(name string) error {
	switch name {
	case rsvp.FieldEventID:
		m.ResetEventID()
		return nil
	case rsvp.FieldUserID:
		m.ResetUserID()
		return nil
	case rsvp.FieldStatus:
		m.ResetStatus()
		return nil
	case rsvp.FieldRsvpAt:
		m.ResetRsvpAt()
		return nil
	case rsvp.FieldWaitlistPosition:
		m.ResetWaitlistPosition()
		return nil
	case rsvp.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown RSVP field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RSVPMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.event != nil {
		edges = append(edges, rsvp.EdgeEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RSVPMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rsvp.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RSVPMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RSVPMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RSVPMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevent {
		edges = append(edges, rsvp.EdgeEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RSVPMutation) EdgeCleared(name string) bool {
	switch name {
	case rsvp.EdgeEvent:
		return m.clearedevent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RSVPMutation) ClearEdge(name string) error {
	switch name {
	case rsvp.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown RSVP unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RSVPMutation) ResetEdge(name string) error {
	switch name {
	case rsvp.EdgeEvent:
		m.ResetEvent()
		return nil
	}
	return fmt.Errorf("unknown RSVP edge %s", name)
}

// SyncLogMutation represents an operation that mutates the SyncLog nodes in the graph.
type SyncLogMutation struct {
	config
	op                Op
	typ               string
	id                *string
	connection_id     *string
	platform          *string
	status            *synclog.Status
	started_at        *time.Time
	completed_at      *time.Time
	events_created    *int
	addevents_created *int
	events_updated    *int
	addevents_updated *int
	events_deleted    *int
	addevents_deleted *int
	error_message     *string
	clearedFields     map[string]struct{}
	group             *string
	clearedgroup      bool
	done              bool
	oldValue          func(context.Context) (*SyncLog, error)
	predicates        []predicate.SyncLog
}

var _ ent.Mutation = (*SyncLogMutation)(nil)

// synclogOption allows management of the mutation configuration using functional options.
type synclogOption func(*SyncLogMutation)

// newSyncLogMutation creates new mutation for the SyncLog entity.
func newSyncLogMutation(c config, op Op, opts ...synclogOption) *SyncLogMutation {
	m := &SyncLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncLogID sets the ID field of the mutation.
func withSyncLogID(id string) synclogOption {
	return func(m *SyncLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncLog
		)
		m.oldValue = func(ctx context.Context) (*SyncLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncLog sets the old SyncLog of the mutation.
func withSyncLog(node *SyncLog) synclogOption {
	return func(m *SyncLogMutation) {
		m.oldValue = func(context.Context) (*SyncLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncLog entities.
func (m *SyncLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *SyncLogMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *SyncLogMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *SyncLogMutation) ResetGroupID() {
	m.group = nil
}

// SetConnectionID sets the "connection_id" field.
func (m *SyncLogMutation) SetConnectionID(s string) {
	m.connection_id = &s
}

// ConnectionID returns the value of the "connection_id" field in the mutation.
func (m *SyncLogMutation) ConnectionID() (r string, exists bool) {
	v := m.connection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionID returns the old "connection_id" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldConnectionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionID: %w", err)
	}
	return oldValue.ConnectionID, nil
}

// ClearConnectionID clears the value of the "connection_id" field.
func (m *SyncLogMutation) ClearConnectionID() {
	m.connection_id = nil
	m.clearedFields[synclog.FieldConnectionID] = struct{}{}
}

// ConnectionIDCleared returns if the "connection_id" field was cleared in this mutation.
func (m *SyncLogMutation) ConnectionIDCleared() bool {
	_, ok := m.clearedFields[synclog.FieldConnectionID]
	return ok
}

// ResetConnectionID resets all changes to the "connection_id" field.
func (m *SyncLogMutation) ResetConnectionID() {
	m.connection_id = nil
	delete(m.clearedFields, synclog.FieldConnectionID)
}

// SetPlatform sets the "platform" field.
func (m *SyncLogMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *SyncLogMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *SyncLogMutation) ResetPlatform() {
	m.platform = nil
}

// SetStatus sets the "status" field.
func (m *SyncLogMutation) SetStatus(s synclog.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncLogMutation) Status() (r synclog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldStatus(ctx context.Context) (v synclog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SyncLogMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SyncLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SyncLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SyncLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SyncLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SyncLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SyncLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[synclog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SyncLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[synclog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SyncLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, synclog.FieldCompletedAt)
}

// SetEventsCreated sets the "events_created" field.
func (m *SyncLogMutation) SetEventsCreated(i int) {
	m.events_created = &i
	m.addevents_created = nil
}

// EventsCreated returns the value of the "events_created" field in the mutation.
func (m *SyncLogMutation) EventsCreated() (r int, exists bool) {
	v := m.events_created
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsCreated returns the old "events_created" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldEventsCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsCreated: %w", err)
	}
	return oldValue.EventsCreated, nil
}

// AddEventsCreated adds i to the "events_created" field.
func (m *SyncLogMutation) AddEventsCreated(i int) {
	if m.addevents_created != nil {
		*m.addevents_created += i
	} else {
		m.addevents_created = &i
	}
}

// AddedEventsCreated returns the value that was added to the "events_created" field in this mutation.
func (m *SyncLogMutation) AddedEventsCreated() (r int, exists bool) {
	v := m.addevents_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsCreated resets all changes to the "events_created" field.
func (m *SyncLogMutation) ResetEventsCreated() {
	m.events_created = nil
	m.addevents_created = nil
}

// SetEventsUpdated sets the "events_updated" field.
func (m *SyncLogMutation) SetEventsUpdated(i int) {
	m.events_updated = &i
	m.addevents_updated = nil
}

// EventsUpdated returns the value of the "events_updated" field in the mutation.
func (m *SyncLogMutation) EventsUpdated() (r int, exists bool) {
	v := m.events_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsUpdated returns the old "events_updated" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldEventsUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsUpdated: %w", err)
	}
	return oldValue.EventsUpdated, nil
}

// AddEventsUpdated adds i to the "events_updated" field.
func (m *SyncLogMutation) AddEventsUpdated(i int) {
	if m.addevents_updated != nil {
		*m.addevents_updated += i
	} else {
		m.addevents_updated = &i
	}
}

// AddedEventsUpdated returns the value that was added to the "events_updated" field in this mutation.
func (m *SyncLogMutation) AddedEventsUpdated() (r int, exists bool) {
	v := m.addevents_updated
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsUpdated resets all changes to the "events_updated" field.
func (m *SyncLogMutation) ResetEventsUpdated() {
	m.events_updated = nil
	m.addevents_updated = nil
}

// SetEventsDeleted sets the "events_deleted" field.
func (m *SyncLogMutation) SetEventsDeleted(i int) {
	m.events_deleted = &i
	m.addevents_deleted = nil
}

// EventsDeleted returns the value of the "events_deleted" field in the mutation.
func (m *SyncLogMutation) EventsDeleted() (r int, exists bool) {
	v := m.events_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsDeleted returns the old "events_deleted" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldEventsDeleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsDeleted: %w", err)
	}
	return oldValue.EventsDeleted, nil
}

// AddEventsDeleted adds i to the "events_deleted" field.
func (m *SyncLogMutation) AddEventsDeleted(i int) {
	if m.addevents_deleted != nil {
		*m.addevents_deleted += i
	} else {
		m.addevents_deleted = &i
	}
}

// AddedEventsDeleted returns the value that was added to the "events_deleted" field in this mutation.
func (m *SyncLogMutation) AddedEventsDeleted() (r int, exists bool) {
	v := m.addevents_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsDeleted resets all changes to the "events_deleted" field.
func (m *SyncLogMutation) ResetEventsDeleted() {
	m.events_deleted = nil
	m.addevents_deleted = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SyncLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SyncLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SyncLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[synclog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SyncLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[synclog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SyncLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, synclog.FieldErrorMessage)
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *SyncLogMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[synclog.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *SyncLogMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *SyncLogMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *SyncLogMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the SyncLogMutation builder.
func (m *SyncLogMutation) Where(ps ...predicate.SyncLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncLog).
func (m *SyncLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.group != nil {
		fields = append(fields, synclog.FieldGroupID)
	}
	if m.connection_id != nil {
		fields = append(fields, synclog.FieldConnectionID)
	}
	if m.platform != nil {
		fields = append(fields, synclog.FieldPlatform)
	}
	if m.status != nil {
		fields = append(fields, synclog.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, synclog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, synclog.FieldCompletedAt)
	}
	if m.events_created != nil {
		fields = append(fields, synclog.FieldEventsCreated)
	}
	if m.events_updated != nil {
		fields = append(fields, synclog.FieldEventsUpdated)
	}
	if m.events_deleted != nil {
		fields = append(fields, synclog.FieldEventsDeleted)
	}
	if m.error_message != nil {
		fields = append(fields, synclog.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case synclog.FieldGroupID:
		return m.GroupID()
	case synclog.FieldConnectionID:
		return m.ConnectionID()
	case synclog.FieldPlatform:
		return m.Platform()
	case synclog.FieldStatus:
		return m.Status()
	case synclog.FieldStartedAt:
		return m.StartedAt()
	case synclog.FieldCompletedAt:
		return m.CompletedAt()
	case synclog.FieldEventsCreated:
		return m.EventsCreated()
	case synclog.FieldEventsUpdated:
		return m.EventsUpdated()
	case synclog.FieldEventsDeleted:
		return m.EventsDeleted()
	case synclog.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case synclog.FieldGroupID:
		return m.OldGroupID(ctx)
	case synclog.FieldConnectionID:
		return m.OldConnectionID(ctx)
	case synclog.FieldPlatform:
		return m.OldPlatform(ctx)
	case synclog.FieldStatus:
		return m.OldStatus(ctx)
	case synclog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case synclog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case synclog.FieldEventsCreated:
		return m.OldEventsCreated(ctx)
	case synclog.FieldEventsUpdated:
		return m.OldEventsUpdated(ctx)
	case synclog.FieldEventsDeleted:
		return m.OldEventsDeleted(ctx)
	case synclog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown SyncLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case synclog.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case synclog.FieldConnectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionID(v)
		return nil
	case synclog.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case synclog.FieldStatus:
		v, ok := value.(synclog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case synclog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case synclog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case synclog.FieldEventsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsCreated(v)
		return nil
	case synclog.FieldEventsUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsUpdated(v)
		return nil
	case synclog.FieldEventsDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsDeleted(v)
		return nil
	case synclog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown SyncLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncLogMutation) AddedFields() []string {
	var fields []string
	if m.addevents_created != nil {
		fields = append(fields, synclog.FieldEventsCreated)
	}
	if m.addevents_updated != nil {
		fields = append(fields, synclog.FieldEventsUpdated)
	}
	if m.addevents_deleted != nil {
		fields = append(fields, synclog.FieldEventsDeleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case synclog.FieldEventsCreated:
		return m.AddedEventsCreated()
	case synclog.FieldEventsUpdated:
		return m.AddedEventsUpdated()
	case synclog.FieldEventsDeleted:
		return m.AddedEventsDeleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case synclog.FieldEventsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsCreated(v)
		return nil
	case synclog.FieldEventsUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsUpdated(v)
		return nil
	case synclog.FieldEventsDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsDeleted(v)
		return nil
	}
	return fmt.Errorf("unknown SyncLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(synclog.FieldConnectionID) {
		fields = append(fields, synclog.FieldConnectionID)
	}
	if m.FieldCleared(synclog.FieldCompletedAt) {
		fields = append(fields, synclog.FieldCompletedAt)
	}
	if m.FieldCleared(synclog.FieldErrorMessage) {
		fields = append(fields, synclog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncLogMutation) ClearField(name string) error {
	switch name {
	case synclog.FieldConnectionID:
		m.ClearConnectionID()
		return nil
	case synclog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case synclog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SyncLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncLogMutation) ResetField(name string) error {
	switch name {
	case synclog.FieldGroupID:
		m.ResetGroupID()
		return nil
	case synclog.FieldConnectionID:
		m.ResetConnectionID()
		return nil
	case synclog.FieldPlatform:
		m.ResetPlatform()
		return nil
	case synclog.FieldStatus:
		m.ResetStatus()
		return nil
	case synclog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case synclog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case synclog.FieldEventsCreated:
		m.ResetEventsCreated()
		return nil
	case synclog.FieldEventsUpdated:
		m.ResetEventsUpdated()
		return nil
	case synclog.FieldEventsDeleted:
		m.ResetEventsDeleted()
		return nil
	case synclog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SyncLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.group != nil {
		edges = append(edges, synclog.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case synclog.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroup {
		edges = append(edges, synclog.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncLogMutation) EdgeCleared(name string) bool {
	switch name {
	case synclog.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncLogMutation) ClearEdge(name string) error {
	switch name {
	case synclog.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown SyncLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncLogMutation) ResetEdge(name string) error {
	switch name {
	case synclog.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown SyncLog edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	username      *string
	email         *string
	display_name  *string
	role          *user.Role
	public        *bool
	bio           *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetPublic sets the "public" field.
func (m *UserMutation) SetPublic(b bool) {
	m.public = &b
}

// Public returns the value of the "public" field in the mutation.
func (m *UserMutation) Public() (r bool, exists bool) {
	v := m.public
	if v == nil {
		return
	}
	return *v, true
}

// OldPublic returns the old "public" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublic: %w", err)
	}
	return oldValue.Public, nil
}

// ResetPublic resets all changes to the "public" field.
func (m *UserMutation) ResetPublic() {
	m.public = nil
}

// SetBio sets the "bio" field.
func (m *UserMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *UserMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBio(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ClearBio clears the value of the "bio" field.
func (m *UserMutation) ClearBio() {
	m.bio = nil
	m.clearedFields[user.FieldBio] = struct{}{}
}

// BioCleared returns if the "bio" field was cleared in this mutation.
func (m *UserMutation) BioCleared() bool {
	_, ok := m.clearedFields[user.FieldBio]
	return ok
}

// ResetBio resets all changes to the "bio" field.
func (m *UserMutation) ResetBio() {
	m.bio = nil
	delete(m.clearedFields, user.FieldBio)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.public != nil {
		fields = append(fields, user.FieldPublic)
	}
	if m.bio != nil {
		fields = append(fields, user.FieldBio)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldRole:
		return m.Role()
	case user.FieldPublic:
		return m.Public()
	case user.FieldBio:
		return m.Bio()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldPublic:
		return m.OldPublic(ctx)
	case user.FieldBio:
		return m.OldBio(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublic(v)
		return nil
	case user.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.FieldCleared(user.FieldBio) {
		fields = append(fields, user.FieldBio)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case user.FieldBio:
		m.ClearBio()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldPublic:
		m.ResetPublic()
		return nil
	case user.FieldBio:
		m.ResetBio()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// UserBadgeMutation represents an operation that mutates the UserBadge nodes in the graph.
type UserBadgeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	awarded_at    *time.Time
	awarded_by    *string
	clearedFields map[string]struct{}
	badge         *string
	clearedbadge  bool
	done          bool
	oldValue      func(context.Context) (*UserBadge, error)
	predicates    []predicate.UserBadge
}

var _ ent.Mutation = (*UserBadgeMutation)(nil)

// userbadgeOption allows management of the mutation configuration using functional options.
type userbadgeOption func(*UserBadgeMutation)

// newUserBadgeMutation creates new mutation for the UserBadge entity.
func newUserBadgeMutation(c config, op Op, opts ...userbadgeOption) *UserBadgeMutation {
	m := &UserBadgeMutation{
		config:        c,
		op:            op,
		typ:           TypeUserBadge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserBadgeID sets the ID field of the mutation.
func withUserBadgeID(id string) userbadgeOption {
	return func(m *UserBadgeMutation) {
		var (
			err   error
			once  sync.Once
			value *UserBadge
		)
		m.oldValue = func(ctx context.Context) (*UserBadge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserBadge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserBadge sets the old UserBadge of the mutation.
func withUserBadge(node *UserBadge) userbadgeOption {
	return func(m *UserBadgeMutation) {
		m.oldValue = func(context.Context) (*UserBadge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserBadgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserBadgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserBadge entities.
func (m *UserBadgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserBadgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserBadgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserBadge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserBadgeMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserBadgeMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserBadge entity.
// If the UserBadge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBadgeMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserBadgeMutation) ResetUserID() {
	m.user_id = nil
}

// SetBadgeID sets the "badge_id" field.
func (m *UserBadgeMutation) SetBadgeID(s string) {
	m.badge = &s
}

// BadgeID returns the value of the "badge_id" field in the mutation.
func (m *UserBadgeMutation) BadgeID() (r string, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeID returns the old "badge_id" field's value of the UserBadge entity.
// If the UserBadge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBadgeMutation) OldBadgeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeID: %w", err)
	}
	return oldValue.BadgeID, nil
}

// ResetBadgeID resets all changes to the "badge_id" field.
func (m *UserBadgeMutation) ResetBadgeID() {
	m.badge = nil
}

// SetAwardedAt sets the "awarded_at" field.
func (m *UserBadgeMutation) SetAwardedAt(t time.Time) {
	m.awarded_at = &t
}

// AwardedAt returns the value of the "awarded_at" field in the mutation.
func (m *UserBadgeMutation) AwardedAt() (r time.Time, exists bool) {
	v := m.awarded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedAt returns the old "awarded_at" field's value of the UserBadge entity.
// If the UserBadge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBadgeMutation) OldAwardedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedAt: %w", err)
	}
	return oldValue.AwardedAt, nil
}

// ResetAwardedAt resets all changes to the "awarded_at" field.
func (m *UserBadgeMutation) ResetAwardedAt() {
	m.awarded_at = nil
}

// SetAwardedBy sets the "awarded_by" field.
func (m *UserBadgeMutation) SetAwardedBy(s string) {
	m.awarded_by = &s
}

// AwardedBy returns the value of the "awarded_by" field in the mutation.
func (m *UserBadgeMutation) AwardedBy() (r string, exists bool) {
	v := m.awarded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedBy returns the old "awarded_by" field's value of the UserBadge entity.
// If the UserBadge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBadgeMutation) OldAwardedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedBy: %w", err)
	}
	return oldValue.AwardedBy, nil
}

// ClearAwardedBy clears the value of the "awarded_by" field.
func (m *UserBadgeMutation) ClearAwardedBy() {
	m.awarded_by = nil
	m.clearedFields[userbadge.FieldAwardedBy] = struct{}{}
}

// AwardedByCleared returns if the "awarded_by" field was cleared in this mutation.
func (m *UserBadgeMutation) AwardedByCleared() bool {
	_, ok := m.clearedFields[userbadge.FieldAwardedBy]
	return ok
}

// ResetAwardedBy resets all changes to the "awarded_by" field.
func (m *UserBadgeMutation) ResetAwardedBy() {
	m.awarded_by = nil
	delete(m.clearedFields, userbadge.FieldAwardedBy)
}

// ClearBadge clears the "badge" edge to the Badge entity.
func (m *UserBadgeMutation) ClearBadge() {
	m.clearedbadge = true
	m.clearedFields[userbadge.FieldBadgeID] = struct{}{}
}

// BadgeCleared reports if the "badge" edge to the Badge entity was cleared.
func (m *UserBadgeMutation) BadgeCleared() bool {
	return m.clearedbadge
}

// BadgeIDs returns the "badge" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BadgeID instead. It exists only for internal usage by the builders.
func (m *UserBadgeMutation) BadgeIDs() (ids []string) {
	if id := m.badge; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBadge resets all changes to the "badge" edge.
func (m *UserBadgeMutation) ResetBadge() {
	m.badge = nil
	m.clearedbadge = false
}

// Where appends a list predicates to the UserBadgeMutation builder.
func (m *UserBadgeMutation) Where(ps ...predicate.UserBadge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserBadgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserBadgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserBadge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserBadgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserBadgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserBadge).
func (m *UserBadgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserBadgeMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, userbadge.FieldUserID)
	}
	if m.badge != nil {
		fields = append(fields, userbadge.FieldBadgeID)
	}
	if m.awarded_at != nil {
		fields = append(fields, userbadge.FieldAwardedAt)
	}
	if m.awarded_by != nil {
		fields = append(fields, userbadge.FieldAwardedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserBadgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userbadge.FieldUserID:
		return m.UserID()
	case userbadge.FieldBadgeID:
		return m.BadgeID()
	case userbadge.FieldAwardedAt:
		return m.AwardedAt()
	case userbadge.FieldAwardedBy:
		return m.AwardedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserBadgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userbadge.FieldUserID:
		return m.OldUserID(ctx)
	case userbadge.FieldBadgeID:
		return m.OldBadgeID(ctx)
	case userbadge.FieldAwardedAt:
		return m.OldAwardedAt(ctx)
	case userbadge.FieldAwardedBy:
		return m.OldAwardedBy(ctx)
	}
	return nil, fmt.Errorf("unknown UserBadge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserBadgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userbadge.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userbadge.FieldBadgeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeID(v)
		return nil
	case userbadge.FieldAwardedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedAt(v)
		return nil
	case userbadge.FieldAwardedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedBy(v)
		return nil
	}
	return fmt.Errorf("unknown UserBadge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserBadgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserBadgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserBadgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserBadge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserBadgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userbadge.FieldAwardedBy) {
		fields = append(fields, userbadge.FieldAwardedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserBadgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserBadgeMutation) ClearField(name string) error {
	switch name {
	case userbadge.FieldAwardedBy:
		m.ClearAwardedBy()
		return nil
	}
	return fmt.Errorf("unknown UserBadge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserBadgeMutation) ResetField(name string) error {
	switch name {
	case userbadge.FieldUserID:
		m.ResetUserID()
		return nil
	case userbadge.FieldBadgeID:
		m.ResetBadgeID()
		return nil
	case userbadge.FieldAwardedAt:
		m.ResetAwardedAt()
		return nil
	case userbadge.FieldAwardedBy:
		m.ResetAwardedBy()
		return nil
	}
	return fmt.Errorf("unknown UserBadge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserBadgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.badge != nil {
		edges = append(edges, userbadge.EdgeBadge)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserBadgeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userbadge.EdgeBadge:
		if id := m.badge; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserBadgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserBadgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserBadgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbadge {
		edges = append(edges, userbadge.EdgeBadge)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserBadgeMutation) EdgeCleared(name string) bool {
	switch name {
	case userbadge.EdgeBadge:
		return m.clearedbadge
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserBadgeMutation) ClearEdge(name string) error {
	switch name {
	case userbadge.EdgeBadge:
		m.ClearBadge()
		return nil
	}
	return fmt.Errorf("unknown UserBadge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserBadgeMutation) ResetEdge(name string) error {
	switch name {
	case userbadge.EdgeBadge:
		m.ResetBadge()
		return nil
	}
	return fmt.Errorf("unknown UserBadge edge %s", name)
}

// UserEntitlementMutation represents an operation that mutates the UserEntitlement nodes in the graph.
type UserEntitlementMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	entitlement   *string
	granted_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserEntitlement, error)
	predicates    []predicate.UserEntitlement
}

var _ ent.Mutation = (*UserEntitlementMutation)(nil)

// userentitlementOption allows management of the mutation configuration using functional options.
type userentitlementOption func(*UserEntitlementMutation)

// newUserEntitlementMutation creates new mutation for the UserEntitlement entity.
func newUserEntitlementMutation(c config, op Op, opts ...userentitlementOption) *UserEntitlementMutation {
	m := &UserEntitlementMutation{
		config:        c,
		op:            op,
		typ:           TypeUserEntitlement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserEntitlementID sets the ID field of the mutation.
func withUserEntitlementID(id string) userentitlementOption {
	return func(m *UserEntitlementMutation) {
		var (
			err   error
			once  sync.Once
			value *UserEntitlement
		)
		m.oldValue = func(ctx context.Context) (*UserEntitlement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserEntitlement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserEntitlement sets the old UserEntitlement of the mutation.
func withUserEntitlement(node *UserEntitlement) userentitlementOption {
	return func(m *UserEntitlementMutation) {
		m.oldValue = func(context.Context) (*UserEntitlement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserEntitlementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserEntitlementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserEntitlement entities.
func (m *UserEntitlementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserEntitlementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserEntitlementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserEntitlement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserEntitlementMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserEntitlementMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserEntitlement entity.
// If the UserEntitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEntitlementMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserEntitlementMutation) ResetUserID() {
	m.user_id = nil
}

// SetEntitlement sets the "entitlement" field.
func (m *UserEntitlementMutation) SetEntitlement(s string) {
	m.entitlement = &s
}

// Entitlement returns the value of the "entitlement" field in the mutation.
func (m *UserEntitlementMutation) Entitlement() (r string, exists bool) {
	v := m.entitlement
	if v == nil {
		return
	}
	return *v, true
}

// OldEntitlement returns the old "entitlement" field's value of the UserEntitlement entity.
// If the UserEntitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEntitlementMutation) OldEntitlement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntitlement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntitlement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntitlement: %w", err)
	}
	return oldValue.Entitlement, nil
}

// ResetEntitlement resets all changes to the "entitlement" field.
func (m *UserEntitlementMutation) ResetEntitlement() {
	m.entitlement = nil
}

// SetGrantedAt sets the "granted_at" field.
func (m *UserEntitlementMutation) SetGrantedAt(t time.Time) {
	m.granted_at = &t
}

// GrantedAt returns the value of the "granted_at" field in the mutation.
func (m *UserEntitlementMutation) GrantedAt() (r time.Time, exists bool) {
	v := m.granted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantedAt returns the old "granted_at" field's value of the UserEntitlement entity.
// If the UserEntitlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEntitlementMutation) OldGrantedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantedAt: %w", err)
	}
	return oldValue.GrantedAt, nil
}

// ResetGrantedAt resets all changes to the "granted_at" field.
func (m *UserEntitlementMutation) ResetGrantedAt() {
	m.granted_at = nil
}

// Where appends a list predicates to the UserEntitlementMutation builder.
func (m *UserEntitlementMutation) Where(ps ...predicate.UserEntitlement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserEntitlementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserEntitlementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserEntitlement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserEntitlementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserEntitlementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserEntitlement).
func (m *UserEntitlementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserEntitlementMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, userentitlement.FieldUserID)
	}
	if m.entitlement != nil {
		fields = append(fields, userentitlement.FieldEntitlement)
	}
	if m.granted_at != nil {
		fields = append(fields, userentitlement.FieldGrantedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserEntitlementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userentitlement.FieldUserID:
		return m.UserID()
	case userentitlement.FieldEntitlement:
		return m.Entitlement()
	case userentitlement.FieldGrantedAt:
		return m.GrantedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserEntitlementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userentitlement.FieldUserID:
		return m.OldUserID(ctx)
	case userentitlement.FieldEntitlement:
		return m.OldEntitlement(ctx)
	case userentitlement.FieldGrantedAt:
		return m.OldGrantedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserEntitlement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserEntitlementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userentitlement.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userentitlement.FieldEntitlement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntitlement(v)
		return nil
	case userentitlement.FieldGrantedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserEntitlement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserEntitlementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserEntitlementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserEntitlementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserEntitlement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserEntitlementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserEntitlementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserEntitlementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserEntitlement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserEntitlementMutation) ResetField(name string) error {
	switch name {
	case userentitlement.FieldUserID:
		m.ResetUserID()
		return nil
	case userentitlement.FieldEntitlement:
		m.ResetEntitlement()
		return nil
	case userentitlement.FieldGrantedAt:
		m.ResetGrantedAt()
		return nil
	}
	return fmt.Errorf("unknown UserEntitlement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserEntitlementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserEntitlementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserEntitlementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserEntitlementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserEntitlementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserEntitlementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserEntitlementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserEntitlement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserEntitlementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserEntitlement edge %s", name)
}

// UserOnboardingStepMutation represents an operation that mutates the UserOnboardingStep nodes in the graph.
type UserOnboardingStepMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	step_key      *string
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserOnboardingStep, error)
	predicates    []predicate.UserOnboardingStep
}

var _ ent.Mutation = (*UserOnboardingStepMutation)(nil)

// useronboardingstepOption allows management of the mutation configuration using functional options.
type useronboardingstepOption func(*UserOnboardingStepMutation)

// newUserOnboardingStepMutation creates new mutation for the UserOnboardingStep entity.
func newUserOnboardingStepMutation(c config, op Op, opts ...useronboardingstepOption) *UserOnboardingStepMutation {
	m := &UserOnboardingStepMutation{
		config:        c,
		op:            op,
		typ:           TypeUserOnboardingStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserOnboardingStepID sets the ID field of the mutation.
func withUserOnboardingStepID(id string) useronboardingstepOption {
	return func(m *UserOnboardingStepMutation) {
		var (
			err   error
			once  sync.Once
			value *UserOnboardingStep
		)
		m.oldValue = func(ctx context.Context) (*UserOnboardingStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserOnboardingStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserOnboardingStep sets the old UserOnboardingStep of the mutation.
func withUserOnboardingStep(node *UserOnboardingStep) useronboardingstepOption {
	return func(m *UserOnboardingStepMutation) {
		m.oldValue = func(context.Context) (*UserOnboardingStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserOnboardingStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserOnboardingStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserOnboardingStep entities.
func (m *UserOnboardingStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserOnboardingStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserOnboardingStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserOnboardingStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserOnboardingStepMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserOnboardingStepMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserOnboardingStep entity.
// If the UserOnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserOnboardingStepMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserOnboardingStepMutation) ResetUserID() {
	m.user_id = nil
}

// SetStepKey sets the "step_key" field.
func (m *UserOnboardingStepMutation) SetStepKey(s string) {
	m.step_key = &s
}

// StepKey returns the value of the "step_key" field in the mutation.
func (m *UserOnboardingStepMutation) StepKey() (r string, exists bool) {
	v := m.step_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStepKey returns the old "step_key" field's value of the UserOnboardingStep entity.
// If the UserOnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserOnboardingStepMutation) OldStepKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepKey: %w", err)
	}
	return oldValue.StepKey, nil
}

// ResetStepKey resets all changes to the "step_key" field.
func (m *UserOnboardingStepMutation) ResetStepKey() {
	m.step_key = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *UserOnboardingStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *UserOnboardingStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the UserOnboardingStep entity.
// If the UserOnboardingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserOnboardingStepMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *UserOnboardingStepMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the UserOnboardingStepMutation builder.
func (m *UserOnboardingStepMutation) Where(ps ...predicate.UserOnboardingStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserOnboardingStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserOnboardingStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserOnboardingStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserOnboardingStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserOnboardingStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserOnboardingStep).
func (m *UserOnboardingStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserOnboardingStepMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, useronboardingstep.FieldUserID)
	}
	if m.step_key != nil {
		fields = append(fields, useronboardingstep.FieldStepKey)
	}
	if m.completed_at != nil {
		fields = append(fields, useronboardingstep.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserOnboardingStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case useronboardingstep.FieldUserID:
		return m.UserID()
	case useronboardingstep.FieldStepKey:
		return m.StepKey()
	case useronboardingstep.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserOnboardingStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case useronboardingstep.FieldUserID:
		return m.OldUserID(ctx)
	case useronboardingstep.FieldStepKey:
		return m.OldStepKey(ctx)
	case useronboardingstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserOnboardingStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserOnboardingStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case useronboardingstep.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case useronboardingstep.FieldStepKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepKey(v)
		return nil
	case useronboardingstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserOnboardingStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserOnboardingStepMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserOnboardingStepMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserOnboardingStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserOnboardingStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserOnboardingStepMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserOnboardingStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserOnboardingStepMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserOnboardingStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserOnboardingStepMutation) ResetField(name string) error {
	switch name {
	case useronboardingstep.FieldUserID:
		m.ResetUserID()
		return nil
	case useronboardingstep.FieldStepKey:
		m.ResetStepKey()
		return nil
	case useronboardingstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown UserOnboardingStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserOnboardingStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserOnboardingStepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserOnboardingStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserOnboardingStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserOnboardingStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserOnboardingStepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserOnboardingStepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserOnboardingStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserOnboardingStepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserOnboardingStep edge %s", name)
}

// VenueMutation represents an operation that mutates the Venue nodes in the graph.
type VenueMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	street            *string
	city              *string
	region            *string
	postal_code       *string
	country           *string
	lat               *float64
	addlat            *float64
	lon               *float64
	addlon            *float64
	is_online         *bool
	platform          *string
	platform_venue_id *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Venue, error)
	predicates        []predicate.Venue
}

var _ ent.Mutation = (*VenueMutation)(nil)

// venueOption allows management of the mutation configuration using functional options.
type venueOption func(*VenueMutation)

// newVenueMutation creates new mutation for the Venue entity.
func newVenueMutation(c config, op Op, opts ...venueOption) *VenueMutation {
	m := &VenueMutation{
		config:        c,
		op:            op,
		typ:           TypeVenue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVenueID sets the ID field of the mutation.
func withVenueID(id string) venueOption {
	return func(m *VenueMutation) {
		var (
			err   error
			once  sync.Once
			value *Venue
		)
		m.oldValue = func(ctx context.Context) (*Venue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Venue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVenue sets the old Venue of the mutation.
func withVenue(node *Venue) venueOption {
	return func(m *VenueMutation) {
		m.oldValue = func(context.Context) (*Venue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VenueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VenueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Venue entities.
func (m *VenueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VenueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VenueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Venue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VenueMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VenueMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VenueMutation) ResetName() {
	m.name = nil
}

// SetStreet sets the "street" field.
func (m *VenueMutation) SetStreet(s string) {
	m.street = &s
}

// Street returns the value of the "street" field in the mutation.
func (m *VenueMutation) Street() (r string, exists bool) {
	v := m.street
	if v == nil {
		return
	}
	return *v, true
}

// OldStreet returns the old "street" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldStreet(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreet: %w", err)
	}
	return oldValue.Street, nil
}

// ClearStreet clears the value of the "street" field.
func (m *VenueMutation) ClearStreet() {
	m.street = nil
	m.clearedFields[venue.FieldStreet] = struct{}{}
}

// StreetCleared returns if the "street" field was cleared in this mutation.
func (m *VenueMutation) StreetCleared() bool {
	_, ok := m.clearedFields[venue.FieldStreet]
	return ok
}

// ResetStreet resets all changes to the "street" field.
func (m *VenueMutation) ResetStreet() {
	m.street = nil
	delete(m.clearedFields, venue.FieldStreet)
}

// SetCity sets the "city" field.
func (m *VenueMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *VenueMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *VenueMutation) ClearCity() {
	m.city = nil
	m.clearedFields[venue.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *VenueMutation) CityCleared() bool {
	_, ok := m.clearedFields[venue.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *VenueMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, venue.FieldCity)
}

// SetRegion sets the "region" field.
func (m *VenueMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *VenueMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *VenueMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[venue.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *VenueMutation) RegionCleared() bool {
	_, ok := m.clearedFields[venue.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *VenueMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, venue.FieldRegion)
}

// SetPostalCode sets the "postal_code" field.
func (m *VenueMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *VenueMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldPostalCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *VenueMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[venue.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *VenueMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[venue.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *VenueMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, venue.FieldPostalCode)
}

// SetCountry sets the "country" field.
func (m *VenueMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *VenueMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *VenueMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[venue.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *VenueMutation) CountryCleared() bool {
	_, ok := m.clearedFields[venue.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *VenueMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, venue.FieldCountry)
}

// SetLat sets the "lat" field.
func (m *VenueMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *VenueMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *VenueMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *VenueMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *VenueMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[venue.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *VenueMutation) LatCleared() bool {
	_, ok := m.clearedFields[venue.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *VenueMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, venue.FieldLat)
}

// SetLon sets the "lon" field.
func (m *VenueMutation) SetLon(f float64) {
	m.lon = &f
	m.addlon = nil
}

// Lon returns the value of the "lon" field in the mutation.
func (m *VenueMutation) Lon() (r float64, exists bool) {
	v := m.lon
	if v == nil {
		return
	}
	return *v, true
}

// OldLon returns the old "lon" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldLon(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLon: %w", err)
	}
	return oldValue.Lon, nil
}

// AddLon adds f to the "lon" field.
func (m *VenueMutation) AddLon(f float64) {
	if m.addlon != nil {
		*m.addlon += f
	} else {
		m.addlon = &f
	}
}

// AddedLon returns the value that was added to the "lon" field in this mutation.
func (m *VenueMutation) AddedLon() (r float64, exists bool) {
	v := m.addlon
	if v == nil {
		return
	}
	return *v, true
}

// ClearLon clears the value of the "lon" field.
func (m *VenueMutation) ClearLon() {
	m.lon = nil
	m.addlon = nil
	m.clearedFields[venue.FieldLon] = struct{}{}
}

// LonCleared returns if the "lon" field was cleared in this mutation.
func (m *VenueMutation) LonCleared() bool {
	_, ok := m.clearedFields[venue.FieldLon]
	return ok
}

// ResetLon resets all changes to the "lon" field.
func (m *VenueMutation) ResetLon() {
	m.lon = nil
	m.addlon = nil
	delete(m.clearedFields, venue.FieldLon)
}

// SetIsOnline sets the "is_online" field.
func (m *VenueMutation) SetIsOnline(b bool) {
	m.is_online = &b
}

// IsOnline returns the value of the "is_online" field in the mutation.
func (m *VenueMutation) IsOnline() (r bool, exists bool) {
	v := m.is_online
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOnline returns the old "is_online" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldIsOnline(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOnline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOnline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOnline: %w", err)
	}
	return oldValue.IsOnline, nil
}

// ResetIsOnline resets all changes to the "is_online" field.
func (m *VenueMutation) ResetIsOnline() {
	m.is_online = nil
}

// SetPlatform sets the "platform" field.
func (m *VenueMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *VenueMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *VenueMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformVenueID sets the "platform_venue_id" field.
func (m *VenueMutation) SetPlatformVenueID(s string) {
	m.platform_venue_id = &s
}

// PlatformVenueID returns the value of the "platform_venue_id" field in the mutation.
func (m *VenueMutation) PlatformVenueID() (r string, exists bool) {
	v := m.platform_venue_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformVenueID returns the old "platform_venue_id" field's value of the Venue entity.
// If the Venue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VenueMutation) OldPlatformVenueID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformVenueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformVenueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformVenueID: %w", err)
	}
	return oldValue.PlatformVenueID, nil
}

// ResetPlatformVenueID resets all changes to the "platform_venue_id" field.
func (m *VenueMutation) ResetPlatformVenueID() {
	m.platform_venue_id = nil
}

// Where appends a list predicates to the VenueMutation builder.
func (m *VenueMutation) Where(ps ...predicate.Venue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VenueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VenueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Venue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VenueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VenueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Venue).
func (m *VenueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VenueMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, venue.FieldName)
	}
	if m.street != nil {
		fields = append(fields, venue.FieldStreet)
	}
	if m.city != nil {
		fields = append(fields, venue.FieldCity)
	}
	if m.region != nil {
		fields = append(fields, venue.FieldRegion)
	}
	if m.postal_code != nil {
		fields = append(fields, venue.FieldPostalCode)
	}
	if m.country != nil {
		fields = append(fields, venue.FieldCountry)
	}
	if m.lat != nil {
		fields = append(fields, venue.FieldLat)
	}
	if m.lon != nil {
		fields = append(fields, venue.FieldLon)
	}
	if m.is_online != nil {
		fields = append(fields, venue.FieldIsOnline)
	}
	if m.platform != nil {
		fields = append(fields, venue.FieldPlatform)
	}
	if m.platform_venue_id != nil {
		fields = append(fields, venue.FieldPlatformVenueID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VenueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case venue.FieldName:
		return m.Name()
	case venue.FieldStreet:
		return m.Street()
	case venue.FieldCity:
		return m.City()
	case venue.FieldRegion:
		return m.Region()
	case venue.FieldPostalCode:
		return m.PostalCode()
	case venue.FieldCountry:
		return m.Country()
	case venue.FieldLat:
		return m.Lat()
	case venue.FieldLon:
		return m.Lon()
	case venue.FieldIsOnline:
		return m.IsOnline()
	case venue.FieldPlatform:
		return m.Platform()
	case venue.FieldPlatformVenueID:
		return m.PlatformVenueID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VenueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case venue.FieldName:
		return m.OldName(ctx)
	case venue.FieldStreet:
		return m.OldStreet(ctx)
	case venue.FieldCity:
		return m.OldCity(ctx)
	case venue.FieldRegion:
		return m.OldRegion(ctx)
	case venue.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case venue.FieldCountry:
		return m.OldCountry(ctx)
	case venue.FieldLat:
		return m.OldLat(ctx)
	case venue.FieldLon:
		return m.OldLon(ctx)
	case venue.FieldIsOnline:
		return m.OldIsOnline(ctx)
	case venue.FieldPlatform:
		return m.OldPlatform(ctx)
	case venue.FieldPlatformVenueID:
		return m.OldPlatformVenueID(ctx)
	}
	return nil, fmt.Errorf("unknown Venue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VenueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case venue.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case venue.FieldStreet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreet(v)
		return nil
	case venue.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case venue.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case venue.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case venue.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case venue.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case venue.FieldLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLon(v)
		return nil
	case venue.FieldIsOnline:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOnline(v)
		return nil
	case venue.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case venue.FieldPlatformVenueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformVenueID(v)
		return nil
	}
	return fmt.Errorf("unknown Venue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VenueMutation) AddedFields() []string {
	var fields []string
	if m.addlat != nil {
		fields = append(fields, venue.FieldLat)
	}
	if m.addlon != nil {
		fields = append(fields, venue.FieldLon)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VenueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case venue.FieldLat:
		return m.AddedLat()
	case venue.FieldLon:
		return m.AddedLon()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VenueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case venue.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case venue.FieldLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLon(v)
		return nil
	}
	return fmt.Errorf("unknown Venue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VenueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(venue.FieldStreet) {
		fields = append(fields, venue.FieldStreet)
	}
	if m.FieldCleared(venue.FieldCity) {
		fields = append(fields, venue.FieldCity)
	}
	if m.FieldCleared(venue.FieldRegion) {
		fields = append(fields, venue.FieldRegion)
	}
	if m.FieldCleared(venue.FieldPostalCode) {
		fields = append(fields, venue.FieldPostalCode)
	}
	if m.FieldCleared(venue.FieldCountry) {
		fields = append(fields, venue.FieldCountry)
	}
	if m.FieldCleared(venue.FieldLat) {
		fields = append(fields, venue.FieldLat)
	}
	if m.FieldCleared(venue.FieldLon) {
		fields = append(fields, venue.FieldLon)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VenueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VenueMutation) ClearField(name string) error {
	switch name {
	case venue.FieldStreet:
		m.ClearStreet()
		return nil
	case venue.FieldCity:
		m.ClearCity()
		return nil
	case venue.FieldRegion:
		m.ClearRegion()
		return nil
	case venue.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case venue.FieldCountry:
		m.ClearCountry()
		return nil
	case venue.FieldLat:
		m.ClearLat()
		return nil
	case venue.FieldLon:
		m.ClearLon()
		return nil
	}
	return fmt.Errorf("unknown Venue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VenueMutation) ResetField(name string) error {
	switch name {
	case venue.FieldName:
		m.ResetName()
		return nil
	case venue.FieldStreet:
		m.ResetStreet()
		return nil
	case venue.FieldCity:
		m.ResetCity()
		return nil
	case venue.FieldRegion:
		m.ResetRegion()
		return nil
	case venue.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case venue.FieldCountry:
		m.ResetCountry()
		return nil
	case venue.FieldLat:
		m.ResetLat()
		return nil
	case venue.FieldLon:
		m.ResetLon()
		return nil
	case venue.FieldIsOnline:
		m.ResetIsOnline()
		return nil
	case venue.FieldPlatform:
		m.ResetPlatform()
		return nil
	case venue.FieldPlatformVenueID:
		m.ResetPlatformVenueID()
		return nil
	}
	return fmt.Errorf("unknown Venue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VenueMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VenueMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VenueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VenueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VenueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VenueMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VenueMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Venue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VenueMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Venue edge %s", name)
}

// WebhookMutation represents an operation that mutates the Webhook nodes in the graph.
type WebhookMutation struct {
	config
	op                Op
	typ               string
	id                *string
	url               *string
	secret            *string
	event_types       *[]string
	appendevent_types []string
	active            *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	deliveries        map[string]struct{}
	removeddeliveries map[string]struct{}
	cleareddeliveries bool
	done              bool
	oldValue          func(context.Context) (*Webhook, error)
	predicates        []predicate.Webhook
}

var _ ent.Mutation = (*WebhookMutation)(nil)

// webhookOption allows management of the mutation configuration using functional options.
type webhookOption func(*WebhookMutation)

// newWebhookMutation creates new mutation for the Webhook entity.
func newWebhookMutation(c config, op Op, opts ...webhookOption) *WebhookMutation {
	m := &WebhookMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhook,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookID sets the ID field of the mutation.
func withWebhookID(id string) webhookOption {
	return func(m *WebhookMutation) {
		var (
			err   error
			once  sync.Once
			value *Webhook
		)
		m.oldValue = func(ctx context.Context) (*Webhook, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Webhook.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhook sets the old Webhook of the mutation.
func withWebhook(node *Webhook) webhookOption {
	return func(m *WebhookMutation) {
		m.oldValue = func(context.Context) (*Webhook, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Webhook entities.
func (m *WebhookMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Webhook.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *WebhookMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookMutation) ResetURL() {
	m.url = nil
}

// SetSecret sets the "secret" field.
func (m *WebhookMutation) SetSecret(s string) {
	m.secret = &s
}

// Secret returns the value of the "secret" field in the mutation.
func (m *WebhookMutation) Secret() (r string, exists bool) {
	v := m.secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSecret returns the old "secret" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecret: %w", err)
	}
	return oldValue.Secret, nil
}

// ResetSecret resets all changes to the "secret" field.
func (m *WebhookMutation) ResetSecret() {
	m.secret = nil
}

// SetEventTypes sets the "event_types" field.
func (m *WebhookMutation) SetEventTypes(s []string) {
	m.event_types = &s
	m.appendevent_types = nil
}

// EventTypes returns the value of the "event_types" field in the mutation.
func (m *WebhookMutation) EventTypes() (r []string, exists bool) {
	v := m.event_types
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTypes returns the old "event_types" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldEventTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTypes: %w", err)
	}
	return oldValue.EventTypes, nil
}

// AppendEventTypes adds s to the "event_types" field.
func (m *WebhookMutation) AppendEventTypes(s []string) {
	m.appendevent_types = append(m.appendevent_types, s...)
}

// AppendedEventTypes returns the list of values that were appended to the "event_types" field in this mutation.
func (m *WebhookMutation) AppendedEventTypes() ([]string, bool) {
	if len(m.appendevent_types) == 0 {
		return nil, false
	}
	return m.appendevent_types, true
}

// ResetEventTypes resets all changes to the "event_types" field.
func (m *WebhookMutation) ResetEventTypes() {
	m.event_types = nil
	m.appendevent_types = nil
}

// SetActive sets the "active" field.
func (m *WebhookMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WebhookMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WebhookMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by ids.
func (m *WebhookMutation) AddDeliveryIDs(ids ...string) {
	if m.deliveries == nil {
		m.deliveries = make(map[string]struct{})
	}
	for i := range ids {
		m.deliveries[ids[i]] = struct{}{}
	}
}

// ClearDeliveries clears the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookMutation) ClearDeliveries() {
	m.cleareddeliveries = true
}

// DeliveriesCleared reports if the "deliveries" edge to the WebhookDelivery entity was cleared.
func (m *WebhookMutation) DeliveriesCleared() bool {
	return m.cleareddeliveries
}

// RemoveDeliveryIDs removes the "deliveries" edge to the WebhookDelivery entity by IDs.
func (m *WebhookMutation) RemoveDeliveryIDs(ids ...string) {
	if m.removeddeliveries == nil {
		m.removeddeliveries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deliveries, ids[i])
		m.removeddeliveries[ids[i]] = struct{}{}
	}
}

// RemovedDeliveries returns the removed IDs of the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookMutation) RemovedDeliveriesIDs() (ids []string) {
	for id := range m.removeddeliveries {
		ids = append(ids, id)
	}
	return
}

// DeliveriesIDs returns the "deliveries" edge IDs in the mutation.
func (m *WebhookMutation) DeliveriesIDs() (ids []string) {
	for id := range m.deliveries {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveries resets all changes to the "deliveries" edge.
func (m *WebhookMutation) ResetDeliveries() {
	m.deliveries = nil
	m.cleareddeliveries = false
	m.removeddeliveries = nil
}

// Where appends a list predicates to the WebhookMutation builder.
func (m *WebhookMutation) Where(ps ...predicate.Webhook) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Webhook, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Webhook).
func (m *WebhookMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.url != nil {
		fields = append(fields, webhook.FieldURL)
	}
	if m.secret != nil {
		fields = append(fields, webhook.FieldSecret)
	}
	if m.event_types != nil {
		fields = append(fields, webhook.FieldEventTypes)
	}
	if m.active != nil {
		fields = append(fields, webhook.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, webhook.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhook.FieldURL:
		return m.URL()
	case webhook.FieldSecret:
		return m.Secret()
	case webhook.FieldEventTypes:
		return m.EventTypes()
	case webhook.FieldActive:
		return m.Active()
	case webhook.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhook.FieldURL:
		return m.OldURL(ctx)
	case webhook.FieldSecret:
		return m.OldSecret(ctx)
	case webhook.FieldEventTypes:
		return m.OldEventTypes(ctx)
	case webhook.FieldActive:
		return m.OldActive(ctx)
	case webhook.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Webhook field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhook.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhook.FieldSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecret(v)
		return nil
	case webhook.FieldEventTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTypes(v)
		return nil
	case webhook.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case webhook.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Webhook field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Webhook numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Webhook nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookMutation) ResetField(name string) error {
	switch name {
	case webhook.FieldURL:
		m.ResetURL()
		return nil
	case webhook.FieldSecret:
		m.ResetSecret()
		return nil
	case webhook.FieldEventTypes:
		m.ResetEventTypes()
		return nil
	case webhook.FieldActive:
		m.ResetActive()
		return nil
	case webhook.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Webhook field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliveries != nil {
		edges = append(edges, webhook.EdgeDeliveries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhook.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.deliveries))
		for id := range m.deliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeliveries != nil {
		edges = append(edges, webhook.EdgeDeliveries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case webhook.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.removeddeliveries))
		for id := range m.removeddeliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliveries {
		edges = append(edges, webhook.EdgeDeliveries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookMutation) EdgeCleared(name string) bool {
	switch name {
	case webhook.EdgeDeliveries:
		return m.cleareddeliveries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Webhook unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookMutation) ResetEdge(name string) error {
	switch name {
	case webhook.EdgeDeliveries:
		m.ResetDeliveries()
		return nil
	}
	return fmt.Errorf("unknown Webhook edge %s", name)
}

// WebhookDeliveryMutation represents an operation that mutates the WebhookDelivery nodes in the graph.
type WebhookDeliveryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	event_type     *string
	payload        *map[string]interface{}
	status_code    *int
	addstatus_code *int
	response_body  *string
	attempt        *int
	addattempt     *int
	error_message  *string
	delivered_at   *time.Time
	clearedFields  map[string]struct{}
	webhook        *string
	clearedwebhook bool
	done           bool
	oldValue       func(context.Context) (*WebhookDelivery, error)
	predicates     []predicate.WebhookDelivery
}

var _ ent.Mutation = (*WebhookDeliveryMutation)(nil)

// webhookdeliveryOption allows management of the mutation configuration using functional options.
type webhookdeliveryOption func(*WebhookDeliveryMutation)

// newWebhookDeliveryMutation creates new mutation for the WebhookDelivery entity.
func newWebhookDeliveryMutation(c config, op Op, opts ...webhookdeliveryOption) *WebhookDeliveryMutation {
	m := &WebhookDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryID sets the ID field of the mutation.
func withWebhookDeliveryID(id string) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDelivery
		)
		m.oldValue = func(ctx context.Context) (*WebhookDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDelivery sets the old WebhookDelivery of the mutation.
func withWebhookDelivery(node *WebhookDelivery) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		m.oldValue = func(context.Context) (*WebhookDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDelivery entities.
func (m *WebhookDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWebhookID sets the "webhook_id" field.
func (m *WebhookDeliveryMutation) SetWebhookID(s string) {
	m.webhook = &s
}

// WebhookID returns the value of the "webhook_id" field in the mutation.
func (m *WebhookDeliveryMutation) WebhookID() (r string, exists bool) {
	v := m.webhook
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookID returns the old "webhook_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldWebhookID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookID: %w", err)
	}
	return oldValue.WebhookID, nil
}

// ResetWebhookID resets all changes to the "webhook_id" field.
func (m *WebhookDeliveryMutation) ResetWebhookID() {
	m.webhook = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookDeliveryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookDeliveryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookDeliveryMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookDeliveryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookDeliveryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookDeliveryMutation) ResetPayload() {
	m.payload = nil
}

// SetStatusCode sets the "status_code" field.
func (m *WebhookDeliveryMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *WebhookDeliveryMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *WebhookDeliveryMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *WebhookDeliveryMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *WebhookDeliveryMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetResponseBody sets the "response_body" field.
func (m *WebhookDeliveryMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *WebhookDeliveryMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldResponseBody(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ClearResponseBody clears the value of the "response_body" field.
func (m *WebhookDeliveryMutation) ClearResponseBody() {
	m.response_body = nil
	m.clearedFields[webhookdelivery.FieldResponseBody] = struct{}{}
}

// ResponseBodyCleared returns if the "response_body" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) ResponseBodyCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldResponseBody]
	return ok
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *WebhookDeliveryMutation) ResetResponseBody() {
	m.response_body = nil
	delete(m.clearedFields, webhookdelivery.FieldResponseBody)
}

// SetAttempt sets the "attempt" field.
func (m *WebhookDeliveryMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *WebhookDeliveryMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *WebhookDeliveryMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *WebhookDeliveryMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *WebhookDeliveryMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WebhookDeliveryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WebhookDeliveryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WebhookDeliveryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[webhookdelivery.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WebhookDeliveryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, webhookdelivery.FieldErrorMessage)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *WebhookDeliveryMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *WebhookDeliveryMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldDeliveredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *WebhookDeliveryMutation) ResetDeliveredAt() {
	m.delivered_at = nil
}

// ClearWebhook clears the "webhook" edge to the Webhook entity.
func (m *WebhookDeliveryMutation) ClearWebhook() {
	m.clearedwebhook = true
	m.clearedFields[webhookdelivery.FieldWebhookID] = struct{}{}
}

// WebhookCleared reports if the "webhook" edge to the Webhook entity was cleared.
func (m *WebhookDeliveryMutation) WebhookCleared() bool {
	return m.clearedwebhook
}

// WebhookIDs returns the "webhook" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WebhookID instead. It exists only for internal usage by the builders.
func (m *WebhookDeliveryMutation) WebhookIDs() (ids []string) {
	if id := m.webhook; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWebhook resets all changes to the "webhook" edge.
func (m *WebhookDeliveryMutation) ResetWebhook() {
	m.webhook = nil
	m.clearedwebhook = false
}

// Where appends a list predicates to the WebhookDeliveryMutation builder.
func (m *WebhookDeliveryMutation) Where(ps ...predicate.WebhookDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDelivery).
func (m *WebhookDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.webhook != nil {
		fields = append(fields, webhookdelivery.FieldWebhookID)
	}
	if m.event_type != nil {
		fields = append(fields, webhookdelivery.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, webhookdelivery.FieldPayload)
	}
	if m.status_code != nil {
		fields = append(fields, webhookdelivery.FieldStatusCode)
	}
	if m.response_body != nil {
		fields = append(fields, webhookdelivery.FieldResponseBody)
	}
	if m.attempt != nil {
		fields = append(fields, webhookdelivery.FieldAttempt)
	}
	if m.error_message != nil {
		fields = append(fields, webhookdelivery.FieldErrorMessage)
	}
	if m.delivered_at != nil {
		fields = append(fields, webhookdelivery.FieldDeliveredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldWebhookID:
		return m.WebhookID()
	case webhookdelivery.FieldEventType:
		return m.EventType()
	case webhookdelivery.FieldPayload:
		return m.Payload()
	case webhookdelivery.FieldStatusCode:
		return m.StatusCode()
	case webhookdelivery.FieldResponseBody:
		return m.ResponseBody()
	case webhookdelivery.FieldAttempt:
		return m.Attempt()
	case webhookdelivery.FieldErrorMessage:
		return m.ErrorMessage()
	case webhookdelivery.FieldDeliveredAt:
		return m.DeliveredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdelivery.FieldWebhookID:
		return m.OldWebhookID(ctx)
	case webhookdelivery.FieldEventType:
		return m.OldEventType(ctx)
	case webhookdelivery.FieldPayload:
		return m.OldPayload(ctx)
	case webhookdelivery.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case webhookdelivery.FieldResponseBody:
		return m.OldResponseBody(ctx)
	case webhookdelivery.FieldAttempt:
		return m.OldAttempt(ctx)
	case webhookdelivery.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case webhookdelivery.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldWebhookID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookID(v)
		return nil
	case webhookdelivery.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookdelivery.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookdelivery.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case webhookdelivery.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	case webhookdelivery.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case webhookdelivery.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case webhookdelivery.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryMutation) AddedFields() []string {
	var fields []string
	if m.addstatus_code != nil {
		fields = append(fields, webhookdelivery.FieldStatusCode)
	}
	if m.addattempt != nil {
		fields = append(fields, webhookdelivery.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldStatusCode:
		return m.AddedStatusCode()
	case webhookdelivery.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case webhookdelivery.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdelivery.FieldResponseBody) {
		fields = append(fields, webhookdelivery.FieldResponseBody)
	}
	if m.FieldCleared(webhookdelivery.FieldErrorMessage) {
		fields = append(fields, webhookdelivery.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearField(name string) error {
	switch name {
	case webhookdelivery.FieldResponseBody:
		m.ClearResponseBody()
		return nil
	case webhookdelivery.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetField(name string) error {
	switch name {
	case webhookdelivery.FieldWebhookID:
		m.ResetWebhookID()
		return nil
	case webhookdelivery.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookdelivery.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookdelivery.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case webhookdelivery.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	case webhookdelivery.FieldAttempt:
		m.ResetAttempt()
		return nil
	case webhookdelivery.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case webhookdelivery.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.webhook != nil {
		edges = append(edges, webhookdelivery.EdgeWebhook)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookdelivery.EdgeWebhook:
		if id := m.webhook; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwebhook {
		edges = append(edges, webhookdelivery.EdgeWebhook)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookdelivery.EdgeWebhook:
		return m.clearedwebhook
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeWebhook:
		m.ClearWebhook()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeWebhook:
		m.ResetWebhook()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery edge %s", name)
}
