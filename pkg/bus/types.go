// Package bus is the durable domain-event bus. Producers enqueue envelopes
// into the queued_events table; the Dispatcher claims batches and routes
// them to registered handlers. Delivery is at-least-once, so handlers must
// be idempotent.
package bus

import "time"

// Domain event types emitted by the core. Reverse-DNS form; consumers must
// tolerate types not listed here (new types are added via admin tooling
// without code changes).
const (
	TypeEventsSynced        = "events.synced"
	TypeSyncCompleted       = "sync.completed"
	TypeEventRSVP           = "event.rsvp"
	TypeEventRSVPCancelled  = "event.rsvp_cancelled"
	TypeEventCheckin        = "event.checkin"
	TypeFavoriteAdded       = "user.favorite_added"
	TypeFavoriteRemoved     = "user.favorite_removed"
	TypeBadgeClaimed        = "user.badge_claimed"
	TypeScoreChanged        = "user.score_changed"
	TypeProfileUpdated      = "user.profile_updated"
	TypeBadgeIssued         = "badge.issued"
	TypeAchievementUnlocked = "achievement.unlocked"
	TypeOnboardingStep      = "onboarding.step_completed"
	TypeOnboardingCompleted = "onboarding.completed"
)

// Metadata identifies the origin of an envelope. UserID is set when the
// event is attributable to one user; handlers that track per-user progress
// read it.
type Metadata struct {
	UserID string `json:"user_id,omitempty"`
	Source string `json:"source,omitempty"`
}

// Envelope is one domain event. Payload carries no fixed schema; handlers
// read fields defensively.
type Envelope struct {
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  Metadata               `json:"metadata"`
	Timestamp time.Time              `json:"timestamp"`
}

// New builds an envelope stamped now.
func New(eventType string, payload map[string]interface{}, meta Metadata) Envelope {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return Envelope{
		Type:      eventType,
		Payload:   payload,
		Metadata:  meta,
		Timestamp: time.Now().UTC(),
	}
}

// UserID extracts the user this envelope is attributable to: metadata
// first, then a user_id payload field. Empty when neither is present.
func (e Envelope) UserID() string {
	if e.Metadata.UserID != "" {
		return e.Metadata.UserID
	}
	if v, ok := e.Payload["user_id"].(string); ok {
		return v
	}
	return ""
}
