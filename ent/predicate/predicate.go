// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// AchievementProgress is the predicate function for achievementprogress builders.
type AchievementProgress func(*sql.Selector)

// Badge is the predicate function for badge builders.
type Badge func(*sql.Selector)

// BadgeClaimLink is the predicate function for badgeclaimlink builders.
type BadgeClaimLink func(*sql.Selector)

// Checkin is the predicate function for checkin builders.
type Checkin func(*sql.Selector)

// CheckinCode is the predicate function for checkincode builders.
type CheckinCode func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Favorite is the predicate function for favorite builders.
type Favorite func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// OnboardingStep is the predicate function for onboardingstep builders.
type OnboardingStep func(*sql.Selector)

// PlatformConnection is the predicate function for platformconnection builders.
type PlatformConnection func(*sql.Selector)

// QueuedEvent is the predicate function for queuedevent builders.
type QueuedEvent func(*sql.Selector)

// RSVP is the predicate function for rsvp builders.
type RSVP func(*sql.Selector)

// SyncLog is the predicate function for synclog builders.
type SyncLog func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserBadge is the predicate function for userbadge builders.
type UserBadge func(*sql.Selector)

// UserEntitlement is the predicate function for userentitlement builders.
type UserEntitlement func(*sql.Selector)

// UserOnboardingStep is the predicate function for useronboardingstep builders.
type UserOnboardingStep func(*sql.Selector)

// Venue is the predicate function for venue builders.
type Venue func(*sql.Selector)

// Webhook is the predicate function for webhook builders.
type Webhook func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)
