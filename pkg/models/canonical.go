// Package models holds the canonical, platform-neutral shapes that provider
// adapters normalize into and the sync service consumes.
package models

import "time"

// Event status values in canonical form.
const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
	EventStatusDraft     = "draft"
)

// Event type values in canonical form.
const (
	EventTypePhysical = "physical"
	EventTypeOnline   = "online"
	EventTypeHybrid   = "hybrid"
)

// Venue is the canonical location shape. Platform adapters fill
// PlatformVenueID with the upstream venue identifier; online events use a
// shared synthetic venue instead.
type Venue struct {
	PlatformVenueID string
	Name            string
	Street          string
	City            string
	Region          string
	PostalCode      string
	Country         string
	Lat             *float64
	Lon             *float64
	IsOnline        bool
}

// Event is the canonical event shape produced by provider adapters.
// Description is markdown regardless of the upstream format.
type Event struct {
	PlatformID   string
	Title        string
	Description  string
	EventURL     string
	PhotoURL     string
	StartTime    time.Time
	EndTime      *time.Time
	Timezone     string
	Duration     string
	Status       string
	EventType    string
	RSVPCount    int
	MaxAttendees *int
	Venue        *Venue
}

// GroupMetadata is the upstream group profile refreshed on every sync.
type GroupMetadata struct {
	PlatformID  string
	Name        string
	Description string
	MemberCount int
	PhotoURL    string
	Slug        string
	URL         string
}

// FetchOptions bounds a provider fetch.
type FetchOptions struct {
	// MaxEvents caps how many upcoming events the adapter returns.
	// Zero means the adapter default.
	MaxEvents int
}

// FetchResult is what one adapter fetch returns: the upstream group profile
// plus its upcoming events, already normalized.
type FetchResult struct {
	Group  *GroupMetadata
	Events []Event
}
