package api

import "time"

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// RSVPResponse is the body of the RSVP endpoints.
type RSVPResponse struct {
	EventID          string `json:"event_id"`
	UserID           string `json:"user_id"`
	Status           string `json:"status"`
	WaitlistPosition *int   `json:"waitlist_position,omitempty"`
}

// ClaimResponse is the body of POST /api/v1/claim.
type ClaimResponse struct {
	BadgeID   string `json:"badge_id"`
	BadgeSlug string `json:"badge_slug"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
}

// CheckinResponse is the body of POST /api/v1/events/:id/checkin.
type CheckinResponse struct {
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

// WebhookResponse hides the secret; the stored row never leaves the API.
type WebhookResponse struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	EventTypes []string  `json:"event_types"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteResponse is one favorited group.
type FavoriteResponse struct {
	GroupSlug string `json:"group_slug"`
	GroupName string `json:"group_name"`
}
