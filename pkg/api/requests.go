package api

// ClaimRequest is the body of POST /api/v1/claim.
type ClaimRequest struct {
	Code string `json:"code"`
}

// CheckinRequest is the body of POST /api/v1/events/:id/checkin.
type CheckinRequest struct {
	Code string `json:"code"`
}

// CreateWebhookRequest is the body of POST /api/v1/webhooks.
type CreateWebhookRequest struct {
	URL        string   `json:"url"`
	Secret     string   `json:"secret"`
	EventTypes []string `json:"event_types"`
}
