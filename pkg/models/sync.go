package models

// SyncResult summarizes one group sync attempt.
type SyncResult struct {
	Success       bool   `json:"success"`
	GroupID       string `json:"group_id"`
	GroupUrlname  string `json:"group_urlname"`
	EventsCreated int    `json:"events_created"`
	EventsUpdated int    `json:"events_updated"`
	EventsDeleted int    `json:"events_deleted"`
	Error         string `json:"error,omitempty"`
	DurationMs    int64  `json:"duration_ms"`
}

// SyncAllResult aggregates a sync pass across every selected group.
type SyncAllResult struct {
	Success    bool         `json:"success"`
	Total      int          `json:"total"`
	Succeeded  int          `json:"succeeded"`
	Failed     int          `json:"failed"`
	Results    []SyncResult `json:"results"`
	DurationMs int64        `json:"duration_ms"`
}
