package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
	"github.com/gatherhub/gatherhub/pkg/version"
)

const (
	lumaBaseURL       = "https://api.lu.ma/public/v1"
	lumaDefaultEvents = 50
	lumaPageSize      = 50
)

// LumaAdapter extracts events from the Luma calendar API using API-key auth.
type LumaAdapter struct {
	httpClient *http.Client
	logger     *slog.Logger

	// Overridable for tests.
	baseURL string

	mu     sync.Mutex
	apiKey string
}

// NewLumaAdapter creates the Luma adapter with a 30s outbound timeout.
func NewLumaAdapter() *LumaAdapter {
	return &LumaAdapter{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.With("adapter", config.PlatformLuma),
		baseURL:    lumaBaseURL,
	}
}

func (l *LumaAdapter) Platform() string { return config.PlatformLuma }
func (l *LumaAdapter) Name() string     { return "Luma" }

func (l *LumaAdapter) IsConfigured(env *config.Env) bool {
	return env.LumaAPIKey != ""
}

// Initialize stores the API key. No handshake; the key is validated on the
// first fetch.
func (l *LumaAdapter) Initialize(_ context.Context, env *config.Env) error {
	if !l.IsConfigured(env) {
		return ErrNotConfigured
	}
	l.mu.Lock()
	l.apiKey = env.LumaAPIKey
	l.mu.Unlock()
	return nil
}

type lumaEventEntry struct {
	Event struct {
		APIID       string `json:"api_id"`
		Name        string `json:"name"`
		Description string `json:"description_md"`
		URL         string `json:"url"`
		CoverURL    string `json:"cover_url"`
		StartAt     string `json:"start_at"`
		EndAt       string `json:"end_at"`
		Timezone    string `json:"timezone"`
		GeoAddress  *struct {
			PlaceID   string `json:"place_id"`
			Address   string `json:"address"`
			City      string `json:"city"`
			Region    string `json:"region"`
			Country   string `json:"country"`
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"geo_address_json"`
		MeetingURL string `json:"meeting_url"`
	} `json:"event"`
	GuestCount int `json:"guest_count"`
}

type lumaEventsPage struct {
	Entries    []lumaEventEntry `json:"entries"`
	HasMore    bool             `json:"has_more"`
	NextCursor string           `json:"next_cursor"`
}

// FetchEvents lists upcoming calendar events, paginating by cursor.
func (l *LumaAdapter) FetchEvents(ctx context.Context, calendarID string, opts models.FetchOptions) (*models.FetchResult, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("missing calendar id")
	}
	maxEvents := opts.MaxEvents
	if maxEvents <= 0 {
		maxEvents = lumaDefaultEvents
	}

	result := &models.FetchResult{}
	cursor := ""
	for len(result.Events) < maxEvents {
		params := url.Values{
			"calendar_api_id":  {calendarID},
			"period":           {"future"},
			"pagination_limit": {strconv.Itoa(lumaPageSize)},
		}
		if cursor != "" {
			params.Set("pagination_cursor", cursor)
		}

		var page lumaEventsPage
		if err := l.get(ctx, "/calendar/list-events", params, &page); err != nil {
			return nil, err
		}
		for _, entry := range page.Entries {
			if len(result.Events) >= maxEvents {
				break
			}
			ev, err := mapLumaEvent(entry)
			if err != nil {
				return nil, fmt.Errorf("failed to map event %s: %w", entry.Event.APIID, err)
			}
			result.Events = append(result.Events, *ev)
		}
		if !page.HasMore || page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	return result, nil
}

// FetchGroup returns the calendar profile. Luma's calendar endpoint exposes
// only a thin profile; missing fields stay empty and the sync service keeps
// the stored values.
func (l *LumaAdapter) FetchGroup(ctx context.Context, calendarID string) (*models.GroupMetadata, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("missing calendar id")
	}
	var body struct {
		Calendar struct {
			APIID       string `json:"api_id"`
			Name        string `json:"name"`
			Description string `json:"description_short"`
			CoverURL    string `json:"cover_url"`
			URL         string `json:"url"`
		} `json:"calendar"`
	}
	params := url.Values{"api_id": {calendarID}}
	if err := l.get(ctx, "/calendar/get", params, &body); err != nil {
		return nil, err
	}
	return &models.GroupMetadata{
		PlatformID:  body.Calendar.APIID,
		Name:        body.Calendar.Name,
		Description: body.Calendar.Description,
		PhotoURL:    body.Calendar.CoverURL,
		URL:         body.Calendar.URL,
	}, nil
}

func mapLumaEvent(entry lumaEventEntry) (*models.Event, error) {
	n := entry.Event
	start, err := time.Parse(time.RFC3339, n.StartAt)
	if err != nil {
		return nil, fmt.Errorf("invalid start_at %q: %w", n.StartAt, err)
	}

	ev := &models.Event{
		PlatformID:  n.APIID,
		Title:       n.Name,
		Description: n.Description,
		EventURL:    n.URL,
		PhotoURL:    n.CoverURL,
		StartTime:   start.UTC(),
		Timezone:    n.Timezone,
		Status:      models.EventStatusActive,
		EventType:   models.EventTypePhysical,
		RSVPCount:   entry.GuestCount,
	}
	if ev.Timezone == "" {
		ev.Timezone = "UTC"
	}
	if n.EndAt != "" {
		end, err := time.Parse(time.RFC3339, n.EndAt)
		if err != nil {
			return nil, fmt.Errorf("invalid end_at %q: %w", n.EndAt, err)
		}
		endUTC := end.UTC()
		ev.EndTime = &endUTC
		ev.Duration = formatISODuration(endUTC.Sub(ev.StartTime))
	}

	if n.GeoAddress == nil {
		ev.EventType = models.EventTypeOnline
		ev.Venue = &models.Venue{
			PlatformVenueID: "online",
			Name:            "Online event",
			IsOnline:        true,
		}
		return ev, nil
	}
	if n.MeetingURL != "" {
		ev.EventType = models.EventTypeHybrid
	}

	g := n.GeoAddress
	venue := &models.Venue{
		PlatformVenueID: g.PlaceID,
		Name:            g.Address,
		Street:          g.Address,
		City:            g.City,
		Region:          g.Region,
		Country:         g.Country,
	}
	if venue.PlatformVenueID == "" {
		venue.PlatformVenueID = g.Address
	}
	if lat, err := strconv.ParseFloat(g.Latitude, 64); err == nil {
		if lon, err := strconv.ParseFloat(g.Longitude, 64); err == nil {
			venue.Lat = &lat
			venue.Lon = &lon
		}
	}
	ev.Venue = venue
	return ev, nil
}

func (l *LumaAdapter) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	l.mu.Lock()
	apiKey := l.apiKey
	l.mu.Unlock()
	if apiKey == "" {
		return ErrNotConfigured
	}

	u := l.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-luma-api-key", apiKey)
	req.Header.Set("User-Agent", version.Full())

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: time.Minute}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s returned %d", ErrAuthentication, path, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
