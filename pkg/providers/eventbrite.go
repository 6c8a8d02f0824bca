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

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
	"github.com/gatherhub/gatherhub/pkg/version"
)

const (
	eventbriteBaseURL       = "https://www.eventbriteapi.com/v3"
	eventbriteDefaultEvents = 50
	eventbritePageSize      = 50
)

// EventbriteAdapter extracts events from the Eventbrite REST API using a
// long-lived private token. Init validity is verified with a /users/me probe.
type EventbriteAdapter struct {
	httpClient *http.Client
	logger     *slog.Logger
	converter  *md.Converter

	// Overridable for tests.
	baseURL string

	mu     sync.Mutex
	token  string
	probed bool
}

// NewEventbriteAdapter creates the Eventbrite adapter with a 30s outbound
// timeout.
func NewEventbriteAdapter() *EventbriteAdapter {
	return &EventbriteAdapter{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.With("adapter", config.PlatformEventbrite),
		converter:  md.NewConverter("", true, nil),
		baseURL:    eventbriteBaseURL,
	}
}

func (e *EventbriteAdapter) Platform() string { return config.PlatformEventbrite }
func (e *EventbriteAdapter) Name() string     { return "Eventbrite" }

func (e *EventbriteAdapter) IsConfigured(env *config.Env) bool {
	return env.EventbritePrivateToken != ""
}

// Initialize verifies the private token with a /users/me probe. Idempotent;
// the probe runs once per adapter lifetime.
func (e *EventbriteAdapter) Initialize(ctx context.Context, env *config.Env) error {
	if !e.IsConfigured(env) {
		return ErrNotConfigured
	}
	e.mu.Lock()
	e.token = env.EventbritePrivateToken
	probed := e.probed
	e.mu.Unlock()
	if probed {
		return nil
	}

	var me struct {
		ID string `json:"id"`
	}
	if err := e.get(ctx, "/users/me/", nil, &me); err != nil {
		return fmt.Errorf("token probe failed: %w", err)
	}
	e.mu.Lock()
	e.probed = true
	e.mu.Unlock()
	e.logger.Debug("token probe succeeded", "account", me.ID)
	return nil
}

type eventbriteEvent struct {
	ID   string `json:"id"`
	Name struct {
		Text string `json:"text"`
	} `json:"name"`
	URL   string `json:"url"`
	Start struct {
		Timezone string `json:"timezone"`
		UTC      string `json:"utc"`
	} `json:"start"`
	End struct {
		UTC string `json:"utc"`
	} `json:"end"`
	Status      string `json:"status"`
	OnlineEvent bool   `json:"online_event"`
	Capacity    int    `json:"capacity"`
	Logo        *struct {
		Original struct {
			URL string `json:"url"`
		} `json:"original"`
	} `json:"logo"`
	Venue *struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address struct {
			Address1   string `json:"address_1"`
			City       string `json:"city"`
			Region     string `json:"region"`
			PostalCode string `json:"postal_code"`
			Country    string `json:"country"`
			Latitude   string `json:"latitude"`
			Longitude  string `json:"longitude"`
		} `json:"address"`
	} `json:"venue"`
}

type eventbriteEventsPage struct {
	Events     []eventbriteEvent `json:"events"`
	Pagination struct {
		HasMoreItems bool   `json:"has_more_items"`
		Continuation string `json:"continuation"`
	} `json:"pagination"`
}

// FetchEvents lists the organizer's live and started events, following the
// continuation token until maxEvents are collected. Each event's full
// description is fetched separately and converted from HTML to markdown.
func (e *EventbriteAdapter) FetchEvents(ctx context.Context, organizerID string, opts models.FetchOptions) (*models.FetchResult, error) {
	if organizerID == "" {
		return nil, fmt.Errorf("missing organizer id")
	}
	maxEvents := opts.MaxEvents
	if maxEvents <= 0 {
		maxEvents = eventbriteDefaultEvents
	}

	group, err := e.FetchGroup(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	result := &models.FetchResult{Group: group}

	continuation := ""
	for len(result.Events) < maxEvents {
		params := url.Values{
			"status":    {"live,started"},
			"order_by":  {"start_asc"},
			"expand":    {"venue,logo"},
			"page_size": {strconv.Itoa(eventbritePageSize)},
		}
		if continuation != "" {
			params.Set("continuation", continuation)
		}

		var page eventbriteEventsPage
		path := fmt.Sprintf("/organizers/%s/events/", url.PathEscape(organizerID))
		if err := e.get(ctx, path, params, &page); err != nil {
			return nil, err
		}

		for _, raw := range page.Events {
			if len(result.Events) >= maxEvents {
				break
			}
			ev, err := e.mapEvent(ctx, raw)
			if err != nil {
				return nil, fmt.Errorf("failed to map event %s: %w", raw.ID, err)
			}
			result.Events = append(result.Events, *ev)
		}
		if !page.Pagination.HasMoreItems || page.Pagination.Continuation == "" {
			break
		}
		continuation = page.Pagination.Continuation
	}
	return result, nil
}

// FetchGroup returns the organizer profile.
func (e *EventbriteAdapter) FetchGroup(ctx context.Context, organizerID string) (*models.GroupMetadata, error) {
	if organizerID == "" {
		return nil, fmt.Errorf("missing organizer id")
	}
	var org struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description struct {
			Text string `json:"text"`
		} `json:"description"`
		URL          string `json:"url"`
		NumFollowers int    `json:"num_followers"`
		LogoURL      string `json:"logo_url"`
	}
	path := fmt.Sprintf("/organizers/%s/", url.PathEscape(organizerID))
	if err := e.get(ctx, path, nil, &org); err != nil {
		return nil, err
	}
	return &models.GroupMetadata{
		PlatformID:  org.ID,
		Name:        org.Name,
		Description: org.Description.Text,
		MemberCount: org.NumFollowers,
		PhotoURL:    org.LogoURL,
		URL:         org.URL,
	}, nil
}

func (e *EventbriteAdapter) mapEvent(ctx context.Context, raw eventbriteEvent) (*models.Event, error) {
	start, err := time.Parse(time.RFC3339, raw.Start.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", raw.Start.UTC, err)
	}

	ev := &models.Event{
		PlatformID: raw.ID,
		Title:      raw.Name.Text,
		EventURL:   raw.URL,
		StartTime:  start.UTC(),
		Timezone:   raw.Start.Timezone,
		Status:     mapEventbriteStatus(raw.Status),
		EventType:  models.EventTypePhysical,
	}
	if ev.Timezone == "" {
		ev.Timezone = "UTC"
	}
	if raw.End.UTC != "" {
		end, err := time.Parse(time.RFC3339, raw.End.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid end time %q: %w", raw.End.UTC, err)
		}
		endUTC := end.UTC()
		ev.EndTime = &endUTC
		ev.Duration = formatISODuration(endUTC.Sub(ev.StartTime))
	}
	if raw.Capacity > 0 {
		capacity := raw.Capacity
		ev.MaxAttendees = &capacity
	}
	if raw.Logo != nil {
		ev.PhotoURL = raw.Logo.Original.URL
	}

	description, err := e.fetchDescription(ctx, raw.ID)
	if err != nil {
		return nil, err
	}
	ev.Description = description

	if raw.OnlineEvent || raw.Venue == nil {
		ev.EventType = models.EventTypeOnline
		ev.Venue = &models.Venue{
			PlatformVenueID: "online",
			Name:            "Online event",
			IsOnline:        true,
		}
		return ev, nil
	}

	v := raw.Venue
	venue := &models.Venue{
		PlatformVenueID: v.ID,
		Name:            v.Name,
		Street:          v.Address.Address1,
		City:            v.Address.City,
		Region:          v.Address.Region,
		PostalCode:      v.Address.PostalCode,
		Country:         v.Address.Country,
	}
	if lat, err := strconv.ParseFloat(v.Address.Latitude, 64); err == nil {
		if lon, err := strconv.ParseFloat(v.Address.Longitude, 64); err == nil {
			venue.Lat = &lat
			venue.Lon = &lon
		}
	}
	ev.Venue = venue
	return ev, nil
}

// fetchDescription pulls the full HTML description and converts it to
// markdown so canonical events never carry raw HTML.
func (e *EventbriteAdapter) fetchDescription(ctx context.Context, eventID string) (string, error) {
	var body struct {
		Description string `json:"description"`
	}
	path := fmt.Sprintf("/events/%s/description/", url.PathEscape(eventID))
	if err := e.get(ctx, path, nil, &body); err != nil {
		return "", err
	}
	if body.Description == "" {
		return "", nil
	}
	markdown, err := e.converter.ConvertString(body.Description)
	if err != nil {
		return "", fmt.Errorf("failed to convert description: %w", err)
	}
	return markdown, nil
}

func (e *EventbriteAdapter) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	e.mu.Lock()
	token := e.token
	e.mu.Unlock()
	if token == "" {
		return ErrNotConfigured
	}

	u := e.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", version.Full())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: time.Minute}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s returned %d", ErrAuthentication, path, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s not found", path)
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

func mapEventbriteStatus(s string) string {
	switch s {
	case "live", "started", "ended", "completed":
		return models.EventStatusActive
	case "canceled", "cancelled":
		return models.EventStatusCancelled
	case "draft":
		return models.EventStatusDraft
	default:
		return models.EventStatusActive
	}
}
