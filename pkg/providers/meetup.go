package providers

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
	"github.com/gatherhub/gatherhub/pkg/version"
)

const (
	meetupAuthURL = "https://secure.meetup.com/oauth2/access"
	meetupGQLURL  = "https://api.meetup.com/gql"

	// Token assertions are short-lived; the access token itself usually
	// lives for an hour but we refresh a minute early.
	meetupAssertionTTL  = 2 * time.Minute
	meetupTokenSlack    = time.Minute
	meetupDefaultEvents = 50
	meetupPageSize      = 20
)

const meetupEventsQuery = `
query ($urlname: String!, $first: Int!, $after: String) {
  groupByUrlname(urlname: $urlname) {
    id
    name
    description
    link
    urlname
    memberships { count }
    groupPhoto { id baseUrl }
    events(status: ACTIVE, first: $first, after: $after) {
      pageInfo { hasNextPage endCursor }
      edges {
        node {
          id
          title
          description
          eventUrl
          status
          eventType
          dateTime
          duration
          timezone
          going { totalCount }
          maxTickets
          featuredEventPhoto { id baseUrl }
          venues { id name address city state postalCode country lat lon }
        }
      }
    }
  }
}`

// MeetupAdapter extracts events from the Meetup GraphQL API. It signs a
// short-lived RSA JWT to obtain an access token and caches the token for
// the adapter lifetime.
type MeetupAdapter struct {
	httpClient *http.Client
	logger     *slog.Logger

	// Overridable endpoints for tests.
	authURL string
	gqlURL  string

	mu          sync.Mutex
	signingKey  *rsa.PrivateKey
	clientKey   string
	memberID    string
	accessToken string
	tokenExpiry time.Time
}

// NewMeetupAdapter creates the Meetup adapter with a 30s outbound timeout.
func NewMeetupAdapter() *MeetupAdapter {
	return &MeetupAdapter{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.With("adapter", config.PlatformMeetup),
		authURL:    meetupAuthURL,
		gqlURL:     meetupGQLURL,
	}
}

func (m *MeetupAdapter) Platform() string { return config.PlatformMeetup }
func (m *MeetupAdapter) Name() string     { return "Meetup" }

func (m *MeetupAdapter) IsConfigured(env *config.Env) bool {
	return env.MeetupClientKey != "" && env.MeetupSigningKey != "" && env.MeetupMemberID != ""
}

// Initialize parses the PEM signing key. Idempotent; the token handshake
// itself is deferred until the first fetch.
func (m *MeetupAdapter) Initialize(_ context.Context, env *config.Env) error {
	if !m.IsConfigured(env) {
		return ErrNotConfigured
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(env.MeetupSigningKey))
	if err != nil {
		return fmt.Errorf("failed to parse signing key: %w", err)
	}
	m.mu.Lock()
	m.signingKey = key
	m.clientKey = env.MeetupClientKey
	m.memberID = env.MeetupMemberID
	m.mu.Unlock()
	return nil
}

// token returns a cached access token, exchanging a signed JWT assertion
// when the cache is empty or near expiry.
func (m *MeetupAdapter) token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.signingKey == nil {
		return "", ErrNotConfigured
	}
	if m.accessToken != "" && time.Now().Before(m.tokenExpiry.Add(-meetupTokenSlack)) {
		return m.accessToken, nil
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.clientKey,
		Subject:   m.memberID,
		Audience:  jwt.ClaimStrings{"api.meetup.com"},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(meetupAssertionTTL)),
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token assertion: %w", err)
	}

	form := url.Values{
		"grant_type": {"urn:ietf:params:oauth:grant-type:jwt-bearer"},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: token exchange returned %d", ErrAuthentication, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange returned %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuthentication)
	}

	m.accessToken = body.AccessToken
	m.tokenExpiry = now.Add(time.Duration(body.ExpiresIn) * time.Second)
	m.logger.Debug("refreshed access token", "expires_in", body.ExpiresIn)
	return m.accessToken, nil
}

type meetupGQLResponse struct {
	Data struct {
		GroupByUrlname *meetupGroup `json:"groupByUrlname"`
	} `json:"data"`
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			Code       string `json:"code"`
			RetryAfter int    `json:"retryAfter"`
		} `json:"extensions"`
	} `json:"errors"`
}

type meetupGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Urlname     string `json:"urlname"`
	Memberships struct {
		Count int `json:"count"`
	} `json:"memberships"`
	GroupPhoto *meetupPhoto `json:"groupPhoto"`
	Events     struct {
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
		Edges []struct {
			Node meetupEvent `json:"node"`
		} `json:"edges"`
	} `json:"events"`
}

type meetupPhoto struct {
	ID      string `json:"id"`
	BaseURL string `json:"baseUrl"`
}

type meetupEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Desc      string `json:"description"`
	EventURL  string `json:"eventUrl"`
	Status    string `json:"status"`
	EventType string `json:"eventType"`
	DateTime  string `json:"dateTime"`
	Duration  string `json:"duration"`
	Timezone  string `json:"timezone"`
	Going     struct {
		TotalCount int `json:"totalCount"`
	} `json:"going"`
	MaxTickets         int          `json:"maxTickets"`
	FeaturedEventPhoto *meetupPhoto `json:"featuredEventPhoto"`
	Venues             []struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Address    string  `json:"address"`
		City       string  `json:"city"`
		State      string  `json:"state"`
		PostalCode string  `json:"postalCode"`
		Country    string  `json:"country"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
	} `json:"venues"`
}

// FetchEvents issues the group query, paginating by cursor until maxEvents
// upcoming events are collected.
func (m *MeetupAdapter) FetchEvents(ctx context.Context, urlname string, opts models.FetchOptions) (*models.FetchResult, error) {
	if urlname == "" {
		return nil, fmt.Errorf("missing group urlname")
	}
	maxEvents := opts.MaxEvents
	if maxEvents <= 0 {
		maxEvents = meetupDefaultEvents
	}

	result := &models.FetchResult{}
	after := ""
	for len(result.Events) < maxEvents {
		first := meetupPageSize
		if remaining := maxEvents - len(result.Events); remaining < first {
			first = remaining
		}
		group, err := m.query(ctx, urlname, first, after)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, fmt.Errorf("group %q not found on meetup", urlname)
		}
		if result.Group == nil {
			result.Group = mapMeetupGroup(group)
		}
		for _, edge := range group.Events.Edges {
			ev, err := mapMeetupEvent(edge.Node)
			if err != nil {
				return nil, fmt.Errorf("failed to map event %s: %w", edge.Node.ID, err)
			}
			result.Events = append(result.Events, *ev)
		}
		if !group.Events.PageInfo.HasNextPage {
			break
		}
		after = group.Events.PageInfo.EndCursor
	}
	return result, nil
}

// FetchGroup returns the group profile only.
func (m *MeetupAdapter) FetchGroup(ctx context.Context, urlname string) (*models.GroupMetadata, error) {
	res, err := m.FetchEvents(ctx, urlname, models.FetchOptions{MaxEvents: 1})
	if err != nil {
		return nil, err
	}
	return res.Group, nil
}

func (m *MeetupAdapter) query(ctx context.Context, urlname string, first int, after string) (*meetupGroup, error) {
	token, err := m.token(ctx)
	if err != nil {
		return nil, err
	}

	variables := map[string]interface{}{
		"urlname": urlname,
		"first":   first,
	}
	if after != "" {
		variables["after"] = after
	}
	reqBody, err := json.Marshal(map[string]interface{}{
		"query":     meetupEventsQuery,
		"variables": variables,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.gqlURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", version.Full())

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read graphql response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{RetryAfter: time.Minute}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graphql returned %d", resp.StatusCode)
	}

	var body meetupGQLResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to decode graphql response: %w", err)
	}
	for _, gqlErr := range body.Errors {
		if gqlErr.Extensions.Code == "RATE_LIMITED" {
			retryAfter := time.Duration(gqlErr.Extensions.RetryAfter) * time.Second
			if retryAfter <= 0 {
				retryAfter = time.Minute
			}
			return nil, &RateLimitError{RetryAfter: retryAfter}
		}
	}
	if len(body.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", body.Errors[0].Message)
	}
	return body.Data.GroupByUrlname, nil
}

func mapMeetupGroup(g *meetupGroup) *models.GroupMetadata {
	meta := &models.GroupMetadata{
		PlatformID:  g.ID,
		Name:        g.Name,
		Description: g.Description,
		MemberCount: g.Memberships.Count,
		Slug:        g.Urlname,
		URL:         g.Link,
	}
	if g.GroupPhoto != nil {
		meta.PhotoURL = meetupPhotoURL(g.GroupPhoto)
	}
	return meta
}

func mapMeetupEvent(n meetupEvent) (*models.Event, error) {
	start, err := time.Parse(time.RFC3339, n.DateTime)
	if err != nil {
		return nil, fmt.Errorf("invalid dateTime %q: %w", n.DateTime, err)
	}

	ev := &models.Event{
		PlatformID:  n.ID,
		Title:       n.Title,
		Description: n.Desc,
		EventURL:    n.EventURL,
		StartTime:   start.UTC(),
		Timezone:    n.Timezone,
		Duration:    n.Duration,
		Status:      mapMeetupStatus(n.Status),
		EventType:   mapMeetupEventType(n.EventType),
		RSVPCount:   n.Going.TotalCount,
	}
	if ev.Timezone == "" {
		ev.Timezone = "UTC"
	}
	if n.MaxTickets > 0 {
		max := n.MaxTickets
		ev.MaxAttendees = &max
	}
	if n.Duration != "" {
		d, err := parseISODuration(n.Duration)
		if err != nil {
			return nil, err
		}
		end := start.UTC().Add(d)
		ev.EndTime = &end
	}
	if n.FeaturedEventPhoto != nil {
		ev.PhotoURL = meetupPhotoURL(n.FeaturedEventPhoto)
	}
	ev.Venue = mapMeetupVenue(n)
	return ev, nil
}

// mapMeetupVenue returns the shared online venue for online events and for
// the explicit "Online event" placeholder venue.
func mapMeetupVenue(n meetupEvent) *models.Venue {
	if len(n.Venues) == 0 || n.Venues[0].Name == "Online event" {
		return &models.Venue{
			PlatformVenueID: "online",
			Name:            "Online event",
			IsOnline:        true,
		}
	}
	v := n.Venues[0]
	venue := &models.Venue{
		PlatformVenueID: v.ID,
		Name:            v.Name,
		Street:          v.Address,
		City:            v.City,
		Region:          v.State,
		PostalCode:      v.PostalCode,
		Country:         v.Country,
	}
	if v.Lat != 0 || v.Lon != 0 {
		lat, lon := v.Lat, v.Lon
		venue.Lat = &lat
		venue.Lon = &lon
	}
	return venue
}

func mapMeetupStatus(s string) string {
	switch strings.ToUpper(s) {
	case "ACTIVE", "PUBLISHED":
		return models.EventStatusActive
	case "CANCELED", "CANCELLED":
		return models.EventStatusCancelled
	case "DRAFT":
		return models.EventStatusDraft
	default:
		return models.EventStatusActive
	}
}

func mapMeetupEventType(s string) string {
	switch strings.ToUpper(s) {
	case "ONLINE":
		return models.EventTypeOnline
	case "HYBRID":
		return models.EventTypeHybrid
	default:
		return models.EventTypePhysical
	}
}

// meetupPhotoURL converts a photo ref into a sized URL.
func meetupPhotoURL(p *meetupPhoto) string {
	if p.BaseURL == "" || p.ID == "" {
		return ""
	}
	return strings.TrimSuffix(p.BaseURL, "/") + "/" + p.ID + "/676x380.webp"
}
