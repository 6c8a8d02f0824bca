package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
)

func newEventbriteTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer private-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id": "acct-1"}`))
	})
	mux.HandleFunc("/organizers/org-1/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "org-1",
			"name": "Go Users",
			"description": {"text": "We talk Go."},
			"url": "https://tickets.example/org-1",
			"num_followers": 99
		}`))
	})
	mux.HandleFunc("/organizers/org-1/events/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "live,started", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{
			"events": [{
				"id": "ev-1",
				"name": {"text": "Go Conf"},
				"url": "https://tickets.example/ev-1",
				"start": {"timezone": "Europe/Berlin", "utc": "2026-09-01T18:00:00Z"},
				"end": {"utc": "2026-09-01T20:30:00Z"},
				"status": "live",
				"online_event": false,
				"capacity": 120,
				"venue": {
					"id": "v-1",
					"name": "Big Hall",
					"address": {"address_1": "Main St 1", "city": "Berlin", "region": "", "postal_code": "10115", "country": "DE", "latitude": "52.5", "longitude": "13.4"}
				}
			}],
			"pagination": {"has_more_items": false}
		}`))
	})
	mux.HandleFunc("/events/ev-1/description/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"description": "<h1>Go Conf</h1><p>Two days of <strong>Go</strong>.</p>"}`))
	})
	return httptest.NewServer(mux)
}

func newEventbriteAdapterForTest(t *testing.T, baseURL string) *EventbriteAdapter {
	t.Helper()
	adapter := NewEventbriteAdapter()
	adapter.baseURL = baseURL
	env := &config.Env{EventbritePrivateToken: "private-token"}
	require.NoError(t, adapter.Initialize(context.Background(), env))
	return adapter
}

func TestEventbriteFetchEvents(t *testing.T) {
	srv := newEventbriteTestServer(t)
	defer srv.Close()
	adapter := newEventbriteAdapterForTest(t, srv.URL)

	res, err := adapter.FetchEvents(context.Background(), "org-1", models.FetchOptions{MaxEvents: 10})
	require.NoError(t, err)

	require.NotNil(t, res.Group)
	assert.Equal(t, "Go Users", res.Group.Name)
	assert.Equal(t, 99, res.Group.MemberCount)

	require.Len(t, res.Events, 1)
	ev := res.Events[0]
	assert.Equal(t, "ev-1", ev.PlatformID)
	assert.Equal(t, models.EventStatusActive, ev.Status)
	assert.Equal(t, models.EventTypePhysical, ev.EventType)
	assert.Equal(t, "PT2H30M", ev.Duration)
	require.NotNil(t, ev.EndTime)
	assert.Equal(t, ev.StartTime.Add(2*time.Hour+30*time.Minute), *ev.EndTime)
	require.NotNil(t, ev.MaxAttendees)
	assert.Equal(t, 120, *ev.MaxAttendees)

	// HTML description is converted to markdown.
	assert.Contains(t, ev.Description, "# Go Conf")
	assert.Contains(t, ev.Description, "**Go**")
	assert.NotContains(t, ev.Description, "<p>")

	require.NotNil(t, ev.Venue)
	assert.Equal(t, "v-1", ev.Venue.PlatformVenueID)
	require.NotNil(t, ev.Venue.Lat)
	assert.InDelta(t, 52.5, *ev.Venue.Lat, 0.001)
}

func TestEventbriteRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	adapter := NewEventbriteAdapter()
	adapter.baseURL = srv.URL
	adapter.token = "private-token"

	_, err := adapter.FetchEvents(context.Background(), "org-1", models.FetchOptions{})
	require.Error(t, err)
	rle, ok := IsRateLimited(err)
	require.True(t, ok)
	assert.Equal(t, time.Minute, rle.RetryAfter)
}

func TestEventbriteBadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	adapter := NewEventbriteAdapter()
	adapter.baseURL = srv.URL
	env := &config.Env{EventbritePrivateToken: "bad"}
	err := adapter.Initialize(context.Background(), env)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestEventbriteMissingOrganizer(t *testing.T) {
	adapter := NewEventbriteAdapter()
	adapter.token = "private-token"
	_, err := adapter.FetchEvents(context.Background(), "", models.FetchOptions{})
	assert.Error(t, err)
}

func TestEventbriteOnlineEventUsesSharedVenue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/organizers/org-1/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": "org-1", "name": "Go Users"}`))
	})
	mux.HandleFunc("/organizers/org-1/events/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"events": [{
				"id": "ev-2",
				"name": {"text": "Remote Meetup"},
				"url": "https://tickets.example/ev-2",
				"start": {"timezone": "UTC", "utc": "2026-09-01T18:00:00Z"},
				"end": {"utc": "2026-09-01T19:00:00Z"},
				"status": "live",
				"online_event": true
			}],
			"pagination": {"has_more_items": false}
		}`))
	})
	mux.HandleFunc("/events/ev-2/description/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"description": ""}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewEventbriteAdapter()
	adapter.baseURL = srv.URL
	adapter.token = "private-token"

	res, err := adapter.FetchEvents(context.Background(), "org-1", models.FetchOptions{})
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	ev := res.Events[0]
	assert.Equal(t, models.EventTypeOnline, ev.EventType)
	require.NotNil(t, ev.Venue)
	assert.True(t, ev.Venue.IsOnline)
}
