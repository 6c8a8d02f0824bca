package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
)

func TestLumaFetchEvents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/calendar/list-events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "api-key", r.Header.Get("x-luma-api-key"))
		assert.Equal(t, "cal-1", r.URL.Query().Get("calendar_api_id"))
		_, _ = w.Write([]byte(`{
			"entries": [
				{"event": {
					"api_id": "lv-1",
					"name": "Go Picnic",
					"description_md": "Bring snacks.",
					"url": "https://lu.ma/lv-1",
					"start_at": "2026-09-05T12:00:00Z",
					"end_at": "2026-09-05T15:00:00Z",
					"timezone": "Europe/Berlin",
					"geo_address_json": {"place_id": "pl-1", "address": "Park Ave", "city": "Berlin", "country": "DE", "latitude": "52.51", "longitude": "13.39"}
				}, "guest_count": 17},
				{"event": {
					"api_id": "lv-2",
					"name": "Remote Q&A",
					"url": "https://lu.ma/lv-2",
					"start_at": "2026-09-07T18:00:00Z",
					"timezone": "UTC",
					"meeting_url": "https://meet.example/q"
				}, "guest_count": 5}
			],
			"has_more": false
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewLumaAdapter()
	adapter.baseURL = srv.URL
	require.NoError(t, adapter.Initialize(context.Background(), &config.Env{LumaAPIKey: "api-key"}))

	res, err := adapter.FetchEvents(context.Background(), "cal-1", models.FetchOptions{MaxEvents: 10})
	require.NoError(t, err)
	require.Len(t, res.Events, 2)

	physical := res.Events[0]
	assert.Equal(t, "lv-1", physical.PlatformID)
	assert.Equal(t, "PT3H", physical.Duration)
	assert.Equal(t, 17, physical.RSVPCount)
	require.NotNil(t, physical.Venue)
	assert.Equal(t, "pl-1", physical.Venue.PlatformVenueID)

	online := res.Events[1]
	assert.Equal(t, models.EventTypeOnline, online.EventType)
	require.NotNil(t, online.Venue)
	assert.True(t, online.Venue.IsOnline)
}

func TestLumaPagination(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/calendar/list-events", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("pagination_cursor") == "" {
			_, _ = w.Write([]byte(`{
				"entries": [{"event": {"api_id": "lv-1", "name": "One", "url": "u", "start_at": "2026-09-05T12:00:00Z"}, "guest_count": 0}],
				"has_more": true,
				"next_cursor": "c2"
			}`))
			return
		}
		assert.Equal(t, "c2", r.URL.Query().Get("pagination_cursor"))
		_, _ = w.Write([]byte(`{
			"entries": [{"event": {"api_id": "lv-2", "name": "Two", "url": "u", "start_at": "2026-09-06T12:00:00Z"}, "guest_count": 0}],
			"has_more": false
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewLumaAdapter()
	adapter.baseURL = srv.URL
	require.NoError(t, adapter.Initialize(context.Background(), &config.Env{LumaAPIKey: "api-key"}))

	res, err := adapter.FetchEvents(context.Background(), "cal-1", models.FetchOptions{MaxEvents: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, res.Events, 2)
	assert.Equal(t, "lv-2", res.Events[1].PlatformID)
}

func TestLumaNotConfigured(t *testing.T) {
	adapter := NewLumaAdapter()
	assert.False(t, adapter.IsConfigured(&config.Env{}))
	_, err := adapter.FetchEvents(context.Background(), "cal-1", models.FetchOptions{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
