package providers

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
)

func testSigningKey(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}
	return string(pem.EncodeToMemory(block))
}

func testMeetupEnv(t *testing.T) *config.Env {
	return &config.Env{
		MeetupClientKey:  "client-key",
		MeetupSigningKey: testSigningKey(t),
		MeetupMemberID:   "12345",
	}
}

const meetupGroupResponse = `{
  "data": {
    "groupByUrlname": {
      "id": "g1",
      "name": "Go Users",
      "description": "We talk Go.",
      "link": "https://meetup.example/go-users",
      "urlname": "go-users",
      "memberships": {"count": 420},
      "groupPhoto": {"id": "p1", "baseUrl": "https://img.example/"},
      "events": {
        "pageInfo": {"hasNextPage": false, "endCursor": ""},
        "edges": [
          {"node": {
            "id": "e1",
            "title": "Go Night",
            "description": "Talks",
            "eventUrl": "https://meetup.example/e1",
            "status": "PUBLISHED",
            "eventType": "PHYSICAL",
            "dateTime": "2026-09-01T18:00:00Z",
            "duration": "PT2H",
            "timezone": "Europe/Berlin",
            "going": {"totalCount": 30},
            "maxTickets": 50,
            "venues": [{"id": "v1", "name": "The Hall", "address": "Main St 1", "city": "Berlin", "state": "", "postalCode": "10115", "country": "DE", "lat": 52.5, "lon": 13.4}]
          }},
          {"node": {
            "id": "e2",
            "title": "Remote Hack",
            "eventUrl": "https://meetup.example/e2",
            "status": "ACTIVE",
            "eventType": "ONLINE",
            "dateTime": "2026-09-08T18:00:00Z",
            "timezone": "UTC",
            "going": {"totalCount": 12},
            "venues": []
          }}
        ]
      }
    }
  }
}`

func newMeetupTestServer(t *testing.T, gqlBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/access", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.Form.Get("grant_type"))
		assert.NotEmpty(t, r.Form.Get("assertion"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok", "expires_in": 3600}`))
	})
	mux.HandleFunc("/gql", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(gqlBody))
	})
	return httptest.NewServer(mux)
}

func TestMeetupFetchEvents(t *testing.T) {
	srv := newMeetupTestServer(t, meetupGroupResponse)
	defer srv.Close()

	adapter := NewMeetupAdapter()
	adapter.authURL = srv.URL + "/oauth2/access"
	adapter.gqlURL = srv.URL + "/gql"
	require.NoError(t, adapter.Initialize(context.Background(), testMeetupEnv(t)))

	res, err := adapter.FetchEvents(context.Background(), "go-users", models.FetchOptions{MaxEvents: 10})
	require.NoError(t, err)

	require.NotNil(t, res.Group)
	assert.Equal(t, "g1", res.Group.PlatformID)
	assert.Equal(t, "Go Users", res.Group.Name)
	assert.Equal(t, 420, res.Group.MemberCount)
	assert.Equal(t, "https://img.example/p1/676x380.webp", res.Group.PhotoURL)

	require.Len(t, res.Events, 2)

	physical := res.Events[0]
	assert.Equal(t, "e1", physical.PlatformID)
	assert.Equal(t, models.EventStatusActive, physical.Status)
	assert.Equal(t, models.EventTypePhysical, physical.EventType)
	assert.Equal(t, 30, physical.RSVPCount)
	require.NotNil(t, physical.MaxAttendees)
	assert.Equal(t, 50, *physical.MaxAttendees)
	require.NotNil(t, physical.EndTime)
	assert.Equal(t, physical.StartTime.Add(2*time.Hour), *physical.EndTime)
	require.NotNil(t, physical.Venue)
	assert.Equal(t, "v1", physical.Venue.PlatformVenueID)
	assert.False(t, physical.Venue.IsOnline)

	online := res.Events[1]
	assert.Equal(t, models.EventTypeOnline, online.EventType)
	require.NotNil(t, online.Venue)
	assert.True(t, online.Venue.IsOnline)
	assert.Equal(t, "online", online.Venue.PlatformVenueID)
	assert.Nil(t, online.EndTime)
}

func TestMeetupRateLimited(t *testing.T) {
	body := `{"errors": [{"message": "slow down", "extensions": {"code": "RATE_LIMITED", "retryAfter": 30}}]}`
	srv := newMeetupTestServer(t, body)
	defer srv.Close()

	adapter := NewMeetupAdapter()
	adapter.authURL = srv.URL + "/oauth2/access"
	adapter.gqlURL = srv.URL + "/gql"
	require.NoError(t, adapter.Initialize(context.Background(), testMeetupEnv(t)))

	_, err := adapter.FetchEvents(context.Background(), "go-users", models.FetchOptions{})
	require.Error(t, err)
	rle, ok := IsRateLimited(err)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, rle.RetryAfter)
}

func TestMeetupGroupNotFound(t *testing.T) {
	srv := newMeetupTestServer(t, `{"data": {"groupByUrlname": null}}`)
	defer srv.Close()

	adapter := NewMeetupAdapter()
	adapter.authURL = srv.URL + "/oauth2/access"
	adapter.gqlURL = srv.URL + "/gql"
	require.NoError(t, adapter.Initialize(context.Background(), testMeetupEnv(t)))

	_, err := adapter.FetchEvents(context.Background(), "nope", models.FetchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMeetupMissingUrlname(t *testing.T) {
	adapter := NewMeetupAdapter()
	_, err := adapter.FetchEvents(context.Background(), "", models.FetchOptions{})
	assert.Error(t, err)
}

func TestMeetupNotConfigured(t *testing.T) {
	adapter := NewMeetupAdapter()
	assert.False(t, adapter.IsConfigured(&config.Env{}))
	assert.ErrorIs(t, adapter.Initialize(context.Background(), &config.Env{}), ErrNotConfigured)
}

func TestMeetupTokenCached(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/access", func(w http.ResponseWriter, _ *http.Request) {
		tokenCalls++
		_, _ = w.Write([]byte(`{"access_token": "tok", "expires_in": 3600}`))
	})
	mux.HandleFunc("/gql", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(meetupGroupResponse))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewMeetupAdapter()
	adapter.authURL = srv.URL + "/oauth2/access"
	adapter.gqlURL = srv.URL + "/gql"
	require.NoError(t, adapter.Initialize(context.Background(), testMeetupEnv(t)))

	for i := 0; i < 3; i++ {
		_, err := adapter.FetchEvents(context.Background(), "go-users", models.FetchOptions{})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, tokenCalls)
}
