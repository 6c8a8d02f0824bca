package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/user"
	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/database"
	"github.com/gatherhub/gatherhub/pkg/mcp"
	"github.com/gatherhub/gatherhub/pkg/providers"
	"github.com/gatherhub/gatherhub/pkg/realtime"
	"github.com/gatherhub/gatherhub/pkg/services"
	"github.com/gatherhub/gatherhub/pkg/sync"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

const testJWTSecret = "test-secret"

func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.Env{APIJWTSecret: []byte(testJWTSecret)}
	catalog := services.NewCatalogService(client.Client)
	rsvps := services.NewRSVPService(client.Client)
	favorites := services.NewFavoritesService(client.Client)
	claims := services.NewClaimService(client.Client)
	checkins := services.NewCheckinService(client.Client)
	publisher := bus.NewPublisher(client.Client)
	syncSvc := sync.NewService(client.Client, providers.NewRegistry(), publisher, cfg)

	reg := mcp.NewRegistry()
	mcp.RegisterCoreTools(reg, catalog, rsvps, syncSvc)
	mcp.RegisterCoreResources(reg, catalog)
	mcp.RegisterCorePrompts(reg, catalog)
	reg.Freeze()

	s := NewServer(cfg, client, catalog, rsvps, favorites, claims, checkins, syncSvc,
		publisher, realtime.NewConnectionManager(time.Second), mcp.NewDispatcher(reg))
	return s, client
}

// do runs one request through the full router.
func do(s *Server, method, path, userID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Forwarded-User", userID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func seedUser(t *testing.T, client *database.Client, role user.Role) *ent.User {
	t.Helper()
	id := uuid.NewString()
	u, err := client.User.Create().
		SetID(id).
		SetUsername("u-" + id[:8]).
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedGroupWithEvent(t *testing.T, client *database.Client) (*ent.Group, *ent.Event) {
	t.Helper()
	ctx := context.Background()
	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug("go-berlin-" + uuid.NewString()[:8]).
		SetName("Go Berlin").
		Save(ctx)
	require.NoError(t, err)

	ev, err := client.Event.Create().
		SetID(uuid.NewString()).
		SetPlatform(config.PlatformLocal).
		SetPlatformID(uuid.NewString()).
		SetGroupID(g.ID).
		SetTitle("Monthly Meetup").
		SetEventURL("https://example.com/e").
		SetStartTime(time.Now().Add(24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	return g, ev
}

func TestHealthHandler(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestSecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodGet, "/health", "", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCatalogRoutes(t *testing.T) {
	s, client := newTestServer(t)
	g, ev := seedGroupWithEvent(t, client)

	rec := do(s, http.MethodGet, "/api/v1/events?group="+g.Slug, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var events []map[string]interface{}
	decodeJSON(t, rec, &events)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0]["id"])

	rec = do(s, http.MethodGet, "/api/v1/events/"+ev.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/events/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/groups/"+g.Slug, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/events?limit=zero", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRSVPRoutes(t *testing.T) {
	s, client := newTestServer(t)
	_, ev := seedGroupWithEvent(t, client)

	// Anonymous callers are rejected before the service runs.
	rec := do(s, http.MethodPost, "/api/v1/events/"+ev.ID+"/rsvp", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(s, http.MethodPost, "/api/v1/events/"+ev.ID+"/rsvp", "u1", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp RSVPResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "confirmed", resp.Status)

	// Duplicate RSVP conflicts.
	rec = do(s, http.MethodPost, "/api/v1/events/"+ev.ID+"/rsvp", "u1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/me/rsvps", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []RSVPResponse
	decodeJSON(t, rec, &mine)
	require.Len(t, mine, 1)

	rec = do(s, http.MethodDelete, "/api/v1/events/"+ev.ID+"/rsvp", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Events reached the durable queue.
	n, err := client.QueuedEvent.Query().Count(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2)
}

func TestFavoriteRoutes(t *testing.T) {
	s, client := newTestServer(t)
	g, _ := seedGroupWithEvent(t, client)

	rec := do(s, http.MethodPut, "/api/v1/me/favorites/"+g.Slug, "u1", "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Idempotent re-add.
	rec = do(s, http.MethodPut, "/api/v1/me/favorites/"+g.Slug, "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/me/favorites", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var favs []FavoriteResponse
	decodeJSON(t, rec, &favs)
	require.Len(t, favs, 1)
	assert.Equal(t, g.Slug, favs[0].GroupSlug)

	rec = do(s, http.MethodDelete, "/api/v1/me/favorites/"+g.Slug, "u1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(s, http.MethodPut, "/api/v1/me/favorites/unknown-group", "u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClaimRoute(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	b, err := client.Badge.Create().
		SetID(uuid.NewString()).
		SetSlug("early-bird").
		SetName("Early Bird").
		SetPoints(5).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.BadgeClaimLink.Create().
		SetID(uuid.NewString()).
		SetBadgeID(b.ID).
		SetCode("WELCOME").
		Save(ctx)
	require.NoError(t, err)

	rec := do(s, http.MethodPost, "/api/v1/claim", "u1", `{"code":"WELCOME"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ClaimResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "early-bird", resp.BadgeSlug)
	assert.Equal(t, 5, resp.Points)

	// Second claim by the same user conflicts.
	rec = do(s, http.MethodPost, "/api/v1/claim", "u1", `{"code":"WELCOME"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(s, http.MethodPost, "/api/v1/claim", "u1", `{"code":"NOPE"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(s, http.MethodPost, "/api/v1/claim", "u1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckinRoute(t *testing.T) {
	s, client := newTestServer(t)
	_, ev := seedGroupWithEvent(t, client)
	ctx := context.Background()

	_, err := client.CheckinCode.Create().
		SetID(uuid.NewString()).
		SetEventID(ev.ID).
		SetCode("DOOR").
		Save(ctx)
	require.NoError(t, err)

	rec := do(s, http.MethodPost, "/api/v1/events/"+ev.ID+"/checkin", "u1", `{"code":"DOOR"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp CheckinResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "u1", resp.UserID)

	rec = do(s, http.MethodPost, "/api/v1/events/"+ev.ID+"/checkin", "u1", `{"code":"DOOR"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminGuard(t *testing.T) {
	s, client := newTestServer(t)
	admin := seedUser(t, client, user.RoleAdmin)
	member := seedUser(t, client, user.RoleUser)

	rec := do(s, http.MethodPost, "/api/v1/sync", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(s, http.MethodPost, "/api/v1/sync", member.ID, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Unknown principals are forbidden, not 500.
	rec = do(s, http.MethodPost, "/api/v1/sync", "ghost", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(s, http.MethodPost, "/api/v1/sync", admin.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodPost, "/api/v1/groups/no-such-group/sync", admin.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/sync/logs", admin.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookCRUD(t *testing.T) {
	s, client := newTestServer(t)
	admin := seedUser(t, client, user.RoleAdmin)

	rec := do(s, http.MethodPost, "/api/v1/webhooks", admin.ID,
		`{"url":"https://example.com/hook","secret":"s3cr3t","event_types":["event.rsvp"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created WebhookResponse
	decodeJSON(t, rec, &created)
	assert.True(t, created.Active)
	assert.NotContains(t, rec.Body.String(), "s3cr3t")

	rec = do(s, http.MethodPost, "/api/v1/webhooks", admin.ID, `{"url":"ftp://x","secret":"s","event_types":["*"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(s, http.MethodPost, "/api/v1/webhooks", admin.ID, `{"url":"https://example.com","secret":"s"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/webhooks", admin.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hooks []WebhookResponse
	decodeJSON(t, rec, &hooks)
	require.Len(t, hooks, 1)

	rec = do(s, http.MethodGet, "/api/v1/webhooks/"+created.ID+"/deliveries", admin.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodDelete, "/api/v1/webhooks/"+created.ID, admin.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(s, http.MethodDelete, "/api/v1/webhooks/"+created.ID, admin.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
