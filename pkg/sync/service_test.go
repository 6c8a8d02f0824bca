package sync

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/queuedevent"
	"github.com/gatherhub/gatherhub/ent/synclog"
	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
	"github.com/gatherhub/gatherhub/pkg/providers"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

// fakeAdapter serves a scripted fetch result for the meetup platform tag.
// The zero value reports itself configured.
type fakeAdapter struct {
	result       *models.FetchResult
	err          error
	unconfigured bool
	calls        int
}

func (f *fakeAdapter) Platform() string                                  { return config.PlatformMeetup }
func (f *fakeAdapter) Name() string                                      { return "Fake" }
func (f *fakeAdapter) IsConfigured(_ *config.Env) bool                   { return !f.unconfigured }
func (f *fakeAdapter) Initialize(_ context.Context, _ *config.Env) error { return nil }

func (f *fakeAdapter) FetchEvents(_ context.Context, _ string, _ models.FetchOptions) (*models.FetchResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeAdapter) FetchGroup(_ context.Context, _ string) (*models.GroupMetadata, error) {
	if f.result == nil {
		return nil, f.err
	}
	return f.result.Group, f.err
}

func newTestService(t *testing.T, adapter providers.Adapter) (*Service, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	registry := providers.NewRegistry()
	registry.Register(adapter)
	publisher := bus.NewPublisher(client.Client)
	return NewService(client.Client, registry, publisher, &config.Env{}), client.Client
}

func seedGroup(t *testing.T, client *ent.Client, slug string) (*ent.Group, *ent.PlatformConnection) {
	t.Helper()
	ctx := context.Background()
	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug(slug).
		SetName(slug).
		Save(ctx)
	require.NoError(t, err)
	conn, err := client.PlatformConnection.Create().
		SetID(uuid.NewString()).
		SetGroupID(g.ID).
		SetPlatform(config.PlatformMeetup).
		SetPlatformID("upstream-" + slug).
		Save(ctx)
	require.NoError(t, err)
	return g, conn
}

func canonicalEvent(platformID string, start time.Time) models.Event {
	return models.Event{
		PlatformID: platformID,
		Title:      "Event " + platformID,
		EventURL:   "https://upstream.example/" + platformID,
		StartTime:  start,
		Timezone:   "UTC",
		Status:     models.EventStatusActive,
		EventType:  models.EventTypePhysical,
		Venue: &models.Venue{
			PlatformVenueID: "v-1",
			Name:            "The Hall",
			City:            "Berlin",
		},
	}
}

func queuedTypes(t *testing.T, client *ent.Client) []string {
	t.Helper()
	rows, err := client.QueuedEvent.Query().Order(ent.Asc(queuedevent.FieldID)).All(context.Background())
	require.NoError(t, err)
	types := make([]string, 0, len(rows))
	for _, r := range rows {
		types = append(types, r.EventType)
	}
	return types
}

func TestSyncGroupCreatesEvents(t *testing.T) {
	future := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	adapter := &fakeAdapter{result: &models.FetchResult{
		Group: &models.GroupMetadata{
			Name:        "Go Users Berlin",
			Description: "We talk Go.",
			MemberCount: 500,
			PhotoURL:    "https://img.example/g.webp",
		},
		Events: []models.Event{
			canonicalEvent("x", future),
			canonicalEvent("y", future.Add(time.Hour)),
		},
	}}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()
	g, _ := seedGroup(t, client, "go-berlin")

	res, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.EventsCreated)
	assert.Equal(t, 0, res.EventsUpdated)
	assert.Equal(t, 0, res.EventsDeleted)

	// Group metadata refreshed from upstream.
	g, err = client.Group.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Users Berlin", g.Name)
	assert.Equal(t, 500, g.MemberCount)
	require.NotNil(t, g.LastSyncAt)
	assert.Nil(t, g.LastSyncError)

	// Both events share the deduplicated venue.
	venues, err := client.Venue.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, venues)

	logs, err := svc.GetSyncLogs(ctx, SyncLogOptions{GroupID: g.ID})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, synclog.StatusSuccess, logs[0].Status)
	assert.Equal(t, 2, logs[0].EventsCreated)

	assert.Contains(t, queuedTypes(t, client), bus.TypeEventsSynced)
}

func TestSyncGroupIdempotentRefresh(t *testing.T) {
	future := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	adapter := &fakeAdapter{result: &models.FetchResult{
		Events: []models.Event{canonicalEvent("x", future), canonicalEvent("y", future)},
	}}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()
	g, _ := seedGroup(t, client, "go-berlin")

	_, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)

	res, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.EventsCreated)
	assert.Equal(t, 2, res.EventsUpdated)
	assert.Equal(t, 0, res.EventsDeleted)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// events.synced is suppressed when nothing was created: exactly one
	// emission from the first sync.
	synced := 0
	for _, typ := range queuedTypes(t, client) {
		if typ == bus.TypeEventsSynced {
			synced++
		}
	}
	assert.Equal(t, 1, synced)
}

func TestSyncGroupDeletionInference(t *testing.T) {
	future := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	adapter := &fakeAdapter{result: &models.FetchResult{
		Events: []models.Event{
			canonicalEvent("x", future),
			canonicalEvent("y", future),
			canonicalEvent("z", future),
		},
	}}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()
	g, _ := seedGroup(t, client, "go-berlin")

	_, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)

	// z vanishes upstream.
	adapter.result.Events = adapter.result.Events[:2]
	res, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.EventsDeleted)

	z, err := client.Event.Query().Where(event.PlatformID("z")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, event.StatusCancelled, z.Status)

	// The cancelled row is kept, not deleted.
	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSyncGroupPastEventsNotInferredCancelled(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Second)
	adapter := &fakeAdapter{result: &models.FetchResult{
		Events: []models.Event{canonicalEvent("old", past)},
	}}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()
	g, _ := seedGroup(t, client, "go-berlin")

	_, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)

	// Upstream now returns nothing; the past event must stay active.
	adapter.result.Events = nil
	res, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.EventsDeleted)

	old, err := client.Event.Query().Where(event.PlatformID("old")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, event.StatusActive, old.Status)
}

func TestSyncGroupAdapterFailure(t *testing.T) {
	adapter := &fakeAdapter{err: fmt.Errorf("upstream exploded")}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()
	g, conn := seedGroup(t, client, "go-berlin")

	res, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "upstream exploded")

	logs, err := svc.GetSyncLogs(ctx, SyncLogOptions{GroupID: g.ID})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, synclog.StatusFailed, logs[0].Status)
	require.NotNil(t, logs[0].ErrorMessage)

	conn, err = client.PlatformConnection.Get(ctx, conn.ID)
	require.NoError(t, err)
	require.NotNil(t, conn.LastError)
	assert.Contains(t, *conn.LastError, "upstream exploded")

	g, err = client.Group.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, g.LastSyncError)
}

func TestSyncSkipsLocalConnections(t *testing.T) {
	adapter := &fakeAdapter{result: &models.FetchResult{}}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()

	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug("native-only").
		SetName("Native Only").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.PlatformConnection.Create().
		SetID(uuid.NewString()).
		SetGroupID(g.ID).
		SetPlatform(config.PlatformLocal).
		SetPlatformID("native").
		Save(ctx)
	require.NoError(t, err)

	res, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 0, adapter.calls)

	logs, err := svc.GetSyncLogs(ctx, SyncLogOptions{GroupID: g.ID})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestSyncSkipsUnconfiguredPlatform(t *testing.T) {
	adapter := &fakeAdapter{unconfigured: true}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()
	g, conn := seedGroup(t, client, "go-berlin")

	res, err := svc.SyncGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, 0, adapter.calls)

	// Skipping leaves no failure trail: no sync log, no connection
	// error, no group error. The group pass itself still completes.
	logs, err := svc.GetSyncLogs(ctx, SyncLogOptions{GroupID: g.ID})
	require.NoError(t, err)
	assert.Empty(t, logs)

	conn, err = client.PlatformConnection.Get(ctx, conn.ID)
	require.NoError(t, err)
	assert.Nil(t, conn.LastError)

	g, err = client.Group.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, g.LastSyncError)
	require.NotNil(t, g.LastSyncAt)

	all, err := svc.SyncAllGroups(ctx, SyncAllOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, all.Succeeded)
	assert.Equal(t, 0, all.Failed)
}

func TestSyncAllGroups(t *testing.T) {
	future := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	adapter := &fakeAdapter{result: &models.FetchResult{
		Events: []models.Event{canonicalEvent("x", future)},
	}}
	svc, client := newTestService(t, adapter)
	ctx := context.Background()

	seedGroup(t, client, "group-a")
	seedGroup(t, client, "group-b")

	// A sync-inactive group is excluded unless forced.
	gc, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug("group-c").
		SetName("group-c").
		SetSyncActive(false).
		Save(ctx)
	require.NoError(t, err)
	_ = gc

	all, err := svc.SyncAllGroups(ctx, SyncAllOptions{Concurrency: 2})
	require.NoError(t, err)
	assert.True(t, all.Success)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, 2, all.Succeeded)
	assert.Equal(t, 0, all.Failed)

	assert.Contains(t, queuedTypes(t, client), bus.TypeSyncCompleted)

	forced, err := svc.SyncAllGroups(ctx, SyncAllOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 3, forced.Total)
}

func TestSyncGroupByUrlname(t *testing.T) {
	adapter := &fakeAdapter{result: &models.FetchResult{}}
	svc, client := newTestService(t, adapter)
	g, _ := seedGroup(t, client, "go-berlin")

	res, err := svc.SyncGroupByUrlname(context.Background(), "go-berlin")
	require.NoError(t, err)
	assert.Equal(t, g.ID, res.GroupID)

	_, err = svc.SyncGroupByUrlname(context.Background(), "missing")
	assert.Error(t, err)
}
