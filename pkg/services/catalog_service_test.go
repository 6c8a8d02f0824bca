package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/event"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func TestCatalogListEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCatalogService(client.Client)
	ctx := context.Background()

	upcoming := seedEvent(t, client.Client, nil)
	seedEvent(t, client.Client, func(c *ent.EventCreate) {
		c.SetStartTime(time.Now().Add(-48 * time.Hour))
	})
	seedEvent(t, client.Client, func(c *ent.EventCreate) {
		c.SetStatus(event.StatusCancelled)
	})

	all, err := svc.ListEvents(ctx, EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "cancelled events are hidden")

	future, err := svc.ListEvents(ctx, EventFilter{UpcomingOnly: true})
	require.NoError(t, err)
	require.Len(t, future, 1)
	assert.Equal(t, upcoming.ID, future[0].ID)
}

func TestCatalogListEventsByGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCatalogService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client.Client, nil)
	seedEvent(t, client.Client, nil) // different group

	g, err := client.Group.Get(ctx, ev.GroupID)
	require.NoError(t, err)

	got, err := svc.ListEvents(ctx, EventFilter{GroupSlug: g.Slug})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ev.ID, got[0].ID)

	_, err = svc.ListEvents(ctx, EventFilter{GroupSlug: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogGroups(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCatalogService(client.Client)
	ctx := context.Background()

	seedGroup(t, client.Client, "zeta")
	seedGroup(t, client.Client, "alpha")
	hidden := seedGroup(t, client.Client, "hidden")
	require.NoError(t, client.Group.UpdateOne(hidden).SetDisplay(false).Exec(ctx))

	groups, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "alpha", groups[0].Slug, "name order")

	g, err := svc.GetGroupBySlug(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", g.Name)

	_, err = svc.GetGroupBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
