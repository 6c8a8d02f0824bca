package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/pkg/bus"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func seedGroup(t *testing.T, client *ent.Client, slug string) *ent.Group {
	t.Helper()
	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug(slug).
		SetName(slug).
		Save(context.Background())
	require.NoError(t, err)
	return g
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFavoritesService(client.Client)
	g := seedGroup(t, client.Client, "go-berlin")
	ctx := context.Background()

	existed, events, err := svc.Add(ctx, "u1", "go-berlin")
	require.NoError(t, err)
	assert.False(t, existed)
	require.Len(t, events, 1)
	assert.Equal(t, bus.TypeFavoriteAdded, events[0].Type)
	assert.Equal(t, g.ID, events[0].Payload["group_id"])
	assert.Equal(t, "u1", events[0].Metadata.UserID)

	existed, events, err = svc.Add(ctx, "u1", "go-berlin")
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Empty(t, events, "repeat add emits nothing")

	count, err := svc.CountForGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFavoriteRemoveIsStrict(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFavoritesService(client.Client)
	seedGroup(t, client.Client, "go-berlin")
	ctx := context.Background()

	// Remove without add: no event.
	events, err := svc.Remove(ctx, "u1", "go-berlin")
	require.NoError(t, err)
	assert.Empty(t, events)

	_, _, err = svc.Add(ctx, "u1", "go-berlin")
	require.NoError(t, err)

	events, err = svc.Remove(ctx, "u1", "go-berlin")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, bus.TypeFavoriteRemoved, events[0].Type)
}

func TestFavoriteUnknownGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFavoritesService(client.Client)

	_, _, err := svc.Add(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Remove(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteListForUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFavoritesService(client.Client)
	ctx := context.Background()

	seedGroup(t, client.Client, "first")
	seedGroup(t, client.Client, "second")
	seedGroup(t, client.Client, "untouched")

	_, _, err := svc.Add(ctx, "u1", "first")
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "u1", "second")
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "someone-else", "untouched")
	require.NoError(t, err)

	groups, err := svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	slugs := []string{groups[0].Slug, groups[1].Slug}
	assert.ElementsMatch(t, []string{"first", "second"}, slugs)
}
