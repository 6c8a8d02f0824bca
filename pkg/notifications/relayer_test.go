package notifications

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

type pushedMessage struct {
	userID  string // empty for broadcast
	message map[string]interface{}
}

type fakePusher struct {
	pushed []pushedMessage
}

func (f *fakePusher) PushUser(_ context.Context, userID string, message map[string]interface{}) error {
	f.pushed = append(f.pushed, pushedMessage{userID: userID, message: message})
	return nil
}

func (f *fakePusher) PushBroadcast(_ context.Context, message map[string]interface{}) error {
	f.pushed = append(f.pushed, pushedMessage{message: message})
	return nil
}

func newTestRelayer(t *testing.T) (*Relayer, *fakePusher, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	pusher := &fakePusher{}
	return NewRelayer(client.Client, pusher), pusher, client.Client
}

func TestRelayAchievementUnlocked(t *testing.T) {
	relayer, pusher, _ := newTestRelayer(t)

	env := bus.New(bus.TypeAchievementUnlocked, map[string]interface{}{
		"achievement_key":  "first_checkin",
		"achievement_name": "First Check-in",
		"points":           10,
	}, bus.Metadata{UserID: "u1"})
	require.NoError(t, relayer.Handle(context.Background(), env))

	require.Len(t, pusher.pushed, 1)
	got := pusher.pushed[0]
	assert.Equal(t, "u1", got.userID)
	assert.Equal(t, bus.TypeAchievementUnlocked, got.message["type"])
	assert.Equal(t, "u1", got.message["userId"])
	assert.Equal(t, "first_checkin", got.message["achievementKey"])
	assert.Equal(t, "First Check-in", got.message["achievementName"])
	assert.Equal(t, 10, got.message["points"])
}

func TestRelayRSVPPromotion(t *testing.T) {
	relayer, pusher, _ := newTestRelayer(t)

	env := bus.New(bus.TypeEventRSVP, map[string]interface{}{
		"event_id":               "e1",
		"status":                 "confirmed",
		"promoted_from_waitlist": true,
	}, bus.Metadata{UserID: "u2"})
	require.NoError(t, relayer.Handle(context.Background(), env))

	require.Len(t, pusher.pushed, 1)
	msg := pusher.pushed[0].message
	assert.Equal(t, "e1", msg["eventId"])
	assert.Equal(t, true, msg["promotedFromWaitlist"])
}

func TestRelayFavoriteCountBroadcast(t *testing.T) {
	relayer, pusher, client := newTestRelayer(t)
	ctx := context.Background()

	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug("go-berlin").
		SetName("Go Berlin").
		Save(ctx)
	require.NoError(t, err)

	for _, user := range []string{"u1", "u2", "u3"} {
		err := client.Favorite.Create().
			SetID(uuid.NewString()).
			SetUserID(user).
			SetGroupID(g.ID).
			Exec(ctx)
		require.NoError(t, err)
	}

	env := bus.New(bus.TypeFavoriteAdded, map[string]interface{}{
		"group_id":   g.ID,
		"group_slug": g.Slug,
	}, bus.Metadata{UserID: "u3"})
	require.NoError(t, relayer.Handle(ctx, env))

	require.Len(t, pusher.pushed, 1)
	got := pusher.pushed[0]
	assert.Empty(t, got.userID, "favorite counts go to the broadcast channel")
	assert.Equal(t, "favorite.count_changed", got.message["type"])
	assert.Equal(t, "go-berlin", got.message["groupSlug"])
	assert.Equal(t, 3, got.message["favoriteCount"])
}

func TestRelayFavoriteRemovedRecountsFromStore(t *testing.T) {
	relayer, pusher, client := newTestRelayer(t)
	ctx := context.Background()

	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug("go-hamburg").
		SetName("Go Hamburg").
		Save(ctx)
	require.NoError(t, err)

	// No favorite rows: a removed event still broadcasts count 0.
	env := bus.New(bus.TypeFavoriteRemoved, map[string]interface{}{
		"group_id":   g.ID,
		"group_slug": g.Slug,
	}, bus.Metadata{UserID: "u1"})
	require.NoError(t, relayer.Handle(ctx, env))

	require.Len(t, pusher.pushed, 1)
	assert.Equal(t, 0, pusher.pushed[0].message["favoriteCount"])
}

func TestRelayIgnoresUnmappedTypes(t *testing.T) {
	relayer, pusher, _ := newTestRelayer(t)

	for _, typ := range []string{bus.TypeEventsSynced, bus.TypeSyncCompleted, "custom.event"} {
		env := bus.New(typ, map[string]interface{}{"anything": 1}, bus.Metadata{UserID: "u1"})
		require.NoError(t, relayer.Handle(context.Background(), env))
	}
	assert.Empty(t, pusher.pushed)
}

func TestRelayPersonalWithoutUserIgnored(t *testing.T) {
	relayer, pusher, _ := newTestRelayer(t)

	env := bus.New(bus.TypeBadgeIssued, map[string]interface{}{"badge_slug": "x"}, bus.Metadata{})
	require.NoError(t, relayer.Handle(context.Background(), env))
	assert.Empty(t, pusher.pushed)
}
