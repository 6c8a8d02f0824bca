package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/rsvp"
	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func seedEvent(t *testing.T, client *ent.Client, mutate func(*ent.EventCreate)) *ent.Event {
	t.Helper()
	ctx := context.Background()
	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug("go-berlin-" + uuid.NewString()[:8]).
		SetName("Go Berlin").
		Save(ctx)
	require.NoError(t, err)

	create := client.Event.Create().
		SetID(uuid.NewString()).
		SetPlatform(config.PlatformLocal).
		SetPlatformID(uuid.NewString()).
		SetGroupID(g.ID).
		SetTitle("Monthly Meetup").
		SetEventURL("https://example.com/e").
		SetStartTime(time.Now().Add(24 * time.Hour))
	if mutate != nil {
		mutate(create)
	}
	ev, err := create.Save(ctx)
	require.NoError(t, err)
	return ev
}

func TestRSVPConfirmedWithinCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetMaxAttendees(2) })

	row, events, err := svc.Create(context.Background(), ev.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, rsvp.StatusConfirmed, row.Status)
	assert.Nil(t, row.WaitlistPosition)

	require.Len(t, events, 1)
	assert.Equal(t, bus.TypeEventRSVP, events[0].Type)
	assert.Equal(t, "confirmed", events[0].Payload["status"])

	got, err := client.Event.Get(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RsvpCount)
}

func TestRSVPWaitlistedWhenFull(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetMaxAttendees(1) })
	ctx := context.Background()

	_, _, err := svc.Create(ctx, ev.ID, "a")
	require.NoError(t, err)

	row, _, err := svc.Create(ctx, ev.ID, "b")
	require.NoError(t, err)
	assert.Equal(t, rsvp.StatusWaitlisted, row.Status)
	require.NotNil(t, row.WaitlistPosition)
	assert.Equal(t, 1, *row.WaitlistPosition)

	// Confirmed count stays at capacity.
	got, err := client.Event.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RsvpCount)
}

func TestRSVPUnlimitedCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, nil)
	ctx := context.Background()

	for _, u := range []string{"a", "b", "c"} {
		row, _, err := svc.Create(ctx, ev.ID, u)
		require.NoError(t, err)
		assert.Equal(t, rsvp.StatusConfirmed, row.Status)
	}
}

func TestRSVPErrors(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "missing", "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	cancelled := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetStatus(event.StatusCancelled) })
	_, _, err = svc.Create(ctx, cancelled.ID, "u1")
	assert.ErrorIs(t, err, ErrGone)

	ev := seedEvent(t, client.Client, nil)
	_, _, err = svc.Create(ctx, ev.ID, "u1")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, ev.ID, "u1")
	assert.ErrorIs(t, err, ErrConflict)

	_, _, err = svc.Cancel(ctx, ev.ID, "never-rsvped")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelPromotesHeadOfWaitlist(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetMaxAttendees(1) })
	ctx := context.Background()

	_, _, err := svc.Create(ctx, ev.ID, "a")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, ev.ID, "b")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, ev.ID, "c")
	require.NoError(t, err)

	_, events, err := svc.Cancel(ctx, ev.ID, "a")
	require.NoError(t, err)

	// Cancellation event for a, promotion event for b.
	require.Len(t, events, 2)
	assert.Equal(t, bus.TypeEventRSVPCancelled, events[0].Type)
	assert.Equal(t, "a", events[0].Metadata.UserID)
	assert.Equal(t, bus.TypeEventRSVP, events[1].Type)
	assert.Equal(t, "b", events[1].Metadata.UserID)
	assert.Equal(t, true, events[1].Payload["promoted_from_waitlist"])

	b, err := client.RSVP.Query().
		Where(rsvp.EventID(ev.ID), rsvp.UserID("b")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, rsvp.StatusConfirmed, b.Status)
	assert.Nil(t, b.WaitlistPosition)

	// c stays waitlisted; confirmed count stays at capacity.
	c, err := client.RSVP.Query().
		Where(rsvp.EventID(ev.ID), rsvp.UserID("c")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, rsvp.StatusWaitlisted, c.Status)

	got, err := client.Event.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RsvpCount)
}

func TestCancelWaitlistedDoesNotPromote(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetMaxAttendees(1) })
	ctx := context.Background()

	_, _, err := svc.Create(ctx, ev.ID, "a")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, ev.ID, "b")
	require.NoError(t, err)

	_, events, err := svc.Cancel(ctx, ev.ID, "b")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, bus.TypeEventRSVPCancelled, events[0].Type)
}

func TestReRSVPAfterCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, nil)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, ev.ID, "u1")
	require.NoError(t, err)
	_, _, err = svc.Cancel(ctx, ev.ID, "u1")
	require.NoError(t, err)

	row, _, err := svc.Create(ctx, ev.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, rsvp.StatusConfirmed, row.Status)

	// One row per (event, user) survives.
	count, err := client.RSVP.Query().Where(rsvp.EventID(ev.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestConcurrentRSVPsRespectCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetMaxAttendees(2) })
	ctx := context.Background()

	users := []string{"a", "b", "c", "d", "e"}
	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			_, _, err := svc.Create(ctx, ev.ID, u)
			assert.NoError(t, err)
		}(u)
	}
	wg.Wait()

	confirmed, err := client.RSVP.Query().
		Where(rsvp.EventID(ev.ID), rsvp.StatusEQ(rsvp.StatusConfirmed)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, confirmed)

	waitlisted, err := client.RSVP.Query().
		Where(rsvp.EventID(ev.ID), rsvp.StatusEQ(rsvp.StatusWaitlisted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, waitlisted, 3)

	seen := map[int]bool{}
	for _, w := range waitlisted {
		require.NotNil(t, w.WaitlistPosition)
		seen[*w.WaitlistPosition] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)
}

func TestConcurrentCancelsPromoteOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRSVPService(client.Client)
	ev := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetMaxAttendees(1) })
	ctx := context.Background()

	_, _, err := svc.Create(ctx, ev.ID, "a")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, ev.ID, "b")
	require.NoError(t, err)

	// Two racing cancels by the same user: one wins, one sees not_found.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, results[i] = svc.Cancel(ctx, ev.ID, "a")
		}(i)
	}
	wg.Wait()

	var ok, notFound int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case err == ErrNotFound:
			notFound++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, notFound)

	confirmed, err := client.RSVP.Query().
		Where(rsvp.EventID(ev.ID), rsvp.StatusEQ(rsvp.StatusConfirmed)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, confirmed, "exactly one promotion")
}
