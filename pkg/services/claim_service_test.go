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
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/userbadge"
	"github.com/gatherhub/gatherhub/pkg/bus"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func seedClaimLink(t *testing.T, client *ent.Client, code string, mutate func(*ent.BadgeClaimLinkCreate)) (*ent.Badge, *ent.BadgeClaimLink) {
	t.Helper()
	ctx := context.Background()
	b, err := client.Badge.Create().
		SetID(uuid.NewString()).
		SetSlug("speaker-" + uuid.NewString()[:8]).
		SetName("Speaker").
		SetPoints(25).
		Save(ctx)
	require.NoError(t, err)

	create := client.BadgeClaimLink.Create().
		SetID(uuid.NewString()).
		SetCode(code).
		SetBadgeID(b.ID)
	if mutate != nil {
		mutate(create)
	}
	link, err := create.Save(ctx)
	require.NoError(t, err)
	return b, link
}

func TestClaimAwardsBadge(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewClaimService(client.Client)
	b, link := seedClaimLink(t, client.Client, "SPEAK2026", nil)
	ctx := context.Background()

	got, events, err := svc.Claim(ctx, "SPEAK2026", "u1")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	require.Len(t, events, 1)
	assert.Equal(t, bus.TypeBadgeClaimed, events[0].Type)
	assert.Equal(t, b.Slug, events[0].Payload["badge_slug"])
	assert.Equal(t, "u1", events[0].Metadata.UserID)

	awarded, err := client.UserBadge.Query().
		Where(userbadge.UserID("u1"), userbadge.BadgeID(b.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, awarded)

	refreshed, err := client.BadgeClaimLink.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.CurrentUses)
}

func TestClaimErrors(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewClaimService(client.Client)
	ctx := context.Background()

	_, _, err := svc.Claim(ctx, "NOPE", "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	seedClaimLink(t, client.Client, "EXPIRED", func(c *ent.BadgeClaimLinkCreate) {
		c.SetExpiresAt(time.Now().Add(-time.Hour))
	})
	_, _, err = svc.Claim(ctx, "EXPIRED", "u1")
	assert.ErrorIs(t, err, ErrGone)

	seedClaimLink(t, client.Client, "TWICE", nil)
	_, _, err = svc.Claim(ctx, "TWICE", "u1")
	require.NoError(t, err)
	_, _, err = svc.Claim(ctx, "TWICE", "u1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClaimExhaustion(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewClaimService(client.Client)
	_, link := seedClaimLink(t, client.Client, "ONEUSE", func(c *ent.BadgeClaimLinkCreate) {
		c.SetMaxUses(1)
	})
	ctx := context.Background()

	// Two concurrent claims by different users: exactly one wins.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, user := range []string{"u1", "u2"} {
		wg.Add(1)
		go func(i int, user string) {
			defer wg.Done()
			_, _, results[i] = svc.Claim(ctx, "ONEUSE", user)
		}(i, user)
	}
	wg.Wait()

	var ok, gone int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case err == ErrGone:
			gone++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, gone)

	refreshed, err := client.BadgeClaimLink.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.CurrentUses)
}

func TestClaimForceCompletesAchievement(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewClaimService(client.Client)
	ctx := context.Background()

	err := client.Achievement.Create().
		SetID(uuid.NewString()).
		SetKey("conference_speaker").
		SetName("Conference Speaker").
		SetTargetValue(5).
		SetPoints(50).
		Exec(ctx)
	require.NoError(t, err)

	seedClaimLink(t, client.Client, "TALK", func(c *ent.BadgeClaimLinkCreate) {
		c.SetAchievementKey("conference_speaker")
	})

	_, events, err := svc.Claim(ctx, "TALK", "u1")
	require.NoError(t, err)

	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, bus.TypeAchievementUnlocked)

	row, err := client.AchievementProgress.Query().
		Where(achievementprogress.UserID("u1"), achievementprogress.AchievementKey("conference_speaker")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, row.CurrentValue, "forced to target")
	assert.NotNil(t, row.CompletedAt)
}

func TestClaimEmitsCustomEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewClaimService(client.Client)
	ctx := context.Background()

	b, _ := seedClaimLink(t, client.Client, "PARTY", func(c *ent.BadgeClaimLinkCreate) {
		c.SetEventType("event.checkin").
			SetEventPayload(map[string]interface{}{"city": "Berlin"})
	})

	_, events, err := svc.Claim(ctx, "PARTY", "u1")
	require.NoError(t, err)
	require.Len(t, events, 2)

	custom := events[1]
	assert.Equal(t, "event.checkin", custom.Type)
	// Custom payload merged with claim identity fields.
	assert.Equal(t, "Berlin", custom.Payload["city"])
	assert.Equal(t, "u1", custom.Payload["user_id"])
	assert.Equal(t, b.ID, custom.Payload["badge_id"])
	assert.Equal(t, b.Slug, custom.Payload["badge_slug"])
}
