package achievements

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/achievement"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/queuedevent"
	"github.com/gatherhub/gatherhub/ent/userbadge"
	"github.com/gatherhub/gatherhub/ent/userentitlement"
	"github.com/gatherhub/gatherhub/pkg/bus"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func newTestEngine(t *testing.T) (*Engine, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewEngine(client.Client, bus.NewPublisher(client.Client)), client.Client
}

func seedAchievement(t *testing.T, client *ent.Client, key, eventType string, target int, mutate func(*ent.AchievementCreate)) *ent.Achievement {
	t.Helper()
	create := client.Achievement.Create().
		SetID(uuid.NewString()).
		SetKey(key).
		SetName(key).
		SetTargetValue(target).
		SetEventType(eventType)
	if mutate != nil {
		mutate(create)
	}
	a, err := create.Save(context.Background())
	require.NoError(t, err)
	return a
}

func emittedTypes(t *testing.T, client *ent.Client) []string {
	t.Helper()
	rows, err := client.QueuedEvent.Query().Order(ent.Asc(queuedevent.FieldID)).All(context.Background())
	require.NoError(t, err)
	types := make([]string, 0, len(rows))
	for _, r := range rows {
		types = append(types, r.EventType)
	}
	return types
}

func progressRow(t *testing.T, client *ent.Client, userID, key string) *ent.AchievementProgress {
	t.Helper()
	row, err := client.AchievementProgress.Query().
		Where(achievementprogress.UserID(userID), achievementprogress.AchievementKey(key)).
		Only(context.Background())
	require.NoError(t, err)
	return row
}

func TestCounterAchievementUnlocksAndAwardsBadge(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	seedAchievement(t, client, "first_checkin", bus.TypeEventCheckin, 1, func(c *ent.AchievementCreate) {
		c.SetBadgeSlug("first-checkin-badge").SetPoints(10)
	})

	env := bus.New(bus.TypeEventCheckin, map[string]interface{}{"event_id": "e1"}, bus.Metadata{UserID: "u1"})
	require.NoError(t, engine.Handle(ctx, env))

	row := progressRow(t, client, "u1", "first_checkin")
	assert.Equal(t, 1, row.CurrentValue)
	require.NotNil(t, row.CompletedAt)

	// Badge is auto-created and awarded.
	b, err := client.Badge.Query().Where(badge.Slug("first-checkin-badge")).Only(ctx)
	require.NoError(t, err)
	awarded, err := client.UserBadge.Query().
		Where(userbadge.UserID("u1"), userbadge.BadgeID(b.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, awarded)

	types := emittedTypes(t, client)
	assert.Contains(t, types, bus.TypeAchievementUnlocked)
	assert.Contains(t, types, bus.TypeBadgeIssued)
	assert.Contains(t, types, bus.TypeScoreChanged)
}

func TestCounterAchievementRedeliveryIsIdempotentAfterCompletion(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	seedAchievement(t, client, "first_checkin", bus.TypeEventCheckin, 1, nil)

	env := bus.New(bus.TypeEventCheckin, nil, bus.Metadata{UserID: "u1"})
	require.NoError(t, engine.Handle(ctx, env))
	first := progressRow(t, client, "u1", "first_checkin")

	require.NoError(t, engine.Handle(ctx, env))
	second := progressRow(t, client, "u1", "first_checkin")

	// completedAt latches once; progress does not move past completion.
	assert.Equal(t, first.CurrentValue, second.CurrentValue)
	assert.True(t, first.CompletedAt.Equal(*second.CompletedAt))

	unlocked := 0
	for _, typ := range emittedTypes(t, client) {
		if typ == bus.TypeAchievementUnlocked {
			unlocked++
		}
	}
	assert.Equal(t, 1, unlocked)
}

func TestGaugeAchievement(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	seedAchievement(t, client, "score_100", bus.TypeScoreChanged, 100, func(c *ent.AchievementCreate) {
		c.SetProgressMode(achievement.ProgressModeGauge).SetGaugeField("total_score")
	})

	emit := func(score int) {
		env := bus.New(bus.TypeScoreChanged, map[string]interface{}{"total_score": float64(score)}, bus.Metadata{UserID: "u1"})
		require.NoError(t, engine.Handle(ctx, env))
	}

	emit(80)
	row := progressRow(t, client, "u1", "score_100")
	assert.Equal(t, 80, row.CurrentValue)
	assert.Nil(t, row.CompletedAt)

	emit(120)
	row = progressRow(t, client, "u1", "score_100")
	assert.Equal(t, 120, row.CurrentValue)
	require.NotNil(t, row.CompletedAt)
	completedAt := *row.CompletedAt

	// A lower snapshot after completion does not un-complete or decrement.
	emit(50)
	row = progressRow(t, client, "u1", "score_100")
	assert.Equal(t, 120, row.CurrentValue)
	require.NotNil(t, row.CompletedAt)
	assert.True(t, completedAt.Equal(*row.CompletedAt))
}

func TestConditionsGateProgress(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	seedAchievement(t, client, "berlin_regular", bus.TypeEventCheckin, 3, func(c *ent.AchievementCreate) {
		c.SetConditions([]map[string]interface{}{
			{"field": "city", "op": "eq", "value": "Berlin"},
		})
	})

	mismatch := bus.New(bus.TypeEventCheckin, map[string]interface{}{"city": "Hamburg"}, bus.Metadata{UserID: "u1"})
	require.NoError(t, engine.Handle(ctx, mismatch))

	exists, err := client.AchievementProgress.Query().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "non-matching events must not create progress")

	match := bus.New(bus.TypeEventCheckin, map[string]interface{}{"city": "Berlin"}, bus.Metadata{UserID: "u1"})
	require.NoError(t, engine.Handle(ctx, match))
	row := progressRow(t, client, "u1", "berlin_regular")
	assert.Equal(t, 1, row.CurrentValue)
	assert.Nil(t, row.CompletedAt)
}

func TestEntitlementGranted(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	seedAchievement(t, client, "organizer", bus.TypeEventCheckin, 1, func(c *ent.AchievementCreate) {
		c.SetEntitlement("can_create_events")
	})

	env := bus.New(bus.TypeEventCheckin, nil, bus.Metadata{UserID: "u1"})
	require.NoError(t, engine.Handle(ctx, env))
	require.NoError(t, engine.Handle(ctx, env))

	count, err := client.UserEntitlement.Query().
		Where(userentitlement.UserID("u1"), userentitlement.Entitlement("can_create_events")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGroupScopedBadgesExcludedFromScore(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug("go-berlin").
		SetName("Go Berlin").
		Save(ctx)
	require.NoError(t, err)

	platformBadge, err := client.Badge.Create().
		SetID(uuid.NewString()).SetSlug("platform").SetName("Platform").SetPoints(10).
		Save(ctx)
	require.NoError(t, err)
	groupBadge, err := client.Badge.Create().
		SetID(uuid.NewString()).SetSlug("group").SetName("Group").SetPoints(99).SetGroupID(g.ID).
		Save(ctx)
	require.NoError(t, err)

	for _, b := range []*ent.Badge{platformBadge, groupBadge} {
		_, err := insertUserBadge(ctx, client, "u1", b.ID)
		require.NoError(t, err)
	}

	total, err := PlatformScore(ctx, client, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	_ = engine
}

func TestOnboardingStepsAutoComplete(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	for i, key := range []string{"first_rsvp", "first_checkin"} {
		eventKey := bus.TypeEventRSVP
		if key == "first_checkin" {
			eventKey = bus.TypeEventCheckin
		}
		err := client.OnboardingStep.Create().
			SetID(uuid.NewString()).
			SetKey(key).
			SetName(key).
			SetEventKey(eventKey).
			SetSortOrder(i).
			Exec(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, engine.Handle(ctx, bus.New(bus.TypeEventRSVP, nil, bus.Metadata{UserID: "u1"})))
	types := emittedTypes(t, client)
	assert.Contains(t, types, bus.TypeOnboardingStep)
	assert.NotContains(t, types, bus.TypeOnboardingCompleted)

	require.NoError(t, engine.Handle(ctx, bus.New(bus.TypeEventCheckin, nil, bus.Metadata{UserID: "u1"})))
	assert.Contains(t, emittedTypes(t, client), bus.TypeOnboardingCompleted)

	// Redelivery completes nothing new and emits nothing new.
	before := len(emittedTypes(t, client))
	require.NoError(t, engine.Handle(ctx, bus.New(bus.TypeEventCheckin, nil, bus.Metadata{UserID: "u1"})))
	assert.Equal(t, before, len(emittedTypes(t, client)))
}

func TestEventsWithoutUserAreIgnored(t *testing.T) {
	engine, client := newTestEngine(t)
	seedAchievement(t, client, "first_checkin", bus.TypeEventCheckin, 1, nil)

	require.NoError(t, engine.Handle(context.Background(), bus.New(bus.TypeEventCheckin, nil, bus.Metadata{})))

	exists, err := client.AchievementProgress.Query().Exist(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBatchCacheDropsOnBatchStart(t *testing.T) {
	engine, client := newTestEngine(t)
	ctx := context.Background()

	env := bus.New(bus.TypeEventCheckin, nil, bus.Metadata{UserID: "u1"})
	require.NoError(t, engine.Handle(ctx, env))

	// Definition added mid-batch is invisible until the next batch.
	seedAchievement(t, client, "late", bus.TypeEventCheckin, 1, nil)
	require.NoError(t, engine.Handle(ctx, env))
	exists, err := client.AchievementProgress.Query().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	engine.BatchStart()
	require.NoError(t, engine.Handle(ctx, env))
	row := progressRow(t, client, "u1", "late")
	assert.Equal(t, 1, row.CurrentValue)
}
