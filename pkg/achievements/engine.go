package achievements

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/achievement"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/onboardingstep"
	"github.com/gatherhub/gatherhub/ent/userbadge"
	"github.com/gatherhub/gatherhub/ent/userentitlement"
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
	"github.com/gatherhub/gatherhub/pkg/bus"
)

// Engine is a wildcard queue handler. For every domain event attributable
// to a user it auto-completes matching onboarding steps and advances every
// achievement triggered by the event type. All writes are conditional
// updates or insert-or-nothing, so re-delivery is harmless.
type Engine struct {
	client    *ent.Client
	publisher *bus.Publisher
	logger    *slog.Logger

	// Definition cache, scoped to one dispatch batch.
	mu    sync.Mutex
	cache map[string][]*ent.Achievement
}

// NewEngine creates the achievement engine.
func NewEngine(client *ent.Client, publisher *bus.Publisher) *Engine {
	return &Engine{
		client:    client,
		publisher: publisher,
		logger:    slog.With("component", "achievements"),
		cache:     make(map[string][]*ent.Achievement),
	}
}

// BatchStart drops the definition cache. Definitions edited through admin
// tooling become visible on the next batch.
func (e *Engine) BatchStart() {
	e.mu.Lock()
	e.cache = make(map[string][]*ent.Achievement)
	e.mu.Unlock()
}

// Handle processes one domain event.
func (e *Engine) Handle(ctx context.Context, env bus.Envelope) error {
	userID := env.UserID()
	if userID == "" {
		return nil
	}

	if err := e.completeOnboardingSteps(ctx, userID, env.Type); err != nil {
		e.logger.Error("onboarding step completion failed", "user_id", userID, "error", err)
	}

	defs, err := e.definitions(ctx, env.Type)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := e.advance(ctx, userID, def, env); err != nil {
			// Each achievement is processed independently.
			e.logger.Error("achievement progression failed",
				"user_id", userID,
				"achievement", def.Key,
				"error", err)
		}
	}
	return nil
}

// definitions returns the enabled achievements triggered by eventType,
// cached for the current batch.
func (e *Engine) definitions(ctx context.Context, eventType string) ([]*ent.Achievement, error) {
	e.mu.Lock()
	defs, ok := e.cache[eventType]
	e.mu.Unlock()
	if ok {
		return defs, nil
	}

	defs, err := e.client.Achievement.Query().
		Where(achievement.EventType(eventType), achievement.Enabled(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement definitions: %w", err)
	}
	e.mu.Lock()
	e.cache[eventType] = defs
	e.mu.Unlock()
	return defs, nil
}

func (e *Engine) completeOnboardingSteps(ctx context.Context, userID, eventType string) error {
	steps, err := e.client.OnboardingStep.Query().
		Where(onboardingstep.EventKey(eventType), onboardingstep.Enabled(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load onboarding steps: %w", err)
	}
	if len(steps) == 0 {
		return nil
	}

	completedAny := false
	for _, step := range steps {
		exists, err := e.client.UserOnboardingStep.Query().
			Where(useronboardingstep.UserID(userID), useronboardingstep.StepKey(step.Key)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		err = e.client.UserOnboardingStep.Create().
			SetID(uuid.NewString()).
			SetUserID(userID).
			SetStepKey(step.Key).
			SetCompletedAt(time.Now().UTC()).
			Exec(ctx)
		if ent.IsConstraintError(err) {
			continue
		}
		if err != nil {
			return err
		}
		completedAny = true
		e.emit(ctx, bus.New(bus.TypeOnboardingStep, map[string]interface{}{
			"user_id":  userID,
			"step_key": step.Key,
		}, bus.Metadata{UserID: userID, Source: "achievements"}))
	}

	if !completedAny {
		return nil
	}

	// onboarding.completed fires once: on the event that completed the
	// final step.
	enabled, err := e.client.OnboardingStep.Query().
		Where(onboardingstep.Enabled(true)).
		All(ctx)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(enabled))
	for _, step := range enabled {
		keys = append(keys, step.Key)
	}
	done, err := e.client.UserOnboardingStep.Query().
		Where(useronboardingstep.UserID(userID), useronboardingstep.StepKeyIn(keys...)).
		Count(ctx)
	if err != nil {
		return err
	}
	if done == len(keys) {
		e.emit(ctx, bus.New(bus.TypeOnboardingCompleted, map[string]interface{}{
			"user_id": userID,
		}, bus.Metadata{UserID: userID, Source: "achievements"}))
	}
	return nil
}

// advance applies one achievement to one event.
func (e *Engine) advance(ctx context.Context, userID string, def *ent.Achievement, env bus.Envelope) error {
	if !evalConditions(parseConditions(def.Conditions), env.Payload) {
		return nil
	}

	initial := 0
	if def.ProgressMode == achievement.ProgressModeGauge {
		initial = e.gaugeValue(def, env.Payload)
	}

	// Insert-or-nothing keeps the row unique per (user, key) under
	// concurrent deliveries.
	err := e.client.AchievementProgress.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetAchievementKey(def.Key).
		SetCurrentValue(initial).
		SetTargetValue(def.TargetValue).
		OnConflictColumns(achievementprogress.FieldUserID, achievementprogress.FieldAchievementKey).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}

	// Progress moves only while the row is uncompleted; completedAt latches
	// the value.
	update := e.client.AchievementProgress.Update().
		Where(
			achievementprogress.UserID(userID),
			achievementprogress.AchievementKey(def.Key),
			achievementprogress.CompletedAtIsNil(),
		)
	if def.ProgressMode == achievement.ProgressModeGauge {
		update.SetCurrentValue(initial)
	} else {
		update.AddCurrentValue(1)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to advance progress: %w", err)
	}

	row, err := e.client.AchievementProgress.Query().
		Where(achievementprogress.UserID(userID), achievementprogress.AchievementKey(def.Key)).
		Only(ctx)
	if err != nil {
		return err
	}
	if row.CompletedAt != nil || row.CurrentValue < row.TargetValue {
		return nil
	}

	// Conditional latch: only the delivery that flips completedAt runs the
	// completion side effects.
	n, err := e.client.AchievementProgress.Update().
		Where(
			achievementprogress.ID(row.ID),
			achievementprogress.CompletedAtIsNil(),
		).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete progress: %w", err)
	}
	if n == 0 {
		return nil
	}
	return e.onCompleted(ctx, userID, def)
}

// onCompleted runs the completion side effects: unlock event, badge
// auto-award, score recompute, entitlement grant.
func (e *Engine) onCompleted(ctx context.Context, userID string, def *ent.Achievement) error {
	payload := map[string]interface{}{
		"user_id":          userID,
		"achievement_key":  def.Key,
		"achievement_name": def.Name,
		"points":           def.Points,
	}
	if def.Icon != nil {
		payload["icon"] = *def.Icon
	}
	if def.Color != nil {
		payload["color"] = *def.Color
	}
	e.emit(ctx, bus.New(bus.TypeAchievementUnlocked, payload, bus.Metadata{UserID: userID, Source: "achievements"}))

	if def.BadgeSlug != nil && *def.BadgeSlug != "" {
		if err := e.awardBadge(ctx, userID, def, *def.BadgeSlug); err != nil {
			return err
		}
	}
	if def.Entitlement != nil && *def.Entitlement != "" {
		if err := e.grantEntitlement(ctx, userID, *def.Entitlement); err != nil {
			return err
		}
	}
	e.logger.Info("achievement unlocked", "user_id", userID, "achievement", def.Key)
	return nil
}

func (e *Engine) awardBadge(ctx context.Context, userID string, def *ent.Achievement, slug string) error {
	b, err := e.client.Badge.Query().Where(badge.Slug(slug)).Only(ctx)
	if ent.IsNotFound(err) {
		b, err = e.client.Badge.Create().
			SetID(uuid.NewString()).
			SetSlug(slug).
			SetName(def.Name).
			SetPoints(def.Points).
			Save(ctx)
		if ent.IsConstraintError(err) {
			b, err = e.client.Badge.Query().Where(badge.Slug(slug)).Only(ctx)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to resolve badge %s: %w", slug, err)
	}

	awarded, err := insertUserBadge(ctx, e.client, userID, b.ID)
	if err != nil {
		return err
	}
	if !awarded {
		return nil
	}

	e.emit(ctx, bus.New(bus.TypeBadgeIssued, map[string]interface{}{
		"user_id":    userID,
		"badge_id":   b.ID,
		"badge_slug": b.Slug,
		"points":     b.Points,
	}, bus.Metadata{UserID: userID, Source: "achievements"}))

	total, err := PlatformScore(ctx, e.client, userID)
	if err != nil {
		return err
	}
	e.emit(ctx, bus.New(bus.TypeScoreChanged, map[string]interface{}{
		"user_id":     userID,
		"total_score": total,
	}, bus.Metadata{UserID: userID, Source: "achievements"}))
	return nil
}

// insertUserBadge awards the badge if the (user, badge) pair is new.
func insertUserBadge(ctx context.Context, client *ent.Client, userID, badgeID string) (bool, error) {
	exists, err := client.UserBadge.Query().
		Where(userbadge.UserID(userID), userbadge.BadgeID(badgeID)).
		Exist(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	err = client.UserBadge.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetBadgeID(badgeID).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to award badge: %w", err)
	}
	return true, nil
}

func (e *Engine) grantEntitlement(ctx context.Context, userID, entitlement string) error {
	err := e.client.UserEntitlement.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetEntitlement(entitlement).
		OnConflictColumns(userentitlement.FieldUserID, userentitlement.FieldEntitlement).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to grant entitlement %s: %w", entitlement, err)
	}
	return nil
}

// PlatformScore sums the points of the user's platform-wide badges.
// Group-scoped badges do not count toward the score.
func PlatformScore(ctx context.Context, client *ent.Client, userID string) (int, error) {
	badges, err := client.Badge.Query().
		Where(
			badge.GroupIDIsNil(),
			badge.HasUserBadgesWith(userbadge.UserID(userID)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to compute score: %w", err)
	}
	total := 0
	for _, b := range badges {
		total += b.Points
	}
	return total, nil
}

// gaugeValue extracts the gauge snapshot from the payload. Missing or
// non-numeric values read as 0.
func (e *Engine) gaugeValue(def *ent.Achievement, payload map[string]interface{}) int {
	if def.GaugeField == nil || *def.GaugeField == "" {
		return 0
	}
	v, present := extractPath(payload, *def.GaugeField)
	if !present {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return int(f)
}

func (e *Engine) emit(ctx context.Context, env bus.Envelope) {
	if err := e.publisher.Emit(ctx, env); err != nil {
		e.logger.Error("failed to emit event", "type", env.Type, "error", err)
	}
}
