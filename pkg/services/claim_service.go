package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/achievement"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/userbadge"
	"github.com/gatherhub/gatherhub/pkg/bus"
)

// ClaimService redeems badge claim codes. A claim checks the code's
// expiry and use budget, awards the badge once per user, and optionally
// force-completes a linked achievement or emits a custom domain event.
//
// The claim link row is locked FOR UPDATE for the whole transaction, so
// a concurrent burst on a limited code cannot exceed maxUses.
type ClaimService struct {
	client *ent.Client
}

// NewClaimService creates a new ClaimService
func NewClaimService(client *ent.Client) *ClaimService {
	return &ClaimService{client: client}
}

// Claim redeems a code for a user.
//
// Fails with ErrNotFound for an unknown code, ErrGone when the code is
// expired or exhausted, and ErrConflict when the user already holds the
// badge.
func (s *ClaimService) Claim(ctx context.Context, code, userID string) (*ent.Badge, []bus.Envelope, error) {
	if userID == "" {
		return nil, nil, NewValidationError("user_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	link, err := tx.BadgeClaimLink.Query().
		Where(badgeclaimlink.Code(code)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to query claim link: %w", err)
	}

	if link.ExpiresAt != nil && time.Now().After(*link.ExpiresAt) {
		return nil, nil, ErrGone
	}
	if link.MaxUses != nil && link.CurrentUses >= *link.MaxUses {
		return nil, nil, ErrGone
	}

	b, err := tx.Badge.Get(ctx, link.BadgeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load badge: %w", err)
	}

	exists, err := tx.UserBadge.Query().
		Where(userbadge.UserID(userID), userbadge.BadgeID(b.ID)).
		Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query user badge: %w", err)
	}
	if exists {
		return nil, nil, ErrConflict
	}

	err = tx.UserBadge.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetBadgeID(b.ID).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, ErrConflict
		}
		return nil, nil, fmt.Errorf("failed to award badge: %w", err)
	}

	// The guard predicate is redundant under the row lock but keeps the
	// use budget safe if the locking ever changes.
	n, err := tx.BadgeClaimLink.Update().
		Where(badgeclaimlink.ID(link.ID), underUseBudget).
		AddCurrentUses(1).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to increment claim uses: %w", err)
	}
	if n == 0 {
		return nil, nil, ErrGone
	}

	events := []bus.Envelope{
		bus.New(bus.TypeBadgeClaimed, map[string]interface{}{
			"badge_id":      b.ID,
			"badge_slug":    b.Slug,
			"claim_link_id": link.ID,
		}, bus.Metadata{UserID: userID, Source: "claims"}),
	}

	if link.AchievementKey != nil {
		unlocked, err := forceCompleteAchievement(ctx, tx, userID, *link.AchievementKey)
		if err != nil {
			return nil, nil, err
		}
		events = append(events, unlocked...)
	}

	if link.EventType != nil {
		payload := map[string]interface{}{}
		for k, v := range link.EventPayload {
			payload[k] = v
		}
		payload["user_id"] = userID
		payload["badge_id"] = b.ID
		payload["badge_slug"] = b.Slug
		events = append(events, bus.New(*link.EventType, payload, bus.Metadata{UserID: userID, Source: "claims"}))
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return b, events, nil
}

// underUseBudget admits claim links with unlimited or remaining uses.
func underUseBudget(s *sql.Selector) {
	s.Where(sql.Or(
		sql.IsNull(s.C(badgeclaimlink.FieldMaxUses)),
		sql.ColumnsLT(s.C(badgeclaimlink.FieldCurrentUses), s.C(badgeclaimlink.FieldMaxUses)),
	))
}

// forceCompleteAchievement upserts the user's progress at the target
// value and latches completion. Emits achievement.unlocked only when
// this claim wins the latch; unknown or disabled keys are skipped.
func forceCompleteAchievement(ctx context.Context, tx *ent.Tx, userID, key string) ([]bus.Envelope, error) {
	def, err := tx.Achievement.Query().
		Where(achievement.Key(key), achievement.Enabled(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query achievement: %w", err)
	}

	err = tx.AchievementProgress.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetAchievementKey(key).
		SetCurrentValue(0).
		SetTargetValue(def.TargetValue).
		OnConflictColumns(achievementprogress.FieldUserID, achievementprogress.FieldAchievementKey).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert achievement progress: %w", err)
	}

	n, err := tx.AchievementProgress.Update().
		Where(
			achievementprogress.UserID(userID),
			achievementprogress.AchievementKey(key),
			achievementprogress.CompletedAtIsNil(),
		).
		SetCurrentValue(def.TargetValue).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete achievement: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

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
	return []bus.Envelope{
		bus.New(bus.TypeAchievementUnlocked, payload, bus.Metadata{UserID: userID, Source: "claims"}),
	}, nil
}
