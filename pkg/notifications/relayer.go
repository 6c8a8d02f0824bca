// Package notifications relays domain events to the live push surface.
// Personal event types become per-user messages; favorite changes become
// platform-wide broadcast messages with a recomputed count.
package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/favorite"
	"github.com/gatherhub/gatherhub/pkg/bus"
)

// PushSender is the real-time surface the relayer writes to.
// Implemented by realtime.Pusher.
type PushSender interface {
	PushUser(ctx context.Context, userID string, message map[string]interface{}) error
	PushBroadcast(ctx context.Context, message map[string]interface{}) error
}

// Relayer is a wildcard queue handler. Event types without a mapping are
// ignored; push failures are logged, never returned, so the queue batch
// is not retried for a disconnected client.
type Relayer struct {
	client *ent.Client
	pusher PushSender
	logger *slog.Logger
}

func NewRelayer(client *ent.Client, pusher PushSender) *Relayer {
	return &Relayer{
		client: client,
		pusher: pusher,
		logger: slog.With("component", "notifications"),
	}
}

// Handle routes one domain event to the push surface.
func (r *Relayer) Handle(ctx context.Context, env bus.Envelope) error {
	switch env.Type {
	case bus.TypeFavoriteAdded, bus.TypeFavoriteRemoved:
		return r.broadcastFavoriteCount(ctx, env)
	}

	message, ok := personalMessage(env)
	if !ok {
		return nil
	}
	userID := env.UserID()
	if userID == "" {
		return nil
	}
	if err := r.pusher.PushUser(ctx, userID, message); err != nil {
		r.logger.Warn("failed to push personal message",
			"type", env.Type, "user_id", userID, "error", err)
	}
	return nil
}

// personalMessage maps an event to its fixed client-facing shape.
// Client payloads use camelCase keys.
func personalMessage(env bus.Envelope) (map[string]interface{}, bool) {
	p := env.Payload
	switch env.Type {
	case bus.TypeAchievementUnlocked:
		return map[string]interface{}{
			"type":            env.Type,
			"userId":          env.UserID(),
			"achievementKey":  p["achievement_key"],
			"achievementName": p["achievement_name"],
			"icon":            p["icon"],
			"color":           p["color"],
			"points":          p["points"],
		}, true
	case bus.TypeBadgeIssued:
		return map[string]interface{}{
			"type":      env.Type,
			"userId":    env.UserID(),
			"badgeId":   p["badge_id"],
			"badgeSlug": p["badge_slug"],
			"points":    p["points"],
		}, true
	case bus.TypeBadgeClaimed:
		return map[string]interface{}{
			"type":      env.Type,
			"userId":    env.UserID(),
			"badgeId":   p["badge_id"],
			"badgeSlug": p["badge_slug"],
		}, true
	case bus.TypeScoreChanged:
		return map[string]interface{}{
			"type":       env.Type,
			"userId":     env.UserID(),
			"totalScore": p["total_score"],
		}, true
	case bus.TypeEventRSVP:
		return map[string]interface{}{
			"type":                 env.Type,
			"userId":               env.UserID(),
			"eventId":              p["event_id"],
			"status":               p["status"],
			"promotedFromWaitlist": p["promoted_from_waitlist"] == true,
		}, true
	case bus.TypeEventRSVPCancelled:
		return map[string]interface{}{
			"type":    env.Type,
			"userId":  env.UserID(),
			"eventId": p["event_id"],
		}, true
	case bus.TypeOnboardingStep:
		return map[string]interface{}{
			"type":    env.Type,
			"userId":  env.UserID(),
			"stepKey": p["step_key"],
		}, true
	case bus.TypeOnboardingCompleted:
		return map[string]interface{}{
			"type":   env.Type,
			"userId": env.UserID(),
		}, true
	}
	return nil, false
}

// broadcastFavoriteCount recomputes the group's favorite count and pushes
// it to the broadcast channel. The count is re-read rather than adjusted
// so redelivered events self-correct.
func (r *Relayer) broadcastFavoriteCount(ctx context.Context, env bus.Envelope) error {
	groupID, _ := env.Payload["group_id"].(string)
	groupSlug, _ := env.Payload["group_slug"].(string)
	if groupID == "" {
		return nil
	}

	count, err := r.client.Favorite.Query().
		Where(favorite.GroupID(groupID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count favorites: %w", err)
	}

	message := map[string]interface{}{
		"type":          "favorite.count_changed",
		"groupSlug":     groupSlug,
		"favoriteCount": count,
	}
	if err := r.pusher.PushBroadcast(ctx, message); err != nil {
		r.logger.Warn("failed to push favorite count",
			"group_slug", groupSlug, "error", err)
	}
	return nil
}
