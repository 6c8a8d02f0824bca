package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/favorite"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/pkg/bus"
)

// FavoritesService manages user favorites on groups, unique per
// (user, group). Add is idempotent; remove is strict and emits only when
// a row was actually deleted, so handlers that re-aggregate counts never
// see phantom removals.
type FavoritesService struct {
	client *ent.Client
}

// NewFavoritesService creates a new FavoritesService
func NewFavoritesService(client *ent.Client) *FavoritesService {
	return &FavoritesService{client: client}
}

// Add favorites a group by slug. When the favorite already exists the
// call succeeds with alreadyExisted=true and no domain event.
func (s *FavoritesService) Add(ctx context.Context, userID, groupSlug string) (alreadyExisted bool, events []bus.Envelope, err error) {
	if userID == "" {
		return false, nil, NewValidationError("user_id", "required")
	}

	g, err := s.client.Group.Query().
		Where(group.Slug(groupSlug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil, ErrNotFound
		}
		return false, nil, fmt.Errorf("failed to query group: %w", err)
	}

	err = s.client.Favorite.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetGroupID(g.ID).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return true, nil, nil
		}
		return false, nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	events = []bus.Envelope{
		bus.New(bus.TypeFavoriteAdded, map[string]interface{}{
			"group_id":   g.ID,
			"group_slug": g.Slug,
		}, bus.Metadata{UserID: userID, Source: "favorites"}),
	}
	return false, events, nil
}

// Remove unfavorites a group by slug. Removing a group that was never
// favorited is a no-op with no domain event.
func (s *FavoritesService) Remove(ctx context.Context, userID, groupSlug string) ([]bus.Envelope, error) {
	g, err := s.client.Group.Query().
		Where(group.Slug(groupSlug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query group: %w", err)
	}

	n, err := s.client.Favorite.Delete().
		Where(favorite.UserID(userID), favorite.GroupID(g.ID)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete favorite: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	events := []bus.Envelope{
		bus.New(bus.TypeFavoriteRemoved, map[string]interface{}{
			"group_id":   g.ID,
			"group_slug": g.Slug,
		}, bus.Metadata{UserID: userID, Source: "favorites"}),
	}
	return events, nil
}

// ListForUser returns the groups a user has favorited, newest first.
func (s *FavoritesService) ListForUser(ctx context.Context, userID string) ([]*ent.Group, error) {
	favorites, err := s.client.Favorite.Query().
		Where(favorite.UserID(userID)).
		Order(ent.Desc(favorite.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.GroupID)
	}
	groups, err := s.client.Group.Query().
		Where(group.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorited groups: %w", err)
	}

	// Preserve favorite order.
	byID := make(map[string]*ent.Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}
	ordered := make([]*ent.Group, 0, len(groups))
	for _, f := range favorites {
		if g, ok := byID[f.GroupID]; ok {
			ordered = append(ordered, g)
		}
	}
	return ordered, nil
}

// CountForGroup returns the favorite count for a group.
func (s *FavoritesService) CountForGroup(ctx context.Context, groupID string) (int, error) {
	return s.client.Favorite.Query().
		Where(favorite.GroupID(groupID)).
		Count(ctx)
}
