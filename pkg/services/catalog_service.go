package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/platformconnection"
	"github.com/gatherhub/gatherhub/ent/user"
)

const defaultListLimit = 50

// CatalogService serves the read side shared by the HTTP API and the
// MCP tools: group and event listings, group detail with connections.
type CatalogService struct {
	client *ent.Client
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(client *ent.Client) *CatalogService {
	return &CatalogService{client: client}
}

// EventFilter narrows ListEvents. Zero values mean "no filter".
type EventFilter struct {
	GroupSlug    string
	UpcomingOnly bool
	Limit        int
}

// ListEvents returns active events ordered by start time.
func (s *CatalogService) ListEvents(ctx context.Context, filter EventFilter) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(event.StatusEQ(event.StatusActive))

	if filter.GroupSlug != "" {
		g, err := s.GetGroupBySlug(ctx, filter.GroupSlug)
		if err != nil {
			return nil, err
		}
		q = q.Where(event.GroupID(g.ID))
	}
	if filter.UpcomingOnly {
		q = q.Where(event.StartTimeGT(time.Now()))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}

	events, err := q.Order(ent.Asc(event.FieldStartTime)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetEvent returns one event by id.
func (s *CatalogService) GetEvent(ctx context.Context, id string) (*ent.Event, error) {
	ev, err := s.client.Event.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return ev, nil
}

// ListGroups returns displayed groups in name order.
func (s *CatalogService) ListGroups(ctx context.Context) ([]*ent.Group, error) {
	groups, err := s.client.Group.Query().
		Where(group.Display(true)).
		Order(ent.Asc(group.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// GetGroupBySlug returns one group by its primary slug.
func (s *CatalogService) GetGroupBySlug(ctx context.Context, slug string) (*ent.Group, error) {
	g, err := s.client.Group.Query().
		Where(group.Slug(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return g, nil
}

// ListConnections returns a group's platform connections.
func (s *CatalogService) ListConnections(ctx context.Context, groupID string) ([]*ent.PlatformConnection, error) {
	conns, err := s.client.PlatformConnection.Query().
		Where(platformconnection.GroupID(groupID)).
		Order(ent.Asc(platformconnection.FieldPlatform)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return conns, nil
}

// ListUsers returns users newest first, admin surface only.
func (s *CatalogService) ListUsers(ctx context.Context, limit int) ([]*ent.User, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	users, err := s.client.User.Query().
		Order(ent.Desc(user.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
