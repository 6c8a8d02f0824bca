// Package sync reconciles upstream platform state into the store. It walks
// a group's active platform connections, fetches canonical events through
// the provider registry, upserts them, and infers deletions for events
// that disappeared upstream.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/synclog"
	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
	"github.com/gatherhub/gatherhub/pkg/providers"
)

const (
	defaultConcurrency = 5
	defaultMaxEvents   = 50
	defaultLogLimit    = 50
)

// FailureNotifier receives sync failures for operator alerting.
type FailureNotifier interface {
	SyncFailed(ctx context.Context, groupSlug, errMsg string)
}

// Service orchestrates group syncs.
type Service struct {
	client    *ent.Client
	registry  *providers.Registry
	publisher *bus.Publisher
	env       *config.Env
	notifier  FailureNotifier
	logger    *slog.Logger
}

// NewService creates the sync service.
func NewService(client *ent.Client, registry *providers.Registry, publisher *bus.Publisher, env *config.Env) *Service {
	return &Service{
		client:    client,
		registry:  registry,
		publisher: publisher,
		env:       env,
		logger:    slog.With("component", "sync"),
	}
}

// SetFailureNotifier installs optional operator alerting for failed
// group syncs. Must be called before any sync runs.
func (s *Service) SetFailureNotifier(n FailureNotifier) {
	s.notifier = n
}

// SyncAllOptions selects and tunes a batch sync.
type SyncAllOptions struct {
	// Concurrency bounds how many group syncs run in flight. Zero means 5.
	Concurrency int
	// GroupIDs restricts the batch; empty means every syncable group.
	GroupIDs []string
	// Force includes groups whose sync_active flag is off.
	Force bool
}

// SyncLogOptions filters GetSyncLogs.
type SyncLogOptions struct {
	Limit   int
	GroupID string
}

// SyncAllGroups syncs the selected groups with a bounded worker pool.
// Per-group results are independent; one failure does not abort the batch.
func (s *Service) SyncAllGroups(ctx context.Context, opts SyncAllOptions) (*models.SyncAllResult, error) {
	start := time.Now()

	query := s.client.Group.Query()
	if !opts.Force {
		query = query.Where(group.SyncActive(true))
	}
	if len(opts.GroupIDs) > 0 {
		query = query.Where(group.IDIn(opts.GroupIDs...))
	}
	groups, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	jobs := make(chan *ent.Group)
	results := make([]models.SyncResult, 0, len(groups))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				res := s.syncGroup(ctx, g)
				mu.Lock()
				results = append(results, *res)
				mu.Unlock()
			}
		}()
	}
	for _, g := range groups {
		jobs <- g
	}
	close(jobs)
	wg.Wait()

	all := &models.SyncAllResult{
		Total:      len(results),
		Results:    results,
		DurationMs: time.Since(start).Milliseconds(),
	}
	var created, updated, deleted int
	for _, r := range results {
		if r.Success {
			all.Succeeded++
		} else {
			all.Failed++
		}
		created += r.EventsCreated
		updated += r.EventsUpdated
		deleted += r.EventsDeleted
	}
	all.Success = all.Failed == 0

	// sync.completed is emitted after all per-group work settles.
	err = s.publisher.Emit(ctx, bus.New(bus.TypeSyncCompleted, map[string]interface{}{
		"groups":         all.Total,
		"succeeded":      all.Succeeded,
		"failed":         all.Failed,
		"events_created": created,
		"events_updated": updated,
		"events_deleted": deleted,
	}, bus.Metadata{Source: "sync"}))
	if err != nil {
		s.logger.Error("failed to publish sync.completed", "error", err)
	}

	s.logger.Info("batch sync finished",
		"groups", all.Total,
		"succeeded", all.Succeeded,
		"failed", all.Failed,
		"duration_ms", all.DurationMs)
	return all, nil
}

// SyncGroup syncs one group by id.
func (s *Service) SyncGroup(ctx context.Context, groupID string) (*models.SyncResult, error) {
	g, err := s.client.Group.Get(ctx, groupID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("group %s not found: %w", groupID, err)
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return s.syncGroup(ctx, g), nil
}

// SyncGroupByUrlname syncs one group by its primary slug.
func (s *Service) SyncGroupByUrlname(ctx context.Context, slug string) (*models.SyncResult, error) {
	g, err := s.client.Group.Query().Where(group.Slug(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("group %s not found: %w", slug, err)
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return s.syncGroup(ctx, g), nil
}

// GetSyncLogs returns recent sync logs, newest first.
func (s *Service) GetSyncLogs(ctx context.Context, opts SyncLogOptions) ([]*ent.SyncLog, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	query := s.client.SyncLog.Query().
		Order(ent.Desc(synclog.FieldStartedAt)).
		Limit(limit)
	if opts.GroupID != "" {
		query = query.Where(synclog.GroupID(opts.GroupID))
	}
	return query.All(ctx)
}

// syncGroup runs the per-connection algorithm for every active connection
// of g and aggregates counts. Errors are packed into the result, never
// raised past here.
func (s *Service) syncGroup(ctx context.Context, g *ent.Group) *models.SyncResult {
	start := time.Now()
	res := &models.SyncResult{
		Success:      true,
		GroupID:      g.ID,
		GroupUrlname: g.Slug,
	}

	connections, err := g.QueryConnections().All(ctx)
	if err != nil {
		res.Success = false
		res.Error = fmt.Sprintf("failed to list connections: %v", err)
		res.DurationMs = time.Since(start).Milliseconds()
		return res
	}

	for _, conn := range connections {
		// Local connections never sync; there is no upstream.
		if !conn.Active || conn.Platform == config.PlatformLocal {
			continue
		}
		// A platform whose credentials are absent is skipped, not failed.
		// The connection stays pending until the operator configures it.
		if a, ok := s.registry.Get(conn.Platform); ok && !a.IsConfigured(s.env) {
			s.logger.Info("skipping unconfigured platform",
				"group", g.Slug, "platform", conn.Platform)
			continue
		}
		created, updated, deleted, err := s.syncConnection(ctx, g, conn)
		res.EventsCreated += created
		res.EventsUpdated += updated
		res.EventsDeleted += deleted
		if err != nil {
			res.Success = false
			res.Error = err.Error()
		}
	}

	now := time.Now().UTC()
	groupUpdate := s.client.Group.UpdateOneID(g.ID).SetLastSyncAt(now)
	if res.Success {
		groupUpdate.ClearLastSyncError()
	} else {
		groupUpdate.SetLastSyncError(res.Error)
	}
	if err := groupUpdate.Exec(ctx); err != nil {
		s.logger.Error("failed to update group sync state", "group", g.Slug, "error", err)
	}

	if !res.Success && s.notifier != nil {
		s.notifier.SyncFailed(ctx, g.Slug, res.Error)
	}

	res.DurationMs = time.Since(start).Milliseconds()
	return res
}

func (s *Service) syncConnection(ctx context.Context, g *ent.Group, conn *ent.PlatformConnection) (created, updated, deleted int, err error) {
	logRow, logErr := s.client.SyncLog.Create().
		SetID(uuid.NewString()).
		SetGroupID(g.ID).
		SetConnectionID(conn.ID).
		SetPlatform(conn.Platform).
		SetStatus(synclog.StatusRunning).
		Save(ctx)
	if logErr != nil {
		return 0, 0, 0, fmt.Errorf("failed to create sync log: %w", logErr)
	}

	fetch, fetchErr := s.registry.FetchEvents(ctx, conn.Platform, conn.PlatformID, s.env, models.FetchOptions{MaxEvents: defaultMaxEvents})
	if fetchErr != nil {
		s.failSync(ctx, logRow.ID, conn.ID, fetchErr)
		return 0, 0, 0, fmt.Errorf("%s fetch failed: %w", conn.Platform, fetchErr)
	}

	if fetch.Group != nil {
		if err := s.updateGroupMetadata(ctx, g.ID, conn.ID, fetch.Group); err != nil {
			s.logger.Error("failed to update group metadata", "group", g.Slug, "error", err)
		}
	}

	seen := make(map[string]struct{}, len(fetch.Events))
	for i := range fetch.Events {
		ev := &fetch.Events[i]
		seen[ev.PlatformID] = struct{}{}

		venueID := ""
		if ev.Venue != nil {
			venueID, err = upsertVenue(ctx, s.client, conn.Platform, ev.Venue)
			if err != nil {
				s.failSync(ctx, logRow.ID, conn.ID, err)
				return created, updated, deleted, err
			}
		}
		wasCreated, _, err := upsertEventByPlatform(ctx, s.client, ev, conn.Platform, g.ID, venueID)
		if err != nil {
			s.failSync(ctx, logRow.ID, conn.ID, err)
			return created, updated, deleted, err
		}
		if wasCreated {
			created++
		} else {
			updated++
		}
	}

	// Deletion inference: future active events that vanished from the
	// response are cancelled. Past events are never inferred-cancelled.
	future, err := listFutureActiveEvents(ctx, s.client, g.ID, conn.Platform)
	if err != nil {
		s.failSync(ctx, logRow.ID, conn.ID, err)
		return created, updated, deleted, err
	}
	for _, row := range future {
		if _, ok := seen[row.PlatformID]; ok {
			continue
		}
		if err := cancelEvent(ctx, s.client, row.ID); err != nil {
			s.failSync(ctx, logRow.ID, conn.ID, err)
			return created, updated, deleted, err
		}
		deleted++
	}

	now := time.Now().UTC()
	err = s.client.SyncLog.UpdateOneID(logRow.ID).
		SetStatus(synclog.StatusSuccess).
		SetCompletedAt(now).
		SetEventsCreated(created).
		SetEventsUpdated(updated).
		SetEventsDeleted(deleted).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to complete sync log", "error", err)
	}
	err = s.client.PlatformConnection.UpdateOneID(conn.ID).
		SetLastSyncAt(now).
		ClearLastError().
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to update connection sync state", "error", err)
	}

	s.logger.Info("synced connection",
		"group", g.Slug,
		"platform", conn.Platform,
		"created", created,
		"updated", updated,
		"deleted", deleted)

	// Suppressed when nothing new was created; a pure refresh is not a
	// domain event.
	if created > 0 {
		err = s.publisher.Emit(ctx, bus.New(bus.TypeEventsSynced, map[string]interface{}{
			"group_id":       g.ID,
			"group_slug":     g.Slug,
			"platform":       conn.Platform,
			"events_created": created,
			"events_updated": updated,
			"events_deleted": deleted,
		}, bus.Metadata{Source: "sync"}))
		if err != nil {
			s.logger.Error("failed to publish events.synced", "error", err)
		}
	}
	return created, updated, deleted, nil
}

func (s *Service) updateGroupMetadata(ctx context.Context, groupID, connID string, meta *models.GroupMetadata) error {
	update := s.client.Group.UpdateOneID(groupID)
	if meta.Name != "" {
		update.SetName(meta.Name)
	}
	if meta.Description != "" {
		update.SetDescription(meta.Description)
	}
	if meta.MemberCount > 0 {
		update.SetMemberCount(meta.MemberCount)
	}
	if meta.PhotoURL != "" {
		update.SetPhotoURL(meta.PhotoURL)
	}
	if err := update.Exec(ctx); err != nil {
		return err
	}
	if meta.URL != "" {
		return s.client.PlatformConnection.UpdateOneID(connID).SetURL(meta.URL).Exec(ctx)
	}
	return nil
}

// failSync records a failed sync attempt on the log and the connection.
func (s *Service) failSync(ctx context.Context, logID, connID string, cause error) {
	msg := cause.Error()
	err := s.client.SyncLog.UpdateOneID(logID).
		SetStatus(synclog.StatusFailed).
		SetCompletedAt(time.Now().UTC()).
		SetErrorMessage(msg).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to mark sync log failed", "error", err)
	}
	err = s.client.PlatformConnection.UpdateOneID(connID).
		SetLastError(msg).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to record connection error", "error", err)
	}
}
