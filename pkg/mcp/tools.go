package mcp

import (
	"context"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/pkg/services"
	"github.com/gatherhub/gatherhub/pkg/sync"
)

// Scopes accepted by the MCP tools.
const (
	ScopeReadEvents = "read:events"
	ScopeReadRSVPs  = "read:rsvps"
	ScopeAdminSync  = "admin:sync"
	ScopeAdminUsers = "admin:users"
)

func scope(s string) *string { return &s }

// RegisterCoreTools wires the platform tools into the registry.
// Called once from the composition root before Freeze.
func RegisterCoreTools(reg *Registry, catalog *services.CatalogService, rsvps *services.RSVPService, syncSvc *sync.Service) {
	reg.RegisterTool(&Tool{
		Name:        "events_list",
		Description: "List active events, optionally filtered to one group or to upcoming events only.",
		Scope:       scope(ScopeReadEvents),
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"group_slug": {Type: "string", Description: "Filter to one group by slug"},
				"upcoming":   {Type: "boolean", Description: "Only events starting in the future"},
				"limit":      {Type: "integer", Description: "Maximum rows, default 50"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, _ Auth) (*ToolResult, error) {
			filter := services.EventFilter{}
			if slug, ok := args["group_slug"].(string); ok {
				filter.GroupSlug = slug
			}
			if up, ok := args["upcoming"].(bool); ok {
				filter.UpcomingOnly = up
			}
			if limit, ok := args["limit"].(float64); ok {
				filter.Limit = int(limit)
			}
			events, err := catalog.ListEvents(ctx, filter)
			if err == services.ErrNotFound {
				return Errorf("group not found: %s", filter.GroupSlug), nil
			}
			if err != nil {
				return nil, err
			}
			return JSONResult(eventSummaries(events)), nil
		},
	})

	reg.RegisterTool(&Tool{
		Name:        "groups_list",
		Description: "List the community groups in the public directory.",
		InputSchema: &jsonschema.Schema{Type: "object"},
		Handler: func(ctx context.Context, _ map[string]interface{}, _ Auth) (*ToolResult, error) {
			groups, err := catalog.ListGroups(ctx)
			if err != nil {
				return nil, err
			}
			return JSONResult(groupSummaries(groups)), nil
		},
	})

	reg.RegisterTool(&Tool{
		Name:        "group_get",
		Description: "Fetch one group by slug, including its platform connections.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"slug": {Type: "string"},
			},
			Required: []string{"slug"},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, _ Auth) (*ToolResult, error) {
			slug, _ := args["slug"].(string)
			g, err := catalog.GetGroupBySlug(ctx, slug)
			if err == services.ErrNotFound {
				return Errorf("group not found: %s", slug), nil
			}
			if err != nil {
				return nil, err
			}
			conns, err := catalog.ListConnections(ctx, g.ID)
			if err != nil {
				return nil, err
			}
			return JSONResult(groupDetail(g, conns)), nil
		},
	})

	reg.RegisterTool(&Tool{
		Name:        "rsvps_list",
		Description: "List the active RSVPs for one event.",
		Scope:       scope(ScopeReadRSVPs),
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"event_id": {Type: "string"},
			},
			Required: []string{"event_id"},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, _ Auth) (*ToolResult, error) {
			eventID, _ := args["event_id"].(string)
			rows, err := rsvps.ListByEvent(ctx, eventID)
			if err != nil {
				return nil, err
			}
			out := make([]map[string]interface{}, 0, len(rows))
			for _, r := range rows {
				entry := map[string]interface{}{
					"user_id": r.UserID,
					"status":  r.Status,
					"rsvp_at": r.RsvpAt.Format(time.RFC3339),
				}
				if r.WaitlistPosition != nil {
					entry["waitlist_position"] = *r.WaitlistPosition
				}
				out = append(out, entry)
			}
			return JSONResult(out), nil
		},
	})

	reg.RegisterTool(&Tool{
		Name:        "sync_trigger",
		Description: "Trigger a sync for one group by slug, or for all groups.",
		Scope:       scope(ScopeAdminSync),
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"group_slug": {Type: "string", Description: "Sync only this group"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, _ Auth) (*ToolResult, error) {
			if slug, ok := args["group_slug"].(string); ok && slug != "" {
				result, err := syncSvc.SyncGroupByUrlname(ctx, slug)
				if err == services.ErrNotFound || ent.IsNotFound(err) {
					return Errorf("group not found: %s", slug), nil
				}
				if err != nil {
					return nil, err
				}
				return JSONResult(result), nil
			}
			result, err := syncSvc.SyncAllGroups(ctx, sync.SyncAllOptions{})
			if err != nil {
				return nil, err
			}
			return JSONResult(result), nil
		},
	})

	reg.RegisterTool(&Tool{
		Name:        "admin_list_users",
		Description: "List platform users, newest first.",
		Scope:       scope(ScopeAdminUsers),
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"limit": {Type: "integer"},
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, _ Auth) (*ToolResult, error) {
			limit := 0
			if v, ok := args["limit"].(float64); ok {
				limit = int(v)
			}
			users, err := catalog.ListUsers(ctx, limit)
			if err != nil {
				return nil, err
			}
			out := make([]map[string]interface{}, 0, len(users))
			for _, u := range users {
				out = append(out, map[string]interface{}{
					"id":       u.ID,
					"username": u.Username,
					"role":     u.Role,
				})
			}
			return JSONResult(out), nil
		},
	})
}

func eventSummaries(events []*ent.Event) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(events))
	for _, ev := range events {
		entry := map[string]interface{}{
			"id":         ev.ID,
			"title":      ev.Title,
			"platform":   ev.Platform,
			"event_url":  ev.EventURL,
			"start_time": ev.StartTime.Format(time.RFC3339),
			"status":     ev.Status,
			"event_type": ev.EventType,
			"rsvp_count": ev.RsvpCount,
		}
		if ev.MaxAttendees != nil {
			entry["max_attendees"] = *ev.MaxAttendees
		}
		out = append(out, entry)
	}
	return out
}

func groupSummaries(groups []*ent.Group) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		out = append(out, map[string]interface{}{
			"slug":         g.Slug,
			"name":         g.Name,
			"member_count": g.MemberCount,
			"featured":     g.Featured,
		})
	}
	return out
}

func groupDetail(g *ent.Group, conns []*ent.PlatformConnection) map[string]interface{} {
	connections := make([]map[string]interface{}, 0, len(conns))
	for _, c := range conns {
		entry := map[string]interface{}{
			"platform": c.Platform,
			"slug":     c.Slug,
			"active":   c.Active,
		}
		if c.URL != nil {
			entry["url"] = *c.URL
		}
		connections = append(connections, entry)
	}
	detail := map[string]interface{}{
		"slug":         g.Slug,
		"name":         g.Name,
		"member_count": g.MemberCount,
		"featured":     g.Featured,
		"tags":         g.Tags,
		"connections":  connections,
	}
	if g.Description != nil {
		detail["description"] = *g.Description
	}
	return detail
}
