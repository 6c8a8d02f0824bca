package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/pkg/services"
)

// RegisterCoreResources wires the read-only resource URIs.
//
//	gatherhub://groups          directory listing (exact)
//	gatherhub://groups/{slug}   one group with connections (template)
//	gatherhub://events/{id}     one event (template)
func RegisterCoreResources(reg *Registry, catalog *services.CatalogService) {
	reg.RegisterResource(&Resource{
		URI:         "gatherhub://groups",
		Name:        "Group directory",
		Description: "All displayed community groups.",
		MimeType:    "application/json",
		Handler: func(ctx context.Context, uri string, _ map[string]string) (*ResourceContents, error) {
			groups, err := catalog.ListGroups(ctx)
			if err != nil {
				return nil, err
			}
			return jsonContents(uri, groupSummaries(groups))
		},
	})

	reg.RegisterTemplate(&ResourceTemplate{
		URITemplate: "gatherhub://groups/{slug}",
		Name:        "Group detail",
		Description: "One group by slug, including platform connections.",
		MimeType:    "application/json",
		Handler: func(ctx context.Context, uri string, params map[string]string) (*ResourceContents, error) {
			g, err := catalog.GetGroupBySlug(ctx, params["slug"])
			if err != nil {
				return nil, err
			}
			conns, err := catalog.ListConnections(ctx, g.ID)
			if err != nil {
				return nil, err
			}
			return jsonContents(uri, groupDetail(g, conns))
		},
	})

	reg.RegisterTemplate(&ResourceTemplate{
		URITemplate: "gatherhub://events/{id}",
		Name:        "Event detail",
		Description: "One event by id.",
		MimeType:    "application/json",
		Scope:       scope(ScopeReadEvents),
		Handler: func(ctx context.Context, uri string, params map[string]string) (*ResourceContents, error) {
			ev, err := catalog.GetEvent(ctx, params["id"])
			if err != nil {
				return nil, err
			}
			return jsonContents(uri, eventSummaries([]*ent.Event{ev})[0])
		},
	})
}

func jsonContents(uri string, v interface{}) (*ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}
	return &ResourceContents{
		URI:      uri,
		MimeType: "application/json",
		Text:     string(data),
	}, nil
}
