package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gatherhub/gatherhub/pkg/services"
)

// RegisterCorePrompts wires the prompt templates.
func RegisterCorePrompts(reg *Registry, catalog *services.CatalogService) {
	reg.RegisterPrompt(&Prompt{
		Name:        "event_announcement",
		Description: "Draft a social announcement for one event.",
		Arguments: []PromptArgument{
			{Name: "event_id", Description: "Event to announce", Required: true},
			{Name: "tone", Description: "Writing tone, e.g. casual or formal"},
		},
		Handler: func(ctx context.Context, args map[string]string) (*PromptResult, error) {
			ev, err := catalog.GetEvent(ctx, args["event_id"])
			if err != nil {
				return nil, err
			}
			tone := args["tone"]
			if tone == "" {
				tone = "friendly"
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Write a %s announcement for this community event.\n\n", tone)
			fmt.Fprintf(&b, "Title: %s\n", ev.Title)
			fmt.Fprintf(&b, "Starts: %s (%s)\n", ev.StartTime.Format(time.RFC1123), ev.Timezone)
			fmt.Fprintf(&b, "Link: %s\n", ev.EventURL)
			if ev.Description != nil {
				fmt.Fprintf(&b, "\nDescription:\n%s\n", *ev.Description)
			}

			return &PromptResult{
				Description: "Event announcement draft request",
				Messages: []PromptMessage{
					{Role: "user", Content: TextContent{Type: "text", Text: b.String()}},
				},
			}, nil
		},
	})

	reg.RegisterPrompt(&Prompt{
		Name:        "group_digest",
		Description: "Summarize a group's upcoming events as a digest.",
		Arguments: []PromptArgument{
			{Name: "group_slug", Description: "Group to summarize", Required: true},
		},
		Handler: func(ctx context.Context, args map[string]string) (*PromptResult, error) {
			slug := args["group_slug"]
			g, err := catalog.GetGroupBySlug(ctx, slug)
			if err != nil {
				return nil, err
			}
			events, err := catalog.ListEvents(ctx, services.EventFilter{GroupSlug: slug, UpcomingOnly: true})
			if err != nil {
				return nil, err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Write a short digest of upcoming events for the group %q.\n\n", g.Name)
			if len(events) == 0 {
				b.WriteString("There are no upcoming events scheduled.\n")
			}
			for _, ev := range events {
				fmt.Fprintf(&b, "- %s on %s (%s)\n", ev.Title, ev.StartTime.Format("Mon 2 Jan 15:04"), ev.EventURL)
			}

			return &PromptResult{
				Description: "Group digest request",
				Messages: []PromptMessage{
					{Role: "user", Content: TextContent{Type: "text", Text: b.String()}},
				},
			}, nil
		},
	})
}
