package slack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

const postTimeout = 10 * time.Second

// Notifier posts sync failure alerts. Satisfies sync.FailureNotifier.
type Notifier struct {
	client *Client
	logger *slog.Logger
}

// NewNotifier creates a notifier over an existing client.
func NewNotifier(client *Client) *Notifier {
	return &Notifier{
		client: client,
		logger: slog.With("component", "slack-notifier"),
	}
}

// SyncFailed posts a short alert for one failed group sync. Posting is
// best effort; a Slack outage must never affect the sync itself.
func (n *Notifier) SyncFailed(ctx context.Context, groupSlug, errMsg string) {
	blocks := BuildSyncFailureMessage(groupSlug, errMsg)
	if err := n.client.PostMessage(ctx, blocks, postTimeout); err != nil {
		n.logger.Error("failed to post sync failure alert", "group", groupSlug, "error", err)
	}
}

// BuildSyncFailureMessage creates Block Kit blocks for a sync failure alert.
func BuildSyncFailureMessage(groupSlug, errMsg string) []goslack.Block {
	text := fmt.Sprintf(":x: *Sync failed* for group `%s`", groupSlug)
	if errMsg != "" {
		text += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(errMsg))
	}
	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
