package bus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatherhub/gatherhub/ent"
)

// Publisher enqueues domain events for background delivery. The insert is
// the durability boundary: once Emit returns nil the event survives a
// process restart.
type Publisher struct {
	client *ent.Client
	logger *slog.Logger
}

// NewPublisher creates a publisher backed by the queued_events table.
func NewPublisher(client *ent.Client) *Publisher {
	return &Publisher{
		client: client,
		logger: slog.With("component", "bus.publisher"),
	}
}

// Emit enqueues one envelope. The caller's timestamp is preserved exactly;
// a zero timestamp is stamped at enqueue.
func (p *Publisher) Emit(ctx context.Context, env Envelope) error {
	if env.Type == "" {
		return fmt.Errorf("cannot emit event with empty type")
	}
	ts := env.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	metadata := map[string]interface{}{}
	if env.Metadata.UserID != "" {
		metadata["user_id"] = env.Metadata.UserID
	}
	if env.Metadata.Source != "" {
		metadata["source"] = env.Metadata.Source
	}

	create := p.client.QueuedEvent.Create().
		SetEventType(env.Type).
		SetPayload(env.Payload).
		SetEventTimestamp(ts)
	if len(metadata) > 0 {
		create.SetMetadata(metadata)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", env.Type, err)
	}
	p.logger.Debug("enqueued domain event", "type", env.Type, "user_id", env.Metadata.UserID)
	return nil
}

// EmitAll enqueues a list of envelopes, stopping at the first failure.
// Services return event lists from their transactions; the caller publishes
// them after commit.
func (p *Publisher) EmitAll(ctx context.Context, envs []Envelope) error {
	for _, env := range envs {
		if err := p.Emit(ctx, env); err != nil {
			return err
		}
	}
	return nil
}
