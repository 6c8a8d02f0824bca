package bus

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/queuedevent"
	"github.com/gatherhub/gatherhub/pkg/config"
)

// Handler processes one domain event. Handlers run with all-settled
// semantics: a failing handler is logged and does not affect siblings, and
// the message is acknowledged regardless. Handlers must be idempotent.
type Handler func(ctx context.Context, env Envelope) error

// BatchListener is notified at the start of every dispatch batch. Handlers
// holding a per-batch cache (the achievement definition cache) implement it
// to drop the cache between batches.
type BatchListener interface {
	BatchStart()
}

// Dispatcher claims pending queued events in batches and routes each to the
// handlers registered for its type plus the wildcard handlers. Claiming
// uses FOR UPDATE SKIP LOCKED so multiple pods can dispatch concurrently.
type Dispatcher struct {
	client    *ent.Client
	cfg       *config.Queue
	logger    *slog.Logger
	podID     string
	handlers  map[string][]Handler
	wildcard  []Handler
	listeners []BatchListener
}

// NewDispatcher creates a dispatcher. Handler registration happens at
// startup, before Run; the maps are read-only afterwards.
func NewDispatcher(client *ent.Client, cfg *config.Queue) *Dispatcher {
	hostname, _ := os.Hostname()
	return &Dispatcher{
		client:   client,
		cfg:      cfg,
		logger:   slog.With("component", "bus.dispatcher"),
		podID:    fmt.Sprintf("%s-%s", hostname, uuid.NewString()[:8]),
		handlers: make(map[string][]Handler),
	}
}

// Register adds a handler for one event type.
func (d *Dispatcher) Register(eventType string, h Handler) {
	d.handlers[eventType] = append(d.handlers[eventType], h)
}

// RegisterWildcard adds a handler invoked for every event type.
func (d *Dispatcher) RegisterWildcard(h Handler) {
	d.wildcard = append(d.wildcard, h)
}

// AddBatchListener registers a per-batch lifecycle listener.
func (d *Dispatcher) AddBatchListener(l BatchListener) {
	d.listeners = append(d.listeners, l)
}

// Run polls for pending events until ctx is cancelled. The in-flight batch
// is completed before returning; the dispatcher is not cancelled
// mid-message.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("dispatcher started", "pod_id", d.podID, "batch_size", d.cfg.BatchSize)
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopped")
			return
		case <-time.After(d.pollDelay()):
		}
		for {
			n := d.ProcessBatch(context.WithoutCancel(ctx))
			if n == 0 {
				break
			}
			if ctx.Err() != nil {
				d.logger.Info("dispatcher stopped")
				return
			}
		}
	}
}

// pollDelay jitters the poll interval so pods do not claim in lockstep.
func (d *Dispatcher) pollDelay() time.Duration {
	delay := d.cfg.PollInterval
	if d.cfg.PollJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(d.cfg.PollJitter)))
	}
	return delay
}

// ProcessBatch claims and dispatches one batch, returning the number of
// messages processed. Exported for tests and for drain-on-demand callers.
func (d *Dispatcher) ProcessBatch(ctx context.Context) int {
	rows, err := d.claim(ctx)
	if err != nil {
		d.logger.Error("failed to claim batch", "error", err)
		return 0
	}
	if len(rows) == 0 {
		return 0
	}

	for _, l := range d.listeners {
		l.BatchStart()
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatcher panic, releasing batch", "panic", r)
			d.nack(ctx, ids)
		}
	}()

	for _, row := range rows {
		d.dispatch(ctx, toEnvelope(row))
	}
	d.ack(ctx, ids)
	return len(rows)
}

// dispatch runs specific-type handlers then wildcard handlers with
// all-settled semantics.
func (d *Dispatcher) dispatch(ctx context.Context, env Envelope) {
	handlers := append(append([]Handler{}, d.handlers[env.Type]...), d.wildcard...)
	if len(handlers) == 0 {
		return
	}
	for i, h := range handlers {
		if err := h(ctx, env); err != nil {
			d.logger.Error("handler failed",
				"type", env.Type,
				"handler", i,
				"error", err)
		}
	}
}

// claim locks up to BatchSize pending rows and marks them processing.
func (d *Dispatcher) claim(ctx context.Context) ([]*ent.QueuedEvent, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueuedEvent.Query().
		Where(queuedevent.StatusEQ(queuedevent.StatusPending)).
		Order(ent.Asc(queuedevent.FieldID)).
		Limit(d.cfg.BatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending events: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	_, err = tx.QueuedEvent.Update().
		Where(queuedevent.IDIn(ids...)).
		SetStatus(queuedevent.StatusProcessing).
		SetClaimedBy(d.podID).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark batch processing: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return rows, nil
}

// ack marks the batch delivered. Called even when handlers failed; handler
// idempotence is cheaper than re-running completed siblings.
func (d *Dispatcher) ack(ctx context.Context, ids []int) {
	_, err := d.client.QueuedEvent.Update().
		Where(queuedevent.IDIn(ids...)).
		SetStatus(queuedevent.StatusDelivered).
		Save(ctx)
	if err != nil {
		d.logger.Error("failed to acknowledge batch", "error", err)
	}
}

// nack releases the batch back to pending for redelivery.
func (d *Dispatcher) nack(ctx context.Context, ids []int) {
	_, err := d.client.QueuedEvent.Update().
		Where(queuedevent.IDIn(ids...)).
		SetStatus(queuedevent.StatusPending).
		ClearClaimedBy().
		Save(ctx)
	if err != nil {
		d.logger.Error("failed to release batch", "error", err)
	}
}

func toEnvelope(row *ent.QueuedEvent) Envelope {
	env := Envelope{
		Type:      row.EventType,
		Payload:   row.Payload,
		Timestamp: row.EventTimestamp,
	}
	if row.Metadata != nil {
		if v, ok := row.Metadata["user_id"].(string); ok {
			env.Metadata.UserID = v
		}
		if v, ok := row.Metadata["source"].(string); ok {
			env.Metadata.Source = v
		}
	}
	if env.Payload == nil {
		env.Payload = map[string]interface{}{}
	}
	return env
}
