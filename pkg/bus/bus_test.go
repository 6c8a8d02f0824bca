package bus

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent/queuedevent"
	"github.com/gatherhub/gatherhub/pkg/config"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func testQueueConfig() *config.Queue {
	return &config.Queue{
		BatchSize:    10,
		PollInterval: 10 * time.Millisecond,
		PollJitter:   0,
	}
}

func TestPublisherEmitPersists(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	pub := NewPublisher(client.Client)

	stamped := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	err := pub.Emit(ctx, Envelope{
		Type:      TypeEventCheckin,
		Payload:   map[string]interface{}{"event_id": "e1"},
		Metadata:  Metadata{UserID: "u1", Source: "api"},
		Timestamp: stamped,
	})
	require.NoError(t, err)

	row, err := client.QueuedEvent.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, TypeEventCheckin, row.EventType)
	assert.Equal(t, "e1", row.Payload["event_id"])
	assert.Equal(t, "u1", row.Metadata["user_id"])
	assert.Equal(t, queuedevent.StatusPending, row.Status)
	// The caller's timestamp is preserved exactly.
	assert.True(t, row.EventTimestamp.Equal(stamped))
}

func TestPublisherEmptyTypeRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.Client)
	err := pub.Emit(context.Background(), Envelope{})
	assert.Error(t, err)
}

func TestDispatcherRoutesByTypeAndWildcard(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	pub := NewPublisher(client.Client)
	d := NewDispatcher(client.Client, testQueueConfig())

	var mu sync.Mutex
	var specific, wildcard []string
	d.Register(TypeEventCheckin, func(_ context.Context, env Envelope) error {
		mu.Lock()
		defer mu.Unlock()
		specific = append(specific, env.Type)
		return nil
	})
	d.RegisterWildcard(func(_ context.Context, env Envelope) error {
		mu.Lock()
		defer mu.Unlock()
		wildcard = append(wildcard, env.Type)
		return nil
	})

	require.NoError(t, pub.Emit(ctx, New(TypeEventCheckin, map[string]interface{}{"event_id": "e1"}, Metadata{UserID: "u1"})))
	require.NoError(t, pub.Emit(ctx, New(TypeFavoriteAdded, map[string]interface{}{"group_slug": "go"}, Metadata{UserID: "u1"})))

	n := d.ProcessBatch(ctx)
	assert.Equal(t, 2, n)

	assert.Equal(t, []string{TypeEventCheckin}, specific)
	assert.ElementsMatch(t, []string{TypeEventCheckin, TypeFavoriteAdded}, wildcard)

	delivered, err := client.QueuedEvent.Query().
		Where(queuedevent.StatusEQ(queuedevent.StatusDelivered)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, delivered)
}

func TestDispatcherAcksDespiteHandlerFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	pub := NewPublisher(client.Client)
	d := NewDispatcher(client.Client, testQueueConfig())

	calls := 0
	d.Register(TypeEventRSVP, func(_ context.Context, _ Envelope) error {
		calls++
		return fmt.Errorf("boom")
	})
	siblingRan := false
	d.RegisterWildcard(func(_ context.Context, _ Envelope) error {
		siblingRan = true
		return nil
	})

	require.NoError(t, pub.Emit(ctx, New(TypeEventRSVP, nil, Metadata{UserID: "u1"})))
	d.ProcessBatch(ctx)

	assert.Equal(t, 1, calls)
	assert.True(t, siblingRan, "failing handler must not affect siblings")

	row, err := client.QueuedEvent.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, queuedevent.StatusDelivered, row.Status)

	// Redelivery does not happen for acked messages.
	assert.Equal(t, 0, d.ProcessBatch(ctx))
	assert.Equal(t, 1, calls)
}

func TestDispatcherAcksUnhandledTypes(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	pub := NewPublisher(client.Client)
	d := NewDispatcher(client.Client, testQueueConfig())

	require.NoError(t, pub.Emit(ctx, New("some.unknown_type", nil, Metadata{})))
	assert.Equal(t, 1, d.ProcessBatch(ctx))

	row, err := client.QueuedEvent.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, queuedevent.StatusDelivered, row.Status)
}

func TestDispatcherBatchListenerAndOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	pub := NewPublisher(client.Client)

	cfg := testQueueConfig()
	cfg.BatchSize = 2
	d := NewDispatcher(client.Client, cfg)

	listener := &countingListener{}
	d.AddBatchListener(listener)

	var seen []string
	d.RegisterWildcard(func(_ context.Context, env Envelope) error {
		seen = append(seen, env.Payload["n"].(string))
		return nil
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, pub.Emit(ctx, New(TypeEventCheckin, map[string]interface{}{"n": fmt.Sprintf("%d", i)}, Metadata{})))
	}

	assert.Equal(t, 2, d.ProcessBatch(ctx))
	assert.Equal(t, 1, d.ProcessBatch(ctx))
	assert.Equal(t, 0, d.ProcessBatch(ctx))

	// Claims follow insertion order.
	assert.Equal(t, []string{"0", "1", "2"}, seen)
	assert.Equal(t, 2, listener.starts)
}

type countingListener struct {
	starts int
}

func (c *countingListener) BatchStart() { c.starts++ }

func TestEnvelopeUserID(t *testing.T) {
	assert.Equal(t, "u1", Envelope{Metadata: Metadata{UserID: "u1"}}.UserID())
	assert.Equal(t, "u2", Envelope{Payload: map[string]interface{}{"user_id": "u2"}}.UserID())
	assert.Equal(t, "", Envelope{}.UserID())
}
